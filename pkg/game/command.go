package game

import (
	"strings"

	"github.com/dmarulanda/atraco/pkg/world"
)

type CommandType string

const (
	CmdMove      CommandType = "mover"
	CmdExamine   CommandType = "examinar"
	CmdTake      CommandType = "recoger"
	CmdUse       CommandType = "usar"
	CmdUseCode   CommandType = "usar codigo"
	CmdTakeLoot  CommandType = "usar botin"
	CmdInventory CommandType = "inventario"
	CmdStatus    CommandType = "estado"
	CmdThink     CommandType = "pensar"
	CmdHelp      CommandType = "ayuda"
	CmdQuit      CommandType = "salir"
	CmdNone      CommandType = "" // unrecognized input
)

// parseCommand folds the input (trim, lowercase, strip accents) and
// splits it into a verb and its argument. Unrecognized input returns
// CmdNone; the session answers with an error cue, never terminates.
func parseCommand(input string) (CommandType, string) {
	folded := world.Fold(input)
	if folded == "" {
		return CmdNone, ""
	}

	// Fixed-phrase aliases for grabbing the loot. "recoger botin" is
	// not among them: it parses as a regular take and fails in place.
	switch folded {
	case "coger botin", "tomar botin":
		return CmdTakeLoot, ""
	}

	parts := strings.Fields(folded)
	verb := parts[0]
	arg := strings.Join(parts[1:], " ")

	switch verb {
	case "mover":
		if len(parts) != 2 {
			return CmdNone, ""
		}
		return CmdMove, arg
	case "examinar":
		return CmdExamine, arg
	case "recoger":
		if arg == "" {
			return CmdNone, ""
		}
		return CmdTake, arg
	case "usar":
		if arg == "" {
			return CmdNone, ""
		}
		switch parts[1] {
		case "codigo":
			return CmdUseCode, ""
		case "botin":
			return CmdTakeLoot, ""
		}
		return CmdUse, arg
	case "inventario":
		return CmdInventory, ""
	case "estado":
		return CmdStatus, ""
	case "pensar":
		return CmdThink, ""
	case "ayuda":
		return CmdHelp, ""
	case "salir":
		return CmdQuit, ""
	}
	return CmdNone, ""
}
