package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantCmd CommandType
		wantArg string
	}{
		{name: "move", input: "mover norte", wantCmd: CmdMove, wantArg: "norte"},
		{name: "move with accents and case", input: "  MOVER Norte ", wantCmd: CmdMove, wantArg: "norte"},
		{name: "move without direction", input: "mover", wantCmd: CmdNone},
		{name: "move with too many words", input: "mover norte rapido", wantCmd: CmdNone},
		{name: "bare examine", input: "examinar", wantCmd: CmdExamine, wantArg: ""},
		{name: "examine object", input: "examinar panel de control", wantCmd: CmdExamine, wantArg: "panel de control"},
		{name: "take", input: "recoger Ganzúa", wantCmd: CmdTake, wantArg: "ganzua"},
		{name: "take without object", input: "recoger", wantCmd: CmdNone},
		{name: "use", input: "usar taladro", wantCmd: CmdUse, wantArg: "taladro"},
		{name: "use code", input: "usar código", wantCmd: CmdUseCode},
		{name: "use loot", input: "usar botin", wantCmd: CmdTakeLoot},
		{name: "loot alias coger", input: "coger botín", wantCmd: CmdTakeLoot},
		{name: "loot alias tomar", input: "tomar botin", wantCmd: CmdTakeLoot},
		{name: "recoger botin is a plain take", input: "recoger botin", wantCmd: CmdTake, wantArg: "botin"},
		{name: "inventory", input: "inventario", wantCmd: CmdInventory},
		{name: "status", input: "estado", wantCmd: CmdStatus},
		{name: "think", input: "pensar", wantCmd: CmdThink},
		{name: "help", input: "ayuda", wantCmd: CmdHelp},
		{name: "quit", input: "salir", wantCmd: CmdQuit},
		{name: "empty input", input: "   ", wantCmd: CmdNone},
		{name: "unknown verb", input: "bailar salsa", wantCmd: CmdNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, arg := parseCommand(tt.input)
			assert.Equal(t, tt.wantCmd, cmd)
			assert.Equal(t, tt.wantArg, arg)
		})
	}
}
