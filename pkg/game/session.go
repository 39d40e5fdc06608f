// Package game runs one heist session: it parses player commands,
// drives the world state engine and resolves the endings.
package game

import (
	"github.com/google/uuid"

	"github.com/dmarulanda/atraco/pkg/content"
	"github.com/dmarulanda/atraco/pkg/world"
)

// Session is one complete playthrough. Strictly turn-based: Execute
// runs one command to completion, including any cascading ending
// checks, before the caller may feed the next line.
type Session struct {
	ID      uuid.UUID
	World   *world.World
	Player  *world.Player
	Running bool
	Ending  Ending

	VaultOpen       bool
	hasEntered      bool
	formallyEntered bool

	// Pending-input modes keep the external protocol line-oriented:
	// the next raw line answers the keypad or the final choice.
	awaitingCode         bool
	awaitingEscapeChoice bool

	cat  *content.Catalog
	sink world.Sink
}

// NewSession builds a fresh world from the catalog and drops the
// player at the entry room.
func NewSession(cat *content.Catalog, settings world.Settings, sink world.Sink) *Session {
	w := world.New(cat.BuildRooms(), cat.Zones(), cat.Narrations(), settings, sink)
	if cat.VaultCode != "" {
		w.VaultCode = cat.VaultCode
	}
	p := &world.Player{
		Location:  cat.Entry,
		Inventory: append([]string(nil), cat.OpeningInventory...),
	}
	return &Session{
		ID:      uuid.New(),
		World:   w,
		Player:  p,
		Running: true,
		cat:     cat,
		sink:    sink,
	}
}

func (s *Session) currentRoom() *world.Room {
	return s.World.Rooms[s.Player.Location]
}

// Intro narrates the opening scene.
func (s *Session) Intro() {
	s.sink.Say("Cali. El centro baja las persianas; tú subes el pulso. Te quitaron horas, sueldos y paciencia. Esta noche decides si el banco es una caja o un espejo.")
	s.sink.Say("Regla simple: entra, entiende, elige. El dinero pesa; la verdad, más. No podrás llevarte todo, y tampoco deberías.")
	s.sink.Cue("intro.wav")
	s.sink.Say(s.currentRoom().Describe())
	s.sink.Ambient(s.Player.Location)
	s.sink.Say("Escribe 'ayuda' para ver comandos.")
}

// Prompt is the input prompt matching the session's pending mode.
func (s *Session) Prompt() string {
	switch {
	case s.awaitingCode:
		return "Código de 3 dígitos: "
	case s.awaitingEscapeChoice:
		return "(huir/exponer): "
	default:
		return "\n¿Qué quieres hacer? "
	}
}

// Execute runs one line of player input to completion. Once an ending
// fires, further input is ignored.
func (s *Session) Execute(input string) {
	if !s.Running {
		return
	}
	if s.awaitingEscapeChoice {
		s.resolveEscapeChoice(input)
		return
	}
	if s.awaitingCode {
		s.resolveCode(input)
		return
	}
	if world.Fold(input) == "" {
		return
	}

	cmd, arg := parseCommand(input)
	switch cmd {
	case CmdMove:
		s.move(arg)
	case CmdExamine:
		s.examine(arg)
	case CmdTake:
		s.take(arg)
	case CmdUse:
		s.use(arg)
	case CmdUseCode:
		s.useCode()
	case CmdTakeLoot:
		s.takeLoot()
	case CmdInventory:
		s.inventory()
	case CmdStatus:
		s.status()
	case CmdThink:
		s.think()
	case CmdHelp:
		s.help()
	case CmdQuit:
		s.quit()
	default:
		s.sink.Say("Comando no reconocido. Escribe 'ayuda'.")
		s.sink.Cue("error.wav")
	}
}

// move is the traversal state machine: direction check, gate checks,
// the actual relocation, countdowns, entry effects, then the terminal
// checks.
func (s *Session) move(direction string) {
	room := s.currentRoom()
	exit, ok := room.Exits[direction]
	if !ok {
		s.sink.Say("No puedes moverte en esa dirección.")
		s.sink.Cue("error.wav")
		return
	}

	switch {
	case exit.Kind == world.ExitBlocked:
		s.sink.Say("Un bloqueo imposible de franquear.")
		s.sink.Cue("bloqueado.wav")
		return
	case exit.Gated():
		if !s.World.ResolveGatedExit(exit.Requires, s.Player) {
			return
		}
	}

	s.sink.Cue("pasos.wav")

	// The only event gate in the content is the vault door.
	if exit.Kind == world.ExitEvent && !s.VaultOpen {
		s.sink.Say("La bóveda espera un código o el precio del ruido. Usa 'usar codigo' o 'usar taladro'.")
		s.sink.Cue("teclado.wav")
		return
	}

	s.Player.Location = exit.Target

	if s.World.Zones.Interiors[exit.Target] {
		s.hasEntered = true
		s.formallyEntered = true
	}

	if s.World.KeypadLockMoves > 0 {
		s.World.KeypadLockMoves--
	}
	if s.World.DisguiseMovesLeft > 0 {
		s.World.DisguiseMovesLeft--
		if s.World.DisguiseMovesLeft == 0 {
			s.sink.Say("El uniforme pierde su magia. Vuelves a ser tú.")
		}
	}

	s.World.ApplyRoomEntryEffects(s.Player)

	s.sink.Say(s.currentRoom().Describe())
	s.sink.Ambient(s.Player.Location)
	s.World.FireRoomNarration(s.Player.Location)

	if s.World.PoliceArrives() {
		s.endCaptured()
		return
	}

	if s.Player.Location == s.cat.Entry && s.formallyEntered {
		s.checkEscape()
	}
}
