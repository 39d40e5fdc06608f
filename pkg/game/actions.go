package game

import (
	"fmt"
	"strings"

	"github.com/dmarulanda/atraco/pkg/world"
)

func (s *Session) examine(target string) {
	room := s.currentRoom()

	folded := world.Fold(target)
	if folded == "" || folded == room.Key || folded == world.Fold(room.Name) {
		s.World.DescribeObjects(room)
		return
	}

	if def, ok := s.cat.LookupExamine(room.Key, folded); ok {
		s.sink.Say(def.Text)
		if def.Cue != "" {
			s.sink.Cue(def.Cue)
		}
		return
	}

	s.sink.Say("No descubres nada más.")
	s.sink.Cue("nada.wav")
}

func (s *Session) take(item string) {
	room := s.currentRoom()

	name, ok := room.FindItem(item)
	if !ok {
		s.sink.Say("No hay nada con ese nombre aquí.")
		s.sink.Cue("nada.wav")
		return
	}

	room.RemoveItem(name)
	s.Player.AddItem(name)
	s.sink.Say(fmt.Sprintf("Recoges %s.", name))
	s.sink.Cue("recoger.wav")

	folded := world.Fold(name)
	if strings.HasPrefix(folded, "nota") {
		s.Player.Notes++
	}
	if folded == "dossier" {
		s.World.Evidence = true
		s.sink.Say("Bernal (radio): Nombres, rutas, firmas. Con esto el banco deja de ser edificio y se vuelve confesión.")
	}
}

func (s *Session) use(obj string) {
	room := s.currentRoom()
	name := world.Fold(obj)

	isPanel := name == "panel" || name == "panel de control"

	// The security panel is bolted to the wall; everything else must be
	// carried.
	if !s.Player.HasItem(name) && !(isPanel && room.Key == "sala_seguridad") {
		s.sink.Say("No llevas eso.")
		s.sink.Cue("error.wav")
		return
	}

	switch {
	case isPanel && room.Key == "sala_seguridad":
		if s.World.DisableCameras(s.World.Settings.CamsOffMoves) {
			s.sink.Say("El murmullo eléctrico se apaga. La mirada del banco, también.")
			s.sink.Cue("panel.wav")
			s.sink.Cue("radio_seguridad_off.wav")
		} else {
			s.sink.Say("Ya silenciaste las cámaras.")
			s.sink.Cue("nada.wav")
		}

	case name == "fusibles":
		if room.Key != "mantenimiento" {
			s.sink.Say("Aquí no hay tablero que obedecería.")
			s.sink.Cue("nada.wav")
			return
		}
		if !s.World.DisableCameras(s.World.Settings.CamsOffMovesFuse) {
			s.sink.Say("Ya silenciaste las cámaras por otro medio.")
			s.sink.Cue("nada.wav")
			return
		}
		// The blunt way: blackout bought with noise.
		s.World.RaiseAlert(1)
		s.sink.Say("Un chasquido y las luces tiemblan. La red parpadea a oscuras.")
		s.sink.Cue("panel.wav")
		s.sink.Say("Bernal (radio): Sombra ganada, tiempo perdido. Muévete pues.")

	case name == "uniforme":
		// Re-donning restarts the timer; it never stacks.
		s.World.DisguiseMovesLeft = s.World.Settings.DisguiseMoves
		s.sink.Say("Te ajustas el uniforme: el banco te cree del turno de noche por un rato.")
		s.sink.Cue("recoger.wav")
		s.sink.Say("Bernal (radio): La pinta también roba. Cruza donde miran.")

	case name == "taladro":
		if room.Key != "antec_boveda" || s.VaultOpen {
			s.sink.Say("No parece el lugar para taladrar.")
			s.sink.Cue("nada.wav")
			return
		}
		s.sink.Say("El metal grita. Cada segundo pesa como un delito.")
		s.sink.Cue("taladro.wav")
		s.sink.Say("Bernal (radio): A mí me botaron por menos. Si eso se oye afuera, aborta sin dudar.")
		s.World.RaiseAlert(s.World.Settings.AlertDrill)
		if s.World.PoliceArrives() {
			s.endCaptured()
			return
		}
		s.VaultOpen = true
		s.sink.Say("Los pernos retroceden. El animal abre el ojo.")
		s.sink.Cue("puerta_pesada.wav")

	case name == "tarjeta":
		if room.Key == "exterior" || room.Key == "vestibulo" {
			s.sink.Say("La tarjeta estará lista cuando pases junto a un lector.")
			s.sink.Cue("card_beep.wav")
		} else {
			s.sink.Say("Aquí no hay dónde pasarla.")
			s.sink.Cue("nada.wav")
		}

	case name == "ganzua":
		s.sink.Say("Tu mano y la ganzúa ensayan un diálogo viejo con el metal.")
		s.sink.Cue("ganzua.wav")

	default:
		s.sink.Say("No consigues usarlo aquí.")
		s.sink.Cue("nada.wav")
	}
}

// useCode arms the keypad: the next input line is read as the code.
func (s *Session) useCode() {
	room := s.currentRoom()

	if room.Key != "antec_boveda" {
		s.sink.Say("Aquí no hay teclado que respondería.")
		s.sink.Cue("nada.wav")
		return
	}

	if s.World.KeypadLockMoves > 0 {
		s.sink.Say(fmt.Sprintf("El teclado está bloqueado por %d movimientos.", s.World.KeypadLockMoves))
		s.sink.Cue("alarma_soft.wav")
		s.sink.Say("Bernal (radio): Otra no. Cabeza antes que suerte.")
		return
	}

	s.awaitingCode = true
}

func (s *Session) resolveCode(input string) {
	s.awaitingCode = false
	s.sink.Cue("teclado.wav")

	if strings.TrimSpace(input) == s.World.VaultCode {
		s.VaultOpen = true
		s.sink.Say("Un susurro hidráulico concede el paso. La bóveda te cree.")
		s.sink.Cue("puerta_pesada.wav")
		return
	}

	s.sink.Say("El pitido muerde. El edificio te huele.")
	s.sink.Cue("alarma_soft.wav")
	s.World.RaiseAlert(s.World.Settings.AlertWrongCode)
	s.World.KeypadLockMoves = s.World.Settings.KeypadLockMoves
	s.sink.Say("Bernal (radio): No fuerces con fe. Si te falta un número, búscalo.")
	if s.World.PoliceArrives() {
		s.endCaptured()
	}
}

func (s *Session) takeLoot() {
	room := s.currentRoom()

	if room.Key != "boveda" {
		s.sink.Say("Aquí no hay botín.")
		s.sink.Cue("nada.wav")
		return
	}
	if !s.VaultOpen {
		s.sink.Say("La bóveda sigue cerrada.")
		s.sink.Cue("puerta_cerrada.wav")
		return
	}
	if s.Player.HasLoot {
		s.sink.Say("Ya cargas suficiente pecado.")
		s.sink.Cue("nada.wav")
		return
	}

	s.sink.Say("Llenas la mochila con fajos y metal que no te pertenecen.")
	s.sink.Cue("bolsa_dinero.wav")
	s.Player.HasLoot = true
	s.sink.Say("Bernal (radio): Peso rápido. Paga cuentas de hoy, crea preguntas de mañana. Asegura la salida.")
}

func (s *Session) inventory() {
	if len(s.Player.Inventory) == 0 {
		s.sink.Say("Inventario vacío.")
		return
	}
	s.sink.Say("Inventario: " + strings.Join(s.Player.Inventory, ", "))
}

func (s *Session) status() {
	w := s.World

	cams := "ON"
	if w.CamerasDisabled {
		cams = "OFF"
	}
	vault := "no"
	if s.VaultOpen {
		vault = "sí"
	}
	s.sink.Say(fmt.Sprintf("Alerta: %d/%d | Cámaras: %s | Bóveda abierta: %s",
		w.AlertLevel, w.Settings.AlertThreshold, cams, vault))

	if w.CamerasDisabled && w.CamsOffMovesLeft != nil {
		s.sink.Say(fmt.Sprintf("Ceguera cámaras: %d movimientos", *w.CamsOffMovesLeft))
	}
	if w.KeypadLockMoves > 0 {
		s.sink.Say(fmt.Sprintf("Teclado bloqueado: %d movimientos", w.KeypadLockMoves))
	}
	if w.DisguiseMovesLeft > 0 {
		s.sink.Say(fmt.Sprintf("Uniforme creíble por: %d movimientos", w.DisguiseMovesLeft))
	}

	patrol := "LEJOS"
	if w.PatrolActive {
		patrol = "EN RUTA"
	}
	s.sink.Say(fmt.Sprintf("Tiempo: %d movimientos | Patrulla: %s", w.TotalMoves, patrol))

	if s.Player.HasLoot {
		s.sink.Say("Llevas el botín.")
	}
	if w.Evidence {
		s.sink.Say("Llevas el dossier.")
	}
}

// think gives one context hint, most pressing condition first.
func (s *Session) think() {
	switch {
	case !s.hasEntered:
		s.sink.Say("El banco respira lento. Podrías dar la vuelta y seguir siendo la persona a la que todo se lo deben.")
	case !s.World.CamerasDisabled && s.World.DisguiseMovesLeft <= 0:
		s.sink.Say("Cada cámara es un testigo. Apagar ojos no hace justicia, pero te acerca a elegir.")
	case s.Player.HasLoot && s.World.Evidence:
		s.sink.Say("El dinero te saca del hambre. La verdad saca a otros. No caben en la misma mano.")
	case s.Player.HasLoot:
		s.sink.Say("El peso en la mochila no es solo metal. Asegura salida; decide quién paga mañana.")
	case s.Player.Notes < 3 && !s.VaultOpen:
		s.sink.Say("Tres cifras para una puerta; tres cobardías para un sistema. Te falta una.")
	default:
		s.sink.Say("El edificio calla. Puede ser complicidad. O bendición.")
	}
}

func (s *Session) help() {
	s.sink.Say("Comandos:\n- 'mover [norte/sur/este/oeste]'\n- 'examinar' o 'examinar [objeto]'\n- 'recoger [objeto]'\n- 'usar [objeto]' (panel, taladro, tarjeta, ganzua, fusibles, uniforme)\n- 'usar codigo'\n- 'inventario'\n- 'estado'\n- 'pensar'\n- 'salir'")
	s.sink.Cue("radio_ayuda.wav")
}

func (s *Session) quit() {
	s.sink.Say("Apagas la radio. Esta noche termina aquí.")
	s.sink.Cue("bye.wav")
	s.Running = false
}
