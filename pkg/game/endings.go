package game

import "github.com/dmarulanda/atraco/pkg/world"

// Ending identifies how a session closed. Empty while still running.
type Ending string

const (
	EndingNone     Ending = ""
	EndingCaptured Ending = "capturado"
	EndingEmpty    Ending = "vacio"
	EndingEthical  Ending = "etico"
	EndingClean    Ending = "limpio"
	EndingHot      Ending = "caliente"
	EndingPlain    Ending = "suficiente"
)

func (s *Session) endCaptured() {
	s.sink.Say("Las sirenas mastican la avenida. Te parten en luz blanca y manos arriba. El banco guarda tu nombre mejor que tus amigos.")
	s.sink.Cue("sirena.wav")
	s.sink.Say("FINAL: Capturado. La verdad no salió, el dinero tampoco.")
	s.Ending = EndingCaptured
	s.Running = false
}

func (s *Session) endEmpty() {
	s.sink.Say("Sales con las manos limpias y vacías. Aprendiste el mapa, no el motivo. La ciudad bosteza y sigue sin ti.")
	s.sink.Cue("vacio.wav")
	s.sink.Say("FINAL: Vacio. Aprendiste el mapa, no el motivo.")
	s.Ending = EndingEmpty
	s.Running = false
}

// checkEscape fires when the player returns to the entry room after
// having been inside the bank.
func (s *Session) checkEscape() {
	if !s.Player.HasLoot {
		s.endEmpty()
		return
	}
	if s.World.Evidence {
		s.awaitingEscapeChoice = true
		s.sink.Say("Tienes botín y el dossier. ¿Qué haces?")
		return
	}
	s.endSuccess()
}

// resolveEscapeChoice settles the loot-versus-dossier decision. Any
// answer other than "exponer" reads as running.
func (s *Session) resolveEscapeChoice(input string) {
	s.awaitingEscapeChoice = false

	if world.Fold(input) == "exponer" {
		s.sink.Say("Filtras el dossier donde duele leerlo. Un par de jubilaciones regresa a manos que tiemblan. Nadie pronuncia tu nombre, pero alguien duerme mejor.")
		s.sink.Cue("radio_exponer.wav")
		s.sink.Say("FINAL CORRUPTO: No te hiciste rico. Te hiciste cargo.")
		s.Ending = EndingEthical
		s.Running = false
		return
	}

	s.sink.Say("Guardas el dossier donde nadie lo encuentre. El motor tapa preguntas. Las cifras aprenden a callar.")
	s.endSuccess()
}

// endSuccess grades the getaway: clean needs the full picture and a
// quiet building, hot means the city noticed, plain is everything in
// between.
func (s *Session) endSuccess() {
	w := s.World
	switch {
	case s.Player.Notes >= 3 && w.AlertLevel <= 2 && w.CamerasDisabled:
		s.sink.Say("Te diluyes en el tráfico. El banco no recuerda tu cara. Tú recuerdas quién te enseñó a contar.")
		s.sink.Cue("motor_suave.wav")
		s.sink.Say("FINAL BUENO: Limpio, preciso, casi elegante.")
		s.Ending = EndingClean
	case w.AlertLevel >= 3:
		s.sink.Say("Muerdes el volante. Las sirenas pierden interés antes que tú el miedo. No todo cobró hoy, pero cobrará.")
		s.sink.Cue("motor_apuro.wav")
		s.sink.Say("FINAL NEUTRAL: Escapas con botín, pero la ciudad aprendió tu olor.")
		s.Ending = EndingHot
	default:
		s.sink.Say("La noche te acepta sin hacer preguntas. No todas las salidas son una victoria; algunas solo son salida.")
		s.sink.Cue("motor.wav")
		s.sink.Say("FINAL: Suficiente. Nunca perfecto.")
		s.Ending = EndingPlain
	}
	s.Running = false
}
