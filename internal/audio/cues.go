package audio

// Cue tables. Positions are listener-relative (x right, y up, z
// forward); gain is 0..1.

var sfxParams = map[string]Params{
	"intro.wav": {0.0, 0.0, 0.1, 0.70},
	"bye.wav":   {0.0, 0.0, 0.1, 0.50},
	"error.wav": {0.0, 0.0, 0.0, 0.55},

	"pasos.wav":   {0.0, -0.2, 0.0, 0.50},
	"buscar.wav":  {0.0, 0.0, 0.0, 0.50},
	"recoger.wav": {0.2, 0.0, 0.0, 0.30},
	"nada.wav":    {0.0, 0.0, 0.0, 0.35},

	"bloqueado.wav":      {0.0, 0.0, 1.0, 0.70},
	"puerta_cerrada.wav": {0.0, 0.0, 1.0, 0.75},
	"ganzua.wav":         {0.2, 0.0, 0.0, 0.50},
	"card_beep.wav":      {0.4, 0.0, 0.8, 0.65},
	"puerta_pesada.wav":  {0.0, 0.0, 1.5, 0.85},

	"teclado.wav": {0.0, 0.0, 0.5, 0.60},
	"panel.wav":   {0.6, 0.0, 0.2, 0.60},

	"beep_camara.wav": {0.0, 2.0, 0.5, 0.60},
	"alarma_soft.wav": {0.0, 2.0, 0.0, 0.80},

	"taladro.wav": {-0.4, 0.0, 1.0, 0.90},

	"bolsa_dinero.wav": {0.2, 0.0, 0.2, 0.65},
	"nota.wav":         {0.0, 0.0, 0.2, 0.55},

	"sirena.wav":      {3.0, 0.0, 5.0, 0.90},
	"vacio.wav":       {0.0, 0.0, 2.0, 0.50},
	"motor_suave.wav": {2.5, 0.0, 4.0, 0.65},
	"motor_apuro.wav": {2.5, 0.0, 4.0, 0.85},
	"motor.wav":       {2.0, 0.0, 3.0, 0.70},

	"amb_calle.wav":      {2.0, 0.0, 2.5, 0.60},
	"amb_callejon.wav":   {-1.5, 0.0, 1.0, 0.55},
	"amb_escalera.wav":   {0.0, 2.0, 0.5, 0.50},
	"amb_marmol.wav":     {0.0, 0.0, 2.0, 0.50},
	"amb_oficina.wav":    {0.8, 0.0, 1.0, 0.45},
	"amb_servidores.wav": {0.0, 0.0, -1.0, 0.55},
	"amb_pasillo.wav":    {0.0, 0.0, 2.5, 0.50},
	"amb_antec.wav":      {-0.8, 0.0, 1.0, 0.50},
	"amb_boveda.wav":     {0.0, 0.0, 1.5, 0.50},

	"radio_vestibulo.wav":     {0.0, 0.0, 0.1, 0.75},
	"radio_seguridad_on.wav":  {0.0, 0.0, 0.1, 0.75},
	"radio_seguridad_off.wav": {0.0, 0.0, 0.1, 0.75},
	"radio_oficina.wav":       {0.0, 0.0, 0.1, 0.75},
	"radio_pasillo.wav":       {0.0, 0.0, 0.1, 0.75},
	"radio_antec.wav":         {0.0, 0.0, 0.1, 0.75},
	"radio_boveda.wav":        {0.0, 0.0, 0.1, 0.75},
	"radio_ayuda.wav":         {0.0, 0.0, 0.1, 0.70},
	"radio_exponer.wav":       {0.0, 0.0, 0.1, 0.80},
}

var radioCues = map[string]string{
	"vestibulo":       "radio_vestibulo.wav",
	"sala_seguridad":  "radio_seguridad_on.wav",
	"oficina_gerente": "radio_oficina.wav",
	"pasillo_boveda":  "radio_pasillo.wav",
	"antec_boveda":    "radio_antec.wav",
	"boveda":          "radio_boveda.wav",
	"ayuda":           "radio_ayuda.wav",
	"final_etico":     "radio_exponer.wav",
}

var ambientSourcePos = map[string]Params{
	"exterior":        {2.0, 0.0, 2.5, 0.60},
	"callejon":        {-1.5, 0.0, 1.0, 0.55},
	"escalera":        {0.0, 2.0, 0.5, 0.50},
	"vestibulo":       {0.0, 0.0, 2.0, 0.50},
	"oficina_gerente": {0.8, 0.0, 1.0, 0.45},
	"sala_seguridad":  {0.0, 0.0, -1.0, 0.55},
	"pasillo_boveda":  {0.0, 0.0, 2.5, 0.50},
	"antec_boveda":    {-0.8, 0.0, 1.0, 0.50},
	"boveda":          {0.0, 0.0, 1.5, 0.50},
	"archivo":         {0.8, 0.0, 1.0, 0.45},
	"mantenimiento":   {-0.8, 0.0, 0.5, 0.55},
}

var forceMono = map[string]bool{
	"sirena.wav":      true,
	"motor_suave.wav": true,
	"motor_apuro.wav": true,
	"motor.wav":       true,
	"taladro.wav":     true,
	"beep_camara.wav": true,
	"alarma_soft.wav": true,
	"pasos.wav":       true,
}
