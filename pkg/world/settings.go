package world

// Settings groups the tunable pressure values for a session. Every
// countdown is measured in moves; nothing in the engine reads a clock.
type Settings struct {
	AlertThreshold     int `json:"alert_threshold"`
	AlertMove          int `json:"alert_move"`
	AlertDrill         int `json:"alert_drill"`
	AlertWrongCode     int `json:"alert_wrong_code"`
	CamsOffMoves       int `json:"cams_off_moves"`
	CamsOffMovesFuse   int `json:"cams_off_moves_fuse"`
	KeypadLockMoves    int `json:"keypad_lock_moves"`
	PickDurability     int `json:"pick_durability"`
	LootNoise          int `json:"loot_noise"`
	DisguiseMoves      int `json:"disguise_moves"`
	PatrolStartMoves   int `json:"patrol_start_moves"`
	PatrolAlertPerMove int `json:"patrol_alert_per_move"`
}

// Hard is the only difficulty shipped.
func Hard() Settings {
	return Settings{
		AlertThreshold:     4,
		AlertMove:          2,
		AlertDrill:         4,
		AlertWrongCode:     3,
		CamsOffMoves:       10,
		CamsOffMovesFuse:   5,
		KeypadLockMoves:    3,
		PickDurability:     3,
		LootNoise:          1,
		DisguiseMoves:      6,
		PatrolStartMoves:   15,
		PatrolAlertPerMove: 1,
	}
}
