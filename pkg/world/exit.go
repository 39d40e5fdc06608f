package world

// ExitKind is the gating rule attached to a directed room connection.
type ExitKind string

const (
	ExitFree    ExitKind = "free"
	ExitBlocked ExitKind = "blocked"
	ExitNeeds   ExitKind = "needs"  // requires an item; reader-style flavor, no lock
	ExitLocked  ExitKind = "locked" // requires an item; lock flavor, pick wears down
	ExitEvent   ExitKind = "event"  // gated on a world event (the vault door)
)

// Exit is a directed edge in the room graph. Immutable after the
// catalog builds the world.
type Exit struct {
	Target   string   `json:"target"`
	Kind     ExitKind `json:"kind,omitempty"`
	Requires string   `json:"requires,omitempty"` // set iff Kind is needs or locked
}

// Gated reports whether traversal requires an inventory check.
func (e Exit) Gated() bool {
	return e.Kind == ExitLocked || e.Kind == ExitNeeds
}

// RequirementKind classifies a gated exit's required item. The set is
// closed: content only ever gates on the pick, the card and the key.
type RequirementKind int

const (
	ReqPick RequirementKind = iota
	ReqCard
	ReqKey
	ReqOther
)

func requirementKind(item string) RequirementKind {
	switch Fold(item) {
	case "ganzua":
		return ReqPick
	case "tarjeta":
		return ReqCard
	case "llave":
		return ReqKey
	default:
		return ReqOther
	}
}
