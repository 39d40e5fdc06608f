package world

// Player is the single actor driving all mutation. Location must
// always name a room present in the world.
type Player struct {
	Location  string
	Inventory []string
	Notes     int
	HasLoot   bool
}

// HasItem reports whether the inventory holds the item, matching by
// folded name.
func (p *Player) HasItem(name string) bool {
	want := Fold(name)
	for _, it := range p.Inventory {
		if Fold(it) == want {
			return true
		}
	}
	return false
}

// AddItem appends the item under its canonical-cased name.
func (p *Player) AddItem(name string) {
	p.Inventory = append(p.Inventory, name)
}

// RemoveItem drops every copy of the item, matching by folded name.
func (p *Player) RemoveItem(name string) {
	want := Fold(name)
	kept := p.Inventory[:0]
	for _, it := range p.Inventory {
		if Fold(it) != want {
			kept = append(kept, it)
		}
	}
	p.Inventory = kept
}
