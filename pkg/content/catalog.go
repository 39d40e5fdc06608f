// Package content holds the static game catalog: rooms, exits, items,
// one-shot radio scripts and examine tables. The catalog is embedded
// JSON, parsed and validated once at startup; nothing is read from
// disk at runtime.
package content

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/dmarulanda/atraco/pkg/world"
)

//go:embed data/banco_cali.json
var bancoCali []byte

// ExamineDef is a fixed response to examining an object in a room.
type ExamineDef struct {
	Text string `json:"text"`
	Cue  string `json:"cue,omitempty"`
}

// RoomDef is the static definition of a room.
type RoomDef struct {
	Name      string                `json:"name"`
	ShortDesc string                `json:"short"`
	LongDesc  string                `json:"long"`
	Ambient   string                `json:"ambient,omitempty"`
	Items     []string              `json:"items,omitempty"`
	Exits     map[string]world.Exit `json:"exits,omitempty"`
	Narration *world.Narration      `json:"narration,omitempty"`
	Examine   map[string]ExamineDef `json:"examine,omitempty"`
}

// Catalog is the full static world definition.
type Catalog struct {
	Name             string             `json:"name"`
	Entry            string             `json:"entry"`
	VaultCode        string             `json:"vault_code"`
	OpeningInventory []string           `json:"opening_inventory,omitempty"`
	Interiors        []string           `json:"interiors"`
	CameraZones      []string           `json:"camera_zones"`
	LootNoisy        []string           `json:"loot_noisy"`
	Rooms            map[string]RoomDef `json:"rooms"`
}

// Load parses and validates the embedded catalog.
func Load() (*Catalog, error) {
	return Parse(bancoCali)
}

// Parse decodes a catalog from JSON and validates it.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the catalog's internal consistency: the entry room
// exists, every exit resolves, gated exits carry a requirement, and
// every room is reachable from the entry.
func (c *Catalog) Validate() error {
	if c.Entry == "" {
		return fmt.Errorf("catalog %q: missing entry room", c.Name)
	}
	if _, ok := c.Rooms[c.Entry]; !ok {
		return fmt.Errorf("catalog %q: entry room %q not defined", c.Name, c.Entry)
	}
	if len(c.VaultCode) != 3 {
		return fmt.Errorf("catalog %q: vault code must be 3 digits, got %q", c.Name, c.VaultCode)
	}

	for key, room := range c.Rooms {
		for dir, exit := range room.Exits {
			if _, ok := c.Rooms[exit.Target]; !ok {
				return fmt.Errorf("room %q: exit %q targets unknown room %q", key, dir, exit.Target)
			}
			switch exit.Kind {
			case "", world.ExitFree, world.ExitBlocked, world.ExitEvent:
				if exit.Requires != "" {
					return fmt.Errorf("room %q: exit %q kind %q must not carry a requirement", key, dir, exit.Kind)
				}
			case world.ExitLocked, world.ExitNeeds:
				if exit.Requires == "" {
					return fmt.Errorf("room %q: exit %q kind %q requires an item", key, dir, exit.Kind)
				}
			default:
				return fmt.Errorf("room %q: exit %q has unknown kind %q", key, dir, exit.Kind)
			}
		}
	}

	for _, set := range [][]string{c.Interiors, c.CameraZones, c.LootNoisy} {
		for _, key := range set {
			if _, ok := c.Rooms[key]; !ok {
				return fmt.Errorf("zone references unknown room %q", key)
			}
		}
	}

	if unreached := c.unreachableFrom(c.Entry); len(unreached) > 0 {
		return fmt.Errorf("rooms unreachable from %q: %v", c.Entry, unreached)
	}
	return nil
}

func (c *Catalog) unreachableFrom(start string) []string {
	seen := map[string]bool{start: true}
	queue := []string{start}
	for len(queue) > 0 {
		key := queue[0]
		queue = queue[1:]
		for _, exit := range c.Rooms[key].Exits {
			if !seen[exit.Target] {
				seen[exit.Target] = true
				queue = append(queue, exit.Target)
			}
		}
	}
	var missing []string
	for key := range c.Rooms {
		if !seen[key] {
			missing = append(missing, key)
		}
	}
	return missing
}

// BuildRooms materializes the mutable room set for one session.
// Call once per session: item lists are mutated in place by pickups.
func (c *Catalog) BuildRooms() map[string]*world.Room {
	rooms := make(map[string]*world.Room, len(c.Rooms))
	for key, def := range c.Rooms {
		exits := make(map[string]world.Exit, len(def.Exits))
		for dir, exit := range def.Exits {
			if exit.Kind == "" {
				exit.Kind = world.ExitFree
			}
			exits[dir] = exit
		}
		items := make([]string, len(def.Items))
		copy(items, def.Items)
		rooms[key] = &world.Room{
			Key:       key,
			Name:      def.Name,
			ShortDesc: def.ShortDesc,
			LongDesc:  def.LongDesc,
			Exits:     exits,
			Items:     items,
		}
	}
	return rooms
}

// Zones returns the fixed room sets the pressure rules key on.
func (c *Catalog) Zones() world.Zones {
	return world.Zones{
		Interiors:   toSet(c.Interiors),
		CameraZones: toSet(c.CameraZones),
		LootNoisy:   toSet(c.LootNoisy),
	}
}

// Narrations returns the per-room one-shot radio scripts.
func (c *Catalog) Narrations() map[string]world.Narration {
	out := make(map[string]world.Narration)
	for key, def := range c.Rooms {
		if def.Narration != nil {
			out[key] = *def.Narration
		}
	}
	return out
}

// Ambient returns the ambient cue for a room, or "" if it has none.
func (c *Catalog) Ambient(roomKey string) string {
	return c.Rooms[roomKey].Ambient
}

// LookupExamine finds a room's examine entry for an object, matching
// the object by folded name.
func (c *Catalog) LookupExamine(roomKey, object string) (ExamineDef, bool) {
	def, ok := c.Rooms[roomKey]
	if !ok {
		return ExamineDef{}, false
	}
	want := world.Fold(object)
	for name, e := range def.Examine {
		if world.Fold(name) == want {
			return e, true
		}
	}
	return ExamineDef{}, false
}

func toSet(keys []string) map[string]bool {
	set := make(map[string]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return set
}
