package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmarulanda/atraco/pkg/content"
	"github.com/dmarulanda/atraco/pkg/world"
)

const minimalCatalog = `{
	"name": "banco_minimo",
	"entry": "exterior",
	"vault_code": "111",
	"interiors": ["vestibulo"],
	"camera_zones": [],
	"loot_noisy": [],
	"rooms": {
		"exterior": {
			"name": "Calle",
			"short": "La calle.",
			"long": "La calle, de noche.",
			"exits": {"norte": {"target": "vestibulo"}}
		},
		"vestibulo": {
			"name": "Vestíbulo",
			"short": "El vestíbulo.",
			"long": "Mármol y eco.",
			"exits": {"sur": {"target": "exterior"}},
			"narration": {
				"cue": "radio_vestibulo.wav",
				"lines": ["Bernal (radio): Adentro. Respira."]
			}
		}
	}
}`

func parseCatalog(t *testing.T) *content.Catalog {
	t.Helper()
	c, err := content.Parse([]byte(minimalCatalog))
	require.NoError(t, err)
	return c
}

func TestValidateCatalog_Valid(t *testing.T) {
	v := &CatalogValidator{}
	v.validateCatalog(parseCatalog(t))
	assert.Empty(t, v.errors)
}

func TestValidateCatalog_EmbeddedCatalog(t *testing.T) {
	c, err := content.Load()
	require.NoError(t, err)

	v := &CatalogValidator{}
	v.validateCatalog(c)
	assert.Empty(t, v.errors)
}

func TestValidateCatalog_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *content.Catalog)
		wantErr string
	}{
		{
			name: "narration radio cue not registered for the room",
			mutate: func(c *content.Catalog) {
				c.Rooms["vestibulo"].Narration.Cue = "radio_boveda.wav"
			},
			wantErr: "does not match its registered radio cue 'radio_vestibulo.wav'",
		},
		{
			name: "unknown direction",
			mutate: func(c *content.Catalog) {
				c.Rooms["exterior"].Exits["arriba"] = world.Exit{Target: "vestibulo"}
			},
			wantErr: "unknown direction 'arriba'",
		},
		{
			name: "ambient cue without wav suffix",
			mutate: func(c *content.Catalog) {
				room := c.Rooms["exterior"]
				room.Ambient = "amb_calle.mp3"
				c.Rooms["exterior"] = room
			},
			wantErr: "should name a .wav asset",
		},
		{
			name: "non-numeric vault code",
			mutate: func(c *content.Catalog) {
				c.VaultCode = "a11"
			},
			wantErr: "should be numeric",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := parseCatalog(t)
			tt.mutate(c)

			v := &CatalogValidator{}
			v.validateCatalog(c)
			require.NotEmpty(t, v.errors)
			assert.Contains(t, strings.Join(v.errors, "\n"), tt.wantErr)
		})
	}
}
