package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmarulanda/atraco/pkg/world"
)

func TestLoad_EmbeddedCatalog(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "exterior", cat.Entry)
	assert.Equal(t, "573", cat.VaultCode)
	assert.Equal(t, []string{"Guantes"}, cat.OpeningInventory)
	assert.Len(t, cat.Rooms, 11)

	// Vault door is the one event-gated exit.
	antec := cat.Rooms["antec_boveda"]
	require.Contains(t, antec.Exits, "norte")
	assert.Equal(t, world.ExitEvent, antec.Exits["norte"].Kind)

	// The manager's office key door.
	oficina := cat.Rooms["oficina_gerente"]
	require.Contains(t, oficina.Exits, "norte")
	assert.Equal(t, world.ExitLocked, oficina.Exits["norte"].Kind)
	assert.Equal(t, "Llave", oficina.Exits["norte"].Requires)
}

func TestParse_Validation(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		wantErr string
	}{
		{
			name:    "missing entry room",
			json:    `{"name": "x", "vault_code": "123", "rooms": {"a": {"name": "A"}}}`,
			wantErr: "missing entry room",
		},
		{
			name:    "entry not defined",
			json:    `{"name": "x", "entry": "b", "vault_code": "123", "rooms": {"a": {"name": "A"}}}`,
			wantErr: "not defined",
		},
		{
			name:    "bad vault code",
			json:    `{"name": "x", "entry": "a", "vault_code": "12", "rooms": {"a": {"name": "A"}}}`,
			wantErr: "vault code",
		},
		{
			name: "exit to unknown room",
			json: `{"name": "x", "entry": "a", "vault_code": "123",
				"rooms": {"a": {"name": "A", "exits": {"norte": {"target": "nowhere"}}}}}`,
			wantErr: "unknown room",
		},
		{
			name: "locked exit without requirement",
			json: `{"name": "x", "entry": "a", "vault_code": "123",
				"rooms": {
					"a": {"name": "A", "exits": {"norte": {"target": "b", "kind": "locked"}}},
					"b": {"name": "B"}}}`,
			wantErr: "requires an item",
		},
		{
			name: "free exit with requirement",
			json: `{"name": "x", "entry": "a", "vault_code": "123",
				"rooms": {
					"a": {"name": "A", "exits": {"norte": {"target": "b", "requires": "Llave"}}},
					"b": {"name": "B"}}}`,
			wantErr: "must not carry a requirement",
		},
		{
			name: "zone references unknown room",
			json: `{"name": "x", "entry": "a", "vault_code": "123", "interiors": ["ghost"],
				"rooms": {"a": {"name": "A"}}}`,
			wantErr: "zone references unknown room",
		},
		{
			name: "unreachable room",
			json: `{"name": "x", "entry": "a", "vault_code": "123",
				"rooms": {"a": {"name": "A"}, "b": {"name": "B"}}}`,
			wantErr: "unreachable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.json))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestBuildRooms_SessionIsolation(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	first := cat.BuildRooms()
	second := cat.BuildRooms()

	first["callejon"].RemoveItem("Ganzua")
	_, ok := second["callejon"].FindItem("Ganzua")
	assert.True(t, ok, "sessions must not share item lists")

	// Unspecified exit kinds default to free.
	for _, exit := range first["pasillo_boveda"].Exits {
		assert.NotEqual(t, world.ExitKind(""), exit.Kind)
	}
}

func TestCatalog_Zones(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	zones := cat.Zones()
	assert.True(t, zones.Interiors["vestibulo"])
	assert.False(t, zones.Interiors["exterior"])
	assert.True(t, zones.CameraZones["pasillo_boveda"])
	assert.True(t, zones.LootNoisy["vestibulo"])
}

func TestCatalog_LookupExamine(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	def, ok := cat.LookupExamine("oficina_gerente", "NOTA1")
	require.True(t, ok, "examine lookup folds case")
	assert.Contains(t, def.Text, "5")

	_, ok = cat.LookupExamine("exterior", "nota1")
	assert.False(t, ok, "examine entries are room-scoped")

	_, ok = cat.LookupExamine("ghost", "nota1")
	assert.False(t, ok)
}

func TestCatalog_Ambient(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "amb_calle.wav", cat.Ambient("exterior"))
	assert.Equal(t, "amb_boveda.wav", cat.Ambient("boveda"))
}
