package knowledge

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom_commands.json")
	store := NewStore(path)

	entry := Entry{
		Description: "Company deployment helper.",
		Danger:      DangerHigh,
		Flags: map[string]string{
			"-e": "Target environment.",
			"-n": "Dry run.",
		},
	}
	require.NoError(t, store.Add("deploy", entry))

	loaded := NewStore(path).Load()
	require.Contains(t, loaded, "deploy")
	assert.Equal(t, entry.Description, loaded["deploy"].Description)
	assert.Equal(t, entry.Danger, loaded["deploy"].Danger)
	assert.Equal(t, entry.Flags, loaded["deploy"].Flags)
}

func TestStoreAddPrecedenceOverDynamic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom_commands.json")
	store := NewStore(path)
	require.NoError(t, store.Add("deploy", Entry{
		Description: "Company deployment helper.",
		Danger:      DangerHigh,
		Flags:       map[string]string{"-e": "Target environment."},
	}))

	table := Builtin().Merge(store.Load())
	docs := &fakeSource{
		summary: "deploy - something scraped",
		flags:   map[string]string{"-e": "scraped description"},
	}

	res := NewResolver(table, docs).Resolve(context.Background(), "deploy")

	// Description and danger level are exactly what the user supplied.
	assert.Equal(t, "Company deployment helper.", res.Description)
	assert.Equal(t, DangerHigh, res.Danger)
	// Flags follow the standard merge: dynamic wins on collision.
	assert.Equal(t, "scraped description", res.Flags["-e"])
}

func TestStoreMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "does-not-exist.json"))
	table := store.Load()
	assert.NotNil(t, table)
	assert.Empty(t, table)
}

func TestStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom_commands.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	table := NewStore(path).Load()
	assert.NotNil(t, table)
	assert.Empty(t, table)
}

func TestStoreAddValidation(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "custom_commands.json"))

	assert.Error(t, store.Add("", Entry{Description: "x", Danger: DangerLow}))
	assert.Error(t, store.Add("cmd", Entry{Description: "x", Danger: "extreme"}))
	assert.Error(t, store.Add("cmd", Entry{Description: "x"}))
}

func TestStoreAddReplacesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom_commands.json")
	store := NewStore(path)

	require.NoError(t, store.Add("deploy", Entry{Description: "v1", Danger: DangerLow}))
	require.NoError(t, store.Add("deploy", Entry{Description: "v2", Danger: DangerMedium}))
	require.NoError(t, store.Add("other", Entry{Description: "kept", Danger: DangerLow}))

	table := store.Load()
	assert.Equal(t, "v2", table["deploy"].Description)
	assert.Equal(t, DangerMedium, table["deploy"].Danger)
	assert.Equal(t, "kept", table["other"].Description)
}
