package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVanilla(t *testing.T) {
	prof := Vanilla()

	require.EqualValues(t, 0x08012025, prof.Signature)
	require.Equal(t, 100, prof.MonSize)
	require.Equal(t, 12, prof.MaxPartySize)
	require.Equal(t, 0x234, prof.Layout.PartyCountOffset)
	require.Equal(t, 0x238, prof.Layout.PartyOffset)
	require.Equal(t, 0x0E, prof.Layout.PlayTimeHours)
	require.Equal(t, 8, prof.Layout.PlayerNameLen)
}

func TestLoad_overridesKeepDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hack.yaml")
	yaml := `
name: Some ROM Hack
max_party_size: 6
layout:
  party_count_offset: 0x290
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	prof, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, "Some ROM Hack", prof.Name)
	require.Equal(t, 6, prof.MaxPartySize)
	require.Equal(t, 0x290, prof.Layout.PartyCountOffset)
	// everything unspecified keeps the vanilla value
	require.EqualValues(t, 0x08012025, prof.Signature)
	require.Equal(t, 100, prof.MonSize)
}

func TestLoad_missingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
