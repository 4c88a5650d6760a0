package profile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Layout holds the field offsets inside the reassembled save blocks.
// Offsets are relative to the start of the owning block, not the image.
type Layout struct {
	PlayerNameOffset int `yaml:"player_name_offset"`
	PlayerNameLen    int `yaml:"player_name_len"`
	PlayTimeHours    int `yaml:"play_time_hours"`
	PlayTimeMinutes  int `yaml:"play_time_minutes"`
	PlayTimeSeconds  int `yaml:"play_time_seconds"`
	PartyCountOffset int `yaml:"party_count_offset"`
	PartyOffset      int `yaml:"party_offset"`
}

// Profile describes one game variant: the sector signature it stamps into
// footers, record geometry and the block layout. ROM hacks shift offsets
// around, so everything a parser needs to know per-game lives here.
type Profile struct {
	Name         string `yaml:"name"`
	Signature    uint32 `yaml:"signature"`
	MonSize      int    `yaml:"mon_size"`
	MaxPartySize int    `yaml:"max_party_size"`
	Layout       Layout `yaml:"layout"`
}

// Vanilla returns the stock Pokemon Emerald profile.
func Vanilla() *Profile {
	return &Profile{
		Name:         "Pokemon Emerald (Vanilla)",
		Signature:    0x08012025,
		MonSize:      100,
		MaxPartySize: 12,
		Layout: Layout{
			PlayerNameOffset: 0x00,
			PlayerNameLen:    8,
			PlayTimeHours:    0x0E,
			PlayTimeMinutes:  0x10,
			PlayTimeSeconds:  0x11,
			PartyCountOffset: 0x234,
			PartyOffset:      0x238,
		},
	}
}

// Load reads a YAML profile from path. Fields absent from the file keep
// their vanilla values, so a profile only has to spell out what it changes.
func Load(path string) (*Profile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}
	prof := Vanilla()
	if err := yaml.Unmarshal(raw, prof); err != nil {
		return nil, fmt.Errorf("parse profile %s: %w", path, err)
	}
	return prof, nil
}
