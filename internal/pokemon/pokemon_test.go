package pokemon

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestRecord(t *testing.T) *Pokemon {
	t.Helper()
	p, err := New(make([]byte, Size))
	require.NoError(t, err)
	return p
}

func TestNew_shortBuffer(t *testing.T) {
	_, err := New(make([]byte, Size-1))
	require.ErrorIs(t, err, ErrShortRecord)

	_, err = New(nil)
	require.ErrorIs(t, err, ErrShortRecord)
}

func TestPokemon_fieldAccessors(t *testing.T) {
	p := newTestRecord(t)

	p.SetPersonality(0xAABBCCDD)
	p.SetOTID(0x01020304)
	p.SetStatus(3)
	p.SetLevel(36)
	p.SetCurrentHP(77)
	p.SetMaxHP(96)
	p.SetAttack(58)
	p.SetDefense(61)
	p.SetSpeed(82)
	p.SetSpAttack(110)
	p.SetSpDefense(70)

	require.EqualValues(t, 0xAABBCCDD, p.Personality())
	require.EqualValues(t, 0x01020304, p.OTID())
	require.EqualValues(t, 3, p.Status())
	require.EqualValues(t, 36, p.Level())
	require.EqualValues(t, 77, p.CurrentHP())
	require.EqualValues(t, 96, p.MaxHP())
	require.EqualValues(t, 58, p.Attack())
	require.EqualValues(t, 61, p.Defense())
	require.EqualValues(t, 82, p.Speed())
	require.EqualValues(t, 110, p.SpAttack())
	require.EqualValues(t, 70, p.SpDefense())
}

func TestPokemon_names(t *testing.T) {
	p := newTestRecord(t)

	p.SetNickname("SCEPTILE")
	require.Equal(t, "SCEPTILE", p.Nickname())

	p.SetOTName("BRENDAN")
	require.Equal(t, "BRENDAN", p.OTName())

	// nickname field is 10 bytes
	p.SetNickname("ABCDEFGHIJKL")
	require.Equal(t, "ABCDEFGHIJ", p.Nickname())
}

func TestPokemon_ownsItsBytes(t *testing.T) {
	src := make([]byte, Size)
	binary.LittleEndian.PutUint32(src, 0x1234)

	p, err := New(src)
	require.NoError(t, err)

	p.SetPersonality(0x9999)
	require.EqualValues(t, 0x1234, binary.LittleEndian.Uint32(src), "source slice untouched")

	raw := p.Raw()
	raw[0] = 0xEE
	require.EqualValues(t, 0x9999, p.Personality(), "Raw returns a copy")
}

func TestPokemon_Valid(t *testing.T) {
	p := newTestRecord(t)
	require.False(t, p.Valid(), "zero personality is a cleared slot")

	p.SetPersonality(1)
	require.True(t, p.Valid())
}

func TestNatureFor(t *testing.T) {
	require.Equal(t, "Hardy", NatureFor(0))
	require.Equal(t, "Hardy", NatureFor(25))
	require.Equal(t, "Lonely", NatureFor(26))
	require.Equal(t, "Quirky", NatureFor(24))
}

func TestNatureModifier(t *testing.T) {
	require.Equal(t, 1.1, NatureModifier("Adamant", 1))
	require.Equal(t, 0.9, NatureModifier("Adamant", 4))
	require.Equal(t, 1.0, NatureModifier("Adamant", 2))

	// neutral natures touch nothing
	for idx := 1; idx <= 5; idx++ {
		require.Equal(t, 1.0, NatureModifier("Hardy", idx))
	}
}

func TestPokemon_shininess(t *testing.T) {
	p := newTestRecord(t)

	// all-zero identity folds to zero
	require.EqualValues(t, 0, p.ShinyValue())
	require.True(t, p.Shiny())

	p.SetPersonality(0x12345678)
	require.EqualValues(t, 0x1234^0x5678, p.ShinyValue())
	require.False(t, p.Shiny())
}

func TestStatFormulas(t *testing.T) {
	// base 45, iv 31, ev 0, level 5: (90+31+0)*5/100 = 6, +5+10 = 21
	require.EqualValues(t, 21, hpStat(45, 31, 0, 5))

	// non-HP: (98+31+0)*5/100 = 6, +5 = 11, then the nature factor
	require.EqualValues(t, 11, otherStat(49, 31, 0, 5, 1.0))
	require.EqualValues(t, 12, otherStat(49, 31, 0, 5, 1.1))
	require.EqualValues(t, 9, otherStat(49, 31, 0, 5, 0.9))
}

func TestPokemon_ComputedStats(t *testing.T) {
	p := newTestRecord(t)
	p.SetPersonality(3) // Adamant: +Atk, -SpA
	p.SetLevel(5)

	base := [6]uint16{45, 49, 49, 45, 65, 65}
	stats := p.ComputedStats(base)

	require.EqualValues(t, 21, stats.HP)
	require.EqualValues(t, 12, stats.Attack, "boosted")
	require.EqualValues(t, 11, stats.Defense)
	require.EqualValues(t, 11, stats.Speed)
	require.EqualValues(t, 11, stats.SpAttack, "lowered")
	require.EqualValues(t, 13, stats.SpDefense)
}

func TestPokemon_storedStats(t *testing.T) {
	p := newTestRecord(t)
	p.SetMaxHP(30)
	p.SetAttack(10)
	p.SetDefense(11)
	p.SetSpeed(12)
	p.SetSpAttack(13)
	p.SetSpDefense(14)

	stats := p.Stats()
	require.Equal(t, Stats{HP: 30, Attack: 10, Defense: 11, Speed: 12, SpAttack: 13, SpDefense: 14}, stats)
}
