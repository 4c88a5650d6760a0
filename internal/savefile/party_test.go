package savefile

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"pksave/internal/gametext"
	"pksave/internal/pokemon"
)

const (
	testPartyCountOffset = 0x234
	testPartyOffset      = 0x238
)

// buildMon assembles a raw 100-byte party record.
func buildMon(personality, otID uint32, nickname string, level uint8) []byte {
	raw := make([]byte, pokemon.Size)
	binary.LittleEndian.PutUint32(raw[0x00:], personality)
	binary.LittleEndian.PutUint32(raw[0x04:], otID)
	copy(raw[0x08:], gametext.Encode(nickname, 10))
	raw[0x54] = level
	binary.LittleEndian.PutUint16(raw[0x56:], 20) // current hp
	binary.LittleEndian.PutUint16(raw[0x58:], 21) // max hp
	return raw
}

// partyImage builds an image whose sector 1 holds logical id 1 with the
// given party laid out at the vanilla offsets.
func partyImage(count byte, mons ...[]byte) []byte {
	img := newTestImage()
	start := 1 * SectorSize
	img[start+testPartyCountOffset] = count
	for i, mon := range mons {
		copy(img[start+testPartyOffset+i*pokemon.Size:], mon)
	}
	writeFooter(img, 1, 1, 1)
	return img
}

func TestParser_Party(t *testing.T) {
	img := partyImage(2,
		buildMon(0x12345679, 42, "MUDKIP", 5),
		buildMon(0xCAFEBABE, 42, "ZIGZAGOON", 4),
	)

	p := newTestParser()
	require.NoError(t, p.Load(img))

	party, err := p.Party()
	require.NoError(t, err)
	require.Len(t, party, 2)

	require.Equal(t, "MUDKIP", party[0].Nickname())
	require.EqualValues(t, 5, party[0].Level())
	require.EqualValues(t, 20, party[0].CurrentHP())
	require.EqualValues(t, 21, party[0].MaxHP())
	require.Equal(t, "ZIGZAGOON", party[1].Nickname())
}

func TestParser_Party_empty(t *testing.T) {
	img := partyImage(0)

	p := newTestParser()
	require.NoError(t, p.Load(img))

	party, err := p.Party()
	require.NoError(t, err)
	require.Empty(t, party)
}

func TestParser_Party_countOutOfRange(t *testing.T) {
	img := partyImage(13)

	p := newTestParser()
	require.NoError(t, p.Load(img))

	_, err := p.Party()
	require.ErrorIs(t, err, ErrPartyCountOutOfRange)
}

func TestParser_Party_stopsAtInvalidRecord(t *testing.T) {
	// second slot has a zero personality: the tail is discarded, no error
	img := partyImage(3,
		buildMon(0x1111, 1, "TREECKO", 5),
		buildMon(0, 1, "GHOST", 5),
		buildMon(0x3333, 1, "TORCHIC", 5),
	)

	p := newTestParser()
	require.NoError(t, p.Load(img))

	party, err := p.Party()
	require.NoError(t, err)
	require.Len(t, party, 1)
	require.Equal(t, "TREECKO", party[0].Nickname())
}

func TestParser_Party_missingSector(t *testing.T) {
	// party data lives in logical id 1; without it block 1 reads as zeroes,
	// so the count byte is zero and the party is empty
	img := newTestImage()
	fillSector(img, 0, 0, 1, 0x00)

	p := newTestParser()
	require.NoError(t, p.Load(img))

	party, err := p.Party()
	require.NoError(t, err)
	require.Empty(t, party)
}

func TestParser_Party_recordsDoNotAliasImage(t *testing.T) {
	img := partyImage(1, buildMon(0x2222, 9, "PIKACHU", 25))

	p := newTestParser()
	require.NoError(t, p.Load(img))

	party, err := p.Party()
	require.NoError(t, err)
	require.Len(t, party, 1)

	party[0].SetLevel(99)

	again, err := p.Party()
	require.NoError(t, err)
	require.EqualValues(t, 25, again[0].Level(), "setter must not touch the source image")
}
