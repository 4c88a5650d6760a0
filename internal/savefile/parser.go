// Package savefile reconstructs a game-state snapshot from a raw 128 KiB
// flash save image: it validates the 32 physical sectors, picks the active
// of the two redundant save slots, reassembles the logical save blocks from
// scattered sectors and decodes the trainer and party records.
package savefile

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pksave/internal/gametext"
	"pksave/internal/pokemon"
	"pksave/internal/profile"
)

var (
	ErrNoData               = errors.New("no save data loaded")
	ErrInputTooSmall        = errors.New("save image too small")
	ErrMissingBlock         = errors.New("save block sector (logical id 0) not found")
	ErrPartyCountOutOfRange = errors.New("party count out of range")
)

// fallbackName is reported when the player name field decodes to nothing.
const fallbackName = "Unknown"

// PlayTime is the accumulated in-game clock.
type PlayTime struct {
	Hours   uint16
	Minutes uint8
	Seconds uint8
}

func (t PlayTime) String() string {
	return fmt.Sprintf("%d:%02d:%02d", t.Hours, t.Minutes, t.Seconds)
}

// Summary is the trainer-level result of a parse.
type Summary struct {
	PlayerName   string
	ActiveSlot   int
	PlayTime     PlayTime
	ValidSectors int
}

// Parser owns one loaded save image and the sector table derived from it.
// A Parser is not safe for concurrent use; separate images want separate
// parsers, which share nothing.
type Parser struct {
	prof  *profile.Profile
	sugar *zap.SugaredLogger

	data       []byte
	session    string
	slotStart  int
	forcedSlot int
	table      map[uint16]int
}

// Option configures a Parser.
type Option func(*Parser)

// ForceSlot pins the active slot to 1 or 2 regardless of sector counters.
// Useful when inspecting a half-written image where the counters lie.
func ForceSlot(slot int) Option {
	return func(p *Parser) {
		if slot == 1 || slot == 2 {
			p.forcedSlot = slot
		}
	}
}

// NewParser returns a parser for the given game profile. A nil profile
// means vanilla Emerald.
func NewParser(prof *profile.Profile, logger *zap.Logger, opts ...Option) *Parser {
	if prof == nil {
		prof = profile.Vanilla()
	}
	p := &Parser{
		prof:  prof,
		sugar: logger.Sugar(),
		table: make(map[uint16]int),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Load copies data in, validates its size, selects the active slot and
// rebuilds the sector table. Any previously loaded image is discarded.
func (p *Parser) Load(data []byte) error {
	if len(data) < ImageSize {
		return fmt.Errorf("%w: %d bytes, need %d", ErrInputTooSmall, len(data), ImageSize)
	}

	p.data = make([]byte, len(data))
	copy(p.data, data)
	p.session = uuid.New().String()

	p.selectActiveSlot()
	p.buildSectorTable()

	p.sugar.Debugw("save image loaded",
		"session", p.session,
		"profile", p.prof.Name,
		"active_slot", p.ActiveSlot(),
		"valid_sectors", len(p.table),
	)
	return nil
}

// Parse decodes the trainer summary from the loaded image.
func (p *Parser) Parse() (*Summary, error) {
	if p.data == nil {
		return nil, ErrNoData
	}

	block2, err := p.extractBlock2()
	if err != nil {
		return nil, err
	}

	return &Summary{
		PlayerName:   p.playerName(block2),
		ActiveSlot:   p.ActiveSlot(),
		PlayTime:     p.playTime(block2),
		ValidSectors: len(p.table),
	}, nil
}

// Party decodes the party records from the loaded image. Parsing stops at
// the first short or invalid record and returns the records gathered so
// far; only a count byte beyond the profile maximum is an error.
func (p *Parser) Party() ([]*pokemon.Pokemon, error) {
	if p.data == nil {
		return nil, ErrNoData
	}

	block1 := p.extractBlock1()
	lay := p.prof.Layout

	if lay.PartyCountOffset >= len(block1) {
		return nil, nil
	}
	count := int(block1[lay.PartyCountOffset])
	if count > p.prof.MaxPartySize {
		return nil, fmt.Errorf("%w: %d, max %d", ErrPartyCountOutOfRange, count, p.prof.MaxPartySize)
	}

	party := make([]*pokemon.Pokemon, 0, count)
	for slot := 0; slot < count; slot++ {
		off := lay.PartyOffset + slot*p.prof.MonSize
		if off+p.prof.MonSize > len(block1) {
			break
		}
		mon, err := pokemon.New(block1[off : off+p.prof.MonSize])
		if err != nil || !mon.Valid() {
			p.sugar.Debugw("party parse stopped",
				"session", p.session, "slot", slot, "err", err)
			break
		}
		party = append(party, mon)
	}
	return party, nil
}

// SectorInfo decodes and validates the footer of one physical sector. Out
// of range indexes, or calling before Load, yield a zeroed invalid record.
func (p *Parser) SectorInfo(index int) SectorInfo {
	return readSectorInfo(p.data, index, p.prof.Signature)
}

// ActiveSlot reports which save slot is active, 1 or 2.
func (p *Parser) ActiveSlot() int {
	if p.slotStart == 0 {
		return 1
	}
	return 2
}

// ValidSectorCount reports how many validated sectors the active slot holds.
func (p *Parser) ValidSectorCount() int {
	return len(p.table)
}

// Session returns the GUID assigned to the currently loaded image, or ""
// before the first Load.
func (p *Parser) Session() string {
	return p.session
}

func (p *Parser) playerName(block2 []byte) string {
	lay := p.prof.Layout
	end := lay.PlayerNameOffset + lay.PlayerNameLen
	if end > len(block2) {
		return fallbackName
	}
	name := gametext.Decode(block2[lay.PlayerNameOffset:end])
	if name == "" {
		return fallbackName
	}
	return name
}

func (p *Parser) playTime(block2 []byte) PlayTime {
	lay := p.prof.Layout
	var t PlayTime
	if lay.PlayTimeHours+2 <= len(block2) {
		t.Hours = binary.LittleEndian.Uint16(block2[lay.PlayTimeHours:])
	}
	if lay.PlayTimeMinutes < len(block2) {
		t.Minutes = block2[lay.PlayTimeMinutes]
	}
	if lay.PlayTimeSeconds < len(block2) {
		t.Seconds = block2[lay.PlayTimeSeconds]
	}
	return t
}
