// Package pokemon decodes the fixed-layout 100-byte party records that the
// save parser extracts from a reassembled save block.
package pokemon

import (
	"encoding/binary"
	"errors"
	"fmt"

	"pksave/internal/gametext"
)

// Size is the length of one party record in bytes.
const Size = 100

// field offsets within one record
const (
	offPersonality = 0x00
	offOTID        = 0x04
	offNickname    = 0x08
	nicknameLen    = 10
	offOTName      = 0x14
	otNameLen      = 7
	offStatus      = 0x50
	offLevel       = 0x54
	offCurrentHP   = 0x56
	offMaxHP       = 0x58
	offAttack      = 0x5A
	offDefense     = 0x5C
	offSpeed       = 0x5E
	offSpAttack    = 0x60
	offSpDefense   = 0x62
)

var ErrShortRecord = errors.New("pokemon record too short")

// Pokemon is one party record. It owns a private copy of its bytes: setters
// mutate only that copy and never the save buffer it was extracted from.
type Pokemon struct {
	raw []byte
}

// New copies data into a new record. The slice must hold at least Size bytes.
func New(data []byte) (*Pokemon, error) {
	if len(data) < Size {
		return nil, fmt.Errorf("%w: %d bytes", ErrShortRecord, len(data))
	}
	raw := make([]byte, len(data))
	copy(raw, data)
	return &Pokemon{raw: raw}, nil
}

// Raw returns a copy of the record's bytes.
func (p *Pokemon) Raw() []byte {
	out := make([]byte, len(p.raw))
	copy(out, p.raw)
	return out
}

// Valid reports whether the record plausibly describes a party member.
// Cleared party slots read back as all zeroes, so a zero personality value
// marks the end of the party.
func (p *Pokemon) Valid() bool {
	return len(p.raw) >= Size && p.Personality() != 0
}

func (p *Pokemon) Personality() uint32         { return p.readU32(offPersonality) }
func (p *Pokemon) SetPersonality(v uint32)     { p.writeU32(offPersonality, v) }
func (p *Pokemon) OTID() uint32                { return p.readU32(offOTID) }
func (p *Pokemon) SetOTID(v uint32)            { p.writeU32(offOTID, v) }
func (p *Pokemon) Status() uint8               { return p.readU8(offStatus) }
func (p *Pokemon) SetStatus(v uint8)           { p.writeU8(offStatus, v) }
func (p *Pokemon) Level() uint8                { return p.readU8(offLevel) }
func (p *Pokemon) SetLevel(v uint8)            { p.writeU8(offLevel, v) }
func (p *Pokemon) CurrentHP() uint16           { return p.readU16(offCurrentHP) }
func (p *Pokemon) SetCurrentHP(v uint16)       { p.writeU16(offCurrentHP, v) }
func (p *Pokemon) MaxHP() uint16               { return p.readU16(offMaxHP) }
func (p *Pokemon) SetMaxHP(v uint16)           { p.writeU16(offMaxHP, v) }
func (p *Pokemon) Attack() uint16              { return p.readU16(offAttack) }
func (p *Pokemon) SetAttack(v uint16)          { p.writeU16(offAttack, v) }
func (p *Pokemon) Defense() uint16             { return p.readU16(offDefense) }
func (p *Pokemon) SetDefense(v uint16)         { p.writeU16(offDefense, v) }
func (p *Pokemon) Speed() uint16               { return p.readU16(offSpeed) }
func (p *Pokemon) SetSpeed(v uint16)           { p.writeU16(offSpeed, v) }
func (p *Pokemon) SpAttack() uint16            { return p.readU16(offSpAttack) }
func (p *Pokemon) SetSpAttack(v uint16)        { p.writeU16(offSpAttack, v) }
func (p *Pokemon) SpDefense() uint16           { return p.readU16(offSpDefense) }
func (p *Pokemon) SetSpDefense(v uint16)       { p.writeU16(offSpDefense, v) }

// Nickname returns the decoded nickname field.
func (p *Pokemon) Nickname() string {
	return gametext.Decode(p.field(offNickname, nicknameLen))
}

// SetNickname encodes name into the nickname field, truncating as needed.
func (p *Pokemon) SetNickname(name string) {
	copy(p.raw[offNickname:offNickname+nicknameLen], gametext.Encode(name, nicknameLen))
}

// OTName returns the decoded original-trainer name field.
func (p *Pokemon) OTName() string {
	return gametext.Decode(p.field(offOTName, otNameLen))
}

// SetOTName encodes name into the original-trainer name field.
func (p *Pokemon) SetOTName(name string) {
	copy(p.raw[offOTName:offOTName+otNameLen], gametext.Encode(name, otNameLen))
}

// Nature returns the personality-derived nature name.
func (p *Pokemon) Nature() string {
	return NatureFor(p.Personality())
}

// ShinyValue is the XOR fold of the personality and OT id halves.
func (p *Pokemon) ShinyValue() uint16 {
	pid := p.Personality()
	ot := p.OTID()
	return uint16(pid>>16) ^ uint16(pid&0xFFFF) ^ uint16(ot>>16) ^ uint16(ot&0xFFFF)
}

// Shiny reports whether the record rolls as shiny (fold below 8).
func (p *Pokemon) Shiny() bool {
	return p.ShinyValue() < 8
}

func (p *Pokemon) String() string {
	return fmt.Sprintf("%s lv.%d hp=%d/%d nature=%s",
		p.Nickname(), p.Level(), p.CurrentHP(), p.MaxHP(), p.Nature())
}

func (p *Pokemon) field(off, n int) []byte {
	end := off + n
	if end > len(p.raw) {
		end = len(p.raw)
	}
	if off >= end {
		return nil
	}
	return p.raw[off:end]
}

// Reads past the end of the record degrade to zero instead of panicking;
// writes past the end are dropped.

func (p *Pokemon) readU8(off int) uint8 {
	if off >= len(p.raw) {
		return 0
	}
	return p.raw[off]
}

func (p *Pokemon) readU16(off int) uint16 {
	if off+2 > len(p.raw) {
		return 0
	}
	return binary.LittleEndian.Uint16(p.raw[off:])
}

func (p *Pokemon) readU32(off int) uint32 {
	if off+4 > len(p.raw) {
		return 0
	}
	return binary.LittleEndian.Uint32(p.raw[off:])
}

func (p *Pokemon) writeU8(off int, v uint8) {
	if off < len(p.raw) {
		p.raw[off] = v
	}
}

func (p *Pokemon) writeU16(off int, v uint16) {
	if off+2 <= len(p.raw) {
		binary.LittleEndian.PutUint16(p.raw[off:], v)
	}
}

func (p *Pokemon) writeU32(off int, v uint32) {
	if off+4 <= len(p.raw) {
		binary.LittleEndian.PutUint32(p.raw[off:], v)
	}
}
