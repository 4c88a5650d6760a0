// Package gametext converts between the GBA generation-III proprietary text
// encoding and Go strings. The byte values have no relation to ASCII; the
// mapping below covers the latin subset the games use for names.
package gametext

import "strings"

const (
	// PadByte fills the unused tail of fixed-length text fields.
	PadByte = 0xFF
)

type pair struct {
	b byte
	r rune
}

// charTable is ordered: encoding resolves duplicates (two spaces, the two
// quote glyphs) to the first entry, matching the reference tables.
var charTable = []pair{
	{0x00, ' '}, {0xA1, '0'}, {0xA2, '1'}, {0xA3, '2'}, {0xA4, '3'}, {0xA5, '4'},
	{0xA6, '5'}, {0xA7, '6'}, {0xA8, '7'}, {0xA9, '8'}, {0xAA, '9'}, {0xBB, 'A'},
	{0xBC, 'B'}, {0xBD, 'C'}, {0xBE, 'D'}, {0xBF, 'E'}, {0xC0, 'F'}, {0xC1, 'G'},
	{0xC2, 'H'}, {0xC3, 'I'}, {0xC4, 'J'}, {0xC5, 'K'}, {0xC6, 'L'}, {0xC7, 'M'},
	{0xC8, 'N'}, {0xC9, 'O'}, {0xCA, 'P'}, {0xCB, 'Q'}, {0xCC, 'R'}, {0xCD, 'S'},
	{0xCE, 'T'}, {0xCF, 'U'}, {0xD0, 'V'}, {0xD1, 'W'}, {0xD2, 'X'}, {0xD3, 'Y'},
	{0xD4, 'Z'}, {0xD5, 'a'}, {0xD6, 'b'}, {0xD7, 'c'}, {0xD8, 'd'}, {0xD9, 'e'},
	{0xDA, 'f'}, {0xDB, 'g'}, {0xDC, 'h'}, {0xDD, 'i'}, {0xDE, 'j'}, {0xDF, 'k'},
	{0xE0, 'l'}, {0xE1, 'm'}, {0xE2, 'n'}, {0xE3, 'o'}, {0xE4, 'p'}, {0xE5, 'q'},
	{0xE6, 'r'}, {0xE7, 's'}, {0xE8, 't'}, {0xE9, 'u'}, {0xEA, 'v'}, {0xEB, 'w'},
	{0xEC, 'x'}, {0xED, 'y'}, {0xEE, 'z'}, {0x34, '!'}, {0x35, '?'}, {0x36, '.'},
	{0x37, '-'}, {0x38, '·'}, {0x39, '…'}, {0x3A, '"'}, {0x3B, '"'}, {0x3C, '\''},
	{0x3D, '\''}, {0x3E, '♂'}, {0x3F, '♀'}, {0x51, '/'}, {0x54, ','}, {0x55, '×'},
	{0x79, '+'}, {0x7A, '%'}, {0x7B, '('}, {0x7C, ')'}, {0x85, '&'}, {0x68, ':'},
	{0x69, ';'}, {0x6A, '['}, {0x6B, ']'}, {0x2D, '<'}, {0x2E, '>'},
	{0x50, ' '}, {0xFF, 0},
}

var (
	byteToRune map[byte]rune
	runeToByte map[rune]byte
)

func init() {
	byteToRune = make(map[byte]rune, len(charTable))
	runeToByte = make(map[rune]byte, len(charTable))
	for _, p := range charTable {
		if _, ok := byteToRune[p.b]; !ok {
			byteToRune[p.b] = p.r
		}
		if _, ok := runeToByte[p.r]; !ok {
			runeToByte[p.r] = p.b
		}
	}
}

// Decode converts an encoded byte run into a string. Bytes past the logical
// end of the run (see stringEnd) are dropped, as are bytes with no mapping.
// The result is trimmed of surrounding whitespace.
func Decode(b []byte) string {
	var sb strings.Builder
	for _, c := range b[:stringEnd(b)] {
		r, ok := byteToRune[c]
		if ok && r != 0 {
			sb.WriteRune(r)
		}
	}
	return strings.TrimSpace(sb.String())
}

// stringEnd finds where meaningful text stops inside a fixed-length field.
// Saves rarely store clean terminators: a field may end in a run of 0xFF
// padding, or in a single 0xFF followed by leftover garbage from whatever
// occupied the memory before.
func stringEnd(b []byte) int {
	trailing := 0
	for i := len(b) - 1; i >= 0 && b[i] == PadByte; i-- {
		trailing++
	}
	if trailing > 2 {
		return len(b) - trailing
	}

	// A pad byte followed by low non-zero values (0x01-0x0F never encode
	// text) marks the start of garbage.
	for i, c := range b {
		if c != PadByte || i+1 >= len(b) {
			continue
		}
		for _, next := range b[i+1:] {
			if next > 0 && next < 0x10 {
				return i
			}
			if next != PadByte && next != 0 {
				break
			}
		}
	}

	return len(b)
}

// Encode converts s into a fixed-length encoded field of the given length.
// Unmappable runes become 0x00, the unused tail is 0xFF padding, and input
// beyond length is truncated.
func Encode(s string, length int) []byte {
	out := make([]byte, length)
	for i := range out {
		out[i] = PadByte
	}

	i := 0
	for _, r := range s {
		if i >= length {
			break
		}
		if b, ok := runeToByte[r]; ok {
			out[i] = b
		} else {
			out[i] = 0x00
		}
		i++
	}
	return out
}
