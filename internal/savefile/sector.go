package savefile

import "encoding/binary"

// Flash image geometry. These are fixed by the cartridge hardware, not by
// the game variant, so they are constants rather than profile fields.
const (
	// ImageSize is the minimum length of a save image in bytes (128 KiB).
	ImageSize = 131072
	// SectorSize is the size of one physical flash sector.
	SectorSize = 4096
	// SectorDataSize is the payload region of a sector, before the footer.
	SectorDataSize = 3968
	// SectorCount is the number of physical sectors in an image.
	SectorCount = 32

	// slotSectors is where the second save slot begins: slot 1 occupies
	// physical sectors [0,14), slot 2 occupies [14,32).
	slotSectors = 14

	footerSize = 12
)

// SectorInfo is the decoded footer of one physical sector plus the result
// of validating the sector against it.
type SectorInfo struct {
	ID        uint16
	Checksum  uint16
	Signature uint32
	Counter   uint32
	Index     int
	Valid     bool
}

// readSectorInfo decodes and validates the sector at the given physical
// index. A footer that would read past the image yields zeroed fields; a
// signature mismatch keeps the decoded fields but marks the sector invalid
// without recomputing the checksum.
func readSectorInfo(image []byte, index int, signature uint32) SectorInfo {
	info := SectorInfo{Index: index}
	if index < 0 {
		return info
	}

	footer := index*SectorSize + SectorSize - footerSize
	if footer+footerSize > len(image) {
		return info
	}

	info.ID = binary.LittleEndian.Uint16(image[footer:])
	info.Checksum = binary.LittleEndian.Uint16(image[footer+2:])
	info.Signature = binary.LittleEndian.Uint32(image[footer+4:])
	info.Counter = binary.LittleEndian.Uint32(image[footer+8:])

	if info.Signature != signature {
		return info
	}

	start := index * SectorSize
	info.Valid = sectorChecksum(image[start:start+SectorDataSize]) == info.Checksum
	return info
}

// sectorChecksum sums the payload as little-endian 32-bit words with
// wraparound, then folds the high half into the low half. A trailing
// partial word is ignored.
func sectorChecksum(data []byte) uint16 {
	var sum uint32
	for i := 0; i+4 <= len(data); i += 4 {
		sum += binary.LittleEndian.Uint32(data[i:])
	}
	return uint16(sum>>16) + uint16(sum)
}
