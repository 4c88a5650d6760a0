package savefile

// The game rotates writes across the two slots; each sector's footer counter
// increments per save, so the slot with the greater summed counter holds the
// most recent complete write. Within a slot, logical sector ids move between
// physical positions from save to save, hence the id -> physical index table.

// selectActiveSlot picks the slot with the strictly greater counter sum over
// its validated sectors. Ties, including two dead slots, go to slot 1.
func (p *Parser) selectActiveSlot() {
	switch p.forcedSlot {
	case 1:
		p.slotStart = 0
		return
	case 2:
		p.slotStart = slotSectors
		return
	}

	slot1 := p.counterSum(0, slotSectors)
	slot2 := p.counterSum(slotSectors, SectorCount)
	if slot2 > slot1 {
		p.slotStart = slotSectors
	} else {
		p.slotStart = 0
	}
}

func (p *Parser) counterSum(lo, hi int) uint32 {
	var sum uint32
	for i := lo; i < hi; i++ {
		if info := readSectorInfo(p.data, i, p.prof.Signature); info.Valid {
			sum += info.Counter
		}
	}
	return sum
}

// buildSectorTable maps logical sector ids to physical indexes within the
// active slot. Iteration is in ascending physical order, so of two valid
// sectors claiming the same id the later physical position wins.
func (p *Parser) buildSectorTable() {
	p.table = make(map[uint16]int)

	lo, hi := 0, slotSectors
	if p.slotStart != 0 {
		lo, hi = slotSectors, SectorCount
	}
	for i := lo; i < hi; i++ {
		if info := readSectorInfo(p.data, i, p.prof.Signature); info.Valid {
			p.table[info.ID] = i
		}
	}
}

// extractBlock2 returns a copy of the data region of logical sector 0,
// which holds the trainer data. Unlike block 1 there is no way to degrade
// here: without sector 0 there is nothing to decode.
func (p *Parser) extractBlock2() ([]byte, error) {
	idx, ok := p.table[0]
	if !ok {
		return nil, ErrMissingBlock
	}
	out := make([]byte, SectorDataSize)
	copy(out, p.data[idx*SectorSize:])
	return out, nil
}

// extractBlock1 concatenates the data regions of logical sectors 1..4 into
// a fixed-size buffer. Missing sectors leave their segment zeroed; a
// partially corrupt save comes back partially zeroed, never short.
func (p *Parser) extractBlock1() []byte {
	out := make([]byte, SectorDataSize*4)
	for id := uint16(1); id <= 4; id++ {
		idx, ok := p.table[id]
		if !ok {
			continue
		}
		seg := int(id-1) * SectorDataSize
		copy(out[seg:seg+SectorDataSize], p.data[idx*SectorSize:])
	}
	return out
}
