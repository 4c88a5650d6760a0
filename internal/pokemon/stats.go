package pokemon

// Stats holds the six battle stats in canonical order.
type Stats struct {
	HP        uint16
	Attack    uint16
	Defense   uint16
	Speed     uint16
	SpAttack  uint16
	SpDefense uint16
}

// Stats returns the stat values as stored in the record.
func (p *Pokemon) Stats() Stats {
	return Stats{
		HP:        p.MaxHP(),
		Attack:    p.Attack(),
		Defense:   p.Defense(),
		Speed:     p.Speed(),
		SpAttack:  p.SpAttack(),
		SpDefense: p.SpDefense(),
	}
}

// ComputedStats derives the six stats from the given base stats (ordered
// HP, Atk, Def, Spe, SpA, SpD), the record's level and its nature.
//
// The real IVs and EVs live in the encrypted substructure, which this
// package does not decrypt: every stat uses a fixed IV of 31 and EV of 0,
// so the result is an approximation of the in-game values.
func (p *Pokemon) ComputedStats(base [6]uint16) Stats {
	const (
		placeholderIV = 31
		placeholderEV = 0
	)
	level := p.Level()
	nature := p.Nature()

	return Stats{
		HP:        hpStat(base[0], placeholderIV, placeholderEV, level),
		Attack:    otherStat(base[1], placeholderIV, placeholderEV, level, NatureModifier(nature, 1)),
		Defense:   otherStat(base[2], placeholderIV, placeholderEV, level, NatureModifier(nature, 2)),
		Speed:     otherStat(base[3], placeholderIV, placeholderEV, level, NatureModifier(nature, 3)),
		SpAttack:  otherStat(base[4], placeholderIV, placeholderEV, level, NatureModifier(nature, 4)),
		SpDefense: otherStat(base[5], placeholderIV, placeholderEV, level, NatureModifier(nature, 5)),
	}
}

// hpStat computes HP with the integer-truncating gen-III formula.
func hpStat(base uint16, iv, ev, level uint8) uint16 {
	b, i, e, l := uint32(base), uint32(iv), uint32(ev), uint32(level)
	return uint16((2*b+i+e/4)*l/100 + l + 10)
}

// otherStat computes a non-HP stat; the nature modifier is applied last and
// the product truncated to an integer.
func otherStat(base uint16, iv, ev, level uint8, mod float64) uint16 {
	b, i, e, l := uint32(base), uint32(iv), uint32(ev), uint32(level)
	stat := (2*b+i+e/4)*l/100 + 5
	return uint16(float64(stat) * mod)
}
