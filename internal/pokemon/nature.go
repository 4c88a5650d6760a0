package pokemon

// natures in canonical order: index = personality mod 25. The order matters;
// it is how the games derive the nature, not an alphabetical list.
var natures = [25]string{
	"Hardy", "Lonely", "Brave", "Adamant", "Naughty",
	"Bold", "Docile", "Relaxed", "Impish", "Lax",
	"Timid", "Hasty", "Serious", "Jolly", "Naive",
	"Modest", "Mild", "Quiet", "Bashful", "Rash",
	"Calm", "Gentle", "Sassy", "Careful", "Quirky",
}

// natureEffects maps a nature to its boosted and lowered stat indices
// (1=Atk, 2=Def, 3=Spe, 4=SpA, 5=SpD). Neutral natures are absent.
var natureEffects = map[string][2]int{
	"Lonely": {1, 2}, "Brave": {1, 3}, "Adamant": {1, 4}, "Naughty": {1, 5},
	"Bold": {2, 1}, "Relaxed": {2, 3}, "Impish": {2, 4}, "Lax": {2, 5},
	"Timid": {3, 1}, "Hasty": {3, 2}, "Jolly": {3, 4}, "Naive": {3, 5},
	"Modest": {4, 1}, "Mild": {4, 2}, "Quiet": {4, 3}, "Rash": {4, 5},
	"Calm": {5, 1}, "Gentle": {5, 2}, "Sassy": {5, 3}, "Careful": {5, 4},
}

// NatureFor returns the nature name derived from a personality value.
func NatureFor(personality uint32) string {
	return natures[personality%25]
}

// NatureModifier returns the multiplier a nature applies to the stat at
// statIndex: 1.1 boosted, 0.9 lowered, 1.0 otherwise.
func NatureModifier(nature string, statIndex int) float64 {
	eff, ok := natureEffects[nature]
	if !ok {
		return 1.0
	}
	switch statIndex {
	case eff[0]:
		return 1.1
	case eff[1]:
		return 0.9
	default:
		return 1.0
	}
}
