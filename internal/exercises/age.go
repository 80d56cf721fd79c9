package exercises

// AgeGroup is the label assigned to an age.
type AgeGroup string

const (
	Minor  AgeGroup = "Minor"
	Adult  AgeGroup = "Adult"
	Senior AgeGroup = "Senior"
)

// ClassifyAge maps an age to its group. Ages are not validated: negative
// values fall into Minor and anything failing both lower checks, NaN
// included, is Senior.
func ClassifyAge(age float64) AgeGroup {
	switch {
	case age < 18:
		return Minor
	case age >= 18 && age <= 64:
		return Adult
	default:
		return Senior
	}
}
