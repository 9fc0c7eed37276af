package types

// Filer describes a taxpayer or spouse for purposes of the additional
// standard deduction and other age/blindness rules.
type Filer struct {
	Is65OrOlder bool `json:"is_65_or_older"`
	IsBlind     bool `json:"is_blind"`
}

// CheckedBoxes returns the number of boxes (0, 1, or 2) that qualify this
// filer for the additional standard deduction.
func (f Filer) CheckedBoxes() int64 {
	var boxes int64
	if f.Is65OrOlder {
		boxes++
	}
	if f.IsBlind {
		boxes++
	}
	return boxes
}
