package types

import (
	"fmt"
	"strings"
)

// FilingStatus is one of the five Form 1040 filing statuses. The value set
// is closed: adding a status means adding a tagged value here plus the
// corresponding rule-set and bracket entries.
type FilingStatus int

const (
	Single FilingStatus = iota
	MarriedFilingJointly
	MarriedFilingSeparately
	HeadOfHousehold
	QualifyingSurvivingSpouse
)

// filingStatusNames are the wire/API identifiers for each status.
var filingStatusNames = map[FilingStatus]string{
	Single:                    "single",
	MarriedFilingJointly:      "married_filing_jointly",
	MarriedFilingSeparately:   "married_filing_separately",
	HeadOfHousehold:           "head_of_household",
	QualifyingSurvivingSpouse: "qualifying_surviving_spouse",
}

// AllFilingStatuses returns every status in declaration order.
func AllFilingStatuses() []FilingStatus {
	return []FilingStatus{
		Single,
		MarriedFilingJointly,
		MarriedFilingSeparately,
		HeadOfHousehold,
		QualifyingSurvivingSpouse,
	}
}

func (s FilingStatus) String() string {
	if name, ok := filingStatusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("filing_status(%d)", int(s))
}

// IsValid reports whether s is one of the five defined statuses.
func (s FilingStatus) IsValid() bool {
	_, ok := filingStatusNames[s]
	return ok
}

// IsMarried reports whether s is a married-type status, which selects the
// married per-box additional deduction rate.
func (s FilingStatus) IsMarried() bool {
	switch s {
	case MarriedFilingJointly, MarriedFilingSeparately, QualifyingSurvivingSpouse:
		return true
	default:
		return false
	}
}

// ParseFilingStatus maps an API identifier to a FilingStatus.
func ParseFilingStatus(name string) (FilingStatus, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for status, n := range filingStatusNames {
		if n == normalized {
			return status, nil
		}
	}
	return 0, fmt.Errorf("unknown filing status %q", name)
}

// TaxYear identifies the tax year a return or rule set applies to.
type TaxYear int

func (y TaxYear) String() string {
	return fmt.Sprintf("%d", int(y))
}
