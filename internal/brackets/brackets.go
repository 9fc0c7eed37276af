// Package brackets implements the progressive federal tax bracket lookup.
// ComputeTax is deterministic and pure: the same year, status, and taxable
// amount always produce the same whole-dollar tax.
package brackets

import (
	"fmt"

	"github.com/gideontax/gideon-api/internal/types"
)

// TaxError reports an input the bracket tables cannot serve.
type TaxError struct {
	Reason string
}

func (e *TaxError) Error() string {
	return "tax bracket lookup: " + e.Reason
}

// bracket is one marginal band: income above Lower (whole dollars) up to the
// next band's Lower is taxed at RatePercent.
type bracket struct {
	Lower       int64
	RatePercent int64
}

// schedule is the full set of marginal bands for one status, ordered by
// ascending Lower with the first band starting at zero.
type schedule []bracket

// tables maps year then status to its schedule.
var tables = map[types.TaxYear]map[types.FilingStatus]schedule{
	2024: year2024(),
	2025: year2025(),
}

// SupportedYears lists the years the bracket tables cover, for diagnostics.
func SupportedYears() []types.TaxYear {
	return []types.TaxYear{2024, 2025}
}

// ComputeTax returns the whole-dollar tax on taxableWholeDollars for the
// given year and filing status. The marginal tax is computed exactly in
// cents (integer percent rates on whole-dollar bands stay exact) and then
// rounded to whole dollars using the IRS whole-dollar method.
func ComputeTax(year types.TaxYear, status types.FilingStatus, taxableWholeDollars int64) (int64, error) {
	if taxableWholeDollars < 0 {
		return 0, &TaxError{Reason: fmt.Sprintf("negative taxable income %d", taxableWholeDollars)}
	}

	byStatus, ok := tables[year]
	if !ok {
		return 0, &TaxError{Reason: fmt.Sprintf("unsupported tax year %s", year)}
	}
	sched, ok := byStatus[status]
	if !ok {
		return 0, &TaxError{Reason: fmt.Sprintf("unsupported filing status %s", status)}
	}

	// dollars * percent = cents, so the accumulation is exact.
	var taxCents int64
	for i, b := range sched {
		if taxableWholeDollars <= b.Lower {
			break
		}
		upper := taxableWholeDollars
		if i+1 < len(sched) && sched[i+1].Lower < upper {
			upper = sched[i+1].Lower
		}
		taxCents += (upper - b.Lower) * b.RatePercent
	}

	return types.FromCents(taxCents).IRSRound().Cents() / 100, nil
}
