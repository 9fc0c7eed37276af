package brackets

import "github.com/gideontax/gideon-api/internal/types"

// Rev. Proc. 2024-40 tax year 2025 rate schedules.
func year2025() map[types.FilingStatus]schedule {
	return map[types.FilingStatus]schedule{
		types.Single: {
			{0, 10}, {11_925, 12}, {48_475, 22}, {103_350, 24},
			{197_300, 32}, {250_525, 35}, {626_350, 37},
		},
		types.MarriedFilingJointly: {
			{0, 10}, {23_850, 12}, {96_950, 22}, {206_700, 24},
			{394_600, 32}, {501_050, 35}, {751_600, 37},
		},
		types.QualifyingSurvivingSpouse: {
			{0, 10}, {23_850, 12}, {96_950, 22}, {206_700, 24},
			{394_600, 32}, {501_050, 35}, {751_600, 37},
		},
		types.MarriedFilingSeparately: {
			{0, 10}, {11_925, 12}, {48_475, 22}, {103_350, 24},
			{197_300, 32}, {250_525, 35}, {375_800, 37},
		},
		types.HeadOfHousehold: {
			{0, 10}, {17_000, 12}, {64_850, 22}, {103_350, 24},
			{197_300, 32}, {250_500, 35}, {626_350, 37},
		},
	}
}
