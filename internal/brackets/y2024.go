package brackets

import "github.com/gideontax/gideon-api/internal/types"

// Rev. Proc. 2023-34 tax year 2024 rate schedules.
func year2024() map[types.FilingStatus]schedule {
	return map[types.FilingStatus]schedule{
		types.Single: {
			{0, 10}, {11_600, 12}, {47_150, 22}, {100_525, 24},
			{191_950, 32}, {243_725, 35}, {609_350, 37},
		},
		types.MarriedFilingJointly: {
			{0, 10}, {23_200, 12}, {94_300, 22}, {201_050, 24},
			{383_900, 32}, {487_450, 35}, {731_200, 37},
		},
		types.QualifyingSurvivingSpouse: {
			{0, 10}, {23_200, 12}, {94_300, 22}, {201_050, 24},
			{383_900, 32}, {487_450, 35}, {731_200, 37},
		},
		types.MarriedFilingSeparately: {
			{0, 10}, {11_600, 12}, {47_150, 22}, {100_525, 24},
			{191_950, 32}, {243_725, 35}, {365_600, 37},
		},
		types.HeadOfHousehold: {
			{0, 10}, {16_550, 12}, {63_100, 22}, {100_500, 24},
			{191_950, 32}, {243_700, 35}, {609_350, 37},
		},
	}
}
