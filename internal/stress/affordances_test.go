package stress_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/auralearn/internal/stress"
)

func TestVisibleAffordances(t *testing.T) {
	testCases := []struct {
		name          string
		tier          stress.Tier
		expectedCount int
	}{
		{name: "LowShowsEverything", tier: stress.TierLow, expectedCount: len(stress.AllAffordances())},
		{name: "MediumShowsEverything", tier: stress.TierMedium, expectedCount: len(stress.AllAffordances())},
		{name: "HighHidesEverything", tier: stress.TierHigh, expectedCount: 0},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			visible := stress.VisibleAffordances(testCase.tier)
			require.Len(t, visible, testCase.expectedCount)
			for _, affordance := range stress.AllAffordances() {
				require.Equal(t, testCase.tier != stress.TierHigh, visible.Contains(affordance), string(affordance))
			}
		})
	}
}

func TestVisibleAffordancesSorted(t *testing.T) {
	sorted := stress.VisibleAffordances(stress.TierLow).Sorted()
	require.Equal(t, stress.AffordanceBionicToggle, sorted[0])
	require.Equal(t, stress.AffordanceSettings, sorted[len(sorted)-1])
}

func TestReadingTypographyHasTwoStates(t *testing.T) {
	focused := stress.ReadingTypography(stress.TierHigh)
	require.Equal(t, stress.Typography{FontSize: "1.125rem", LineHeight: "1.8"}, focused)

	for _, tier := range []stress.Tier{stress.TierLow, stress.TierMedium} {
		require.Equal(t, stress.Typography{FontSize: "1rem", LineHeight: "1.7"}, stress.ReadingTypography(tier))
	}
}
