package tutor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/auralearn/internal/stress"
)

func TestSelect(t *testing.T) {
	testCases := []struct {
		name          string
		level         int
		expectedStyle Style
	}{
		{name: "Calm", level: 1, expectedStyle: StyleStructured},
		{name: "HighTierStillStructured", level: 7, expectedStyle: StyleStructured},
		{name: "AboveSeven", level: 8, expectedStyle: StyleBrief},
		{name: "Maximum", level: 10, expectedStyle: StyleBrief},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			instruction, selectError := Select(testCase.level)
			require.NoError(t, selectError)
			require.Equal(t, testCase.expectedStyle, instruction.Style)
			require.NotEmpty(t, instruction.Text)
		})
	}
}

func TestSelectRejectsOutOfRange(t *testing.T) {
	_, selectError := Select(0)
	require.ErrorIs(t, selectError, stress.ErrInvalidArgument)

	_, selectError = Select(11)
	require.ErrorIs(t, selectError, stress.ErrInvalidArgument)
}
