package dashboard_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/auralearn/internal/chat"
	"github.com/temirov/auralearn/internal/dashboard"
	"github.com/temirov/auralearn/internal/session"
)

func TestRenderShowsAffordancesByTier(t *testing.T) {
	optionalFragments := []string{
		"[Home] [Library] [Progress]",
		"[Settings]",
		"[Bionic Reading]",
		"Chapter 3: How Learning Changes Your Brain",
		"Key Takeaways:",
		"[Previous] [Continue Reading] [Next]",
		"Press Enter to send",
	}

	testCases := []struct {
		name            string
		stressLevel     int
		expectOptional  bool
		expectedStatus  string
		expectedMetrics string
	}{
		{name: "Low", stressLevel: 2, expectOptional: true, expectedStatus: "Low stress. All features available.", expectedMetrics: "font-size 1rem, line-height 1.7"},
		{name: "Medium", stressLevel: 5, expectOptional: true, expectedStatus: "Moderate stress.", expectedMetrics: "font-size 1rem, line-height 1.7"},
		{name: "High", stressLevel: 8, expectOptional: false, expectedStatus: "High stress detected.", expectedMetrics: "font-size 1.125rem, line-height 1.8"},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			state, creationError := session.New(session.Options{StressLevel: testCase.stressLevel, Greeting: chat.DefaultGreeting})
			require.NoError(t, creationError)

			rendered, renderError := dashboard.NewRenderer(&bytes.Buffer{}).Render(state, dashboard.Content{})
			require.NoError(t, renderError)

			require.Contains(t, rendered, "Understanding Neuroplasticity")
			require.Contains(t, rendered, testCase.expectedStatus)
			require.Contains(t, rendered, testCase.expectedMetrics)
			require.Contains(t, rendered, chat.DefaultGreeting)
			for _, fragment := range optionalFragments {
				if testCase.expectOptional {
					require.Contains(t, rendered, fragment)
				} else {
					require.NotContains(t, rendered, fragment)
				}
			}
		})
	}
}

func TestRenderUsesCustomContent(t *testing.T) {
	state, creationError := session.New(session.Options{StressLevel: 1})
	require.NoError(t, creationError)
	state.Send("question")

	rendered, renderError := dashboard.NewRenderer(&bytes.Buffer{}).Render(state, dashboard.Content{
		Title:        "Memory",
		Body:         "Sleep consolidates memory.",
		KeyTakeaways: []string{"Rest matters"},
	})
	require.NoError(t, renderError)
	require.Contains(t, rendered, "Memory")
	require.Contains(t, rendered, "Sleep consolidates memory.")
	require.Contains(t, rendered, "Rest matters")
	require.Contains(t, rendered, "you: question")
	require.Contains(t, rendered, "aura: "+chat.DefaultReply)
}
