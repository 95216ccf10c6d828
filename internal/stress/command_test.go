package stress

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

func TestCommandBuilds(t *testing.T) {
	builder := CommandBuilder{}
	command, buildError := builder.Build()
	require.NoError(t, buildError)
	require.IsType(t, &cobra.Command{}, command)
}

func TestCommandPrintsTextReport(t *testing.T) {
	testCases := []struct {
		name              string
		arguments         []string
		configuredLevel   int
		expectedFragments []string
	}{
		{
			name:      "HighTierHidesAffordances",
			arguments: []string{"7"},
			expectedFragments: []string{
				"tier: high",
				"status: High stress detected. UI simplified for focus.",
				"typography: font-size 1.125rem, line-height 1.8",
				"visible: (none)",
			},
		},
		{
			name:      "MediumTierListsAffordances",
			arguments: []string{"4"},
			expectedFragments: []string{
				"tier: medium",
				"visible: bionic_toggle, chapter_subtitle, chat_hint, key_takeaways, navigation, reading_controls, settings",
			},
		},
		{
			name:              "ConfiguredLevelUsedWithoutArgument",
			configuredLevel:   2,
			expectedFragments: []string{"level: 2", "tier: low"},
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			builder := CommandBuilder{
				LoggerProvider:      func() *zap.Logger { return zap.NewNop() },
				StressLevelProvider: func() int { return testCase.configuredLevel },
			}
			command, buildError := builder.Build()
			require.NoError(t, buildError)

			output := &bytes.Buffer{}
			command.SetOut(output)
			command.SetArgs(append([]string{}, testCase.arguments...))
			require.NoError(t, command.Execute())

			for _, fragment := range testCase.expectedFragments {
				require.Contains(t, output.String(), fragment)
			}
		})
	}
}

func TestCommandPrintsYAMLReport(t *testing.T) {
	builder := CommandBuilder{}
	command, buildError := builder.Build()
	require.NoError(t, buildError)

	output := &bytes.Buffer{}
	command.SetOut(output)
	command.SetArgs([]string{"6", "--format", "yaml"})
	require.NoError(t, command.Execute())

	var decoded struct {
		Level   int      `yaml:"level"`
		Tier    string   `yaml:"tier"`
		Visible []string `yaml:"visible"`
	}
	require.NoError(t, yaml.Unmarshal(output.Bytes(), &decoded))
	require.Equal(t, 6, decoded.Level)
	require.Equal(t, "medium", decoded.Tier)
	require.Len(t, decoded.Visible, len(AllAffordances()))
}

func TestCommandRejectsInvalidLevels(t *testing.T) {
	for _, argument := range []string{"0", "11", "seven"} {
		builder := CommandBuilder{}
		command, buildError := builder.Build()
		require.NoError(t, buildError)
		command.SetOut(&bytes.Buffer{})
		command.SetErr(&bytes.Buffer{})
		command.SetArgs([]string{argument})
		require.ErrorIs(t, command.Execute(), ErrInvalidArgument)
	}
}
