package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/temirov/auralearn/cmd/cli"
	"github.com/temirov/auralearn/internal/chat"
	"github.com/temirov/auralearn/internal/dashboard"
	"github.com/temirov/auralearn/internal/stress"
)

const (
	testConfigurationFileNameConstant  = "config.yaml"
	testStressLevelEnvironmentConstant = "AURA_SESSION_STRESS_LEVEL"
	testChatReplyEnvironmentConstant   = "AURA_CHAT_REPLY"
)

func isolateConfigurationSearch(t *testing.T) {
	t.Helper()
	temporaryHome := t.TempDir()
	t.Setenv("HOME", temporaryHome)
	t.Setenv("XDG_CONFIG_HOME", temporaryHome)
	t.Chdir(t.TempDir())
}

func executeApplication(t *testing.T, standardInput string, arguments ...string) (*cli.Application, string, error) {
	t.Helper()

	application, creationError := cli.NewApplication()
	require.NoError(t, creationError)

	output := &bytes.Buffer{}
	rootCommand := application.RootCommand()
	rootCommand.SetOut(output)
	rootCommand.SetErr(&bytes.Buffer{})
	rootCommand.SetIn(strings.NewReader(standardInput))
	rootCommand.SetArgs(append([]string{"--log-level", "error"}, arguments...))

	executionError := application.Execute()
	return application, output.String(), executionError
}

func writeConfigurationFile(t *testing.T, content string) string {
	t.Helper()
	configurationPath := filepath.Join(t.TempDir(), testConfigurationFileNameConstant)
	require.NoError(t, os.WriteFile(configurationPath, []byte(content), 0o600))
	return configurationPath
}

func TestApplicationRegistersCommands(t *testing.T) {
	application, creationError := cli.NewApplication()
	require.NoError(t, creationError)

	registered := map[string]bool{}
	for _, command := range application.RootCommand().Commands() {
		registered[command.Name()] = true
	}
	for _, expectedName := range []string{"classify", "bionic", "chat", "tutor", "dashboard", "schema"} {
		require.True(t, registered[expectedName], expectedName)
	}
}

func TestApplicationEmbeddedDefaults(t *testing.T) {
	isolateConfigurationSearch(t)

	application, output, executionError := executeApplication(t, "", "classify")
	require.NoError(t, executionError)
	require.Contains(t, output, "level: 3")
	require.Contains(t, output, "tier: low")

	configuration := application.Configuration()
	require.Equal(t, stress.DefaultLevel, configuration.Session.StressLevel)
	require.False(t, configuration.Session.Bionic)
	require.Equal(t, chat.DefaultGreeting, configuration.Chat.Greeting)
	require.Equal(t, chat.DefaultReply, configuration.Chat.Reply)
	require.True(t, configuration.Bionic.Enabled)
	require.Equal(t, "terminal", configuration.Bionic.Format)
	require.Equal(t, 4, configuration.Bionic.Concurrency)
	require.Equal(t, dashboard.DefaultContent(), configuration.Dashboard.Content)
}

func TestApplicationConfigurationSources(t *testing.T) {
	testCases := []struct {
		name                 string
		configurationContent string
		environment          map[string]string
		arguments            []string
		expectedFragments    []string
	}{
		{
			name:                 "ConfigurationFile",
			configurationContent: "session:\n  stress_level: 8\n",
			arguments:            []string{"classify"},
			expectedFragments:    []string{"level: 8", "tier: high", "visible: (none)"},
		},
		{
			name:              "EnvironmentOverride",
			environment:       map[string]string{testStressLevelEnvironmentConstant: "5"},
			arguments:         []string{"classify"},
			expectedFragments: []string{"level: 5", "tier: medium"},
		},
		{
			name:                 "EnvironmentWinsOverFile",
			configurationContent: "session:\n  stress_level: 2\n",
			environment:          map[string]string{testStressLevelEnvironmentConstant: "9"},
			arguments:            []string{"classify"},
			expectedFragments:    []string{"level: 9"},
		},
		{
			name:                 "BionicFormatFromFile",
			configurationContent: "bionic:\n  format: markdown\n",
			arguments:            []string{"bionic"},
			expectedFragments:    []string{"**hel**lo **wor**ld"},
		},
		{
			name:              "ChatReplyFromEnvironment",
			environment:       map[string]string{testChatReplyEnvironmentConstant: "Take a breath."},
			arguments:         []string{"chat", "--transcript-format", "text"},
			expectedFragments: []string{"assistant: Take a breath."},
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			isolateConfigurationSearch(t)
			for environmentName, environmentValue := range testCase.environment {
				t.Setenv(environmentName, environmentValue)
			}

			arguments := testCase.arguments
			if len(testCase.configurationContent) > 0 {
				configurationPath := writeConfigurationFile(t, testCase.configurationContent)
				arguments = append([]string{"--config", configurationPath}, arguments...)
			}

			_, output, executionError := executeApplication(t, "hello world\n", arguments...)
			require.NoError(t, executionError)
			for _, expectedFragment := range testCase.expectedFragments {
				require.Contains(t, output, expectedFragment)
			}
		})
	}
}

func TestApplicationRejectsInvalidConfiguration(t *testing.T) {
	testCases := []struct {
		name          string
		arguments     []string
		expectedError string
	}{
		{
			name:          "UnknownLogLevel",
			arguments:     []string{"--log-level", "verbose", "tutor", "3"},
			expectedError: "unable to create logger",
		},
		{
			name:          "UnknownLogFormat",
			arguments:     []string{"--log-format", "xml", "tutor", "3"},
			expectedError: "unable to create logger",
		},
		{
			name:          "MissingConfigurationFile",
			arguments:     []string{"--config", filepath.Join(os.TempDir(), "aura-missing", "config.yaml"), "tutor", "3"},
			expectedError: "unable to load configuration",
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			isolateConfigurationSearch(t)
			_, _, executionError := executeApplication(t, "", testCase.arguments...)
			require.ErrorContains(t, executionError, testCase.expectedError)
		})
	}
}

func TestApplicationRejectsOutOfRangeConfiguredStressLevel(t *testing.T) {
	testCases := []struct {
		name             string
		configuredLevel  string
		commandArguments []string
	}{
		{name: "ClassifyZero", configuredLevel: "0", commandArguments: []string{"classify"}},
		{name: "ChatZero", configuredLevel: "0", commandArguments: []string{"chat"}},
		{name: "DashboardZero", configuredLevel: "0", commandArguments: []string{"dashboard"}},
		{name: "ChatAboveMaximum", configuredLevel: "11", commandArguments: []string{"chat"}},
		{name: "DashboardAboveMaximum", configuredLevel: "11", commandArguments: []string{"dashboard"}},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			isolateConfigurationSearch(t)
			t.Setenv(testStressLevelEnvironmentConstant, testCase.configuredLevel)

			_, output, executionError := executeApplication(t, "hello\n", testCase.commandArguments...)
			require.ErrorIs(t, executionError, stress.ErrInvalidArgument)
			require.NotContains(t, output, "Stress Level: 3/10")
			require.NotContains(t, output, "--- transcript ---")
		})
	}
}

func TestApplicationConfiguredZeroStressFromFileIsRejected(t *testing.T) {
	isolateConfigurationSearch(t)
	configurationPath := writeConfigurationFile(t, "session:\n  stress_level: 0\n")

	_, _, executionError := executeApplication(t, "", "--config", configurationPath, "dashboard")
	require.ErrorIs(t, executionError, stress.ErrInvalidArgument)
}

func TestEmbeddedDefaultConfigurationMatchesDefaults(t *testing.T) {
	content, configurationType := cli.EmbeddedDefaultConfiguration()
	require.Equal(t, "yaml", configurationType)

	var decoded struct {
		Session struct {
			StressLevel int  `yaml:"stress_level"`
			Bionic      bool `yaml:"bionic"`
		} `yaml:"session"`
		Chat struct {
			Greeting string `yaml:"greeting"`
			Reply    string `yaml:"reply"`
		} `yaml:"chat"`
		Dashboard struct {
			Content struct {
				Title        string   `yaml:"title"`
				Subtitle     string   `yaml:"subtitle"`
				Body         string   `yaml:"body"`
				KeyTakeaways []string `yaml:"key_takeaways"`
			} `yaml:"content"`
		} `yaml:"dashboard"`
	}
	require.NoError(t, yaml.Unmarshal(content, &decoded))

	defaults := cli.DefaultApplicationConfiguration()
	require.Equal(t, defaults.Session.StressLevel, decoded.Session.StressLevel)
	require.Equal(t, defaults.Session.Bionic, decoded.Session.Bionic)
	require.Equal(t, defaults.Chat.Greeting, decoded.Chat.Greeting)
	require.Equal(t, defaults.Chat.Reply, decoded.Chat.Reply)
	require.Equal(t, defaults.Dashboard.Content.Title, decoded.Dashboard.Content.Title)
	require.Equal(t, defaults.Dashboard.Content.Subtitle, decoded.Dashboard.Content.Subtitle)
	require.Equal(t, defaults.Dashboard.Content.Body, decoded.Dashboard.Content.Body)
	require.Equal(t, defaults.Dashboard.Content.KeyTakeaways, decoded.Dashboard.Content.KeyTakeaways)
}
