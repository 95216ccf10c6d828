package cli

import (
	"context"
	"errors"
	"fmt"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/temirov/auralearn/internal/bionic"
	"github.com/temirov/auralearn/internal/chat"
	"github.com/temirov/auralearn/internal/dashboard"
	"github.com/temirov/auralearn/internal/schema"
	"github.com/temirov/auralearn/internal/session"
	"github.com/temirov/auralearn/internal/stress"
	"github.com/temirov/auralearn/internal/tutor"
	"github.com/temirov/auralearn/internal/utils"
	pathutils "github.com/temirov/auralearn/internal/utils/path"
)

const (
	applicationNameConstant                  = "aura"
	applicationDirectoryNameConstant         = "aura"
	applicationShortDescriptionConstant      = "Stress-adaptive learning companion"
	applicationLongDescriptionConstant       = "aura adapts a reading dashboard to a reported stress level, renders text with bionic reading emphasis, and runs a scripted companion chat."
	configFileFlagNameConstant               = "config"
	configFileFlagUsageConstant              = "Optional path to a configuration file (YAML or JSON)."
	logLevelFlagNameConstant                 = "log-level"
	logLevelFlagUsageConstant                = "Override the configured log level."
	logFormatFlagNameConstant                = "log-format"
	logFormatFlagUsageConstant               = "Override the configured log format (structured or console)."
	commonConfigurationKeyConstant           = "common"
	commonLogLevelConfigKeyConstant          = commonConfigurationKeyConstant + ".log_level"
	commonLogFormatConfigKeyConstant         = commonConfigurationKeyConstant + ".log_format"
	sessionConfigurationKeyConstant          = "session"
	chatConfigurationKeyConstant             = "chat"
	bionicConfigurationKeyConstant           = "bionic"
	environmentPrefixConstant                = "AURA"
	configurationNameConstant                = "config"
	configurationTypeConstant                = "yaml"
	configurationInitializedMessageConstant  = "configuration initialized"
	configurationLogLevelFieldConstant       = "log_level"
	configurationLogFormatFieldConstant      = "log_format"
	configurationFileFieldConstant           = "config_file"
	configurationLoadErrorTemplateConstant   = "unable to load configuration: %w"
	loggerCreationErrorTemplateConstant      = "unable to create logger: %w"
	loggerSyncErrorTemplateConstant          = "unable to flush logger: %w"
	commandRegistrationErrorTemplateConstant = "unable to build %s command: %w"
)

// ApplicationConfiguration describes the persisted configuration for the CLI entrypoint.
type ApplicationConfiguration struct {
	Common    ApplicationCommonConfiguration `mapstructure:"common"`
	Session   session.Configuration          `mapstructure:"session"`
	Chat      chat.Configuration             `mapstructure:"chat"`
	Bionic    bionic.CommandConfiguration    `mapstructure:"bionic"`
	Dashboard dashboard.Configuration        `mapstructure:"dashboard"`
}

// ApplicationCommonConfiguration stores logging configuration shared across commands.
type ApplicationCommonConfiguration struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

type commandBuilder interface {
	Build() (*cobra.Command, error)
}

// Application wires the Cobra root command, configuration loader, and structured logger.
type Application struct {
	rootCommand            *cobra.Command
	configurationLoader    *utils.ConfigurationLoader
	loggerFactory          *utils.LoggerFactory
	logger                 *zap.Logger
	configuration          ApplicationConfiguration
	configurationMetadata  utils.LoadedConfiguration
	configurationFilePath  string
	logLevelFlagValue      string
	logFormatFlagValue     string
	commandContextAccessor utils.CommandContextAccessor
}

// NewApplication assembles a fully wired CLI application instance.
func NewApplication() (*Application, error) {
	configurationLoader := utils.NewConfigurationLoader(
		configurationNameConstant,
		configurationTypeConstant,
		environmentPrefixConstant,
		utils.DefaultSearchPaths(applicationDirectoryNameConstant),
	)
	configurationLoader.SetEmbeddedConfiguration(EmbeddedDefaultConfiguration())

	application := &Application{
		configurationLoader:    configurationLoader,
		loggerFactory:          utils.NewLoggerFactory(),
		logger:                 zap.NewNop(),
		configuration:          DefaultApplicationConfiguration(),
		commandContextAccessor: utils.NewCommandContextAccessor(),
	}

	cobraCommand := &cobra.Command{
		Use:           applicationNameConstant,
		Short:         applicationShortDescriptionConstant,
		Long:          applicationLongDescriptionConstant,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(command *cobra.Command, arguments []string) error {
			return application.initializeConfiguration(command)
		},
		RunE: func(command *cobra.Command, arguments []string) error {
			return command.Help()
		},
	}

	cobraCommand.SetContext(context.Background())
	cobraCommand.PersistentFlags().StringVar(&application.configurationFilePath, configFileFlagNameConstant, "", configFileFlagUsageConstant)
	cobraCommand.PersistentFlags().StringVar(&application.logLevelFlagValue, logLevelFlagNameConstant, "", logLevelFlagUsageConstant)
	cobraCommand.PersistentFlags().StringVar(&application.logFormatFlagValue, logFormatFlagNameConstant, "", logFormatFlagUsageConstant)

	loggerProvider := func() *zap.Logger {
		return application.logger
	}

	builders := []commandBuilder{
		&stress.CommandBuilder{
			LoggerProvider: stress.LoggerProvider(loggerProvider),
			StressLevelProvider: func() int {
				return application.configuration.Session.StressLevel
			},
		},
		&bionic.CommandBuilder{
			LoggerProvider: bionic.LoggerProvider(loggerProvider),
			ConfigurationProvider: func() bionic.CommandConfiguration {
				return application.configuration.Bionic
			},
		},
		&session.CommandBuilder{
			LoggerProvider: session.LoggerProvider(loggerProvider),
			ConfigurationProvider: func() session.Configuration {
				return application.configuration.Session
			},
			ChatProvider: func() chat.Configuration {
				return application.configuration.Chat
			},
		},
		&tutor.CommandBuilder{
			LoggerProvider: tutor.LoggerProvider(loggerProvider),
		},
		&dashboard.CommandBuilder{
			LoggerProvider: dashboard.LoggerProvider(loggerProvider),
			SessionProvider: func() session.Configuration {
				return application.configuration.Session
			},
			ChatProvider: func() chat.Configuration {
				return application.configuration.Chat
			},
			ConfigurationProvider: func() dashboard.Configuration {
				return application.configuration.Dashboard
			},
		},
		&schema.CommandBuilder{},
	}

	for _, builder := range builders {
		subcommand, buildError := builder.Build()
		if buildError != nil {
			return nil, fmt.Errorf(commandRegistrationErrorTemplateConstant, fmt.Sprintf("%T", builder), buildError)
		}
		cobraCommand.AddCommand(subcommand)
	}

	application.rootCommand = cobraCommand

	return application, nil
}

// DefaultApplicationConfiguration returns the configuration used before any source is loaded.
func DefaultApplicationConfiguration() ApplicationConfiguration {
	return ApplicationConfiguration{
		Common: ApplicationCommonConfiguration{
			LogLevel:  string(utils.LogLevelInfo),
			LogFormat: string(utils.LogFormatStructured),
		},
		Session:   session.DefaultConfiguration(),
		Chat:      chat.DefaultConfiguration(),
		Bionic:    bionic.DefaultCommandConfiguration(),
		Dashboard: dashboard.Configuration{Content: dashboard.DefaultContent()},
	}
}

// RootCommand exposes the configured root command.
func (application *Application) RootCommand() *cobra.Command {
	return application.rootCommand
}

// Configuration returns the most recently loaded configuration.
func (application *Application) Configuration() ApplicationConfiguration {
	return application.configuration
}

// Execute runs the configured Cobra command hierarchy and ensures logger flushing.
func (application *Application) Execute() error {
	executionError := application.rootCommand.Execute()
	if syncError := application.flushLogger(); syncError != nil {
		return fmt.Errorf(loggerSyncErrorTemplateConstant, syncError)
	}
	return executionError
}

// Execute builds a fresh application instance and executes the root command hierarchy.
func Execute() error {
	application, creationError := NewApplication()
	if creationError != nil {
		return creationError
	}
	return application.Execute()
}

func (application *Application) initializeConfiguration(command *cobra.Command) error {
	defaultValues := map[string]any{
		commonLogLevelConfigKeyConstant:  string(utils.LogLevelInfo),
		commonLogFormatConfigKeyConstant: string(utils.LogFormatStructured),
	}
	defaultSources := []map[string]any{
		session.DefaultConfigurationValues(sessionConfigurationKeyConstant),
		chat.DefaultConfigurationValues(chatConfigurationKeyConstant),
		bionic.DefaultConfigurationValues(bionicConfigurationKeyConstant),
	}
	for _, defaultSource := range defaultSources {
		for configurationKey, configurationValue := range defaultSource {
			defaultValues[configurationKey] = configurationValue
		}
	}

	var loadedValues ApplicationConfiguration
	loadedConfiguration, loadError := application.configurationLoader.LoadConfiguration(pathutils.NewHomeExpander().Expand(application.configurationFilePath), defaultValues, &loadedValues)
	if loadError != nil {
		return fmt.Errorf(configurationLoadErrorTemplateConstant, loadError)
	}

	loadedValues.Chat = loadedValues.Chat.Sanitize()
	loadedValues.Bionic = loadedValues.Bionic.Sanitize()
	application.configuration = loadedValues
	application.configurationMetadata = loadedConfiguration

	if application.persistentFlagChanged(command, logLevelFlagNameConstant) {
		application.configuration.Common.LogLevel = application.logLevelFlagValue
	}

	if application.persistentFlagChanged(command, logFormatFlagNameConstant) {
		application.configuration.Common.LogFormat = application.logFormatFlagValue
	}

	logger, loggerCreationError := application.loggerFactory.CreateLogger(
		utils.LogLevel(application.configuration.Common.LogLevel),
		utils.LogFormat(application.configuration.Common.LogFormat),
	)
	if loggerCreationError != nil {
		return fmt.Errorf(loggerCreationErrorTemplateConstant, loggerCreationError)
	}

	application.logger = logger

	application.logger.Debug(
		configurationInitializedMessageConstant,
		zap.String(configurationLogLevelFieldConstant, application.configuration.Common.LogLevel),
		zap.String(configurationLogFormatFieldConstant, application.configuration.Common.LogFormat),
		zap.String(configurationFileFieldConstant, application.configurationMetadata.ConfigFileUsed),
	)

	if command != nil {
		updatedContext := application.commandContextAccessor.WithConfigurationSource(
			command.Context(),
			application.configurationMetadata.ConfigFileUsed,
		)
		command.SetContext(updatedContext)
	}

	return nil
}

func (application *Application) flushLogger() error {
	if application.logger == nil {
		return nil
	}

	syncError := application.logger.Sync()
	switch {
	case syncError == nil:
		return nil
	case errors.Is(syncError, syscall.ENOTSUP):
		return nil
	case errors.Is(syncError, syscall.EINVAL):
		return nil
	default:
		return syncError
	}
}

func (application *Application) persistentFlagChanged(command *cobra.Command, flagName string) bool {
	if command == nil {
		return false
	}

	flagSetsToInspect := []*pflag.FlagSet{
		command.PersistentFlags(),
		command.InheritedFlags(),
	}

	if rootCommand := command.Root(); rootCommand != nil {
		flagSetsToInspect = append(flagSetsToInspect, rootCommand.PersistentFlags())
	}

	for _, flagSet := range flagSetsToInspect {
		if flagSet != nil && flagSet.Changed(flagName) {
			return true
		}
	}

	return false
}
