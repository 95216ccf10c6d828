package utils

import "context"

type commandContextKey string

const configurationSourceContextKey = commandContextKey("configuration_source")

// CommandContextAccessor stores and retrieves values shared between the root command and its subcommands.
type CommandContextAccessor struct{}

// NewCommandContextAccessor constructs a CommandContextAccessor.
func NewCommandContextAccessor() CommandContextAccessor {
	return CommandContextAccessor{}
}

// WithConfigurationSource records the configuration file that produced the active settings.
// An empty source means only embedded defaults and environment overrides were applied.
func (accessor CommandContextAccessor) WithConfigurationSource(parentContext context.Context, configurationSource string) context.Context {
	if parentContext == nil {
		parentContext = context.Background()
	}
	return context.WithValue(parentContext, configurationSourceContextKey, configurationSource)
}

// ConfigurationSource returns the recorded configuration file, if any.
func (accessor CommandContextAccessor) ConfigurationSource(executionContext context.Context) (string, bool) {
	if executionContext == nil {
		return "", false
	}
	configurationSource, sourceAvailable := executionContext.Value(configurationSourceContextKey).(string)
	return configurationSource, sourceAvailable
}
