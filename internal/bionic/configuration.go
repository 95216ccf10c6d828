package bionic

import "strings"

const (
	configurationFormatKeyConstant      = "format"
	configurationConcurrencyKeyConstant = "concurrency"
	configurationEnabledKeyConstant     = "enabled"
)

// CommandConfiguration captures configuration values for the bionic command.
type CommandConfiguration struct {
	Enabled     bool   `mapstructure:"enabled"`
	Format      string `mapstructure:"format"`
	Concurrency int    `mapstructure:"concurrency"`
}

// DefaultCommandConfiguration provides baseline configuration values for the bionic command.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		Enabled:     true,
		Format:      string(FormatTerminal),
		Concurrency: defaultConcurrencyLimitConstant,
	}
}

// DefaultConfigurationValues produces Viper defaults rooted at rootKey.
func DefaultConfigurationValues(rootKey string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		rootKey + "." + configurationEnabledKeyConstant:     defaults.Enabled,
		rootKey + "." + configurationFormatKeyConstant:      defaults.Format,
		rootKey + "." + configurationConcurrencyKeyConstant: defaults.Concurrency,
	}
}

// Sanitize trims values and restores defaults for unusable ones.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	sanitized := configuration
	sanitized.Format = strings.ToLower(strings.TrimSpace(configuration.Format))
	if _, parseError := ParseFormat(sanitized.Format); parseError != nil {
		sanitized.Format = string(FormatTerminal)
	}
	if sanitized.Concurrency <= 0 {
		sanitized.Concurrency = defaultConcurrencyLimitConstant
	}
	return sanitized
}
