package chat

import "strings"

const (
	configurationGreetingKeyConstant = "greeting"
	configurationReplyKeyConstant    = "reply"
)

// Configuration holds the canned transcript strings.
type Configuration struct {
	Greeting string `mapstructure:"greeting"`
	Reply    string `mapstructure:"reply"`
}

// DefaultConfiguration returns the bundled greeting and reply.
func DefaultConfiguration() Configuration {
	return Configuration{Greeting: DefaultGreeting, Reply: DefaultReply}
}

// DefaultConfigurationValues produces Viper defaults rooted at rootKey.
func DefaultConfigurationValues(rootKey string) map[string]any {
	defaults := DefaultConfiguration()
	return map[string]any{
		rootKey + "." + configurationGreetingKeyConstant: defaults.Greeting,
		rootKey + "." + configurationReplyKeyConstant:    defaults.Reply,
	}
}

// Sanitize trims surrounding whitespace and restores the default reply when it is blank.
// A blank greeting is kept and starts an empty transcript.
func (configuration Configuration) Sanitize() Configuration {
	sanitized := Configuration{
		Greeting: strings.TrimSpace(configuration.Greeting),
		Reply:    strings.TrimSpace(configuration.Reply),
	}
	if len(sanitized.Reply) == 0 {
		sanitized.Reply = DefaultReply
	}
	return sanitized
}
