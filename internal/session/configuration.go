package session

import "github.com/temirov/auralearn/internal/stress"

const (
	configurationStressLevelKeyConstant = "stress_level"
	configurationBionicKeyConstant      = "bionic"
)

// Configuration holds the initial session values.
type Configuration struct {
	StressLevel int  `mapstructure:"stress_level"`
	Bionic      bool `mapstructure:"bionic"`
}

// DefaultConfiguration starts at the default stress level with bionic reading off.
func DefaultConfiguration() Configuration {
	return Configuration{StressLevel: stress.DefaultLevel, Bionic: false}
}

// DefaultConfigurationValues produces Viper defaults rooted at rootKey.
func DefaultConfigurationValues(rootKey string) map[string]any {
	defaults := DefaultConfiguration()
	return map[string]any{
		rootKey + "." + configurationStressLevelKeyConstant: defaults.StressLevel,
		rootKey + "." + configurationBionicKeyConstant:      defaults.Bionic,
	}
}
