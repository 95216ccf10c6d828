package cli

import _ "embed"

// defaultConfigurationContent carries the aura baseline: logging, the starting stress level,
// the canned chat strings, bionic rendering options, and the bundled neuroplasticity lesson.
//
//go:embed default_config.yaml
var defaultConfigurationContent []byte

// EmbeddedDefaultConfiguration returns a copy of the bundled aura defaults with their format.
// The loader merges it underneath any config.yaml and AURA_ environment overrides.
func EmbeddedDefaultConfiguration() ([]byte, string) {
	return append([]byte(nil), defaultConfigurationContent...), configurationTypeConstant
}
