// Package cli constructs the aura command-line interface. It wires the Cobra
// command hierarchy to the viper configuration loader and the zap logger, and
// registers the classify, bionic, chat, tutor, dashboard, and schema commands.
package cli
