// Package utils exposes helpers shared by the aura commands.
//
// ConfigurationLoader layers embedded defaults, an optional configuration
// file, and AURA_ environment overrides through Viper. LoggerFactory builds
// zap loggers in structured or console encodings.
package utils
