package stress

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	flagutils "github.com/temirov/auralearn/internal/utils/flags"
)

const (
	commandUseNameConstant            = "classify"
	commandUsageTemplateConstant      = commandUseNameConstant + " [level]"
	commandExampleTemplateConstant    = "aura classify 7 --format yaml"
	commandShortDescriptionConstant   = "Classify a stress level into a UI tier"
	commandLongDescriptionConstant    = "classify maps a stress level between 1 and 10 onto the low, medium, or high tier and lists the interface affordances that remain visible. Without an argument the configured session stress level is used."
	formatFlagNameConstant            = "format"
	formatFlagDescriptionConstant     = "Report format."
	reportFormatTextConstant          = "text"
	reportFormatYAMLConstant          = "yaml"
	levelParseErrorTemplateConstant   = "stress level %q is not an integer: %w"
	reportEncodeErrorTemplateConstant = "unable to encode classification report: %w"
	textReportTemplateConstant        = "level: %d\ntier: %s\nstatus: %s\ntypography: font-size %s, line-height %s\nvisible: %s\n"
	affordanceSeparatorConstant       = ", "
	noAffordancesPlaceholderConstant  = "(none)"
	classificationLogMessageConstant  = "stress level classified"
	logFieldLevelConstant             = "stress_level"
	logFieldTierConstant              = "tier"
	logFieldVisibleCountConstant      = "visible_affordances"
)

// LoggerProvider yields a zap logger instance.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the classify command.
type CommandBuilder struct {
	LoggerProvider      LoggerProvider
	StressLevelProvider func() int
}

// Report is the classification written by the classify command.
type Report struct {
	Level      int            `yaml:"level"`
	Tier       Tier           `yaml:"tier"`
	Status     string         `yaml:"status"`
	Typography Typography     `yaml:"typography"`
	Visible    []AffordanceID `yaml:"visible"`
}

// BuildReport classifies level and gathers everything the presentation layer derives from it.
func BuildReport(level int) (Report, error) {
	tier, classifyError := Classify(level)
	if classifyError != nil {
		return Report{}, classifyError
	}
	return Report{
		Level:      level,
		Tier:       tier,
		Status:     StatusMessage(tier),
		Typography: ReadingTypography(tier),
		Visible:    VisibleAffordances(tier).Sorted(),
	}, nil
}

// Build constructs the classify command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	var reportFormat string
	command := &cobra.Command{
		Use:     commandUsageTemplateConstant,
		Short:   commandShortDescriptionConstant,
		Long:    commandLongDescriptionConstant,
		Args:    cobra.MaximumNArgs(1),
		Example: commandExampleTemplateConstant,
		RunE: func(command *cobra.Command, arguments []string) error {
			return builder.run(command, arguments, reportFormat)
		},
	}

	flagutils.AddChoiceFlag(command.Flags(), &reportFormat, formatFlagNameConstant, reportFormatTextConstant, []string{reportFormatTextConstant, reportFormatYAMLConstant}, formatFlagDescriptionConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string, reportFormat string) error {
	level, levelError := builder.resolveLevel(arguments)
	if levelError != nil {
		return levelError
	}

	report, reportError := BuildReport(level)
	if reportError != nil {
		return reportError
	}

	builder.resolveLogger().Info(
		classificationLogMessageConstant,
		zap.Int(logFieldLevelConstant, report.Level),
		zap.Stringer(logFieldTierConstant, report.Tier),
		zap.Int(logFieldVisibleCountConstant, len(report.Visible)),
	)

	if reportFormat == reportFormatYAMLConstant {
		encoder := yaml.NewEncoder(command.OutOrStdout())
		if encodeError := encoder.Encode(report); encodeError != nil {
			return fmt.Errorf(reportEncodeErrorTemplateConstant, encodeError)
		}
		return encoder.Close()
	}

	_, writeError := fmt.Fprintf(
		command.OutOrStdout(),
		textReportTemplateConstant,
		report.Level,
		report.Tier,
		report.Status,
		report.Typography.FontSize,
		report.Typography.LineHeight,
		formatAffordances(report.Visible),
	)
	return writeError
}

func (builder *CommandBuilder) resolveLevel(arguments []string) (int, error) {
	if len(arguments) == 0 {
		if builder.StressLevelProvider == nil {
			return DefaultLevel, nil
		}
		return builder.StressLevelProvider(), nil
	}
	return ParseLevel(arguments[0])
}

// ParseLevel parses a decimal stress level, reporting ErrInvalidArgument for non-integers and out-of-range values.
func ParseLevel(rawLevel string) (int, error) {
	level, parseError := strconv.Atoi(strings.TrimSpace(rawLevel))
	if parseError != nil {
		return 0, fmt.Errorf(levelParseErrorTemplateConstant, rawLevel, ErrInvalidArgument)
	}
	if validationError := ValidateLevel(level); validationError != nil {
		return 0, validationError
	}
	return level, nil
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func formatAffordances(affordances []AffordanceID) string {
	if len(affordances) == 0 {
		return noAffordancesPlaceholderConstant
	}
	names := make([]string, 0, len(affordances))
	for _, affordance := range affordances {
		names = append(names, string(affordance))
	}
	return strings.Join(names, affordanceSeparatorConstant)
}
