package tutor

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/auralearn/internal/stress"
)

const (
	commandUseNameConstant            = "tutor"
	commandUsageTemplateConstant      = commandUseNameConstant + " <level>"
	commandExampleTemplateConstant    = "aura tutor 8"
	commandShortDescriptionConstant   = "Show the tutoring instruction for a stress level"
	commandLongDescriptionConstant    = "tutor prints the system instruction an AI tutor would receive for the given stress level: brief and scannable above 7, structured and detailed otherwise."
	instructionHeaderTemplateConstant = "style: %s\n\n%s\n"
	instructionLogMessageConstant     = "tutoring instruction selected"
	logFieldLevelConstant             = "stress_level"
	logFieldStyleConstant             = "style"
)

// LoggerProvider yields a zap logger instance.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the tutor command.
type CommandBuilder struct {
	LoggerProvider LoggerProvider
}

// Build constructs the tutor command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	return &cobra.Command{
		Use:     commandUsageTemplateConstant,
		Short:   commandShortDescriptionConstant,
		Long:    commandLongDescriptionConstant,
		Args:    cobra.ExactArgs(1),
		Example: commandExampleTemplateConstant,
		RunE:    builder.run,
	}, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	level, parseError := stress.ParseLevel(arguments[0])
	if parseError != nil {
		return parseError
	}

	instruction, selectError := Select(level)
	if selectError != nil {
		return selectError
	}

	logger := zap.NewNop()
	if builder.LoggerProvider != nil {
		if providedLogger := builder.LoggerProvider(); providedLogger != nil {
			logger = providedLogger
		}
	}
	logger.Info(instructionLogMessageConstant, zap.Int(logFieldLevelConstant, level), zap.String(logFieldStyleConstant, string(instruction.Style)))

	_, writeError := fmt.Fprintf(command.OutOrStdout(), instructionHeaderTemplateConstant, instruction.Style, instruction.Text)
	return writeError
}
