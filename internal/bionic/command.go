package bionic

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	flagutils "github.com/temirov/auralearn/internal/utils/flags"
	pathutils "github.com/temirov/auralearn/internal/utils/path"
)

const (
	commandUseNameConstant           = "bionic"
	commandUsageTemplateConstant     = commandUseNameConstant + " [file...]"
	commandExampleTemplateConstant   = "aura bionic chapter.txt --format markdown"
	commandShortDescriptionConstant  = "Apply bionic reading emphasis to text"
	commandLongDescriptionConstant   = "bionic emphasizes the leading half of every word read from the given files, or from standard input when no file is given. Files are transformed concurrently and printed in argument order."
	formatFlagNameConstant           = "format"
	formatFlagDescriptionConstant    = "Rendering target."
	enabledFlagNameConstant          = "enabled"
	enabledFlagDescriptionConstant   = "Apply emphasis; when disabled the text is printed unchanged."
	readFileErrorTemplateConstant    = "unable to read %s: %w"
	readStdinErrorTemplateConstant   = "unable to read standard input: %w"
	documentSeparatorConstant        = "\n\n"
	transformLogMessageConstant      = "bionic transform completed"
	logFieldDocumentCountConstant    = "document_count"
	logFieldEnabledConstant          = "enabled"
	logFieldFormatConstant           = "format"
	logFieldConcurrencyConstant      = "concurrency"
	standardInputDisplayNameConstant = "-"
)

// LoggerProvider yields a zap logger instance.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the bionic command.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider func() CommandConfiguration
}

type commandOptions struct {
	format  string
	enabled bool
}

// Build constructs the bionic command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	options := &commandOptions{}
	command := &cobra.Command{
		Use:     commandUsageTemplateConstant,
		Short:   commandShortDescriptionConstant,
		Long:    commandLongDescriptionConstant,
		Args:    cobra.ArbitraryArgs,
		Example: commandExampleTemplateConstant,
		RunE: func(command *cobra.Command, arguments []string) error {
			return builder.run(command, arguments, options)
		},
	}

	defaults := DefaultCommandConfiguration()
	flagutils.AddChoiceFlag(command.Flags(), &options.format, formatFlagNameConstant, defaults.Format, Formats(), formatFlagDescriptionConstant)
	flagutils.AddToggleFlag(command.Flags(), &options.enabled, enabledFlagNameConstant, "", defaults.Enabled, enabledFlagDescriptionConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string, options *commandOptions) error {
	configuration := builder.resolveConfiguration()
	if command.Flags().Changed(formatFlagNameConstant) {
		configuration.Format = options.format
	}
	if command.Flags().Changed(enabledFlagNameConstant) {
		configuration.Enabled = options.enabled
	}

	format, formatError := ParseFormat(configuration.Format)
	if formatError != nil {
		return formatError
	}

	documents, readError := readDocuments(command.InOrStdin(), arguments)
	if readError != nil {
		return readError
	}

	outputs, transformError := TransformAll(command.Context(), documents, configuration.Enabled, configuration.Concurrency)
	if transformError != nil {
		return transformError
	}

	renderer := NewRenderer(command.OutOrStdout())
	renderedDocuments := make([]string, 0, len(outputs))
	for _, output := range outputs {
		rendered, renderError := renderer.Render(output, format)
		if renderError != nil {
			return renderError
		}
		renderedDocuments = append(renderedDocuments, rendered)
	}

	builder.resolveLogger().Debug(
		transformLogMessageConstant,
		zap.Int(logFieldDocumentCountConstant, len(documents)),
		zap.Bool(logFieldEnabledConstant, configuration.Enabled),
		zap.String(logFieldFormatConstant, string(format)),
		zap.Int(logFieldConcurrencyConstant, configuration.Concurrency),
	)

	_, writeError := fmt.Fprintln(command.OutOrStdout(), strings.Join(renderedDocuments, documentSeparatorConstant))
	return writeError
}

func readDocuments(standardInput io.Reader, filePaths []string) ([]string, error) {
	if len(filePaths) == 0 || (len(filePaths) == 1 && filePaths[0] == standardInputDisplayNameConstant) {
		content, readError := io.ReadAll(standardInput)
		if readError != nil {
			return nil, fmt.Errorf(readStdinErrorTemplateConstant, readError)
		}
		return []string{strings.TrimRight(string(content), "\n")}, nil
	}

	documents := make([]string, 0, len(filePaths))
	for _, filePath := range pathutils.NewHomeExpander().ExpandAll(filePaths) {
		content, readError := os.ReadFile(filePath)
		if readError != nil {
			return nil, fmt.Errorf(readFileErrorTemplateConstant, filePath, readError)
		}
		documents = append(documents, strings.TrimRight(string(content), "\n"))
	}
	return documents, nil
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}
	return builder.ConfigurationProvider().Sanitize()
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
