package schema

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	commandUseNameConstant          = "schema"
	commandUsageTemplateConstant    = commandUseNameConstant + " <segments|transcript>"
	commandShortDescriptionConstant = "Print the JSON Schema of a machine-readable output"
	commandExampleTemplateConstant  = "aura schema segments"
)

// CommandBuilder assembles the schema command.
type CommandBuilder struct{}

// Build constructs the schema command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	return &cobra.Command{
		Use:       commandUsageTemplateConstant,
		Short:     commandShortDescriptionConstant,
		Args:      cobra.ExactArgs(1),
		ValidArgs: Kinds(),
		Example:   commandExampleTemplateConstant,
		RunE: func(command *cobra.Command, arguments []string) error {
			generated, generateError := Generate(Kind(arguments[0]))
			if generateError != nil {
				return generateError
			}
			_, writeError := fmt.Fprintln(command.OutOrStdout(), generated)
			return writeError
		},
	}, nil
}
