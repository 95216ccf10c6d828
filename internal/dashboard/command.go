package dashboard

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/auralearn/internal/chat"
	"github.com/temirov/auralearn/internal/session"
	"github.com/temirov/auralearn/internal/stress"
	flagutils "github.com/temirov/auralearn/internal/utils/flags"
)

const (
	commandUseNameConstant          = "dashboard"
	commandExampleTemplateConstant  = "aura dashboard --stress 8 --bionic"
	commandShortDescriptionConstant = "Render the adaptive reading dashboard"
	commandLongDescriptionConstant  = "dashboard draws the AuraLearn page for the configured or requested stress level. Navigation, settings, the chapter subtitle, key takeaways, reading controls, the bionic toggle, and the chat hint disappear at high stress, and the reading text grows."
	stressFlagNameConstant          = "stress"
	stressFlagUsageConstant         = "Stress level between 1 and 10."
	bionicFlagNameConstant          = "bionic"
	bionicFlagUsageConstant         = "Render the lesson with bionic reading."
	renderedLogMessageConstant      = "dashboard rendered"
	logFieldSessionIDConstant       = "session_id"
	logFieldTierConstant            = "tier"
	logFieldVisibleCountConstant    = "visible_affordances"
)

// LoggerProvider yields a zap logger instance.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the dashboard command.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	SessionProvider       func() session.Configuration
	ChatProvider          func() chat.Configuration
	ConfigurationProvider func() Configuration
}

// Build constructs the dashboard command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	var stressLevel int
	var bionicMode bool

	command := &cobra.Command{
		Use:     commandUseNameConstant,
		Short:   commandShortDescriptionConstant,
		Long:    commandLongDescriptionConstant,
		Args:    cobra.NoArgs,
		Example: commandExampleTemplateConstant,
		RunE: func(command *cobra.Command, arguments []string) error {
			sessionConfiguration := session.DefaultConfiguration()
			if builder.SessionProvider != nil {
				sessionConfiguration = builder.SessionProvider()
			}
			if command.Flags().Changed(stressFlagNameConstant) {
				if validationError := stress.ValidateLevel(stressLevel); validationError != nil {
					return validationError
				}
				sessionConfiguration.StressLevel = stressLevel
			}
			if command.Flags().Changed(bionicFlagNameConstant) {
				sessionConfiguration.Bionic = bionicMode
			}
			return builder.run(command, sessionConfiguration)
		},
	}

	command.Flags().IntVar(&stressLevel, stressFlagNameConstant, stress.DefaultLevel, stressFlagUsageConstant)
	flagutils.AddToggleFlag(command.Flags(), &bionicMode, bionicFlagNameConstant, "", false, bionicFlagUsageConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, sessionConfiguration session.Configuration) error {
	chatConfiguration := chat.DefaultConfiguration()
	if builder.ChatProvider != nil {
		chatConfiguration = builder.ChatProvider().Sanitize()
	}

	state, creationError := session.New(session.Options{
		StressLevel: sessionConfiguration.StressLevel,
		BionicMode:  sessionConfiguration.Bionic,
		Greeting:    chatConfiguration.Greeting,
		Reply:       chatConfiguration.Reply,
	})
	if creationError != nil {
		return creationError
	}

	content := DefaultContent()
	if builder.ConfigurationProvider != nil {
		content = builder.ConfigurationProvider().Content
	}

	rendered, renderError := NewRenderer(command.OutOrStdout()).Render(state, content)
	if renderError != nil {
		return renderError
	}

	if builder.LoggerProvider != nil {
		if logger := builder.LoggerProvider(); logger != nil {
			logger.Debug(
				renderedLogMessageConstant,
				zap.String(logFieldSessionIDConstant, state.ID),
				zap.Stringer(logFieldTierConstant, state.Tier()),
				zap.Int(logFieldVisibleCountConstant, len(stress.VisibleAffordances(state.Tier()))),
			)
		}
	}

	_, writeError := fmt.Fprintln(command.OutOrStdout(), rendered)
	return writeError
}
