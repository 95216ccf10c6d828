package session

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/temirov/auralearn/internal/bionic"
	"github.com/temirov/auralearn/internal/chat"
	"github.com/temirov/auralearn/internal/stress"
	"github.com/temirov/auralearn/internal/tutor"
	"github.com/temirov/auralearn/internal/utils"
	flagutils "github.com/temirov/auralearn/internal/utils/flags"
)

const (
	commandUseNameConstant                = "chat"
	commandExampleTemplateConstant        = "printf 'what is a synapse?\\n' | aura chat --stress 8 --transcript-format yaml"
	commandShortDescriptionConstant       = "Chat with the scripted Aura companion"
	commandLongDescriptionConstant        = "chat reads one message per line from standard input and answers each non-empty line with the configured reply. Lines starting with /stress N change the stress level, /bionic toggles bionic reading, and /quit ends the session. The transcript is printed when input ends."
	stressFlagNameConstant                = "stress"
	stressFlagUsageConstant               = "Initial stress level between 1 and 10."
	bionicFlagNameConstant                = "bionic"
	bionicFlagUsageConstant               = "Start with bionic reading enabled."
	transcriptFormatFlagNameConstant      = "transcript-format"
	transcriptFormatFlagUsageConstant     = "Transcript format printed when the session ends."
	transcriptFormatTextConstant          = "text"
	transcriptFormatYAMLConstant          = "yaml"
	transcriptFormatJSONConstant          = "json"
	stressDirectivePrefixConstant         = "/stress"
	bionicDirectiveConstant               = "/bionic"
	quitDirectiveConstant                 = "/quit"
	replyLineTemplateConstant             = "aura: %s\n"
	stressChangedLineTemplateConstant     = "stress level %d (%s): %s\n"
	bionicChangedLineTemplateConstant     = "bionic reading %s\n"
	transcriptLineTemplateConstant        = "%s: %s\n"
	transcriptHeaderConstant              = "--- transcript ---\n"
	bionicEnabledWordConstant             = "enabled"
	bionicDisabledWordConstant            = "disabled"
	readInputErrorTemplateConstant        = "unable to read chat input: %w"
	encodeTranscriptErrorTemplateConstant = "unable to encode transcript: %w"
	jsonIndentValueConstant               = "  "
	sessionStartedLogMessageConstant      = "chat session started"
	messageAppendedLogMessageConstant     = "chat message appended"
	directiveRejectedLogMessageConstant   = "chat directive rejected"
	sessionEndedLogMessageConstant        = "chat session ended"
	logFieldSessionIDConstant             = "session_id"
	logFieldStressLevelConstant           = "stress_level"
	logFieldTierConstant                  = "tier"
	logFieldInstructionStyleConstant      = "instruction_style"
	logFieldTranscriptLengthConstant      = "transcript_length"
	logFieldConfigurationSourceConstant   = "config_file"
)

// LoggerProvider yields a zap logger instance.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the chat command.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider func() Configuration
	ChatProvider          func() chat.Configuration
}

type commandOptions struct {
	stressLevel      int
	bionic           bool
	transcriptFormat string
}

// Build constructs the chat command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	options := &commandOptions{}
	command := &cobra.Command{
		Use:     commandUseNameConstant,
		Short:   commandShortDescriptionConstant,
		Long:    commandLongDescriptionConstant,
		Args:    cobra.NoArgs,
		Example: commandExampleTemplateConstant,
		RunE: func(command *cobra.Command, arguments []string) error {
			return builder.run(command, options)
		},
	}

	command.Flags().IntVar(&options.stressLevel, stressFlagNameConstant, stress.DefaultLevel, stressFlagUsageConstant)
	flagutils.AddToggleFlag(command.Flags(), &options.bionic, bionicFlagNameConstant, "", false, bionicFlagUsageConstant)
	flagutils.AddChoiceFlag(
		command.Flags(),
		&options.transcriptFormat,
		transcriptFormatFlagNameConstant,
		transcriptFormatTextConstant,
		[]string{transcriptFormatTextConstant, transcriptFormatYAMLConstant, transcriptFormatJSONConstant},
		transcriptFormatFlagUsageConstant,
	)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, options *commandOptions) error {
	configuration := builder.resolveConfiguration()
	if command.Flags().Changed(stressFlagNameConstant) {
		if validationError := stress.ValidateLevel(options.stressLevel); validationError != nil {
			return validationError
		}
		configuration.StressLevel = options.stressLevel
	}
	if command.Flags().Changed(bionicFlagNameConstant) {
		configuration.Bionic = options.bionic
	}
	chatConfiguration := builder.resolveChatConfiguration()

	state, creationError := New(Options{
		StressLevel: configuration.StressLevel,
		BionicMode:  configuration.Bionic,
		Greeting:    chatConfiguration.Greeting,
		Reply:       chatConfiguration.Reply,
	})
	if creationError != nil {
		return creationError
	}

	logger := builder.resolveLogger().With(zap.String(logFieldSessionIDConstant, state.ID))
	startFields := []zap.Field{zap.Int(logFieldStressLevelConstant, state.StressLevel())}
	if configurationSource, sourceAvailable := utils.NewCommandContextAccessor().ConfigurationSource(command.Context()); sourceAvailable {
		startFields = append(startFields, zap.String(logFieldConfigurationSourceConstant, configurationSource))
	}
	logger.Info(sessionStartedLogMessageConstant, startFields...)

	output := utils.NewFlushingWriter(command.OutOrStdout())
	replyRenderer := bionic.NewRenderer(command.OutOrStdout())
	if loopError := runConversation(command.InOrStdin(), output, replyRenderer, state, logger); loopError != nil {
		return loopError
	}

	transcript := state.Transcript()
	logger.Info(sessionEndedLogMessageConstant, zap.Int(logFieldTranscriptLengthConstant, len(transcript)))
	return writeTranscript(output, transcript, options.transcriptFormat)
}

func runConversation(input io.Reader, output io.Writer, replyRenderer *bionic.Renderer, state *State, logger *zap.Logger) error {
	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		line := scanner.Text()
		trimmedLine := strings.TrimSpace(line)

		switch {
		case trimmedLine == quitDirectiveConstant:
			return nil
		case trimmedLine == bionicDirectiveConstant:
			bionicWord := bionicDisabledWordConstant
			if state.ToggleBionic() {
				bionicWord = bionicEnabledWordConstant
			}
			fmt.Fprintf(output, bionicChangedLineTemplateConstant, bionicWord)
		case isStressDirective(trimmedLine):
			if directiveError := applyStressDirective(output, state, trimmedLine); directiveError != nil {
				logger.Warn(directiveRejectedLogMessageConstant, zap.Error(directiveError))
				fmt.Fprintln(output, directiveError.Error())
			}
		default:
			if !state.Send(line) {
				continue
			}
			instruction, _ := tutor.Select(state.StressLevel())
			logger.Debug(
				messageAppendedLogMessageConstant,
				zap.Int(logFieldStressLevelConstant, state.StressLevel()),
				zap.Stringer(logFieldTierConstant, state.Tier()),
				zap.String(logFieldInstructionStyleConstant, string(instruction.Style)),
			)
			transcript := state.Transcript()
			reply, renderError := replyRenderer.Render(state.Read(transcript[len(transcript)-1].Content), bionic.FormatTerminal)
			if renderError != nil {
				return renderError
			}
			fmt.Fprintf(output, replyLineTemplateConstant, reply)
		}
	}

	if scanError := scanner.Err(); scanError != nil {
		return fmt.Errorf(readInputErrorTemplateConstant, scanError)
	}
	return nil
}

func isStressDirective(line string) bool {
	fields := strings.Fields(line)
	return len(fields) > 0 && fields[0] == stressDirectivePrefixConstant
}

func applyStressDirective(output io.Writer, state *State, directive string) error {
	level, parseError := stress.ParseLevel(strings.TrimPrefix(directive, stressDirectivePrefixConstant))
	if parseError != nil {
		return parseError
	}
	if updateError := state.SetStressLevel(level); updateError != nil {
		return updateError
	}
	tier := state.Tier()
	fmt.Fprintf(output, stressChangedLineTemplateConstant, level, tier, stress.StatusMessage(tier))
	return nil
}

func writeTranscript(output io.Writer, transcript chat.Transcript, format string) error {
	switch format {
	case transcriptFormatYAMLConstant:
		encoder := yaml.NewEncoder(output)
		if encodeError := encoder.Encode(transcript); encodeError != nil {
			return fmt.Errorf(encodeTranscriptErrorTemplateConstant, encodeError)
		}
		return encoder.Close()
	case transcriptFormatJSONConstant:
		encoder := json.NewEncoder(output)
		encoder.SetIndent("", jsonIndentValueConstant)
		if encodeError := encoder.Encode(transcript); encodeError != nil {
			return fmt.Errorf(encodeTranscriptErrorTemplateConstant, encodeError)
		}
		return nil
	default:
		if _, writeError := io.WriteString(output, transcriptHeaderConstant); writeError != nil {
			return writeError
		}
		for _, message := range transcript {
			if _, writeError := fmt.Fprintf(output, transcriptLineTemplateConstant, message.Role, message.Content); writeError != nil {
				return writeError
			}
		}
		return nil
	}
}

func (builder *CommandBuilder) resolveConfiguration() Configuration {
	if builder.ConfigurationProvider == nil {
		return DefaultConfiguration()
	}
	return builder.ConfigurationProvider()
}

func (builder *CommandBuilder) resolveChatConfiguration() chat.Configuration {
	if builder.ChatProvider == nil {
		return chat.DefaultConfiguration()
	}
	return builder.ChatProvider().Sanitize()
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
