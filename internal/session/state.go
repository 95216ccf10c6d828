// Package session holds the mutable state a presentation loop owns: the
// current stress level, the bionic reading flag, and the chat transcript.
package session

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/temirov/auralearn/internal/bionic"
	"github.com/temirov/auralearn/internal/chat"
	"github.com/temirov/auralearn/internal/stress"
)

const (
	stressLevelUpdateErrorTemplateConstant = "unable to update stress level: %w"
	sessionCreationErrorTemplateConstant   = "unable to start session: %w"
)

// Options configure a new session.
type Options struct {
	StressLevel int
	BionicMode  bool
	Greeting    string
	Reply       string
}

// DefaultOptions starts at stress.DefaultLevel with bionic reading off and the bundled chat strings.
func DefaultOptions() Options {
	return Options{
		StressLevel: stress.DefaultLevel,
		Greeting:    chat.DefaultGreeting,
		Reply:       chat.DefaultReply,
	}
}

// State is the single-owner session state. It is not safe for concurrent mutation.
type State struct {
	ID          string
	stressLevel int
	bionicMode  bool
	reply       string
	transcript  chat.Transcript
}

// New validates options and starts a session. The stress level must lie in [1,10]; zero is rejected like any other out-of-range value.
func New(options Options) (*State, error) {
	stressLevel := options.StressLevel
	if validationError := stress.ValidateLevel(stressLevel); validationError != nil {
		return nil, fmt.Errorf(sessionCreationErrorTemplateConstant, validationError)
	}

	reply := options.Reply
	if len(reply) == 0 {
		reply = chat.DefaultReply
	}

	return &State{
		ID:          uuid.NewString(),
		stressLevel: stressLevel,
		bionicMode:  options.BionicMode,
		reply:       reply,
		transcript:  chat.NewTranscript(options.Greeting),
	}, nil
}

// StressLevel returns the current level.
func (state *State) StressLevel() int {
	return state.stressLevel
}

// SetStressLevel replaces the level, rejecting values outside [1,10].
func (state *State) SetStressLevel(level int) error {
	if validationError := stress.ValidateLevel(level); validationError != nil {
		return fmt.Errorf(stressLevelUpdateErrorTemplateConstant, validationError)
	}
	state.stressLevel = level
	return nil
}

// Tier derives the UI tier from the current level.
func (state *State) Tier() stress.Tier {
	tier, _ := stress.Classify(state.stressLevel)
	return tier
}

// BionicMode reports whether bionic reading is on.
func (state *State) BionicMode() bool {
	return state.bionicMode
}

// ToggleBionic flips bionic reading and returns the new value.
func (state *State) ToggleBionic() bool {
	state.bionicMode = !state.bionicMode
	return state.bionicMode
}

// Read applies the bionic flag to text.
func (state *State) Read(text string) bionic.Output {
	return bionic.Transform(text, state.bionicMode)
}

// Send appends the user text and the canned reply. It reports whether anything was appended.
func (state *State) Send(userText string) bool {
	previousLength := len(state.transcript)
	state.transcript = chat.Append(state.transcript, userText, state.reply)
	return len(state.transcript) > previousLength
}

// Transcript returns a copy of the chat history.
func (state *State) Transcript() chat.Transcript {
	duplicated := make(chat.Transcript, len(state.transcript))
	copy(duplicated, state.transcript)
	return duplicated
}
