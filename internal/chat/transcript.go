package chat

import "strings"

const (
	// DefaultReply is the canned assistant response appended after every user message.
	DefaultReply    = "I understand you're working on that topic. Let me help break it down into manageable pieces..."
	// DefaultGreeting opens a new transcript.
	DefaultGreeting = "Hello! I'm Aura AI, your learning companion. How can I help you today?"
)

// Role identifies the author of a message.
type Role string

// Supported roles.
const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one transcript entry.
type Message struct {
	Role    Role   `json:"role" yaml:"role" jsonschema:"required,enum=user,enum=assistant"`
	Content string `json:"content" yaml:"content" jsonschema:"required"`
}

// Transcript is the ordered chat history. Values are never edited in place.
type Transcript []Message

// NewTranscript seeds a transcript with an assistant greeting. An empty greeting yields an empty transcript.
func NewTranscript(greeting string) Transcript {
	if len(strings.TrimSpace(greeting)) == 0 {
		return Transcript{}
	}
	return Transcript{{Role: RoleAssistant, Content: greeting}}
}

// Append returns a new transcript holding the user message followed by reply.
// Blank user text is a no-op and the input transcript is returned as is.
func Append(transcript Transcript, userText string, reply string) Transcript {
	if len(strings.TrimSpace(userText)) == 0 {
		return transcript
	}

	extended := make(Transcript, len(transcript), len(transcript)+2)
	copy(extended, transcript)
	return append(extended,
		Message{Role: RoleUser, Content: userText},
		Message{Role: RoleAssistant, Content: reply},
	)
}
