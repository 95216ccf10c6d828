// Package schema publishes JSON Schemas for the machine-readable outputs of
// the bionic and chat commands.
package schema

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/invopop/jsonschema"

	"github.com/temirov/auralearn/internal/bionic"
	"github.com/temirov/auralearn/internal/chat"
)

const (
	unknownKindErrorTemplateConstant = "unknown schema kind %q"
	encodeErrorTemplateConstant      = "failed to encode %s schema: %w"
	indentPrefixConstant             = ""
	indentValueConstant              = "  "
)

// Kind names a published schema.
type Kind string

// Supported schema kinds.
const (
	KindSegments   Kind = "segments"
	KindTranscript Kind = "transcript"
)

// Kinds lists every supported kind.
func Kinds() []string {
	return []string{string(KindSegments), string(KindTranscript)}
}

// Generate returns the indented JSON Schema for kind.
func Generate(kind Kind) (string, error) {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties:  false,
		DoNotReference:             true,
		RequiredFromJSONSchemaTags: true,
	}

	var reflected *jsonschema.Schema
	switch Kind(strings.ToLower(strings.TrimSpace(string(kind)))) {
	case KindSegments:
		reflected = reflector.Reflect(&bionic.Output{})
	case KindTranscript:
		reflected = reflector.Reflect(&chat.Transcript{})
	default:
		return "", fmt.Errorf(unknownKindErrorTemplateConstant, kind)
	}

	encoded, encodeError := json.MarshalIndent(reflected, indentPrefixConstant, indentValueConstant)
	if encodeError != nil {
		return "", fmt.Errorf(encodeErrorTemplateConstant, kind, encodeError)
	}
	return string(encoded), nil
}
