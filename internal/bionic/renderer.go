package bionic

import (
	"encoding/json"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	markdownEmphasisDelimiterConstant = "**"
	htmlStrongOpenTagConstant         = "<strong>"
	htmlStrongCloseTagConstant        = "</strong>"
	htmlSpanOpenTagConstant           = "<span>"
	htmlSpanCloseTagConstant          = "</span>"
	unsupportedFormatErrorTemplate    = "unsupported bionic output format %q"
	jsonEncodeErrorTemplateConstant   = "failed to encode bionic output: %w"
	jsonIndentPrefixConstant          = ""
	jsonIndentValueConstant           = "  "
)

// Format enumerates supported rendering targets.
type Format string

// Supported output formats.
const (
	FormatTerminal Format = "terminal"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatPlain    Format = "plain"
	FormatJSON     Format = "json"
)

// Formats lists the supported formats with the default first.
func Formats() []string {
	return []string{string(FormatTerminal), string(FormatMarkdown), string(FormatHTML), string(FormatPlain), string(FormatJSON)}
}

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	normalized := Format(strings.ToLower(strings.TrimSpace(name)))
	switch normalized {
	case FormatTerminal, FormatMarkdown, FormatHTML, FormatPlain, FormatJSON:
		return normalized, nil
	default:
		return "", fmt.Errorf(unsupportedFormatErrorTemplate, name)
	}
}

// Renderer turns transform output into text for a given target.
type Renderer struct {
	emphasisStyle lipgloss.Style
}

// NewRenderer builds a renderer whose terminal styling adapts to the capabilities of output.
func NewRenderer(output io.Writer) *Renderer {
	terminalRenderer := lipgloss.NewRenderer(output)
	return &Renderer{emphasisStyle: terminalRenderer.NewStyle().Bold(true)}
}

// Render formats output. Bypassed output is emitted as the original text in every textual format.
func (renderer *Renderer) Render(output Output, format Format) (string, error) {
	switch format {
	case FormatJSON:
		encoded, encodeError := json.MarshalIndent(output, jsonIndentPrefixConstant, jsonIndentValueConstant)
		if encodeError != nil {
			return "", fmt.Errorf(jsonEncodeErrorTemplateConstant, encodeError)
		}
		return string(encoded), nil
	case FormatHTML:
		if output.Bypassed {
			return html.EscapeString(output.Text), nil
		}
		return renderer.renderSegments(output.Segments, renderHTMLSegment), nil
	case FormatMarkdown:
		if output.Bypassed {
			return output.Text, nil
		}
		return renderer.renderSegments(output.Segments, renderMarkdownSegment), nil
	case FormatPlain:
		if output.Bypassed {
			return output.Text, nil
		}
		return Join(output.Segments), nil
	case FormatTerminal:
		if output.Bypassed {
			return output.Text, nil
		}
		return renderer.renderSegments(output.Segments, renderer.renderTerminalSegment), nil
	default:
		return "", fmt.Errorf(unsupportedFormatErrorTemplate, format)
	}
}

func (renderer *Renderer) renderSegments(segments []Segment, renderSegment func(Segment) string) string {
	renderedSegments := make([]string, 0, len(segments))
	for _, segment := range segments {
		renderedSegments = append(renderedSegments, renderSegment(segment))
	}
	return strings.Join(renderedSegments, segmentSeparatorConstant)
}

func (renderer *Renderer) renderTerminalSegment(segment Segment) string {
	return renderer.emphasisStyle.Render(segment.BoldPart) + segment.NormalPart
}

func renderMarkdownSegment(segment Segment) string {
	return markdownEmphasisDelimiterConstant + segment.BoldPart + markdownEmphasisDelimiterConstant + segment.NormalPart
}

func renderHTMLSegment(segment Segment) string {
	return htmlSpanOpenTagConstant +
		htmlStrongOpenTagConstant + html.EscapeString(segment.BoldPart) + htmlStrongCloseTagConstant +
		html.EscapeString(segment.NormalPart) +
		htmlSpanCloseTagConstant
}
