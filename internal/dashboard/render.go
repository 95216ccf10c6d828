package dashboard

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/temirov/auralearn/internal/bionic"
	"github.com/temirov/auralearn/internal/chat"
	"github.com/temirov/auralearn/internal/session"
	"github.com/temirov/auralearn/internal/stress"
)

const (
	applicationTitleConstant          = "AuraLearn"
	applicationTaglineConstant        = "Your AI Learning Companion"
	navigationLineConstant            = "[Home] [Library] [Progress]"
	settingsLineConstant              = "[Settings]"
	stressHeadingTemplateConstant     = "Stress Level: %d/10"
	bionicEnabledLineConstant         = "[Bionic Reading] Enabled"
	bionicDisabledLineConstant        = "[Bionic Reading] Disabled"
	typographyTemplateConstant        = "font-size %s, line-height %s"
	keyTakeawaysHeadingConstant       = "Key Takeaways:"
	keyTakeawayBulletTemplateConstant = "  ✓ %s"
	readingControlsLineConstant       = "[Previous] [Continue Reading] [Next]"
	chatTitleConstant                 = "Aura AI"
	chatTaglineConstant               = "Always here to help"
	chatMessageTemplateConstant       = "%s: %s"
	chatUserLabelConstant             = "you"
	chatAssistantLabelConstant        = "aura"
	chatInputPlaceholderConstant      = "> Ask Aura anything..."
	chatHintLineConstant              = "Press Enter to send • Aura learns with you"
	renderErrorTemplateConstant       = "unable to render reading pane: %w"
	sectionSeparatorConstant          = "\n"
)

// Renderer draws the dashboard with lipgloss styles bound to an output.
type Renderer struct {
	titleStyle   lipgloss.Style
	headingStyle lipgloss.Style
	mutedStyle   lipgloss.Style
	panelStyle   lipgloss.Style
	bodyRenderer *bionic.Renderer
}

// NewRenderer creates a renderer for the provided output.
func NewRenderer(output io.Writer) *Renderer {
	terminalRenderer := lipgloss.NewRenderer(output)
	return &Renderer{
		titleStyle:   terminalRenderer.NewStyle().Bold(true),
		headingStyle: terminalRenderer.NewStyle().Bold(true).Underline(true),
		mutedStyle:   terminalRenderer.NewStyle().Faint(true),
		panelStyle:   terminalRenderer.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		bodyRenderer: bionic.NewRenderer(output),
	}
}

// Render draws the full page for the session state.
func (renderer *Renderer) Render(state *session.State, content Content) (string, error) {
	content = content.withDefaults()
	tier := state.Tier()
	visible := stress.VisibleAffordances(tier)

	readingPane, readingError := renderer.renderReadingPane(state, content, tier, visible)
	if readingError != nil {
		return "", fmt.Errorf(renderErrorTemplateConstant, readingError)
	}

	sections := []string{
		renderer.renderHeader(visible),
		renderer.panelStyle.Render(renderer.renderStressPanel(state, tier, visible)),
		renderer.panelStyle.Render(readingPane),
		renderer.panelStyle.Render(renderer.renderChatPanel(state.Transcript(), visible)),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...), nil
}

func (renderer *Renderer) renderHeader(visible stress.AffordanceSet) string {
	lines := []string{
		renderer.titleStyle.Render(applicationTitleConstant),
		renderer.mutedStyle.Render(applicationTaglineConstant),
	}
	if visible.Contains(stress.AffordanceNavigation) {
		lines = append(lines, navigationLineConstant)
	}
	if visible.Contains(stress.AffordanceSettings) {
		lines = append(lines, settingsLineConstant)
	}
	return strings.Join(lines, sectionSeparatorConstant)
}

func (renderer *Renderer) renderStressPanel(state *session.State, tier stress.Tier, visible stress.AffordanceSet) string {
	lines := []string{
		renderer.headingStyle.Render(fmt.Sprintf(stressHeadingTemplateConstant, state.StressLevel())),
		renderer.mutedStyle.Render(stress.StatusMessage(tier)),
	}
	if visible.Contains(stress.AffordanceBionicToggle) {
		if state.BionicMode() {
			lines = append(lines, bionicEnabledLineConstant)
		} else {
			lines = append(lines, bionicDisabledLineConstant)
		}
	}
	return strings.Join(lines, sectionSeparatorConstant)
}

func (renderer *Renderer) renderReadingPane(state *session.State, content Content, tier stress.Tier, visible stress.AffordanceSet) (string, error) {
	typography := stress.ReadingTypography(tier)
	lines := []string{renderer.headingStyle.Render(content.Title)}
	if visible.Contains(stress.AffordanceChapterSubtitle) {
		lines = append(lines, renderer.mutedStyle.Render(content.Subtitle))
	}
	lines = append(lines, renderer.mutedStyle.Render(fmt.Sprintf(typographyTemplateConstant, typography.FontSize, typography.LineHeight)))

	body, bodyError := renderer.bodyRenderer.Render(state.Read(content.Body), bionic.FormatTerminal)
	if bodyError != nil {
		return "", bodyError
	}
	lines = append(lines, "", body)

	if visible.Contains(stress.AffordanceKeyTakeaways) && len(content.KeyTakeaways) > 0 {
		lines = append(lines, "", renderer.titleStyle.Render(keyTakeawaysHeadingConstant))
		for _, takeaway := range content.KeyTakeaways {
			lines = append(lines, fmt.Sprintf(keyTakeawayBulletTemplateConstant, takeaway))
		}
	}
	if visible.Contains(stress.AffordanceReadingControls) {
		lines = append(lines, "", readingControlsLineConstant)
	}
	return strings.Join(lines, sectionSeparatorConstant), nil
}

func (renderer *Renderer) renderChatPanel(transcript chat.Transcript, visible stress.AffordanceSet) string {
	lines := []string{
		renderer.titleStyle.Render(chatTitleConstant),
		renderer.mutedStyle.Render(chatTaglineConstant),
	}
	for _, message := range transcript {
		label := chatAssistantLabelConstant
		if message.Role == chat.RoleUser {
			label = chatUserLabelConstant
		}
		lines = append(lines, fmt.Sprintf(chatMessageTemplateConstant, label, message.Content))
	}
	lines = append(lines, chatInputPlaceholderConstant)
	if visible.Contains(stress.AffordanceChatHint) {
		lines = append(lines, renderer.mutedStyle.Render(chatHintLineConstant))
	}
	return strings.Join(lines, sectionSeparatorConstant)
}
