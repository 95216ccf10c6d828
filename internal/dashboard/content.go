package dashboard

// Content is the lesson displayed in the reading pane.
type Content struct {
	Title        string   `mapstructure:"title"`
	Subtitle     string   `mapstructure:"subtitle"`
	Body         string   `mapstructure:"body"`
	KeyTakeaways []string `mapstructure:"key_takeaways"`
}

// DefaultContent returns the bundled neuroplasticity lesson.
func DefaultContent() Content {
	return Content{
		Title:    "Understanding Neuroplasticity",
		Subtitle: "Chapter 3: How Learning Changes Your Brain",
		Body: "The process of learning is fundamentally about creating new neural pathways in your brain. " +
			"When you encounter new information, your neurons form connections that strengthen with repetition and practice. " +
			"This neuroplasticity allows your brain to adapt and grow throughout your entire life. " +
			"Understanding how your brain works can help you develop more effective study strategies and improve your ability to retain information.",
		KeyTakeaways: []string{
			"Your brain can form new connections throughout life",
			"Repetition strengthens neural pathways",
			"Understanding brain function improves learning strategies",
		},
	}
}

// withDefaults fills empty fields from DefaultContent.
func (content Content) withDefaults() Content {
	defaults := DefaultContent()
	if len(content.Title) == 0 {
		content.Title = defaults.Title
	}
	if len(content.Subtitle) == 0 {
		content.Subtitle = defaults.Subtitle
	}
	if len(content.Body) == 0 {
		content.Body = defaults.Body
	}
	if content.KeyTakeaways == nil {
		content.KeyTakeaways = defaults.KeyTakeaways
	}
	return content
}
