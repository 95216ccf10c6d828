package dashboard

// Configuration holds the lesson shown by the dashboard command.
type Configuration struct {
	Content Content `mapstructure:"content"`
}
