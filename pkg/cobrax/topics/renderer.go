package topics

// Renderer formats raw topic content for terminal display. The format
// argument is the topic file's extension, e.g. ".md".
type Renderer interface {
	Render(content string, format string) string
}

// PlainRenderer returns content unchanged.
type PlainRenderer struct{}

// Render returns the content as-is.
func (r *PlainRenderer) Render(content string, format string) string {
	return content
}
