package topics

import "path"

// Renderer turns a topic into the text printed by the help command
type Renderer interface {
	Render(t *Topic) string
}

// RendererFunc adapts a function to Renderer
type RendererFunc func(t *Topic) string

func (f RendererFunc) Render(t *Topic) string { return f(t) }

// PlainRenderer prints topics verbatim
type PlainRenderer struct{}

func (PlainRenderer) Render(t *Topic) string { return t.Content }

func isMarkdown(t *Topic) bool {
	return path.Ext(t.Path) == ".md"
}
