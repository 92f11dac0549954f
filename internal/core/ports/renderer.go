package ports

// MarkdownRenderer renders a markdown document for the terminal.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type MarkdownRenderer interface {
	// Render returns the terminal form of doc.
	Render(doc string) (string, error)
}
