package tui

import (
	"context"
	"io"

	"docadmin/internal/console"

	tea "github.com/charmbracelet/bubbletea"
)

// Client is what the browser needs from the admin API.
type Client interface {
	console.PageFetcher
	DocumentGetter
}

// Run browses project until the user quits or ctx is done.
func Run(ctx context.Context, in io.Reader, out io.Writer, client Client, project string, opts ...console.Option) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	list := console.NewDocumentList(client, project, opts...)
	p := tea.NewProgram(
		NewBrowserModel(ctx, list, client),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
