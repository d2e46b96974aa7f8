// Package tui implements the interactive document browser.
package tui

import (
	"context"
	"errors"

	"docadmin/internal/console"
	"docadmin/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

// DocumentGetter loads a single document for the detail pane.
type DocumentGetter interface {
	GetDocument(ctx context.Context, projectName, key string) (model.DocumentSummary, error)
}

// viewMsg carries a view published by the document list.
type viewMsg console.View

// actionDoneMsg is sent when a list operation returns.
type actionDoneMsg struct {
	err error
}

type detailMsg struct {
	doc model.DocumentSummary
	err error
}

const (
	browserDefaultWidth  = 80
	browserDefaultHeight = 20
)

// BrowserModel is the Bubble Tea model paging through a project's documents.
type BrowserModel struct {
	ctx     context.Context
	list    *console.DocumentList
	getter  DocumentGetter
	updates <-chan console.View

	view     console.View
	selected int
	notice   string

	detail    *model.DocumentSummary
	detailErr error

	quitting bool
	width    int
	height   int
}

// NewBrowserModel creates a browser over list. The subscription lives as long as ctx.
func NewBrowserModel(ctx context.Context, list *console.DocumentList, getter DocumentGetter) *BrowserModel {
	return &BrowserModel{
		ctx:     ctx,
		list:    list,
		getter:  getter,
		updates: list.Subscribe(ctx),
		view:    list.View(),
		width:   browserDefaultWidth,
		height:  browserDefaultHeight,
	}
}

// Init starts listening for views and loads the first page.
func (m *BrowserModel) Init() tea.Cmd {
	return tea.Batch(m.waitForView(), m.run(m.list.Load))
}

// Update handles messages and updates the model state.
func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case viewMsg:
		m.applyView(console.View(msg))
		return m, m.waitForView()

	case actionDoneMsg:
		m.handleActionDone(msg.err)
		return m, nil

	case detailMsg:
		if msg.err != nil {
			m.detail = nil
			m.detailErr = msg.err
			return m, nil
		}
		doc := msg.doc
		m.detail = &doc
		m.detailErr = nil
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

func (m *BrowserModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""

	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "esc":
		m.detail = nil
		m.detailErr = nil
		return m, nil
	case "left", "h":
		m.detail = nil
		return m, m.run(m.list.RequestPrevious)
	case "right", "l":
		m.detail = nil
		return m, m.run(m.list.RequestNext)
	case "r":
		return m, m.run(m.list.Retry)
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil
	case "down", "j":
		if m.selected < len(m.view.Documents)-1 {
			m.selected++
		}
		return m, nil
	case "enter":
		return m, m.openDetail()
	}

	return m, nil
}

func (m *BrowserModel) handleActionDone(err error) {
	switch {
	case err == nil, errors.Is(err, console.ErrSuperseded):
	case errors.Is(err, console.ErrNoPreviousPage):
		m.notice = "already on the first page"
	case errors.Is(err, console.ErrNoNextPage):
		m.notice = "already on the last page"
	}
	// Publishing never blocks, so a busy subscriber may miss the final view.
	m.applyView(m.list.View())
}

func (m *BrowserModel) applyView(v console.View) {
	m.view = v
	if m.selected >= len(v.Documents) {
		m.selected = max(len(v.Documents)-1, 0)
	}
}

func (m *BrowserModel) openDetail() tea.Cmd {
	if len(m.view.Documents) == 0 || m.getter == nil {
		return nil
	}
	ctx := m.ctx
	project := m.view.Project
	key := m.view.Documents[m.selected].Key
	return func() tea.Msg {
		doc, err := m.getter.GetDocument(ctx, project, key)
		return detailMsg{doc: doc, err: err}
	}
}

func (m *BrowserModel) run(op func(context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return actionDoneMsg{err: op(ctx)}
	}
}

func (m *BrowserModel) waitForView() tea.Cmd {
	updates := m.updates
	return func() tea.Msg {
		v, ok := <-updates
		if !ok {
			return nil
		}
		return viewMsg(v)
	}
}
