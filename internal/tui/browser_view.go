package tui

import (
	"fmt"
	"strings"
	"time"

	"docadmin/internal/console"

	"github.com/charmbracelet/lipgloss"
)

const dateLayout = "2006-01-02"

// View renders the current view (Bubble Tea interface).
func (m *BrowserModel) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		TitleStyle.Render("Documents · " + m.view.Project),
		m.renderTable(),
		m.renderNavigation(),
		m.renderStatus(),
	}
	if d := m.renderDetail(); d != "" {
		sections = append(sections, d)
	}
	sections = append(sections, MutedStyle.Render("←/h prev  →/l next  ↑/↓ select  enter open  r retry  q quit"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

func (m *BrowserModel) renderTable() string {
	if len(m.view.Documents) == 0 {
		if _, loading := m.view.Status.(console.Loading); loading {
			return MutedStyle.Render("Loading...")
		}
		return MutedStyle.Render("No documents.")
	}

	keyWidth := len("KEY")
	for _, d := range m.view.Documents {
		keyWidth = max(keyWidth, len(d.Key))
	}
	row := func(key, created, updated string) string {
		return fmt.Sprintf("%-*s  %-10s  %-10s", keyWidth, key, created, updated)
	}

	lines := []string{HeaderStyle.Render("  " + row("KEY", "CREATED", "UPDATED"))}
	for i, d := range m.view.Documents {
		line := row(d.Key, formatDate(d.CreatedAt), formatDate(d.UpdatedAt))
		if i == m.selected {
			lines = append(lines, SelectedStyle.Render("> "+line))
			continue
		}
		lines = append(lines, ValueStyle.Render("  "+line))
	}
	return strings.Join(lines, "\n")
}

func (m *BrowserModel) renderNavigation() string {
	prev := MutedStyle.Render("‹ previous")
	if m.view.CanPrevious() {
		prev = LabelStyle.Render("‹ previous")
	}
	next := MutedStyle.Render("next ›")
	if m.view.CanNext() {
		next = LabelStyle.Render("next ›")
	}
	return prev + "   " + next
}

func (m *BrowserModel) renderStatus() string {
	var status string
	switch s := m.view.Status.(type) {
	case console.Loading:
		status = MutedStyle.Render("loading " + s.Cursor.String() + "...")
	case console.Failed:
		status = ErrorStyle.Render("error: "+s.Err.Error()) + MutedStyle.Render("  (r to retry)")
	}
	if m.notice != "" {
		if status != "" {
			status += "  "
		}
		status += MutedStyle.Render(m.notice)
	}
	return status
}

func (m *BrowserModel) renderDetail() string {
	if m.detailErr != nil {
		return ErrorStyle.Render("open document: " + m.detailErr.Error())
	}
	if m.detail == nil {
		return ""
	}

	d := m.detail
	field := func(label, value string) string {
		return LabelStyle.Render(fmt.Sprintf("%-9s", label)) + " " + ValueStyle.Render(value)
	}
	snapshot := d.Snapshot
	if snapshot == "" {
		snapshot = "-"
	}
	body := strings.Join([]string{
		field("key", d.Key),
		field("id", d.ID),
		field("created", formatDate(d.CreatedAt)),
		field("accessed", formatDate(d.AccessedAt)),
		field("updated", formatDate(d.UpdatedAt)),
		field("snapshot", snapshot),
	}, "\n")
	return DetailStyle.MaxWidth(m.width).Render(body)
}

func formatDate(ts time.Time) string {
	if ts.IsZero() {
		return "-"
	}
	return ts.Format(dateLayout)
}
