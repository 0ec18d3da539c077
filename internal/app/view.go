package app

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

const statusHeight = 1

// treeHeight is the number of lines available for tree content.
func (m Model) treeHeight() int {
	h := m.height - statusHeight
	if h < 0 {
		h = 0
	}
	return h
}

// scrollToCursor clamps the scroll offset so the selection stays inside
// the visible window.
func (m *Model) scrollToCursor() {
	h := m.treeHeight()
	cursor := m.tree.SelectedIndex()
	if cursor < 0 || h == 0 {
		m.offset = 0
		return
	}
	if cursor < m.offset {
		m.offset = cursor
	}
	if cursor >= m.offset+h {
		m.offset = cursor - h + 1
	}
	if max := len(m.tree.Lines()) - h; m.offset > max {
		m.offset = max
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// View renders the visible slice of the tree plus the status line. The
// rendered tree is cached against the projection signature, so idle
// resync ticks that change nothing re-render nothing.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	statusView := m.status.View(m.width)
	sig := m.tree.Signature()
	c := m.cache
	if c.valid && c.sig == sig && c.cursor == m.tree.SelectedIndex() &&
		c.offset == m.offset && c.width == m.width && c.height == m.height {
		return c.view + "\n" + statusView
	}

	treeView := m.renderTree()
	*c = renderCache{
		valid:  true,
		sig:    sig,
		cursor: m.tree.SelectedIndex(),
		offset: m.offset,
		width:  m.width,
		height: m.height,
		view:   treeView,
	}
	return treeView + "\n" + statusView
}

func (m Model) renderTree() string {
	lines := m.tree.Lines()
	h := m.treeHeight()
	cursor := m.tree.SelectedIndex()

	var b strings.Builder
	for row := 0; row < h; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		i := m.offset + row
		if i >= len(lines) {
			continue
		}
		line := lines[i]
		indent := strings.Repeat("  ", line.Level)

		if i == cursor {
			text := indent + line.Text()
			pad := m.width - runewidth.StringWidth(text)
			if pad > 0 {
				text += strings.Repeat(" ", pad)
			}
			b.WriteString(ansi.Truncate(m.cfg.SelectedStyle.Render(text), m.width, ""))
			continue
		}

		var styled strings.Builder
		styled.WriteString(indent)
		for _, span := range line.Spans {
			styled.WriteString(span.Style.Render(span.Text))
		}
		b.WriteString(ansi.Truncate(styled.String(), m.width, ""))
	}
	return b.String()
}
