package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"artichat/internal/domain"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	usersWidth  = 20
	keyHeight   = 4 // border + title + key line
	inputHeight = 4 // border + title + input line
	chromeLines = 3 // border + title
)

// render lays out one frame: an optional room key panel on top, an optional
// users column on the left, the history and the message input.
func render(v domain.View, width, height int, st Styles) string {
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}

	var rows []string
	bodyHeight := height - inputHeight
	if v.ShowRoomKey {
		line := v.RoomKey
		if v.Fingerprint != "" {
			line += "  (" + v.Fingerprint + ")"
		}
		rows = append(rows, panel(st, " Room Key ", []string{line}, width, keyHeight))
		bodyHeight -= keyHeight
	}
	if bodyHeight < chromeLines {
		bodyHeight = chromeLines
	}

	historyWidth := width
	var users string
	if v.ShowUsers && width > usersWidth*2 {
		names := make([]string, 0, len(v.Participants))
		for _, p := range v.Participants {
			names = append(names, p.Name)
		}
		users = panel(st, " Users ", tail(names, bodyHeight-chromeLines), usersWidth, bodyHeight)
		historyWidth -= usersWidth
	}

	lines := make([]string, 0, len(v.History))
	for _, e := range v.History {
		lines = append(lines, formatEntry(st, e))
	}
	history := panel(st, " ArtiChat ", tail(lines, bodyHeight-chromeLines), historyWidth, bodyHeight)
	if users != "" {
		history = lipgloss.JoinHorizontal(lipgloss.Top, users, history)
	}
	rows = append(rows, history)

	rows = append(rows, panel(st, " Message ", []string{v.Input}, width, inputHeight))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func formatEntry(st Styles, e domain.HistoryEntry) string {
	switch e.Kind {
	case domain.EntryJoin:
		return st.Joined.Render(e.Name + " joined the room")
	default:
		return st.Sender.Render("["+e.Name+"] ") + st.Text.Render(e.Text)
	}
}

// panel draws a bordered box of the given outer size with a title line.
func panel(st Styles, title string, lines []string, width, height int) string {
	body := st.Title.Render(title)
	if len(lines) > 0 {
		body += "\n" + strings.Join(lines, "\n")
	}
	return st.Panel.
		Width(width - 2).
		Height(height - 2).
		MaxHeight(height).
		Render(body)
}

// tail keeps the last n lines; history is trimmed here, never in the session.
func tail(lines []string, n int) []string {
	if n <= 0 {
		return nil
	}
	if len(lines) > n {
		return lines[len(lines)-n:]
	}
	return lines
}
