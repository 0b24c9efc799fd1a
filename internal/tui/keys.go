package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"artichat/internal/domain"
)

type keyMap struct {
	Quit        key.Binding
	Send        key.Binding
	Backspace   key.Binding
	ToggleUsers key.Binding
	ToggleKey   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:        key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Send:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "send")),
		Backspace:   key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete")),
		ToggleUsers: key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "users")),
		ToggleKey:   key.NewBinding(key.WithKeys("f2"), key.WithHelp("f2", "room key")),
	}
}

// translate maps one Bubble Tea key message to session key events. A
// message may carry several runes, e.g. when text is pasted.
func (k keyMap) translate(msg tea.KeyMsg) []domain.KeyEvent {
	switch {
	case key.Matches(msg, k.Quit):
		return []domain.KeyEvent{{Kind: domain.KeyInterrupt}}
	case key.Matches(msg, k.Send):
		return []domain.KeyEvent{{Kind: domain.KeyEnter}}
	case key.Matches(msg, k.Backspace):
		return []domain.KeyEvent{{Kind: domain.KeyBackspace}}
	case key.Matches(msg, k.ToggleUsers):
		return []domain.KeyEvent{{Kind: domain.KeyToggleUsers}}
	case key.Matches(msg, k.ToggleKey):
		return []domain.KeyEvent{{Kind: domain.KeyToggleRoomKey}}
	}

	switch msg.Type {
	case tea.KeySpace:
		return []domain.KeyEvent{{Kind: domain.KeyRune, Rune: ' '}}
	case tea.KeyRunes:
		if msg.Alt {
			return nil
		}
		out := make([]domain.KeyEvent, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			out = append(out, domain.KeyEvent{Kind: domain.KeyRune, Rune: r})
		}
		return out
	}
	return nil
}
