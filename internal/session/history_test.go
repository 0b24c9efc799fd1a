package session_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"artichat/internal/domain"
	"artichat/internal/session"
)

func TestHistory_Unbounded(t *testing.T) {
	h := session.NewHistory(0)
	for i := 0; i < 100; i++ {
		h.Append(domain.ChatEntry("a", fmt.Sprint(i)))
	}
	assert.Equal(t, 100, h.Len())
	assert.Equal(t, "0", h.Entries()[0].Text)
	assert.Equal(t, "99", h.Entries()[99].Text)
}

func TestHistory_RingEvictsOldest(t *testing.T) {
	h := session.NewHistory(3)
	for i := 0; i < 7; i++ {
		h.Append(domain.ChatEntry("a", fmt.Sprint(i)))
	}
	assert.Equal(t, 3, h.Len())

	var texts []string
	for _, e := range h.Entries() {
		texts = append(texts, e.Text)
	}
	assert.Equal(t, []string{"4", "5", "6"}, texts)
}

func TestHistory_NegativeLimit(t *testing.T) {
	h := session.NewHistory(-1)
	h.Append(domain.JoinEntry("a"))
	h.Append(domain.JoinEntry("b"))
	assert.Equal(t, 2, h.Len())
}
