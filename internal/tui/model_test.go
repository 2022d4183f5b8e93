package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/oindrieel/purulia/internal/model"
)

type stubPort struct {
	response *model.ChatResponse
	err      error
}

func (s stubPort) ProcessQuery(_ context.Context, _ string) (*model.ChatResponse, error) {
	return s.response, s.err
}

func pressEnter(t *testing.T, m Model, query string) (Model, tea.Cmd) {
	t.Helper()
	m.input.SetValue(query)
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return updated.(Model), cmd
}

func TestUpdate_EnterDispatchesQueryOffTheUpdateLoop(t *testing.T) {
	port := stubPort{response: model.NewInfoResponse("Charida Village", "The village of the mask makers.")}
	m, cmd := pressEnter(t, New(port), "tell me about the mask makers")

	// The update itself only echoes the user line; the answer arrives
	// later as a message from the command.
	if cmd == nil {
		t.Fatal("expected a command to run the query")
	}
	last := m.transcript[len(m.transcript)-1]
	if !strings.Contains(last, "tell me about the mask makers") {
		t.Errorf("last transcript entry = %q, want the echoed query", last)
	}
	if m.input.Value() != "" {
		t.Errorf("input not cleared, still %q", m.input.Value())
	}

	msg := cmd()
	answer, ok := msg.(answerMsg)
	if !ok {
		t.Fatalf("command produced %T, want answerMsg", msg)
	}
	if !strings.Contains(answer.rendered, "Charida Village") {
		t.Errorf("answer %q is missing the subject", answer.rendered)
	}

	updated, _ := m.Update(answer)
	m = updated.(Model)
	last = m.transcript[len(m.transcript)-1]
	if !strings.Contains(last, "Charida Village") {
		t.Errorf("last transcript entry = %q, want the answer", last)
	}
}

func TestUpdate_QueryFailureRendersError(t *testing.T) {
	port := stubPort{err: errors.New("provider down")}
	m, cmd := pressEnter(t, New(port), "anything")
	if cmd == nil {
		t.Fatal("expected a command to run the query")
	}

	answer, ok := cmd().(answerMsg)
	if !ok {
		t.Fatalf("command produced %T, want answerMsg", cmd())
	}
	if !strings.Contains(answer.rendered, "provider down") {
		t.Errorf("answer %q is missing the failure message", answer.rendered)
	}

	updated, _ := m.Update(answer)
	m = updated.(Model)
	last := m.transcript[len(m.transcript)-1]
	if !strings.Contains(last, "provider down") {
		t.Errorf("last transcript entry = %q, want the failure message", last)
	}
}
