package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/oindrieel/purulia/internal/model"
)

// QueryPort is the TUI-facing subset of the query router
type QueryPort interface {
	ProcessQuery(ctx context.Context, text string) (*model.ChatResponse, error)
}

// Model is the Bubble Tea model for the terminal chat client
type Model struct {
	router     QueryPort
	input      textinput.Model
	viewport   viewport.Model
	transcript []string
	ready      bool
}

// New creates a new chat TUI over the given router
func New(router QueryPort) Model {
	ti := textinput.New()
	ti.Prompt = "👤 "
	ti.Placeholder = "Ask about Purulia and press Enter"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	greeting := botStyle.Render("🤖 Purulia Tourism Assistant ready. Try:") + "\n" +
		"   - Tell me about the history of masks\n" +
		"   - I like waterfalls and nature\n" +
		"   - Plan a 2 day trip for history lovers"
	return Model{router: router, input: ti, viewport: vp, transcript: []string{greeting}}
}

// Init initializes the model
func (m Model) Init() tea.Cmd { return textinput.Blink }

// answerMsg carries the rendered reply for one dispatched query
type answerMsg struct {
	rendered string
}

// queryCmd runs the query outside the update loop and delivers the
// rendered answer as a message.
func queryCmd(router QueryPort, query string) tea.Cmd {
	return func() tea.Msg {
		response, err := router.ProcessQuery(context.Background(), query)
		if err != nil {
			return answerMsg{rendered: errorStyle.Render("❌ " + err.Error())}
		}
		return answerMsg{rendered: renderResponse(response)}
	}
}

// Update handles key, answer and window events
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case answerMsg:
		m.transcript = append(m.transcript, msg.rendered)
		m.viewport.SetContent(strings.Join(m.transcript, "\n\n"))
		m.viewport.GotoBottom()
		return m, nil
	case tea.WindowSizeMsg:
		m.ready = true
		_, qh := inputBoxStyle.GetFrameSize()
		vh := msg.Height - qh - 2
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = msg.Width
		m.viewport.Height = vh
		m.viewport.SetContent(strings.Join(m.transcript, "\n\n"))
		m.viewport.GotoBottom()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			query := strings.TrimSpace(m.input.Value())
			if query == "" {
				return m, nil
			}
			if q := strings.ToLower(query); q == "exit" || q == "quit" || q == "bye" {
				return m, tea.Quit
			}
			m.transcript = append(m.transcript, userStyle.Render("👤 ")+query)
			m.input.SetValue("")
			m.viewport.SetContent(strings.Join(m.transcript, "\n\n"))
			m.viewport.GotoBottom()
			// The query runs off the update loop so slow providers do
			// not freeze the UI
			return m, queryCmd(m.router, query)
		case "up":
			m.viewport.LineUp(1)
			return m, nil
		case "down":
			m.viewport.LineDown(1)
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the transcript and the input box
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	return m.viewport.View() + "\n" + inputBoxStyle.Render(m.input.View())
}

var (
	inputBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	userStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	botStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	subjectStyle  = lipgloss.NewStyle().Bold(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func renderResponse(response *model.ChatResponse) string {
	prefix := botStyle.Render("🤖 ")
	switch {
	case response.Error != "":
		return prefix + "😕 " + response.Error
	case response.Type == model.ResponseTypeInfo:
		return prefix + subjectStyle.Render(response.Subject) + "\n   " + response.Text
	case response.Type == model.ResponseTypeRecommendation:
		if len(response.Places) == 0 {
			return prefix + "I could not find places matching those interests."
		}
		var b strings.Builder
		b.WriteString(prefix + "Here are some places matching your interests:")
		for _, place := range response.Places {
			b.WriteString("\n   • " + place)
		}
		return b.String()
	case response.Type == model.ResponseTypePlan:
		return prefix + formatItinerary(response.Itinerary)
	default:
		return prefix + "I'm not sure how to handle that yet."
	}
}

func formatItinerary(itinerary model.Itinerary) string {
	if len(itinerary) == 0 {
		return "I could not build an itinerary for that trip."
	}
	var b strings.Builder
	b.WriteString("📅 Your Trip Plan:")
	for _, day := range itinerary {
		b.WriteString(fmt.Sprintf("\n   %s (%s Zone):", day.Day, day.Zone))
		b.WriteString("\n     🌅 Morning:   " + day.Morning)
		b.WriteString("\n     ☀️ Afternoon: " + day.Afternoon)
		b.WriteString("\n     🌙 Evening:   " + day.Evening)
	}
	return b.String()
}
