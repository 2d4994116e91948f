// Package tui is the terminal front end: the same form as the web page, driven by
// one revision.Session on the Bubble Tea event loop.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"reminder_reviser/render"
	"reminder_reviser/revision"
)

type revisionDoneMsg struct {
	attempt *revision.Attempt
	result  revision.Result
	err     error
}

// Model is the Bubble Tea model. State lives in the session; the model only keeps
// widgets and the rendered feedback.
type Model struct {
	session *revision.Session
	input   textarea.Model
	spinner spinner.Model

	sampleIdx int
	status    string
	feedback  string
	style     string
	width     int
}

// Options configure a Model.
type Options struct {
	// Clipboard defaults to the system clipboard.
	Clipboard revision.Clipboard
	// MarkdownStyle is a glamour style name; "dark" when empty.
	MarkdownStyle string
}

// SystemClipboard writes through github.com/atotto/clipboard.
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }

func New(reviser revision.Reviser, events revision.Recorder, opts Options) Model {
	clip := opts.Clipboard
	if clip == nil {
		clip = SystemClipboard{}
	}
	ta := textarea.New()
	ta.Placeholder = "催促やリマインドの文面を入力してください..."
	ta.ShowLineNumbers = false
	ta.SetHeight(6)
	ta.SetWidth(72)
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		session:   revision.NewSession("tui", reviser, events, clip),
		input:     ta,
		spinner:   sp,
		sampleIdx: -1,
		style:     opts.MarkdownStyle,
		width:     76,
	}
}

// Session exposes the controller, mainly for tests.
func (m Model) Session() *revision.Session { return m.session }

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width - 4
		if m.width < 20 {
			m.width = 20
		}
		m.input.SetWidth(m.width)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "ctrl+t":
			_ = m.session.SelectTone(revision.NextTone(m.session.Snapshot().SelectedTone))
			return m, nil
		case "ctrl+p":
			samples := revision.Samples()
			m.sampleIdx = (m.sampleIdx + 1) % len(samples)
			m.session.LoadSample(samples[m.sampleIdx])
			m.input.SetValue(samples[m.sampleIdx].Text)
			return m, nil
		case "ctrl+r":
			return m.startRevision()
		case "ctrl+y":
			st := m.session.Snapshot()
			if st.RevisedText == "" {
				return m, nil
			}
			m.session.CopyResult(st.RevisedText)
			m.status = "✓ コピーしました"
			return m, nil
		}

	case revisionDoneMsg:
		st := m.session.Finish(msg.attempt, msg.result, msg.err)
		m.feedback = ""
		if st.FeedbackText != "" {
			if out, err := render.Terminal(st.FeedbackText, m.width, m.style); err == nil {
				m.feedback = out
			} else {
				m.feedback = st.FeedbackText
			}
		}
		return m, nil

	case spinner.TickMsg:
		if !m.session.Snapshot().Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.session.SetInputText(m.input.Value())
	return m, cmd
}

// startRevision enters the in-flight state and hands the network call to a command.
func (m Model) startRevision() (tea.Model, tea.Cmd) {
	m.status = ""
	att, err := m.session.Begin()
	if err != nil {
		return m, nil
	}
	m.feedback = ""
	run := func() tea.Msg {
		res, err := att.Run(context.Background())
		return revisionDoneMsg{attempt: att, result: res, err: err}
	}
	return m, tea.Batch(run, m.spinner.Tick)
}

func (m Model) View() string {
	st := m.session.Snapshot()
	var b strings.Builder

	b.WriteString(titleStyle.Render("✉️  催促文面添削"))
	b.WriteString("\n")
	b.WriteString(taglineStyle.Render("やさしく、でも、きちんと伝わる文面に。"))
	b.WriteString("\n\n")

	var samples []string
	for _, s := range revision.Samples() {
		samples = append(samples, s.Label)
	}
	b.WriteString(labelStyle.Render("お試し： " + strings.Join(samples, " / ")))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("トーン："))
	for _, t := range revision.Tones() {
		label := fmt.Sprintf("%s %s (%s)", t.Emoji, t.Label, t.Description)
		if t.Key == st.SelectedTone {
			b.WriteString(toneSelectedStyle.Render(label))
		} else {
			b.WriteString(toneStyle.Render(label))
		}
	}
	b.WriteString("\n\n")

	switch {
	case st.Loading:
		b.WriteString(m.spinner.View() + " 添削しています...")
	case strings.TrimSpace(st.OriginalText) == "":
		b.WriteString(helpStyle.Render("[ 添削する ] 文面を入力してください"))
	default:
		b.WriteString(statusStyle.Render("[ 添削する ] ctrl+r"))
	}
	b.WriteString("\n")

	if st.ErrorMessage != "" {
		b.WriteString(errorStyle.Render(st.ErrorMessage))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	if st.HasResult() {
		b.WriteString("\n")
		revised := lipgloss.JoinVertical(lipgloss.Left, "✓ 添削後の文面", "", st.RevisedText)
		b.WriteString(panelStyle.Width(m.width).Render(revised))
		b.WriteString("\n")
		feedback := m.feedback
		if feedback == "" {
			feedback = st.FeedbackText
		}
		b.WriteString(panelStyle.Width(m.width).Render(lipgloss.JoinVertical(lipgloss.Left, "💡 改善ポイント", feedback)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("ctrl+t トーン切替 • ctrl+p お試し文面 • ctrl+r 添削 • ctrl+y コピー • esc 終了"))
	return b.String()
}

// Run starts the program on the terminal and blocks until the user quits.
func Run(reviser revision.Reviser, events revision.Recorder, opts Options) error {
	_, err := tea.NewProgram(New(reviser, events, opts), tea.WithAltScreen()).Run()
	return err
}
