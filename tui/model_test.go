package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reminder_reviser/revision"
)

type stubReviser struct {
	configured bool
	result     revision.Result
	err        error
	calls      int
}

func (s *stubReviser) Configured() bool { return s.configured }

func (s *stubReviser) Revise(context.Context, string, revision.ToneVariant) (revision.Result, error) {
	s.calls++
	return s.result, s.err
}

type memClipboard struct{ text string }

func (c *memClipboard) WriteAll(text string) error {
	c.text = text
	return nil
}

type countingRecorder struct{ actions []string }

func (c *countingRecorder) RecordEvent(_, action, _ string) { c.actions = append(c.actions, action) }

func key(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func newModel(rev *stubReviser) (Model, *memClipboard, *countingRecorder) {
	clip := &memClipboard{}
	rec := &countingRecorder{}
	return New(rev, rec, Options{Clipboard: clip, MarkdownStyle: "notty"}), clip, rec
}

func TestToneCycle(t *testing.T) {
	m, _, rec := newModel(&stubReviser{})
	assert.Equal(t, revision.ToneStandard, m.Session().Snapshot().SelectedTone)

	m, _ = update(t, m, key(tea.KeyCtrlT))
	assert.Equal(t, revision.ToneFirm, m.Session().Snapshot().SelectedTone)
	m, _ = update(t, m, key(tea.KeyCtrlT))
	assert.Equal(t, revision.ToneSoft, m.Session().Snapshot().SelectedTone)
	assert.Equal(t, []string{"select_tone", "select_tone"}, rec.actions)
}

func TestTypingUpdatesSession(t *testing.T) {
	m, _, _ := newModel(&stubReviser{})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("確認")})
	assert.Equal(t, "確認", m.Session().Snapshot().OriginalText)
}

func TestSampleLoadsIntoInput(t *testing.T) {
	m, _, rec := newModel(&stubReviser{})
	m, _ = update(t, m, key(tea.KeyCtrlP))
	first, _ := revision.SampleAt(0)
	assert.Equal(t, first.Text, m.Session().Snapshot().OriginalText)
	assert.Equal(t, first.Text, m.input.Value())
	assert.Equal(t, []string{"use_sample"}, rec.actions)
}

func TestReviseRunsOffLoopAndFinishes(t *testing.T) {
	rev := &stubReviser{configured: true, result: revision.Result{
		Revised:  "拝啓...",
		Feedback: "- **ポイント1**: 丁寧に",
	}}
	m, clip, _ := newModel(rev)
	m, _ = update(t, m, key(tea.KeyCtrlP))

	m, cmd := update(t, m, key(tea.KeyCtrlR))
	require.NotNil(t, cmd)
	assert.True(t, m.Session().Snapshot().Loading)
	assert.Zero(t, rev.calls, "the network call runs inside the command")
	assert.Contains(t, m.View(), "添削しています")

	// a second ctrl+r while loading is ignored
	m, _ = update(t, m, key(tea.KeyCtrlR))

	done := runUntilDone(t, cmd)
	m, _ = update(t, m, done)
	st := m.Session().Snapshot()
	assert.False(t, st.Loading)
	assert.Equal(t, "拝啓...", st.RevisedText)
	assert.Equal(t, 1, rev.calls)
	assert.Contains(t, m.View(), "ポイント1")

	m, _ = update(t, m, key(tea.KeyCtrlY))
	assert.Equal(t, "拝啓...", clip.text)
	assert.Contains(t, m.View(), "コピーしました")
}

func TestReviseEmptyShowsValidationError(t *testing.T) {
	rev := &stubReviser{configured: true}
	m, _, _ := newModel(rev)
	m, cmd := update(t, m, key(tea.KeyCtrlR))
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "添削する文面を入力してください")
	assert.Zero(t, rev.calls)
}

func TestQuitKeys(t *testing.T) {
	m, _, _ := newModel(&stubReviser{})
	_, cmd := update(t, m, key(tea.KeyEsc))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

// runUntilDone executes a batch command and returns the revision result message.
func runUntilDone(t *testing.T, cmd tea.Cmd) revisionDoneMsg {
	t.Helper()
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			if c == nil {
				continue
			}
			if done, ok := c().(revisionDoneMsg); ok {
				return done
			}
		}
	}
	done, ok := msg.(revisionDoneMsg)
	require.True(t, ok, "no revisionDoneMsg produced")
	return done
}
