package revision

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"reminder_reviser/logging"
)

// Reviser performs the network leg of a revision.
type Reviser interface {
	Configured() bool
	Revise(ctx context.Context, text string, tone ToneVariant) (Result, error)
}

// Recorder receives fire-and-forget analytics events.
type Recorder interface {
	RecordEvent(category, action, label string)
}

// Clipboard receives copied text.
type Clipboard interface {
	WriteAll(text string) error
}

// Session owns the state of one page load and the transitions between states.
// All methods are safe for concurrent use.
type Session struct {
	ID string

	reviser   Reviser
	events    Recorder
	clipboard Clipboard

	mu       sync.Mutex
	state    State
	lastUsed time.Time
}

// Attempt is one in-flight revision, created by Begin and closed by Finish.
type Attempt struct {
	text    string
	tone    ToneVariant
	reviser Reviser
}

// Tone returns the tone the attempt was started with.
func (a *Attempt) Tone() ToneKey { return a.tone.Key }

// Run performs the network call. It does not touch session state.
func (a *Attempt) Run(ctx context.Context) (Result, error) {
	return a.reviser.Revise(ctx, a.text, a.tone)
}

// NewSession creates a session in the idle state with the default tone.
// events and clipboard may be nil.
func NewSession(id string, reviser Reviser, events Recorder, clipboard Clipboard) *Session {
	if events == nil {
		events = nopRecorder{}
	}
	if clipboard == nil {
		clipboard = nopClipboard{}
	}
	return &Session{
		ID:        id,
		reviser:   reviser,
		events:    events,
		clipboard: clipboard,
		state:     State{SelectedTone: DefaultTone},
		lastUsed:  time.Now(),
	}
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// LastUsed returns the time of the most recent action.
func (s *Session) LastUsed() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastUsed
}

func (s *Session) touch() {
	s.lastUsed = time.Now()
}

func (s *Session) SetInputText(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.state.OriginalText = text
}

// SelectTone switches the active tone. Unknown keys leave the state unchanged.
func (s *Session) SelectTone(key ToneKey) error {
	if _, ok := LookupTone(key); !ok {
		return fmt.Errorf("unknown tone %q", key)
	}
	s.mu.Lock()
	s.touch()
	s.state.SelectedTone = key
	s.mu.Unlock()

	s.events.RecordEvent("User", "select_tone", string(key))
	return nil
}

func (s *Session) LoadSample(sample SampleText) {
	s.mu.Lock()
	s.touch()
	s.state.OriginalText = sample.Text
	s.mu.Unlock()

	s.events.RecordEvent("User", "use_sample", sample.Label)
}

// CopyResult places text on the clipboard. Clipboard failures are logged, never returned.
func (s *Session) CopyResult(text string) {
	s.mu.Lock()
	s.touch()
	s.mu.Unlock()

	if err := s.clipboard.WriteAll(text); err != nil {
		logging.Debug("Clipboard write failed", zap.String("session_id", s.ID), zap.Error(err))
	}
	s.events.RecordEvent("User", "copy_text", "revised_text")
}

// Begin validates the current input and enters the in-flight state.
// Validation and configuration failures are recorded in the state and returned;
// they leave any previous result in place.
func (s *Session) Begin() (*Attempt, error) {
	s.mu.Lock()
	s.touch()
	if s.state.Loading {
		s.mu.Unlock()
		return nil, ErrBusy
	}

	var failure error
	switch {
	case strings.TrimSpace(s.state.OriginalText) == "":
		failure = NewValidationError()
	case !s.reviser.Configured():
		failure = NewConfigurationError()
	}
	if failure != nil {
		s.state.ErrorMessage = UserMessage(failure)
		s.mu.Unlock()
		s.recordFailure(failure)
		return nil, failure
	}

	tone, ok := LookupTone(s.state.SelectedTone)
	if !ok {
		tone, _ = LookupTone(DefaultTone)
	}
	s.state.Loading = true
	s.state.ErrorMessage = ""
	s.state.RevisedText = ""
	s.state.FeedbackText = ""
	att := &Attempt{text: s.state.OriginalText, tone: tone, reviser: s.reviser}
	s.mu.Unlock()

	logging.Info("Revision started",
		zap.String("session_id", s.ID),
		zap.String("tone", string(tone.Key)),
		zap.Int("length", len(att.text)),
	)
	return att, nil
}

// Finish applies the outcome of att and returns the resulting state.
func (s *Session) Finish(att *Attempt, res Result, err error) State {
	s.mu.Lock()
	s.touch()
	s.state.Loading = false
	if err != nil {
		s.state.ErrorMessage = UserMessage(err)
	} else {
		s.state.RevisedText = res.Revised
		s.state.FeedbackText = res.Feedback
		s.state.ErrorMessage = ""
	}
	snapshot := s.state
	s.mu.Unlock()

	if err != nil {
		logging.Warn("Revision failed",
			zap.String("session_id", s.ID),
			zap.String("kind", KindOf(err).String()),
			zap.Error(err),
		)
		s.recordFailure(err)
		return snapshot
	}
	logging.Info("Revision succeeded", zap.String("session_id", s.ID), zap.String("tone", string(att.tone.Key)))
	s.events.RecordEvent("Revision", "revision_success", string(att.tone.Key))
	return snapshot
}

// Submit runs a whole attempt synchronously: Begin, the network call, Finish.
func (s *Session) Submit(ctx context.Context) (State, error) {
	att, err := s.Begin()
	if err != nil {
		return s.Snapshot(), err
	}
	res, err := att.Run(ctx)
	return s.Finish(att, res, err), err
}

func (s *Session) recordFailure(err error) {
	action, label := analyticsEvent(err)
	s.events.RecordEvent("Error", action, label)
}

type nopRecorder struct{}

func (nopRecorder) RecordEvent(string, string, string) {}

type nopClipboard struct{}

func (nopClipboard) WriteAll(string) error { return nil }
