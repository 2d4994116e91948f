package server

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"reminder_reviser/analytics"
	"reminder_reviser/logging"
	"reminder_reviser/revision"
)

//go:embed web/index.html web/static
var embeddedWeb embed.FS

// Server serves the single-page form. Each page load gets its own session.
type Server struct {
	reviser  revision.Reviser
	events   analytics.Recorder
	store    *sessionStore
	page     *template.Template
	staticFS http.Handler
}

type sessionStore struct {
	mu       sync.Mutex
	sessions map[string]*revision.Session
	ttl      time.Duration
}

func newStore(ttl time.Duration) *sessionStore {
	return &sessionStore{sessions: make(map[string]*revision.Session), ttl: ttl}
}

func (s *sessionStore) set(id string, sess *revision.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictLocked(time.Now())
	s.sessions[id] = sess
}

func (s *sessionStore) get(id string) (*revision.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

func (s *sessionStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// evictLocked drops idle sessions; in-flight ones are kept regardless of age.
func (s *sessionStore) evictLocked(now time.Time) {
	if s.ttl <= 0 {
		return
	}
	for id, sess := range s.sessions {
		if now.Sub(sess.LastUsed()) > s.ttl && !sess.Snapshot().Loading {
			delete(s.sessions, id)
		}
	}
}

// Options tune the server; the zero value is usable.
type Options struct {
	SessionTTL time.Duration
	// Events defaults to the process-wide analytics sink.
	Events analytics.Recorder
}

func New(reviser revision.Reviser, opts Options) (*Server, error) {
	if reviser == nil {
		return nil, errors.New("reviser required")
	}
	page, err := template.New("index.html").Funcs(pageFuncs).ParseFS(embeddedWeb, "web/index.html")
	if err != nil {
		return nil, err
	}
	static, err := fs.Sub(embeddedWeb, "web/static")
	if err != nil {
		return nil, err
	}
	events := opts.Events
	if events == nil {
		events = analytics.Default()
	}
	return &Server{
		reviser:  reviser,
		events:   events,
		store:    newStore(opts.SessionTTL),
		page:     page,
		staticFS: http.StripPrefix("/static/", http.FileServer(http.FS(static))),
	}, nil
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleNewSession)
	mux.HandleFunc("GET /s/{id}", s.handlePage)
	mux.HandleFunc("POST /s/{id}", s.handleAction)
	mux.HandleFunc("POST /s/{id}/copy", s.handleCopy)
	mux.HandleFunc("GET /api/sessions/{id}", s.handleSessionState)
	mux.Handle("GET /static/", s.staticFS)
	return logMiddleware(mux)
}

// --- Handlers ---

func (s *Server) handleNewSession(w http.ResponseWriter, r *http.Request) {
	id := newSessionID()
	s.store.set(id, revision.NewSession(id, s.reviser, s.events, browserClipboard{}))
	s.events.RecordPageView(r.URL.Path)
	http.Redirect(w, r, "/s/"+id, http.StatusSeeOther)
}

func (s *Server) session(w http.ResponseWriter, r *http.Request) (*revision.Session, bool) {
	sess, ok := s.store.get(r.PathValue("id"))
	if !ok {
		http.Error(w, "session not found", http.StatusNotFound)
		return nil, false
	}
	return sess, true
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	view, err := newPageView(sess.ID, sess.Snapshot())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.page.Execute(w, view); err != nil {
		logging.Error("Render page failed", zap.String("session_id", sess.ID), zap.Error(err))
	}
}

// handleAction validates the pressed button, then applies the textarea and the button.
// A rejected action leaves the session untouched.
func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	apply, err := parseAction(r.PostForm.Get("action"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if _, present := r.PostForm["text"]; present {
		sess.SetInputText(r.PostForm.Get("text"))
	}
	// the call runs to completion even if the browser goes away
	apply(context.WithoutCancel(r.Context()), sess)
	http.Redirect(w, r, "/s/"+sess.ID, http.StatusSeeOther)
}

type sessionAction func(ctx context.Context, sess *revision.Session)

// parseAction maps a form action value to the session transition it triggers.
func parseAction(action string) (sessionAction, error) {
	switch {
	case action == "revise":
		return func(ctx context.Context, sess *revision.Session) {
			if _, err := sess.Submit(ctx); errors.Is(err, revision.ErrBusy) {
				logging.Debug("Ignored double submit", zap.String("session_id", sess.ID))
			}
		}, nil
	case strings.HasPrefix(action, "tone:"):
		key := revision.ToneKey(strings.TrimPrefix(action, "tone:"))
		if _, ok := revision.LookupTone(key); !ok {
			return nil, fmt.Errorf("unknown tone %q", key)
		}
		return func(_ context.Context, sess *revision.Session) {
			_ = sess.SelectTone(key)
		}, nil
	case strings.HasPrefix(action, "sample:"):
		idx, err := strconv.Atoi(strings.TrimPrefix(action, "sample:"))
		sample, ok := revision.SampleAt(idx)
		if err != nil || !ok {
			return nil, errors.New("unknown sample")
		}
		return func(_ context.Context, sess *revision.Session) {
			sess.LoadSample(sample)
		}, nil
	case action == "":
		return func(context.Context, *revision.Session) {}, nil
	default:
		return nil, errors.New("unknown action")
	}
}

// handleCopy records a copy; the browser itself writes the clipboard.
func (s *Server) handleCopy(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	sess.CopyResult(sess.Snapshot().RevisedText)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSessionState(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, sessionResp{SessionID: sess.ID, State: sess.Snapshot()})
}

type sessionResp struct {
	SessionID string         `json:"session_id"`
	State     revision.State `json:"state"`
}

// browserClipboard stands in for the page's navigator.clipboard write.
type browserClipboard struct{}

func (browserClipboard) WriteAll(string) error { return nil }

// --- Helpers ---

func newSessionID() string {
	return uuid.NewString()
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logging.LogHTTPRequest(r.RemoteAddr, r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}
