// Package analytics is a fire-and-forget event sink backed by the GA4 Measurement Protocol.
//
// The sink is process-wide: Init is called once at startup, and RecordPageView and
// RecordEvent are no-ops until then (or when no measurement id is configured).
// Sends never block the caller and their failures are only logged.
package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"reminder_reviser/logging"
)

// DefaultEndpoint is the GA4 Measurement Protocol collection URL.
const DefaultEndpoint = "https://www.google-analytics.com/mp/collect"

// Config configures the sink. An empty MeasurementID disables it.
type Config struct {
	MeasurementID string
	APISecret     string
	Endpoint      string
	HTTPClient    *http.Client
}

// Recorder is implemented by Sink and by the package-level default.
type Recorder interface {
	RecordPageView(page string)
	RecordEvent(category, action, label string)
}

// Sink sends events for one measurement id under one client id.
type Sink struct {
	measurementID string
	apiSecret     string
	endpoint      string
	clientID      string
	client        *http.Client
	wg            sync.WaitGroup
}

type mpEvent struct {
	Name   string            `json:"name"`
	Params map[string]string `json:"params"`
}

type mpPayload struct {
	ClientID string    `json:"client_id"`
	Events   []mpEvent `json:"events"`
}

// NewSink returns nil when cfg has no measurement id. A nil *Sink is a valid no-op Recorder.
func NewSink(cfg Config) *Sink {
	if cfg.MeasurementID == "" {
		return nil
	}
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}
	return &Sink{
		measurementID: cfg.MeasurementID,
		apiSecret:     cfg.APISecret,
		endpoint:      endpoint,
		clientID:      uuid.NewString(),
		client:        client,
	}
}

func (s *Sink) RecordPageView(page string) {
	if s == nil {
		return
	}
	s.send(mpEvent{Name: "page_view", Params: map[string]string{"page_location": page}})
}

func (s *Sink) RecordEvent(category, action, label string) {
	if s == nil {
		return
	}
	s.send(mpEvent{Name: action, Params: map[string]string{
		"event_category": category,
		"event_label":    label,
	}})
}

// Flush waits for in-flight sends.
func (s *Sink) Flush() {
	if s == nil {
		return
	}
	s.wg.Wait()
}

func (s *Sink) send(ev mpEvent) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.post(ev); err != nil {
			logging.Debug("Analytics send failed", zap.String("event", ev.Name), zap.Error(err))
		}
	}()
}

func (s *Sink) post(ev mpEvent) error {
	body, err := json.Marshal(mpPayload{ClientID: s.clientID, Events: []mpEvent{ev}})
	if err != nil {
		return err
	}
	u, err := url.Parse(s.endpoint)
	if err != nil {
		return err
	}
	q := u.Query()
	q.Set("measurement_id", s.measurementID)
	if s.apiSecret != "" {
		q.Set("api_secret", s.apiSecret)
	}
	u.RawQuery = q.Encode()

	ctx, cancel := context.WithTimeout(context.Background(), s.client.Timeout+time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

var (
	mu          sync.RWMutex
	defaultSink *Sink
)

// Init installs the process-wide sink. Call it before any front end is constructed.
func Init(cfg Config) {
	sink := NewSink(cfg)
	mu.Lock()
	defaultSink = sink
	mu.Unlock()
	if sink != nil {
		logging.Info("Analytics initialized", zap.String("measurement_id", cfg.MeasurementID))
	}
}

func current() *Sink {
	mu.RLock()
	defer mu.RUnlock()
	return defaultSink
}

func RecordPageView(page string) {
	current().RecordPageView(page)
}

func RecordEvent(category, action, label string) {
	current().RecordEvent(category, action, label)
}

// Flush waits for in-flight sends of the process-wide sink.
func Flush() {
	current().Flush()
}

type global struct{}

func (global) RecordPageView(page string)                 { RecordPageView(page) }
func (global) RecordEvent(category, action, label string) { RecordEvent(category, action, label) }

// Default returns a Recorder that forwards to the process-wide sink.
func Default() Recorder {
	return global{}
}
