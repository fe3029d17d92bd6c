// Package daemon provides the long-running runway watch service: it re-reads
// the data files on an interval, recomputes every scenario, and serves the
// latest results over a local HTTP API.
package daemon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"valvelet/internal/pipeline"

	"github.com/sirupsen/logrus"
)

// Config controls the daemon runtime behavior.
type Config struct {
	DataDir      string
	HorizonDays  int
	Interval     time.Duration
	Addr         string
	EventsBuffer int
	Log          *logrus.Logger
}

// ScenarioSnapshot is one scenario's state inside a Snapshot.
type ScenarioSnapshot struct {
	Name        string     `json:"name"`
	DeathDay    *time.Time `json:"death_day,omitempty"`
	DailyBurn   string     `json:"daily_burn"`
	MonthlyBurn string     `json:"monthly_burn"`
	NetDaily    string     `json:"net_daily"`
}

// Snapshot is the compact simulation state for status/event payloads.
// Money amounts are decimal strings to avoid float drift in consumers.
type Snapshot struct {
	At        time.Time          `json:"at"`
	Balance   string             `json:"balance"`
	AsOf      time.Time          `json:"as_of"`
	Scenarios []ScenarioSnapshot `json:"scenarios"`
}

// Delta captures what changed between polls.
type Delta struct {
	BalanceChanged bool `json:"balance_changed"`
	// ShiftedScenarios lists scenarios whose death day moved, appeared,
	// or disappeared since the previous poll.
	ShiftedScenarios []string `json:"shifted_scenarios,omitempty"`
}

func (d Delta) isZero() bool {
	return !d.BalanceChanged && len(d.ShiftedScenarios) == 0
}

// Event is emitted whenever the simulation result changes.
type Event struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Snapshot  Snapshot  `json:"snapshot"`
	Delta     Delta     `json:"delta"`
}

// Status is served at /v1/status.
type Status struct {
	StartedAt       time.Time `json:"started_at"`
	LastPollAt      time.Time `json:"last_poll_at"`
	PollIntervalSec int       `json:"poll_interval_sec"`
	PollCount       int64     `json:"poll_count"`
	DataDir         string    `json:"data_dir"`
	HorizonDays     int       `json:"horizon_days"`
	Summary         Snapshot  `json:"summary"`
	LastError       string    `json:"last_error,omitempty"`
	EventCount      int       `json:"event_count"`
	SubscriberCount int       `json:"subscriber_count"`
}

// Service provides the daemon runtime and HTTP API.
type Service struct {
	cfg Config
	log *logrus.Logger

	mu          sync.RWMutex
	startedAt   time.Time
	lastPollAt  time.Time
	pollCount   int64
	lastError   string
	hasSnapshot bool
	snapshot    Snapshot
	nextEventID int64
	events      []Event

	nextSubID int
	subs      map[int]chan Event
}

// New returns a new daemon service with the provided config.
func New(cfg Config) *Service {
	if cfg.Interval < 2*time.Second {
		cfg.Interval = 30 * time.Second
	}
	if cfg.EventsBuffer < 1 {
		cfg.EventsBuffer = 200
	}
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:8791"
	}
	log := cfg.Log
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &Service{
		cfg:       cfg,
		log:       log,
		startedAt: time.Now(),
		subs:      make(map[int]chan Event),
	}
}

// Run starts HTTP endpoints and polling until ctx is canceled.
func (s *Service) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/v1/status", s.handleStatus)
	mux.HandleFunc("/v1/events", s.handleEvents)
	mux.HandleFunc("/v1/stream", s.handleStream)

	server := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Seed initial snapshot so status is useful immediately.
	s.pollOnce()

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		case <-ticker.C:
			s.pollOnce()
		case err := <-errCh:
			return fmt.Errorf("daemon http server: %w", err)
		}
	}
}

func (s *Service) pollOnce() {
	lr, err := pipeline.Run(s.cfg.DataDir, s.cfg.HorizonDays, s.log)
	if err != nil {
		s.mu.Lock()
		s.lastError = err.Error()
		s.lastPollAt = time.Now()
		s.pollCount++
		s.mu.Unlock()
		s.log.WithError(err).Warn("poll failed, keeping previous snapshot")
		return
	}

	now := time.Now()
	snap := snapshotFromResult(lr, now)

	var (
		ev      Event
		publish bool
	)

	s.mu.Lock()
	prev := s.snapshot
	prevExists := s.hasSnapshot

	s.hasSnapshot = true
	s.snapshot = snap
	s.lastPollAt = now
	s.pollCount++
	s.lastError = ""

	if !prevExists {
		s.nextEventID++
		ev = Event{
			ID:        s.nextEventID,
			Type:      "snapshot",
			Timestamp: now,
			Snapshot:  snap,
			Delta:     Delta{},
		}
		publish = true
	} else {
		delta := diffSnapshots(prev, snap)
		if !delta.isZero() {
			s.nextEventID++
			ev = Event{
				ID:        s.nextEventID,
				Type:      "simulation_delta",
				Timestamp: now,
				Snapshot:  snap,
				Delta:     delta,
			}
			publish = true
		}
	}
	s.mu.Unlock()

	if publish {
		s.publishEvent(ev)
	}
}

func snapshotFromResult(lr *pipeline.LoadResult, at time.Time) Snapshot {
	snap := Snapshot{
		At:      at,
		Balance: lr.Inputs.Balance.Amount.String(),
		AsOf:    lr.Inputs.Balance.AsOf,
	}
	for _, m := range lr.Result.Metrics {
		snap.Scenarios = append(snap.Scenarios, ScenarioSnapshot{
			Name:        m.Scenario,
			DeathDay:    m.DeathDay,
			DailyBurn:   m.DailyBurn.String(),
			MonthlyBurn: m.MonthlyBurn.String(),
			NetDaily:    m.NetDaily.String(),
		})
	}
	return snap
}

func diffSnapshots(prev, curr Snapshot) Delta {
	d := Delta{
		BalanceChanged: prev.Balance != curr.Balance || !prev.AsOf.Equal(curr.AsOf),
	}

	prevDeaths := make(map[string]*time.Time, len(prev.Scenarios))
	seen := make(map[string]bool, len(prev.Scenarios))
	for _, sc := range prev.Scenarios {
		prevDeaths[sc.Name] = sc.DeathDay
		seen[sc.Name] = true
	}

	for _, sc := range curr.Scenarios {
		old, existed := prevDeaths[sc.Name]
		delete(seen, sc.Name)
		if !existed {
			d.ShiftedScenarios = append(d.ShiftedScenarios, sc.Name)
			continue
		}
		if !sameDeathDay(old, sc.DeathDay) {
			d.ShiftedScenarios = append(d.ShiftedScenarios, sc.Name)
		}
	}
	// Scenarios removed since the last poll.
	for name := range seen {
		d.ShiftedScenarios = append(d.ShiftedScenarios, name)
	}

	return d
}

func sameDeathDay(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func (s *Service) publishEvent(ev Event) {
	s.mu.Lock()
	s.events = append(s.events, ev)
	if len(s.events) > s.cfg.EventsBuffer {
		s.events = s.events[len(s.events)-s.cfg.EventsBuffer:]
	}

	for _, ch := range s.subs {
		select {
		case ch <- ev:
		default:
		}
	}
	s.mu.Unlock()
}

func (s *Service) snapshotStatus() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Status{
		StartedAt:       s.startedAt,
		LastPollAt:      s.lastPollAt,
		PollIntervalSec: int(s.cfg.Interval.Seconds()),
		PollCount:       s.pollCount,
		DataDir:         s.cfg.DataDir,
		HorizonDays:     s.cfg.HorizonDays,
		Summary:         s.snapshot,
		LastError:       s.lastError,
		EventCount:      len(s.events),
		SubscriberCount: len(s.subs),
	}
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Service) handleStatus(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s.snapshotStatus())
}

func (s *Service) handleEvents(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	events := make([]Event, len(s.events))
	copy(events, s.events)
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(events)
}

func (s *Service) handleStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch := make(chan Event, 16)
	id := s.addSubscriber(ch)
	defer s.removeSubscriber(id)

	// Send current snapshot immediately.
	current := Event{
		Type:      "snapshot",
		Timestamp: time.Now(),
		Snapshot:  s.snapshotStatus().Summary,
	}
	writeSSE(w, current)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case ev := <-ch:
			writeSSE(w, ev)
			flusher.Flush()
		}
	}
}

func writeSSE(w http.ResponseWriter, ev Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		return
	}
	_, _ = fmt.Fprintf(w, "event: %s\n", ev.Type)
	_, _ = fmt.Fprintf(w, "data: %s\n\n", data)
}

func (s *Service) addSubscriber(ch chan Event) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSubID++
	id := s.nextSubID
	s.subs[id] = ch
	return id
}

func (s *Service) removeSubscriber(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subs, id)
}
