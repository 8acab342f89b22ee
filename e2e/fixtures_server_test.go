//go:build e2e && unix

package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

// event mirrors the wire shape the service returns
type event struct {
	Name          string `json:"name"`
	Date          string `json:"date"`
	Status        string `json:"status"`
	DaysRemaining int    `json:"days_remaining"`
}

// EventServer is an in-memory countdown service for driving the binary
type EventServer struct {
	mu     sync.Mutex
	events []event
	URL    string // base URL including /api
}

// NewEventServer starts a server seeded with name/date pairs
func NewEventServer(t *testing.T, seed ...[2]string) *EventServer {
	t.Helper()
	s := &EventServer{}
	for _, pair := range seed {
		s.events = append(s.events, s.build(pair[0], pair[1]))
	}
	ts := httptest.NewServer(s.handler())
	t.Cleanup(ts.Close)
	s.URL = ts.URL + "/api"
	return s
}

// Names returns the stored event names in order
func (s *EventServer) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.events))
	for _, ev := range s.events {
		names = append(names, ev.Name)
	}
	return names
}

func (s *EventServer) build(name, date string) event {
	ev := event{Name: name, Date: date, Status: "ACTIVE"}
	if d, err := time.Parse("2006-01-02", date); err == nil {
		ev.DaysRemaining = int(time.Until(d).Hours() / 24)
		if ev.DaysRemaining < 0 {
			ev.Status = "EXPIRED"
			ev.DaysRemaining = 0
		}
	}
	return ev
}

func (s *EventServer) handler() http.Handler {
	writeJSON := func(w http.ResponseWriter, code int, v any) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(v)
	}
	detail := func(w http.ResponseWriter, code int, msg string) {
		writeJSON(w, code, map[string]string{"detail": msg})
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/events", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		list := []event{}
		for _, ev := range s.events {
			if st := r.URL.Query().Get("status"); st == "" || ev.Status == st {
				list = append(list, ev)
			}
		}
		writeJSON(w, http.StatusOK, map[string]any{"events": list, "total": len(list)})
	})
	mux.HandleFunc("GET /api/events/{name}", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		for _, ev := range s.events {
			if ev.Name == r.PathValue("name") {
				writeJSON(w, http.StatusOK, ev)
				return
			}
		}
		detail(w, http.StatusNotFound, "Event not found")
	})
	mux.HandleFunc("GET /api/stats", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		active := 0
		for _, ev := range s.events {
			if ev.Status == "ACTIVE" {
				active++
			}
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"total_events":   len(s.events),
			"active_events":  active,
			"expired_events": len(s.events) - active,
		})
	})
	mux.HandleFunc("POST /api/events", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Name string `json:"name"`
			Date string `json:"date"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			detail(w, http.StatusUnprocessableEntity, "invalid body")
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		for _, ev := range s.events {
			if ev.Name == req.Name {
				detail(w, http.StatusBadRequest, "Event already exists")
				return
			}
		}
		ev := s.build(req.Name, req.Date)
		s.events = append(s.events, ev)
		writeJSON(w, http.StatusCreated, ev)
	})
	mux.HandleFunc("PUT /api/events/{name}", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Date string `json:"date"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		s.mu.Lock()
		defer s.mu.Unlock()
		for i := range s.events {
			if s.events[i].Name == r.PathValue("name") {
				s.events[i] = s.build(s.events[i].Name, req.Date)
				writeJSON(w, http.StatusOK, s.events[i])
				return
			}
		}
		detail(w, http.StatusNotFound, "Event not found")
	})
	mux.HandleFunc("DELETE /api/events/{name}", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i := range s.events {
			if s.events[i].Name == r.PathValue("name") {
				s.events = append(s.events[:i], s.events[i+1:]...)
				w.WriteHeader(http.StatusNoContent)
				return
			}
		}
		detail(w, http.StatusNotFound, "Event not found")
	})
	return mux
}
