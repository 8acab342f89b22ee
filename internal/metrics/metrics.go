package metrics

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"countdown/internal/eventbus"
)

// Recorder turns bus events into Prometheus metrics
type Recorder struct {
	registry  *prometheus.Registry
	requests  *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	mutations *prometheus.CounterVec
	errors    prometheus.Counter
}

// NewRecorder creates a recorder with its own registry
func NewRecorder() *Recorder {
	r := &Recorder{registry: prometheus.NewRegistry()}

	r.requests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "countdown",
		Name:      "api_requests_total",
		Help:      "API requests by operation and outcome",
	}, []string{"op", "outcome"})
	r.duration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "countdown",
		Name:      "api_request_duration_seconds",
		Help:      "API request latency",
		Buckets:   prometheus.DefBuckets,
	}, []string{"op"})
	r.mutations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "countdown",
		Name:      "mutations_total",
		Help:      "Mutations accepted by the server",
	}, []string{"kind"})
	r.errors = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "countdown",
		Name:      "errors_total",
		Help:      "Errors surfaced by the client",
	})

	r.registry.MustRegister(r.requests, r.duration, r.mutations, r.errors)
	return r
}

// Subscribe attaches the recorder to the bus and returns an unsubscribe func
func (r *Recorder) Subscribe(bus eventbus.EventBus) func() {
	unsubs := []func(){
		bus.Subscribe(eventbus.EventRequestCompleted, r.observe),
		bus.Subscribe(eventbus.EventMutationApplied, r.observe),
		bus.Subscribe(eventbus.EventError, r.observe),
	}
	return func() {
		for _, u := range unsubs {
			u()
		}
	}
}

func (r *Recorder) observe(e eventbus.DomainEvent) {
	switch ev := e.(type) {
	case eventbus.RequestCompletedEvent:
		r.requests.WithLabelValues(ev.Op, outcome(ev)).Inc()
		r.duration.WithLabelValues(ev.Op).Observe(ev.Duration.Seconds())
	case eventbus.MutationAppliedEvent:
		r.mutations.WithLabelValues(string(ev.Kind)).Inc()
	case eventbus.ErrorEvent:
		r.errors.Inc()
	}
}

func outcome(ev eventbus.RequestCompletedEvent) string {
	switch {
	case ev.StatusCode == 0 && ev.Err != nil:
		return "transport_error"
	case ev.StatusCode >= 200 && ev.StatusCode <= 299 && ev.Err == nil:
		return "ok"
	default:
		return "http_error"
	}
}

// Handler serves the recorder's registry
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics and /healthz on addr until ctx is cancelled
func (r *Recorder) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", r.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("metrics: shutdown: %v", err)
		}
	}()

	log.Printf("metrics: listening on %s", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
