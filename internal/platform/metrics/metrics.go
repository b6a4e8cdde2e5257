package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "pharmacy"

// Recorder agrupa los collectors del ciclo de vida de solicitudes.
// Cada Recorder usa su propio registry para que varios routers (tests) no choquen.
type Recorder struct {
	registry *prometheus.Registry

	submitted *prometheus.CounterVec
	decided   *prometheus.CounterVec
	failures  *prometheus.CounterVec
	released  prometheus.Counter
}

func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		submitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "requests",
			Name:      "submitted_total",
			Help:      "Solicitudes creadas, por tipo de entrega.",
		}, []string{"delivery_type"}),
		decided: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "requests",
			Name:      "decisions_total",
			Help:      "Decisiones aplicadas por farmacéuticos, por estado destino.",
		}, []string{"status"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "lifecycle",
			Name:      "failures_total",
			Help:      "Operaciones del ciclo de vida fallidas, por operación y motivo.",
		}, []string{"operation", "reason"}),
		released: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "turns",
			Name:      "released_total",
			Help:      "Turnos liberados al pasar una solicitud a Rejected o Delivered.",
		}),
	}

	r.registry.MustRegister(
		r.submitted,
		r.decided,
		r.failures,
		r.released,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

func (r *Recorder) Submitted(deliveryType string) {
	if r == nil {
		return
	}
	r.submitted.WithLabelValues(deliveryType).Inc()
}

func (r *Recorder) Decided(status string) {
	if r == nil {
		return
	}
	r.decided.WithLabelValues(status).Inc()
}

func (r *Recorder) Failed(operation, reason string) {
	if r == nil {
		return
	}
	r.failures.WithLabelValues(operation, reason).Inc()
}

func (r *Recorder) TurnReleased() {
	if r == nil {
		return
	}
	r.released.Inc()
}

func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
