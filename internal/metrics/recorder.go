// Package metrics exposes simulation progress as Prometheus metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder holds the counters for one process on a private registry.
type Recorder struct {
	reg         *prometheus.Registry
	generations prometheus.Counter
	births      prometheus.Counter
	deaths      prometheus.Counter
	population  prometheus.Gauge
}

// NewRecorder creates and registers the simulation metrics.
func NewRecorder() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		generations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "life_generations_total",
			Help: "Total number of generations computed",
		}),
		births: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "life_births_total",
			Help: "Total number of dead cells that became alive",
		}),
		deaths: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "life_deaths_total",
			Help: "Total number of alive cells that died",
		}),
		population: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "life_population",
			Help: "Alive cells in the most recently emitted generation",
		}),
	}
	r.reg.MustRegister(r.generations, r.births, r.deaths, r.population)
	return r
}

// Seeded records the population of generation zero.
func (r *Recorder) Seeded(population int) {
	r.population.Set(float64(population))
}

// Generation records one computed generation.
func (r *Recorder) Generation(population, births, deaths int) {
	r.generations.Inc()
	r.births.Add(float64(births))
	r.deaths.Add(float64(deaths))
	r.population.Set(float64(population))
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// Handler serves the metrics in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}
