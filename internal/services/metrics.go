package services

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	llmAttemptsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "llm_attempts_total",
			Help: "Model attempts by provider, model and outcome",
		},
		[]string{"provider", "model", "outcome"},
	)
	resumeAnalysesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "resume_analyses_total",
			Help: "Completed resume analyses by overall assessment",
		},
		[]string{"assessment"},
	)
	pdfExtractionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pdf_extractions_total",
			Help: "PDF text extractions by result",
		},
		[]string{"result"},
	)
)

var registerOnce sync.Once

// InitMetrics registers the service collectors with the default registry.
func InitMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(llmAttemptsTotal)
		prometheus.MustRegister(resumeAnalysesTotal)
		prometheus.MustRegister(pdfExtractionsTotal)
	})
}
