package pipeline

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	stageRecordsIn = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "layoffs",
		Subsystem: "pipeline",
		Name:      "stage_records_in_total",
		Help:      "Records entering each cleaning stage.",
	}, []string{"stage"})

	stageRecordsDropped = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "layoffs",
		Subsystem: "pipeline",
		Name:      "stage_records_dropped_total",
		Help:      "Records removed from the working set by each cleaning stage.",
	}, []string{"stage"})

	stageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "layoffs",
		Subsystem: "pipeline",
		Name:      "stage_duration_seconds",
		Help:      "Wall-clock duration of each cleaning stage.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"stage"})
)

func observeStage(stage string, result StageResult) {
	stageRecordsIn.WithLabelValues(stage).Add(float64(result.RecordsIn))
	stageRecordsDropped.WithLabelValues(stage).Add(float64(result.Dropped()))
	stageDuration.WithLabelValues(stage).Observe(result.Duration.Seconds())
}
