// Package metrics exposes interview activity as Prometheus metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/abhisek/mockround/internal/interview"
)

const namespace = "mockround"

// scoreBuckets spans the 0-100 score range in steps of ten.
var scoreBuckets = prometheus.LinearBuckets(10, 10, 10)

// Recorder is an interview.Observer that records metrics on its own
// registry.
type Recorder struct {
	registry *prometheus.Registry

	answersTotal      *prometheus.CounterVec
	answerScore       *prometheus.HistogramVec
	speedBonusTotal   prometheus.Counter
	timeoutsTotal     prometheus.Counter
	difficultyChanges *prometheus.CounterVec
	sessionsTotal     *prometheus.CounterVec
	sessionFinalScore prometheus.Histogram
	sessionAnswered   prometheus.Histogram
}

var _ interview.Observer = (*Recorder)(nil)

// NewRecorder creates a Recorder with a fresh registry that also carries
// the Go runtime and process collectors.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		answersTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "answers_total",
				Help:      "Total number of scored answers",
			},
			[]string{"difficulty", "skill"},
		),
		answerScore: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "answer_score",
				Help:      "Overall score of each answer",
				Buckets:   scoreBuckets,
			},
			[]string{"difficulty"},
		),
		speedBonusTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "speed_bonus_total",
			Help:      "Answers awarded the speed bonus",
		}),
		timeoutsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "timeouts_total",
			Help:      "Answers submitted after the time limit",
		}),
		difficultyChanges: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "difficulty_changes_total",
				Help:      "Tier changes made by the adaptive controller",
			},
			[]string{"direction"}, // up, down
		),
		sessionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "sessions_total",
				Help:      "Sessions that reached a terminal state",
			},
			[]string{"status", "trigger"},
		),
		sessionFinalScore: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "session_final_score",
			Help:      "Final score of finished sessions",
			Buckets:   scoreBuckets,
		}),
		sessionAnswered: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "session_answered_questions",
			Help:      "Number of answers per finished session",
			Buckets:   prometheus.LinearBuckets(1, 1, 10),
		}),
	}

	r.registry.MustRegister(
		r.answersTotal,
		r.answerScore,
		r.speedBonusTotal,
		r.timeoutsTotal,
		r.difficultyChanges,
		r.sessionsTotal,
		r.sessionFinalScore,
		r.sessionAnswered,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// Registry returns the underlying Prometheus registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler returns an http.Handler for the metrics endpoint.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// QuestionScored implements interview.Observer.
func (r *Recorder) QuestionScored(res interview.QuestionResult) {
	d := string(res.Question.Difficulty)
	r.answersTotal.WithLabelValues(d, res.Question.Skill).Inc()
	r.answerScore.WithLabelValues(d).Observe(res.Score.Overall)
	if res.Score.Bonus > 0 {
		r.speedBonusTotal.Inc()
	}
	if res.Response.TimedOut {
		r.timeoutsTotal.Inc()
	}
}

// DifficultyChanged implements interview.Observer.
func (r *Recorder) DifficultyChanged(adj interview.Adjustment) {
	switch {
	case adj.SteppedUp:
		r.difficultyChanges.WithLabelValues("up").Inc()
	case adj.SteppedDn:
		r.difficultyChanges.WithLabelValues("down").Inc()
	}
}

// SessionEnded implements interview.Observer.
func (r *Recorder) SessionEnded(t interview.Transition, answered int, finalScore float64) {
	r.sessionsTotal.WithLabelValues(string(t.To), t.Trigger).Inc()
	r.sessionAnswered.Observe(float64(answered))
	if answered > 0 {
		r.sessionFinalScore.Observe(finalScore)
	}
}
