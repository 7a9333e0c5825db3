// Package metrics exports engine events as Prometheus collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/ramsey/game"
)

// DefaultNamespace prefixes every metric name.
const DefaultNamespace = "ramsey"

// Collector implements game.Observer on top of Prometheus collectors.
type Collector struct {
	commands   *prometheus.CounterVec
	rejections *prometheus.CounterVec
	goalChecks *prometheus.CounterVec
	goalTime   prometheus.Histogram
	goalTurn   prometheus.Gauge
}

var _ game.Observer = (*Collector)(nil)

// New registers the collectors on reg (prometheus.DefaultRegisterer when nil).
func New(reg prometheus.Registerer, namespace string) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = DefaultNamespace
	}
	factory := promauto.With(reg)

	return &Collector{
		// commands counts executed, undone and redone commands by kind
		commands: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commands_total",
			Help:      "Commands applied by operation and kind",
		}, []string{"op", "kind"}),

		rejections: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rejected_total",
			Help:      "Rejected operations by operation and reason",
		}, []string{"op", "reason"}),

		goalChecks: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "goal_checks_total",
			Help:      "Goal evaluations by result",
		}, []string{"result"}),

		goalTime: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "goal_check_duration_seconds",
			Help:      "Goal evaluation duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
		}),

		// goalTurn is the achieved turn, 0 while not achieved
		goalTurn: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "goal_turn",
			Help:      "Turn at which the goal was achieved, 0 when not achieved",
		}),
	}
}

func (c *Collector) CommandDone(op string, kind game.CommandKind) {
	c.commands.WithLabelValues(op, kind.String()).Inc()
}

func (c *Collector) MoveRejected(op, reason string) {
	c.rejections.WithLabelValues(op, reason).Inc()
}

func (c *Collector) GoalChecked(elapsed time.Duration, found bool) {
	result := "absent"
	if found {
		result = "found"
	}
	c.goalChecks.WithLabelValues(result).Inc()
	c.goalTime.Observe(elapsed.Seconds())
}

func (c *Collector) GoalChanged(status game.GoalStatus) {
	c.goalTurn.Set(float64(status.Turn))
}
