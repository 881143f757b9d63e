package metrics

import "github.com/prometheus/client_golang/prometheus"

// Vote kinds.
const (
	VoteKindAnswer   = "answer"
	VoteKindFeedback = "feedback"
)

// Vote submission results.
const (
	VoteResultCreated  = "created"
	VoteResultUpdated  = "updated"
	VoteResultRejected = "rejected"
	VoteResultError    = "error"
)

// VoteMetrics holds Prometheus metrics for answer and feedback submissions.
type VoteMetrics struct {
	VotesSubmitted *prometheus.CounterVec
}

// NewVoteMetrics creates and registers vote metrics on the given registry.
func NewVoteMetrics(reg prometheus.Registerer) *VoteMetrics {
	m := &VoteMetrics{
		VotesSubmitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "votes_submitted_total",
			Help:      "Total number of vote submissions, by kind and result.",
		}, []string{"kind", "result"}),
	}

	reg.MustRegister(m.VotesSubmitted)
	return m
}

// Record counts one submission. It is a no-op on a nil receiver.
func (m *VoteMetrics) Record(kind, result string) {
	if m == nil {
		return
	}
	m.VotesSubmitted.WithLabelValues(kind, result).Inc()
}
