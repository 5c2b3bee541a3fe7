package verification

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	batchSignatureVerifications = promauto.NewCounter(prometheus.CounterOpts{
		Name: "attestation_batch_signature_verifications_total",
		Help: "Count of batched BLS verifications performed over aggregate signature sets.",
	})
	singleSignatureVerifications = promauto.NewCounter(prometheus.CounterOpts{
		Name: "attestation_single_signature_verifications_total",
		Help: "Count of single BLS verifications performed over indexed attestations.",
	})
	signatureSetupTimes = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "attestation_signature_setup_seconds",
		Help:    "Time spent assembling signature sets before BLS verification.",
		Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1},
	})
	stateWalkSlots = promauto.NewCounter(prometheus.CounterOpts{
		Name: "attestation_shuffling_state_walk_slots_total",
		Help: "Count of empty slots walked while resolving committees on shuffling cache misses.",
	})
)
