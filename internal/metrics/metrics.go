// Package metrics holds the prometheus collectors of the signing core.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github/dlcplaza/go-dlcsigner/internal/config"
	"github/dlcplaza/go-dlcsigner/internal/dlcerr"
)

// Namespace prefixes every metric of the signer.
const Namespace = "dlcsigner"

// Operation names used as label values.
const (
	OpInitWithEntropy     = "init_with_entropy"
	OpDeriveXpub          = "derive_xpub_from_mnemonic"
	OpGetPublicKey        = "get_public_key"
	OpSignHash            = "sign_hash_ecdsa"
	OpDeterministicNonce  = "create_deterministic_nonce"
	OpCreateCETAdaptorSig = "create_cet_adaptor_sigs"
	OpVerifyCETAdaptorSig = "verify_cet_adaptor_sig"
)

// Service owns a registry per server instance, so several servers (tests) can
// live in one process.
type Service struct {
	Registry *prometheus.Registry

	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	cetBatch   prometheus.Histogram
	contexts   prometheus.Gauge
}

func New(cfg config.Server) (*Service, error) {
	reg := prometheus.NewRegistry()
	if cfg.Management.EnableProcessMetrics {
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	factory := promauto.With(reg)

	return &Service{
		Registry: reg,
		operations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "operations_total",
			Help:      "Signing core operations by result error kind (empty on success).",
		}, []string{"operation", "error_kind"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "operation_duration_seconds",
			Help:      "Duration of signing core operations.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"operation"}),
		cetBatch: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "cet_batch_size",
			Help:      "Number of CETs per adaptor signature request.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}),
		contexts: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "key_contexts",
			Help:      "Number of key contexts held in memory.",
		}),
	}, nil
}

// Observe records one finished operation. Safe on a nil receiver.
func (s *Service) Observe(operation string, took time.Duration, err error) {
	if s == nil {
		return
	}

	kind := ""
	if err != nil {
		kind = dlcerr.KindOf(err).String()
	}

	s.operations.WithLabelValues(operation, kind).Inc()
	s.duration.WithLabelValues(operation).Observe(took.Seconds())
}

func (s *Service) ObserveCETBatch(size int) {
	if s == nil {
		return
	}
	s.cetBatch.Observe(float64(size))
}

func (s *Service) SetKeyContexts(n int) {
	if s == nil {
		return
	}
	s.contexts.Set(float64(n))
}
