// Package slasher defines the ingestion side of slashing evidence
// collection: a buffered sink that accepts indexed attestations emitted by
// attestation verification and hands them to a detector.
package slasher

import (
	"context"

	ethpb "github.com/prysmaticlabs/attestation/beacon-chain/types"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("prefix", "slasher")

// attestationQueueSize bounds the ingest buffer. When the detector falls
// behind, new evidence is dropped rather than blocking verification workers.
const attestationQueueSize = 1024

// Notifier is the interface the verification pipeline uses to hand over
// indexed attestations for slashing-evidence collection.
type Notifier interface {
	AcceptAttestation(att *ethpb.IndexedAttestation)
}

// Detector consumes indexed attestations for double-vote and surround-vote
// detection.
type Detector interface {
	DetectSlashableAttestation(ctx context.Context, att *ethpb.IndexedAttestation)
}

// Service accepts indexed attestations and feeds them to the configured
// detector on a dedicated goroutine.
type Service struct {
	ctx      context.Context
	cancel   context.CancelFunc
	detector Detector
	attsChan chan *ethpb.IndexedAttestation
}

// Config options for the slasher service.
type Config struct {
	Detector Detector
}

// NewService instantiates a new slasher ingest service.
func NewService(ctx context.Context, cfg *Config) *Service {
	ctx, cancel := context.WithCancel(ctx)
	return &Service{
		ctx:      ctx,
		cancel:   cancel,
		detector: cfg.Detector,
		attsChan: make(chan *ethpb.IndexedAttestation, attestationQueueSize),
	}
}

// Start kicks off the detection loop.
func (s *Service) Start() {
	go s.run()
}

// Stop the detection loop.
func (s *Service) Stop() error {
	s.cancel()
	return nil
}

// AcceptAttestation enqueues the indexed attestation for detection. The
// enqueue never blocks; evidence arriving faster than the detector drains it
// is dropped with a debug log.
func (s *Service) AcceptAttestation(att *ethpb.IndexedAttestation) {
	if att == nil {
		return
	}
	select {
	case s.attsChan <- att:
	default:
		log.WithField("attestingIndices", att.AttestingIndices).Debug("Slasher queue full, dropping indexed attestation")
	}
}

func (s *Service) run() {
	for {
		select {
		case att := <-s.attsChan:
			if s.detector != nil {
				s.detector.DetectSlashableAttestation(s.ctx, att)
			}
		case <-s.ctx.Done():
			return
		}
	}
}
