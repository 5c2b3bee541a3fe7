package verification

import (
	"context"

	ethpb "github.com/prysmaticlabs/attestation/beacon-chain/types"
	"github.com/prysmaticlabs/attestation/shared/featureconfig"
)

// SlashInfo records the best-known form of an attestation that failed
// verification. The variants are a genuine tagged sum, the distinction
// between "signature not checked" and "signature checked and invalid"
// governs whether the slasher is fed, so this must not be flattened into an
// optional indexed form plus an error.
type SlashInfo interface {
	// Err returns the verification failure to surface to the caller.
	Err() error
	slashInfo()
}

// SignatureNotChecked carries an attestation rejected before any signature
// work, only the raw form is known.
type SignatureNotChecked struct {
	Attestation *ethpb.Attestation
	Failure     error
}

// Err returns the verification failure.
func (s *SignatureNotChecked) Err() error { return s.Failure }

func (*SignatureNotChecked) slashInfo() {}

// SignatureNotCheckedIndexed carries an attestation whose indexed form was
// derived but whose signature was never verified.
type SignatureNotCheckedIndexed struct {
	Indexed *ethpb.IndexedAttestation
	Failure error
}

// Err returns the verification failure.
func (s *SignatureNotCheckedIndexed) Err() error { return s.Failure }

func (*SignatureNotCheckedIndexed) slashInfo() {}

// SignatureInvalid carries an attestation whose signature was checked and
// failed, it can never be slashable.
type SignatureInvalid struct {
	Failure error
}

// Err returns the verification failure.
func (s *SignatureInvalid) Err() error { return s.Failure }

func (*SignatureInvalid) slashInfo() {}

// SignatureValid carries an attestation whose signature verified but which
// failed a subsequent check, a slashable candidate.
type SignatureValid struct {
	Indexed *ethpb.IndexedAttestation
	Failure error
}

// Err returns the verification failure.
func (s *SignatureValid) Err() error { return s.Failure }

func (*SignatureValid) slashInfo() {}

// processSlashInfo is the single place where verification-rejected traffic
// reaches the slasher. It forwards rejected attestations whose indexed form
// is known or still derivable, and always returns the original verification
// failure to the caller.
func (s *Service) processSlashInfo(ctx context.Context, info SlashInfo) error {
	if s.cfg.Slasher == nil {
		return info.Err()
	}

	var indexed *ethpb.IndexedAttestation
	switch v := info.(type) {
	case *SignatureNotChecked:
		if v.Attestation == nil || featureconfig.Get().DisableUncheckedSlasherFeed {
			return v.Failure
		}
		idxAtt, _, err := s.obtainIndexedAttestationAndCommitteesPerSlot(ctx, v.Attestation)
		if err != nil {
			log.WithError(err).Debug("Unable to obtain indexed form of attestation for slasher")
			return v.Failure
		}
		indexed = idxAtt
	case *SignatureNotCheckedIndexed:
		indexed = v.Indexed
	case *SignatureInvalid:
		return v.Failure
	case *SignatureValid:
		indexed = v.Indexed
	default:
		return info.Err()
	}

	s.cfg.Slasher.AcceptAttestation(indexed)
	return info.Err()
}
