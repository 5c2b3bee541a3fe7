// Package bls implements a go-wrapper around a library implementing the
// BLS12-381 curve and signature scheme.
package bls

import (
	"github.com/prysmaticlabs/attestation/shared/bls/common"
	"github.com/prysmaticlabs/attestation/shared/bls/herumi"
)

// SecretKey represents a BLS secret or private key.
type SecretKey = common.SecretKey

// PublicKey represents a BLS public key.
type PublicKey = common.PublicKey

// Signature represents a BLS signature.
type Signature = common.Signature

// RandKey creates a new private key using a random input.
func RandKey() (SecretKey, error) {
	return herumi.RandKey()
}

// SecretKeyFromBytes creates a BLS private key from a BigEndian byte slice.
func SecretKeyFromBytes(privKey []byte) (SecretKey, error) {
	return herumi.SecretKeyFromBytes(privKey)
}

// PublicKeyFromBytes creates a BLS public key from a BigEndian byte slice.
func PublicKeyFromBytes(pubKey []byte) (PublicKey, error) {
	return herumi.PublicKeyFromBytes(pubKey)
}

// SignatureFromBytes creates a BLS signature from a LittleEndian byte slice.
func SignatureFromBytes(sig []byte) (Signature, error) {
	return herumi.SignatureFromBytes(sig)
}

// AggregatePublicKeys aggregates the provided raw public keys into a single key.
func AggregatePublicKeys(pubs [][]byte) (PublicKey, error) {
	return herumi.AggregatePublicKeys(pubs)
}

// AggregateMultiplePubkeys aggregates the provided decompressed keys into a single key.
func AggregateMultiplePubkeys(pubs []PublicKey) PublicKey {
	if len(pubs) == 0 {
		return nil
	}
	agg := pubs[0].Copy()
	for _, pub := range pubs[1:] {
		agg = agg.Aggregate(pub)
	}
	return agg
}

// AggregateSignatures converts a list of signatures into a single, aggregated sig.
func AggregateSignatures(sigs []Signature) Signature {
	return herumi.AggregateSignatures(sigs)
}

// VerifyMultipleSignatures verifies a non-singular set of signatures and its
// respective pubkeys and messages. This method provides a safe way to batch
// verify distinct signature sets in a single call.
func VerifyMultipleSignatures(sigs [][]byte, msgs [][32]byte, pubKeys []PublicKey) (bool, error) {
	return herumi.VerifyMultipleSignatures(sigs, msgs, pubKeys)
}
