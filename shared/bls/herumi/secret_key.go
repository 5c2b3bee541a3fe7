package herumi

import (
	"bytes"
	"fmt"

	bls12 "github.com/herumi/bls-eth-go-binary/bls"
	"github.com/prysmaticlabs/attestation/shared/bls/common"
	"github.com/prysmaticlabs/attestation/shared/params"
)

// bls12SecretKey used in the BLS signature scheme.
type bls12SecretKey struct {
	p *bls12.SecretKey
}

// RandKey creates a new private key from the library's CSPRNG.
func RandKey() (common.SecretKey, error) {
	secKey := &bls12.SecretKey{}
	secKey.SetByCSPRNG()
	k := &bls12SecretKey{p: secKey}
	if isZero(k.Marshal()) {
		return nil, common.ErrZeroKey
	}
	return k, nil
}

// SecretKeyFromBytes creates a BLS private key from a BigEndian byte slice.
func SecretKeyFromBytes(privKey []byte) (common.SecretKey, error) {
	if len(privKey) != params.BeaconConfig().BLSSecretKeyLength {
		return nil, fmt.Errorf("secret key must be %d bytes", params.BeaconConfig().BLSSecretKeyLength)
	}
	if isZero(privKey) {
		return nil, common.ErrZeroKey
	}
	secKey := &bls12.SecretKey{}
	if err := secKey.Deserialize(privKey); err != nil {
		return nil, common.ErrSecretUnmarshal
	}
	return &bls12SecretKey{p: secKey}, nil
}

// PublicKey obtains the public key corresponding to the BLS secret key.
func (s *bls12SecretKey) PublicKey() common.PublicKey {
	return &PublicKey{p: s.p.GetPublicKey()}
}

// Sign a message using a secret key - in a beacon/validator client.
//
// In IETF draft BLS specification:
// Sign(SK, message) -> signature: a signing algorithm that generates
//      a deterministic signature given a secret key SK and a message.
//
// In ETH2.0 specification:
// def Sign(SK: int, message: Bytes) -> BLSSignature
func (s *bls12SecretKey) Sign(msg []byte) common.Signature {
	signature := s.p.SignByte(msg)
	return &Signature{s: signature}
}

// Marshal a secret key into a LittleEndian byte slice.
func (s *bls12SecretKey) Marshal() []byte {
	keyBytes := s.p.Serialize()
	return keyBytes
}

// isZero checks if the secret key is a zero key.
func isZero(sKey []byte) bool {
	b := make([]byte, len(sKey))
	return bytes.Equal(sKey, b)
}
