package hashutil_test

import (
	"crypto/sha256"
	"testing"

	"github.com/prysmaticlabs/attestation/shared/hashutil"
	"github.com/prysmaticlabs/attestation/shared/testutil/assert"
)

func TestHash(t *testing.T) {
	hashOf0 := hashutil.Hash([]byte{0})
	assert.Equal(t, sha256.Sum256([]byte{0}), hashOf0)

	hashOf1 := hashutil.Hash([]byte{1})
	assert.Equal(t, sha256.Sum256([]byte{1}), hashOf1)
	assert.NotEqual(t, hashOf0, hashOf1)
}

func TestCustomSHA256Hasher(t *testing.T) {
	hasher := hashutil.CustomSHA256Hasher()
	assert.Equal(t, sha256.Sum256([]byte("abc")), hasher([]byte("abc")))
	// The enclosed hasher must reset between calls.
	assert.Equal(t, sha256.Sum256([]byte("def")), hasher([]byte("def")))
}
