package bls_test

import (
	"testing"

	"github.com/prysmaticlabs/attestation/shared/bls"
	"github.com/prysmaticlabs/attestation/shared/testutil/assert"
	"github.com/prysmaticlabs/attestation/shared/testutil/require"
)

func TestSignVerify(t *testing.T) {
	priv, err := bls.RandKey()
	require.NoError(t, err)
	pub := priv.PublicKey()
	msg := []byte("hello")
	sig := priv.Sign(msg)
	assert.Equal(t, true, sig.Verify(pub, msg), "Signature did not verify")
	assert.Equal(t, false, sig.Verify(pub, []byte("world")), "Signature verified the wrong message")
}

func TestMarshalRoundTrip(t *testing.T) {
	priv, err := bls.RandKey()
	require.NoError(t, err)
	sig := priv.Sign([]byte("msg"))

	sig2, err := bls.SignatureFromBytes(sig.Marshal())
	require.NoError(t, err)
	assert.Equal(t, true, sig2.Verify(priv.PublicKey(), []byte("msg")))

	pub, err := bls.PublicKeyFromBytes(priv.PublicKey().Marshal())
	require.NoError(t, err)
	assert.DeepEqual(t, priv.PublicKey().Marshal(), pub.Marshal())
}

func TestFastAggregateVerify(t *testing.T) {
	msg := [32]byte{1, 2, 3}
	pubkeys := make([]bls.PublicKey, 0, 10)
	sigs := make([]bls.Signature, 0, 10)
	for i := 0; i < 10; i++ {
		priv, err := bls.RandKey()
		require.NoError(t, err)
		pubkeys = append(pubkeys, priv.PublicKey())
		sigs = append(sigs, priv.Sign(msg[:]))
	}
	aggSig := bls.AggregateSignatures(sigs)
	assert.Equal(t, true, aggSig.FastAggregateVerify(pubkeys, msg), "Aggregate signature did not verify")

	wrongMsg := [32]byte{4, 5, 6}
	assert.Equal(t, false, aggSig.FastAggregateVerify(pubkeys, wrongMsg))
}

func TestAggregateMultiplePubkeys(t *testing.T) {
	msg := [32]byte{9}
	priv1, err := bls.RandKey()
	require.NoError(t, err)
	priv2, err := bls.RandKey()
	require.NoError(t, err)
	aggSig := bls.AggregateSignatures([]bls.Signature{priv1.Sign(msg[:]), priv2.Sign(msg[:])})
	aggPub := bls.AggregateMultiplePubkeys([]bls.PublicKey{priv1.PublicKey(), priv2.PublicKey()})
	assert.Equal(t, true, aggSig.Verify(aggPub, msg[:]))
}

func TestVerifyMultipleSignatures(t *testing.T) {
	sigs := make([][]byte, 0, 3)
	msgs := make([][32]byte, 0, 3)
	pubkeys := make([]bls.PublicKey, 0, 3)
	for i := 0; i < 3; i++ {
		priv, err := bls.RandKey()
		require.NoError(t, err)
		msg := [32]byte{byte(i + 1)}
		sigs = append(sigs, priv.Sign(msg[:]).Marshal())
		msgs = append(msgs, msg)
		pubkeys = append(pubkeys, priv.PublicKey())
	}
	valid, err := bls.VerifyMultipleSignatures(sigs, msgs, pubkeys)
	require.NoError(t, err)
	assert.Equal(t, true, valid, "Batch verification failed for valid signature sets")

	// Corrupt one message, the whole batch must fail.
	msgs[1][0] ^= 0xff
	valid, err = bls.VerifyMultipleSignatures(sigs, msgs, pubkeys)
	require.NoError(t, err)
	assert.Equal(t, false, valid, "Batch verification passed with a tampered message")
}

func TestVerifyMultipleSignatures_RepeatedMessages(t *testing.T) {
	msg := [32]byte{7}
	sigs := make([][]byte, 0, 2)
	msgs := make([][32]byte, 0, 2)
	pubkeys := make([]bls.PublicKey, 0, 2)
	for i := 0; i < 2; i++ {
		priv, err := bls.RandKey()
		require.NoError(t, err)
		sigs = append(sigs, priv.Sign(msg[:]).Marshal())
		msgs = append(msgs, msg)
		pubkeys = append(pubkeys, priv.PublicKey())
	}
	valid, err := bls.VerifyMultipleSignatures(sigs, msgs, pubkeys)
	require.NoError(t, err)
	assert.Equal(t, true, valid, "Batch verification failed for repeated messages")
}

func TestSecretKeyFromBytes_RejectsZero(t *testing.T) {
	_, err := bls.SecretKeyFromBytes(make([]byte, 32))
	assert.NotNil(t, err, "Expected zero key rejection")
}
