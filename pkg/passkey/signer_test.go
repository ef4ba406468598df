package passkey

import (
	"bytes"
	stdecdsa "crypto/ecdsa"
	stded25519 "crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"math/big"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lazor-kit/smartwallet-go/pkg/solana/lazorkit"
)

func testHash() lazorkit.Hash {
	return lazorkit.Hash(sha256.Sum256([]byte("authorize")))
}

func TestEd25519Signer(t *testing.T) {
	key := stded25519.NewKeyFromSeed(bytes.Repeat([]byte{0x01}, stded25519.SeedSize))
	signer := NewEd25519Signer(key)

	assert.Equal(t, lazorkit.SignatureSchemeEd25519, signer.Scheme())

	material := signer.PublicMaterial()
	assert.EqualValues(t, []byte(key.Public().(stded25519.PublicKey)), material[:32])
	assert.Zero(t, material[32])

	hash := testHash()
	signature, err := signer.Sign(hash)
	require.NoError(t, err)
	require.Len(t, signature, lazorkit.SignatureSize)
	assert.True(t, stded25519.Verify(key.Public().(stded25519.PublicKey), hash[:], signature))
}

func TestSecp256k1Signer(t *testing.T) {
	key := secp256k1.PrivKeyFromBytes(bytes.Repeat([]byte{0x02}, 32))
	signer := NewSecp256k1Signer(key)

	assert.Equal(t, lazorkit.SignatureSchemeSecp256k1, signer.Scheme())

	material := signer.PublicMaterial()
	assert.EqualValues(t, key.PubKey().SerializeCompressed(), material[:])

	hash := testHash()
	signature, err := signer.Sign(hash)
	require.NoError(t, err)
	require.Len(t, signature, lazorkit.SignatureSize)

	var r, s secp256k1.ModNScalar
	require.False(t, r.SetByteSlice(signature[:32]))
	require.False(t, s.SetByteSlice(signature[32:]))
	assert.True(t, ecdsa.NewSignature(&r, &s).Verify(hash[:], key.PubKey()))
}

func TestSecp256r1Signer(t *testing.T) {
	key, err := stdecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	signer, err := NewSecp256r1Signer(key)
	require.NoError(t, err)
	assert.Equal(t, lazorkit.SignatureSchemeSecp256r1, signer.Scheme())

	material := signer.PublicMaterial()
	assert.EqualValues(t, elliptic.MarshalCompressed(elliptic.P256(), key.X, key.Y), material[:])

	hash := testHash()
	signature, err := signer.Sign(hash)
	require.NoError(t, err)
	require.Len(t, signature, lazorkit.SignatureSize)

	r := new(big.Int).SetBytes(signature[:32])
	s := new(big.Int).SetBytes(signature[32:])
	assert.True(t, stdecdsa.Verify(&key.PublicKey, hash[:], r, s))

	// low-S form
	halfOrder := new(big.Int).Rsh(elliptic.P256().Params().N, 1)
	assert.LessOrEqual(t, s.Cmp(halfOrder), 0)
}

func TestSecp256r1Signer_WrongCurve(t *testing.T) {
	key, err := stdecdsa.GenerateKey(elliptic.P384(), rand.Reader)
	require.NoError(t, err)

	_, err = NewSecp256r1Signer(key)
	assert.Error(t, err)
}
