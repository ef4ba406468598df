package passkey

import (
	stded25519 "crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"math/big"

	stdecdsa "crypto/ecdsa"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/pkg/errors"

	"github.com/lazor-kit/smartwallet-go/pkg/solana/lazorkit"
)

// Signer produces 64-byte signatures over pre-built message hashes and
// exposes the credential material in the on-chain authority table format.
type Signer interface {
	Scheme() lazorkit.SignatureScheme
	PublicMaterial() [lazorkit.PublicMaterialSize]byte
	Sign(hash lazorkit.Hash) ([]byte, error)
}

type ed25519Signer struct {
	key stded25519.PrivateKey
}

func NewEd25519Signer(key stded25519.PrivateKey) Signer {
	return &ed25519Signer{key: key}
}

func (s *ed25519Signer) Scheme() lazorkit.SignatureScheme {
	return lazorkit.SignatureSchemeEd25519
}

func (s *ed25519Signer) PublicMaterial() [lazorkit.PublicMaterialSize]byte {
	var material [lazorkit.PublicMaterialSize]byte
	copy(material[:], s.key.Public().(stded25519.PublicKey))
	return material
}

func (s *ed25519Signer) Sign(hash lazorkit.Hash) ([]byte, error) {
	return stded25519.Sign(s.key, hash[:]), nil
}

type secp256k1Signer struct {
	key *secp256k1.PrivateKey
}

func NewSecp256k1Signer(key *secp256k1.PrivateKey) Signer {
	return &secp256k1Signer{key: key}
}

func (s *secp256k1Signer) Scheme() lazorkit.SignatureScheme {
	return lazorkit.SignatureSchemeSecp256k1
}

func (s *secp256k1Signer) PublicMaterial() [lazorkit.PublicMaterialSize]byte {
	var material [lazorkit.PublicMaterialSize]byte
	copy(material[:], s.key.PubKey().SerializeCompressed())
	return material
}

func (s *secp256k1Signer) Sign(hash lazorkit.Hash) ([]byte, error) {
	// Strip the recovery header so the result is a plain R || S pair.
	compactSignature := ecdsa.SignCompact(s.key, hash[:], false)
	return compactSignature[1:], nil
}

type secp256r1Signer struct {
	key *stdecdsa.PrivateKey
}

func NewSecp256r1Signer(key *stdecdsa.PrivateKey) (Signer, error) {
	if key.Curve != elliptic.P256() {
		return nil, errors.New("key is not on the p256 curve")
	}
	return &secp256r1Signer{key: key}, nil
}

func (s *secp256r1Signer) Scheme() lazorkit.SignatureScheme {
	return lazorkit.SignatureSchemeSecp256r1
}

func (s *secp256r1Signer) PublicMaterial() [lazorkit.PublicMaterialSize]byte {
	var material [lazorkit.PublicMaterialSize]byte
	copy(material[:], elliptic.MarshalCompressed(elliptic.P256(), s.key.X, s.key.Y))
	return material
}

func (s *secp256r1Signer) Sign(hash lazorkit.Hash) ([]byte, error) {
	r, sv, err := stdecdsa.Sign(rand.Reader, s.key, hash[:])
	if err != nil {
		return nil, errors.Wrap(err, "p256 signing failed")
	}

	// Verifiers reject malleable high-S signatures.
	order := elliptic.P256().Params().N
	halfOrder := new(big.Int).Rsh(order, 1)
	if sv.Cmp(halfOrder) > 0 {
		sv = new(big.Int).Sub(order, sv)
	}

	signature := make([]byte, lazorkit.SignatureSize)
	r.FillBytes(signature[:32])
	sv.FillBytes(signature[32:])
	return signature, nil
}
