package lazorkit

import (
	"crypto/sha256"

	"golang.org/x/crypto/sha3"
)

const (
	SignatureSize = 64

	// Ed25519 payloads are the raw signature. The secp schemes append the
	// replay counter and the ledger slot it was read at so the on-chain
	// program can enforce odometer semantics in plaintext, in addition to
	// both values being folded into the signed hash.
	Ed25519AuthorityPayloadSize  = SignatureSize
	OdometerAuthorityPayloadSize = (SignatureSize +
		4 + // replay counter
		8) // slot
)

// EncodeAuthorityPayload wraps a raw signature with the scheme-specific
// replay-protection fields. The encoder performs no deduplication or
// memoization: reusing a counter produces an identical payload, and rejecting
// it is solely the verifier's job.
func EncodeAuthorityPayload(scheme SignatureScheme, signature []byte, replayCounter *uint32, slot *uint64) ([]byte, error) {
	if len(signature) != SignatureSize {
		return nil, ErrInvalidSignatureLength
	}

	switch scheme {
	case SignatureSchemeEd25519, SignatureSchemeEd25519Session:
		payload := make([]byte, Ed25519AuthorityPayloadSize)
		copy(payload, signature)
		return payload, nil

	case SignatureSchemeSecp256k1, SignatureSchemeSecp256k1Session,
		SignatureSchemeSecp256r1, SignatureSchemeSecp256r1Session:
		if replayCounter == nil {
			return nil, ErrMissingReplayCounter
		}
		if slot == nil {
			return nil, ErrMissingSlot
		}

		var offset int
		payload := make([]byte, OdometerAuthorityPayloadSize)
		copy(payload, signature)
		offset += SignatureSize
		putUint32(payload, *replayCounter, &offset)
		putUint64(payload, *slot, &offset)
		return payload, nil
	}

	return nil, ErrUnsupportedScheme
}

// BuildMessageHash computes the digest a credential signs for the given
// authentication transport payload. For odometer schemes the replay counter
// and slot are appended to the pre-hash input, so the counter is
// authenticated inside the signature as well as checked in plaintext.
// Secp256k1 uses the legacy Keccak-256 permutation to match the native
// secp256k1 verification program; the other schemes use SHA-256.
func BuildMessageHash(scheme SignatureScheme, message []byte, replayCounter *uint32, slot *uint64) (Hash, error) {
	switch scheme {
	case SignatureSchemeEd25519, SignatureSchemeEd25519Session:
		return Hash(sha256.Sum256(message)), nil

	case SignatureSchemeSecp256k1, SignatureSchemeSecp256k1Session,
		SignatureSchemeSecp256r1, SignatureSchemeSecp256r1Session:
		if replayCounter == nil {
			return Hash{}, ErrMissingReplayCounter
		}
		if slot == nil {
			return Hash{}, ErrMissingSlot
		}

		var offset int
		input := make([]byte, len(message)+4+8)
		copy(input, message)
		offset += len(message)
		putUint32(input, *replayCounter, &offset)
		putUint64(input, *slot, &offset)

		if scheme == SignatureSchemeSecp256k1 || scheme == SignatureSchemeSecp256k1Session {
			var hash Hash
			k := sha3.NewLegacyKeccak256()
			_, _ = k.Write(input)
			copy(hash[:], k.Sum(nil))
			return hash, nil
		}

		return Hash(sha256.Sum256(input)), nil
	}

	return Hash{}, ErrUnsupportedScheme
}
