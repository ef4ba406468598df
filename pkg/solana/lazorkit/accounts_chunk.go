package lazorkit

import (
	"bytes"
	"crypto/ed25519"
	"fmt"

	"github.com/mr-tron/base58"
)

const (
	ChunkAccountSize = (8 + // discriminator
		32 + // wallet
		HashSize + // cpi hash
		8 + // authorized nonce
		8 + // authorized timestamp
		32 + // refund address
		1) // vault index
)

var ChunkAccountDiscriminator = []byte{0x86, 0x43, 0x50, 0x41, 0x87, 0x8f, 0x9c, 0xc4}

// ChunkAccount is a committed, hash-bound promise to execute a specific batch
// of instructions. It exists from a verified create action until the batch is
// executed (or the chunk is closed after its freshness window lapses), at
// which point the account is destroyed and its rent refunded.
type ChunkAccount struct {
	Wallet              ed25519.PublicKey
	CpiHash             Hash
	AuthorizedNonce     uint64
	AuthorizedTimestamp int64
	RefundTo            ed25519.PublicKey
	VaultIndex          uint8
}

func (obj *ChunkAccount) Unmarshal(data []byte) error {
	if len(data) < ChunkAccountSize {
		return ErrInvalidAccountData
	}

	var offset int

	var discriminator []byte
	getDiscriminator(data, &discriminator, &offset)
	if !bytes.Equal(discriminator, ChunkAccountDiscriminator) {
		return ErrInvalidAccountData
	}

	getKey(data, &obj.Wallet, &offset)
	getHash(data, &obj.CpiHash, &offset)
	getUint64(data, &obj.AuthorizedNonce, &offset)
	getInt64(data, &obj.AuthorizedTimestamp, &offset)
	getKey(data, &obj.RefundTo, &offset)
	getUint8(data, &obj.VaultIndex, &offset)

	return nil
}

// Matches reports whether the presented batch canonicalizes to the committed
// hash. This mirrors the equality gate the on-chain program applies at
// execution time; it exists so a client can fail fast before submitting.
func (obj *ChunkAccount) Matches(accountsHash Hash) bool {
	return obj.CpiHash == accountsHash
}

func (obj *ChunkAccount) String() string {
	return fmt.Sprintf(
		"ChunkAccount{wallet=%s,cpi_hash=%s,authorized_nonce=%d,authorized_timestamp=%d,refund_to=%s,vault_index=%d}",
		base58.Encode(obj.Wallet),
		obj.CpiHash,
		obj.AuthorizedNonce,
		obj.AuthorizedTimestamp,
		base58.Encode(obj.RefundTo),
		obj.VaultIndex,
	)
}
