package lazorkit

import (
	"bytes"
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/binary"

	"github.com/lazor-kit/smartwallet-go/pkg/solana"
)

// DigestPair binds an instruction (or batch) to an authorization message.
// Data covers the raw instruction payload, Accounts covers the canonicalized
// account list. The on-chain program recomputes both from the instructions it
// actually executes and rejects on any mismatch.
type DigestPair struct {
	Data     Hash
	Accounts Hash
}

// canonicalAccounts merges duplicate account references while preserving
// first-seen order. A later reference never downgrades an earlier one: signer
// and writable flags are promoted, matching how the runtime treats duplicate
// account metas within a transaction.
type canonicalAccounts struct {
	entries []solana.AccountMeta
	index   map[string]int
}

func newCanonicalAccounts() *canonicalAccounts {
	return &canonicalAccounts{
		index: make(map[string]int),
	}
}

func (c *canonicalAccounts) add(meta solana.AccountMeta) {
	if i, ok := c.index[string(meta.PublicKey)]; ok {
		if meta.IsSigner {
			c.entries[i].IsSigner = true
		}
		if meta.IsWritable {
			c.entries[i].IsWritable = true
		}
		return
	}

	c.index[string(meta.PublicKey)] = len(c.entries)
	c.entries = append(c.entries, meta)
}

// addInstruction is the batch-mode form: the target program is merged in as a
// readonly pseudo-account ahead of the instruction's real accounts, so two
// batches touching the same accounts through different programs hash
// differently.
func (c *canonicalAccounts) addInstruction(instruction solana.Instruction) {
	c.add(solana.AccountMeta{
		PublicKey: instruction.Program,
	})
	for _, meta := range instruction.Accounts {
		c.add(meta)
	}
}

// encode writes each merged entry as
//
//	address[32] || signer (always 0x00) || writableOrSelf (0x00 or 0x01)
//
// The signer flag is intentionally excluded from the authenticated digest;
// co-signers are determined independently on-chain. The wallet's own address
// always encodes as writable, even when the reference itself is readonly,
// because executing through the wallet implicitly mutates it.
func (c *canonicalAccounts) encode(wallet ed25519.PublicKey) []byte {
	encoded := make([]byte, 0, len(c.entries)*(ed25519.PublicKeySize+2))
	for _, entry := range c.entries {
		encoded = append(encoded, entry.PublicKey...)
		encoded = append(encoded, 0)

		if entry.IsWritable || bytes.Equal(entry.PublicKey, wallet) {
			encoded = append(encoded, 1)
		} else {
			encoded = append(encoded, 0)
		}
	}
	return encoded
}

// HashInstructionAccounts canonicalizes a single instruction's account list
// and hashes the encoded stream. The target program leads the stream as a
// bare 32-byte address with no flag bytes; flags follow real accounts only.
func HashInstructionAccounts(wallet ed25519.PublicKey, instruction solana.Instruction) Hash {
	canonical := newCanonicalAccounts()
	for _, meta := range instruction.Accounts {
		canonical.add(meta)
	}

	encoded := make([]byte, 0, ed25519.PublicKeySize+len(canonical.entries)*(ed25519.PublicKeySize+2))
	encoded = append(encoded, instruction.Program...)
	encoded = append(encoded, canonical.encode(wallet)...)
	return Hash(sha256.Sum256(encoded))
}

// HashInstructionData hashes an instruction's opaque payload.
func HashInstructionData(instruction solana.Instruction) Hash {
	return Hash(sha256.Sum256(instruction.Data))
}

// HashInstruction produces both digests for a single instruction.
func HashInstruction(wallet ed25519.PublicKey, instruction solana.Instruction) DigestPair {
	return DigestPair{
		Data:     HashInstructionData(instruction),
		Accounts: HashInstructionAccounts(wallet, instruction),
	}
}

// HashBatchAccounts canonicalizes the account lists of several instructions
// into one digest. Each instruction's target program is injected as a
// pseudo-account ahead of its accounts before merging, and merging spans the
// whole batch. A batch of one falls back to the single-instruction encoding.
func HashBatchAccounts(wallet ed25519.PublicKey, instructions []solana.Instruction) Hash {
	if len(instructions) == 1 {
		return HashInstructionAccounts(wallet, instructions[0])
	}

	canonical := newCanonicalAccounts()
	for _, instruction := range instructions {
		canonical.addInstruction(instruction)
	}
	return Hash(sha256.Sum256(canonical.encode(wallet)))
}

// HashBatchData hashes the payloads of a batch of instructions. With more
// than one instruction each payload is framed as len:u32 || bytes so that
// shifting a byte across an instruction boundary cannot produce a collision.
func HashBatchData(instructions []solana.Instruction) Hash {
	if len(instructions) == 1 {
		return HashInstructionData(instructions[0])
	}

	var buf bytes.Buffer
	var lenBytes [4]byte
	for _, instruction := range instructions {
		binary.LittleEndian.PutUint32(lenBytes[:], uint32(len(instruction.Data)))
		_, _ = buf.Write(lenBytes[:])
		_, _ = buf.Write(instruction.Data)
	}
	return Hash(sha256.Sum256(buf.Bytes()))
}

// HashBatch produces both digests for an ordered batch of instructions.
func HashBatch(wallet ed25519.PublicKey, instructions []solana.Instruction) DigestPair {
	return DigestPair{
		Data:     HashBatchData(instructions),
		Accounts: HashBatchAccounts(wallet, instructions),
	}
}

// CombinedHash collapses the pair into the single commitment hash stored in
// a chunk account: sha256(data || accounts).
func (p DigestPair) CombinedHash() Hash {
	var input [2 * HashSize]byte
	copy(input[:], p.Data[:])
	copy(input[HashSize:], p.Accounts[:])
	return Hash(sha256.Sum256(input[:]))
}

func putDigestPair(dst []byte, v DigestPair, offset *int) {
	putHash(dst, v.Data, offset)
	putHash(dst, v.Accounts, offset)
}
func getDigestPair(src []byte, dst *DigestPair, offset *int) {
	getHash(src, &dst.Data, offset)
	getHash(src, &dst.Accounts, offset)
}
