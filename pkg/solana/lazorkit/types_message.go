package lazorkit

import (
	"crypto/ed25519"
)

// Message is an authorization message for a single smart wallet action. The
// marshalled bytes are never signed directly; they are embedded as the
// challenge inside an authentication envelope (a WebAuthn client data
// structure or its raw-key equivalent) whose hash is what the credential
// signs.
type Message interface {
	Marshal() []byte
}

const (
	ExecuteMessageSize = (8 + // nonce
		8 + // timestamp
		2*HashSize + // policy digests
		2*HashSize) // cpi digests

	InvokePolicyMessageSize = (8 + // nonce
		8 + // timestamp
		2*HashSize) // policy digests

	ReplacePolicyMessageSize = (8 + // nonce
		8 + // timestamp
		2*HashSize + // old policy digests
		2*HashSize) // new policy digests

	BatchExecuteMessageSize = (8 + // nonce
		8 + // timestamp
		2*HashSize + // policy digests
		2*HashSize) // batched cpi digests

	CreateSessionMessageSize = (8 + // nonce
		8 + // timestamp
		32 + // ephemeral key
		8 + // expires_at
		2*HashSize) // delegated digests
)

// ExecuteMessage authorizes one policy check plus one CPI instruction.
type ExecuteMessage struct {
	Nonce     uint64
	Timestamp int64
	Policy    DigestPair
	Cpi       DigestPair
}

func (m *ExecuteMessage) Marshal() []byte {
	var offset int
	data := make([]byte, ExecuteMessageSize)

	putUint64(data, m.Nonce, &offset)
	putInt64(data, m.Timestamp, &offset)
	putDigestPair(data, m.Policy, &offset)
	putDigestPair(data, m.Cpi, &offset)

	return data
}

func (m *ExecuteMessage) Unmarshal(data []byte) error {
	if len(data) != ExecuteMessageSize {
		return ErrInvalidMessageData
	}

	var offset int
	getUint64(data, &m.Nonce, &offset)
	getInt64(data, &m.Timestamp, &offset)
	getDigestPair(data, &m.Policy, &offset)
	getDigestPair(data, &m.Cpi, &offset)

	return nil
}

// InvokePolicyMessage authorizes a standalone policy-program invocation.
type InvokePolicyMessage struct {
	Nonce     uint64
	Timestamp int64
	Policy    DigestPair
}

func (m *InvokePolicyMessage) Marshal() []byte {
	var offset int
	data := make([]byte, InvokePolicyMessageSize)

	putUint64(data, m.Nonce, &offset)
	putInt64(data, m.Timestamp, &offset)
	putDigestPair(data, m.Policy, &offset)

	return data
}

func (m *InvokePolicyMessage) Unmarshal(data []byte) error {
	if len(data) != InvokePolicyMessageSize {
		return ErrInvalidMessageData
	}

	var offset int
	getUint64(data, &m.Nonce, &offset)
	getInt64(data, &m.Timestamp, &offset)
	getDigestPair(data, &m.Policy, &offset)

	return nil
}

// ReplacePolicyMessage authorizes swapping the wallet's policy program. Both
// the outgoing and incoming policy instructions are bound.
type ReplacePolicyMessage struct {
	Nonce     uint64
	Timestamp int64
	OldPolicy DigestPair
	NewPolicy DigestPair
}

func (m *ReplacePolicyMessage) Marshal() []byte {
	var offset int
	data := make([]byte, ReplacePolicyMessageSize)

	putUint64(data, m.Nonce, &offset)
	putInt64(data, m.Timestamp, &offset)
	putDigestPair(data, m.OldPolicy, &offset)
	putDigestPair(data, m.NewPolicy, &offset)

	return data
}

func (m *ReplacePolicyMessage) Unmarshal(data []byte) error {
	if len(data) != ReplacePolicyMessageSize {
		return ErrInvalidMessageData
	}

	var offset int
	getUint64(data, &m.Nonce, &offset)
	getInt64(data, &m.Timestamp, &offset)
	getDigestPair(data, &m.OldPolicy, &offset)
	getDigestPair(data, &m.NewPolicy, &offset)

	return nil
}

// BatchExecuteMessage authorizes a policy check plus an ordered batch of CPI
// instructions bound through a single digest pair. The batch digests must be
// computed with HashBatch so the length-prefixed data framing and the
// multi-instruction account canonicalization are used.
type BatchExecuteMessage struct {
	Nonce     uint64
	Timestamp int64
	Policy    DigestPair
	Cpi       DigestPair
}

func (m *BatchExecuteMessage) Marshal() []byte {
	var offset int
	data := make([]byte, BatchExecuteMessageSize)

	putUint64(data, m.Nonce, &offset)
	putInt64(data, m.Timestamp, &offset)
	putDigestPair(data, m.Policy, &offset)
	putDigestPair(data, m.Cpi, &offset)

	return data
}

func (m *BatchExecuteMessage) Unmarshal(data []byte) error {
	if len(data) != BatchExecuteMessageSize {
		return ErrInvalidMessageData
	}

	var offset int
	getUint64(data, &m.Nonce, &offset)
	getInt64(data, &m.Timestamp, &offset)
	getDigestPair(data, &m.Policy, &offset)
	getDigestPair(data, &m.Cpi, &offset)

	return nil
}

// CreateSessionMessage authorizes a time-boxed delegation to an ephemeral
// key. Delegated is the digest pair of the instruction set the session key is
// allowed to execute before ExpiresAt.
type CreateSessionMessage struct {
	Nonce        uint64
	Timestamp    int64
	EphemeralKey ed25519.PublicKey
	ExpiresAt    int64
	Delegated    DigestPair
}

func (m *CreateSessionMessage) Marshal() []byte {
	var offset int
	data := make([]byte, CreateSessionMessageSize)

	putUint64(data, m.Nonce, &offset)
	putInt64(data, m.Timestamp, &offset)
	putKey(data, m.EphemeralKey, &offset)
	putInt64(data, m.ExpiresAt, &offset)
	putDigestPair(data, m.Delegated, &offset)

	return data
}

func (m *CreateSessionMessage) Unmarshal(data []byte) error {
	if len(data) != CreateSessionMessageSize {
		return ErrInvalidMessageData
	}

	var offset int
	getUint64(data, &m.Nonce, &offset)
	getInt64(data, &m.Timestamp, &offset)
	getKey(data, &m.EphemeralKey, &offset)
	getInt64(data, &m.ExpiresAt, &offset)
	getDigestPair(data, &m.Delegated, &offset)

	return nil
}
