package lazorkit

import (
	"crypto/ed25519"
	"math"

	"github.com/lazor-kit/smartwallet-go/pkg/solana"
)

// CompactInstruction is the wire form of an inner instruction embedded inside
// a single outer instruction. Account roles are deliberately not carried:
// the outer instruction's account list supplies roles for any address that
// recurs, and the on-chain program assigns default readonly non-signer roles
// to the rest.
type CompactInstruction struct {
	Program  ed25519.PublicKey
	Accounts []ed25519.PublicKey
	Data     []byte
}

// NewCompactInstructions strips role information off an ordered instruction
// list for embedding.
func NewCompactInstructions(instructions []solana.Instruction) []CompactInstruction {
	compact := make([]CompactInstruction, len(instructions))
	for i, instruction := range instructions {
		accounts := make([]ed25519.PublicKey, len(instruction.Accounts))
		for j, meta := range instruction.Accounts {
			accounts[j] = meta.PublicKey
		}

		compact[i] = CompactInstruction{
			Program:  instruction.Program,
			Accounts: accounts,
			Data:     instruction.Data,
		}
	}
	return compact
}

// ToInstruction expands the compact form with default roles.
func (i CompactInstruction) ToInstruction() solana.Instruction {
	metas := make([]solana.AccountMeta, len(i.Accounts))
	for j, account := range i.Accounts {
		metas[j] = solana.AccountMeta{
			PublicKey: account,
		}
	}

	return solana.Instruction{
		Program:  i.Program,
		Accounts: metas,
		Data:     i.Data,
	}
}

func getCompactInstructionsSize(instructions []CompactInstruction) int {
	size := 2
	for _, instruction := range instructions {
		size += ed25519.PublicKeySize +
			1 + len(instruction.Accounts)*ed25519.PublicKeySize +
			2 + len(instruction.Data)
	}
	return size
}

// MarshalCompactInstructions serializes an ordered instruction list as
//
//	count:u16 || {program:32, acct_count:u8, acct:32xn, data_len:u16, data}xcount
func MarshalCompactInstructions(instructions []CompactInstruction) ([]byte, error) {
	if len(instructions) > math.MaxUint16 {
		return nil, ErrInvalidInstructionData
	}

	var offset int
	data := make([]byte, getCompactInstructionsSize(instructions))

	putUint16(data, uint16(len(instructions)), &offset)
	for _, instruction := range instructions {
		if len(instruction.Accounts) > math.MaxUint8 {
			return nil, ErrInvalidInstructionData
		}
		if len(instruction.Data) > math.MaxUint16 {
			return nil, ErrInvalidInstructionData
		}

		putKey(data, instruction.Program, &offset)
		putUint8(data, uint8(len(instruction.Accounts)), &offset)
		for _, account := range instruction.Accounts {
			putKey(data, account, &offset)
		}
		putUint16(data, uint16(len(instruction.Data)), &offset)
		copy(data[offset:], instruction.Data)
		offset += len(instruction.Data)
	}

	return data, nil
}

// UnmarshalCompactInstructions decodes the flat buffer, rejecting any
// declared count or length that would read past the end.
func UnmarshalCompactInstructions(data []byte) ([]CompactInstruction, error) {
	var offset int

	if len(data) < 2 {
		return nil, ErrInvalidInstructionData
	}

	var count uint16
	getUint16(data, &count, &offset)

	instructions := make([]CompactInstruction, 0, count)
	for i := 0; i < int(count); i++ {
		var instruction CompactInstruction

		if offset+ed25519.PublicKeySize+1 > len(data) {
			return nil, ErrInvalidInstructionData
		}
		getKey(data, &instruction.Program, &offset)

		var accountCount uint8
		getUint8(data, &accountCount, &offset)

		if offset+int(accountCount)*ed25519.PublicKeySize > len(data) {
			return nil, ErrInvalidInstructionData
		}
		instruction.Accounts = make([]ed25519.PublicKey, accountCount)
		for j := 0; j < int(accountCount); j++ {
			getKey(data, &instruction.Accounts[j], &offset)
		}

		if offset+2 > len(data) {
			return nil, ErrInvalidInstructionData
		}
		var dataLen uint16
		getUint16(data, &dataLen, &offset)

		if offset+int(dataLen) > len(data) {
			return nil, ErrInvalidInstructionData
		}
		instruction.Data = make([]byte, dataLen)
		copy(instruction.Data, data[offset:])
		offset += int(dataLen)

		instructions = append(instructions, instruction)
	}

	if offset != len(data) {
		return nil, ErrInvalidInstructionData
	}

	return instructions, nil
}

// GetSplitIndices computes, for each instruction after the first, the
// cumulative account-slot offset at which its accounts begin inside one
// flattened remaining-accounts list. Every instruction occupies
// len(accounts)+1 slots, the +1 being its target program. The indices are
// strictly increasing by construction and must match the flattening order
// used when the batch digest was computed.
func GetSplitIndices(instructions []solana.Instruction) ([]uint16, error) {
	if len(instructions) == 0 {
		return nil, nil
	}

	indices := make([]uint16, 0, len(instructions)-1)

	var slots int
	for _, instruction := range instructions[:len(instructions)-1] {
		slots += len(instruction.Accounts) + 1
		if slots > math.MaxUint16 {
			return nil, ErrInvalidInstructionData
		}
		indices = append(indices, uint16(slots))
	}

	return indices, nil
}

// FlattenInstructionAccounts produces the remaining-accounts list matching
// GetSplitIndices: per instruction, a readonly meta for the target program
// followed by the instruction's account metas.
func FlattenInstructionAccounts(instructions []solana.Instruction) []solana.AccountMeta {
	var metas []solana.AccountMeta
	for _, instruction := range instructions {
		metas = append(metas, solana.AccountMeta{
			PublicKey: instruction.Program,
		})
		metas = append(metas, instruction.Accounts...)
	}
	return metas
}
