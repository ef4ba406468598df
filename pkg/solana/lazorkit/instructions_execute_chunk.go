package lazorkit

import (
	"crypto/ed25519"

	"github.com/lazor-kit/smartwallet-go/pkg/solana"
)

var executeChunkInstructionDiscriminator = []byte{
	0x6a, 0x53, 0x71, 0x2f, 0x59, 0xf3, 0x27, 0xdc,
}

type ExecuteChunkInstructionAccounts struct {
	SmartWallet ed25519.PublicKey
	Chunk       ed25519.PublicKey
	Vault       ed25519.PublicKey
	RefundTo    ed25519.PublicKey
}

// NewExecuteChunkInstruction builds the second half of a two-phase
// execution. No authorization proof is carried; the program re-derives the
// batch digest from the presented instructions and compares against the
// committed chunk record.
func NewExecuteChunkInstruction(
	accounts *ExecuteChunkInstructionAccounts,
	cpiInstructions []solana.Instruction,
) (solana.Instruction, error) {
	splitIndices, err := GetSplitIndices(cpiInstructions)
	if err != nil {
		return solana.Instruction{}, err
	}

	compactInstructions, err := MarshalCompactInstructions(NewCompactInstructions(cpiInstructions))
	if err != nil {
		return solana.Instruction{}, err
	}

	var offset int

	// Serialize instruction arguments
	data := make([]byte,
		len(executeChunkInstructionDiscriminator)+
			4+len(compactInstructions)+
			4+2*len(splitIndices))

	putDiscriminator(data, executeChunkInstructionDiscriminator, &offset)
	putBytes(data, compactInstructions, &offset)
	putUint16Array(data, splitIndices, &offset)

	metas := []solana.AccountMeta{
		{
			PublicKey:  accounts.SmartWallet,
			IsWritable: true,
			IsSigner:   false,
		},
		{
			PublicKey:  accounts.Chunk,
			IsWritable: true,
			IsSigner:   false,
		},
		{
			PublicKey:  accounts.Vault,
			IsWritable: true,
			IsSigner:   false,
		},
		{
			PublicKey:  accounts.RefundTo,
			IsWritable: true,
			IsSigner:   false,
		},
		{
			PublicKey:  SYSTEM_PROGRAM_ID,
			IsWritable: false,
			IsSigner:   false,
		},
	}
	metas = append(metas, FlattenInstructionAccounts(cpiInstructions)...)

	return solana.Instruction{
		Program:  PROGRAM_ID,
		Data:     data,
		Accounts: metas,
	}, nil
}
