package lazorkit

import (
	"crypto/ed25519"

	"github.com/lazor-kit/smartwallet-go/pkg/solana"
)

var closeChunkInstructionDiscriminator = []byte{
	0x96, 0xb7, 0xd5, 0xc6, 0x00, 0x4a, 0x0e, 0xaa,
}

type CloseChunkInstructionAccounts struct {
	SmartWallet ed25519.PublicKey
	Chunk       ed25519.PublicKey
	RefundTo    ed25519.PublicKey
}

// NewCloseChunkInstruction reclaims an expired chunk record's rent to the
// refund address committed at creation.
func NewCloseChunkInstruction(accounts *CloseChunkInstructionAccounts) solana.Instruction {
	var offset int

	data := make([]byte, len(closeChunkInstructionDiscriminator))
	putDiscriminator(data, closeChunkInstructionDiscriminator, &offset)

	return solana.Instruction{
		Program: PROGRAM_ID,
		Data:    data,
		Accounts: []solana.AccountMeta{
			{
				PublicKey:  accounts.SmartWallet,
				IsWritable: false,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.Chunk,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.RefundTo,
				IsWritable: true,
				IsSigner:   false,
			},
		},
	}
}
