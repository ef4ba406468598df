package lazorkit

import (
	"crypto/ed25519"

	"github.com/lazor-kit/smartwallet-go/pkg/solana"
)

var invokePolicyInstructionDiscriminator = []byte{
	0xe9, 0x75, 0x0d, 0xc6, 0x2b, 0xa9, 0x4d, 0x57,
}

type InvokePolicyInstructionArgs struct {
	Nonce     uint64
	Timestamp int64
	Proof     AuthorizationProof
}

type InvokePolicyInstructionAccounts struct {
	Config      ed25519.PublicKey
	SmartWallet ed25519.PublicKey
	Payer       ed25519.PublicKey
}

func NewInvokePolicyInstruction(
	accounts *InvokePolicyInstructionAccounts,
	args *InvokePolicyInstructionArgs,
	policyInstruction solana.Instruction,
) solana.Instruction {
	var offset int

	// Serialize instruction arguments
	data := make([]byte,
		len(invokePolicyInstructionDiscriminator)+
			8+ // nonce
			8+ // timestamp
			getAuthorizationProofSize(&args.Proof)+
			4+len(policyInstruction.Data))

	putDiscriminator(data, invokePolicyInstructionDiscriminator, &offset)
	putUint64(data, args.Nonce, &offset)
	putInt64(data, args.Timestamp, &offset)
	putAuthorizationProof(data, &args.Proof, &offset)
	putBytes(data, policyInstruction.Data, &offset)

	metas := []solana.AccountMeta{
		{
			PublicKey:  accounts.Config,
			IsWritable: false,
			IsSigner:   false,
		},
		{
			PublicKey:  accounts.SmartWallet,
			IsWritable: true,
			IsSigner:   false,
		},
		{
			PublicKey:  accounts.Payer,
			IsWritable: true,
			IsSigner:   true,
		},
		{
			PublicKey:  SYSVAR_INSTRUCTIONS_PUBKEY,
			IsWritable: false,
			IsSigner:   false,
		},
	}
	metas = append(metas, FlattenInstructionAccounts([]solana.Instruction{
		policyInstruction,
	})...)

	return solana.Instruction{
		Program:  PROGRAM_ID,
		Data:     data,
		Accounts: metas,
	}
}

// NewInvokePolicyMessage derives the authorization message paired with
// NewInvokePolicyInstruction.
func NewInvokePolicyMessage(
	wallet ed25519.PublicKey,
	nonce uint64,
	timestamp int64,
	policyInstruction solana.Instruction,
) *InvokePolicyMessage {
	return &InvokePolicyMessage{
		Nonce:     nonce,
		Timestamp: timestamp,
		Policy:    HashInstruction(wallet, policyInstruction),
	}
}
