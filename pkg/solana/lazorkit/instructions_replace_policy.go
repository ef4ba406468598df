package lazorkit

import (
	"crypto/ed25519"

	"github.com/lazor-kit/smartwallet-go/pkg/solana"
)

var replacePolicyInstructionDiscriminator = []byte{
	0x45, 0xc9, 0x67, 0x68, 0x46, 0x48, 0x55, 0x1d,
}

type ReplacePolicyInstructionArgs struct {
	Nonce     uint64
	Timestamp int64
	Proof     AuthorizationProof
}

type ReplacePolicyInstructionAccounts struct {
	Config      ed25519.PublicKey
	SmartWallet ed25519.PublicKey
	Payer       ed25519.PublicKey
}

// NewReplacePolicyInstruction builds the policy migration instruction. The
// old policy program performs its teardown check, then the new policy
// program initializes; both instructions are authorized under one signature.
func NewReplacePolicyInstruction(
	accounts *ReplacePolicyInstructionAccounts,
	args *ReplacePolicyInstructionArgs,
	oldPolicyInstruction solana.Instruction,
	newPolicyInstruction solana.Instruction,
) solana.Instruction {
	var offset int

	// Serialize instruction arguments
	data := make([]byte,
		len(replacePolicyInstructionDiscriminator)+
			8+ // nonce
			8+ // timestamp
			getAuthorizationProofSize(&args.Proof)+
			4+len(oldPolicyInstruction.Data)+
			4+len(newPolicyInstruction.Data)+
			2) // new policy split index

	newPolicySplitIndex := uint16(len(oldPolicyInstruction.Accounts) + 1)

	putDiscriminator(data, replacePolicyInstructionDiscriminator, &offset)
	putUint64(data, args.Nonce, &offset)
	putInt64(data, args.Timestamp, &offset)
	putAuthorizationProof(data, &args.Proof, &offset)
	putBytes(data, oldPolicyInstruction.Data, &offset)
	putBytes(data, newPolicyInstruction.Data, &offset)
	putUint16(data, newPolicySplitIndex, &offset)

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
		{
			PublicKey:  SYSTEM_PROGRAM_ID,
			IsWritable: false,
			IsSigner:   false,
		},
	}
	metas = append(metas, FlattenInstructionAccounts([]solana.Instruction{
		oldPolicyInstruction,
		newPolicyInstruction,
	})...)

	return solana.Instruction{
		Program:  PROGRAM_ID,
		Data:     data,
		Accounts: metas,
	}
}

// NewReplacePolicyMessage derives the authorization message paired with
// NewReplacePolicyInstruction.
func NewReplacePolicyMessage(
	wallet ed25519.PublicKey,
	nonce uint64,
	timestamp int64,
	oldPolicyInstruction solana.Instruction,
	newPolicyInstruction solana.Instruction,
) *ReplacePolicyMessage {
	return &ReplacePolicyMessage{
		Nonce:     nonce,
		Timestamp: timestamp,
		OldPolicy: HashInstruction(wallet, oldPolicyInstruction),
		NewPolicy: HashInstruction(wallet, newPolicyInstruction),
	}
}
