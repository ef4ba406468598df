package lazorkit

import (
	"crypto/ed25519"

	"github.com/lazor-kit/smartwallet-go/pkg/solana"
)

var createSessionInstructionDiscriminator = []byte{
	0xf2, 0xc1, 0x8f, 0xb3, 0x96, 0x19, 0x7a, 0xe3,
}

type CreateSessionInstructionArgs struct {
	Nonce        uint64
	Timestamp    int64
	EphemeralKey ed25519.PublicKey
	ExpiresAt    int64
	Proof        AuthorizationProof
}

type CreateSessionInstructionAccounts struct {
	Config      ed25519.PublicKey
	SmartWallet ed25519.PublicKey
	Payer       ed25519.PublicKey
}

// NewCreateSessionInstruction registers a time-boxed session key scoped to
// the delegated instruction's digests.
func NewCreateSessionInstruction(
	accounts *CreateSessionInstructionAccounts,
	args *CreateSessionInstructionArgs,
	delegatedInstruction solana.Instruction,
) solana.Instruction {
	var offset int

	// Serialize instruction arguments
	data := make([]byte,
		len(createSessionInstructionDiscriminator)+
			8+ // nonce
			8+ // timestamp
			ed25519.PublicKeySize+
			8+ // expires at
			getAuthorizationProofSize(&args.Proof)+
			4+len(delegatedInstruction.Data))

	putDiscriminator(data, createSessionInstructionDiscriminator, &offset)
	putUint64(data, args.Nonce, &offset)
	putInt64(data, args.Timestamp, &offset)
	putKey(data, args.EphemeralKey, &offset)
	putInt64(data, args.ExpiresAt, &offset)
	putAuthorizationProof(data, &args.Proof, &offset)
	putBytes(data, delegatedInstruction.Data, &offset)

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
		delegatedInstruction,
	})...)

	return solana.Instruction{
		Program:  PROGRAM_ID,
		Data:     data,
		Accounts: metas,
	}
}

// NewCreateSessionMessage derives the authorization message paired with
// NewCreateSessionInstruction.
func NewCreateSessionMessage(
	wallet ed25519.PublicKey,
	nonce uint64,
	timestamp int64,
	ephemeralKey ed25519.PublicKey,
	expiresAt int64,
	delegatedInstruction solana.Instruction,
) *CreateSessionMessage {
	return &CreateSessionMessage{
		Nonce:        nonce,
		Timestamp:    timestamp,
		EphemeralKey: ephemeralKey,
		ExpiresAt:    expiresAt,
		Delegated:    HashInstruction(wallet, delegatedInstruction),
	}
}
