package lazorkit

import (
	"crypto/ed25519"

	"github.com/lazor-kit/smartwallet-go/pkg/solana"
)

var createChunkInstructionDiscriminator = []byte{
	0x53, 0xe2, 0x0f, 0xdb, 0x09, 0x13, 0xba, 0x5a,
}

type CreateChunkInstructionArgs struct {
	VaultIndex uint8
	Nonce      uint64
	Timestamp  int64
	Proof      AuthorizationProof

	// Combined digest over the batch that will later be presented to
	// NewExecuteChunkInstruction. Computed client side with HashBatch
	// plus DigestPair.CombinedHash.
	CpiHash Hash
}

type CreateChunkInstructionAccounts struct {
	Config      ed25519.PublicKey
	SmartWallet ed25519.PublicKey
	Chunk       ed25519.PublicKey
	Payer       ed25519.PublicKey
}

// NewCreateChunkInstruction builds the first half of a two-phase execution.
// The signature covers the policy instruction and the batch digest; the
// batch itself is delivered later by NewExecuteChunkInstruction.
func NewCreateChunkInstruction(
	accounts *CreateChunkInstructionAccounts,
	args *CreateChunkInstructionArgs,
	policyInstruction solana.Instruction,
) solana.Instruction {
	var offset int

	// Serialize instruction arguments
	data := make([]byte,
		len(createChunkInstructionDiscriminator)+
			1+ // vault index
			8+ // nonce
			8+ // timestamp
			getAuthorizationProofSize(&args.Proof)+
			4+len(policyInstruction.Data)+
			HashSize) // cpi hash

	putDiscriminator(data, createChunkInstructionDiscriminator, &offset)
	putUint8(data, args.VaultIndex, &offset)
	putUint64(data, args.Nonce, &offset)
	putInt64(data, args.Timestamp, &offset)
	putAuthorizationProof(data, &args.Proof, &offset)
	putBytes(data, policyInstruction.Data, &offset)
	putHash(data, args.CpiHash, &offset)

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
			PublicKey:  accounts.Chunk,
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
		policyInstruction,
	})...)

	return solana.Instruction{
		Program:  PROGRAM_ID,
		Data:     data,
		Accounts: metas,
	}
}

// NewBatchExecuteMessage derives the authorization message a credential must
// sign to commit a batch, either for NewCreateChunkInstruction or a direct
// batched execution.
func NewBatchExecuteMessage(
	wallet ed25519.PublicKey,
	nonce uint64,
	timestamp int64,
	policyInstruction solana.Instruction,
	cpiInstructions []solana.Instruction,
) *BatchExecuteMessage {
	return &BatchExecuteMessage{
		Nonce:     nonce,
		Timestamp: timestamp,
		Policy:    HashInstruction(wallet, policyInstruction),
		Cpi:       HashBatch(wallet, cpiInstructions),
	}
}
