package lazorkit

import (
	"crypto/ed25519"

	"github.com/lazor-kit/smartwallet-go/pkg/solana"
)

var executeInstructionDiscriminator = []byte{
	0x82, 0xdd, 0xf2, 0x9a, 0x0d, 0xc1, 0xbd, 0x1d,
}

type ExecuteInstructionArgs struct {
	VaultIndex uint8
	Nonce      uint64
	Timestamp  int64
	Proof      AuthorizationProof
}

type ExecuteInstructionAccounts struct {
	Config      ed25519.PublicKey
	SmartWallet ed25519.PublicKey
	Vault       ed25519.PublicKey
	Payer       ed25519.PublicKey
}

// NewExecuteInstruction builds the submission instruction for a single
// authorized execution: one policy check plus one CPI instruction. The inner
// instructions travel uncanonicalized; the program re-derives their digests
// and compares against what the signed message authorized.
func NewExecuteInstruction(
	accounts *ExecuteInstructionAccounts,
	args *ExecuteInstructionArgs,
	policyInstruction solana.Instruction,
	cpiInstruction solana.Instruction,
) solana.Instruction {
	var offset int

	// Serialize instruction arguments
	data := make([]byte,
		len(executeInstructionDiscriminator)+
			1+ // vault index
			8+ // nonce
			8+ // timestamp
			getAuthorizationProofSize(&args.Proof)+
			4+len(policyInstruction.Data)+
			4+len(cpiInstruction.Data)+
			2) // cpi split index

	// The policy instruction occupies the leading remaining-account slots;
	// the CPI instruction's slots begin right after, program address
	// included.
	cpiSplitIndex := uint16(len(policyInstruction.Accounts) + 1)

	putDiscriminator(data, executeInstructionDiscriminator, &offset)
	putUint8(data, args.VaultIndex, &offset)
	putUint64(data, args.Nonce, &offset)
	putInt64(data, args.Timestamp, &offset)
	putAuthorizationProof(data, &args.Proof, &offset)
	putBytes(data, policyInstruction.Data, &offset)
	putBytes(data, cpiInstruction.Data, &offset)
	putUint16(data, cpiSplitIndex, &offset)

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
			PublicKey:  accounts.Vault,
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
		cpiInstruction,
	})...)

	return solana.Instruction{
		Program:  PROGRAM_ID,
		Data:     data,
		Accounts: metas,
	}
}

// NewExecuteMessage derives the authorization message a credential must sign
// for NewExecuteInstruction to verify.
func NewExecuteMessage(
	wallet ed25519.PublicKey,
	nonce uint64,
	timestamp int64,
	policyInstruction solana.Instruction,
	cpiInstruction solana.Instruction,
) *ExecuteMessage {
	return &ExecuteMessage{
		Nonce:     nonce,
		Timestamp: timestamp,
		Policy:    HashInstruction(wallet, policyInstruction),
		Cpi:       HashInstruction(wallet, cpiInstruction),
	}
}
