package lazorkit

import (
	"crypto/ed25519"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lazor-kit/smartwallet-go/pkg/solana"
	compute_budget "github.com/lazor-kit/smartwallet-go/pkg/solana/computebudget"
	ed25519program "github.com/lazor-kit/smartwallet-go/pkg/solana/ed25519"
	"github.com/lazor-kit/smartwallet-go/pkg/solana/memo"
	"github.com/lazor-kit/smartwallet-go/pkg/solana/system"
)

// Builds and signs a complete transaction the way a client submitting an
// authorized transfer out of a wallet vault would.
func TestExecuteTransaction(t *testing.T) {
	payerPub, payerPriv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	wallet, _, err := GetSmartWalletAddress(&GetSmartWalletAddressArgs{WalletId: 42})
	require.NoError(t, err)
	vault, _, err := GetWalletVaultAddress(&GetWalletVaultAddressArgs{Wallet: wallet, VaultIndex: 0})
	require.NoError(t, err)
	config, _, err := GetConfigAddress()
	require.NoError(t, err)

	policyInstruction := memo.Instruction("policy check placeholder")
	cpiInstruction := system.Transfer(vault, testAccountA, 1000)

	message := NewExecuteMessage(wallet, 7, 1700000000, policyInstruction, cpiInstruction)
	assert.Len(t, message.Marshal(), ExecuteMessageSize)

	// Ed25519 authorities are verified through the native precompile; the
	// sig-verify instruction precedes the wallet instruction in the same
	// transaction.
	messageHash, err := BuildMessageHash(SignatureSchemeEd25519, message.Marshal(), nil, nil)
	require.NoError(t, err)

	_, authorityPriv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	sigVerifyInstruction := ed25519program.Instruction(authorityPriv, messageHash[:])

	executeInstruction := NewExecuteInstruction(
		&ExecuteInstructionAccounts{
			Config:      config,
			SmartWallet: wallet,
			Vault:       vault,
			Payer:       payerPub,
		},
		&ExecuteInstructionArgs{
			VaultIndex: 0,
			Nonce:      7,
			Timestamp:  1700000000,
			Proof:      testProof(),
		},
		policyInstruction,
		cpiInstruction,
	)

	txn := solana.NewTransaction(
		payerPub,
		compute_budget.SetComputeUnitLimit(400000),
		sigVerifyInstruction,
		executeInstruction,
	)
	txn.SetBlockhash(solana.Blockhash{1})
	require.NoError(t, txn.Sign(payerPriv))

	marshalled := txn.Marshal()
	require.NotEmpty(t, marshalled)

	var unmarshalled solana.Transaction
	require.NoError(t, unmarshalled.Unmarshal(marshalled))
	require.Len(t, unmarshalled.Message.Instructions, 3)

	compiled := unmarshalled.Message.Instructions[2]
	assert.Equal(t, executeInstruction.Data, compiled.Data)
	assert.EqualValues(t, PROGRAM_ID, unmarshalled.Message.Accounts[compiled.ProgramIndex])
}
