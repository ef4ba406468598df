package lazorkit

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lazor-kit/smartwallet-go/pkg/solana"
)

func testProof() AuthorizationProof {
	return AuthorizationProof{
		AuthorityIndex:    1,
		Payload:           bytes.Repeat([]byte{0xab}, Ed25519AuthorityPayloadSize),
		AuthenticatorData: []byte("authenticator"),
		ClientDataJson:    []byte(`{"type":"webauthn.get"}`),
	}
}

func TestNewExecuteInstruction(t *testing.T) {
	policy := testInstructionA()
	cpi := testInstructionB()

	instruction := NewExecuteInstruction(
		&ExecuteInstructionAccounts{
			Config:      testKey(31),
			SmartWallet: testWallet,
			Vault:       testKey(32),
			Payer:       testKey(33),
		},
		&ExecuteInstructionArgs{
			VaultIndex: 1,
			Nonce:      7,
			Timestamp:  1700000000,
			Proof:      testProof(),
		},
		policy,
		cpi,
	)

	assert.EqualValues(t, PROGRAM_ID, instruction.Program)
	assert.Equal(t, executeInstructionDiscriminator, instruction.Data[:8])
	assert.EqualValues(t, 1, instruction.Data[8])
	assert.EqualValues(t, 7, binary.LittleEndian.Uint64(instruction.Data[9:17]))
	assert.EqualValues(t, 1700000000, binary.LittleEndian.Uint64(instruction.Data[17:25]))

	// the cpi split index trails everything else: policy occupies its
	// account count plus one slots
	splitIndex := binary.LittleEndian.Uint16(instruction.Data[len(instruction.Data)-2:])
	assert.EqualValues(t, len(policy.Accounts)+1, splitIndex)

	// fixed accounts, then policy program + accounts, then cpi program +
	// accounts
	require.Len(t, instruction.Accounts, 6+4+3)
	assert.EqualValues(t, testWallet, instruction.Accounts[1].PublicKey)
	assert.True(t, instruction.Accounts[1].IsWritable)
	assert.True(t, instruction.Accounts[3].IsSigner)
	assert.EqualValues(t, policy.Program, instruction.Accounts[6].PublicKey)
	assert.EqualValues(t, cpi.Program, instruction.Accounts[6+int(splitIndex)].PublicKey)
}

func TestNewExecuteMessage_MatchesDirectHashing(t *testing.T) {
	policy := testInstructionA()
	cpi := testInstructionB()

	message := NewExecuteMessage(testWallet, 7, 1700000000, policy, cpi)
	assert.Equal(t, HashInstruction(testWallet, policy), message.Policy)
	assert.Equal(t, HashInstruction(testWallet, cpi), message.Cpi)
}

func TestNewReplacePolicyInstruction(t *testing.T) {
	oldPolicy := testInstructionA()
	newPolicy := testInstructionB()

	instruction := NewReplacePolicyInstruction(
		&ReplacePolicyInstructionAccounts{
			Config:      testKey(31),
			SmartWallet: testWallet,
			Payer:       testKey(33),
		},
		&ReplacePolicyInstructionArgs{
			Nonce:     8,
			Timestamp: 1700000001,
			Proof:     testProof(),
		},
		oldPolicy,
		newPolicy,
	)

	assert.Equal(t, replacePolicyInstructionDiscriminator, instruction.Data[:8])

	splitIndex := binary.LittleEndian.Uint16(instruction.Data[len(instruction.Data)-2:])
	assert.EqualValues(t, len(oldPolicy.Accounts)+1, splitIndex)

	require.Len(t, instruction.Accounts, 5+4+3)
	assert.EqualValues(t, newPolicy.Program, instruction.Accounts[5+int(splitIndex)].PublicKey)
}

func TestNewCreateChunkInstruction(t *testing.T) {
	policy := testInstructionA()
	batch := []solana.Instruction{testInstructionA(), testInstructionB()}
	cpiHash := HashBatch(testWallet, batch).CombinedHash()

	instruction := NewCreateChunkInstruction(
		&CreateChunkInstructionAccounts{
			Config:      testKey(31),
			SmartWallet: testWallet,
			Chunk:       testKey(34),
			Payer:       testKey(33),
		},
		&CreateChunkInstructionArgs{
			VaultIndex: 1,
			Nonce:      7,
			Timestamp:  1700000000,
			Proof:      testProof(),
			CpiHash:    cpiHash,
		},
		policy,
	)

	assert.Equal(t, createChunkInstructionDiscriminator, instruction.Data[:8])

	// the committed hash occupies the final 32 bytes
	assert.EqualValues(t, cpiHash[:], instruction.Data[len(instruction.Data)-HashSize:])
}

func TestNewExecuteChunkInstruction(t *testing.T) {
	batch := []solana.Instruction{testInstructionA(), testInstructionB()}

	instruction, err := NewExecuteChunkInstruction(
		&ExecuteChunkInstructionAccounts{
			SmartWallet: testWallet,
			Chunk:       testKey(34),
			Vault:       testKey(32),
			RefundTo:    testKey(35),
		},
		batch,
	)
	require.NoError(t, err)

	assert.Equal(t, executeChunkInstructionDiscriminator, instruction.Data[:8])

	// trailing split index vec: count 1, value 4
	assert.EqualValues(t, 1, binary.LittleEndian.Uint32(instruction.Data[len(instruction.Data)-6:len(instruction.Data)-2]))
	assert.EqualValues(t, 4, binary.LittleEndian.Uint16(instruction.Data[len(instruction.Data)-2:]))

	// embedded compact instructions survive a round trip
	var compactLen uint32
	offset := 8
	compactLen = binary.LittleEndian.Uint32(instruction.Data[offset:])
	offset += 4
	decoded, err := UnmarshalCompactInstructions(instruction.Data[offset : offset+int(compactLen)])
	require.NoError(t, err)
	require.Len(t, decoded, 2)
	assert.EqualValues(t, batch[1].Data, decoded[1].Data)

	require.Len(t, instruction.Accounts, 5+4+3)
}

func TestNewCloseChunkInstruction(t *testing.T) {
	instruction := NewCloseChunkInstruction(&CloseChunkInstructionAccounts{
		SmartWallet: testWallet,
		Chunk:       testKey(34),
		RefundTo:    testKey(35),
	})

	assert.Equal(t, closeChunkInstructionDiscriminator, instruction.Data)
	require.Len(t, instruction.Accounts, 3)
	assert.True(t, instruction.Accounts[1].IsWritable)
	assert.True(t, instruction.Accounts[2].IsWritable)
}

func TestNewCreateSessionInstruction(t *testing.T) {
	delegated := testInstructionA()
	ephemeralKey := testKey(36)

	instruction := NewCreateSessionInstruction(
		&CreateSessionInstructionAccounts{
			Config:      testKey(31),
			SmartWallet: testWallet,
			Payer:       testKey(33),
		},
		&CreateSessionInstructionArgs{
			Nonce:        9,
			Timestamp:    1700000002,
			EphemeralKey: ephemeralKey,
			ExpiresAt:    1700003602,
			Proof:        testProof(),
		},
		delegated,
	)

	assert.Equal(t, createSessionInstructionDiscriminator, instruction.Data[:8])
	assert.EqualValues(t, 9, binary.LittleEndian.Uint64(instruction.Data[8:16]))
	assert.EqualValues(t, []byte(ephemeralKey), instruction.Data[24:56])
	assert.EqualValues(t, 1700003602, binary.LittleEndian.Uint64(instruction.Data[56:64]))

	require.Len(t, instruction.Accounts, 5+4)
}
