package lazorkit

import (
	"bytes"
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lazor-kit/smartwallet-go/pkg/solana"
)

var (
	testWallet   = testKey(2)
	testProgramA = testKey(11)
	testProgramB = testKey(12)
	testAccountA = testKey(21)
	testAccountB = testKey(22)
)

func testKey(b byte) ed25519.PublicKey {
	return ed25519.PublicKey(bytes.Repeat([]byte{b}, ed25519.PublicKeySize))
}

func testInstructionA() solana.Instruction {
	return solana.Instruction{
		Program: testProgramA,
		Accounts: []solana.AccountMeta{
			{PublicKey: testAccountA, IsSigner: true, IsWritable: true},
			{PublicKey: testAccountB},
			{PublicKey: testWallet},
		},
		Data: []byte("hello"),
	}
}

func testInstructionB() solana.Instruction {
	return solana.Instruction{
		Program: testProgramB,
		Accounts: []solana.AccountMeta{
			{PublicKey: testAccountB, IsWritable: true},
			{PublicKey: testAccountA},
		},
		Data: []byte("world"),
	}
}

func TestHashInstruction(t *testing.T) {
	pair := HashInstruction(testWallet, testInstructionA())

	// The program leads the stream as a bare address, the wallet's own
	// address hashes as writable despite the readonly reference, and the
	// signer flag is excluded entirely.
	assert.Equal(t, "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824", hex.EncodeToString(pair.Data[:]))
	assert.Equal(t, "cd65179c5f70cae8b3b932e93423c0ccbf96e0234803c1e0ac78ce061ee547d9", hex.EncodeToString(pair.Accounts[:]))
}

func TestHashInstruction_Deterministic(t *testing.T) {
	first := HashInstruction(testWallet, testInstructionA())
	second := HashInstruction(testWallet, testInstructionA())
	assert.Equal(t, first, second)
}

func TestHashBatch(t *testing.T) {
	pair := HashBatch(testWallet, []solana.Instruction{testInstructionA(), testInstructionB()})

	// testAccountB appears readonly in the first instruction and writable
	// in the second; the merged entry keeps its first-seen position with
	// the promoted flag.
	assert.Equal(t, "6662889b0868952bd8cb8c70f39f771abaf099dbe00dce19c8c990f728493545", hex.EncodeToString(pair.Data[:]))
	assert.Equal(t, "2ad14e05a0c768c6483e0a903d262079319a5849d972afb17b2f6ea897bf07c4", hex.EncodeToString(pair.Accounts[:]))
}

func TestHashBatch_OrderSensitive(t *testing.T) {
	pair := HashBatch(testWallet, []solana.Instruction{testInstructionB(), testInstructionA()})

	assert.Equal(t, "9393d54372aece497ebc173d88ed441517ea96b918cd94264b5b89d15584e39d", hex.EncodeToString(pair.Data[:]))
	assert.Equal(t, "1293590d6f396580cb64f835bbaefae30921f68dc59263f551e985bc4f5dde80", hex.EncodeToString(pair.Accounts[:]))
}

func TestHashBatch_SingleInstructionMatchesSingleMode(t *testing.T) {
	single := HashInstruction(testWallet, testInstructionA())
	batch := HashBatch(testWallet, []solana.Instruction{testInstructionA()})
	assert.Equal(t, single, batch)
}

func TestHashInstructionAccounts_MergeIdempotent(t *testing.T) {
	instruction := testInstructionA()
	instruction.Accounts = append(instruction.Accounts, instruction.Accounts...)

	assert.Equal(t,
		HashInstructionAccounts(testWallet, testInstructionA()),
		HashInstructionAccounts(testWallet, instruction),
	)
}

func TestHashInstructionAccounts_DuplicatePromotion(t *testing.T) {
	readonly := solana.Instruction{
		Program: testProgramA,
		Accounts: []solana.AccountMeta{
			{PublicKey: testAccountA},
		},
	}
	promoted := solana.Instruction{
		Program: testProgramA,
		Accounts: []solana.AccountMeta{
			{PublicKey: testAccountA},
			{PublicKey: testAccountA, IsWritable: true},
		},
	}

	assert.NotEqual(t,
		HashInstructionAccounts(testWallet, readonly),
		HashInstructionAccounts(testWallet, promoted),
	)

	// The promoted flags never reorder entries, so a duplicate that adds
	// nothing new still hashes like the deduplicated list.
	writable := solana.Instruction{
		Program: testProgramA,
		Accounts: []solana.AccountMeta{
			{PublicKey: testAccountA, IsWritable: true},
		},
	}
	assert.Equal(t,
		HashInstructionAccounts(testWallet, writable),
		HashInstructionAccounts(testWallet, promoted),
	)
}

func TestHashInstructionAccounts_BareProgramPrefix(t *testing.T) {
	instruction := solana.Instruction{
		Program: testProgramA,
		Accounts: []solana.AccountMeta{
			{PublicKey: testAccountA},
		},
	}

	// Flag bytes follow real accounts only; the program contributes its
	// raw address and nothing else.
	var stream []byte
	stream = append(stream, testProgramA...)
	stream = append(stream, testAccountA...)
	stream = append(stream, 0, 0)

	assert.Equal(t, Hash(sha256.Sum256(stream)), HashInstructionAccounts(testWallet, instruction))
}

func TestHashInstructionAccounts_ProgramDistinguishes(t *testing.T) {
	viaA := solana.Instruction{Program: testProgramA, Accounts: []solana.AccountMeta{{PublicKey: testAccountA}}}
	viaB := solana.Instruction{Program: testProgramB, Accounts: []solana.AccountMeta{{PublicKey: testAccountA}}}

	assert.NotEqual(t,
		HashInstructionAccounts(testWallet, viaA),
		HashInstructionAccounts(testWallet, viaB),
	)
}

// A wallet W authorizing a policy check through program Q plus a transfer out
// of the wallet through program S, nonce 7, timestamp 1700000000.
func TestHashInstruction_AuthorizedTransferScenario(t *testing.T) {
	wallet := testKey(2)
	policyInstruction := solana.Instruction{
		Program: testKey(3),
		Accounts: []solana.AccountMeta{
			{PublicKey: testKey(4)},
		},
		Data: []byte("policy payload"),
	}
	transferInstruction := solana.Instruction{
		Program: testKey(5),
		Accounts: []solana.AccountMeta{
			{PublicKey: wallet, IsWritable: true},
			{PublicKey: testKey(6), IsWritable: true},
		},
		Data: []byte("transfer payload"),
	}

	message := NewExecuteMessage(wallet, 7, 1700000000, policyInstruction, transferInstruction)

	assert.EqualValues(t, 7, message.Nonce)
	assert.EqualValues(t, 1700000000, message.Timestamp)
	assert.Equal(t, "b20d1a1d4c544083c903b6d7629a8eddcab77364889338cd6c0eb7ab6f3bdae4", hex.EncodeToString(message.Policy.Data[:]))
	assert.Equal(t, "c36b1117ff7ca122c659e38a1973eae78db8e4a0c96f337ceefa67ce6f2e5aa1", hex.EncodeToString(message.Policy.Accounts[:]))
	assert.Equal(t, "f781cc477d6c0a2b1965e4f4721f1555ecfaff683508a1d9c0b381c9a483cf27", hex.EncodeToString(message.Cpi.Data[:]))
	assert.Equal(t, "300325f08dd83c6a40385a2cdc361688125bc92c9a28f6964c30b703580b1911", hex.EncodeToString(message.Cpi.Accounts[:]))
}

func TestDigestPair_CombinedHash(t *testing.T) {
	combined := HashInstruction(testWallet, testInstructionA()).CombinedHash()
	assert.Equal(t, "fb3cfddf0e5197c9a312626da41c470d57c2aadebaf12e9be297ad6da25955f1", hex.EncodeToString(combined[:]))
}
