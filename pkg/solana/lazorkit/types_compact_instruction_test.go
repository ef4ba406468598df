package lazorkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lazor-kit/smartwallet-go/pkg/solana"
)

func TestCompactInstructions_RoundTrip(t *testing.T) {
	for _, instructions := range [][]solana.Instruction{
		nil,
		{testInstructionA()},
		{testInstructionA(), testInstructionB(), testInstructionA()},
	} {
		compact := NewCompactInstructions(instructions)
		marshalled, err := MarshalCompactInstructions(compact)
		require.NoError(t, err)

		decoded, err := UnmarshalCompactInstructions(marshalled)
		require.NoError(t, err)
		require.Len(t, decoded, len(instructions))

		for i, instruction := range instructions {
			assert.EqualValues(t, instruction.Program, decoded[i].Program)
			assert.Equal(t, instruction.Data, decoded[i].Data)

			expanded := decoded[i].ToInstruction()
			require.Len(t, expanded.Accounts, len(instruction.Accounts))
			for j, meta := range instruction.Accounts {
				assert.EqualValues(t, meta.PublicKey, expanded.Accounts[j].PublicKey)

				// roles are not carried on the wire
				assert.False(t, expanded.Accounts[j].IsSigner)
				assert.False(t, expanded.Accounts[j].IsWritable)
			}
		}
	}
}

func TestCompactInstructions_RoundTripNoAccountsNoData(t *testing.T) {
	compact := NewCompactInstructions([]solana.Instruction{
		{Program: testProgramA},
	})
	marshalled, err := MarshalCompactInstructions(compact)
	require.NoError(t, err)

	decoded, err := UnmarshalCompactInstructions(marshalled)
	require.NoError(t, err)
	require.Len(t, decoded, 1)
	assert.Empty(t, decoded[0].Accounts)
	assert.Empty(t, decoded[0].Data)
}

func TestUnmarshalCompactInstructions_Truncated(t *testing.T) {
	marshalled, err := MarshalCompactInstructions(NewCompactInstructions([]solana.Instruction{
		testInstructionA(),
		testInstructionB(),
	}))
	require.NoError(t, err)

	// every prefix shorter than the full buffer must be rejected
	for i := 0; i < len(marshalled); i++ {
		_, err := UnmarshalCompactInstructions(marshalled[:i])
		assert.Equal(t, ErrInvalidInstructionData, err, "prefix of length %d", i)
	}
}

func TestUnmarshalCompactInstructions_TrailingBytes(t *testing.T) {
	marshalled, err := MarshalCompactInstructions(NewCompactInstructions([]solana.Instruction{
		testInstructionA(),
	}))
	require.NoError(t, err)

	_, err = UnmarshalCompactInstructions(append(marshalled, 0x00))
	assert.Equal(t, ErrInvalidInstructionData, err)
}

func TestUnmarshalCompactInstructions_OverstatedCount(t *testing.T) {
	marshalled, err := MarshalCompactInstructions(NewCompactInstructions([]solana.Instruction{
		testInstructionA(),
	}))
	require.NoError(t, err)

	marshalled[0] = 2
	_, err = UnmarshalCompactInstructions(marshalled)
	assert.Equal(t, ErrInvalidInstructionData, err)
}

func TestGetSplitIndices(t *testing.T) {
	indices, err := GetSplitIndices(nil)
	require.NoError(t, err)
	assert.Empty(t, indices)

	indices, err = GetSplitIndices([]solana.Instruction{testInstructionA()})
	require.NoError(t, err)
	assert.Empty(t, indices)

	// A occupies 3 accounts + program, B occupies 2 accounts + program
	indices, err = GetSplitIndices([]solana.Instruction{
		testInstructionA(),
		testInstructionB(),
		testInstructionA(),
	})
	require.NoError(t, err)
	assert.Equal(t, []uint16{4, 7}, indices)
}

func TestGetSplitIndices_MatchesFlattening(t *testing.T) {
	instructions := []solana.Instruction{testInstructionA(), testInstructionB()}

	indices, err := GetSplitIndices(instructions)
	require.NoError(t, err)
	require.Len(t, indices, 1)

	flattened := FlattenInstructionAccounts(instructions)
	require.Len(t, flattened, 7)

	// the second instruction's program sits exactly at the split index
	assert.EqualValues(t, testProgramB, flattened[indices[0]].PublicKey)
}

func TestFlattenInstructionAccounts(t *testing.T) {
	flattened := FlattenInstructionAccounts([]solana.Instruction{testInstructionA()})
	require.Len(t, flattened, 4)

	assert.EqualValues(t, testProgramA, flattened[0].PublicKey)
	assert.False(t, flattened[0].IsSigner)
	assert.False(t, flattened[0].IsWritable)

	assert.EqualValues(t, testAccountA, flattened[1].PublicKey)
	assert.True(t, flattened[1].IsWritable)
}
