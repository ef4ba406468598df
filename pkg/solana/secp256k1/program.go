package secp256k1

import (
	"crypto/ed25519"
	"encoding/binary"
	"math"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"golang.org/x/crypto/sha3"

	"github.com/lazor-kit/smartwallet-go/pkg/solana"
)

// KeccakSecp256k11111111111111111111111111111
var ProgramKey = ed25519.PublicKey{4, 198, 252, 32, 240, 80, 204, 240, 85, 132, 215, 33, 28, 159, 140, 245, 158, 193, 71, 133, 187, 22, 106, 30, 40, 48, 232, 18, 32, 0, 0, 0}

// Reference: https://github.com/solana-labs/solana/blob/27eff8408b7223bb3c4ab70523f8a8dca3ca6645/sdk/src/secp256k1_instruction.rs
func Instruction(privateKey *secp256k1.PrivateKey, message []byte) solana.Instruction {
	ethAddress := EthereumAddress(privateKey.PubKey())

	messageHash := keccak256(message)
	compactSignature := ecdsa.SignCompact(privateKey, messageHash, false)

	// SignCompact returns 27+recovery_id in the header byte followed by
	// R || S; the program wants the parts in the opposite order.
	recoveryId := compactSignature[0] - 27

	data := make([]byte, 97+len(message))

	offset := 0

	data[offset] = 1 // num_signatures
	offset++

	binary.LittleEndian.PutUint16(data[offset:], 32) // signature_offset
	offset += 2

	data[offset] = math.MaxUint8 // signature_instruction_index
	offset++

	binary.LittleEndian.PutUint16(data[offset:], 12) // eth_address_offset
	offset += 2

	data[offset] = math.MaxUint8 // eth_address_instruction_index
	offset++

	binary.LittleEndian.PutUint16(data[offset:], 97) // message_data_offset
	offset += 2

	binary.LittleEndian.PutUint16(data[offset:], uint16(len(message))) // message_data_size
	offset += 2

	data[offset] = math.MaxUint8 // message_instruction_index
	offset++

	copy(data[offset:], ethAddress)
	offset += 20

	copy(data[offset:], compactSignature[1:])
	offset += 64

	data[offset] = recoveryId
	offset++

	copy(data[offset:], message)

	return solana.NewInstruction(
		ProgramKey,
		data,
	)
}

// EthereumAddress derives the 20-byte address the program recovers a
// signature against.
func EthereumAddress(publicKey *secp256k1.PublicKey) []byte {
	uncompressed := publicKey.SerializeUncompressed()
	return keccak256(uncompressed[1:])[12:]
}

func keccak256(b []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(b)
	return h.Sum(nil)
}
