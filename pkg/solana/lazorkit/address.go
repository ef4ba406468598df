package lazorkit

import (
	"crypto/ed25519"
	"encoding/binary"

	"github.com/lazor-kit/smartwallet-go/pkg/solana"
)

var (
	ConfigPrefix      = []byte("config")
	SmartWalletPrefix = []byte("smart_wallet")
	WalletVaultPrefix = []byte("wallet_vault")
	ChunkPrefix       = []byte("chunk")
)

func GetConfigAddress() (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		ConfigPrefix,
	)
}

type GetSmartWalletAddressArgs struct {
	WalletId uint64
}

func GetSmartWalletAddress(args *GetSmartWalletAddressArgs) (ed25519.PublicKey, uint8, error) {
	walletIdBytes := make([]byte, 8)
	binary.LittleEndian.PutUint64(walletIdBytes, args.WalletId)

	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		SmartWalletPrefix,
		walletIdBytes,
	)
}

type GetWalletVaultAddressArgs struct {
	Wallet     ed25519.PublicKey
	VaultIndex uint8
}

func GetWalletVaultAddress(args *GetWalletVaultAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		WalletVaultPrefix,
		args.Wallet,
		[]byte{args.VaultIndex},
	)
}

type GetChunkAddressArgs struct {
	Wallet ed25519.PublicKey
	Nonce  uint64
}

func GetChunkAddress(args *GetChunkAddressArgs) (ed25519.PublicKey, uint8, error) {
	nonceBytes := make([]byte, 8)
	binary.LittleEndian.PutUint64(nonceBytes, args.Nonce)

	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		ChunkPrefix,
		args.Wallet,
		nonceBytes,
	)
}
