package lazorkit

import (
	"crypto/ed25519"
	"errors"
)

var (
	ErrInvalidProgram         = errors.New("invalid program id")
	ErrInvalidAccountData     = errors.New("unexpected account data")
	ErrInvalidInstructionData = errors.New("unexpected instruction data")
	ErrInvalidMessageData     = errors.New("unexpected message data")

	ErrInvalidSignatureLength = errors.New("unexpected signature length")
	ErrMissingReplayCounter   = errors.New("replay counter required for scheme")
	ErrMissingSlot            = errors.New("slot required for scheme")
	ErrUnsupportedScheme      = errors.New("unsupported signature scheme")
)

var (
	PROGRAM_ADDRESS = mustBase58Decode("Fr4nrChHbtDiVLwfn2CiLGCmgGRcV1XBGSmMRmQpwx7o")
	PROGRAM_ID      = ed25519.PublicKey(PROGRAM_ADDRESS)
)

var (
	SYSTEM_PROGRAM_ID = ed25519.PublicKey(mustBase58Decode("11111111111111111111111111111111"))

	SYSVAR_INSTRUCTIONS_PUBKEY = ed25519.PublicKey(mustBase58Decode("Sysvar1nstructions1111111111111111111111111"))
	SYSVAR_RENT_PUBKEY         = ed25519.PublicKey(mustBase58Decode("SysvarRent111111111111111111111111111111111"))
)
