package lazorkit

import (
	"bytes"
	"crypto/ed25519"
	"fmt"

	"github.com/mr-tron/base58"
)

const (
	ConfigAccountSize = (8 + // discriminator
		1 + // bump
		32 + // admin
		32 + // default policy program
		8 + // create wallet fee
		1) // paused
)

var ConfigAccountDiscriminator = []byte{0x9b, 0x0c, 0xaa, 0xe0, 0x1e, 0xfa, 0xcc, 0x82}

// ConfigAccount is the singleton program configuration.
type ConfigAccount struct {
	Bump                 uint8
	Admin                ed25519.PublicKey
	DefaultPolicyProgram ed25519.PublicKey
	CreateWalletFee      uint64
	Paused               bool
}

func (obj *ConfigAccount) Unmarshal(data []byte) error {
	if len(data) < ConfigAccountSize {
		return ErrInvalidAccountData
	}

	var offset int

	var discriminator []byte
	getDiscriminator(data, &discriminator, &offset)
	if !bytes.Equal(discriminator, ConfigAccountDiscriminator) {
		return ErrInvalidAccountData
	}

	getUint8(data, &obj.Bump, &offset)
	getKey(data, &obj.Admin, &offset)
	getKey(data, &obj.DefaultPolicyProgram, &offset)
	getUint64(data, &obj.CreateWalletFee, &offset)

	var paused uint8
	getUint8(data, &paused, &offset)
	obj.Paused = paused != 0

	return nil
}

func (obj *ConfigAccount) String() string {
	return fmt.Sprintf(
		"ConfigAccount{bump=%d,admin=%s,default_policy_program=%s,create_wallet_fee=%d,paused=%v}",
		obj.Bump,
		base58.Encode(obj.Admin),
		base58.Encode(obj.DefaultPolicyProgram),
		obj.CreateWalletFee,
		obj.Paused,
	)
}
