package lazorkit

import (
	"bytes"
	"fmt"
	"strings"
)

const (
	SmartWalletAccountHeaderSize = (8 + // discriminator
		1 + // bump
		8 + // wallet id
		1) // authority count

	// Trailing fixed fields after the dynamic authority table.
	SmartWalletAccountFooterSize = 8 // last nonce
)

var SmartWalletAccountDiscriminator = []byte{0x43, 0x3b, 0xdc, 0xb3, 0x29, 0x0a, 0x3c, 0xb1}

// SmartWalletAccount is the on-chain wallet state. The authority table is
// dynamically sized; the nonce trails it.
type SmartWalletAccount struct {
	Bump        uint8
	WalletId    uint64
	Authorities []Authority
	LastNonce   uint64
}

func GetSmartWalletAccountSize(authorityCount int) int {
	return SmartWalletAccountHeaderSize +
		authorityCount*AuthoritySize +
		SmartWalletAccountFooterSize
}

func (obj *SmartWalletAccount) Unmarshal(data []byte) error {
	if len(data) < SmartWalletAccountHeaderSize+SmartWalletAccountFooterSize {
		return ErrInvalidAccountData
	}

	var offset int

	var discriminator []byte
	getDiscriminator(data, &discriminator, &offset)
	if !bytes.Equal(discriminator, SmartWalletAccountDiscriminator) {
		return ErrInvalidAccountData
	}

	getUint8(data, &obj.Bump, &offset)
	getUint64(data, &obj.WalletId, &offset)

	var authorityCount uint8
	getUint8(data, &authorityCount, &offset)

	if len(data) < GetSmartWalletAccountSize(int(authorityCount)) {
		return ErrInvalidAccountData
	}

	obj.Authorities = make([]Authority, authorityCount)
	for i := 0; i < int(authorityCount); i++ {
		getAuthority(data, &obj.Authorities[i], &offset)
	}

	getUint64(data, &obj.LastNonce, &offset)

	return nil
}

// GetAuthority returns the registered authority at the given table index.
func (obj *SmartWalletAccount) GetAuthority(index uint8) (*Authority, bool) {
	if int(index) >= len(obj.Authorities) {
		return nil, false
	}
	return &obj.Authorities[index], true
}

// GetReplayCounter extracts the current odometer value for an authority, for
// schemes that carry one.
func (obj *SmartWalletAccount) GetReplayCounter(index uint8) (uint32, error) {
	authority, ok := obj.GetAuthority(index)
	if !ok {
		return 0, ErrInvalidAccountData
	}
	if !authority.Scheme.HasReplayCounter() {
		return 0, ErrUnsupportedScheme
	}
	return authority.ReplayCounter, nil
}

func (obj *SmartWalletAccount) String() string {
	authorities := make([]string, len(obj.Authorities))
	for i := range obj.Authorities {
		authorities[i] = obj.Authorities[i].String()
	}

	return fmt.Sprintf(
		"SmartWalletAccount{bump=%d,wallet_id=%d,authorities=[%s],last_nonce=%d}",
		obj.Bump,
		obj.WalletId,
		strings.Join(authorities, ","),
		obj.LastNonce,
	)
}
