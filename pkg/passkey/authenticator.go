package passkey

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/pkg/errors"
)

const (
	AuthenticatorDataSize = (32 + // rp id hash
		1 + // flags
		4) // sign count

	FlagUserPresent  = 0x01
	FlagUserVerified = 0x04
)

// AuthenticatorData is the fixed 37-byte header an authenticator prepends to
// the client data hash before signing. Extensions and attested credential
// data are not carried.
type AuthenticatorData struct {
	RpIdHash  [32]byte
	Flags     uint8
	SignCount uint32
}

func NewAuthenticatorData(rpId string, signCount uint32) AuthenticatorData {
	return AuthenticatorData{
		RpIdHash:  sha256.Sum256([]byte(rpId)),
		Flags:     FlagUserPresent | FlagUserVerified,
		SignCount: signCount,
	}
}

func (a AuthenticatorData) Marshal() []byte {
	data := make([]byte, AuthenticatorDataSize)
	copy(data, a.RpIdHash[:])
	data[32] = a.Flags
	binary.BigEndian.PutUint32(data[33:], a.SignCount)
	return data
}

func UnmarshalAuthenticatorData(data []byte) (AuthenticatorData, error) {
	if len(data) < AuthenticatorDataSize {
		return AuthenticatorData{}, errors.New("authenticator data too short")
	}

	var a AuthenticatorData
	copy(a.RpIdHash[:], data)
	a.Flags = data[32]
	a.SignCount = binary.BigEndian.Uint32(data[33:])
	return a, nil
}
