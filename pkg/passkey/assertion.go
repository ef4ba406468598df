package passkey

import (
	"crypto/sha256"
)

// Assertion is a completed authentication ceremony: the envelope parts plus
// the signature over them.
type Assertion struct {
	AuthenticatorData []byte
	ClientDataJson    []byte
	Signature         []byte
}

// SigningInput is the byte string the credential actually signs:
// authenticatorData || sha256(clientDataJSON). The authorization message is
// reachable only through the client data challenge, which the client data
// hash commits to.
func SigningInput(authenticatorData, clientDataJson []byte) []byte {
	clientDataHash := sha256.Sum256(clientDataJson)

	input := make([]byte, len(authenticatorData)+sha256.Size)
	copy(input, authenticatorData)
	copy(input[len(authenticatorData):], clientDataHash[:])
	return input
}
