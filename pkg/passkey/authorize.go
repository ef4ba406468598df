package passkey

import (
	"github.com/pkg/errors"

	"github.com/lazor-kit/smartwallet-go/pkg/solana/lazorkit"
)

// Authorizer turns authorization messages into on-chain proofs using a local
// credential. One Authorizer maps to one registered authority table entry.
type Authorizer struct {
	Signer         Signer
	AuthorityIndex uint8
	RpId           string
	Origin         string

	signCount uint32
}

// Authorize runs the assertion ceremony over the message and encodes the
// result as the proof the program verifies. For odometer schemes the caller
// supplies the authority's current replay counter plus one, and a recent
// slot; both are nil for Ed25519 credentials.
func (a *Authorizer) Authorize(message lazorkit.Message, replayCounter *uint32, slot *uint64) (lazorkit.AuthorizationProof, error) {
	clientData, err := NewClientData(message.Marshal(), a.Origin).Marshal()
	if err != nil {
		return lazorkit.AuthorizationProof{}, errors.Wrap(err, "marshalling client data")
	}

	a.signCount++
	authenticatorData := NewAuthenticatorData(a.RpId, a.signCount).Marshal()

	scheme := a.Signer.Scheme()
	hash, err := lazorkit.BuildMessageHash(scheme, SigningInput(authenticatorData, clientData), replayCounter, slot)
	if err != nil {
		return lazorkit.AuthorizationProof{}, err
	}

	signature, err := a.Signer.Sign(hash)
	if err != nil {
		return lazorkit.AuthorizationProof{}, err
	}

	payload, err := lazorkit.EncodeAuthorityPayload(scheme, signature, replayCounter, slot)
	if err != nil {
		return lazorkit.AuthorizationProof{}, err
	}

	return lazorkit.AuthorizationProof{
		AuthorityIndex:    a.AuthorityIndex,
		Payload:           payload,
		AuthenticatorData: authenticatorData,
		ClientDataJson:    clientData,
	}, nil
}
