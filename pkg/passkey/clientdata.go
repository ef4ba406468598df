// Package passkey builds WebAuthn-style assertion envelopes around smart
// wallet authorization messages and signs them with locally-held keys. It is
// primarily a test and tooling aid: production credentials live in platform
// authenticators, but the envelope and payload formats are identical.
package passkey

import (
	"encoding/base64"
	"encoding/json"

	"github.com/pkg/errors"
)

const clientDataType = "webauthn.get"

// ClientData is the collected client data an authenticator covers with its
// signature. The challenge carries the serialized authorization message, so
// a verifier can recover and check it from the assertion alone.
type ClientData struct {
	Type        string `json:"type"`
	Challenge   string `json:"challenge"`
	Origin      string `json:"origin"`
	CrossOrigin bool   `json:"crossOrigin"`
}

func NewClientData(message []byte, origin string) ClientData {
	return ClientData{
		Type:        clientDataType,
		Challenge:   base64.RawURLEncoding.EncodeToString(message),
		Origin:      origin,
		CrossOrigin: false,
	}
}

func (c ClientData) Marshal() ([]byte, error) {
	return json.Marshal(c)
}

// GetChallenge decodes the embedded authorization message after validating
// the assertion type.
func (c ClientData) GetChallenge() ([]byte, error) {
	if c.Type != clientDataType {
		return nil, errors.Errorf("unexpected client data type %q", c.Type)
	}
	return base64.RawURLEncoding.DecodeString(c.Challenge)
}

func UnmarshalClientData(data []byte) (ClientData, error) {
	var c ClientData
	if err := json.Unmarshal(data, &c); err != nil {
		return ClientData{}, errors.Wrap(err, "invalid client data json")
	}
	return c, nil
}
