package lazorkit

// AuthorizationProof carries one credential ceremony: which registered
// authority signed, the scheme-specific authority payload, and the
// authentication envelope the challenge was embedded in. For raw-key
// credentials the envelope fields are empty and the program verifies the
// signature over the message hash directly.
type AuthorizationProof struct {
	AuthorityIndex    uint8
	Payload           []byte
	AuthenticatorData []byte
	ClientDataJson    []byte
}

func getAuthorizationProofSize(v *AuthorizationProof) int {
	return 1 +
		4 + len(v.Payload) +
		4 + len(v.AuthenticatorData) +
		4 + len(v.ClientDataJson)
}

func putAuthorizationProof(dst []byte, v *AuthorizationProof, offset *int) {
	putUint8(dst, v.AuthorityIndex, offset)
	putBytes(dst, v.Payload, offset)
	putBytes(dst, v.AuthenticatorData, offset)
	putBytes(dst, v.ClientDataJson, offset)
}
