package lazorkit

import (
	"fmt"

	"github.com/mr-tron/base58"
)

type SignatureScheme uint8

const (
	SignatureSchemeEd25519 SignatureScheme = iota
	SignatureSchemeSecp256k1
	SignatureSchemeSecp256r1
	SignatureSchemeEd25519Session
	SignatureSchemeSecp256k1Session
	SignatureSchemeSecp256r1Session
)

// HasReplayCounter reports whether the scheme requires odometer-based replay
// protection. Ed25519 credentials rely solely on the nonce carried inside the
// signed message; the secp schemes additionally bind a per-authority counter
// and a ledger slot because the signing device cannot guarantee freshness.
func (s SignatureScheme) HasReplayCounter() bool {
	switch s {
	case SignatureSchemeSecp256k1, SignatureSchemeSecp256k1Session,
		SignatureSchemeSecp256r1, SignatureSchemeSecp256r1Session:
		return true
	}
	return false
}

func (s SignatureScheme) String() string {
	switch s {
	case SignatureSchemeEd25519:
		return "ed25519"
	case SignatureSchemeSecp256k1:
		return "secp256k1"
	case SignatureSchemeSecp256r1:
		return "secp256r1"
	case SignatureSchemeEd25519Session:
		return "ed25519_session"
	case SignatureSchemeSecp256k1Session:
		return "secp256k1_session"
	case SignatureSchemeSecp256r1Session:
		return "secp256r1_session"
	}
	return "unknown"
}

func putSignatureScheme(dst []byte, v SignatureScheme, offset *int) {
	dst[*offset] = uint8(v)
	*offset += 1
}
func getSignatureScheme(src []byte, dst *SignatureScheme, offset *int) {
	*dst = SignatureScheme(src[*offset])
	*offset += 1
}

type RolePermission uint8

const (
	RolePermissionUnknown RolePermission = iota
	RolePermissionAdmin
	RolePermissionExecute
	RolePermissionSession
)

func (r RolePermission) String() string {
	switch r {
	case RolePermissionAdmin:
		return "admin"
	case RolePermissionExecute:
		return "execute"
	case RolePermissionSession:
		return "session"
	}
	return "unknown"
}

func getRolePermission(src []byte, dst *RolePermission, offset *int) {
	*dst = RolePermission(src[*offset])
	*offset += 1
}

const (
	// PublicMaterialSize fits a compressed secp point; Ed25519 keys occupy
	// the first 32 bytes with the final byte zeroed. Fixed width keeps the
	// authority table scannable with offset arithmetic.
	PublicMaterialSize = 33

	AuthoritySize = (1 + // scheme
		PublicMaterialSize + // public material
		1 + // role
		4) // replay counter
)

// Authority is a registered credential permitted to authorize wallet actions.
type Authority struct {
	Scheme         SignatureScheme
	PublicMaterial [PublicMaterialSize]byte
	Role           RolePermission
	ReplayCounter  uint32
}

func getAuthority(src []byte, dst *Authority, offset *int) {
	getSignatureScheme(src, &dst.Scheme, offset)
	copy(dst.PublicMaterial[:], src[*offset:])
	*offset += PublicMaterialSize
	getRolePermission(src, &dst.Role, offset)
	getUint32(src, &dst.ReplayCounter, offset)
}

func (obj *Authority) String() string {
	return fmt.Sprintf(
		"Authority{scheme=%s,public_material=%s,role=%s,replay_counter=%d}",
		obj.Scheme,
		base58.Encode(obj.PublicMaterial[:]),
		obj.Role,
		obj.ReplayCounter,
	)
}
