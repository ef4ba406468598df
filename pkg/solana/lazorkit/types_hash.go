package lazorkit

import (
	"github.com/mr-tron/base58"
)

const HashSize = 32

type Hash [HashSize]byte

func putHash(dst []byte, v Hash, offset *int) {
	copy(dst[*offset:], v[:])
	*offset += HashSize
}
func getHash(src []byte, dst *Hash, offset *int) {
	copy(dst[:], src[*offset:])
	*offset += HashSize
}

func (h Hash) String() string {
	return base58.Encode(h[:])
}
