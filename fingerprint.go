package montgomery

import (
	"encoding/binary"
	"sync"

	sha256simd "github.com/minio/sha256-simd"
)

const fingerprintTag = "montgomery/modulus"

var (
	fingerprintTagHash [32]byte
	fingerprintOnce    sync.Once
)

// Fingerprint returns a tagged SHA-256 digest of the value of n:
// SHA256(SHA256(tag) || SHA256(tag) || big-endian bytes of n). Leading zero
// limbs and the limb width do not change the digest, so the same modulus
// has the same fingerprint on 32 and 64 bit platforms.
func Fingerprint(n []Limb) [32]byte {
	fingerprintOnce.Do(func() {
		fingerprintTagHash = sha256simd.Sum256([]byte(fingerprintTag))
	})

	h := sha256simd.New()
	h.Write(fingerprintTagHash[:])
	h.Write(fingerprintTagHash[:])

	n = trim(n)
	buf := make([]byte, len(n)*_S)
	for i, ni := range n {
		off := (len(n) - 1 - i) * _S
		if _S == 8 {
			binary.BigEndian.PutUint64(buf[off:], uint64(ni))
		} else {
			binary.BigEndian.PutUint32(buf[off:], uint32(ni))
		}
	}
	// Strip leading zero bytes of the top limb.
	i := 0
	for i < len(buf) && buf[i] == 0 {
		i++
	}
	h.Write(buf[i:])

	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}
