package lattice

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// lattice tag prefixed to every CID payload, so CIDs never collide across
// lattice families even if a future lattice shared this package's API.
const latticeTag = "fcc"

// CID computes the container's content identifier: SHA-256 over the
// lattice tag plus a canonical serialisation of Canonicalize(cells),
// formatted as "sha256:<64-hex>" per spec.md §6. CID is invariant under
// rotation and translation of cells, since Canonicalize already is.
func CID(cells []Cell) string {
	canon := Canonicalize(cells)
	return "sha256:" + hex.EncodeToString(hashCanonical(canon))
}

// SignatureOver computes a "sha256:<64-hex>" identifier from cells
// canonicalised under an arbitrary rotation group, rather than the full
// 24-rotation group CID always uses. The signature package uses this
// with a container's own symmetry group (spec.md §4.7) so that
// rotation-equivalent solutions under that container's symmetries share
// one signature.
func SignatureOver(cells []Cell, group []Rotation) string {
	canon := CanonicalizeOver(cells, group)
	return "sha256:" + hex.EncodeToString(hashCanonical(canon))
}

// hashCanonical hashes a canonical (already-normalized, already-sorted)
// cell list using a stable textual encoding, mirroring the reference
// implementation's "x:y:z,x:y:z,..." payload format.
func hashCanonical(canon []Cell) []byte {
	var b strings.Builder
	b.WriteString(latticeTag)
	b.WriteByte('|')
	for i, c := range canon {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(c.I))
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(c.J))
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(c.K))
	}
	sum := sha256.Sum256([]byte(b.String()))
	return sum[:]
}

// FormatSHA256 renders a raw 32-byte SHA-256 digest as "sha256:<hex>",
// the same shape CID and SignatureOver produce (neither calls it).
func FormatSHA256(sum [32]byte) string {
	return fmt.Sprintf("sha256:%s", hex.EncodeToString(sum[:]))
}
