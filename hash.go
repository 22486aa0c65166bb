package p192

import (
	"crypto/hmac"
	"hash"
	"sync"

	sha256simd "github.com/minio/sha256-simd"

	"p192.mleku.dev/nat"
)

// HashToFieldTag is the default domain separation tag for HashToField.
const HashToFieldTag = "P192/hash-to-field"

// Precomputed SHA256(tag) prefix for the default tag
var (
	hashToFieldTagHash [32]byte
	taggedHashInitOnce sync.Once
)

func initTaggedHashPrefixes() {
	hashToFieldTagHash = sha256simd.Sum256([]byte(HashToFieldTag))
}

// getTaggedHashPrefix returns SHA256(tag), from the cache for the default tag
func getTaggedHashPrefix(tag []byte) [32]byte {
	taggedHashInitOnce.Do(initTaggedHashPrefixes)

	if string(tag) == HashToFieldTag {
		return hashToFieldTagHash
	}
	return sha256simd.Sum256(tag)
}

// SHA256 represents a SHA-256 hash context
type SHA256 struct {
	hasher hash.Hash
}

// NewSHA256 creates a new SHA-256 hash context
func NewSHA256() *SHA256 {
	return &SHA256{hasher: sha256simd.New()}
}

// Write writes data to the hash
func (h *SHA256) Write(data []byte) {
	h.hasher.Write(data)
}

// Finalize finalizes the hash and writes the result to out32 (must be 32 bytes)
func (h *SHA256) Finalize(out32 []byte) {
	if len(out32) != 32 {
		panic("output buffer must be 32 bytes")
	}
	copy(out32, h.hasher.Sum(nil))
}

// Clear resets the hash context
func (h *SHA256) Clear() {
	h.hasher.Reset()
}

// SHA256Simple writes SHA256(data) to out32
func SHA256Simple(out32 []byte, data []byte) {
	h := NewSHA256()
	h.Write(data)
	h.Finalize(out32)
}

// HMACSHA256 represents an HMAC-SHA256 context
type HMACSHA256 struct {
	mac hash.Hash
}

// NewHMACSHA256 creates a new HMAC-SHA256 context with the given key
func NewHMACSHA256(key []byte) *HMACSHA256 {
	return &HMACSHA256{mac: hmac.New(sha256simd.New, key)}
}

// Write writes data to the inner hash
func (h *HMACSHA256) Write(data []byte) {
	h.mac.Write(data)
}

// Finalize finalizes the HMAC and writes the result to out32 (must be 32 bytes)
func (h *HMACSHA256) Finalize(out32 []byte) {
	if len(out32) != 32 {
		panic("output buffer must be 32 bytes")
	}
	copy(out32, h.mac.Sum(nil))
}

// hmacSHA256 returns HMAC_key(parts...)
func hmacSHA256(key []byte, out32 []byte, parts ...[]byte) {
	h := NewHMACSHA256(key)
	for _, p := range parts {
		h.Write(p)
	}
	h.Finalize(out32)
}

// ElementGenerator is a deterministic source of field elements. It runs the
// HMAC-SHA256 DRBG of RFC 6979 section 3.2 keyed by a seed, and turns its
// output into canonical elements by rejection sampling.
type ElementGenerator struct {
	v     [32]byte
	k     [32]byte
	retry bool
}

// NewElementGenerator initializes a generator from seed
func NewElementGenerator(seed []byte) *ElementGenerator {
	g := &ElementGenerator{}

	// RFC6979 3.2.b and 3.2.c
	for i := range g.v {
		g.v[i] = 0x01
	}

	// RFC6979 3.2.d: K = HMAC_K(V || 0x00 || seed), V = HMAC_K(V)
	hmacSHA256(g.k[:], g.k[:], g.v[:], []byte{0x00}, seed)
	hmacSHA256(g.k[:], g.v[:], g.v[:])

	// RFC6979 3.2.f: K = HMAC_K(V || 0x01 || seed), V = HMAC_K(V)
	hmacSHA256(g.k[:], g.k[:], g.v[:], []byte{0x01}, seed)
	hmacSHA256(g.k[:], g.v[:], g.v[:])

	return g
}

// Generate fills out with generator output
func (g *ElementGenerator) Generate(out []byte) {
	// RFC6979 3.2.h: update K and V between requests
	if g.retry {
		hmacSHA256(g.k[:], g.k[:], g.v[:], []byte{0x00})
		hmacSHA256(g.k[:], g.v[:], g.v[:])
	}

	for len(out) > 0 {
		hmacSHA256(g.k[:], g.v[:], g.v[:])
		n := copy(out, g.v[:])
		out = out[n:]
	}

	g.retry = true
}

// Next sets r to the next element. 24-byte candidates at or above the prime
// are rejected, which happens with probability below 2^-127.
func (g *ElementGenerator) Next(r *FieldElement) {
	var b [nat.Bytes]byte
	for {
		g.Generate(b[:])
		overflow, _ := r.SetBytes(b[:])
		if !overflow {
			return
		}
	}
}

// NextExtended sets rr to the next 384-bit value. Every value is accepted.
func (g *ElementGenerator) NextExtended(rr *ExtendedElement) {
	var b [nat.BytesExt]byte
	g.Generate(b[:])
	*rr, _ = nat.SetBytesExt(b[:])
}

// Clear wipes the generator state
func (g *ElementGenerator) Clear() {
	*g = ElementGenerator{}
}

// TaggedHash computes SHA256(SHA256(tag) || SHA256(tag) || data)
func TaggedHash(tag []byte, data []byte) [32]byte {
	var result [32]byte

	tagHash := getTaggedHashPrefix(tag)

	h := NewSHA256()
	h.Write(tagHash[:])
	h.Write(tagHash[:])
	h.Write(data)
	h.Finalize(result[:])

	return result
}

// HashToField maps msg to a field element under the domain separation tag.
//
// The message is expanded to 48 bytes as
// TaggedHash(tag, 0x00 || msg) || TaggedHash(tag, 0x01 || msg)[:16], read as
// a big-endian 384-bit integer and reduced. Reducing 192 bits more than the
// field size makes the bias of the result negligible.
func HashToField(tag, msg []byte) *FieldElement {
	buf := make([]byte, 1+len(msg))
	copy(buf[1:], msg)

	var wide [nat.BytesExt]byte
	buf[0] = 0x00
	h0 := TaggedHash(tag, buf)
	buf[0] = 0x01
	h1 := TaggedHash(tag, buf)
	copy(wide[:32], h0[:])
	copy(wide[32:], h1[:16])

	var xx ExtendedElement
	xx, _ = nat.SetBytesExt(wide[:])

	var r FieldElement
	r.Reduce(&xx)
	return &r
}
