// Package sm3 implements the GM/T 0004-2012 SM3 cryptographic hash
// function as a standard library hash.Hash.
package sm3

// Digest is an SM3 hash.Hash. The zero value is not usable; construct with
// New or NewWithDefaultID.
type Digest struct {
	s   [8]uint32
	x   [BlockSize]byte
	nx  int
	len uint64
}

// New returns a new SM3 Digest with the standard initial chaining value.
func New() *Digest {
	d := &Digest{}
	d.Reset()
	return d
}

// NewWithDefaultID returns a Digest that has already absorbed the 146-byte
// SM2 Z_A prefix ENTL || "1234567812345678" || a || b || Gx || Gy for the
// default user identifier, per spec.md §3. Writing PKx || PKy next and
// summing yields Z_A for that public key.
func NewWithDefaultID() *Digest {
	d := &Digest{
		s:   defaultIDState,
		nx:  len(defaultIDBlock),
		len: 2*BlockSize + uint64(len(defaultIDBlock)),
	}
	copy(d.x[:], defaultIDBlock[:])
	return d
}

// Reset restores the zero-message state.
func (d *Digest) Reset() {
	d.s = iv
	d.x = [BlockSize]byte{}
	d.nx = 0
	d.len = 0
}

// Size returns the digest size in bytes, 32.
func (d *Digest) Size() int { return Size }

// BlockSize returns the compression function's block size, 64.
func (d *Digest) BlockSize() int { return BlockSize }

// Write implements io.Writer / hash.Hash.
func (d *Digest) Write(p []byte) (n int, err error) {
	n = len(p)
	d.len += uint64(n)

	if d.nx > 0 {
		copyLen := len(p)
		if room := BlockSize - d.nx; copyLen > room {
			copyLen = room
		}
		copy(d.x[d.nx:], p[:copyLen])
		d.nx += copyLen
		if d.nx == BlockSize {
			compressGenericOrDispatch(&d.s, d.x[:])
			d.nx = 0
		}
		p = p[copyLen:]
	}
	if len(p) >= BlockSize {
		tail := getCompress()(&d.s, p)
		p = tail
	}
	if len(p) > 0 {
		copy(d.x[:], p)
		d.nx = len(p)
	}
	return n, nil
}

// compressGenericOrDispatch exists only so Write's "finish a partial block"
// path and the dispatch path share one call shape.
func compressGenericOrDispatch(s *[8]uint32, block []byte) {
	getCompress()(s, block)
}

// Sum appends the current digest to b and returns the resulting slice,
// without mutating the receiver's state (implements hash.Hash.Sum).
func (d *Digest) Sum(b []byte) []byte {
	clone := *d
	var out [Size]byte
	clone.finalize(&out)
	return append(b, out[:]...)
}

func (d *Digest) finalize(out *[Size]byte) {
	finalizeState(d.s, d.x[:d.nx], d.len*8, getCompress(), out)
}

// Sum256 is a convenience one-shot hash, mirroring crypto/sha256.Sum256.
func Sum256(data []byte) [Size]byte {
	d := New()
	d.Write(data)
	var out [Size]byte
	d.finalize(&out)
	return out
}
