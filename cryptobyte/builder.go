package cryptobyte

// Builder builds length-prefixed messages, including DER-encoded ASN.1
// structures, by appending to an internal buffer. A child builder passed to
// a BuilderContinuation writes into the same backing buffer; flushing the
// child backpatches the parent's length prefix. Ported from builder.rs,
// itself explicitly modeled on golang.org/x/crypto/cryptobyte.Builder.
type Builder struct {
	err           error
	result        []byte
	fixedSize     bool
	offset        int
	pendingLenLen int
	pendingIsASN1 bool
	child         *Builder
}

// BuilderContinuation builds the body of a length-prefixed value into b.
type BuilderContinuation func(b *Builder)

// NewBuilder returns a Builder that appends to out (out may be non-empty;
// new output is appended after its current contents).
func NewBuilder(out []byte) *Builder {
	return &Builder{result: out}
}

// NewFixedBuilder returns a Builder that writes into buf without ever
// reallocating; exceeding buf's capacity sets ErrFixedSizeBufferOverflow.
func NewFixedBuilder(buf []byte) *Builder {
	return &Builder{result: buf[:0], fixedSize: true}
}

func (b *Builder) setError(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Bytes returns the Builder's output and any error encountered while
// building it.
func (b *Builder) Bytes() ([]byte, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.result, nil
}

// BytesOrPanic returns the Builder's output, panicking if an error was
// recorded during construction.
func (b *Builder) BytesOrPanic() []byte {
	out, err := b.Bytes()
	if err != nil {
		panic(err)
	}
	return out
}

// AddUint8 appends a single byte.
func (b *Builder) AddUint8(v uint8) { b.AddBytes([]byte{v}) }

// AddUint16 appends a big-endian uint16.
func (b *Builder) AddUint16(v uint16) {
	b.AddBytes([]byte{byte(v >> 8), byte(v)})
}

// AddUint24 appends a big-endian 24-bit value.
func (b *Builder) AddUint24(v uint32) {
	b.AddBytes([]byte{byte(v >> 16), byte(v >> 8), byte(v)})
}

// AddUint32 appends a big-endian uint32.
func (b *Builder) AddUint32(v uint32) {
	b.AddBytes([]byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)})
}

// AddUint64 appends a big-endian uint64.
func (b *Builder) AddUint64(v uint64) {
	b.AddBytes([]byte{
		byte(v >> 56), byte(v >> 48), byte(v >> 40), byte(v >> 32),
		byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v),
	})
}

// AddBytes appends raw bytes.
func (b *Builder) AddBytes(v []byte) {
	if b.err != nil {
		return
	}
	if len(b.result)+len(v) < len(v) {
		b.setError(ErrLengthOverflow)
		return
	}
	if b.fixedSize && len(b.result)+len(v) > cap(b.result) {
		b.setError(ErrFixedSizeBufferOverflow)
		return
	}
	b.result = append(b.result, v...)
}

// addLengthPrefixed reserves lenLen bytes, runs f against a child builder
// sharing the same backing array, then backpatches the reserved bytes with
// the child's length once f returns.
func (b *Builder) addLengthPrefixed(lenLen int, isASN1 bool, f BuilderContinuation) {
	if b.err != nil {
		return
	}
	offset := len(b.result)
	b.AddBytes(make([]byte, lenLen))

	child := &Builder{
		result:        b.result,
		fixedSize:     b.fixedSize,
		offset:        offset,
		pendingLenLen: lenLen,
		pendingIsASN1: isASN1,
	}
	f(child)
	child.flush()

	if child.err != nil {
		b.setError(child.err)
		return
	}
	b.result = child.result
}

func (b *Builder) flush() {
	if b.err != nil {
		return
	}
	length := len(b.result) - b.pendingLenLen - b.offset
	if length < 0 {
		panic("cryptobyte: internal error")
	}

	if b.pendingIsASN1 {
		// ASN.1 lengths are variable width: one header byte (already
		// reserved as pendingLenLen==1), possibly followed by 1-4
		// extra length bytes spliced in here.
		if b.pendingLenLen != 1 {
			panic("cryptobyte: internal error")
		}

		var lenLen int
		var lenByte byte
		switch {
		case length > 0xfffffffe:
			b.setError(ErrASN1PendingChildTooLong)
			return
		case length > 0xffffff:
			lenLen, lenByte = 5, 0x80|4
		case length > 0xffff:
			lenLen, lenByte = 4, 0x80|3
		case length > 0xff:
			lenLen, lenByte = 3, 0x80|2
		case length > 0x7f:
			lenLen, lenByte = 2, 0x80|1
		default:
			lenLen, lenByte = 1, byte(length)
			length = 0
		}

		b.result[b.offset] = lenByte
		b.offset++

		extraBytes := lenLen - 1
		if extraBytes > 0 {
			if b.fixedSize && len(b.result)+extraBytes > cap(b.result) {
				b.setError(ErrFixedSizeBufferOverflow)
				return
			}
			b.result = append(b.result, make([]byte, extraBytes)...)
			copy(b.result[b.offset+extraBytes:], b.result[b.offset:len(b.result)-extraBytes])
			for i := 0; i < extraBytes; i++ {
				b.result[b.offset+i] = 0
			}
		}
		b.pendingLenLen = extraBytes
	}

	l := length
	for i := b.pendingLenLen - 1; i >= 0; i-- {
		b.result[b.offset+i] = byte(l)
		l >>= 8
	}
	if l != 0 {
		b.setError(ErrFixedSizeBufferOverflow)
	}
}

// AddUint8LengthPrefixed appends an 8-bit-length-prefixed value built by f.
func (b *Builder) AddUint8LengthPrefixed(f BuilderContinuation) { b.addLengthPrefixed(1, false, f) }

// AddUint16LengthPrefixed appends a 16-bit-length-prefixed value built by f.
func (b *Builder) AddUint16LengthPrefixed(f BuilderContinuation) { b.addLengthPrefixed(2, false, f) }

// AddUint24LengthPrefixed appends a 24-bit-length-prefixed value built by f.
func (b *Builder) AddUint24LengthPrefixed(f BuilderContinuation) { b.addLengthPrefixed(3, false, f) }

// AddUint32LengthPrefixed appends a 32-bit-length-prefixed value built by f.
func (b *Builder) AddUint32LengthPrefixed(f BuilderContinuation) { b.addLengthPrefixed(4, false, f) }

// AddASN1 appends an ASN.1 element with the given low-tag-number tag,
// DER-length-prefixing whatever f writes into the child builder.
func (b *Builder) AddASN1(tag Tag, f BuilderContinuation) {
	if b.err != nil {
		return
	}
	if tag.highTag() {
		b.setError(ErrASN1HighTag)
		return
	}
	b.AddUint8(uint8(tag))
	b.addLengthPrefixed(1, true, f)
}

// AddASN1Sequence appends a SEQUENCE built by f.
func (b *Builder) AddASN1Sequence(f BuilderContinuation) { b.AddASN1(TagSequence, f) }
