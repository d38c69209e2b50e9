package packet

const wordBits = 64

// BitReader is a MSB-first cursor over a byte buffer.
type BitReader struct {
	buf      []byte
	consumed int
}

func NewBitReader(buf []byte) *BitReader {
	return &BitReader{buf: buf}
}

// Read returns the next n bits as an unsigned integer.
func (r *BitReader) Read(n int) uint64 {
	if n < 0 || n > wordBits {
		violation("cannot read %d bits into a %d-bit word", n, wordBits)
	}
	if n > r.Remaining() {
		violation("read of %d bits past end of stream (%d remaining)", n, r.Remaining())
	}
	var v uint64
	for n > 0 {
		off := r.consumed % 8
		take := min(n, 8-off)
		shift := 8 - off - take
		mask := byte(1)<<take - 1
		v = v<<take | uint64(r.buf[r.consumed/8]>>shift&mask)
		n -= take
		r.consumed += take
	}
	return v
}

// Remaining returns the number of unread bits.
func (r *BitReader) Remaining() int {
	return len(r.buf)*8 - r.consumed
}

// Consumed returns the number of bits read so far.
func (r *BitReader) Consumed() int {
	return r.consumed
}

// BitWriter accumulates MSB-first bit fields into bytes. The final byte is
// zero padded.
type BitWriter struct {
	buf []byte
	n   int
}

// Write appends the low n bits of v.
func (w *BitWriter) Write(v uint64, n int) {
	if n < 0 || n > wordBits {
		violation("cannot write %d bits from a %d-bit word", n, wordBits)
	}
	for i := n - 1; i >= 0; i-- {
		if w.n%8 == 0 {
			w.buf = append(w.buf, 0)
		}
		if v>>i&1 == 1 {
			w.buf[w.n/8] |= 1 << (7 - w.n%8)
		}
		w.n++
	}
}

// Len returns the number of bits written.
func (w *BitWriter) Len() int {
	return w.n
}

func (w *BitWriter) Bytes() []byte {
	out := make([]byte, len(w.buf))
	copy(out, w.buf)
	return out
}
