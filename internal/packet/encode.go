package packet

// LengthMode selects how operator subpacket groups are delimited on encode.
type LengthMode uint8

const (
	LengthBits LengthMode = iota
	LengthCount
)

// Encode serializes p with every operator group delimited by mode.
func Encode(p Packet, mode LengthMode) []byte {
	var w BitWriter
	encodePacket(&w, p, mode)
	return w.Bytes()
}

func encodePacket(w *BitWriter, p Packet, mode LengthMode) {
	w.Write(uint64(p.Version), versionBits)
	switch body := p.Body.(type) {
	case Literal:
		w.Write(uint64(TypeLiteral), typeIDBits)
		encodeLiteral(w, body.Value)
	case Operator:
		w.Write(uint64(body.Op.TypeID()), typeIDBits)
		encodeGroup(w, body.Subpackets, mode)
	default:
		violation("packet has no body")
	}
}

func encodeLiteral(w *BitWriter, v uint64) {
	groups := 1
	for v>>(4*groups) != 0 && groups < wordBits/4 {
		groups++
	}
	for i := groups - 1; i >= 0; i-- {
		nibble := v >> (4 * i) & 0x0f
		if i > 0 {
			nibble |= 0x10
		}
		w.Write(nibble, groupBits)
	}
}

func encodeGroup(w *BitWriter, subpackets []Packet, mode LengthMode) {
	if mode == LengthCount {
		if len(subpackets) >= 1<<countBits {
			violation("%d subpackets exceed %d-bit count", len(subpackets), countBits)
		}
		w.Write(1, lengthTypeBits)
		w.Write(uint64(len(subpackets)), countBits)
		for _, sp := range subpackets {
			encodePacket(w, sp, mode)
		}
		return
	}

	var inner BitWriter
	for _, sp := range subpackets {
		encodePacket(&inner, sp, mode)
	}
	if inner.Len() >= 1<<totalLengthBits {
		violation("%d subpacket bits exceed %d-bit length", inner.Len(), totalLengthBits)
	}
	w.Write(0, lengthTypeBits)
	w.Write(uint64(inner.Len()), totalLengthBits)
	r := NewBitReader(inner.Bytes())
	for n := inner.Len(); n > 0; {
		take := min(n, wordBits)
		w.Write(r.Read(take), take)
		n -= take
	}
}
