package packet

import "strings"

// Decoder reads packets from a bit stream. It owns its BitReader.
type Decoder struct {
	r *BitReader
}

func NewDecoder(r *BitReader) *Decoder {
	return &Decoder{r: r}
}

// Next returns the next top-level packet. It reports false when fewer bits
// than a header remain, or when the next header is all zeros with at most
// two bits left behind it (trailing hex padding).
func (d *Decoder) Next() (Packet, bool) {
	if d.r.Remaining() < headerBits {
		return Packet{}, false
	}
	version, typeID := d.header()
	if version == 0 && typeID == 0 && d.r.Remaining() <= 2 {
		return Packet{}, false
	}
	return d.body(version, typeID), true
}

func (d *Decoder) header() (uint8, uint8) {
	version := uint8(d.r.Read(versionBits))
	typeID := uint8(d.r.Read(typeIDBits))
	return version, typeID
}

func (d *Decoder) decode() Packet {
	version, typeID := d.header()
	return d.body(version, typeID)
}

func (d *Decoder) body(version, typeID uint8) Packet {
	if typeID == TypeLiteral {
		return Packet{Version: version, TypeID: typeID, Body: Literal{Value: d.literal()}}
	}
	op := opForType(typeID)
	var subpackets []Packet
	if d.r.Read(lengthTypeBits) == 0 {
		subpackets = d.lengthGroup()
	} else {
		subpackets = d.countGroup()
	}
	return Packet{Version: version, TypeID: typeID, Body: Operator{Op: op, Subpackets: subpackets}}
}

func (d *Decoder) literal() uint64 {
	var v uint64
	width := 0
	for {
		group := d.r.Read(groupBits)
		width += groupBits - 1
		if width > wordBits {
			violation("literal wider than %d bits", wordBits)
		}
		v = v<<(groupBits-1) | group&0x0f
		if group&0x10 == 0 {
			return v
		}
	}
}

func (d *Decoder) lengthGroup() []Packet {
	length := int(d.r.Read(totalLengthBits))
	end := d.r.Consumed() + length
	var out []Packet
	for d.r.Consumed() < end {
		out = append(out, d.decode())
	}
	if d.r.Consumed() != end {
		violation("subpacket group declared %d bits, consumed %d", length, d.r.Consumed()-(end-length))
	}
	return out
}

func (d *Decoder) countGroup() []Packet {
	count := int(d.r.Read(countBits))
	out := make([]Packet, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, d.decode())
	}
	return out
}

// DecodeAll drains every top-level packet from r.
func DecodeAll(r *BitReader) []Packet {
	d := NewDecoder(r)
	var out []Packet
	for {
		p, ok := d.Next()
		if !ok {
			return out
		}
		out = append(out, p)
	}
}

// ParseHex decodes the trimmed hex transmission s into its top-level packets.
func ParseHex(s string) ([]Packet, error) {
	buf, err := DecodeHex(strings.TrimSpace(s))
	if err != nil {
		return nil, err
	}
	return DecodeAll(NewBitReader(buf)), nil
}
