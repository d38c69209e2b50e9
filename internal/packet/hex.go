package packet

const hexDigits = "0123456789ABCDEF"

// DecodeHex packs hex digits into bytes, high nibble first. An odd trailing
// digit fills the high nibble of a final byte.
func DecodeHex(s string) ([]byte, error) {
	out := make([]byte, 0, len(s)/2+len(s)%2)
	var hi byte
	pending := false
	for i, c := range s {
		v, ok := hexValue(c)
		if !ok {
			return nil, InvalidDigitError{Digit: c, Offset: i}
		}
		if !pending {
			hi = v
			pending = true
			continue
		}
		out = append(out, hi<<4|v)
		pending = false
	}
	if pending {
		out = append(out, hi<<4)
	}
	return out, nil
}

// EncodeHex formats b as uppercase hex digits.
func EncodeHex(b []byte) string {
	out := make([]byte, 0, len(b)*2)
	for _, v := range b {
		out = append(out, hexDigits[v>>4], hexDigits[v&0x0f])
	}
	return string(out)
}

func hexValue(c rune) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return byte(c - '0'), true
	case c >= 'A' && c <= 'F':
		return byte(c-'A') + 10, true
	case c >= 'a' && c <= 'f':
		return byte(c-'a') + 10, true
	default:
		return 0, false
	}
}
