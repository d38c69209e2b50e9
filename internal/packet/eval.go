package packet

import "math/bits"

// Eval computes the value of the tree rooted at p.
func (p Packet) Eval() uint64 {
	switch body := p.Body.(type) {
	case Literal:
		return body.Value
	case Operator:
		return body.eval()
	default:
		violation("packet has no body")
		return 0
	}
}

func (o Operator) eval() uint64 {
	if len(o.Subpackets) == 0 {
		violation("%s operator without subpackets", o.Op)
	}
	if o.Op.comparison() {
		if len(o.Subpackets) != 2 {
			violation("%s operator needs 2 subpackets, got %d", o.Op, len(o.Subpackets))
		}
		x, y := o.Subpackets[0].Eval(), o.Subpackets[1].Eval()
		var ok bool
		switch o.Op {
		case OpGreaterThan:
			ok = x > y
		case OpLessThan:
			ok = x < y
		default:
			ok = x == y
		}
		if ok {
			return 1
		}
		return 0
	}

	acc := o.Subpackets[0].Eval()
	for _, sp := range o.Subpackets[1:] {
		v := sp.Eval()
		switch o.Op {
		case OpSum:
			var carry uint64
			acc, carry = bits.Add64(acc, v, 0)
			if carry != 0 {
				violation("sum overflows %d bits", wordBits)
			}
		case OpProduct:
			var hi uint64
			hi, acc = bits.Mul64(acc, v)
			if hi != 0 {
				violation("product overflows %d bits", wordBits)
			}
		case OpMinimum:
			acc = min(acc, v)
		case OpMaximum:
			acc = max(acc, v)
		}
	}
	return acc
}
