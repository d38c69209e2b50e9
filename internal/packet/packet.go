package packet

import (
	"fmt"
	"strings"
)

const (
	headerBits      = 6
	versionBits     = 3
	typeIDBits      = 3
	groupBits       = 5
	lengthTypeBits  = 1
	totalLengthBits = 15
	countBits       = 11

	// TypeLiteral is the only type id that does not carry subpackets.
	TypeLiteral uint8 = 4
)

// Op is an operator packet kind.
type Op uint8

const (
	OpSum Op = iota
	OpProduct
	OpMinimum
	OpMaximum
	OpGreaterThan
	OpLessThan
	OpEqualTo
)

var opNames = [...]string{"sum", "product", "min", "max", "gt", "lt", "eq"}

func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return fmt.Sprintf("op(%d)", uint8(o))
}

// TypeID returns the wire type id for o.
func (o Op) TypeID() uint8 {
	switch o {
	case OpSum:
		return 0
	case OpProduct:
		return 1
	case OpMinimum:
		return 2
	case OpMaximum:
		return 3
	case OpGreaterThan:
		return 5
	case OpLessThan:
		return 6
	default:
		return 7
	}
}

func opForType(typeID uint8) Op {
	switch typeID {
	case 0:
		return OpSum
	case 1:
		return OpProduct
	case 2:
		return OpMinimum
	case 3:
		return OpMaximum
	case 5:
		return OpGreaterThan
	case 6:
		return OpLessThan
	default:
		return OpEqualTo
	}
}

func (o Op) comparison() bool {
	return o == OpGreaterThan || o == OpLessThan || o == OpEqualTo
}

// Packet is one decoded unit of a transmission.
type Packet struct {
	Version uint8
	TypeID  uint8
	Body    Body
}

// Body is either Literal or Operator.
type Body interface {
	isBody()
}

// Literal carries a single value assembled from 4-bit groups.
type Literal struct {
	Value uint64
}

// Operator applies Op to its subpackets in order.
type Operator struct {
	Op         Op
	Subpackets []Packet
}

func (Literal) isBody()  {}
func (Operator) isBody() {}

// NewLiteral builds a literal packet.
func NewLiteral(version uint8, value uint64) Packet {
	return Packet{Version: version, TypeID: TypeLiteral, Body: Literal{Value: value}}
}

// NewOperator builds an operator packet.
func NewOperator(version uint8, op Op, subpackets ...Packet) Packet {
	return Packet{Version: version, TypeID: op.TypeID(), Body: Operator{Op: op, Subpackets: subpackets}}
}

// VersionSum returns the sum of every version field in the tree rooted at p.
func (p Packet) VersionSum() uint64 {
	sum := uint64(p.Version)
	if op, ok := p.Body.(Operator); ok {
		for _, sp := range op.Subpackets {
			sum += sp.VersionSum()
		}
	}
	return sum
}

// String renders p as an s-expression, e.g. "(sum 1 2)".
func (p Packet) String() string {
	var b strings.Builder
	p.format(&b)
	return b.String()
}

func (p Packet) format(b *strings.Builder) {
	switch body := p.Body.(type) {
	case Literal:
		fmt.Fprintf(b, "%d", body.Value)
	case Operator:
		b.WriteByte('(')
		b.WriteString(body.Op.String())
		for _, sp := range body.Subpackets {
			b.WriteByte(' ')
			sp.format(b)
		}
		b.WriteByte(')')
	default:
		b.WriteString("<nil>")
	}
}
