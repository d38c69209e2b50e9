package day16

import (
	"testing"

	"github.com/jayconrod/advent-of-code-2021/internal/packet"
	"github.com/jayconrod/advent-of-code-2021/internal/testutil/testlog"
	"github.com/stretchr/testify/require"
)

func TestPart1(t *testing.T) {
	testlog.Start(t)
	for _, tc := range []struct {
		input string
		want  uint64
	}{
		{input: "8A004A801A8002F478", want: 16},
		{input: "620080001611562C8802118E34", want: 12},
		{input: "C0015000016115A2E0802F182340", want: 23},
		{input: "A0016C880162017C3686B18A3D4780", want: 31},
		{input: "D2FE28\n", want: 6},
	} {
		got, err := Part1(tc.input)
		require.NoError(t, err, tc.input)
		require.Equal(t, tc.want, got, tc.input)
	}
}

func TestPart2(t *testing.T) {
	testlog.Start(t)
	for _, tc := range []struct {
		input string
		want  uint64
	}{
		{input: "C200B40A82", want: 3},
		{input: "04005AC33890", want: 54},
		{input: "880086C3E88112", want: 7},
		{input: "CE00C43D881120", want: 9},
		{input: "D8005AC2A8F0", want: 1},
		{input: "F600BC2D8F", want: 0},
		{input: "9C005AC2F8F0", want: 0},
		{input: "9C0141080250320F1802104A08", want: 1},
	} {
		got, err := Part2(tc.input)
		require.NoError(t, err, tc.input)
		require.Equal(t, tc.want, got, tc.input)
	}
}

func TestBadTransmission(t *testing.T) {
	testlog.Start(t)
	_, err := Part1("D2FEZ8")
	require.ErrorIs(t, err, packet.ErrInvalidDigit)
	_, err = Part2("D2FEZ8")
	require.ErrorIs(t, err, packet.ErrInvalidDigit)
	_, err = Part1("")
	require.ErrorIs(t, err, ErrNoPacket)
	_, err = Part2("0")
	require.ErrorIs(t, err, ErrNoPacket)
}

func TestPart2SecondPacketPanics(t *testing.T) {
	testlog.Start(t)
	two := packet.EncodeHex(append(
		packet.Encode(packet.NewLiteral(1, 5), packet.LengthBits),
		packet.Encode(packet.NewLiteral(2, 6), packet.LengthBits)...,
	))
	require.Panics(t, func() { _, _ = Part2(two) })
}
