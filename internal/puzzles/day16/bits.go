// Package day16 decodes BITS transmissions with the packet codec.
package day16

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/jayconrod/advent-of-code-2021/internal/packet"
	"github.com/jayconrod/advent-of-code-2021/internal/puzzle"
)

var ErrNoPacket = errors.New("day16: transmission holds no packet")

func Register(r *puzzle.Registry) error {
	if err := r.Register(puzzle.Puzzle{Day: 16, Part: 1, Title: "Packet Decoder", Solve: puzzle.Adapt(Part1)}); err != nil {
		return err
	}
	return r.Register(puzzle.Puzzle{Day: 16, Part: 2, Title: "Packet Decoder", Solve: puzzle.Adapt(Part2)})
}

// Part1 sums the version numbers of every packet in the transmission.
func Part1(input string) (uint64, error) {
	packets, err := packet.ParseHex(input)
	if err != nil {
		return 0, fmt.Errorf("decode transmission: %w", err)
	}
	if len(packets) == 0 {
		return 0, ErrNoPacket
	}
	var sum uint64
	for _, p := range packets {
		sum += p.VersionSum()
	}
	log.Debug().Int("packets", len(packets)).Uint64("version_sum", sum).Msg("transmission decoded")
	return sum, nil
}

// Part2 evaluates the single packet in the transmission. A second top-level
// packet is a malformed transmission and panics.
func Part2(input string) (uint64, error) {
	buf, err := packet.DecodeHex(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("decode transmission: %w", err)
	}
	d := packet.NewDecoder(packet.NewBitReader(buf))
	p, ok := d.Next()
	if !ok {
		return 0, ErrNoPacket
	}
	if extra, ok := d.Next(); ok {
		panic(fmt.Sprintf("day16: unexpected second top-level packet %s", extra))
	}
	log.Debug().Stringer("packet", p).Msg("transmission decoded")
	return p.Eval(), nil
}
