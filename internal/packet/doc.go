// Package packet owns the BITS transmission codec.
//
// Ownership boundary:
// - hex text to byte buffer
// - bit cursor primitives
// - recursive packet decode/encode
// - packet evaluation
//
// Malformed bit streams are contract violations and panic. Only bad hex
// input is reported as an error.
package packet
