// Package grumpkin implements the ecc.Instructions chip on the Grumpkin
// curve for circuits defined over the BN254 scalar field. Grumpkin and
// BN254 form a 2-cycle, so the curve's base field is the circuit field and
// all point arithmetic uses native field operations; the scalar field is
// wider than the circuit field.
//
// References:
// https://aztecprotocol.github.io/aztec-connect/primitives.html/
package grumpkin
