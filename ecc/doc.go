// Package ecc provides typed elliptic-curve gadgets for gnark circuits.
//
// The package separates the user-facing gadget types (Point,
// NonIdentityPoint, the scalar records and FixedPoint) from the set of
// circuit instructions they are built on. A chip implements the
// [Instructions] interface on top of [frontend.API] for a curve whose base
// field is the circuit field; the gadget types pair a chip handle with the
// in-circuit values and forward to it. This keeps the multiplication
// algorithms backend-agnostic.
//
// NonIdentityPoint carries a type-level guarantee that it never represents
// the identity. It is only produced by the fallible witnessing instruction
// and by operations whose result provably cannot be the identity, so the
// incomplete addition formula can require it from its operands.
//
// Fixed-base scalar multiplication consumes per-base precomputed public
// data described by the [FixedPoints] interface; see the fixedbase
// subpackage for the table construction.
package ecc
