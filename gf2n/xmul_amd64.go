//go:build amd64 && !purego

package gf2n

import "golang.org/x/sys/cpu"

// hasHardwareXmul reports whether this amd64 host exposes PCLMULQDQ.
var hasHardwareXmul = cpu.X86.HasPCLMULQDQ

// xmul64Hardware is implemented in xmul_amd64.s: it moves both 64-bit
// operands into the low lane of an XMM register and issues a single
// PCLMULQDQ, which on amd64 already yields the full 128-bit product
// directly (spec.md §4.1: "When n=64 the intrinsic yields a 128-bit
// product directly").
func xmul64Hardware(a, b uint64) (hi, lo uint64)
