//go:build arm64 && !purego

package gf2n

// hasHardwareXmul is forced false on arm64: xmul64Hardware below has no
// real VPMULL/VPMULL2 implementation behind it yet (only xmul_amd64.s
// exists in this tree), and HasXmul is specified (spec.md §4.1) as a
// flag consumers can trust to reflect real hardware capability — it
// must not report true for an intrinsic that silently falls back to
// software, since callers pick Barret specifically on the strength of
// that flag.
//
// TODO: wire cpu.ARM64.HasPMULL plus a real VPMULL/VPMULL2-based
// xmul_arm64.s, then flip this back to reporting actual capability.
var hasHardwareXmul = false

func xmul64Hardware(a, b uint64) (hi, lo uint64) {
	return xmul64Naive(a, b)
}
