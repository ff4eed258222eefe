package gf2n

import "os"

// disableXmulEnv lets operators force the naive carry-less multiplier
// even on hardware that supports the intrinsic, mirroring spec.md's
// usexmul field-declaration override at the process level.
func disableXmulEnv() bool {
	v := os.Getenv("GF2N_DISABLE_XMUL")
	return v == "1" || v == "true"
}
