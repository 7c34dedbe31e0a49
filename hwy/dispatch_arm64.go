//go:build arm64

package hwy

import "golang.org/x/sys/cpu"

// init selects NEON width if present. The teacher's dispatch_arm64.go also
// probed for Apple M4's SME tier (64-byte scalable vectors); bitpack has
// no SME-widening workload, so that detection (and its hasSME dependency
// on a file outside the subset this package now carries) is dropped.
func init() {
	if cpu.ARM64.HasASIMD {
		currentLevel, currentWidth, currentName = DispatchNEON, 16, "neon"
		return
	}
	currentLevel, currentWidth, currentName = DispatchScalar, 8, "scalar"
}
