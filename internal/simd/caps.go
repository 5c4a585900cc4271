//go:build amd64

package simd

import "golang.org/x/sys/cpu"

// Capabilities summarizes the CPU features that would gate a true SIMD
// dispatch. coregx uses this information to branch into hand-written
// AVX2 assembly; this package has no assembly path, but schema
// compilation still reports these flags through internal/diag so a
// caller profiling throughput can see whether the hardware could, in
// principle, do better than the portable SWAR loop in memchr.go.
type Capabilities struct {
	HasSSE2 bool
	HasAVX2 bool
}

// DetectCapabilities inspects golang.org/x/sys/cpu's feature flags for
// the running machine.
func DetectCapabilities() Capabilities {
	return Capabilities{
		HasSSE2: cpu.X86.HasSSE2,
		HasAVX2: cpu.X86.HasAVX2,
	}
}
