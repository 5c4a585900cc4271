//go:build !amd64

package simd

// Capabilities summarizes the CPU features that would gate a true SIMD
// dispatch. Non-amd64 builds report no accelerated features; the
// scanning path is identical to amd64's regardless, since this package
// never dispatches to assembly.
type Capabilities struct {
	HasSSE2 bool
	HasAVX2 bool
}

// DetectCapabilities returns the zero Capabilities on non-amd64
// platforms, where golang.org/x/sys/cpu exposes no x86 feature flags.
func DetectCapabilities() Capabilities {
	return Capabilities{}
}
