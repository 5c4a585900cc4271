// Package diag carries the handful of diagnostics schema compilation can
// raise (delimiter/pattern overlap warnings, CPU capability reporting)
// through github.com/projectdiscovery/gologger's global singleton, the
// way projectdiscovery-alterx's internal/runner does. It is never
// consulted on the token-emission hot path: only schema.New calls into
// it, once, at compile time.
package diag

import (
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"

	"github.com/logsurgeon/logsurgeon-go/internal/simd"
)

// SetVerbose raises or lowers gologger's global level. Schema
// compilation defaults to silent; callers opt into diagnostics with
// schema.WithVerboseDiagnostics.
func SetVerbose(verbose bool) {
	if verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
		return
	}
	gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
}

// Warn reports a non-fatal schema compilation concern, such as a
// variable pattern whose language overlaps a configured delimiter byte.
func Warn(format string, args ...any) {
	gologger.Warning().Msgf(format, args...)
}

// Info reports a purely informational compile-time event.
func Info(format string, args ...any) {
	gologger.Info().Msgf(format, args...)
}

// ReportCapabilities logs the CPU features internal/simd detected on
// the running machine, so a caller profiling segment-scan throughput
// can see whether the hardware offers more than the portable SWAR loop
// already exploits.
func ReportCapabilities(caps simd.Capabilities) {
	Info("cpu capabilities: sse2=%v avx2=%v", caps.HasSSE2, caps.HasAVX2)
}
