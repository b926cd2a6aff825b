// Package cputier detects which SIMD tier of microkernel the convolution resampler and alpha
// engine should dispatch to, and lets callers override the detected tier.
package cputier

import "golang.org/x/sys/cpu"

// Tier names the microkernel family a pixel-format kernel implements. The zero value is Scalar,
// the mandatory, ultimate fallback available on every platform.
type Tier uint8

const (
	Scalar Tier = iota
	SSE41
	AVX2
	NEON
	WASMSIMD128
)

func (t Tier) String() string {
	switch t {
	case Scalar:
		return "scalar"
	case SSE41:
		return "sse4.1"
	case AVX2:
		return "avx2"
	case NEON:
		return "neon"
	case WASMSIMD128:
		return "wasm-simd128"
	default:
		return "unknown"
	}
}

// Detect probes the running CPU and returns the best tier it advertises. It never returns a tier
// the hardware doesn't support, unlike an override built with Force.
func Detect() Tier {
	if cpu.X86.HasAVX2 {
		return AVX2
	}
	if cpu.X86.HasSSE41 {
		return SSE41
	}
	if cpu.ARM64.HasASIMD {
		return NEON
	}
	return Scalar
}

// detected is evaluated once at package init and shared process-wide.
var detected = Detect()

// Best returns the process-wide detected tier.
func Best() Tier { return detected }

// Unsafe wraps a Tier that a caller has explicitly requested regardless of what the hardware
// advertises. Forcing a higher tier than the hardware provides is undefined behavior;
// constructing an Unsafe is itself the opt-in signal at the call site.
type Unsafe struct {
	Tier Tier
}

// Force builds an explicit override. The caller attests that the requested tier is either safe
// on the current hardware, or that they accept undefined behavior if it is not (e.g. forcing a
// lower tier for deterministic testing is always safe; forcing a higher one is not).
func Force(t Tier) Unsafe { return Unsafe{Tier: t} }

// Resolve returns the effective tier: the override if one was given, else the detected best.
func Resolve(override *Unsafe) Tier {
	if override != nil {
		return override.Tier
	}
	return Best()
}
