// Package cpu probes runtime CPU capabilities once per process and exposes
// them as a read-only snapshot. It holds no cryptographic logic: sm3 and
// sm4 each read Features to pick a compress/block backend, cache the choice
// once, and never consult this package again on the hot path.
package cpu

import (
	"runtime"
	"sync"

	"github.com/klauspost/cpuid/v2"
	"github.com/templexxx/cpu"
)

// Features is a snapshot of the capabilities relevant to the dispatch
// tables in sm3 and sm4. The snapshot is populated lazily by the first Get
// and is safe to read concurrently thereafter; ForceDetect re-runs detection
// and overwrites it.
type Features struct {
	// x86_64
	HasSSE2       bool
	HasSSSE3      bool
	HasAESNI      bool
	HasAVX        bool
	HasAVX2       bool
	HasAVX512F    bool
	HasAVX512BW   bool
	HasGFNI       bool
	HasVAES       bool
	HasPCLMULQDQ  bool

	// aarch64
	HasNEON    bool
	HasNEONAES bool
	HasPMULL   bool
}

var (
	once     sync.Once
	detected Features
)

// Get returns the process-wide Features snapshot, detecting it on first
// call. Subsequent calls are a cheap read of an already-populated struct.
func Get() Features {
	once.Do(detect)
	return detected
}

// ForceDetect re-runs detection and overwrites the cached snapshot. It
// exists for tests that need to exercise a specific tier deterministically;
// production code should call Get.
func ForceDetect() Features {
	detect()
	return detected
}

func detect() {
	var f Features

	// templexxx/cpu gives us the baseline bits the teacher's SHA-256
	// wrapper (minio/sha256-simd) already depends on transitively.
	f.HasSSE2 = cpu.X86.HasSSE2
	f.HasSSSE3 = cpu.X86.HasSSSE3
	f.HasAESNI = cpu.X86.HasAES
	f.HasAVX = cpu.X86.HasAVX
	f.HasAVX2 = cpu.X86.HasAVX2
	f.HasNEON = runtime.GOARCH == "arm64" // NEON is mandatory on aarch64
	f.HasNEONAES = cpu.ARM.HasAES
	f.HasPMULL = cpu.ARM.HasPMULL

	// klauspost/cpuid/v2 carries the newer bits (GFNI, VAES, AVX-512
	// variants) that templexxx/cpu does not expose.
	info := cpuid.CPU
	f.HasAVX512F = info.Supports(cpuid.AVX512F)
	f.HasAVX512BW = info.Supports(cpuid.AVX512BW)
	f.HasGFNI = info.Supports(cpuid.GFNI)
	f.HasVAES = info.Supports(cpuid.VAES)
	f.HasPCLMULQDQ = info.Supports(cpuid.PCLMULQDQ)

	detected = f
}
