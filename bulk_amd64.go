package xmltok

import "github.com/klauspost/cpuid/v2"

// canUseWideScan gates the word-at-a-time scan on SSE2 and BMI1, the
// feature bits a hand-written SSE2 kernel would also require, even
// though this scan is portable Go rather than assembly.
var canUseWideScan = cpuid.CPU.Has(cpuid.SSE2) && cpuid.CPU.Has(cpuid.BMI1)

func wideContentRun(data []byte) int {
	return swarFindAny3(data, '<', '&', '\r')
}

func wideAttrRun(data []byte, quote byte) int {
	return swarFindAny3(data, quote, '&', '\r')
}
