package xmltok

import "github.com/klauspost/cpuid/v2"

// Most arm64 cores carry ASIMD, but check the feature bit explicitly
// rather than assume it's present.
var canUseWideScan = cpuid.CPU.Has(cpuid.ASIMD)

func wideContentRun(data []byte) int {
	return swarFindAny3(data, '<', '&', '\r')
}

func wideAttrRun(data []byte, quote byte) int {
	return swarFindAny3(data, quote, '&', '\r')
}
