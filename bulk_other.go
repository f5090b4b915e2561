//go:build !amd64 && !arm64

package xmltok

// No accelerated path is claimed for architectures outside amd64 and
// arm64; the generic scan in bulk.go carries the whole load here.
var canUseWideScan = false

func wideContentRun(data []byte) int { return genericContentRun(data) }
func wideAttrRun(data []byte, quote byte) int { return genericAttrRun(data, quote) }
