// Package layout arranges quantized sample payloads on 256-byte boundaries.
//
// ProTracker's sample-offset command (9xx) addresses a sample in 256-byte
// pages, so every segment in a multi-sample blob must start on a page
// boundary. The engine pads each segment up to the next boundary and records
// where each one landed; padding bytes are always 0x00, which plays as
// silence after quantization bias is removed by the hardware.
package layout

import "fmt"

const (
	// PageSize is the offset unit of the tracker's playback-offset command.
	PageSize = 256

	// MaxSegmentBytes is the largest raw segment length that fits the
	// 16-bit sample length bookkeeping of tracker modules. Longer segments
	// are passed through untouched but reported to the caller.
	MaxSegmentBytes = 65535

	// MaxOffsetReach is the highest byte address the page-offset mechanism
	// can actually select (page 0xFF), which is smaller still.
	MaxOffsetReach = 65280
)

// Align rounds n up to the next multiple of PageSize. A length that is
// already aligned is returned unchanged: Align(256) == 256, never 512.
func Align(n int) int {
	return (n + PageSize - 1) &^ (PageSize - 1)
}

// PageOffsetHex renders a segment start byte as the page offset used by the
// tracker: startByte >> 8 in uppercase hex, zero-padded to at least two
// digits. Large offsets simply grow wider.
func PageOffsetHex(startByte int) string {
	return fmt.Sprintf("%02X", startByte>>8)
}

// Single lays out exactly one segment. The buffer is the raw payload with no
// trailing padding; there is no following segment to align.
func Single(part []byte) ([]byte, []int) {
	buf := make([]byte, len(part))
	copy(buf, part)
	return buf, []int{0}
}

// Stacked concatenates parts back to back, each padded to the next page
// boundary, and returns the combined buffer plus each part's start offset.
// Order is preserved. The buffer is zero-initialized, so inter-segment
// padding needs no explicit writes.
func Stacked(parts [][]byte) ([]byte, []int) {
	total := 0
	for _, p := range parts {
		total += Align(len(p))
	}

	buf := make([]byte, total)
	offsets := make([]int, len(parts))
	pos := 0
	for i, p := range parts {
		offsets[i] = pos
		copy(buf[pos:], p)
		pos += Align(len(p))
	}
	return buf, offsets
}

// StackedEqual lays parts out in uniform slots sized to the largest aligned
// part, so consecutive segments sit a constant page increment apart. Returns
// the combined buffer, each part's start offset, and the slot size. Empty
// parts produce an empty buffer and slot 0.
func StackedEqual(parts [][]byte) ([]byte, []int, int) {
	slot := 0
	for _, p := range parts {
		if a := Align(len(p)); a > slot {
			slot = a
		}
	}

	buf := make([]byte, len(parts)*slot)
	offsets := make([]int, len(parts))
	for i, p := range parts {
		offsets[i] = i * slot
		copy(buf[offsets[i]:], p)
	}
	return buf, offsets, slot
}
