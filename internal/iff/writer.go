// Package iff serializes the final IFF 8SVX container.
//
// This is the only place in the converter where byte order matters: every
// integer field is big-endian, and the layout below must match exactly for
// cross-platform byte-identity of the output. There is no compression and no
// checksum; the payload is embedded byte-for-byte.
package iff

import "encoding/binary"

// FormatTag identifies the container contents as 8-bit sampled voice.
const FormatTag = "8SVX"

// Name is the fixed tag written into the NAME chunk of every container.
const Name = "svxconv"

const (
	vhdrSize   = 20
	headerSize = 4 + 4 + 4 // FORM, size, format tag
	chunkHead  = 4 + 4     // chunk id + chunk size
)

// Serialize wraps a laid-out sample buffer and its nominal playback rate in
// the 8SVX container. All segments of a stacked payload share the one rate
// field; by convention it is the first segment's target rate.
func Serialize(rateHz int, payload []byte) []byte {
	nameLen := len(Name)
	if nameLen%2 != 0 {
		nameLen++ // IFF chunks are padded to even length
	}

	total := headerSize +
		chunkHead + vhdrSize +
		chunkHead + nameLen +
		chunkHead + len(payload)

	buf := make([]byte, total)
	pos := 0

	putTag := func(tag string) {
		copy(buf[pos:], tag)
		pos += 4
	}
	putU32 := func(v uint32) {
		binary.BigEndian.PutUint32(buf[pos:], v)
		pos += 4
	}
	putU16 := func(v uint16) {
		binary.BigEndian.PutUint16(buf[pos:], v)
		pos += 2
	}

	putTag("FORM")
	putU32(uint32(total - 8))
	putTag(FormatTag)

	putTag("VHDR")
	putU32(vhdrSize)
	putU32(0)
	putU32(0)
	putU32(0)
	putU32(uint32(rateHz))
	putU16(1)
	putU16(0)

	putTag("NAME")
	putU32(uint32(nameLen))
	copy(buf[pos:], Name) // zero padding is the buffer's default fill
	pos += nameLen

	putTag("BODY")
	putU32(uint32(len(payload)))
	copy(buf[pos:], payload)

	return buf
}
