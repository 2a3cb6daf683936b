package iff

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerialize_Layout(t *testing.T) {
	payload := []byte{0x80, 0x81, 0x7F, 0x00}
	out := Serialize(8287, payload)

	nameLen := len(Name)
	if nameLen%2 != 0 {
		nameLen++
	}
	wantTotal := 12 + 8 + 20 + 8 + nameLen + 8 + len(payload)
	require.Len(t, out, wantTotal)

	// FORM header
	assert.Equal(t, "FORM", string(out[0:4]))
	assert.Equal(t, uint32(wantTotal-8), binary.BigEndian.Uint32(out[4:8]))
	assert.Equal(t, FormatTag, string(out[8:12]))

	// VHDR
	assert.Equal(t, "VHDR", string(out[12:16]))
	assert.Equal(t, uint32(20), binary.BigEndian.Uint32(out[16:20]))
	assert.Equal(t, uint32(0), binary.BigEndian.Uint32(out[20:24]))
	assert.Equal(t, uint32(0), binary.BigEndian.Uint32(out[24:28]))
	assert.Equal(t, uint32(0), binary.BigEndian.Uint32(out[28:32]))
	assert.Equal(t, uint32(8287), binary.BigEndian.Uint32(out[32:36]))
	assert.Equal(t, uint16(1), binary.BigEndian.Uint16(out[36:38]))
	assert.Equal(t, uint16(0), binary.BigEndian.Uint16(out[38:40]))

	// NAME, zero padded to even length
	assert.Equal(t, "NAME", string(out[40:44]))
	assert.Equal(t, uint32(nameLen), binary.BigEndian.Uint32(out[44:48]))
	nameField := out[48 : 48+nameLen]
	assert.Equal(t, Name, string(nameField[:len(Name)]))
	for _, b := range nameField[len(Name):] {
		assert.Equal(t, byte(0), b)
	}

	// BODY carries the payload untransformed
	bodyAt := 48 + nameLen
	assert.Equal(t, "BODY", string(out[bodyAt:bodyAt+4]))
	assert.Equal(t, uint32(len(payload)), binary.BigEndian.Uint32(out[bodyAt+4:bodyAt+8]))
	assert.Equal(t, payload, out[bodyAt+8:])
}

func TestSerialize_EmptyPayload(t *testing.T) {
	out := Serialize(4143, nil)
	require.NotEmpty(t, out)
	assert.Equal(t, "FORM", string(out[0:4]))
	assert.Equal(t, uint32(len(out)-8), binary.BigEndian.Uint32(out[4:8]))
	assert.Equal(t, uint32(0), binary.BigEndian.Uint32(out[len(out)-4:]))
}

func TestSerialize_BigEndianRate(t *testing.T) {
	out := Serialize(0x01020304, []byte{0})
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, out[32:36])
}

func TestSerialize_Deterministic(t *testing.T) {
	payload := make([]byte, 1280)
	for i := range payload {
		payload[i] = byte(i)
	}
	assert.Equal(t, Serialize(8287, payload), Serialize(8287, payload))
}
