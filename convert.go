package svxconv

import (
	"errors"
	"fmt"

	"github.com/modkit/svxconv/internal/iff"
	"github.com/modkit/svxconv/internal/layout"
	"github.com/modkit/svxconv/internal/quantize"
	"github.com/modkit/svxconv/internal/ratetable"
	"github.com/modkit/svxconv/internal/zoh"
)

// Mode selects how segments are laid out in the output container.
type Mode int

const (
	// ModeSingle emits exactly one segment with no padding.
	ModeSingle Mode = iota

	// ModeStacked concatenates segments back to back, each padded to the
	// next 256-byte page.
	ModeStacked

	// ModeStackedEqual places every segment in a uniform slot sized to the
	// largest padded segment.
	ModeStackedEqual
)

// String returns the mode name used in reports and filenames.
func (m Mode) String() string {
	switch m {
	case ModeSingle:
		return "single"
	case ModeStacked:
		return "stacked"
	case ModeStackedEqual:
		return "stacked-equal"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Conversion errors. All of these abort the conversion with no partial
// output; oversize segments are reported as warnings instead (see Warning).
var (
	// ErrInvalidNote reports a note string outside the 96-entry rate table.
	ErrInvalidNote = ratetable.ErrInvalidNote

	// ErrNonMono reports an input with a channel count other than 1.
	ErrNonMono = errors.New("input is not mono")

	// ErrEmptyAudio reports an input that decoded to zero samples.
	ErrEmptyAudio = errors.New("no decoded audio samples")

	// ErrNoInput reports a conversion request without inputs.
	ErrNoInput = errors.New("no inputs to convert")
)

// Input is one source clip to convert. Samples must be mono PCM16 at
// SourceRate Hz; the decode boundary enforces the mono rule before an Input
// is ever built.
type Input struct {
	// Label identifies the input in diagnostics and warnings only.
	Label string

	// Note is the tracker note the sample will be played back at, e.g. "C-2".
	Note string

	// Samples is the mono source audio.
	Samples []int16

	// SourceRate is the source sample rate in Hz.
	SourceRate int
}

// Segment describes one converted clip's placement in the output buffer.
// Segments appear in input order in every layout mode and are immutable
// once the conversion returns.
type Segment struct {
	Label      string
	Note       string
	TargetRate int

	// RawBytes is the quantized payload length before padding.
	RawBytes int

	// PaddedBytes is RawBytes rounded up to the next 256-byte page.
	PaddedBytes int

	// StartByte is the segment's offset in the concatenated buffer. It is
	// always a multiple of 256.
	StartByte int
}

// PageOffset returns the segment start as the tracker's page-offset value:
// StartByte >> 8 in uppercase hex, at least two digits.
func (s Segment) PageOffset() string {
	return layout.PageOffsetHex(s.StartByte)
}

// Warning flags a segment whose raw payload exceeds 65535 bytes. The data is
// neither truncated nor rejected, but the tracker's offset mechanism can
// only address the first 65280 bytes, so the operator has to decide whether
// the result is usable.
type Warning struct {
	Label    string
	RawBytes int
}

func (w Warning) String() string {
	return fmt.Sprintf("segment %q is %d bytes; lengths beyond %d cannot be addressed (%d-byte hard bookkeeping limit exceeded)",
		w.Label, w.RawBytes, layout.MaxOffsetReach, layout.MaxSegmentBytes)
}

// Result is a completed conversion: the serialized container plus the
// bookkeeping a caller needs to address and describe each segment.
type Result struct {
	// Container is the final 8SVX byte buffer, ready to write out.
	Container []byte

	// Mode is the layout mode the conversion ran with.
	Mode Mode

	// SampleRate is the rate recorded in the container, taken from the
	// first segment. Stacked layouts may mix per-segment rates logically;
	// only the first is physically recorded.
	SampleRate int

	// Segments describes each converted input, in input order.
	Segments []Segment

	// Slot is the uniform slot size in ModeStackedEqual, 0 otherwise.
	Slot int

	// Warnings lists non-fatal oversize conditions.
	Warnings []Warning
}

// Convert runs the full pipeline over the inputs: rate lookup, zero-order
// hold resample, quantization, layout, serialization. Input order is
// preserved in the output. Any hard error aborts the whole conversion with
// no partial result.
func Convert(inputs []Input, mode Mode) (*Result, error) {
	if len(inputs) == 0 {
		return nil, ErrNoInput
	}
	if mode == ModeSingle && len(inputs) != 1 {
		return nil, fmt.Errorf("single mode requires exactly one input, got %d", len(inputs))
	}

	parts := make([][]byte, len(inputs))
	segments := make([]Segment, len(inputs))
	var warnings []Warning

	for i, in := range inputs {
		if len(in.Samples) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrEmptyAudio, in.Label)
		}
		if in.SourceRate <= 0 {
			return nil, fmt.Errorf("invalid source rate %d for %s", in.SourceRate, in.Label)
		}

		targetRate, err := ratetable.Rate(in.Note)
		if err != nil {
			return nil, err
		}

		resampled := zoh.Resample(in.Samples, in.SourceRate, targetRate)
		payload := quantize.Bytes(resampled)
		parts[i] = payload

		if len(payload) > layout.MaxSegmentBytes {
			warnings = append(warnings, Warning{Label: in.Label, RawBytes: len(payload)})
		}

		segments[i] = Segment{
			Label:       in.Label,
			Note:        in.Note,
			TargetRate:  targetRate,
			RawBytes:    len(payload),
			PaddedBytes: layout.Align(len(payload)),
		}
	}

	var (
		buffer  []byte
		offsets []int
		slot    int
	)
	switch mode {
	case ModeSingle:
		buffer, offsets = layout.Single(parts[0])
	case ModeStacked:
		buffer, offsets = layout.Stacked(parts)
	case ModeStackedEqual:
		buffer, offsets, slot = layout.StackedEqual(parts)
	default:
		return nil, fmt.Errorf("unknown layout mode %d", int(mode))
	}

	for i := range segments {
		segments[i].StartByte = offsets[i]
	}

	return &Result{
		Container:  iff.Serialize(segments[0].TargetRate, buffer),
		Mode:       mode,
		SampleRate: segments[0].TargetRate,
		Segments:   segments,
		Slot:       slot,
		Warnings:   warnings,
	}, nil
}
