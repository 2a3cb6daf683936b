// Package svxconv converts mono 16-bit PCM into IFF 8SVX sample blobs for
// Amiga tracker software.
//
// The converter targets the Paula chip's playback model: a note name picks a
// fixed DMA period, the period picks a playback rate, and the source audio
// is resampled to that rate with the same zero-order hold the chip itself
// applies. All core arithmetic is integer-only, so the same input bytes
// produce the same output bytes on every platform and on every run. That
// byte-identity is the point of the library; golden-file pipelines depend
// on it.
//
// # Quick Start
//
// One-shot conversion of a clip to the ProTracker default note:
//
//	result, err := svxconv.ConvertNote(samples, 44100, "C-2")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("kick.8SVX", result.Container, 0o644)
//
// Stacking a drum kit into one sample with page offsets for the tracker's
// 9xx command:
//
//	result, err := svxconv.Convert([]svxconv.Input{
//	    {Label: "kick", Note: "C-2", Samples: kick, SourceRate: 44100},
//	    {Label: "snare", Note: "C-2", Samples: snare, SourceRate: 44100},
//	}, svxconv.ModeStacked)
//
// Each segment's page offset (Segment.PageOffset) is the hex value to use in
// the playback-offset command.
//
// # Layout Modes
//
//   - [ModeSingle]: one segment, raw payload.
//   - [ModeStacked]: segments back to back, each padded to a 256-byte page.
//   - [ModeStackedEqual]: uniform slots sized to the largest segment, so the
//     page increment between segments is constant.
//
// # Determinism
//
// The resampler is a Bresenham-style integer rate converter, the quantizer
// is a bias-and-shift, and the container writer emits fixed big-endian
// fields. None of the core stages touch floating point or platform-defined
// conversions. The diagnostic helpers in the conversion report (levels,
// dominant pitch) do use floating point, but they never feed the output
// path.
package svxconv
