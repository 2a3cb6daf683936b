package svxconv

// ConvertNote is a one-shot helper for the common case: a single clip
// converted for playback at one note, emitted as a single-segment container.
func ConvertNote(samples []int16, sourceRate int, note string) (*Result, error) {
	return Convert([]Input{{
		Label:      note,
		Note:       note,
		Samples:    samples,
		SourceRate: sourceRate,
	}}, ModeSingle)
}
