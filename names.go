package svxconv

import "strings"

// Extension is the conventional suffix for 8SVX sample files.
const Extension = ".8SVX"

// SuggestedFilename builds the conventional output name for a result. The
// name encodes what a tracker user needs at the keyboard: stacked files
// carry every segment's page offset, stacked-equal files carry the constant
// page increment between segments.
//
//	single        base.8SVX
//	stacked       base_00_05_09.8SVX
//	stacked-equal base_05.8SVX
//
// The name is a convenience only; it has no bearing on container contents.
func SuggestedFilename(base string, r *Result) string {
	var sb strings.Builder
	sb.WriteString(base)

	switch r.Mode {
	case ModeStacked:
		for _, seg := range r.Segments {
			sb.WriteByte('_')
			sb.WriteString(seg.PageOffset())
		}
	case ModeStackedEqual:
		sb.WriteByte('_')
		sb.WriteString(pageHex(r.Slot))
	}

	sb.WriteString(Extension)
	return sb.String()
}
