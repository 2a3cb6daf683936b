package svxconv

import (
	"encoding/json"
	"io"

	"github.com/modkit/svxconv/internal/layout"
)

// SegmentReport is the per-segment record of a conversion report.
type SegmentReport struct {
	Label       string `json:"label"`
	Note        string `json:"note"`
	TargetRate  int    `json:"targetRate"`
	StartByte   int    `json:"startByte"`
	PageOffset  string `json:"pageOffset"`
	RawBytes    int    `json:"rawBytes"`
	PaddedBytes int    `json:"paddedBytes"`
}

// InputAnalysis carries optional per-input diagnostics. Level fields are in
// dBFS and are clamped to a finite floor so the record always serializes.
type InputAnalysis struct {
	Label         string  `json:"label"`
	PeakDBFS      float64 `json:"peakDbfs"`
	RMSDBFS       float64 `json:"rmsDbfs"`
	DominantHz    float64 `json:"dominantHz,omitempty"`
	SuggestedNote string  `json:"suggestedNote,omitempty"`
}

// Report is the structured record of one conversion run. It is convenience
// output with no bearing on the binary container's correctness.
type Report struct {
	Mode       string          `json:"mode"`
	OutputFile string          `json:"outputFile"`
	SampleRate int             `json:"sampleRate"`
	SlotBytes  int             `json:"slotBytes,omitempty"`
	SlotPages  string          `json:"slotPages,omitempty"`
	Segments   []SegmentReport `json:"segments"`
	Warnings   []string        `json:"warnings,omitempty"`
	Analysis   []InputAnalysis `json:"analysis,omitempty"`
}

// NewReport assembles a report for a completed conversion. Analysis entries
// are the caller's to attach; the core stays free of floating point.
func NewReport(r *Result, outputFile string) *Report {
	rep := &Report{
		Mode:       r.Mode.String(),
		OutputFile: outputFile,
		SampleRate: r.SampleRate,
		Segments:   make([]SegmentReport, len(r.Segments)),
	}

	if r.Mode == ModeStackedEqual {
		rep.SlotBytes = r.Slot
		rep.SlotPages = pageHex(r.Slot)
	}

	for i, seg := range r.Segments {
		rep.Segments[i] = SegmentReport{
			Label:       seg.Label,
			Note:        seg.Note,
			TargetRate:  seg.TargetRate,
			StartByte:   seg.StartByte,
			PageOffset:  seg.PageOffset(),
			RawBytes:    seg.RawBytes,
			PaddedBytes: seg.PaddedBytes,
		}
	}

	for _, w := range r.Warnings {
		rep.Warnings = append(rep.Warnings, w.String())
	}

	return rep
}

// WriteJSON writes the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// pageHex formats a byte count as tracker pages, same rendering as segment
// page offsets.
func pageHex(n int) string {
	return layout.PageOffsetHex(n)
}
