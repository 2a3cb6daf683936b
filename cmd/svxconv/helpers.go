package main

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/modkit/svxconv"
	"github.com/modkit/svxconv/internal/analysis"
	"github.com/modkit/svxconv/internal/decode"
	"github.com/modkit/svxconv/internal/ratetable"
)

// dbFloor replaces -Inf level readings so reports always serialize.
const dbFloor = -144.0

// inputSpec is one parsed input argument.
type inputSpec struct {
	path string
	note string
}

// parseArgs splits input arguments into path and note. A trailing "=NOTE"
// overrides the default note for that file.
func parseArgs(args []string, defaultNote string) ([]inputSpec, error) {
	specs := make([]inputSpec, len(args))
	for i, arg := range args {
		path, note := arg, defaultNote
		if idx := strings.LastIndex(arg, "="); idx >= 0 {
			path, note = arg[:idx], arg[idx+1:]
			if path == "" || note == "" {
				return nil, fmt.Errorf("malformed input argument %q (want path=NOTE)", arg)
			}
		}
		specs[i] = inputSpec{path: path, note: note}
	}
	return specs, nil
}

// parseMode maps the -mode flag to a layout mode.
func parseMode(s string) (svxconv.Mode, error) {
	switch strings.ToLower(s) {
	case "single":
		return svxconv.ModeSingle, nil
	case "stacked":
		return svxconv.ModeStacked, nil
	case "equal", "stacked-equal":
		return svxconv.ModeStackedEqual, nil
	default:
		return 0, fmt.Errorf("unknown mode %q (want single, stacked or equal)", s)
	}
}

// loadInputs decodes every input file. The decoded PCM is returned alongside
// the converter inputs so diagnostics can analyze the source audio.
func loadInputs(specs []inputSpec) ([]svxconv.Input, []*decode.PCM, error) {
	inputs := make([]svxconv.Input, len(specs))
	sources := make([]*decode.PCM, len(specs))
	for i, spec := range specs {
		pcm, err := decode.File(spec.path)
		if err != nil {
			return nil, nil, err
		}
		sources[i] = pcm
		inputs[i] = svxconv.Input{
			Label:      baseName(spec.path),
			Note:       spec.note,
			Samples:    pcm.Samples,
			SourceRate: pcm.Rate,
		}
	}
	return inputs, sources, nil
}

// convert runs the core pipeline.
func convert(inputs []svxconv.Input, mode svxconv.Mode) (*svxconv.Result, error) {
	return svxconv.Convert(inputs, mode)
}

// outputPath picks the output filename: the -o flag verbatim, or the
// conventional name derived from the first input.
func outputPath(flagValue, firstInput string, result *svxconv.Result) string {
	if flagValue != "" {
		return flagValue
	}
	return svxconv.SuggestedFilename(baseName(firstInput), result)
}

// writeReport assembles and writes the JSON conversion report.
func writeReport(path string, result *svxconv.Result, outPath string,
	inputs []svxconv.Input, sources []*decode.PCM, analyze bool) error {

	rep := svxconv.NewReport(result, outPath)
	if analyze {
		rep.Analysis = analyzeInputs(inputs, sources)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := rep.WriteJSON(f); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// analyzeInputs computes level and pitch diagnostics over the source PCM.
func analyzeInputs(inputs []svxconv.Input, sources []*decode.PCM) []svxconv.InputAnalysis {
	out := make([]svxconv.InputAnalysis, len(inputs))
	for i, in := range inputs {
		levels := analysis.Measure(sources[i].Samples)
		entry := svxconv.InputAnalysis{
			Label:    in.Label,
			PeakDBFS: clampDB(levels.PeakDBFS),
			RMSDBFS:  clampDB(levels.RMSDBFS),
		}

		if freq := analysis.DominantFrequency(sources[i].Samples, sources[i].Rate); freq > 0 {
			entry.DominantHz = freq
		}

		// The note whose playback rate sits closest to the source rate is
		// the target that loses the least to resampling.
		note, _ := ratetable.NearestNote(float64(sources[i].Rate))
		entry.SuggestedNote = note

		out[i] = entry
	}
	return out
}

// clampDB keeps level readings finite for JSON serialization.
func clampDB(v float64) float64 {
	if math.IsInf(v, -1) || v < dbFloor {
		return dbFloor
	}
	return v
}
