// Command svxconv converts WAV or FLAC audio into IFF 8SVX samples for
// Amiga tracker software.
//
// Usage:
//
//	svxconv -note C-2 kick.wav
//	svxconv -mode stacked -note C-2 kick.wav snare.wav hat.wav=C-3
//	svxconv -mode equal -o kit.8SVX -report kit.json kick.wav snare.wav
//
// Inputs must be mono; stereo files are rejected. A trailing =NOTE on an
// input overrides the -note default for that file. In stacked modes the
// default output filename encodes each segment's page offset for the
// tracker's 9xx sample-offset command.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	defaultNote = "C-2"
	defaultMode = "single"

	// File mode for written containers and reports.
	outputFileMode = 0o644

	minRequiredArgs = 1
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	note := flag.String("note", defaultNote, "Default target note, e.g. C-2, F#3")
	mode := flag.String("mode", defaultMode, "Layout mode: single, stacked, equal")
	output := flag.String("o", "", "Output file (default: derived from first input and layout)")
	reportPath := flag.String("report", "", "Write a JSON conversion report to this file")
	analyze := flag.Bool("analyze", false, "Include level and pitch diagnostics in the report")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.wav [input2.flac[=NOTE] ...]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -note C-2 kick.wav                         # Single sample\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -mode stacked kick.wav snare.wav hat.wav   # Offset-stacked kit\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -mode equal -report kit.json k.wav s.wav   # Equal slots + report\n", os.Args[0])
		return fmt.Errorf("no input files")
	}

	layoutMode, err := parseMode(*mode)
	if err != nil {
		return err
	}

	specs, err := parseArgs(args, *note)
	if err != nil {
		return err
	}

	start := time.Now()
	inputs, sources, err := loadInputs(specs)
	if err != nil {
		return err
	}

	if *verbose {
		for _, in := range inputs {
			log.Printf("input %s: %d samples at %d Hz, note %s",
				in.Label, len(in.Samples), in.SourceRate, in.Note)
		}
	}

	result, err := convert(inputs, layoutMode)
	if err != nil {
		return err
	}

	for _, w := range result.Warnings {
		log.Printf("warning: %s", w)
	}

	outPath := outputPath(*output, specs[0].path, result)
	if err := os.WriteFile(outPath, result.Container, outputFileMode); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	if *reportPath != "" {
		if err := writeReport(*reportPath, result, outPath, inputs, sources, *analyze); err != nil {
			return err
		}
	}

	elapsed := time.Since(start)
	fmt.Printf("Wrote %s (%d bytes, %d Hz, %s)\n",
		outPath, len(result.Container), result.SampleRate, result.Mode)
	for _, seg := range result.Segments {
		fmt.Printf("  %-12s %-4s %6d Hz  offset %s  %d bytes (%d padded)\n",
			seg.Label, seg.Note, seg.TargetRate, seg.PageOffset(), seg.RawBytes, seg.PaddedBytes)
	}
	if *verbose {
		log.Printf("done in %s", elapsed.Round(time.Millisecond))
	}

	return nil
}

// baseName strips directory and extension from an input path.
func baseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
