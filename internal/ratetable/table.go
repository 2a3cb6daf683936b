// Package ratetable maps ProTracker note names to Paula playback rates.
//
// A note resolves to a fixed integer period; the playback rate is the PAL
// Paula clock divided by that period using integer floor division. No
// floating point is involved anywhere, so the mapping is identical on every
// platform.
package ratetable

import (
	"errors"
	"fmt"
)

// ClockHz is the PAL Paula DMA clock in Hz. Dividing it by a note's period
// gives the sample rate at which Paula plays that note.
const ClockHz = 3546895

// ErrInvalidNote is returned when a note string is not one of the 96 known
// keys. Lookups are exact-string-match and case-sensitive.
var ErrInvalidNote = errors.New("invalid note")

// periods holds the fixed (note, period) data for octaves 0-7.
//
// Octaves 0-3 are the classic ProTracker finetune-0 periods, with octave 0
// being octave 1 doubled. Octaves 4-7 divide the octave-3 row by 2, 4, 8 and
// 16, rounded half away from zero. Integer periods collapse some entries at
// the very top of the range (C-7 and C#7 are both 13); Paula cannot play
// those rates anyway, but the keys stay addressable.
var periods = map[string]int{
	"C-0": 1712, "C#0": 1616, "D-0": 1524, "D#0": 1440, "E-0": 1356, "F-0": 1280,
	"F#0": 1208, "G-0": 1140, "G#0": 1076, "A-0": 1016, "A#0": 960, "B-0": 906,

	"C-1": 856, "C#1": 808, "D-1": 762, "D#1": 720, "E-1": 678, "F-1": 640,
	"F#1": 604, "G-1": 570, "G#1": 538, "A-1": 508, "A#1": 480, "B-1": 453,

	"C-2": 428, "C#2": 404, "D-2": 381, "D#2": 360, "E-2": 339, "F-2": 320,
	"F#2": 302, "G-2": 285, "G#2": 269, "A-2": 254, "A#2": 240, "B-2": 226,

	"C-3": 214, "C#3": 202, "D-3": 190, "D#3": 180, "E-3": 170, "F-3": 160,
	"F#3": 151, "G-3": 143, "G#3": 135, "A-3": 127, "A#3": 120, "B-3": 113,

	"C-4": 107, "C#4": 101, "D-4": 95, "D#4": 90, "E-4": 85, "F-4": 80,
	"F#4": 76, "G-4": 72, "G#4": 68, "A-4": 64, "A#4": 60, "B-4": 57,

	"C-5": 54, "C#5": 51, "D-5": 48, "D#5": 45, "E-5": 43, "F-5": 40,
	"F#5": 38, "G-5": 36, "G#5": 34, "A-5": 32, "A#5": 30, "B-5": 28,

	"C-6": 27, "C#6": 25, "D-6": 24, "D#6": 23, "E-6": 21, "F-6": 20,
	"F#6": 19, "G-6": 18, "G#6": 17, "A-6": 16, "A#6": 15, "B-6": 14,

	"C-7": 13, "C#7": 13, "D-7": 12, "D#7": 11, "E-7": 11, "F-7": 10,
	"F#7": 9, "G-7": 9, "G#7": 8, "A-7": 8, "A#7": 8, "B-7": 7,
}

// noteNames lists the twelve semitone spellings in pitch order.
var noteNames = [12]string{"C-", "C#", "D-", "D#", "E-", "F-", "F#", "G-", "G#", "A-", "A#", "B-"}

// Period returns the Paula period for a note, or ErrInvalidNote.
func Period(note string) (int, error) {
	p, ok := periods[note]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNote, note)
	}
	return p, nil
}

// Rate returns the playback rate in Hz for a note: ClockHz / period using
// integer floor division.
func Rate(note string) (int, error) {
	p, err := Period(note)
	if err != nil {
		return 0, err
	}
	return ClockHz / p, nil
}

// Notes returns all 96 note names in ascending pitch order, C-0 through B-7.
func Notes() []string {
	notes := make([]string, 0, len(periods))
	for octave := 0; octave <= 7; octave++ {
		for _, name := range noteNames {
			notes = append(notes, fmt.Sprintf("%s%d", name, octave))
		}
	}
	return notes
}

// NearestNote returns the note whose playback rate is closest to freq scaled
// into the table's range, along with that note's rate. It is a diagnostic
// helper for operators choosing a target note; freq must be positive.
func NearestNote(rateHz float64) (string, int) {
	bestNote := ""
	bestRate := 0
	bestDiff := 0.0
	for _, note := range Notes() {
		rate, _ := Rate(note)
		diff := rateHz - float64(rate)
		if diff < 0 {
			diff = -diff
		}
		if bestNote == "" || diff < bestDiff {
			bestNote, bestRate, bestDiff = note, rate, diff
		}
	}
	return bestNote, bestRate
}
