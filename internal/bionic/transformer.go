package bionic

import (
	"strings"

	"github.com/rivo/uniseg"
)

const (
	segmentSeparatorConstant = " "
)

// Segment is one emphasis-marked word.
type Segment struct {
	BoldPart      string `json:"bold_part" yaml:"bold_part" jsonschema:"required,description=Leading grapheme clusters rendered with emphasis"`
	NormalPart    string `json:"normal_part" yaml:"normal_part" jsonschema:"required,description=Remaining grapheme clusters rendered normally"`
	TrailingSpace bool   `json:"trailing_space" yaml:"trailing_space" jsonschema:"required"`
}

// Text returns the word the segment was built from.
func (segment Segment) Text() string {
	return segment.BoldPart + segment.NormalPart
}

// Output is the result of Transform. When Bypassed is true Text holds the untouched input and
// Segments is null; otherwise Segments holds one entry per word and Text is empty.
// Both fields are always encoded so an empty input stays distinguishable from a missing one.
type Output struct {
	Bypassed bool      `json:"bypassed" yaml:"bypassed" jsonschema:"required"`
	Text     string    `json:"text" yaml:"text" jsonschema:"required,description=Original text when bypassed; empty otherwise"`
	Segments []Segment `json:"segments" yaml:"segments" jsonschema:"required,description=One entry per word when not bypassed; null when bypassed"`
}

// Transform applies bionic emphasis when enabled and otherwise returns the text unchanged.
func Transform(text string, enabled bool) Output {
	if !enabled {
		return Output{Bypassed: true, Text: text}
	}
	return Output{Segments: Segments(text)}
}

// Segments splits text on whitespace runs and emphasizes the first ceil(n/2) grapheme clusters of each word.
func Segments(text string) []Segment {
	words := strings.Fields(text)
	segments := make([]Segment, 0, len(words))
	for _, word := range words {
		segments = append(segments, segmentWord(word))
	}
	return segments
}

// Join reassembles segments into text, separating words with a single space. The trailing
// space of the final segment is dropped.
func Join(segments []Segment) string {
	var builder strings.Builder
	for segmentIndex, segment := range segments {
		builder.WriteString(segment.BoldPart)
		builder.WriteString(segment.NormalPart)
		if segment.TrailingSpace && segmentIndex < len(segments)-1 {
			builder.WriteString(segmentSeparatorConstant)
		}
	}
	return builder.String()
}

func segmentWord(word string) Segment {
	clusterEnds := graphemeClusterEnds(word)
	boldLength := (len(clusterEnds) + 1) / 2
	splitOffset := clusterEnds[boldLength-1]

	return Segment{
		BoldPart:      word[:splitOffset],
		NormalPart:    word[splitOffset:],
		TrailingSpace: true,
	}
}

// graphemeClusterEnds returns the byte offset just past every grapheme cluster in word.
func graphemeClusterEnds(word string) []int {
	clusterEnds := make([]int, 0, len(word))
	graphemes := uniseg.NewGraphemes(word)
	for graphemes.Next() {
		_, clusterEnd := graphemes.Positions()
		clusterEnds = append(clusterEnds, clusterEnd)
	}
	return clusterEnds
}
