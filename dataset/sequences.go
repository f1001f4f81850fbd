package dataset

import (
	"fmt"
	"strings"
)

// screwPrefix is conditionally prepended to activity labels upstream and
// must be stripped before category lookup.
const screwPrefix = "screw_"

// SequenceLabels extracts the (task, activity, acquisition, frame) label
// tokens from an image file name. The tokens are the last four
// dash-separated components of the file name stem, where the stem is
// everything before the first dot.
func SequenceLabels(fileName string) ([4]string, error) {
	stem := fileName
	if i := strings.IndexByte(stem, '.'); i >= 0 {
		stem = stem[:i]
	}
	tokens := strings.Split(stem, "-")
	if len(tokens) < len(Axes) {
		return [4]string{}, fmt.Errorf("%w: %q", ErrBadFileName, fileName)
	}
	var labels [4]string
	copy(labels[:], tokens[len(tokens)-len(Axes):])
	return labels, nil
}

// FixSequences rebuilds the sequence records of an annotation from its image
// file names, replacing any prior sequence list. On each of the four label
// axes independently, a sequence closes whenever the axis token changes
// between consecutive images, and all four open runs are flushed after the
// last image. Sequence ids are assigned in emission order across all axes.
//
// The annotation is not mutated; the result is a deep copy with its
// Sequences field replaced. A nil registry selects Default(). An unknown
// (axis, name) pair fails with ErrCategoryNotFound: it indicates a
// malformed file name or registry drift, not a recoverable condition.
//
// Acquisition boundaries in upstream data are known to overlap occasionally.
// Runs are matched exactly and not corrected here.
func FixSequences(ann *Annotation, reg *Registry) (*Annotation, error) {
	if reg == nil {
		reg = Default()
	}
	if len(ann.Images) == 0 {
		return nil, ErrNoImages
	}

	out := ann.Clone()

	var (
		sequences     []Sequence
		prev          [4]string
		firstFrameIDs [4]int
		seqLengths    [4]int
	)

	// closeRun emits the open run on axis i, normalizing the closing label
	// before lookup.
	closeRun := func(i int) error {
		name := strings.TrimPrefix(prev[i], screwPrefix)
		catID, err := reg.SequenceCategoryID(Axes[i], name)
		if err != nil {
			return err
		}
		sequences = append(sequences, Sequence{
			ID:            len(sequences),
			FirstFrameID:  firstFrameIDs[i],
			SeqLength:     seqLengths[i],
			SeqCategoryID: catID,
		})
		return nil
	}

	for n, image := range out.Images {
		labels, err := SequenceLabels(image.FileName)
		if err != nil {
			return nil, err
		}

		if n == 0 {
			prev = labels
			for i := range Axes {
				firstFrameIDs[i] = image.ID
				seqLengths[i] = 1
			}
			continue
		}

		for i := range Axes {
			if labels[i] != prev[i] {
				if err := closeRun(i); err != nil {
					return nil, err
				}
				firstFrameIDs[i] = image.ID
				seqLengths[i] = 0
			}
			seqLengths[i]++
			prev[i] = labels[i]
		}
	}

	// Flush the four runs left open by the last image.
	for i := range Axes {
		if err := closeRun(i); err != nil {
			return nil, err
		}
	}

	out.Sequences = sequences
	return out, nil
}
