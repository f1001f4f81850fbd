// Package deidentify removes patient-identifying information from DICOM
// files. The scrub replaces the patient name and id and blanks the
// remaining identifying tags; everything else in the dataset is preserved.
package deidentify

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/uuid"
	"github.com/suyashkumar/dicom"
	"github.com/suyashkumar/dicom/pkg/tag"
)

// DefaultPatientName replaces the PatientName tag in scrubbed datasets.
const DefaultPatientName = "Anonymous"

// blankTags are the identifying tags cleared to the empty string, beyond the
// patient name and id replacements.
var blankTags = []tag.Tag{
	tag.PatientBirthDate,
	{Group: 0x0010, Element: 0x1040}, // PatientAddress
	{Group: 0x0010, Element: 0x1080}, // MilitaryRank
	{Group: 0x0010, Element: 0x2160}, // EthnicGroup
}

// Options configures a de-identification pass.
type Options struct {
	// CaseID replaces the PatientID tag. A fresh anonymous id is generated
	// when empty.
	CaseID string

	// PatientName replaces the PatientName tag. Defaults to
	// DefaultPatientName.
	PatientName string

	// BlankTags are additional tags cleared to the empty string.
	BlankTags []tag.Tag
}

// NewCaseID returns a random case identifier for use as an anonymous
// PatientID.
func NewCaseID() string {
	return uuid.NewString()
}

// Scrub returns a de-identified copy of the dataset. Identifying elements
// are replaced rather than edited, so the input dataset and its elements are
// left untouched. Tags in the replacement set that are missing from the
// input are created, matching what an assignment does upstream.
func Scrub(ds dicom.Dataset, opts Options) (dicom.Dataset, error) {
	if opts.PatientName == "" {
		opts.PatientName = DefaultPatientName
	}
	if opts.CaseID == "" {
		opts.CaseID = NewCaseID()
	}

	replace := map[tag.Tag]string{
		tag.PatientName: opts.PatientName,
		tag.PatientID:   opts.CaseID,
	}
	for _, t := range blankTags {
		replace[t] = ""
	}
	for _, t := range opts.BlankTags {
		replace[t] = ""
	}

	out := dicom.Dataset{
		Elements: make([]*dicom.Element, 0, len(ds.Elements)+len(replace)),
	}
	replaced := make(map[tag.Tag]bool, len(replace))
	for _, elem := range ds.Elements {
		value, ok := replace[elem.Tag]
		if !ok {
			out.Elements = append(out.Elements, elem)
			continue
		}
		repl, err := dicom.NewElement(elem.Tag, []string{value})
		if err != nil {
			return dicom.Dataset{}, fmt.Errorf("replace element %v: %w", elem.Tag, err)
		}
		out.Elements = append(out.Elements, repl)
		replaced[elem.Tag] = true
	}
	for t, value := range replace {
		if replaced[t] {
			continue
		}
		elem, err := dicom.NewElement(t, []string{value})
		if err != nil {
			return dicom.Dataset{}, fmt.Errorf("create element %v: %w", t, err)
		}
		out.Elements = append(out.Elements, elem)
	}

	// Keep elements in ascending tag order, as the writer expects.
	sort.SliceStable(out.Elements, func(i, j int) bool {
		a, b := out.Elements[i].Tag, out.Elements[j].Tag
		if a.Group != b.Group {
			return a.Group < b.Group
		}
		return a.Element < b.Element
	})

	return out, nil
}

// Directory de-identifies every DICOM file under inputDir into outputDir,
// mirroring the directory layout. Files that do not parse as DICOM are
// skipped. All files in one invocation correspond to the same patient and
// share one case id.
func Directory(inputDir, outputDir string, opts Options) error {
	info, err := os.Stat(inputDir)
	if err != nil {
		return fmt.Errorf("stat input dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", inputDir)
	}

	if opts.CaseID == "" {
		opts.CaseID = NewCaseID()
		slog.Info("generated case id", "case_id", opts.CaseID)
	}

	return filepath.WalkDir(inputDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ds, err := dicom.ParseFile(path, nil)
		if err != nil {
			slog.Debug("skipping non-DICOM file", "path", path, "error", err)
			return nil
		}

		scrubbed, err := Scrub(ds, opts)
		if err != nil {
			return fmt.Errorf("scrub %s: %w", path, err)
		}

		rel, err := filepath.Rel(inputDir, path)
		if err != nil {
			return err
		}
		outPath := filepath.Join(outputDir, rel)
		if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}

		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		if err := dicom.Write(f, scrubbed); err != nil {
			f.Close()
			return fmt.Errorf("write %s: %w", outPath, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("close %s: %w", outPath, err)
		}

		slog.Debug("de-identified", "input", path, "output", outPath)
		return nil
	})
}
