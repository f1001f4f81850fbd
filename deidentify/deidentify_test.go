package deidentify

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suyashkumar/dicom"
	"github.com/suyashkumar/dicom/pkg/tag"
)

var (
	patientAddress = tag.Tag{Group: 0x0010, Element: 0x1040}
	ethnicGroup    = tag.Tag{Group: 0x0010, Element: 0x2160}
)

func mustElement(t *testing.T, tg tag.Tag, value []string) *dicom.Element {
	t.Helper()
	elem, err := dicom.NewElement(tg, value)
	require.NoError(t, err)
	return elem
}

func testDataset(t *testing.T) dicom.Dataset {
	t.Helper()
	return dicom.Dataset{Elements: []*dicom.Element{
		mustElement(t, tag.PatientName, []string{"Doe^John"}),
		mustElement(t, tag.PatientID, []string{"MRN-7781"}),
		mustElement(t, tag.PatientBirthDate, []string{"19500101"}),
		mustElement(t, tag.Modality, []string{"RF"}),
	}}
}

func stringValue(t *testing.T, ds dicom.Dataset, tg tag.Tag) []string {
	t.Helper()
	elem, err := ds.FindElementByTag(tg)
	require.NoError(t, err, "element %v not found", tg)
	value, ok := elem.Value.GetValue().([]string)
	require.True(t, ok, "element %v is not a string value", tg)
	return value
}

func TestScrubReplacesIdentifyingTags(t *testing.T) {
	ds := testDataset(t)

	out, err := Scrub(ds, Options{CaseID: "123456"})
	require.NoError(t, err)

	assert.Equal(t, []string{"Anonymous"}, stringValue(t, out, tag.PatientName))
	assert.Equal(t, []string{"123456"}, stringValue(t, out, tag.PatientID))
	assert.Equal(t, []string{""}, stringValue(t, out, tag.PatientBirthDate))
	assert.Equal(t, []string{"RF"}, stringValue(t, out, tag.Modality))
}

func TestScrubCreatesMissingTags(t *testing.T) {
	// The test dataset carries no address or ethnic group; scrubbing must
	// still produce blank elements for them.
	out, err := Scrub(testDataset(t), Options{CaseID: "123456"})
	require.NoError(t, err)

	assert.Equal(t, []string{""}, stringValue(t, out, patientAddress))
	assert.Equal(t, []string{""}, stringValue(t, out, ethnicGroup))
}

func TestScrubDoesNotMutateInput(t *testing.T) {
	ds := testDataset(t)

	_, err := Scrub(ds, Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"Doe^John"}, stringValue(t, ds, tag.PatientName))
	assert.Equal(t, []string{"MRN-7781"}, stringValue(t, ds, tag.PatientID))
}

func TestScrubGeneratesCaseID(t *testing.T) {
	out, err := Scrub(testDataset(t), Options{})
	require.NoError(t, err)

	id := stringValue(t, out, tag.PatientID)
	require.Len(t, id, 1)
	assert.NotEmpty(t, id[0])
	assert.NotEqual(t, "MRN-7781", id[0])
}

func TestScrubCustomOptions(t *testing.T) {
	ds := testDataset(t)

	out, err := Scrub(ds, Options{
		CaseID:      "000042",
		PatientName: "case_000042",
		BlankTags:   []tag.Tag{tag.Modality},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"case_000042"}, stringValue(t, out, tag.PatientName))
	assert.Equal(t, []string{""}, stringValue(t, out, tag.Modality))
}

func TestScrubKeepsElementsSorted(t *testing.T) {
	out, err := Scrub(testDataset(t), Options{CaseID: "123456"})
	require.NoError(t, err)

	for i := 1; i < len(out.Elements); i++ {
		a, b := out.Elements[i-1].Tag, out.Elements[i].Tag
		sorted := a.Group < b.Group || (a.Group == b.Group && a.Element <= b.Element)
		assert.True(t, sorted, "elements out of order: %v before %v", a, b)
	}
}

func TestDirectorySkipsNonDICOM(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "out")
	require.NoError(t, os.WriteFile(filepath.Join(inputDir, "notes.txt"), []byte("not a dicom file"), 0644))

	require.NoError(t, Directory(inputDir, outputDir, Options{}))

	// Nothing valid to de-identify, so nothing is written.
	_, err := os.Stat(outputDir)
	assert.True(t, os.IsNotExist(err))
}

func TestDirectoryMissingInput(t *testing.T) {
	err := Directory(filepath.Join(t.TempDir(), "missing"), t.TempDir(), Options{})
	assert.Error(t, err)
}
