package dataset

import (
	"errors"
	"testing"
)

func TestDefaultRegistryLookups(t *testing.T) {
	tests := []struct {
		name      string
		axis      Axis
		label     string
		wantFound bool
		wantID    int
	}{
		{name: "task s1", axis: AxisTask, label: "s1", wantFound: true, wantID: 2},
		{name: "task teardrop_left", axis: AxisTask, label: "teardrop_left", wantFound: true, wantID: 6},
		{name: "activity position_wire", axis: AxisActivity, label: "position_wire", wantFound: true, wantID: 8},
		{name: "activity insert_screw", axis: AxisActivity, label: "insert_screw", wantFound: true, wantID: 10},
		{name: "acquisition ap", axis: AxisAcquisition, label: "ap", wantFound: true, wantID: 11},
		{name: "acquisition teardrop_left", axis: AxisAcquisition, label: "teardrop_left", wantFound: true, wantID: 17},
		{name: "frame fluoro_hunting", axis: AxisFrame, label: "fluoro_hunting", wantFound: true, wantID: 19},
		{name: "unknown label", axis: AxisActivity, label: "remove_wire", wantFound: false},
		{name: "label on wrong axis", axis: AxisTask, label: "position_wire", wantFound: false},
	}

	reg := Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := reg.SequenceCategoryID(tt.axis, tt.label)
			if tt.wantFound {
				if err != nil {
					t.Fatalf("SequenceCategoryID(%s, %q) unexpected error: %v", tt.axis, tt.label, err)
				}
				if id != tt.wantID {
					t.Errorf("SequenceCategoryID(%s, %q) = %d, want %d", tt.axis, tt.label, id, tt.wantID)
				}
			} else if !errors.Is(err, ErrCategoryNotFound) {
				t.Errorf("SequenceCategoryID(%s, %q) error = %v, want ErrCategoryNotFound", tt.axis, tt.label, err)
			}
		})
	}
}

func TestDefaultRegistryCategories(t *testing.T) {
	reg := Default()

	id, err := reg.CategoryID("pelvis")
	if err != nil {
		t.Fatalf("CategoryID(pelvis) failed: %v", err)
	}
	if id != 9 {
		t.Errorf("CategoryID(pelvis) = %d, want 9", id)
	}

	cat, err := reg.Category(9)
	if err != nil {
		t.Fatalf("Category(9) failed: %v", err)
	}
	if cat.Name != "pelvis" {
		t.Errorf("Category(9).Name = %q, want pelvis", cat.Name)
	}
	if len(cat.Keypoints) != 16 {
		t.Errorf("pelvis has %d keypoints, want 16", len(cat.Keypoints))
	}
	if len(cat.Skeleton) != 16 {
		t.Errorf("pelvis has %d skeleton edges, want 16", len(cat.Skeleton))
	}

	if _, err := reg.CategoryID("spine"); !errors.Is(err, ErrCategoryNotFound) {
		t.Errorf("CategoryID(spine) error = %v, want ErrCategoryNotFound", err)
	}
}

func TestNewRegistryRejectsDuplicates(t *testing.T) {
	tests := []struct {
		name          string
		categories    []Category
		seqCategories []SeqCategory
	}{
		{
			name: "duplicate category name",
			categories: []Category{
				{Supercategory: "instrument", ID: 1, Name: "wire"},
				{Supercategory: "instrument", ID: 2, Name: "wire"},
			},
		},
		{
			name: "duplicate category id",
			categories: []Category{
				{Supercategory: "instrument", ID: 1, Name: "wire"},
				{Supercategory: "instrument", ID: 1, Name: "screw"},
			},
		},
		{
			name: "duplicate sequence key",
			seqCategories: []SeqCategory{
				{Supercategory: AxisTask, ID: 0, Name: "s1"},
				{Supercategory: AxisTask, ID: 1, Name: "s1"},
			},
		},
		{
			name: "duplicate sequence id",
			seqCategories: []SeqCategory{
				{Supercategory: AxisTask, ID: 0, Name: "s1"},
				{Supercategory: AxisActivity, ID: 0, Name: "insert_wire"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRegistry(tt.categories, tt.seqCategories)
			if !errors.Is(err, ErrDuplicateCategory) {
				t.Errorf("NewRegistry error = %v, want ErrDuplicateCategory", err)
			}
		})
	}
}

func TestSyntheticRegistry(t *testing.T) {
	reg, err := NewRegistry(nil, []SeqCategory{
		{Supercategory: AxisTask, ID: 0, Name: "calibration"},
		{Supercategory: AxisActivity, ID: 1, Name: "drill"},
		{Supercategory: AxisAcquisition, ID: 2, Name: "ap"},
		{Supercategory: AxisFrame, ID: 3, Name: "still"},
	})
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}

	ann := &Annotation{
		Images: []Image{{ID: 1, FileName: "run-calibration-drill-ap-still.png"}},
	}
	out, err := FixSequences(ann, reg)
	if err != nil {
		t.Fatalf("FixSequences with synthetic registry failed: %v", err)
	}
	wantIDs := []int{0, 1, 2, 3}
	for i, seq := range out.Sequences {
		if seq.SeqCategoryID != wantIDs[i] {
			t.Errorf("sequence %d: SeqCategoryID = %d, want %d", i, seq.SeqCategoryID, wantIDs[i])
		}
	}
}

func TestRegistryTablesAreCopies(t *testing.T) {
	reg := Default()

	cats := reg.Categories()
	cats[0].Name = "tampered"
	if again := reg.Categories(); again[0].Name == "tampered" {
		t.Error("Categories() exposes internal state")
	}

	seqs := reg.SeqCategories()
	seqs[0].Name = "tampered"
	if again := reg.SeqCategories(); again[0].Name == "tampered" {
		t.Error("SeqCategories() exposes internal state")
	}
}
