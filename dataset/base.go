package dataset

import "time"

// DefaultInfo returns the dataset info block for the perphix dataset.
func DefaultInfo() Info {
	return Info{
		Description: "Percutaneous fracture fixation. If you use this dataset, kindly cite the paper.",
		URL:         "https://github.com/arcadelab/perphix",
		Version:     "0.1",
		Year:        2023,
		Contributor: "Benjamin D. Killeen, ARCADE Lab, Johns Hopkins University",
		DateCreated: time.Now().Format("2006-01-02"),
	}
}

// DefaultLicenses returns the license table for the perphix dataset.
func DefaultLicenses() []License {
	return []License{
		{
			URL:  "https://nmdid.unm.edu/resources/data-use",
			ID:   1,
			Name: "NMDID Data Use Agreement",
		},
		{
			URL:  "http://creativecommons.org/licenses/by-nc-sa/2.0/",
			ID:   2,
			Name: "Attribution-NonCommercial-ShareAlike License",
		},
		{
			URL:  "http://creativecommons.org/licenses/by-nc/2.0/",
			ID:   3,
			Name: "Attribution-NonCommercial License",
		},
	}
}

// hipKeypoints names the eight pelvic landmarks annotated on each hip, in
// keypoint index order.
func hipKeypoints(side string) []string {
	return []string{
		side + "_sps",  // 0
		side + "_ips",  // 1
		side + "_iof",  // 2
		side + "_gsn",  // 3
		side + "_it",   // 4
		side + "_mof",  // 5
		side + "_asis", // 6
		side + "_is",   // 7
	}
}

// hipSkeleton connects the hip landmarks, offset for the keypoint index base.
func hipSkeleton(base int) [][2]int {
	pairs := [][2]int{
		{0, 1}, {0, 5}, {1, 5}, {1, 2},
		{2, 7}, {7, 3}, {3, 6}, {7, 6},
	}
	out := make([][2]int, len(pairs))
	for i, p := range pairs {
		out[i] = [2]int{p[0] + base, p[1] + base}
	}
	return out
}

// DefaultCategories returns the object detection/segmentation categories:
// three supercategories of object (instrument, patient, corridor), with
// keypoint definitions on the hips and the deprecated whole pelvis.
func DefaultCategories() []Category {
	return []Category{
		{Supercategory: "instrument", ID: 1, Name: "wire"},
		{Supercategory: "instrument", ID: 2, Name: "screw"},
		{
			Supercategory: "patient",
			ID:            3,
			Name:          "hip_left",
			Keypoints:     hipKeypoints("l"),
			Skeleton:      hipSkeleton(0),
		},
		{
			Supercategory: "patient",
			ID:            4,
			Name:          "hip_right",
			Keypoints:     hipKeypoints("r"),
			Skeleton:      hipSkeleton(0),
		},
		{Supercategory: "patient", ID: 5, Name: "femur_left"},
		{Supercategory: "patient", ID: 6, Name: "femur_right"},
		{Supercategory: "patient", ID: 7, Name: "sacrum"},
		{Supercategory: "patient", ID: 8, Name: "vertebrae_L5"},
		{
			// Deprecated, use hip_left and hip_right.
			Supercategory: "patient",
			ID:            9,
			Name:          "pelvis",
			Keypoints:     append(hipKeypoints("r"), hipKeypoints("l")...),
			Skeleton:      append(hipSkeleton(0), hipSkeleton(8)...),
		},
		{Supercategory: "corridor", ID: 10, Name: "s1_left"},
		{Supercategory: "corridor", ID: 11, Name: "s1_right"},
		{Supercategory: "corridor", ID: 12, Name: "s1"},
		{Supercategory: "corridor", ID: 13, Name: "s2"},
		{Supercategory: "corridor", ID: 14, Name: "ramus_left"},
		{Supercategory: "corridor", ID: 15, Name: "ramus_right"},
		{Supercategory: "corridor", ID: 16, Name: "teardrop_left"},
		{Supercategory: "corridor", ID: 17, Name: "teardrop_right"},
	}
}

// DefaultSeqCategories returns the sequence segmentation categories on the
// four label axes.
func DefaultSeqCategories() []SeqCategory {
	return []SeqCategory{
		{Supercategory: AxisTask, ID: 0, Name: "s1_left"},
		{Supercategory: AxisTask, ID: 1, Name: "s1_right"},
		{Supercategory: AxisTask, ID: 2, Name: "s1"},
		{Supercategory: AxisTask, ID: 3, Name: "s2"},
		{Supercategory: AxisTask, ID: 4, Name: "ramus_left"},
		{Supercategory: AxisTask, ID: 5, Name: "ramus_right"},
		{Supercategory: AxisTask, ID: 6, Name: "teardrop_left"},
		{Supercategory: AxisTask, ID: 7, Name: "teardrop_right"},
		{Supercategory: AxisActivity, ID: 8, Name: "position_wire"},
		{Supercategory: AxisActivity, ID: 9, Name: "insert_wire"},
		{Supercategory: AxisActivity, ID: 10, Name: "insert_screw"},
		{Supercategory: AxisAcquisition, ID: 11, Name: "ap"},
		{Supercategory: AxisAcquisition, ID: 12, Name: "lateral"},
		{Supercategory: AxisAcquisition, ID: 13, Name: "inlet"},
		{Supercategory: AxisAcquisition, ID: 14, Name: "outlet"},
		{Supercategory: AxisAcquisition, ID: 15, Name: "oblique_left"},
		{Supercategory: AxisAcquisition, ID: 16, Name: "oblique_right"},
		{Supercategory: AxisAcquisition, ID: 17, Name: "teardrop_left"},
		{Supercategory: AxisAcquisition, ID: 18, Name: "teardrop_right"},
		{Supercategory: AxisFrame, ID: 19, Name: "fluoro_hunting"},
		{Supercategory: AxisFrame, ID: 20, Name: "assessment"},
	}
}

// BaseAnnotation returns a fresh annotation dictionary carrying the default
// info, licenses and category tables, with empty image, annotation and
// sequence lists.
func BaseAnnotation() *Annotation {
	return &Annotation{
		Info:          DefaultInfo(),
		Licenses:      DefaultLicenses(),
		Images:        []Image{},
		Annotations:   []ObjectAnnotation{},
		Categories:    DefaultCategories(),
		Sequences:     []Sequence{},
		SeqCategories: DefaultSeqCategories(),
	}
}
