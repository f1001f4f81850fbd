// Package dataset defines the COCO-style annotation schema for the perphix
// surgical X-ray sequence dataset and the routines that operate on it:
// category registries, sequence reconstruction from file names, and
// annotation filters.
package dataset

import (
	"encoding/json"
	"slices"
)

// Axis is one of the four sequence label axes encoded in image file names.
type Axis string

const (
	AxisTask        Axis = "task"
	AxisActivity    Axis = "activity"
	AxisAcquisition Axis = "acquisition"
	AxisFrame       Axis = "frame"
)

// Axes lists the label axes in the order their tokens appear in file names.
var Axes = [4]Axis{AxisTask, AxisActivity, AxisAcquisition, AxisFrame}

// Info is the dataset-level info block of an annotation file.
type Info struct {
	Description string `json:"description"`
	URL         string `json:"url"`
	Version     string `json:"version"`
	Year        int    `json:"year"`
	Contributor string `json:"contributor"`
	DateCreated string `json:"date_created"`
}

// License is a dataset license entry.
type License struct {
	URL  string `json:"url"`
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Category is an object detection/segmentation category. Keypoint categories
// additionally carry the keypoint names and the skeleton as index pairs into
// the keypoint list.
type Category struct {
	Supercategory string   `json:"supercategory"`
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Keypoints     []string `json:"keypoints,omitempty"`
	Skeleton      [][2]int `json:"skeleton,omitempty"`
}

// SeqCategory is a sequence segmentation category on one of the four axes.
type SeqCategory struct {
	Supercategory Axis   `json:"supercategory"`
	ID            int    `json:"id"`
	Name          string `json:"name"`
}

// Image is a single frame of an image sequence. FileName encodes the four
// sequence labels as the last four dash-separated tokens of its stem.
type Image struct {
	ID       int    `json:"id"`
	FileName string `json:"file_name"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
	License  int    `json:"license,omitempty"`
}

// ObjectAnnotation is a per-image object annotation. Segmentation is kept
// raw since it may be either a polygon list or an RLE dictionary.
type ObjectAnnotation struct {
	ID           int             `json:"id"`
	ImageID      int             `json:"image_id"`
	CategoryID   int             `json:"category_id"`
	Bbox         []float64       `json:"bbox,omitempty"`
	Area         float64         `json:"area,omitempty"`
	Segmentation json.RawMessage `json:"segmentation,omitempty"`
	Keypoints    []float64       `json:"keypoints,omitempty"`
	NumKeypoints int             `json:"num_keypoints,omitempty"`
	IsCrowd      int             `json:"iscrowd"`
}

// Sequence is a maximal run of images sharing one label on one axis.
// ID is the emission order shared across all four axes.
type Sequence struct {
	ID            int `json:"id"`
	FirstFrameID  int `json:"first_frame_id"`
	SeqLength     int `json:"seq_length"`
	SeqCategoryID int `json:"seq_category_id"`
}

// Annotation is a full COCO-style annotation dictionary, extended with
// sequence records and sequence categories.
type Annotation struct {
	Info          Info               `json:"info"`
	Licenses      []License          `json:"licenses"`
	Images        []Image            `json:"images"`
	Annotations   []ObjectAnnotation `json:"annotations"`
	Categories    []Category         `json:"categories"`
	Sequences     []Sequence         `json:"sequences"`
	SeqCategories []SeqCategory      `json:"seq_categories"`
}

// Clone returns a deep copy of the annotation. Empty lists stay empty and
// nil lists stay nil, so a round trip through Clone and Save keeps the `[]`
// entries a COCO file carries.
func (a *Annotation) Clone() *Annotation {
	out := &Annotation{
		Info:          a.Info,
		Licenses:      slices.Clone(a.Licenses),
		Images:        slices.Clone(a.Images),
		Sequences:     slices.Clone(a.Sequences),
		SeqCategories: slices.Clone(a.SeqCategories),
	}
	if a.Annotations != nil {
		out.Annotations = make([]ObjectAnnotation, len(a.Annotations))
		for i, ann := range a.Annotations {
			ann.Bbox = slices.Clone(ann.Bbox)
			ann.Segmentation = slices.Clone(ann.Segmentation)
			ann.Keypoints = slices.Clone(ann.Keypoints)
			out.Annotations[i] = ann
		}
	}
	if a.Categories != nil {
		out.Categories = make([]Category, len(a.Categories))
		for i, cat := range a.Categories {
			cat.Keypoints = slices.Clone(cat.Keypoints)
			cat.Skeleton = slices.Clone(cat.Skeleton)
			out.Categories[i] = cat
		}
	}
	return out
}
