package dataset

// RemoveKeypoints returns a copy of the annotation with keypoints removed
// from every object annotation. Useful for training detectors that do not
// predict landmarks.
func RemoveKeypoints(ann *Annotation) *Annotation {
	out := ann.Clone()
	for i := range out.Annotations {
		out.Annotations[i].Keypoints = nil
	}
	return out
}

// PelvisOnly returns a copy of the annotation reduced to the pelvis
// category, for training a model that segments the hips and detects
// keypoints. A nil registry selects Default().
func PelvisOnly(ann *Annotation, reg *Registry) (*Annotation, error) {
	if reg == nil {
		reg = Default()
	}
	pelvisID, err := reg.CategoryID("pelvis")
	if err != nil {
		return nil, err
	}

	out := ann.Clone()

	annotations := make([]ObjectAnnotation, 0, len(out.Annotations))
	for _, a := range out.Annotations {
		if a.CategoryID == pelvisID {
			annotations = append(annotations, a)
		}
	}

	categories := make([]Category, 0, 1)
	for _, cat := range out.Categories {
		if cat.Name == "pelvis" {
			categories = append(categories, cat)
		}
	}

	out.Annotations = annotations
	out.Categories = categories
	return out, nil
}
