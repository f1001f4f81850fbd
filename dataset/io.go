package dataset

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads a COCO-style annotation file from disk.
func Load(path string) (*Annotation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read annotation file: %w", err)
	}
	var ann Annotation
	if err := json.Unmarshal(data, &ann); err != nil {
		return nil, fmt.Errorf("parse annotation file: %w", err)
	}
	return &ann, nil
}

// Save writes the annotation to disk as indented JSON.
func (a *Annotation) Save(path string) error {
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal annotation: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write annotation file: %w", err)
	}
	return nil
}
