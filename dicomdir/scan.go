// Package dicomdir discovers DICOM files in a directory tree and summarizes
// their image metadata. Files that do not parse as DICOM are skipped, so a
// scan can run over mixed capture directories.
package dicomdir

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cocosip/go-dicom/pkg/dicom/parser"
	"github.com/cocosip/go-dicom/pkg/dicom/tag"
)

// FileInfo summarizes one DICOM file found during a scan.
type FileInfo struct {
	Path                      string
	TransferSyntaxUID         string
	Modality                  string
	PhotometricInterpretation string
	Rows                      uint16
	Columns                   uint16
	BitsStored                uint16
	SamplesPerPixel           uint16
}

// Scan walks root and returns a summary for every file that parses as
// DICOM, in walk order.
func Scan(root string) ([]FileInfo, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat scan root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", root)
	}

	var files []FileInfo
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		result, err := parser.ParseFile(path, parser.WithReadOption(parser.ReadAll))
		if err != nil {
			slog.Debug("skipping non-DICOM file", "path", path, "error", err)
			return nil
		}

		ds := result.Dataset
		fi := FileInfo{
			Path:            path,
			Rows:            ds.TryGetUInt16(tag.Rows, 0),
			Columns:         ds.TryGetUInt16(tag.Columns, 0),
			BitsStored:      ds.TryGetUInt16(tag.BitsStored, 0),
			SamplesPerPixel: ds.TryGetUInt16(tag.SamplesPerPixel, 0),
		}
		if result.TransferSyntax != nil {
			fi.TransferSyntaxUID = result.TransferSyntax.UID().UID()
		}
		if v, ok := ds.GetString(tag.Modality); ok {
			fi.Modality = v
		}
		if v, ok := ds.GetString(tag.PhotometricInterpretation); ok {
			fi.PhotometricInterpretation = v
		}

		files = append(files, fi)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// Paths returns the paths of all valid DICOM files under root, in walk
// order.
func Paths(root string) ([]string, error) {
	files, err := Scan(root)
	if err != nil {
		return nil, err
	}
	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = f.Path
	}
	return paths, nil
}
