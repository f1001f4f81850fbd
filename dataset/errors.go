package dataset

import "errors"

var (
	// ErrCategoryNotFound is returned when a category lookup misses the
	// registry. It signals a malformed file name or registry drift and is
	// not recovered from.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrDuplicateCategory is returned when a registry is built from tables
	// containing a duplicate id or name.
	ErrDuplicateCategory = errors.New("duplicate category")

	// ErrNoImages is returned when sequence reconstruction is attempted on
	// an annotation with an empty image list.
	ErrNoImages = errors.New("annotation has no images")

	// ErrBadFileName is returned when an image file name does not encode
	// the four sequence label tokens.
	ErrBadFileName = errors.New("file name does not encode sequence labels")
)
