package dataset

import "fmt"

type seqKey struct {
	axis Axis
	name string
}

// Registry is an immutable lookup table over object categories and sequence
// categories. Build one with NewRegistry, or use Default for the perphix
// tables. A Registry is safe for concurrent use once built.
type Registry struct {
	categories    []Category
	seqCategories []SeqCategory

	categoryByName map[string]Category
	categoryByID   map[int]Category
	seqByKey       map[seqKey]SeqCategory
	seqByID        map[int]SeqCategory
}

// NewRegistry builds a registry from category and sequence-category tables.
// Sequence categories are keyed by (axis, name) because names repeat across
// axes (e.g. teardrop_left is both a task and an acquisition).
func NewRegistry(categories []Category, seqCategories []SeqCategory) (*Registry, error) {
	r := &Registry{
		categories:     append([]Category(nil), categories...),
		seqCategories:  append([]SeqCategory(nil), seqCategories...),
		categoryByName: make(map[string]Category, len(categories)),
		categoryByID:   make(map[int]Category, len(categories)),
		seqByKey:       make(map[seqKey]SeqCategory, len(seqCategories)),
		seqByID:        make(map[int]SeqCategory, len(seqCategories)),
	}

	for _, cat := range r.categories {
		if _, ok := r.categoryByName[cat.Name]; ok {
			return nil, fmt.Errorf("%w: name %q", ErrDuplicateCategory, cat.Name)
		}
		if _, ok := r.categoryByID[cat.ID]; ok {
			return nil, fmt.Errorf("%w: id %d", ErrDuplicateCategory, cat.ID)
		}
		r.categoryByName[cat.Name] = cat
		r.categoryByID[cat.ID] = cat
	}

	for _, seq := range r.seqCategories {
		key := seqKey{axis: seq.Supercategory, name: seq.Name}
		if _, ok := r.seqByKey[key]; ok {
			return nil, fmt.Errorf("%w: %s/%s", ErrDuplicateCategory, seq.Supercategory, seq.Name)
		}
		if _, ok := r.seqByID[seq.ID]; ok {
			return nil, fmt.Errorf("%w: sequence id %d", ErrDuplicateCategory, seq.ID)
		}
		r.seqByKey[key] = seq
		r.seqByID[seq.ID] = seq
	}

	return r, nil
}

var defaultRegistry = mustNewRegistry(DefaultCategories(), DefaultSeqCategories())

func mustNewRegistry(categories []Category, seqCategories []SeqCategory) *Registry {
	r, err := NewRegistry(categories, seqCategories)
	if err != nil {
		panic(err)
	}
	return r
}

// Default returns the registry built from the perphix category tables.
func Default() *Registry {
	return defaultRegistry
}

// CategoryID returns the id of the object category with the given name.
func (r *Registry) CategoryID(name string) (int, error) {
	cat, ok := r.categoryByName[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrCategoryNotFound, name)
	}
	return cat.ID, nil
}

// Category returns the object category with the given id.
func (r *Registry) Category(id int) (Category, error) {
	cat, ok := r.categoryByID[id]
	if !ok {
		return Category{}, fmt.Errorf("%w: id %d", ErrCategoryNotFound, id)
	}
	return cat, nil
}

// SequenceCategoryID returns the id of the sequence category with the given
// name on the given axis.
func (r *Registry) SequenceCategoryID(axis Axis, name string) (int, error) {
	seq, ok := r.seqByKey[seqKey{axis: axis, name: name}]
	if !ok {
		return 0, fmt.Errorf("%w: %s/%s", ErrCategoryNotFound, axis, name)
	}
	return seq.ID, nil
}

// SequenceCategory returns the sequence category with the given id.
func (r *Registry) SequenceCategory(id int) (SeqCategory, error) {
	seq, ok := r.seqByID[id]
	if !ok {
		return SeqCategory{}, fmt.Errorf("%w: sequence id %d", ErrCategoryNotFound, id)
	}
	return seq, nil
}

// Categories returns a copy of the object category table.
func (r *Registry) Categories() []Category {
	return append([]Category(nil), r.categories...)
}

// SeqCategories returns a copy of the sequence category table.
func (r *Registry) SeqCategories() []SeqCategory {
	return append([]SeqCategory(nil), r.seqCategories...)
}
