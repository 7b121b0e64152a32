// Package taxonomy defines the controlled vocabulary of matrix tags: four
// categories (time of publication, discipline, memory carrier, concept tags),
// each with an ordered list of tag codes, human descriptions, and a keyword
// index used by the repair layer.
package taxonomy

import (
	"fmt"

	"github.com/mnemolab/mnemotag/pkg/mnemotag/internalerr"
)

// Category ids. The four main categories must all be present for the
// repair layer to operate.
const (
	Time          = "time"
	Discipline    = "discipline"
	MemoryCarrier = "memory_carrier"
	ConceptTags   = "concept_tags"
)

// MainCategories returns the four main category ids in canonical order.
func MainCategories() []string {
	return []string{Time, Discipline, MemoryCarrier, ConceptTags}
}

// CategoryDef describes one tagging dimension.
//
// The order of Tags is load-bearing: it is the column index into the binary
// label and prediction vectors, so re-ordering tags invalidates any
// previously trained model.
type CategoryDef struct {
	ID           string
	Name         string
	About        string
	Tags         []string
	Descriptions map[string]string
}

// Taxonomy is the normalized tag registry consumed by the feature pipeline,
// the classifier bank, and the repair layer. Immutable after construction.
type Taxonomy struct {
	order    []string
	cats     map[string]CategoryDef
	keywords map[string]map[string][]string
	tagCat   map[string]string // tag code → owning category
}

// KeywordIndex maps category → tag → lowercase trigger phrases. Advisory
// only: the repair layer reads it, training never does.
type KeywordIndex map[string]map[string][]string

// New builds a Taxonomy from category definitions and a keyword index.
// Categories keep the given order. Tag codes must be unique across the whole
// taxonomy and non-empty within each category.
func New(defs []CategoryDef, kw KeywordIndex) (*Taxonomy, error) {
	if len(defs) == 0 {
		return nil, fmt.Errorf("%w: no categories", internalerr.ErrInvalidTaxonomy)
	}

	t := &Taxonomy{
		cats:     make(map[string]CategoryDef, len(defs)),
		keywords: make(map[string]map[string][]string, len(defs)),
		tagCat:   make(map[string]string),
	}

	for _, def := range defs {
		if def.ID == "" {
			return nil, fmt.Errorf("%w: category with empty id", internalerr.ErrInvalidTaxonomy)
		}
		if _, dup := t.cats[def.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate category %q", internalerr.ErrInvalidTaxonomy, def.ID)
		}
		if len(def.Tags) == 0 {
			return nil, fmt.Errorf("%w: category %q has no tags", internalerr.ErrInvalidTaxonomy, def.ID)
		}
		for _, tag := range def.Tags {
			if tag == "" {
				return nil, fmt.Errorf("%w: empty tag code in %q", internalerr.ErrInvalidTaxonomy, def.ID)
			}
			if owner, dup := t.tagCat[tag]; dup {
				return nil, fmt.Errorf("%w: tag %q in both %q and %q",
					internalerr.ErrInvalidTaxonomy, tag, owner, def.ID)
			}
			t.tagCat[tag] = def.ID
		}
		t.order = append(t.order, def.ID)
		t.cats[def.ID] = def
		if byTag, ok := kw[def.ID]; ok {
			t.keywords[def.ID] = byTag
		}
	}

	return t, nil
}

// Categories returns the category ids in registry order.
func (t *Taxonomy) Categories() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Category returns the definition for a category id.
func (t *Taxonomy) Category(id string) (CategoryDef, bool) {
	def, ok := t.cats[id]
	return def, ok
}

// Tags returns the ordered tag list for a category, or nil if the category
// does not exist.
func (t *Taxonomy) Tags(category string) []string {
	def, ok := t.cats[category]
	if !ok {
		return nil
	}
	out := make([]string, len(def.Tags))
	copy(out, def.Tags)
	return out
}

// TagIndex returns the column index of a tag within its category's vectors.
func (t *Taxonomy) TagIndex(category, tag string) (int, bool) {
	def, ok := t.cats[category]
	if !ok {
		return 0, false
	}
	for i, code := range def.Tags {
		if code == tag {
			return i, true
		}
	}
	return 0, false
}

// CategoryOf returns the category owning a tag code. Category membership is
// carried explicitly here so callers never re-derive it from code prefixes.
func (t *Taxonomy) CategoryOf(tag string) (string, bool) {
	cat, ok := t.tagCat[tag]
	return cat, ok
}

// Description returns the human description of a tag, if present.
func (t *Taxonomy) Description(category, tag string) string {
	def, ok := t.cats[category]
	if !ok {
		return ""
	}
	return def.Descriptions[tag]
}

// Keywords returns the trigger phrases for one tag.
func (t *Taxonomy) Keywords(category, tag string) []string {
	byTag, ok := t.keywords[category]
	if !ok {
		return nil
	}
	return byTag[tag]
}

// TotalTags counts tags across all categories.
func (t *Taxonomy) TotalTags() int {
	n := 0
	for _, def := range t.cats {
		n += len(def.Tags)
	}
	return n
}

// HasMainCategories reports whether all four main categories are defined.
func (t *Taxonomy) HasMainCategories() bool {
	for _, id := range MainCategories() {
		if _, ok := t.cats[id]; !ok {
			return false
		}
	}
	return true
}
