package taxonomy

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the serializable form of a taxonomy. It is both the on-disk YAML
// format for taxonomy overrides and the shape embedded in persisted models.
// Legacy list-only category definitions are not supported: every category
// carries its metadata here, normalized once at load time.
type File struct {
	Categories []CategoryFile `yaml:"categories" json:"categories"`
}

// CategoryFile is one category definition in a taxonomy file.
type CategoryFile struct {
	ID    string    `yaml:"id" json:"id"`
	Name  string    `yaml:"name" json:"name"`
	About string    `yaml:"about,omitempty" json:"about,omitempty"`
	Tags  []TagFile `yaml:"tags" json:"tags"`
}

// TagFile is one tag definition in a taxonomy file.
type TagFile struct {
	Code        string   `yaml:"code" json:"code"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Keywords    []string `yaml:"keywords,omitempty" json:"keywords,omitempty"`
}

// Load reads a taxonomy from a YAML file.
func Load(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read taxonomy %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse taxonomy %s: %w", path, err)
	}

	return FromFile(f)
}

// FromFile normalizes a serialized taxonomy into a Taxonomy value.
func FromFile(f File) (*Taxonomy, error) {
	defs := make([]CategoryDef, 0, len(f.Categories))
	kw := make(KeywordIndex, len(f.Categories))

	for _, cat := range f.Categories {
		def := CategoryDef{
			ID:           cat.ID,
			Name:         cat.Name,
			About:        cat.About,
			Tags:         make([]string, 0, len(cat.Tags)),
			Descriptions: make(map[string]string, len(cat.Tags)),
		}
		byTag := make(map[string][]string)
		for _, tag := range cat.Tags {
			def.Tags = append(def.Tags, tag.Code)
			if tag.Description != "" {
				def.Descriptions[tag.Code] = tag.Description
			}
			if len(tag.Keywords) > 0 {
				byTag[tag.Code] = tag.Keywords
			}
		}
		defs = append(defs, def)
		if len(byTag) > 0 {
			kw[cat.ID] = byTag
		}
	}

	return New(defs, kw)
}

// Snapshot serializes the taxonomy, preserving category and tag order.
func (t *Taxonomy) Snapshot() File {
	f := File{Categories: make([]CategoryFile, 0, len(t.order))}
	for _, id := range t.order {
		def := t.cats[id]
		cat := CategoryFile{
			ID:    def.ID,
			Name:  def.Name,
			About: def.About,
			Tags:  make([]TagFile, 0, len(def.Tags)),
		}
		for _, code := range def.Tags {
			cat.Tags = append(cat.Tags, TagFile{
				Code:        code,
				Description: def.Descriptions[code],
				Keywords:    t.Keywords(id, code),
			})
		}
		f.Categories = append(f.Categories, cat)
	}
	return f
}
