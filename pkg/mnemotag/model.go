package mnemotag

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mnemolab/mnemotag/pkg/mnemotag/feature"
	"github.com/mnemolab/mnemotag/pkg/mnemotag/forest"
	"github.com/mnemolab/mnemotag/pkg/mnemotag/internalerr"
	"github.com/mnemolab/mnemotag/pkg/mnemotag/taxonomy"
)

// modelVersion guards the persisted layout. Bump on incompatible changes.
const modelVersion = 1

// modelFile is the on-disk shape of a trained model. It embeds the taxonomy
// snapshot so a loaded model never depends on the code's built-in taxonomy
// matching the one it was trained against.
type modelFile struct {
	Version    int                           `json:"version"`
	Taxonomy   taxonomy.File                 `json:"taxonomy"`
	Vectorizer *feature.Vectorizer           `json:"vectorizer"`
	Forests    map[string]*forest.MultiLabel `json:"forests"`
	Degenerate []string                      `json:"degenerate,omitempty"`
}

// Save writes the trained model to path. The write goes through a temp file
// in the same directory followed by a rename, so a crash mid-write never
// leaves a truncated model behind.
func (t *Tagger) Save(path string) error {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.vectorizer == nil {
		return internalerr.ErrNotTrained
	}

	mf := modelFile{
		Version:    modelVersion,
		Taxonomy:   t.tax.Snapshot(),
		Vectorizer: t.vectorizer,
		Forests:    t.forests,
		Degenerate: t.degenerate,
	}
	data, err := json.Marshal(mf)
	if err != nil {
		return fmt.Errorf("encode model: %w", err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp model file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write model: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close model file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("install model file: %w", err)
	}
	return nil
}

// LoadModel reads a trained model from path and rebuilds a ready Tagger
// around it, using the taxonomy embedded in the file. cfg supplies the
// runtime tunables (confidence threshold, repair policy); the persisted
// vectorizer and forests override any training hyperparameters in cfg.
func LoadModel(path string, cfg Config) (*Tagger, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", internalerr.ErrModelNotFound, path)
		}
		return nil, fmt.Errorf("read model %s: %w", path, err)
	}

	var mf modelFile
	if err := json.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("%w: %v", internalerr.ErrModelCorrupt, err)
	}
	if mf.Version != modelVersion {
		return nil, fmt.Errorf("%w: unsupported model version %d", internalerr.ErrModelCorrupt, mf.Version)
	}

	tax, err := taxonomy.FromFile(mf.Taxonomy)
	if err != nil {
		return nil, fmt.Errorf("%w: embedded taxonomy: %v", internalerr.ErrModelCorrupt, err)
	}
	if err := validateModel(&mf, tax); err != nil {
		return nil, err
	}

	t, err := New(tax, cfg)
	if err != nil {
		return nil, err
	}
	t.vectorizer = mf.Vectorizer
	t.forests = mf.Forests
	t.degenerate = mf.Degenerate
	return t, nil
}

// validateModel checks the structural contract between the persisted pieces:
// the vectorizer must be complete and every forest must be column-aligned
// with its category's tag order.
func validateModel(mf *modelFile, tax *taxonomy.Taxonomy) error {
	v := mf.Vectorizer
	if v == nil {
		return fmt.Errorf("%w: missing vectorizer", internalerr.ErrModelCorrupt)
	}
	if len(v.Vocab) == 0 || len(v.Vocab) != len(v.IDF) {
		return fmt.Errorf("%w: vectorizer vocabulary and idf disagree (%d terms, %d weights)",
			internalerr.ErrModelCorrupt, len(v.Vocab), len(v.IDF))
	}

	for cat, ml := range mf.Forests {
		order := tax.Tags(cat)
		if order == nil {
			return fmt.Errorf("%w: forest for unknown category %q", internalerr.ErrModelCorrupt, cat)
		}
		if ml == nil || len(ml.Labels) != len(order) {
			return fmt.Errorf("%w: category %s has %d label forests for %d tags",
				internalerr.ErrModelCorrupt, cat, labelCount(ml), len(order))
		}
		for j, f := range ml.Labels {
			if f == nil || (f.Constant == nil && len(f.Trees) == 0) {
				return fmt.Errorf("%w: category %s tag %s has an empty forest",
					internalerr.ErrModelCorrupt, cat, order[j])
			}
		}
	}
	return nil
}

func labelCount(ml *forest.MultiLabel) int {
	if ml == nil {
		return 0
	}
	return len(ml.Labels)
}
