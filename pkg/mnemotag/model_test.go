package mnemotag

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mnemolab/mnemotag/pkg/mnemotag/internalerr"
	"github.com/mnemolab/mnemotag/pkg/mnemotag/taxonomy"
)

func TestSaveRequiresTrainedModel(t *testing.T) {
	tagger, err := New(taxonomy.Default(), DefaultConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	path := filepath.Join(t.TempDir(), "model.json")
	if err := tagger.Save(path); !errors.Is(err, internalerr.ErrNotTrained) {
		t.Errorf("expected ErrNotTrained, got %v", err)
	}
}

func TestModelRoundTrip(t *testing.T) {
	tagger := trainedTagger(t)
	path := filepath.Join(t.TempDir(), "model.json")

	if err := tagger.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := LoadModel(path, DefaultConfig())
	if err != nil {
		t.Fatalf("LoadModel: %v", err)
	}
	if !loaded.Trained() {
		t.Fatal("loaded model reports untrained")
	}

	for _, probe := range []string{
		"digital social media platforms",
		"medieval monastic chronicle",
		"",
	} {
		want, err := tagger.Tag(probe)
		if err != nil {
			t.Fatalf("Tag original: %v", err)
		}
		got, err := loaded.Tag(probe)
		if err != nil {
			t.Fatalf("Tag loaded: %v", err)
		}
		assertSamePrediction(t, want, got)
	}
}

func TestLoadModelMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.json")
	if _, err := LoadModel(path, DefaultConfig()); !errors.Is(err, internalerr.ErrModelNotFound) {
		t.Errorf("expected ErrModelNotFound, got %v", err)
	}
}

func TestLoadModelCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	if err := os.WriteFile(path, []byte("not a model"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if _, err := LoadModel(path, DefaultConfig()); !errors.Is(err, internalerr.ErrModelCorrupt) {
		t.Errorf("expected ErrModelCorrupt, got %v", err)
	}
}

func TestLoadModelRejectsWrongVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	if err := os.WriteFile(path, []byte(`{"version": 99}`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if _, err := LoadModel(path, DefaultConfig()); !errors.Is(err, internalerr.ErrModelCorrupt) {
		t.Errorf("expected ErrModelCorrupt, got %v", err)
	}
}

func TestLoadModelRejectsTruncatedState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")

	// Structurally valid JSON with the vectorizer stripped out.
	blob := `{"version": 1, "taxonomy": {"categories": [
		{"id": "time", "name": "Time", "tags": [{"code": "T1"}, {"code": "T2"}]},
		{"id": "discipline", "name": "Discipline", "tags": [{"code": "DHIS"}]},
		{"id": "memory_carrier", "name": "Carrier", "tags": [{"code": "MCME"}]},
		{"id": "concept_tags", "name": "Concepts", "tags": [{"code": "CTCollectiveMemory"}]}
	]}, "forests": {}}`
	if err := os.WriteFile(path, []byte(blob), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if _, err := LoadModel(path, DefaultConfig()); !errors.Is(err, internalerr.ErrModelCorrupt) {
		t.Errorf("expected ErrModelCorrupt, got %v", err)
	}
}

func TestSaveLeavesNoTempFilesBehind(t *testing.T) {
	tagger := trainedTagger(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "model.json")

	if err := tagger.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "model.json" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("expected only model.json, found %v", names)
	}
}
