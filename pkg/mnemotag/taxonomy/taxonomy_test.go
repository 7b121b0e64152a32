package taxonomy

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	tax := Default()

	if !tax.HasMainCategories() {
		t.Fatal("default taxonomy must define all four main categories")
	}

	if got := tax.Categories(); len(got) != 4 {
		t.Fatalf("expected 4 categories, got %d", len(got))
	}

	if n := tax.TotalTags(); n < 3 {
		t.Fatalf("default taxonomy must carry at least 3 tags, got %d", n)
	}
}

func TestDefaultTagOrderStable(t *testing.T) {
	a := Default()
	b := Default()

	for _, cat := range a.Categories() {
		ta, tb := a.Tags(cat), b.Tags(cat)
		if len(ta) != len(tb) {
			t.Fatalf("%s: tag count differs between constructions", cat)
		}
		for i := range ta {
			if ta[i] != tb[i] {
				t.Errorf("%s: tag order differs at %d: %q vs %q", cat, i, ta[i], tb[i])
			}
		}
	}
}

func TestTimeTagsOrderedOldestToNewest(t *testing.T) {
	tags := Default().Tags(Time)
	want := []string{"T1", "T2", "T3", "T4", "T5"}

	if len(tags) != len(want) {
		t.Fatalf("expected %d time tags, got %d", len(want), len(tags))
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Errorf("time tag %d: got %q, want %q", i, tags[i], want[i])
		}
	}
}

func TestTagIndexMatchesOrder(t *testing.T) {
	tax := Default()

	for _, cat := range tax.Categories() {
		for i, tag := range tax.Tags(cat) {
			idx, ok := tax.TagIndex(cat, tag)
			if !ok {
				t.Fatalf("TagIndex(%s, %s) not found", cat, tag)
			}
			if idx != i {
				t.Errorf("TagIndex(%s, %s) = %d, want %d", cat, tag, idx, i)
			}
		}
	}
}

func TestCategoryOf(t *testing.T) {
	tax := Default()

	cases := []struct {
		tag  string
		want string
	}{
		{"T3", Time},
		{"DHIS", Discipline},
		{"MCT", MemoryCarrier},
		{"CTCollectiveMemory", ConceptTags},
	}
	for _, c := range cases {
		got, ok := tax.CategoryOf(c.tag)
		if !ok {
			t.Errorf("CategoryOf(%s): not found", c.tag)
			continue
		}
		if got != c.want {
			t.Errorf("CategoryOf(%s) = %s, want %s", c.tag, got, c.want)
		}
	}

	if _, ok := tax.CategoryOf("NOTATAG"); ok {
		t.Error("CategoryOf should reject unknown codes")
	}
}

func TestKeywordsLowercase(t *testing.T) {
	tax := Default()

	for _, cat := range tax.Categories() {
		for _, tag := range tax.Tags(cat) {
			for _, kw := range tax.Keywords(cat, tag) {
				for _, r := range kw {
					if r >= 'A' && r <= 'Z' {
						t.Errorf("%s/%s keyword %q is not lowercase", cat, tag, kw)
					}
				}
			}
		}
	}
}

func TestNewRejectsDuplicateTags(t *testing.T) {
	defs := []CategoryDef{
		{ID: "a", Name: "A", Tags: []string{"X1", "X1"}},
	}
	if _, err := New(defs, nil); err == nil {
		t.Fatal("expected error for duplicate tag codes")
	}

	defs = []CategoryDef{
		{ID: "a", Name: "A", Tags: []string{"X1"}},
		{ID: "b", Name: "B", Tags: []string{"X1"}},
	}
	if _, err := New(defs, nil); err == nil {
		t.Fatal("expected error for tag shared across categories")
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	tax := Default()

	back, err := FromFile(tax.Snapshot())
	if err != nil {
		t.Fatalf("FromFile: %v", err)
	}

	for _, cat := range tax.Categories() {
		a, b := tax.Tags(cat), back.Tags(cat)
		if len(a) != len(b) {
			t.Fatalf("%s: tag count changed through snapshot", cat)
		}
		for i := range a {
			if a[i] != b[i] {
				t.Errorf("%s: tag %d changed: %q vs %q", cat, i, a[i], b[i])
			}
		}
	}

	if got := back.Description(ConceptTags, "CTLongueDuree"); got != "Longue Durée" {
		t.Errorf("description lost through snapshot: %q", got)
	}
	if kws := back.Keywords(MemoryCarrier, "MCT"); len(kws) == 0 {
		t.Error("keywords lost through snapshot")
	}
}

func TestLoadYAML(t *testing.T) {
	yamlDoc := `
categories:
  - id: time
    name: Time of Publication
    tags:
      - code: T1
        description: early
      - code: T2
        description: late
        keywords: [recent, modern]
  - id: discipline
    name: Discipline
    tags:
      - code: DX
        keywords: [example]
`
	path := filepath.Join(t.TempDir(), "tax.yaml")
	if err := os.WriteFile(path, []byte(yamlDoc), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	tax, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := tax.Tags(Time); len(got) != 2 || got[1] != "T2" {
		t.Fatalf("unexpected time tags: %v", got)
	}
	if kws := tax.Keywords(Time, "T2"); len(kws) != 2 || kws[0] != "recent" {
		t.Errorf("unexpected keywords: %v", kws)
	}
	if desc := tax.Description(Time, "T1"); desc != "early" {
		t.Errorf("unexpected description: %q", desc)
	}
}
