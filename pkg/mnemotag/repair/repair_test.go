package repair

import (
	"testing"

	"github.com/mnemolab/mnemotag/pkg/mnemotag/taxonomy"
)

func newRepairer(t *testing.T) *Repairer {
	t.Helper()
	r, err := New(taxonomy.Default())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r
}

func checkInvariants(t *testing.T, pred map[string][]string) {
	t.Helper()

	if got := len(pred[taxonomy.Time]); got != 1 {
		t.Errorf("time must have exactly 1 tag, got %v", pred[taxonomy.Time])
	}
	if got := len(pred[taxonomy.MemoryCarrier]); got != 1 {
		t.Errorf("memory_carrier must have exactly 1 tag, got %v", pred[taxonomy.MemoryCarrier])
	}
	for _, cat := range taxonomy.MainCategories() {
		if len(pred[cat]) == 0 {
			t.Errorf("category %s must have at least 1 tag", cat)
		}
	}
	total := 0
	for _, tags := range pred {
		total += len(tags)
	}
	if total < 3 {
		t.Errorf("total tags must be >= 3, got %d", total)
	}
}

func TestTimeExclusivityPrefersNewest(t *testing.T) {
	r := newRepairer(t)

	pred := r.Apply(map[string][]string{
		taxonomy.Time:        {"T2", "T5", "T3"},
		taxonomy.Discipline:  {"DHIS"},
		taxonomy.ConceptTags: {"CTTrauma"},
	}, "some text")

	if len(pred[taxonomy.Time]) != 1 || pred[taxonomy.Time][0] != "T5" {
		t.Errorf("expected newest period T5 to win, got %v", pred[taxonomy.Time])
	}
}

func TestCarrierExclusivityByKeywordScore(t *testing.T) {
	r := newRepairer(t)

	// Text is saturated with film vocabulary and has no monument vocabulary.
	text := "Cinema and film as vehicles of remembrance: the cinematic movie archive"
	pred := r.Apply(map[string][]string{
		taxonomy.MemoryCarrier: {"MCMO", "MCFI"},
		taxonomy.Time:          {"T4"},
		taxonomy.Discipline:    {"DMED"},
		taxonomy.ConceptTags:   {"CTCommemoration"},
	}, text)

	if got := pred[taxonomy.MemoryCarrier]; len(got) != 1 || got[0] != "MCFI" {
		t.Errorf("expected film carrier to win on keyword score, got %v", got)
	}
}

func TestMultiValuedCategoriesNotCollapsed(t *testing.T) {
	r := newRepairer(t)

	pred := r.Apply(map[string][]string{
		taxonomy.Time:          {"T4"},
		taxonomy.MemoryCarrier: {"MCMU"},
		taxonomy.Discipline:    {"DHIS", "DSOC", "DANT"},
		taxonomy.ConceptTags:   {"CTTrauma", "CTHeritage"},
	}, "text")

	if len(pred[taxonomy.Discipline]) != 3 {
		t.Errorf("discipline should stay multi-valued, got %v", pred[taxonomy.Discipline])
	}
	if len(pred[taxonomy.ConceptTags]) != 2 {
		t.Errorf("concept tags should stay multi-valued, got %v", pred[taxonomy.ConceptTags])
	}
}

func TestEmptyTextFallsBackToDefaults(t *testing.T) {
	r := newRepairer(t)

	pred := r.Apply(map[string][]string{}, "")
	checkInvariants(t, pred)

	d := DefaultDefaults()
	if pred[taxonomy.Time][0] != d.Time {
		t.Errorf("time default: got %v, want %s", pred[taxonomy.Time], d.Time)
	}
	if pred[taxonomy.MemoryCarrier][0] != d.MemoryCarrier {
		t.Errorf("carrier default: got %v, want %s", pred[taxonomy.MemoryCarrier], d.MemoryCarrier)
	}
	if pred[taxonomy.Discipline][0] != d.Discipline {
		t.Errorf("discipline default: got %v, want %s", pred[taxonomy.Discipline], d.Discipline)
	}
	if pred[taxonomy.ConceptTags][0] != d.Concept {
		t.Errorf("concept default: got %v, want %s", pred[taxonomy.ConceptTags], d.Concept)
	}
}

func TestConfigurableDefaults(t *testing.T) {
	tax := taxonomy.Default()
	r, err := New(tax, WithDefaults(Defaults{
		Time:          "T5",
		Discipline:    "DSOC",
		MemoryCarrier: "MCMU",
		Concept:       "CTCulturalMemory",
	}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	pred := r.Apply(map[string][]string{}, "")
	if pred[taxonomy.Time][0] != "T5" {
		t.Errorf("override ignored: %v", pred[taxonomy.Time])
	}
	if pred[taxonomy.MemoryCarrier][0] != "MCMU" {
		t.Errorf("override ignored: %v", pred[taxonomy.MemoryCarrier])
	}
}

func TestCollectiveMemoryKeywordEnhancement(t *testing.T) {
	r := newRepairer(t)

	pred := r.Apply(map[string][]string{},
		"An inquiry concerning collective memory")
	checkInvariants(t, pred)

	found := false
	for _, tag := range pred[taxonomy.ConceptTags] {
		if tag == "CTCollectiveMemory" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected CTCollectiveMemory from keyword enhancement, got %v", pred[taxonomy.ConceptTags])
	}
}

func TestShortKeywordWordBoundary(t *testing.T) {
	r := newRepairer(t)

	// "art" (3 chars) must not fire inside "particle" or "Descartes".
	if r.matches("particle physics and descartes", "art") {
		t.Error("short keyword matched inside longer words")
	}
	if !r.matches("public art and memory", "art") {
		t.Error("short keyword failed to match as standalone word")
	}
	// longer phrases match by containment
	if !r.matches("studies of collective memory formation", "collective memory") {
		t.Error("long phrase failed containment match")
	}
}

func TestEnhancementRespectsBoundaryRule(t *testing.T) {
	r := newRepairer(t)

	// "art" appears only inside "hardware", so the art carrier must not
	// fire; "display" legitimately argues for the museum carrier.
	pred := r.Apply(map[string][]string{}, "hdtv-ready display hardware")
	checkInvariants(t, pred)

	if got := pred[taxonomy.MemoryCarrier]; got[0] != "MCMU" {
		t.Errorf("expected museum carrier from display keyword, got %v", got)
	}
	for _, tag := range pred[taxonomy.MemoryCarrier] {
		if tag == "MCAR" {
			t.Error("art carrier fired inside an unrelated word")
		}
	}
}

func TestThreeTagFloor(t *testing.T) {
	r := newRepairer(t)

	// One raw tag, text with no keyword evidence: defaults plus padding
	// must reach the floor.
	pred := r.Apply(map[string][]string{
		taxonomy.Discipline: {"DNEU"},
	}, "zzzz qqqq xxxx")
	checkInvariants(t, pred)
}

func TestBoostTagsFire(t *testing.T) {
	r := newRepairer(t)

	pred := r.Apply(map[string][]string{}, "a historical study of society")
	checkInvariants(t, pred)

	hasDHIS := false
	for _, tag := range pred[taxonomy.Discipline] {
		if tag == "DHIS" {
			hasDHIS = true
		}
	}
	if !hasDHIS {
		t.Errorf("history boost should add DHIS, got %v", pred[taxonomy.Discipline])
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	r := newRepairer(t)

	raw := map[string][]string{taxonomy.Time: {"T1", "T5"}}
	r.Apply(raw, "text")

	if len(raw[taxonomy.Time]) != 2 {
		t.Errorf("input map mutated: %v", raw[taxonomy.Time])
	}
}

func TestNewRejectsTaxonomyWithoutMainCategories(t *testing.T) {
	tax, err := taxonomy.New([]taxonomy.CategoryDef{
		{ID: "time", Name: "Time", Tags: []string{"T1", "T2", "T3"}},
	}, nil)
	if err != nil {
		t.Fatalf("taxonomy.New: %v", err)
	}

	if _, err := New(tax); err == nil {
		t.Fatal("expected error for taxonomy missing main categories")
	}
}

func TestKeywordMatchesDiagnostics(t *testing.T) {
	r := newRepairer(t)

	found := r.KeywordMatches("Museums and the politics of collective memory")

	var sawMuseum, sawCollective bool
	for _, m := range found[taxonomy.MemoryCarrier] {
		if m.Tag == "MCMU" && m.Keyword == "museum" {
			sawMuseum = true
		}
	}
	for _, m := range found[taxonomy.ConceptTags] {
		if m.Tag == "CTCollectiveMemory" && m.Keyword == "collective memory" {
			sawCollective = true
		}
	}
	if !sawMuseum {
		t.Errorf("expected museum match, got %v", found[taxonomy.MemoryCarrier])
	}
	if !sawCollective {
		t.Errorf("expected collective memory match, got %v", found[taxonomy.ConceptTags])
	}
}

func TestRepairIsIdempotentOnItsOwnOutput(t *testing.T) {
	r := newRepairer(t)

	text := "Monuments and national commemoration after 1989"
	first := r.Apply(map[string][]string{}, text)
	second := r.Apply(first, text)

	for _, cat := range taxonomy.MainCategories() {
		a, b := first[cat], second[cat]
		if len(a) != len(b) {
			t.Fatalf("%s: repair not stable: %v vs %v", cat, a, b)
		}
		for i := range a {
			if a[i] != b[i] {
				t.Errorf("%s: tag %d changed: %q vs %q", cat, i, a[i], b[i])
			}
		}
	}
}
