package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/mnemolab/mnemotag/pkg/mnemotag/store"
	"github.com/mnemolab/mnemotag/pkg/mnemotag/taxonomy"
)

func openStore(t *testing.T) store.Store {
	t.Helper()
	ctx := context.Background()
	st, err := Open(ctx, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func TestUpsertAndGetRecord(t *testing.T) {
	ctx := context.Background()
	st := openStore(t)

	rec := store.Record{
		EntryKey: "halbwachs1950",
		Title:    "The Collective Memory",
		Author:   "Halbwachs, Maurice",
		Year:     "1950",
		Journal:  "",
		Abstract: "Foundational account of memory as a social phenomenon.",
		Tags: map[string][]string{
			taxonomy.Time:          {"T3"},
			taxonomy.Discipline:    {"DSOC"},
			taxonomy.MemoryCarrier: {"MCLI"},
			taxonomy.ConceptTags:   {"CTCollectiveMemory", "CTSocialFrameworks"},
		},
	}

	id, err := st.UpsertRecord(ctx, rec)
	if err != nil {
		t.Fatalf("UpsertRecord: %v", err)
	}
	if id == "" {
		t.Fatal("expected a generated id")
	}

	got, found, err := st.GetRecordByKey(ctx, "halbwachs1950")
	if err != nil {
		t.Fatalf("GetRecordByKey: %v", err)
	}
	if !found {
		t.Fatal("record should be found")
	}
	if got.ID != id {
		t.Errorf("id mismatch: got %q, want %q", got.ID, id)
	}
	if got.Title != rec.Title {
		t.Errorf("title mismatch: got %q, want %q", got.Title, rec.Title)
	}
	if len(got.Tags[taxonomy.ConceptTags]) != 2 {
		t.Errorf("expected 2 concept tags, got %v", got.Tags[taxonomy.ConceptTags])
	}
	if got.Tags[taxonomy.ConceptTags][0] != "CTCollectiveMemory" {
		t.Errorf("tag order not preserved: %v", got.Tags[taxonomy.ConceptTags])
	}
}

func TestUpsertKeepsIDStable(t *testing.T) {
	ctx := context.Background()
	st := openStore(t)

	first, err := st.UpsertRecord(ctx, store.Record{EntryKey: "assmann2011", Title: "Cultural Memory"})
	if err != nil {
		t.Fatalf("UpsertRecord: %v", err)
	}

	second, err := st.UpsertRecord(ctx, store.Record{EntryKey: "assmann2011", Title: "Cultural Memory and Early Civilization"})
	if err != nil {
		t.Fatalf("UpsertRecord update: %v", err)
	}
	if first != second {
		t.Errorf("upsert changed the id: %q vs %q", first, second)
	}

	got, _, err := st.GetRecordByKey(ctx, "assmann2011")
	if err != nil {
		t.Fatalf("GetRecordByKey: %v", err)
	}
	if got.Title != "Cultural Memory and Early Civilization" {
		t.Errorf("update not applied: %q", got.Title)
	}
}

func TestReplaceTagsAndUntagged(t *testing.T) {
	ctx := context.Background()
	st := openStore(t)

	id, err := st.UpsertRecord(ctx, store.Record{EntryKey: "nora1989", Title: "Between Memory and History"})
	if err != nil {
		t.Fatalf("UpsertRecord: %v", err)
	}

	untagged, err := st.ListUntagged(ctx)
	if err != nil {
		t.Fatalf("ListUntagged: %v", err)
	}
	if len(untagged) != 1 || untagged[0].EntryKey != "nora1989" {
		t.Fatalf("expected nora1989 untagged, got %v", untagged)
	}

	tags := map[string][]string{
		taxonomy.Time:        {"T3"},
		taxonomy.ConceptTags: {"CTRealmsOfMemory"},
	}
	if err := st.ReplaceTags(ctx, id, tags); err != nil {
		t.Fatalf("ReplaceTags: %v", err)
	}

	untagged, err = st.ListUntagged(ctx)
	if err != nil {
		t.Fatalf("ListUntagged: %v", err)
	}
	if len(untagged) != 0 {
		t.Errorf("expected no untagged records, got %v", untagged)
	}

	// replacing again drops the old assignment entirely
	if err := st.ReplaceTags(ctx, id, map[string][]string{taxonomy.Time: {"T4"}}); err != nil {
		t.Fatalf("ReplaceTags again: %v", err)
	}
	got, _, err := st.GetRecordByKey(ctx, "nora1989")
	if err != nil {
		t.Fatalf("GetRecordByKey: %v", err)
	}
	if len(got.Tags) != 1 || got.Tags[taxonomy.Time][0] != "T4" {
		t.Errorf("stale tags survived replacement: %v", got.Tags)
	}
}

func TestTagCountsAndStats(t *testing.T) {
	ctx := context.Background()
	st := openStore(t)

	entries := []store.Record{
		{EntryKey: "a", Title: "A", Tags: map[string][]string{taxonomy.Time: {"T4"}}},
		{EntryKey: "b", Title: "B", Tags: map[string][]string{taxonomy.Time: {"T4"}}},
		{EntryKey: "c", Title: "C", Tags: map[string][]string{taxonomy.Time: {"T5"}}},
		{EntryKey: "d", Title: "D"},
	}
	for _, rec := range entries {
		if _, err := st.UpsertRecord(ctx, rec); err != nil {
			t.Fatalf("UpsertRecord %s: %v", rec.EntryKey, err)
		}
	}

	counts, err := st.TagCounts(ctx, taxonomy.Time)
	if err != nil {
		t.Fatalf("TagCounts: %v", err)
	}
	if len(counts) != 2 {
		t.Fatalf("expected 2 distinct time tags, got %v", counts)
	}
	if counts[0].Tag != "T4" || counts[0].Count != 2 {
		t.Errorf("most used first: got %v", counts[0])
	}

	stats, err := st.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Records != 4 || stats.Tagged != 3 || stats.Untagged != 1 || stats.Assignments != 3 {
		t.Errorf("stats mismatch: %+v", stats)
	}
}

func TestListRecordsOrdered(t *testing.T) {
	ctx := context.Background()
	st := openStore(t)

	for _, key := range []string{"zerubavel1996", "assmann2011", "nora1989"} {
		if _, err := st.UpsertRecord(ctx, store.Record{EntryKey: key, Title: key}); err != nil {
			t.Fatalf("UpsertRecord %s: %v", key, err)
		}
	}

	records, err := st.ListRecords(ctx)
	if err != nil {
		t.Fatalf("ListRecords: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	for i, want := range []string{"assmann2011", "nora1989", "zerubavel1996"} {
		if records[i].EntryKey != want {
			t.Errorf("record %d: got %q, want %q", i, records[i].EntryKey, want)
		}
	}
}
