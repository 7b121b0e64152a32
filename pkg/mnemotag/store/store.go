// Package store defines persistence for the bibliographic corpus: records
// with their metadata and assigned matrix tags, plus the aggregate queries
// the analytics tooling runs over them.
package store

import "context"

// Record is one bibliographic entry. EntryKey is the citation key from the
// source library and is unique per store; ID is assigned on first insert.
type Record struct {
	ID       string
	EntryKey string
	Title    string
	Author   string
	Year     string
	Journal  string
	Abstract string
	Tags     map[string][]string
}

// Text returns the record's content for feature extraction: title and
// abstract, which is what the classifiers are trained on.
func (r Record) Text() string {
	if r.Abstract == "" {
		return r.Title
	}
	return r.Title + " " + r.Abstract
}

// TagCount is one tag with its usage count across the corpus.
type TagCount struct {
	Tag   string
	Count int
}

// Stats summarizes the stored corpus. Assignments counts individual tag
// assignments, so Assignments/Tagged is the mean tags per tagged record.
type Stats struct {
	Records     int
	Tagged      int
	Untagged    int
	Assignments int
}

// Store persists records and their tag assignments.
type Store interface {
	Close() error

	// UpsertRecord inserts a record or updates the one sharing its entry
	// key, returning the stored record's id.
	UpsertRecord(ctx context.Context, r Record) (string, error)
	GetRecordByKey(ctx context.Context, entryKey string) (Record, bool, error)
	ListRecords(ctx context.Context) ([]Record, error)

	// ListUntagged returns the records with no tags assigned yet.
	ListUntagged(ctx context.Context) ([]Record, error)

	// ReplaceTags overwrites a record's tag assignments.
	ReplaceTags(ctx context.Context, id string, tags map[string][]string) error

	// TagCounts returns usage counts for one category's tags, most used
	// first.
	TagCounts(ctx context.Context, category string) ([]TagCount, error)

	Stats(ctx context.Context) (Stats, error)
}
