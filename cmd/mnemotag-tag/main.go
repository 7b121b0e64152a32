// mnemotag-tag applies a trained model. It tags a single text, a BibTeX or
// JSONL library, or the untagged records of a database, and can write the
// repaired assignments back to the database.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mnemolab/mnemotag/internal/bib"
	"github.com/mnemolab/mnemotag/pkg/mnemotag"
	"github.com/mnemolab/mnemotag/pkg/mnemotag/store/sqlite"
)

func main() {
	var (
		modelPath = flag.String("model", "", "Trained model path (required)")
		text      = flag.String("text", "", "Tag a single text")
		bibPath   = flag.String("bib", "", "Tag every entry of a BibTeX library")
		dataPath  = flag.String("data", "", "Tag every record of a JSONL file")
		dbPath    = flag.String("db", "", "Tag the untagged records of a database")
		analyze   = flag.Bool("analyze", false, "Report keyword evidence and confidence alongside tags")
		write     = flag.Bool("write", false, "With --db: write assignments back to the database")
	)
	flag.Parse()

	if *modelPath == "" {
		log.Fatal("--model required")
	}

	tagger, err := mnemotag.LoadModel(*modelPath, mnemotag.DefaultConfig())
	if err != nil {
		log.Fatalf("load model: %v", err)
	}

	switch {
	case *text != "":
		tagOne(tagger, *text, *analyze)
	case *bibPath != "" || *dataPath != "":
		tagLibrary(tagger, *bibPath, *dataPath)
	case *dbPath != "":
		tagDatabase(tagger, *dbPath, *write)
	default:
		log.Fatal("one of --text, --bib, --data or --db required")
	}
}

func tagOne(tagger *mnemotag.Tagger, text string, analyze bool) {
	if analyze {
		a, err := tagger.Analyze(text)
		if err != nil {
			log.Fatalf("analyze: %v", err)
		}
		printJSON(a)
		return
	}

	tags, err := tagger.Tag(text)
	if err != nil {
		log.Fatalf("tag: %v", err)
	}
	printJSON(tags)
}

type taggedRecord struct {
	EntryKey string              `json:"entry_key"`
	Title    string              `json:"title"`
	Tags     map[string][]string `json:"tags"`
}

func tagLibrary(tagger *mnemotag.Tagger, bibPath, dataPath string) {
	var (
		records []bib.Record
		err     error
	)
	if bibPath != "" {
		records, err = bib.ParseFile(bibPath)
	} else {
		records, err = bib.LoadJSONL(dataPath)
	}
	if err != nil {
		log.Fatalf("load records: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	for _, rec := range records {
		tags, err := tagger.Tag(rec.Text())
		if err != nil {
			log.Fatalf("tag %s: %v", rec.EntryKey, err)
		}
		if err := enc.Encode(taggedRecord{
			EntryKey: rec.EntryKey,
			Title:    rec.Title,
			Tags:     tags,
		}); err != nil {
			log.Fatalf("encode %s: %v", rec.EntryKey, err)
		}
	}
}

func tagDatabase(tagger *mnemotag.Tagger, dbPath string, write bool) {
	ctx := context.Background()

	st, err := sqlite.Open(ctx, dbPath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer st.Close()

	records, err := st.ListUntagged(ctx)
	if err != nil {
		log.Fatalf("list untagged: %v", err)
	}
	log.Printf("Tagging %d untagged records", len(records))

	enc := json.NewEncoder(os.Stdout)
	for _, rec := range records {
		tags, err := tagger.Tag(rec.Text())
		if err != nil {
			log.Fatalf("tag %s: %v", rec.EntryKey, err)
		}

		if write {
			if err := st.ReplaceTags(ctx, rec.ID, tags); err != nil {
				log.Printf("Failed to store tags for %s: %v", rec.EntryKey, err)
				continue
			}
		}
		if err := enc.Encode(taggedRecord{
			EntryKey: rec.EntryKey,
			Title:    rec.Title,
			Tags:     tags,
		}); err != nil {
			log.Fatalf("encode %s: %v", rec.EntryKey, err)
		}
	}
	if write {
		log.Printf("Wrote assignments for %d records", len(records))
	}
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("marshal: %v", err)
	}
	fmt.Println(string(out))
}
