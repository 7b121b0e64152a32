// mnemotag-train fits a tagging model on an annotated bibliography and
// writes it to disk. Training examples are the entries whose keyword field
// already carries matrix tags; optionally the corpus is mirrored into a
// record database for the other tools.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/mnemolab/mnemotag/internal/bib"
	"github.com/mnemolab/mnemotag/pkg/mnemotag"
	"github.com/mnemolab/mnemotag/pkg/mnemotag/store"
	"github.com/mnemolab/mnemotag/pkg/mnemotag/store/sqlite"
	"github.com/mnemolab/mnemotag/pkg/mnemotag/taxonomy"
)

func main() {
	var (
		bibPath      = flag.String("bib", "", "Input BibTeX library")
		dataPath     = flag.String("data", "", "Input JSONL file")
		modelPath    = flag.String("model", "", "Output model path (required)")
		taxonomyPath = flag.String("taxonomy", "", "Taxonomy YAML file (optional, built-in by default)")
		dbPath       = flag.String("db", "", "Optional: record database to mirror the corpus into")
	)
	flag.Parse()

	if *modelPath == "" {
		log.Fatal("--model required")
	}
	if (*bibPath == "") == (*dataPath == "") {
		log.Fatal("exactly one of --bib or --data required")
	}

	tax := taxonomy.Default()
	if *taxonomyPath != "" {
		var err error
		tax, err = taxonomy.Load(*taxonomyPath)
		if err != nil {
			log.Fatalf("load taxonomy: %v", err)
		}
	}

	var (
		records []bib.Record
		err     error
	)
	if *bibPath != "" {
		records, err = bib.ParseFile(*bibPath)
	} else {
		records, err = bib.LoadJSONL(*dataPath)
	}
	if err != nil {
		log.Fatalf("load records: %v", err)
	}
	log.Printf("Loaded %d records", len(records))

	var examples []mnemotag.TrainingExample
	for _, rec := range records {
		tags := rec.MatrixTags(tax)
		if len(tags) == 0 {
			continue
		}
		examples = append(examples, mnemotag.TrainingExample{
			Text: rec.Text(),
			Tags: tags,
		})
	}
	log.Printf("Using %d tagged records as training examples", len(examples))

	tagger, err := mnemotag.New(tax, mnemotag.DefaultConfig())
	if err != nil {
		log.Fatalf("create tagger: %v", err)
	}
	if err := tagger.Train(examples); err != nil {
		log.Fatalf("train: %v", err)
	}
	if degenerate := tagger.DegenerateCategories(); len(degenerate) > 0 {
		log.Printf("Categories without trainable signal: %v", degenerate)
	}

	if err := tagger.Save(*modelPath); err != nil {
		log.Fatalf("save model: %v", err)
	}
	log.Printf("Model written to %s", *modelPath)

	if *dbPath != "" {
		if err := mirrorRecords(*dbPath, tax, records); err != nil {
			log.Fatalf("mirror records: %v", err)
		}
	}
}

func mirrorRecords(dbPath string, tax *taxonomy.Taxonomy, records []bib.Record) error {
	ctx := context.Background()

	st, err := sqlite.Open(ctx, dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	stored := 0
	for _, rec := range records {
		_, err := st.UpsertRecord(ctx, store.Record{
			EntryKey: rec.EntryKey,
			Title:    rec.Title,
			Author:   rec.Author,
			Year:     rec.Year,
			Journal:  rec.Journal,
			Abstract: rec.Abstract,
			Tags:     rec.MatrixTags(tax),
		})
		if err != nil {
			log.Printf("Failed to store record %s: %v", rec.EntryKey, err)
			continue
		}
		stored++
	}
	log.Printf("Mirrored %d records into %s", stored, dbPath)
	return nil
}
