// mnemotag-analytics reports tag usage across a record database: corpus
// totals and the per-category tag distribution, as JSON on stdout.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"

	"github.com/mnemolab/mnemotag/pkg/mnemotag/store/sqlite"
	"github.com/mnemolab/mnemotag/pkg/mnemotag/taxonomy"
)

type report struct {
	Records    int                 `json:"records"`
	Tagged     int                 `json:"tagged"`
	Untagged   int                 `json:"untagged"`
	AvgTags    float64             `json:"avg_tags_per_tagged_record"`
	Categories []categoryBreakdown `json:"categories"`
}

type categoryBreakdown struct {
	Category string     `json:"category"`
	Name     string     `json:"name"`
	Tags     []tagUsage `json:"tags"`
	Unused   []string   `json:"unused,omitempty"`
}

type tagUsage struct {
	Tag         string `json:"tag"`
	Description string `json:"description,omitempty"`
	Count       int    `json:"count"`
}

func main() {
	var (
		dbPath       = flag.String("db", "", "Record database path (required)")
		taxonomyPath = flag.String("taxonomy", "", "Taxonomy YAML file (optional, built-in by default)")
	)
	flag.Parse()

	if *dbPath == "" {
		log.Fatal("--db required")
	}

	tax := taxonomy.Default()
	if *taxonomyPath != "" {
		var err error
		tax, err = taxonomy.Load(*taxonomyPath)
		if err != nil {
			log.Fatalf("load taxonomy: %v", err)
		}
	}

	ctx := context.Background()
	st, err := sqlite.Open(ctx, *dbPath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer st.Close()

	stats, err := st.Stats(ctx)
	if err != nil {
		log.Fatalf("stats: %v", err)
	}

	rep := report{
		Records:  stats.Records,
		Tagged:   stats.Tagged,
		Untagged: stats.Untagged,
	}
	if stats.Tagged > 0 {
		rep.AvgTags = float64(stats.Assignments) / float64(stats.Tagged)
	}

	for _, cat := range tax.Categories() {
		counts, err := st.TagCounts(ctx, cat)
		if err != nil {
			log.Fatalf("tag counts for %s: %v", cat, err)
		}

		def, _ := tax.Category(cat)
		breakdown := categoryBreakdown{
			Category: cat,
			Name:     def.Name,
		}

		used := make(map[string]struct{}, len(counts))
		for _, tc := range counts {
			used[tc.Tag] = struct{}{}
			breakdown.Tags = append(breakdown.Tags, tagUsage{
				Tag:         tc.Tag,
				Description: tax.Description(cat, tc.Tag),
				Count:       tc.Count,
			})
		}
		for _, tag := range tax.Tags(cat) {
			if _, ok := used[tag]; !ok {
				breakdown.Unused = append(breakdown.Unused, tag)
			}
		}

		rep.Categories = append(rep.Categories, breakdown)
	}

	out, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		log.Fatalf("marshal report: %v", err)
	}
	fmt.Println(string(out))
}
