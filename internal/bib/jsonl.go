package bib

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
)

// LoadJSONL loads records from a JSONL export, one JSON object per line.
// Malformed lines and lines without an entry key are skipped with a warning
// rather than failing the whole import.
func LoadJSONL(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", path, err)
	}

	var records []Record
	lines := strings.Split(string(data), "\n")

	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var rec Record
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			log.Printf("Warning: skipping malformed JSON at line %d in %s: %v", i+1, path, err)
			continue
		}
		if rec.EntryKey == "" {
			log.Printf("Warning: skipping record without entry key at line %d in %s", i+1, path)
			continue
		}
		rec.Abstract = StripHTML(rec.Abstract)
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("no valid records found in %s", path)
	}

	return records, nil
}
