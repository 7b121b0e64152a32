// Package bib reads bibliographic records from BibTeX libraries and JSONL
// exports, and maps their keyword fields onto taxonomy tags.
package bib

import (
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/mnemolab/mnemotag/pkg/mnemotag/taxonomy"
)

// Record is one parsed bibliography entry.
type Record struct {
	EntryKey string   `json:"entry_key"`
	Type     string   `json:"type,omitempty"`
	Title    string   `json:"title"`
	Author   string   `json:"author,omitempty"`
	Year     string   `json:"year,omitempty"`
	Journal  string   `json:"journal,omitempty"`
	Abstract string   `json:"abstract,omitempty"`
	Keywords []string `json:"keywords,omitempty"`
}

// Text returns the record's content for feature extraction.
func (r Record) Text() string {
	if r.Abstract == "" {
		return r.Title
	}
	return r.Title + " " + r.Abstract
}

// MatrixTags splits the record's keywords into known taxonomy tags grouped
// by category. Keywords that are not tag codes are ignored: bibliographies
// mix matrix tags with free-form subject keywords.
func (r Record) MatrixTags(tax *taxonomy.Taxonomy) map[string][]string {
	var tags map[string][]string
	for _, kw := range r.Keywords {
		cat, ok := tax.CategoryOf(kw)
		if !ok {
			continue
		}
		if tags == nil {
			tags = make(map[string][]string)
		}
		tags[cat] = append(tags[cat], kw)
	}
	return tags
}

// ParseFile reads a BibTeX library from disk.
func ParseFile(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bibtex %s: %w", path, err)
	}
	records, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse bibtex %s: %w", path, err)
	}
	return records, nil
}

// Parse extracts entries from BibTeX source. It understands the common
// subset: @type{key, field = {value}, ...} with arbitrarily nested braces
// in values. @comment, @preamble and @string blocks are skipped.
func Parse(src string) ([]Record, error) {
	var records []Record

	i := 0
	for {
		at := strings.IndexByte(src[i:], '@')
		if at < 0 {
			break
		}
		i += at + 1

		typEnd := strings.IndexByte(src[i:], '{')
		if typEnd < 0 {
			break
		}
		entryType := strings.ToLower(strings.TrimSpace(src[i : i+typEnd]))
		i += typEnd + 1

		body, next, ok := balancedBraces(src, i-1)
		if !ok {
			return records, fmt.Errorf("unterminated entry near offset %d", i)
		}
		i = next

		switch entryType {
		case "comment", "preamble", "string":
			continue
		}

		rec, ok := parseEntry(entryType, body)
		if ok {
			records = append(records, rec)
		}
	}

	return records, nil
}

// balancedBraces returns the content of the brace group opening at src[open]
// and the index just past its closing brace.
func balancedBraces(src string, open int) (string, int, bool) {
	depth := 0
	for j := open; j < len(src); j++ {
		switch src[j] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return src[open+1 : j], j + 1, true
			}
		}
	}
	return "", 0, false
}

func parseEntry(entryType, body string) (Record, bool) {
	comma := strings.IndexByte(body, ',')
	if comma < 0 {
		return Record{}, false
	}

	rec := Record{
		Type:     entryType,
		EntryKey: strings.TrimSpace(body[:comma]),
	}
	if rec.EntryKey == "" {
		return Record{}, false
	}

	for name, value := range parseFields(body[comma+1:]) {
		switch name {
		case "title":
			rec.Title = value
		case "author":
			rec.Author = value
		case "year", "date":
			if rec.Year == "" {
				rec.Year = value
			}
		case "journal", "journaltitle":
			if rec.Journal == "" {
				rec.Journal = value
			}
		case "abstract":
			rec.Abstract = StripHTML(value)
		case "keywords":
			rec.Keywords = splitKeywords(value)
		}
	}

	return rec, true
}

// parseFields walks "name = {value}" or "name = "value"" pairs. Bare values
// (numbers, month macros) run to the next top-level comma.
func parseFields(s string) map[string]string {
	fields := make(map[string]string)

	i := 0
	for i < len(s) {
		for i < len(s) && (unicode.IsSpace(rune(s[i])) || s[i] == ',') {
			i++
		}
		start := i
		for i < len(s) && s[i] != '=' {
			i++
		}
		if i >= len(s) {
			break
		}
		name := strings.ToLower(strings.TrimSpace(s[start:i]))
		i++ // skip '='
		for i < len(s) && unicode.IsSpace(rune(s[i])) {
			i++
		}
		if i >= len(s) {
			break
		}

		var value string
		switch s[i] {
		case '{':
			body, next, ok := balancedBraces(s, i)
			if !ok {
				return fields
			}
			value, i = body, next
		case '"':
			end := strings.IndexByte(s[i+1:], '"')
			if end < 0 {
				return fields
			}
			value, i = s[i+1:i+1+end], i+end+2
		default:
			end := strings.IndexByte(s[i:], ',')
			if end < 0 {
				end = len(s) - i
			}
			value, i = s[i:i+end], i+end
		}

		if name != "" {
			fields[name] = cleanValue(value)
		}
	}

	return fields
}

// cleanValue drops protective braces and collapses the whitespace BibTeX
// uses for line continuation.
func cleanValue(s string) string {
	s = strings.NewReplacer("{", "", "}", "").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

func splitKeywords(s string) []string {
	var out []string
	for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ';' }) {
		if kw := strings.TrimSpace(part); kw != "" {
			out = append(out, kw)
		}
	}
	return out
}
