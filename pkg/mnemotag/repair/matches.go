package repair

import "strings"

// Match records one keyword hit: the tag it argues for and the phrase that
// fired.
type Match struct {
	Tag     string `json:"tag"`
	Keyword string `json:"keyword"`
}

// KeywordMatches scans the text against the whole keyword index and returns
// every hit grouped by category. Diagnostic only: it explains why a tag was
// or wasn't assigned, and never alters predictions itself.
func (r *Repairer) KeywordMatches(text string) map[string][]Match {
	lower := strings.ToLower(text)

	found := make(map[string][]Match)
	for _, cat := range r.tax.Categories() {
		for _, tag := range r.tax.Tags(cat) {
			for _, kw := range r.tax.Keywords(cat, tag) {
				if strings.Contains(lower, kw) {
					found[cat] = append(found[cat], Match{Tag: tag, Keyword: kw})
				}
			}
		}
	}
	return found
}
