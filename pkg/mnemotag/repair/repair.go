// Package repair post-processes raw classifier output into predictions that
// honor the domain's invariants: time and memory carrier are single-valued,
// every main category carries at least one tag, and each paper ends up with
// at least three tags overall.
package repair

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/mnemolab/mnemotag/pkg/mnemotag/internalerr"
	"github.com/mnemolab/mnemotag/pkg/mnemotag/taxonomy"
)

// minTotalTags is the floor on the number of tags across all categories.
const minTotalTags = 3

// Defaults names the per-category fallback tag used when a category has no
// prediction and no keyword evidence. These are editorial policy, not
// derived: override them when the taxonomy changes.
type Defaults struct {
	Time          string
	Discipline    string
	MemoryCarrier string
	Concept       string
}

// DefaultDefaults returns the built-in taxonomy's fallback tags.
func DefaultDefaults() Defaults {
	return Defaults{
		Time:          "T4",
		Discipline:    "DHIS",
		MemoryCarrier: "MCME",
		Concept:       "CTCollectiveMemory",
	}
}

// Boost is a coarse trigger used to pad very sparse predictions toward the
// three-tag floor: when any word appears in the text, the tag is added.
type Boost struct {
	Words    []string
	Category string
	Tag      string
}

func defaultBoosts() []Boost {
	return []Boost{
		{Words: []string{"memory"}, Category: taxonomy.ConceptTags, Tag: "CTCollectiveMemory"},
		{Words: []string{"history", "historical"}, Category: taxonomy.Discipline, Tag: "DHIS"},
		{Words: []string{"social", "society"}, Category: taxonomy.Discipline, Tag: "DSOC"},
	}
}

// fallbackConcepts pads the tag count when nothing else matched.
func fallbackConcepts() []string {
	return []string{"CTCulturalMemory", "CTHistoricalMemory", "CTSocialMemory"}
}

// Repairer applies the deterministic repair rules for one taxonomy.
type Repairer struct {
	tax      *taxonomy.Taxonomy
	defaults Defaults
	boosts   []Boost
	concepts []string

	mu       sync.Mutex
	boundary map[string]*regexp.Regexp
}

// Option customizes a Repairer.
type Option func(*Repairer)

// WithDefaults overrides the per-category fallback tags.
func WithDefaults(d Defaults) Option {
	return func(r *Repairer) { r.defaults = d }
}

// WithBoosts overrides the coarse keyword boosts.
func WithBoosts(boosts []Boost) Option {
	return func(r *Repairer) { r.boosts = boosts }
}

// WithFallbackConcepts overrides the generic concept padding list.
func WithFallbackConcepts(tags []string) Option {
	return func(r *Repairer) { r.concepts = tags }
}

// New builds a Repairer. The taxonomy must define all four main categories
// and at least three tags in total, otherwise the minimum-coverage guarantee
// cannot hold and construction fails rather than looping at runtime.
func New(tax *taxonomy.Taxonomy, opts ...Option) (*Repairer, error) {
	if !tax.HasMainCategories() {
		return nil, fmt.Errorf("%w: repair layer needs the four main categories", internalerr.ErrInvalidTaxonomy)
	}
	if tax.TotalTags() < minTotalTags {
		return nil, fmt.Errorf("%w: fewer than %d tags defined, minimum coverage unsatisfiable",
			internalerr.ErrInvalidTaxonomy, minTotalTags)
	}

	r := &Repairer{
		tax:      tax,
		defaults: DefaultDefaults(),
		boosts:   defaultBoosts(),
		concepts: fallbackConcepts(),
		boundary: make(map[string]*regexp.Regexp),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Apply runs the full repair pipeline on raw classifier output and returns a
// fresh prediction map satisfying the output invariants. The input map is
// not mutated.
func (r *Repairer) Apply(raw map[string][]string, text string) map[string][]string {
	lower := strings.ToLower(text)

	pred := clone(raw)
	r.applyExclusivity(pred, lower)

	if totalTags(pred) < minTotalTags {
		r.enhanceWithKeywords(pred, lower)
		r.applyExclusivity(pred, lower)
	}

	r.ensureCategoryCoverage(pred, lower)
	if totalTags(pred) < minTotalTags {
		r.padToFloor(pred, lower)
	}
	r.applyExclusivity(pred, lower)

	return pred
}

// applyExclusivity collapses the single-valued categories in place.
//
// time keeps the most recent predicted period (taxonomy order is oldest to
// newest); if none of the taxonomy's time tags is among the raw predictions,
// the keyword-score winner survives. memory_carrier has no period ordering,
// so it always keeps the keyword-score winner.
func (r *Repairer) applyExclusivity(pred map[string][]string, lower string) {
	if times := pred[taxonomy.Time]; len(times) > 1 {
		selected := ""
		order := r.tax.Tags(taxonomy.Time)
		for i := len(order) - 1; i >= 0; i-- {
			if contains(times, order[i]) {
				selected = order[i]
				break
			}
		}
		if selected == "" {
			selected = r.bestByScore(taxonomy.Time, times, lower)
		}
		if selected != "" {
			pred[taxonomy.Time] = []string{selected}
		}
	}

	if carriers := pred[taxonomy.MemoryCarrier]; len(carriers) > 1 {
		if best := r.bestByScore(taxonomy.MemoryCarrier, carriers, lower); best != "" {
			pred[taxonomy.MemoryCarrier] = []string{best}
		}
	}
}

// enhanceWithKeywords adds, for every tag not yet predicted, the tag whose
// first keyword is found in the text. Keywords of three characters or fewer
// must match as whole words; longer phrases match by containment.
func (r *Repairer) enhanceWithKeywords(pred map[string][]string, lower string) {
	for _, cat := range r.tax.Categories() {
		for _, tag := range r.tax.Tags(cat) {
			if contains(pred[cat], tag) {
				continue
			}
			for _, kw := range r.tax.Keywords(cat, tag) {
				if r.matches(lower, kw) {
					pred[cat] = append(pred[cat], tag)
					break
				}
			}
		}
	}
}

// ensureCategoryCoverage guarantees at least one tag in each main category:
// the best keyword-scoring tag of the category, or the configured default
// when the text gives no keyword evidence at all.
func (r *Repairer) ensureCategoryCoverage(pred map[string][]string, lower string) {
	for _, cat := range taxonomy.MainCategories() {
		if len(pred[cat]) > 0 {
			continue
		}

		best, bestScore := "", 0
		for _, tag := range r.tax.Tags(cat) {
			if score := r.score(cat, tag, lower); score > bestScore {
				best, bestScore = tag, score
			}
		}
		if best == "" {
			best = r.defaultFor(cat)
		}
		if best != "" {
			pred[cat] = []string{best}
		}
	}
}

// padToFloor adds boost-triggered tags, then generic concept tags, until the
// three-tag floor is met or the fallback list is exhausted.
func (r *Repairer) padToFloor(pred map[string][]string, lower string) {
	for _, b := range r.boosts {
		if totalTags(pred) >= minTotalTags {
			return
		}
		if contains(pred[b.Category], b.Tag) {
			continue
		}
		if _, known := r.tax.TagIndex(b.Category, b.Tag); !known {
			continue
		}
		for _, word := range b.Words {
			if strings.Contains(lower, word) {
				pred[b.Category] = append(pred[b.Category], b.Tag)
				break
			}
		}
	}

	for _, tag := range r.concepts {
		if totalTags(pred) >= minTotalTags {
			return
		}
		if contains(pred[taxonomy.ConceptTags], tag) {
			continue
		}
		if _, known := r.tax.TagIndex(taxonomy.ConceptTags, tag); !known {
			continue
		}
		pred[taxonomy.ConceptTags] = append(pred[taxonomy.ConceptTags], tag)
	}
}

func (r *Repairer) defaultFor(cat string) string {
	switch cat {
	case taxonomy.Time:
		return r.defaults.Time
	case taxonomy.Discipline:
		return r.defaults.Discipline
	case taxonomy.MemoryCarrier:
		return r.defaults.MemoryCarrier
	case taxonomy.ConceptTags:
		return r.defaults.Concept
	}
	return ""
}

// bestByScore returns the candidate with the highest keyword score, or the
// first candidate when every score is zero.
func (r *Repairer) bestByScore(cat string, candidates []string, lower string) string {
	best, bestScore := "", -1
	for _, tag := range candidates {
		if score := r.score(cat, tag, lower); score > bestScore {
			best, bestScore = tag, score
		}
	}
	return best
}

// score counts how many of a tag's keyword phrases occur in the text.
// Scoring uses plain containment: it ranks relative evidence, where the
// word-boundary strictness of matches would only flatten the signal.
func (r *Repairer) score(cat, tag, lower string) int {
	score := 0
	for _, kw := range r.tax.Keywords(cat, tag) {
		if strings.Contains(lower, kw) {
			score++
		}
	}
	return score
}

// matches applies the enhancement matching rule: whole-word for short
// keywords, containment otherwise. Short tag codes and abbreviations would
// otherwise fire inside unrelated words.
func (r *Repairer) matches(lower, kw string) bool {
	if len(kw) > 3 {
		return strings.Contains(lower, kw)
	}
	return r.boundaryPattern(kw).MatchString(lower)
}

func (r *Repairer) boundaryPattern(kw string) *regexp.Regexp {
	r.mu.Lock()
	defer r.mu.Unlock()

	re, ok := r.boundary[kw]
	if !ok {
		re = regexp.MustCompile(`\b` + regexp.QuoteMeta(kw) + `\b`)
		r.boundary[kw] = re
	}
	return re
}

func clone(pred map[string][]string) map[string][]string {
	out := make(map[string][]string, len(pred))
	for cat, tags := range pred {
		out[cat] = append([]string(nil), tags...)
	}
	return out
}

func totalTags(pred map[string][]string) int {
	n := 0
	for _, tags := range pred {
		n += len(tags)
	}
	return n
}

func contains(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
