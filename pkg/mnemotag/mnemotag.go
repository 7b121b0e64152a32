// Package mnemotag is the main tagging engine facade: it trains per-category
// multi-label classifiers over a shared TF-IDF feature space, predicts matrix
// tags for bibliographic texts, and repairs raw predictions into outputs that
// satisfy the taxonomy's invariants.
package mnemotag

import (
	"fmt"
	"log"
	"math/rand"
	"sync"

	"github.com/mnemolab/mnemotag/pkg/mnemotag/feature"
	"github.com/mnemolab/mnemotag/pkg/mnemotag/forest"
	"github.com/mnemolab/mnemotag/pkg/mnemotag/internalerr"
	"github.com/mnemolab/mnemotag/pkg/mnemotag/repair"
	"github.com/mnemolab/mnemotag/pkg/mnemotag/taxonomy"
)

// TrainingExample pairs one text with its assigned tags per category.
type TrainingExample struct {
	Text string
	Tags map[string][]string
}

// TagConfidence is one tag with the classifier's estimated probability.
type TagConfidence struct {
	Tag        string  `json:"tag"`
	Confidence float64 `json:"confidence"`
}

// Config collects the tunables of a Tagger.
type Config struct {
	Vectorizer feature.VectorizerConfig
	Forest     forest.Config

	// ConfidenceThreshold filters PredictWithConfidence output.
	ConfidenceThreshold float64

	// Repair options: fallback tags, boosts and padding concepts.
	Defaults         repair.Defaults
	Boosts           []repair.Boost
	FallbackConcepts []string
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Vectorizer:          feature.DefaultVectorizerConfig(),
		Forest:              forest.DefaultConfig(),
		ConfidenceThreshold: 0.3,
		Defaults:            repair.DefaultDefaults(),
	}
}

// Tagger predicts matrix tags for texts. Train and Load replace the whole
// model under an exclusive lock; Predict, Tag and Analyze take a shared lock,
// so a Tagger is safe for concurrent use.
type Tagger struct {
	tax      *taxonomy.Taxonomy
	cfg      Config
	repairer *repair.Repairer

	mu         sync.RWMutex
	vectorizer *feature.Vectorizer
	forests    map[string]*forest.MultiLabel
	degenerate []string
}

// New creates an untrained Tagger for the given taxonomy. The taxonomy is
// validated against the repair layer's requirements up front.
func New(tax *taxonomy.Taxonomy, cfg Config) (*Tagger, error) {
	opts := []repair.Option{repair.WithDefaults(cfg.Defaults)}
	if cfg.Boosts != nil {
		opts = append(opts, repair.WithBoosts(cfg.Boosts))
	}
	if cfg.FallbackConcepts != nil {
		opts = append(opts, repair.WithFallbackConcepts(cfg.FallbackConcepts))
	}

	rep, err := repair.New(tax, opts...)
	if err != nil {
		return nil, err
	}

	return &Tagger{
		tax:      tax,
		cfg:      cfg,
		repairer: rep,
	}, nil
}

// Taxonomy returns the taxonomy the Tagger was built for.
func (t *Tagger) Taxonomy() *taxonomy.Taxonomy {
	return t.tax
}

// Train fits the vectorizer and one multi-label forest per category on the
// examples. Categories whose label matrix carries no signal at all (every
// column constant) are skipped with a warning; the repair layer covers them
// at prediction time. Training replaces any previous model atomically.
func (t *Tagger) Train(examples []TrainingExample) error {
	if len(examples) == 0 {
		return fmt.Errorf("%w: no training examples", internalerr.ErrInsufficientData)
	}

	texts := make([]string, len(examples))
	assigned := make([]map[string][]string, len(examples))
	for i, ex := range examples {
		texts[i] = ex.Text
		assigned[i] = ex.Tags
	}

	vec, err := feature.Fit(texts, t.cfg.Vectorizer)
	if err != nil {
		return fmt.Errorf("fit vectorizer: %w", err)
	}
	X := vec.TransformAll(texts)

	rng := rand.New(rand.NewSource(t.cfg.Forest.Seed))
	forests := make(map[string]*forest.MultiLabel)
	var degenerate []string

	for _, cat := range t.tax.Categories() {
		order := t.tax.Tags(cat)
		Y := feature.BuildLabels(assigned, cat, order)

		if allColumnsConstant(Y) {
			log.Printf("mnemotag: category %s has no label variation in %d examples, skipping classifier",
				cat, len(examples))
			degenerate = append(degenerate, cat)
			continue
		}

		forests[cat] = forest.TrainMultiLabel(X, Y, t.cfg.Forest, rng)
	}

	t.mu.Lock()
	t.vectorizer = vec
	t.forests = forests
	t.degenerate = degenerate
	t.mu.Unlock()

	return nil
}

// Trained reports whether the Tagger holds a model.
func (t *Tagger) Trained() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.vectorizer != nil
}

// DegenerateCategories lists the categories skipped during training for lack
// of label variation. Empty on an untrained Tagger.
func (t *Tagger) DegenerateCategories() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]string(nil), t.degenerate...)
}

// Predict returns the raw classifier decisions per category, with no repair
// applied. Categories skipped at training time are absent from the result.
func (t *Tagger) Predict(text string) (map[string][]string, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.vectorizer == nil {
		return nil, internalerr.ErrNotTrained
	}

	x := t.vectorizer.Transform(text)
	pred := make(map[string][]string)
	for _, cat := range t.tax.Categories() {
		ml, ok := t.forests[cat]
		if !ok {
			continue
		}
		order := t.tax.Tags(cat)
		for j, positive := range ml.Predict(x) {
			if positive {
				pred[cat] = append(pred[cat], order[j])
			}
		}
	}
	return pred, nil
}

// PredictWithConfidence returns, per category, every tag whose estimated
// probability exceeds the configured confidence threshold, in taxonomy order.
func (t *Tagger) PredictWithConfidence(text string) (map[string][]TagConfidence, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.vectorizer == nil {
		return nil, internalerr.ErrNotTrained
	}

	x := t.vectorizer.Transform(text)
	out := make(map[string][]TagConfidence)
	for _, cat := range t.tax.Categories() {
		ml, ok := t.forests[cat]
		if !ok {
			continue
		}
		order := t.tax.Tags(cat)
		for j, p := range ml.Proba(x) {
			if p > t.cfg.ConfidenceThreshold {
				out[cat] = append(out[cat], TagConfidence{Tag: order[j], Confidence: p})
			}
		}
	}
	return out, nil
}

// Tag predicts tags for the text and repairs them into a prediction that
// satisfies the output invariants: single-valued time and memory carrier,
// every main category covered, at least three tags in total.
func (t *Tagger) Tag(text string) (map[string][]string, error) {
	raw, err := t.Predict(text)
	if err != nil {
		return nil, err
	}
	return t.repairer.Apply(raw, text), nil
}

// TagAll tags a batch of texts, preserving order.
func (t *Tagger) TagAll(texts []string) ([]map[string][]string, error) {
	out := make([]map[string][]string, len(texts))
	for i, text := range texts {
		pred, err := t.Tag(text)
		if err != nil {
			return nil, err
		}
		out[i] = pred
	}
	return out, nil
}

// Analysis explains one tagging decision: the repaired tags, the classifier's
// confident raw suggestions, and every keyword hit in the text.
type Analysis struct {
	Tags       map[string][]string        `json:"tags"`
	Confidence map[string][]TagConfidence `json:"confidence"`
	Keywords   map[string][]repair.Match  `json:"keywords"`
	Degenerate []string                   `json:"degenerate,omitempty"`
}

// Analyze tags the text and reports the evidence behind the decision.
func (t *Tagger) Analyze(text string) (*Analysis, error) {
	conf, err := t.PredictWithConfidence(text)
	if err != nil {
		return nil, err
	}
	tags, err := t.Tag(text)
	if err != nil {
		return nil, err
	}

	return &Analysis{
		Tags:       tags,
		Confidence: conf,
		Keywords:   t.repairer.KeywordMatches(text),
		Degenerate: t.DegenerateCategories(),
	}, nil
}

func allColumnsConstant(Y [][]float64) bool {
	if len(Y) == 0 {
		return true
	}
	for j := range Y[0] {
		if _, constant := feature.ColumnConstant(Y, j); !constant {
			return false
		}
	}
	return true
}
