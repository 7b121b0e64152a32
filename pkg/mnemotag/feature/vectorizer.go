package feature

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/mnemolab/mnemotag/pkg/mnemotag/internalerr"
)

// VectorizerConfig controls vocabulary construction.
type VectorizerConfig struct {
	MaxFeatures int     // vocabulary cap, kept by highest corpus frequency
	NGramMin    int     // shortest n-gram
	NGramMax    int     // longest n-gram
	MinDF       int     // drop terms in fewer documents
	MaxDF       float64 // drop terms in more than this fraction of documents
	Stopwords   []string
}

// DefaultVectorizerConfig returns the standard feature-space settings: 1-3
// grams, 5000 features, english stopwords, document frequency in [2, 95%].
func DefaultVectorizerConfig() VectorizerConfig {
	return VectorizerConfig{
		MaxFeatures: 5000,
		NGramMin:    1,
		NGramMax:    3,
		MinDF:       2,
		MaxDF:       0.95,
		Stopwords:   EnglishStopwords(),
	}
}

// Vectorizer is a fitted TF-IDF bag-of-n-grams model. One Vectorizer is
// shared by every category's classifier; the instance that transformed the
// training texts must transform prediction-time texts too. Fitted state is
// exported for model serialization. Safe for concurrent Transform calls.
type Vectorizer struct {
	NGramMin  int            `json:"ngram_min"`
	NGramMax  int            `json:"ngram_max"`
	Vocab     map[string]int `json:"vocab"`
	IDF       []float64      `json:"idf"`
	Stopwords []string       `json:"stopwords"`

	tokOnce sync.Once
	tok     *Tokenizer
}

// Fit builds a vocabulary and IDF weights from the training texts.
// Vocabulary order is deterministic: terms are sorted lexicographically, so
// a fixed corpus always produces the same feature indices.
func Fit(texts []string, cfg VectorizerConfig) (*Vectorizer, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("%w: no documents to fit vectorizer", internalerr.ErrInsufficientData)
	}

	tok := NewTokenizer(cfg.Stopwords)

	n := len(texts)
	df := make(map[string]int)
	tf := make(map[string]int)
	for _, text := range texts {
		grams := ngrams(tok.Tokenize(text), cfg.NGramMin, cfg.NGramMax)
		seen := make(map[string]struct{}, len(grams))
		for _, g := range grams {
			tf[g]++
			seen[g] = struct{}{}
		}
		for g := range seen {
			df[g]++
		}
	}

	minDF := cfg.MinDF
	if minDF < 1 {
		minDF = 1
	}
	maxDF := n
	if cfg.MaxDF > 0 && cfg.MaxDF < 1 {
		maxDF = int(cfg.MaxDF * float64(n))
		if maxDF < 1 {
			maxDF = 1
		}
	}

	candidates := make([]string, 0, len(df))
	for term, d := range df {
		if d >= minDF && d <= maxDF {
			candidates = append(candidates, term)
		}
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: empty vocabulary after frequency pruning", internalerr.ErrInsufficientData)
	}

	if cfg.MaxFeatures > 0 && len(candidates) > cfg.MaxFeatures {
		sort.Slice(candidates, func(i, j int) bool {
			if tf[candidates[i]] != tf[candidates[j]] {
				return tf[candidates[i]] > tf[candidates[j]]
			}
			return candidates[i] < candidates[j]
		})
		candidates = candidates[:cfg.MaxFeatures]
	}
	sort.Strings(candidates)

	v := &Vectorizer{
		NGramMin:  cfg.NGramMin,
		NGramMax:  cfg.NGramMax,
		Vocab:     make(map[string]int, len(candidates)),
		IDF:       make([]float64, len(candidates)),
		Stopwords: cfg.Stopwords,
		tok:       tok,
	}
	v.tokOnce.Do(func() {})

	for i, term := range candidates {
		v.Vocab[term] = i
		v.IDF[i] = math.Log(float64(1+n)/float64(1+df[term])) + 1
	}

	return v, nil
}

// Features returns the dimensionality of transformed vectors.
func (v *Vectorizer) Features() int {
	return len(v.IDF)
}

// Transform maps one text onto the fitted feature space: term counts
// weighted by IDF, L2-normalized. Unknown terms are ignored; an empty text
// yields the zero vector, which is a valid input downstream.
func (v *Vectorizer) Transform(text string) []float64 {
	vec := make([]float64, len(v.IDF))

	grams := ngrams(v.tokenizer().Tokenize(text), v.NGramMin, v.NGramMax)
	for _, g := range grams {
		if i, ok := v.Vocab[g]; ok {
			vec[i]++
		}
	}

	var norm float64
	for i := range vec {
		vec[i] *= v.IDF[i]
		norm += vec[i] * vec[i]
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}

	return vec
}

// TransformAll transforms a batch of texts, preserving order.
func (v *Vectorizer) TransformAll(texts []string) [][]float64 {
	out := make([][]float64, len(texts))
	for i, text := range texts {
		out[i] = v.Transform(text)
	}
	return out
}

func (v *Vectorizer) tokenizer() *Tokenizer {
	v.tokOnce.Do(func() {
		v.tok = NewTokenizer(v.Stopwords)
	})
	return v.tok
}
