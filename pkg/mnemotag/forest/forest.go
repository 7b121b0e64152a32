// Package forest implements the tree-ensemble classifiers behind the tag
// predictor: bagged decision trees with balanced class weighting, one binary
// forest per tag, grouped per category as a multi-label model.
//
// Randomness exists only at training time and is driven by a caller-supplied
// seeded source, so a fixed corpus always trains to the same model and
// inference is fully deterministic.
package forest

import (
	"math"
	"math/rand"
)

// Config controls forest training.
type Config struct {
	Trees          int   // estimators per label
	MaxDepth       int   // depth bound, resists overfitting on small corpora
	MinSamplesLeaf int   // minimum samples on each side of a split
	Seed           int64 // training RNG seed
}

// DefaultConfig returns hyperparameters tuned for small annotated corpora.
func DefaultConfig() Config {
	return Config{
		Trees:          100,
		MaxDepth:       10,
		MinSamplesLeaf: 1,
		Seed:           42,
	}
}

// Forest is a trained binary classifier for one tag. A label whose training
// column was constant is stored as a Constant shortcut instead of trees.
type Forest struct {
	Trees    []Tree   `json:"trees,omitempty"`
	Constant *float64 `json:"constant,omitempty"`
}

// MultiLabel groups the per-tag forests of one category, column-aligned with
// the taxonomy's tag order.
type MultiLabel struct {
	Labels []*Forest `json:"labels"`
}

// Train fits one binary forest on rows X against the 0/1 column y.
// Each tree sees a bootstrap sample weighted so both classes contribute
// equally (balanced class weights), and considers sqrt(features) candidate
// features per split.
func Train(X [][]float64, y []float64, cfg Config, rng *rand.Rand) *Forest {
	if rng == nil {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}
	if c, constant := constantLabel(y); constant {
		return &Forest{Constant: &c}
	}

	n := len(y)
	f := &Forest{Trees: make([]Tree, 0, cfg.Trees)}
	for i := 0; i < cfg.Trees; i++ {
		idx := make([]int, n)
		for j := range idx {
			idx[j] = rng.Intn(n)
		}
		f.Trees = append(f.Trees, growTree(X, y, idx, cfg, rng))
	}
	return f
}

// TrainMultiLabel fits one forest per label column of Y.
func TrainMultiLabel(X [][]float64, Y [][]float64, cfg Config, rng *rand.Rand) *MultiLabel {
	if rng == nil {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}
	if len(Y) == 0 {
		return &MultiLabel{}
	}

	labels := len(Y[0])
	m := &MultiLabel{Labels: make([]*Forest, labels)}
	col := make([]float64, len(Y))
	for j := 0; j < labels; j++ {
		for i := range Y {
			col[i] = Y[i][j]
		}
		m.Labels[j] = Train(X, col, cfg, rng)
	}
	return m
}

// Proba returns the estimated probability that the label is positive:
// the mean leaf probability across trees.
func (f *Forest) Proba(x []float64) float64 {
	if f.Constant != nil {
		return *f.Constant
	}
	if len(f.Trees) == 0 {
		return 0
	}

	var sum float64
	for i := range f.Trees {
		sum += f.Trees[i].predict(x)
	}
	return sum / float64(len(f.Trees))
}

// Predict thresholds Proba at the native 0.5 decision boundary.
func (f *Forest) Predict(x []float64) bool {
	return f.Proba(x) >= 0.5
}

// Proba returns per-label probabilities for one input row.
func (m *MultiLabel) Proba(x []float64) []float64 {
	out := make([]float64, len(m.Labels))
	for j, f := range m.Labels {
		out[j] = f.Proba(x)
	}
	return out
}

// Predict returns per-label decisions for one input row.
func (m *MultiLabel) Predict(x []float64) []bool {
	out := make([]bool, len(m.Labels))
	for j, f := range m.Labels {
		out[j] = f.Predict(x)
	}
	return out
}

func constantLabel(y []float64) (float64, bool) {
	if len(y) == 0 {
		return 0, true
	}
	first := y[0]
	for _, v := range y[1:] {
		if v != first {
			return 0, false
		}
	}
	return first, true
}

// balancedWeights assigns n/(2*count(class)) to each sample of the bootstrap,
// so minority tags are not drowned out on small corpora.
func balancedWeights(y []float64, idx []int) []float64 {
	var pos, neg float64
	for _, i := range idx {
		if y[i] > 0 {
			pos++
		} else {
			neg++
		}
	}

	n := float64(len(idx))
	w := make([]float64, len(idx))
	for k, i := range idx {
		if y[i] > 0 {
			w[k] = n / (2 * pos)
		} else {
			w[k] = n / (2 * neg)
		}
	}
	return w
}

func gini(p float64) float64 {
	return 1 - p*p - (1-p)*(1-p)
}

func sqrtFeatures(n int) int {
	m := int(math.Sqrt(float64(n)))
	if m < 1 {
		m = 1
	}
	return m
}
