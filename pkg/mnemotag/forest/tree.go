package forest

import (
	"math/rand"
	"sort"
)

// Node is one decision-tree node in flattened form. Internal nodes route on
// x[Feature] <= Threshold; leaves carry the weighted positive fraction of
// their training samples.
type Node struct {
	Feature   int     `json:"f,omitempty"`
	Threshold float64 `json:"t,omitempty"`
	Left      int     `json:"l,omitempty"`
	Right     int     `json:"r,omitempty"`
	Leaf      bool    `json:"leaf,omitempty"`
	Value     float64 `json:"v,omitempty"`
}

// Tree is a single depth-bounded decision tree stored as an index-linked
// node array (node 0 is the root), which keeps serialized models compact.
type Tree struct {
	Nodes []Node `json:"nodes"`
}

func (t *Tree) predict(x []float64) float64 {
	i := 0
	for !t.Nodes[i].Leaf {
		n := t.Nodes[i]
		if x[n.Feature] <= n.Threshold {
			i = n.Left
		} else {
			i = n.Right
		}
	}
	return t.Nodes[i].Value
}

// growTree fits one tree on the bootstrap sample idx (positions into X/y,
// possibly repeated). Class-balanced sample weights are computed on the
// bootstrap itself.
func growTree(X [][]float64, y []float64, idx []int, cfg Config, rng *rand.Rand) Tree {
	b := &treeBuilder{
		X:   X,
		y:   y,
		idx: idx,
		w:   balancedWeights(y, idx),
		cfg: cfg,
		rng: rng,
	}
	if len(X) > 0 {
		b.features = len(X[0])
	}

	ps := make([]int, len(idx))
	for k := range ps {
		ps[k] = k
	}
	b.grow(ps, 0)
	return Tree{Nodes: b.nodes}
}

type treeBuilder struct {
	X        [][]float64
	y        []float64
	idx      []int // bootstrap sample: positions into X/y
	w        []float64
	cfg      Config
	rng      *rand.Rand
	features int
	nodes    []Node
}

// grow appends the subtree for positions ps and returns its node index.
func (b *treeBuilder) grow(ps []int, depth int) int {
	var wtot, wpos float64
	for _, k := range ps {
		wtot += b.w[k]
		if b.y[b.idx[k]] > 0 {
			wpos += b.w[k]
		}
	}
	p := 0.0
	if wtot > 0 {
		p = wpos / wtot
	}

	minLeaf := b.cfg.MinSamplesLeaf
	if minLeaf < 1 {
		minLeaf = 1
	}

	if depth >= b.cfg.MaxDepth || p == 0 || p == 1 || len(ps) < 2*minLeaf || b.features == 0 {
		return b.leaf(p)
	}

	feat, thr, ok := b.bestSplit(ps, wtot, p, minLeaf)
	if !ok {
		return b.leaf(p)
	}

	var left, right []int
	for _, k := range ps {
		if b.X[b.idx[k]][feat] <= thr {
			left = append(left, k)
		} else {
			right = append(right, k)
		}
	}

	node := len(b.nodes)
	b.nodes = append(b.nodes, Node{Feature: feat, Threshold: thr})
	l := b.grow(left, depth+1)
	r := b.grow(right, depth+1)
	b.nodes[node].Left = l
	b.nodes[node].Right = r
	return node
}

func (b *treeBuilder) leaf(p float64) int {
	b.nodes = append(b.nodes, Node{Leaf: true, Value: p})
	return len(b.nodes) - 1
}

// bestSplit evaluates sqrt(features) random candidate features and returns
// the (feature, threshold) pair with the largest weighted Gini decrease.
func (b *treeBuilder) bestSplit(ps []int, wtot, p float64, minLeaf int) (int, float64, bool) {
	parent := wtot * gini(p)

	mtry := sqrtFeatures(b.features)
	perm := b.rng.Perm(b.features)

	bestGain := 1e-12
	bestFeat, bestThr := -1, 0.0

	order := make([]int, len(ps))
	for _, feat := range perm[:mtry] {
		copy(order, ps)
		sort.Slice(order, func(i, j int) bool {
			return b.X[b.idx[order[i]]][feat] < b.X[b.idx[order[j]]][feat]
		})

		var wl, wlpos float64
		for i := 0; i < len(order)-1; i++ {
			k := order[i]
			wl += b.w[k]
			if b.y[b.idx[k]] > 0 {
				wlpos += b.w[k]
			}

			vi := b.X[b.idx[k]][feat]
			vn := b.X[b.idx[order[i+1]]][feat]
			if vi == vn {
				continue
			}
			if i+1 < minLeaf || len(order)-i-1 < minLeaf {
				continue
			}

			wr := wtot - wl
			if wl <= 0 || wr <= 0 {
				continue
			}
			pl := wlpos / wl
			pr := (wtot*p - wlpos) / wr

			gain := parent - wl*gini(pl) - wr*gini(pr)
			if gain > bestGain {
				bestGain = gain
				bestFeat = feat
				bestThr = (vi + vn) / 2
			}
		}
	}

	if bestFeat < 0 {
		return 0, 0, false
	}
	return bestFeat, bestThr, true
}
