package feature

// BuildLabels builds the binary label matrix for one category: row i,
// column j is 1 when example i's assigned tags include tagOrder[j]. The
// column order is exactly the taxonomy's tag order, which makes it the
// contract between training labels and prediction vectors.
func BuildLabels(assigned []map[string][]string, category string, tagOrder []string) [][]float64 {
	index := make(map[string]int, len(tagOrder))
	for j, tag := range tagOrder {
		index[tag] = j
	}

	rows := make([][]float64, len(assigned))
	for i, tags := range assigned {
		row := make([]float64, len(tagOrder))
		for _, tag := range tags[category] {
			if j, ok := index[tag]; ok {
				row[j] = 1
			}
		}
		rows[i] = row
	}
	return rows
}

// ColumnConstant reports whether column j has the same value in every row,
// returning that value. Constant columns carry no trainable signal.
func ColumnConstant(rows [][]float64, j int) (float64, bool) {
	if len(rows) == 0 {
		return 0, true
	}
	first := rows[0][j]
	for _, row := range rows[1:] {
		if row[j] != first {
			return 0, false
		}
	}
	return first, true
}
