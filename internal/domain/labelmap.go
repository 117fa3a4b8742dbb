package domain

// LabelMap is the anonymization table for one deliberation round. It is
// a bijection between display labels ("Response A", "Response B", ...)
// and real model identifiers. Labels are assigned in a fixed
// deterministic order following the input order of the models, and a
// map is never reused across unrelated rounds.
type LabelMap struct {
	labels  []string
	byLabel map[string]string
}

// NewLabelMap builds a LabelMap for the given models, assigning labels
// "Response A", "Response B", ... in input order. Models past "Response
// Z" continue with doubled letters ("Response AA", ...).
func NewLabelMap(models []string) *LabelMap {
	lm := &LabelMap{
		labels:  make([]string, 0, len(models)),
		byLabel: make(map[string]string, len(models)),
	}
	for i, model := range models {
		label := "Response " + letterLabel(i)
		lm.labels = append(lm.labels, label)
		lm.byLabel[label] = model
	}
	return lm
}

// letterLabel converts a zero-based index to a spreadsheet-style letter
// sequence: 0 -> "A", 25 -> "Z", 26 -> "AA".
func letterLabel(i int) string {
	label := ""
	for {
		label = string(rune('A'+i%26)) + label
		i = i/26 - 1
		if i < 0 {
			return label
		}
	}
}

// Model resolves a display label to its real model identifier.
// The second return value is false for labels outside this round.
func (lm *LabelMap) Model(label string) (string, bool) {
	model, ok := lm.byLabel[label]
	return model, ok
}

// Labels returns the display labels in assignment order.
func (lm *LabelMap) Labels() []string {
	out := make([]string, len(lm.labels))
	copy(out, lm.labels)
	return out
}

// Models returns the real model identifiers in label assignment order.
func (lm *LabelMap) Models() []string {
	out := make([]string, 0, len(lm.labels))
	for _, label := range lm.labels {
		out = append(out, lm.byLabel[label])
	}
	return out
}

// Len reports how many labels the round assigned.
func (lm *LabelMap) Len() int { return len(lm.labels) }
