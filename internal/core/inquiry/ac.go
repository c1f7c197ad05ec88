package inquiry

// A small Aho-Corasick automaton over raw UTF-8 bytes. A byte-level hit is exactly a
// substring hit for valid UTF-8 keywords, so one scan answers "which table entries
// have a keyword contained in the text" for every entry at once

type acNode struct {
	// trans[b] = next state or -1 if absent
	trans  [256]int
	fail   int
	output []int // entry indexes whose keyword ends here
}

type acAutomaton struct {
	nodes []acNode
}

func newAutomaton() *acAutomaton {
	a := &acAutomaton{}
	a.nodes = append(a.nodes, emptyNode())
	return a
}

func emptyNode() acNode {
	var n acNode
	for i := range n.trans {
		n.trans[i] = -1
	}
	return n
}

// add inserts a keyword for entry id. Several keywords may share an id
func (a *acAutomaton) add(kw string, id int) {
	if kw == "" {
		return
	}
	state := 0
	for i := 0; i < len(kw); i++ {
		b := kw[i]
		nxt := a.nodes[state].trans[b]
		if nxt == -1 {
			nxt = len(a.nodes)
			a.nodes[state].trans[b] = nxt
			a.nodes = append(a.nodes, emptyNode())
		}
		state = nxt
	}
	a.nodes[state].output = append(a.nodes[state].output, id)
}

// build computes failure links breadth first and folds suffix outputs into each node
func (a *acAutomaton) build() {
	q := make([]int, 0, len(a.nodes))
	for b := range 256 {
		if s := a.nodes[0].trans[b]; s != -1 {
			a.nodes[s].fail = 0
			q = append(q, s)
		}
	}

	for qi := 0; qi < len(q); qi++ {
		r := q[qi]
		for b := range 256 {
			s := a.nodes[r].trans[b]
			if s == -1 {
				continue
			}
			q = append(q, s)

			f := a.nodes[r].fail
			for f != 0 && a.nodes[f].trans[b] == -1 {
				f = a.nodes[f].fail
			}
			if nxt := a.nodes[f].trans[b]; nxt != -1 && nxt != s {
				a.nodes[s].fail = nxt
			} else {
				a.nodes[s].fail = 0
			}
			a.nodes[s].output = append(a.nodes[s].output, a.nodes[a.nodes[s].fail].output...)
		}
	}
}

// scan walks text and calls cb for every entry id whose keyword ends at the current byte.
// Scanning stops when cb returns false
func (a *acAutomaton) scan(text string, cb func(id int) bool) {
	state := 0
	for i := 0; i < len(text); i++ {
		b := text[i]
		for state != 0 && a.nodes[state].trans[b] == -1 {
			state = a.nodes[state].fail
		}
		if nxt := a.nodes[state].trans[b]; nxt != -1 {
			state = nxt
		}
		for _, id := range a.nodes[state].output {
			if !cb(id) {
				return
			}
		}
	}
}

// orderedTable resolves the first entry, in table order, that has any keyword
// contained in the text. Table order is the priority; text order never matters
type orderedTable struct {
	ac     *acAutomaton
	values []string
}

func newOrderedTable(keywords [][]string, values []string) *orderedTable {
	ac := newAutomaton()
	for id, kws := range keywords {
		for _, kw := range kws {
			ac.add(kw, id)
		}
	}
	ac.build()
	return &orderedTable{ac: ac, values: values}
}

// first returns the value of the highest priority entry present in text
func (t *orderedTable) first(text string) (string, bool) {
	if t == nil || len(t.values) == 0 || text == "" {
		return "", false
	}
	best := len(t.values)
	t.ac.scan(text, func(id int) bool {
		if id < best {
			best = id
		}
		// entry 0 cannot be beaten
		return best != 0
	})
	if best == len(t.values) {
		return "", false
	}
	return t.values[best], true
}
