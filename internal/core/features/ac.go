package features

// automaton is a byte-level Aho-Corasick matcher over the lexicon phrases.
// One pass over the text reports every occurrence of every phrase, overlaps included,
// which is the same answer as running strings.Contains once per phrase

const noEdge = -1

type acState struct {
	next [256]int32
	fail int32
	out  []int // phrase ids ending here
}

type automaton struct {
	states []acState
}

func newState() acState {
	var s acState
	for i := range s.next {
		s.next[i] = noEdge
	}
	return s
}

func newAutomaton() *automaton {
	return &automaton{states: []acState{newState()}}
}

// add inserts phrase under id; empty phrases are ignored
func (a *automaton) add(phrase string, id int) {
	if phrase == "" {
		return
	}
	cur := int32(0)
	for i := 0; i < len(phrase); i++ {
		b := phrase[i]
		nxt := a.states[cur].next[b]
		if nxt == noEdge {
			nxt = int32(len(a.states))
			a.states[cur].next[b] = nxt
			a.states = append(a.states, newState())
		}
		cur = nxt
	}
	a.states[cur].out = append(a.states[cur].out, id)
}

// build computes failure links breadth first; call once after all adds
func (a *automaton) build() {
	queue := make([]int32, 0, len(a.states))
	for b := 0; b < 256; b++ {
		if s := a.states[0].next[b]; s != noEdge {
			a.states[s].fail = 0
			queue = append(queue, s)
		}
	}
	for qi := 0; qi < len(queue); qi++ {
		r := queue[qi]
		for b := 0; b < 256; b++ {
			s := a.states[r].next[b]
			if s == noEdge {
				continue
			}
			queue = append(queue, s)

			f := a.states[r].fail
			for f != 0 && a.states[f].next[b] == noEdge {
				f = a.states[f].fail
			}
			if n := a.states[f].next[b]; n != noEdge {
				a.states[s].fail = n
			} else {
				a.states[s].fail = 0
			}
			a.states[s].out = append(a.states[s].out, a.states[a.states[s].fail].out...)
		}
	}
}

// scan calls hit(start, end, id) for each phrase occurrence in text
func (a *automaton) scan(text string, lens []int, hit func(start, end, id int)) {
	cur := int32(0)
	for i := 0; i < len(text); i++ {
		b := text[i]
		for cur != 0 && a.states[cur].next[b] == noEdge {
			cur = a.states[cur].fail
		}
		if n := a.states[cur].next[b]; n != noEdge {
			cur = n
		}
		for _, id := range a.states[cur].out {
			end := i + 1
			hit(end-lens[id], end, id)
		}
	}
}
