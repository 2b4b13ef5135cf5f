package redfa

// Table is a serializable snapshot of a compiled DFA. The engine defines
// no persistence format of its own; embedding callers marshal the
// snapshot however they like (the bundled CLI writes it as YAML).
type Table struct {
	Start       int          `yaml:"start" json:"start"`
	Dead        int          `yaml:"dead" json:"dead"`
	Alphabet    string       `yaml:"alphabet" json:"alphabet"`
	Accepting   []int        `yaml:"accepting" json:"accepting"`
	Transitions []Transition `yaml:"transitions" json:"transitions"`
}

// Transition is one entry of the DFA's total transition function.
type Transition struct {
	From   int    `yaml:"from" json:"from"`
	Symbol string `yaml:"symbol" json:"symbol"`
	To     int    `yaml:"to" json:"to"`
}

// Table snapshots the DFA in deterministic order: states by handle,
// symbols by the sorted alphabet.
func (d *DFA) Table() *Table {
	t := &Table{
		Start:    d.Start,
		Dead:     d.dead,
		Alphabet: string(d.Alpha),
	}
	for _, s := range d.states {
		if s.accept {
			t.Accepting = append(t.Accepting, s.id)
		}
		for _, ch := range d.Alpha {
			t.Transitions = append(t.Transitions, Transition{
				From:   s.id,
				Symbol: string(ch),
				To:     s.trans[ch],
			})
		}
	}
	return t
}
