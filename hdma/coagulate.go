package hdma

// mergeFunc combines the last row written so far with the next row and
// returns the rows that replace the last one
type mergeFunc func(last, next Row) []Row

// own returns r with any payload slice copied so that merging never writes
// into a slice the caller still holds
func own(r Row) Row {
	if c, ok := r.(Continuous); ok {
		return Continuous{Data: append([]Payload(nil), c.Data...)}
	}
	return r
}

func (t *Table) coagulate(merge mergeFunc) {
	old := t.rows
	t.rows = nil

	rows := make([]Row, 0, len(old)+1)
	for _, r := range old {
		if c, ok := r.(Continuous); ok && len(c.Data) == 0 {
			continue
		}
		if len(rows) == 0 {
			rows = append(rows, own(r))
			continue
		}
		last := rows[len(rows)-1]
		rows = append(rows[:len(rows)-1], merge(last, r)...)
	}

	t.rows = rows
}

// Coagulate packs the rows of the table into the fewest repeat and
// continuous rows and terminates the table. The last row is reduced to a
// single scanline as nothing is read after it.
func (t *Table) Coagulate() {
	t.coagulate(merge)

	if n := len(t.rows); n > 0 {
		if r, ok := t.rows[n-1].(Repeat); ok {
			r.Count = 1
			t.rows[n-1] = r
		}
	}

	t.Push(Finish{})
}

// CoagulateRepeat only merges neighbouring repeat rows with the same payload
// and terminates the table. It is meant for pseudo-tables that are not read
// by HDMA and so have no continuous mode.
func (t *Table) CoagulateRepeat() {
	t.coagulate(mergeRepeat)
	t.Push(Finish{})
}

// merge applies the rules for combining two rows:
//
//	last       next       condition       result
//	Repeat     Repeat     same payload    Repeat(sum)
//	Repeat(1)  Repeat(1)  different       Continuous(last, next)
//	Repeat(1)  Continuous                 Continuous(last, next...)
//	Continuous Repeat(1)                  see popMerge
//	Continuous Continuous                 Continuous(last..., next...)
//	anything else                         last, next
func merge(last, next Row) []Row {
	switch l := last.(type) {
	case Repeat:
		switch n := next.(type) {
		case Repeat:
			switch {
			case l.Data == n.Data:
				return []Row{Repeat{Count: l.Count + n.Count, Data: n.Data}}
			case l.Count == 1 && n.Count == 1:
				return []Row{Continuous{Data: []Payload{l.Data, n.Data}}}
			}
		case Continuous:
			if l.Count == 1 {
				data := make([]Payload, 0, len(n.Data)+1)
				data = append(data, l.Data)
				return []Row{Continuous{Data: append(data, n.Data...)}}
			}
		}
	case Continuous:
		switch n := next.(type) {
		case Repeat:
			if n.Count == 1 {
				return popMerge(l, n)
			}
		case Continuous:
			return []Row{Continuous{Data: append(l.Data, n.Data...)}}
		}
	}
	return []Row{last, own(next)}
}

// popMerge appends a single scanline to a continuous row. If it matches the
// final value of the row, both are split off into a new repeat row instead
// so that a run of equal values does not stay continuous.
func popMerge(c Continuous, r Repeat) []Row {
	n := len(c.Data)
	if n == 0 {
		panic("hdma: empty continuous row while coagulating")
	}

	if c.Data[n-1] != r.Data {
		return []Row{Continuous{Data: append(c.Data, r.Data)}}
	}

	repeat := Repeat{Count: 2, Data: r.Data}
	if n == 1 {
		return []Row{repeat}
	}
	return []Row{Continuous{Data: c.Data[:n-1]}, repeat}
}

func mergeRepeat(last, next Row) []Row {
	l, ok1 := last.(Repeat)
	n, ok2 := next.(Repeat)
	if ok1 && ok2 && l.Data == n.Data {
		return []Row{Repeat{Count: l.Count + n.Count, Data: n.Data}}
	}
	return []Row{last, own(next)}
}
