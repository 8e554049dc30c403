package hdma

// Table is an HDMA table. As well as the actual hardware tables it can
// describe pseudo-tables, such as big gradients read by software, which allow
// more lines per repeat row.
type Table struct {
	rows []Row
	size int
	max  int
	mode WriteMode
	name string
}

// New returns an empty table named name with payloads of size bytes, written
// using mode, where a single repeat row holds at most max scanlines.
func New(size int, mode WriteMode, name string, max int) *Table {
	checkSize(size)
	if max < 1 || max > 0xff {
		panic("hdma: maximum line count outside of the range 1-255")
	}
	return &Table{
		size: size,
		max:  max,
		mode: mode,
		name: name,
	}
}

// NewRealTable returns an empty table limited to MaxRepeat lines per repeat
// row.
func NewRealTable(size int, mode WriteMode, name string) *Table {
	return New(size, mode, name, MaxRepeat)
}

// Push appends r to the table
func (t *Table) Push(r Row) {
	t.rows = append(t.rows, r)
}

// Rows returns the current rows of the table
func (t *Table) Rows() []Row {
	return t.rows
}

// Name returns the label written before the table
func (t *Table) Name() string {
	return t.name
}

// Size returns the number of significant bytes per payload
func (t *Table) Size() int {
	return t.size
}

// Max returns the maximum line count of a single repeat row
func (t *Table) Max() int {
	return t.max
}

// Mode returns how payloads are written
func (t *Table) Mode() WriteMode {
	return t.mode
}

// Scanlines returns the number of scanlines the rows of the table cover
func (t *Table) Scanlines() int {
	n := 0
	for _, r := range t.rows {
		n += scanlines(r)
	}
	return n
}
