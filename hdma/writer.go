package hdma

import (
	"bytes"
	"fmt"
	"io"
)

// line is one physical row of the table
type line struct {
	count byte
	data  []Payload
}

// lines splits every row into physical rows that fit the line count byte
func (t *Table) lines(fn func(line) error) error {
	for _, row := range t.rows {
		switch r := row.(type) {
		case Repeat:
			count := r.Count
			for {
				n := count
				if n >= t.max {
					n = t.max
				}
				if err := fn(line{byte(n), []Payload{r.Data}}); err != nil {
					return err
				}
				if count < t.max {
					break
				}
				// An exact multiple of max still gets a final zero count row
				count -= t.max
			}
		case Continuous:
			data := r.Data
			for len(data) > MaxContinuous {
				if err := fn(line{continuousBit | MaxContinuous, data[:MaxContinuous]}); err != nil {
					return err
				}
				data = data[MaxContinuous:]
			}
			if err := fn(line{byte(continuousBit + len(data)), data}); err != nil {
				return err
			}
		case Finish:
			if err := fn(line{}); err != nil {
				return err
			}
		default:
			panic("hdma: unknown row type")
		}
	}
	return nil
}

func (t *Table) writeLine(w io.Writer, l line) (err error) {
	if _, err = fmt.Fprintf(w, "db $%02X", l.count); err != nil {
		return
	}
	for _, p := range l.data {
		switch t.mode {
		case Bytes:
			for _, b := range p[:t.size] {
				if _, err = fmt.Fprintf(w, ",$%02X", b); err != nil {
					return
				}
			}
		case Words:
			if t.size <= 2 {
				_, err = fmt.Fprintf(w, " : dw $%02X%02X", p[1], p[0])
			} else {
				_, err = fmt.Fprintf(w, " : dw $%02X%02X,$%02X%02X", p[1], p[0], p[3], p[2])
			}
			if err != nil {
				return
			}
		}
	}
	_, err = io.WriteString(w, "\n")
	return
}

// WriteTo writes the table as an assembly listing to w, a label line with
// the table name followed by one line per physical row. The table should not
// be modified afterwards.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	b := new(bytes.Buffer)
	fmt.Fprintf(b, "%s:\n", t.name)
	_ = t.lines(func(l line) error {
		return t.writeLine(b, l)
	})
	return b.WriteTo(w)
}

// String returns the assembly listing of the table
func (t *Table) String() string {
	b := new(bytes.Buffer)
	_, _ = t.WriteTo(b)
	return b.String()
}
