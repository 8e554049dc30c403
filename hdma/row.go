package hdma

// Payload is the data sent to the registers for one scanline. Only the first
// n bytes are significant where n is the payload size of the owning table.
type Payload [payloadSize]byte

// Row is one logical row of a table. It is one of Repeat, Continuous or
// Finish.
type Row interface {
	isRow()
}

// Repeat holds the same payload for Count scanlines
type Repeat struct {
	Count int
	Data  Payload
}

// Continuous changes the payload every scanline, the scanline count is
// implied by the length of Data
type Continuous struct {
	Data []Payload
}

// Finish terminates a table
type Finish struct{}

func (Repeat) isRow()     {}
func (Continuous) isRow() {}
func (Finish) isRow()     {}

func newPayload(b []byte) (p Payload) {
	copy(p[:], b)
	return
}

// NewRepeat returns a repeat row of count scanlines. Any bytes of data beyond
// four are ignored and missing bytes are zero.
func NewRepeat(count int, data []byte) Repeat {
	if count < 1 {
		panic("hdma: repeat count must be positive")
	}
	return Repeat{Count: count, Data: newPayload(data)}
}

// NewScanline returns a repeat row of a single scanline
func NewScanline(data []byte) Repeat {
	return NewRepeat(1, data)
}

// NewContinuous splits data into payloads of size bytes each, padding the
// final payload with zeroes if data is not a multiple of size.
func NewContinuous(data []byte, size int) Continuous {
	checkSize(size)

	c := Continuous{Data: make([]Payload, 0, (len(data)+size-1)/size)}
	for len(data) > 0 {
		n := size
		if n > len(data) {
			n = len(data)
		}
		c.Data = append(c.Data, newPayload(data[:n]))
		data = data[n:]
	}
	return c
}

// scanlines returns the number of scanlines covered by r
func scanlines(r Row) int {
	switch r := r.(type) {
	case Repeat:
		return r.Count
	case Continuous:
		return len(r.Data)
	case Finish:
		return 0
	}
	panic("hdma: unknown row type")
}
