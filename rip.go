package gradient

import (
	"bytes"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/gradient/hdma"
	"github.com/bodgit/gradient/sample"
	"golang.org/x/sync/errgroup"
)

// Options control how a gradient is ripped
type Options struct {
	// Name of the gradient in the catalog, defaults to the input filename
	// without extension
	Name string
	// Column to rip
	X int
	// First row to rip
	Start int
	// Row after the last to rip, zero means the bottom of the image
	End int
	// Number of scanlines to stretch the column to, zero means the image
	// height but at least MaxScanlines
	Height int
	Mode   Mode
	// CG-RAM index written with each colour in ModeCGRAM if UseCGRAMIndex
	// is set, otherwise only the colour is written
	CGRAMIndex    int
	UseCGRAMIndex bool
	// Reduce the column to at most this many colours, zero to disable
	Colors int
	Format Format
	// Record the gradient in the catalog
	Store bool
}

// Gradient is a ripped gradient
type Gradient struct {
	Name   string
	Source string
	SHA1   string
	Mode   Mode
	X      int
	Start  int
	End    int
	Height int
	Format Format
	// Listing is the assembly listing of every table
	Listing []byte
	// Binary is the assembled bytes of every table
	Binary []byte
}

// WriteTo writes the gradient to w in its format
func (g *Gradient) WriteTo(w io.Writer) (int64, error) {
	b := g.Listing
	if g.Format == FormatBinary {
		b = g.Binary
	}
	return bytes.NewReader(b).WriteTo(w)
}

// WriteFile writes the gradient to file
func (g *Gradient) WriteFile(file string) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := g.WriteTo(f); err != nil {
		return err
	}
	return f.Close()
}

// DestinationFilename returns file with its extension replaced by the one of
// format
func DestinationFilename(file string, format Format) string {
	return strings.TrimSuffix(file, filepath.Ext(file)) + format.Ext()
}

// render coagulates and writes every table concurrently. Each table is only
// touched by its own goroutine.
func render(tables []*hdma.Table, repeatOnly, separate bool) ([]byte, []byte, error) {
	listings := make([][]byte, len(tables))
	binaries := make([][]byte, len(tables))

	var g errgroup.Group
	for i, t := range tables {
		i, t := i, t
		g.Go(func() error {
			if repeatOnly {
				t.CoagulateRepeat()
			} else {
				t.Coagulate()
			}

			b := new(bytes.Buffer)
			if _, err := t.WriteTo(b); err != nil {
				return err
			}
			if separate {
				b.WriteByte('\n')
			}
			listings[i] = b.Bytes()

			bin, err := t.MarshalBinary()
			if err != nil {
				return err
			}
			binaries[i] = bin
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return bytes.Join(listings, nil), bytes.Join(binaries, nil), nil
}

// RipImage rips a gradient from m
func (r *Ripper) RipImage(opt Options, m image.Image) (*Gradient, error) {
	imageHeight := m.Bounds().Dy()

	height := opt.Height
	if height == 0 {
		height = imageHeight
		if height < MaxScanlines {
			height = MaxScanlines
		}
	}
	end := opt.End
	if end == 0 {
		end = imageHeight
	}
	index := -1
	if opt.UseCGRAMIndex {
		if opt.CGRAMIndex < 0 || opt.CGRAMIndex > 0xff {
			return nil, errCGRAM
		}
		index = opt.CGRAMIndex
	}

	mode := opt.Mode.resolve(height)

	if height < MaxScanlines {
		r.logger.Printf("Output height %d is smaller than %d scanlines\n", height, MaxScanlines)
	}
	if mode != ModeBig && height > MaxScanlines {
		r.logger.Printf("Output height %d is larger than %d scanlines, consider a big gradient\n", height, MaxScanlines)
	}

	colours, err := sample.Column(m, opt.X, opt.Start, end, height)
	if err != nil {
		return nil, err
	}
	if opt.Colors > 0 {
		colours = sample.Reduce(colours, opt.Colors)
	}

	var (
		tables     []*hdma.Table
		repeatOnly bool
		separate   bool
	)
	switch mode {
	case ModeSingle:
		tables, separate = fixedColourTables(colours), true
	case ModeDouble:
		tables, separate = dualTables(colours), true
	case ModeBig:
		tables, repeatOnly = []*hdma.Table{bigTable(colours)}, true
	case ModeCGRAM:
		tables = []*hdma.Table{cgramTable(colours, index)}
	}

	listing, binary, err := render(tables, repeatOnly, separate)
	if err != nil {
		return nil, err
	}

	r.logger.Printf("Ripped %d scanlines in %s mode into %d bytes\n", height, mode, len(binary))

	return &Gradient{
		Name:    opt.Name,
		Mode:    mode,
		X:       opt.X,
		Start:   opt.Start,
		End:     end,
		Height:  height,
		Format:  opt.Format,
		Listing: listing,
		Binary:  binary,
	}, nil
}

// Rip rips a gradient from the image in file, storing it in the catalog if
// requested
func (r *Ripper) Rip(opt Options, file string) (*Gradient, error) {
	if opt.Store && r.db == nil {
		return nil, errNoCatalog
	}

	m, sha, err := sample.Load(file)
	if err != nil {
		return nil, err
	}

	if opt.Name == "" {
		base := filepath.Base(file)
		opt.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	g, err := r.RipImage(opt, m)
	if err != nil {
		return nil, err
	}
	g.Source = file
	g.SHA1 = sha

	if opt.Store {
		if err := r.db.Store(g); err != nil {
			return nil, err
		}
	}

	return g, nil
}
