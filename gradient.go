/*
Package gradient rips HDMA colour gradients for the SNES from a column of an
image and writes them as assembly listings or raw tables.

Depending on the mode a gradient is made of one to three HDMA tables writing
the fixed colour, a single big pseudo-table that is copied to the fixed colour
registers by software, or one table writing a CG-RAM colour. Ripped gradients
can be kept in a small catalog database.
*/
package gradient

import (
	"errors"
	"log"
)

// MaxScanlines is the number of visible scanlines on the SNES
const MaxScanlines = 224

var (
	errNoCatalog = errors.New("gradient: no catalog database")
	errCGRAM     = errors.New("gradient: CG-RAM index outside of the range 0-255")
)

// Ripper rips gradients from images and optionally records them in a catalog
type Ripper struct {
	db     *CatalogDB
	logger *log.Logger
}

// New returns a Ripper logging to logger. db may be nil if gradients are
// never stored.
func New(db *CatalogDB, logger *log.Logger) *Ripper {
	return &Ripper{
		db:     db,
		logger: logger,
	}
}
