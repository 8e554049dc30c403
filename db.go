package gradient

import (
	"database/sql"
	"fmt"

	"github.com/klauspost/compress/zstd"
	_ "github.com/mattn/go-sqlite3"
)

// CatalogDB records ripped gradients along with the image they came from
type CatalogDB struct {
	db  *sql.DB
	enc *zstd.Encoder
	dec *zstd.Decoder
}

// Entry summarises a gradient stored in the catalog
type Entry struct {
	Name   string
	Source string
	Mode   Mode
	Height int
	Size   int
}

// NewCatalogDB opens the catalog in file, creating it if necessary
func NewCatalogDB(file string) (*CatalogDB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS source (id INTEGER PRIMARY KEY NOT NULL, sha1 TEXT NOT NULL UNIQUE, path TEXT NOT NULL)"); err != nil {
		db.Close()
		return nil, err
	}

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS gradient (id INTEGER PRIMARY KEY NOT NULL, name TEXT NOT NULL UNIQUE, source_id INTEGER NOT NULL, mode INTEGER NOT NULL, x INTEGER NOT NULL, y_start INTEGER NOT NULL, y_end INTEGER NOT NULL, height INTEGER NOT NULL, size INTEGER NOT NULL, listing BLOB NOT NULL, FOREIGN KEY(source_id) REFERENCES source(id))"); err != nil {
		db.Close()
		return nil, err
	}

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		db.Close()
		return nil, err
	}

	dec, err := zstd.NewReader(nil)
	if err != nil {
		enc.Close()
		db.Close()
		return nil, err
	}

	return &CatalogDB{
		db:  db,
		enc: enc,
		dec: dec,
	}, nil
}

// Close closes the catalog
func (db *CatalogDB) Close() error {
	db.dec.Close()
	if err := db.enc.Close(); err != nil {
		db.db.Close()
		return err
	}
	return db.db.Close()
}

func (db *CatalogDB) addSource(sha, path string) (int64, error) {
	// Workers may add the same image concurrently
	if _, err := db.db.Exec("INSERT OR IGNORE INTO source (sha1, path) VALUES (?, ?)", sha, path); err != nil {
		return 0, err
	}

	var id int64
	if err := db.db.QueryRow("SELECT id FROM source WHERE sha1 = ?", sha).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// Store records g, replacing any gradient with the same name
func (db *CatalogDB) Store(g *Gradient) error {
	source, err := db.addSource(g.SHA1, g.Source)
	if err != nil {
		return err
	}

	listing := db.enc.EncodeAll(g.Listing, nil)

	if _, err := db.db.Exec("INSERT OR REPLACE INTO gradient (name, source_id, mode, x, y_start, y_end, height, size, listing) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)", g.Name, source, int(g.Mode), g.X, g.Start, g.End, g.Height, len(g.Binary), listing); err != nil {
		return err
	}
	return nil
}

// Find returns the gradient called name or nil if there is none. Only the
// listing is stored so the returned gradient has no binary form.
func (db *CatalogDB) Find(name string) (*Gradient, error) {
	g := Gradient{Name: name}
	var mode int
	var listing []byte
	switch err := db.db.QueryRow("SELECT s.sha1, s.path, g.mode, g.x, g.y_start, g.y_end, g.height, g.listing FROM gradient AS g JOIN source AS s ON g.source_id = s.id WHERE g.name = ?", name).Scan(&g.SHA1, &g.Source, &mode, &g.X, &g.Start, &g.End, &g.Height, &listing); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		b, err := db.dec.DecodeAll(listing, nil)
		if err != nil {
			return nil, err
		}
		g.Mode = Mode(mode)
		g.Listing = b
		return &g, nil
	default:
		return nil, err
	}
}

// List returns every gradient in the catalog ordered by name
func (db *CatalogDB) List() ([]Entry, error) {
	rows, err := db.db.Query("SELECT g.name, s.path, g.mode, g.height, g.size FROM gradient AS g JOIN source AS s ON g.source_id = s.id ORDER BY g.name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var mode int
		if err := rows.Scan(&e.Name, &e.Source, &mode, &e.Height, &e.Size); err != nil {
			return nil, err
		}
		e.Mode = Mode(mode)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
