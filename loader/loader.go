// /home/krylon/go/src/github.com/blicero/cinestat/loader/loader.go
// -*- mode: go; coding: utf-8; -*-
// Created on 28. 09. 2021 by Benjamin Walkenhorst
// (c) 2021 Benjamin Walkenhorst
// Time-stamp: <2021-10-09 18:55:21 krylon>

// Package loader implements the bulk import of the two source files, the
// movie catalog and the ratings.
//
// Each source file is loaded inside a single transaction, so a failure
// halfway through leaves the database as it was before the import began.
package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/blicero/cinestat/common"
	"github.com/blicero/cinestat/database"
	"github.com/blicero/cinestat/logdomain"
	"github.com/blicero/cinestat/objects"
	"github.com/blicero/cinestat/omdb"
	"github.com/blicero/krylib"
)

//go:generate stringer -type=Policy

// Policy determines how the Loader reacts to malformed rows in a source
// file: Strict aborts the import (rolling back the whole file), Lenient
// logs the row, skips it, and carries on. Constraint violations abort the
// import regardless of the Policy.
type Policy uint8

// The supported policies.
const (
	Strict Policy = iota
	Lenient
)

// Result describes the outcome of loading one source file.
type Result struct {
	BatchID string
	Seen    int
	Loaded  int
	Skipped int
}

func (r *Result) String() string {
	return fmt.Sprintf("Batch %s: %d rows seen, %d loaded, %d skipped",
		r.BatchID,
		r.Seen,
		r.Loaded,
		r.Skipped)
} // func (r *Result) String() string

// Loader reads the source files and feeds them to the Database.
type Loader struct {
	db     *database.Database
	meta   *omdb.Client
	log    *log.Logger
	policy Policy
}

// New creates a new Loader with the given Policy.
func New(policy Policy) (*Loader, error) {
	var (
		err error
		l   = &Loader{policy: policy}
	)

	if l.log, err = common.GetLogger(logdomain.Loader); err != nil {
		return nil, err
	} else if l.db, err = database.Open(common.DbPath); err != nil {
		l.log.Printf("[ERROR] Cannot open Database at %s: %s\n",
			common.DbPath,
			err.Error())
		return nil, err
	}

	return l, nil
} // func New(policy Policy) (*Loader, error)

// SetClient attaches an omdb.Client to the Loader, so the catalog gets
// enriched with metadata during the import. Without a client, only the
// fields the catalog source carries are loaded.
func (l *Loader) SetClient(c *omdb.Client) {
	l.meta = c
} // func (l *Loader) SetClient(c *omdb.Client)

// Close closes the Loader's database connection.
func (l *Loader) Close() error {
	return l.db.Close()
} // func (l *Loader) Close() error

// LoadMovies imports the movie catalog from the given CSV file
// (movieId,title,genres). The whole file is loaded in one transaction.
func (l *Loader) LoadMovies(path string) (*Result, error) {
	var (
		err error
		fh  *os.File
		res = &Result{BatchID: common.GetUUID()}
	)

	l.log.Printf("[INFO] Batch %s: loading movie catalog from %s\n",
		res.BatchID,
		path)

	if fh, err = os.Open(path); err != nil {
		l.log.Printf("[ERROR] Cannot open %s: %s\n",
			path,
			err.Error())
		return nil, err
	}

	defer fh.Close() // nolint: errcheck,gosec

	if err = l.db.Begin(); err != nil {
		l.log.Printf("[ERROR] Cannot begin transaction: %s\n",
			err.Error())
		return nil, err
	}

	var status bool

	defer func() {
		var err2 error
		if status {
			if err2 = l.db.Commit(); err2 != nil {
				l.log.Printf("[ERROR] Cannot commit import transaction: %s\n",
					err2.Error())
			}
		} else if err2 = l.db.Rollback(); err2 != nil {
			l.log.Printf("[ERROR] Cannot roll back import transaction: %s\n",
				err2.Error())
		}
	}()

	var rdr = csv.NewReader(fh)
	rdr.FieldsPerRecord = 3

	// Skip the header row.
	if _, err = rdr.Read(); err != nil {
		l.log.Printf("[ERROR] Cannot read header of %s: %s\n",
			path,
			err.Error())
		return nil, err
	}

	for {
		var row []string

		if row, err = rdr.Read(); err == io.EOF {
			break
		} else if err != nil {
			if l.policy == Lenient {
				l.log.Printf("[WARN] Skipping malformed row in %s: %s\n",
					path,
					err.Error())
				res.Seen++
				res.Skipped++
				continue
			}

			l.log.Printf("[ERROR] Malformed row in %s: %s\n",
				path,
				err.Error())
			return nil, err
		}

		res.Seen++

		if err = l.loadMovieRow(row); err != nil {
			if l.policy == Lenient && err == errMalformed {
				l.log.Printf("[WARN] Skipping malformed row %v\n",
					row)
				res.Skipped++
				continue
			}

			return nil, err
		}

		res.Loaded++
	}

	status = true
	l.log.Printf("[INFO] %s\n", res)
	return res, nil
} // func (l *Loader) LoadMovies(path string) (*Result, error)

// errMalformed flags rows the strictness policy may choose to skip, as
// opposed to database errors, which always abort the import.
var errMalformed = fmt.Errorf("row is malformed")

func (l *Loader) loadMovieRow(row []string) error {
	var (
		err   error
		mlID  int64
		title string
		year  int64
	)

	if mlID, err = strconv.ParseInt(row[0], 10, 64); err != nil || mlID == 0 {
		return errMalformed
	}

	title, year = parseTitleYear(row[1])
	if title == "" {
		return errMalformed
	}

	var genres = parseGenres(row[2])

	var (
		meta      *omdb.Result
		directors []string
	)

	if l.meta != nil {
		if meta, err = l.meta.Lookup(title, year); err == omdb.ErrNotFound {
			meta = nil
		} else if err != nil {
			l.log.Printf("[WARN] Lookup of %q failed, continuing without metadata: %s\n",
				title,
				err.Error())
			meta = nil
		}
	}

	var m *objects.Movie

	if m, err = l.findMovie(mlID, meta, title); err != nil {
		return err
	} else if m == nil {
		m = &objects.Movie{
			MLID:  mlID,
			Title: title,
			Year:  year,
		}

		if meta != nil {
			m.ExtID = meta.ImdbID
		}

		if err = l.db.MovieAdd(m); err != nil {
			return err
		}
	}

	if meta != nil {
		if m.MLID == 0 {
			m.MLID = mlID
		}
		if m.ExtID == "" {
			m.ExtID = meta.ImdbID
		}
		if m.Year == 0 {
			m.Year = year
		}
		m.RuntimeMinutes = meta.RuntimeMinutes()
		if meta.Plot != "N/A" {
			m.Plot = meta.Plot
		}
		if meta.BoxOffice != "N/A" {
			m.BoxOffice = meta.BoxOffice
		}
		m.ReleaseDate = meta.ReleaseDate()

		if err = l.db.MovieUpdateMeta(m); err != nil {
			return err
		}

		genres = mergeNames(genres, meta.Genres())
		directors = meta.Directors()
	} else if m.MLID == 0 {
		m.MLID = mlID

		if err = l.db.MovieUpdateMeta(m); err != nil {
			return err
		}
	}

	for _, name := range genres {
		var g *objects.Genre

		if g, err = l.db.GenreGetByName(name); err != nil {
			return err
		} else if g == nil {
			if g, err = l.db.GenreAdd(name); err != nil {
				return err
			}
		}

		if err = l.db.GenreLinkAdd(m, g); err != nil {
			return err
		}
	}

	for _, name := range directors {
		var d *objects.Director

		if d, err = l.db.DirectorGetByName(name); err != nil {
			return err
		} else if d == nil {
			if d, err = l.db.DirectorAdd(name); err != nil {
				return err
			}
		}

		if err = l.db.DirectorLinkAdd(m, d); err != nil {
			return err
		}
	}

	return nil
} // func (l *Loader) loadMovieRow(row []string) error

// findMovie looks for an existing catalog row the incoming row refers to:
// first by the dataset ID, then by the external ID (if the metadata source
// supplied one), then by the title. The two identifier namespaces are
// never merged; if a row is found under one scheme, the other identifier
// is merely filled in if it was missing.
func (l *Loader) findMovie(mlID int64, meta *omdb.Result, title string) (*objects.Movie, error) {
	var (
		err error
		m   *objects.Movie
	)

	if m, err = l.db.MovieGetByMLID(mlID); err != nil {
		return nil, err
	} else if m != nil {
		return m, nil
	}

	if meta != nil && meta.ImdbID != "" {
		if m, err = l.db.MovieGetByExtID(meta.ImdbID); err != nil {
			return nil, err
		} else if m != nil {
			return m, nil
		}
	}

	return l.db.MovieGetByTitle(title)
} // func (l *Loader) findMovie(mlID int64, meta *omdb.Result, title string) (*objects.Movie, error)

// LoadRatings imports the ratings from the given CSV file
// (userId,movieId,rating,timestamp). The whole file is loaded in one
// transaction.
func (l *Loader) LoadRatings(path string) (*Result, error) {
	var (
		err    error
		exists bool
		fh     *os.File
		res    = &Result{BatchID: common.GetUUID()}
	)

	if exists, err = krylib.Fexists(path); err != nil {
		return nil, err
	} else if !exists {
		return nil, fmt.Errorf("ratings file %s does not exist", path)
	}

	l.log.Printf("[INFO] Batch %s: loading ratings from %s\n",
		res.BatchID,
		path)

	if fh, err = os.Open(path); err != nil {
		l.log.Printf("[ERROR] Cannot open %s: %s\n",
			path,
			err.Error())
		return nil, err
	}

	defer fh.Close() // nolint: errcheck,gosec

	if err = l.db.Begin(); err != nil {
		l.log.Printf("[ERROR] Cannot begin transaction: %s\n",
			err.Error())
		return nil, err
	}

	var status bool

	defer func() {
		var err2 error
		if status {
			if err2 = l.db.Commit(); err2 != nil {
				l.log.Printf("[ERROR] Cannot commit import transaction: %s\n",
					err2.Error())
			}
		} else if err2 = l.db.Rollback(); err2 != nil {
			l.log.Printf("[ERROR] Cannot roll back import transaction: %s\n",
				err2.Error())
		}
	}()

	var rdr = csv.NewReader(fh)
	rdr.FieldsPerRecord = 4

	if _, err = rdr.Read(); err != nil {
		l.log.Printf("[ERROR] Cannot read header of %s: %s\n",
			path,
			err.Error())
		return nil, err
	}

	for {
		var (
			row []string
			r   *objects.Rating
		)

		if row, err = rdr.Read(); err == io.EOF {
			break
		} else if err != nil {
			if l.policy == Lenient {
				l.log.Printf("[WARN] Skipping malformed row in %s: %s\n",
					path,
					err.Error())
				res.Seen++
				res.Skipped++
				continue
			}

			l.log.Printf("[ERROR] Malformed row in %s: %s\n",
				path,
				err.Error())
			return nil, err
		}

		res.Seen++

		if r = parseRatingRow(row); r == nil {
			if l.policy == Lenient {
				l.log.Printf("[WARN] Skipping malformed row %v\n",
					row)
				res.Skipped++
				continue
			}

			l.log.Printf("[ERROR] Malformed row %v\n",
				row)
			return nil, errMalformed
		}

		if err = l.db.RatingAdd(r); err != nil {
			return nil, err
		}

		res.Loaded++
	}

	status = true
	l.log.Printf("[INFO] %s\n", res)
	return res, nil
} // func (l *Loader) LoadRatings(path string) (*Result, error)

func parseRatingRow(row []string) *objects.Rating {
	var (
		err   error
		r     objects.Rating
		stamp int64
	)

	if r.UserID, err = strconv.ParseInt(row[0], 10, 64); err != nil || r.UserID == 0 {
		return nil
	} else if r.MLID, err = strconv.ParseInt(row[1], 10, 64); err != nil || r.MLID == 0 {
		return nil
	} else if r.Score, err = strconv.ParseFloat(row[2], 64); err != nil {
		return nil
	} else if stamp, err = strconv.ParseInt(row[3], 10, 64); err != nil {
		return nil
	}

	r.Timestamp = time.Unix(stamp, 0)
	return &r
} // func parseRatingRow(row []string) *objects.Rating

// parseTitleYear splits the release year off a title like
// "Toy Story (1995)". If the title carries no year, the year is 0.
func parseTitleYear(s string) (string, int64) {
	s = strings.TrimSpace(s)

	if !strings.HasSuffix(s, ")") {
		return s, 0
	}

	var idx = strings.LastIndex(s, "(")
	if idx < 1 {
		return s, 0
	}

	var (
		err  error
		year int64
	)

	if year, err = strconv.ParseInt(strings.TrimSuffix(s[idx+1:], ")"), 10, 64); err != nil {
		return s, 0
	}

	return strings.TrimSpace(s[:idx]), year
} // func parseTitleYear(s string) (string, int64)

// parseGenres splits a genre field in either the catalog source's form
// ("Action|Adventure|Sci-Fi") or the metadata source's form
// ("Action, Adventure, Sci-Fi").
func parseGenres(s string) []string {
	if s == "" {
		return nil
	}

	var (
		parts []string
		list  = make([]string, 0, 4)
	)

	if strings.Contains(s, "|") {
		parts = strings.Split(s, "|")
	} else {
		parts = strings.Split(s, ",")
	}

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" && p != "(no genres listed)" {
			list = append(list, p)
		}
	}

	return list
} // func parseGenres(s string) []string

// mergeNames merges two lists of names, keeping the order and dropping
// duplicates.
func mergeNames(a, b []string) []string {
	var (
		seen = make(map[string]bool, len(a)+len(b))
		list = make([]string, 0, len(a)+len(b))
	)

	for _, name := range append(a, b...) {
		if !seen[name] {
			seen[name] = true
			list = append(list, name)
		}
	}

	return list
} // func mergeNames(a, b []string) []string
