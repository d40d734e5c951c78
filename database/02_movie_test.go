// /home/krylon/go/src/github.com/blicero/cinestat/database/02_movie_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 20. 09. 2021 by Benjamin Walkenhorst
// (c) 2021 Benjamin Walkenhorst
// Time-stamp: <2021-10-09 20:14:55 krylon>

package database

import (
	"testing"

	"github.com/blicero/cinestat/objects"
)

var testMovies = []objects.Movie{
	{Title: "Dune", MLID: 1, Year: 2021, ExtID: "tt1160419"},
	{Title: "The Hidden Fortress", MLID: 2, Year: 1958, ExtID: "tt0051808"},
	{Title: "Sneakers", MLID: 3, Year: 1992, ExtID: "tt0105435"},
	{Title: "Tremors", MLID: 4, Year: 1990, ExtID: "tt0100814"},
	{Title: "Galaxy Quest", MLID: 5, Year: 1999, ExtID: "tt0118276"},
	{Title: "Dark Star", MLID: 6, Year: 1974},
	{Title: "Home Movie", MLID: 7},
}

// movieByML returns the test Movie with the given dataset ID.
func movieByML(id int64) *objects.Movie {
	for i := range testMovies {
		if testMovies[i].MLID == id {
			return &testMovies[i]
		}
	}

	return nil
} // func movieByML(id int64) *objects.Movie

func TestMovieAdd(t *testing.T) {
	if tdb == nil {
		t.SkipNow()
	}

	var err error

	for i := range testMovies {
		var m = &testMovies[i]

		if err = tdb.MovieAdd(m); err != nil {
			t.Fatalf("Cannot add Movie %s to Database: %s",
				m.Title,
				err.Error())
		} else if m.ID == 0 {
			t.Fatalf("MovieAdd(%s) did not return an error, but the Movie has no valid ID",
				m.Title)
		}
	}
} // func TestMovieAdd(t *testing.T)

func TestMovieExtIDUnique(t *testing.T) {
	if tdb == nil {
		t.SkipNow()
	}

	var dup = &objects.Movie{
		Title: "Dune, Again",
		MLID:  1001,
		Year:  2021,
		ExtID: "tt1160419",
	}

	if err := tdb.MovieAdd(dup); err == nil {
		t.Errorf("Adding a Movie with a duplicate external ID (%s) should have failed",
			dup.ExtID)
	}
} // func TestMovieExtIDUnique(t *testing.T)

func TestMovieMLIDUnique(t *testing.T) {
	if tdb == nil {
		t.SkipNow()
	}

	var dup = &objects.Movie{
		Title: "Dune, Yet Again",
		MLID:  1,
	}

	if err := tdb.MovieAdd(dup); err == nil {
		t.Errorf("Adding a Movie with a duplicate dataset ID (%d) should have failed",
			dup.MLID)
	}
} // func TestMovieMLIDUnique(t *testing.T)

func TestMovieGetAll(t *testing.T) {
	if tdb == nil {
		t.SkipNow()
	}

	var (
		err  error
		list []objects.Movie
	)

	if list, err = tdb.MovieGetAll(); err != nil {
		t.Fatalf("MovieGetAll failed: %s",
			err.Error())
	} else if len(list) != len(testMovies) {
		t.Fatalf("MovieGetAll returned an unexpected number of Movies: %d (expected %d)",
			len(list),
			len(testMovies))
	}
} // func TestMovieGetAll(t *testing.T)

func TestMovieGetByMLID(t *testing.T) {
	if tdb == nil {
		t.SkipNow()
	}

	for i := range testMovies {
		var (
			err error
			m   = &testMovies[i]
			res *objects.Movie
		)

		if res, err = tdb.MovieGetByMLID(m.MLID); err != nil {
			t.Fatalf("Error getting Movie %s by dataset ID (%d): %s",
				m.Title,
				m.MLID,
				err.Error())
		} else if res == nil {
			t.Fatalf("MovieGetByMLID did not find %s (%d)",
				m.Title,
				m.MLID)
		} else if res.Title != m.Title {
			t.Fatalf("MovieGetByMLID(%d) returned wrong title: %q (expected %q)",
				m.MLID,
				res.Title,
				m.Title)
		} else if res.Year != m.Year {
			t.Fatalf("MovieGetByMLID(%d) returned wrong year: %d (expected %d)",
				m.MLID,
				res.Year,
				m.Year)
		}
	}
} // func TestMovieGetByMLID(t *testing.T)

func TestMovieGetByExtID(t *testing.T) {
	if tdb == nil {
		t.SkipNow()
	}

	for i := range testMovies {
		var m = &testMovies[i]

		if m.ExtID == "" {
			continue
		}

		var (
			err error
			res *objects.Movie
		)

		if res, err = tdb.MovieGetByExtID(m.ExtID); err != nil {
			t.Fatalf("Error getting Movie %s by external ID (%s): %s",
				m.Title,
				m.ExtID,
				err.Error())
		} else if res == nil {
			t.Fatalf("MovieGetByExtID did not find %s (%s)",
				m.Title,
				m.ExtID)
		} else if res.ID != m.ID {
			t.Fatalf("MovieGetByExtID(%s) returned wrong Movie: #%d (expected #%d)",
				m.ExtID,
				res.ID,
				m.ID)
		}
	}
} // func TestMovieGetByExtID(t *testing.T)

func TestMovieUpdateMeta(t *testing.T) {
	if tdb == nil {
		t.SkipNow()
	}

	var (
		err error
		m   = movieByML(6)
		res *objects.Movie
	)

	m.ExtID = "tt0069945"
	m.RuntimeMinutes = 83
	m.Plot = "A crew of bored astronauts blows up unstable planets."

	if err = tdb.MovieUpdateMeta(m); err != nil {
		t.Fatalf("Cannot update metadata of %s: %s",
			m.Title,
			err.Error())
	} else if res, err = tdb.MovieGetByID(m.ID); err != nil {
		t.Fatalf("Cannot load %s after update: %s",
			m.Title,
			err.Error())
	} else if res.ExtID != m.ExtID {
		t.Errorf("External ID was not updated: %q (expected %q)",
			res.ExtID,
			m.ExtID)
	} else if res.RuntimeMinutes != m.RuntimeMinutes {
		t.Errorf("Runtime was not updated: %d (expected %d)",
			res.RuntimeMinutes,
			m.RuntimeMinutes)
	}
} // func TestMovieUpdateMeta(t *testing.T)
