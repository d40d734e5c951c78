// /home/krylon/go/src/github.com/blicero/cinestat/database/04_director_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 21. 09. 2021 by Benjamin Walkenhorst
// (c) 2021 Benjamin Walkenhorst
// Time-stamp: <2021-10-09 21:21:48 krylon>

package database

import (
	"testing"

	"github.com/blicero/cinestat/objects"
)

var testDirectors = make(map[string]*objects.Director)

var testDirectorLinks = map[string][]int64{
	"Denis Villeneuve":    {1},
	"Akira Kurosawa":      {2},
	"Phil Alden Robinson": {3},
	"Ron Underwood":       {4},
	"John Carpenter":      {5, 6},
}

func TestDirectorAdd(t *testing.T) {
	if tdb == nil {
		t.SkipNow()
	}

	for name := range testDirectorLinks {
		var (
			err error
			d   *objects.Director
		)

		if d, err = tdb.DirectorAdd(name); err != nil {
			t.Fatalf("Cannot add Director %s: %s",
				name,
				err.Error())
		} else if d.ID == 0 {
			t.Fatalf("DirectorAdd(%s) returned a Director without a valid ID",
				name)
		}

		testDirectors[name] = d
	}
} // func TestDirectorAdd(t *testing.T)

func TestDirectorLinkAdd(t *testing.T) {
	if tdb == nil {
		t.SkipNow()
	}

	for name, ids := range testDirectorLinks {
		var d = testDirectors[name]

		for _, id := range ids {
			var (
				err error
				m   = movieByML(id)
			)

			if err = tdb.DirectorLinkAdd(m, d); err != nil {
				t.Fatalf("Cannot link Movie %s to Director %s: %s",
					m.Title,
					d.Name,
					err.Error())
			}
		}
	}
} // func TestDirectorLinkAdd(t *testing.T)

func TestDirectorLinkGetByMovie(t *testing.T) {
	if tdb == nil {
		t.SkipNow()
	}

	var (
		err  error
		m    = movieByML(1)
		list []objects.Director
	)

	if list, err = tdb.DirectorLinkGetByMovie(m); err != nil {
		t.Fatalf("Cannot get Directors of %s: %s",
			m.Title,
			err.Error())
	} else if len(list) != 1 {
		t.Fatalf("Movie %s should have 1 Director, not %d",
			m.Title,
			len(list))
	} else if list[0].Name != "Denis Villeneuve" {
		t.Fatalf("Movie %s has the wrong Director: %s",
			m.Title,
			list[0].Name)
	}
} // func TestDirectorLinkGetByMovie(t *testing.T)

func TestDirectorLinkGetByDirector(t *testing.T) {
	if tdb == nil {
		t.SkipNow()
	}

	for name, ids := range testDirectorLinks {
		var (
			err  error
			d    = testDirectors[name]
			list []objects.Movie
		)

		if list, err = tdb.DirectorLinkGetByDirector(d); err != nil {
			t.Fatalf("Cannot get Movies of Director %s: %s",
				name,
				err.Error())
		} else if len(list) != len(ids) {
			t.Fatalf("Director %s should have %d Movies, not %d",
				name,
				len(ids),
				len(list))
		}
	}
} // func TestDirectorLinkGetByDirector(t *testing.T)

// Deleting a Director must take the links with it, but leave the Movies
// alone.
func TestDirectorDelete(t *testing.T) {
	if tdb == nil {
		t.SkipNow()
	}

	var (
		err    error
		victim *objects.Director
		m      = movieByML(1)
		list   []objects.Director
	)

	if victim, err = tdb.DirectorAdd("Alan Smithee"); err != nil {
		t.Fatalf("Cannot add Director: %s",
			err.Error())
	} else if err = tdb.DirectorLinkAdd(m, victim); err != nil {
		t.Fatalf("Cannot link %s to %s: %s",
			m.Title,
			victim.Name,
			err.Error())
	} else if err = tdb.DirectorDelete(victim); err != nil {
		t.Fatalf("Cannot delete Director %s: %s",
			victim.Name,
			err.Error())
	} else if list, err = tdb.DirectorLinkGetByMovie(m); err != nil {
		t.Fatalf("Cannot get Directors of %s: %s",
			m.Title,
			err.Error())
	} else if len(list) != 1 {
		t.Fatalf("Movie %s should have 1 Director again, not %d",
			m.Title,
			len(list))
	}

	var res *objects.Movie

	if res, err = tdb.MovieGetByID(m.ID); err != nil {
		t.Fatalf("Cannot load Movie %s: %s",
			m.Title,
			err.Error())
	} else if res == nil {
		t.Fatalf("Movie %s disappeared along with the Director",
			m.Title)
	}
} // func TestDirectorDelete(t *testing.T)
