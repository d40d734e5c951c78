// /home/krylon/go/src/github.com/blicero/cinestat/database/03_genre_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 21. 09. 2021 by Benjamin Walkenhorst
// (c) 2021 Benjamin Walkenhorst
// Time-stamp: <2021-10-09 21:03:27 krylon>

package database

import (
	"testing"

	"github.com/blicero/cinestat/objects"
)

var testGenres = make(map[string]*objects.Genre)

// Which movies (by dataset ID) belong to which genre.
var testGenreLinks = map[string][]int64{
	"Science Fiction": {1, 3, 5, 6, 7},
	"Adventure":       {1, 3, 4, 5},
	"Drama":           {2, 4},
	"Comedy":          {5, 6},
}

func TestGenreAdd(t *testing.T) {
	if tdb == nil {
		t.SkipNow()
	}

	for name := range testGenreLinks {
		var (
			err error
			g   *objects.Genre
		)

		if g, err = tdb.GenreAdd(name); err != nil {
			t.Fatalf("Cannot add Genre %s: %s",
				name,
				err.Error())
		} else if g.ID == 0 {
			t.Fatalf("GenreAdd(%s) returned a Genre without a valid ID",
				name)
		}

		testGenres[name] = g
	}
} // func TestGenreAdd(t *testing.T)

func TestGenreGetByName(t *testing.T) {
	if tdb == nil {
		t.SkipNow()
	}

	for name, g := range testGenres {
		var (
			err error
			res *objects.Genre
		)

		if res, err = tdb.GenreGetByName(name); err != nil {
			t.Fatalf("Error looking up Genre %s: %s",
				name,
				err.Error())
		} else if res == nil {
			t.Fatalf("GenreGetByName did not find %s",
				name)
		} else if res.ID != g.ID {
			t.Fatalf("GenreGetByName(%s) returned wrong Genre: #%d (expected #%d)",
				name,
				res.ID,
				g.ID)
		}
	}
} // func TestGenreGetByName(t *testing.T)

func TestGenreLinkAdd(t *testing.T) {
	if tdb == nil {
		t.SkipNow()
	}

	for name, ids := range testGenreLinks {
		var g = testGenres[name]

		for _, id := range ids {
			var (
				err error
				m   = movieByML(id)
			)

			if err = tdb.GenreLinkAdd(m, g); err != nil {
				t.Fatalf("Cannot link Movie %s to Genre %s: %s",
					m.Title,
					g.Name,
					err.Error())
			}
		}
	}
} // func TestGenreLinkAdd(t *testing.T)

func TestGenreLinkAddIdempotent(t *testing.T) {
	if tdb == nil {
		t.SkipNow()
	}

	var (
		err  error
		m    = movieByML(1)
		g    = testGenres["Adventure"]
		list []objects.Genre
	)

	// Linking the same pair again must not fail, and must not create
	// a second link.
	if err = tdb.GenreLinkAdd(m, g); err != nil {
		t.Fatalf("Re-linking Movie %s to Genre %s failed: %s",
			m.Title,
			g.Name,
			err.Error())
	} else if list, err = tdb.GenreLinkGetByMovie(m); err != nil {
		t.Fatalf("Cannot get Genres of %s: %s",
			m.Title,
			err.Error())
	} else if len(list) != 2 {
		t.Fatalf("Movie %s should have 2 Genres, not %d",
			m.Title,
			len(list))
	}
} // func TestGenreLinkAddIdempotent(t *testing.T)

func TestGenreLinkGetByGenre(t *testing.T) {
	if tdb == nil {
		t.SkipNow()
	}

	for name, ids := range testGenreLinks {
		var (
			err  error
			g    = testGenres[name]
			list []objects.Movie
		)

		if list, err = tdb.GenreLinkGetByGenre(g); err != nil {
			t.Fatalf("Cannot get Movies of Genre %s: %s",
				name,
				err.Error())
		} else if len(list) != len(ids) {
			t.Fatalf("Genre %s should have %d Movies, not %d",
				name,
				len(ids),
				len(list))
		}
	}
} // func TestGenreLinkGetByGenre(t *testing.T)

// Deleting a Movie must take its genre links with it, but leave the
// Genres themselves alone.
func TestGenreLinkCascade(t *testing.T) {
	if tdb == nil {
		t.SkipNow()
	}

	var (
		err    error
		victim = &objects.Movie{
			Title: "Manos: The Hands of Fate",
			MLID:  99,
			Year:  1966,
		}
		scifi = testGenres["Science Fiction"]
		list  []objects.Movie
	)

	if err = tdb.MovieAdd(victim); err != nil {
		t.Fatalf("Cannot add Movie %s: %s",
			victim.Title,
			err.Error())
	} else if err = tdb.GenreLinkAdd(victim, scifi); err != nil {
		t.Fatalf("Cannot link %s to %s: %s",
			victim.Title,
			scifi.Name,
			err.Error())
	} else if list, err = tdb.GenreLinkGetByGenre(scifi); err != nil {
		t.Fatalf("Cannot get Movies of Genre %s: %s",
			scifi.Name,
			err.Error())
	} else if len(list) != len(testGenreLinks[scifi.Name])+1 {
		t.Fatalf("Genre %s should have %d Movies, not %d",
			scifi.Name,
			len(testGenreLinks[scifi.Name])+1,
			len(list))
	}

	if err = tdb.MovieDelete(victim); err != nil {
		t.Fatalf("Cannot delete Movie %s: %s",
			victim.Title,
			err.Error())
	} else if list, err = tdb.GenreLinkGetByGenre(scifi); err != nil {
		t.Fatalf("Cannot get Movies of Genre %s: %s",
			scifi.Name,
			err.Error())
	} else if len(list) != len(testGenreLinks[scifi.Name]) {
		t.Fatalf("After deleting %s, Genre %s should have %d Movies again, not %d",
			victim.Title,
			scifi.Name,
			len(testGenreLinks[scifi.Name]),
			len(list))
	}

	var g *objects.Genre

	if g, err = tdb.GenreGetByID(scifi.ID); err != nil {
		t.Fatalf("Cannot load Genre %s: %s",
			scifi.Name,
			err.Error())
	} else if g == nil {
		t.Fatalf("Genre %s disappeared along with the Movie",
			scifi.Name)
	}
} // func TestGenreLinkCascade(t *testing.T)
