// /home/krylon/go/src/github.com/blicero/cinestat/database/06_report_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 03. 10. 2021 by Benjamin Walkenhorst
// (c) 2021 Benjamin Walkenhorst
// Time-stamp: <2021-10-10 19:12:56 krylon>

package database

import (
	"math"
	"testing"

	"github.com/blicero/cinestat/objects"
)

const scoreEps = 0.0001

// Dark Star has the highest mean score, but not enough ratings to
// qualify, so Dune wins.
func TestReportTopMovie(t *testing.T) {
	if tdb == nil {
		t.SkipNow()
	}

	var (
		err error
		top *objects.MovieRating
	)

	if top, err = tdb.ReportTopMovie(); err != nil {
		t.Fatalf("ReportTopMovie failed: %s",
			err.Error())
	} else if top == nil {
		t.Fatal("ReportTopMovie returned no result")
	} else if top.Title != "Dune" {
		t.Fatalf("Unexpected top movie: %q (expected %q)",
			top.Title,
			"Dune")
	} else if math.Abs(top.Score-4.8) > scoreEps {
		t.Fatalf("Unexpected mean score for %s: %.4f (expected %.4f)",
			top.Title,
			top.Score,
			4.8)
	} else if top.Count != 5 {
		t.Fatalf("Unexpected rating count for %s: %d (expected %d)",
			top.Title,
			top.Count,
			5)
	}
} // func TestReportTopMovie(t *testing.T)

// Only Adventure (21 ratings) and Science Fiction (24) clear the
// support threshold. Adventure's mean is a hair higher.
func TestReportTopGenres(t *testing.T) {
	if tdb == nil {
		t.SkipNow()
	}

	var (
		err      error
		rows     []objects.GenreRating
		expected = []objects.GenreRating{
			{Name: "Adventure", Score: 72.0 / 21.0, Count: 21},
			{Name: "Science Fiction", Score: 81.7 / 24.0, Count: 24},
		}
	)

	if rows, err = tdb.ReportTopGenres(); err != nil {
		t.Fatalf("ReportTopGenres failed: %s",
			err.Error())
	} else if len(rows) != len(expected) {
		t.Fatalf("ReportTopGenres returned %d rows (expected %d)",
			len(rows),
			len(expected))
	}

	for i, want := range expected {
		var got = &rows[i]

		if got.Name != want.Name {
			t.Errorf("Row %d: unexpected genre %q (expected %q)",
				i,
				got.Name,
				want.Name)
		} else if math.Abs(got.Score-want.Score) > scoreEps {
			t.Errorf("Row %d (%s): unexpected mean score %.4f (expected %.4f)",
				i,
				got.Name,
				got.Score,
				want.Score)
		} else if got.Count != want.Count {
			t.Errorf("Row %d (%s): unexpected rating count %d (expected %d)",
				i,
				got.Name,
				got.Count,
				want.Count)
		}
	}
} // func TestReportTopGenres(t *testing.T)

func TestReportTopDirector(t *testing.T) {
	if tdb == nil {
		t.SkipNow()
	}

	var (
		err error
		top *objects.DirectorCount
	)

	if top, err = tdb.ReportTopDirector(); err != nil {
		t.Fatalf("ReportTopDirector failed: %s",
			err.Error())
	} else if top == nil {
		t.Fatal("ReportTopDirector returned no result")
	} else if top.Name != "John Carpenter" {
		t.Fatalf("Unexpected top director: %q (expected %q)",
			top.Name,
			"John Carpenter")
	} else if top.Count != 2 {
		t.Fatalf("Unexpected movie count for %s: %d (expected %d)",
			top.Name,
			top.Count,
			2)
	}
} // func TestReportTopDirector(t *testing.T)

// Home Movie has no release year, so its ratings do not show up here.
func TestReportRatingByYear(t *testing.T) {
	if tdb == nil {
		t.SkipNow()
	}

	var (
		err      error
		rows     []objects.YearRating
		expected = []objects.YearRating{
			{Year: 1958, Score: 5.0, Count: 4},
			{Year: 1974, Score: 14.7 / 3.0, Count: 3},
			{Year: 1990, Score: 2.0, Count: 5},
			{Year: 1992, Score: 3.0, Count: 6},
			{Year: 1999, Score: 4.0, Count: 5},
			{Year: 2021, Score: 4.8, Count: 5},
		}
	)

	if rows, err = tdb.ReportRatingByYear(); err != nil {
		t.Fatalf("ReportRatingByYear failed: %s",
			err.Error())
	} else if len(rows) != len(expected) {
		t.Fatalf("ReportRatingByYear returned %d rows (expected %d)",
			len(rows),
			len(expected))
	}

	for i, want := range expected {
		var got = &rows[i]

		if got.Year != want.Year {
			t.Errorf("Row %d: unexpected year %d (expected %d)",
				i,
				got.Year,
				want.Year)
		} else if math.Abs(got.Score-want.Score) > scoreEps {
			t.Errorf("Row %d (%d): unexpected mean score %.4f (expected %.4f)",
				i,
				got.Year,
				got.Score,
				want.Score)
		} else if got.Count != want.Count {
			t.Errorf("Row %d (%d): unexpected rating count %d (expected %d)",
				i,
				got.Year,
				got.Count,
				want.Count)
		}
	}
} // func TestReportRatingByYear(t *testing.T)
