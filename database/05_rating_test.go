// /home/krylon/go/src/github.com/blicero/cinestat/database/05_rating_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 03. 10. 2021 by Benjamin Walkenhorst
// (c) 2021 Benjamin Walkenhorst
// Time-stamp: <2021-10-10 18:40:33 krylon>

package database

import (
	"testing"
	"time"

	"github.com/blicero/cinestat/objects"
)

// Scores per movie (by dataset ID). Within one movie, rating i comes
// from user i+1, so user 1 has rated every movie.
var testScores = map[int64][]float64{
	1: {5, 5, 5, 4.5, 4.5}, // mean 4.8
	2: {5, 5, 5, 5},        // mean 5.0, but too few ratings
	3: {3, 3, 3, 3, 3, 3},  // mean 3.0
	4: {2, 2, 2, 2, 2},     // mean 2.0
	5: {4, 4, 4, 4, 4},     // mean 4.0
	6: {5, 4.9, 4.8},       // mean 4.9, but too few ratings
	7: {1, 1, 1, 1, 1},     // mean 1.0, movie has no year
}

func testScoreCnt() int64 {
	var cnt int64

	for _, scores := range testScores {
		cnt += int64(len(scores))
	}

	return cnt
} // func testScoreCnt() int64

func TestRatingAdd(t *testing.T) {
	if tdb == nil {
		t.SkipNow()
	}

	var stamp = time.Date(2021, 10, 3, 12, 0, 0, 0, time.UTC)

	for mlID, scores := range testScores {
		for i, score := range scores {
			var (
				err error
				r   = objects.Rating{
					UserID:    int64(i + 1),
					MLID:      mlID,
					Score:     score,
					Timestamp: stamp,
				}
			)

			if err = tdb.RatingAdd(&r); err != nil {
				t.Fatalf("Cannot add Rating of movie %d by user %d: %s",
					r.MLID,
					r.UserID,
					err.Error())
			}
		}
	}

	var (
		err error
		cnt int64
	)

	if cnt, err = tdb.RatingGetCnt(); err != nil {
		t.Fatalf("Cannot count Ratings: %s",
			err.Error())
	} else if cnt != testScoreCnt() {
		t.Fatalf("Unexpected number of Ratings in database: %d (expected %d)",
			cnt,
			testScoreCnt())
	}
} // func TestRatingAdd(t *testing.T)

// A user rates a movie at most once. Submitting the same (user, movie)
// pair again replaces the old Rating, it does not add a second one.
func TestRatingReplace(t *testing.T) {
	if tdb == nil {
		t.SkipNow()
	}

	var (
		err error
		cnt int64
		r   = objects.Rating{
			UserID:    1,
			MLID:      1,
			Score:     5,
			Timestamp: time.Now(),
		}
	)

	if err = tdb.RatingAdd(&r); err != nil {
		t.Fatalf("Cannot re-add Rating of movie %d by user %d: %s",
			r.MLID,
			r.UserID,
			err.Error())
	} else if cnt, err = tdb.RatingGetCnt(); err != nil {
		t.Fatalf("Cannot count Ratings: %s",
			err.Error())
	} else if cnt != testScoreCnt() {
		t.Fatalf("Re-adding a Rating changed the number of Ratings: %d (expected %d)",
			cnt,
			testScoreCnt())
	}
} // func TestRatingReplace(t *testing.T)

func TestRatingGetByMovie(t *testing.T) {
	if tdb == nil {
		t.SkipNow()
	}

	for mlID, scores := range testScores {
		var (
			err  error
			m    = movieByML(mlID)
			list []objects.Rating
		)

		if list, err = tdb.RatingGetByMovie(m); err != nil {
			t.Fatalf("Cannot get Ratings of %s: %s",
				m.Title,
				err.Error())
		} else if len(list) != len(scores) {
			t.Fatalf("Movie %s should have %d Ratings, not %d",
				m.Title,
				len(scores),
				len(list))
		}
	}
} // func TestRatingGetByMovie(t *testing.T)

func TestRatingGetByMovieWithoutMLID(t *testing.T) {
	if tdb == nil {
		t.SkipNow()
	}

	var (
		err  error
		m    = &objects.Movie{ID: 4711, Title: "Unreleased"}
		list []objects.Rating
	)

	if list, err = tdb.RatingGetByMovie(m); err != nil {
		t.Fatalf("Getting Ratings of a Movie without an MLID should not fail: %s",
			err.Error())
	} else if len(list) != 0 {
		t.Fatalf("A Movie without an MLID cannot have Ratings, got %d",
			len(list))
	}
} // func TestRatingGetByMovieWithoutMLID(t *testing.T)

func TestRatingGetByUser(t *testing.T) {
	if tdb == nil {
		t.SkipNow()
	}

	var (
		err  error
		list []objects.Rating
	)

	// User 1 has rated every movie.
	if list, err = tdb.RatingGetByUser(1); err != nil {
		t.Fatalf("Cannot get Ratings of user 1: %s",
			err.Error())
	} else if len(list) != len(testScores) {
		t.Fatalf("User 1 should have %d Ratings, not %d",
			len(testScores),
			len(list))
	}
} // func TestRatingGetByUser(t *testing.T)

func TestRatingAddInvalid(t *testing.T) {
	if tdb == nil {
		t.SkipNow()
	}

	var r = objects.Rating{
		UserID: 0,
		MLID:   1,
		Score:  3,
	}

	if err := tdb.RatingAdd(&r); err == nil {
		t.Error("Adding a Rating without a user ID should have failed")
	} else if err != ErrInvalidValue {
		t.Errorf("Unexpected error adding invalid Rating: %s",
			err.Error())
	}
} // func TestRatingAddInvalid(t *testing.T)
