// /home/krylon/go/src/github.com/blicero/cinestat/objects/movie.go
// -*- mode: go; coding: utf-8; -*-
// Created on 19. 09. 2021 by Benjamin Walkenhorst
// (c) 2021 Benjamin Walkenhorst
// Time-stamp: <2021-10-03 18:02:51 krylon>

package objects

import (
	"fmt"
	"time"
)

// Movie represents one movie from the catalog.
//
// ExtID is the identifier the rest of the world uses for the movie (i.e.
// the IMDb ID), MLID is the identifier the ratings source uses. Either may
// be unset (0 resp. ""), but when set, both are unique.
// Ratings join the catalog via MLID, never via ExtID.
type Movie struct {
	ID             int64
	ExtID          string
	MLID           int64
	Title          string
	Year           int64
	RuntimeMinutes int64
	Plot           string
	BoxOffice      string
	ReleaseDate    time.Time
	CTime          time.Time
}

// DisplayTitle returns the Movie's title, followed by the release year,
// if it is known.
func (m *Movie) DisplayTitle() string {
	if m.Year == 0 {
		return m.Title
	}

	return fmt.Sprintf("%s (%d)",
		m.Title,
		m.Year)
} // func (m *Movie) DisplayTitle() string

// HasRatings returns true if the Movie can be joined against the ratings
// table at all, i.e. if its MLID is set.
func (m *Movie) HasRatings() bool {
	return m.MLID != 0
} // func (m *Movie) HasRatings() bool
