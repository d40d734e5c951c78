// /home/krylon/go/src/github.com/blicero/cinestat/objects/report.go
// -*- mode: go; coding: utf-8; -*-
// Created on 19. 09. 2021 by Benjamin Walkenhorst
// (c) 2021 Benjamin Walkenhorst
// Time-stamp: <2021-10-03 18:06:40 krylon>

package objects

import "fmt"

// MovieRating is one row of the top-rated-movie report.
type MovieRating struct {
	MovieID int64
	Title   string
	Score   float64
	Count   int64
}

func (m *MovieRating) String() string {
	return fmt.Sprintf("%s: %.2f (%d ratings)",
		m.Title,
		m.Score,
		m.Count)
} // func (m *MovieRating) String() string

// GenreRating is one row of the top-genres report.
type GenreRating struct {
	GenreID int64
	Name    string
	Score   float64
	Count   int64
}

func (g *GenreRating) String() string {
	return fmt.Sprintf("%s: %.2f (%d ratings)",
		g.Name,
		g.Score,
		g.Count)
} // func (g *GenreRating) String() string

// DirectorCount is one row of the most-prolific-director report.
type DirectorCount struct {
	DirectorID int64
	Name       string
	Count      int64
}

func (d *DirectorCount) String() string {
	return fmt.Sprintf("%s: %d movies",
		d.Name,
		d.Count)
} // func (d *DirectorCount) String() string

// YearRating is one row of the rating-by-year report.
type YearRating struct {
	Year  int64
	Score float64
	Count int64
}

func (y *YearRating) String() string {
	return fmt.Sprintf("%d: %.2f (%d ratings)",
		y.Year,
		y.Score,
		y.Count)
} // func (y *YearRating) String() string
