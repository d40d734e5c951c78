// /home/krylon/go/src/github.com/blicero/cinestat/database/query/query.go
// -*- mode: go; coding: utf-8; -*-
// Created on 19. 09. 2021 by Benjamin Walkenhorst
// (c) 2021 Benjamin Walkenhorst
// Time-stamp: <2021-10-04 22:10:38 krylon>

//go:generate stringer -type=ID

// Package query provides symbolic constants for the various queries we are
// going to run on the database.
package query

// ID represents a specific database query.
type ID uint8

const (
	MovieAdd ID = iota
	MovieDelete
	MovieGetAll
	MovieGetByID
	MovieGetByMLID
	MovieGetByExtID
	MovieGetByTitle
	MovieUpdateMeta
	GenreAdd
	GenreDelete
	GenreGetAll
	GenreGetByID
	GenreGetByName
	GenreLinkAdd
	GenreLinkDelete
	GenreLinkGetByMovie
	GenreLinkGetByGenre
	DirectorAdd
	DirectorDelete
	DirectorGetAll
	DirectorGetByID
	DirectorGetByName
	DirectorLinkAdd
	DirectorLinkDelete
	DirectorLinkGetByMovie
	DirectorLinkGetByDirector
	RatingAdd
	RatingGetByMovie
	RatingGetByUser
	RatingGetCnt
	ReportTopMovie
	ReportTopGenres
	ReportTopDirector
	ReportRatingByYear
)
