// /home/krylon/go/src/github.com/blicero/cinestat/objects/doc.go
// -*- mode: go; coding: utf-8; -*-
// Created on 19. 09. 2021 by Benjamin Walkenhorst
// (c) 2021 Benjamin Walkenhorst
// Time-stamp: <2021-09-19 17:41:02 krylon>

// Package objects provides the data types we deal with: Movies, Genres,
// Directors, Ratings, and the rows the various reports return.
package objects

// This file only exists to provide a place where I can put the package
// documentation, beyond that it has no use whatsoever.
