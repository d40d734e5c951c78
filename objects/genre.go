// /home/krylon/go/src/github.com/blicero/cinestat/objects/genre.go
// -*- mode: go; coding: utf-8; -*-
// Created on 19. 09. 2021 by Benjamin Walkenhorst
// (c) 2021 Benjamin Walkenhorst
// Time-stamp: <2021-09-19 17:48:36 krylon>

package objects

// Genre is a ... genre a movie can belong to. Duh.
type Genre struct {
	ID   int64
	Name string
}
