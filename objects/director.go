// /home/krylon/go/src/github.com/blicero/cinestat/objects/director.go
// -*- mode: go; coding: utf-8; -*-
// Created on 19. 09. 2021 by Benjamin Walkenhorst
// (c) 2021 Benjamin Walkenhorst
// Time-stamp: <2021-09-19 17:50:11 krylon>

package objects

// Director is a person that directed one or more movies.
type Director struct {
	ID   int64
	Name string
}
