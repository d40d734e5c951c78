// /home/krylon/go/src/github.com/blicero/cinestat/objects/rating.go
// -*- mode: go; coding: utf-8; -*-
// Created on 19. 09. 2021 by Benjamin Walkenhorst
// (c) 2021 Benjamin Walkenhorst
// Time-stamp: <2021-10-03 18:04:19 krylon>

package objects

import "time"

// Rating is one user's verdict on one movie. The movie is referenced by
// its MLID, i.e. the identifier the ratings source uses, because that is
// all the source gives us. A user rates a given movie at most once.
type Rating struct {
	UserID    int64
	MLID      int64
	Score     float64
	Timestamp time.Time
}
