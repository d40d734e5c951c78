// /home/krylon/go/src/github.com/blicero/cinestat/database/initqueries.go
// -*- mode: go; coding: utf-8; -*-
// Created on 19. 09. 2021 by Benjamin Walkenhorst
// (c) 2021 Benjamin Walkenhorst
// Time-stamp: <2021-10-04 21:58:20 krylon>

package database

// The catalog side (movie, genre, director and the two link tables) is
// keyed by surrogate IDs. Ratings come from a different source that knows
// nothing about our surrogate IDs, so the rating table is keyed by
// (user_id, ml_id), and joins against movie happen via movie.ml_id.
// movie.ext_id (the IMDb ID) and movie.ml_id are both unique but nullable,
// because neither source is guaranteed to supply its identifier for every
// row.

var initQueries = []string{
	`
CREATE TABLE movie (
    id INTEGER PRIMARY KEY,
    ext_id TEXT UNIQUE,
    ml_id INTEGER UNIQUE,
    title TEXT NOT NULL,
    year INTEGER,
    runtime_minutes INTEGER,
    plot TEXT,
    box_office TEXT,
    release_date INTEGER,
    ctime INTEGER NOT NULL,
    CHECK (year IS NULL OR year > 1887)
)`,

	"CREATE INDEX idx_movie_year ON movie (year)",

	`
CREATE TABLE genre (
    id INTEGER PRIMARY KEY,
    name TEXT UNIQUE NOT NULL
)`,

	`
CREATE TABLE director (
    id INTEGER PRIMARY KEY,
    name TEXT UNIQUE NOT NULL
)`,

	`
CREATE TABLE movie_genre (
    id INTEGER PRIMARY KEY,
    movie_id INTEGER NOT NULL,
    genre_id INTEGER NOT NULL,
    UNIQUE (movie_id, genre_id),
    FOREIGN KEY (movie_id) REFERENCES movie (id) ON DELETE CASCADE,
    FOREIGN KEY (genre_id) REFERENCES genre (id) ON DELETE CASCADE
)`,

	"CREATE INDEX idx_movie_genre_genre ON movie_genre (genre_id)",

	`
CREATE TABLE movie_director (
    id INTEGER PRIMARY KEY,
    movie_id INTEGER NOT NULL,
    director_id INTEGER NOT NULL,
    UNIQUE (movie_id, director_id),
    FOREIGN KEY (movie_id) REFERENCES movie (id) ON DELETE CASCADE,
    FOREIGN KEY (director_id) REFERENCES director (id) ON DELETE CASCADE
)`,

	"CREATE INDEX idx_movie_director_director ON movie_director (director_id)",

	`
CREATE TABLE rating (
    user_id INTEGER NOT NULL,
    ml_id INTEGER NOT NULL,
    score REAL NOT NULL,
    timestamp INTEGER NOT NULL DEFAULT 0,
    PRIMARY KEY (user_id, ml_id),
    CHECK (score >= 0 AND score <= 5)
)`,

	"CREATE INDEX idx_rating_movie ON rating (ml_id)",
}
