// /home/krylon/go/src/github.com/blicero/cinestat/database/dbqueries.go
// -*- mode: go; coding: utf-8; -*-
// Created on 19. 09. 2021 by Benjamin Walkenhorst
// (c) 2021 Benjamin Walkenhorst
// Time-stamp: <2021-10-05 19:21:47 krylon>

package database

import "github.com/blicero/cinestat/database/query"

var dbQueries = map[query.ID]string{
	query.MovieAdd: `
INSERT INTO movie (ext_id, ml_id, title, year, ctime)
VALUES            (     ?,     ?,     ?,    ?,     ?)
`,
	query.MovieDelete: "DELETE FROM movie WHERE id = ?",
	query.MovieGetAll: `
SELECT
    id,
    ext_id,
    ml_id,
    title,
    year,
    runtime_minutes,
    plot,
    box_office,
    release_date,
    ctime
FROM movie
`,
	query.MovieGetByID: `
SELECT
    ext_id,
    ml_id,
    title,
    year,
    runtime_minutes,
    plot,
    box_office,
    release_date,
    ctime
FROM movie
WHERE id = ?
`,
	query.MovieGetByMLID: `
SELECT
    id,
    ext_id,
    title,
    year,
    runtime_minutes,
    plot,
    box_office,
    release_date,
    ctime
FROM movie
WHERE ml_id = ?
`,
	query.MovieGetByExtID: `
SELECT
    id,
    ml_id,
    title,
    year,
    runtime_minutes,
    plot,
    box_office,
    release_date,
    ctime
FROM movie
WHERE ext_id = ?
`,
	query.MovieGetByTitle: `
SELECT
    id,
    ext_id,
    ml_id,
    year,
    runtime_minutes,
    plot,
    box_office,
    release_date,
    ctime
FROM movie
WHERE title = ?
`,
	query.MovieUpdateMeta: `
UPDATE movie SET
    ext_id = ?,
    ml_id = ?,
    year = ?,
    runtime_minutes = ?,
    plot = ?,
    box_office = ?,
    release_date = ?
WHERE id = ?
`,
	query.GenreAdd:       "INSERT INTO genre (name) VALUES (?)",
	query.GenreDelete:    "DELETE FROM genre WHERE id = ?",
	query.GenreGetAll:    "SELECT id, name FROM genre",
	query.GenreGetByID:   "SELECT name FROM genre WHERE id = ?",
	query.GenreGetByName: "SELECT id FROM genre WHERE name = ?",
	query.GenreLinkAdd:   "INSERT OR IGNORE INTO movie_genre (movie_id, genre_id) VALUES (?, ?)",
	query.GenreLinkDelete: `
DELETE FROM movie_genre WHERE movie_id = ? AND genre_id = ?`,
	query.GenreLinkGetByMovie: `
SELECT
    g.id,
    g.name
FROM movie_genre l
INNER JOIN genre g ON l.genre_id = g.id
WHERE l.movie_id = ?
`,
	query.GenreLinkGetByGenre: `
SELECT
    m.id,
    m.ext_id,
    m.ml_id,
    m.title,
    m.year,
    m.runtime_minutes,
    m.plot,
    m.box_office,
    m.release_date,
    m.ctime
FROM movie_genre l
INNER JOIN movie m ON l.movie_id = m.id
WHERE l.genre_id = ?
`,
	query.DirectorAdd:       "INSERT INTO director (name) VALUES (?)",
	query.DirectorDelete:    "DELETE FROM director WHERE id = ?",
	query.DirectorGetAll:    "SELECT id, name FROM director",
	query.DirectorGetByID:   "SELECT name FROM director WHERE id = ?",
	query.DirectorGetByName: "SELECT id FROM director WHERE name = ?",
	query.DirectorLinkAdd:   "INSERT OR IGNORE INTO movie_director (movie_id, director_id) VALUES (?, ?)",
	query.DirectorLinkDelete: `
DELETE FROM movie_director WHERE movie_id = ? AND director_id = ?`,
	query.DirectorLinkGetByMovie: `
SELECT
    d.id,
    d.name
FROM movie_director l
INNER JOIN director d ON l.director_id = d.id
WHERE l.movie_id = ?
`,
	query.DirectorLinkGetByDirector: `
SELECT
    m.id,
    m.ext_id,
    m.ml_id,
    m.title,
    m.year,
    m.runtime_minutes,
    m.plot,
    m.box_office,
    m.release_date,
    m.ctime
FROM movie_director l
INNER JOIN movie m ON l.movie_id = m.id
WHERE l.director_id = ?
`,
	// A user rates a given movie at most once; re-rating replaces the
	// old score, and re-importing a ratings file is a no-op.
	query.RatingAdd: `
INSERT OR REPLACE INTO rating (user_id, ml_id, score, timestamp)
VALUES                        (      ?,     ?,     ?,         ?)
`,
	query.RatingGetByMovie: `
SELECT
    user_id,
    score,
    timestamp
FROM rating
WHERE ml_id = ?
`,
	query.RatingGetByUser: `
SELECT
    ml_id,
    score,
    timestamp
FROM rating
WHERE user_id = ?
`,
	query.RatingGetCnt: "SELECT COUNT(*) FROM rating",
	// Movies without ratings fall out of the INNER JOIN, movies whose
	// ml_id is NULL never match a rating. Ties are broken by the higher
	// rating count, then the lower movie ID.
	query.ReportTopMovie: `
SELECT
    m.id,
    m.title,
    AVG(r.score) AS avg_score,
    COUNT(r.score) AS cnt
FROM rating r
INNER JOIN movie m ON r.ml_id = m.ml_id
GROUP BY m.id
HAVING cnt >= ?
ORDER BY avg_score DESC, cnt DESC, m.id ASC
LIMIT 1
`,
	query.ReportTopGenres: `
SELECT
    g.id,
    g.name,
    AVG(r.score) AS avg_score,
    COUNT(r.score) AS cnt
FROM rating r
INNER JOIN movie m ON r.ml_id = m.ml_id
INNER JOIN movie_genre l ON l.movie_id = m.id
INNER JOIN genre g ON l.genre_id = g.id
GROUP BY g.id
HAVING cnt >= ?
ORDER BY avg_score DESC, g.name ASC
LIMIT ?
`,
	query.ReportTopDirector: `
SELECT
    d.id,
    d.name,
    COUNT(l.movie_id) AS cnt
FROM movie_director l
INNER JOIN director d ON l.director_id = d.id
GROUP BY d.id
ORDER BY cnt DESC, d.name ASC
LIMIT 1
`,
	query.ReportRatingByYear: `
SELECT
    m.year,
    AVG(r.score) AS avg_score,
    COUNT(r.score) AS cnt
FROM rating r
INNER JOIN movie m ON r.ml_id = m.ml_id
WHERE m.year IS NOT NULL
GROUP BY m.year
ORDER BY m.year ASC
`,
}
