// /home/krylon/go/src/github.com/blicero/cinestat/database/01_create_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 20. 09. 2021 by Benjamin Walkenhorst
// (c) 2021 Benjamin Walkenhorst
// Time-stamp: <2021-10-09 20:01:12 krylon>

package database

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/blicero/cinestat/common"
	"github.com/blicero/cinestat/database/query"
)

var tdb *Database

func TestDBCreate(t *testing.T) {
	var (
		err      error
		testPath = filepath.Join(
			os.TempDir(),
			fmt.Sprintf("cinestat_db_test_%d", time.Now().Unix()))
	)

	if err = common.SetBaseDir(testPath); err != nil {
		t.Fatalf("Cannot set base directory to %s: %s",
			testPath,
			err.Error())
	} else if tdb, err = Open(common.DbPath); err != nil {
		tdb = nil
		t.Fatalf("Cannot create Database: %s",
			err.Error())
	}
} // func TestDBCreate(t *testing.T)

func TestQueryPrepare(t *testing.T) {
	var (
		err    error
		idList = []query.ID{
			query.MovieAdd,
			query.MovieDelete,
			query.MovieGetAll,
			query.MovieGetByID,
			query.MovieGetByMLID,
			query.MovieGetByExtID,
			query.MovieGetByTitle,
			query.MovieUpdateMeta,
			query.GenreAdd,
			query.GenreLinkAdd,
			query.GenreLinkGetByMovie,
			query.GenreLinkGetByGenre,
			query.DirectorAdd,
			query.DirectorLinkAdd,
			query.DirectorLinkGetByMovie,
			query.DirectorLinkGetByDirector,
			query.RatingAdd,
			query.RatingGetByMovie,
			query.RatingGetByUser,
			query.RatingGetCnt,
			query.ReportTopMovie,
			query.ReportTopGenres,
			query.ReportTopDirector,
			query.ReportRatingByYear,
		}
	)

	if tdb == nil {
		t.SkipNow()
	}

	for _, qid := range idList {
		if _, err = tdb.getQuery(qid); err != nil {
			t.Errorf("Cannot prepare query %s: %s",
				qid,
				err.Error())
		}
	}
} // func TestQueryPrepare(t *testing.T)
