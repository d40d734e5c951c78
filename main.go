// /home/krylon/go/src/github.com/blicero/cinestat/main.go
// -*- mode: go; coding: utf-8; -*-
// Created on 28. 09. 2021 by Benjamin Walkenhorst
// (c) 2021 Benjamin Walkenhorst
// Time-stamp: <2021-10-10 21:44:08 krylon>

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/blicero/cinestat/common"
	"github.com/blicero/cinestat/database"
	"github.com/blicero/cinestat/loader"
	"github.com/blicero/cinestat/objects"
	"github.com/blicero/cinestat/omdb"
	"github.com/blicero/cinestat/shell"
)

func main() {
	var (
		err                           error
		baseDir, movies, ratings, key string
		lenient, runReports, runShell bool
	)

	flag.StringVar(&baseDir, "basedir", "", "Directory for the database, log, and cache (default ~/.cinestat.d)")
	flag.StringVar(&movies, "movies", "", "Movie catalog CSV file to load")
	flag.StringVar(&ratings, "ratings", "", "Ratings CSV file to load")
	flag.StringVar(&key, "omdb-key", os.Getenv("OMDB_API_KEY"), "API key for the metadata service")
	flag.BoolVar(&lenient, "lenient", false, "Skip malformed rows instead of aborting the import")
	flag.BoolVar(&runReports, "reports", false, "Run the reports after loading")
	flag.BoolVar(&runShell, "shell", false, "Start the interactive shell")
	flag.Parse()

	if baseDir != "" {
		if err = common.SetBaseDir(baseDir); err != nil {
			fmt.Fprintf(os.Stderr,
				"Cannot set base directory to %s: %s\n",
				baseDir,
				err.Error())
			os.Exit(1)
		}
	} else if err = common.InitApp(); err != nil {
		fmt.Fprintf(os.Stderr,
			"Cannot initialize application environment: %s\n",
			err.Error())
		os.Exit(1)
	}

	var policy = loader.Strict
	if lenient {
		policy = loader.Lenient
	}

	var ldr *loader.Loader

	if ldr, err = loader.New(policy); err != nil {
		fmt.Fprintf(os.Stderr,
			"Cannot create Loader: %s\n",
			err.Error())
		os.Exit(1)
	}

	if key != "" {
		var meta *omdb.Client

		if meta, err = omdb.NewClient(key); err != nil {
			fmt.Fprintf(os.Stderr,
				"Cannot create metadata client: %s\n",
				err.Error())
			os.Exit(1)
		}

		ldr.SetClient(meta)
	}

	if movies != "" {
		if _, err = ldr.LoadMovies(movies); err != nil {
			fmt.Fprintf(os.Stderr,
				"Error loading movie catalog from %s: %s\n",
				movies,
				err.Error())
			os.Exit(1)
		}
	}

	if ratings != "" {
		if _, err = ldr.LoadRatings(ratings); err != nil {
			fmt.Fprintf(os.Stderr,
				"Error loading ratings from %s: %s\n",
				ratings,
				err.Error())
			os.Exit(1)
		}
	}

	if runReports {
		if err = reports(); err != nil {
			fmt.Fprintf(os.Stderr,
				"Error running reports: %s\n",
				err.Error())
			os.Exit(1)
		}
	}

	if runShell {
		var sh *shell.Shell

		if sh, err = shell.Create(ldr); err != nil {
			fmt.Fprintf(os.Stderr,
				"Cannot create shell: %s\n",
				err.Error())
			os.Exit(1)
		} else if err = sh.Run(); err != nil {
			fmt.Fprintf(os.Stderr,
				"Shell exited with an error: %s\n",
				err.Error())
			os.Exit(1)
		}
	}
} // func main()

func reports() error {
	var (
		err error
		db  *database.Database
	)

	if db, err = database.Open(common.DbPath); err != nil {
		return err
	}

	defer db.Close() // nolint: errcheck

	var topMovie *objects.MovieRating

	if topMovie, err = db.ReportTopMovie(); err != nil {
		return err
	}

	fmt.Println("=== Top-rated movie ===")
	if topMovie != nil {
		fmt.Println(topMovie)
	} else {
		fmt.Println("No movie has enough ratings.")
	}

	var topGenres []objects.GenreRating

	if topGenres, err = db.ReportTopGenres(); err != nil {
		return err
	}

	fmt.Println("=== Top genres ===")
	for i := range topGenres {
		fmt.Println(&topGenres[i])
	}

	var topDirector *objects.DirectorCount

	if topDirector, err = db.ReportTopDirector(); err != nil {
		return err
	}

	fmt.Println("=== Most prolific director ===")
	if topDirector != nil {
		fmt.Println(topDirector)
	} else {
		fmt.Println("The catalog has no directors.")
	}

	var byYear []objects.YearRating

	if byYear, err = db.ReportRatingByYear(); err != nil {
		return err
	}

	fmt.Println("=== Mean rating by release year ===")
	for i := range byYear {
		fmt.Println(&byYear[i])
	}

	return nil
} // func reports()
