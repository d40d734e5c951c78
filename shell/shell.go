// /home/krylon/go/src/github.com/blicero/cinestat/shell/shell.go
// -*- mode: go; coding: utf-8; -*-
// Created on 03. 10. 2021 by Benjamin Walkenhorst
// (c) 2021 Benjamin Walkenhorst
// Time-stamp: <2021-10-10 21:17:43 krylon>

// Package shell provides the interactive front end: a small command
// interpreter to load the source files and run the reports.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/anmitsu/go-shlex"
	"github.com/blicero/cinestat/common"
	"github.com/blicero/cinestat/database"
	"github.com/blicero/cinestat/loader"
	"github.com/blicero/cinestat/logdomain"
	"github.com/blicero/cinestat/objects"
)

const prompt = "cinestat> "

const helpText = `Available commands:
  load-movies PATH    load the movie catalog from PATH
  load-ratings PATH   load the ratings from PATH
  top-movie           show the highest-rated movie
  top-genres          show the top genres by mean rating
  top-director        show the director with the most movies
  by-year             show mean rating and count per release year
  help                show this text
  quit                leave the shell
`

// Shell is the interactive front end of the application.
type Shell struct {
	db  *database.Database
	ldr *loader.Loader
	log *log.Logger
	in  *bufio.Scanner
	out io.Writer
}

// Create creates a new Shell, reading commands from stdin.
func Create(ldr *loader.Loader) (*Shell, error) {
	var (
		err error
		s   = &Shell{
			ldr: ldr,
			in:  bufio.NewScanner(os.Stdin),
			out: os.Stdout,
		}
	)

	if s.log, err = common.GetLogger(logdomain.Shell); err != nil {
		return nil, err
	} else if s.db, err = database.Open(common.DbPath); err != nil {
		s.log.Printf("[ERROR] Cannot open Database at %s: %s\n",
			common.DbPath,
			err.Error())
		return nil, err
	}

	return s, nil
} // func Create(ldr *loader.Loader) (*Shell, error)

// Run reads and executes commands until the input is exhausted or the
// user asks to quit.
func (s *Shell) Run() error {
	defer s.db.Close() // nolint: errcheck

	fmt.Fprint(s.out, prompt)

	for s.in.Scan() {
		var (
			err    error
			tokens []string
		)

		if tokens, err = shlex.Split(s.in.Text(), true); err != nil {
			fmt.Fprintf(s.out, "Cannot parse command line: %s\n",
				err.Error())
			fmt.Fprint(s.out, prompt)
			continue
		} else if len(tokens) == 0 {
			fmt.Fprint(s.out, prompt)
			continue
		}

		if tokens[0] == "quit" || tokens[0] == "exit" {
			return nil
		}

		if err = s.dispatch(tokens); err != nil {
			fmt.Fprintf(s.out, "Error: %s\n",
				err.Error())
		}

		fmt.Fprint(s.out, prompt)
	}

	return s.in.Err()
} // func (s *Shell) Run() error

func (s *Shell) dispatch(tokens []string) error {
	switch tokens[0] {
	case "help":
		fmt.Fprint(s.out, helpText)
		return nil
	case "load-movies":
		if len(tokens) != 2 {
			return fmt.Errorf("Usage: load-movies PATH")
		}
		return s.loadMovies(tokens[1])
	case "load-ratings":
		if len(tokens) != 2 {
			return fmt.Errorf("Usage: load-ratings PATH")
		}
		return s.loadRatings(tokens[1])
	case "top-movie":
		return s.topMovie()
	case "top-genres":
		return s.topGenres()
	case "top-director":
		return s.topDirector()
	case "by-year":
		return s.byYear()
	default:
		return fmt.Errorf("Unknown command %q (try \"help\")",
			tokens[0])
	}
} // func (s *Shell) dispatch(tokens []string) error

func (s *Shell) loadMovies(path string) error {
	var (
		err error
		res *loader.Result
	)

	if res, err = s.ldr.LoadMovies(path); err != nil {
		return err
	}

	fmt.Fprintf(s.out, "%s\n", res)
	return nil
} // func (s *Shell) loadMovies(path string) error

func (s *Shell) loadRatings(path string) error {
	var (
		err error
		res *loader.Result
	)

	if res, err = s.ldr.LoadRatings(path); err != nil {
		return err
	}

	fmt.Fprintf(s.out, "%s\n", res)
	return nil
} // func (s *Shell) loadRatings(path string) error

func (s *Shell) topMovie() error {
	var (
		err error
		top *objects.MovieRating
	)

	if top, err = s.db.ReportTopMovie(); err != nil {
		return err
	} else if top == nil {
		fmt.Fprintln(s.out, "No movie has enough ratings.")
		return nil
	}

	fmt.Fprintf(s.out, "%s\n", top)
	return nil
} // func (s *Shell) topMovie() error

func (s *Shell) topGenres() error {
	var (
		err  error
		rows []objects.GenreRating
	)

	if rows, err = s.db.ReportTopGenres(); err != nil {
		return err
	} else if len(rows) == 0 {
		fmt.Fprintln(s.out, "No genre has enough ratings.")
		return nil
	}

	for i := range rows {
		fmt.Fprintf(s.out, "%s\n", &rows[i])
	}
	return nil
} // func (s *Shell) topGenres() error

func (s *Shell) topDirector() error {
	var (
		err error
		top *objects.DirectorCount
	)

	if top, err = s.db.ReportTopDirector(); err != nil {
		return err
	} else if top == nil {
		fmt.Fprintln(s.out, "The catalog has no directors.")
		return nil
	}

	fmt.Fprintf(s.out, "%s\n", top)
	return nil
} // func (s *Shell) topDirector() error

func (s *Shell) byYear() error {
	var (
		err  error
		rows []objects.YearRating
	)

	if rows, err = s.db.ReportRatingByYear(); err != nil {
		return err
	}

	for i := range rows {
		fmt.Fprintf(s.out, "%s\n", &rows[i])
	}
	return nil
} // func (s *Shell) byYear() error
