// /home/krylon/go/src/github.com/blicero/cinestat/omdb/client.go
// -*- mode: go; coding: utf-8; -*-
// Created on 26. 09. 2021 by Benjamin Walkenhorst
// (c) 2021 Benjamin Walkenhorst
// Time-stamp: <2021-10-07 22:34:10 krylon>

// Package omdb talks to the OMDb web service to enrich the movie catalog
// with metadata the ratings source does not carry: the IMDb ID, the
// runtime, the plot, the box office figure, and so on.
//
// Responses are cached on disk, so repeated imports of the same catalog do
// not hammer the service.
package omdb

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"log"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/blicero/cinestat/common"
	"github.com/blicero/cinestat/logdomain"
	"github.com/blicero/krylib"
)

const (
	defaultURL  = "http://www.omdbapi.com/"
	maxAttempts = 4
	reqTimeout  = 8 * time.Second
)

// ErrNotFound indicates that the service does not know the movie we asked
// about.
var ErrNotFound = errors.New("movie was not found")

// Result is the (partial) response to a lookup request.
type Result struct {
	Title     string `json:"Title"`
	Year      string `json:"Year"`
	Released  string `json:"Released"`
	Runtime   string `json:"Runtime"`
	Genre     string `json:"Genre"`
	Director  string `json:"Director"`
	Plot      string `json:"Plot"`
	BoxOffice string `json:"BoxOffice"`
	ImdbID    string `json:"imdbID"`
	Response  string `json:"Response"`
	Error     string `json:"Error"`
}

// RuntimeMinutes parses the Runtime field ("142 min") and returns the
// number of minutes, or 0 if the field is empty or malformed.
func (r *Result) RuntimeMinutes() int64 {
	var fields = strings.Fields(r.Runtime)

	if len(fields) != 2 || fields[1] != "min" {
		return 0
	}

	var (
		err error
		min int64
	)

	if min, err = strconv.ParseInt(fields[0], 10, 64); err != nil {
		return 0
	}

	return min
} // func (r *Result) RuntimeMinutes() int64

// Genres splits the comma-separated Genre field into a list of names.
func (r *Result) Genres() []string {
	return splitField(r.Genre)
} // func (r *Result) Genres() []string

// Directors splits the comma-separated Director field into a list of
// names.
func (r *Result) Directors() []string {
	return splitField(r.Director)
} // func (r *Result) Directors() []string

// ReleaseDate parses the Released field ("25 Dec 1995"). The zero value is
// returned if the field is empty or malformed.
func (r *Result) ReleaseDate() time.Time {
	var (
		err   error
		stamp time.Time
	)

	if stamp, err = time.Parse("02 Jan 2006", r.Released); err != nil {
		return time.Time{}
	}

	return stamp
} // func (r *Result) ReleaseDate() time.Time

func splitField(s string) []string {
	if s == "" || s == "N/A" {
		return nil
	}

	var list = make([]string, 0, 4)

	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" && part != "N/A" {
			list = append(list, part)
		}
	}

	return list
} // func splitField(s string) []string

// Client performs lookups against the OMDb service.
//
// Like the Database, a Client is not safe to share between goroutines.
type Client struct {
	key      string
	baseURL  string
	cacheDir string
	hc       http.Client
	log      *log.Logger
}

// NewClient creates a Client that identifies itself with the given API
// key.
func NewClient(key string) (*Client, error) {
	var (
		err error
		c   = &Client{
			key:      key,
			baseURL:  defaultURL,
			cacheDir: common.CacheDir,
			hc:       http.Client{Timeout: reqTimeout},
		}
	)

	if key == "" {
		return nil, errors.New("API key must not be empty")
	}

	if c.log, err = common.GetLogger(logdomain.OMDb); err != nil {
		return nil, err
	}

	return c, nil
} // func NewClient(key string) (*Client, error)

// Lookup asks the service about the movie with the given title (and, if
// non-zero, release year). If the movie is not known to the service, it
// returns ErrNotFound.
func (c *Client) Lookup(title string, year int64) (*Result, error) {
	var (
		err   error
		res   *Result
		cpath = c.cachePath(title, year)
	)

	if res, err = c.cacheGet(cpath); err != nil {
		c.log.Printf("[WARN] Cannot read cache file %s: %s\n",
			cpath,
			err.Error())
	} else if res != nil {
		if common.Debug {
			c.log.Printf("[DEBUG] Cache hit for %q (%d)\n",
				title,
				year)
		}
		return checkResponse(res)
	}

	var addr *url.URL

	if addr, err = url.Parse(c.baseURL); err != nil {
		c.log.Printf("[CANTHAPPEN] Cannot parse service URL %q: %s\n",
			c.baseURL,
			err.Error())
		return nil, err
	}

	var q = addr.Query()
	q.Add("apikey", c.key)
	q.Add("r", "json")
	q.Add("t", title)
	if year != 0 {
		q.Add("y", strconv.FormatInt(year, 10))
	}
	addr.RawQuery = q.Encode()

	var body []byte

	for attempt := 0; attempt < maxAttempts; attempt++ {
		if body, err = c.sendReq(addr.String()); err == nil {
			break
		}

		var wait = time.Second << attempt
		c.log.Printf("[WARN] Attempt %d to look up %q failed (%s), waiting %s\n",
			attempt+1,
			title,
			err.Error(),
			wait)
		time.Sleep(wait)
	}

	if err != nil {
		c.log.Printf("[ERROR] Giving up on %q after %d attempts: %s\n",
			title,
			maxAttempts,
			err.Error())
		return nil, err
	}

	res = new(Result)

	if err = json.Unmarshal(body, res); err != nil {
		c.log.Printf("[ERROR] Cannot parse response for %q: %s\n",
			title,
			err.Error())
		return nil, err
	}

	if err = ioutil.WriteFile(cpath, body, 0644); err != nil {
		c.log.Printf("[WARN] Cannot write cache file %s: %s\n",
			cpath,
			err.Error())
	}

	return checkResponse(res)
} // func (c *Client) Lookup(title string, year int64) (*Result, error)

func (c *Client) sendReq(addr string) ([]byte, error) {
	var (
		err  error
		resp *http.Response
		body []byte
	)

	if resp, err = c.hc.Get(addr); err != nil {
		return nil, err
	}

	defer resp.Body.Close() // nolint: errcheck,gosec

	if body, err = ioutil.ReadAll(resp.Body); err != nil {
		return nil, err
	} else if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Service returned %s",
			resp.Status)
	}

	return body, nil
} // func (c *Client) sendReq(addr string) ([]byte, error)

func (c *Client) cachePath(title string, year int64) string {
	var name string

	if year != 0 {
		name = fmt.Sprintf("%s__%d", title, year)
	} else {
		name = title
	}

	name = strings.ReplaceAll(name, "/", "_")

	return filepath.Join(c.cacheDir, name+".json")
} // func (c *Client) cachePath(title string, year int64) string

func (c *Client) cacheGet(path string) (*Result, error) {
	var (
		err    error
		exists bool
		body   []byte
		res    *Result
	)

	if exists, err = krylib.Fexists(path); err != nil {
		return nil, err
	} else if !exists {
		return nil, nil
	}

	if body, err = ioutil.ReadFile(path); err != nil {
		return nil, err
	}

	res = new(Result)

	if err = json.Unmarshal(body, res); err != nil {
		return nil, err
	}

	return res, nil
} // func (c *Client) cacheGet(path string) (*Result, error)

func checkResponse(res *Result) (*Result, error) {
	if res.Response == "False" {
		return nil, ErrNotFound
	}

	return res, nil
} // func checkResponse(res *Result) (*Result, error)
