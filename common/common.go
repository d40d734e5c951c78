// /home/krylon/go/src/github.com/blicero/cinestat/common/common.go
// -*- mode: go; coding: utf-8; -*-
// Created on 18. 09. 2021 by Benjamin Walkenhorst
// (c) 2021 Benjamin Walkenhorst
// Time-stamp: <2021-10-02 21:48:33 krylon>

// Package common provides constants and helper functions used throughout
// the application: where to find the database, how to get a Logger for a
// given part of the program, that kind of thing.
package common

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/blicero/cinestat/logdomain"
	"github.com/hashicorp/logutils"
	"github.com/odeke-em/go-uuid"
)

// Debug, if true, causes the application to log additional messages.
const Debug = true

// AppName is the name of the application, Version is, well, take a wild guess.
const (
	AppName         = "CineStat"
	Version         = "0.1.0"
	TimestampFormat = "2006-01-02 15:04:05"
)

// LogLevels are the names of the log levels supported by the logger.
var LogLevels = []logutils.LogLevel{
	"TRACE",
	"DEBUG",
	"INFO",
	"WARN",
	"ERROR",
	"CRITICAL",
	"CANTHAPPEN",
	"SILENT",
}

// PackageLevels defines minimum log levels per package.
var PackageLevels = make(map[logdomain.ID]logutils.LogLevel, len(LogLevels))

func init() {
	var minLevel logutils.LogLevel = "INFO"
	if Debug {
		minLevel = "TRACE"
	}

	for _, id := range logdomain.AllDomains() {
		PackageLevels[id] = minLevel
	}
} // func init()

// BaseDir is the directory where the application stores its data, i.e. the
// database, the log file, and the metadata cache.
var BaseDir = filepath.Join(
	os.Getenv("HOME"),
	fmt.Sprintf(".%s.d", strings.ToLower(AppName)))

// LogPath is the path of the log file.
var LogPath = filepath.Join(BaseDir, strings.ToLower(AppName)+".log")

// DbPath is the path of the database file.
var DbPath = filepath.Join(BaseDir, strings.ToLower(AppName)+".db")

// CacheDir is the directory where responses from the metadata source are
// cached.
var CacheDir = filepath.Join(BaseDir, "cache")

// SetBaseDir sets the BaseDir and the paths that depend on it.
func SetBaseDir(path string) error {
	fmt.Printf("Setting BaseDir to %s\n", path)

	BaseDir = path
	LogPath = filepath.Join(BaseDir, strings.ToLower(AppName)+".log")
	DbPath = filepath.Join(BaseDir, strings.ToLower(AppName)+".db")
	CacheDir = filepath.Join(BaseDir, "cache")

	if err := InitApp(); err != nil {
		fmt.Printf("Error initializing application environment: %s\n",
			err.Error())
		return err
	}

	return nil
} // func SetBaseDir(path string) error

// GetLogger tries to create a Logger for the given log source.
func GetLogger(dom logdomain.ID) (*log.Logger, error) {
	var (
		err     error
		logfile *os.File
	)

	if err = InitApp(); err != nil {
		return nil, fmt.Errorf("Error initializing application environment: %s",
			err.Error())
	}

	var name = fmt.Sprintf("%s.%s ",
		AppName,
		dom)

	if logfile, err = os.OpenFile(LogPath, os.O_RDWR|os.O_APPEND|os.O_CREATE, 0644); err != nil {
		var msg = fmt.Sprintf("Error opening log file %s: %s",
			LogPath,
			err.Error())
		fmt.Fprintln(os.Stderr, msg)
		return nil, fmt.Errorf("%s", msg)
	}

	var writer = io.MultiWriter(os.Stderr, logfile)

	var filter = &logutils.LevelFilter{
		Levels:   LogLevels,
		MinLevel: PackageLevels[dom],
		Writer:   writer,
	}

	var logger = log.New(filter, name, log.Ldate|log.Ltime|log.Lshortfile)

	return logger, nil
} // func GetLogger(dom logdomain.ID) (*log.Logger, error)

// InitApp performs some basic preparations for the application to run.
// Currently, this means creating the BaseDir and the CacheDir, if they do
// not exist.
func InitApp() error {
	var err error

	if err = os.MkdirAll(BaseDir, 0755); err != nil {
		var msg = fmt.Sprintf("Error creating BaseDir %s: %s",
			BaseDir,
			err.Error())
		return fmt.Errorf("%s", msg)
	} else if err = os.MkdirAll(CacheDir, 0755); err != nil {
		var msg = fmt.Sprintf("Error creating CacheDir %s: %s",
			CacheDir,
			err.Error())
		return fmt.Errorf("%s", msg)
	}

	return nil
} // func InitApp() error

// GetUUID returns a randomized UUID
func GetUUID() string {
	return uuid.NewRandom().String()
} // func GetUUID() string

// TimeEqual returns true if the two timestamps are less than one second apart.
func TimeEqual(t1, t2 time.Time) bool {
	var delta = t1.Sub(t2)

	if delta < 0 {
		delta = -delta
	}

	return delta < time.Second
} // func TimeEqual(t1, t2 time.Time) bool
