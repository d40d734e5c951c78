// /home/krylon/go/src/github.com/blicero/cinestat/database/database.go
// -*- mode: go; coding: utf-8; -*-
// Created on 19. 09. 2021 by Benjamin Walkenhorst
// (c) 2021 Benjamin Walkenhorst
// Time-stamp: <2021-10-08 20:14:29 krylon>

// Package database is a wrapper around the actual database connection.
// For the time being, we use SQLite, because it is awesome.
package database

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"regexp"
	"sync"
	"time"

	"github.com/blicero/cinestat/common"
	"github.com/blicero/cinestat/database/query"
	"github.com/blicero/cinestat/logdomain"
	"github.com/blicero/cinestat/objects"
	"github.com/blicero/krylib"
	_ "github.com/mattn/go-sqlite3" // Import the database driver
)

var (
	openLock sync.Mutex
	idCnt    int64
)

// ErrTxInProgress indicates that an attempt to initiate a transaction failed
// because there is already one in progress.
var ErrTxInProgress = errors.New("A Transaction is already in progress")

// ErrNoTxInProgress indicates that an attempt was made to finish a
// transaction when none was active.
var ErrNoTxInProgress = errors.New("There is no transaction in progress")

// ErrEmptyUpdate indicates that an update operation would not change any
// values.
var ErrEmptyUpdate = errors.New("Update operation does not change any values")

// ErrInvalidValue indicates that one or more parameters passed to a method
// had values that are invalid for that operation.
var ErrInvalidValue = errors.New("Invalid value for parameter")

// ErrObjectNotFound indicates that an Object was not found in the database.
var ErrObjectNotFound = errors.New("object was not found in database")

// ErrInvalidSavepoint is returned when a user of the Database uses an unkown
// (or expired) savepoint name.
var ErrInvalidSavepoint = errors.New("that save point does not exist")

// Support thresholds for the rating reports. Aggregates backed by fewer
// ratings than this are not statistically meaningful and are excluded.
const (
	minMovieSupport = 5
	minGenreSupport = 20
	topGenreCnt     = 5
)

// If a query returns an error and the error text is matched by this regex, we
// consider the error as transient and try again after a short delay.
var retryPat = regexp.MustCompile("(?i)database is (?:locked|busy)")

// worthARetry returns true if an error returned from the database
// is matched by the retryPat regex.
func worthARetry(e error) bool {
	return retryPat.MatchString(e.Error())
} // func worthARetry(e error) bool

// retryDelay is the amount of time we wait before we repeat a database
// operation that failed due to a transient error.
const retryDelay = 25 * time.Millisecond

func waitForRetry() {
	time.Sleep(retryDelay)
} // func waitForRetry()

// Database is the storage backend for the movie catalog and the ratings.
//
// It is not safe to share a Database instance between goroutines, however
// opening multiple connections to the same Database is safe.
type Database struct {
	id            int64
	db            *sql.DB
	tx            *sql.Tx
	log           *log.Logger
	path          string
	spNameCounter int
	spNameCache   map[string]string
	queries       map[query.ID]*sql.Stmt
}

// Open opens a Database. If the database specified by the path does not exist,
// yet, it is created and initialized.
func Open(path string) (*Database, error) {
	var (
		err      error
		dbExists bool
		db       = &Database{
			path:          path,
			spNameCounter: 1,
			spNameCache:   make(map[string]string),
			queries:       make(map[query.ID]*sql.Stmt),
		}
	)

	openLock.Lock()
	defer openLock.Unlock()
	idCnt++
	db.id = idCnt

	if db.log, err = common.GetLogger(logdomain.Database); err != nil {
		return nil, err
	} else if common.Debug {
		db.log.Printf("[DEBUG] Open database %s\n", path)
	}

	var connstring = fmt.Sprintf("%s?_locking=NORMAL&_journal=WAL&_fk=1&recursive_triggers=0",
		path)

	if dbExists, err = krylib.Fexists(path); err != nil {
		db.log.Printf("[ERROR] Failed to check if %s already exists: %s\n",
			path,
			err.Error())
		return nil, err
	} else if db.db, err = sql.Open("sqlite3", connstring); err != nil {
		db.log.Printf("[ERROR] Failed to open %s: %s\n",
			path,
			err.Error())
		return nil, err
	}

	if !dbExists {
		if err = db.initialize(); err != nil {
			var e2 error
			if e2 = db.db.Close(); e2 != nil {
				db.log.Printf("[CRITICAL] Failed to close database: %s\n",
					e2.Error())
				return nil, e2
			} else if e2 = os.Remove(path); e2 != nil {
				db.log.Printf("[CRITICAL] Failed to remove database file %s: %s\n",
					db.path,
					e2.Error())
			}
			return nil, err
		}
		db.log.Printf("[INFO] Database at %s has been initialized\n",
			path)
	}

	return db, nil
} // func Open(path string) (*Database, error)

func (db *Database) initialize() error {
	var err error
	var tx *sql.Tx

	if common.Debug {
		db.log.Printf("[DEBUG] Initialize fresh database at %s\n",
			db.path)
	}

	if tx, err = db.db.Begin(); err != nil {
		db.log.Printf("[ERROR] Cannot begin transaction: %s\n",
			err.Error())
		return err
	}

	for _, q := range initQueries {
		db.log.Printf("[TRACE] Execute init query:\n%s\n",
			q)
		if _, err = tx.Exec(q); err != nil {
			db.log.Printf("[ERROR] Cannot execute init query: %s\n%s\n",
				err.Error(),
				q)
			if rbErr := tx.Rollback(); rbErr != nil {
				db.log.Printf("[CANTHAPPEN] Cannot rollback transaction: %s\n",
					rbErr.Error())
				return rbErr
			}
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		db.log.Printf("[CANTHAPPEN] Failed to commit init transaction: %s\n",
			err.Error())
		return err
	}

	return nil
} // func (db *Database) initialize() error

// Close closes the database.
// If there is a pending transaction, it is rolled back.
func (db *Database) Close() error {
	// I wonder if would make more sense to panic() if something goes wrong

	var err error

	if db.tx != nil {
		if err = db.tx.Rollback(); err != nil {
			db.log.Printf("[CRITICAL] Cannot roll back pending transaction: %s\n",
				err.Error())
			return err
		}
		db.tx = nil
	}

	for key, stmt := range db.queries {
		if err = stmt.Close(); err != nil {
			db.log.Printf("[CRITICAL] Cannot close statement handle %s: %s\n",
				key,
				err.Error())
			return err
		}
		delete(db.queries, key)
	}

	if err = db.db.Close(); err != nil {
		db.log.Printf("[CRITICAL] Cannot close database: %s\n",
			err.Error())
	}

	db.db = nil
	return nil
} // func (db *Database) Close() error

func (db *Database) getQuery(id query.ID) (*sql.Stmt, error) {
	var (
		stmt  *sql.Stmt
		found bool
		err   error
	)

	if stmt, found = db.queries[id]; found {
		return stmt, nil
	} else if _, found = dbQueries[id]; !found {
		return nil, fmt.Errorf("Unknown Query %d",
			id)
	}

	db.log.Printf("[TRACE] Prepare query %s\n", id)

PREPARE_QUERY:
	if stmt, err = db.db.Prepare(dbQueries[id]); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto PREPARE_QUERY
		}

		db.log.Printf("[ERROR] Cannor parse query %s: %s\n%s\n",
			id,
			err.Error(),
			dbQueries[id])
		return nil, err
	}

	db.queries[id] = stmt
	return stmt, nil
} // func (db *Database) getQuery(query.ID) (*sql.Stmt, error)

func (db *Database) resetSPNamespace() {
	db.spNameCounter = 1
	db.spNameCache = make(map[string]string)
} // func (db *Database) resetSPNamespace()

func (db *Database) generateSPName(name string) string {
	var spname = fmt.Sprintf("Savepoint%05d",
		db.spNameCounter)

	db.spNameCache[name] = spname
	db.spNameCounter++
	return spname
} // func (db *Database) generateSPName() string

// PerformMaintenance performs some maintenance operations on the database.
// It cannot be called while a transaction is in progress and will block
// pretty much all access to the database while it is running.
func (db *Database) PerformMaintenance() error {
	var mQueries = []string{
		"PRAGMA wal_checkpoint(TRUNCATE)",
		"VACUUM",
		"REINDEX",
		"ANALYZE",
	}
	var err error

	if db.tx != nil {
		return ErrTxInProgress
	}

	for _, q := range mQueries {
		if _, err = db.db.Exec(q); err != nil {
			db.log.Printf("[ERROR] Failed to execute %s: %s\n",
				q,
				err.Error())
		}
	}

	return nil
} // func (db *Database) PerformMaintenance() error

// Begin begins an explicit database transaction.
// Only one transaction can be in progress at once, attempting to start one,
// while another transaction is already in progress will yield ErrTxInProgress.
func (db *Database) Begin() error {
	var err error

	db.log.Printf("[DEBUG] Database#%d Begin Transaction\n",
		db.id)

	if db.tx != nil {
		return ErrTxInProgress
	}

BEGIN_TX:
	for db.tx == nil {
		if db.tx, err = db.db.Begin(); err != nil {
			if worthARetry(err) {
				waitForRetry()
				continue BEGIN_TX
			} else {
				db.log.Printf("[ERROR] Failed to start transaction: %s\n",
					err.Error())
				return err
			}
		}
	}

	db.resetSPNamespace()

	return nil
} // func (db *Database) Begin() error

// SavepointCreate creates a savepoint with the given name.
//
// Savepoints only make sense within a running transaction, and just like
// with explicit transactions, managing them is the responsibility of the
// user of the Database.
//
// Creating a savepoint without a surrounding transaction is not allowed,
// even though SQLite allows it.
func (db *Database) SavepointCreate(name string) error {
	var err error

	db.log.Printf("[DEBUG] SavepointCreate(%s)\n",
		name)

	if db.tx == nil {
		return ErrNoTxInProgress
	}

SAVEPOINT:
	// The SAVEPOINT statement does not support placeholders, so we only
	// ever hand SQLite names we generated ourselves and keep a map from
	// the user's name to ours.
	var internalName = db.generateSPName(name)

	var spQuery = "SAVEPOINT " + internalName

	if _, err = db.tx.Exec(spQuery); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto SAVEPOINT
		}

		db.log.Printf("[ERROR] Failed to create savepoint %s: %s\n",
			name,
			err.Error())
	}

	return err
} // func (db *Database) SavepointCreate(name string) error

// SavepointRelease releases the Savepoint with the given name, and all
// Savepoints created before the one being release.
func (db *Database) SavepointRelease(name string) error {
	var (
		err                   error
		internalName, spQuery string
		validName             bool
	)

	db.log.Printf("[DEBUG] SavepointRelease(%s)\n",
		name)

	if db.tx == nil {
		return ErrNoTxInProgress
	}

	if internalName, validName = db.spNameCache[name]; !validName {
		db.log.Printf("[ERROR] Attempt to release unknown Savepoint %q\n",
			name)
		return ErrInvalidSavepoint
	}

	db.log.Printf("[DEBUG] Release Savepoint %q (%q)",
		name,
		db.spNameCache[name])

	spQuery = "RELEASE SAVEPOINT " + internalName

SAVEPOINT:
	if _, err = db.tx.Exec(spQuery); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto SAVEPOINT
		}

		db.log.Printf("[ERROR] Failed to release savepoint %s: %s\n",
			name,
			err.Error())
	} else {
		delete(db.spNameCache, internalName)
	}

	return err
} // func (db *Database) SavepointRelease(name string) error

// SavepointRollback rolls back the running transaction to the given savepoint.
func (db *Database) SavepointRollback(name string) error {
	var (
		err                   error
		internalName, spQuery string
		validName             bool
	)

	db.log.Printf("[DEBUG] SavepointRollback(%s)\n",
		name)

	if db.tx == nil {
		return ErrNoTxInProgress
	}

	if internalName, validName = db.spNameCache[name]; !validName {
		return ErrInvalidSavepoint
	}

	spQuery = "ROLLBACK TO SAVEPOINT " + internalName

SAVEPOINT:
	if _, err = db.tx.Exec(spQuery); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto SAVEPOINT
		}

		db.log.Printf("[ERROR] Failed to roll back to savepoint %s: %s\n",
			name,
			err.Error())
	}

	delete(db.spNameCache, name)
	return err
} // func (db *Database) SavepointRollback(name string) error

// Rollback terminates a pending transaction, undoing any changes to the
// database made during that transaction.
// If no transaction is active, it returns ErrNoTxInProgress
func (db *Database) Rollback() error {
	var err error

	db.log.Printf("[DEBUG] Database#%d Roll back Transaction\n",
		db.id)

	if db.tx == nil {
		return ErrNoTxInProgress
	} else if err = db.tx.Rollback(); err != nil {
		return fmt.Errorf("Cannot roll back database transaction: %s",
			err.Error())
	}

	db.tx = nil
	db.resetSPNamespace()

	return nil
} // func (db *Database) Rollback() error

// Commit ends the active transaction, making any changes made during that
// transaction permanent and visible to other connections.
// If no transaction is active, it returns ErrNoTxInProgress
func (db *Database) Commit() error {
	var err error

	db.log.Printf("[DEBUG] Database#%d Commit Transaction\n",
		db.id)

	if db.tx == nil {
		return ErrNoTxInProgress
	} else if err = db.tx.Commit(); err != nil {
		return fmt.Errorf("Cannot commit transaction: %s",
			err.Error())
	}

	db.resetSPNamespace()
	db.tx = nil
	return nil
} // func (db *Database) Commit() error

// MovieAdd adds a Movie to the catalog. On success, the Movie's ID and
// CTime are filled in.
func (db *Database) MovieAdd(m *objects.Movie) error {
	const qid query.ID = query.MovieAdd
	var (
		err    error
		msg    string
		stmt   *sql.Stmt
		tx     *sql.Tx
		status bool
	)

	if m.Title == "" {
		return ErrInvalidValue
	}

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid.String(),
			err.Error())
		return err
	} else if db.tx != nil {
		tx = db.tx
	} else {
	BEGIN_AD_HOC:
		if tx, err = db.db.Begin(); err != nil {
			if worthARetry(err) {
				waitForRetry()
				goto BEGIN_AD_HOC
			} else {
				msg = fmt.Sprintf("Error starting transaction: %s\n",
					err.Error())
				db.log.Printf("[ERROR] %s\n", msg)
				return errors.New(msg)
			}

		} else {
			defer func() {
				var err2 error
				if status {
					if err2 = tx.Commit(); err2 != nil {
						db.log.Printf("[ERROR] Failed to commit ad-hoc transaction: %s\n",
							err2.Error())
					}
				} else if err2 = tx.Rollback(); err2 != nil {
					db.log.Printf("[ERROR] Rollback of ad-hoc transaction failed: %s\n",
						err2.Error())
				}
			}()
		}
	}

	stmt = tx.Stmt(stmt)

	var (
		res   sql.Result
		now   = time.Now()
		extID interface{}
		mlID  interface{}
		year  interface{}
	)

	if m.ExtID != "" {
		extID = m.ExtID
	}
	if m.MLID != 0 {
		mlID = m.MLID
	}
	if m.Year != 0 {
		year = m.Year
	}

EXEC_QUERY:
	if res, err = stmt.Exec(extID, mlID, m.Title, year, now.Unix()); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		} else {
			err = fmt.Errorf("Cannot add Movie %s to database: %s",
				m.Title,
				err.Error())
			db.log.Printf("[ERROR] %s\n", err.Error())
			return err
		}
	} else {
		var movieID int64

		if movieID, err = res.LastInsertId(); err != nil {
			db.log.Printf("[ERROR] Cannot get ID of new Movie %s: %s\n",
				m.Title,
				err.Error())
			return err
		}

		status = true
		m.ID = movieID
		m.CTime = now
		return nil
	}
} // func (db *Database) MovieAdd(m *objects.Movie) error

// MovieDelete removes a Movie from the catalog. Its genre and director
// associations are removed along with it.
func (db *Database) MovieDelete(m *objects.Movie) error {
	const qid query.ID = query.MovieDelete
	var (
		err    error
		msg    string
		stmt   *sql.Stmt
		tx     *sql.Tx
		status bool
	)

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid.String(),
			err.Error())
		return err
	} else if db.tx != nil {
		tx = db.tx
	} else {
	BEGIN_AD_HOC:
		if tx, err = db.db.Begin(); err != nil {
			if worthARetry(err) {
				waitForRetry()
				goto BEGIN_AD_HOC
			} else {
				msg = fmt.Sprintf("Error starting transaction: %s\n",
					err.Error())
				db.log.Printf("[ERROR] %s\n", msg)
				return errors.New(msg)
			}

		} else {
			defer func() {
				var err2 error
				if status {
					if err2 = tx.Commit(); err2 != nil {
						db.log.Printf("[ERROR] Failed to commit ad-hoc transaction: %s\n",
							err2.Error())
					}
				} else if err2 = tx.Rollback(); err2 != nil {
					db.log.Printf("[ERROR] Rollback of ad-hoc transaction failed: %s\n",
						err2.Error())
				}
			}()
		}
	}

	stmt = tx.Stmt(stmt)

EXEC_QUERY:
	if _, err = stmt.Exec(m.ID); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		} else {
			err = fmt.Errorf("Cannot delete Movie %s (%d) from database: %s",
				m.Title,
				m.ID,
				err.Error())
			db.log.Printf("[ERROR] %s\n", err.Error())
			return err
		}
	}

	status = true
	return nil
} // func (db *Database) MovieDelete(m *objects.Movie) error

// MovieUpdateMeta updates the metadata of the given Movie, i.e. everything
// the enrichment source can supply: the external ID, the dataset ID, the
// release year and date, the runtime, the plot, and the box office figure.
func (db *Database) MovieUpdateMeta(m *objects.Movie) error {
	const qid query.ID = query.MovieUpdateMeta
	var (
		err    error
		msg    string
		stmt   *sql.Stmt
		tx     *sql.Tx
		status bool
	)

	if m.ID == 0 {
		return ErrInvalidValue
	}

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid.String(),
			err.Error())
		return err
	} else if db.tx != nil {
		tx = db.tx
	} else {
	BEGIN_AD_HOC:
		if tx, err = db.db.Begin(); err != nil {
			if worthARetry(err) {
				waitForRetry()
				goto BEGIN_AD_HOC
			} else {
				msg = fmt.Sprintf("Error starting transaction: %s\n",
					err.Error())
				db.log.Printf("[ERROR] %s\n", msg)
				return errors.New(msg)
			}

		} else {
			defer func() {
				var err2 error
				if status {
					if err2 = tx.Commit(); err2 != nil {
						db.log.Printf("[ERROR] Failed to commit ad-hoc transaction: %s\n",
							err2.Error())
					}
				} else if err2 = tx.Rollback(); err2 != nil {
					db.log.Printf("[ERROR] Rollback of ad-hoc transaction failed: %s\n",
						err2.Error())
				}
			}()
		}
	}

	stmt = tx.Stmt(stmt)

	var (
		extID, mlID, year, runtime, plot, box, rdate interface{}
	)

	if m.ExtID != "" {
		extID = m.ExtID
	}
	if m.MLID != 0 {
		mlID = m.MLID
	}
	if m.Year != 0 {
		year = m.Year
	}
	if m.RuntimeMinutes != 0 {
		runtime = m.RuntimeMinutes
	}
	if m.Plot != "" {
		plot = m.Plot
	}
	if m.BoxOffice != "" {
		box = m.BoxOffice
	}
	if !m.ReleaseDate.IsZero() {
		rdate = m.ReleaseDate.Unix()
	}

EXEC_QUERY:
	if _, err = stmt.Exec(extID, mlID, year, runtime, plot, box, rdate, m.ID); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		} else {
			err = fmt.Errorf("Cannot update metadata of Movie %s (%d): %s",
				m.Title,
				m.ID,
				err.Error())
			db.log.Printf("[ERROR] %s\n", err.Error())
			return err
		}
	}

	status = true
	return nil
} // func (db *Database) MovieUpdateMeta(m *objects.Movie) error

// MovieGetAll fetches all Movies from the catalog.
func (db *Database) MovieGetAll() ([]objects.Movie, error) {
	const qid query.ID = query.MovieGetAll
	var (
		err  error
		stmt *sql.Stmt
	)

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid,
			err.Error())
		return nil, err
	} else if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

	var rows *sql.Rows

EXEC_QUERY:
	if rows, err = stmt.Query(); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		return nil, err
	}

	defer rows.Close() // nolint: errcheck,gosec

	var list = make([]objects.Movie, 0, 256)

	for rows.Next() {
		var (
			m                          objects.Movie
			extID, plot, box           *string
			mlID, year, runtime, rdate *int64
			ctime                      int64
		)

		if err = rows.Scan(&m.ID, &extID, &mlID, &m.Title, &year, &runtime, &plot, &box, &rdate, &ctime); err != nil {
			db.log.Printf("[ERROR] Cannot scan row: %s\n", err.Error())
			return nil, err
		}

		if extID != nil {
			m.ExtID = *extID
		}
		if mlID != nil {
			m.MLID = *mlID
		}
		if year != nil {
			m.Year = *year
		}
		if runtime != nil {
			m.RuntimeMinutes = *runtime
		}
		if plot != nil {
			m.Plot = *plot
		}
		if box != nil {
			m.BoxOffice = *box
		}
		if rdate != nil {
			m.ReleaseDate = time.Unix(*rdate, 0)
		}
		m.CTime = time.Unix(ctime, 0)

		list = append(list, m)
	}

	return list, nil
} // func (db *Database) MovieGetAll() ([]objects.Movie, error)

// MovieGetByID loads a Movie by its (surrogate) ID.
func (db *Database) MovieGetByID(id int64) (*objects.Movie, error) {
	const qid query.ID = query.MovieGetByID
	var (
		err  error
		stmt *sql.Stmt
	)

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid,
			err.Error())
		return nil, err
	} else if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

	var rows *sql.Rows

EXEC_QUERY:
	if rows, err = stmt.Query(id); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		return nil, err
	}

	defer rows.Close() // nolint: errcheck,gosec

	if rows.Next() {
		var (
			m                          = &objects.Movie{ID: id}
			extID, plot, box           *string
			mlID, year, runtime, rdate *int64
			ctime                      int64
		)

		if err = rows.Scan(&extID, &mlID, &m.Title, &year, &runtime, &plot, &box, &rdate, &ctime); err != nil {
			db.log.Printf("[ERROR] Cannot scan row: %s\n", err.Error())
			return nil, err
		}

		if extID != nil {
			m.ExtID = *extID
		}
		if mlID != nil {
			m.MLID = *mlID
		}
		if year != nil {
			m.Year = *year
		}
		if runtime != nil {
			m.RuntimeMinutes = *runtime
		}
		if plot != nil {
			m.Plot = *plot
		}
		if box != nil {
			m.BoxOffice = *box
		}
		if rdate != nil {
			m.ReleaseDate = time.Unix(*rdate, 0)
		}
		m.CTime = time.Unix(ctime, 0)

		return m, nil
	}

	return nil, nil
} // func (db *Database) MovieGetByID(id int64) (*objects.Movie, error)

// MovieGetByMLID loads a Movie by the identifier the ratings source uses.
func (db *Database) MovieGetByMLID(id int64) (*objects.Movie, error) {
	const qid query.ID = query.MovieGetByMLID
	var (
		err  error
		stmt *sql.Stmt
	)

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid,
			err.Error())
		return nil, err
	} else if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

	var rows *sql.Rows

EXEC_QUERY:
	if rows, err = stmt.Query(id); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		return nil, err
	}

	defer rows.Close() // nolint: errcheck,gosec

	if rows.Next() {
		var (
			m                    = &objects.Movie{MLID: id}
			extID, plot, box     *string
			year, runtime, rdate *int64
			ctime                int64
		)

		if err = rows.Scan(&m.ID, &extID, &m.Title, &year, &runtime, &plot, &box, &rdate, &ctime); err != nil {
			db.log.Printf("[ERROR] Cannot scan row: %s\n", err.Error())
			return nil, err
		}

		if extID != nil {
			m.ExtID = *extID
		}
		if year != nil {
			m.Year = *year
		}
		if runtime != nil {
			m.RuntimeMinutes = *runtime
		}
		if plot != nil {
			m.Plot = *plot
		}
		if box != nil {
			m.BoxOffice = *box
		}
		if rdate != nil {
			m.ReleaseDate = time.Unix(*rdate, 0)
		}
		m.CTime = time.Unix(ctime, 0)

		return m, nil
	}

	return nil, nil
} // func (db *Database) MovieGetByMLID(id int64) (*objects.Movie, error)

// MovieGetByExtID loads a Movie by its external (i.e. IMDb) ID.
func (db *Database) MovieGetByExtID(id string) (*objects.Movie, error) {
	const qid query.ID = query.MovieGetByExtID
	var (
		err  error
		stmt *sql.Stmt
	)

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid,
			err.Error())
		return nil, err
	} else if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

	var rows *sql.Rows

EXEC_QUERY:
	if rows, err = stmt.Query(id); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		return nil, err
	}

	defer rows.Close() // nolint: errcheck,gosec

	if rows.Next() {
		var (
			m                          = &objects.Movie{ExtID: id}
			plot, box                  *string
			mlID, year, runtime, rdate *int64
			ctime                      int64
		)

		if err = rows.Scan(&m.ID, &mlID, &m.Title, &year, &runtime, &plot, &box, &rdate, &ctime); err != nil {
			db.log.Printf("[ERROR] Cannot scan row: %s\n", err.Error())
			return nil, err
		}

		if mlID != nil {
			m.MLID = *mlID
		}
		if year != nil {
			m.Year = *year
		}
		if runtime != nil {
			m.RuntimeMinutes = *runtime
		}
		if plot != nil {
			m.Plot = *plot
		}
		if box != nil {
			m.BoxOffice = *box
		}
		if rdate != nil {
			m.ReleaseDate = time.Unix(*rdate, 0)
		}
		m.CTime = time.Unix(ctime, 0)

		return m, nil
	}

	return nil, nil
} // func (db *Database) MovieGetByExtID(id string) (*objects.Movie, error)

// MovieGetByTitle looks up a Movie by its title. If several movies share
// the title, the one that was added first wins.
func (db *Database) MovieGetByTitle(title string) (*objects.Movie, error) {
	const qid query.ID = query.MovieGetByTitle
	var (
		err  error
		stmt *sql.Stmt
	)

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid,
			err.Error())
		return nil, err
	} else if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

	var rows *sql.Rows

EXEC_QUERY:
	if rows, err = stmt.Query(title); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		return nil, err
	}

	defer rows.Close() // nolint: errcheck,gosec

	if rows.Next() {
		var (
			m                          = &objects.Movie{Title: title}
			extID, plot, box           *string
			mlID, year, runtime, rdate *int64
			ctime                      int64
		)

		if err = rows.Scan(&m.ID, &extID, &mlID, &year, &runtime, &plot, &box, &rdate, &ctime); err != nil {
			db.log.Printf("[ERROR] Cannot scan row: %s\n", err.Error())
			return nil, err
		}

		if extID != nil {
			m.ExtID = *extID
		}
		if mlID != nil {
			m.MLID = *mlID
		}
		if year != nil {
			m.Year = *year
		}
		if runtime != nil {
			m.RuntimeMinutes = *runtime
		}
		if plot != nil {
			m.Plot = *plot
		}
		if box != nil {
			m.BoxOffice = *box
		}
		if rdate != nil {
			m.ReleaseDate = time.Unix(*rdate, 0)
		}
		m.CTime = time.Unix(ctime, 0)

		return m, nil
	}

	return nil, nil
} // func (db *Database) MovieGetByTitle(title string) (*objects.Movie, error)

// GenreAdd adds a new Genre to the Database.
func (db *Database) GenreAdd(name string) (*objects.Genre, error) {
	const qid query.ID = query.GenreAdd
	var (
		err    error
		msg    string
		stmt   *sql.Stmt
		tx     *sql.Tx
		status bool
	)

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid.String(),
			err.Error())
		return nil, err
	} else if db.tx != nil {
		tx = db.tx
	} else {
	BEGIN_AD_HOC:
		if tx, err = db.db.Begin(); err != nil {
			if worthARetry(err) {
				waitForRetry()
				goto BEGIN_AD_HOC
			} else {
				msg = fmt.Sprintf("Error starting transaction: %s\n",
					err.Error())
				db.log.Printf("[ERROR] %s\n", msg)
				return nil, errors.New(msg)
			}

		} else {
			defer func() {
				var err2 error
				if status {
					if err2 = tx.Commit(); err2 != nil {
						db.log.Printf("[ERROR] Failed to commit ad-hoc transaction: %s\n",
							err2.Error())
					}
				} else if err2 = tx.Rollback(); err2 != nil {
					db.log.Printf("[ERROR] Rollback of ad-hoc transaction failed: %s\n",
						err2.Error())
				}
			}()
		}
	}

	stmt = tx.Stmt(stmt)
	var res sql.Result

EXEC_QUERY:
	if res, err = stmt.Exec(name); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		} else {
			err = fmt.Errorf("Cannot add Genre %s to database: %s",
				name,
				err.Error())
			db.log.Printf("[ERROR] %s\n", err.Error())
			return nil, err
		}
	} else {
		var genreID int64

		if genreID, err = res.LastInsertId(); err != nil {
			db.log.Printf("[ERROR] Cannot get ID of new Genre %s: %s\n",
				name,
				err.Error())
			return nil, err
		}

		status = true
		return &objects.Genre{
			ID:   genreID,
			Name: name,
		}, nil
	}
} // func (db *Database) GenreAdd(name string) (*objects.Genre, error)

// GenreDelete removes a Genre from the Database. Its links to any movies
// are removed along with it.
func (db *Database) GenreDelete(g *objects.Genre) error {
	const qid query.ID = query.GenreDelete
	var (
		err    error
		msg    string
		stmt   *sql.Stmt
		tx     *sql.Tx
		status bool
	)

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid.String(),
			err.Error())
		return err
	} else if db.tx != nil {
		tx = db.tx
	} else {
	BEGIN_AD_HOC:
		if tx, err = db.db.Begin(); err != nil {
			if worthARetry(err) {
				waitForRetry()
				goto BEGIN_AD_HOC
			} else {
				msg = fmt.Sprintf("Error starting transaction: %s\n",
					err.Error())
				db.log.Printf("[ERROR] %s\n", msg)
				return errors.New(msg)
			}

		} else {
			defer func() {
				var err2 error
				if status {
					if err2 = tx.Commit(); err2 != nil {
						db.log.Printf("[ERROR] Failed to commit ad-hoc transaction: %s\n",
							err2.Error())
					}
				} else if err2 = tx.Rollback(); err2 != nil {
					db.log.Printf("[ERROR] Rollback of ad-hoc transaction failed: %s\n",
						err2.Error())
				}
			}()
		}
	}

	stmt = tx.Stmt(stmt)

EXEC_QUERY:
	if _, err = stmt.Exec(g.ID); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		} else {
			err = fmt.Errorf("Cannot delete Genre %s from database: %s",
				g.Name,
				err.Error())
			db.log.Printf("[ERROR] %s\n", err.Error())
			return err
		}
	}

	status = true
	return nil
} // func (db *Database) GenreDelete(g *objects.Genre) error

// GenreGetAll fetches all Genres from the Database.
func (db *Database) GenreGetAll() ([]objects.Genre, error) {
	const qid query.ID = query.GenreGetAll
	var (
		err  error
		stmt *sql.Stmt
	)

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid,
			err.Error())
		return nil, err
	} else if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

	var rows *sql.Rows

EXEC_QUERY:
	if rows, err = stmt.Query(); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		return nil, err
	}

	defer rows.Close() // nolint: errcheck,gosec

	var list = make([]objects.Genre, 0, 32)

	for rows.Next() {
		var g objects.Genre

		if err = rows.Scan(&g.ID, &g.Name); err != nil {
			db.log.Printf("[ERROR] Cannot scan row: %s\n", err.Error())
			return nil, err
		}

		list = append(list, g)
	}

	return list, nil
} // func (db *Database) GenreGetAll() ([]objects.Genre, error)

// GenreGetByID looks up a Genre by its ID.
func (db *Database) GenreGetByID(id int64) (*objects.Genre, error) {
	const qid query.ID = query.GenreGetByID
	var (
		err  error
		stmt *sql.Stmt
	)

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid,
			err.Error())
		return nil, err
	} else if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

	var rows *sql.Rows

EXEC_QUERY:
	if rows, err = stmt.Query(id); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		return nil, err
	}

	defer rows.Close() // nolint: errcheck,gosec

	if rows.Next() {
		var g = &objects.Genre{ID: id}

		if err = rows.Scan(&g.Name); err != nil {
			db.log.Printf("[ERROR] Cannot scan row: %s\n", err.Error())
			return nil, err
		}

		return g, nil
	}

	return nil, nil
} // func (db *Database) GenreGetByID(id int64) (*objects.Genre, error)

// GenreGetByName looks up a Genre by its name.
func (db *Database) GenreGetByName(name string) (*objects.Genre, error) {
	const qid query.ID = query.GenreGetByName
	var (
		err  error
		stmt *sql.Stmt
	)

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid,
			err.Error())
		return nil, err
	} else if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

	var rows *sql.Rows

EXEC_QUERY:
	if rows, err = stmt.Query(name); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		return nil, err
	}

	defer rows.Close() // nolint: errcheck,gosec

	if rows.Next() {
		var g = &objects.Genre{Name: name}

		if err = rows.Scan(&g.ID); err != nil {
			db.log.Printf("[ERROR] Cannot scan row: %s\n", err.Error())
			return nil, err
		}

		return g, nil
	}

	return nil, nil
} // func (db *Database) GenreGetByName(name string) (*objects.Genre, error)

// GenreLinkAdd links the given Genre to the given Movie.
// Linking the same pair twice is a no-op.
func (db *Database) GenreLinkAdd(m *objects.Movie, g *objects.Genre) error {
	const qid query.ID = query.GenreLinkAdd
	var (
		err    error
		msg    string
		stmt   *sql.Stmt
		tx     *sql.Tx
		status bool
	)

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid.String(),
			err.Error())
		return err
	} else if db.tx != nil {
		tx = db.tx
	} else {
	BEGIN_AD_HOC:
		if tx, err = db.db.Begin(); err != nil {
			if worthARetry(err) {
				waitForRetry()
				goto BEGIN_AD_HOC
			} else {
				msg = fmt.Sprintf("Error starting transaction: %s\n",
					err.Error())
				db.log.Printf("[ERROR] %s\n", msg)
				return errors.New(msg)
			}

		} else {
			defer func() {
				var err2 error
				if status {
					if err2 = tx.Commit(); err2 != nil {
						db.log.Printf("[ERROR] Failed to commit ad-hoc transaction: %s\n",
							err2.Error())
					}
				} else if err2 = tx.Rollback(); err2 != nil {
					db.log.Printf("[ERROR] Rollback of ad-hoc transaction failed: %s\n",
						err2.Error())
				}
			}()
		}
	}

	stmt = tx.Stmt(stmt)

EXEC_QUERY:
	if _, err = stmt.Exec(m.ID, g.ID); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		} else {
			err = fmt.Errorf("Cannot add Genre %s to Movie %s: %s",
				g.Name,
				m.DisplayTitle(),
				err.Error())
			db.log.Printf("[ERROR] %s\n", err.Error())
			return err
		}
	}

	status = true
	return nil
} // func (db *Database) GenreLinkAdd(m *objects.Movie, g *objects.Genre) error

// GenreLinkDelete removes the link between the given Genre and Movie.
func (db *Database) GenreLinkDelete(m *objects.Movie, g *objects.Genre) error {
	const qid query.ID = query.GenreLinkDelete
	var (
		err    error
		msg    string
		stmt   *sql.Stmt
		tx     *sql.Tx
		status bool
	)

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid.String(),
			err.Error())
		return err
	} else if db.tx != nil {
		tx = db.tx
	} else {
	BEGIN_AD_HOC:
		if tx, err = db.db.Begin(); err != nil {
			if worthARetry(err) {
				waitForRetry()
				goto BEGIN_AD_HOC
			} else {
				msg = fmt.Sprintf("Error starting transaction: %s\n",
					err.Error())
				db.log.Printf("[ERROR] %s\n", msg)
				return errors.New(msg)
			}

		} else {
			defer func() {
				var err2 error
				if status {
					if err2 = tx.Commit(); err2 != nil {
						db.log.Printf("[ERROR] Failed to commit ad-hoc transaction: %s\n",
							err2.Error())
					}
				} else if err2 = tx.Rollback(); err2 != nil {
					db.log.Printf("[ERROR] Rollback of ad-hoc transaction failed: %s\n",
						err2.Error())
				}
			}()
		}
	}

	stmt = tx.Stmt(stmt)

EXEC_QUERY:
	if _, err = stmt.Exec(m.ID, g.ID); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		} else {
			err = fmt.Errorf("Cannot remove link of Genre %s to Movie %s: %s",
				g.Name,
				m.DisplayTitle(),
				err.Error())
			db.log.Printf("[ERROR] %s\n", err.Error())
			return err
		}
	}

	status = true
	return nil
} // func (db *Database) GenreLinkDelete(m *objects.Movie, g *objects.Genre) error

// GenreLinkGetByMovie loads all Genres linked to the given Movie.
func (db *Database) GenreLinkGetByMovie(m *objects.Movie) ([]objects.Genre, error) {
	const qid query.ID = query.GenreLinkGetByMovie
	var (
		err  error
		stmt *sql.Stmt
	)

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid,
			err.Error())
		return nil, err
	} else if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

	var rows *sql.Rows

EXEC_QUERY:
	if rows, err = stmt.Query(m.ID); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		return nil, err
	}

	defer rows.Close() // nolint: errcheck,gosec

	var list = make([]objects.Genre, 0, 8)

	for rows.Next() {
		var g objects.Genre

		if err = rows.Scan(&g.ID, &g.Name); err != nil {
			db.log.Printf("[ERROR] Cannot scan row: %s\n", err.Error())
			return nil, err
		}

		list = append(list, g)
	}

	return list, nil
} // func (db *Database) GenreLinkGetByMovie(m *objects.Movie) ([]objects.Genre, error)

// GenreLinkGetByGenre fetches all Movies linked to the given Genre.
func (db *Database) GenreLinkGetByGenre(g *objects.Genre) ([]objects.Movie, error) {
	const qid query.ID = query.GenreLinkGetByGenre
	var (
		err  error
		stmt *sql.Stmt
	)

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid,
			err.Error())
		return nil, err
	} else if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

	var rows *sql.Rows

EXEC_QUERY:
	if rows, err = stmt.Query(g.ID); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		return nil, err
	}

	defer rows.Close() // nolint: errcheck,gosec

	var list = make([]objects.Movie, 0, 32)

	for rows.Next() {
		var (
			m                          objects.Movie
			extID, plot, box           *string
			mlID, year, runtime, rdate *int64
			ctime                      int64
		)

		if err = rows.Scan(&m.ID, &extID, &mlID, &m.Title, &year, &runtime, &plot, &box, &rdate, &ctime); err != nil {
			db.log.Printf("[ERROR] Cannot scan row: %s\n", err.Error())
			return nil, err
		}

		if extID != nil {
			m.ExtID = *extID
		}
		if mlID != nil {
			m.MLID = *mlID
		}
		if year != nil {
			m.Year = *year
		}
		if runtime != nil {
			m.RuntimeMinutes = *runtime
		}
		if plot != nil {
			m.Plot = *plot
		}
		if box != nil {
			m.BoxOffice = *box
		}
		if rdate != nil {
			m.ReleaseDate = time.Unix(*rdate, 0)
		}
		m.CTime = time.Unix(ctime, 0)

		list = append(list, m)
	}

	return list, nil
} // func (db *Database) GenreLinkGetByGenre(g *objects.Genre) ([]objects.Movie, error)

// DirectorAdd adds a new Director to the Database.
func (db *Database) DirectorAdd(name string) (*objects.Director, error) {
	const qid query.ID = query.DirectorAdd
	var (
		err    error
		msg    string
		stmt   *sql.Stmt
		tx     *sql.Tx
		status bool
	)

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid.String(),
			err.Error())
		return nil, err
	} else if db.tx != nil {
		tx = db.tx
	} else {
	BEGIN_AD_HOC:
		if tx, err = db.db.Begin(); err != nil {
			if worthARetry(err) {
				waitForRetry()
				goto BEGIN_AD_HOC
			} else {
				msg = fmt.Sprintf("Error starting transaction: %s\n",
					err.Error())
				db.log.Printf("[ERROR] %s\n", msg)
				return nil, errors.New(msg)
			}

		} else {
			defer func() {
				var err2 error
				if status {
					if err2 = tx.Commit(); err2 != nil {
						db.log.Printf("[ERROR] Failed to commit ad-hoc transaction: %s\n",
							err2.Error())
					}
				} else if err2 = tx.Rollback(); err2 != nil {
					db.log.Printf("[ERROR] Rollback of ad-hoc transaction failed: %s\n",
						err2.Error())
				}
			}()
		}
	}

	stmt = tx.Stmt(stmt)
	var res sql.Result

EXEC_QUERY:
	if res, err = stmt.Exec(name); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		} else {
			err = fmt.Errorf("Cannot add Director %s to database: %s",
				name,
				err.Error())
			db.log.Printf("[ERROR] %s\n", err.Error())
			return nil, err
		}
	} else {
		var directorID int64

		if directorID, err = res.LastInsertId(); err != nil {
			db.log.Printf("[ERROR] Cannot get ID of new Director %s: %s\n",
				name,
				err.Error())
			return nil, err
		}

		status = true
		return &objects.Director{
			ID:   directorID,
			Name: name,
		}, nil
	}
} // func (db *Database) DirectorAdd(name string) (*objects.Director, error)

// DirectorDelete removes a Director from the Database. Links to any movies
// are removed along with the Director, the movies themselves are not
// touched.
func (db *Database) DirectorDelete(d *objects.Director) error {
	const qid query.ID = query.DirectorDelete
	var (
		err    error
		msg    string
		stmt   *sql.Stmt
		tx     *sql.Tx
		status bool
	)

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid.String(),
			err.Error())
		return err
	} else if db.tx != nil {
		tx = db.tx
	} else {
	BEGIN_AD_HOC:
		if tx, err = db.db.Begin(); err != nil {
			if worthARetry(err) {
				waitForRetry()
				goto BEGIN_AD_HOC
			} else {
				msg = fmt.Sprintf("Error starting transaction: %s\n",
					err.Error())
				db.log.Printf("[ERROR] %s\n", msg)
				return errors.New(msg)
			}

		} else {
			defer func() {
				var err2 error
				if status {
					if err2 = tx.Commit(); err2 != nil {
						db.log.Printf("[ERROR] Failed to commit ad-hoc transaction: %s\n",
							err2.Error())
					}
				} else if err2 = tx.Rollback(); err2 != nil {
					db.log.Printf("[ERROR] Rollback of ad-hoc transaction failed: %s\n",
						err2.Error())
				}
			}()
		}
	}

	stmt = tx.Stmt(stmt)

EXEC_QUERY:
	if _, err = stmt.Exec(d.ID); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		} else {
			err = fmt.Errorf("Cannot delete Director %s from database: %s",
				d.Name,
				err.Error())
			db.log.Printf("[ERROR] %s\n", err.Error())
			return err
		}
	}

	status = true
	return nil
} // func (db *Database) DirectorDelete(d *objects.Director) error

// DirectorGetAll loads all Directors from the Database, in no particular
// order.
func (db *Database) DirectorGetAll() ([]objects.Director, error) {
	const qid query.ID = query.DirectorGetAll
	var (
		err  error
		stmt *sql.Stmt
	)

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid,
			err.Error())
		return nil, err
	} else if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

	var rows *sql.Rows

EXEC_QUERY:
	if rows, err = stmt.Query(); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		return nil, err
	}

	defer rows.Close() // nolint: errcheck,gosec

	var list = make([]objects.Director, 0, 32)

	for rows.Next() {
		var d objects.Director

		if err = rows.Scan(&d.ID, &d.Name); err != nil {
			db.log.Printf("[ERROR] Cannot scan row: %s\n", err.Error())
			return nil, err
		}

		list = append(list, d)
	}

	return list, nil
} // func (db *Database) DirectorGetAll() ([]objects.Director, error)

// DirectorGetByID looks up a Director by their ID.
func (db *Database) DirectorGetByID(id int64) (*objects.Director, error) {
	const qid query.ID = query.DirectorGetByID
	var (
		err  error
		stmt *sql.Stmt
	)

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid,
			err.Error())
		return nil, err
	} else if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

	var rows *sql.Rows

EXEC_QUERY:
	if rows, err = stmt.Query(id); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		return nil, err
	}

	defer rows.Close() // nolint: errcheck,gosec

	if rows.Next() {
		var d = &objects.Director{ID: id}

		if err = rows.Scan(&d.Name); err != nil {
			db.log.Printf("[ERROR] Cannot scan row: %s\n", err.Error())
			return nil, err
		}

		return d, nil
	}

	return nil, nil
} // func (db *Database) DirectorGetByID(id int64) (*objects.Director, error)

// DirectorGetByName looks up a Director by their name.
func (db *Database) DirectorGetByName(name string) (*objects.Director, error) {
	const qid query.ID = query.DirectorGetByName
	var (
		err  error
		stmt *sql.Stmt
	)

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid,
			err.Error())
		return nil, err
	} else if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

	var rows *sql.Rows

EXEC_QUERY:
	if rows, err = stmt.Query(name); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		return nil, err
	}

	defer rows.Close() // nolint: errcheck,gosec

	if rows.Next() {
		var d = &objects.Director{Name: name}

		if err = rows.Scan(&d.ID); err != nil {
			db.log.Printf("[ERROR] Cannot scan row: %s\n", err.Error())
			return nil, err
		}

		return d, nil
	}

	return nil, nil
} // func (db *Database) DirectorGetByName(name string) (*objects.Director, error)

// DirectorLinkAdd links the given Director to the given Movie.
// Linking the same pair twice is a no-op.
func (db *Database) DirectorLinkAdd(m *objects.Movie, d *objects.Director) error {
	const qid query.ID = query.DirectorLinkAdd
	var (
		err    error
		msg    string
		stmt   *sql.Stmt
		tx     *sql.Tx
		status bool
	)

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid.String(),
			err.Error())
		return err
	} else if db.tx != nil {
		tx = db.tx
	} else {
	BEGIN_AD_HOC:
		if tx, err = db.db.Begin(); err != nil {
			if worthARetry(err) {
				waitForRetry()
				goto BEGIN_AD_HOC
			} else {
				msg = fmt.Sprintf("Error starting transaction: %s\n",
					err.Error())
				db.log.Printf("[ERROR] %s\n", msg)
				return errors.New(msg)
			}

		} else {
			defer func() {
				var err2 error
				if status {
					if err2 = tx.Commit(); err2 != nil {
						db.log.Printf("[ERROR] Failed to commit ad-hoc transaction: %s\n",
							err2.Error())
					}
				} else if err2 = tx.Rollback(); err2 != nil {
					db.log.Printf("[ERROR] Rollback of ad-hoc transaction failed: %s\n",
						err2.Error())
				}
			}()
		}
	}

	stmt = tx.Stmt(stmt)

EXEC_QUERY:
	if _, err = stmt.Exec(m.ID, d.ID); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		} else {
			err = fmt.Errorf("Cannot add Director %s to Movie %s: %s",
				d.Name,
				m.DisplayTitle(),
				err.Error())
			db.log.Printf("[ERROR] %s\n", err.Error())
			return err
		}
	}

	status = true
	return nil
} // func (db *Database) DirectorLinkAdd(m *objects.Movie, d *objects.Director) error

// DirectorLinkDelete removes the link between the given Director and Movie.
func (db *Database) DirectorLinkDelete(m *objects.Movie, d *objects.Director) error {
	const qid query.ID = query.DirectorLinkDelete
	var (
		err    error
		msg    string
		stmt   *sql.Stmt
		tx     *sql.Tx
		status bool
	)

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid.String(),
			err.Error())
		return err
	} else if db.tx != nil {
		tx = db.tx
	} else {
	BEGIN_AD_HOC:
		if tx, err = db.db.Begin(); err != nil {
			if worthARetry(err) {
				waitForRetry()
				goto BEGIN_AD_HOC
			} else {
				msg = fmt.Sprintf("Error starting transaction: %s\n",
					err.Error())
				db.log.Printf("[ERROR] %s\n", msg)
				return errors.New(msg)
			}

		} else {
			defer func() {
				var err2 error
				if status {
					if err2 = tx.Commit(); err2 != nil {
						db.log.Printf("[ERROR] Failed to commit ad-hoc transaction: %s\n",
							err2.Error())
					}
				} else if err2 = tx.Rollback(); err2 != nil {
					db.log.Printf("[ERROR] Rollback of ad-hoc transaction failed: %s\n",
						err2.Error())
				}
			}()
		}
	}

	stmt = tx.Stmt(stmt)

EXEC_QUERY:
	if _, err = stmt.Exec(m.ID, d.ID); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		} else {
			err = fmt.Errorf("Cannot remove link of Director %s to Movie %s: %s",
				d.Name,
				m.DisplayTitle(),
				err.Error())
			db.log.Printf("[ERROR] %s\n", err.Error())
			return err
		}
	}

	status = true
	return nil
} // func (db *Database) DirectorLinkDelete(m *objects.Movie, d *objects.Director) error

// DirectorLinkGetByMovie loads all Directors linked to the given Movie.
func (db *Database) DirectorLinkGetByMovie(m *objects.Movie) ([]objects.Director, error) {
	const qid query.ID = query.DirectorLinkGetByMovie
	var (
		err  error
		stmt *sql.Stmt
	)

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid,
			err.Error())
		return nil, err
	} else if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

	var rows *sql.Rows

EXEC_QUERY:
	if rows, err = stmt.Query(m.ID); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		return nil, err
	}

	defer rows.Close() // nolint: errcheck,gosec

	var list = make([]objects.Director, 0, 4)

	for rows.Next() {
		var d objects.Director

		if err = rows.Scan(&d.ID, &d.Name); err != nil {
			db.log.Printf("[ERROR] Cannot scan row: %s\n", err.Error())
			return nil, err
		}

		list = append(list, d)
	}

	return list, nil
} // func (db *Database) DirectorLinkGetByMovie(m *objects.Movie) ([]objects.Director, error)

// DirectorLinkGetByDirector fetches all Movies linked to the given Director.
func (db *Database) DirectorLinkGetByDirector(d *objects.Director) ([]objects.Movie, error) {
	const qid query.ID = query.DirectorLinkGetByDirector
	var (
		err  error
		stmt *sql.Stmt
	)

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid,
			err.Error())
		return nil, err
	} else if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

	var rows *sql.Rows

EXEC_QUERY:
	if rows, err = stmt.Query(d.ID); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		return nil, err
	}

	defer rows.Close() // nolint: errcheck,gosec

	var list = make([]objects.Movie, 0, 16)

	for rows.Next() {
		var (
			m                          objects.Movie
			extID, plot, box           *string
			mlID, year, runtime, rdate *int64
			ctime                      int64
		)

		if err = rows.Scan(&m.ID, &extID, &mlID, &m.Title, &year, &runtime, &plot, &box, &rdate, &ctime); err != nil {
			db.log.Printf("[ERROR] Cannot scan row: %s\n", err.Error())
			return nil, err
		}

		if extID != nil {
			m.ExtID = *extID
		}
		if mlID != nil {
			m.MLID = *mlID
		}
		if year != nil {
			m.Year = *year
		}
		if runtime != nil {
			m.RuntimeMinutes = *runtime
		}
		if plot != nil {
			m.Plot = *plot
		}
		if box != nil {
			m.BoxOffice = *box
		}
		if rdate != nil {
			m.ReleaseDate = time.Unix(*rdate, 0)
		}
		m.CTime = time.Unix(ctime, 0)

		list = append(list, m)
	}

	return list, nil
} // func (db *Database) DirectorLinkGetByDirector(d *objects.Director) ([]objects.Movie, error)

// RatingAdd stores one user's Rating of one movie. If the same user has
// rated the same movie before, the old Rating is replaced.
func (db *Database) RatingAdd(r *objects.Rating) error {
	const qid query.ID = query.RatingAdd
	var (
		err    error
		msg    string
		stmt   *sql.Stmt
		tx     *sql.Tx
		status bool
	)

	if r.UserID == 0 || r.MLID == 0 {
		return ErrInvalidValue
	}

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid.String(),
			err.Error())
		return err
	} else if db.tx != nil {
		tx = db.tx
	} else {
	BEGIN_AD_HOC:
		if tx, err = db.db.Begin(); err != nil {
			if worthARetry(err) {
				waitForRetry()
				goto BEGIN_AD_HOC
			} else {
				msg = fmt.Sprintf("Error starting transaction: %s\n",
					err.Error())
				db.log.Printf("[ERROR] %s\n", msg)
				return errors.New(msg)
			}

		} else {
			defer func() {
				var err2 error
				if status {
					if err2 = tx.Commit(); err2 != nil {
						db.log.Printf("[ERROR] Failed to commit ad-hoc transaction: %s\n",
							err2.Error())
					}
				} else if err2 = tx.Rollback(); err2 != nil {
					db.log.Printf("[ERROR] Rollback of ad-hoc transaction failed: %s\n",
						err2.Error())
				}
			}()
		}
	}

	stmt = tx.Stmt(stmt)

EXEC_QUERY:
	if _, err = stmt.Exec(r.UserID, r.MLID, r.Score, r.Timestamp.Unix()); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		} else {
			err = fmt.Errorf("Cannot add Rating of movie %d by user %d: %s",
				r.MLID,
				r.UserID,
				err.Error())
			db.log.Printf("[ERROR] %s\n", err.Error())
			return err
		}
	}

	status = true
	return nil
} // func (db *Database) RatingAdd(r *objects.Rating) error

// RatingGetByMovie loads all Ratings of the given Movie. For a Movie the
// ratings source does not know (i.e. one without an MLID), the result is
// empty.
func (db *Database) RatingGetByMovie(m *objects.Movie) ([]objects.Rating, error) {
	const qid query.ID = query.RatingGetByMovie
	var (
		err  error
		stmt *sql.Stmt
	)

	if !m.HasRatings() {
		return []objects.Rating{}, nil
	}

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid,
			err.Error())
		return nil, err
	} else if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

	var rows *sql.Rows

EXEC_QUERY:
	if rows, err = stmt.Query(m.MLID); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		return nil, err
	}

	defer rows.Close() // nolint: errcheck,gosec

	var list = make([]objects.Rating, 0, 64)

	for rows.Next() {
		var (
			r     = objects.Rating{MLID: m.MLID}
			stamp int64
		)

		if err = rows.Scan(&r.UserID, &r.Score, &stamp); err != nil {
			db.log.Printf("[ERROR] Cannot scan row: %s\n", err.Error())
			return nil, err
		}

		r.Timestamp = time.Unix(stamp, 0)
		list = append(list, r)
	}

	return list, nil
} // func (db *Database) RatingGetByMovie(m *objects.Movie) ([]objects.Rating, error)

// RatingGetByUser loads all Ratings the given user has submitted.
func (db *Database) RatingGetByUser(userID int64) ([]objects.Rating, error) {
	const qid query.ID = query.RatingGetByUser
	var (
		err  error
		stmt *sql.Stmt
	)

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid,
			err.Error())
		return nil, err
	} else if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

	var rows *sql.Rows

EXEC_QUERY:
	if rows, err = stmt.Query(userID); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		return nil, err
	}

	defer rows.Close() // nolint: errcheck,gosec

	var list = make([]objects.Rating, 0, 64)

	for rows.Next() {
		var (
			r     = objects.Rating{UserID: userID}
			stamp int64
		)

		if err = rows.Scan(&r.MLID, &r.Score, &stamp); err != nil {
			db.log.Printf("[ERROR] Cannot scan row: %s\n", err.Error())
			return nil, err
		}

		r.Timestamp = time.Unix(stamp, 0)
		list = append(list, r)
	}

	return list, nil
} // func (db *Database) RatingGetByUser(userID int64) ([]objects.Rating, error)

// RatingGetCnt returns the total number of Ratings in the Database.
func (db *Database) RatingGetCnt() (int64, error) {
	const qid query.ID = query.RatingGetCnt
	var (
		err  error
		stmt *sql.Stmt
	)

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid,
			err.Error())
		return 0, err
	} else if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

	var rows *sql.Rows

EXEC_QUERY:
	if rows, err = stmt.Query(); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		return 0, err
	}

	defer rows.Close() // nolint: errcheck,gosec

	var cnt int64

	if rows.Next() {
		if err = rows.Scan(&cnt); err != nil {
			db.log.Printf("[ERROR] Cannot scan row: %s\n", err.Error())
			return 0, err
		}
	}

	return cnt, nil
} // func (db *Database) RatingGetCnt() (int64, error)

// ReportTopMovie returns the movie with the highest mean rating among all
// movies that have at least minMovieSupport ratings. Ties are broken by
// the higher rating count, then the lower movie ID. If no movie qualifies,
// it returns nil.
func (db *Database) ReportTopMovie() (*objects.MovieRating, error) {
	const qid query.ID = query.ReportTopMovie
	var (
		err  error
		stmt *sql.Stmt
	)

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid,
			err.Error())
		return nil, err
	} else if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

	var rows *sql.Rows

EXEC_QUERY:
	if rows, err = stmt.Query(minMovieSupport); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		return nil, err
	}

	defer rows.Close() // nolint: errcheck,gosec

	if rows.Next() {
		var m objects.MovieRating

		if err = rows.Scan(&m.MovieID, &m.Title, &m.Score, &m.Count); err != nil {
			db.log.Printf("[ERROR] Cannot scan row: %s\n", err.Error())
			return nil, err
		}

		return &m, nil
	}

	return nil, nil
} // func (db *Database) ReportTopMovie() (*objects.MovieRating, error)

// ReportTopGenres returns up to topGenreCnt genres, ordered by descending
// mean rating, among all genres that have at least minGenreSupport ratings
// across their movies. Ties are broken by the genre name.
func (db *Database) ReportTopGenres() ([]objects.GenreRating, error) {
	const qid query.ID = query.ReportTopGenres
	var (
		err  error
		stmt *sql.Stmt
	)

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid,
			err.Error())
		return nil, err
	} else if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

	var rows *sql.Rows

EXEC_QUERY:
	if rows, err = stmt.Query(minGenreSupport, topGenreCnt); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		return nil, err
	}

	defer rows.Close() // nolint: errcheck,gosec

	var list = make([]objects.GenreRating, 0, topGenreCnt)

	for rows.Next() {
		var g objects.GenreRating

		if err = rows.Scan(&g.GenreID, &g.Name, &g.Score, &g.Count); err != nil {
			db.log.Printf("[ERROR] Cannot scan row: %s\n", err.Error())
			return nil, err
		}

		list = append(list, g)
	}

	return list, nil
} // func (db *Database) ReportTopGenres() ([]objects.GenreRating, error)

// ReportTopDirector returns the director with the most movies in the
// catalog. Ties are broken by the director's name. If the catalog has no
// directors at all, it returns nil.
func (db *Database) ReportTopDirector() (*objects.DirectorCount, error) {
	const qid query.ID = query.ReportTopDirector
	var (
		err  error
		stmt *sql.Stmt
	)

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid,
			err.Error())
		return nil, err
	} else if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

	var rows *sql.Rows

EXEC_QUERY:
	if rows, err = stmt.Query(); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		return nil, err
	}

	defer rows.Close() // nolint: errcheck,gosec

	if rows.Next() {
		var d objects.DirectorCount

		if err = rows.Scan(&d.DirectorID, &d.Name, &d.Count); err != nil {
			db.log.Printf("[ERROR] Cannot scan row: %s\n", err.Error())
			return nil, err
		}

		return &d, nil
	}

	return nil, nil
} // func (db *Database) ReportTopDirector() (*objects.DirectorCount, error)

// ReportRatingByYear returns the mean rating and the rating count per
// release year, ordered by year. Movies whose release year is unknown are
// left out.
func (db *Database) ReportRatingByYear() ([]objects.YearRating, error) {
	const qid query.ID = query.ReportRatingByYear
	var (
		err  error
		stmt *sql.Stmt
	)

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid,
			err.Error())
		return nil, err
	} else if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

	var rows *sql.Rows

EXEC_QUERY:
	if rows, err = stmt.Query(); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		return nil, err
	}

	defer rows.Close() // nolint: errcheck,gosec

	var list = make([]objects.YearRating, 0, 64)

	for rows.Next() {
		var y objects.YearRating

		if err = rows.Scan(&y.Year, &y.Score, &y.Count); err != nil {
			db.log.Printf("[ERROR] Cannot scan row: %s\n", err.Error())
			return nil, err
		}

		list = append(list, y)
	}

	return list, nil
} // func (db *Database) ReportRatingByYear() ([]objects.YearRating, error)
