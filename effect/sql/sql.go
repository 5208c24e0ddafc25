// Package sql provides deferred adapters for database operations using
// database/sql. Queries become re-runnable deferred values whose row handles
// and transactions are managed by the bracket discipline: every run opens
// its own handle and is guaranteed to close it.
package sql

import (
	"database/sql"

	"github.com/lguimbarda/min-effect/effect/core"
)

// Scanner is a function that scans a row into a value.
type Scanner[T any] func(*sql.Rows) (T, error)

// QueryAll creates a Deferred that executes the query and collects every row
// through the scanner. The *sql.Rows handle is acquired and released by a
// bracket, so it is closed whether scanning succeeds, fails, or panics.
// A Close error replaces the scan outcome, per the bracket precedence rule.
func QueryAll[T any](db *sql.DB, query string, scanner Scanner[T], args ...any) core.Deferred[[]T] {
	acquire := core.FromFunc(func() core.Result[*sql.Rows] {
		rows, err := db.Query(query, args...)
		if err != nil {
			return core.Err[*sql.Rows](err)
		}
		return core.Ok(rows)
	})

	use := func(rows *sql.Rows) core.Deferred[[]T] {
		return core.FromFunc(func() core.Result[[]T] {
			var values []T
			for rows.Next() {
				value, err := scanner(rows)
				if err != nil {
					return core.Err[[]T](err)
				}
				values = append(values, value)
			}
			if err := rows.Err(); err != nil {
				return core.Err[[]T](err)
			}
			return core.Ok(values)
		})
	}

	release := func(rows *sql.Rows, _ core.Outcome) core.Deferred[core.Unit] {
		return core.FromFunc(func() core.Result[core.Unit] {
			if err := rows.Close(); err != nil {
				return core.Err[core.Unit](err)
			}
			return core.Ok(core.Unit{})
		})
	}

	return core.BracketCase(acquire, use, release)
}

// QueryRow creates a Deferred that executes a query expecting a single row.
func QueryRow[T any](db *sql.DB, query string, scanner func(*sql.Row) (T, error), args ...any) core.Deferred[T] {
	return core.FromFunc(func() core.Result[T] {
		value, err := scanner(db.QueryRow(query, args...))
		if err != nil {
			return core.Err[T](err)
		}
		return core.Ok(value)
	})
}

// Exec creates a Deferred that executes a statement and yields its result.
func Exec(db *sql.DB, query string, args ...any) core.Deferred[sql.Result] {
	return core.FromFunc(func() core.Result[sql.Result] {
		res, err := db.Exec(query, args...)
		if err != nil {
			return core.Err[sql.Result](err)
		}
		return core.Ok(res)
	})
}

// WithTx creates a Deferred that runs use inside a transaction. The bracket
// outcome decides the teardown: Completed commits, Errored rolls back. A
// failed commit surfaces as the deferred's failure; a rollback error after a
// use failure also wins, so wrap use with effecterrors.OnError if the
// original error must be observed first.
func WithTx[A any](db *sql.DB, use func(*sql.Tx) core.Deferred[A]) core.Deferred[A] {
	acquire := core.FromFunc(func() core.Result[*sql.Tx] {
		tx, err := db.Begin()
		if err != nil {
			return core.Err[*sql.Tx](err)
		}
		return core.Ok(tx)
	})

	release := func(tx *sql.Tx, outcome core.Outcome) core.Deferred[core.Unit] {
		return core.FromFunc(func() core.Result[core.Unit] {
			var err error
			if outcome == core.Completed {
				err = tx.Commit()
			} else {
				err = tx.Rollback()
			}
			if err != nil {
				return core.Err[core.Unit](err)
			}
			return core.Ok(core.Unit{})
		})
	}

	return core.BracketCase(acquire, use, release)
}
