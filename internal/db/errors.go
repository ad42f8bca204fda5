package db

import (
	"database/sql"
	"errors"
	"strings"

	"busstation/internal/domain"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

type errClass int

const (
	classOther errClass = iota
	classForeignKey
	classNotNull
)

func classifySQLite(err error) errClass {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return classOther
	}
	switch se.Code() {
	case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
		return classForeignKey
	case sqlite3.SQLITE_CONSTRAINT_NOTNULL:
		return classNotNull
	}
	// primary code only when extended result codes are off
	if se.Code()&0xff == sqlite3.SQLITE_CONSTRAINT {
		msg := se.Error()
		switch {
		case strings.Contains(msg, "FOREIGN KEY"):
			return classForeignKey
		case strings.Contains(msg, "NOT NULL"):
			return classNotNull
		}
	}
	return classOther
}

func classifyMySQL(err error) errClass {
	var me *mysql.MySQLError
	if !errors.As(err, &me) {
		return classOther
	}
	switch me.Number {
	case 1451, 1452:
		return classForeignKey
	case 1048:
		return classNotNull
	}
	return classOther
}

func classifyPostgres(err error) errClass {
	var pe *pgconn.PgError
	if !errors.As(err, &pe) {
		return classOther
	}
	switch pe.Code {
	case "23503":
		return classForeignKey
	case "23502":
		return classNotNull
	}
	return classOther
}

// Translate maps a driver error onto the domain error kinds. Errors it does not
// recognize become InternalError wrapping the driver error.
func (d Dialect) Translate(resource string, id int64, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFoundError{Resource: resource, ID: id, Err: err}
	}
	if d.classify != nil {
		switch d.classify(err) {
		case classForeignKey:
			return domain.ConstraintError{Resource: resource, Msg: "foreign key does not resolve or row is still referenced", Err: err}
		case classNotNull:
			return domain.ValidationError{Msg: "required field is missing", Err: err}
		}
	}
	return domain.InternalError{Msg: resource + " store failure", Err: err}
}
