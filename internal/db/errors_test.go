package db

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"busstation/internal/domain"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestTranslateNoRows(t *testing.T) {
	err := SQLite.Translate("Bus", 9, sql.ErrNoRows)
	var nf domain.NotFoundError
	assert.ErrorAs(t, err, &nf)
	assert.Equal(t, int64(9), nf.ID)
	assert.Equal(t, "Bus 9 not found", err.Error())
}

func TestTranslateMySQL(t *testing.T) {
	fk := fmt.Errorf("insert: %w", &mysql.MySQLError{Number: 1452, Message: "Cannot add or update a child row"})
	assert.True(t, domain.IsConstraint(MySQL.Translate("Schedule", 0, fk)))

	parent := &mysql.MySQLError{Number: 1451, Message: "Cannot delete or update a parent row"}
	assert.True(t, domain.IsConstraint(MySQL.Translate("Bus", 1, parent)))

	null := &mysql.MySQLError{Number: 1048, Message: "Column 'destination' cannot be null"}
	assert.True(t, domain.IsValidation(MySQL.Translate("Bus", 0, null)))

	dup := &mysql.MySQLError{Number: 1062}
	err := MySQL.Translate("Bus", 0, dup)
	assert.True(t, domain.IsInternal(err))
	assert.ErrorIs(t, err, dup)
}

func TestTranslatePostgres(t *testing.T) {
	fk := &pgconn.PgError{Code: "23503"}
	assert.True(t, domain.IsConstraint(Postgres.Translate("Ticket", 0, fk)))

	null := &pgconn.PgError{Code: "23502"}
	assert.True(t, domain.IsValidation(Postgres.Translate("Ticket", 0, null)))
}

func TestTranslateUnclassifiedIsInternal(t *testing.T) {
	assert.NoError(t, SQLite.Translate("Bus", 0, nil))

	boom := errors.New("boom")
	err := SQLite.Translate("Bus", 0, boom)
	assert.True(t, domain.IsInternal(err))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "Bus store failure: boom", err.Error())
}
