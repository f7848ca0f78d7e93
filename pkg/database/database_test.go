package database

import (
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew_SQLiteInMemory(t *testing.T) {
	db, err := New(
		WithDriver("sqlite3"),
		WithDataSource(":memory:"),
		WithMaxOpenConns(1),
	)
	require.NoError(t, err)
	defer db.Close()

	var one int
	require.NoError(t, db.QueryRow("SELECT 1").Scan(&one))
	assert.Equal(t, 1, one)
	assert.Equal(t, 1, db.Stats().MaxOpenConnections)
}

func TestNew_Validation(t *testing.T) {
	_, err := New(WithDriver(""))
	assert.ErrorContains(t, err, "driver cannot be empty")

	_, err = New(WithDataSource(""))
	assert.ErrorContains(t, err, "data source cannot be empty")
}

func TestNew_RetriesThenFails(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)

	db, err := New(
		WithDriver("no-such-driver"),
		WithRetry(3, time.Millisecond),
		WithLogger(zap.New(core)),
	)

	assert.Nil(t, db)
	assert.ErrorContains(t, err, "after 3 attempts")
	assert.Equal(t, 3, logs.FilterMessage("database connection attempt failed").Len())
}

func TestNew_UnreachableFile(t *testing.T) {
	db, err := New(
		WithDriver("sqlite3"),
		WithDataSource("file:/nonexistent-dir/ratings.db?mode=ro"),
		WithRetry(1, 0),
	)

	assert.Nil(t, db)
	assert.Error(t, err)
}
