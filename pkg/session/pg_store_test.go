package session_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/exauth/pkg/session"
)

// fakeQuerier scripts Exec/QueryRow outcomes for PGStore unit tests.
type fakeQuerier struct {
	execTag pgconn.CommandTag
	execErr error
	row     fakeRow
}

func (q *fakeQuerier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return q.execTag, q.execErr
}

func (q *fakeQuerier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, pgx.ErrNoRows
}

func (q *fakeQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return q.row
}

type fakeRow struct {
	id       uuid.UUID
	username string
	realname string
	err      error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*uuid.UUID) = r.id
	*dest[1].(*string) = r.username
	*dest[2].(*string) = r.realname
	return nil
}

func TestPGStore_Create(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := session.NewPGStore()

	t.Run("single row insert succeeds", func(t *testing.T) {
		t.Parallel()

		db := &fakeQuerier{execTag: pgconn.NewCommandTag("INSERT 0 1")}
		assert.NoError(t, store.Create(ctx, db, uuid.New(), "key"))
	})

	t.Run("zero affected rows is not persisted", func(t *testing.T) {
		t.Parallel()

		db := &fakeQuerier{execTag: pgconn.NewCommandTag("INSERT 0 0")}
		assert.ErrorIs(t, store.Create(ctx, db, uuid.New(), "key"), session.ErrNotPersisted)
	})

	t.Run("exec error keeps its cause", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("connection reset")
		db := &fakeQuerier{execErr: cause}

		err := store.Create(ctx, db, uuid.New(), "key")
		assert.ErrorIs(t, err, session.ErrNotPersisted)
		assert.ErrorIs(t, err, cause)
	})
}

func TestPGStore_Resolve(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := session.NewPGStore()

	t.Run("matching key returns the joined user", func(t *testing.T) {
		t.Parallel()

		id := uuid.New()
		db := &fakeQuerier{row: fakeRow{id: id, username: "alice", realname: "Alice Liddell"}}

		user, err := store.Resolve(ctx, db, "key")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, id, user.ID)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "Alice Liddell", user.Realname)
	})

	t.Run("no rows is a miss, not an error", func(t *testing.T) {
		t.Parallel()

		db := &fakeQuerier{row: fakeRow{err: pgx.ErrNoRows}}

		user, err := store.Resolve(ctx, db, "key")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("query failure surfaces", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("connection reset")
		db := &fakeQuerier{row: fakeRow{err: cause}}

		user, err := store.Resolve(ctx, db, "key")
		assert.ErrorIs(t, err, cause)
		assert.Nil(t, user)
	})
}
