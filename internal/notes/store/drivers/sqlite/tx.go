package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/notes/internal/notes/store"
	"github.com/aussiebroadwan/notes/internal/notes/store/drivers/sqlite/gen"
)

type txStore struct {
	tx *sql.Tx
	q  *gen.Queries
}

func newTx(tx *sql.Tx) *txStore {
	return &txStore{
		tx: tx,
		q:  gen.New(tx),
	}
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

// Close is a no-op, the outer store owns the connection pool.
func (t *txStore) Close() error { return nil }

func (t *txStore) Ping(ctx context.Context) error { return nil }

// Nested transactions are not supported.
func (t *txStore) Tx(ctx context.Context) (store.Tx, error) { return nil, sql.ErrTxDone }

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

func (t *txStore) Tenants() store.Tenants         { return &tenantsRepo{q: t.q} }
func (t *txStore) Users() store.Users             { return &usersRepo{q: t.q} }
func (t *txStore) Notes() store.Notes             { return &notesRepo{q: t.q} }
func (t *txStore) Invitations() store.Invitations { return &invitationsRepo{q: t.q} }

// Migrations are applied on the root store before serving.
func (t *txStore) ApplyMigrations() error { return nil }
