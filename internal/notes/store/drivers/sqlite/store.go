package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/aussiebroadwan/notes/internal/notes/domain"
	"github.com/aussiebroadwan/notes/internal/notes/store"
	"github.com/aussiebroadwan/notes/internal/notes/store/drivers/sqlite/gen"
	msqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

type Store struct {
	db  *sql.DB
	q   *gen.Queries
	dsn string
}

// DSN builds a modernc connection string for the database file at path.
// Pragmas are part of the DSN so every pooled connection gets them.
func DSN(path string) string {
	q := url.Values{}
	q.Add("_pragma", "foreign_keys(1)")
	q.Add("_pragma", "busy_timeout(5000)")
	q.Add("_pragma", "journal_mode(WAL)")
	q.Set("_txlock", "immediate")
	return fmt.Sprintf("file:%s?%s", path, q.Encode())
}

func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{
		db:  db,
		q:   gen.New(db),
		dsn: dsn,
	}, nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return newTx(tx), nil
}

func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback() // no-op after commit
	}()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *Store) Tenants() store.Tenants         { return &tenantsRepo{q: s.q} }
func (s *Store) Users() store.Users             { return &usersRepo{q: s.q} }
func (s *Store) Notes() store.Notes             { return &notesRepo{q: s.q} }
func (s *Store) Invitations() store.Invitations { return &invitationsRepo{q: s.q} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

// mapConstraint turns unique and primary key violations into
// store.ErrAlreadyExists.
func mapConstraint(err error) error {
	var se *msqlite.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return fmt.Errorf("%w: %v", store.ErrAlreadyExists, err)
		}
	}
	return err
}

// notFoundIfNone maps a write that touched no rows to store.ErrNotFound.
func notFoundIfNone(n int64, err error) error {
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func mapNullTimePtr(nt sql.NullTime) *time.Time {
	if nt.Valid {
		val := nt.Time.UTC()
		return &val
	}
	return nil
}

func utc(t time.Time) time.Time { return t.UTC() }

func mapTenant(row gen.Tenant) domain.Tenant {
	return domain.Tenant{
		ID:        row.ID,
		Slug:      row.Slug,
		Name:      row.Name,
		Plan:      domain.Plan(row.Plan),
		CreatedAt: utc(row.CreatedAt),
		UpdatedAt: utc(row.UpdatedAt),
	}
}

func mapUser(row gen.User) domain.User {
	return domain.User{
		ID:           row.ID,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		Role:         domain.Role(row.Role),
		TenantID:     row.TenantID,
		CreatedAt:    utc(row.CreatedAt),
		UpdatedAt:    utc(row.UpdatedAt),
	}
}

func mapInvitation(row gen.Invitation) domain.Invitation {
	return domain.Invitation{
		ID:         row.ID,
		Email:      row.Email,
		Role:       domain.Role(row.Role),
		TokenHash:  row.TokenHash,
		Status:     domain.InvitationStatus(row.Status),
		TenantID:   row.TenantID,
		InvitedBy:  row.InvitedBy,
		CreatedAt:  utc(row.CreatedAt),
		ExpiresAt:  utc(row.ExpiresAt),
		AcceptedAt: mapNullTimePtr(row.AcceptedAt),
	}
}
