package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vistaarbengaluru/vistaar/internal/cache"
	"github.com/vistaarbengaluru/vistaar/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

// InboxLimit caps how many inquiries the admin inbox loads.
const InboxLimit = 100

const schema = `
CREATE TABLE IF NOT EXISTS inquiries (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	email      TEXT NOT NULL,
	message    TEXT NOT NULL,
	delivered  BOOLEAN NOT NULL,
	error      TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS inquiries_created_at_idx ON inquiries (created_at DESC);
CREATE TABLE IF NOT EXISTS settings (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);`

type Database interface {
	Close()
	SaveInquiry(ctx context.Context, inq models.Inquiry) error
	ListInquiries(ctx context.Context) ([]models.Inquiry, error)
	InboxStats(ctx context.Context) (models.InboxStats, error)
	VerifyPassword(ctx context.Context, password string) (bool, error)
	SetPassword(ctx context.Context, password string) error
	EnsurePassword(ctx context.Context, password string) error
}

type database struct {
	db    *pgxpool.Pool
	cache *cache.Cache
}

func NewDatabase(ctx context.Context, dbURL string) (Database, error) {
	config, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	config.MaxConns = 5
	config.MinConns = 1
	config.MaxConnLifetime = 30 * time.Minute
	config.MaxConnIdleTime = 5 * time.Minute
	config.HealthCheckPeriod = 1 * time.Minute
	config.ConnConfig.ConnectTimeout = 10 * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &database{
		db:    pool,
		cache: cache.NewCache(5 * time.Minute),
	}, nil
}

func (d *database) Close() {
	d.db.Close()
}

func (d *database) SaveInquiry(ctx context.Context, inq models.Inquiry) error {
	_, err := d.db.Exec(ctx, `INSERT INTO inquiries (id, name, email, message, delivered, error, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		inq.ID, inq.Name, inq.Email, inq.Message, inq.Delivered, inq.Error, inq.CreatedAt)
	if err == nil {
		d.cache.Invalidate()
	}
	return err
}

func (d *database) ListInquiries(ctx context.Context) ([]models.Inquiry, error) {
	if inquiries, ok := d.cache.GetInquiries(); ok {
		return inquiries, nil
	}
	gen := d.cache.Generation()

	rows, err := d.db.Query(ctx, `SELECT id, name, email, message, delivered, error, created_at FROM inquiries ORDER BY created_at DESC LIMIT $1`, InboxLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var inquiries []models.Inquiry
	for rows.Next() {
		var i models.Inquiry
		if err := rows.Scan(&i.ID, &i.Name, &i.Email, &i.Message, &i.Delivered, &i.Error, &i.CreatedAt); err != nil {
			return nil, err
		}
		inquiries = append(inquiries, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	d.cache.SetInquiries(gen, inquiries)
	return inquiries, nil
}

func (d *database) InboxStats(ctx context.Context) (models.InboxStats, error) {
	if s, ok := d.cache.GetStats(); ok {
		return *s, nil
	}
	gen := d.cache.Generation()

	var s models.InboxStats
	err := d.db.QueryRow(ctx, `SELECT count(*), count(*) FILTER (WHERE NOT delivered) FROM inquiries`).
		Scan(&s.Total, &s.Failed)
	if err != nil {
		return s, err
	}

	d.cache.SetStats(gen, s)
	return s, nil
}

func (d *database) VerifyPassword(ctx context.Context, password string) (bool, error) {
	var hashedPassword string
	err := d.db.QueryRow(ctx, `SELECT value FROM settings WHERE key = 'admin_password'`).Scan(&hashedPassword)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	// A plaintext value seeded by hand is upgraded to a bcrypt hash on first use.
	if len(hashedPassword) < 60 {
		if password == hashedPassword {
			_ = d.SetPassword(ctx, password)
			return true, nil
		}
		return false, nil
	}

	err = bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil, nil
}

func (d *database) SetPassword(ctx context.Context, password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = d.db.Exec(ctx, `INSERT INTO settings (key, value) VALUES ('admin_password', $1) ON CONFLICT (key) DO UPDATE SET value = $1`, string(hashedPassword))
	return err
}

// EnsurePassword stores password only when no admin password exists yet.
func (d *database) EnsurePassword(ctx context.Context, password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = d.db.Exec(ctx, `INSERT INTO settings (key, value) VALUES ('admin_password', $1) ON CONFLICT (key) DO NOTHING`, string(hashedPassword))
	return err
}
