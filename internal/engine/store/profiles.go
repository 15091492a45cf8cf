package store

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/anatolykoptev/go_jdmatch/internal/engine"
	"github.com/anatolykoptev/go_jdmatch/internal/engine/jdmatch"
	"github.com/cenkalti/backoff/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// Package-level singleton, set from main.go.
var profileDB *ProfileDB

// SetProfileDB sets the package-level profile store.
func SetProfileDB(db *ProfileDB) { profileDB = db }

// GetProfileDB returns the package-level profile store (may be nil).
func GetProfileDB() *ProfileDB { return profileDB }

// ProfileDB stores candidate profiles as JSONB in Postgres.
type ProfileDB struct {
	pool *pgxpool.Pool
}

// StoredProfile is a saved candidate profile.
type StoredProfile struct {
	ID         int64            `json:"id"`
	Name       string           `json:"name"`
	Profession string           `json:"profession,omitempty"`
	Profile    *jdmatch.Profile `json:"profile,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

// ConnectProfileDB creates a pgx pool and runs schema migrations.
func ConnectProfileDB(ctx context.Context, databaseURL string) (*ProfileDB, error) {
	if databaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}

	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse DATABASE_URL: %w", err)
	}
	config.MaxConns = 5
	config.MinConns = 1

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("create pgx pool: %w", err)
	}

	if err := pingWithRetry(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	db := &ProfileDB{pool: pool}
	if err := db.runMigrations(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	slog.Info("profile postgres connected", slog.String("addr", config.ConnConfig.Host))
	return db, nil
}

// pingWithRetry retries transient network failures; other errors stop at once.
func pingWithRetry(ctx context.Context, pool *pgxpool.Pool) error {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 500 * time.Millisecond
	bo.MaxInterval = 5 * time.Second

	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		if err := pool.Ping(ctx); err != nil {
			if engine.IsRetryable(err) {
				return struct{}{}, err
			}
			return struct{}{}, backoff.Permanent(err)
		}
		return struct{}{}, nil
	}, backoff.WithBackOff(bo), backoff.WithMaxTries(4), backoff.WithMaxElapsedTime(20*time.Second))
	return err
}

func (db *ProfileDB) Close() {
	db.pool.Close()
}

func (db *ProfileDB) runMigrations(ctx context.Context) error {
	entries, err := schemaFS.ReadDir("schema")
	if err != nil {
		return fmt.Errorf("read schema dir: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		data, err := schemaFS.ReadFile("schema/" + entry.Name())
		if err != nil {
			return fmt.Errorf("read %s: %w", entry.Name(), err)
		}
		if _, err := db.pool.Exec(ctx, string(data)); err != nil {
			return fmt.Errorf("execute %s: %w", entry.Name(), err)
		}
	}
	return nil
}

// SaveProfile inserts a profile, or replaces the one with the given id when id > 0.
func (db *ProfileDB) SaveProfile(ctx context.Context, id int64, p *jdmatch.Profile) (int64, error) {
	if p == nil {
		return 0, errors.New("profile is required")
	}
	data, err := json.Marshal(p)
	if err != nil {
		return 0, fmt.Errorf("encode profile: %w", err)
	}

	if id > 0 {
		tag, err := db.pool.Exec(ctx,
			`UPDATE candidate_profiles SET name=$1, profession=$2, data=$3, updated_at=now() WHERE id=$4`,
			p.Name, p.Profession, data, id)
		if err != nil {
			return 0, fmt.Errorf("update profile %d: %w", id, err)
		}
		if tag.RowsAffected() == 0 {
			return 0, fmt.Errorf("profile %d: %w", id, ErrNotFound)
		}
		return id, nil
	}

	err = db.pool.QueryRow(ctx,
		`INSERT INTO candidate_profiles (name, profession, data) VALUES ($1, $2, $3) RETURNING id`,
		p.Name, p.Profession, data).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert profile: %w", err)
	}
	return id, nil
}

// GetProfile loads one profile by id.
func (db *ProfileDB) GetProfile(ctx context.Context, id int64) (*StoredProfile, error) {
	var sp StoredProfile
	var data []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, profession, data, created_at, updated_at FROM candidate_profiles WHERE id=$1`,
		id).Scan(&sp.ID, &sp.Name, &sp.Profession, &data, &sp.CreatedAt, &sp.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("profile %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get profile %d: %w", id, err)
	}

	sp.Profile = &jdmatch.Profile{}
	if err := json.Unmarshal(data, sp.Profile); err != nil {
		return nil, fmt.Errorf("decode profile %d: %w", id, err)
	}
	engine.IncrProfileReads()
	return &sp, nil
}

// ListProfiles returns profile summaries, most recently updated first. Profile bodies are omitted.
func (db *ProfileDB) ListProfiles(ctx context.Context, limit int) ([]StoredProfile, error) {
	limit = clampLimit(limit)
	rows, err := db.pool.Query(ctx,
		`SELECT id, name, profession, created_at, updated_at FROM candidate_profiles
		 ORDER BY updated_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()

	out := []StoredProfile{}
	for rows.Next() {
		var sp StoredProfile
		if err := rows.Scan(&sp.ID, &sp.Name, &sp.Profession, &sp.CreatedAt, &sp.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		out = append(out, sp)
	}
	return out, rows.Err()
}
