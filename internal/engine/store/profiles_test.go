//go:build integration

package store

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/anatolykoptev/go_jdmatch/internal/engine/jdmatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func connectTestProfileDB(t *testing.T) *ProfileDB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	db, err := ConnectProfileDB(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(db.Close)
	return db
}

func TestIntegration_ProfileRoundTrip(t *testing.T) {
	db := connectTestProfileDB(t)
	ctx := context.Background()

	p := &jdmatch.Profile{
		Name:       "Integration Candidate",
		Profession: "Backend Engineer",
		Skills:     []jdmatch.Skill{{Name: "Go"}, {Name: "PostgreSQL"}},
		Experience: []jdmatch.Experience{{Position: "Engineer", StartDate: "2019-03", Current: true}},
	}
	id, err := db.SaveProfile(ctx, 0, p)
	require.NoError(t, err)
	require.Positive(t, id)

	got, err := db.GetProfile(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, p.Name, got.Name)
	assert.Equal(t, p, got.Profile)

	p.Profession = "Staff Engineer"
	_, err = db.SaveProfile(ctx, id, p)
	require.NoError(t, err)
	got, err = db.GetProfile(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Staff Engineer", got.Profession)

	list, err := db.ListProfiles(ctx, 10)
	require.NoError(t, err)
	require.NotEmpty(t, list)
	assert.Equal(t, id, list[0].ID)
	assert.Nil(t, list[0].Profile)
}

func TestIntegration_ProfileNotFound(t *testing.T) {
	db := connectTestProfileDB(t)
	ctx := context.Background()

	_, err := db.GetProfile(ctx, -1)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = db.SaveProfile(ctx, 1<<40, &jdmatch.Profile{Name: "ghost"})
	assert.ErrorIs(t, err, ErrNotFound)
}
