package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmadqaf171-stack/login-backend/internal/models"
)

func TestNew_SeedsDatabase(t *testing.T) {
	store, err := New()
	require.NoError(t, err)

	db, err := store.Load(context.Background())
	require.NoError(t, err)

	require.Len(t, db.Users, 2)
	assert.Equal(t, "admin", db.Users[0].Username)
	assert.Equal(t, models.RoleAdmin, db.Users[0].Role)
	assert.Equal(t, "user", db.Users[1].Username)
}

func TestLoad_ReturnsIndependentCopy(t *testing.T) {
	store, err := New()
	require.NoError(t, err)

	db, err := store.Load(context.Background())
	require.NoError(t, err)
	db.Users = db.Users[:0]

	// правка загруженной копии не видна без Save
	fresh, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, fresh.Users, 2)
}

func TestSave_ReplacesDocument(t *testing.T) {
	store, err := New()
	require.NoError(t, err)

	db, err := store.Load(context.Background())
	require.NoError(t, err)
	db.Users = append(db.Users, models.User{ID: 3, Username: "carol", Email: "carol@x.com"})
	require.NoError(t, store.Save(context.Background(), db))

	reloaded, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, reloaded.Users, 3)
	assert.Equal(t, "carol", reloaded.Users[2].Username)
}
