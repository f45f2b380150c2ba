package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmadqaf171-stack/login-backend/internal/models"
)

// testStore — минимальная подложка в памяти для проверки Guard.
type testStore struct {
	data []byte
}

func newTestStore(t *testing.T) *testStore {
	t.Helper()
	db, err := Seed()
	require.NoError(t, err)
	data, err := json.Marshal(db)
	require.NoError(t, err)
	return &testStore{data: data}
}

func (s *testStore) Load(_ context.Context) (*models.Database, error) {
	var db models.Database
	if err := json.Unmarshal(s.data, &db); err != nil {
		return nil, err
	}
	return &db, nil
}

func (s *testStore) Save(_ context.Context, db *models.Database) error {
	data, err := json.Marshal(db)
	if err != nil {
		return err
	}
	s.data = data
	return nil
}

func TestGuard_UpdatePersistsChanges(t *testing.T) {
	guard := NewGuard(newTestStore(t))
	ctx := context.Background()

	err := guard.Update(ctx, func(db *models.Database) error {
		db.Users = append(db.Users, models.User{ID: db.NextUserID(), Username: "carol"})
		return nil
	})
	require.NoError(t, err)

	err = guard.View(ctx, func(db *models.Database) error {
		assert.Len(t, db.Users, 3)
		return nil
	})
	require.NoError(t, err)
}

func TestGuard_UpdateErrorDiscardsChanges(t *testing.T) {
	guard := NewGuard(newTestStore(t))
	ctx := context.Background()
	boom := errors.New("boom")

	err := guard.Update(ctx, func(db *models.Database) error {
		db.Users = nil
		return boom
	})
	require.ErrorIs(t, err, boom)

	err = guard.View(ctx, func(db *models.Database) error {
		assert.Len(t, db.Users, 2)
		return nil
	})
	require.NoError(t, err)
}

func TestGuard_ConcurrentUpdatesDoNotLoseWrites(t *testing.T) {
	guard := NewGuard(newTestStore(t))
	ctx := context.Background()

	const writers = 50
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := guard.Update(ctx, func(db *models.Database) error {
				db.Users = append(db.Users, models.User{
					ID:       db.NextUserID(),
					Username: fmt.Sprintf("user-%d", i),
				})
				return nil
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	err := guard.View(ctx, func(db *models.Database) error {
		assert.Len(t, db.Users, writers+2)

		seen := make(map[int]bool, len(db.Users))
		for _, u := range db.Users {
			assert.False(t, seen[u.ID], "duplicate id %d", u.ID)
			seen[u.ID] = true
		}
		return nil
	})
	require.NoError(t, err)
}
