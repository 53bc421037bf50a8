package gormstore_test

import (
	"context"
	"testing"
	"time"

	"kurvalgom/internal/domain/entity"
	domainerrors "kurvalgom/internal/domain/errors"
	"kurvalgom/internal/domain/repository"
	"kurvalgom/internal/errors"
	"kurvalgom/internal/infra/persistence/gormstore"
	"kurvalgom/internal/infra/persistence/gormstore/storetest"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRestaurant() entity.Restaurant {
	return entity.Restaurant{
		ID:       1001,
		Type:     "node",
		Name:     "Etno Dvaras",
		Location: orb.Point{25.2858, 54.6810},
		Cuisine:  "regional",
		Tags:     map[string]string{"amenity": "restaurant", "name": "Etno Dvaras"},
	}
}

func createUser(t *testing.T, repo repository.UserRepository, username string) *entity.User {
	t.Helper()

	user := &entity.User{Username: username, Email: username + "@example.com", PasswordHash: "hash-" + username}
	require.NoError(t, repo.Create(context.Background(), user))
	require.NotEqual(t, uuid.Nil, user.ID)

	return user
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := gormstore.NewUserRepository(storetest.OpenMemory(t))

	user := createUser(t, repo, "alice")
	assert.False(t, user.CreatedAt.IsZero())

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)
	assert.Equal(t, "hash-alice", byID.PasswordHash)

	byName, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)

	byEmail, err := repo.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
}

func TestUserRepository_UsernameIsCaseSensitive(t *testing.T) {
	ctx := context.Background()
	repo := gormstore.NewUserRepository(storetest.OpenMemory(t))

	createUser(t, repo, "alice")

	_, err := repo.FindByUsername(ctx, "Alice")
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))

	createUser(t, repo, "Alice")
}

func TestUserRepository_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	repo := gormstore.NewUserRepository(storetest.OpenMemory(t))

	first := createUser(t, repo, "bob")

	err := repo.Create(ctx, &entity.User{Username: "bob", PasswordHash: "other"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUsernameTaken))

	stored, err := repo.FindByUsername(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, first.ID, stored.ID)
	assert.Equal(t, "hash-bob", stored.PasswordHash)
}

func TestUserRepository_NotFound(t *testing.T) {
	repo := gormstore.NewUserRepository(storetest.OpenMemory(t))

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))
}

func TestBlogPostRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	db := storetest.OpenMemory(t)
	users := gormstore.NewUserRepository(db)
	posts := gormstore.NewBlogPostRepository(db)

	owner := createUser(t, users, "carol")
	other := createUser(t, users, "dave")

	post := &entity.BlogPost{
		UserID:     owner.ID,
		Image:      "data:image/png;base64,iVBORw0KGgo=",
		Comment:    "Great cepelinai",
		Rating:     5,
		Restaurant: sampleRestaurant(),
	}
	require.NoError(t, posts.Create(ctx, post))
	require.NotEqual(t, uuid.Nil, post.ID)
	require.NoError(t, posts.Create(ctx, &entity.BlogPost{UserID: other.ID, Comment: "ok", Rating: 3}))

	found, err := posts.FindByID(ctx, post.ID, false)
	require.NoError(t, err)
	assert.Equal(t, "Great cepelinai", found.Comment)
	assert.Equal(t, 5, found.Rating)
	assert.Equal(t, sampleRestaurant(), found.Restaurant)
	assert.Nil(t, found.UpdatedAt)

	all, err := posts.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := posts.FindByOwner(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, post.ID, mine[0].ID)

	updatedAt := time.Now().UTC().Truncate(time.Second)
	found.Comment = "Even better the second time"
	found.Rating = 4
	found.UpdatedAt = &updatedAt
	require.NoError(t, posts.Update(ctx, found))

	reloaded, err := posts.FindByID(ctx, post.ID, true)
	require.NoError(t, err)
	assert.Equal(t, "Even better the second time", reloaded.Comment)
	assert.Equal(t, 4, reloaded.Rating)
	assert.Equal(t, owner.ID, reloaded.UserID)
	require.NotNil(t, reloaded.UpdatedAt)
	assert.True(t, updatedAt.Equal(*reloaded.UpdatedAt))

	require.NoError(t, posts.Delete(ctx, post.ID))

	_, err = posts.FindByID(ctx, post.ID, false)
	assert.True(t, errors.Is(err, repository.ErrPostNotFound))
	assert.True(t, errors.Is(posts.Delete(ctx, post.ID), repository.ErrPostNotFound))
	assert.True(t, errors.Is(posts.Update(ctx, found), repository.ErrPostNotFound))
}

func TestHistoryRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	db := storetest.OpenMemory(t)
	users := gormstore.NewUserRepository(db)
	history := gormstore.NewHistoryRepository(db)

	owner := createUser(t, users, "erin")
	restaurant := sampleRestaurant()

	for range 2 {
		require.NoError(t, history.Create(ctx, &entity.HistoryEntry{UserID: owner.ID, Restaurant: restaurant}))
	}
	require.NoError(t, history.Create(ctx, &entity.HistoryEntry{UserID: uuid.New(), Restaurant: restaurant}))

	entries, err := history.FindByOwner(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "node/1001", entries[0].RestaurantRef)
	assert.Equal(t, "Etno Dvaras", entries[0].Restaurant.Name)

	byRestaurant, err := history.FindByRestaurant(ctx, "node/1001")
	require.NoError(t, err)
	assert.Len(t, byRestaurant, 3)

	none, err := history.FindByOwner(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, none)
}
