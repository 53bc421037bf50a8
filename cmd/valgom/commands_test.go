package main

import (
	"bytes"
	"context"
	"encoding/base64"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"kurvalgom/config"
	"kurvalgom/internal/domain/entity"
	domainerrors "kurvalgom/internal/domain/errors"
	"kurvalgom/internal/infra/auth"
	"kurvalgom/internal/infra/kv"
	"kurvalgom/internal/infra/persistence/gormstore"
	"kurvalgom/internal/infra/persistence/gormstore/storetest"
	"kurvalgom/internal/infra/session"
	mockUsecase "kurvalgom/internal/mocks/usecase"
	"kurvalgom/internal/usecase"
	"kurvalgom/internal/usecase/impl"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// 1x1 PNG.
const pngPixel = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAQAAAC1HAwCAAAAC0lEQVR42mNkYAAAAAYAAjCB0C8AAAAASUVORK5CYII="

type testClient struct {
	*client
	out       *bytes.Buffer
	discovery *mockUsecase.MockDiscoveryUsecase
}

func newTestClient(t *testing.T) testClient {
	t.Helper()

	cfg := &config.Config{
		Auth: &config.AuthConfig{TokenTTL: time.Hour},
		POI:  &config.POIConfig{DefaultRadius: 1000},
	}
	cfg.SecretKey.Access = "valgom_test_secret"

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	db := storetest.OpenMemory(t)

	store, err := kv.Open(context.Background(), "mem://")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	txManager := gormstore.NewTransactionManager(db)
	history := impl.NewHistoryService(impl.HistoryServiceParams{
		HistoryRepo: gormstore.NewHistoryRepository(db),
		Logger:      logger,
	})
	discovery := mockUsecase.NewMockDiscoveryUsecase(t)
	out := &bytes.Buffer{}

	return testClient{
		client: &client{
			cfg: cfg,
			auth: impl.NewAuthService(impl.AuthServiceParams{
				TxManager:    txManager,
				UserRepo:     gormstore.NewUserRepository(db),
				Hasher:       auth.NewBcryptHasherWithCost(bcrypt.MinCost),
				TokenService: tokens,
				Logger:       logger,
			}),
			posts: impl.NewPostService(impl.PostServiceParams{
				TxManager: txManager,
				PostRepo:  gormstore.NewBlogPostRepository(db),
				Logger:    logger,
			}),
			history:   history,
			discovery: discovery,
			keeper:    session.NewKeeper(store, tokens),
			out:       out,
		},
		out:       out,
		discovery: discovery,
	}
}

func sampleRestaurant(id int64, name string) entity.Restaurant {
	return entity.Restaurant{
		ID:             id,
		Type:           "node",
		Name:           name,
		Location:       orb.Point{25.2797, 54.6872},
		Cuisine:        "lithuanian",
		Address:        "Pilies g.",
		DistanceMeters: 320,
	}
}

func (tc testClient) signedIn(t *testing.T, username string) *entity.Identity {
	t.Helper()

	ctx := context.Background()
	require.NoError(t, tc.register(ctx, username, "secret", username+"@example.com"))
	identity, err := tc.requireSession(ctx)
	require.NoError(t, err)
	tc.out.Reset()

	return identity
}

func TestClient_RegisterLoginLogout(t *testing.T) {
	tc := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, tc.register(ctx, "alice", "secret", "alice@example.com"))
	assert.Contains(t, tc.out.String(), "Welcome, alice! Signed in for")

	tc.out.Reset()
	require.NoError(t, tc.whoami(ctx))
	assert.Contains(t, tc.out.String(), "alice <alice@example.com>")

	tc.out.Reset()
	require.NoError(t, tc.logout(ctx))
	assert.Equal(t, "Signed out.\n", tc.out.String())

	tc.out.Reset()
	require.NoError(t, tc.whoami(ctx))
	assert.Equal(t, "Not signed in.\n", tc.out.String())

	// Logging out twice still succeeds.
	require.NoError(t, tc.logout(ctx))

	err := tc.login(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	tc.out.Reset()
	require.NoError(t, tc.login(ctx, "alice", "secret"))
	assert.Contains(t, tc.out.String(), "Welcome back, alice!")
}

func TestClient_RegisterTakenUsername(t *testing.T) {
	tc := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, tc.register(ctx, "alice", "secret", "alice@example.com"))
	err := tc.register(ctx, "alice", "other", "impostor@example.com")

	assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
}

func TestClient_Nearby(t *testing.T) {
	tc := newTestClient(t)
	ctx := context.Background()

	tc.discovery.EXPECT().Nearby(ctx, 54.68, 25.28, 1000).
		Return([]entity.Restaurant{sampleRestaurant(1, "Etno Dvaras")}, nil).Once()
	tc.discovery.EXPECT().Nearby(ctx, 54.68, 25.28, 500).Return(nil, nil).Once()

	require.NoError(t, tc.nearby(ctx, searchArgs{lat: 54.68, lng: 25.28}))
	assert.Contains(t, tc.out.String(), "1 restaurants within 1.0 km:")
	assert.Contains(t, tc.out.String(), "Etno Dvaras (lithuanian)  320 m  [node/1]")

	tc.out.Reset()
	require.NoError(t, tc.nearby(ctx, searchArgs{lat: 54.68, lng: 25.28, radius: 500}))
	assert.Equal(t, domainerrors.ErrNoRestaurants.Message()+"\n", tc.out.String())
}

func TestClient_PickAnonymous(t *testing.T) {
	tc := newTestClient(t)
	ctx := context.Background()

	tc.discovery.EXPECT().PickRandom(ctx, (*entity.Identity)(nil), 54.68, 25.28, 1000).
		Return(&usecase.PickOutput{Restaurant: sampleRestaurant(1, "Etno Dvaras"), Radius: 1000, Candidates: 4}, nil)

	require.NoError(t, tc.pick(ctx, searchArgs{lat: 54.68, lng: 25.28}))

	out := tc.out.String()
	assert.Contains(t, out, "Etno Dvaras  [node/1]")
	assert.Contains(t, out, "Address:  Pilies g.")
	assert.Contains(t, out, "Picked from 4 restaurants within 1.0 km.")
	assert.NotContains(t, out, "Saved to your history.")
}

func TestClient_PickSignedInPassesActor(t *testing.T) {
	tc := newTestClient(t)
	ctx := context.Background()
	identity := tc.signedIn(t, "alice")

	tc.discovery.EXPECT().
		PickRandom(ctx, mock.MatchedBy(func(actor *entity.Identity) bool {
			return actor != nil && actor.UserID == identity.UserID
		}), 54.68, 25.28, 2000).
		Return(&usecase.PickOutput{
			Restaurant: sampleRestaurant(1, "Etno Dvaras"),
			Radius:     2000,
			Candidates: 1,
			History:    &entity.HistoryEntry{UserID: identity.UserID},
		}, nil)

	require.NoError(t, tc.pick(ctx, searchArgs{lat: 54.68, lng: 25.28, radius: 2000}))
	assert.Contains(t, tc.out.String(), "Saved to your history.")
}

func TestClient_ReviewRequiresSession(t *testing.T) {
	tc := newTestClient(t)

	err := tc.review(context.Background(), reviewArgs{rating: 4})

	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestClient_ReviewFromHistory(t *testing.T) {
	tc := newTestClient(t)
	ctx := context.Background()
	identity := tc.signedIn(t, "alice")

	err := tc.review(ctx, reviewArgs{rating: 4})
	assert.ErrorContains(t, err, "history is empty")

	_, err = tc.history.AddHistoryEntry(ctx, identity.UserID, sampleRestaurant(1, "Etno Dvaras"))
	require.NoError(t, err)

	require.NoError(t, tc.review(ctx, reviewArgs{rating: 3}))
	assert.Contains(t, tc.out.String(), "saved for Etno Dvaras.")

	_, err = tc.history.AddHistoryEntry(ctx, identity.UserID, sampleRestaurant(2, "Lokys"))
	require.NoError(t, err)

	imagePath := filepath.Join(t.TempDir(), "dinner.png")
	raw, err := base64.StdEncoding.DecodeString(pngPixel)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(imagePath, raw, 0o600))

	tc.out.Reset()
	require.NoError(t, tc.review(ctx, reviewArgs{restaurantRef: "node/2", rating: 5, comment: "Great cepelinai", imagePath: imagePath}))
	assert.Contains(t, tc.out.String(), "saved for Lokys.")
	assert.Contains(t, tc.out.String(), "Photo attached (")

	err = tc.review(ctx, reviewArgs{restaurantRef: "node/9", rating: 3})
	assert.ErrorContains(t, err, "node/9 is not in your history")

	err = tc.review(ctx, reviewArgs{rating: 6})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.ErrorContains(t, err, "--rating (max=5)")

	posts, err := tc.posts.ListPostsByOwner(ctx, identity.UserID)
	require.NoError(t, err)
	require.Len(t, posts, 2)

	images := map[string]string{}
	for _, post := range posts {
		images[post.Restaurant.Name] = post.Image
	}
	assert.Equal(t, map[string]string{
		"Etno Dvaras": "",
		"Lokys":       "data:image/png;base64," + pngPixel,
	}, images)
}

func TestClient_ReviewRejectsNonImage(t *testing.T) {
	tc := newTestClient(t)
	ctx := context.Background()
	identity := tc.signedIn(t, "alice")

	_, err := tc.history.AddHistoryEntry(ctx, identity.UserID, sampleRestaurant(1, "Etno Dvaras"))
	require.NoError(t, err)

	textPath := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(textPath, []byte("not a photo"), 0o600))

	err = tc.review(ctx, reviewArgs{rating: 4, imagePath: textPath})
	assert.ErrorContains(t, err, "only JPEG and PNG photos are accepted")
}

func TestClient_EditAndDeleteOwnReview(t *testing.T) {
	tc := newTestClient(t)
	ctx := context.Background()
	identity := tc.signedIn(t, "alice")

	post, err := tc.posts.CreatePost(ctx, identity.UserID, usecase.CreatePostInput{
		Comment:    "ok",
		Rating:     2,
		Restaurant: sampleRestaurant(1, "Etno Dvaras"),
	})
	require.NoError(t, err)

	err = tc.edit(ctx, editArgs{id: post.ID.String()})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	err = tc.edit(ctx, editArgs{id: "not-a-uuid", rating: ptr(4)})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	require.NoError(t, tc.edit(ctx, editArgs{id: post.ID.String(), rating: ptr(4), comment: ptr("better")}))
	assert.Contains(t, tc.out.String(), "updated: ★★★★☆")

	updated, err := tc.posts.GetPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "better", updated.Comment)
	assert.NotNil(t, updated.UpdatedAt)

	require.NoError(t, tc.deleteReview(ctx, post.ID.String()))

	err = tc.edit(ctx, editArgs{id: post.ID.String(), rating: ptr(1)})
	assert.ErrorIs(t, err, domainerrors.ErrPostNotFound)
}

func TestClient_EditForeignReview(t *testing.T) {
	tc := newTestClient(t)
	ctx := context.Background()
	author := tc.signedIn(t, "alice")

	post, err := tc.posts.CreatePost(ctx, author.UserID, usecase.CreatePostInput{
		Comment:    "mine",
		Rating:     5,
		Restaurant: sampleRestaurant(1, "Etno Dvaras"),
	})
	require.NoError(t, err)

	require.NoError(t, tc.logout(ctx))
	tc.signedIn(t, "bob")

	err = tc.edit(ctx, editArgs{id: post.ID.String(), comment: ptr("hijacked")})
	assert.ErrorIs(t, err, domainerrors.ErrPostOwnership)

	err = tc.deleteReview(ctx, post.ID.String())
	assert.ErrorIs(t, err, domainerrors.ErrPostOwnership)

	unchanged, err := tc.posts.GetPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "mine", unchanged.Comment)
}

func TestClient_ListReviewsAndHistory(t *testing.T) {
	tc := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, tc.listReviews(ctx, false))
	assert.Equal(t, "No reviews yet.\n", tc.out.String())

	err := tc.listReviews(ctx, true)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)

	identity := tc.signedIn(t, "alice")
	_, err = tc.posts.CreatePost(ctx, identity.UserID, usecase.CreatePostInput{
		Comment:    "Cozy place,\nfriendly staff",
		Rating:     3,
		Restaurant: sampleRestaurant(1, "Etno Dvaras"),
	})
	require.NoError(t, err)

	require.NoError(t, tc.listReviews(ctx, true))
	assert.Contains(t, tc.out.String(), "★★★☆☆  Etno Dvaras")
	assert.Contains(t, tc.out.String(), "    Cozy place, friendly staff\n")

	tc.out.Reset()
	require.NoError(t, tc.listHistory(ctx))
	assert.Equal(t, "No history yet.\n", tc.out.String())

	_, err = tc.history.AddHistoryEntry(ctx, identity.UserID, sampleRestaurant(1, "Etno Dvaras"))
	require.NoError(t, err)

	tc.out.Reset()
	require.NoError(t, tc.listHistory(ctx))
	assert.Contains(t, tc.out.String(), "node/1")
	assert.Contains(t, tc.out.String(), "Etno Dvaras (Pilies g.)")
}

func TestRunSubcommand_FlagErrors(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		cmd  string
		args []string
		want string
	}{
		{name: "unknown command", cmd: "teleport", want: `unknown subcommand "teleport"`},
		{name: "pick without coordinates", cmd: "pick", args: []string{"-radius", "900"}, want: "--lat and --lng flags are required"},
		{name: "review without rating", cmd: "review", args: []string{"-comment", "nice"}, want: "--rating flag is required"},
		{name: "edit without id", cmd: "edit", args: []string{"-rating", "3"}, want: "--id flag is required"},
		{name: "delete without id", cmd: "delete", want: "--id flag is required"},
		{name: "bad flag", cmd: "login", args: []string{"-nope"}, want: "failed to parse login flags"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := newValgomFlags()
			for _, set := range []interface{ SetOutput(io.Writer) }{flags.Login.cmd, flags.Pick.cmd} {
				set.SetOutput(io.Discard)
			}

			err := runSubcommand(ctx, flags, tt.cmd, tt.args)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func ptr[T any](v T) *T {
	return &v
}
