package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"kurvalgom/config"
	"kurvalgom/internal/domain/entity"
	"kurvalgom/internal/domain/service"
	"kurvalgom/internal/infra/auth"
	"kurvalgom/internal/infra/persistence/gormstore"
	"kurvalgom/internal/infra/persistence/gormstore/storetest"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestTokens(t *testing.T) service.TokenService {
	t.Helper()

	cfg := &config.Config{Auth: &config.AuthConfig{TokenTTL: time.Hour}}
	cfg.SecretKey.Access = "impl_test_secret_key_that_is_long_enough"

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	return tokens
}

func newStoreAuthService(t *testing.T, db *gorm.DB) *authService {
	t.Helper()

	srv := NewAuthService(AuthServiceParams{
		TxManager:    gormstore.NewTransactionManager(db),
		UserRepo:     gormstore.NewUserRepository(db),
		Hasher:       auth.NewBcryptHasherWithCost(bcrypt.MinCost),
		TokenService: newTestTokens(t),
		Logger:       newDiscardLogger(),
	})

	return srv.(*authService)
}

func newStorePostService(db *gorm.DB) *postService {
	srv := NewPostService(PostServiceParams{
		TxManager: gormstore.NewTransactionManager(db),
		PostRepo:  gormstore.NewBlogPostRepository(db),
		Logger:    newDiscardLogger(),
	})

	return srv.(*postService)
}

func newStoreHistoryService(db *gorm.DB) *historyService {
	srv := NewHistoryService(HistoryServiceParams{
		HistoryRepo: gormstore.NewHistoryRepository(db),
		Logger:      newDiscardLogger(),
	})

	return srv.(*historyService)
}

func openStore(t *testing.T) *gorm.DB {
	t.Helper()

	return storetest.OpenMemory(t)
}

func sampleRestaurant(id int64, name string) entity.Restaurant {
	return entity.Restaurant{
		ID:       id,
		Type:     "node",
		Name:     name,
		Location: orb.Point{25.2797, 54.6872},
		Tags:     map[string]string{"amenity": "restaurant", "name": name},
	}
}
