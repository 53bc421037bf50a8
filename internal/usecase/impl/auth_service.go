// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "kurvalgom/internal/delivery/context"
	"kurvalgom/internal/domain/entity"
	domainerrors "kurvalgom/internal/domain/errors"
	"kurvalgom/internal/domain/repository"
	"kurvalgom/internal/domain/service"
	"kurvalgom/internal/errors"
	"kurvalgom/internal/usecase"

	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	policy       service.PasswordPolicy
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	Policy       service.PasswordPolicy `optional:"true"`
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		policy:       params.Policy,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser checks the username, hashes the password and inserts the account in one transaction.
func (srv *authService) RegisterUser(ctx context.Context, input usecase.RegisterInput) (*entity.User, error) {
	username := input.Username
	if username == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("username and password are required")
	}
	if strings.TrimSpace(username) != username {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("username must not start or end with whitespace")
	}
	if srv.policy != nil {
		if err := srv.policy.ValidatePasswordStrength(input.Password); err != nil {
			return nil, err
		}
	}

	srv.log(ctx).Info("Starting registration", slog.String("username", username))

	var registered *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		_, err := userRepo.FindByUsername(ctx, username)
		if err == nil {
			return domainerrors.ErrUsernameTaken
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to look up username")
		}

		hash, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
		}

		user := &entity.User{
			Username:     username,
			Email:        strings.TrimSpace(input.Email),
			PasswordHash: hash,
		}
		// The unique index still rejects a concurrent registration that slipped past the lookup.
		if err := userRepo.Create(ctx, user); err != nil {
			return err
		}
		registered = user

		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrUsernameTaken) {
			srv.log(ctx).Info("Registration rejected, username taken", slog.String("username", username))
		} else {
			srv.log(ctx).Error("Registration failed", slog.String("username", username), slog.Any("error", err))
		}

		return nil, err
	}

	srv.log(ctx).Info("Registration completed", slog.String("user_id", registered.ID.String()))

	return registered.Public(), nil
}

// AuthenticateUser returns the account when the credentials match.
func (srv *authService) AuthenticateUser(ctx context.Context, username, password string) (*entity.User, bool, error) {
	user, err := srv.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, false, nil
		}

		return nil, false, errors.Wrap(err, "failed to look up user")
	}

	if !srv.hasher.Check(password, user.PasswordHash) {
		return nil, false, nil
	}

	return user.Public(), true, nil
}

// Register creates the account and issues a session for it right away.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthOutput, error) {
	user, err := srv.RegisterUser(ctx, input)
	if err != nil {
		return nil, err
	}

	return srv.issue(user)
}

// Login verifies credentials and issues a session.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	user, ok, err := srv.AuthenticateUser(ctx, input.Username, input.Password)
	if err != nil {
		return nil, err
	}
	if !ok {
		srv.log(ctx).Info("Login rejected", slog.String("username", input.Username))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.issue(user)
}

// Logout has nothing to revoke; the caller discards its token.
func (srv *authService) Logout(ctx context.Context, token string) error {
	if identity, ok := srv.tokenService.Validate(token); ok {
		srv.log(ctx).Info("Logout", slog.String("user_id", identity.UserID.String()))
	}

	return nil
}

func (srv *authService) CurrentIdentity(_ context.Context, token string) (*entity.Identity, bool) {
	return srv.tokenService.Validate(token)
}

func (srv *authService) issue(user *entity.User) (*usecase.AuthOutput, error) {
	token, identity, err := srv.tokenService.Issue(user)
	if err != nil {
		return nil, domainerrors.ErrTokenIssueFailed.WrapMessage(err.Error())
	}

	return &usecase.AuthOutput{
		User:    user,
		Session: &entity.Session{Token: token, Identity: identity},
	}, nil
}
