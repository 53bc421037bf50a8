package router

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"kurvalgom/config"
	apimiddleware "kurvalgom/internal/delivery/api/middleware"
	"kurvalgom/internal/delivery/api/router/handler"
	"kurvalgom/internal/delivery/api/validator"
	"kurvalgom/internal/domain/entity"
	domainerrors "kurvalgom/internal/domain/errors"
	mockSvc "kurvalgom/internal/mocks/service"
	mockUsecase "kurvalgom/internal/mocks/usecase"
	"kurvalgom/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const validToken = "valid-token"

type testAPI struct {
	e         *echo.Echo
	auth      *mockUsecase.MockAuthUsecase
	discovery *mockUsecase.MockDiscoveryUsecase
	posts     *mockUsecase.MockPostUsecase
	history   *mockUsecase.MockHistoryUsecase
	identity  *entity.Identity
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{POI: &config.POIConfig{DefaultRadius: 1000}}

	api := &testAPI{
		auth:      mockUsecase.NewMockAuthUsecase(t),
		discovery: mockUsecase.NewMockDiscoveryUsecase(t),
		posts:     mockUsecase.NewMockPostUsecase(t),
		history:   mockUsecase.NewMockHistoryUsecase(t),
		identity: &entity.Identity{
			UserID:    uuid.New(),
			Username:  "alice",
			ExpiresAt: time.Now().Add(time.Hour),
		},
	}

	tokens := mockSvc.NewMockTokenService(t)
	tokens.EXPECT().Validate(validToken).Return(api.identity, true).Maybe()
	tokens.EXPECT().Validate(mock.MatchedBy(func(s string) bool { return s != validToken })).Return(nil, false).Maybe()

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError

	NewRouter(RouterParams{
		AuthHandler:       handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: api.auth, Logger: logger}),
		RestaurantHandler: handler.NewRestaurantHandler(handler.RestaurantHandlerParams{DiscoveryUC: api.discovery, Config: cfg, Logger: logger}),
		PostHandler:       handler.NewPostHandler(handler.PostHandlerParams{PostUC: api.posts, Logger: logger}),
		HistoryHandler:    handler.NewHistoryHandler(handler.HistoryHandlerParams{HistoryUC: api.history, Logger: logger}),
		AuthMiddleware:    apimiddleware.NewAuthMiddleware(tokens),
		Config:            cfg,
	}).RegisterRoutes(e)

	api.e = e

	return api
}

func (api *testAPI) do(t *testing.T, method, target, body, token string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	api.e.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return rec, env
}

func sampleRestaurant() entity.Restaurant {
	return entity.Restaurant{ID: 7, Type: "node", Name: "Etno Dvaras", Location: orb.Point{25.28, 54.68}}
}

func TestRouter_Health(t *testing.T) {
	api := newTestAPI(t)

	rec, env := api.do(t, http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))
}

func TestRouter_Register(t *testing.T) {
	api := newTestAPI(t)
	user := &entity.User{ID: uuid.New(), Username: "bob"}
	expires := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)

	api.auth.EXPECT().
		Register(mock.Anything, usecase.RegisterInput{Username: "bob", Password: "pw", Email: "bob@example.com"}).
		Return(&usecase.AuthOutput{
			User:    user,
			Session: &entity.Session{Token: "tok", Identity: &entity.Identity{UserID: user.ID, ExpiresAt: expires}},
		}, nil)

	rec, env := api.do(t, http.MethodPost, "/auth/register", `{"username":"bob","password":"pw","email":"bob@example.com"}`, "")

	require.Equal(t, http.StatusCreated, rec.Code)
	var session handler.SessionResponse
	require.NoError(t, json.Unmarshal(env.Data, &session))
	assert.Equal(t, "tok", session.Token)
	assert.Equal(t, "bob", session.User.Username)
	assert.True(t, expires.Equal(session.ExpiresAt))
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestRouter_Register_ValidationFailure(t *testing.T) {
	api := newTestAPI(t)

	rec, env := api.do(t, http.MethodPost, "/auth/register", `{"password":"pw","email":"not-an-email"}`, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Equal(t, map[string]any{"username": "required", "email": "email"}, env.Error.Details)
}

func TestRouter_Register_DuplicateUsername(t *testing.T) {
	api := newTestAPI(t)
	api.auth.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUsernameTaken)

	rec, env := api.do(t, http.MethodPost, "/auth/register", `{"username":"bob","password":"pw"}`, "")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "USERNAME_TAKEN", env.Error.Code)
}

func TestRouter_Login_InvalidCredentials(t *testing.T) {
	api := newTestAPI(t)
	api.auth.EXPECT().
		Login(mock.Anything, usecase.LoginInput{Username: "bob", Password: "nope"}).
		Return(nil, domainerrors.ErrInvalidCredentials)

	rec, env := api.do(t, http.MethodPost, "/auth/login", `{"username":"bob","password":"nope"}`, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)
}

func TestRouter_Logout_PassesBearerToken(t *testing.T) {
	api := newTestAPI(t)
	api.auth.EXPECT().Logout(mock.Anything, "whatever").Return(nil)

	rec, _ := api.do(t, http.MethodPost, "/auth/logout", "", "whatever")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_Me(t *testing.T) {
	api := newTestAPI(t)

	rec, env := api.do(t, http.MethodGet, "/auth/me", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHENTICATED", env.Error.Code)
	assert.Nil(t, env.Error.Details, "401 responses carry no details")

	rec, env = api.do(t, http.MethodGet, "/auth/me", "", validToken)
	require.Equal(t, http.StatusOK, rec.Code)
	var identity entity.Identity
	require.NoError(t, json.Unmarshal(env.Data, &identity))
	assert.Equal(t, api.identity.UserID, identity.UserID)
}

func TestRouter_Nearby(t *testing.T) {
	api := newTestAPI(t)
	api.discovery.EXPECT().Nearby(mock.Anything, 54.68, 25.28, 1000).Return([]entity.Restaurant{sampleRestaurant()}, nil)

	rec, env := api.do(t, http.MethodGet, "/api/v1/restaurants/nearby?lat=54.68&lng=25.28", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var out handler.NearbyResponse
	require.NoError(t, json.Unmarshal(env.Data, &out))
	assert.Equal(t, 1, out.Count)
	assert.Equal(t, "Etno Dvaras", out.Restaurants[0].Name)
}

func TestRouter_Nearby_BadQuery(t *testing.T) {
	api := newTestAPI(t)

	rec, env := api.do(t, http.MethodGet, "/api/v1/restaurants/nearby?lat=abc&lng=25.28", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", env.Error.Code)

	rec, env = api.do(t, http.MethodGet, "/api/v1/restaurants/nearby?lat=95&lng=25.28", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestRouter_Nearby_FetchFailure(t *testing.T) {
	api := newTestAPI(t)
	api.discovery.EXPECT().Nearby(mock.Anything, 54.68, 25.28, 2000).Return(nil, domainerrors.ErrFetchFailed)

	rec, env := api.do(t, http.MethodGet, "/api/v1/restaurants/nearby?lat=54.68&lng=25.28&radius=2000", "", "")

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "FETCH_FAILED", env.Error.Code)
	assert.Equal(t, "Failed to fetch restaurants. Please try again later.", env.Error.Message)
}

func TestRouter_Pick_AnonymousAndSignedIn(t *testing.T) {
	api := newTestAPI(t)
	output := &usecase.PickOutput{Restaurant: sampleRestaurant(), Radius: 1000, Candidates: 3}

	api.discovery.EXPECT().PickRandom(mock.Anything, (*entity.Identity)(nil), 54.68, 25.28, 1000).Return(output, nil).Once()
	api.discovery.EXPECT().PickRandom(mock.Anything, api.identity, 54.68, 25.28, 1000).Return(output, nil).Once()

	rec, _ := api.do(t, http.MethodPost, "/api/v1/restaurants/pick", `{"lat":54.68,"lng":25.28}`, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env := api.do(t, http.MethodPost, "/api/v1/restaurants/pick", `{"lat":54.68,"lng":25.28}`, validToken)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"candidates":3`)
}

func TestRouter_Pick_NoRestaurants(t *testing.T) {
	api := newTestAPI(t)
	api.discovery.EXPECT().PickRandom(mock.Anything, mock.Anything, 0.0, 0.0, 500).Return(nil, domainerrors.ErrNoRestaurants)

	rec, env := api.do(t, http.MethodPost, "/api/v1/restaurants/pick", `{"lat":0,"lng":0,"radius":500}`, "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "No restaurants found. Try increasing the radius.", env.Error.Message)
}

func TestRouter_CreatePost(t *testing.T) {
	api := newTestAPI(t)
	restaurant := sampleRestaurant()
	created := &entity.BlogPost{ID: uuid.New(), UserID: api.identity.UserID, Rating: 4, Restaurant: restaurant}

	api.posts.EXPECT().
		CreatePost(mock.Anything, api.identity.UserID, mock.MatchedBy(func(in usecase.CreatePostInput) bool {
			return in.Rating == 4 && in.Comment == "good" && in.Restaurant.Ref() == "node/7"
		})).
		Return(created, nil)

	body := `{"comment":"good","rating":4,"image":"data:image/png;base64,iVBORw0KGgo=","restaurant":{"id":7,"type":"node","name":"Etno Dvaras","location":[25.28,54.68]}}`
	rec, env := api.do(t, http.MethodPost, "/api/v1/posts", body, validToken)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, string(env.Data), created.ID.String())
}

func TestRouter_CreatePost_Rejections(t *testing.T) {
	api := newTestAPI(t)
	restaurant := `"restaurant":{"id":7,"type":"node","name":"Etno Dvaras"}`

	tests := []struct {
		name   string
		body   string
		token  string
		status int
		code   string
	}{
		{name: "anonymous", body: `{"rating":4,` + restaurant + `}`, status: http.StatusUnauthorized, code: "UNAUTHENTICATED"},
		{name: "rating above range", body: `{"rating":6,` + restaurant + `}`, token: validToken, status: http.StatusBadRequest, code: "VALIDATION_FAILED"},
		{name: "missing rating", body: `{` + restaurant + `}`, token: validToken, status: http.StatusBadRequest, code: "VALIDATION_FAILED"},
		{name: "gif image", body: `{"rating":1,"image":"data:image/gif;base64,R0lG",` + restaurant + `}`, token: validToken, status: http.StatusBadRequest, code: "VALIDATION_FAILED"},
		{name: "missing restaurant", body: `{"rating":1}`, token: validToken, status: http.StatusBadRequest, code: "VALIDATION_FAILED"},
		{name: "unnamed restaurant", body: `{"rating":1,"restaurant":{"id":1,"type":"node"}}`, token: validToken, status: http.StatusBadRequest, code: "VALIDATION_FAILED"},
		{name: "malformed json", body: `{"rating":`, token: validToken, status: http.StatusBadRequest, code: "INVALID_INPUT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := api.do(t, http.MethodPost, "/api/v1/posts", tt.body, tt.token)

			assert.Equal(t, tt.status, rec.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.code, env.Error.Code)
		})
	}
}

func TestRouter_UpdatePost(t *testing.T) {
	api := newTestAPI(t)
	postID := uuid.New()
	comment := "edited"

	api.posts.EXPECT().
		UpdatePost(mock.Anything, api.identity.UserID, postID, entity.PostPatch{Comment: &comment}).
		Return(&entity.BlogPost{ID: postID, Comment: comment}, nil)

	rec, _ := api.do(t, http.MethodPatch, "/api/v1/posts/"+postID.String(), `{"comment":"edited"}`, validToken)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_UpdatePost_Errors(t *testing.T) {
	api := newTestAPI(t)
	foreign := uuid.New()
	missing := uuid.New()

	api.posts.EXPECT().UpdatePost(mock.Anything, api.identity.UserID, foreign, mock.Anything).Return(nil, domainerrors.ErrPostOwnership)
	api.posts.EXPECT().UpdatePost(mock.Anything, api.identity.UserID, missing, mock.Anything).Return(nil, domainerrors.ErrPostNotFound)

	rec, env := api.do(t, http.MethodPatch, "/api/v1/posts/"+foreign.String(), `{"rating":1}`, validToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "OWNERSHIP_VIOLATION", env.Error.Code)

	rec, env = api.do(t, http.MethodPatch, "/api/v1/posts/"+missing.String(), `{"rating":1}`, validToken)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)

	rec, env = api.do(t, http.MethodPatch, "/api/v1/posts/"+missing.String(), `{}`, validToken)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "nothing to update", env.Error.Details)

	rec, env = api.do(t, http.MethodPatch, "/api/v1/posts/not-a-uuid", `{"rating":1}`, validToken)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestRouter_DeletePost(t *testing.T) {
	api := newTestAPI(t)
	postID := uuid.New()
	api.posts.EXPECT().DeletePost(mock.Anything, api.identity.UserID, postID).Return(nil)

	rec, _ := api.do(t, http.MethodDelete, "/api/v1/posts/"+postID.String(), "", validToken)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_ListPosts(t *testing.T) {
	api := newTestAPI(t)
	api.posts.EXPECT().ListAllPosts(mock.Anything).Return(nil, nil)
	api.posts.EXPECT().ListPostsByOwner(mock.Anything, api.identity.UserID).Return([]*entity.BlogPost{{ID: uuid.New()}}, nil)

	rec, env := api.do(t, http.MethodGet, "/api/v1/posts", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(env.Data))

	rec, _ = api.do(t, http.MethodGet, "/api/v1/posts?mine=true", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, env = api.do(t, http.MethodGet, "/api/v1/posts?mine=true", "", validToken)
	require.Equal(t, http.StatusOK, rec.Code)
	var posts []entity.BlogPost
	require.NoError(t, json.Unmarshal(env.Data, &posts))
	assert.Len(t, posts, 1)
}

func TestRouter_History(t *testing.T) {
	api := newTestAPI(t)
	entry := &entity.HistoryEntry{ID: uuid.New(), UserID: api.identity.UserID, RestaurantRef: "node/7"}

	api.history.EXPECT().
		AddHistoryEntry(mock.Anything, api.identity.UserID, mock.AnythingOfType("entity.Restaurant")).
		Return(entry, nil)
	api.history.EXPECT().ListHistoryForUser(mock.Anything, api.identity.UserID).Return([]*entity.HistoryEntry{entry}, nil)

	rec, _ := api.do(t, http.MethodPost, "/api/v1/history", `{"restaurant":{"id":7,"type":"node","name":"Etno Dvaras"}}`, validToken)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec, env := api.do(t, http.MethodGet, "/api/v1/history", "", validToken)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), "node/7")

	rec, _ = api.do(t, http.MethodGet, "/api/v1/history", "", "expired")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_MetricsRoute(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{Metrics: &config.MetricsConfig{Enabled: true, Path: "/metrics"}}

	e := echo.New()
	NewRouter(RouterParams{
		AuthHandler:       handler.NewAuthHandler(handler.AuthHandlerParams{Logger: logger}),
		RestaurantHandler: handler.NewRestaurantHandler(handler.RestaurantHandlerParams{Config: cfg, Logger: logger}),
		PostHandler:       handler.NewPostHandler(handler.PostHandlerParams{Logger: logger}),
		HistoryHandler:    handler.NewHistoryHandler(handler.HistoryHandlerParams{Logger: logger}),
		AuthMiddleware:    apimiddleware.NewAuthMiddleware(nil),
		MetricsHandler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, "kurvalgom_poi_cache_hits_total 1\n")
		}),
		Config: cfg,
	}).RegisterRoutes(e)

	req := httptest.NewRequestWithContext(context.Background(), http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "kurvalgom_poi_cache_hits_total")
}
