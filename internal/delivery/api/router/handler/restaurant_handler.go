package handler

import (
	"log/slog"
	"net/http"

	"kurvalgom/config"
	"kurvalgom/internal/delivery/api/response"
	deliverycontext "kurvalgom/internal/delivery/context"
	"kurvalgom/internal/domain/entity"
	domainerrors "kurvalgom/internal/domain/errors"
	"kurvalgom/internal/errors"
	"kurvalgom/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RestaurantHandlerParams holds dependencies for RestaurantHandler, injected by Fx.
type RestaurantHandlerParams struct {
	fx.In

	DiscoveryUC usecase.DiscoveryUsecase
	Config      *config.Config
	Logger      *slog.Logger
}

// RestaurantHandler serves nearby search and the random pick.
type RestaurantHandler struct {
	discoveryUC   usecase.DiscoveryUsecase
	defaultRadius int
	logger        *slog.Logger
}

// NewRestaurantHandler is the constructor for RestaurantHandler.
func NewRestaurantHandler(params RestaurantHandlerParams) *RestaurantHandler {
	defaultRadius := 0
	if params.Config.POI != nil {
		defaultRadius = params.Config.POI.DefaultRadius
	}

	return &RestaurantHandler{
		discoveryUC:   params.DiscoveryUC,
		defaultRadius: defaultRadius,
		logger:        params.Logger,
	}
}

// NearbyQuery is the validated form of the nearby query string. Radius 0 selects the configured default.
type NearbyQuery struct {
	Lat    float64 `query:"lat" validate:"latitude"`
	Lng    float64 `query:"lng" validate:"longitude"`
	Radius int     `query:"radius" validate:"min=0"`
}

// PickRequest represents the request body for a random pick
type PickRequest struct {
	Lat    *float64 `json:"lat" validate:"required,latitude"`
	Lng    *float64 `json:"lng" validate:"required,longitude"`
	Radius int      `json:"radius" validate:"min=0"`
}

// NearbyResponse lists the restaurants inside the circle.
type NearbyResponse struct {
	Restaurants []entity.Restaurant `json:"restaurants"`
	Count       int                 `json:"count"`
}

// Nearby handles GET /restaurants/nearby.
func (h *RestaurantHandler) Nearby(c echo.Context) error {
	var query NearbyQuery
	if err := echo.QueryParamsBinder(c).
		MustFloat64("lat", &query.Lat).
		MustFloat64("lng", &query.Lng).
		Int("radius", &query.Radius).
		BindError(); err != nil {
		return domainerrors.ErrInvalidInput.WrapMessage("lat and lng are required numbers")
	}
	if err := c.Validate(&query); err != nil {
		return err
	}

	restaurants, err := h.discoveryUC.Nearby(c.Request().Context(), query.Lat, query.Lng, h.radius(query.Radius))
	if err != nil {
		return errors.WithStack(err)
	}
	if restaurants == nil {
		restaurants = []entity.Restaurant{}
	}

	return response.Success(c, http.StatusOK, NearbyResponse{Restaurants: restaurants, Count: len(restaurants)})
}

// Pick handles POST /restaurants/pick. Signed-in callers get the pick recorded in their history.
func (h *RestaurantHandler) Pick(c echo.Context) error {
	var req PickRequest
	if err := bindAndValidate(c, &req, "pick"); err != nil {
		return err
	}

	actor, _ := deliverycontext.GetIdentity(c)

	output, err := h.discoveryUC.PickRandom(c.Request().Context(), actor, *req.Lat, *req.Lng, h.radius(req.Radius))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output)
}

func (h *RestaurantHandler) radius(requested int) int {
	if requested == 0 {
		return h.defaultRadius
	}

	return requested
}
