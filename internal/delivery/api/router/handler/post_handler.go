package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"kurvalgom/internal/delivery/api/response"
	deliverycontext "kurvalgom/internal/delivery/context"
	"kurvalgom/internal/domain/entity"
	domainerrors "kurvalgom/internal/domain/errors"
	"kurvalgom/internal/errors"
	"kurvalgom/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PostHandlerParams holds dependencies for PostHandler, injected by Fx.
type PostHandlerParams struct {
	fx.In

	PostUC usecase.PostUsecase
	Logger *slog.Logger
}

// PostHandler serves the blog post endpoints.
type PostHandler struct {
	postUC usecase.PostUsecase
	logger *slog.Logger
}

// NewPostHandler is the constructor for PostHandler.
func NewPostHandler(params PostHandlerParams) *PostHandler {
	return &PostHandler{
		postUC: params.PostUC,
		logger: params.Logger,
	}
}

// CreatePostRequest represents the request body for creating a post
type CreatePostRequest struct {
	Image      string             `json:"image" validate:"omitempty,dataimage"`
	Comment    string             `json:"comment" validate:"max=4000"`
	Rating     *int               `json:"rating" validate:"required,min=0,max=5"`
	Restaurant *entity.Restaurant `json:"restaurant" validate:"required"`
}

// UpdatePostRequest represents the request body for a partial update
type UpdatePostRequest struct {
	Image   *string `json:"image,omitempty" validate:"omitempty,dataimage"`
	Comment *string `json:"comment,omitempty" validate:"omitempty,max=4000"`
	Rating  *int    `json:"rating,omitempty" validate:"omitempty,min=0,max=5"`
}

// ListPosts returns every post, or only the caller's with ?mine=true.
func (h *PostHandler) ListPosts(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		posts []*entity.BlogPost
		err   error
	)
	if c.QueryParam("mine") == "true" {
		identity, authErr := requireIdentity(c)
		if authErr != nil {
			return authErr
		}
		posts, err = h.postUC.ListPostsByOwner(ctx, identity.UserID)
	} else {
		posts, err = h.postUC.ListAllPosts(ctx)
	}
	if err != nil {
		return errors.WithStack(err)
	}
	if posts == nil {
		posts = []*entity.BlogPost{}
	}

	return response.Success(c, http.StatusOK, posts)
}

func (h *PostHandler) GetPost(c echo.Context) error {
	postID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	post, err := h.postUC.GetPost(c.Request().Context(), postID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, post)
}

// CreatePost stores a review for the restaurant snapshot in the body.
func (h *PostHandler) CreatePost(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	var req CreatePostRequest
	if err := bindAndValidate(c, &req, "post"); err != nil {
		return err
	}
	if strings.TrimSpace(req.Restaurant.Name) == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("restaurant name is required")
	}

	post, err := h.postUC.CreatePost(c.Request().Context(), identity.UserID, usecase.CreatePostInput{
		Image:      req.Image,
		Comment:    req.Comment,
		Rating:     *req.Rating,
		Restaurant: *req.Restaurant,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, post)
}

// UpdatePost applies the fields present in the body.
func (h *PostHandler) UpdatePost(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	postID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req UpdatePostRequest
	if err := bindAndValidate(c, &req, "post update"); err != nil {
		return err
	}

	patch := entity.PostPatch{Image: req.Image, Comment: req.Comment, Rating: req.Rating}
	if patch.IsEmpty() {
		return domainerrors.ErrValidationFailed.WrapMessage("nothing to update")
	}

	post, err := h.postUC.UpdatePost(c.Request().Context(), identity.UserID, postID, patch)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, post)
}

func (h *PostHandler) DeletePost(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	postID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.postUC.DeletePost(c.Request().Context(), identity.UserID, postID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": postID.String()})
}
