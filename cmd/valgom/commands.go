package main

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"kurvalgom/internal/delivery/api/validator"
	"kurvalgom/internal/domain/entity"
	domainerrors "kurvalgom/internal/domain/errors"
	"kurvalgom/internal/usecase"
	"kurvalgom/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const commentPreviewLength = 72

type searchArgs struct {
	lat    float64
	lng    float64
	radius int
}

type reviewArgs struct {
	restaurantRef string
	rating        int
	comment       string
	imagePath     string
}

// editArgs holds only the flags given on the command line; nil means unchanged.
type editArgs struct {
	id        string
	rating    *int
	comment   *string
	imagePath *string
}

type reviewInput struct {
	Image   string `json:"image" validate:"omitempty,dataimage"`
	Comment string `json:"comment" validate:"max=4000"`
	Rating  int    `json:"rating" validate:"min=0,max=5"`
}

type editInput struct {
	Image   *string `json:"image" validate:"omitempty,dataimage"`
	Comment *string `json:"comment" validate:"omitempty,max=4000"`
	Rating  *int    `json:"rating" validate:"omitempty,min=0,max=5"`
}

func (c *client) register(ctx context.Context, username, password, email string) error {
	out, err := c.auth.Register(ctx, usecase.RegisterInput{
		Username: username,
		Password: password,
		Email:    email,
	})
	if err != nil {
		return err
	}

	return c.signIn(ctx, out, "Welcome")
}

func (c *client) login(ctx context.Context, username, password string) error {
	out, err := c.auth.Login(ctx, usecase.LoginInput{Username: username, Password: password})
	if err != nil {
		return err
	}

	return c.signIn(ctx, out, "Welcome back")
}

func (c *client) signIn(ctx context.Context, out *usecase.AuthOutput, greeting string) error {
	if err := c.keeper.Save(ctx, out.Session.Token); err != nil {
		return err
	}

	fmt.Fprintf(c.out, "%s, %s! Signed in for %s.\n",
		greeting, out.User.Username, util.FormatDuration(time.Until(out.Session.Identity.ExpiresAt)))

	return nil
}

func (c *client) logout(ctx context.Context) error {
	current, err := c.keeper.Current(ctx)
	if err != nil {
		return err
	}
	if current != nil {
		if err := c.auth.Logout(ctx, current.Token); err != nil {
			return err
		}
	}
	if err := c.keeper.Clear(ctx); err != nil {
		return err
	}

	fmt.Fprintln(c.out, "Signed out.")

	return nil
}

func (c *client) whoami(ctx context.Context) error {
	current, err := c.keeper.Current(ctx)
	if err != nil {
		return err
	}
	if current == nil {
		fmt.Fprintln(c.out, "Not signed in.")

		return nil
	}

	identity := current.Identity
	fmt.Fprintf(c.out, "%s <%s>, session expires in %s\n",
		identity.Username, identity.Email, util.FormatDuration(time.Until(identity.ExpiresAt)))

	return nil
}

// requireSession returns the signed-in identity or an authentication error.
func (c *client) requireSession(ctx context.Context) (*entity.Identity, error) {
	current, err := c.keeper.Current(ctx)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("run 'valgom login' first")
	}

	return current.Identity, nil
}

func (c *client) radius(requested int) int {
	if requested > 0 {
		return requested
	}

	return c.cfg.POI.DefaultRadius
}

func (c *client) nearby(ctx context.Context, args searchArgs) error {
	radius := c.radius(args.radius)
	restaurants, err := c.discovery.Nearby(ctx, args.lat, args.lng, radius)
	if err != nil {
		return err
	}
	if len(restaurants) == 0 {
		fmt.Fprintln(c.out, domainerrors.ErrNoRestaurants.Message())

		return nil
	}

	fmt.Fprintf(c.out, "%d restaurants within %s:\n", len(restaurants), util.FormatDistance(float64(radius)))
	for i, restaurant := range restaurants {
		line := fmt.Sprintf("%3d. %s", i+1, restaurant.Name)
		if restaurant.Cuisine != "" {
			line += " (" + restaurant.Cuisine + ")"
		}
		line += "  " + util.FormatDistance(restaurant.DistanceMeters)
		if restaurant.SimulatedRating != "" {
			line += "  ★ " + restaurant.SimulatedRating
		}
		fmt.Fprintf(c.out, "%s  [%s]\n", line, restaurant.Ref())
	}

	return nil
}

func (c *client) pick(ctx context.Context, args searchArgs) error {
	current, err := c.keeper.Current(ctx)
	if err != nil {
		return err
	}
	var actor *entity.Identity
	if current != nil {
		actor = current.Identity
	}

	out, err := c.discovery.PickRandom(ctx, actor, args.lat, args.lng, c.radius(args.radius))
	if err != nil {
		return err
	}

	c.printRestaurant(out.Restaurant)
	fmt.Fprintf(c.out, "Picked from %d restaurants within %s.\n", out.Candidates, util.FormatDistance(float64(out.Radius)))
	if out.History != nil {
		fmt.Fprintln(c.out, "Saved to your history.")
	}

	return nil
}

func (c *client) printRestaurant(restaurant entity.Restaurant) {
	fmt.Fprintf(c.out, "%s  [%s]\n", restaurant.Name, restaurant.Ref())

	fields := []struct {
		label string
		value string
	}{
		{"Cuisine", restaurant.Cuisine},
		{"Address", restaurant.Address},
		{"Distance", util.FormatDistance(restaurant.DistanceMeters)},
		{"Rating", restaurant.SimulatedRating},
		{"Opening", restaurant.OpeningHours},
		{"Phone", restaurant.Phone},
		{"Website", restaurant.Website},
		{"Menu", restaurant.Menu},
	}
	for _, field := range fields {
		if field.value != "" {
			fmt.Fprintf(c.out, "  %-9s %s\n", field.label+":", field.value)
		}
	}
}

func (c *client) review(ctx context.Context, args reviewArgs) error {
	identity, err := c.requireSession(ctx)
	if err != nil {
		return err
	}

	restaurant, err := c.historyRestaurant(ctx, identity.UserID, args.restaurantRef)
	if err != nil {
		return err
	}

	input := reviewInput{Comment: args.comment, Rating: args.rating}
	var imageSize int64
	if args.imagePath != "" {
		if input.Image, imageSize, err = loadImage(args.imagePath); err != nil {
			return err
		}
	}
	if err := validateInput(input); err != nil {
		return err
	}

	post, err := c.posts.CreatePost(ctx, identity.UserID, usecase.CreatePostInput{
		Image:      input.Image,
		Comment:    input.Comment,
		Rating:     input.Rating,
		Restaurant: restaurant,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "Review %s saved for %s.\n", post.ID, restaurant.Name)
	if imageSize > 0 {
		fmt.Fprintf(c.out, "Photo attached (%s).\n", util.FormatBytes(imageSize))
	}

	return nil
}

// historyRestaurant finds the restaurant to review among the caller's picks; an empty ref means the latest.
func (c *client) historyRestaurant(ctx context.Context, userID uuid.UUID, ref string) (entity.Restaurant, error) {
	entries, err := c.history.ListHistoryForUser(ctx, userID)
	if err != nil {
		return entity.Restaurant{}, err
	}
	if len(entries) == 0 {
		return entity.Restaurant{}, errors.New("your history is empty; run 'valgom pick' first")
	}
	if ref == "" {
		return entries[0].Restaurant, nil
	}

	for _, entry := range entries {
		if entry.RestaurantRef == ref {
			return entry.Restaurant, nil
		}
	}

	return entity.Restaurant{}, errors.Errorf("restaurant %s is not in your history", ref)
}

func (c *client) listReviews(ctx context.Context, mine bool) error {
	var (
		posts []*entity.BlogPost
		err   error
	)
	if mine {
		identity, authErr := c.requireSession(ctx)
		if authErr != nil {
			return authErr
		}
		posts, err = c.posts.ListPostsByOwner(ctx, identity.UserID)
	} else {
		posts, err = c.posts.ListAllPosts(ctx)
	}
	if err != nil {
		return err
	}
	if len(posts) == 0 {
		fmt.Fprintln(c.out, "No reviews yet.")

		return nil
	}

	for _, post := range posts {
		fmt.Fprintf(c.out, "%s  %s  %s  %s\n",
			post.ID, util.Stars(post.Rating), post.Restaurant.Name, post.CreatedAt.Local().Format(time.DateTime))
		if post.Comment != "" {
			fmt.Fprintf(c.out, "    %s\n", util.Truncate(strings.Join(strings.Fields(post.Comment), " "), commentPreviewLength))
		}
	}

	return nil
}

func (c *client) edit(ctx context.Context, args editArgs) error {
	identity, err := c.requireSession(ctx)
	if err != nil {
		return err
	}
	postID, err := parsePostID(args.id)
	if err != nil {
		return err
	}

	input := editInput{Comment: args.comment, Rating: args.rating}
	if args.imagePath != nil {
		image, _, err := loadImage(*args.imagePath)
		if err != nil {
			return err
		}
		input.Image = &image
	}
	if err := validateInput(input); err != nil {
		return err
	}

	patch := entity.PostPatch{Image: input.Image, Comment: input.Comment, Rating: input.Rating}
	if patch.IsEmpty() {
		return domainerrors.ErrValidationFailed.WrapMessage("nothing to update")
	}

	post, err := c.posts.UpdatePost(ctx, identity.UserID, postID, patch)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "Review %s updated: %s\n", post.ID, util.Stars(post.Rating))

	return nil
}

func (c *client) deleteReview(ctx context.Context, id string) error {
	identity, err := c.requireSession(ctx)
	if err != nil {
		return err
	}
	postID, err := parsePostID(id)
	if err != nil {
		return err
	}

	if err := c.posts.DeletePost(ctx, identity.UserID, postID); err != nil {
		return err
	}

	fmt.Fprintf(c.out, "Review %s deleted.\n", postID)

	return nil
}

func (c *client) listHistory(ctx context.Context) error {
	identity, err := c.requireSession(ctx)
	if err != nil {
		return err
	}

	entries, err := c.history.ListHistoryForUser(ctx, identity.UserID)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(c.out, "No history yet.")

		return nil
	}

	for _, entry := range entries {
		line := fmt.Sprintf("%s  %-16s %s", entry.CreatedAt.Local().Format(time.DateTime), entry.RestaurantRef, entry.Restaurant.Name)
		if entry.Restaurant.Address != "" {
			line += " (" + entry.Restaurant.Address + ")"
		}
		fmt.Fprintln(c.out, line)
	}

	return nil
}

func parsePostID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WrapMessage("id must be a UUID")
	}

	return id, nil
}

var inputValidator = validator.New()

// validateInput applies the same rules as the HTTP API and names the offending flags.
func validateInput(input any) error {
	err := inputValidator.Validate(input)
	if err == nil {
		return nil
	}

	fields := validator.FieldErrors(err)
	if len(fields) == 0 {
		return err
	}

	names := slices.Sorted(maps.Keys(fields))
	problems := make([]string, 0, len(names))
	for _, name := range names {
		problems = append(problems, "--"+name+" ("+fields[name]+")")
	}

	return domainerrors.ErrValidationFailed.WrapMessage("invalid " + strings.Join(problems, ", "))
}
