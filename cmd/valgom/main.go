package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - register, login, logout, whoami: session management
// - nearby, pick:                    restaurant discovery
// - review, reviews, edit, delete:   blog posts
// - history:                         restaurants picked while signed in

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	flags := newValgomFlags()
	if err := runSubcommand(ctx, flags, os.Args[1], os.Args[2:]); err != nil {
		stop()
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type valgomFlags struct {
	Register registerFlags
	Login    loginFlags
	Logout   *flag.FlagSet
	Whoami   *flag.FlagSet
	Nearby   searchFlags
	Pick     searchFlags
	Review   reviewFlags
	Reviews  reviewsFlags
	Edit     editFlags
	Delete   deleteFlags
	History  *flag.FlagSet
}

type registerFlags struct {
	cmd      *flag.FlagSet
	username *string
	password *string
	email    *string
}

type loginFlags struct {
	cmd      *flag.FlagSet
	username *string
	password *string
}

type searchFlags struct {
	cmd    *flag.FlagSet
	lat    *float64
	lng    *float64
	radius *int
}

type reviewFlags struct {
	cmd        *flag.FlagSet
	restaurant *string
	rating     *int
	comment    *string
	image      *string
}

type reviewsFlags struct {
	cmd  *flag.FlagSet
	mine *bool
}

type editFlags struct {
	cmd     *flag.FlagSet
	id      *string
	rating  *int
	comment *string
	image   *string
}

type deleteFlags struct {
	cmd *flag.FlagSet
	id  *string
}

func newValgomFlags() *valgomFlags {
	registerCmd := flag.NewFlagSet("register", flag.ContinueOnError)
	loginCmd := flag.NewFlagSet("login", flag.ContinueOnError)
	nearbyCmd := flag.NewFlagSet("nearby", flag.ContinueOnError)
	pickCmd := flag.NewFlagSet("pick", flag.ContinueOnError)
	reviewCmd := flag.NewFlagSet("review", flag.ContinueOnError)
	reviewsCmd := flag.NewFlagSet("reviews", flag.ContinueOnError)
	editCmd := flag.NewFlagSet("edit", flag.ContinueOnError)
	deleteCmd := flag.NewFlagSet("delete", flag.ContinueOnError)

	return &valgomFlags{
		Register: registerFlags{
			cmd:      registerCmd,
			username: registerCmd.String("username", "", "Account name (case sensitive)"),
			password: registerCmd.String("password", "", "Account password"),
			email:    registerCmd.String("email", "", "Contact email"),
		},
		Login: loginFlags{
			cmd:      loginCmd,
			username: loginCmd.String("username", "", "Account name"),
			password: loginCmd.String("password", "", "Account password"),
		},
		Logout:  flag.NewFlagSet("logout", flag.ContinueOnError),
		Whoami:  flag.NewFlagSet("whoami", flag.ContinueOnError),
		Nearby:  newSearchFlags(nearbyCmd),
		Pick:    newSearchFlags(pickCmd),
		History: flag.NewFlagSet("history", flag.ContinueOnError),
		Review: reviewFlags{
			cmd:        reviewCmd,
			restaurant: reviewCmd.String("restaurant", "", "Restaurant reference from your history, e.g. node/123 (default: latest pick)"),
			rating:     reviewCmd.Int("rating", -1, "Rating from 0 to 5"),
			comment:    reviewCmd.String("comment", "", "Review text"),
			image:      reviewCmd.String("image", "", "Path to a JPEG or PNG photo"),
		},
		Reviews: reviewsFlags{
			cmd:  reviewsCmd,
			mine: reviewsCmd.Bool("mine", false, "Only list your own reviews"),
		},
		Edit: editFlags{
			cmd:     editCmd,
			id:      editCmd.String("id", "", "Review id"),
			rating:  editCmd.Int("rating", 0, "New rating from 0 to 5"),
			comment: editCmd.String("comment", "", "New review text"),
			image:   editCmd.String("image", "", "Path to a new JPEG or PNG photo"),
		},
		Delete: deleteFlags{
			cmd: deleteCmd,
			id:  deleteCmd.String("id", "", "Review id"),
		},
	}
}

func newSearchFlags(cmd *flag.FlagSet) searchFlags {
	return searchFlags{
		cmd:    cmd,
		lat:    cmd.Float64("lat", 0, "Latitude of the search center"),
		lng:    cmd.Float64("lng", 0, "Longitude of the search center"),
		radius: cmd.Int("radius", 0, "Search radius in meters (default from config)"),
	}
}

func runSubcommand(ctx context.Context, flags *valgomFlags, name string, args []string) error {
	switch name {
	case "register":
		return handleRegister(ctx, flags, args)
	case "login":
		return handleLogin(ctx, flags, args)
	case "logout":
		return handleNoArgs(ctx, flags.Logout, args, (*client).logout)
	case "whoami":
		return handleNoArgs(ctx, flags.Whoami, args, (*client).whoami)
	case "nearby":
		return handleSearch(ctx, flags.Nearby, args, (*client).nearby)
	case "pick":
		return handleSearch(ctx, flags.Pick, args, (*client).pick)
	case "review":
		return handleReview(ctx, flags, args)
	case "reviews":
		return handleReviews(ctx, flags, args)
	case "edit":
		return handleEdit(ctx, flags, args)
	case "delete":
		return handleDelete(ctx, flags, args)
	case "history":
		return handleNoArgs(ctx, flags.History, args, (*client).listHistory)
	case "help", "-h", "--help":
		printUsage()

		return nil
	default:
		printUsage()

		return errors.Errorf("unknown subcommand %q", name)
	}
}

func handleRegister(ctx context.Context, flags *valgomFlags, args []string) error {
	if err := flags.Register.cmd.Parse(args); err != nil {
		return errors.Wrap(err, "failed to parse register flags")
	}

	return withClient(ctx, func(c *client) error {
		return c.register(ctx, *flags.Register.username, *flags.Register.password, *flags.Register.email)
	})
}

func handleLogin(ctx context.Context, flags *valgomFlags, args []string) error {
	if err := flags.Login.cmd.Parse(args); err != nil {
		return errors.Wrap(err, "failed to parse login flags")
	}

	return withClient(ctx, func(c *client) error {
		return c.login(ctx, *flags.Login.username, *flags.Login.password)
	})
}

func handleNoArgs(ctx context.Context, cmd *flag.FlagSet, args []string, fn func(*client, context.Context) error) error {
	if err := cmd.Parse(args); err != nil {
		return errors.Wrapf(err, "failed to parse %s flags", cmd.Name())
	}

	return withClient(ctx, func(c *client) error {
		return fn(c, ctx)
	})
}

func handleSearch(ctx context.Context, flags searchFlags, args []string, fn func(*client, context.Context, searchArgs) error) error {
	if err := flags.cmd.Parse(args); err != nil {
		return errors.Wrapf(err, "failed to parse %s flags", flags.cmd.Name())
	}
	if !isSet(flags.cmd, "lat") || !isSet(flags.cmd, "lng") {
		return errors.Errorf("--lat and --lng flags are required for %s command", flags.cmd.Name())
	}

	return withClient(ctx, func(c *client) error {
		return fn(c, ctx, searchArgs{lat: *flags.lat, lng: *flags.lng, radius: *flags.radius})
	})
}

func handleReview(ctx context.Context, flags *valgomFlags, args []string) error {
	if err := flags.Review.cmd.Parse(args); err != nil {
		return errors.Wrap(err, "failed to parse review flags")
	}
	if !isSet(flags.Review.cmd, "rating") {
		return errors.New("--rating flag is required for review command")
	}

	return withClient(ctx, func(c *client) error {
		return c.review(ctx, reviewArgs{
			restaurantRef: *flags.Review.restaurant,
			rating:        *flags.Review.rating,
			comment:       *flags.Review.comment,
			imagePath:     *flags.Review.image,
		})
	})
}

func handleReviews(ctx context.Context, flags *valgomFlags, args []string) error {
	if err := flags.Reviews.cmd.Parse(args); err != nil {
		return errors.Wrap(err, "failed to parse reviews flags")
	}

	return withClient(ctx, func(c *client) error {
		return c.listReviews(ctx, *flags.Reviews.mine)
	})
}

func handleEdit(ctx context.Context, flags *valgomFlags, args []string) error {
	if err := flags.Edit.cmd.Parse(args); err != nil {
		return errors.Wrap(err, "failed to parse edit flags")
	}
	if *flags.Edit.id == "" {
		return errors.New("--id flag is required for edit command")
	}

	edit := editArgs{id: *flags.Edit.id}
	if isSet(flags.Edit.cmd, "rating") {
		edit.rating = flags.Edit.rating
	}
	if isSet(flags.Edit.cmd, "comment") {
		edit.comment = flags.Edit.comment
	}
	if isSet(flags.Edit.cmd, "image") {
		edit.imagePath = flags.Edit.image
	}

	return withClient(ctx, func(c *client) error {
		return c.edit(ctx, edit)
	})
}

func handleDelete(ctx context.Context, flags *valgomFlags, args []string) error {
	if err := flags.Delete.cmd.Parse(args); err != nil {
		return errors.Wrap(err, "failed to parse delete flags")
	}
	if *flags.Delete.id == "" {
		return errors.New("--id flag is required for delete command")
	}

	return withClient(ctx, func(c *client) error {
		return c.deleteReview(ctx, *flags.Delete.id)
	})
}

// isSet reports whether the flag was given on the command line.
func isSet(cmd *flag.FlagSet, name string) bool {
	found := false
	cmd.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})

	return found
}

func printUsage() {
	fmt.Println("Usage: valgom <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  register    Create an account and sign in")
	fmt.Println("  login       Sign in")
	fmt.Println("  logout      Sign out")
	fmt.Println("  whoami      Show the signed-in account")
	fmt.Println("  nearby      List restaurants around a point")
	fmt.Println("  pick        Pick a random restaurant around a point")
	fmt.Println("  review      Write a review of a picked restaurant")
	fmt.Println("  reviews     List reviews")
	fmt.Println("  edit        Change one of your reviews")
	fmt.Println("  delete      Delete one of your reviews")
	fmt.Println("  history     List the restaurants you picked")
	fmt.Println("")
	fmt.Println("Use 'valgom <command> -h' for more information about a command.")
}
