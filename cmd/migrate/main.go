package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli"

	"booklisting-backend/pkg/container"
	"booklisting-backend/pkg/logger"
)

type metadata struct {
	open func() (*container.Container, error)
	w    io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero"

var errNotConfirmed = errors.New("migration reassigns every seller code; rerun with --confirm")

func main() {
	_ = godotenv.Load()
	logger.Init(os.Getenv("APP_ENV"), os.Getenv("LOG_LEVEL"))

	app := newApp(&metadata{
		open: container.NewContainer,
		w:    os.Stdout,
	})
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(m *metadata) *cli.App {
	app := cli.NewApp()
	app.Name = "listing-migrate"
	app.Usage = "maintain seller codes in the listing store"
	app.Version = version
	app.HideVersion = true
	app.Writer = m.w
	app.ErrWriter = os.Stderr
	app.Metadata = map[string]interface{}{"config": m}

	app.Commands = []cli.Command{
		{
			Name:  "run",
			Usage: "regroup listings by contact and issue fresh seller codes",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "confirm",
					Usage: " required; every previously issued code stops working",
				},
			},
			Action: runMigrate,
		},
		{
			Name:   "sellers",
			Usage:  "print the seller registry",
			Action: runSellers,
		},
		{
			Name:   "stats",
			Usage:  "print listing statistics",
			Action: runStats,
		},
	}
	return app
}

func withContainer(c *cli.Context, fn func(*container.Container) (interface{}, error)) error {
	m := c.App.Metadata["config"].(*metadata)

	appContainer, err := m.open()
	if err != nil {
		return err
	}
	defer appContainer.Cleanup()

	out, err := fn(appContainer)
	if err != nil {
		return err
	}
	return printJson(m.w, out)
}

func runMigrate(c *cli.Context) error {
	if !c.Bool("confirm") {
		return errNotConfirmed
	}
	return withContainer(c, func(app *container.Container) (interface{}, error) {
		res, err := app.ListingService.Migrate(context.Background())
		if err != nil {
			return nil, err
		}
		log.Info().Int("sellers", len(res.Sellers)).Msg(res.Message)
		return res, nil
	})
}

func runSellers(c *cli.Context) error {
	return withContainer(c, func(app *container.Container) (interface{}, error) {
		return app.ListingService.GetSellers(context.Background())
	})
}

func runStats(c *cli.Context) error {
	return withContainer(c, func(app *container.Container) (interface{}, error) {
		return app.ListingService.GetStats(context.Background())
	})
}

func printJson(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
