package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/redackistan/metro/builder"
	"github.com/redackistan/metro/core"
	"github.com/redackistan/metro/fare"
	"github.com/redackistan/metro/itinerary"
	"github.com/redackistan/metro/render"
	"github.com/redackistan/metro/route"
)

func main() {
	if os.Getenv("METRO_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	if os.Getenv("METRO_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	app := &cli.App{
		Name:        "metro",
		Usage:       "Redackistan metro route planner",
		Description: "Finds shortest routes on the city metro, prints itineraries and fares",

		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "network",
				Usage: "path to a YAML network spec (defaults to the built-in city dataset)",
			},
		},

		Commands: []*cli.Command{
			routeCommand(),
			fareCommand(),
			matrixCommand(),
			stationsCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Send()
	}
}

// loadNetwork builds the network from --network, or the embedded dataset.
func loadNetwork(c *cli.Context) (*core.Network, error) {
	spec := builder.Redackistan()
	if path := c.String("network"); path != "" {
		loaded, err := builder.LoadFile(path)
		if err != nil {
			return nil, err
		}
		log.Debug().Str("path", path).Msg("Loaded custom network spec")
		spec = loaded
	}

	return spec.Build()
}

func routeCommand() *cli.Command {
	return &cli.Command{
		Name:      "route",
		Usage:     "print the itinerary and fare between two stations",
		ArgsUsage: "<from> <to>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return cli.Exit("usage: metro route <from> <to>", 2)
			}
			n, err := loadNetwork(c)
			if err != nil {
				return err
			}
			from, to := core.NormalizeID(c.Args().Get(0)), core.NormalizeID(c.Args().Get(1))

			path, err := route.Path(n, from, to)
			if err != nil {
				return exitStationError(err)
			}
			actions, err := itinerary.FromPath(path, n.Memberships())
			if err != nil {
				return cli.Exit(fmt.Sprintf("cannot compile itinerary: %v", err), 1)
			}
			cost, err := fare.Cost(n, from, to)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}

			if err = render.Route(os.Stdout, n, actions); err != nil {
				return err
			}
			fmt.Println()
			fmt.Println(render.Fare(cost))

			return nil
		},
	}
}

func fareCommand() *cli.Command {
	return &cli.Command{
		Name:      "fare",
		Usage:     "print the fare between two stations",
		ArgsUsage: "<from> <to>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return cli.Exit("usage: metro fare <from> <to>", 2)
			}
			n, err := loadNetwork(c)
			if err != nil {
				return err
			}
			cost, err := fare.Cost(n, c.Args().Get(0), c.Args().Get(1))
			if err != nil {
				return exitStationError(err)
			}
			fmt.Println(render.Fare(cost))

			return nil
		},
	}
}

func matrixCommand() *cli.Command {
	return &cli.Command{
		Name:  "matrix",
		Usage: "print the all-pairs fare table as CSV",
		Action: func(c *cli.Context) error {
			n, err := loadNetwork(c)
			if err != nil {
				return err
			}
			m, err := fare.Table(n)
			if err != nil {
				return err
			}

			return m.WriteCSV(os.Stdout)
		},
	}
}

func stationsCommand() *cli.Command {
	return &cli.Command{
		Name:  "stations",
		Usage: "list every station with its codes and lines",
		Action: func(c *cli.Context) error {
			n, err := loadNetwork(c)
			if err != nil {
				return err
			}
			for _, id := range n.Stations() {
				lines := n.Lines(id)
				names := make([]string, len(lines))
				for i, l := range lines {
					names[i] = render.Line(l)
				}
				fmt.Printf("%s - %s\n", render.Station(n, id), strings.Join(names, ", "))
			}

			return nil
		},
	}
}

// exitStationError maps lookup failures to a red one-line diagnostic,
// keeping genuine faults on the normal error path.
func exitStationError(err error) error {
	switch {
	case errors.Is(err, route.ErrStationNotFound),
		errors.Is(err, route.ErrNoPath),
		errors.Is(err, fare.ErrInvalidRoute):
		return cli.Exit(color.New(color.FgRed, color.Bold).Sprintf("!!! %v", err), 1)
	}

	return err
}
