package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:  "heap_tools",
		Usage: "drive an updatable priority queue from the command line",
		Commands: []*cli.Command{
			{
				Name:      "sort",
				Usage:     "print numbers in priority order",
				ArgsUsage: "[numbers...]",
				Action:    sortNumbers,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "descending",
						Usage: "largest first",
					},
				},
			},
			{
				Name:   "replay",
				Usage:  "run a script of keyed queue operations",
				Action: replayScript,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "file",
						Usage: "script to read instead of stdin",
					},
				},
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
