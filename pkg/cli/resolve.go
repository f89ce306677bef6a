package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/apkshelf/apkshelf/pkg/cli/config"
	"github.com/apkshelf/apkshelf/pkg/domain/model"
	"github.com/apkshelf/apkshelf/pkg/usecase"
)

func cmdResolve() *cli.Command {
	var (
		githubCfg  config.GitHub
		catalogCfg config.Catalog
		jsonOutput bool
	)

	var flags []cli.Flag
	flags = append(flags, githubCfg.Flags()...)
	flags = append(flags, catalogCfg.Flags()...)
	flags = append(flags, &cli.BoolFlag{
		Name:        "json",
		Usage:       "Print results as JSON",
		Destination: &jsonOutput,
	})

	return &cli.Command{
		Name:    "resolve",
		Aliases: []string{"r"},
		Usage:   "Resolve every target once and print the resulting buttons",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			targets, err := catalogCfg.Load()
			if err != nil {
				return goerr.Wrap(err, "failed to load target catalog")
			}

			releaseClient, err := githubCfg.NewClient()
			if err != nil {
				return goerr.Wrap(err, "failed to create GitHub client")
			}

			board := usecase.NewBoard(
				usecase.NewResolver(releaseClient, usecase.WithConcurrency(catalogCfg.Concurrency)),
				targets,
			)
			board.Refresh(ctx)

			if jsonOutput {
				return printJSON(c.Root().Writer, board.Snapshot())
			}
			return printTable(c.Root().Writer, board.Snapshot())
		},
	}
}

func printJSON(w io.Writer, cards []*model.Card) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cards); err != nil {
		return goerr.Wrap(err, "failed to encode resolution result")
	}
	return nil
}

var (
	outcomeColors = map[model.Outcome]*color.Color{
		model.OutcomeAsset:           color.New(color.FgGreen),
		model.OutcomeNoMatchingAsset: color.New(color.FgYellow),
		model.OutcomeFallback:        color.New(color.FgRed),
	}
	headerColor = color.New(color.Bold)
)

func printTable(w io.Writer, cards []*model.Card) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, headerColor.Sprint("TARGET\tOUTCOME\tLABEL\tHREF"))
	for _, card := range cards {
		outcome := string(card.Outcome)
		if c, ok := outcomeColors[card.Outcome]; ok {
			outcome = c.Sprint(outcome)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", card.Target.ID, outcome, card.Button.Label, card.Button.Href)
	}

	if err := tw.Flush(); err != nil {
		return goerr.Wrap(err, "failed to write resolution table")
	}
	return nil
}
