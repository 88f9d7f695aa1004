package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/cloudmeta/instance-catalog/pkg/catalog"
	"github.com/cloudmeta/instance-catalog/pkg/serializer"
)

func inspectCmd() *cli.Command {
	return &cli.Command{
		Name:  "inspect",
		Usage: "Summarize a previously generated catalog document",
		Description: `Loads a catalog document and prints its provenance and statistics.

# Examples

  catalogctl inspect --catalog data/instance_types.json
  catalogctl inspect -c catalog.yaml --keys`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "catalog",
				Aliases:  []string{"c"},
				Required: true,
				Usage:    "Path to a catalog document (json or yaml)",
			},
			&cli.BoolFlag{
				Name:  "keys",
				Usage: "Also list the instance type identifiers, one per line",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			path := cmd.String("catalog")

			reader, err := serializer.NewFileReader(serializer.FormatFromPath(path), path)
			if err != nil {
				return err
			}
			defer func() {
				if closeErr := reader.Close(); closeErr != nil {
					slog.Warn("failed to close catalog file", slog.String("error", closeErr.Error()))
				}
			}()

			var doc catalog.Document
			if err := reader.Deserialize(&doc); err != nil {
				return err
			}

			fmt.Printf("generated at:   %s\n", doc.GeneratedAt)
			fmt.Printf("source region:  %s\n", doc.Query.SourceRegion)
			fmt.Printf("instance types: %d\n", doc.Stats.InstanceTypeCount)
			fmt.Printf("offerings:      %d\n", doc.Stats.OfferingCount)

			if doc.Stats.InstanceTypeCount != len(doc.InstanceTypes) {
				slog.Warn("stats do not match catalog content",
					slog.Int("instance_type_count", doc.Stats.InstanceTypeCount),
					slog.Int("entries", len(doc.InstanceTypes)),
				)
			}

			if cmd.Bool("keys") {
				for _, id := range doc.InstanceTypes.Keys() {
					fmt.Println(id)
				}
			}
			return nil
		},
	}
}
