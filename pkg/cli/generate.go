package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/cloudmeta/instance-catalog/pkg/catalog"
	"github.com/cloudmeta/instance-catalog/pkg/collector"
	"github.com/cloudmeta/instance-catalog/pkg/serializer"
)

const (
	// defaultOutputPath is where the catalog lands when no --output is
	// given.
	defaultOutputPath = "data/instance_types.json"

	// defaultRegion is the region queried when no --region is given.
	defaultRegion = "us-east-1"
)

func generateCmd() *cli.Command {
	return &cli.Command{
		Name:    "generate",
		Aliases: []string{"gen"},
		Usage:   "Generate the instance type catalog from the live provider API",
		Description: `Queries DescribeInstanceTypes for the given region, page by page,
normalizes every record into JSON-safe primitives, and writes one catalog
document with provenance metadata and deterministic key ordering.

A query failure or an empty result fails the run with exit code 1 and no
artifact is written. Pass --allow-empty to accept a partial or empty catalog
instead; the run then succeeds and the reduced content is noted on stderr.

# Examples

Write the catalog to the default location:
  catalogctl generate --region us-east-1

Use a named credential profile and a custom destination:
  catalogctl generate --profile ci-readonly --output /tmp/catalog.json

Emit the artifact on stdout:
  catalogctl generate --output -`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   defaultOutputPath,
				Usage:   "Output file path ('-' for stdout); parent directories are created",
			},
			&cli.StringFlag{
				Name:  "region",
				Value: defaultRegion,
				Usage: "Source region for the instance type query",
			},
			&cli.StringFlag{
				Name:  "profile",
				Value: "",
				Usage: "Named credential profile (empty uses the default credential chain)",
			},
			&cli.BoolFlag{
				Name:  "allow-empty",
				Usage: "Allow writing a partial or empty catalog when the provider cannot be queried",
			},
			&cli.StringFlag{
				Name:  "format",
				Value: string(serializer.FormatJSON),
				Usage: "Output format (json, yaml)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			region := cmd.String("region")
			col, err := collector.New(ctx, region, cmd.String("profile"))
			if err != nil {
				return err
			}

			return runGenerate(ctx, col, generateOptions{
				Region:     region,
				Output:     cmd.String("output"),
				Format:     outFormat,
				AllowEmpty: cmd.Bool("allow-empty"),
			})
		},
	}
}

type generateOptions struct {
	Region     string
	Output     string
	Format     serializer.Format
	AllowEmpty bool
}

// runGenerate drives the fetch, assemble, persist pipeline. The assembler
// decides whether the fetch outcome is acceptable before anything touches
// the filesystem, so hard failures never leave an artifact behind.
func runGenerate(ctx context.Context, col collector.Collector, opts generateOptions) error {
	cat, fetchErr := col.Collect(ctx)

	asm := &catalog.Assembler{
		Region:     opts.Region,
		AllowEmpty: opts.AllowEmpty,
	}
	doc, err := asm.Assemble(cat, fetchErr)
	if err != nil {
		return err
	}

	writer, err := serializer.NewFileWriterOrStdout(opts.Format, opts.Output)
	if err != nil {
		return err
	}
	if err := writer.Serialize(ctx, doc); err != nil {
		_ = writer.Close()
		return err
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close output: %w", err)
	}

	slog.Info(fmt.Sprintf("wrote %d instance types to %s",
		doc.Stats.InstanceTypeCount, describeDestination(opts.Output)))
	return nil
}
