package cli

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/cloudmeta/instance-catalog/pkg/logging"
	"github.com/cloudmeta/instance-catalog/pkg/version"
)

// New builds the root catalogctl command.
func New() *cli.Command {
	return &cli.Command{
		Name:    "catalogctl",
		Usage:   "Generate and inspect normalized EC2 instance type catalogs",
		Version: version.String(),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
			&cli.BoolFlag{
				Name:  "log-json",
				Usage: "Output logs in JSON format",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.Setup(cmd.Bool("debug"), cmd.Bool("log-json"))
			// Tag every log line of this invocation with a run id.
			slog.SetDefault(slog.Default().With(slog.String("run_id", uuid.NewString())))
			return ctx, nil
		},
		Commands: []*cli.Command{
			generateCmd(),
			inspectCmd(),
		},
	}
}
