package cli

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/cloudmeta/instance-catalog/pkg/serializer"
)

// parseOutputFormat extracts and validates the output format from CLI flags.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	outFormat := serializer.Format(cmd.String("format"))
	if outFormat.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q, valid formats are: %s",
			outFormat, strings.Join(serializer.SupportedFormats(), ", "))
	}
	return outFormat, nil
}

// describeDestination names the destination for diagnostics.
func describeDestination(path string) string {
	path = strings.TrimSpace(path)
	if path == "" || path == serializer.StdoutURI {
		return "stdout"
	}
	return path
}
