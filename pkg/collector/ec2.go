// Package collector fetches instance-type metadata from the EC2 description
// API, one page at a time, and accumulates it into a catalog.
package collector

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/smithy-go"

	"github.com/cloudmeta/instance-catalog/pkg/catalog"
	"github.com/cloudmeta/instance-catalog/pkg/normalize"
	"github.com/cloudmeta/instance-catalog/pkg/record"
)

// EC2Collector retrieves instance-type records via DescribeInstanceTypes.
// Pages are fetched sequentially; each call blocks until the transport
// returns or fails, with no timeout imposed here beyond the SDK defaults.
type EC2Collector struct {
	// Client is the EC2 API surface used for pagination. Injectable for
	// testing.
	Client ec2.DescribeInstanceTypesAPIClient

	// Region is the source region, recorded for diagnostics only; the
	// client itself is already scoped to it.
	Region string
}

// New builds an EC2Collector for the given region. A non-empty profile
// selects a named shared-config credential profile; empty means the default
// credential resolution chain.
func New(ctx context.Context, region, profile string) (*EC2Collector, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
	}
	if profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(profile))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading AWS configuration: %w", err)
	}

	return &EC2Collector{
		Client: ec2.NewFromConfig(cfg),
		Region: region,
	}, nil
}

// Collect drives the paginated retrieval and returns the accumulated
// catalog. Records without a usable identifier are skipped and counted, not
// treated as failures. On a transport or API error the catalog built so far
// is returned together with the error.
func (c *EC2Collector) Collect(ctx context.Context) (catalog.Catalog, error) {
	start := time.Now()
	defer func() {
		collectionDuration.Observe(time.Since(start).Seconds())
	}()

	cat := catalog.Catalog{}
	pages := 0
	skipped := 0

	paginator := ec2.NewDescribeInstanceTypesPaginator(c.Client, &ec2.DescribeInstanceTypesInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			var apiErr smithy.APIError
			if errors.As(err, &apiErr) {
				slog.Debug("describe instance types rejected",
					slog.String("code", apiErr.ErrorCode()),
					slog.String("message", apiErr.ErrorMessage()),
				)
			}
			collectionTotal.WithLabelValues("error").Inc()
			return cat, fmt.Errorf("describing instance types: %w", err)
		}
		pages++
		pagesTotal.Inc()

		for _, info := range page.InstanceTypes {
			rec := normalize.Record(record.FromAPI(info))
			if !cat.Insert(rec) {
				skipped++
				skippedTotal.Inc()
				slog.Debug("skipping record without a usable instance type identifier")
				continue
			}
			recordsTotal.Inc()
		}
	}

	collectionTotal.WithLabelValues("success").Inc()
	if skipped > 0 {
		slog.Info("skipped records without usable identifiers", slog.Int("count", skipped))
	}
	slog.Debug("instance type collection complete",
		slog.String("region", c.Region),
		slog.Int("pages", pages),
		slog.Int("instance_types", len(cat)),
	)

	return cat, nil
}
