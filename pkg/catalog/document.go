package catalog

import (
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// ErrNoData reports a run that completed without collecting any instance
// type records. An empty catalog is never accepted silently; the operator
// has to opt in with allow-empty.
var ErrNoData = errors.New("no instance type data was collected")

// Query records the parameters the catalog was generated from.
type Query struct {
	SourceRegion string `json:"source_region" yaml:"source_region"`
}

// Stats summarizes the catalog content. OfferingCount is always zero;
// offerings are not computed by this tool.
type Stats struct {
	InstanceTypeCount int `json:"instance_type_count" yaml:"instance_type_count"`
	OfferingCount     int `json:"offering_count" yaml:"offering_count"`
}

// Offering is a placeholder for the offerings axis of the document. The
// list is always emitted empty.
type Offering struct {
	InstanceType string `json:"InstanceType" yaml:"InstanceType"`
	Location     string `json:"Location" yaml:"Location"`
	LocationType string `json:"LocationType" yaml:"LocationType"`
}

// Document is the persisted catalog artifact. Fields are declared in sorted
// key order so the serialized form has deterministic key ordering at every
// level (nested maps are sorted by the encoders themselves).
type Document struct {
	GeneratedAt   string     `json:"generated_at" yaml:"generated_at"`
	InstanceTypes Catalog    `json:"instance_types" yaml:"instance_types"`
	Offerings     []Offering `json:"offerings" yaml:"offerings"`
	Query         Query      `json:"query" yaml:"query"`
	Stats         Stats      `json:"stats" yaml:"stats"`
}

// Assembler decides whether a run's outcome is acceptable and builds the
// final Document from the accumulated catalog.
type Assembler struct {
	// Region is the source region recorded under the document's query
	// parameters and named in failure diagnostics.
	Region string

	// AllowEmpty accepts a partial or empty catalog as a successful
	// outcome instead of failing the run.
	AllowEmpty bool

	// Now overrides the clock. Nil means time.Now.
	Now func() time.Time
}

// Assemble applies the run outcome policy and, when the run may proceed,
// builds the document. Fetch failure and empty result are two independent
// conditions: either one fails the run unless AllowEmpty is set.
func (a *Assembler) Assemble(cat Catalog, fetchErr error) (*Document, error) {
	if fetchErr != nil {
		if !a.AllowEmpty {
			return nil, fmt.Errorf("failed to query %s: %w", a.Region, fetchErr)
		}
		slog.Error(fmt.Sprintf("failed to query %s", a.Region), slog.String("cause", fetchErr.Error()))
		slog.Warn("continuing with an empty catalog because --allow-empty was set")
	}

	if len(cat) == 0 && !a.AllowEmpty {
		return nil, ErrNoData
	}

	if cat == nil {
		cat = Catalog{}
	}
	now := time.Now
	if a.Now != nil {
		now = a.Now
	}

	return &Document{
		GeneratedAt:   now().UTC().Format(time.RFC3339),
		InstanceTypes: cat,
		Offerings:     []Offering{},
		Query:         Query{SourceRegion: a.Region},
		Stats:         Stats{InstanceTypeCount: len(cat), OfferingCount: 0},
	}, nil
}
