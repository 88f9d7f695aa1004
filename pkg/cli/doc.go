// Package cli implements the command-line interface for catalogctl.
//
// # Commands
//
// generate - query the provider and write the catalog:
//
//	catalogctl generate [--region REGION] [--profile NAME] [--output FILE] [--allow-empty]
//	catalogctl generate --output -              # write the artifact to stdout
//	catalogctl generate --format yaml -o catalog.yaml
//
// Queries DescribeInstanceTypes with pagination, normalizes every record
// into JSON-safe primitives, and writes a deterministic catalog document
// with provenance metadata. A failed query or an empty result fails the run
// unless --allow-empty opts into a degraded (partial or empty) catalog.
//
// inspect - summarize a previously generated catalog:
//
//	catalogctl inspect --catalog data/instance_types.json
//	catalogctl inspect -c catalog.yaml --keys
//
// # Global Flags
//
//	--debug      Enable debug logging
//	--log-json   Output logs in JSON format
//
// # Exit Codes
//
//	0  Success (including degraded-mode success with --allow-empty)
//	1  Hard failure: query error or empty result without --allow-empty,
//	   or a filesystem error while writing the artifact
//
// All diagnostics go to stderr; stdout carries only the artifact when it is
// the selected destination.
package cli
