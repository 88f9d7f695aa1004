package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureLogs routes the default logger into a buffer for the duration of
// the test so emitted diagnostics can be asserted.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return buf
}

var fixedClock = func() time.Time {
	return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
}

func TestAssembler_FetchFailureWithoutAllowEmpty(t *testing.T) {
	a := &Assembler{Region: "us-east-1", Now: fixedClock}
	partial := Catalog{"t3.micro": {"InstanceType": "t3.micro"}}

	doc, err := a.Assemble(partial, errors.New("connection reset"))
	require.Error(t, err)
	assert.Nil(t, doc, "no document may be produced on a hard failure")
	assert.Contains(t, err.Error(), "failed to query us-east-1")
	assert.Contains(t, err.Error(), "connection reset")
}

func TestAssembler_FetchFailureDegradedMode(t *testing.T) {
	logs := captureLogs(t)
	a := &Assembler{Region: "eu-west-1", AllowEmpty: true, Now: fixedClock}

	doc, err := a.Assemble(Catalog{}, errors.New("ExpiredToken"))
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Empty(t, doc.InstanceTypes)
	assert.Equal(t, 0, doc.Stats.InstanceTypeCount)
	assert.Equal(t, "eu-west-1", doc.Query.SourceRegion)

	out := logs.String()
	assert.Contains(t, out, "failed to query eu-west-1")
	assert.Contains(t, out, "ExpiredToken")
	assert.Contains(t, out, "continuing with an empty catalog because --allow-empty was set")
}

func TestAssembler_EmptyWithoutAllowEmpty(t *testing.T) {
	a := &Assembler{Region: "us-east-1", Now: fixedClock}

	doc, err := a.Assemble(Catalog{}, nil)
	assert.Nil(t, doc)
	assert.ErrorIs(t, err, ErrNoData)

	doc, err = a.Assemble(nil, nil)
	assert.Nil(t, doc)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestAssembler_EmptyWithAllowEmpty(t *testing.T) {
	a := &Assembler{Region: "us-east-1", AllowEmpty: true, Now: fixedClock}

	doc, err := a.Assemble(nil, nil)
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.NotNil(t, doc.InstanceTypes, "instance_types must serialize as {} not null")
	assert.Equal(t, 0, doc.Stats.InstanceTypeCount)
}

func TestAssembler_Success(t *testing.T) {
	a := &Assembler{Region: "us-east-1", Now: fixedClock}
	cat := Catalog{
		"t3.micro": {"InstanceType": "t3.micro"},
		"m5.large": {"InstanceType": "m5.large"},
	}

	doc, err := a.Assemble(cat, nil)
	require.NoError(t, err)

	assert.Equal(t, "2026-01-02T03:04:05Z", doc.GeneratedAt)
	assert.True(t, strings.HasSuffix(doc.GeneratedAt, "Z"))
	assert.Equal(t, 2, doc.Stats.InstanceTypeCount)
	assert.Equal(t, 0, doc.Stats.OfferingCount)
	assert.Equal(t, []Offering{}, doc.Offerings)
	assert.Equal(t, "us-east-1", doc.Query.SourceRegion)
}

func TestDocument_MarshalShape(t *testing.T) {
	a := &Assembler{Region: "us-east-1", Now: fixedClock}
	cat := Catalog{
		"t3.micro": {"InstanceType": "t3.micro", "VCpus": int64(2)},
		"m5.large": {"InstanceType": "m5.large", "VCpus": int64(2)},
	}

	doc, err := a.Assemble(cat, nil)
	require.NoError(t, err)

	raw, err := json.MarshalIndent(doc, "", "  ")
	require.NoError(t, err)
	out := string(raw)

	// Top-level keys in sorted order.
	order := []string{`"generated_at"`, `"instance_types"`, `"offerings"`, `"query"`, `"stats"`}
	last := -1
	for _, key := range order {
		idx := strings.Index(out, key)
		require.GreaterOrEqual(t, idx, 0, "missing key %s", key)
		assert.Greater(t, idx, last, "key %s out of order", key)
		last = idx
	}

	// Identifier keys sorted lexicographically by the encoder.
	assert.Less(t, strings.Index(out, `"m5.large"`), strings.Index(out, `"t3.micro"`))
	assert.Contains(t, out, `"offerings": []`)
	assert.Contains(t, out, `"offering_count": 0`)
}
