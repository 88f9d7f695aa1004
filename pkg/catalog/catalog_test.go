package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestCatalog_Insert(t *testing.T) {
	c := Catalog{}

	ok := c.Insert(map[string]any{"InstanceType": "t3.micro", "Memory": int64(1024)})
	assert.True(t, ok)
	assert.Len(t, c, 1)
	assert.Equal(t, int64(1024), c["t3.micro"]["Memory"])
}

func TestCatalog_InsertSkipsMalformed(t *testing.T) {
	tests := []struct {
		name string
		rec  map[string]any
	}{
		{"missing identifier", map[string]any{"Memory": int64(1024)}},
		{"empty identifier", map[string]any{"InstanceType": ""}},
		{"nil identifier", map[string]any{"InstanceType": nil}},
		{"non-string identifier", map[string]any{"InstanceType": 42}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Catalog{"m5.large": {"InstanceType": "m5.large"}}
			assert.False(t, c.Insert(tt.rec))
			assert.Len(t, c, 1, "malformed records must not affect valid entries")
		})
	}
}

func TestCatalog_InsertLastWriteWins(t *testing.T) {
	c := Catalog{}
	c.Insert(map[string]any{"InstanceType": "t3.micro", "Generation": "old"})
	c.Insert(map[string]any{"InstanceType": "t3.micro", "Generation": "new"})

	assert.Len(t, c, 1)
	assert.Equal(t, "new", c["t3.micro"]["Generation"])
}

func TestCatalog_Keys(t *testing.T) {
	c := Catalog{}
	for _, id := range []string{"t3.micro", "c5.xlarge", "m5.large", "a1.medium"} {
		c.Insert(map[string]any{"InstanceType": id})
	}

	assert.Equal(t, []string{"a1.medium", "c5.xlarge", "m5.large", "t3.micro"}, c.Keys())
}

func TestCatalog_MarshalYAMLKeyOrder(t *testing.T) {
	c := Catalog{}
	for _, id := range []string{"c5.2xlarge", "c5.large", "c5.12xlarge"} {
		c.Insert(map[string]any{"InstanceType": id, "VCpus": int64(2)})
	}

	raw, err := yaml.Marshal(c)
	require.NoError(t, err)
	out := string(raw)

	// Bytewise order puts c5.12xlarge first ('1' < '2' < 'l'), where the
	// encoder's default map ordering would put c5.2xlarge ahead of it.
	last := -1
	for _, key := range []string{"c5.12xlarge", "c5.2xlarge", "c5.large"} {
		idx := strings.Index(out, key+":")
		require.GreaterOrEqual(t, idx, 0, "missing key %s", key)
		assert.Greater(t, idx, last, "key %s out of order", key)
		last = idx
	}
	assert.Contains(t, out, "VCpus: 2")
}

func TestDocument_MarshalYAMLKeyOrder(t *testing.T) {
	a := &Assembler{Region: "us-east-1", Now: fixedClock}
	cat := Catalog{
		"c5.2xlarge":  {"InstanceType": "c5.2xlarge"},
		"c5.12xlarge": {"InstanceType": "c5.12xlarge"},
	}

	doc, err := a.Assemble(cat, nil)
	require.NoError(t, err)

	raw, err := yaml.Marshal(doc)
	require.NoError(t, err)
	out := string(raw)

	assert.Less(t, strings.Index(out, "c5.12xlarge:"), strings.Index(out, "c5.2xlarge:"))
}
