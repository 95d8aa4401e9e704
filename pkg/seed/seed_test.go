package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSeed = `
sets:
  - name: Roman History
    description: Key dates of the late Republic
    discussion_prompt: Prefer primary sources.
    points:
      - content: Caesar crossed the Rubicon in 49 BC
        context: Triggered the civil war
      - content: Augustus became the first emperor in 27 BC
  - name: Chemistry Basics
    points:
      - content: Water boils at 100 C at sea level
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(sampleSeed))
	require.NoError(t, err)
	require.Len(t, f.Sets, 2)

	first := f.Sets[0]
	assert.Equal(t, "Roman History", first.Name)
	assert.Equal(t, "Prefer primary sources.", first.DiscussionPrompt)
	require.Len(t, first.Points, 2)
	assert.Equal(t, "Triggered the civil war", first.Points[0].Context)
	assert.Empty(t, first.Points[1].Context)

	assert.Empty(t, f.Sets[1].Description)
}

func TestParseRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"empty document":  "",
		"no sets":         "sets: []",
		"nameless set":    "sets:\n  - description: x",
		"empty content":   "sets:\n  - name: A\n    points:\n      - content: \"  \"",
		"malformed yaml":  "sets: [",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(content))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleSeed), 0o644))

	f, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, f.Sets, 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
