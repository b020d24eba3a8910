package location

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testplaceP0 = "You awake to find yourself in a rusty laboratory. Dilapidated equipment surrounds you; your pounding headache is amplified by the lightly swaying fluorescent lights dangling by their frayed cables. Suddenly, a tinny loudspeaker splits the silence..."
	testplaceP1 = "\"This is a test,\" the loudspeaker barked. \"and you have just passed.\""
	testplaceP2 = "What would you like to do now?"
)

const validLocationYAML = `
id: cellar
name: "The Cellar"
text:
  intro:
    - "It is damp."
    - "Something drips."
  exit:
    - "Stairs lead up."
`

func contentDir(t *testing.T) string {
	t.Helper()
	return filepath.Join("..", "..", "..", "content", "locations")
}

func writeFile(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0644))
}

func TestLoader_LoadTestplaceJSON(t *testing.T) {
	loc, err := NewLoader(contentDir(t)).Load("testplace")
	require.NoError(t, err)

	assert.Equal(t, "testplace", loc.ID)
	assert.Equal(t, "Test Place", loc.Name)
	intro := loc.Paragraphs("intro")
	require.Len(t, intro, 3)
	assert.Equal(t, testplaceP0, intro[0])
	assert.Equal(t, testplaceP1, intro[1])
	assert.Equal(t, testplaceP2, intro[2])
}

func TestLocation_Paragraph(t *testing.T) {
	loc, err := NewLoader(contentDir(t)).Load("testplace")
	require.NoError(t, err)

	p, ok := loc.Paragraph("intro", 1)
	assert.True(t, ok)
	assert.Equal(t, testplaceP1, p)

	_, ok = loc.Paragraph("intro", 3)
	assert.False(t, ok)
	_, ok = loc.Paragraph("intro", -1)
	assert.False(t, ok)
	_, ok = loc.Paragraph("outro", 0)
	assert.False(t, ok)
	assert.Nil(t, loc.Paragraphs("outro"))
}

func TestLoadFromBytes_YAML(t *testing.T) {
	loc, err := LoadFromBytes([]byte(validLocationYAML))
	require.NoError(t, err)
	assert.Equal(t, "cellar", loc.ID)
	assert.Equal(t, []string{"It is damp.", "Something drips."}, loc.Paragraphs("intro"))
	assert.Len(t, loc.Text, 2)
}

func TestLoadFromBytes_NoTextYieldsEmptyMap(t *testing.T) {
	loc, err := LoadFromBytes([]byte(`{"id": "void", "name": "The Void"}`))
	require.NoError(t, err)
	assert.NotNil(t, loc.Text)
	_, ok := loc.Paragraph("intro", 0)
	assert.False(t, ok)
}

func TestLoadFromBytes_Invalid(t *testing.T) {
	cases := map[string]string{
		"malformed":  `{"id": "x", "name": `,
		"missing id": `{"name": "Nowhere"}`,
		"no name":    `{"id": "nowhere"}`,
		"bad text":   `{"id": "x", "name": "X", "text": {"intro": "not a list"}}`,
		"escape id":  `{"id": "../etc", "name": "X"}`,
	}
	for name, body := range cases {
		_, err := LoadFromBytes([]byte(body))
		assert.Error(t, err, name)
	}
}

func TestLoader_FallsBackToYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "cellar.yaml", validLocationYAML)

	loc, err := NewLoader(dir).Load("cellar")
	require.NoError(t, err)
	assert.Equal(t, "The Cellar", loc.Name)
}

func TestLoader_NotFound(t *testing.T) {
	_, err := NewLoader(t.TempDir()).Load("missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoader_RejectsUnsafeID(t *testing.T) {
	l := NewLoader(t.TempDir())
	for _, id := range []string{"", "../secret", "a/b", `a\b`} {
		_, err := l.Load(id)
		assert.Error(t, err, "id %q", id)
	}
}

func TestLoader_IDMismatch(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "attic.json", `{"id": "cellar", "name": "The Cellar"}`)

	_, err := NewLoader(dir).Load("attic")
	assert.Error(t, err)
}

func TestLoader_LoadAll(t *testing.T) {
	locs, err := NewLoader(contentDir(t)).LoadAll()
	require.NoError(t, err)
	assert.Contains(t, locs, "testplace")
	assert.Contains(t, locs, "bog_edge")
}

func TestLoader_LoadAllSkipsOtherFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "cellar.yml", validLocationYAML)
	writeFile(t, dir, "README.md", "# notes")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.json"), 0755))

	locs, err := NewLoader(dir).LoadAll()
	require.NoError(t, err)
	assert.Len(t, locs, 1)
}

func TestLoader_LoadAllDuplicateID(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "cellar.yaml", validLocationYAML)
	writeFile(t, dir, "cellar2.yaml", validLocationYAML)

	_, err := NewLoader(dir).LoadAll()
	assert.Error(t, err)
}

func TestNewLoader_EmptyDirPanics(t *testing.T) {
	assert.Panics(t, func() { NewLoader("") })
}
