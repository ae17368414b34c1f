package testppt

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/brandquad/testppt/internal/pptxtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	deck, err := Build()
	require.NoError(t, err)

	slides := deck.Slides()
	require.Len(t, slides, 2)
	assert.Equal(t, "Title Slide", slides[0].Layout().Name)
	assert.Equal(t, "Title and Content", slides[1].Layout().Name)

	title, err := slides[0].Title()
	require.NoError(t, err)
	assert.Equal(t, "Test Presentation", title.Text())

	body, err := slides[1].Placeholder(1)
	require.NoError(t, err)
	assert.Len(t, body.Paragraphs(), 3)
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()

	output, err := Generate(dir, &Config{})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "sample.pptx"), output)

	info, err := os.Stat(output)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())

	p, err := pptxtest.Open(output)
	require.NoError(t, err)
	require.Len(t, p.Slides, 2)

	s1 := p.Slides[0]
	assert.Equal(t, "Title Slide", s1.Layout)
	title, ok := s1.Title()
	require.True(t, ok)
	assert.Equal(t, "Test Presentation", title.Text())
	subtitle, ok := s1.Placeholder(1)
	require.True(t, ok)
	assert.Equal(t, "Created by file2ai", subtitle.Text())

	s2 := p.Slides[1]
	assert.Equal(t, "Title and Content", s2.Layout)
	title, ok = s2.Title()
	require.True(t, ok)
	assert.Equal(t, "Sample Content", title.Text())
	body, ok := s2.Placeholder(1)
	require.True(t, ok)
	assert.Equal(t, []string{
		"This is a test slide",
		"• Bullet point 1",
		"• Bullet point 2",
	}, body.Paragraphs)
}

func TestGenerateTwiceIsIdempotent(t *testing.T) {
	dir := t.TempDir()

	output, err := Generate(dir, nil)
	require.NoError(t, err)
	first, err := os.ReadFile(output)
	require.NoError(t, err)

	output, err = Generate(dir, &Config{DebugMode: true})
	require.NoError(t, err)
	second, err := os.ReadFile(output)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateOverwritesExisting(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, Filename)
	require.NoError(t, os.WriteFile(existing, []byte("stale"), 0644))

	output, err := Generate(dir, nil)
	require.NoError(t, err)
	assert.Equal(t, existing, output)

	p, err := pptxtest.Open(output)
	require.NoError(t, err)
	assert.Len(t, p.Slides, 2)
}

func TestGenerateUnwritableDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "does-not-exist")

	output, err := Generate(dir, nil)
	assert.Error(t, err)
	assert.Empty(t, output)
	assert.NoFileExists(t, filepath.Join(dir, Filename))
}

func TestOutputDir(t *testing.T) {
	dir, err := OutputDir("")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestOutputDirFallback(t *testing.T) {
	tmp := filepath.Join("/", "tmp")
	cases := []struct {
		name      string
		exe       string
		sourceDir string
		want      string
	}{
		{"installed binary", "/usr/local/bin/gen", "/src/cmd", "/usr/local/bin"},
		{"go run build", "/tmp/go-build123/b001/exe/gen", "/src/cmd", "/src/cmd"},
		{"binary directly in tmp", "/tmp/gen", "/src/cmd", "/src/cmd"},
		{"sibling of tmp", "/tmpfiles/gen", "/src/cmd", "/tmpfiles"},
		{"no fallback", "/tmp/go-build123/b001/exe/gen", "", "/tmp/go-build123/b001/exe"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, outputDir(tc.exe, tmp, tc.sourceDir))
		})
	}
}
