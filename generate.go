package testppt

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/brandquad/testppt/pptx"
)

const (
	deckTitle    = "Test Presentation"
	deckSubtitle = "Created by file2ai"
	contentTitle = "Sample Content"
	contentBody  = "This is a test slide"
)

// Bullets are literal text; consumers match these strings exactly.
var contentBullets = []string{
	"• Bullet point 1",
	"• Bullet point 2",
}

// Build assembles the fixture deck: a title slide and a title-and-content
// slide with fixed text.
func Build() (*pptx.Deck, error) {
	deck := pptx.New()

	slide, err := deck.AddSlide(deck.Layouts()[0])
	if err != nil {
		return nil, err
	}
	title, err := slide.Title()
	if err != nil {
		return nil, err
	}
	subtitle, err := slide.Placeholder(1)
	if err != nil {
		return nil, err
	}
	title.SetText(deckTitle)
	subtitle.SetText(deckSubtitle)

	slide, err = deck.AddSlide(deck.Layouts()[1])
	if err != nil {
		return nil, err
	}
	if title, err = slide.Title(); err != nil {
		return nil, err
	}
	body, err := slide.Placeholder(1)
	if err != nil {
		return nil, err
	}
	title.SetText(contentTitle)
	body.SetText(contentBody)
	for _, bullet := range contentBullets {
		body.AddParagraph().SetText(bullet)
	}

	return deck, nil
}

// OutputDir returns the directory holding the running executable. When the
// executable lives under the system temp dir, as binaries built by `go run`
// do, sourceDir is returned instead so the fixture does not land in the
// build cache. An empty sourceDir disables the fallback.
func OutputDir(sourceDir string) (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", err
	}
	return outputDir(exe, tempDir(), sourceDir), nil
}

func tempDir() string {
	tmp := os.TempDir()
	if resolved, err := filepath.EvalSymlinks(tmp); err == nil {
		return resolved
	}
	return tmp
}

func outputDir(exe, tmp, sourceDir string) string {
	dir := filepath.Dir(exe)
	if sourceDir == "" {
		return dir
	}
	rel, err := filepath.Rel(tmp, dir)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return dir
	}
	return sourceDir
}

// Generate writes the fixture to dir/sample.pptx, replacing any existing
// file, and returns its path.
func Generate(dir string, c *Config) (string, error) {
	st := time.Now()
	c.debugf("[>] Building %s", Filename)

	deck, err := Build()
	if err != nil {
		return "", err
	}

	output := filepath.Join(dir, Filename)
	c.debugf("Output: %s", output)

	if err = deck.SaveFile(output); err != nil {
		return "", err
	}

	c.debugf("[<] Saved %d slides in %s", len(deck.Slides()), time.Since(st))
	return output, nil
}
