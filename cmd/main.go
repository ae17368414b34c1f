package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"

	"github.com/brandquad/testppt"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	DebugMode bool `envconfig:"FIXTURE_DEBUG" default:"false"`
}

func (c Config) MakeFixtureConfig() *testppt.Config {
	return &testppt.Config{
		DebugMode: c.DebugMode,
	}
}

func run(stdout io.Writer, dir string, config *testppt.Config) error {
	output, err := testppt.Generate(dir, config)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(stdout, testppt.Banner, output)
	return err
}

// sourceDir is the directory of this file at build time.
func sourceDir() string {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return ""
	}
	return filepath.Dir(file)
}

var outputDir = func() (string, error) {
	return testppt.OutputDir(sourceDir())
}

// loadConfig never fails: a malformed FIXTURE_DEBUG falls back to the
// defaults and is only reported when DEBUG is set.
func loadConfig() *testppt.Config {
	_, debug := os.LookupEnv("DEBUG")

	var c Config
	if err := envconfig.Process("", &c); err != nil {
		if debug {
			log.Println(err)
		}
		c = Config{}
	}

	config := c.MakeFixtureConfig()
	if debug {
		config.DebugMode = true
	}
	return config
}

// main writes sample.pptx next to the executable. Under `go run` the
// executable sits in the build cache, so the file goes to the cmd source
// directory instead.
func main() {

	config := loadConfig()

	dir, err := outputDir()
	if err != nil {
		log.Fatalln(err)
	}

	if err = run(os.Stdout, dir, config); err != nil {
		log.Fatalln(err)
	}
}
