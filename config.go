package testppt

import "log"

const (
	// Filename is the name of the generated fixture.
	Filename = "sample.pptx"
	// Banner is the confirmation printed after a successful run.
	Banner = "Created test presentation at: %s\n"
)

type Config struct {
	DebugMode bool
}

func (c *Config) debugf(format string, v ...any) {
	if c != nil && c.DebugMode {
		log.Printf(format, v...)
	}
}
