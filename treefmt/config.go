package treefmt

import (
	"os"

	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config controls tree formatting.
type Config struct {
	Color         bool           // colorize edges (console output)
	MaxLabelWidth int            // truncate labels wider than this, 0 means unlimited
	Indent        int            // columns per tree level, at least 2
	Context       *uax11.Context // for measuring label widths; nil means Latin
}

// DefaultIndent is the indentation per tree level.
const DefaultIndent = 3

func (cfg *Config) normalized() Config {
	var c Config
	if cfg != nil {
		c = *cfg
	}
	if c.Indent < 2 {
		c.Indent = DefaultIndent
	}
	if c.MaxLabelWidth < 0 {
		c.MaxLabelWidth = 0
	}
	if c.Context == nil {
		c.Context = uax11.LatinContext
	}
	return c
}

// ConfigFromTerminal creates a formatting Config for stdout. If stdout is a
// terminal, edges are colored and labels are limited to a third of the
// terminal width.
func ConfigFromTerminal() *Config {
	config := &Config{Indent: DefaultIndent, Context: uax11.ContextFromEnvironment()}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		config.Color = true
		if w, _, err := term.GetSize(fd); err == nil && w > 30 {
			config.MaxLabelWidth = w / 3
		} else {
			config.MaxLabelWidth = 10
		}
	}
	tracer().Debugf("tree format: color=%v, max label width %d", config.Color, config.MaxLabelWidth)
	return config
}
