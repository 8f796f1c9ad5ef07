package formatter

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"os"
	"sync"
	"unicode/utf8"

	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config holds the parameters for formatting output.
type Config struct {
	LineWidth int            // target line length in fixed width ‘en’s; 0 means unlimited
	Context   *uax11.Context // context for measuring East Asian character widths
}

func (config *Config) normalized() *Config {
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	if config.Context == nil {
		config.Context = uax11.LatinContext
	}
	return config
}

var setupGraphemes sync.Once

// displayWidth returns the number of fixed width positions s will occupy.
//
// ASCII characters count as one position each. uax11 classifies some of them
// (digits, '#', '*') as emoji, which would count them twice, so only runs of
// non-ASCII text are measured by uax11.
func displayWidth(s string, context *uax11.Context) int {
	width, start := 0, -1
	for i := 0; i < len(s); i++ {
		if s[i] < utf8.RuneSelf {
			if start >= 0 {
				width += wideWidth(s[start:i], context)
				start = -1
			}
			width++
		} else if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		width += wideWidth(s[start:], context)
	}
	return width
}

func wideWidth(s string, context *uax11.Context) int {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	return uax11.StringWidth(grapheme.StringFromString(s), context)
}

// ConfigFromTerminal is a simple helper for creating a formatting Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		w, _, err := term.GetSize(fd)
		if err != nil {
			config.LineWidth = 72
		} else if w > 20 {
			config.LineWidth = w - 2
		} else {
			config.LineWidth = 20
		}
	} else {
		config.LineWidth = 72
	}
	T().P("format", "console").Debugf("setting line length to %d en", config.LineWidth)
	return config
}
