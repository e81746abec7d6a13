//
// QuartoGo - a Quarto playing engine in GO, written to study minimax search
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package config holds globally available configuration variables which are
// either set by defaults, read from a config file or set by command line
// options.
package config

import (
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
)

// globally available config values.
var (
	// ConfFile holds the path to the used config file (relative to the
	// working directory).
	ConfFile = "./config.toml"

	// LogLevel defines the general log level - can be overwritten by cmd
	// line options or config file.
	LogLevel = 5

	// SearchLogLevel defines the search trace log level.
	SearchLogLevel = 5

	// Settings is the global configuration read in from file.
	Settings conf

	initialized = false
)

type conf struct {
	Log    logConfiguration
	Game   gameConfiguration
	Search searchConfiguration
}

// Setup reads the configuration file and sets defaults for any values it
// does not provide. Safe to call more than once; only the first call has
// an effect.
func Setup() {
	if initialized {
		return
	}

	if _, err := toml.DecodeFile(ConfFile, &Settings); err != nil {
		log.Println("Config file not found. Using defaults. (", err, ")")
	}

	setupLogLvl()
	setupGame()
	setupSearch()
	initialized = true
}

// String prints out the current configuration settings and values. Uses
// reflection to read field names and values without repeating them.
func (settings *conf) String() string {
	var c strings.Builder
	c.WriteString("Game Config:\n")
	writeFields(&c, &settings.Game)
	c.WriteString("\nSearch Config:\n")
	writeFields(&c, &settings.Search)
	return c.String()
}

func writeFields(c *strings.Builder, v interface{}) {
	s := reflect.ValueOf(v).Elem()
	t := s.Type()
	for i := 0; i < s.NumField(); i++ {
		f := s.Field(i)
		c.WriteString(fmt.Sprintf("%-2d: %-22s %-8s = %v\n", i, t.Field(i).Name, f.Type(), f.Interface()))
	}
}
