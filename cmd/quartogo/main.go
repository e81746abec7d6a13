/*
 * QuartoGo - a Quarto playing engine in GO, written to study minimax search
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package main

import (
	"flag"
	"os"
	"runtime"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/QuartoGo/internal/config"
	"github.com/frankkopp/QuartoGo/internal/game"
	"github.com/frankkopp/QuartoGo/internal/logging"
	"github.com/frankkopp/QuartoGo/internal/search"
)

const appVersion = "1.0.0"

var out = message.NewPrinter(language.English)

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "info", "standard log level\n(critical|error|warning|notice|info|debug)")
	searchLogLvl := flag.String("searchloglvl", "", "search log level\n(critical|error|warning|notice|info|debug)")
	seed := flag.Int64("seed", 0, "seed for the engine's random number generator\n(0 leaves the config file's setting, which defaults to seeding from wall-clock time)")
	advanced := flag.Bool("advanced", false, "play with the advanced 2x2 block win rule")
	whiteHuman := flag.Bool("p1human", false, "player 1 (first placer) is a human player")
	blackHuman := flag.Bool("p2human", false, "player 2 (first giver) is a human player")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile of the game to ./cpu.pprof")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	// this needs to be set before config.Setup() is called, otherwise the
	// default will be used.
	config.ConfFile = *configFile
	config.Setup()

	// command line options overwrite config file or defaults
	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	if lvl, found := config.LogLevels[*searchLogLvl]; found {
		config.SearchLogLevel = lvl
	}
	if *seed != 0 {
		config.Settings.Game.RandomSeed = *seed
	}
	if *advanced {
		config.Settings.Game.Advanced = true
	}

	// resetting log level on the standard log - required as most packages
	// include the standard logger as a global var and therefore even before
	// main() is called. These loggers start with the default log level and
	// must be reset to the actual level required.
	logging.GetLog()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	p0 := newPlayer(0, *whiteHuman)
	p1 := newPlayer(1, *blackHuman)

	g := game.NewGame(p0, p1)
	out.Println(g.Board())
	g.Run(out)
}

func newPlayer(index int, human bool) game.Player {
	if human {
		return game.NewHumanPlayer(index, "", game.NewHuman())
	}
	return game.NewAIPlayer(index, "", search.NewEngine())
}

func printVersionInfo() {
	out.Printf("QuartoGo %s\n", appVersion)
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	out.Printf("  Number of Goroutines: %d\n", runtime.NumGoroutine())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
