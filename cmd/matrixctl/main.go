// Command matrixctl applies matrix operations to JSON/YAML document files.
//
//	matrixctl -type int -eval "fill a.json 3 3 5; fill b.json 3 3 4; add a.json b.json c.json; show c.json"
//
// Without -eval, or with -i, commands are read from an interactive prompt.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/evilsocket/islazy/str"
	log "github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

const prompt = "\033[31m»\033[0m "

var (
	elemType    = kingpin.Flag("type", "Element type of the matrices.").Default("float64").Enum("int", "float64")
	evalString  = kingpin.Flag("eval", "List of commands to run, divided by a semicolon.").Short('e').String()
	interactive = kingpin.Flag("interactive", "Open the prompt after -eval.").Short('i').Bool()
	history     = kingpin.Flag("history", "Prompt history file.").Default("/tmp/matrixctl.tmp").String()
	debug       = kingpin.Flag("debug", "Enable debug logs.").Bool()
)

func newDispatcher(kind string, out io.Writer) (dispatcher, error) {
	switch kind {
	case "int":
		return newSession[int](out), nil
	case "float64":
		return newSession[float64](out), nil
	default:
		return nil, fmt.Errorf("%w: element type %q", ErrUsage, kind)
	}
}

// runAll dispatches every ;-separated command in line. It reports whether
// quit was requested and how many commands failed.
func runAll(d dispatcher, line string) (quit bool, failed int) {
	for _, cmd := range str.SplitBy(line, ";") {
		err := d.Dispatch(cmd)
		switch {
		case errors.Is(err, errQuit):
			return true, failed
		case err != nil:
			log.Errorf("%s: %v", cmd, err)
			failed++
		}
	}

	return false, failed
}

func repl(d dispatcher) error {
	reader, err := readline.NewEx(&readline.Config{
		Prompt:          fmt.Sprintf("matrixctl[%s] %s", *elemType, prompt),
		HistoryFile:     *history,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    d.Completers(),
	})
	if err != nil {
		return err
	}
	defer reader.Close()

	for {
		line, err := reader.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				return nil
			}
			continue
		} else if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
		if quit, _ := runAll(d, str.Trim(line)); quit {
			return nil
		}
	}
}

func main() {
	kingpin.Parse()

	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	d, err := newDispatcher(*elemType, os.Stdout)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if *evalString != "" {
		quit, failed := runAll(d, *evalString)
		if quit || !*interactive {
			if failed > 0 {
				os.Exit(1)
			}
			return
		}
	}

	if err := repl(d); err != nil {
		log.Fatalf("%v", err)
	}
}
