package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/fixmat/docfile"
	"github.com/katalvlaran/fixmat/matrix"

	"github.com/chzyer/readline"
	"github.com/dustin/go-humanize"
	"github.com/evilsocket/islazy/tui"
	log "github.com/sirupsen/logrus"
)

var (
	// ErrUsage is returned for unknown commands and malformed arguments.
	ErrUsage = errors.New("usage")
	// errQuit asks the prompt loop to stop.
	errQuit = errors.New("quit")
)

type handlerCb func(args []string) error

type handler struct {
	Parser      *regexp.Regexp
	Completer   *readline.PrefixCompleter
	Name        string
	Mnemonic    string
	Description string
	Callback    handlerCb
}

// dispatcher hides the element type chosen on the command line.
type dispatcher interface {
	Dispatch(cmd string) error
	Completers() *readline.PrefixCompleter
}

// session runs commands over matrices of one element type.
type session[T matrix.Element] struct {
	out      io.Writer
	handlers []handler
}

func newSession[T matrix.Element](out io.Writer) *session[T] {
	s := &session[T]{out: out}
	s.handlers = []handler{
		{
			Name:        "help",
			Mnemonic:    "help",
			Completer:   readline.PcItem("help"),
			Description: "Show the available commands and their descriptions.",
			Callback:    s.help,
		},
		{
			Name:        "quit",
			Mnemonic:    "quit",
			Completer:   readline.PcItem("quit"),
			Description: "Leave the prompt.",
			Callback:    func([]string) error { return errQuit },
		},
		{
			Name:        "fill",
			Parser:      regexp.MustCompile(`(?i)^fill\s+(\S+)\s+(\d+)\s+(\d+)\s+(\S+)$`),
			Mnemonic:    "fill <out> <rows> <cols> <value>",
			Completer:   readline.PcItem("fill"),
			Description: "Write a rows×cols matrix filled with value.",
			Callback:    s.fill,
		},
		{
			Name:        "add",
			Parser:      regexp.MustCompile(`(?i)^add\s+(\S+)\s+(\S+)\s+(\S+)$`),
			Mnemonic:    "add <a> <b> <out>",
			Completer:   readline.PcItem("add"),
			Description: "Write the element-wise sum a + b.",
			Callback:    s.binary(matrix.Add[T]),
		},
		{
			Name:        "sub",
			Parser:      regexp.MustCompile(`(?i)^sub\s+(\S+)\s+(\S+)\s+(\S+)$`),
			Mnemonic:    "sub <a> <b> <out>",
			Completer:   readline.PcItem("sub"),
			Description: "Write the element-wise difference a - b.",
			Callback:    s.binary(matrix.Sub[T]),
		},
		{
			Name:        "scale",
			Parser:      regexp.MustCompile(`(?i)^scale\s+(\S+)\s+(\S+)\s+(\S+)$`),
			Mnemonic:    "scale <a> <s> <out>",
			Completer:   readline.PcItem("scale"),
			Description: "Write a with every element multiplied by s.",
			Callback:    s.scalar(matrix.Scale[T]),
		},
		{
			Name:        "shift",
			Parser:      regexp.MustCompile(`(?i)^shift\s+(\S+)\s+(\S+)\s+(\S+)$`),
			Mnemonic:    "shift <a> <s> <out>",
			Completer:   readline.PcItem("shift"),
			Description: "Write a with s added to every element.",
			Callback:    s.scalar(matrix.Shift[T]),
		},
		{
			Name:        "transpose",
			Parser:      regexp.MustCompile(`(?i)^transpose\s+(\S+)\s+(\S+)$`),
			Mnemonic:    "transpose <a> <out>",
			Completer:   readline.PcItem("transpose"),
			Description: "Write the transpose of a.",
			Callback:    s.transpose,
		},
		{
			Name:        "eq",
			Parser:      regexp.MustCompile(`(?i)^eq\s+(\S+)\s+(\S+)$`),
			Mnemonic:    "eq <a> <b>",
			Completer:   readline.PcItem("eq"),
			Description: "Print whether a and b are equal.",
			Callback:    s.eq,
		},
		{
			Name:        "show",
			Parser:      regexp.MustCompile(`(?i)^show\s+(\S+)$`),
			Mnemonic:    "show <a>",
			Completer:   readline.PcItem("show"),
			Description: "Print a row by row.",
			Callback:    s.show,
		},
	}

	return s
}

// Dispatch runs a single command line.
func (s *session[T]) Dispatch(cmd string) error {
	cmd = strings.TrimSpace(cmd)
	fields := strings.Fields(cmd)
	if len(fields) == 0 {
		return fmt.Errorf("%w: empty command", ErrUsage)
	}
	name := fields[0]
	for _, h := range s.handlers {
		if !strings.EqualFold(h.Name, name) {
			continue
		}
		args := []string{}
		if h.Parser != nil {
			result := h.Parser.FindStringSubmatch(cmd)
			if result == nil {
				return fmt.Errorf("%w: %s", ErrUsage, h.Mnemonic)
			}
			args = result[1:]
		} else if len(fields) > 1 {
			return fmt.Errorf("%w: %s", ErrUsage, h.Mnemonic)
		}
		log.Debugf("dispatch %s %v", h.Name, args)

		return h.Callback(args)
	}

	return fmt.Errorf("%w: command not found: %s", ErrUsage, cmd)
}

// Completers returns the prompt's prefix completer.
func (s *session[T]) Completers() *readline.PrefixCompleter {
	tmp := []readline.PrefixCompleterInterface{}
	for _, h := range s.handlers {
		if h.Completer != nil {
			tmp = append(tmp, h.Completer)
		}
	}

	return readline.NewPrefixCompleter(tmp...)
}

func (s *session[T]) help([]string) error {
	rows := [][]string{}
	for _, h := range s.handlers {
		rows = append(rows, []string{h.Mnemonic, h.Description})
	}
	tui.Table(s.out, []string{"command", "description"}, rows)

	return nil
}

func (s *session[T]) fill(args []string) error {
	rows, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("%w: rows %q", ErrUsage, args[1])
	}
	cols, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("%w: cols %q", ErrUsage, args[2])
	}
	v, err := parseScalar[T](args[3])
	if err != nil {
		return err
	}
	m, err := matrix.NewFilled(rows, cols, v)
	if err != nil {
		return err
	}

	return s.save(args[0], m)
}

func (s *session[T]) binary(op func(a, b *matrix.Matrix[T]) (*matrix.Matrix[T], error)) handlerCb {
	return func(args []string) error {
		a, err := s.load(args[0])
		if err != nil {
			return err
		}
		b, err := s.load(args[1])
		if err != nil {
			return err
		}
		out, err := op(a, b)
		if err != nil {
			return err
		}

		return s.save(args[2], out)
	}
}

func (s *session[T]) scalar(op func(m *matrix.Matrix[T], v T) (*matrix.Matrix[T], error)) handlerCb {
	return func(args []string) error {
		a, err := s.load(args[0])
		if err != nil {
			return err
		}
		v, err := parseScalar[T](args[1])
		if err != nil {
			return err
		}
		out, err := op(a, v)
		if err != nil {
			return err
		}

		return s.save(args[2], out)
	}
}

func (s *session[T]) transpose(args []string) error {
	a, err := s.load(args[0])
	if err != nil {
		return err
	}
	out, err := matrix.Transpose(a)
	if err != nil {
		return err
	}

	return s.save(args[1], out)
}

func (s *session[T]) eq(args []string) error {
	a, err := s.load(args[0])
	if err != nil {
		return err
	}
	b, err := s.load(args[1])
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, a.Equal(b))

	return nil
}

func (s *session[T]) show(args []string) error {
	a, err := s.load(args[0])
	if err != nil {
		return err
	}
	fmt.Fprint(s.out, a.String())

	return nil
}

func (s *session[T]) load(path string) (*matrix.Matrix[T], error) {
	var m matrix.Matrix[T]
	if err := docfile.Read(path, &m); err != nil {
		return nil, err
	}
	log.Debugf("loaded %s: %dx%d", path, m.Rows(), m.Cols())

	return &m, nil
}

func (s *session[T]) save(path string, m *matrix.Matrix[T]) error {
	n, err := docfile.Write(path, m)
	if err != nil {
		return err
	}
	log.Infof("wrote %s: %dx%d (%s)", path, m.Rows(), m.Cols(), humanize.Bytes(uint64(n)))

	return nil
}

// parseScalar reads a command-line value with the same strictness as
// document cells: "4.1" is not an int.
func parseScalar[T matrix.Element](raw string) (T, error) {
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return v, fmt.Errorf("%w: value %q: %w", ErrUsage, raw, matrix.ErrTypeMismatch)
	}

	return v, nil
}
