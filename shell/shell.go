// Package shell is an interactive prompt for best-play queries. A board is
// set once and then queried with as many racks as needed.
package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/twiby/rsScrabble/config"
	"github.com/twiby/rsScrabble/solver"
)

var (
	errNoData            = errors.New("no data in this line")
	errWrongOptionSyntax = errors.New("wrong format; all options need arguments")
	errQuit              = errors.New("quit")
	errNoBoard           = errors.New("no board set; use the board command first")
)

type ShellController struct {
	l      *readline.Instance
	config *config.Config
	wf     *solver.WordFinder

	// curBoard is the encoded board used when a query names none.
	curBoard string
	output   string
}

type shellcmd struct {
	cmd     string
	args    []string
	options CmdOptions
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

// NewController returns a controller that answers with wf. The prompt is not
// opened until Loop.
func NewController(cfg *config.Config, wf *solver.WordFinder) *ShellController {
	return &ShellController{
		config: cfg,
		wf:     wf,
		output: cfg.GetString(config.ConfigOutput),
	}
}

// NewShellController opens the interactive prompt.
func NewShellController(cfg *config.Config, wf *solver.WordFinder) (*ShellController, error) {
	sc := NewController(cfg, wf)
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[32mwordfinder>\033[0m ",
		HistoryFile:     "/tmp/wordfinder_readline.tmp",
		AutoComplete:    NewShellCompleter(sc),
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return nil, err
	}
	sc.l = l
	return sc, nil
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

// extractFields splits a line into a command, its arguments and its
// options. Options look like -name value and may come anywhere after the
// command.
func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	cmd := fields[0]
	var args []string
	options := CmdOptions{}
	for i := 1; i < len(fields); i++ {
		if strings.HasPrefix(fields[i], "-") && len(fields[i]) > 1 {
			if i == len(fields)-1 {
				return nil, errWrongOptionSyntax
			}
			key := fields[i][1:]
			options[key] = append(options[key], fields[i+1])
			i++
			continue
		}
		args = append(args, fields[i])
	}
	return &shellcmd{cmd: cmd, args: args, options: options}, nil
}

// Execute runs one line and returns what should be shown.
func (sc *ShellController) Execute(line string) (*Response, error) {
	cmd, err := extractFields(line)
	if err != nil {
		return nil, err
	}
	switch cmd.cmd {
	case "exit", "quit":
		return nil, errQuit
	case "help":
		return sc.help(cmd)
	case "best":
		return sc.best(cmd)
	case "board":
		return sc.setBoard(cmd)
	case "show":
		return sc.show(cmd)
	case "word":
		return sc.word(cmd)
	case "prefix":
		return sc.prefix(cmd)
	case "output":
		return sc.setOutput(cmd)
	default:
		log.Debug().Msgf("you said: %v", strconv.Quote(line))
		return nil, fmt.Errorf("unknown command %q; try help", cmd.cmd)
	}
}

func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			}
			continue
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		resp, err := sc.Execute(line)
		if errors.Is(err, errQuit) {
			sig <- syscall.SIGINT
			break
		}
		if err != nil {
			showMessage("Error: "+err.Error(), sc.l.Stderr())
			continue
		}
		if resp != nil && resp.message != "" {
			showMessage(resp.message, sc.l.Stdout())
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}
