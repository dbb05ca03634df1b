package shell

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/twiby/rsScrabble/move"
)

type Response struct {
	message string
}

func (r *Response) String() string {
	return r.message
}

type CmdOptions map[string][]string

func (c CmdOptions) String(key string) string {
	v := c[key]
	if len(v) > 0 {
		return v[0]
	}
	return ""
}

func (c CmdOptions) StringDefault(key, def string) string {
	if v := c.String(key); v != "" {
		return v
	}
	return def
}

func (c CmdOptions) Int(key string) (int, error) {
	v := c[key]
	if len(v) == 0 {
		return 0, errors.New(key + " not found in options")
	}
	return strconv.Atoi(v[0])
}

func msg(message string) *Response {
	return &Response{message: message}
}

// FormatMove writes m in one of the output formats: text, json or yaml.
func FormatMove(m *move.Move, output string) (string, error) {
	switch output {
	case "", "text":
		if m.IsNoPlay() {
			return m.ShortDescription(), nil
		}
		return fmt.Sprintf("%s %d", m.ShortDescription(), m.Score()), nil
	case "json":
		bts, err := json.MarshalIndent(m.Result(), "", "  ")
		if err != nil {
			return "", err
		}
		return string(bts), nil
	case "yaml":
		bts, err := yaml.Marshal(m.Result())
		if err != nil {
			return "", err
		}
		return strings.TrimRight(string(bts), "\n"), nil
	}
	return "", fmt.Errorf("unsupported output %q", output)
}

// best <rack> [board] [-output fmt]
func (sc *ShellController) best(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 || len(cmd.args) > 2 {
		return nil, errors.New("usage: best <rack> [board]")
	}
	boardMsg := sc.curBoard
	if len(cmd.args) == 2 {
		boardMsg = cmd.args[1]
	}
	if boardMsg == "" {
		return nil, errNoBoard
	}
	rack := cmd.args[0]
	// an empty rack can only be typed as ""
	m, err := sc.wf.GetBestPlay(rack, boardMsg)
	if err != nil {
		return nil, err
	}
	out, err := FormatMove(m, cmd.options.StringDefault("output", sc.output))
	if err != nil {
		return nil, err
	}
	return msg(out), nil
}

// board <board> sets the board for later queries.
func (sc *ShellController) setBoard(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: board <board>")
	}
	b, err := sc.wf.DecodeBoard(cmd.args[0])
	if err != nil {
		return nil, err
	}
	sc.curBoard = cmd.args[0]
	return msg(b.ToDisplayText(sc.wf.LetterDistribution().TileMapping())), nil
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	if sc.curBoard == "" {
		return nil, errNoBoard
	}
	b, err := sc.wf.DecodeBoard(sc.curBoard)
	if err != nil {
		return nil, err
	}
	return msg(b.ToDisplayText(sc.wf.LetterDistribution().TileMapping())), nil
}

func (sc *ShellController) word(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: word <word>")
	}
	if sc.wf.IsWord(cmd.args[0]) {
		return msg(cmd.args[0] + " is valid"), nil
	}
	return msg(cmd.args[0] + " is not valid"), nil
}

func (sc *ShellController) prefix(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: prefix <letters>")
	}
	if sc.wf.HasPrefix(cmd.args[0]) {
		return msg("some word starts with " + cmd.args[0]), nil
	}
	return msg("no word starts with " + cmd.args[0]), nil
}

func (sc *ShellController) setOutput(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return msg(sc.output), nil
	}
	switch cmd.args[0] {
	case "text", "json", "yaml":
		sc.output = cmd.args[0]
		return msg("output set to " + sc.output), nil
	}
	return nil, fmt.Errorf("unsupported output %q", cmd.args[0])
}
