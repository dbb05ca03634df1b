package shell

import (
	"strings"

	"github.com/kballard/go-shellquote"
)

// ShellCompleter completes command names and the values of options.
type ShellCompleter struct {
	sc *ShellController
}

func NewShellCompleter(sc *ShellController) *ShellCompleter {
	return &ShellCompleter{sc: sc}
}

var commandNames = []string{
	"best", "board", "show", "word", "prefix", "output", "help", "exit",
}

var outputValues = []string{"text", "json", "yaml"}

// completions returns the candidates for the word being typed at the end of
// text, and that word.
func completions(text string) ([]string, string) {
	fields, err := shellquote.Split(text)
	if err != nil {
		fields = strings.Fields(text)
	}
	endsWithSpace := len(text) > 0 && text[len(text)-1] == ' '

	var prefix string
	if len(fields) > 0 && !endsWithSpace {
		prefix = fields[len(fields)-1]
	}
	if len(fields) == 0 || (len(fields) == 1 && !endsWithSpace) {
		return commandNames, prefix
	}

	var last string
	if endsWithSpace {
		last = fields[len(fields)-1]
	} else if len(fields) > 1 {
		last = fields[len(fields)-2]
	}
	switch {
	case last == "-output":
		return outputValues, prefix
	case fields[0] == "output" && len(fields) <= 2:
		return outputValues, prefix
	case fields[0] == "best" && strings.HasPrefix(prefix, "-"):
		return []string{"-output"}, prefix
	case fields[0] == "help":
		return commandNames, prefix
	}
	return nil, prefix
}

// Do implements the readline.AutoCompleter interface.
func (c *ShellCompleter) Do(line []rune, pos int) ([][]rune, int) {
	cands, prefix := completions(string(line[:pos]))
	var matches [][]rune
	for _, cand := range cands {
		if strings.HasPrefix(cand, prefix) {
			// Return only the part that needs to be added
			matches = append(matches, []rune(cand[len(prefix):]+" "))
		}
	}
	return matches, len([]rune(prefix))
}
