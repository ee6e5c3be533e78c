package handlers

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/chzyer/readline"
)

const number = `([-+]?(?:\d+\.?\d*|\.\d+)(?:[eE][-+]?\d+)?)`

type handlerCb func(cmd string, args []string, s *Session) error

type handler struct {
	Parser      *regexp.Regexp
	Completer   *readline.PrefixCompleter
	Name        string
	Mnemonic    string
	Description string
	Callback    handlerCb
}

var Handlers = []handler{}
var Completers = (*readline.PrefixCompleter)(nil)

func init() {
	Handlers = []handler{
		helpHandler,
		quitHandler,
		infoHandler,
		// pipeline building
		rotateHandler,
		eulerHandler,
		axisHandler,
		scaleHandler,
		translateHandler,
		shearHandler,
		// pipeline management
		listHandler,
		popHandler,
		resetHandler,
		// results
		showHandler,
		inverseHandler,
		applyHandler,
		storeHandler,
		// persistence
		saveHandler,
		savedHandler,
		loadHandler,
	}

	tmp := []readline.PrefixCompleterInterface{}
	for _, h := range Handlers {
		if h.Completer != nil {
			tmp = append(tmp, h.Completer)
		}
	}
	Completers = readline.NewPrefixCompleter(tmp...)
}

// Dispatch runs the first handler matching cmd against the session.
func Dispatch(cmd string, s *Session) error {
	cmd = strings.TrimSpace(cmd)
	if cmd == "" {
		return nil
	}

	for _, handler := range Handlers {
		match := false
		args := []string{}

		if handler.Parser != nil {
			if result := handler.Parser.FindStringSubmatch(cmd); result != nil && len(result) == handler.Parser.NumSubexp()+1 {
				cmd = result[1:][0]
				args = result[1:][1:]
				match = true
			}
		} else if strings.EqualFold(handler.Name, cmd) {
			match = true
		}

		if match {
			return handler.Callback(cmd, args, s)
		}
	}

	return fmt.Errorf("command not found: %s", cmd)
}
