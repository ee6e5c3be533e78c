package handlers

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/evilsocket/galu/storage"

	"github.com/evilsocket/islazy/tui"

	"github.com/chzyer/readline"
)

var savedHandler = handler{
	Name:        "SAVED",
	Mnemonic:    "SAVED <FOLDER>",
	Completer:   readline.PcItem("saved"),
	Parser:      regexp.MustCompile(`^(?i)(SAVED)\s+(.+)$`),
	Description: "List the pipeline files saved in <FOLDER>.",
	Callback: func(cmd string, args []string, s *Session) error {
		path, loadable, err := storage.ListPath(args[0])
		if err != nil {
			return err
		}

		names := make([]string, 0, len(loadable))
		for name := range loadable {
			names = append(names, name)
		}
		sort.Strings(names)

		rows := [][]string{}
		for _, name := range names {
			rows = append(rows, []string{name, loadable[name]})
		}

		tui.Table(s.Out, []string{"name", "file"}, rows)
		fmt.Fprintf(s.Out, "[%d pipelines in %s]\n", len(names), path)

		return nil
	},
}
