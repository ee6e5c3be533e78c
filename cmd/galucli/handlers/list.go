package handlers

import (
	"fmt"
	"regexp"

	"github.com/evilsocket/islazy/tui"

	"github.com/chzyer/readline"
)

var listHandler = handler{
	Name:        "LIST",
	Mnemonic:    "LIST or L",
	Completer:   readline.PcItem("list"),
	Parser:      regexp.MustCompile(`^(?i)(LIST|L)$`),
	Description: "Show the transformations of the pipeline in the order they are applied.",
	Callback: func(cmd string, args []string, s *Session) error {
		if s.Size() == 0 {
			fmt.Fprintln(s.Out, "pipeline is empty")
			return nil
		}

		rows := [][]string{}
		for i, step := range s.Steps() {
			rows = append(rows, []string{
				fmt.Sprintf("%d", i),
				step.Name,
				fmt.Sprintf("%.4f", step.Matrix.Determinant()),
			})
		}

		tui.Table(s.Out, []string{"#", "transformation", "det"}, rows)

		return nil
	},
}
