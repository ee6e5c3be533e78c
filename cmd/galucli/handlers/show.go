package handlers

import (
	"fmt"

	"github.com/evilsocket/islazy/tui"

	"github.com/chzyer/readline"
)

var matrixColumns = []string{"c0", "c1", "c2", "c3"}

var showHandler = handler{
	Name:        "SHOW",
	Mnemonic:    "SHOW",
	Completer:   readline.PcItem("show"),
	Description: "Show the matrix combining every transformation of the pipeline.",
	Callback: func(cmd string, args []string, s *Session) error {
		m := s.Combined()

		tui.Table(s.Out, matrixColumns, matrixRows(m))
		fmt.Fprintf(s.Out, "det: %.4f\n", m.Determinant())

		return nil
	},
}
