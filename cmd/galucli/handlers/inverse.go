package handlers

import (
	"github.com/evilsocket/islazy/tui"

	"github.com/chzyer/readline"
)

var inverseHandler = handler{
	Name:        "INVERSE",
	Mnemonic:    "INVERSE",
	Completer:   readline.PcItem("inverse"),
	Description: "Show the inverse of the combined matrix, if any.",
	Callback: func(cmd string, args []string, s *Session) error {
		inv, err := s.Inverse()
		if err != nil {
			return err
		}

		tui.Table(s.Out, matrixColumns, matrixRows(inv))

		return nil
	},
}
