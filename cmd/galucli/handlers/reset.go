package handlers

import (
	"github.com/chzyer/readline"
)

var resetHandler = handler{
	Name:        "RESET",
	Mnemonic:    "RESET",
	Completer:   readline.PcItem("reset"),
	Description: "Remove every transformation of the pipeline.",
	Callback: func(cmd string, args []string, s *Session) error {
		s.Reset()
		return nil
	},
}
