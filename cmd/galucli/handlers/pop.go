package handlers

import (
	"fmt"

	"github.com/chzyer/readline"
)

var popHandler = handler{
	Name:        "POP",
	Mnemonic:    "POP",
	Completer:   readline.PcItem("pop"),
	Description: "Remove the last transformation of the pipeline.",
	Callback: func(cmd string, args []string, s *Session) error {
		step, ok := s.Pop()
		if !ok {
			return fmt.Errorf("pipeline is empty")
		}

		fmt.Fprintf(s.Out, "removed %s\n", step.Name)

		return nil
	},
}
