package handlers

import (
	"fmt"
	"regexp"

	"github.com/chzyer/readline"
)

var saveHandler = handler{
	Name:        "SAVE",
	Mnemonic:    "SAVE <FILE>",
	Completer:   readline.PcItem("save"),
	Parser:      regexp.MustCompile(`^(?i)(SAVE)\s+(.+)$`),
	Description: "Save the pipeline to <FILE>.",
	Callback: func(cmd string, args []string, s *Session) error {
		if err := s.Save(args[0]); err != nil {
			return err
		}

		fmt.Fprintf(s.Out, "%d transformations saved to %s\n", s.Size(), args[0])

		return nil
	},
}

var loadHandler = handler{
	Name:        "LOAD",
	Mnemonic:    "LOAD <FILE>",
	Completer:   readline.PcItem("load"),
	Parser:      regexp.MustCompile(`^(?i)(LOAD)\s+(.+)$`),
	Description: "Replace the pipeline with the one saved in <FILE>.",
	Callback: func(cmd string, args []string, s *Session) error {
		if err := s.Load(args[0]); err != nil {
			return err
		}

		fmt.Fprintf(s.Out, "%d transformations loaded from %s\n", s.Size(), args[0])

		return nil
	},
}
