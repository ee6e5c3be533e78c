package handlers

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/evilsocket/galu/buffer"
	"github.com/evilsocket/galu/matrix"

	"github.com/chzyer/readline"
)

var storeHandler = handler{
	Name:     "STORE",
	Mnemonic: "STORE ROW|COL",
	Completer: readline.PcItem("store",
		readline.PcItem("row"),
		readline.PcItem("col")),
	Parser:      regexp.MustCompile(`^(?i)(STORE)\s+(ROW|COL)$`),
	Description: "Print the combined matrix as a flat sequence in row-major or column-major order.",
	Callback: func(cmd string, args []string, s *Session) error {
		order := matrix.RowMajor
		if strings.EqualFold(args[0], "COL") {
			order = matrix.ColumnMajor
		}

		buf := buffer.Allocate(16)
		if err := s.Combined().Put(buf, order); err != nil {
			return err
		}

		fmt.Fprintf(s.Out, "%s: %s\n", order, floatsAsString(buf.Slice()))

		return nil
	},
}
