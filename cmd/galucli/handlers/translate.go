package handlers

import (
	"fmt"
	"regexp"

	"github.com/evilsocket/galu/transform"
	"github.com/evilsocket/galu/vector"

	"github.com/chzyer/readline"
)

var translateHandler = handler{
	Name:        "TRANSLATE",
	Mnemonic:    "TRANSLATE or T <X> <Y> <Z>",
	Completer:   readline.PcItem("translate"),
	Parser:      regexp.MustCompile(`^(?i)(TRANSLATE|T)\s+` + number + `\s+` + number + `\s+` + number + `$`),
	Description: "Append a translation by <X> <Y> <Z>.",
	Callback: func(cmd string, args []string, s *Session) error {
		values, err := parseFloats(args)
		if err != nil {
			return err
		}

		s.Push(fmt.Sprintf("translate %s %s %s", args[0], args[1], args[2]),
			transform.Translate(vector.Vec3(values[0], values[1], values[2])))
		return nil
	},
}
