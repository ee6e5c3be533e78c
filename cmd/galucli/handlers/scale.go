package handlers

import (
	"fmt"
	"regexp"

	"github.com/evilsocket/galu/transform"
	"github.com/evilsocket/galu/vector"

	"github.com/chzyer/readline"
)

var scaleHandler = handler{
	Name:        "SCALE",
	Mnemonic:    "SCALE <X> <Y> <Z>",
	Completer:   readline.PcItem("scale"),
	Parser:      regexp.MustCompile(`^(?i)(SCALE)\s+` + number + `\s+` + number + `\s+` + number + `$`),
	Description: "Append a scaling by the given factors along each axis.",
	Callback: func(cmd string, args []string, s *Session) error {
		values, err := parseFloats(args)
		if err != nil {
			return err
		}

		s.Push(fmt.Sprintf("scale %s %s %s", args[0], args[1], args[2]),
			transform.Scale(vector.Vec3(values[0], values[1], values[2])))
		return nil
	},
}
