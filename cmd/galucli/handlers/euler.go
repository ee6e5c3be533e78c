package handlers

import (
	"fmt"
	"regexp"

	"github.com/evilsocket/galu/transform"
	"github.com/evilsocket/galu/vector"

	"github.com/chzyer/readline"
)

var eulerHandler = handler{
	Name:        "EULER",
	Mnemonic:    "EULER <X> <Y> <Z>",
	Completer:   readline.PcItem("euler"),
	Parser:      regexp.MustCompile(`^(?i)(EULER)\s+` + number + `\s+` + number + `\s+` + number + `$`),
	Description: "Append a rotation by Euler angles in degrees, the Z one applied first.",
	Callback: func(cmd string, args []string, s *Session) error {
		values, err := parseFloats(args)
		if err != nil {
			return err
		}

		angles := vector.Vec3(radians(values[0]), radians(values[1]), radians(values[2]))
		s.Push(fmt.Sprintf("euler %s %s %s", args[0], args[1], args[2]), transform.RotateEuler(angles))
		return nil
	},
}
