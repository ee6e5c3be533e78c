package handlers

import (
	"fmt"
	"regexp"

	"github.com/evilsocket/galu/transform"
	"github.com/evilsocket/galu/vector"

	"github.com/chzyer/readline"
)

var axisHandler = handler{
	Name:        "AXIS",
	Mnemonic:    "AXIS <DEGREES> <X> <Y> <Z>",
	Completer:   readline.PcItem("axis"),
	Parser:      regexp.MustCompile(`^(?i)(AXIS)\s+` + number + `\s+` + number + `\s+` + number + `\s+` + number + `$`),
	Description: "Append a rotation of <DEGREES> about the axis <X> <Y> <Z>.",
	Callback: func(cmd string, args []string, s *Session) error {
		values, err := parseFloats(args)
		if err != nil {
			return err
		}

		axis := vector.Vec3(values[1], values[2], values[3])
		if axis.LengthSquared() == 0 {
			return fmt.Errorf("the rotation axis can't be a zero vector")
		}

		s.Push(fmt.Sprintf("axis %s (%s, %s, %s)", args[0], args[1], args[2], args[3]),
			transform.RotateAxis(radians(values[0]), axis))
		return nil
	},
}
