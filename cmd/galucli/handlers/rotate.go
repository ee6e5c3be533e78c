package handlers

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/evilsocket/galu/matrix"
	"github.com/evilsocket/galu/transform"

	"github.com/chzyer/readline"
)

var rotateHandler = handler{
	Name:     "ROTATE",
	Mnemonic: "ROTATE X|Y|Z <DEGREES>",
	Completer: readline.PcItem("rotate",
		readline.PcItem("x"),
		readline.PcItem("y"),
		readline.PcItem("z")),
	Parser:      regexp.MustCompile(`^(?i)(ROTATE)\s+([XYZ])\s+` + number + `$`),
	Description: "Append a rotation of <DEGREES> about one of the axes.",
	Callback: func(cmd string, args []string, s *Session) error {
		values, err := parseFloats(args[1:])
		if err != nil {
			return err
		}

		angle := radians(values[0])
		axis := strings.ToUpper(args[0])
		var m matrix.Matrix4
		switch axis {
		case "X":
			m = transform.RotateX(angle)
		case "Y":
			m = transform.RotateY(angle)
		default:
			m = transform.RotateZ(angle)
		}

		s.Push(fmt.Sprintf("rotate %s %s", strings.ToLower(axis), args[1]), m)
		return nil
	},
}
