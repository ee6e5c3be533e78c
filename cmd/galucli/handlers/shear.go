package handlers

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/evilsocket/galu/transform"

	"github.com/chzyer/readline"
)

var shearHandler = handler{
	Name:      "SHEAR",
	Mnemonic:  "SHEAR <XY> <XZ> <YX> <YZ> <ZX> <ZY>",
	Completer: readline.PcItem("shear"),
	Parser: regexp.MustCompile(`^(?i)(SHEAR)` +
		strings.Repeat(`\s+`+number, 6) + `$`),
	Description: "Append a shear where each parameter <AB> shears A by B.",
	Callback: func(cmd string, args []string, s *Session) error {
		v, err := parseFloats(args)
		if err != nil {
			return err
		}

		s.Push(fmt.Sprintf("shear %s", strings.Join(args, " ")),
			transform.Shear(v[0], v[1], v[2], v[3], v[4], v[5]))
		return nil
	},
}
