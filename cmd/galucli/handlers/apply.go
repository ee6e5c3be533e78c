package handlers

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/evilsocket/galu/buffer"
	"github.com/evilsocket/galu/vector"

	"github.com/evilsocket/islazy/tui"

	"github.com/chzyer/readline"
)

func transformPoints(s *Session, coords []float32) ([]vector.Vector4, error) {
	if len(coords) == 0 || len(coords)%3 != 0 {
		return nil, fmt.Errorf("expected groups of three coordinates, got %d values", len(coords))
	}

	src := buffer.Allocate(len(coords) / 3 * 4)
	for i := 0; i < len(coords); i += 3 {
		if err := vector.Vec4(coords[i], coords[i+1], coords[i+2], 1).Put(src); err != nil {
			return nil, err
		}
	}

	dst := buffer.Allocate(src.Capacity())
	if err := s.Combined().TransformPacked(src.Slice(), dst.Slice()); err != nil {
		return nil, err
	}

	points := make([]vector.Vector4, 0, len(coords)/3)
	for dst.Remaining() > 0 {
		p, err := vector.ReadVector4(dst)
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, nil
}

var applyHandler = handler{
	Name:        "APPLY",
	Mnemonic:    "APPLY <X> <Y> <Z> [<X> <Y> <Z> ...]",
	Completer:   readline.PcItem("apply"),
	Parser:      regexp.MustCompile(`^(?i)(APPLY)\s+(.+)$`),
	Description: "Transform one or more points with the combined matrix.",
	Callback: func(cmd string, args []string, s *Session) error {
		coords, err := parseFloats(strings.Fields(args[0]))
		if err != nil {
			return err
		}

		points, err := transformPoints(s, coords)
		if err != nil {
			return err
		}

		rows := [][]string{}
		for i, p := range points {
			rows = append(rows, []string{
				floatsAsString(coords[i*3 : i*3+3]),
				fmt.Sprintf("%.4f", p.X),
				fmt.Sprintf("%.4f", p.Y),
				fmt.Sprintf("%.4f", p.Z),
				fmt.Sprintf("%.4f", p.W),
			})
		}

		tui.Table(s.Out, []string{"point", "x", "y", "z", "w"}, rows)

		return nil
	},
}
