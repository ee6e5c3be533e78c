package handlers

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/evilsocket/galu/backend"
	"github.com/evilsocket/galu/common"

	"github.com/evilsocket/islazy/tui"

	"github.com/chzyer/readline"
	"github.com/dustin/go-humanize"
	"github.com/pbnjay/memory"
)

var infoHandler = handler{
	Name:        "INFO",
	Mnemonic:    "INFO",
	Completer:   readline.PcItem("info"),
	Description: "Display version, compute backend and memory information.",
	Callback: func(cmd string, args []string, s *Session) error {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		rows := [][]string{
			{"version", common.Version},
			{"go", runtime.Version()},
			{"backend", backend.Name()},
			{"backends", strings.Join(backend.Available(), ", ")},
			{"steps", fmt.Sprintf("%d", s.Size())},
			{"alloc", humanize.Bytes(m.Alloc)},
			{"sys", humanize.Bytes(m.Sys)},
			{"memory", humanize.Bytes(memory.TotalMemory())},
		}

		tui.Table(s.Out, []string{"name", "value"}, rows)

		return nil
	},
}
