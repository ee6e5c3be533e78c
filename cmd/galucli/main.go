package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/evilsocket/galu/backend"
	"github.com/evilsocket/galu/cmd/galucli/handlers"
	"github.com/evilsocket/galu/common"

	"github.com/evilsocket/islazy/log"
	"github.com/evilsocket/islazy/str"

	"github.com/chzyer/readline"
)

const prompt = "\033[31m»\033[0m "

var (
	evalString  = flag.String("eval", "", "List of commands to run, divided by a semicolon.")
	backendName = flag.String("backend", backend.Name(), "Compute backend for batch transformations, one of naive or blas32.")
	history     = flag.String("history", "/tmp/galucli.tmp", "Path of the commands history file.")
	logFile     = flag.String("log-file", "", "If filled, the client will log to this file.")
	logDebug    = flag.Bool("debug", false, "Enable debug logs.")
	cpuProfile  = flag.String("cpu-profile", "", "Write CPU profile to this file.")
	memProfile  = flag.String("mem-profile", "", "Write memory profile to this file.")
)

func dispatchLine(line string, session *handlers.Session) {
	for _, cmd := range str.SplitBy(line, ";") {
		if err := handlers.Dispatch(cmd, session); err != nil {
			fmt.Printf("%s\n", err)
		}
	}
}

func main() {
	flag.Parse()

	common.SetupLogging(logFile, logDebug)
	defer common.TeardownLogging()

	common.StartProfiling(cpuProfile)
	common.SetupSignals(func(_ os.Signal) {
		common.DoCleanup(cpuProfile, memProfile)
	})
	defer common.DoCleanup(cpuProfile, memProfile)

	if err := backend.Use(*backendName); err != nil {
		log.Fatal("%v", err)
	}

	log.Debug("galucli v%s using the %s backend", common.Version, backend.Name())

	reader, err := readline.NewEx(&readline.Config{
		Prompt:          fmt.Sprintf("galu %s", prompt),
		HistoryFile:     *history,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    handlers.Completers,
	})
	if err != nil {
		log.Fatal("%v", err)
	}
	defer reader.Close()

	session := handlers.NewSession(os.Stdout)

	dispatchLine(*evalString, session)

	for {
		if line, err := reader.Readline(); err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			break
		} else {
			dispatchLine(line, session)
		}
	}
}
