package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/japanoise/tuint/src/interp"
	"github.com/japanoise/tuint/src/tokens"
)

const defaultProgram = "instructions.txt"

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	filename := defaultProgram
	switch len(args) {
	case 0:
	case 1:
		filename = args[0]
	default:
		fmt.Fprintf(os.Stderr, "usage:\n%s [file]\n", os.Args[0])
		return 1
	}

	toks, err := tokens.ReadFile(filename)
	if err != nil {
		log.Error().Err(err).Msg("could not load program")
		return 1
	}

	out := bufio.NewWriter(stdout)
	m := interp.New(out)
	err = m.Run(toks)
	if ferr := out.Flush(); err == nil {
		err = ferr
	}
	if err != nil {
		log.Error().Err(err).Str("file", filename).Msg("run aborted")
		return 1
	}
	log.Debug().Str("file", filename).Int("steps", m.Steps()).Msg("finished")
	return 0
}
