// SPDX-License-Identifier: AGPL-3.0-or-later

// Command prettynum compacts integers given as arguments or read
// from the standard input, printing one result per line.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/bassosimone/prettynum"
	"github.com/bassosimone/prettynum/internal/slogging"
	"github.com/bassosimone/runtimex"
	"github.com/bassosimone/vclip"
	"github.com/bassosimone/vflag"
)

func main() {
	vclip.Main(context.Background(), vclip.CommandFunc(run), os.Args[1:])
}

func run(ctx context.Context, args []string) error {
	var (
		logFormatFlag = "text"
	)

	fset := vflag.NewFlagSet("prettynum", vflag.ExitOnError)
	fset.AutoHelp('h', "help", "Print this help text and exit.")
	fset.StringVar(&logFormatFlag, 0, "log-format", "Use `FORMAT` (text or json) for diagnostics.")
	runtimex.PanicOnError0(fset.Parse(args))
	slogging.Setup(logFormatFlag)

	inputs := fset.Args()
	if len(inputs) <= 0 {
		inputs = readTokens(os.Stdin)
	}

	failed := false
	for _, input := range inputs {
		value, err := strconv.ParseInt(input, 10, 64)
		if err != nil {
			slog.Warn("not an integer", slog.String("input", input))
			failed = true
			continue
		}
		formatted, err := prettynum.Format(value)
		if err != nil {
			slog.Warn("cannot format", slog.Int64("value", value), slog.Any("err", err))
			failed = true
			continue
		}
		fmt.Printf("%s\n", formatted)
	}

	if failed {
		return errors.New("prettynum: some inputs could not be formatted")
	}
	return nil
}

// readTokens reads whitespace-separated tokens from r.
func readTokens(r io.Reader) []string {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	var tokens []string
	for scanner.Scan() {
		tokens = append(tokens, scanner.Text())
	}
	runtimex.LogFatalOnError0(scanner.Err())
	return tokens
}
