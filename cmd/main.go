package main

import (
	"Jokerscore/services/poker"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pterm/pterm"
)

var errUsage = errors.New("usage: jokerscore [--explain] <round.yaml|->")

// Scores one round file and prints floor(chips x mult).
func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	flags := flag.NewFlagSet("jokerscore", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	explain := flags.Bool("explain", false, "print every scoring step before the score")
	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if flags.NArg() != 1 {
		return errUsage
	}

	data, err := readInput(flags.Arg(0), stdin)
	if err != nil {
		return err
	}

	round, err := poker.ParseRound(data)
	if err != nil {
		return err
	}

	if !*explain {
		result, err := poker.Score(round)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, result.Score)
		return nil
	}

	result, err := poker.Explain(round)
	if err != nil {
		return err
	}
	if err := renderSteps(stdout, result); err != nil {
		return err
	}
	fmt.Fprintln(stdout, result.Score)
	return nil
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("error reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading round file: %w", err)
	}
	return data, nil
}

func renderSteps(w io.Writer, result *poker.Result) error {
	data := [][]string{{"Pass", "Source", "Effect", "Chips", "Mult"}}
	for _, step := range result.Steps {
		data = append(data, []string{
			step.Pass.String(),
			step.Source,
			step.Effect,
			strconv.FormatFloat(step.Chips, 'f', -1, 64),
			strconv.FormatFloat(step.Mult, 'f', -1, 64),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithWriter(w).WithData(data).Render()
}
