package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli"

	"qgate"
	"qgate/linalg"
)

// maxQubits caps the register size: operators are dense 2^n × 2^n matrices.
const maxQubits = 6

func main() {
	app := cli.NewApp()
	app.Name = "qgatedeck"
	app.Usage = "interactive dense-operator workbench for small qubit registers"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.IntFlag{
			Name:  "qubits, q",
			Value: 3,
			Usage: "register size in qubits",
		},
		cli.BoolFlag{
			Name:  "ghz",
			Usage: "print the GHZ amplitude table and exit",
		},
	}
	app.Action = func(c *cli.Context) error {
		n := c.Int("qubits")
		if n < 1 || n > maxQubits {
			return cli.NewExitError(fmt.Sprintf("qubits must be in [1, %d]", maxQubits), 1)
		}

		if c.Bool("ghz") {
			return printGHZ(n)
		}

		p := tea.NewProgram(initialModel(n), tea.WithAltScreen())
		_, err := p.Run()
		return err
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// printGHZ dumps the GHZ amplitude table without entering the TUI.
func printGHZ(numQubits int) error {
	state, err := qgate.GHZState(numQubits)
	if err != nil {
		return err
	}
	for i, amp := range state {
		if state.Prob(i) < probEpsilon {
			continue
		}
		fmt.Printf("|%0*b⟩  %-14s p=%.4f\n", numQubits, i, linalg.FormatComplex(amp, 4), state.Prob(i))
	}
	return nil
}
