// Command stationreach computes, for every pedestrian node of an
// OpenStreetMap extract, the walking distance to the nearest station and
// writes the labeled network as a text dump.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/stationreach/internal/app"
	"github.com/katalvlaran/stationreach/internal/cli"
)

func main() {
	if err := run(os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run holds the program logic so tests can drive it without exiting.
func run(stdin io.Reader, stdout, stderr io.Writer, args []string) error {
	if err := cli.LoadEnv(".env"); err != nil {
		return err
	}
	inv, shouldExit, err := cli.Parse(args, stderr)
	if err != nil || shouldExit {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(stdout, stderr, inv.App)
	if err != nil {
		return err
	}

	switch inv.Command {
	case cli.CommandMesh:
		in := stdin
		if inv.MeshIn != "" && inv.MeshIn != "-" {
			f, err := os.Open(inv.MeshIn)
			if err != nil {
				return err
			}
			defer f.Close()
			in = f
		}
		return a.Mesh(ctx, in, stdout, inv.Qhull)
	default:
		_, err = a.Run(ctx)
		return err
	}
}
