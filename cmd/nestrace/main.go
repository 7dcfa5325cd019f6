// Command nestrace runs a cartridge image against the cpu core and
// prints a register dump after stepping, optionally preceded by a full
// per-instruction trace.
package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	cli "gopkg.in/urfave/cli.v2"

	"github.com/flga/nescpu/nes"
)

func main() {
	app := &cli.App{
		Name:  "nestrace",
		Usage: "step a cartridge image through the cpu core",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "steps", Aliases: []string{"n"}, Value: 1, Usage: "number of instructions to execute"},
			&cli.BoolFlag{Name: "trace", Usage: "print a per-instruction trace line to stdout"},
			&cli.StringFlag{Name: "dump", Usage: "hex-dump an address range after stepping, as lo:hi (e.g. 0000:00ff)"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx *cli.Context) error {
	if ctx.Args().Len() != 1 {
		return fmt.Errorf("nestrace: expected exactly one rom path argument")
	}

	path := ctx.Args().Get(0)
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("nestrace: %w", err)
	}

	var trace io.Writer
	if ctx.Bool("trace") {
		trace = os.Stdout
	}

	console, err := nes.NewConsole(data, trace)
	if err != nil {
		return fmt.Errorf("nestrace: %w", err)
	}
	console.Reset()

	steps := ctx.Int("steps")
	for i := 0; i < steps; i++ {
		if _, err := console.Step(); err != nil {
			return fmt.Errorf("nestrace: stopped after %d steps: %w", i, err)
		}
	}

	regs := console.Registers()
	fmt.Printf("PC:%04X A:%02X X:%02X Y:%02X S:%02X P:%02X CYC:%d\n",
		regs.PC, regs.A, regs.X, regs.Y, regs.SP, regs.P, regs.Cycles)

	if dump := ctx.String("dump"); dump != "" {
		lo, hi, err := parseRange(dump)
		if err != nil {
			return fmt.Errorf("nestrace: %w", err)
		}
		bytesDumped := console.ReadRange(lo, hi)
		fmt.Println(hex.Dump(bytesDumped))
	}

	return nil
}

func parseRange(s string) (lo, hi uint16, err error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("dump range must be lo:hi")
	}
	loVal, err := strconv.ParseUint(parts[0], 16, 16)
	if err != nil {
		return 0, 0, fmt.Errorf("bad lo address: %w", err)
	}
	hiVal, err := strconv.ParseUint(parts[1], 16, 16)
	if err != nil {
		return 0, 0, fmt.Errorf("bad hi address: %w", err)
	}
	return uint16(loVal), uint16(hiVal), nil
}
