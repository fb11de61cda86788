package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/oisee/m6502core/pkg/asm"
	"github.com/oisee/m6502core/pkg/inst"
	"github.com/oisee/m6502core/pkg/machine"
	"github.com/oisee/m6502core/pkg/result"
	"github.com/retroenv/retrogolib/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "m6502",
		Short: "Run small 6502 programs against a cycle budget",
	}
	rootCmd.AddCommand(newRunCmd(), newOpcodesCmd(), newVersionCmd())
	return rootCmd
}

// createLogger builds the logger the CPU reports faults through.
func createLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

func versionString() string {
	s := version
	if commit != "" {
		if len(commit) > 7 {
			commit = commit[:7]
		}
		s += fmt.Sprintf(" (%s)", commit)
	}
	if date != "" && !strings.Contains(date, "unknown") {
		s += " built " + date
	}
	return s
}

func newRunCmd() *cobra.Command {
	var (
		source  string
		image   string
		cycles  int
		pokes   []string
		dumps   []string
		output  string
		asJSON  bool
		debug   bool
		quiet   bool
		origin  = newHex(0xFFFC, 16)
		presetX = newHex(0, 8)
		presetY = newHex(0, 8)
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Reset the CPU, load a program and execute it",
		Example: `  m6502 run --asm 'LDA #$37' --cycles 2
  m6502 run --asm 'LDA $F0,X' --x 0x20 --poke 0x10=0 --cycles 4
  m6502 run --image prog.bin --origin 0x0200 --cycles 100 --dump 0x0000:16`,
		RunE: func(cmd *cobra.Command, args []string) error {
			program, err := loadProgram(source, image)
			if err != nil {
				return err
			}
			cfg := machine.Config{
				Program: program,
				Origin:  &origin.v,
				Cycles:  cycles,
				X:       uint8(presetX.v),
				Y:       uint8(presetY.v),
				Logger:  createLogger(debug, quiet),
			}
			if cfg.Pokes, err = parsePokes(pokes); err != nil {
				return err
			}
			if cfg.Dumps, err = parseDumps(dumps); err != nil {
				return err
			}

			rep, err := machine.Run(cfg)
			if err != nil {
				return err
			}

			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				if err := result.WriteJSON(f, rep); err != nil {
					return fmt.Errorf("writing report: %w", err)
				}
			}
			if asJSON {
				return result.WriteJSON(cmd.OutOrStdout(), rep)
			}
			return result.WriteText(cmd.OutOrStdout(), rep)
		},
	}

	f := cmd.Flags()
	f.StringVar(&source, "asm", "", "Program as assembly text, statements separated by ':'")
	f.StringVar(&image, "image", "", "Raw binary program image")
	f.Var(origin, "origin", "Load address and starting PC")
	f.IntVarP(&cycles, "cycles", "c", 2, "Cycle budget")
	f.Var(presetX, "x", "Value of X after reset")
	f.Var(presetY, "y", "Value of Y after reset")
	f.StringArrayVar(&pokes, "poke", nil, "Write ADDR=VAL to memory after reset (repeatable)")
	f.StringArrayVar(&dumps, "dump", nil, "Include memory ADDR:LEN in the report (repeatable)")
	f.StringVarP(&output, "output", "o", "", "Write the JSON report to this file")
	f.BoolVar(&asJSON, "json", false, "Print the report as JSON")
	f.BoolVar(&debug, "debug", false, "Trace every executed instruction")
	f.BoolVarP(&quiet, "quiet", "q", false, "Only log errors")
	cmd.MarkFlagsMutuallyExclusive("asm", "image")
	cmd.MarkFlagsMutuallyExclusive("debug", "quiet")
	return cmd
}

func loadProgram(source, image string) ([]byte, error) {
	switch {
	case source != "":
		return asm.Assemble(source)
	case image != "":
		data, err := os.ReadFile(image)
		if err != nil {
			return nil, fmt.Errorf("reading image: %w", err)
		}
		return data, nil
	}
	return nil, errors.New("one of --asm or --image is required")
}

func newOpcodesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "opcodes",
		Short: "List the implemented opcodes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			for _, op := range inst.DefinedOps() {
				info := inst.Catalog[op]
				fmt.Fprintf(w, "$%02X  %-10s %-11s %d cycles\n", op, inst.Syntax(op), inst.ModeName(info.Mode), info.Cycles)
			}
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "m6502 %s\n", versionString())
		},
	}
}
