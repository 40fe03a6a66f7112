// Command nesemu loads an iNES cartridge, wires it into a CPU and address
// bus, and either steps the program non-interactively or hands it to the
// interactive terminal debugger. Wiring grounded on LJS360d-RoBA/main.go's
// cartridge -> bus -> cpu assembly, adapted to this core's simpler
// single-mapper bus and swapping its unconditional run loop for a
// log/slog-instrumented one with an optional TUI front end.
package main

import (
	"flag"
	"log/slog"
	"os"

	"nesemu/cartridge"
	"nesemu/cpu"
	"nesemu/mem"
	"nesemu/tui"
)

func main() {
	romPath := flag.String("rom", "", "path to an iNES ROM file")
	maxSteps := flag.Int("steps", 0, "stop after N instructions when running headless (0 = unlimited)")
	headless := flag.Bool("headless", false, "run without the interactive debugger, logging each step")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if *romPath == "" {
		logger.Error("missing required -rom flag")
		os.Exit(2)
	}

	c, err := run(*romPath, *headless, *maxSteps, logger)
	if err != nil {
		logger.Error("emulation stopped", "error", err)
		os.Exit(1)
	}
	if c != nil {
		logger.Info("final register state", "state", c.State().String())
	}
}

func run(romPath string, headless bool, maxSteps int, logger *slog.Logger) (*cpu.Cpu, error) {
	cart, err := cartridge.Open(romPath)
	if err != nil {
		return nil, err
	}
	logger.Info("cartridge loaded",
		"mapper", cart.MapperType,
		"mirroring", cart.Mirroring.String(),
		"prg_rom_size", cart.PRGROMSize,
		"chr_rom_size", cart.CHRROMSize,
	)

	prgBytes, err := cart.ReadPRGROM()
	if err != nil {
		return nil, err
	}

	ram := mem.NewRegion(0x0000, 0x0800)
	prgROM := mem.NewRegion(0x8000, len(prgBytes))
	prgROM.WriteSlice(0x8000, prgBytes)
	bus := mem.NewBus(ram, prgROM)

	c := cpu.New(bus)
	c.Reset()
	logger.Info("cpu reset", "pc", c.PC)

	if !headless {
		return c, tui.Run(c)
	}

	for i := 0; maxSteps == 0 || i < maxSteps; i++ {
		mnemonic, err := c.Step()
		if err != nil {
			return c, err
		}
		logger.Info("step", "mnemonic", mnemonic, "state", c.State().String())
	}
	return c, nil
}
