// Package cpu implements the MOS Technology 6502 microprocessor core: the
// register file and the fetch-decode-execute loop that drives it one
// instruction at a time. Adapted from hejops-gone/cpu/cpu.go, generalized
// to delegate addressing-mode resolution to the addressing package and
// opcode lookup to the opcode package instead of folding both into the Cpu
// struct itself.
package cpu

import (
	"fmt"

	"nesemu/addressing"
	"nesemu/mem"
	"nesemu/opcode"
	"nesemu/status"
)

// UnknownOpcodeError is returned by Step when the byte at PC does not
// appear in the instruction table. The CPU halts; the caller decides
// whether to log and stop or otherwise recover.
type UnknownOpcodeError struct {
	Byte byte
}

func (e UnknownOpcodeError) Error() string {
	return fmt.Sprintf("cpu: unknown opcode %#02x", e.Byte)
}

// Cpu holds the 6502 register file (A, X, Y, S, PC, P) and a reference to
// the Bus it executes against. It has no memory of its own.
type Cpu struct {
	A byte
	X byte
	Y byte
	S byte
	PC uint16
	P status.Register

	Bus *mem.Bus
}

// New constructs a Cpu bound to bus. Reset must be called before Step.
func New(bus *mem.Bus) *Cpu {
	return &Cpu{Bus: bus}
}

// Reset sets A, X, Y to 0, S to 0xFF, clears all status flags, and loads PC
// from the reset vector at $FFFC.
func (c *Cpu) Reset() {
	c.A, c.X, c.Y = 0, 0, 0
	c.S = 0xFF
	c.P = status.Register{}
	c.PC = c.Bus.Read16(mem.ResetVectorAddr)
}

// State is a read-only snapshot of the register file, used by the
// debugger and by tests that assert end-to-end scenario outcomes.
type State struct {
	A, X, Y, S byte
	PC         uint16
	P          status.Register
}

// State snapshots the current register file.
func (c *Cpu) State() State {
	return State{A: c.A, X: c.X, Y: c.Y, S: c.S, PC: c.PC, P: c.P}
}

func (s State) String() string {
	return fmt.Sprintf(
		"A=%02X X=%02X Y=%02X S=%02X PC=%04X P=%08b (NV_BDIZC)",
		s.A, s.X, s.Y, s.S, s.PC, s.P.ToByte(),
	)
}

// Step executes exactly one instruction: fetch the opcode at PC, look it up
// in the instruction table, accumulate its operand bytes (advancing PC past
// the whole instruction before any side effect is applied), resolve the
// addressing mode, and dispatch to the mnemonic's handler. It returns the
// mnemonic executed, or an UnknownOpcodeError if the opcode byte is not in
// the table.
func (c *Cpu) Step() (string, error) {
	opByte := c.Bus.Read8(c.PC)
	c.PC++

	desc, ok := opcode.Table[opByte]
	if !ok {
		return "", UnknownOpcodeError{Byte: opByte}
	}

	var operand uint16
	for i := 0; i < desc.Size-1; i++ {
		operand = (operand << 8) | uint16(c.Bus.Read8(c.PC))
		c.PC++
	}

	result := addressing.Resolve(desc.Mode, c.Bus, operand, c.X, c.Y)
	c.execute(desc.Mnemonic, result)

	return desc.Mnemonic, nil
}

// push writes value to the stack page ($0100 + S) and decrements S.
func (c *Cpu) push(value byte) {
	c.Bus.Write8(0x0100+uint16(c.S), value)
	c.S = (c.S - 1) & 0xFF
}

// pop increments S and reads the byte now on top of the stack.
func (c *Cpu) pop() byte {
	c.S = (c.S + 1) & 0xFF
	return c.Bus.Read8(0x0100 + uint16(c.S))
}

func carryBit(set bool) byte {
	if set {
		return 1
	}
	return 0
}
