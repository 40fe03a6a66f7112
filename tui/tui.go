// Package tui hosts the CPU in an interactive terminal UI: it drives the
// fetch-decode-execute loop one step (or one free-run tick) at a time, feeds
// the input latch and entropy byte the core's external interface expects,
// and renders the 32x32 framebuffer plus register file. Adapted from
// hejops-gone/cpu/debugger.go's bubbletea model, generalized from a raw
// page-table memory dump to the framebuffer/registers view this emulator's
// external interface calls for.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"nesemu/cpu"
	"nesemu/mem"
)

var keyCode = map[string]byte{
	"w": 0x77,
	"a": 0x61,
	"s": 0x73,
	"d": 0x64,
}

var pixelStyle = lipgloss.NewStyle().Width(2)

var registerStyle = lipgloss.NewStyle().
	Padding(0, 1).
	Border(lipgloss.RoundedBorder())

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

type tickMsg struct{}

func tick() tea.Cmd {
	return tea.Tick(0, func(time.Time) tea.Msg { return tickMsg{} })
}

type model struct {
	c       *cpu.Cpu
	running bool
	lastOp  string
	err     error
	entropy byte
}

// New builds the bubbletea model wrapping an already-Reset Cpu.
func New(c *cpu.Cpu) tea.Model {
	return model{c: c}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) nextEntropy() byte {
	m.entropy = byte((uint32(m.entropy)*1103515245 + 12345) & 0xFF)
	return m.entropy
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		s := msg.String()
		switch s {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "w", "a", "s", "d":
			m.c.Bus.SetLastKey(keyCode[s])
			return m, nil

		case " ", "n":
			m.step()
			return m, nil

		case "r":
			m.running = !m.running
			if m.running {
				return m, tick()
			}
			return m, nil
		}

	case tickMsg:
		if !m.running {
			return m, nil
		}
		m.step()
		if m.err != nil {
			m.running = false
			return m, nil
		}
		return m, tick()
	}
	return m, nil
}

func (m *model) step() {
	m.entropy = m.nextEntropy()
	m.c.Bus.SetEntropy(m.entropy)
	op, err := m.c.Step()
	if err != nil {
		m.err = err
		return
	}
	m.lastOp = op
}

func (m model) registers() string {
	s := m.c.State()
	return registerStyle.Render(fmt.Sprintf(
		"PC %04X  OP %s\nA  %02X  X  %02X  Y  %02X  S  %02X\nP  %s",
		s.PC, m.lastOp, s.A, s.X, s.Y, s.S, spew.Sprintf("%v", s.P),
	))
}

func (m model) framebuffer() string {
	fb := m.c.Bus.Framebuffer()
	var rows []string
	for y := 0; y < mem.FramebufferHeight; y++ {
		var row strings.Builder
		for x := 0; x < mem.FramebufferWidth; x++ {
			v := fb[y*mem.FramebufferWidth+x]
			cell := pixelStyle.Background(paletteColor(v)).Render("  ")
			row.WriteString(cell)
		}
		rows = append(rows, row.String())
	}
	return strings.Join(rows, "\n")
}

// paletteColor maps a framebuffer byte to its ANSI color per the documented
// byte->color convention: 0 black, 1 white, 2/9 grey, 3/10 red, 4/11 green,
// 5/12 blue, 6/13 magenta, 7/14 yellow, anything else cyan.
func paletteColor(v byte) lipgloss.Color {
	switch v {
	case 0:
		return lipgloss.Color("0")
	case 1:
		return lipgloss.Color("15")
	case 2, 9:
		return lipgloss.Color("8")
	case 3, 10:
		return lipgloss.Color("1")
	case 4, 11:
		return lipgloss.Color("2")
	case 5, 12:
		return lipgloss.Color("4")
	case 6, 13:
		return lipgloss.Color("5")
	case 7, 14:
		return lipgloss.Color("3")
	default:
		return lipgloss.Color("6")
	}
}

func (m model) View() string {
	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.framebuffer(),
		"  ",
		m.registers(),
	)
	if m.err != nil {
		return lipgloss.JoinVertical(lipgloss.Left, body, errorStyle.Render(m.err.Error()))
	}
	help := "space/n: step   r: run/pause   w a s d: input   q: quit"
	return lipgloss.JoinVertical(lipgloss.Left, body, help)
}

// Run starts the interactive debugger over an already-Reset Cpu.
func Run(c *cpu.Cpu) error {
	_, err := tea.NewProgram(New(c)).Run()
	return err
}
