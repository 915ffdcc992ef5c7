package emu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"amber/cpu"
)

// The monitor is an interactive single-stepping front end over a Core:
// step, reset, freeze and thaw from the keyboard while watching memory,
// registers and the current instruction.

type model struct {
	core *Core

	prevPC uint16
	frozen []byte // last snapshot taken with "s"
	status string
	err    error
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case " ", "j":
			m.prevPC = m.core.Registers().PC
			if err := m.core.Step(); err != nil {
				m.err = err
				return m, tea.Quit
			}
			m.status = ""

		case "r":
			m.core.Reset()
			m.status = "reset"

		case "s":
			m.frozen = m.core.Snapshot()
			m.status = fmt.Sprintf("froze %d bytes", len(m.frozen))

		case "u":
			if m.frozen == nil {
				m.status = "nothing frozen yet"
				break
			}
			if err := m.core.Restore(m.frozen); err != nil {
				m.err = err
				return m, tea.Quit
			}
			m.status = "thawed"
		}
	}
	return m, nil
}

// renderRow renders 16 bytes of memory as one hex line, highlighting the
// byte at PC.
func (m model) renderRow(start uint16) string {
	pc := m.core.Registers().PC
	row := m.core.ReadMem(start, 16)
	s := fmt.Sprintf("%04x | ", start)
	for i, b := range row {
		if start+uint16(i) == pc {
			s += fmt.Sprintf("[%02x] ", b)
		} else {
			s += fmt.Sprintf(" %02x  ", b)
		}
	}
	return s
}

func (m model) memoryTable() string {
	header := "addr | "
	for b := 0; b < 16; b++ {
		header += fmt.Sprintf("  %01x  ", b)
	}

	pc := m.core.Registers().PC & 0xfff0
	rows := []string{header}
	// zero page, stack page, then the neighborhood of PC
	starts := []uint16{
		0x0000, 0x0010,
		0x01f0,
		pc - 16, pc, pc + 16, pc + 32,
	}
	for _, start := range starts {
		rows = append(rows, m.renderRow(start&0xfff0))
	}
	return strings.Join(rows, "\n")
}

func (m model) registerPanel() string {
	reg := m.core.Registers()
	var flags string
	for _, f := range []bool{
		reg.P&0x80 != 0, // N
		reg.P&0x40 != 0, // V
		reg.P&0x20 != 0, // 1
		reg.P&0x10 != 0, // B
		reg.P&0x08 != 0, // D
		reg.P&0x04 != 0, // I
		reg.P&0x02 != 0, // Z
		reg.P&0x01 != 0, // C
	} {
		if f {
			flags += "/ "
		} else {
			flags += "  "
		}
	}

	text, _ := m.core.Disassemble(reg.PC)
	return fmt.Sprintf(`
PC: %04x (%04x)  %s
 A: %02x   X: %02x   Y: %02x
SP: %02x   cycles: %d   halted: %v
N V 1 B D I Z C
%s
%s`,
		reg.PC, m.prevPC, text,
		reg.A, reg.X, reg.Y,
		reg.SP, reg.Cycles, reg.Halted,
		flags, m.status)
}

func (m model) View() string {
	op := m.core.ReadMem(m.core.Registers().PC, 1)[0]
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.memoryTable(),
			m.registerPanel(),
		),
		"",
		"space/j step · r reset · s freeze · u thaw · q quit",
		spew.Sdump(cpu.Opcodes[op]),
	)
}

// Monitor loads program at start, points the reset vector there, resets
// the core, and opens the interactive TUI.
func (c *Core) Monitor(program []byte, start uint16) error {
	c.LoadProgram(start, program)
	c.WriteMem(cpu.ResetVector, byte(start))
	c.WriteMem(cpu.ResetVector+1, byte(start>>8))
	c.Reset()

	out, err := tea.NewProgram(model{core: c}).Run()
	if err != nil {
		return err
	}
	if m, ok := out.(model); ok && m.err != nil {
		return m.err
	}
	return nil
}
