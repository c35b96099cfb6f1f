// Package interp executes token streams against a small register machine.
//
// Instructions are decoded straight from the token slice; there is no
// separate parse step. Each instruction moves the program counter itself,
// which is what lets LABEL and GOTO jump to arbitrary token positions.
package interp

import (
	"errors"
	"io"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// MemorySize is the number of reserved memory cells in a Machine.
const MemorySize = 100

// ErrStepLimit is returned by Run when a step limit is set and reached.
var ErrStepLimit = errors.New("step limit reached")

// Machine is the state of one program run. It is not safe for concurrent use.
type Machine struct {
	registers map[rune]int32
	strings   map[string]string
	labels    map[string]int
	// Reserved; no instruction addresses memory yet.
	memory [MemorySize]int32

	pc    int
	steps int

	out   io.Writer
	log   zerolog.Logger
	limit int
}

// Option configures a Machine.
type Option func(*Machine)

// WithLogger sets the logger used for execution tracing.
func WithLogger(l zerolog.Logger) Option {
	return func(m *Machine) {
		m.log = l
	}
}

// WithStepLimit makes each Run give up with ErrStepLimit after n
// dispatched instructions. Zero or less means no limit.
func WithStepLimit(n int) Option {
	return func(m *Machine) {
		m.limit = n
	}
}

// New returns a machine that prints to out.
func New(out io.Writer, opts ...Option) *Machine {
	m := &Machine{
		registers: make(map[rune]int32),
		strings:   make(map[string]string),
		labels:    make(map[string]int),
		out:       out,
		log:       log.Logger,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Register returns the value of register name.
func (m *Machine) Register(name rune) (int32, bool) {
	v, ok := m.registers[name]
	return v, ok
}

// Text returns the string variable or text block called name.
func (m *Machine) Text(name string) (string, bool) {
	s, ok := m.strings[name]
	return s, ok
}

// Label returns the token index recorded for label name.
func (m *Machine) Label(name string) (int, bool) {
	idx, ok := m.labels[name]
	return idx, ok
}

// Memory returns cell i of reserved memory. It panics if i is not in
// [0, MemorySize).
func (m *Machine) Memory(i int) int32 {
	return m.memory[i]
}

// PC is the current program counter.
func (m *Machine) PC() int { return m.pc }

// Steps is the number of instructions dispatched by the latest Run,
// unknown tokens included.
func (m *Machine) Steps() int { return m.steps }
