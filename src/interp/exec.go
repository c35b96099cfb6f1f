package interp

import (
	"fmt"
	"strconv"
	"strings"
)

// Run executes toks from the first token until EXIT, the end of the
// stream, or a fatal error. Machine state carries over between calls;
// the program counter and step count do not.
func (m *Machine) Run(toks []string) error {
	m.pc = 0
	m.steps = 0
	for m.pc < len(toks) {
		if m.limit > 0 && m.steps >= m.limit {
			m.log.Debug().Int("pc", m.pc).Int("steps", m.steps).Msg("step limit reached")
			return ErrStepLimit
		}
		m.steps++

		op := toks[m.pc]
		var err error
		switch op {
		case "INIT":
			err = m.initOp(toks)
		case "OUT":
			err = m.outOp(toks)
		case "STR":
			err = m.strOp(toks)
		case "OUTSTR":
			err = m.outstrOp(toks)
		case "LABEL":
			err = m.labelOp(toks)
		case "GOTO":
			err = m.gotoOp(toks)
		case "EXIT":
			m.log.Debug().Int("pc", m.pc).Msg("exit")
			return nil
		case "INC":
			err = m.incOp(toks)
		default:
			m.log.Debug().Int("pc", m.pc).Str("token", op).Msg("skipping unknown token")
			m.pc++
		}
		if err != nil {
			return fmt.Errorf("token %d: %s: %w", m.pc, op, err)
		}
	}
	return nil
}

// operands returns the n tokens following the instruction at pc.
func (m *Machine) operands(toks []string, n int) ([]string, error) {
	if m.pc+n >= len(toks) {
		return nil, fmt.Errorf("expected %d operand(s), program ends after %d", n, len(toks)-m.pc-1)
	}
	return toks[m.pc+1 : m.pc+1+n], nil
}

func (m *Machine) initOp(toks []string) error {
	args, err := m.operands(toks, 2)
	if err != nil {
		return err
	}
	name, value := args[0], args[1]
	switch {
	case isQuoted(value):
		m.strings[name] = strings.Trim(value, `"`)
	case strings.Contains(value, "."):
		f, err := parseFloat(value)
		if err != nil {
			return err
		}
		m.registers[regKey(name)] = truncate(f)
	default:
		n, err := parseInt(value)
		if err != nil {
			return err
		}
		m.registers[regKey(name)] = n
	}
	m.pc += 3
	return nil
}

func (m *Machine) outOp(toks []string) error {
	args, err := m.operands(toks, 1)
	if err != nil {
		return err
	}
	value := args[0]
	var text string
	if n, ok := m.registers[regKey(value)]; ok {
		text = strconv.FormatInt(int64(n), 10)
	} else if s, ok := m.strings[value]; ok {
		text = s
	} else if strings.Contains(value, ".") {
		f, err := parseFloat(value)
		if err != nil {
			return err
		}
		text = formatFloat(f)
	} else {
		text = value
	}
	if _, err := fmt.Fprintln(m.out, text); err != nil {
		return err
	}
	m.pc += 2
	return nil
}

func (m *Machine) strOp(toks []string) error {
	args, err := m.operands(toks, 1)
	if err != nil {
		return err
	}
	start := m.pc + 2
	end := len(toks)
	for i := start; i < len(toks); i++ {
		if toks[i] == "OUTSTR" {
			end = i
			break
		}
	}
	content := strings.Join(toks[start:end], " ")
	m.strings[args[0]] = strings.ReplaceAll(content, `\n`, "\n")
	m.pc = end
	return nil
}

func (m *Machine) outstrOp(toks []string) error {
	args, err := m.operands(toks, 1)
	if err != nil {
		return err
	}
	if s, ok := m.strings[args[0]]; ok {
		if _, err := fmt.Fprint(m.out, s); err != nil {
			return err
		}
	}
	m.pc += 2
	return nil
}

func (m *Machine) labelOp(toks []string) error {
	args, err := m.operands(toks, 1)
	if err != nil {
		return err
	}
	m.labels[args[0]] = m.pc
	m.log.Debug().Str("label", args[0]).Int("pc", m.pc).Msg("label")
	m.pc += 2
	return nil
}

func (m *Machine) gotoOp(toks []string) error {
	args, err := m.operands(toks, 1)
	if err != nil {
		return err
	}
	target, ok := m.labels[args[0]]
	if !ok {
		m.log.Debug().Str("label", args[0]).Int("pc", m.pc).Msg("goto unknown label")
		m.pc += 4
		return nil
	}
	m.log.Debug().Str("label", args[0]).Int("from", m.pc).Int("to", target).Msg("goto")
	m.pc = target
	return nil
}

func (m *Machine) incOp(toks []string) error {
	args, err := m.operands(toks, 2)
	if err != nil {
		return err
	}
	key, value := regKey(args[0]), args[1]
	cur, ok := m.registers[key]
	if ok {
		if n, err := strconv.ParseInt(value, 10, 32); err == nil {
			m.registers[key] = cur + int32(n)
		} else if s, ok := m.strings[value]; ok {
			joined := strconv.FormatInt(int64(cur), 10) + s
			if n, err := strconv.ParseInt(joined, 10, 32); err == nil {
				m.registers[key] = int32(n)
			}
		}
	}
	m.pc += 3
	return nil
}
