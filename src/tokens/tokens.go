// Package tokens turns program text into the flat token stream the
// interpreter executes.
package tokens

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Split breaks text on any run of whitespace. No token is ever empty.
func Split(text string) []string {
	return strings.Fields(text)
}

// Read reads r line by line and returns the tokens of the whole program.
// Line breaks are plain separators; lines have no length limit.
func Read(r io.Reader) ([]string, error) {
	reader := bufio.NewReader(r)
	ret := strings.Builder{}
	for {
		line, err := reader.ReadString('\n')
		ret.WriteString(line)
		ret.WriteRune(' ')
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	return Split(ret.String()), nil
}

// ReadFile reads the program in filename.
func ReadFile(filename string) ([]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", filename, err)
	}
	defer file.Close()

	toks, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}
	return toks, nil
}
