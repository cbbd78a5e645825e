// Package reader loads a source program from a file into a Grid,
// padding every line out to the width of the widest line with spaces.
package reader

import (
	"bufio"
	"os"

	"github.com/sarchlab/zfunge/ferr"
	"github.com/sarchlab/zfunge/grid"
)

// Load reads path line by line, pads every line to the width of the
// widest one with spaces, and builds a Grid from the result.
func Load(path string) (*grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ferr.WrapIO(err)
	}
	defer f.Close()

	var lines [][]rune
	width := 0

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := []rune(scanner.Text())
		if len(line) > width {
			width = len(line)
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, ferr.WrapIO(err)
	}

	for i, line := range lines {
		if len(line) == width {
			continue
		}
		padded := make([]rune, width)
		copy(padded, line)
		for j := len(line); j < width; j++ {
			padded[j] = ' '
		}
		lines[i] = padded
	}

	return grid.New(lines)
}
