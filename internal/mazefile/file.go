// Package mazefile reads and writes the on-disk maze representations: the
// plain-text maze file and the comment block embedded in CAD exports.
package mazefile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"puzzlebox/internal/maze"
)

const header = "PUZZLEBOX_MAZE v1.0"

// ParseError reports a malformed maze file; the file is unreadable.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("maze file line %d: %s", e.Line, e.Msg)
}

// File is the parsed form of a maze text file. Cells is row-major, row 0
// first, matching the DATA section order.
type File struct {
	Width   int
	Height  int
	ExitX   int
	HasExit bool
	Cells   []uint8
}

// FromResult captures a generated maze for serialization. useViz selects the
// replicated visualization grid instead of the carved source grid.
func FromResult(res *maze.Result, useViz bool) *File {
	g := res.Grid
	if useViz {
		g = res.Viz
	}
	cells := make([]uint8, len(g.Cells()))
	copy(cells, g.Cells())
	return &File{
		Width:   g.W,
		Height:  g.H,
		ExitX:   res.MaxX,
		HasExit: true,
		Cells:   cells,
	}
}

// Grid rebuilds a maze grid from the parsed cells.
func (f *File) Grid(helix, nubs int) *maze.Grid {
	g := maze.NewGrid(f.Width, f.Height, helix, nubs)
	copy(g.Cells(), f.Cells)
	return g
}

// Write emits the maze file format:
//
//	PUZZLEBOX_MAZE v1.0
//	WIDTH <int>
//	HEIGHT <int>
//	EXIT_X <int>
//	DATA
//	<H rows of W space-separated 2-digit hex bytes, row 0 first>
//	END
func Write(w io.Writer, f *File) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\n", header)
	fmt.Fprintf(bw, "WIDTH %d\n", f.Width)
	fmt.Fprintf(bw, "HEIGHT %d\n", f.Height)
	if f.HasExit {
		fmt.Fprintf(bw, "EXIT_X %d\n", f.ExitX)
	}
	fmt.Fprintln(bw, "DATA")
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			if x > 0 {
				bw.WriteByte(' ')
			}
			fmt.Fprintf(bw, "%02x", f.Cells[y*f.Width+x])
		}
		bw.WriteByte('\n')
	}
	fmt.Fprintln(bw, "END")
	return bw.Flush()
}

// Read parses a maze file, accepting ENTRY_X as a synonym for EXIT_X.
func Read(r io.Reader) (*File, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	lineNo := 0
	next := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		lineNo++
		return strings.TrimSpace(sc.Text()), true
	}

	line, ok := next()
	if !ok || !strings.HasPrefix(line, "PUZZLEBOX_MAZE") {
		return nil, &ParseError{Line: lineNo, Msg: "missing PUZZLEBOX_MAZE header"}
	}
	if hdr := strings.Fields(line); len(hdr) < 2 || hdr[1] != "v1.0" {
		return nil, &ParseError{Line: lineNo, Msg: fmt.Sprintf("unsupported maze file version in %q", line)}
	}

	f := &File{Width: -1, Height: -1}
	inData := false
	for {
		line, ok = next()
		if !ok {
			return nil, &ParseError{Line: lineNo, Msg: "missing WIDTH, HEIGHT, or DATA"}
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "WIDTH", "HEIGHT", "EXIT_X", "ENTRY_X":
			if len(fields) != 2 {
				return nil, &ParseError{Line: lineNo, Msg: fmt.Sprintf("%s needs one integer", fields[0])}
			}
			v, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, &ParseError{Line: lineNo, Msg: fmt.Sprintf("bad %s value %q", fields[0], fields[1])}
			}
			switch fields[0] {
			case "WIDTH":
				f.Width = v
			case "HEIGHT":
				f.Height = v
			default:
				f.ExitX = v
				f.HasExit = true
			}
		case "DATA":
			inData = true
		default:
			return nil, &ParseError{Line: lineNo, Msg: fmt.Sprintf("unexpected %q in header", fields[0])}
		}
		if inData {
			break
		}
	}
	if f.Width <= 0 || f.Height <= 0 {
		return nil, &ParseError{Line: lineNo, Msg: "missing WIDTH, HEIGHT, or DATA"}
	}

	f.Cells = make([]uint8, f.Width*f.Height)
	for y := 0; y < f.Height; y++ {
		line, ok = next()
		if !ok {
			return nil, &ParseError{Line: lineNo, Msg: fmt.Sprintf("unexpected end of file at row %d", y)}
		}
		if line == "END" {
			return nil, &ParseError{Line: lineNo, Msg: fmt.Sprintf("premature END marker at row %d", y)}
		}
		vals := strings.Fields(line)
		if len(vals) != f.Width {
			return nil, &ParseError{Line: lineNo, Msg: fmt.Sprintf("row %d has %d values, expected %d", y, len(vals), f.Width)}
		}
		for x, s := range vals {
			v, err := strconv.ParseUint(s, 16, 8)
			if err != nil {
				return nil, &ParseError{Line: lineNo, Msg: fmt.Sprintf("row %d: bad hex value %q", y, s)}
			}
			f.Cells[y*f.Width+x] = uint8(v)
		}
	}
	for {
		line, ok = next()
		if !ok {
			return nil, &ParseError{Line: lineNo, Msg: "missing END marker"}
		}
		if line == "" {
			continue
		}
		if line != "END" {
			return nil, &ParseError{Line: lineNo, Msg: fmt.Sprintf("expected END, found %q", line)}
		}
		return f, nil
	}
}
