package mazefile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"puzzlebox/internal/maze"
)

// Block is the machine-readable maze data embedded inside a CAD text export.
// Rows covers the valid span only, Rows[0] being row MinY.
type Block struct {
	Orientation string // "INSIDE" or "OUTSIDE"
	W           int
	H           int // span height, MaxY-MinY+1
	MaxX        int
	Helix       int
	MinY        int
	MaxY        int
	EntranceX   int
	ExitX       int
	Rows        [][]uint8
}

// BlockFromResult builds the embedded block for a generated maze. The
// replicated visualization grid is exported, since that is what the printed
// part looks like.
func BlockFromResult(res *maze.Result, inside bool) *Block {
	orientation := "OUTSIDE"
	if inside {
		orientation = "INSIDE"
	}
	b := &Block{
		Orientation: orientation,
		W:           res.Viz.W,
		H:           res.MaxY - res.MinY + 1,
		MaxX:        res.MaxX,
		Helix:       res.Viz.Helix,
		MinY:        res.MinY,
		MaxY:        res.MaxY,
		EntranceX:   res.EntranceX,
		ExitX:       res.MaxX,
	}
	for y := res.MinY; y <= res.MaxY; y++ {
		row := make([]uint8, b.W)
		for x := 0; x < b.W; x++ {
			row[x] = res.Viz.At(x, y)
		}
		b.Rows = append(b.Rows, row)
	}
	return b
}

// WriteBlock emits the block, each line prefixed by the two-character comment
// marker of the host format (e.g. "//").
func WriteBlock(w io.Writer, prefix string, b *Block) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s MAZE_START %s %d %d %d %d %d %d %d %d\n",
		prefix, b.Orientation, b.W, b.H, b.MaxX, b.Helix, b.MinY, b.MaxY, b.EntranceX, b.ExitX)
	for i, row := range b.Rows {
		fmt.Fprintf(bw, "%s MAZE_ROW %d", prefix, b.MinY+i)
		for _, v := range row {
			fmt.Fprintf(bw, " %02x", v)
		}
		bw.WriteByte('\n')
	}
	fmt.Fprintf(bw, "%s MAZE_END\n", prefix)
	return bw.Flush()
}

// ParseBlock scans for a MAZE_START..MAZE_END block, stripping any leading
// comment markers. Legacy seven-field headers (without the entrance and exit
// columns) are accepted; those fields then default to -1 and MaxX.
func ParseBlock(r io.Reader) (*Block, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	var b *Block
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if i := strings.Index(line, "MAZE_"); i > 0 {
			line = line[i:]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "MAZE_START":
			if len(fields) != 8 && len(fields) != 10 {
				return nil, &ParseError{Line: lineNo, Msg: "MAZE_START needs 7 or 9 fields"}
			}
			n := make([]int, 0, 8)
			for _, s := range fields[2:] {
				v, err := strconv.Atoi(s)
				if err != nil {
					return nil, &ParseError{Line: lineNo, Msg: fmt.Sprintf("bad MAZE_START field %q", s)}
				}
				n = append(n, v)
			}
			b = &Block{
				Orientation: strings.ToUpper(fields[1]),
				W:           n[0],
				H:           n[1],
				MaxX:        n[2],
				Helix:       n[3],
				MinY:        n[4],
				MaxY:        n[5],
				EntranceX:   -1,
			}
			b.ExitX = b.MaxX
			if len(n) == 8 {
				b.EntranceX = n[6]
				b.ExitX = n[7]
			}
			b.Rows = make([][]uint8, b.H)
		case "MAZE_ROW":
			if b == nil {
				return nil, &ParseError{Line: lineNo, Msg: "MAZE_ROW before MAZE_START"}
			}
			if len(fields) < 2 {
				return nil, &ParseError{Line: lineNo, Msg: "MAZE_ROW needs a row number"}
			}
			y, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, &ParseError{Line: lineNo, Msg: fmt.Sprintf("bad MAZE_ROW number %q", fields[1])}
			}
			idx := y - b.MinY
			if idx < 0 || idx >= b.H {
				return nil, &ParseError{Line: lineNo, Msg: fmt.Sprintf("MAZE_ROW %d outside span %d..%d", y, b.MinY, b.MaxY)}
			}
			vals := fields[2:]
			if len(vals) != b.W {
				return nil, &ParseError{Line: lineNo, Msg: fmt.Sprintf("MAZE_ROW %d has %d values, expected %d", y, len(vals), b.W)}
			}
			row := make([]uint8, b.W)
			for x, s := range vals {
				v, err := strconv.ParseUint(s, 16, 8)
				if err != nil {
					return nil, &ParseError{Line: lineNo, Msg: fmt.Sprintf("MAZE_ROW %d: bad hex value %q", y, s)}
				}
				row[x] = uint8(v)
			}
			b.Rows[idx] = row
		case "MAZE_END":
			if b == nil {
				return nil, &ParseError{Line: lineNo, Msg: "MAZE_END before MAZE_START"}
			}
			for i, row := range b.Rows {
				if row == nil {
					return nil, &ParseError{Line: lineNo, Msg: fmt.Sprintf("missing MAZE_ROW %d", b.MinY+i)}
				}
			}
			return b, nil
		}
	}
	if b != nil {
		return nil, &ParseError{Line: lineNo, Msg: "missing MAZE_END"}
	}
	return nil, &ParseError{Line: lineNo, Msg: "no MAZE_START block found"}
}
