package maze

import "puzzlebox/pkg/deque"

type cellPos struct{ x, y int }

// replicate walks the carved structure from the exit cell and copies every
// visited cell's flags into dst at the next sector over (+W/nubs, same row),
// so all radial copies look identical from outside. The walk follows actual
// flags, not the nub-folded lookup; vertical neighbors wrap modulo H here,
// matching the traversal the reference parts were produced with. It returns
// the visited bitmap for verification.
func replicate(src, dst *Grid, startX, startY int) []bool {
	w, h := src.W, src.H
	sector := w / src.Nubs
	visited := make([]bool, w*h)

	copyOver := func(x, y int) {
		ox := (x + sector) % w
		dst.cells[y*w+ox] = dst.cells[y*w+x]
	}

	q := deque.New[cellPos](w * h / 4)
	q.PushBack(cellPos{startX, startY})
	visited[startY*w+startX] = true
	copyOver(startX, startY)

	for {
		p, ok := q.PopFront()
		if !ok {
			break
		}
		v := src.At(p.x, p.y)
		for _, d := range Dirs {
			if v&d.Bit() == 0 {
				continue
			}
			dx, dy := d.Step()
			nx := ((p.x+dx)%w + w) % w
			ny := ((p.y+dy)%h + h) % h
			if visited[ny*w+nx] {
				continue
			}
			visited[ny*w+nx] = true
			q.PushBack(cellPos{nx, ny})
			copyOver(nx, ny)
		}
	}
	return visited
}
