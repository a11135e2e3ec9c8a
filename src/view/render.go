package view

import (
	"bytes"

	"galaxylife/src/simulation"
	"galaxylife/src/universe"
)

//Render draws the area row by row, rows are separated by line feeds
//maxW and maxH crop the output, zero means no limit
func Render(a simulation.Area, live string, dead string, maxW int, maxH int) string {
	var b bytes.Buffer
	for i, l := range a.Entities {
		if maxH > 0 && i >= maxH {
			break
		}
		if i != 0 {
			b.WriteByte('\n')
		}
		for j, e := range l {
			if maxW > 0 && j >= maxW {
				break
			}
			if e == universe.Alive {
				b.WriteString(live)
			} else {
				b.WriteString(dead)
			}
		}
	}
	return b.String()
}
