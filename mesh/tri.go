package mesh

import (
	"bufio"
	"io"
	"strconv"
)

// WriteTriangles writes every face as a closed outline: four "x y" lines
// (the first vertex repeated) followed by a blank line.
func WriteTriangles(w io.Writer, m *Mesh) error {
	bw := bufio.NewWriter(w)
	var buf []byte
	for _, f := range m.Faces {
		buf = buf[:0]
		for _, i := range [4]int{f[0], f[1], f[2], f[0]} {
			p := m.Points[i]
			buf = strconv.AppendFloat(buf, p.X, 'f', -1, 64)
			buf = append(buf, ' ')
			buf = strconv.AppendFloat(buf, p.Y, 'f', -1, 64)
			buf = append(buf, '\n')
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}

	return bw.Flush()
}
