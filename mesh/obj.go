package mesh

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mfritz/swrast/internal/logx"
	"github.com/mfritz/swrast/linear"
)

// Load reads the Wavefront OBJ subset this renderer understands: "v x y z"
// vertex lines and "f i0 i1 i2 [i3 ...]" face lines, fan-triangulated (the
// first three indices form a triangle, and each index after that appends a
// triangle with the first vertex, the previous vertex, and itself).
// Per-face slash groups ("12/4/7") are accepted; only the position index is
// used. Indices are 1-based in the file and converted to 0-based.
//
// A missing or unreadable file is logged and an empty, already-normalized
// model is returned rather than an error: the renderer must be able to
// render an empty frame instead of crashing on a bad asset path.
func Load(path string) *Model {
	f, err := os.Open(path)
	if err != nil {
		logx.Error("mesh: open failed", "path", path, "err", err)
		return New()
	}
	defer f.Close()

	m, err := parseOBJ(f)
	if err != nil {
		logx.Error("mesh: parse failed", "path", path, "err", err)
		return New()
	}
	Normalize(m)
	if len(m.Normals) == 0 {
		ComputeNormals(m)
	}
	return m
}

func parseOBJ(r io.Reader) (*Model, error) {
	m := New()
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				continue
			}
			x, _ := strconv.ParseFloat(fields[1], 32)
			y, _ := strconv.ParseFloat(fields[2], 32)
			z, _ := strconv.ParseFloat(fields[3], 32)
			m.Positions = append(m.Positions, linear.V3{X: float32(x), Y: float32(y), Z: float32(z)})
		case "f":
			idx := make([]uint32, 0, len(fields)-1)
			for _, tok := range fields[1:] {
				group := strings.SplitN(tok, "/", 2)
				n, err := strconv.Atoi(group[0])
				if err != nil {
					continue
				}
				idx = append(idx, uint32(n-1))
			}
			for i := 2; i < len(idx); i++ {
				m.Indices = append(m.Indices, idx[0], idx[i-1], idx[i])
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return m, nil
}

// Normalize recenters the model on the arithmetic mean of its vertex
// positions and scales it uniformly by 2/maxAxisExtent, matching
// normalize_mesh in the reference implementation: every model ends up
// roughly filling the [-1,1] cube along its longest axis.
func Normalize(m *Model) {
	if len(m.Positions) == 0 {
		return
	}
	min, max := m.Positions[0], m.Positions[0]
	var sum linear.V3
	for _, p := range m.Positions {
		min = linear.V3{X: fmin(min.X, p.X), Y: fmin(min.Y, p.Y), Z: fmin(min.Z, p.Z)}
		max = linear.V3{X: fmax(max.X, p.X), Y: fmax(max.Y, p.Y), Z: fmax(max.Z, p.Z)}
		sum = sum.Add(p)
	}
	center := sum.Scale(1 / float32(len(m.Positions)))
	extent := max.Sub(min)
	maxExtent := fmax(extent.X, fmax(extent.Y, extent.Z))
	if maxExtent == 0 {
		return
	}
	scale := 2 / maxExtent
	for i, p := range m.Positions {
		m.Positions[i] = p.Sub(center).Scale(scale)
	}
}

// ComputeNormals assigns each vertex the average of the unit face normals
// of every triangle it belongs to, the same accumulate-then-normalize pass
// compute_vertex_normals performs.
func ComputeNormals(m *Model) {
	acc := make([]linear.V3, len(m.Positions))
	for i := 0; i+2 < len(m.Indices); i += 3 {
		i0, i1, i2 := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		p0, p1, p2 := m.Positions[i0], m.Positions[i1], m.Positions[i2]
		n := p1.Sub(p0).Cross(p2.Sub(p0))
		if n.Len() == 0 {
			continue
		}
		n = n.Unit()
		acc[i0] = acc[i0].Add(n)
		acc[i1] = acc[i1].Add(n)
		acc[i2] = acc[i2].Add(n)
	}
	m.Normals = make([]linear.V3, len(m.Positions))
	for i, n := range acc {
		if n.Len() == 0 {
			m.Normals[i] = linear.V3{X: 0, Y: 0, Z: 1}
			continue
		}
		m.Normals[i] = n.Unit()
	}
}

func fmin(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func fmax(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
