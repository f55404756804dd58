package render

import (
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/katalvlaran/zernigo/modes"
	"github.com/katalvlaran/zernigo/osa"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// DefaultTileSize is the square side of one rendered mode.
const DefaultTileSize = 4 * vg.Inch

// PNG renders stacks to a PNG file. The zero value is not usable; build one
// with New and adjust fields before the first Render if needed.
type PNG struct {
	// Path is the output file.
	Path string
	// Colors is the heatmap palette (diverging, centered on zero).
	Colors palette.Palette
	// TileSize is the square side of one mode tile.
	TileSize vg.Length
}

// compile-time check: PNG satisfies the modes collaborator contract.
var _ modes.Renderer = (*PNG)(nil)

// New returns a PNG renderer writing to path, with the Moreland smooth
// blue–red palette and DefaultTileSize tiles.
func New(path string) *PNG {
	return &PNG{
		Path:     path,
		Colors:   moreland.SmoothBlueRed().Palette(255),
		TileSize: DefaultTileSize,
	}
}

// Render writes the stack to p.Path: one heatmap for a single mode, a
// pyramid of tiles for several. The stack is read-only to the renderer.
// Complexity: O(k·size²) plus encoding.
func (p *PNG) Render(st *modes.Stack) error {
	if st == nil || st.Len() == 0 {
		return ErrEmptyStack
	}
	if p.Path == "" {
		return ErrNoPath
	}
	if st.Len() == 1 {
		return p.renderOne(st)
	}

	return p.renderPyramid(st)
}

// renderOne draws a single titled heatmap.
func (p *PNG) renderOne(st *modes.Stack) error {
	lo, hi := heatRange(st)
	pl := plot.New()
	pl.Title.Text = fmt.Sprintf("Zernike mode %d (%s)", st.Index(0), st.Label(0))
	pl.HideAxes()

	h := plotter.NewHeatMap(unitGrid{st.Layer(0)}, p.Colors)
	h.Min, h.Max = lo, hi
	pl.Add(h)

	return pl.Save(p.TileSize, p.TileSize, p.Path)
}

// renderPyramid lays the modes out as the classic Zernike pyramid: tile row
// n holds the n+1 modes of radial degree n, at column j − n(n+1)/2. Tiles
// for unselected indices stay blank.
func (p *PNG) renderPyramid(st *modes.Stack) error {
	nMax, _, err := osa.ToNM(st.Index(st.Len() - 1))
	if err != nil {
		return err
	}
	rows := nMax + 1

	lo, hi := heatRange(st)
	plots := make([][]*plot.Plot, rows)
	for r := range plots {
		plots[r] = make([]*plot.Plot, rows)
	}
	for k := 0; k < st.Len(); k++ {
		j := st.Index(k)
		n, _, err := osa.ToNM(j)
		if err != nil {
			return err
		}
		col := j - n*(n+1)/2

		pl := plot.New()
		pl.Title.Text = strconv.Itoa(j)
		pl.HideAxes()
		h := plotter.NewHeatMap(unitGrid{st.Layer(k)}, p.Colors)
		h.Min, h.Max = lo, hi
		pl.Add(h)
		plots[n][col] = pl
	}

	img := vgimg.New(vg.Length(rows)*p.TileSize, vg.Length(rows)*p.TileSize)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: rows,
		Cols: rows,
		PadX: vg.Millimeter,
		PadY: vg.Millimeter,
	}
	canvases := plot.Align(plots, tiles, dc)
	for r := 0; r < rows; r++ {
		for c := 0; c < rows; c++ {
			if plots[r][c] != nil {
				plots[r][c].Draw(canvases[r][c])
			}
		}
	}

	w, err := os.Create(p.Path)
	if err != nil {
		return err
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err = png.WriteTo(w); err != nil {
		w.Close()

		return err
	}

	return w.Close()
}

// heatRange returns a zero-centered range covering every layer, so the
// diverging palette maps zero to its midpoint on all tiles.
func heatRange(st *modes.Stack) (lo, hi float64) {
	peak := 0.0
	for k := 0; k < st.Len(); k++ {
		m := st.Layer(k)
		peak = math.Max(peak, math.Abs(mat.Max(m)))
		peak = math.Max(peak, math.Abs(mat.Min(m)))
	}
	if peak == 0 {
		peak = 1
	}

	return -peak, peak
}

// unitGrid adapts a dense matrix to plotter.GridXYZ with unit spacing.
// Matrix row 0 is drawn at the top of the plot, matching image convention.
type unitGrid struct {
	m *mat.Dense
}

func (g unitGrid) Dims() (c, r int) {
	rr, cc := g.m.Dims()

	return cc, rr
}

func (g unitGrid) Z(c, r int) float64 {
	rr, _ := g.m.Dims()

	return g.m.At(rr-1-r, c)
}

func (g unitGrid) X(c int) float64 { return float64(c) }

func (g unitGrid) Y(r int) float64 { return float64(r) }
