package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/poiesic/bayesearch"
	"github.com/poiesic/bayesearch/core"
)

// Marker runes.
const (
	LastKnownMarker = '+'
	FoundMarker     = '*'
)

// Canvas is a cell-addressed drawing surface. tcell.Screen satisfies it.
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
}

// Area is one search area as placed on the chart.
type Area struct {
	Name string
	Rect core.Rect
}

// View is a snapshot of everything the chart shows.
type View struct {
	Areas         []Area
	LastKnown     core.Coord
	Found         *core.Coord // chart position of the target, nil until found
	Priors        []float64
	Effectiveness []float64
	Round         int
	Status        string
}

// ViewOf captures the current state of a game. The target is only revealed
// once the game is resolved.
func ViewOf(game *bayesearch.Game) View {
	cfg := game.Config()
	view := View{
		LastKnown:     cfg.LastKnown,
		Priors:        game.Priors(),
		Effectiveness: game.Effectiveness(),
		Round:         game.Round(),
	}
	for i, area := range cfg.Areas {
		view.Areas = append(view.Areas, Area{Name: cfg.AreaName(core.AreaID(i + 1)), Rect: area.Rect})
	}
	if game.Phase() == bayesearch.PhaseResolved {
		found := game.GlobalTarget()
		view.Found = &found
	}
	return view
}

// Styles holds the styles used for each chart element.
type Styles struct {
	Border    tcell.Style
	Label     tcell.Style
	LastKnown tcell.Style
	Found     tcell.Style
	Text      tcell.Style
}

// DefaultStyles returns the chart's default color scheme.
func DefaultStyles() Styles {
	return Styles{
		Border:    tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite),
		Label:     tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite).Bold(true),
		LastKnown: tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
		Found:     tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
		Text:      tcell.StyleDefault,
	}
}

// Chart draws views onto a canvas.
type Chart struct {
	styles Styles
}

// ChartOption configures a Chart.
type ChartOption func(*Chart)

// WithStyles replaces the default styles.
func WithStyles(styles Styles) ChartOption {
	return func(c *Chart) {
		c.styles = styles
	}
}

// NewChart creates a chart renderer.
func NewChart(opts ...ChartOption) *Chart {
	c := &Chart{styles: DefaultStyles()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// PanelRows returns the number of canvas rows below the map used by the
// legend and the probability panel for n areas.
func PanelRows(n int) int {
	return n + 3
}

// Draw renders view onto canvas. Nothing is drawn when the canvas is too
// small to hold the panel and at least a two-row map.
func (c *Chart) Draw(canvas Canvas, view View) {
	width, height := canvas.Size()
	mapRows := height - PanelRows(len(view.Areas))
	if width < 2 || mapRows < 2 {
		return
	}

	proj := newProjection(view, width, mapRows)
	for _, area := range view.Areas {
		c.drawArea(canvas, proj, area)
	}

	x, y := proj.cell(view.LastKnown)
	canvas.SetContent(x, y, LastKnownMarker, nil, c.styles.LastKnown)
	if view.Found != nil {
		x, y = proj.cell(*view.Found)
		canvas.SetContent(x, y, FoundMarker, nil, c.styles.Found)
	}

	c.drawPanel(canvas, view, mapRows, width)
}

func (c *Chart) drawArea(canvas Canvas, proj projection, area Area) {
	x0, y0 := proj.cell(core.Coord{X: area.Rect.MinX, Y: area.Rect.MinY})
	x1, y1 := proj.cell(core.Coord{X: area.Rect.MaxX, Y: area.Rect.MaxY})

	for x := x0 + 1; x < x1; x++ {
		canvas.SetContent(x, y0, '─', nil, c.styles.Border)
		canvas.SetContent(x, y1, '─', nil, c.styles.Border)
	}
	for y := y0 + 1; y < y1; y++ {
		canvas.SetContent(x0, y, '│', nil, c.styles.Border)
		canvas.SetContent(x1, y, '│', nil, c.styles.Border)
	}
	canvas.SetContent(x0, y0, '┌', nil, c.styles.Border)
	canvas.SetContent(x1, y0, '┐', nil, c.styles.Border)
	canvas.SetContent(x0, y1, '└', nil, c.styles.Border)
	canvas.SetContent(x1, y1, '┘', nil, c.styles.Border)

	// Label sits on the top border, clipped to the box.
	drawText(canvas, x0+1, y0, x1, area.Name, c.styles.Label)
}

func (c *Chart) drawPanel(canvas Canvas, view View, top, width int) {
	legend := fmt.Sprintf("%c Last known position  %c Found", LastKnownMarker, FoundMarker)
	drawText(canvas, 0, top, width, legend, c.styles.Text)

	header := fmt.Sprintf("Round %d", view.Round)
	if view.Status != "" {
		header += "  " + view.Status
	}
	drawText(canvas, 0, top+1, width, header, c.styles.Text)

	for i, area := range view.Areas {
		line := fmt.Sprintf("Area %-6s P=%.3f  E=%.3f", area.Name, at(view.Priors, i), at(view.Effectiveness, i))
		drawText(canvas, 0, top+2+i, width, line, c.styles.Text)
	}
}

// drawText writes text from column x, stopping before column limit.
func drawText(canvas Canvas, x, y, limit int, text string, style tcell.Style) {
	for _, r := range text {
		if x >= limit {
			return
		}
		canvas.SetContent(x, y, r, nil, style)
		x++
	}
}

func at(values []float64, i int) float64 {
	if i < len(values) {
		return values[i]
	}
	return 0
}

// projection maps chart coordinates to canvas cells.
type projection struct {
	minX, minY   int
	spanX, spanY int
	cols, rows   int
}

func newProjection(view View, cols, rows int) projection {
	minX, minY := view.LastKnown.X, view.LastKnown.Y
	maxX, maxY := minX, minY
	for _, area := range view.Areas {
		minX = min(minX, area.Rect.MinX)
		minY = min(minY, area.Rect.MinY)
		maxX = max(maxX, area.Rect.MaxX)
		maxY = max(maxY, area.Rect.MaxY)
	}
	return projection{
		minX:  minX,
		minY:  minY,
		spanX: max(maxX-minX, 1),
		spanY: max(maxY-minY, 1),
		cols:  cols,
		rows:  rows,
	}
}

// cell returns the canvas cell for c, clamped to the map region.
func (p projection) cell(c core.Coord) (int, int) {
	x := (c.X - p.minX) * (p.cols - 1) / p.spanX
	y := (c.Y - p.minY) * (p.rows - 1) / p.spanY
	return min(max(x, 0), p.cols-1), min(max(y, 0), p.rows-1)
}
