package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dxball/internal/core"
	"github.com/vovakirdan/dxball/internal/game"
)

// Visual characters for rendering
const (
	BallChar   = '●'
	PaddleChar = '▀'
	BrickChar  = '█'
	CrackChar  = '▓' // two-hit brick that has been hit once
	BulletChar = '|'
	CursorText = "▶ "
)

// Minimum terminal size to draw the playfield.
const (
	minCols = 40
	minRows = 16
)

// hudRows is the number of screen rows above the playfield.
const hudRows = 1

// Renderer draws session snapshots into a core.Screen and turns the screen
// into styled text. Styles are cached per color.
type Renderer struct {
	lg     *lipgloss.Renderer
	keys   KeyMap
	styles map[core.Color]lipgloss.Style
}

// NewRenderer creates a renderer. A nil lipgloss renderer uses the default
// one bound to stdout; SSH sessions pass a renderer bound to their PTY.
func NewRenderer(lg *lipgloss.Renderer, keys KeyMap) *Renderer {
	if lg == nil {
		lg = lipgloss.DefaultRenderer()
	}
	return &Renderer{
		lg:     lg,
		keys:   keys,
		styles: make(map[core.Color]lipgloss.Style),
	}
}

// style returns the cached style for c.
func (r *Renderer) style(c core.Color) lipgloss.Style {
	if st, ok := r.styles[c]; ok {
		return st
	}
	st := r.lg.NewStyle()
	if !c.IsDefault() {
		st = st.Foreground(lipgloss.Color(c.Hex()))
	}
	r.styles[c] = st
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (r *Renderer) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(r.style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}

// Draw paints snap onto s.
func (r *Renderer) Draw(s *core.Screen, snap *game.Snapshot) {
	s.Clear()
	if s.Width() < minCols || s.Height() < minRows {
		s.DrawTextCentered(s.Height()/2, "Terminal too small")
		s.DrawTextCentered(s.Height()/2+1, fmt.Sprintf("need %dx%d", minCols, minRows))
		return
	}

	switch snap.Mode {
	case game.ModeMenu:
		r.drawMenu(s, snap)
	case game.ModeHelp:
		r.drawHelp(s)
	case game.ModeHighScores:
		r.drawHighScores(s, snap)
	case game.ModePlay:
		r.drawField(s, snap)
	case game.ModePause:
		r.drawField(s, snap)
		r.drawPause(s, snap)
	case game.ModeWin:
		r.drawField(s, snap)
		r.drawResult(s, snap, "Y O U   W I N", core.ColorGreen)
	case game.ModeGameOver:
		r.drawField(s, snap)
		r.drawResult(s, snap, "G A M E   O V E R", core.ColorRed)
	}
}

// projection maps y-up world coordinates to screen cells below the HUD.
type projection struct {
	w, h       float64
	cols, rows int
}

func newProjection(s *core.Screen, snap *game.Snapshot) projection {
	return projection{w: snap.Width, h: snap.Height, cols: s.Width(), rows: s.Height() - hudRows}
}

func (p projection) x(wx float64) int {
	return core.Clamp(int(wx/p.w*float64(p.cols)), 0, p.cols-1)
}

func (p projection) y(wy float64) int {
	return hudRows + core.Clamp(int((p.h-wy)/p.h*float64(p.rows)), 0, p.rows-1)
}

// span returns the cells [x0, x1) covered by the world interval [left, right],
// at least one cell wide.
func (p projection) span(left, right float64) (int, int) {
	x0 := int(math.Ceil(left / p.w * float64(p.cols)))
	x1 := int(right / p.w * float64(p.cols))
	x0 = core.Clamp(x0, 0, p.cols-1)
	x1 = core.Clamp(x1, 0, p.cols)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	return x0, x1
}

func (r *Renderer) drawField(s *core.Screen, snap *game.Snapshot) {
	r.drawHUD(s, snap)
	p := newProjection(s, snap)

	for _, b := range snap.Bricks {
		box := core.Box{Center: b.Pos, W: b.W, H: b.H}
		x0, x1 := p.span(box.Left(), box.Right())
		ch := BrickChar
		if b.HP == 1 && b.Score < 70 {
			ch = CrackChar
		}
		s.DrawRect(core.NewRect(x0, p.y(b.Pos.Y), x1-x0, 1), ch, b.Color)
	}

	for _, pk := range snap.Perks {
		s.SetColored(p.x(pk.Pos.X), p.y(pk.Pos.Y), pk.Type.Glyph(), pk.Type.Color())
	}

	for _, bu := range snap.Bullets {
		s.SetColored(p.x(bu.Pos.X), p.y(bu.Pos.Y), BulletChar, core.ColorYellow)
	}

	pad := core.Box{Center: snap.Paddle.Pos, W: snap.Paddle.W, H: snap.Paddle.H}
	x0, x1 := p.span(pad.Left(), pad.Right())
	padColor := core.ColorWhite
	if snap.Paddle.Shooting {
		padColor = core.ColorCyan
	}
	s.DrawRect(core.NewRect(x0, p.y(snap.Paddle.Pos.Y), x1-x0, 1), PaddleChar, padColor)

	ballColor := core.ColorWhite
	switch {
	case snap.Ball.Fireball:
		ballColor = core.ColorOrange
	case snap.Ball.Through:
		ballColor = core.ColorCyan
	}
	s.SetColored(p.x(snap.Ball.Pos.X), p.y(snap.Ball.Pos.Y), BallChar, ballColor)
}

func (r *Renderer) drawHUD(s *core.Screen, snap *game.Snapshot) {
	left := fmt.Sprintf(" SCORE %d  LIVES %s  TIME %s",
		snap.Score, strings.Repeat("♥", snap.Lives), formatTime(snap.PlayTime))
	s.DrawTextColored(0, 0, left, core.ColorWhite)

	var effects []string
	if t := snap.Timers.Fireball; t > 0 {
		effects = append(effects, fmt.Sprintf("FIRE %.0f", math.Ceil(t)))
	}
	if t := snap.Timers.Through; t > 0 {
		effects = append(effects, fmt.Sprintf("THRU %.0f", math.Ceil(t)))
	}
	if t := snap.Timers.Width; t > 0 {
		effects = append(effects, fmt.Sprintf("SIZE %.0f", math.Ceil(t)))
	}
	if t := snap.Timers.Shooting; t > 0 {
		effects = append(effects, fmt.Sprintf("GUN %.0f", math.Ceil(t)))
	}
	if len(effects) > 0 {
		right := strings.Join(effects, "  ") + " "
		s.DrawTextColored(s.Width()-len([]rune(right)), 0, right, core.ColorCyan)
	}
}

// drawPanel draws a centered bordered panel and returns its interior rect.
func drawPanel(s *core.Screen, w, h int) core.Rect {
	w = core.Min(w, s.Width())
	h = core.Min(h, s.Height())
	rect := core.NewRect((s.Width()-w)/2, (s.Height()-h)/2, w, h)
	s.DrawRect(rect, ' ', core.ColorDefault)
	s.DrawBox(rect)
	return core.NewRect(rect.X+1, rect.Y+1, w-2, h-2)
}

// TitleRule underlines panel titles.
const TitleRule = '─'

// drawTitle writes a panel title on the first interior row and rules the row
// below it.
func drawTitle(s *core.Screen, inner core.Rect, title string, c core.Color) {
	drawTitle(s, inner, title, c)
	s.DrawHLine(inner.X+1, inner.Y+2, inner.W-2, TitleRule, core.ColorGray)
}

func (r *Renderer) drawItems(s *core.Screen, y int, items []string, selected int) {
	for i, label := range items {
		if i == selected {
			s.DrawTextCenteredColored(y+i, CursorText+label, core.ColorYellow)
			continue
		}
		s.DrawTextCentered(y+i, label)
	}
}

func (r *Renderer) drawMenu(s *core.Screen, snap *game.Snapshot) {
	labels := make([]string, len(snap.MenuItems))
	for i, it := range snap.MenuItems {
		labels[i] = it.String()
	}

	inner := drawPanel(s, 36, len(labels)+8)
	drawTitle(s, inner, "D X - B A L L", core.ColorOrange)
	r.drawItems(s, inner.Y+3, labels, snap.MenuIndex)

	best := "no runs yet"
	if snap.HasBest {
		best = fmt.Sprintf("best %d in %s", snap.Best.Score, formatTime(snap.Best.Time))
	}
	s.DrawTextCenteredColored(inner.Bottom()-1, best, core.ColorGray)
}

func (r *Renderer) drawPause(s *core.Screen, snap *game.Snapshot) {
	inner := drawPanel(s, 28, len(game.PauseItems)+5)
	drawTitle(s, inner, "P A U S E D", core.ColorYellow)
	r.drawItems(s, inner.Y+3, game.PauseItems, snap.PauseIndex)
}

func (r *Renderer) drawResult(s *core.Screen, snap *game.Snapshot, title string, c core.Color) {
	inner := drawPanel(s, 36, 8)
	drawTitle(s, inner, title, c)
	s.DrawTextCentered(inner.Y+3, fmt.Sprintf("score %d", snap.Score))
	s.DrawTextCentered(inner.Y+4, fmt.Sprintf("time %s", formatTime(snap.PlayTime)))
	s.DrawTextCenteredColored(inner.Bottom()-1, "enter: menu", core.ColorGray)
}

func (r *Renderer) drawHighScores(s *core.Screen, snap *game.Snapshot) {
	inner := drawPanel(s, 36, len(snap.HighScores)+7)
	drawTitle(s, inner, "H I G H   S C O R E S", core.ColorOrange)

	if len(snap.HighScores) == 0 {
		s.DrawTextCenteredColored(inner.Y+3, "no runs yet", core.ColorGray)
	}
	for i, run := range snap.HighScores {
		line := fmt.Sprintf("%2d. %8d %9s", i+1, run.Score, formatTime(run.Time))
		c := core.ColorDefault
		if i == 0 {
			c = core.ColorYellow
		}
		s.DrawTextCenteredColored(inner.Y+3+i, line, c)
	}
	s.DrawTextCenteredColored(inner.Bottom()-1, "esc: back", core.ColorGray)
}

func (r *Renderer) drawHelp(s *core.Screen) {
	lines := []string{
		"Clear every brick. Don't let the ball fall.",
		"The ball speeds up the longer you play.",
		"",
	}
	for t := game.PerkExtraLife; t <= game.PerkShootingPaddle; t++ {
		lines = append(lines, fmt.Sprintf("%c  %s", t.Glyph(), t))
	}
	lines = append(lines, "")
	for _, group := range r.keys.FullHelp() {
		parts := make([]string, 0, len(group))
		for _, b := range group {
			h := b.Help()
			parts = append(parts, h.Key+" "+h.Desc)
		}
		lines = append(lines, strings.Join(parts, "  "))
	}

	width := 0
	for _, l := range lines {
		width = core.Max(width, len([]rune(l)))
	}
	inner := drawPanel(s, width+6, len(lines)+5)
	drawTitle(s, inner, "H E L P", core.ColorOrange)
	for i, l := range lines {
		s.DrawText(inner.X+2, inner.Y+3+i, l)
	}

	// Color perk glyphs to match the playfield.
	for t := game.PerkExtraLife; t <= game.PerkShootingPaddle; t++ {
		s.SetColored(inner.X+2, inner.Y+6+int(t), t.Glyph(), t.Color())
	}
}

func formatTime(sec float64) string {
	return fmt.Sprintf("%.1fs", sec)
}
