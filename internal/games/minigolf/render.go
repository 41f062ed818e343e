package minigolf

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-minigolf/internal/core"
)

const (
	powerBarWidth = 20
	aimMinLength  = 0.5 // meters at zero power
	aimMaxLength  = 3.0 // meters at full power
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	if g.screenTooSmall {
		g.renderTooSmall(dst)
		return
	}
	if len(g.course.Holes) == 0 {
		dst.DrawTextCentered(dst.Height()/2, "Course has no holes")
		return
	}

	g.renderCourse(dst)
	if g.state == StateAiming {
		g.renderPreview(dst)
		g.renderAim(dst)
	}
	g.renderBall(dst)
	g.renderHUD(dst)

	switch g.state {
	case StatePaused:
		g.renderBanner(dst, []string{"PAUSED", "", "Press P to resume"}, core.ColorBrightYellow)
	case StateSunk:
		g.renderSunk(dst)
	case StateRoundOver:
		g.renderRoundOver(dst)
	}
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	msg := "Terminal too small!"
	need := fmt.Sprintf("Need %dx%d", minScreenW, minScreenH)
	have := fmt.Sprintf("Have %dx%d", g.runtime.ScreenW, g.runtime.ScreenH)

	cy := dst.Height() / 2
	dst.DrawTextCentered(cy-1, msg)
	dst.DrawTextCentered(cy, need)
	dst.DrawTextCentered(cy+1, have)
}

// renderCourse draws the green, walls, tee and cup.
func (g *Game) renderCourse(dst *core.Screen) {
	hole := g.currentHole()

	green := g.view.BoxToRect(hole.Bounds())
	dst.DrawRectColored(green, GreenChar, core.ColorGreen)

	for _, w := range hole.Walls {
		dst.DrawRectColored(g.view.BoxToRect(w.Box(0)), WallChar, core.ColorBrown)
	}

	tx, ty := g.view.ToScreen(hole.Start)
	dst.SetColored(tx, ty, TeeChar, core.ColorGray)

	cx, cy := g.view.ToScreen(hole.Cup.Position)
	dst.SetColored(cx, cy, CupChar, core.ColorBrightWhite)
}

// renderAim draws the aim line; its length follows the power.
func (g *Game) renderAim(dst *core.Screen) {
	ball := g.engine.Position()
	dir := g.aim.Direction()
	length := aimMinLength + (aimMaxLength-aimMinLength)*g.aim.PowerFraction()

	bx, by := g.view.ToScreen(ball)
	step := 0.5 / g.view.Scale // roughly half a column
	lastX, lastY := bx, by
	for d := step; d <= length; d += step {
		x, y := g.view.ToScreen(ball.Add(dir.Scale(d)))
		if (x == bx && y == by) || (x == lastX && y == lastY) {
			continue
		}
		if g.inArea(x, y) {
			dst.SetColored(x, y, AimChar, core.ColorYellow)
		}
		lastX, lastY = x, y
	}
	if g.inArea(lastX, lastY) && (lastX != bx || lastY != by) {
		dst.SetColored(lastX, lastY, AimTipChar, core.ColorBrightYellow)
	}
}

func (g *Game) renderPreview(dst *core.Screen) {
	for _, p := range g.preview {
		x, y := g.view.ToScreen(p)
		if g.inArea(x, y) {
			dst.SetColored(x, y, PreviewChar, core.ColorCyan)
		}
	}
}

// renderBall draws the ball, pinned to the area edge when it leaves the view.
func (g *Game) renderBall(dst *core.Screen) {
	if g.engine.Captured() {
		return
	}
	x, y := g.view.ToScreen(g.engine.Position())
	a := g.view.Area
	x = core.Clamp(x, a.X, a.Right()-1)
	y = core.Clamp(y, a.Y, a.Bottom()-1)
	dst.SetColored(x, y, BallChar, core.ColorBrightWhite)
}

// renderHUD draws the two status rows and the help line.
func (g *Game) renderHUD(dst *core.Screen) {
	hole := g.currentHole()
	strokes := g.engine.Strokes()

	info := fmt.Sprintf(" %s  Hole %d/%d  Par %d  Strokes %d  Total %d (%s)",
		g.course.Name, g.holeIndex+1, len(g.course.Holes), hole.Par, strokes,
		g.State().Score, FormatDiff(g.card.Diff()))
	if g.mode == ModePractice {
		info += "  [practice]"
	}
	dst.DrawTextColored(0, 0, info, core.ColorBrightCyan)

	filled := int(g.aim.PowerFraction()*powerBarWidth + 0.5)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", powerBarWidth-filled)
	dst.DrawText(1, 1, "Power ")
	dst.DrawTextColored(7, 1, bar, powerColor(g.aim.PowerFraction()))
	dst.DrawText(8+powerBarWidth, 1, fmt.Sprintf("%4.1f", g.aim.Power))

	status, color := ParStatus(strokes, hole.Par)
	if g.notice != "" {
		status, color = g.notice, core.ColorOrange
	}
	dst.DrawTextColored(14+powerBarWidth, 1, status, color)

	help := "←/→ aim  ↑/↓ power  space shoot  drag mouse  r tee  t preview  p pause  q quit"
	if g.state == StateSunk {
		help = "enter next hole  q quit"
	}
	dst.DrawTextColored(1, dst.Height()-1, help, core.ColorGray)
}

func powerColor(f float64) core.Color {
	switch {
	case f < 0.4:
		return core.ColorGreen
	case f < 0.75:
		return core.ColorYellow
	default:
		return core.ColorRed
	}
}

func (g *Game) renderSunk(dst *core.Screen) {
	if len(g.card.Results) == 0 {
		return
	}
	hole := g.currentHole()
	last := g.card.Results[len(g.card.Results)-1]
	status, color := ParStatus(last.Strokes, last.Par)

	lines := []string{
		fmt.Sprintf("Hole %d complete", hole.Number),
		"",
		status,
		fmt.Sprintf("%d strokes, par %d", last.Strokes, last.Par),
		"",
		"Press Enter for the next hole",
	}
	g.renderBanner(dst, lines, color)
}

func (g *Game) renderRoundOver(dst *core.Screen) {
	lines := []string{"ROUND COMPLETE", ""}
	lines = append(lines, "Hole  Par  Strokes")
	for _, r := range g.card.Results {
		lines = append(lines, fmt.Sprintf("%4d  %3d  %7d", r.Number, r.Par, r.Strokes))
	}
	lines = append(lines,
		fmt.Sprintf("Total %3d  %7d  (%s)", g.card.Par(), g.card.Strokes(), FormatDiff(g.card.Diff())),
		"",
		fmt.Sprintf("Holes-in-one %d  Under par %d  Best streak %d",
			g.card.Stats.HolesInOne, g.card.Stats.UnderPar, g.card.Stats.BestStreak),
		"",
		"R to play again, Q to quit",
	)
	g.renderBanner(dst, lines, core.ColorBrightWhite)
}

// renderBanner draws lines in a centered box over the course.
func (g *Game) renderBanner(dst *core.Screen, lines []string, color core.Color) {
	width := 0
	for _, l := range lines {
		width = core.Max(width, len([]rune(l)))
	}
	width += 4
	height := len(lines) + 2

	x := (dst.Width() - width) / 2
	y := (dst.Height() - height) / 2
	box := core.NewRect(x, y, width, height)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	for i, l := range lines {
		lx := x + (width-len([]rune(l)))/2
		dst.DrawTextColored(lx, y+1+i, l, color)
	}
}

func (g *Game) inArea(x, y int) bool {
	return g.view.Area.Contains(x, y)
}
