package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/ambient-field/internal/config"
	"github.com/iburimskiy/ambient-field/internal/lobby"
)

const (
	panelWidth = 300
	panelPad   = 10
	charWidth  = 6 // debug font glyph width
)

var (
	panelColor  = color.RGBA{R: 10, G: 12, B: 24, A: 190}
	borderColor = color.RGBA{R: 60, G: 70, B: 110, A: 255}
	flashColor  = color.RGBA{R: 255, G: 221, B: 0, A: 160}
)

func (g *Game) drawHUD(screen *ebiten.Image) {
	g.drawButton(screen)
	g.drawSoundtrack(screen)
	if g.settings.HUD.Counter {
		g.drawCounter(screen)
	}
	if g.settings.HUD.Leaderboard {
		g.drawLeaderboard(screen)
	}
	if g.lastErr != nil {
		ebitenutil.DebugPrintAt(screen, "Error: "+g.lastErr.Error(), config.ButtonX, g.height-20)
	}
	if !g.field.Running() {
		ebitenutil.DebugPrintAt(screen, "field paused (F)", config.ButtonX, g.height-36)
	}
}

func (g *Game) drawButton(screen *ebiten.Image) {
	var bgColor color.Color
	if g.buttonPressed {
		bgColor = color.RGBA{R: 60, G: 40, B: 120, A: 255}
	} else if g.buttonHovered {
		bgColor = color.RGBA{R: 90, G: 40, B: 150, A: 255}
	} else {
		bgColor = color.RGBA{R: 40, G: 30, B: 80, A: 220}
	}

	vector.DrawFilledRect(screen, config.ButtonX, config.ButtonY, config.ButtonWidth, config.ButtonHeight, bgColor, false)
	vector.StrokeRect(screen, config.ButtonX, config.ButtonY, config.ButtonWidth, config.ButtonHeight, 2, color.RGBA{R: 157, G: 0, B: 255, A: 255}, false)

	text := "Music"
	textX := config.ButtonX + (config.ButtonWidth-len(text)*charWidth)/2
	textY := config.ButtonY + (config.ButtonHeight-16)/2
	ebitenutil.DebugPrintAt(screen, text, textX, textY)
}

// drawSoundtrack shows the track name, elapsed time and a loudness meter
// next to the music button.
func (g *Game) drawSoundtrack(screen *ebiten.Image) {
	if !g.player.Playing() {
		return
	}

	x := config.ButtonX + config.ButtonWidth + panelPad
	y := config.ButtonY
	const meterWidth, meterHeight = 160, 8

	state := "playing"
	if g.player.Paused() {
		state = "paused"
	}
	label := fmt.Sprintf("%s  %s / %s  [%s]", g.player.Track(),
		formatDuration(g.player.Position()), formatDuration(g.player.Duration()), state)
	ebitenutil.DebugPrintAt(screen, label, x, y)

	my := float32(y + 24)
	vector.DrawFilledRect(screen, float32(x), my, meterWidth, meterHeight, panelColor, false)
	level := g.player.Level()
	if level > 0 {
		fill := float32(level * meterWidth)
		vector.DrawFilledRect(screen, float32(x), my, fill, meterHeight, hueColor(180+level*120, 0.9), false)
	}
	vector.StrokeRect(screen, float32(x), my, meterWidth, meterHeight, 1, borderColor, false)
}

func (g *Game) drawCounter(screen *ebiten.Image) {
	x := g.width - panelWidth - panelPad
	y := panelPad
	const h = 44

	vector.DrawFilledRect(screen, float32(x), float32(y), panelWidth, h, panelColor, false)
	if g.counter.Flashing() {
		vector.DrawFilledRect(screen, float32(x), float32(y), panelWidth, h, flashColor, false)
	}
	vector.StrokeRect(screen, float32(x), float32(y), panelWidth, h, 1, borderColor, false)

	ebitenutil.DebugPrintAt(screen, "PLAYERS ONLINE", x+panelPad, y+4)
	ebitenutil.DebugPrintAt(screen, g.counter.String(), x+panelPad, y+22)
}

// drawLeaderboard draws the rows that fit entirely inside the panel at the
// current scroll offset.
func (g *Game) drawLeaderboard(screen *ebiten.Image) {
	x := g.width - panelWidth - panelPad
	top := panelPad + 44 + panelPad
	const headerH = 20
	bodyH := config.LeaderboardRows * config.LeaderboardRowH
	h := headerH + bodyH + 4

	vector.DrawFilledRect(screen, float32(x), float32(top), panelWidth, float32(h), panelColor, false)
	vector.StrokeRect(screen, float32(x), float32(top), panelWidth, float32(h), 1, borderColor, false)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%-4s %-14s %11s %4s", "#", "PLAYER", "SCORE", "LVL"), x+panelPad, top+2)

	bodyTop := top + headerH
	scroll := g.leaderboard.Scroll()
	for i, e := range g.leaderboard.Entries() {
		rowY := bodyTop + i*config.LeaderboardRowH - scroll
		if rowY < bodyTop || rowY+config.LeaderboardRowH > bodyTop+bodyH {
			continue
		}
		ebitenutil.DebugPrintAt(screen, leaderboardRow(e), x+panelPad, rowY)
	}
}

func leaderboardRow(e lobby.Entry) string {
	return fmt.Sprintf("%-4s %-14s %11s %4d", fmt.Sprintf("#%d", e.Rank), e.Player, lobby.FormatCount(e.Score), e.Level)
}
