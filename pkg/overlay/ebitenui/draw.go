package ebitenui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"devconsole/pkg/console/dispatch"
)

const (
	// animDurationMs is how long the slide open/close takes.
	animDurationMs = 200

	// cursorBlinkMs is the half-period of the entry cursor blink.
	cursorBlinkMs = 500
)

var (
	colorBorder = color.RGBA{100, 100, 150, 255}
	colorPrompt = color.RGBA{255, 255, 255, 255}
)

func nowMilli() int64 { return time.Now().UnixMilli() }

// easeInOut is a cubic ease for the slide animation, t in [0,1].
func easeInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// animationStep advances the toggle animation. It returns the slide progress
// in [0,1] (1 fully open) and whether the animation is still running.
func animationStep(active, animating bool, startMs, nowMs int64, current float64) (float64, bool) {
	if !animating {
		return current, false
	}
	elapsed := nowMs - startMs
	if elapsed >= animDurationMs {
		if active {
			return 1, false
		}
		return 0, false
	}
	eased := easeInOut(float64(elapsed) / animDurationMs)
	if active {
		return eased, true
	}
	return 1 - eased, true
}

// cursorVisible implements the blink cycle of the entry cursor.
func cursorVisible(nowMs int64) bool {
	return (nowMs/cursorBlinkMs)%2 == 0
}

// fadeAlpha scales a color's alpha by the slide progress so the overlay
// fades in with the slide.
func fadeAlpha(c color.RGBA, progress float64) color.RGBA {
	c.A = uint8(float64(c.A) * progress)
	return c
}

// Draw renders the overlay onto the screen. A closed, settled overlay draws
// nothing.
func (o *Overlay) Draw(screen *ebiten.Image) {
	now := nowMilli()
	progress, still := animationStep(o.active, o.animating, o.animStart, now, o.animProgress)
	o.animProgress = progress
	o.animating = still
	if progress <= 0 {
		return
	}

	screenW := screen.Bounds().Dx()
	screenH := screen.Bounds().Dy()

	frameW := int(float64(screenW) * o.cfg.FrameSize[0])
	fullH := int(float64(screenH) * o.cfg.FrameSize[1])
	frameH := int(float64(fullH) * progress)
	frameY := screenH - frameH

	bg := color.RGBA{0, 0, 0, uint8(255 * o.cfg.BGTransparency * progress)}
	vector.DrawFilledRect(screen, 0, float32(frameY), float32(frameW), float32(frameH), bg, false)
	vector.DrawFilledRect(screen, 0, float32(frameY), float32(frameW), 2, fadeAlpha(colorBorder, progress), false)

	face := o.fonts.face
	fontSize := o.fonts.size
	lineHeight := int(fontSize) + lineSpacing

	if frameH < 2*lineHeight+2*framePadding {
		return
	}

	frameBottom := frameY + frameH
	infoY := frameBottom - framePadding - lineHeight
	promptY := infoY - lineHeight

	// Scrollback rows, newest just above the prompt, older rows upward
	// until the frame runs out.
	rowY := promptY - lineHeight
	for _, line := range o.buffer.Lines() {
		if rowY < frameY+framePadding {
			break
		}
		if line.EntryIndex >= 0 {
			drawText(screen, line.Text, face, fontSize, framePadding, rowY, fadeAlpha(line.Color, progress))
		}
		rowY -= lineHeight
	}

	// Entry row with the blinking cursor.
	entry := o.dispatcher.Prompt() + o.input
	if cursorVisible(now) {
		entry += "_"
	}
	drawText(screen, entry, face, fontSize, framePadding, promptY, fadeAlpha(colorPrompt, progress))

	// Target indicator, the analogue of the original's console switcher.
	info := "targeting: " + o.dispatcher.TargetDescription()
	drawText(screen, info, face, fontSize, framePadding, infoY, fadeAlpha(dispatch.ColorInfo, progress))
}

// drawText draws one row. text.Draw positions at the baseline, so the font
// size is added to the row's top coordinate.
func drawText(dst *ebiten.Image, s string, face *text.GoTextFace, fontSize float64, x, y int, c color.RGBA) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y)+fontSize)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(dst, s, face, op)
}
