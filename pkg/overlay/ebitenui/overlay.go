// Package ebitenui hosts the console inside an Ebiten application as a
// slide-in overlay. It owns the toggle animation, keyboard capture, resize
// handling and drawing; all scrollback state lives in the console buffer it
// wraps.
//
// The buffer demands a single writer, so everything funnels through the
// Ebiten update goroutine: input and dispatcher output are handled inline in
// Update, while background goroutines hand their lines to Println or
// Reprintln, which queue them until the next Update drains the queue.
package ebitenui

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"devconsole/pkg/console"
	"devconsole/pkg/console/config"
	"devconsole/pkg/console/dispatch"
	"devconsole/pkg/engine/layout"
)

// colorEcho is the dimmed shade submitted commands are echoed back in, so
// they read apart from command output.
var colorEcho = color.RGBA{170, 170, 170, 255}

// queueCap bounds the background output queue. A full queue drops the
// oldest line rather than blocking the producer.
const queueCap = 256

type queuedLine struct {
	mode console.EmitMode
	text string
	c    color.RGBA
}

// Overlay is the Ebiten console host. Create it with New, then call Update
// and Draw from the game loop and Toggle from whatever key the application
// binds.
type Overlay struct {
	buffer     *console.Buffer
	dispatcher *dispatch.Dispatcher
	inputHist  *console.InputHistory
	cfg        config.Settings

	input string

	active       bool
	animating    bool
	animStart    int64
	animProgress float64

	queue chan queuedLine

	fonts  *fontSet
	frameW int
	frameH int
	params layout.Params
}

// New creates an overlay with the builtin commands registered. The buffer
// starts at terminal-default dimensions; the first Update call relayouts it
// to the real frame.
func New(cfg config.Settings) (*Overlay, error) {
	fonts, err := newFontSet(cfg.TextScale)
	if err != nil {
		return nil, err
	}

	params := layout.Params{MaxWidth: layout.DefaultColumns, MaxLines: layout.DefaultRows}
	buf, err := console.NewBuffer(params.MaxWidth, params.MaxLines)
	if err != nil {
		return nil, err
	}

	o := &Overlay{
		buffer:    buf,
		inputHist: console.NewInputHistory(),
		cfg:       cfg,
		queue:     make(chan queuedLine, queueCap),
		fonts:     fonts,
		params:    params,
		active:    cfg.DispOnStartup,
	}
	if o.active {
		o.animProgress = 1
	}
	o.dispatcher = dispatch.New(dispatch.EmitterFunc(o.emitNow))
	o.dispatcher.SetClearFunc(buf.Clear)
	return o, nil
}

// Dispatcher exposes the command registry so the application can register
// its own commands and prompt targets.
func (o *Overlay) Dispatcher() *dispatch.Dispatcher { return o.dispatcher }

// Buffer exposes the scrollback for read access (tests, diagnostics).
func (o *Overlay) Buffer() *console.Buffer { return o.buffer }

// Toggle opens or closes the overlay with the slide animation. Toggling
// while the animation runs is ignored, closing discards pending input.
func (o *Overlay) Toggle() {
	if o.animating {
		return
	}
	o.active = !o.active
	o.animating = true
	o.animStart = nowMilli()

	if !o.active {
		o.input = ""
		o.inputHist.Reset()
	}
}

// Active reports whether the overlay is open or still sliding.
func (o *Overlay) Active() bool {
	return o.active || o.animating
}

// Println queues an output line from any goroutine. It is the Emitter for
// background tasks; lines appear in the scrollback on the next Update.
func (o *Overlay) Println(text string, c color.RGBA) {
	o.enqueue(queuedLine{mode: console.ModeAppend, text: text, c: c})
}

// Reprintln queues a line that overwrites the most recent scrollback entry,
// for streaming status updates that rewrite in place.
func (o *Overlay) Reprintln(text string, c color.RGBA) {
	o.enqueue(queuedLine{mode: console.ModeReplaceLast, text: text, c: c})
}

func (o *Overlay) enqueue(l queuedLine) {
	for {
		select {
		case o.queue <- l:
			return
		default:
			// Full: drop the oldest line and retry.
			select {
			case <-o.queue:
			default:
			}
		}
	}
}

// emitNow writes straight into the buffer. Only the update goroutine may
// call it; the dispatcher does, because Submit runs inside Update.
func (o *Overlay) emitNow(text string, c color.RGBA) {
	if _, err := o.buffer.Append(text, c); err != nil {
		log.Printf("console: append failed: %v", err)
	}
}

// Update drains queued output, relayouts on resize and processes keyboard
// input. Call it once per frame with the logical screen size.
func (o *Overlay) Update(screenW, screenH int) {
	o.drainQueue()
	o.relayout(screenW, screenH)

	if !o.active {
		return
	}
	o.handleKeys()
}

func (o *Overlay) drainQueue() {
	for {
		select {
		case l := <-o.queue:
			var err error
			if _, err = o.buffer.Emit(l.mode, l.text, l.c); err != nil {
				// An edit with no history yet degrades to an append.
				_, err = o.buffer.Append(l.text, l.c)
			}
			if err != nil {
				log.Printf("console: emit failed: %v", err)
			}
		default:
			return
		}
	}
}

// relayout recomputes the buffer's wrap width and row capacity when the
// frame changes. Gated by the resize routine toggle, matching the original
// console's opt-out.
func (o *Overlay) relayout(screenW, screenH int) {
	if !o.cfg.DoResizeRoutine {
		return
	}
	if screenW == o.frameW && screenH == o.frameH {
		return
	}
	o.frameW, o.frameH = screenW, screenH

	consoleW := float64(screenW) * o.cfg.FrameSize[0]
	consoleH := float64(screenH) * o.cfg.FrameSize[1]
	m := o.fonts.metrics()

	// The prompt row and the target info row sit below the scrollback.
	reserved := 2*m.LineHeight + 2*framePadding

	params, err := layout.Compute(consoleW-2*framePadding, consoleH, reserved, m)
	if err != nil {
		log.Printf("console: frame %dx%d unusable: %v", screenW, screenH, err)
		return
	}
	if params == o.params {
		return
	}
	o.params = params
	if _, err := o.buffer.Reconfigure(params.MaxWidth, params.MaxLines); err != nil {
		log.Printf("console: reconfigure failed: %v", err)
		return
	}
	if o.cfg.Verbose {
		log.Printf("console: relayout %dx%d -> %d cols, %d rows",
			screenW, screenH, params.MaxWidth, params.MaxLines)
	}
}

func (o *Overlay) handleKeys() {
	// Control keys first; each consumes the frame.
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		if len(o.input) > 0 {
			runes := []rune(o.input)
			o.input = string(runes[:len(runes)-1])
		}
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyKPEnter) {
		o.submit()
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		o.dispatcher.CycleTarget()
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		o.input = o.inputHist.Older()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		o.input = o.inputHist.Newer()
		return
	}

	if o.cfg.DoScrollingRoutine {
		if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
			o.buffer.Scroll(console.ScrollOlder)
			return
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) {
			o.buffer.Scroll(console.ScrollNewer)
			return
		}
		if _, wheelY := ebiten.Wheel(); wheelY != 0 {
			dir := console.ScrollNewer
			if wheelY > 0 {
				dir = console.ScrollOlder
			}
			o.buffer.Scroll(dir)
			return
		}
	}

	for _, r := range ebiten.AppendInputChars(nil) {
		if r < 0x20 || r == 0x7f {
			continue
		}
		o.input += string(r)
	}
}

// submit echoes the prompt line into the scrollback, records it for the
// history navigator and routes it to the current target.
func (o *Overlay) submit() {
	line := o.input
	o.input = ""
	o.inputHist.Record(line)
	o.inputHist.Reset()

	o.emitNow(o.dispatcher.Prompt()+line, colorEcho)
	o.dispatcher.Submit(line)
}
