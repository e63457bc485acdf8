// Command devconsole runs a small application demonstrating the console:
// either an Ebiten window where F12 slides the overlay in, or a plain
// terminal session with -host term. Tab cycles the prompt between the
// command console and the OS shell, PageUp/PageDown (and the mouse wheel in
// the Ebiten host) scroll the history.
package main

import (
	"context"
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"devconsole/pkg/console/config"
	"devconsole/pkg/console/dispatch"
	"devconsole/pkg/console/updatecheck"
	"devconsole/pkg/overlay/ansi"
	"devconsole/pkg/overlay/ebitenui"
)

var version = "1.5.3"

// releaseIndexURL points at the JSON release index the update check reads.
const releaseIndexURL = "https://raw.githubusercontent.com/devconsole/devconsole/master/releases.json"

var colorBackdrop = color.RGBA{26, 26, 46, 255}

type app struct {
	overlay *ebitenui.Overlay
	w, h    int
}

func (a *app) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		a.overlay.Toggle()
	}
	a.overlay.Update(a.w, a.h)
	return nil
}

func (a *app) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackdrop)
	ebitenutil.DebugPrint(screen, "F12 toggles the console")
	a.overlay.Draw(screen)
}

func (a *app) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.w, a.h = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// emitFunc adapts an overlay method to the updatecheck Emitter.
type emitFunc func(text string, c color.RGBA)

func (f emitFunc) Emit(text string, c color.RGBA) { f(text, c) }

// registerDemoCommands adds commands that exercise the console beyond the
// builtins, plus the OS shell prompt target.
func registerDemoCommands(d *dispatch.Dispatcher) {
	d.Cvars().Set("version", version)
	d.RegisterTarget(dispatch.NewShellTarget(dispatch.ExecRunner{}).Target())

	d.Register(dispatch.Command{
		Name: "spam",
		Help: "Emits numbered lines to exercise scrollback",
		Args: []string{"count"},
		Run: func(args []string, out dispatch.Emitter) {
			count := 20
			if len(args) > 0 {
				n, err := strconv.Atoi(args[0])
				if err != nil || n <= 0 {
					out.Emit("spam: count must be a positive number", dispatch.ColorError)
					return
				}
				count = n
			}
			for i := 1; i <= count; i++ {
				out.Emit(fmt.Sprintf("line %d of %d", i, count), dispatch.ColorText)
			}
		},
	})
}

// registerStreamingDemo adds a command that rewrites its output line in
// place from a background goroutine, which only the queued Ebiten host
// supports.
func registerStreamingDemo(o *ebitenui.Overlay) {
	o.Dispatcher().Register(dispatch.Command{
		Name: "download",
		Help: "Simulates a download with an in-place progress line",
		Run: func(args []string, out dispatch.Emitter) {
			out.Emit("download 0%", dispatch.ColorInfo)
			go func() {
				for pct := 10; pct <= 100; pct += 10 {
					time.Sleep(150 * time.Millisecond)
					o.Reprintln(fmt.Sprintf("download %d%%", pct), dispatch.ColorInfo)
				}
				o.Println("download complete", dispatch.ColorOK)
			}()
		},
	})
}

func runEbiten(cfg config.Settings) {
	overlay, err := ebitenui.New(cfg)
	if err != nil {
		log.Fatalf("creating console overlay: %v", err)
	}
	registerDemoCommands(overlay.Dispatcher())
	registerStreamingDemo(overlay)

	if cfg.CheckForUpdates {
		checker := updatecheck.New(releaseIndexURL, version)
		go checker.Check(context.Background(), emitFunc(overlay.Println))
	}

	ebiten.SetWindowSize(1024, 640)
	ebiten.SetWindowTitle("devconsole demo")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(&app{overlay: overlay, w: 1024, h: 640}); err != nil {
		log.Fatal(err)
	}
}

func runTerm(cfg config.Settings) {
	session, err := ansi.NewSession(cfg, os.Stdin, os.Stdout)
	if err != nil {
		log.Fatalf("creating console session: %v", err)
	}
	registerDemoCommands(session.Dispatcher())

	// The terminal session has a single goroutine, so the update check
	// runs to completion before the read loop starts.
	if cfg.CheckForUpdates {
		checker := updatecheck.New(releaseIndexURL, version)
		checker.Check(context.Background(), emitFunc(session.Println))
	}

	if err := session.Run(); err != nil {
		log.Fatal(err)
	}
}

func main() {
	configPath := flag.String("config", "", "path to config.toml (default: per-user config dir)")
	host := flag.String("host", "ebiten", "console host: ebiten or term")
	flag.Parse()

	path := *configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			log.Fatalf("resolving config path: %v", err)
		}
		path = p
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	switch *host {
	case "term":
		runTerm(cfg)
	case "ebiten":
		runEbiten(cfg)
	default:
		log.Fatalf("unknown host %q (want ebiten or term)", *host)
	}
}
