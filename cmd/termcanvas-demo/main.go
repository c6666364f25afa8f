// Command termcanvas-demo exercises the full rendering surface over a
// live terminal: a bottom-anchored log panel, an input line with a
// blinking caret, world and local maps, display-settings hot-swap, and
// resize handling.
//
// Keys: type to edit the input line, Enter commits it to the log,
// Tab cycles border styles, Ctrl+C or Escape quits.
package main

import (
	"flag"
	"log"
	"os"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lorekeep/termcanvas/config"
	"github.com/lorekeep/termcanvas/console"
	"github.com/lorekeep/termcanvas/mapview"
	"github.com/lorekeep/termcanvas/terminal"
)

var (
	borderColor = terminal.RGB{R: 80, G: 100, B: 140}
	titleColor  = terminal.RGB{R: 100, G: 200, B: 220}
	logColor    = terminal.RGB{R: 200, G: 200, B: 200}
	inputColor  = terminal.RGBWhite
)

func sampleWorld() []mapview.Area {
	return []mapview.Area{
		{
			Name: "Thornwick", X: 0, Y: 0,
			Connections: []string{"Millbrook", "Darkhollow"},
			Locations: []mapview.Location{
				{Name: "Rusty Anchor", Type: "tavern", NPCs: []string{"Bray"}},
				{Name: "General Store", Type: "shop", NPCs: []string{"Bray"}, Items: []string{"rope"}},
				{Name: "Old Chapel", Type: "temple"},
				{Name: "Hunter's Rest", Type: "home", Items: []string{"rope"}},
			},
		},
		{Name: "Millbrook", X: 14, Y: 2, Connections: []string{"Thornwick"}},
		{Name: "Darkhollow", X: 6, Y: 11, Connections: []string{"Thornwick", "Millbrook"}},
	}
}

func main() {
	configPath := flag.String("config", "", "display settings TOML file")
	flag.Parse()

	settings := console.DefaultDisplaySettings()
	if *configPath != "" {
		var err error
		settings, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("open terminal: %v", err)
	}
	sink := terminal.NewScreenSink(screen)

	mgr, err := console.NewWindowManager(sink, settings)
	if err != nil {
		log.Fatalf("start renderer: %v", err)
	}
	defer mgr.Close()
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyRestore(os.Stderr)
			panic(r)
		}
	}()

	world := sampleWorld()
	current := "Thornwick"

	// The log render callback runs on the render goroutine; guard the
	// shared slice against the event loop's appends
	var logMu sync.Mutex
	logLines := []string{"Welcome to the termcanvas demo.", "Type and press Enter."}

	layout := func() {
		w, h := sink.Size()
		mapW := w / 3

		mgr.AddRegion("Log", &console.Region{
			X: 0, Y: 0, Width: w - mapW, Height: h - 3, ZIndex: 0,
			BorderColor: borderColor, TitleColor: titleColor, Visible: true,
			Render: func(buf *console.Buffer, content console.Rect) {
				logMu.Lock()
				lines := logLines
				logMu.Unlock()
				console.DrawWrappedText(buf, content, lines, logColor)
			},
		})
		mgr.AddRegion("World Map", &console.Region{
			X: w - mapW, Y: 0, Width: mapW, Height: (h - 3) / 2, ZIndex: 0,
			BorderColor: borderColor, TitleColor: titleColor, Visible: true,
			Render: func(buf *console.Buffer, content console.Rect) {
				mapview.DrawWorldMap(buf, content, world, current, mapview.DefaultWorldStyle())
			},
		})
		mgr.AddRegion("Local Map", &console.Region{
			X: w - mapW, Y: (h - 3) / 2, Width: mapW, Height: h - 3 - (h-3)/2, ZIndex: 0,
			BorderColor: borderColor, TitleColor: titleColor, Visible: true,
			Render: func(buf *console.Buffer, content console.Rect) {
				for i := range world {
					if world[i].Name == current {
						mapview.DrawLocalMap(buf, content, &world[i], terminal.RGBGray)
						return
					}
				}
			},
		})
		mgr.AddRegion(console.InputRegionName, &console.Region{
			X: 0, Y: h - 3, Width: w, Height: 3, ZIndex: 1,
			BorderColor: borderColor, TitleColor: titleColor, Visible: true,
		})
		mgr.QueueRender()
	}
	layout()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	resizeTicker := time.NewTicker(50 * time.Millisecond)
	defer resizeTicker.Stop()

	input := ""
	for {
		select {
		case <-resizeTicker.C:
			if mgr.CheckResize() {
				layout()
			}

		case ev, ok := <-events:
			if !ok {
				return
			}
			key, isKey := ev.(*tcell.EventKey)
			if !isKey {
				continue
			}
			switch key.Key() {
			case tcell.KeyCtrlC, tcell.KeyEscape:
				return
			case tcell.KeyEnter:
				if input != "" {
					logMu.Lock()
					logLines = append(logLines, input)
					logMu.Unlock()
					input = ""
					mgr.UpdateInputText(input, inputColor)
				}
			case tcell.KeyBackspace, tcell.KeyBackspace2:
				if len(input) > 0 {
					runes := []rune(input)
					input = string(runes[:len(runes)-1])
					mgr.UpdateInputText(input, inputColor)
				}
			case tcell.KeyTab:
				settings.Borders = (settings.Borders + 1) % 3
				mgr.UpdateDisplaySettings(settings)
			case tcell.KeyRune:
				input += string(key.Rune())
				mgr.UpdateInputText(input, inputColor)
			}
			mgr.QueueRender()
		}
	}
}
