// Command logview is a demonstration consumer of the event buffer: a
// small terminal UI that appends events from several goroutines and
// renders the live buffer with per-level colors and markers. It only
// reads Entries and Blob; the buffer itself never knows a UI exists.
package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/sbond75/uilogger/core"
	"github.com/sbond75/uilogger/dispatch"
	"github.com/sbond75/uilogger/logger"
)

const refreshInterval = 200 * time.Millisecond

func main() {
	loop := dispatch.NewLoop()
	log := logger.NewBuilder().
		WithName("demo").
		WithExecutor(loop).
		Build()

	app := tview.NewApplication()

	view := tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(true)
	view.SetBorder(true).SetTitle(" demo log ")

	status := tview.NewTextView().SetDynamicColors(true)
	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(view, 0, 1, true).
		AddItem(status, 1, 0, false)

	stop := make(chan struct{})
	var stopOnce sync.Once
	halt := func() {
		stopOnce.Do(func() { close(stop) })
		app.Stop()
	}

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape || event.Rune() == 'q' {
			halt()
			return nil
		}
		return event
	})

	go produce(log, stop)
	go refresh(app, view, status, log, stop)

	if err := app.SetRoot(layout, true).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "logview:", err)
		os.Exit(1)
	}
	stopOnce.Do(func() { close(stop) })
	loop.Close()

	// On exit, dump the plain-text blob so the session can be shared.
	if blob := log.Blob(); blob != "" {
		fmt.Println(blob)
	}
}

// refresh periodically snapshots the buffer and repaints the view on the
// UI event loop.
func refresh(app *tview.Application, view, status *tview.TextView, log *logger.Logger, stop <-chan struct{}) {
	ticker := time.NewTicker(refreshInterval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			entries := log.Entries()
			text := render(entries)
			go app.QueueUpdateDraw(func() {
				view.SetText(text)
				view.ScrollToEnd()
				status.SetText(fmt.Sprintf(" %d events — press q to quit", len(entries)))
			})
		}
	}
}

// render builds the colored display text from a snapshot.
func render(entries []core.Event) string {
	var b []byte
	for _, e := range entries {
		b = append(b, '[')
		b = append(b, displayColor(e.Level)...)
		b = append(b, ']')
		b = append(b, e.Level.Marker()...)
		b = append(b, ' ')
		b = append(b, e.CreatedAt.Format("15:04:05")...)
		b = append(b, ' ')
		b = append(b, tview.Escape(e.Message)...)
		if e.Err != nil {
			b = append(b, " — "...)
			b = append(b, tview.Escape(e.Err.Error())...)
		}
		for _, tag := range e.Metadata.Tags {
			b = append(b, " #"...)
			b = append(b, tview.Escape(tag.Label())...)
		}
		b = append(b, "[-]\n"...)
	}
	return string(b)
}

// displayColor maps the model's color names onto tview tag names. Fatal
// is nominally black, which would vanish on a dark terminal.
func displayColor(l core.Level) string {
	if c := l.Color(); c != "black" {
		return c
	}
	return "darkred"
}

// produce appends demo traffic from a few goroutines so the re-dispatch
// path is actually exercised.
func produce(log *logger.Logger, stop <-chan struct{}) {
	workers := []struct {
		name string
		tag  core.StringTag
	}{
		{"fetcher", "net"},
		{"indexer", "db"},
		{"janitor", "gc"},
	}

	var wg sync.WaitGroup
	for _, w := range workers {
		wg.Add(1)
		go func(name string, tag core.StringTag) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(time.Now().UnixNano()))
			for i := 0; ; i++ {
				select {
				case <-stop:
					return
				case <-time.After(time.Duration(300+rng.Intn(900)) * time.Millisecond):
				}
				switch rng.Intn(10) {
				case 0:
					log.Error(fmt.Sprintf("%s: request %d failed", name, i), errors.New("connection reset"), tag)
				case 1:
					log.Warning(fmt.Sprintf("%s: request %d slow", name, i), tag)
				case 2:
					log.Debug(fmt.Sprintf("%s: request %d detail", name, i), tag)
				case 3:
					log.Success(fmt.Sprintf("%s: batch %d complete", name, i), tag)
				default:
					log.Info(fmt.Sprintf("%s: request %d ok", name, i), tag)
				}
			}
		}(w.name, w.tag)
	}
	wg.Wait()
}
