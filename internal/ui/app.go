// Package ui implements the interactive measurement window: a pannable,
// zoomable photo viewport, the four-point marking wizard, and the result
// panel.
package ui

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"sync"

	"gioui.org/app"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/explorer"
	"github.com/oligo/gioview/theme"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"github.com/footgauge/footgauge/pkg/marking"
	"github.com/footgauge/footgauge/pkg/measure"
	"github.com/footgauge/footgauge/pkg/session"
	"github.com/footgauge/footgauge/pkg/sizechart"
	"github.com/footgauge/footgauge/pkg/viewport"
)

// App drives the Gio measurement window.
type App struct {
	window *app.Window
	ops    op.Ops

	gvTheme *theme.Theme
	expl    *explorer.Explorer
	cfg     *Config
	chart   *sizechart.Chart

	// Picker results cross from the dialog goroutine to the frame loop.
	mu           sync.Mutex
	pendingPhoto *photo
	pendingErr   error

	photo     *photo
	photoOp   paint.ImageOp
	view      viewport.Transform
	viewReady bool

	collector *marking.Collector
	result    *measure.Result
	resultErr error

	system sizechart.System

	// Raw pointer events fold through the tracker: two pointers pinch,
	// a single pointer pans, and a stationary single pointer places a
	// point when marking is on.
	gesture *gestureTracker

	viewportSize image.Point

	loupe      loupeCache
	loupeCheck widget.Bool

	openBtn    widget.Clickable
	markBtn    widget.Clickable
	confirmBtn widget.Clickable
	cancelBtn  widget.Clickable
	undoBtn    widget.Clickable
	resetBtn   widget.Clickable
	saveBtn    widget.Clickable
	systemBtns [3]widget.Clickable

	openIcon *widget.Icon
	saveIcon *widget.Icon

	statusText string
}

// New creates the measurement app. imagePath, when non-empty, preloads a
// photo before the first frame.
func New(w *app.Window, imagePath string) *App {
	if w == nil {
		w = new(app.Window)
	}
	w.Option(app.Title("Footgauge"), app.Size(unit.Dp(980), unit.Dp(760)))

	a := &App{
		window:     w,
		gvTheme:    theme.NewTheme("", nil, false),
		collector:  marking.New(),
		gesture:    newGestureTracker(),
		statusText: "Open a photo to begin",
	}
	a.expl = explorer.NewExplorer(w)

	cfg, err := LoadConfig()
	if err != nil {
		log.Printf("config load failed, using defaults: %v", err)
	}
	a.cfg = cfg
	if sys, err := sizechart.ParseSystem(cfg.SizeSystem); err == nil {
		a.system = sys
	}
	a.loupeCheck.Value = cfg.ShowMagnifier

	a.chart = sizechart.DefaultUK()
	if cfg.ChartPath != "" {
		if p, err := sizechart.NewParser(); err == nil {
			if chart, err := p.ParseFile(cfg.ChartPath); err == nil {
				a.chart = chart
				a.Logf("Loaded size chart %q from %s", chart.Name, cfg.ChartPath)
			} else {
				a.Logf("Size chart %s rejected: %v", cfg.ChartPath, err)
			}
		}
	}

	if icon, err := widget.NewIcon(icons.ImagePhotoLibrary); err == nil {
		a.openIcon = icon
	}
	if icon, err := widget.NewIcon(icons.ContentSave); err == nil {
		a.saveIcon = icon
	}

	if imagePath != "" {
		if p, err := openPhotoFile(imagePath); err != nil {
			a.Logf("Could not load %s: %v", imagePath, err)
		} else {
			a.installPhoto(p)
		}
	}

	return a
}

// Run blocks processing window events until the window closes.
func (a *App) Run() error {
	for {
		e := a.window.Event()
		if a.expl != nil {
			a.expl.ListenEvents(e)
		}
		switch ev := e.(type) {
		case app.DestroyEvent:
			return ev.Err
		case app.FrameEvent:
			gtx := app.NewContext(&a.ops, ev)
			a.absorbPending()
			a.layout(gtx)
			ev.Frame(gtx.Ops)
		}
	}
}

// Logf records a status line to the process log and the status bar.
func (a *App) Logf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	log.Print(msg)
	a.statusText = msg
}

// absorbPending installs a photo delivered by the picker goroutine.
func (a *App) absorbPending() {
	p, ok, err := a.takePendingPhoto()
	if !ok {
		return
	}
	if err != nil {
		// A failed load leaves the current photo and points untouched.
		a.Logf("Image load failed: %v", err)
		return
	}
	a.installPhoto(p)
}

// installPhoto swaps in a new source image and restarts the wizard.
func (a *App) installPhoto(p *photo) {
	a.photo = p
	a.photoOp = paint.NewImageOp(p.img)
	a.viewReady = false // refit once the viewport size is known
	a.collector.LoadImage()
	a.result = nil
	a.resultErr = nil
	a.loupe.invalidate()
	a.Logf("Loaded %dx%d photo", p.width, p.height)
}

// refitView fits the photo width to the viewport.
func (a *App) refitView() {
	if a.photo == nil || a.viewportSize.X == 0 {
		return
	}
	a.view = viewport.FitWidth(float64(a.photo.width), float64(a.viewportSize.X))
	a.viewReady = true
}

// completeMeasurement runs the engine when the fourth point lands.
func (a *App) completeMeasurement() {
	if !a.collector.Complete() || a.result != nil || a.resultErr != nil {
		return
	}
	res, err := measure.Measure(a.collector.Points(), a.chart)
	if err != nil {
		a.resultErr = err
		a.Logf("Cannot measure: %v", err)
		return
	}
	a.result = &res
	a.Logf("Foot length %.1f mm", res.FootLengthMm)
}

// clearResult drops the derived measurement after the points change.
func (a *App) clearResult() {
	a.result = nil
	a.resultErr = nil
}

func (a *App) saveSession() {
	if a.result == nil || a.photo == nil {
		return
	}
	rec := session.NewRecord(a.collector.Points(), *a.result, a.system)
	rec.ImagePath = a.photo.path
	rec.ImageWidth = a.photo.width
	rec.ImageHeight = a.photo.height

	path := fmt.Sprintf("footgauge-%s.json", rec.ID[:8])
	if err := rec.Save(path); err != nil {
		a.Logf("Save failed: %v", err)
		return
	}
	a.Logf("Saved %s", path)
}

func (a *App) layout(gtx layout.Context) layout.Dimensions {
	paint.FillShape(gtx.Ops, a.gvTheme.Palette.Bg, clip.Rect{Max: gtx.Constraints.Max}.Op())

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(a.layoutToolbar),
		layout.Rigid(a.layoutInstruction),
		layout.Flexed(1, a.layoutViewport),
		layout.Rigid(a.layoutResult),
		layout.Rigid(a.layoutStatusBar),
	)
}

func (a *App) layoutToolbar(gtx layout.Context) layout.Dimensions {
	for a.openBtn.Clicked(gtx) {
		a.openPhotoPicker()
	}
	for a.markBtn.Clicked(gtx) {
		if a.collector.IsMarking() {
			a.collector.StopMarking()
			a.Logf("Marking off; drag to pan, pinch or scroll to zoom")
		} else {
			a.collector.StartMarking()
			if a.collector.IsMarking() {
				a.Logf("Marking on: %s", a.collector.Instruction())
			}
		}
	}
	for a.confirmBtn.Clicked(gtx) {
		a.confirmPreview()
	}
	for a.cancelBtn.Clicked(gtx) {
		a.collector.ClearPreview()
		a.loupe.invalidate()
	}
	for a.undoBtn.Clicked(gtx) {
		a.collector.UndoLast()
		a.clearResult()
		a.loupe.invalidate()
	}
	for a.resetBtn.Clicked(gtx) {
		a.collector.Reset()
		a.clearResult()
		a.loupe.invalidate()
		a.Logf("Points cleared")
	}
	for a.saveBtn.Clicked(gtx) {
		a.saveSession()
	}
	if a.loupeCheck.Update(gtx) {
		a.cfg.ShowMagnifier = a.loupeCheck.Value
		if err := SaveConfig(a.cfg); err != nil {
			log.Printf("config save failed: %v", err)
		}
	}

	return layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		hasPreview := a.collector.Preview() != nil
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(a.iconButton(&a.openBtn, a.openIcon, "Open Photo", true)),
			layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				label := "Mark Points"
				if a.collector.IsMarking() {
					label = "Stop Marking"
				}
				enabled := a.collector.Phase() == marking.PhaseViewing || a.collector.IsMarking()
				return a.toolButton(&a.markBtn, label, enabled)(gtx)
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
			layout.Rigid(a.toolButton(&a.confirmBtn, "Confirm", hasPreview)),
			layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
			layout.Rigid(a.toolButton(&a.cancelBtn, "Cancel", hasPreview)),
			layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
			layout.Rigid(a.toolButton(&a.undoBtn, "Undo", a.collector.Len() > 0)),
			layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
			layout.Rigid(a.toolButton(&a.resetBtn, "Reset", a.collector.Len() > 0 || hasPreview)),
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				return layout.Dimensions{}
			}),
			layout.Rigid(material.CheckBox(a.gvTheme.Theme, &a.loupeCheck, "Magnifier").Layout),
			layout.Rigid(layout.Spacer{Width: unit.Dp(12)}.Layout),
			layout.Rigid(a.iconButton(&a.saveBtn, a.saveIcon, "Save Result", a.result != nil)),
		)
	})
}

// confirmPreview commits the staged point and measures on the fourth.
func (a *App) confirmPreview() {
	a.collector.ConfirmPreview()
	a.loupe.invalidate()
	if a.collector.Complete() {
		a.completeMeasurement()
	} else if a.collector.IsMarking() {
		a.Logf("%s", a.collector.Instruction())
	}
}

func (a *App) toolButton(click *widget.Clickable, label string, enabled bool) layout.Widget {
	return func(gtx layout.Context) layout.Dimensions {
		if !enabled {
			gtx = gtx.Disabled()
		}
		btn := material.Button(a.gvTheme.Theme, click, label)
		btn.Inset = layout.UniformInset(unit.Dp(6))
		return btn.Layout(gtx)
	}
}

// iconButton lays out a labeled button with a leading icon.
func (a *App) iconButton(click *widget.Clickable, icon *widget.Icon, label string, enabled bool) layout.Widget {
	if icon == nil {
		return a.toolButton(click, label, enabled)
	}
	return func(gtx layout.Context) layout.Dimensions {
		if !enabled {
			gtx = gtx.Disabled()
		}
		return material.Clickable(gtx, click, func(gtx layout.Context) layout.Dimensions {
			bg := a.gvTheme.Palette.ContrastBg
			fg := a.gvTheme.Palette.ContrastFg
			return layout.Background{}.Layout(gtx,
				func(gtx layout.Context) layout.Dimensions {
					rr := gtx.Dp(unit.Dp(4))
					paint.FillShape(gtx.Ops, bg, clip.RRect{
						Rect: image.Rectangle{Max: gtx.Constraints.Min},
						NW:   rr, NE: rr, SW: rr, SE: rr,
					}.Op(gtx.Ops))
					return layout.Dimensions{Size: gtx.Constraints.Min}
				},
				func(gtx layout.Context) layout.Dimensions {
					return layout.UniformInset(unit.Dp(6)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
						return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
							layout.Rigid(func(gtx layout.Context) layout.Dimensions {
								sz := gtx.Dp(unit.Dp(18))
								gtx.Constraints.Min = image.Pt(sz, sz)
								gtx.Constraints.Max = gtx.Constraints.Min
								return icon.Layout(gtx, fg)
							}),
							layout.Rigid(layout.Spacer{Width: unit.Dp(6)}.Layout),
							layout.Rigid(func(gtx layout.Context) layout.Dimensions {
								lbl := material.Body2(a.gvTheme.Theme, label)
								lbl.Color = fg
								return lbl.Layout(gtx)
							}),
						)
					})
				},
			)
		})
	}
}

func (a *App) layoutInstruction(gtx layout.Context) layout.Dimensions {
	return layout.Inset{Left: unit.Dp(12), Right: unit.Dp(12), Bottom: unit.Dp(6)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		text := a.collector.Instruction()
		if a.collector.Preview() != nil {
			text = fmt.Sprintf("Confirm the %s, or tap elsewhere to adjust", marking.RoleAt(a.collector.Len()))
		}
		lbl := material.Body1(a.gvTheme.Theme, text)
		lbl.Color = a.gvTheme.Palette.Fg
		return lbl.Layout(gtx)
	})
}

func (a *App) layoutResult(gtx layout.Context) layout.Dimensions {
	if a.result == nil && a.resultErr == nil {
		return layout.Dimensions{}
	}
	return layout.UniformInset(unit.Dp(12)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		if a.resultErr != nil {
			lbl := material.Body1(a.gvTheme.Theme, "Cannot measure: marked points coincide. Undo and re-tap.")
			lbl.Color = color.NRGBA{R: 183, G: 28, B: 28, A: 255}
			return lbl.Layout(gtx)
		}

		for i := range a.systemBtns {
			for a.systemBtns[i].Clicked(gtx) {
				a.system = sizechart.System(i)
				a.cfg.SizeSystem = a.system.String()
				if err := SaveConfig(a.cfg); err != nil {
					log.Printf("config save failed: %v", err)
				}
			}
		}

		text := fmt.Sprintf("Foot length: %.1f mm    Recommended size: %s",
			a.result.FootLengthMm, a.result.Size(a.system))
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(material.H6(a.gvTheme.Theme, text).Layout),
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				return layout.Dimensions{}
			}),
			layout.Rigid(a.systemButton(sizechart.SystemUK, "UK")),
			layout.Rigid(layout.Spacer{Width: unit.Dp(4)}.Layout),
			layout.Rigid(a.systemButton(sizechart.SystemUS, "US")),
			layout.Rigid(layout.Spacer{Width: unit.Dp(4)}.Layout),
			layout.Rigid(a.systemButton(sizechart.SystemIND, "IND")),
		)
	})
}

func (a *App) systemButton(sys sizechart.System, label string) layout.Widget {
	return func(gtx layout.Context) layout.Dimensions {
		btn := material.Button(a.gvTheme.Theme, &a.systemBtns[int(sys)], label)
		btn.Inset = layout.UniformInset(unit.Dp(6))
		if a.system == sys {
			btn.Background = a.gvTheme.Palette.ContrastBg
		} else {
			btn.Background = color.NRGBA{R: 120, G: 126, B: 148, A: 255}
		}
		return btn.Layout(gtx)
	}
}

func (a *App) layoutStatusBar(gtx layout.Context) layout.Dimensions {
	return layout.Stack{}.Layout(gtx,
		layout.Expanded(func(gtx layout.Context) layout.Dimensions {
			paint.FillShape(gtx.Ops, color.NRGBA{R: 230, G: 234, B: 244, A: 255}, clip.Rect{Max: gtx.Constraints.Max}.Op())
			return layout.Dimensions{Size: gtx.Constraints.Max}
		}),
		layout.Stacked(func(gtx layout.Context) layout.Dimensions {
			inset := layout.Inset{Left: unit.Dp(12), Right: unit.Dp(12), Top: unit.Dp(6), Bottom: unit.Dp(6)}
			return inset.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
					layout.Rigid(material.Body2(a.gvTheme.Theme, a.statusText).Layout),
					layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
						return layout.Dimensions{}
					}),
					layout.Rigid(material.Body2(a.gvTheme.Theme,
						fmt.Sprintf("Points: %d/%d", a.collector.Len(), marking.MaxPoints)).Layout),
				)
			})
		}),
	)
}
