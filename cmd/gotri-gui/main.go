package main

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/gotri/internal/app"
	"github.com/philipparndt/gotri/internal/measurement"
	"github.com/philipparndt/gotri/pkg/viewer"
	"github.com/philipparndt/gotri/version"
)

type App struct {
	window     fyne.Window
	controller *app.Controller
	scene      *viewer.SceneWidget

	sideEntries [3]*widget.Entry
	zoomSlider  *widget.Slider
	statusLabel *widget.Label
	toolLabels  []*widget.Label
	dataLabel   *widget.Label
}

func main() {
	a := fyneapp.New()
	w := a.NewWindow("GoTri - Triangle Visualizer " + version.GetVersion())

	surface := app.NewDispatcher()
	appInstance := &App{
		window:     w,
		controller: app.New(surface),
	}
	appInstance.scene = viewer.NewSceneWidget(
		appInstance.controller.Scene,
		app.PointerRouter{Controller: appInstance.controller, Surface: surface},
	)

	appInstance.setupMainUI()
	appInstance.controller.OnChange(func(app.State) { appInstance.refresh() })
	appInstance.refresh()

	w.SetOnClosed(appInstance.controller.Close)
	w.Resize(fyne.NewSize(1100, 600))
	w.ShowAndRun()
}

func (a *App) setupMainUI() {
	for i, name := range []string{"a", "b", "c"} {
		entry := widget.NewEntry()
		entry.SetPlaceHolder("Side " + name)
		entry.OnSubmitted = func(string) { a.submit() }
		a.sideEntries[i] = entry
	}

	generateButton := widget.NewButton("Generate Triangle", a.submit)

	a.zoomSlider = widget.NewSlider(app.MinZoom, app.MaxZoom)
	a.zoomSlider.Step = app.ZoomStep
	a.zoomSlider.SetValue(1)
	zoomLabel := widget.NewLabel("Zoom: 1.0x")
	a.zoomSlider.OnChanged = func(value float64) {
		zoomLabel.SetText(fmt.Sprintf("Zoom: %.1fx", value))
		a.controller.SetZoom(value)
	}

	circleCheck := widget.NewCheck("Show circumcircle and incircle", func(checked bool) {
		a.controller.SetShowCircles(checked)
	})

	a.statusLabel = widget.NewLabel("")
	a.statusLabel.TextStyle = fyne.TextStyle{Bold: true}
	a.statusLabel.Wrapping = fyne.TextWrapWord

	inputs := container.NewGridWithColumns(4,
		a.sideEntries[0], a.sideEntries[1], a.sideEntries[2], generateButton,
	)

	a.toolLabels = make([]*widget.Label, len(a.controller.State().Tools))
	toolBox := container.NewVBox()
	for i := range a.toolLabels {
		a.toolLabels[i] = widget.NewLabel("")
		toolBox.Add(a.toolLabels[i])
	}
	a.dataLabel = widget.NewLabel("")

	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Drag the triangle to rotate it\n" +
			"• Drag a numbered tool onto a vertex to read its angle\n" +
			"• Use the slider to zoom",
	)
	instructions.Wrapping = fyne.TextWrapWord

	sidebar := container.NewVBox(
		widget.NewCard("Angle Tools", "", toolBox),
		widget.NewCard("Triangle Data", "", a.dataLabel),
		widget.NewSeparator(),
		circleCheck,
		instructions,
	)
	sidebarScroll := container.NewVScroll(sidebar)
	sidebarScroll.SetMinSize(fyne.NewSize(300, 0))

	top := container.NewVBox(
		inputs,
		container.NewBorder(nil, nil, zoomLabel, nil, a.zoomSlider),
		a.statusLabel,
	)

	content := container.NewBorder(
		top,           // top
		nil,           // bottom
		nil,           // left
		sidebarScroll, // right
		a.scene,       // center
	)

	a.window.SetContent(content)
}

func (a *App) submit() {
	a.controller.Submit(a.sideEntries[0].Text, a.sideEntries[1].Text, a.sideEntries[2].Text)
}

// refresh mirrors the controller state into the widgets
func (a *App) refresh() {
	state := a.controller.State()

	a.statusLabel.SetText(state.Message())

	for i, tool := range state.Tools {
		if i >= len(a.toolLabels) {
			break
		}
		text := fmt.Sprintf("Tool %d: %s", tool.ID, tool.Status())
		if state.Triangle != nil && tool.IsAttached() {
			angle := state.Triangle.Angles.At(tool.Attached)
			text += "\n  " + measurement.AngleText(angle)
			if measurement.IsRightAngleReading(angle) {
				text += "  RIGHT ANGLE"
			}
		}
		a.toolLabels[i].SetText(text)
	}

	lines := app.DataCard(state)
	if len(lines) == 0 {
		lines = []string{"No triangle"}
	}
	a.dataLabel.SetText(strings.Join(lines, "\n"))

	a.scene.Redraw()
}
