package viewer

import (
	"fmt"
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/gotri/pkg/geometry"
)

// PointerHandler receives pointer events in presentation coordinates
type PointerHandler interface {
	PointerDown(pos geometry.Vector2)
	PointerMove(pos geometry.Vector2)
	PointerUp(pos geometry.Vector2)
}

// SceneWidget paints scene descriptors and forwards pointer input
type SceneWidget struct {
	widget.BaseWidget
	source  func() Descriptor
	handler PointerHandler
	image   *canvas.Image
	size    fyne.Size
}

var (
	_ desktop.Mouseable = (*SceneWidget)(nil)
	_ fyne.Draggable    = (*SceneWidget)(nil)
)

// NewSceneWidget creates a widget that renders whatever source returns
func NewSceneWidget(source func() Descriptor, handler PointerHandler) *SceneWidget {
	w := &SceneWidget{
		source:  source,
		handler: handler,
		image:   canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, SurfaceWidth, SurfaceHeight))),
	}
	w.image.FillMode = canvas.ImageFillStretch
	w.image.ScaleMode = canvas.ImageScaleSmooth
	w.ExtendBaseWidget(w)
	return w
}

// Redraw renders the current scene
func (w *SceneWidget) Redraw() {
	img, err := RenderImage(w.source())
	if err != nil {
		fmt.Printf("Warning: failed to render scene: %v\n", err)
		return
	}
	w.image.Image = img
	w.image.Refresh()
}

// toSurface maps widget coordinates to presentation coordinates
func (w *SceneWidget) toSurface(pos fyne.Position) geometry.Vector2 {
	if w.size.Width <= 0 || w.size.Height <= 0 {
		return geometry.Vector2{X: float64(pos.X), Y: float64(pos.Y)}
	}
	return geometry.Vector2{
		X: float64(pos.X) * SurfaceWidth / float64(w.size.Width),
		Y: float64(pos.Y) * SurfaceHeight / float64(w.size.Height),
	}
}

// MouseDown starts a rotation or tool drag
func (w *SceneWidget) MouseDown(event *desktop.MouseEvent) {
	if event.Button != desktop.MouseButtonPrimary {
		return
	}
	w.handler.PointerDown(w.toSurface(event.Position))
	w.Redraw()
}

// MouseUp ends any drag
func (w *SceneWidget) MouseUp(event *desktop.MouseEvent) {
	w.handler.PointerUp(w.toSurface(event.Position))
	w.Redraw()
}

// Dragged forwards pointer movement while the button is held
func (w *SceneWidget) Dragged(event *fyne.DragEvent) {
	w.handler.PointerMove(w.toSurface(event.Position))
	w.Redraw()
}

// DragEnd handles the end of a drag event
func (w *SceneWidget) DragEnd() {
	w.handler.PointerUp(geometry.Vector2{})
	w.Redraw()
}

// CreateRenderer creates the renderer for the widget
func (w *SceneWidget) CreateRenderer() fyne.WidgetRenderer {
	return &sceneWidgetRenderer{scene: w}
}

// sceneWidgetRenderer implements fyne.WidgetRenderer
type sceneWidgetRenderer struct {
	scene *SceneWidget
}

func (r *sceneWidgetRenderer) Layout(size fyne.Size) {
	r.scene.size = size
	r.scene.image.Resize(size)
}

func (r *sceneWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(SurfaceWidth, SurfaceHeight)
}

func (r *sceneWidgetRenderer) Refresh() {
	r.scene.Redraw()
}

func (r *sceneWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.scene.image}
}

func (r *sceneWidgetRenderer) Destroy() {}
