package config

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/philipparndt/gotri/internal/app"
	"github.com/philipparndt/gotri/internal/measurement"
	"github.com/philipparndt/gotri/pkg/geometry"
)

// ErrInvalidScene is returned for scene files that cannot be applied
var ErrInvalidScene = errors.New("invalid scene")

// SideText is a side length as typed. TOML strings are kept verbatim and
// numbers are converted to their shortest text form.
type SideText string

// UnmarshalTOML implements toml.Unmarshaler
func (s *SideText) UnmarshalTOML(value any) error {
	switch v := value.(type) {
	case string:
		*s = SideText(v)
	case int64:
		*s = SideText(strconv.FormatInt(v, 10))
	case float64:
		*s = SideText(strconv.FormatFloat(v, 'g', -1, 64))
	default:
		return fmt.Errorf("side must be a string or number, got %T", value)
	}
	return nil
}

// Triangle holds the three side inputs
type Triangle struct {
	A SideText `toml:"a"`
	B SideText `toml:"b"`
	C SideText `toml:"c"`
}

// View holds the scene transform
type View struct {
	Zoom     float64 `toml:"zoom"`
	Rotation float64 `toml:"rotation"`
	Circles  bool    `toml:"circles"`
}

// Tool places one angle tool, either at a vertex or at a free position
type Tool struct {
	ID     int     `toml:"id"`
	Vertex string  `toml:"vertex,omitempty"`
	X      float64 `toml:"x,omitempty"`
	Y      float64 `toml:"y,omitempty"`
}

// Scene is the content of a scene file
type Scene struct {
	Triangle Triangle `toml:"triangle"`
	View     View     `toml:"view"`
	Tools    []Tool   `toml:"tools"`
}

// Default returns the startup scene without a triangle
func Default() Scene {
	return Scene{View: View{Zoom: 1}}
}

// Parse decodes a scene from TOML text
func Parse(data string) (Scene, error) {
	scene := Default()
	md, err := toml.Decode(data, &scene)
	if err != nil {
		return Scene{}, fmt.Errorf("failed to parse scene: %w", err)
	}
	return scene, finish(scene, md)
}

// Load reads and validates a scene file
func Load(path string) (Scene, error) {
	scene := Default()
	md, err := toml.DecodeFile(path, &scene)
	if err != nil {
		return Scene{}, fmt.Errorf("failed to read scene %s: %w", path, err)
	}
	return scene, finish(scene, md)
}

func finish(scene Scene, md toml.MetaData) error {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return fmt.Errorf("unknown keys %s: %w", strings.Join(keys, ", "), ErrInvalidScene)
	}
	return scene.Validate()
}

// Validate checks the view and tool settings. Side inputs are not checked
// here; invalid sides produce a status message when applied.
func (s Scene) Validate() error {
	if s.View.Zoom < app.MinZoom || s.View.Zoom > app.MaxZoom {
		return fmt.Errorf("zoom %v outside [%v, %v]: %w", s.View.Zoom, app.MinZoom, app.MaxZoom, ErrInvalidScene)
	}

	seen := make(map[int]bool)
	for _, tool := range s.Tools {
		if tool.ID < 1 || tool.ID > len(measurement.DefaultTools()) {
			return fmt.Errorf("tool id %d: %w", tool.ID, ErrInvalidScene)
		}
		if seen[tool.ID] {
			return fmt.Errorf("tool %d listed twice: %w", tool.ID, ErrInvalidScene)
		}
		seen[tool.ID] = true
		if tool.Vertex != "" && geometry.ParseVertex(tool.Vertex) == geometry.VertexNone {
			return fmt.Errorf("tool %d vertex %q: %w", tool.ID, tool.Vertex, ErrInvalidScene)
		}
	}
	return nil
}

// HasTriangle reports whether any side input is present
func (s Scene) HasTriangle() bool {
	return s.Triangle.A != "" || s.Triangle.B != "" || s.Triangle.C != ""
}

// Apply replays the scene onto a controller: sides, zoom, rotation, then
// tool placement
func (s Scene) Apply(c *app.Controller) {
	c.SetZoom(s.View.Zoom)
	if s.HasTriangle() {
		c.Submit(string(s.Triangle.A), string(s.Triangle.B), string(s.Triangle.C))
	}
	c.SetRotation(s.View.Rotation)
	c.SetShowCircles(s.View.Circles)

	for _, tool := range s.Tools {
		if v := geometry.ParseVertex(tool.Vertex); v != geometry.VertexNone {
			c.AttachTool(tool.ID, v)
			continue
		}
		c.MoveTool(tool.ID, geometry.Vector2{X: tool.X, Y: tool.Y})
	}
}

// Write encodes the scene as TOML
func Write(w io.Writer, s Scene) error {
	if err := toml.NewEncoder(w).Encode(s); err != nil {
		return fmt.Errorf("failed to encode scene: %w", err)
	}
	return nil
}

// FromState captures a controller state as a scene
func FromState(s app.State, circles bool) Scene {
	scene := Scene{
		Triangle: Triangle{A: SideText(s.Inputs.A), B: SideText(s.Inputs.B), C: SideText(s.Inputs.C)},
		View:     View{Zoom: s.Zoom, Rotation: s.Rotation, Circles: circles},
	}
	for _, tool := range s.Tools {
		entry := Tool{ID: tool.ID, X: tool.Position.X, Y: tool.Position.Y}
		if tool.IsAttached() {
			entry = Tool{ID: tool.ID, Vertex: tool.Attached.String()}
		}
		scene.Tools = append(scene.Tools, entry)
	}
	return scene
}
