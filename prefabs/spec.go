package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultScene is the scene loaded when no name is given.
const DefaultScene = "scene.yaml"

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type SizeSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type PlayerSpec struct {
	Spawn PointSpec  `yaml:"spawn"`
	Size  SizeSpec   `yaml:"size"`
	Color *YAMLColor `yaml:"color"`
}

// EnemySpec lays enemies out from Spawn, each offset by Step from the last.
type EnemySpec struct {
	Count int        `yaml:"count"`
	Spawn PointSpec  `yaml:"spawn"`
	Step  PointSpec  `yaml:"step"`
	Size  SizeSpec   `yaml:"size"`
	Color *YAMLColor `yaml:"color"`
}

// JoystickSpec places the stick anchor Offset.X from the left edge and
// Offset.Y up from the bottom edge of the viewport.
type JoystickSpec struct {
	Offset     PointSpec  `yaml:"offset"`
	KnobRadius float64    `yaml:"knob_radius"`
	Color      *YAMLColor `yaml:"color"`
}

// ButtonSpec places a button Offset.X from the right edge and Offset.Y up
// from the bottom edge.
type ButtonSpec struct {
	Offset PointSpec  `yaml:"offset"`
	Radius float64    `yaml:"radius"`
	Color  *YAMLColor `yaml:"color"`
}

type ButtonsSpec struct {
	Dash   ButtonSpec `yaml:"dash"`
	Charge ButtonSpec `yaml:"charge"`
}

type SceneSpec struct {
	Name       string       `yaml:"name"`
	Background *YAMLColor   `yaml:"background"`
	Player     PlayerSpec   `yaml:"player"`
	Enemies    EnemySpec    `yaml:"enemies"`
	Joystick   JoystickSpec `yaml:"joystick"`
	Buttons    ButtonsSpec  `yaml:"buttons"`
	// WinScript names a tengo script under scripts/. Empty means the scene
	// cannot be won.
	WinScript string `yaml:"win_script"`
}

// LoadSceneSpec loads a scene by name and fills in defaults for anything
// the file leaves out.
func LoadSceneSpec(name string) (*SceneSpec, error) {
	if name == "" {
		name = DefaultScene
	}
	spec, err := LoadSpec[SceneSpec](name)
	if err != nil {
		return nil, err
	}
	spec.ApplyDefaults()
	return &spec, nil
}

// DefaultSceneSpec is the built-in layout, independent of any file.
func DefaultSceneSpec() *SceneSpec {
	spec := &SceneSpec{Enemies: EnemySpec{Count: 3}}
	spec.ApplyDefaults()
	return spec
}

func (s *SceneSpec) ApplyDefaults() {
	if s == nil {
		return
	}
	if s.Name == "" {
		s.Name = "field"
	}
	if s.Background == nil {
		s.Background = &YAMLColor{Color: color.RGBA{R: 0x1e, G: 0x29, B: 0x3b, A: 0xff}}
	}
	if s.Player.Spawn == (PointSpec{}) {
		s.Player.Spawn = PointSpec{X: 100, Y: 300}
	}
	defaultSize(&s.Player.Size)
	if s.Player.Color == nil {
		s.Player.Color = &YAMLColor{Color: color.RGBA{R: 0x4f, G: 0xc3, B: 0xf7, A: 0xff}}
	}
	if s.Enemies.Count < 0 {
		s.Enemies.Count = 0
	}
	if s.Enemies.Spawn == (PointSpec{}) {
		s.Enemies.Spawn = PointSpec{X: 700, Y: 200}
	}
	if s.Enemies.Step == (PointSpec{}) {
		s.Enemies.Step = PointSpec{Y: 100}
	}
	defaultSize(&s.Enemies.Size)
	if s.Enemies.Color == nil {
		s.Enemies.Color = &YAMLColor{Color: color.RGBA{R: 0xef, G: 0x53, B: 0x50, A: 0xff}}
	}
	if s.Joystick.Offset == (PointSpec{}) {
		s.Joystick.Offset = PointSpec{X: 100, Y: 100}
	}
	if s.Joystick.KnobRadius <= 0 {
		s.Joystick.KnobRadius = 30
	}
	if s.Joystick.Color == nil {
		s.Joystick.Color = &YAMLColor{Color: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x99}}
	}
	defaultButton(&s.Buttons.Dash, PointSpec{X: 200, Y: 100}, color.RGBA{R: 0xff, G: 0xca, B: 0x28, A: 0xcc})
	defaultButton(&s.Buttons.Charge, PointSpec{X: 100, Y: 100}, color.RGBA{R: 0xab, G: 0x47, B: 0xbc, A: 0xcc})
}

func defaultSize(s *SizeSpec) {
	if s.Width <= 0 {
		s.Width = 64
	}
	if s.Height <= 0 {
		s.Height = 64
	}
}

func defaultButton(b *ButtonSpec, offset PointSpec, c color.RGBA) {
	if b.Offset == (PointSpec{}) {
		b.Offset = offset
	}
	if b.Radius <= 0 {
		b.Radius = 40
	}
	if b.Color == nil {
		b.Color = &YAMLColor{Color: c}
	}
}

// YAMLColor decodes "#rrggbb" or "#rrggbbaa".
type YAMLColor struct {
	Color color.RGBA
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.RGBA{R: r, G: g, B: b, A: a}
	return nil
}

// Value returns the color, or fallback when c is nil.
func (c *YAMLColor) Value(fallback color.RGBA) color.RGBA {
	if c == nil {
		return fallback
	}
	return c.Color
}
