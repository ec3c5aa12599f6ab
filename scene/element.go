package scene

import (
	"strings"

	"github.com/kisstp2006/FluxionJsSceneEditor/common"
)

// Kind identifies an element variant. The set is closed: the codec switches
// over it exhaustively.
type Kind int

const (
	KindSprite Kind = iota
	KindAnimatedSprite
	KindAudio
	KindClickable
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindSprite:
		return "Sprite"
	case KindAnimatedSprite:
		return "AnimatedSprite"
	case KindAudio:
		return "Audio"
	case KindClickable:
		return "Clickable"
	case KindText:
		return "Text"
	default:
		return "Unknown"
	}
}

// Element is one entry in a scene's flat element list.
type Element interface {
	Common() *Base
	Kind() Kind
}

// Base holds the fields shared by every element variant. Width and Height
// are the element's world-unit bounds; for Audio and Text they are always
// zero (no visual footprint), and for Clickable they hold the effective
// bounds whether explicit or inherited.
type Base struct {
	Name    string
	X, Y    float64
	Width   float64
	Height  float64
	Layer   int
	Active  bool
	Opacity uint8
}

// Common returns the element's shared fields for in-place mutation.
func (b *Base) Common() *Base { return b }

// Bounds returns the element's world-space rectangle.
func (b *Base) Bounds() common.Rect {
	return common.Rect{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
}

func defaultBase(name string) Base {
	return Base{Name: name, Active: true, Opacity: 255}
}

// Sprite is a static image placed in the world.
type Sprite struct {
	Base
	ImageSrc string
}

func (*Sprite) Kind() Kind { return KindSprite }

// NewSprite returns a sprite with default common fields and unit size.
func NewSprite(name string) *Sprite {
	s := &Sprite{Base: defaultBase(name)}
	s.Width = 1
	s.Height = 1
	return s
}

// Animation is one named frame sequence on an AnimatedSprite.
type Animation struct {
	Name     string
	Frames   []string
	Speed    float64
	Loop     bool
	Autoplay bool
}

// AnimatedSprite is a spritesheet-backed element with named animations.
// FrameWidth and FrameHeight are in spritesheet pixels.
type AnimatedSprite struct {
	Base
	ImageSrc    string
	FrameWidth  float64
	FrameHeight float64
	Animations  []Animation
}

func (*AnimatedSprite) Kind() Kind { return KindAnimatedSprite }

func NewAnimatedSprite(name string) *AnimatedSprite {
	a := &AnimatedSprite{Base: defaultBase(name), FrameWidth: 1, FrameHeight: 1}
	a.Width = 1
	a.Height = 1
	return a
}

// Audio is a sound source. It has no visual footprint: width and height
// stay zero.
type Audio struct {
	Base
	Src      string
	Loop     bool
	Autoplay bool
}

func (*Audio) Kind() Kind { return KindAudio }

func NewAudio(name string) *Audio {
	return &Audio{Base: defaultBase(name)}
}

// Clickable is a rectangular interactive hit region. In memory it is a flat
// sibling of the other elements; in the serialized runtime form a clickable
// with a resolvable parent is folded into that parent as a nested marker.
//
// ExplicitWidth/ExplicitHeight being nil means the clickable inherits its
// size from the element it is attached to; Base.Width/Height always carry
// the effective bounds either way.
type Clickable struct {
	Base
	ExplicitWidth  *float64
	ExplicitHeight *float64
	Parent         string
	HasArea        bool
}

func (*Clickable) Kind() Kind { return KindClickable }

func NewClickable(name string) *Clickable {
	c := &Clickable{Base: defaultBase(name), HasArea: true}
	c.Width = defaultClickableSize
	c.Height = defaultClickableSize
	return c
}

// Text is a rendered string. Like Audio it has no authored bounds: the
// runtime sizes it from its own rendering.
type Text struct {
	Base
	Text       string
	FontSize   float64
	FontFamily string
	Color      string
}

func (*Text) Kind() Kind { return KindText }

func NewText(name string) *Text {
	return &Text{Base: defaultBase(name), FontSize: defaultFontSize, Color: defaultTextColor}
}

// Visual reports whether the element kind can own a clickable area.
func Visual(el Element) bool {
	switch el.Kind() {
	case KindSprite, KindAnimatedSprite, KindText:
		return true
	default:
		return false
	}
}

func equalFold(a, b string) bool { return strings.EqualFold(a, b) }
