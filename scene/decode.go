package scene

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Documented per-field fallbacks, applied when an attribute is absent or
// fails to parse. The format must tolerate partially hand-edited files.
const (
	defaultElementSize   = 1
	defaultClickableSize = 0.2
	defaultFontSize      = 16
	defaultTextColor     = "#ffffff"
	defaultAnimSpeed     = 1
)

// FormatError reports a document that cannot be loaded at all: unparsable
// markup or a missing scene root. Field-level problems never produce a
// FormatError; they fall back to per-field defaults.
type FormatError struct {
	Msg string
	Err error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("scene: %s: %v", e.Msg, e.Err)
	}
	return "scene: " + e.Msg
}

func (e *FormatError) Unwrap() error { return e.Err }

// attrs wraps a start element's attributes with case-insensitive lookup,
// covering both accepted spellings (lowerCamel and UpperCamel).
type attrs []xml.Attr

func (a attrs) get(name string) (string, bool) {
	for _, at := range a {
		if strings.EqualFold(at.Name.Local, name) {
			return at.Value, true
		}
	}
	return "", false
}

func (a attrs) str(name, def string) string {
	if v, ok := a.get(name); ok {
		return v
	}
	return def
}

func (a attrs) float(name string, def float64) float64 {
	v, ok := a.get(name)
	if !ok || strings.TrimSpace(v) == "" {
		return def
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return def
	}
	return f
}

func (a attrs) integer(name string, def int) int {
	v, ok := a.get(name)
	if !ok || strings.TrimSpace(v) == "" {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return n
}

func (a attrs) boolean(name string, def bool) bool {
	v, ok := a.get(name)
	if !ok {
		return def
	}
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true":
		return true
	case "false":
		return false
	default:
		return def
	}
}

// floatPtr returns a pointer to the parsed value when the attribute is
// present, nil when it is absent. A present-but-unparsable value still
// yields a pointer, to the fallback: the author expressed an explicit size.
func (a attrs) floatPtr(name string, fallback float64) *float64 {
	v, ok := a.get(name)
	if !ok || strings.TrimSpace(v) == "" {
		return nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		f = fallback
	}
	return &f
}

// Deserialize parses a scene document in either placement convention:
// elements as direct children of the scene root (runtime form) or nested
// one level under an <Elements> wrapper (editor form). If any direct
// children with recognized element tags exist they win outright; the two
// conventions are never merged.
//
// The decoder never resolves external entities: encoding/xml has no
// external entity support, so untrusted documents cannot reach the
// filesystem or network from here.
func Deserialize(r io.Reader) (*Scene, error) {
	dec := xml.NewDecoder(r)

	root, err := findRoot(dec)
	if err != nil {
		return nil, err
	}
	ra := attrs(root.Attr)

	s := &Scene{
		Name:   ra.str("name", ""),
		Camera: DefaultCamera(),
	}

	var direct, wrapped []Element
	sawDirect := false

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &FormatError{Msg: "malformed document", Err: err}
		}
		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		switch {
		case strings.EqualFold(se.Name.Local, "Camera"):
			s.Camera = parseCamera(attrs(se.Attr))
			if err := dec.Skip(); err != nil {
				return nil, &FormatError{Msg: "malformed camera element", Err: err}
			}
		case strings.EqualFold(se.Name.Local, "Elements"):
			els, err := parseElementList(dec, se.Name)
			if err != nil {
				return nil, err
			}
			wrapped = append(wrapped, els...)
		case isElementTag(se.Name.Local):
			els, err := parseElement(dec, se)
			if err != nil {
				return nil, err
			}
			direct = append(direct, els...)
			sawDirect = true
		default:
			// Unknown tags are skipped, not errors.
			if err := dec.Skip(); err != nil {
				return nil, &FormatError{Msg: "malformed document", Err: err}
			}
		}
	}

	if sawDirect {
		s.Elements = direct
	} else {
		s.Elements = wrapped
	}
	return s, nil
}

// DeserializeBytes is Deserialize over an in-memory document.
func DeserializeBytes(data []byte) (*Scene, error) {
	return Deserialize(bytes.NewReader(data))
}

func findRoot(dec *xml.Decoder) (xml.StartElement, error) {
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return xml.StartElement{}, &FormatError{Msg: "missing scene root element"}
		}
		if err != nil {
			return xml.StartElement{}, &FormatError{Msg: "malformed document", Err: err}
		}
		if se, ok := tok.(xml.StartElement); ok {
			if !strings.EqualFold(se.Name.Local, "Scene") {
				return xml.StartElement{}, &FormatError{Msg: fmt.Sprintf("unexpected root element <%s>", se.Name.Local)}
			}
			return se, nil
		}
	}
}

func parseCamera(a attrs) Camera {
	return Camera{
		Name: a.str("name", ""),
		X:    a.float("x", 0),
		Y:    a.float("y", 0),
		// Zoom falls back to 1, never 0: a zero zoom makes the
		// world-to-screen mapping undefined.
		Zoom:   a.float("zoom", 1),
		Width:  a.float("width", DefaultTargetWidth),
		Height: a.float("height", DefaultTargetHeight),
	}
}

func isElementTag(tag string) bool {
	for _, t := range []string{"Sprite", "AnimatedSprite", "Audio", "Clickable", "Text"} {
		if strings.EqualFold(tag, t) {
			return true
		}
	}
	return false
}

func parseElementList(dec *xml.Decoder, wrapper xml.Name) ([]Element, error) {
	var out []Element
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, &FormatError{Msg: "malformed element list", Err: err}
		}
		switch t := tok.(type) {
		case xml.EndElement:
			if t.Name == wrapper {
				return out, nil
			}
		case xml.StartElement:
			if isElementTag(t.Name.Local) {
				els, err := parseElement(dec, t)
				if err != nil {
					return nil, err
				}
				out = append(out, els...)
			} else if err := dec.Skip(); err != nil {
				return nil, &FormatError{Msg: "malformed element list", Err: err}
			}
		}
	}
}

// parseElement parses one element plus any clickables synthesized from
// nested <ClickableArea> markers, which follow their owner in the result.
func parseElement(dec *xml.Decoder, se xml.StartElement) ([]Element, error) {
	a := attrs(se.Attr)
	base := Base{
		Name:    a.str("name", ""),
		X:       a.float("x", 0),
		Y:       a.float("y", 0),
		Layer:   a.integer("layer", 0),
		Active:  a.boolean("active", true),
		Opacity: parseOpacity(a),
	}

	switch {
	case strings.EqualFold(se.Name.Local, "Sprite"):
		base.Width = a.float("width", defaultElementSize)
		base.Height = a.float("height", defaultElementSize)
		el := &Sprite{Base: base, ImageSrc: a.str("imageSrc", "")}
		nested, err := parseVisualChildren(dec, se.Name, el, nil)
		if err != nil {
			return nil, err
		}
		return append([]Element{el}, nested...), nil

	case strings.EqualFold(se.Name.Local, "AnimatedSprite"):
		base.Width = a.float("width", defaultElementSize)
		base.Height = a.float("height", defaultElementSize)
		el := &AnimatedSprite{
			Base:        base,
			ImageSrc:    a.str("imageSrc", ""),
			FrameWidth:  a.float("frameWidth", defaultElementSize),
			FrameHeight: a.float("frameHeight", defaultElementSize),
		}
		nested, err := parseVisualChildren(dec, se.Name, el, &el.Animations)
		if err != nil {
			return nil, err
		}
		return append([]Element{el}, nested...), nil

	case strings.EqualFold(se.Name.Local, "Audio"):
		el := &Audio{
			Base:     base,
			Src:      a.str("src", ""),
			Loop:     a.boolean("loop", false),
			Autoplay: a.boolean("autoplay", false),
		}
		if err := dec.Skip(); err != nil {
			return nil, &FormatError{Msg: "malformed audio element", Err: err}
		}
		return []Element{el}, nil

	case strings.EqualFold(se.Name.Local, "Clickable"):
		// Editor-convention standalone clickable.
		el := &Clickable{
			Base:           base,
			ExplicitWidth:  a.floatPtr("width", defaultClickableSize),
			ExplicitHeight: a.floatPtr("height", defaultClickableSize),
			Parent:         a.str("parent", ""),
			HasArea:        a.boolean("hasClickableArea", true),
		}
		if el.ExplicitWidth != nil {
			el.Width = *el.ExplicitWidth
		} else {
			el.Width = defaultClickableSize
		}
		if el.ExplicitHeight != nil {
			el.Height = *el.ExplicitHeight
		} else {
			el.Height = defaultClickableSize
		}
		if err := dec.Skip(); err != nil {
			return nil, &FormatError{Msg: "malformed clickable element", Err: err}
		}
		return []Element{el}, nil

	case strings.EqualFold(se.Name.Local, "Text"):
		el := &Text{
			Base:       base,
			Text:       a.str("text", ""),
			FontSize:   a.float("fontSize", defaultFontSize),
			FontFamily: a.str("fontFamily", ""),
			Color:      a.str("color", defaultTextColor),
		}
		nested, err := parseVisualChildren(dec, se.Name, el, nil)
		if err != nil {
			return nil, err
		}
		return append([]Element{el}, nested...), nil
	}

	if err := dec.Skip(); err != nil {
		return nil, &FormatError{Msg: "malformed document", Err: err}
	}
	return nil, nil
}

func parseOpacity(a attrs) uint8 {
	n := a.integer("opacity", 255)
	if n < 0 {
		n = 0
	}
	if n > 255 {
		n = 255
	}
	return uint8(n)
}

// parseVisualChildren walks the children of a visual element, synthesizing
// a standalone Clickable for each <ClickableArea> marker and collecting
// <Animation> children into anims when the caller supplies a slot. This is
// the exact inverse of the nested emission in Serialize: the synthesized
// clickable copies the owner's bounds, back-references the owner by name,
// and is named <Owner>_ClickableArea when the marker carries no name.
func parseVisualChildren(dec *xml.Decoder, parent xml.Name, owner Element, anims *[]Animation) ([]Element, error) {
	var out []Element
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, &FormatError{Msg: "malformed element", Err: err}
		}
		switch t := tok.(type) {
		case xml.EndElement:
			if t.Name == parent {
				return out, nil
			}
		case xml.StartElement:
			switch {
			case strings.EqualFold(t.Name.Local, "ClickableArea"):
				out = append(out, clickableFromMarker(attrs(t.Attr), owner))
				if err := dec.Skip(); err != nil {
					return nil, &FormatError{Msg: "malformed clickable marker", Err: err}
				}
			case anims != nil && strings.EqualFold(t.Name.Local, "Animation"):
				*anims = append(*anims, parseAnimation(attrs(t.Attr)))
				if err := dec.Skip(); err != nil {
					return nil, &FormatError{Msg: "malformed animation element", Err: err}
				}
			default:
				if err := dec.Skip(); err != nil {
					return nil, &FormatError{Msg: "malformed element", Err: err}
				}
			}
		}
	}
}

func clickableFromMarker(a attrs, owner Element) *Clickable {
	ob := owner.Common()
	name := a.str("name", "")
	if name == "" {
		name = ob.Name + "_ClickableArea"
	}
	c := &Clickable{
		Base: Base{
			Name:    name,
			X:       ob.X,
			Y:       ob.Y,
			Width:   ob.Width,
			Height:  ob.Height,
			Layer:   ob.Layer,
			Active:  true,
			Opacity: 255,
		},
		Parent:  ob.Name,
		HasArea: true,
	}
	return c
}

func parseAnimation(a attrs) Animation {
	anim := Animation{
		Name:     a.str("name", ""),
		Speed:    a.float("speed", defaultAnimSpeed),
		Loop:     a.boolean("loop", false),
		Autoplay: a.boolean("autoplay", false),
	}
	if raw, ok := a.get("frames"); ok {
		for _, f := range strings.Split(raw, ",") {
			f = strings.TrimSpace(f)
			if f != "" {
				anim.Frames = append(anim.Frames, f)
			}
		}
	}
	return anim
}
