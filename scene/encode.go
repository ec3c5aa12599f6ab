package scene

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/kisstp2006/FluxionJsSceneEditor/common"
)

// boundsTolerance is the absolute per-field tolerance used when matching a
// clickable to an owner by bounds.
const boundsTolerance = 1e-6

// ResolveClickables runs the reconciliation pass that decides which
// clickable, if any, each visual element folds in at serialize time. Each
// clickable is consumed at most once. Candidates are tried per element in
// priority order:
//
//  1. an unconsumed clickable whose Parent equals the element's name
//     (case-insensitive) and which has its area flag set;
//  2. an unconsumed clickable named <Element>Hitbox, then
//     <Element>_ClickableArea;
//  3. an unconsumed clickable with bounds equal to the element's within
//     an absolute tolerance of 1e-6 per field, area flag set.
//
// Clickables left unconsumed are returned as orphans; Serialize drops them
// from output, so callers that care should surface them as a diagnostic.
func ResolveClickables(elements []Element) (attached map[Element]*Clickable, orphans []*Clickable) {
	attached = make(map[Element]*Clickable)
	consumed := make(map[*Clickable]bool)

	var clickables []*Clickable
	for _, el := range elements {
		if c, ok := el.(*Clickable); ok {
			clickables = append(clickables, c)
		}
	}

	for _, el := range elements {
		if !Visual(el) {
			continue
		}
		if c := matchClickable(el, clickables, consumed); c != nil {
			attached[el] = c
			consumed[c] = true
		}
	}

	for _, c := range clickables {
		if !consumed[c] {
			orphans = append(orphans, c)
		}
	}
	return attached, orphans
}

func matchClickable(el Element, clickables []*Clickable, consumed map[*Clickable]bool) *Clickable {
	name := el.Common().Name

	for _, c := range clickables {
		if !consumed[c] && c.HasArea && equalFold(c.Parent, name) && c.Parent != "" {
			return c
		}
	}
	for _, suffix := range []string{"Hitbox", "_ClickableArea"} {
		for _, c := range clickables {
			if !consumed[c] && equalFold(c.Name, name+suffix) {
				return c
			}
		}
	}
	b := el.Common()
	for _, c := range clickables {
		if consumed[c] || !c.HasArea {
			continue
		}
		// Base.Width/Height are the effective bounds for every clickable,
		// explicit or inherited, so they are compared as-is.
		if common.ApproxEqual(c.X, b.X, boundsTolerance) &&
			common.ApproxEqual(c.Y, b.Y, boundsTolerance) &&
			common.ApproxEqual(c.Width, b.Width, boundsTolerance) &&
			common.ApproxEqual(c.Height, b.Height, boundsTolerance) {
			return c
		}
	}
	return nil
}

// Serialize writes the scene in the runtime convention: the camera first,
// then elements as direct children of the root, with consumed clickables
// folded into their owners as <ClickableArea> markers. Unconsumed
// clickables are dropped from output entirely; use ResolveClickables to
// detect them before saving. Output round-trips through Deserialize.
func Serialize(s *Scene) []byte {
	var buf bytes.Buffer
	attached, _ := ResolveClickables(s.Elements)

	buf.WriteString("<Scene")
	writeAttr(&buf, "name", s.Name)
	buf.WriteString(">\n")

	writeCamera(&buf, s.Camera)
	for _, el := range s.Elements {
		if _, ok := el.(*Clickable); ok {
			continue
		}
		writeElement(&buf, el, attached[el])
	}

	buf.WriteString("</Scene>\n")
	return buf.Bytes()
}

func writeCamera(buf *bytes.Buffer, cam Camera) {
	buf.WriteString("    <Camera")
	if cam.Name != "" {
		writeAttr(buf, "name", cam.Name)
	}
	writeFloatAttr(buf, "x", cam.X)
	writeFloatAttr(buf, "y", cam.Y)
	writeFloatAttr(buf, "zoom", cam.Zoom)
	writeFloatAttr(buf, "width", cam.Width)
	writeFloatAttr(buf, "height", cam.Height)
	buf.WriteString(" />\n")
}

func writeElement(buf *bytes.Buffer, el Element, area *Clickable) {
	b := el.Common()

	switch e := el.(type) {
	case *Sprite:
		buf.WriteString("    <Sprite")
		writeAttr(buf, "name", b.Name)
		if e.ImageSrc != "" {
			writeAttr(buf, "imageSrc", e.ImageSrc)
		}
		writeFloatAttr(buf, "x", b.X)
		writeFloatAttr(buf, "y", b.Y)
		writeFloatAttr(buf, "width", b.Width)
		writeFloatAttr(buf, "height", b.Height)
		writeCommonTail(buf, b)
		closeVisual(buf, "Sprite", area, nil)

	case *AnimatedSprite:
		buf.WriteString("    <AnimatedSprite")
		writeAttr(buf, "name", b.Name)
		if e.ImageSrc != "" {
			writeAttr(buf, "imageSrc", e.ImageSrc)
		}
		writeFloatAttr(buf, "frameWidth", e.FrameWidth)
		writeFloatAttr(buf, "frameHeight", e.FrameHeight)
		writeFloatAttr(buf, "x", b.X)
		writeFloatAttr(buf, "y", b.Y)
		writeFloatAttr(buf, "width", b.Width)
		writeFloatAttr(buf, "height", b.Height)
		writeCommonTail(buf, b)
		closeVisual(buf, "AnimatedSprite", area, e.Animations)

	case *Audio:
		buf.WriteString("    <Audio")
		writeAttr(buf, "name", b.Name)
		if e.Src != "" {
			writeAttr(buf, "src", e.Src)
		}
		writeBoolAttr(buf, "loop", e.Loop)
		writeBoolAttr(buf, "autoplay", e.Autoplay)
		writeFloatAttr(buf, "x", b.X)
		writeFloatAttr(buf, "y", b.Y)
		writeCommonTail(buf, b)
		buf.WriteString(" />\n")

	case *Text:
		buf.WriteString("    <Text")
		writeAttr(buf, "name", b.Name)
		writeAttr(buf, "text", e.Text)
		writeFloatAttr(buf, "fontSize", e.FontSize)
		if e.FontFamily != "" {
			writeAttr(buf, "fontFamily", e.FontFamily)
		}
		writeAttr(buf, "color", e.Color)
		writeFloatAttr(buf, "x", b.X)
		writeFloatAttr(buf, "y", b.Y)
		writeCommonTail(buf, b)
		closeVisual(buf, "Text", area, nil)
	}
}

// closeVisual closes a visual element, self-closing when it has no
// children and nesting <Animation> and <ClickableArea> children otherwise.
func closeVisual(buf *bytes.Buffer, tag string, area *Clickable, anims []Animation) {
	if area == nil && len(anims) == 0 {
		buf.WriteString(" />\n")
		return
	}
	buf.WriteString(">\n")
	for _, anim := range anims {
		buf.WriteString("        <Animation")
		writeAttr(buf, "name", anim.Name)
		writeAttr(buf, "frames", strings.Join(anim.Frames, ","))
		writeFloatAttr(buf, "speed", anim.Speed)
		writeBoolAttr(buf, "loop", anim.Loop)
		writeBoolAttr(buf, "autoplay", anim.Autoplay)
		buf.WriteString(" />\n")
	}
	if area != nil {
		buf.WriteString("        <ClickableArea")
		writeAttr(buf, "name", area.Name)
		buf.WriteString(" />\n")
	}
	fmt.Fprintf(buf, "    </%s>\n", tag)
}

func writeCommonTail(buf *bytes.Buffer, b *Base) {
	writeAttr(buf, "layer", strconv.Itoa(b.Layer))
	if !b.Active {
		writeBoolAttr(buf, "active", false)
	}
	if b.Opacity != 255 {
		writeAttr(buf, "opacity", strconv.Itoa(int(b.Opacity)))
	}
}

func writeAttr(buf *bytes.Buffer, name, value string) {
	buf.WriteString(" ")
	buf.WriteString(name)
	buf.WriteString(`="`)
	buf.WriteString(escapeText(value))
	buf.WriteString(`"`)
}

func writeFloatAttr(buf *bytes.Buffer, name string, v float64) {
	writeAttr(buf, name, FormatFloat(v))
}

func writeBoolAttr(buf *bytes.Buffer, name string, v bool) {
	if v {
		writeAttr(buf, name, "true")
	} else {
		writeAttr(buf, name, "false")
	}
}

// FormatFloat renders a float in the locale-invariant form the runtime
// expects: '.' decimal point, no separators, no exponent.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	`"`, "&quot;",
	"<", "&lt;",
	">", "&gt;",
)

func escapeText(s string) string {
	return escaper.Replace(s)
}
