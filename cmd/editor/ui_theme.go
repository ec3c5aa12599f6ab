package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Panel and control base colors; interactive states are derived shades.
var (
	panelBG   = color.RGBA{40, 40, 40, 255}
	controlBG = color.RGBA{186, 186, 190, 255}
	accent    = color.RGBA{20, 40, 120, 255}
)

// solidNineSlice returns a solid color *image.NineSlice for widget backgrounds.
func solidNineSlice(c color.Color) *image.NineSlice {
	return image.NewNineSliceColor(c)
}

// shade lightens (positive delta) or darkens (negative delta) a color,
// saturating at the channel bounds.
func shade(c color.RGBA, delta int) color.RGBA {
	adj := func(v uint8) uint8 {
		n := int(v) + delta
		if n < 0 {
			n = 0
		}
		if n > 255 {
			n = 255
		}
		return uint8(n)
	}
	return color.RGBA{adj(c.R), adj(c.G), adj(c.B), c.A}
}

// buttonImage builds the idle/hover/pressed set from one base color.
func buttonImage(base color.RGBA) *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:    solidNineSlice(base),
		Hover:   solidNineSlice(shade(base, 20)),
		Pressed: solidNineSlice(shade(base, -22)),
	}
}

func newEditorTheme(fontFace *text.Face) *widget.Theme {
	scroll := solidNineSlice(shade(controlBG, 28))
	return &widget.Theme{
		ListTheme: &widget.ListParams{
			EntryFace: fontFace,
			EntryColor: &widget.ListEntryColor{
				Unselected:          color.Black,
				Selected:            accent,
				DisabledUnselected:  color.Gray{Y: 128},
				DisabledSelected:    color.Gray{Y: 64},
				SelectingBackground: color.RGBA{196, 214, 245, 255},
				SelectedBackground:  color.RGBA{172, 196, 240, 255},
			},
			ScrollContainerImage: &widget.ScrollContainerImage{
				Idle: scroll,
				Mask: scroll,
			},
		},
		PanelTheme: &widget.PanelParams{
			BackgroundImage: solidNineSlice(panelBG),
		},
		ButtonTheme: &widget.ButtonParams{
			Image:    buttonImage(controlBG),
			TextFace: fontFace,
			TextColor: &widget.ButtonTextColor{
				Idle: color.Black,
			},
		},
	}
}
