// Package prefabs supplies the editor's palette of insertable element
// templates, loaded from YAML with embedded defaults and optional live
// reload from disk.
package prefabs

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kisstp2006/FluxionJsSceneEditor/scene"
)

// AnimationSpec mirrors scene.Animation in template form.
type AnimationSpec struct {
	Name     string   `yaml:"name"`
	Frames   []string `yaml:"frames"`
	Speed    float64  `yaml:"speed"`
	Loop     bool     `yaml:"loop"`
	Autoplay bool     `yaml:"autoplay"`
}

// TemplateSpec describes one palette entry. Kind selects the element
// variant; the remaining fields apply where the variant uses them.
type TemplateSpec struct {
	Name        string          `yaml:"name"`
	Kind        string          `yaml:"kind"`
	Width       float64         `yaml:"width"`
	Height      float64         `yaml:"height"`
	Layer       int             `yaml:"layer"`
	Image       string          `yaml:"image"`
	FrameWidth  float64         `yaml:"frame_width"`
	FrameHeight float64         `yaml:"frame_height"`
	Animations  []AnimationSpec `yaml:"animations"`
	Src         string          `yaml:"src"`
	Loop        bool            `yaml:"loop"`
	Autoplay    bool            `yaml:"autoplay"`
	Text        string          `yaml:"text"`
	FontSize    float64         `yaml:"font_size"`
	FontFamily  string          `yaml:"font_family"`
	Color       string          `yaml:"color"`
}

// LoadTemplate reads and parses one template file.
func LoadTemplate(filename string) (TemplateSpec, error) {
	var zero TemplateSpec
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	var spec TemplateSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return spec, nil
}

// LoadAll returns every available template, sorted by name.
func LoadAll() ([]TemplateSpec, error) {
	files, err := List()
	if err != nil {
		return nil, err
	}
	out := make([]TemplateSpec, 0, len(files))
	for _, f := range files {
		spec, err := LoadTemplate(f)
		if err != nil {
			return nil, err
		}
		if spec.Name == "" {
			spec.Name = strings.TrimSuffix(f, ".yaml")
		}
		out = append(out, spec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Build constructs a scene element from the template, placed at the given
// world position.
func (t TemplateSpec) Build(name string, x, y float64) (scene.Element, error) {
	switch strings.ToLower(t.Kind) {
	case "sprite":
		el := scene.NewSprite(name)
		el.X, el.Y = x, y
		if t.Width > 0 {
			el.Width = t.Width
		}
		if t.Height > 0 {
			el.Height = t.Height
		}
		el.Layer = t.Layer
		el.ImageSrc = t.Image
		return el, nil

	case "animated_sprite", "animatedsprite":
		el := scene.NewAnimatedSprite(name)
		el.X, el.Y = x, y
		if t.Width > 0 {
			el.Width = t.Width
		}
		if t.Height > 0 {
			el.Height = t.Height
		}
		if t.FrameWidth > 0 {
			el.FrameWidth = t.FrameWidth
		}
		if t.FrameHeight > 0 {
			el.FrameHeight = t.FrameHeight
		}
		el.Layer = t.Layer
		el.ImageSrc = t.Image
		for _, a := range t.Animations {
			el.Animations = append(el.Animations, scene.Animation{
				Name:     a.Name,
				Frames:   append([]string(nil), a.Frames...),
				Speed:    a.Speed,
				Loop:     a.Loop,
				Autoplay: a.Autoplay,
			})
		}
		return el, nil

	case "audio":
		el := scene.NewAudio(name)
		el.X, el.Y = x, y
		el.Layer = t.Layer
		el.Src = t.Src
		el.Loop = t.Loop
		el.Autoplay = t.Autoplay
		return el, nil

	case "clickable":
		el := scene.NewClickable(name)
		el.X, el.Y = x, y
		el.Layer = t.Layer
		if t.Width > 0 {
			w := t.Width
			el.ExplicitWidth = &w
			el.Width = w
		}
		if t.Height > 0 {
			h := t.Height
			el.ExplicitHeight = &h
			el.Height = h
		}
		return el, nil

	case "text":
		el := scene.NewText(name)
		el.X, el.Y = x, y
		el.Layer = t.Layer
		el.Text = t.Text
		if t.FontSize > 0 {
			el.FontSize = t.FontSize
		}
		if t.FontFamily != "" {
			el.FontFamily = t.FontFamily
		}
		if t.Color != "" {
			el.Color = t.Color
		}
		return el, nil
	}
	return nil, fmt.Errorf("prefabs: unknown template kind %q", t.Kind)
}
