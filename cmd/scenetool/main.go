// Command scenetool applies a tengo script to a scene document: load,
// run the script against the model through a small builtin API, save.
// Useful for batch edits that would be tedious in the editor, e.g.
// shifting a whole layer or renaming element families.
//
// Usage:
//
//	scenetool -scene level1.scene -script nudge.tengo [-out other.scene] [-dry-run]
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/kisstp2006/FluxionJsSceneEditor/scene"
)

func main() {
	scenePath := flag.String("scene", "", "scene file to edit")
	scriptPath := flag.String("script", "", "tengo script to run")
	outPath := flag.String("out", "", "output file (default: overwrite -scene)")
	dryRun := flag.Bool("dry-run", false, "print the result instead of writing it")
	flag.Parse()

	if *scenePath == "" || *scriptPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	f, err := os.Open(*scenePath)
	if err != nil {
		log.Fatalf("scenetool: %v", err)
	}
	s, err := scene.Deserialize(f)
	f.Close()
	if err != nil {
		log.Fatalf("scenetool: %v", err)
	}

	src, err := os.ReadFile(*scriptPath)
	if err != nil {
		log.Fatalf("scenetool: %v", err)
	}

	if err := runScript(s, src); err != nil {
		log.Fatalf("scenetool: script: %v", err)
	}

	if _, orphans := scene.ResolveClickables(s.Elements); len(orphans) > 0 {
		for _, o := range orphans {
			log.Printf("scenetool: warning: clickable %q has no owner and will be dropped on save", o.Name)
		}
	}

	out := scene.Serialize(s)
	if *dryRun {
		fmt.Print(string(out))
		return
	}
	dest := *outPath
	if dest == "" {
		dest = *scenePath
	}
	if err := os.WriteFile(dest, out, 0644); err != nil {
		log.Fatalf("scenetool: %v", err)
	}
	log.Printf("scenetool: wrote %s (%d elements)", dest, len(s.Elements))
}

func runScript(s *scene.Scene, src []byte) error {
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	for name, fn := range builtins(s) {
		if err := script.Add(name, fn); err != nil {
			return err
		}
	}

	_, err := script.Run()
	return err
}

// builtins exposes the document model to scripts. Mutating builtins go
// through the scene's own editing helpers so the model invariants (like
// clickable drag propagation) hold the same way they do in the editor.
func builtins(s *scene.Scene) map[string]tengo.Object {
	values := map[string]tengo.Object{}

	values["elements"] = &tengo.UserFunction{Name: "elements", Value: func(args ...tengo.Object) (tengo.Object, error) {
		arr := &tengo.Array{}
		for _, el := range s.Elements {
			arr.Value = append(arr.Value, elementObject(el))
		}
		return arr, nil
	}}

	values["move"] = &tengo.UserFunction{Name: "move", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 3 {
			return nil, tengo.ErrWrongNumArguments
		}
		el := s.Find(objectAsString(args[0]))
		if el == nil {
			return tengo.FalseValue, nil
		}
		dx, _ := tengo.ToFloat64(args[1])
		dy, _ := tengo.ToFloat64(args[2])
		s.MoveElement(el, dx, dy)
		return tengo.TrueValue, nil
	}}

	values["rename"] = &tengo.UserFunction{Name: "rename", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 2 {
			return nil, tengo.ErrWrongNumArguments
		}
		el := s.Find(objectAsString(args[0]))
		if el == nil {
			return tengo.FalseValue, nil
		}
		s.RenameElement(el, objectAsString(args[1]))
		return tengo.TrueValue, nil
	}}

	values["set_layer"] = &tengo.UserFunction{Name: "set_layer", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 2 {
			return nil, tengo.ErrWrongNumArguments
		}
		el := s.Find(objectAsString(args[0]))
		if el == nil {
			return tengo.FalseValue, nil
		}
		n, _ := tengo.ToInt(args[1])
		el.Common().Layer = n
		return tengo.TrueValue, nil
	}}

	values["set_active"] = &tengo.UserFunction{Name: "set_active", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 2 {
			return nil, tengo.ErrWrongNumArguments
		}
		el := s.Find(objectAsString(args[0]))
		if el == nil {
			return tengo.FalseValue, nil
		}
		b, _ := tengo.ToBool(args[1])
		el.Common().Active = b
		return tengo.TrueValue, nil
	}}

	values["remove"] = &tengo.UserFunction{Name: "remove", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return nil, tengo.ErrWrongNumArguments
		}
		el := s.Find(objectAsString(args[0]))
		if el == nil {
			return tengo.FalseValue, nil
		}
		s.RemoveElement(el)
		return tengo.TrueValue, nil
	}}

	values["camera"] = &tengo.UserFunction{Name: "camera", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Map{Value: map[string]tengo.Object{
			"x":      &tengo.Float{Value: s.Camera.X},
			"y":      &tengo.Float{Value: s.Camera.Y},
			"zoom":   &tengo.Float{Value: s.Camera.Zoom},
			"width":  &tengo.Float{Value: s.Camera.Width},
			"height": &tengo.Float{Value: s.Camera.Height},
		}}, nil
	}}

	values["set_camera"] = &tengo.UserFunction{Name: "set_camera", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 3 {
			return nil, tengo.ErrWrongNumArguments
		}
		x, _ := tengo.ToFloat64(args[0])
		y, _ := tengo.ToFloat64(args[1])
		zoom, _ := tengo.ToFloat64(args[2])
		s.Camera.X = x
		s.Camera.Y = y
		if zoom > 0 {
			s.Camera.Zoom = zoom
		}
		return tengo.TrueValue, nil
	}}

	return values
}

func elementObject(el scene.Element) tengo.Object {
	b := el.Common()
	active := tengo.FalseValue
	if b.Active {
		active = tengo.TrueValue
	}
	return &tengo.Map{Value: map[string]tengo.Object{
		"name":   &tengo.String{Value: b.Name},
		"kind":   &tengo.String{Value: el.Kind().String()},
		"x":      &tengo.Float{Value: b.X},
		"y":      &tengo.Float{Value: b.Y},
		"width":  &tengo.Float{Value: b.Width},
		"height": &tengo.Float{Value: b.Height},
		"layer":  &tengo.Int{Value: int64(b.Layer)},
		"active": active,
	}}
}

func objectAsString(obj tengo.Object) string {
	if obj == nil {
		return ""
	}
	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	default:
		return strings.Trim(v.String(), "\"")
	}
}
