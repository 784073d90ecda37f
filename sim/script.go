package sim

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/platformer/obj"
	"github.com/milk9111/platformer/prefabs"
)

const scriptDispatch = `
update(__engine, __state, __frame)
`

// ScriptSource drives input from a tengo script defining
// `update := func(engine, state, frame) {...}`. The engine exposes
// press(key), release(key), position() and velocity(); state is a map kept
// between frames.
type ScriptSource struct {
	name     string
	compiled *tengo.Compiled
	state    *tengo.Map
}

// LoadScriptSource compiles a script from prefabs/scripts.
func LoadScriptSource(name string) (*ScriptSource, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("sim: load script %s: %w", name, err)
	}
	return NewScriptSource(name, src)
}

// NewScriptSource compiles src once; Poll runs it every frame.
func NewScriptSource(name string, src []byte) (*ScriptSource, error) {
	script := tengo.NewScript(append(append([]byte(nil), src...), scriptDispatch...))
	_ = script.Add("__engine", map[string]any{})
	_ = script.Add("__state", map[string]any{})
	_ = script.Add("__frame", 0)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("sim: compile script %s: %w", name, err)
	}
	return &ScriptSource{
		name:     name,
		compiled: compiled,
		state:    &tengo.Map{Value: map[string]tengo.Object{}},
	}, nil
}

func (s *ScriptSource) Poll(frame int, a *obj.Avatar) ([]obj.KeyEvent, error) {
	var events []obj.KeyEvent
	engine := buildScriptEngine(a, &events)

	if err := s.compiled.Set("__engine", engine); err != nil {
		return nil, err
	}
	if err := s.compiled.Set("__state", s.state); err != nil {
		return nil, err
	}
	if err := s.compiled.Set("__frame", frame); err != nil {
		return nil, err
	}
	if err := s.compiled.Run(); err != nil {
		return nil, fmt.Errorf("sim: script %s frame %d: %w", s.name, frame, err)
	}
	return events, nil
}

func buildScriptEngine(a *obj.Avatar, events *[]obj.KeyEvent) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	keyFunc := func(name string, pressed bool) *tengo.UserFunction {
		return &tengo.UserFunction{Name: name, Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) < 1 {
				return nil, tengo.ErrWrongNumArguments
			}
			k, ok := obj.ParseKey(objectAsString(args[0]))
			if !ok {
				return tengo.FalseValue, nil
			}
			*events = append(*events, obj.KeyEvent{Key: k, Pressed: pressed})
			return tengo.TrueValue, nil
		}}
	}
	values["press"] = keyFunc("press", true)
	values["release"] = keyFunc("release", false)

	values["position"] = &tengo.UserFunction{Name: "position", Value: func(args ...tengo.Object) (tengo.Object, error) {
		p := a.Body().Position
		return &tengo.Array{Value: []tengo.Object{&tengo.Float{Value: p.X}, &tengo.Float{Value: p.Y}}}, nil
	}}

	values["velocity"] = &tengo.UserFunction{Name: "velocity", Value: func(args ...tengo.Object) (tengo.Object, error) {
		v := a.Body().Velocity
		return &tengo.Array{Value: []tengo.Object{&tengo.Float{Value: v.X}, &tengo.Float{Value: v.Y}}}, nil
	}}

	values["held"] = &tengo.UserFunction{Name: "held", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return nil, tengo.ErrWrongNumArguments
		}
		k, ok := obj.ParseKey(objectAsString(args[0]))
		if !ok {
			return tengo.FalseValue, nil
		}
		held := map[obj.Key]bool{
			obj.KeyLeft:  a.Held.Left,
			obj.KeyRight: a.Held.Right,
			obj.KeyUp:    a.Held.Up,
			obj.KeyDown:  a.Held.Down,
		}[k]
		if held {
			return tengo.TrueValue, nil
		}
		return tengo.FalseValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func objectAsString(o tengo.Object) string {
	if s, ok := o.(*tengo.String); ok {
		return s.Value
	}
	if s, ok := tengo.ToString(o); ok {
		return strings.Trim(s, `"`)
	}
	return ""
}
