// Package ipc holds the JSON wire format of actions sent to the compositor
// over its control socket.
package ipc

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// Action is one wire action. Implementations are the structs in variants.go.
type Action interface {
	isWireAction()
}

type wire struct{}

func (wire) isWireAction() {}

var byName map[string]reflect.Type

func init() {
	byName = make(map[string]reflect.Type, len(variants))
	for _, v := range variants {
		t := reflect.TypeOf(v)
		byName[t.Name()] = t
	}
}

// Variants returns a zero value of every wire action, in protocol order
func Variants() []Action {
	out := make([]Action, len(variants))
	copy(out, variants)
	return out
}

// Name returns the variant tag used in the JSON envelope
func Name(a Action) string {
	t := reflect.TypeOf(a)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

// MarshalAction encodes a as an externally tagged object, e.g.
// {"CloseWindow":{"id":null}}.
func MarshalAction(a Action) ([]byte, error) {
	if a == nil {
		return nil, fmt.Errorf("marshal action: nil action")
	}
	name := Name(a)
	if _, ok := byName[name]; !ok {
		return nil, fmt.Errorf("marshal action: unknown variant %s", name)
	}
	return json.Marshal(map[string]Action{name: a})
}

// UnmarshalAction decodes an externally tagged action. A bare string is
// accepted for variants without fields.
func UnmarshalAction(data []byte) (Action, error) {
	var unit string
	if err := json.Unmarshal(data, &unit); err == nil {
		t, ok := byName[unit]
		if !ok {
			return nil, fmt.Errorf("unmarshal action: unknown variant %q", unit)
		}
		if t.NumField() > 1 {
			return nil, fmt.Errorf("unmarshal action: variant %s has fields", unit)
		}
		return reflect.Zero(t).Interface().(Action), nil
	}

	name, raw, err := unmarshalTagged(data)
	if err != nil {
		return nil, fmt.Errorf("unmarshal action: %w", err)
	}
	t, ok := byName[name]
	if !ok {
		return nil, fmt.Errorf("unmarshal action: unknown variant %q", name)
	}

	v := reflect.New(t)
	if err := json.Unmarshal(raw, v.Interface()); err != nil {
		return nil, fmt.Errorf("unmarshal action %s: %w", name, err)
	}
	return v.Elem().Interface().(Action), nil
}

// Request is the envelope sent over the socket to run an action
type Request struct {
	Action Action
}

func (r Request) MarshalJSON() ([]byte, error) {
	inner, err := MarshalAction(r.Action)
	if err != nil {
		return nil, err
	}
	return json.Marshal(map[string]json.RawMessage{"Action": inner})
}

func (r *Request) UnmarshalJSON(data []byte) error {
	kind, raw, err := unmarshalTagged(data)
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}
	if kind != "Action" {
		return fmt.Errorf("request: unsupported request %q", kind)
	}
	a, err := UnmarshalAction(raw)
	if err != nil {
		return err
	}
	r.Action = a
	return nil
}
