package model

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Target is the externally owned record a binding reads at bind time and
// writes on every accepted edit.
type Target interface {
	Get(key string) (any, bool)
	Set(key string, value any) error
}

// Struct adapts a pointer to struct into a Target. Each exported field is
// addressed by its `ui` tag, or by its name with the first letter lowered
// ("Threshold" answers to "threshold"). Fields tagged `ui:"-"` are hidden.
func Struct(ptr any) (Target, error) {
	if ptr == nil {
		return nil, ErrNotStructPtr
	}
	v := reflect.ValueOf(ptr)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return nil, ErrNotStructPtr
	}
	elem := v.Elem()
	if elem.Kind() != reflect.Struct {
		return nil, ErrNotStructPtr
	}

	fields := make(map[string]int, elem.NumField())
	typ := elem.Type()
	for i := 0; i < typ.NumField(); i++ {
		sf := typ.Field(i)
		if !sf.IsExported() {
			continue
		}
		tag := strings.TrimSpace(sf.Tag.Get("ui"))
		if tag == "-" {
			continue
		}
		if tag != "" {
			fields[tag] = i
			continue
		}
		fields[lowerFirst(sf.Name)] = i
	}
	return &structTarget{value: elem, fields: fields}, nil
}

// MustStruct is Struct for init-time wiring; it panics on error.
func MustStruct(ptr any) Target {
	target, err := Struct(ptr)
	if err != nil {
		panic(err)
	}
	return target
}

type structTarget struct {
	value  reflect.Value
	fields map[string]int
}

func (s *structTarget) Get(key string) (any, bool) {
	idx, ok := s.fields[key]
	if !ok {
		return nil, false
	}
	return s.value.Field(idx).Interface(), true
}

func (s *structTarget) Set(key string, value any) error {
	idx, ok := s.fields[key]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, key)
	}
	if err := assign(s.value.Field(idx), value); err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

// Accessor is an explicit getter/setter pair for one field.
type Accessor struct {
	Get func() any
	Set func(any) error
}

// Accessors maps keys to accessor pairs and satisfies Target.
type Accessors map[string]Accessor

func (a Accessors) Get(key string) (any, bool) {
	acc, ok := a[key]
	if !ok || acc.Get == nil {
		return nil, false
	}
	return acc.Get(), true
}

func (a Accessors) Set(key string, value any) error {
	acc, ok := a[key]
	if !ok || acc.Set == nil {
		return fmt.Errorf("%w: %q", ErrUnknownField, key)
	}
	return acc.Set(value)
}

// Field builds an Accessor over a typed variable. Writes go through the same
// conversions as Struct, so a slider's float64 lands in an int field.
func Field[T any](ptr *T) Accessor {
	return Accessor{
		Get: func() any { return *ptr },
		Set: func(value any) error {
			return assign(reflect.ValueOf(ptr).Elem(), value)
		},
	}
}

func lowerFirst(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToLower(r)) + name[size:]
}
