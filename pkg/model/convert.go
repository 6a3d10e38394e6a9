package model

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// ToFloat coerces numeric values, numeric strings and booleans into a
// float64.
func ToFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case nil:
		return 0, false
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		rv := reflect.ValueOf(value)
		switch {
		case rv.CanFloat():
			return rv.Float(), true
		case rv.CanInt():
			return float64(rv.Int()), true
		case rv.CanUint():
			return float64(rv.Uint()), true
		}
		return 0, false
	}
}

// ToInt coerces value into an int, rounding fractional numbers.
func ToInt(value any) (int, bool) {
	f, ok := ToFloat(value)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int(math.Round(f)), true
}

// Truthy reports the boolean reading of value: false for nil, false, zero
// numbers and the empty string.
func Truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	}
	if f, ok := ToFloat(value); ok {
		return f != 0 && !math.IsNaN(f)
	}
	return true
}

func assign(dst reflect.Value, value any) error {
	if !dst.CanSet() {
		return fmt.Errorf("%w: field is not settable", ErrValueType)
	}
	if value == nil {
		dst.SetZero()
		return nil
	}

	src := reflect.ValueOf(value)
	if src.Type().AssignableTo(dst.Type()) {
		dst.Set(src)
		return nil
	}

	switch dst.Kind() {
	case reflect.Float32, reflect.Float64:
		f, ok := ToFloat(value)
		if !ok {
			return fmt.Errorf("%w: cannot store %T in %s", ErrValueType, value, dst.Type())
		}
		dst.SetFloat(f)
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, ok := ToInt(value)
		if !ok {
			return fmt.Errorf("%w: cannot store %T in %s", ErrValueType, value, dst.Type())
		}
		dst.SetInt(int64(i))
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		i, ok := ToInt(value)
		if !ok || i < 0 {
			return fmt.Errorf("%w: cannot store %T in %s", ErrValueType, value, dst.Type())
		}
		dst.SetUint(uint64(i))
		return nil
	case reflect.Bool:
		dst.SetBool(Truthy(value))
		return nil
	case reflect.Interface:
		if src.Type().Implements(dst.Type()) {
			dst.Set(src)
			return nil
		}
	}

	if src.Type().ConvertibleTo(dst.Type()) && src.Kind() == dst.Kind() {
		dst.Set(src.Convert(dst.Type()))
		return nil
	}
	return fmt.Errorf("%w: cannot store %T in %s", ErrValueType, value, dst.Type())
}
