package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Values is a map-backed Target addressed by dotted paths ("pos.x",
// "points.0"). Intermediate maps and slices are created on write; reads of
// a missing path report false.
type Values map[string]any

// Get resolves a dotted path.
func (v Values) Get(key string) (any, bool) {
	return getPath(v, key)
}

// Set writes value at a dotted path.
func (v Values) Set(key string, value any) error {
	if v == nil {
		return fmt.Errorf("model: values map is nil")
	}
	return setPath(v, key, value)
}

func getPath(root map[string]any, path string) (any, bool) {
	if root == nil || path == "" {
		return nil, false
	}
	current := any(root)
	for _, segment := range strings.Split(path, ".") {
		switch node := unwrap(current).(type) {
		case map[string]any:
			next, ok := node[segment]
			if !ok {
				return nil, false
			}
			current = next
		case []any:
			idx, err := strconv.Atoi(segment)
			if err != nil || idx < 0 || idx >= len(node) {
				return nil, false
			}
			current = node[idx]
		default:
			return nil, false
		}
	}
	return current, true
}

func setPath(root map[string]any, path string, value any) error {
	if path == "" {
		return fmt.Errorf("%w: empty path", ErrUnknownField)
	}
	segments := strings.Split(path, ".")
	current := any(root)
	for i, segment := range segments {
		last := i == len(segments)-1
		switch node := unwrap(current).(type) {
		case map[string]any:
			if last {
				node[segment] = value
				return nil
			}
			child, ok := node[segment]
			if !ok || child == nil {
				child = make(map[string]any)
				node[segment] = child
			}
			current = child
		case []any:
			idx, err := strconv.Atoi(segment)
			if err != nil || idx < 0 || idx >= len(node) {
				return fmt.Errorf("%w: index %q out of range in %q", ErrUnknownField, segment, path)
			}
			if last {
				node[idx] = value
				return nil
			}
			if node[idx] == nil {
				node[idx] = make(map[string]any)
			}
			current = node[idx]
		default:
			return fmt.Errorf("%w: %q does not address a container in %q", ErrValueType, segment, path)
		}
	}
	return nil
}

func unwrap(node any) any {
	if values, ok := node.(Values); ok {
		return map[string]any(values)
	}
	return node
}
