// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package dotmap provides a string-keyed map with dotted-path access to
// nested values, the shape JSON event payloads decode into.
package dotmap

import (
	"encoding/json"
	"strings"
)

// Map is a generic string-keyed mapping. Nested map values are returned
// wrapped as Map on read so that chained lookups keep working; the wrapping
// is computed on each access and never written back into the map.
type Map map[string]any

// Get returns the value stored under key and whether it was present.
// An absent key yields (nil, false), never an error.
func (m Map) Get(key string) (any, bool) {
	v, ok := m[key]
	if !ok {
		return nil, false
	}
	return wrap(v), true
}

// Value returns the value stored under key, or nil when the key is absent.
func (m Map) Value(key string) any {
	v, _ := m.Get(key)
	return v
}

// Set writes value into the map under key. Any value type is accepted.
func (m Map) Set(key string, value any) {
	m[key] = value
}

// Delete removes key from the map. Deleting an absent key does nothing.
func (m Map) Delete(key string) {
	delete(m, key)
}

// Has reports whether key is present, regardless of its value.
func (m Map) Has(key string) bool {
	_, ok := m[key]
	return ok
}

// Path walks a dotted path such as "repository.owner.login" through nested
// maps. Absence at any hop yields (nil, false); a non-map value in the
// middle of the path counts as absence.
func (m Map) Path(path string) (any, bool) {
	cur := m
	parts := strings.Split(path, ".")
	for i, part := range parts {
		v, ok := cur[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return wrap(v), true
		}
		cur, ok = toMap(v)
		if !ok {
			return nil, false
		}
	}
	return nil, false
}

// String returns the string stored under key. The second result is false
// when the key is absent or the value is not a string.
func (m Map) String(key string) (string, bool) {
	v, ok := m[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Int returns the integer stored under key. JSON numbers decode as float64,
// so float64, int, int64 and json.Number are all accepted.
func (m Map) Int(key string) (int, bool) {
	v, ok := m[key]
	if !ok {
		return 0, false
	}
	return toInt(v)
}

// StringPath is Path followed by a string coercion.
func (m Map) StringPath(path string) (string, bool) {
	v, ok := m.Path(path)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// IntPath is Path followed by an integer coercion.
func (m Map) IntPath(path string) (int, bool) {
	v, ok := m.Path(path)
	if !ok {
		return 0, false
	}
	return toInt(v)
}

func wrap(v any) any {
	if mm, ok := toMap(v); ok {
		return mm
	}
	return v
}

func toMap(v any) (Map, bool) {
	switch t := v.(type) {
	case Map:
		return t, true
	case map[string]any:
		return Map(t), true
	default:
		return nil, false
	}
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	default:
		return 0, false
	}
}
