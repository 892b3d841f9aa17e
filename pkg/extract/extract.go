// Package extract resolves addressing paths against a trace.
//
// The canonical root form is "interactions[i].inputs|outputs|metadata"
// followed by nested field or index segments into that value. Extraction is
// pure: it never mutates the trace and never blocks on I/O.
package extract

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/aretw0/gauntlet/pkg/domain"
)

// Extract resolves path against trace and returns the addressed value.
// Failures (malformed path, missing field, out-of-range index, indexing a
// non-indexable value) are reported as *domain.ExtractionError.
func Extract(trace domain.Trace, path string) (any, error) {
	segs, err := ParsePath(path)
	if err != nil {
		return nil, &domain.ExtractionError{Path: path, Reason: err.Error()}
	}

	if segs[0].IsIndex {
		return nil, &domain.ExtractionError{Path: path, Reason: "path must start with a field name"}
	}
	if segs[0].Field != "interactions" {
		return nil, &domain.ExtractionError{
			Path:   path,
			Reason: fmt.Sprintf("path must be rooted at \"interactions\", got %q", segs[0].Field),
		}
	}

	var current any = trace.Interactions()
	for _, seg := range segs[1:] {
		next, reason := step(current, seg)
		if reason != "" {
			return nil, &domain.ExtractionError{Path: path, Reason: reason}
		}
		current = next
	}
	return current, nil
}

// step applies one segment to a value. It returns the next value, or a
// non-empty reason describing why the segment does not apply.
func step(v any, seg Segment) (any, string) {
	if seg.IsIndex {
		return indexInto(v, seg.Index)
	}
	return fieldOf(v, seg.Field)
}

func indexInto(v any, idx int) (any, string) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, "cannot index into nil value"
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, fmt.Sprintf("cannot index into %T", v)
	}

	n := rv.Len()
	resolved := idx
	if resolved < 0 {
		resolved += n
	}
	if resolved < 0 || resolved >= n {
		return nil, fmt.Sprintf("index %d out of range (length %d)", idx, n)
	}
	return rv.Index(resolved).Interface(), ""
}

// fieldOf looks a field up uniformly over mapping-like and object-like
// values: string-keyed maps by key, structs by field name or json tag.
func fieldOf(v any, name string) (any, string) {
	if m, ok := v.(map[string]any); ok {
		val, ok := m[name]
		if !ok {
			return nil, fmt.Sprintf("field %q not found", name)
		}
		return val, ""
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, fmt.Sprintf("cannot address field %q in nil value", name)
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Sprintf("cannot address field %q in %T (non-string keys)", name, v)
		}
		val := rv.MapIndex(reflect.ValueOf(name))
		if !val.IsValid() {
			return nil, fmt.Sprintf("field %q not found", name)
		}
		return val.Interface(), ""
	case reflect.Struct:
		return structField(rv, name)
	default:
		return nil, fmt.Sprintf("cannot address field %q in %T", name, v)
	}
}

func structField(rv reflect.Value, name string) (any, string) {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}
		if tagName(f) == name || strings.EqualFold(f.Name, name) {
			return rv.Field(i).Interface(), ""
		}
	}
	return nil, fmt.Sprintf("field %q not found", name)
}

func tagName(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if tag == "" || tag == "-" {
		return ""
	}
	if comma := strings.IndexByte(tag, ','); comma >= 0 {
		tag = tag[:comma]
	}
	return tag
}
