package schema

import (
	"fmt"
	"reflect"
)

// Type validates one field of a generator response.
type Type interface {
	// Name returns the type name used in serialized schemas (e.g. "bool").
	Name() string
	// Validate checks whether a value conforms to this type.
	Validate(value any) error
}

type stringType struct{}

func (stringType) Name() string { return "string" }

func (stringType) Validate(value any) error {
	if _, ok := value.(string); !ok {
		return fmt.Errorf("expected string, got %T", value)
	}
	return nil
}

type boolType struct{}

func (boolType) Name() string { return "bool" }

func (boolType) Validate(value any) error {
	if _, ok := value.(bool); !ok {
		return fmt.Errorf("expected bool, got %T", value)
	}
	return nil
}

type intType struct{}

func (intType) Name() string { return "int" }

func (intType) Validate(value any) error {
	switch v := value.(type) {
	case int, int8, int16, int32, int64:
		return nil
	case float64:
		// JSON decoding yields float64 for every number; accept whole ones.
		if v == float64(int64(v)) {
			return nil
		}
		return fmt.Errorf("expected int, got non-whole float %v", v)
	default:
		return fmt.Errorf("expected int, got %T", value)
	}
}

type floatType struct{}

func (floatType) Name() string { return "float" }

func (floatType) Validate(value any) error {
	switch value.(type) {
	case float32, float64, int, int8, int16, int32, int64:
		return nil
	default:
		return fmt.Errorf("expected float, got %T", value)
	}
}

type sliceType struct {
	elem Type
}

func (t sliceType) Name() string { return "[" + t.elem.Name() + "]" }

func (t sliceType) Validate(value any) error {
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return fmt.Errorf("expected slice, got %T", value)
	}
	for i := 0; i < rv.Len(); i++ {
		if err := t.elem.Validate(rv.Index(i).Interface()); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	return nil
}

type customType struct {
	name     string
	validate func(any) error
}

func (t customType) Name() string { return t.name }

func (t customType) Validate(value any) error { return t.validate(value) }

// String returns a string field type.
func String() Type { return stringType{} }

// Bool returns a boolean field type.
func Bool() Type { return boolType{} }

// Int returns an integer field type.
func Int() Type { return intType{} }

// Float returns a numeric field type.
func Float() Type { return floatType{} }

// Slice returns a slice type with the given element type.
func Slice(elem Type) Type { return sliceType{elem: elem} }

// Custom returns a type backed by a user-supplied validation function.
// Custom types cannot be round-tripped through serialized schemas.
func Custom(name string, validate func(any) error) Type {
	return customType{name: name, validate: validate}
}

// ParseType converts a type name ("string", "int", "float", "bool", or a
// slice form like "[string]") into a Type.
func ParseType(name string) (Type, error) {
	if len(name) > 2 && name[0] == '[' && name[len(name)-1] == ']' {
		elem, err := ParseType(name[1 : len(name)-1])
		if err != nil {
			return nil, err
		}
		return Slice(elem), nil
	}
	switch name {
	case "string":
		return String(), nil
	case "bool":
		return Bool(), nil
	case "int":
		return Int(), nil
	case "float":
		return Float(), nil
	default:
		return nil, fmt.Errorf("unknown type: %s", name)
	}
}

// ParseTypeMap converts a map of field names to type names into a Schema.
func ParseTypeMap(fields map[string]string) (Schema, error) {
	s := make(Schema, len(fields))
	for key, name := range fields {
		t, err := ParseType(name)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", key, err)
		}
		s[key] = t
	}
	return s, nil
}
