// Package record turns typed SDK response values into the generic tree form
// the rest of the pipeline works on: nested map[string]any / []any structures
// keyed by the provider's wire field names.
package record

import (
	"reflect"
	"time"

	"github.com/shopspring/decimal"
)

var timeType = reflect.TypeOf(time.Time{})

// FromAPI converts a typed SDK record into a raw record tree. Struct fields
// become map entries keyed by their Go field names (these match the wire
// names of the provider API), pointers are dereferenced, and unset values
// (nil pointers, empty enums) are omitted the way the provider omits absent
// fields. Floating-point fields are lifted to fixed-point decimals so that
// downstream normalization can apply the integer-iff-integral rule the wire
// format implies.
func FromAPI(v any) map[string]any {
	out, ok := convert(reflect.ValueOf(v))
	if !ok {
		return nil
	}
	m, _ := out.(map[string]any)
	return m
}

// convert returns the tree form of rv and whether the value is present at
// all. Absent values are dropped by the caller rather than encoded as nulls.
func convert(rv reflect.Value) (any, bool) {
	if !rv.IsValid() {
		return nil, false
	}

	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil, false
		}
		return convert(rv.Elem())

	case reflect.Struct:
		if rv.Type() == timeType {
			// Timestamps stay intact; normalization formats them.
			return rv.Interface(), true
		}
		out := make(map[string]any, rv.NumField())
		t := rv.Type()
		for i := 0; i < rv.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			item, ok := convert(rv.Field(i))
			if !ok {
				continue
			}
			out[field.Name] = item
		}
		return out, true

	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return nil, false
		}
		out := make([]any, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			item, ok := convert(rv.Index(i))
			if !ok {
				continue
			}
			out = append(out, item)
		}
		return out, true

	case reflect.Map:
		if rv.IsNil() {
			return nil, false
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			item, ok := convert(iter.Value())
			if !ok {
				continue
			}
			out[iter.Key().String()] = item
		}
		return out, true

	case reflect.String:
		s := rv.String()
		// A zero value of a named string kind is an unset enum, not an
		// empty string the provider sent.
		if s == "" && rv.Type().Name() != "string" {
			return nil, false
		}
		return s, true

	case reflect.Bool:
		return rv.Bool(), true

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint(), true

	case reflect.Float32:
		return decimal.NewFromFloat32(float32(rv.Float())), true

	case reflect.Float64:
		return decimal.NewFromFloat(rv.Float()), true

	default:
		return nil, false
	}
}
