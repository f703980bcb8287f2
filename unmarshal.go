package cdata

import (
	"fmt"
	"reflect"
	"strings"
)

// UnmarshalRecord stores the fields of r in the struct pointed to by v.
//
// Struct fields are matched through `cdata` tags:
//   - `cdata:"name"` - maps record field "name" to this struct field
//   - `cdata:"name,required"` - fails when the record has no field "name"
//   - `cdata:"-"` - ignores this field
//
// Untagged fields use their lower-cased Go name. Example:
//
//	type move struct {
//	    Level int    `cdata:"level"`
//	    Name  string `cdata:"name,required"`
//	}
func UnmarshalRecord(r *Record, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("unmarshal target must be a non-nil pointer")
	}
	elem := rv.Elem()
	if elem.Kind() != reflect.Struct {
		return fmt.Errorf("unmarshal target must be a pointer to struct")
	}
	return unmarshalStruct(r, elem)
}

// MarshalRecord builds a record from the struct v, fields in declaration
// order. Zero values are kept unless the tag says omitempty.
func MarshalRecord(v any) (*Record, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("cannot marshal %T as a record", v)
	}

	rec := NewRecord()
	t := rv.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name, opts, skip := fieldTag(field)
		if skip {
			continue
		}
		fv := rv.Field(i)
		if hasOption(opts, "omitempty") && fv.IsZero() {
			continue
		}
		val, err := recordValue(fv)
		if err != nil {
			return nil, fmt.Errorf("field %s: %v", field.Name, err)
		}
		rec.Set(name, val)
	}
	return rec, nil
}

func recordValue(v reflect.Value) (Value, error) {
	switch v.Kind() {
	case reflect.String:
		return v.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int(v.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return v.Float(), nil
	case reflect.Bool:
		return v.Bool(), nil
	case reflect.Slice:
		list := make(List, v.Len())
		for i := range list {
			item, err := recordValue(v.Index(i))
			if err != nil {
				return nil, fmt.Errorf("index %d: %v", i, err)
			}
			list[i] = item
		}
		return list, nil
	case reflect.Struct:
		return MarshalRecord(v.Interface())
	case reflect.Interface:
		return v.Interface(), nil
	default:
		return nil, fmt.Errorf("unsupported field type: %s", v.Kind())
	}
}

func unmarshalStruct(r *Record, v reflect.Value) error {
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldValue := v.Field(i)
		if !fieldValue.CanSet() {
			continue
		}
		name, opts, skip := fieldTag(field)
		if skip {
			continue
		}

		value, ok := r.Get(name)
		if !ok {
			if hasOption(opts, "required") {
				return fmt.Errorf("required field %s not found", name)
			}
			continue
		}
		if err := setField(fieldValue, value); err != nil {
			return fmt.Errorf("field %s: %v", field.Name, err)
		}
	}
	return nil
}

func fieldTag(field reflect.StructField) (name string, opts []string, skip bool) {
	tag := field.Tag.Get("cdata")
	if tag == "-" {
		return "", nil, true
	}
	parts := strings.Split(tag, ",")
	name, opts = parts[0], parts[1:]
	if name == "" {
		name = strings.ToLower(field.Name)
	}
	return name, opts, false
}

func setField(field reflect.Value, value Value) error {
	if value == nil {
		return nil
	}

	switch field.Kind() {
	case reflect.String:
		s, err := AsString(value)
		if err != nil {
			return err
		}
		field.SetString(s)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := AsInt(value)
		if err != nil {
			return err
		}
		field.SetInt(int64(n))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := AsInt(value)
		if err != nil {
			return err
		}
		if n < 0 {
			return fmt.Errorf("cannot store %d in %s", n, field.Kind())
		}
		field.SetUint(uint64(n))
	case reflect.Float32, reflect.Float64:
		f, err := toFloat(value)
		if err != nil {
			return err
		}
		field.SetFloat(f)
	case reflect.Bool:
		b, ok := value.(bool)
		if !ok {
			return fmt.Errorf("cannot convert %T to bool", value)
		}
		field.SetBool(b)
	case reflect.Slice:
		return setSlice(field, value)
	case reflect.Struct:
		rec, ok := value.(*Record)
		if !ok {
			return fmt.Errorf("cannot convert %T to struct", value)
		}
		return unmarshalStruct(rec, field)
	case reflect.Interface:
		field.Set(reflect.ValueOf(value))
	default:
		return fmt.Errorf("unsupported field type: %s", field.Kind())
	}
	return nil
}

func setSlice(field reflect.Value, value Value) error {
	list, ok := value.(List)
	if !ok {
		return fmt.Errorf("cannot convert %T to slice", value)
	}
	slice := reflect.MakeSlice(field.Type(), len(list), len(list))
	for i, item := range list {
		if err := setField(slice.Index(i), item); err != nil {
			return fmt.Errorf("index %d: %v", i, err)
		}
	}
	field.Set(slice)
	return nil
}

func hasOption(opts []string, option string) bool {
	for _, opt := range opts {
		if opt == option {
			return true
		}
	}
	return false
}
