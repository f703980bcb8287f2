package cdata

import (
	"fmt"

	"github.com/buger/jsonparser"
)

// Decode parses a JSON document into a Value. Objects become records that
// keep the key order of the document.
func Decode(data []byte) (Value, error) {
	value, typ, _, err := jsonparser.Get(data)
	if err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	return decodeValue(value, typ)
}

// DecodeRecord parses a JSON document whose top level must be an object.
func DecodeRecord(data []byte) (*Record, error) {
	v, err := Decode(data)
	if err != nil {
		return nil, err
	}
	rec, ok := v.(*Record)
	if !ok {
		return nil, fmt.Errorf("json document must be an object, got %T", v)
	}
	return rec, nil
}

// decodeValue converts one jsonparser value into a Value.
func decodeValue(data []byte, typ jsonparser.ValueType) (Value, error) {
	switch typ {
	case jsonparser.Object:
		return decodeObject(data)
	case jsonparser.Array:
		return decodeArray(data)
	case jsonparser.String:
		return jsonparser.ParseString(data)
	case jsonparser.Number:
		if i, err := jsonparser.ParseInt(data); err == nil {
			return int(i), nil
		}
		f, err := jsonparser.ParseFloat(data)
		if err != nil {
			return nil, fmt.Errorf("invalid number %s: %w", data, err)
		}
		return f, nil
	case jsonparser.Boolean:
		return jsonparser.ParseBoolean(data)
	case jsonparser.Null:
		return nil, nil
	default:
		return nil, fmt.Errorf("unsupported json value %q", data)
	}
}

func decodeObject(data []byte) (*Record, error) {
	rec := NewRecord()
	err := jsonparser.ObjectEach(data, func(key, value []byte, typ jsonparser.ValueType, _ int) error {
		v, err := decodeValue(value, typ)
		if err != nil {
			return fmt.Errorf("key %s: %w", key, err)
		}
		rec.Set(string(key), v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func decodeArray(data []byte) (List, error) {
	list := List{}
	var itemErr error
	_, err := jsonparser.ArrayEach(data, func(value []byte, typ jsonparser.ValueType, _ int, err error) {
		if itemErr != nil {
			return
		}
		if err != nil {
			itemErr = err
			return
		}
		v, err := decodeValue(value, typ)
		if err != nil {
			itemErr = fmt.Errorf("index %d: %w", len(list), err)
			return
		}
		list = append(list, v)
	})
	if err != nil {
		return nil, err
	}
	if itemErr != nil {
		return nil, itemErr
	}
	return list, nil
}
