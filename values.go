package cdata

import "fmt"

// Equal reports whether r and o hold the same fields with equal values in
// the same order.
func (r *Record) Equal(o *Record) bool {
	return valuesEqual(r, o)
}

// valuesEqual checks if two values are equal, record field order included.
// Numbers compare by value so a decoded 50 equals a parsed 50.0.
func valuesEqual(a, b Value) bool {
	switch va := a.(type) {
	case *Record:
		vb, ok := b.(*Record)
		if !ok {
			return false
		}
		if va.Len() != vb.Len() {
			return false
		}
		ka, kb := va.Keys(), vb.Keys()
		for i := range ka {
			if ka[i] != kb[i] {
				return false
			}
			x, _ := va.Get(ka[i])
			y, _ := vb.Get(kb[i])
			if !valuesEqual(x, y) {
				return false
			}
		}
		return true
	case List:
		vb, ok := b.(List)
		if !ok || len(va) != len(vb) {
			return false
		}
		for i, v := range va {
			if !valuesEqual(v, vb[i]) {
				return false
			}
		}
		return true
	case int, int64, float64:
		fa, errA := toFloat(a)
		fb, errB := toFloat(b)
		return errA == nil && errB == nil && fa == fb
	case string, bool:
		return a == b
	case nil:
		return b == nil
	default:
		return false
	}
}

// AsInt converts a numeric value holding an integer.
func AsInt(v Value) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n != float64(int(n)) {
			return 0, fmt.Errorf("%v is not an integer", n)
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("cannot convert %T to int", v)
	}
}

func toFloat(v Value) (float64, error) {
	switch n := v.(type) {
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case float64:
		return n, nil
	default:
		return 0, fmt.Errorf("cannot convert %T to float", v)
	}
}

// AsString converts a string value.
func AsString(v Value) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("cannot convert %T to string", v)
	}
	return s, nil
}

// AsStrings converts a List of strings.
func AsStrings(v Value) ([]string, error) {
	switch list := v.(type) {
	case nil:
		return nil, nil
	case []string:
		return list, nil
	case List:
		out := make([]string, len(list))
		for i, item := range list {
			s, err := AsString(item)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			out[i] = s
		}
		return out, nil
	default:
		return nil, fmt.Errorf("cannot convert %T to list", v)
	}
}

// AsRecords converts a List of records.
func AsRecords(v Value) ([]*Record, error) {
	switch list := v.(type) {
	case nil:
		return nil, nil
	case List:
		out := make([]*Record, len(list))
		for i, item := range list {
			rec, ok := item.(*Record)
			if !ok {
				return nil, fmt.Errorf("index %d: cannot convert %T to record", i, item)
			}
			out[i] = rec
		}
		return out, nil
	default:
		return nil, fmt.Errorf("cannot convert %T to list", v)
	}
}
