package features

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidField is wrapped by every coercion failure returned from Normalize.
var ErrInvalidField = errors.New("invalid field")

const (
	// YesValue is the only flag value that encodes as 1.
	YesValue = "Yes"
	// MaleValue is the only gender value that encodes as 1.
	MaleValue = "male"
)

// Vector is an ordered feature vector of length Count.
type Vector []float64

// Normalize maps a decoded request payload onto the model's feature vector.
//
// A missing age encodes as 0. A present age must coerce to an integer:
// JSON numbers are truncated toward zero, strings must hold a base-10
// integer and booleans count as 1/0. Gender and the 16 flags use the strict
// literal comparisons of IsMale and IsYes; any other value encodes as 0.
func Normalize(raw map[string]any) (Vector, error) {
	vec := make(Vector, Count)

	age := 0
	if v, ok := raw[FieldAge]; ok {
		n, err := coerceInt(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidField, FieldAge, err)
		}
		age = n
	}
	vec[0] = float64(age)
	vec[1] = boolToFloat(IsMale(raw[FieldGender]))

	for i := 2; i < Count; i++ {
		vec[i] = boolToFloat(IsYes(raw[indicators[i].field]))
	}
	return vec, nil
}

// IsYes reports whether v is exactly the string "Yes". "yes", "YES", true
// and "1" are all false: the model was trained on the literal answers.
func IsYes(v any) bool {
	s, ok := v.(string)
	return ok && s == YesValue
}

// IsMale reports whether v is exactly the string "male".
func IsMale(v any) bool {
	s, ok := v.(string)
	return ok && s == MaleValue
}

func coerceInt(v any) (int, error) {
	switch t := v.(type) {
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return int(n), nil
		}
		f, err := t.Float64()
		if err != nil {
			return 0, fmt.Errorf("%q is not a number", t.String())
		}
		return truncate(f)
	case float64:
		return truncate(t)
	case float32:
		return truncate(float64(t))
	case int:
		return t, nil
	case int64:
		return int(t), nil
	case int32:
		return int(t), nil
	case bool:
		if t {
			return 1, nil
		}
		return 0, nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return 0, fmt.Errorf("%q is not an integer", t)
		}
		return n, nil
	case nil:
		return 0, errors.New("value is null")
	default:
		return 0, fmt.Errorf("unsupported type %T", v)
	}
}

func truncate(f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > math.MaxInt32 {
		return 0, fmt.Errorf("%v is out of range", f)
	}
	return int(math.Trunc(f)), nil
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
