package column

// Kind identifies the declared type of a column.
type Kind int

const (
	Unknown Kind = iota
	// Float64 is a scalar floating-point column.
	Float64
	// Int64 is a scalar integer column.
	Int64
	// Bool is a scalar boolean column.
	Bool
	// Float64List is a variable-length sequence of floats per row.
	Float64List
	// Vec4List is a variable-length sequence of Vec4 records per row.
	Vec4List
)

// String returns the kind name used in schemas and error messages.
func (k Kind) String() string {
	switch k {
	case Float64:
		return "float64"
	case Int64:
		return "int64"
	case Bool:
		return "bool"
	case Float64List:
		return "[]float64"
	case Vec4List:
		return "[]Vec4"
	default:
		return "unknown"
	}
}

// KindOf tags a Go value with its column kind, or Unknown if the value is
// not a supported column type.
func KindOf(v any) Kind {
	switch v.(type) {
	case float64:
		return Float64
	case int64:
		return Int64
	case bool:
		return Bool
	case []float64:
		return Float64List
	case []Vec4:
		return Vec4List
	default:
		return Unknown
	}
}

// AsFloat64 coerces a scalar numeric column value to float64.
// Integer columns widen losslessly for the purposes of Min/Max/Mean/Histo.
func AsFloat64(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int64:
		return float64(t), true
	default:
		return 0, false
	}
}

// Normalize maps convenience Go types produced by user callbacks onto the
// canonical column types: int family to int64, float32 to float64.
// Unsupported values pass through unchanged.
func Normalize(v any) any {
	switch t := v.(type) {
	case int:
		return int64(t)
	case int32:
		return int64(t)
	case float32:
		return float64(t)
	default:
		return v
	}
}
