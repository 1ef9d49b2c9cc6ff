package describe

import "reflect"

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind classifies a type structurally for population purposes.
type Kind int

const (
	_ Kind = iota // skip zero value, use it as a default (invalid) value for Kind

	KindScalar
	KindStruct
	KindPointer
	KindSlice
	KindArray
	KindMap
	KindUnsupported // interfaces, channels, functions: left at their zero value

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// KindOf classifies t. Returns the zero Kind for a nil type.
func KindOf(t reflect.Type) Kind {
	if t == nil {
		return 0
	}

	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128,
		reflect.String:
		return KindScalar
	case reflect.Struct:
		return KindStruct
	case reflect.Pointer:
		return KindPointer
	case reflect.Slice:
		return KindSlice
	case reflect.Array:
		return KindArray
	case reflect.Map:
		return KindMap
	default:
		return KindUnsupported
	}
}

var scalarTypes = map[reflect.Kind]reflect.Type{
	reflect.Bool:    reflect.TypeOf(false),
	reflect.Int:     reflect.TypeOf(int(0)),
	reflect.Int8:    reflect.TypeOf(int8(0)),
	reflect.Int16:   reflect.TypeOf(int16(0)),
	reflect.Int32:   reflect.TypeOf(int32(0)),
	reflect.Int64:   reflect.TypeOf(int64(0)),
	reflect.Uint:    reflect.TypeOf(uint(0)),
	reflect.Uint8:   reflect.TypeOf(uint8(0)),
	reflect.Uint16:  reflect.TypeOf(uint16(0)),
	reflect.Uint32:  reflect.TypeOf(uint32(0)),
	reflect.Uint64:  reflect.TypeOf(uint64(0)),
	reflect.Float32: reflect.TypeOf(float32(0)),
	reflect.Float64: reflect.TypeOf(float64(0)),
	reflect.String:  reflect.TypeOf(""),
}

// CanonicalScalar returns the unnamed type carrying the same kind as t
// (int for a named int type, string for a named string type, and so on).
// Returns nil when t is not a scalar or is the unnamed type already.
func CanonicalScalar(t reflect.Type) reflect.Type {
	if t == nil {
		return nil
	}

	base, ok := scalarTypes[t.Kind()]
	if !ok || base == t {
		return nil
	}

	return base
}
