package core

import (
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Object is a content stream operand. The implementations in this package are
// the only ones.
type Object interface {
	String() string
	operand()
}

type (
	// Null is the null object.
	Null struct{}
	// Bool is a boolean.
	Bool bool
	// Int is an integer.
	Int int64
	// Real is a real number.
	Real float64
	// String holds undecoded character codes from a literal or hex string.
	String string
	// Name is a name without its leading slash.
	Name string
	// Array is an array of operands; TJ takes one.
	Array []Object
	// Dict is a dictionary, found in inline images and marked content.
	Dict map[string]Object
)

func (Null) operand()   {}
func (Bool) operand()   {}
func (Int) operand()    {}
func (Real) operand()   {}
func (String) operand() {}
func (Name) operand()   {}
func (Array) operand()  {}
func (Dict) operand()   {}

func (Null) String() string     { return "null" }
func (b Bool) String() string   { return strconv.FormatBool(bool(b)) }
func (i Int) String() string    { return strconv.FormatInt(int64(i), 10) }
func (r Real) String() string   { return strconv.FormatFloat(float64(r), 'f', -1, 64) }
func (s String) String() string { return string(s) }
func (n Name) String() string   { return "/" + string(n) }

func (a Array) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, obj := range a {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(obj.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// String renders the dictionary with sorted keys.
func (d Dict) String() string {
	var sb strings.Builder
	sb.WriteString("<<")
	for i, key := range slices.Sorted(maps.Keys(d)) {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString("/" + key + " " + d[key].String())
	}
	sb.WriteString(">>")
	return sb.String()
}

// Get returns the value stored under key, or nil.
func (d Dict) Get(key string) Object {
	return d[key]
}

// TypeName returns the PDF name of the operand's type, for messages.
func TypeName(obj Object) string {
	switch obj.(type) {
	case Null:
		return "null"
	case Bool:
		return "boolean"
	case Int:
		return "integer"
	case Real:
		return "real"
	case String:
		return "string"
	case Name:
		return "name"
	case Array:
		return "array"
	case Dict:
		return "dictionary"
	default:
		return "nothing"
	}
}

// Number returns the value of an Int or Real operand.
func Number(obj Object) (float64, bool) {
	switch v := obj.(type) {
	case Int:
		return float64(v), true
	case Real:
		return float64(v), true
	}
	return 0, false
}
