package core

import (
	"testing"
)

// TestObjectStrings tests the String rendering and type name of each operand
func TestObjectStrings(t *testing.T) {
	tests := []struct {
		name     string
		value    Object
		want     string
		typeName string
	}{
		{"null", Null{}, "null", "null"},
		{"true", Bool(true), "true", "boolean"},
		{"false", Bool(false), "false", "boolean"},
		{"negative int", Int(-17), "-17", "integer"},
		{"real", Real(3.14), "3.14", "real"},
		{"integral real", Real(42.0), "42", "real"},
		{"string", String("hello world"), "hello world", "string"},
		{"name", Name("F1"), "/F1", "name"},
		{"array", Array{String("Hi"), Int(-200), Real(1.5)}, "[Hi -200 1.5]", "array"},
		{"empty array", Array{}, "[]", "array"},
		{"dict", Dict{"W": Int(10), "H": Int(5)}, "<</H 5 /W 10>>", "dictionary"},
		{"empty dict", Dict{}, "<<>>", "dictionary"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.value.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			if got := TypeName(tt.value); got != tt.typeName {
				t.Errorf("TypeName() = %q, want %q", got, tt.typeName)
			}
		})
	}

	if got := TypeName(nil); got != "nothing" {
		t.Errorf("TypeName(nil) = %q, want %q", got, "nothing")
	}
}

// TestDictGet tests dictionary lookups
func TestDictGet(t *testing.T) {
	d := Dict{"Name": Name("Value")}

	if got := d.Get("Name"); got != Name("Value") {
		t.Errorf("Get(Name) = %v, want /Value", got)
	}
	if got := d.Get("Missing"); got != nil {
		t.Errorf("Get(Missing) = %v, want nil", got)
	}
}

// TestNumber tests numeric operand conversion
func TestNumber(t *testing.T) {
	tests := []struct {
		name   string
		obj    Object
		want   float64
		wantOK bool
	}{
		{"int", Int(12), 12, true},
		{"real", Real(-0.5), -0.5, true},
		{"name", Name("F1"), 0, false},
		{"nil", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Number(tt.obj)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Number() = (%v, %v), want (%v, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
