package jsonstream

import (
	"strings"
	"testing"
)

func TestDecodeDistinguishesIntegerFromDouble(t *testing.T) {
	v, err := Decode(strings.NewReader(`{"a": 1, "b": 1.5, "c": -3, "d": 2e3}`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if v.Kind != KindObject {
		t.Fatalf("Kind = %v, want KindObject", v.Kind)
	}
	cases := map[string]bool{"a": true, "b": false, "c": true, "d": false}
	for key, wantInt := range cases {
		got := v.Obj[key]
		if got.Kind != KindNumber {
			t.Fatalf("%s: Kind = %v, want KindNumber", key, got.Kind)
		}
		if got.Num.IsInt != wantInt {
			t.Errorf("%s: IsInt = %v, want %v (literal %q)", key, got.Num.IsInt, wantInt, got.Num.Literal)
		}
	}
}

func TestDecodePreservesObjectKeyOrder(t *testing.T) {
	v, err := Decode(strings.NewReader(`{"z": 1, "a": 2, "m": 3}`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := []string{"z", "a", "m"}
	if len(v.ObjKeys) != len(want) {
		t.Fatalf("ObjKeys = %v, want %v", v.ObjKeys, want)
	}
	for i, k := range want {
		if v.ObjKeys[i] != k {
			t.Errorf("ObjKeys[%d] = %q, want %q", i, v.ObjKeys[i], k)
		}
	}
}

func TestDecodeEmptyArray(t *testing.T) {
	v, err := Decode(strings.NewReader(`[]`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if v.Kind != KindArray || len(v.Arr) != 0 {
		t.Fatalf("Decode([]) = %+v, want empty array", v)
	}
}
