package schema_test

import (
	"math"
	"testing"

	"scam/internal/schema"
)

func TestInferOrderAndFallback(t *testing.T) {
	tests := []struct {
		literal  string
		wantKind schema.Kind
		wantText string
	}{
		{"true", schema.KindBool, "True"},
		{"FALSE", schema.KindBool, "False"},
		{"True", schema.KindBool, "True"},
		{"100", schema.KindInt, "100"},
		{"-7", schema.KindInt, "-7"},
		{"+5", schema.KindInt, "5"},
		{"1.0", schema.KindFloat, "1.0"},
		{"1.00", schema.KindFloat, "1.0"},
		{"0.25", schema.KindFloat, "0.25"},
		{".5", schema.KindFloat, "0.5"},
		{"1.5e3", schema.KindFloat, "1500.0"},
		{"0.00001", schema.KindFloat, "1e-05"},
		{"1.2.3", schema.KindString, "1.2.3"},
		{"abc", schema.KindString, "abc"},
		{"1e5", schema.KindString, "1e5"},
		{"", schema.KindString, ""},
	}
	for _, tt := range tests {
		t.Run(tt.literal, func(t *testing.T) {
			got := schema.Infer(tt.literal)
			if got.Kind() != tt.wantKind {
				t.Fatalf("Infer(%q) kind = %s, want %s", tt.literal, got.Kind(), tt.wantKind)
			}
			if got.String() != tt.wantText {
				t.Fatalf("Infer(%q) text = %q, want %q", tt.literal, got.String(), tt.wantText)
			}
		})
	}
}

func TestCoerceNeverProducesBool(t *testing.T) {
	if got := schema.Coerce("true"); got.Kind() != schema.KindString {
		t.Fatalf("expected string kind for coerced bool word, got %s", got.Kind())
	}
	if got := schema.Coerce("80"); got.Kind() != schema.KindInt || got.Int() != 80 {
		t.Fatalf("unexpected coerce result %+v", got)
	}
	if got := schema.Coerce("2.5"); got.Kind() != schema.KindFloat || got.Float() != 2.5 {
		t.Fatalf("unexpected coerce result %+v", got)
	}
}

func TestFloatRendering(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{1, "1.0"},
		{-2.5, "-2.5"},
		{1e16, "1e+16"},
		{123456789.125, "123456789.125"},
		{0.0001, "0.0001"},
		{math.Inf(1), "inf"},
	}
	for _, tt := range tests {
		if got := schema.Float(tt.value).String(); got != tt.want {
			t.Fatalf("Float(%v).String() = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestValueEqualComparesRendering(t *testing.T) {
	if !schema.Infer("1.0").Equal(schema.Float(1)) {
		t.Fatal("expected 1.0 to equal Float(1)")
	}
	if schema.Infer("1").Equal(schema.Infer("1.0")) {
		t.Fatal("expected int 1 and float 1.0 to differ")
	}
}
