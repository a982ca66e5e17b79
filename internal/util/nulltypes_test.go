package util

import (
	"testing"
	"time"
)

func TestNullInt64FromPtr(t *testing.T) {
	v := int64(42)
	n := NullInt64FromPtr(&v)
	if !n.Valid || n.Int64 != 42 {
		t.Errorf("NullInt64FromPtr(&42) = %+v, want valid 42", n)
	}

	n = NullInt64FromPtr(nil)
	if n.Valid {
		t.Errorf("NullInt64FromPtr(nil) = %+v, want invalid", n)
	}
}

func TestParseNullInt64Positive(t *testing.T) {
	tests := []struct {
		input     string
		wantValid bool
		wantValue int64
	}{
		{"", false, 0},
		{"0", false, 0},
		{"-3", false, 0},
		{"abc", false, 0},
		{"7", true, 7},
	}

	for _, tt := range tests {
		n := ParseNullInt64Positive(tt.input)
		if n.Valid != tt.wantValid {
			t.Errorf("ParseNullInt64Positive(%q).Valid = %v, want %v", tt.input, n.Valid, tt.wantValid)
		}
		if n.Valid && n.Int64 != tt.wantValue {
			t.Errorf("ParseNullInt64Positive(%q) = %d, want %d", tt.input, n.Int64, tt.wantValue)
		}
	}
}

func TestNullStringFromValue(t *testing.T) {
	if n := NullStringFromValue(""); n.Valid {
		t.Errorf("NullStringFromValue(\"\") should be invalid")
	}
	if n := NullStringFromValue("x"); !n.Valid || n.String != "x" {
		t.Errorf("NullStringFromValue(\"x\") = %+v, want valid x", n)
	}
}

func TestNullTimeFromPtr(t *testing.T) {
	now := time.Now()
	if n := NullTimeFromPtr(&now); !n.Valid || !n.Time.Equal(now) {
		t.Errorf("NullTimeFromPtr(&now) = %+v, want valid now", n)
	}
	if n := NullTimeFromPtr(nil); n.Valid {
		t.Errorf("NullTimeFromPtr(nil) should be invalid")
	}
}

func TestPtrFromNullInt64(t *testing.T) {
	if p := PtrFromNullInt64(NullInt64FromPtr(nil)); p != nil {
		t.Errorf("PtrFromNullInt64(invalid) = %v, want nil", p)
	}
	v := int64(5)
	p := PtrFromNullInt64(NullInt64FromPtr(&v))
	if p == nil || *p != 5 {
		t.Errorf("PtrFromNullInt64(valid 5) = %v, want 5", p)
	}
}
