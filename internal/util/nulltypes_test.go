package util

import (
	"database/sql"
	"testing"
)

func TestNullStringFromPtr(t *testing.T) {
	val := "/uploads/faaliyetler/x.png"
	empty := ""

	tests := []struct {
		name string
		ptr  *string
		want sql.NullString
	}{
		{"nil pointer", nil, sql.NullString{}},
		{"empty string", &empty, sql.NullString{}},
		{"value", &val, sql.NullString{String: val, Valid: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NullStringFromPtr(tt.ptr); got != tt.want {
				t.Errorf("NullStringFromPtr() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestStringPtrFromNull(t *testing.T) {
	if got := StringPtrFromNull(sql.NullString{}); got != nil {
		t.Errorf("StringPtrFromNull(invalid) = %v, want nil", got)
	}

	got := StringPtrFromNull(sql.NullString{String: "x", Valid: true})
	if got == nil || *got != "x" {
		t.Errorf("StringPtrFromNull(valid) = %v, want pointer to %q", got, "x")
	}
}

func TestNullStringFromValue(t *testing.T) {
	if ns := NullStringFromValue(""); ns.Valid {
		t.Error("NullStringFromValue(\"\") should be invalid")
	}
	if ns := NullStringFromValue("x"); !ns.Valid || ns.String != "x" {
		t.Errorf("NullStringFromValue(\"x\") = %+v", ns)
	}
}
