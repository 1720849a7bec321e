package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	valid := []string{"123", "0", "9876543210"}
	invalid := []string{"abc", "123a", "", "-123"}
	for _, s := range valid {
		if !IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = true, want false", s)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "2023-01-32", "01-01-2023", "not-a-date", ""}
	for _, date := range valid {
		if _, ok := IsValidDate(date); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", date)
		}
	}
	for _, date := range invalid {
		if _, ok := IsValidDate(date); ok {
			t.Errorf("IsValidDate(%q) = true, want false", date)
		}
	}
}

func TestIsValidPeriod(t *testing.T) {
	cases := []struct {
		month int
		year  int
		want  bool
	}{
		{1, 2024, true},
		{12, 2000, true},
		{0, 2024, false},
		{13, 2024, false},
		{6, 1999, false},
	}
	for _, c := range cases {
		got := IsValidPeriod(c.month, c.year)
		if got != c.want {
			t.Errorf("IsValidPeriod(%d, %d) = %v, want %v", c.month, c.year, got, c.want)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"pending", "approved", "paid"}
	if !IsInSlice("approved", slice) {
		t.Errorf("IsInSlice(approved) = false, want true")
	}
	if IsInSlice("rejected", slice) {
		t.Errorf("IsInSlice(rejected) = true, want false")
	}
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "period_month", Message: "must be between 1 and 12"},
		{Field: "records", Message: "at least one record is required"},
	}

	msg := errs.Error()
	if msg != "period_month: must be between 1 and 12; records: at least one record is required" {
		t.Errorf("unexpected error message: %q", msg)
	}

	m := errs.ToMap()
	if len(m) != 2 || m["period_month"] != "must be between 1 and 12" {
		t.Errorf("unexpected map: %v", m)
	}
}
