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

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"2025-06-02", true},
		{"2025-02-29", false},
		{"2025-13-01", false},
		{"06-02-2025", false},
		{"2025-6-2", false},
		{"", false},
	}
	for _, c := range cases {
		_, got := IsValidDate(c.input)
		if got != c.want {
			t.Errorf("IsValidDate(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidMonth(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"2025-06", true},
		{"2025-00", false},
		{"2025-13", false},
		{"2025-06-02", false},
		{"June 2025", false},
		{"", false},
	}
	for _, c := range cases {
		_, got := IsValidMonth(c.input)
		if got != c.want {
			t.Errorf("IsValidMonth(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"sick", "vacation", "maternity", "emergency"}
	cases := []struct {
		input string
		want  bool
	}{
		{"sick", true},
		{"emergency", true},
		{"Sick", false},
		{"holiday", false},
		{"", false},
	}
	for _, c := range cases {
		got := IsInSlice(c.input, slice)
		if got != c.want {
			t.Errorf("IsInSlice(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}
