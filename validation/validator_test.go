package validation

import (
	"strings"
	"testing"
)

func TestValidPseudo(t *testing.T) {
	tests := []struct {
		pseudo string
		want   bool
	}{
		{"alice", true},
		{"bob_42", true},
		{"a-b", true},
		{"ab", false},
		{"sixteencharsxxxx", false},
		{"Alice", false},
		{"al ice", false},
		{"", false},
	}
	for _, tc := range tests {
		t.Run(tc.pseudo, func(t *testing.T) {
			if got := ValidPseudo(tc.pseudo); got != tc.want {
				t.Errorf("ValidPseudo(%q) = %v, want %v", tc.pseudo, got, tc.want)
			}
		})
	}
}

func TestValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"alice@example.com", true},
		{"contact: alice@example.com", true},
		{"alice@example", false},
		{"alice.example.com", false},
		{"", false},
	}
	for _, tc := range tests {
		t.Run(tc.email, func(t *testing.T) {
			if got := ValidEmail(tc.email); got != tc.want {
				t.Errorf("ValidEmail(%q) = %v, want %v", tc.email, got, tc.want)
			}
		})
	}
}

func TestValidateStructTags(t *testing.T) {
	type registration struct {
		Pseudo  string  `json:"pseudo" validate:"pseudo"`
		Email   string  `json:"email" validate:"basicemail"`
		Back    *string `json:"back" validate:"omitempty,max=5"`
		Renamed *string `json:"renamed" validate:"omitnil,pseudo"`
	}

	long := "toolong"
	bad := "X"
	tests := []struct {
		name    string
		input   registration
		wantErr bool
	}{
		{"valid", registration{Pseudo: "alice", Email: "a@b.c"}, false},
		{"bad pseudo", registration{Pseudo: "A", Email: "a@b.c"}, true},
		{"bad email", registration{Pseudo: "alice", Email: "nope"}, true},
		{"long optional", registration{Pseudo: "alice", Email: "a@b.c", Back: &long}, true},
		{"bad optional pseudo", registration{Pseudo: "alice", Email: "a@b.c", Renamed: &bad}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateStruct(tc.input)
			if (err != nil) != tc.wantErr {
				t.Errorf("ValidateStruct() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestMaxLengthCountsCharacters(t *testing.T) {
	if !MaxLength(strings.Repeat("é", 100), 100) {
		t.Error("100 two-byte characters should fit in 100")
	}
	if MaxLength(strings.Repeat("x", 101), 100) {
		t.Error("101 characters should not fit in 100")
	}
}
