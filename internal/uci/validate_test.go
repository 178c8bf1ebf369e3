package uci

import "testing"

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		want      bool
	}{
		{
			name:      "all-zero core with correct check character",
			candidate: "000000000000A",
			want:      true,
		},
		{
			name:      "all-zero core with wrong check character",
			candidate: "000000000000B",
			want:      false,
		},
		{
			name:      "digit series marker",
			candidate: "12345A678901H",
			want:      true,
		},
		{
			name:      "wrong check character",
			candidate: "12345A678901B",
			want:      false,
		},
		{
			name:      "lowercase check character accepted",
			candidate: "12345A678901h",
			want:      true,
		},
		{
			name:      "lowercase series marker rejected",
			candidate: "12345a678901H",
			want:      false,
		},
		{
			name:      "letter series marker with wraparound value",
			candidate: "54321Z987654Y",
			want:      true,
		},
		{
			name:      "too short",
			candidate: "12345A678901",
			want:      false,
		},
		{
			name:      "too long",
			candidate: "12345A678901HH",
			want:      false,
		},
		{
			name:      "empty string",
			candidate: "",
			want:      false,
		},
		{
			name:      "letter in centre number",
			candidate: "1234XA678901H",
			want:      false,
		},
		{
			name:      "letter in candidate digits",
			candidate: "12345A6789Z1H",
			want:      false,
		},
		{
			name:      "check character outside the 17-letter alphabet",
			candidate: "12345A678901J",
			want:      false,
		},
		{
			name:      "digit in check position",
			candidate: "1234567890123",
			want:      false,
		},
		{
			name:      "non-ascii input",
			candidate: "1234５A678901H",
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Validate(tt.candidate); got != tt.want {
				t.Errorf("Validate(%q) = %v, want %v", tt.candidate, got, tt.want)
			}
		})
	}
}

func TestValidate_Idempotent(t *testing.T) {
	for _, candidate := range []string{"12345A678901H", "12345A678901B", ""} {
		first := Validate(candidate)
		for i := 0; i < 3; i++ {
			if got := Validate(candidate); got != first {
				t.Errorf("Validate(%q) changed between calls: %v then %v", candidate, first, got)
			}
		}
	}
}

func TestCheckCharacter(t *testing.T) {
	tests := []struct {
		name   string
		core   string
		want   rune
		wantOK bool
	}{
		{
			name:   "zero sum maps to first alphabet letter",
			core:   "000000000000",
			want:   'A',
			wantOK: true,
		},
		{
			name:   "mixed digits",
			core:   "12345A678901",
			want:   'H',
			wantOK: true,
		},
		{
			name:   "series letter wraps past P",
			core:   "54321Z987654",
			want:   'Y',
			wantOK: true,
		},
		{
			name:   "malformed core",
			core:   "ABCDEFGHIJKL",
			wantOK: false,
		},
		{
			name:   "short core",
			core:   "12345",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CheckCharacter(tt.core)
			if ok != tt.wantOK {
				t.Fatalf("CheckCharacter(%q) ok = %v, want %v", tt.core, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("CheckCharacter(%q) = %q, want %q", tt.core, got, tt.want)
			}
		})
	}
}

// The series position takes the alphabetic value table while every other core
// position must parse as a digit. J and Q both map to 10, so they produce the
// same check character, and both differ from a zero digit in that position.
func TestCheckCharacter_SeriesMapping(t *testing.T) {
	j, ok := CheckCharacter("00000J000000")
	if !ok {
		t.Fatal("core with J series marker should be well-formed")
	}
	q, ok := CheckCharacter("00000Q000000")
	if !ok {
		t.Fatal("core with Q series marker should be well-formed")
	}
	if j != q {
		t.Errorf("J and Q both map to 10 but produced %q and %q", j, q)
	}
	zero, ok := CheckCharacter("000000000000")
	if !ok {
		t.Fatal("all-zero core should be well-formed")
	}
	if j == zero {
		t.Error("letter series marker should change the checksum relative to digit 0")
	}
	if zero != 'A' {
		t.Errorf("all-zero core check character = %q, want 'A'", zero)
	}
}
