package services

import "testing"

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name    string
		pw      string
		wantErr bool
	}{
		{"valid", "studyhard1", false},
		{"too short", "abc1", true},
		{"no number", "studyharder", true},
		{"exactly eight with digit", "abcdefg1", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := validatePassword(tc.pw)
			if tc.wantErr && err == nil {
				t.Errorf("Expected error for %q", tc.pw)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("Unexpected error for %q: %v", tc.pw, err)
			}
		})
	}
}

func TestEmailRegex(t *testing.T) {
	valid := []string{"a@b.co", "student.name+tag@university.edu"}
	invalid := []string{"", "plain", "missing@tld", "@no-local.com"}

	for _, email := range valid {
		if !emailRegex.MatchString(email) {
			t.Errorf("Expected %q to be valid", email)
		}
	}
	for _, email := range invalid {
		if emailRegex.MatchString(email) {
			t.Errorf("Expected %q to be invalid", email)
		}
	}
}

func TestGenerateToken(t *testing.T) {
	a, err := generateToken(32)
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}
	if len(a) != 64 {
		t.Errorf("Expected 64 hex chars, got %d", len(a))
	}

	b, _ := generateToken(32)
	if a == b {
		t.Error("Expected distinct tokens")
	}
}
