package utils

import (
	"testing"
)

func TestHashIsDeterministic(t *testing.T) {
	a := Hash("secret" + "12345678")
	b := Hash("secret" + "12345678")
	if a != b {
		t.Errorf("Hash not deterministic: %q != %q", a, b)
	}
}

func TestHashNeverEqualsPlaintext(t *testing.T) {
	for _, input := range []string{"", "p1", "secret12345678", "a@x.com"} {
		if Hash(input) == input {
			t.Errorf("Hash(%q) equals its input", input)
		}
	}
}

func TestHashDiffersPerSalt(t *testing.T) {
	if Hash("secret"+"11111111") == Hash("secret"+"22222222") {
		t.Error("same password with different salts produced identical hashes")
	}
}

func TestVerifyHash(t *testing.T) {
	hash := Hash("secret" + "12345678")
	if !VerifyHash("secret"+"12345678", hash) {
		t.Error("VerifyHash rejected matching input")
	}
	if VerifyHash("wrong"+"12345678", hash) {
		t.Error("VerifyHash accepted non-matching input")
	}
}

func TestGenerateUserID(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := GenerateUserID()
		if len(id) != UserIDLength {
			t.Fatalf("GenerateUserID() = %q; want %d characters", id, UserIDLength)
		}
		for _, r := range id {
			if !(r >= '0' && r <= '9' || r >= 'a' && r <= 'f') {
				t.Fatalf("GenerateUserID() = %q; contains non-hex character %q", id, r)
			}
		}
		if seen[id] {
			t.Fatalf("GenerateUserID() repeated %q", id)
		}
		seen[id] = true
	}
}

func TestGenerateSpacer(t *testing.T) {
	for i := 0; i < 100; i++ {
		spacer := GenerateSpacer()
		if len(spacer) != 10 {
			t.Fatalf("GenerateSpacer() = %q; want exactly 10 digits", spacer)
		}
		for _, r := range spacer {
			if r < '0' || r > '9' {
				t.Fatalf("GenerateSpacer() = %q; contains non-digit %q", spacer, r)
			}
		}
	}
}

func TestGenerateSalt(t *testing.T) {
	salt := GenerateSalt()
	if salt == "" {
		t.Fatal("GenerateSalt() returned empty string")
	}
	for _, r := range salt {
		if r < '0' || r > '9' {
			t.Fatalf("GenerateSalt() = %q; contains non-digit %q", salt, r)
		}
	}
}

func TestGenerateRandomString(t *testing.T) {
	s := GenerateRandomString(40)
	if len(s) != 40 {
		t.Errorf("GenerateRandomString(40) returned %d characters", len(s))
	}
}
