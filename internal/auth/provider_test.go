package auth

import (
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

func TestStaticProviderPlainPassword(t *testing.T) {
	p := StaticProvider{Username: "admin", Password: "bassam227"}

	cases := []struct {
		name     string
		username string
		password string
		want     bool
	}{
		{"valid", "admin", "bassam227", true},
		{"wrong password", "admin", "bassam228", false},
		{"wrong username", "gerant", "bassam227", false},
		{"empty", "", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := p.Verify(tc.username, tc.password); got != tc.want {
				t.Fatalf("Verify(%q, %q) = %v, want %v", tc.username, tc.password, got, tc.want)
			}
		})
	}
}

func TestStaticProviderBcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	p := StaticProvider{Username: "admin", Password: "ignored", PasswordHash: string(hash)}

	if !p.Verify("admin", "s3cret") {
		t.Fatal("hash verify failed for correct password")
	}
	if p.Verify("admin", "ignored") {
		t.Fatal("plain password must be ignored when a hash is set")
	}
}

func TestStaticProviderEmptyPasswordNeverMatches(t *testing.T) {
	p := StaticProvider{Username: "admin"}
	if p.Verify("admin", "") {
		t.Fatal("empty configured password must reject all logins")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	token, err := IssueAdminToken("admin", "test-secret", time.Minute)
	if err != nil {
		t.Fatalf("IssueAdminToken: %v", err)
	}

	claims, err := VerifyAdminToken(token, "test-secret")
	if err != nil {
		t.Fatalf("VerifyAdminToken: %v", err)
	}
	if claims.Username != "admin" {
		t.Fatalf("username = %q, want admin", claims.Username)
	}

	if _, err := VerifyAdminToken(token, "other-secret"); err == nil {
		t.Fatal("token verified with the wrong secret")
	}
	if _, err := VerifyAdminToken("", "test-secret"); err == nil {
		t.Fatal("empty token must not verify")
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := IssueAdminToken("admin", "test-secret", -time.Minute)
	if err != nil {
		t.Fatalf("IssueAdminToken: %v", err)
	}
	if _, err := VerifyAdminToken(token, "test-secret"); err == nil {
		t.Fatal("expired token must not verify")
	}
}

func TestIssueWithoutSecretFails(t *testing.T) {
	if _, err := IssueAdminToken("admin", "", time.Minute); err == nil {
		t.Fatal("empty secret must be rejected")
	}
}

func TestParseBearerToken(t *testing.T) {
	if got := ParseBearerToken("Bearer abc.def.ghi"); got != "abc.def.ghi" {
		t.Fatalf("ParseBearerToken = %q", got)
	}
	if got := ParseBearerToken("Basic abc"); got != "" {
		t.Fatalf("non-bearer header parsed to %q, want empty", got)
	}
	if got := ParseBearerToken(""); got != "" {
		t.Fatalf("empty header parsed to %q, want empty", got)
	}
}
