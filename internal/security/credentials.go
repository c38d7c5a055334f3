package security

import "crypto/subtle"

// Account is what a successful credential check yields. The password never
// leaves this package.
type Account struct {
	Username string
	Perms    []string // e.g. {"orders.read","catalog.write"}
}

// CredentialVerifier is the admin login boundary. The storefront this
// replaces compared literals in page code; here the check sits behind an
// interface so the transport layer never sees a secret.
type CredentialVerifier interface {
	Verify(username, password string) (Account, bool)
}

// StaticCredential is one configured admin login.
type StaticCredential struct {
	Username string
	Password string
	Perms    []string
	Disabled bool
}

// StaticVerifier verifies against credentials loaded from config.
type StaticVerifier struct {
	accounts map[string]StaticCredential
}

func NewStaticVerifier(creds []StaticCredential) *StaticVerifier {
	m := make(map[string]StaticCredential, len(creds))
	for _, c := range creds {
		m[c.Username] = c
	}
	return &StaticVerifier{accounts: m}
}

func (v *StaticVerifier) Verify(username, password string) (Account, bool) {
	c, ok := v.accounts[username]
	if !ok || c.Disabled {
		return Account{}, false
	}
	if subtle.ConstantTimeCompare([]byte(c.Password), []byte(password)) != 1 {
		return Account{}, false
	}
	return Account{Username: c.Username, Perms: c.Perms}, true
}

var _ CredentialVerifier = (*StaticVerifier)(nil)
