package model

const (
	ScopeRead  = "read"
	ScopeWrite = "write"
)

// DefaultScopes are granted to every bearer token
var DefaultScopes = []string{ScopeRead, ScopeWrite}

// AuthInfo is the identity resolved by the bearer gate.
// ClientID is the token subject (a user id).
type AuthInfo struct {
	Token    string   `json:"-"`
	ClientID string   `json:"clientId"`
	Scopes   []string `json:"scopes"`
}

// HasScopes reports whether every required scope was granted
func (a AuthInfo) HasScopes(required ...string) bool {
	for _, req := range required {
		found := false
		for _, s := range a.Scopes {
			if s == req {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
