// Package access decides who may act on organizations and tickets. Every
// rule is a pure function of the caller and the resource.
package access

import "strings"

// Caller is the identity verified from the request. A nil Caller or one
// without an ID is unauthenticated.
type Caller struct {
	ID        string
	Email     string
	FirstName string
	LastName  string
}

func (c *Caller) Authenticated() bool {
	return c != nil && c.ID != ""
}

// UserID is empty for unauthenticated callers.
func (c *Caller) UserID() string {
	if c == nil {
		return ""
	}
	return c.ID
}

func (c *Caller) DisplayName() string {
	if c == nil {
		return ""
	}
	if name := strings.TrimSpace(c.FirstName + " " + c.LastName); name != "" {
		return name
	}
	return c.Email
}
