package web

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// confirmTTL is how long a confirmation page stays actionable.
const confirmTTL = 5 * time.Minute

// confirmTokens issues one-time tokens for destructive actions. A confirm
// page embeds a token bound to the exact action; the following POST redeems
// it. A stale tab or a replayed form can therefore not re-fire a cancel or
// status change.
type confirmTokens struct {
	mu     sync.Mutex
	tokens map[string]confirmEntry
}

type confirmEntry struct {
	action  string
	expires time.Time
}

func newConfirmTokens() *confirmTokens {
	return &confirmTokens{tokens: make(map[string]confirmEntry)}
}

// Issue creates a token for the given action description.
func (c *confirmTokens) Issue(action string) string {
	token := uuid.NewString()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Opportunistically drop expired entries; the map only ever holds
	// pages the user opened and abandoned.
	now := time.Now()
	for t, e := range c.tokens {
		if e.expires.Before(now) {
			delete(c.tokens, t)
		}
	}

	c.tokens[token] = confirmEntry{action: action, expires: now.Add(confirmTTL)}
	return token
}

// Redeem consumes the token if it exists, matches the action, and has not
// expired. A token redeems at most once.
func (c *confirmTokens) Redeem(token, action string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.tokens[token]
	if !ok {
		return false
	}
	delete(c.tokens, token)
	return e.action == action && e.expires.After(time.Now())
}
