package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// validateSession asks the session API who owns cookie c. Any answer other than 200
// with a user document is a failure.
func (m *Middleware) validateSession(ctx context.Context, c *http.Cookie) (User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.sessionAPI, nil)
	if err != nil {
		return User{}, err
	}
	req.Header.Set("Accept", "application/json")
	req.AddCookie(c)

	res, err := m.httpClient.Do(req)
	if err != nil {
		return User{}, fmt.Errorf("auth: session api: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return User{}, fmt.Errorf("auth: session api status %d", res.StatusCode)
	}

	var u User
	if err := json.NewDecoder(res.Body).Decode(&u); err != nil {
		return User{}, fmt.Errorf("auth: session api: %w", err)
	}
	if u.Provider == "" {
		u.Provider = "session"
	}
	return u, nil
}
