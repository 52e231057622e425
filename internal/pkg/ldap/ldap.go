// Package ldap authenticates PI credentials against the institute's Active
// Directory. The directory is an opaque oracle here: one bind attempt per
// login, no searches, no writes.
package ldap

import (
	"fmt"
	"log/slog"
	"net"
	"time"

	goldap "github.com/go-ldap/ldap/v3"
)

type Config struct {
	Server string
	Port   int
	Domain string
}

// Authenticator validates a credential pair and reports whether it is valid.
type Authenticator interface {
	// Authenticate returns ok=false for bad credentials and an error only
	// when the directory server itself is unreachable
	Authenticate(username, password string) (bool, error)
}

type Client struct {
	cfg         Config
	dialTimeout time.Duration
}

func NewClient(cfg Config) *Client {
	return &Client{
		cfg:         cfg,
		dialTimeout: 5 * time.Second,
	}
}

// reachable probes the server with a short TCP dial before attempting an
// LDAP bind, so an offline domain controller fails fast.
func (c *Client) reachable() bool {
	addr := net.JoinHostPort(c.cfg.Server, fmt.Sprintf("%d", c.cfg.Port))
	conn, err := net.DialTimeout("tcp", addr, 1*time.Second)
	if err != nil {
		slog.Warn("Identity provider unreachable", "server", addr, "error", err)
		return false
	}
	_ = conn.Close()
	return true
}

func (c *Client) Authenticate(username, password string) (bool, error) {
	if !c.reachable() {
		return false, fmt.Errorf("identity provider %s:%d is not reachable", c.cfg.Server, c.cfg.Port)
	}

	url := fmt.Sprintf("ldaps://%s:%d", c.cfg.Server, c.cfg.Port)
	conn, err := goldap.DialURL(url, goldap.DialWithDialer(&net.Dialer{Timeout: c.dialTimeout}))
	if err != nil {
		return false, fmt.Errorf("failed to connect to identity provider: %w", err)
	}
	defer conn.Close()
	conn.SetTimeout(c.dialTimeout)

	userPrincipalName := fmt.Sprintf("%s@%s", username, c.cfg.Domain)
	if err := conn.Bind(userPrincipalName, password); err != nil {
		slog.Info("LDAP bind rejected", "username", username)
		return false, nil
	}

	return true, nil
}
