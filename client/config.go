package client

import (
	"context"
	"crypto/tls"
	"errors"
	"io"

	"github.com/jwodder/ircbits/sasl"
	"github.com/jwodder/ircbits/transport"
)

// Dialer opens the byte stream Run frames into IRC lines. When nil, Run
// dials Addr via transport.Dial using TLS/TLSConfig. Grounded on the
// teacher's Config.DialFn, which existed for exactly this purpose: letting
// tests substitute an irctest.Server for a real network dial.
type Dialer func(ctx context.Context) (io.ReadWriteCloser, error)

// Config describes how to connect and authenticate. Grounded on the field
// set of the teacher's Client struct (Addr/Nickname/User/Realname/Pass/
// DialFn), generalized with explicit validation instead of the teacher's
// panic-on-empty-field checks, and extended with CAP/SASL/rate-limit
// options the teacher never needed.
type Config struct {
	// Addr is "host:port". Required.
	Addr string
	// TLS enables a TLS connection; see transport.Config.
	TLS bool
	// TLSConfig overrides the default TLS configuration when TLS is true.
	TLSConfig *tls.Config

	// Nickname is the nick sent by the initial NICK command. Required.
	Nickname string
	// Username is the ident sent by USER. Defaults to "guest".
	Username string
	// Realname is the gecos field sent by USER. Defaults to "...".
	Realname string
	// Pass, when non-empty, is sent as a PASS command before NICK/USER.
	Pass string

	// SaslAuthcid and SaslPasswd, when both non-empty, enable SASL
	// authentication during the handshake using SaslPreference (or
	// sasl.DefaultPreference when nil) to pick a mechanism from the
	// server's advertised list.
	SaslAuthcid    string
	SaslPasswd     string
	SaslPreference sasl.Preference

	// SaslRequired selects "try" mode (false, the default: per spec.md §6's
	// sasl bool defaulting true, falling back to an unauthenticated
	// connection once every configured mechanism has been attempted and
	// failed) versus mandatory mode (true: registration fails instead of
	// falling back).
	SaslRequired bool

	// RequestCaps lists additional capability names to REQ during
	// negotiation, beyond "sasl" (requested automatically when SASL
	// credentials are set).
	RequestCaps []string

	// WriteRatePerSecond and WriteBurst bound outgoing line rate; see
	// codec.NewWriter. WriteRatePerSecond <= 0 disables throttling.
	WriteRatePerSecond float64
	WriteBurst         int

	// QuitGracePeriod bounds how long Quit waits for the server to close
	// the connection after a QUIT is sent before forcing it closed.
	// Defaults to 10 seconds.
	QuitGracePeriod int // seconds; 0 means default

	// Dialer overrides how Run opens its connection. Tests set this to
	// hand the client an irctest.Server instead of dialing Addr.
	Dialer Dialer

	// Debug, when non-nil, receives every raw line sent and received,
	// prefixed "-> " and "<- " respectively, via ircdebug.WriteTo.
	Debug io.Writer
}

// Validate reports whether cfg has every field a handshake requires set to
// a usable value, filling in documented defaults in place.
func (cfg *Config) Validate() error {
	if cfg.Addr == "" {
		return errors.New("client: Addr is required")
	}
	if cfg.Nickname == "" {
		return errors.New("client: Nickname is required")
	}
	if cfg.Username == "" {
		cfg.Username = "guest"
	}
	if cfg.Realname == "" {
		cfg.Realname = "..."
	}
	if cfg.QuitGracePeriod <= 0 {
		cfg.QuitGracePeriod = 10
	}
	if cfg.SaslPreference == nil {
		cfg.SaslPreference = sasl.DefaultPreference
	}
	return nil
}

func (cfg *Config) wantsSasl() bool {
	return cfg.SaslAuthcid != "" && cfg.SaslPasswd != ""
}

// dialer returns cfg.Dialer if set, otherwise a default that dials Addr
// via transport.Dial using TLS/TLSConfig.
func (cfg *Config) dialer() Dialer {
	if cfg.Dialer != nil {
		return cfg.Dialer
	}
	return func(ctx context.Context) (io.ReadWriteCloser, error) {
		return transport.Dial(ctx, transport.Config{Addr: cfg.Addr, TLS: cfg.TLS, TLSConfig: cfg.TLSConfig})
	}
}
