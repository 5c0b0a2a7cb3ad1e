// Package transport dials the byte stream a client runtime frames into IRC
// lines: plain TCP or TLS, with the server-name indication and trust-store
// verification TLS needs. Kept as its own package so the client runtime can
// be pointed at any io.ReadWriteCloser (a test pipe, a mock server) without
// depending on net at all.
//
// Grounded on the DialFn field of the teacher client, which let callers
// substitute their own dialer; generalized here into the default dialer
// that field existed to override.
package transport

import (
	"context"
	"crypto/tls"
	"io"
	"net"
)

// Config describes how to reach an IRC server.
type Config struct {
	// Addr is "host:port".
	Addr string

	// TLS enables a TLS connection. When false, Dial opens a plain TCP
	// connection; this is appropriate only for loopback testing or
	// networks that tunnel IRC over an already-encrypted transport.
	TLS bool

	// TLSConfig, when non-nil, is used as-is for the TLS handshake
	// (allowing a caller to pin a trust store or skip verification for a
	// test server). When nil and TLS is true, a default *tls.Config with
	// the server name taken from Addr is used.
	TLSConfig *tls.Config
}

// Dial opens the connection described by cfg.
func Dial(ctx context.Context, cfg Config) (io.ReadWriteCloser, error) {
	d := &net.Dialer{}
	if !cfg.TLS {
		return d.DialContext(ctx, "tcp", cfg.Addr)
	}
	tlsCfg := cfg.TLSConfig
	if tlsCfg == nil {
		host, _, err := net.SplitHostPort(cfg.Addr)
		if err != nil {
			host = cfg.Addr
		}
		tlsCfg = &tls.Config{ServerName: host, MinVersion: tls.VersionTLS12}
	}
	tlsDialer := &tls.Dialer{NetDialer: d, Config: tlsCfg}
	return tlsDialer.DialContext(ctx, "tcp", cfg.Addr)
}
