package transport

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDialPlainRejectsUnreachableAddr(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Dial(ctx, Config{Addr: "127.0.0.1:1"})
	require.Error(t, err)
}

func TestDialTLSWithCanceledContextFails(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Dial(ctx, Config{Addr: "irc.example.net:6697", TLS: true})
	require.Error(t, err)
}
