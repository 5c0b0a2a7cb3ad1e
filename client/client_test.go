package client

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	irc "github.com/jwodder/ircbits"
	"github.com/jwodder/ircbits/irctest"
)

func TestClientRegistersAndReceivesWelcome(t *testing.T) {
	srv := irctest.NewServer()
	defer srv.Close()

	cfg := Config{Addr: "irc.example.net:6697", Nickname: "bot"}
	cfg.Dialer = func(ctx context.Context) (io.ReadWriteCloser, error) { return srv, nil }
	require.NoError(t, cfg.Validate())
	c := New(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	runErr := make(chan error, 1)
	go func() { runErr <- c.Run(ctx) }()

	assertNextLine(t, srv, "CAP LS 302")
	assertNextLine(t, srv, "NICK bot")
	assertNextLine(t, srv, "USER guest 0 * ...")

	require.NoError(t, srv.WriteString("CAP * LS :"))
	assertNextLine(t, srv, "CAP END")

	connectedCh := make(chan *ConnectedEvent, 1)
	go func() {
		for e := range c.Events() {
			if ce, ok := e.(*ConnectedEvent); ok {
				connectedCh <- ce
				return
			}
		}
	}()

	require.NoError(t, srv.WriteString(":irc.example.net 001 bot :Welcome to the network"))
	require.NoError(t, srv.WriteString(":irc.example.net 002 bot :Your host is irc.example.net"))
	require.NoError(t, srv.WriteString(":irc.example.net 003 bot :This server was created today"))
	require.NoError(t, srv.WriteString(":irc.example.net 004 bot irc.example.net test-1.0 io io"))
	require.NoError(t, srv.WriteString(":irc.example.net 005 bot NICKLEN=30 :are supported by this server"))
	require.NoError(t, srv.WriteString(":irc.example.net 251 bot :There are 1 users"))
	require.NoError(t, srv.WriteString(":irc.example.net 255 bot :I have 1 client"))
	require.NoError(t, srv.WriteString(":irc.example.net 375 bot :- irc.example.net Message of the Day -"))
	require.NoError(t, srv.WriteString(":irc.example.net 372 bot :- Hello and welcome"))
	require.NoError(t, srv.WriteString(":irc.example.net 376 bot :End of /MOTD command."))

	waitForState(t, c, StateConnected)
	var connected *ConnectedEvent
	select {
	case connected = <-connectedCh:
	case <-time.After(2 * time.Second):
		t.Fatal("never observed ConnectedEvent")
	}

	require.Equal(t, irc.Nickname("bot"), connected.Info.Nickname)
	assert.Equal(t, "Welcome to the network", connected.Info.Welcome)
	assert.Equal(t, "Your host is irc.example.net", connected.Info.YourHost)
	assert.Equal(t, "This server was created today", connected.Info.Created)
	assert.Equal(t, "irc.example.net", connected.Info.ServerName)
	assert.Equal(t, "test-1.0", connected.Info.Version)
	nicklen, ok := connected.Info.ISupport.Get("NICKLEN")
	require.True(t, ok)
	assert.Equal(t, "30", nicklen.Value)
	assert.Equal(t, []string{"There are 1 users", "I have 1 client"}, connected.Info.LUsers)
	assert.Equal(t, []string{"- irc.example.net Message of the Day -", "- Hello and welcome"}, connected.Info.Motd)
	assert.False(t, connected.Info.NoMotd)

	go c.Quit("done")
	assertNextLine(t, srv, "QUIT done")
	require.NoError(t, srv.Close())

	select {
	case err := <-runErr:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Quit")
	}
}

func TestClientConnectedEventOnErrNoMotd(t *testing.T) {
	srv := irctest.NewServer()
	defer srv.Close()

	cfg := Config{Addr: "irc.example.net:6697", Nickname: "bot"}
	cfg.Dialer = func(ctx context.Context) (io.ReadWriteCloser, error) { return srv, nil }
	require.NoError(t, cfg.Validate())
	c := New(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	go func() { _ = c.Run(ctx) }()

	assertNextLine(t, srv, "CAP LS 302")
	assertNextLine(t, srv, "NICK bot")
	assertNextLine(t, srv, "USER guest 0 * ...")
	require.NoError(t, srv.WriteString("CAP * LS :"))
	assertNextLine(t, srv, "CAP END")

	connectedCh := make(chan *ConnectedEvent, 1)
	go func() {
		for e := range c.Events() {
			if ce, ok := e.(*ConnectedEvent); ok {
				connectedCh <- ce
				return
			}
		}
	}()

	require.NoError(t, srv.WriteString(":irc.example.net 001 bot :Welcome to the network"))
	require.NoError(t, srv.WriteString(":irc.example.net 422 bot :MOTD File is missing"))

	waitForState(t, c, StateConnected)
	var connected *ConnectedEvent
	select {
	case connected = <-connectedCh:
	case <-time.After(2 * time.Second):
		t.Fatal("never observed ConnectedEvent")
	}
	assert.True(t, connected.Info.NoMotd)

	require.NoError(t, srv.Close())
}

func TestClientSaslDownshiftsToNextMechanismOnFailure(t *testing.T) {
	srv := irctest.NewServer()
	defer srv.Close()

	cfg := Config{
		Addr:        "irc.example.net:6697",
		Nickname:    "bot",
		SaslAuthcid: "bot",
		SaslPasswd:  "hunter2",
	}
	cfg.Dialer = func(ctx context.Context) (io.ReadWriteCloser, error) { return srv, nil }
	require.NoError(t, cfg.Validate())
	c := New(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	go func() { _ = c.Run(ctx) }()

	assertNextLine(t, srv, "CAP LS 302")
	assertNextLine(t, srv, "NICK bot")
	assertNextLine(t, srv, "USER guest 0 * ...")

	require.NoError(t, srv.WriteString(":irc.example.net CAP * LS :sasl=SCRAM-SHA-256,PLAIN"))
	assertNextLine(t, srv, "CAP REQ sasl")
	require.NoError(t, srv.WriteString(":irc.example.net CAP * ACK :sasl"))

	assertNextLine(t, srv, "AUTHENTICATE SCRAM-SHA-256")
	_, err := srv.ReadLine() // SCRAM client-first-message; nonce makes this non-deterministic
	require.NoError(t, err)
	require.NoError(t, srv.WriteString(":irc.example.net 904 bot :SASL authentication failed"))

	assertNextLine(t, srv, "AUTHENTICATE PLAIN")
	assertNextLine(t, srv, "AUTHENTICATE AGJvdABodW50ZXIy")
	require.NoError(t, srv.WriteString(":irc.example.net 903 bot :SASL authentication successful"))

	assertNextLine(t, srv, "CAP END")
	require.NoError(t, srv.WriteString(":irc.example.net 001 bot :Welcome to the network"))
	require.NoError(t, srv.WriteString(":irc.example.net 376 bot :End of /MOTD command."))

	waitForState(t, c, StateConnected)
	require.NoError(t, srv.Close())
}

func TestClientSaslFallsBackUnauthenticatedWhenNotRequired(t *testing.T) {
	srv := irctest.NewServer()
	defer srv.Close()

	cfg := Config{
		Addr:        "irc.example.net:6697",
		Nickname:    "bot",
		SaslAuthcid: "bot",
		SaslPasswd:  "wrongpass",
	}
	cfg.Dialer = func(ctx context.Context) (io.ReadWriteCloser, error) { return srv, nil }
	require.NoError(t, cfg.Validate())
	c := New(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	go func() { _ = c.Run(ctx) }()

	assertNextLine(t, srv, "CAP LS 302")
	assertNextLine(t, srv, "NICK bot")
	assertNextLine(t, srv, "USER guest 0 * ...")

	require.NoError(t, srv.WriteString(":irc.example.net CAP * LS :"))
	assertNextLine(t, srv, "CAP REQ sasl")
	require.NoError(t, srv.WriteString(":irc.example.net CAP * ACK :sasl"))

	assertNextLine(t, srv, "AUTHENTICATE PLAIN")
	assertNextLine(t, srv, "AUTHENTICATE AGJvdAB3cm9uZ3Bhc3M=")
	require.NoError(t, srv.WriteString(":irc.example.net 904 bot :SASL authentication failed"))

	assertNextLine(t, srv, "CAP END")
	require.NoError(t, srv.WriteString(":irc.example.net 001 bot :Welcome to the network"))
	require.NoError(t, srv.WriteString(":irc.example.net 376 bot :End of /MOTD command."))

	waitForState(t, c, StateConnected)
	require.NoError(t, srv.Close())
}

func TestClientAbortsOnNicknameInUse(t *testing.T) {
	srv := irctest.NewServer()
	defer srv.Close()

	cfg := Config{Addr: "irc.example.net:6697", Nickname: "bot"}
	cfg.Dialer = func(ctx context.Context) (io.ReadWriteCloser, error) { return srv, nil }
	require.NoError(t, cfg.Validate())
	c := New(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	runErr := make(chan error, 1)
	go func() { runErr <- c.Run(ctx) }()

	assertNextLine(t, srv, "CAP LS 302")
	assertNextLine(t, srv, "NICK bot")
	assertNextLine(t, srv, "USER guest 0 * ...")

	require.NoError(t, srv.WriteString("CAP * LS :"))
	assertNextLine(t, srv, "CAP END")
	require.NoError(t, srv.WriteString(":irc.example.net 433 * bot :Nickname is already in use."))

	select {
	case err := <-runErr:
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bot")
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after ERR_NICKNAMEINUSE")
	}
}

func TestClientDebugMirrorsTraffic(t *testing.T) {
	srv := irctest.NewServer()
	defer srv.Close()

	var buf bytes.Buffer
	cfg := Config{Addr: "irc.example.net:6697", Nickname: "bot"}
	cfg.Dialer = func(ctx context.Context) (io.ReadWriteCloser, error) { return srv, nil }
	cfg.Debug = &buf
	require.NoError(t, cfg.Validate())
	c := New(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	go func() { _ = c.Run(ctx) }()

	assertNextLine(t, srv, "CAP LS 302")
	assertNextLine(t, srv, "NICK bot")
	assertNextLine(t, srv, "USER guest 0 * ...")

	require.NoError(t, srv.WriteString("CAP * LS :"))
	assertNextLine(t, srv, "CAP END")
	require.NoError(t, srv.WriteString(":irc.example.net 001 bot :Welcome to the network"))
	require.NoError(t, srv.WriteString(":irc.example.net 376 bot :End of /MOTD command."))
	waitForState(t, c, StateConnected)

	require.NoError(t, srv.Close())

	out := buf.String()
	assert.Contains(t, out, "-> CAP LS 302")
	assert.Contains(t, out, "<- :irc.example.net 001 bot :Welcome to the network")
}

func TestClientAnswersPing(t *testing.T) {
	srv := irctest.NewServer()
	defer srv.Close()

	c := connectedClient(t, srv)
	assert.Equal(t, irc.Nickname("bot"), c.Nick())

	require.NoError(t, srv.WriteString("PING :tok123"))
	assertNextLine(t, srv, "PONG tok123")

	require.NoError(t, srv.Close())
}

func TestClientListChannelsCommand(t *testing.T) {
	srv := irctest.NewServer()
	defer srv.Close()

	c := connectedClient(t, srv)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	cmd := NewListChannels()
	doErr := make(chan error, 1)
	go func() { doErr <- c.Do(ctx, cmd) }()

	assertNextLine(t, srv, "LIST")
	require.NoError(t, srv.WriteString(":irc.example.net 322 bot #general 5 :general chat"))
	require.NoError(t, srv.WriteString(":irc.example.net 322 bot #help 2 :help desk"))
	require.NoError(t, srv.WriteString(":irc.example.net 323 bot :End of /LIST"))

	require.NoError(t, <-doErr)
	require.Len(t, cmd.Results, 2)
	assert.Equal(t, irc.Channel("#general"), cmd.Results[0].Channel)
	assert.Equal(t, 5, cmd.Results[0].Visible)
	assert.Equal(t, "general chat", cmd.Results[0].Topic)
	assert.Equal(t, irc.Channel("#help"), cmd.Results[1].Channel)

	require.NoError(t, srv.Close())
}

func TestClientJoinChannelCompletesAndTracksMembers(t *testing.T) {
	srv := irctest.NewServer()
	defer srv.Close()

	c := connectedClient(t, srv)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	cmd := NewJoinChannel("#general", "")
	doErr := make(chan error, 1)
	go func() { doErr <- c.Do(ctx, cmd) }()

	assertNextLine(t, srv, "JOIN #general")
	require.NoError(t, srv.WriteString(":bot!u@h JOIN #general"))
	require.NoError(t, srv.WriteString(":irc.example.net 353 bot = #general :bot @alice"))
	require.NoError(t, srv.WriteString(":irc.example.net 366 bot #general :End of /NAMES list"))

	require.NoError(t, <-doErr)

	view, ok := c.Channel("#general")
	require.True(t, ok)
	members := view.Members()
	assert.Contains(t, members, irc.Nickname("bot"))
	assert.Contains(t, members, irc.Nickname("alice"))

	set, ok := view.MembershipOf("alice")
	require.True(t, ok)
	best, ok := set.Highest()
	require.True(t, ok)
	assert.Equal(t, irc.Operator, best)

	require.NoError(t, srv.Close())
}

func TestClientDoRejectsConcurrentCommand(t *testing.T) {
	srv := irctest.NewServer()
	defer srv.Close()

	c := connectedClient(t, srv)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	cmd1 := NewListChannels()
	doErr := make(chan error, 1)
	go func() { doErr <- c.Do(ctx, cmd1) }()
	assertNextLine(t, srv, "LIST")

	err := c.Do(ctx, NewListChannels())
	require.Error(t, err)

	require.NoError(t, srv.WriteString(":irc.example.net 323 bot :End of /LIST"))
	require.NoError(t, <-doErr)

	require.NoError(t, srv.Close())
}

func TestClientEmitsEventsForEveryLine(t *testing.T) {
	srv := irctest.NewServer()
	defer srv.Close()

	c := connectedClient(t, srv)

	require.NoError(t, srv.WriteString(":irc.example.net NOTICE bot :hello"))

	var msgEvt *MessageEvent
	deadline := time.After(2 * time.Second)
	for msgEvt == nil {
		select {
		case e := <-c.Events():
			if m, ok := e.(*MessageEvent); ok {
				if _, ok := m.Message.(*irc.Notice); ok {
					msgEvt = m
				}
			}
		case <-deadline:
			t.Fatal("never observed NOTICE MessageEvent")
		}
	}
	assert.Equal(t, ":irc.example.net NOTICE bot :hello", msgEvt.Line)

	require.NoError(t, srv.Close())
}

// connectedClient drives a Client through the handshake on srv, returning
// once RPL_WELCOME has been observed. The Events channel is left undrained;
// its buffer is large enough for the handful of messages these tests send.
func connectedClient(t *testing.T, srv *irctest.Server) *Client {
	t.Helper()
	cfg := Config{Addr: "irc.example.net:6697", Nickname: "bot"}
	cfg.Dialer = func(ctx context.Context) (io.ReadWriteCloser, error) { return srv, nil }
	require.NoError(t, cfg.Validate())
	c := New(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)

	go func() { _ = c.Run(ctx) }()

	assertNextLine(t, srv, "CAP LS 302")
	assertNextLine(t, srv, "NICK bot")
	assertNextLine(t, srv, "USER guest 0 * ...")

	require.NoError(t, srv.WriteString("CAP * LS :"))
	assertNextLine(t, srv, "CAP END")
	require.NoError(t, srv.WriteString(":irc.example.net 001 bot :Welcome to the network"))
	require.NoError(t, srv.WriteString(":irc.example.net 376 bot :End of /MOTD command."))

	waitForState(t, c, StateConnected)
	return c
}

func assertNextLine(t *testing.T, srv *irctest.Server, want string) {
	t.Helper()
	line, err := srv.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, want, strings.TrimRight(line, "\r\n"))
}

func waitForState(t *testing.T, c *Client, want State) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if c.State() == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("client never reached state %s, stuck at %s", want, c.State())
}
