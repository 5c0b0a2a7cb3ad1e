// Package client implements the connected IRC client runtime: the
// Connecting/Registering/CapabilityNegotiation/SaslInProgress/
// AwaitingWelcome/Connected/Quitting/Closed state machine, a single
// dispatch loop per connection, ad hoc Commands that claim replies ahead
// of always-on Autoresponders, and a typed Event stream a caller can
// observe or record.
//
// Grounded on the teacher's Client (connect/run loop, WriteMessage) and
// its Handler/middleware chain (handlers.go, router.go), generalized from
// a single fixed handler chain plus a DialFn override into a layered
// runtime over the transport, codec, and sasl packages, with the message
// catalog in this module's root package replacing the teacher's generic
// Message type.
package client

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "gopkg.in/inconshreveable/log15.v2"

	irc "github.com/jwodder/ircbits"
	"github.com/jwodder/ircbits/codec"
	"github.com/jwodder/ircbits/ircdebug"
	"github.com/jwodder/ircbits/sasl"
)

// Client manages one connection to an IRC server: dialing, the
// registration handshake, and a dispatch loop that hands every incoming
// Message to a pending Command (if any claims it) and then to every
// registered Autoresponder.
type Client struct {
	cfg    Config
	log    log.Logger
	events chan Event

	conn   io.ReadWriteCloser
	reader *codec.Reader
	writer *codec.Writer

	mu             sync.Mutex
	state          State
	currentNick    irc.Nickname
	isupport       irc.ISupportState
	capset         *irc.CapabilitySet
	channels       map[irc.Channel]*irc.ChannelView
	autoresponders []Autoresponder

	cmdMu      sync.Mutex
	pendingCmd Command
	cmdDone    chan error

	quitOnce sync.Once
	closed   chan struct{}
}

// New builds a Client from cfg, which must already satisfy Validate.
// Events must be drained by the caller (via Events) or the dispatch loop
// will block once the channel's buffer fills.
func New(cfg Config) *Client {
	c := &Client{
		cfg:      cfg,
		log:      log.New("addr", cfg.Addr),
		events:   make(chan Event, 64),
		capset:   irc.NewCapabilitySet(),
		channels: make(map[irc.Channel]*irc.ChannelView),
		closed:   make(chan struct{}),
	}
	c.autoresponders = []Autoresponder{
		AutoresponderFunc(stateTracker),
		AutoresponderFunc(pingResponder),
	}
	return c
}

// Events returns the channel events are delivered on. Consume it for the
// life of the client; Run will block on a full channel.
func (c *Client) Events() <-chan Event { return c.events }

// AddAutoresponder appends a caller-supplied Autoresponder, run after the
// built-in state tracker and PING responder.
func (c *Client) AddAutoresponder(a Autoresponder) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.autoresponders = append(c.autoresponders, a)
}

// State returns the client's current position in the connection lifecycle.
func (c *Client) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Run dials the server, performs the registration handshake, and then
// dispatches messages until ctx is canceled, Quit is called, or the
// connection ends. It returns nil for a graceful shutdown (our own QUIT
// followed by the server closing the connection) and the triggering error
// otherwise.
func (c *Client) Run(ctx context.Context) error {
	if err := c.cfg.Validate(); err != nil {
		return err
	}
	c.setState(StateConnecting)
	c.emit(&ConnectingEvent{Addr: c.cfg.Addr})

	conn, err := c.cfg.dialer()(ctx)
	if err != nil {
		return errors.Wrap(err, "client: dial")
	}
	if c.cfg.Debug != nil {
		conn = ircdebug.WriteTo(c.cfg.Debug, conn, "-> ", "<- ")
	}
	c.conn = conn
	c.reader = codec.NewReader(conn)
	c.writer = codec.NewWriter(conn, c.cfg.WriteRatePerSecond, c.cfg.WriteBurst)
	defer conn.Close()

	c.currentNick = irc.Nickname(c.cfg.Nickname)

	if err := c.handshake(ctx); err != nil {
		c.emit(&DisconnectedEvent{Err: err.Error()})
		return err
	}

	runErr := c.dispatchLoop(ctx)

	graceful := false
	c.mu.Lock()
	if c.state == StateQuitting {
		graceful = errors.Is(runErr, io.EOF) || runErr == nil
	}
	c.mu.Unlock()
	if graceful {
		runErr = nil
	}

	detail := ""
	if runErr != nil {
		detail = runErr.Error()
	}
	c.emit(&DisconnectedEvent{Err: detail, Graceful: graceful})
	c.setState(StateClosed)
	close(c.closed)
	return runErr
}

// handshake runs CAP LS, PASS/NICK/USER, SASL (if configured), CAP END,
// and waits for RPL_WELCOME, in that order. Grounded on the fixed
// CapLS/Pass/Nick/User send sequence in the teacher's ConnectAndRun.
func (c *Client) handshake(ctx context.Context) error {
	c.setState(StateRegistering)
	c.setState(StateCapabilityNegotiation)

	c.send(&irc.Cap{Subcommand: "LS", Version: "302"})
	if c.cfg.Pass != "" {
		c.send(&irc.Pass{Password: c.cfg.Pass})
	}
	c.send(&irc.Nick{Nickname: irc.Nickname(c.cfg.Nickname)})
	c.send(&irc.User{Username: irc.Username(c.cfg.Username), Realname: c.cfg.Realname})

	for {
		line, err := c.reader.ReadLine()
		if err != nil {
			return errors.Wrap(err, "client: handshake read")
		}
		msg, perr := irc.ParseMessage(line)
		if perr != nil {
			c.emit(&ParseErrorEvent{Line: line, Err: perr.Error()})
			continue
		}
		c.emit(&MessageEvent{Message: msg, Line: line})

		switch m := msg.(type) {
		case *irc.Cap:
			c.applyCap(m)
			if m.Subcommand == "LS" && !m.More {
				if err := c.negotiateCapsDone(ctx); err != nil {
					return err
				}
			}
		case *irc.Welcome:
			info := WelcomeInfo{Nickname: irc.Nickname(m.Client), Welcome: m.Text}
			if err := c.collectWelcomeBurst(&info); err != nil {
				return err
			}
			c.setState(StateConnected)
			c.emit(&ConnectedEvent{Info: info})
			return nil
		case *irc.ErrNicknameInUse:
			// No alternate-nick retry: see design note on ErrNicknameInUse.
			return errors.Errorf("client: nickname %q in use", m.Target)
		default:
			stateTracker(c, msg)
		}
	}
}

// collectWelcomeBurst reads every remaining line of the welcome burst that
// follows RPL_WELCOME — RPL_YOURHOST, RPL_CREATED, RPL_MYINFO,
// RPL_ISUPPORT, RPL_LUSER*, and the MOTD — folding each into info, until
// RPL_ENDOFMOTD or ERR_NOMOTD terminates it. Grounded on spec.md §4.7 step
// 8 ("Collect the welcome burst until RPL_ENDOFMOTD or ERR_NOMOTD").
func (c *Client) collectWelcomeBurst(info *WelcomeInfo) error {
	for {
		line, err := c.reader.ReadLine()
		if err != nil {
			return errors.Wrap(err, "client: welcome burst read")
		}
		msg, perr := irc.ParseMessage(line)
		if perr != nil {
			c.emit(&ParseErrorEvent{Line: line, Err: perr.Error()})
			continue
		}
		c.emit(&MessageEvent{Message: msg, Line: line})

		switch m := msg.(type) {
		case *irc.YourHost:
			info.YourHost = m.Text
		case *irc.Created:
			info.Created = m.Text
		case *irc.MyInfo:
			info.ServerName = m.ServerName
			info.Version = m.Version
			info.UserModes = m.UserModes
			info.ChannelModes = m.ChannelModes
		case *irc.ISupport:
			stateTracker(c, msg)
			info.ISupport = c.isupport
		case *irc.LUserClient:
			info.LUsers = append(info.LUsers, m.Text)
		case *irc.LUserOp:
			info.LUsers = append(info.LUsers, m.Text)
		case *irc.LUserUnknown:
			info.LUsers = append(info.LUsers, m.Text)
		case *irc.LUserChannels:
			info.LUsers = append(info.LUsers, m.Text)
		case *irc.LUserMe:
			info.LUsers = append(info.LUsers, m.Text)
		case *irc.MotdStart:
			info.Motd = append(info.Motd, m.Text)
		case *irc.MotdReply:
			info.Motd = append(info.Motd, m.Text)
		case *irc.EndOfMotd:
			return nil
		case *irc.ErrNoMotd:
			info.NoMotd = true
			return nil
		case *irc.Mode:
			if irc.Nickname(m.Target) == c.currentNick {
				info.ClientModes = append(info.ClientModes, m.Modes...)
			}
			stateTracker(c, msg)
		default:
			stateTracker(c, msg)
		}
	}
}

// negotiateCapsDone requests SASL (if configured) plus any caller-requested
// capabilities, runs the SASL exchange to completion, and sends CAP END.
func (c *Client) negotiateCapsDone(ctx context.Context) error {
	var req []string
	if c.cfg.wantsSasl() {
		req = append(req, "sasl")
	}
	req = append(req, c.cfg.RequestCaps...)
	if len(req) > 0 {
		c.send(&irc.Cap{Subcommand: "REQ", Capabilities: capsFromNames(req)})
		if err := c.awaitCapAck(req); err != nil {
			return err
		}
	}
	if c.cfg.wantsSasl() {
		c.setState(StateSaslInProgress)
		if err := c.runSasl(ctx); err != nil {
			return err
		}
	}
	c.setState(StateAwaitingWelcome)
	c.send(&irc.Cap{Subcommand: "END"})
	return nil
}

func capsFromNames(names []string) []irc.Capability {
	out := make([]irc.Capability, len(names))
	for i, n := range names {
		out[i] = irc.Capability{Name: n}
	}
	return out
}

func (c *Client) awaitCapAck(requested []string) error {
	for {
		line, err := c.reader.ReadLine()
		if err != nil {
			return errors.Wrap(err, "client: cap ack read")
		}
		msg, perr := irc.ParseMessage(line)
		if perr != nil {
			c.emit(&ParseErrorEvent{Line: line, Err: perr.Error()})
			continue
		}
		c.emit(&MessageEvent{Message: msg, Line: line})
		m, ok := msg.(*irc.Cap)
		if !ok {
			stateTracker(c, msg)
			continue
		}
		c.applyCap(m)
		if m.Subcommand == "ACK" || m.Subcommand == "NAK" {
			return nil
		}
	}
}

// runSasl drives the SASL exchange, downshifting through every mechanism
// cfg.SaslPreference shares with the server's advertisement (RPL_SASLMECHS
// is optional; when the sasl capability carries no value at all, PLAIN is
// the sole candidate per spec.md §4.7's open question (b)) until one
// succeeds. On exhaustion it proceeds unauthenticated unless SaslRequired,
// per spec.md §4.6's try/mandatory distinction.
func (c *Client) runSasl(ctx context.Context) error {
	candidates := []string{"PLAIN"}
	if advertised := c.capAdvertisedMechs(); len(advertised) > 0 {
		if chosen := c.cfg.SaslPreference.Candidates(advertised); len(chosen) > 0 {
			candidates = chosen
		}
	}

	var lastErr error
	for _, mechName := range candidates {
		recoverable, err := c.attemptSasl(mechName)
		if err == nil {
			return nil
		}
		if !recoverable {
			return err
		}
		lastErr = err
		c.log.Debug("sasl mechanism failed, downshifting", "mechanism", mechName, "error", err)
	}

	if c.cfg.SaslRequired {
		if lastErr == nil {
			lastErr = errors.New("client: no SASL mechanism available")
		}
		return errors.Wrap(lastErr, "client: sasl exhausted")
	}
	return nil
}

// attemptSasl drives one AUTHENTICATE exchange for a single mechanism.
// recoverable reports whether a non-nil err reflects only this
// mechanism's failure (so runSasl should try the next candidate) as
// opposed to a transport-level error that must abort the handshake
// outright.
func (c *Client) attemptSasl(mechName string) (recoverable bool, err error) {
	mech, err := newMechanism(mechName, c.cfg.SaslAuthcid, c.cfg.SaslPasswd)
	if err != nil {
		return true, err
	}

	id := uuid.NewString()
	c.log.Debug("sasl start", "mechanism", mechName, "cmd", id)
	c.send(&irc.Authenticate{Payload: mechName})

	first, err := mech.Start()
	if err != nil {
		return true, err
	}
	if first != nil {
		if err := c.sendAuthChunks(first); err != nil {
			return false, err
		}
	}

	for {
		line, err := c.reader.ReadLine()
		if err != nil {
			return false, errors.Wrap(err, "client: sasl read")
		}
		msg, perr := irc.ParseMessage(line)
		if perr != nil {
			c.emit(&ParseErrorEvent{Line: line, Err: perr.Error()})
			continue
		}
		c.emit(&MessageEvent{Message: msg, Line: line})

		switch m := msg.(type) {
		case *irc.Authenticate:
			chunks, err := c.collectAuthChunks(m)
			if err != nil {
				return false, err
			}
			payload, err := sasl.DecodeChunks(chunks)
			if err != nil {
				return true, err
			}
			next, err := mech.Next(payload)
			if err != nil {
				c.emit(&SaslResultEvent{Mechanism: mechName, Success: false, Detail: err.Error()})
				return true, err
			}
			if !mech.Done() {
				if err := c.sendAuthChunks(next); err != nil {
					return false, err
				}
			}
		case *irc.SaslSuccess:
			c.emit(&SaslResultEvent{Mechanism: mechName, Success: true})
			return false, nil
		case *irc.SaslFail:
			c.emit(&SaslResultEvent{Mechanism: mechName, Success: false, Detail: m.Text})
			return true, errors.Errorf("client: sasl failed: %s", m.Text)
		default:
			stateTracker(c, msg)
		}
	}
}

// collectAuthChunks reads successive AUTHENTICATE lines until one shorter
// than sasl.ChunkSize (or "+") terminates the current server message.
func (c *Client) collectAuthChunks(first *irc.Authenticate) ([]string, error) {
	chunks := []string{first.Payload}
	for len(first.Payload) == sasl.ChunkSize {
		line, err := c.reader.ReadLine()
		if err != nil {
			return nil, errors.Wrap(err, "client: sasl chunk read")
		}
		msg, perr := irc.ParseMessage(line)
		if perr != nil {
			return nil, perr
		}
		next, ok := msg.(*irc.Authenticate)
		if !ok {
			return nil, errors.New("client: expected AUTHENTICATE continuation")
		}
		chunks = append(chunks, next.Payload)
		first = next
	}
	return chunks, nil
}

func (c *Client) sendAuthChunks(payload []byte) error {
	for _, chunk := range sasl.EncodeChunks(payload) {
		c.send(&irc.Authenticate{Payload: chunk})
	}
	return nil
}

func newMechanism(name, authcid, passwd string) (sasl.Mechanism, error) {
	if name == "PLAIN" {
		return sasl.NewPlain(authcid, passwd), nil
	}
	return sasl.NewScram(name, authcid, passwd)
}

func (c *Client) capAdvertisedMechs() []string {
	cap, ok := c.capset.Offered("sasl")
	if !ok || !cap.HasValue {
		return nil
	}
	var out []string
	start := 0
	for i := 0; i <= len(cap.Value); i++ {
		if i == len(cap.Value) || cap.Value[i] == ',' {
			if i > start {
				out = append(out, cap.Value[start:i])
			}
			start = i + 1
		}
	}
	return out
}

func (c *Client) applyCap(m *irc.Cap) {
	switch m.Subcommand {
	case "LS", "NEW":
		c.capset.Offer(m.Capabilities)
	case "DEL":
		names := make([]string, len(m.Capabilities))
		for i, cap := range m.Capabilities {
			names[i] = cap.Name
		}
		c.capset.Withdraw(names)
	case "ACK":
		names := make([]string, len(m.Capabilities))
		for i, cap := range m.Capabilities {
			names[i] = cap.Name
		}
		c.capset.Ack(names)
	case "NAK":
		names := make([]string, len(m.Capabilities))
		for i, cap := range m.Capabilities {
			names[i] = cap.Name
		}
		c.capset.Nak(names)
	}
}

// dispatchLoop is the single-threaded message pump: it reads one line,
// parses it, offers it to a pending Command, then to every Autoresponder,
// and emits a MessageEvent, looping until a read error or context
// cancellation. Keeping this on one goroutine (fed by the codec.Reader's
// own blocking reads) is what lets Client avoid locking around most of its
// state, per spec.md's concurrency model.
func (c *Client) dispatchLoop(ctx context.Context) error {
	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		for {
			line, err := c.reader.ReadLine()
			if err != nil {
				readErr <- err
				return
			}
			select {
			case lines <- line:
			case <-ctx.Done():
				return
			}
		}
	}()

	ctxDone := ctx.Done()
	for {
		select {
		case <-ctxDone:
			c.Quit("")
			ctxDone = nil // already requested; don't spin selecting this case again
		case err := <-readErr:
			return err
		case line := <-lines:
			msg, perr := irc.ParseMessage(line)
			if perr != nil {
				c.emit(&ParseErrorEvent{Line: line, Err: perr.Error()})
				continue
			}
			c.route(msg)
			c.emit(&MessageEvent{Message: msg, Line: line})
		}
	}
}

// route implements the command-before-autoresponder ordering: a pending
// Command always gets first refusal.
func (c *Client) route(msg irc.Message) {
	c.cmdMu.Lock()
	cmd := c.pendingCmd
	c.cmdMu.Unlock()

	if cmd != nil {
		claimed, done, err := cmd.OnMessage(msg)
		if done {
			c.cmdMu.Lock()
			c.pendingCmd = nil
			ch := c.cmdDone
			c.cmdDone = nil
			c.cmdMu.Unlock()
			if ch != nil {
				ch <- err
			}
		}
		if claimed {
			return
		}
	}

	for _, a := range c.autoresponders {
		a.OnMessage(c, msg)
	}
}

// Do runs cmd to completion: it sends cmd's initial messages, then blocks
// until cmd reports done or its timeout elapses. Only one Do may be
// in-flight at a time; a second call while one is pending returns an
// error immediately rather than silently queuing, since interleaving two
// commands' claims would make OnMessage's claimed result ambiguous.
func (c *Client) Do(ctx context.Context, cmd Command) error {
	c.cmdMu.Lock()
	if c.pendingCmd != nil {
		c.cmdMu.Unlock()
		return errors.New("client: a command is already pending")
	}
	done := make(chan error, 1)
	c.pendingCmd = cmd
	c.cmdDone = done
	c.cmdMu.Unlock()

	id := uuid.NewString()
	c.log.Debug("command start", "cmd", id, "type", fmt.Sprintf("%T", cmd))
	for _, m := range cmd.InitialMessages() {
		c.send(m)
	}

	select {
	case err := <-done:
		c.log.Debug("command done", "cmd", id, "error", err)
		return err
	case <-time.After(cmd.Timeout()):
		c.cmdMu.Lock()
		c.pendingCmd = nil
		c.cmdMu.Unlock()
		return errors.New("client: command timed out")
	case <-ctx.Done():
		return ctx.Err()
	case <-c.closed:
		return errors.New("client: connection closed")
	}
}

// channelView returns (creating if needed) the ChannelView for ch.
func (c *Client) channelView(ch irc.Channel) *irc.ChannelView {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.channels[ch]
	if !ok {
		v = irc.NewChannelView(ch)
		c.channels[ch] = v
	}
	return v
}

// Channel returns the current view of a joined channel, and whether it is
// known.
func (c *Client) Channel(ch irc.Channel) (*irc.ChannelView, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.channels[ch]
	return v, ok
}

// Nick returns the client's nickname as currently tracked from NICK
// messages and the welcome burst.
func (c *Client) Nick() irc.Nickname {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentNick
}

func (c *Client) setState(s State) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
	c.log.Debug("state transition", "state", s.String())
}

func (c *Client) emit(e Event) {
	select {
	case c.events <- e:
	case <-c.closed:
	}
}

// send renders m and writes it to the connection, logging (but not
// returning) render or write errors, matching the teacher's WriteMessage:
// IRC gives no delivery guarantee, so a send failure is reported, not
// propagated as a return value from every call site.
func (c *Client) send(m irc.ClientMessage) {
	line, err := m.Render(nil)
	if err != nil {
		c.log.Warn("render failed", "error", err)
		return
	}
	if err := c.writer.WriteLine(context.Background(), line); err != nil {
		c.log.Warn("write failed", "error", err)
	}
}

// Quit sends a QUIT (with an optional message) and moves to StateQuitting;
// the dispatch loop exits once the server closes the connection or
// cfg.QuitGracePeriod elapses, whichever comes first.
func (c *Client) Quit(message string) {
	c.quitOnce.Do(func() {
		c.setState(StateQuitting)
		c.send(&irc.Quit{Message: message, HasMessage: message != ""})
		go func() {
			select {
			case <-c.closed:
			case <-time.After(time.Duration(c.cfg.QuitGracePeriod) * time.Second):
				c.conn.Close()
			}
		}()
	})
}
