package client

import "github.com/jwodder/ircbits"

// Event is delivered to a client's consumer for every notable occurrence:
// transport milestones as well as every parsed Message. Concrete types are
// JSON-taggable so a consumer can log or replay a session as structured
// data.
type Event interface {
	isEvent()
}

type baseEvent struct{}

func (baseEvent) isEvent() {}

// ConnectingEvent fires once the transport dial begins.
type ConnectingEvent struct {
	baseEvent
	Addr string `json:"addr"`
}

// WelcomeInfo accumulates the handshake's welcome burst: RPL_WELCOME
// through RPL_ISUPPORT, RPL_LUSER*, and the MOTD, terminated by
// RPL_ENDOFMOTD or ERR_NOMOTD. Grounded on spec.md §4.7 step 8.
type WelcomeInfo struct {
	Nickname     irc.Nickname      `json:"nickname"`
	Welcome      string            `json:"welcome"`
	YourHost     string            `json:"your_host,omitempty"`
	Created      string            `json:"created,omitempty"`
	ServerName   string            `json:"server_name,omitempty"`
	Version      string            `json:"version,omitempty"`
	UserModes    string            `json:"user_modes,omitempty"`
	ChannelModes string            `json:"channel_modes,omitempty"`
	ISupport     irc.ISupportState `json:"-"`
	LUsers       []string          `json:"lusers,omitempty"`
	Motd         []string          `json:"motd,omitempty"`
	NoMotd       bool              `json:"no_motd,omitempty"`
	ClientModes  irc.ModeString    `json:"-"`
}

// ConnectedEvent fires once the welcome burst is fully collected — from
// RPL_WELCOME through RPL_ENDOFMOTD or ERR_NOMOTD — with the handshake
// (including capability negotiation and SASL, when configured) now fully
// complete. Exactly one of these fires per successful connection.
type ConnectedEvent struct {
	baseEvent
	Info WelcomeInfo `json:"info"`
}

// MessageEvent wraps every Message read off the wire, after any claiming
// Command has already had first refusal on it.
type MessageEvent struct {
	baseEvent
	Message irc.Message `json:"-"`
	Line    string      `json:"line"`
}

// SaslResultEvent reports the outcome of SASL authentication.
type SaslResultEvent struct {
	baseEvent
	Mechanism string `json:"mechanism"`
	Success   bool   `json:"success"`
	Detail    string `json:"detail,omitempty"`
}

// DisconnectedEvent fires once when the connection ends, for any reason.
type DisconnectedEvent struct {
	baseEvent
	Err string `json:"error,omitempty"`
	// Graceful is true when the connection reached end-of-stream (or the
	// runtime returned no error) after the client's own QUIT.
	Graceful bool `json:"graceful"`
}

// ParseErrorEvent reports a line the message catalog could not parse. The
// connection is not closed for this; per spec.md, a bad line from the
// server is noteworthy but never fatal on its own.
type ParseErrorEvent struct {
	baseEvent
	Line string `json:"line"`
	Err  string `json:"error"`
}
