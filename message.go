// Package irc implements the typed IRC message layer: a lexer and
// RawMessage intermediate form (lexer.go, raw.go), the typed primitives
// every command and reply field is built from (values.go), and the message
// catalog itself — one Go type per supported command and numeric reply.
//
// Raw string handling is confined to this package's lexer and render
// helpers; everywhere else, callers construct and inspect typed values.
package irc

import "strings"

// Message is the root of the message catalog: every supported command and
// numeric reply implements it. A Message can always be rendered back to a
// single wire line (CRLF appended by the frame codec).
type Message interface {
	// Render produces the wire form of the message, without a trailing
	// CRLF. source, when non-nil, is included as the ":nick!user@host "
	// or ":server " prefix.
	Render(source *Source) (string, error)

	// isMessage seals the interface to this package's two top-level
	// cases, ClientMessage and Reply.
	isMessage()
}

// ClientMessage is a command a client may send to, or receive from, an IRC
// server: a non-numeric verb such as JOIN, PRIVMSG, or CAP.
type ClientMessage interface {
	Message
	isClientMessage()
}

// Reply is a server-originated numeric reply (001-999).
type Reply interface {
	Message
	isReply()
	// Code returns the 3-digit numeric this reply carries.
	Code() int
}

// clientMsg and replyMsg are embedded by every concrete variant to pick up the
// sealing methods without repeating them on each type.
//
// origin carries the wire prefix a command arrived with — who joined,
// who changed nick, who sent the PRIVMSG — for messages a client composes
// itself, origin is nil. It is stamped once by parseFromRaw after the
// catalog's per-command parser has built the concrete value, so none of
// those parsers need to thread it through themselves.
type clientMsg struct{ origin *Source }

func (clientMsg) isMessage()       {}
func (clientMsg) isClientMessage() {}

// Origin returns the source prefix this message arrived with, or nil for
// a message the client itself composed (or one a server sent with no
// prefix at all).
func (m clientMsg) Origin() *Source { return m.origin }

func (m *clientMsg) setOrigin(s *Source) { m.origin = s }

// originSetter is implemented by every *T embedding clientMsg, since Go
// promotes a pointer-receiver method on an embedded value field to the
// pointer of the enclosing type.
type originSetter interface {
	setOrigin(*Source)
}

type replyMsg struct{ code int }

func (replyMsg) isMessage() {}
func (replyMsg) isReply()   {}
func (r replyMsg) Code() int { return r.code }

// ParseMessage turns a single wire line (CRLF already stripped) into a
// typed Message. Unrecognized commands are a parse error; unrecognized
// 3-digit numerics become Reply Unknown.
func ParseMessage(line string) (Message, error) {
	raw, err := ParseRawMessage(line)
	if err != nil {
		return nil, err
	}
	return parseFromRaw(raw, line)
}

func parseFromRaw(raw RawMessage, line string) (Message, error) {
	if raw.Command.IsNumeric() {
		return parseReply(raw)
	}
	m, ok, err := parseClientMessage(raw)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &ParseError{Kind: ErrUnknownCommand, Command: raw.Command.String(), Line: line}
	}
	if raw.Source != nil {
		if s, ok := m.(originSetter); ok {
			s.setOrigin(raw.Source)
		}
	}
	return m, nil
}

// Render renders m to a complete wire line, including source when non-nil.
func Render(m Message, source *Source) (string, error) {
	return m.Render(source)
}

// splitFields splits a space-joined trailing parameter into its tokens, the
// form RPL_ISUPPORT, NAMES, and capability lists use for a single trailing
// carrying many logical values.
func splitFields(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Fields(s)
}

func joinFields(fs []string) string { return strings.Join(fs, " ") }
