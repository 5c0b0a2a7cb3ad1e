package client

import (
	"regexp"
	"strings"

	irc "github.com/jwodder/ircbits"
)

// TextRouter dispatches incoming PRIVMSG text to registered handlers by
// wildcard or regular-expression pattern, tried in registration order with
// the first match winning. It implements Autoresponder, so it is added to
// a Client the same way as any other observer.
//
// Grounded on the teacher's Router.OnText/OnTextRE and its wildtext
// compiler, narrowed from a general attribute-matching router (command,
// source, channel, CTCP subcommand all as matcher types) down to the one
// piece this runtime doesn't already have a typed home for: free-text
// PRIVMSG dispatch. Command replies are claimed by Command.OnMessage, and
// connection-state transitions are handled by stateTracker, so a generic
// matcher interface over untyped messages has no remaining job here.
type TextRouter struct {
	routes []textRoute
}

type textRoute struct {
	re *regexp.Regexp
	fn func(c *Client, m *irc.Privmsg)
}

// NewTextRouter returns an empty router ready to have routes registered.
func NewTextRouter() *TextRouter { return &TextRouter{} }

// OnText registers fn for PRIVMSG text matching the wildcard pattern:
//
//	*    matches any text
//	&    matches any single whitespace-delimited word
//	?    matches any single character
//	text matches literally; text* / *text / *text* anchor or float
func (t *TextRouter) OnText(wildtext string, fn func(c *Client, m *irc.Privmsg)) {
	t.routes = append(t.routes, textRoute{re: compileWildtext(wildtext), fn: fn})
}

// OnTextRE registers fn for PRIVMSG text matching the Go regular
// expression expr.
func (t *TextRouter) OnTextRE(expr string, fn func(c *Client, m *irc.Privmsg)) {
	t.routes = append(t.routes, textRoute{re: regexp.MustCompile(expr), fn: fn})
}

// OnMessage implements Autoresponder.
func (t *TextRouter) OnMessage(c *Client, msg irc.Message) {
	pm, ok := msg.(*irc.Privmsg)
	if !ok {
		return
	}
	for _, rt := range t.routes {
		if rt.re.MatchString(pm.Text) {
			rt.fn(c, pm)
			return
		}
	}
}

var wildtextToken = regexp.MustCompile(`\*|\?|[^*?]+`)

func compileWildtext(s string) *regexp.Regexp {
	expr := wildtextToken.ReplaceAllStringFunc(s, func(tok string) string {
		switch tok {
		case "*":
			return ".*"
		case "?":
			return "."
		}
		return regexp.QuoteMeta(tok)
	})

	fields := strings.Split(expr, " ")
	for i, f := range fields {
		if f == "&" {
			fields[i] = `\S+`
		}
	}
	expr = strings.Join(fields, " ")

	return regexp.MustCompile("^" + expr + "$")
}
