package client

import irc "github.com/jwodder/ircbits"

// Autoresponder observes every Message a pending Command did not claim. It
// never blocks the dispatch loop and never gets to veto a message reaching
// later autoresponders; it exists purely to react (send a reply, update
// state), mirroring how the teacher's middleware chain always called
// next.SpeakIRC regardless of what a given link in the chain did.
type Autoresponder interface {
	OnMessage(c *Client, msg irc.Message)
}

// AutoresponderFunc adapts a function to an Autoresponder.
type AutoresponderFunc func(*Client, irc.Message)

func (f AutoresponderFunc) OnMessage(c *Client, msg irc.Message) { f(c, msg) }

// pingResponder answers server PING with PONG, grounded directly on the
// teacher's pingMiddleware.
func pingResponder(c *Client, msg irc.Message) {
	ping, ok := msg.(*irc.Ping)
	if !ok {
		return
	}
	c.send(&irc.Pong{Token: ping.Token})
}

// stateTracker keeps ISupport, capability, and channel state current as
// messages arrive. It is always installed first so every other
// autoresponder sees up-to-date state. Grounded on clientState.middleware
// in the teacher, generalized from the single nick/user/host triad into
// the full ISupport/Capability/ChannelView surface this runtime exposes.
// A ChannelView is destroyed outright (not merely updated) on the
// client's own PART, KICK, or QUIT, and on ERROR, per spec.md §3.
func stateTracker(c *Client, msg irc.Message) {
	switch m := msg.(type) {
	case *irc.ISupport:
		c.isupport.Apply(m.Tokens)
	case *irc.Cap:
		c.applyCap(m)
	case *irc.Join:
		if m.PartAll {
			return
		}
		who := actorNick(m.Origin(), c.currentNick)
		for _, ch := range m.Channels {
			c.channelView(ch).applyJoin(who)
		}
	case *irc.Part:
		who := actorNick(m.Origin(), c.currentNick)
		for _, ch := range m.Channels {
			if who == c.currentNick {
				delete(c.channels, ch)
				continue
			}
			if v, ok := c.channels[ch]; ok {
				v.applyPart(who)
			}
		}
	case *irc.Nick:
		old := actorNick(m.Origin(), c.currentNick)
		if old == c.currentNick {
			c.currentNick = m.Nickname
		}
		for _, v := range c.channels {
			v.applyNick(old, m.Nickname)
		}
	case *irc.NamReply:
		letters, symbols := c.isupport.PrefixTable()
		v := c.channelView(m.Channel)
		v.beginNames(statusFromToken(m.ChannelStatus))
		v.addNamesTokens(m.Members, symbols, letters)
	case *irc.EndOfNames:
		if v, ok := c.channels[m.Channel]; ok {
			v.endNames()
		}
	case *irc.TopicReply:
		v := c.channelView(m.Channel)
		v.Topic = m.Text
	case *irc.TopicWhoTime:
		v := c.channelView(m.Channel)
		v.Setter = m.Setter
		v.TopicAt = m.TimeSet
	case *irc.Kick:
		if m.Nickname == c.currentNick {
			delete(c.channels, m.Channel)
		} else if v, ok := c.channels[m.Channel]; ok {
			v.applyPart(m.Nickname)
		}
	case *irc.Quit:
		who := actorNick(m.Origin(), c.currentNick)
		if who == c.currentNick {
			for ch := range c.channels {
				delete(c.channels, ch)
			}
			return
		}
		for _, v := range c.channels {
			v.applyPart(who)
		}
	case *irc.ErrorCmd:
		for ch := range c.channels {
			delete(c.channels, ch)
		}
	case *irc.Mode:
		if ch, err := irc.ParseChannel(m.Target); err == nil {
			letters, symbols := c.isupport.PrefixTable()
			v := c.channelView(ch)
			v.Modes = append(v.Modes, m.Modes...)
			for _, mc := range m.Modes {
				v.applyMode(mc, letters, symbols)
			}
		}
	}
}

// actorNick reports who a message's prefix names, falling back to self
// when the server elided the prefix (as some do for a client's own echoed
// commands).
func actorNick(origin *irc.Source, self irc.Nickname) irc.Nickname {
	if origin != nil && origin.IsUser() {
		return origin.Nick()
	}
	return self
}

func statusFromToken(tok string) irc.ChannelStatus {
	if len(tok) == 0 {
		return irc.ChannelPublic
	}
	return irc.ChannelStatus(tok[0])
}
