package client

import (
	"time"

	irc "github.com/jwodder/ircbits"
)

// Command is a multi-message request/response exchange a caller can run
// against a connected Client: it emits its own request messages, then
// claims every incoming message until it is satisfied or times out. Only
// one Command runs at a time; while it is pending, it gets first refusal
// on every incoming Message ahead of the registered autoresponders, so a
// reply intended for the Command is never misrouted to, say, the state
// tracker's own interest in the same numeric.
//
// This supersedes the teacher's single global middleware chain: Commands
// are requested ad hoc and unregister themselves on completion, rather
// than sitting permanently in the handler chain.
type Command interface {
	// InitialMessages returns the messages to send when the command
	// starts.
	InitialMessages() []irc.ClientMessage

	// OnMessage offers msg to the command. claimed reports whether msg was
	// relevant (and should not reach autoresponders); done reports whether
	// the command has now finished (successfully or not).
	OnMessage(msg irc.Message) (claimed, done bool, err error)

	// Timeout bounds how long the command waits for completion after its
	// initial messages are sent before failing with a timeout error.
	Timeout() time.Duration
}

// ListResult is one channel reported by a ListChannels command, mirroring
// a ChannelList reply's fields.
type ListResult struct {
	Channel irc.Channel
	Visible int
	Topic   string
}

// ListChannels requests and accumulates the server's full channel list
// (LIST / RPL_LIST* / RPL_LISTEND).
type ListChannels struct {
	Results []ListResult
	timeout time.Duration
}

// NewListChannels builds a ListChannels command with a default 30-second
// timeout, generous because LIST responses can be large on big networks.
func NewListChannels() *ListChannels {
	return &ListChannels{timeout: 30 * time.Second}
}

func (c *ListChannels) InitialMessages() []irc.ClientMessage {
	return []irc.ClientMessage{&irc.List{}}
}

func (c *ListChannels) Timeout() time.Duration { return c.timeout }

func (c *ListChannels) OnMessage(msg irc.Message) (claimed, done bool, err error) {
	switch m := msg.(type) {
	case *irc.ChannelList:
		visible := 0
		for _, r := range m.Visible {
			if r >= '0' && r <= '9' {
				visible = visible*10 + int(r-'0')
			}
		}
		c.Results = append(c.Results, ListResult{Channel: m.Channel, Visible: visible, Topic: m.Topic})
		return true, false, nil
	case *irc.ListEnd:
		return true, true, nil
	default:
		return false, false, nil
	}
}

// ProbeKind selects which informational command a Probe command issues.
type ProbeKind int

const (
	ProbeAdmin ProbeKind = iota
	ProbeVersion
	ProbeLinks
	ProbeInfo
	ProbeLUsers
	ProbeMotd
)

// Probe issues a single read-only informational command (ADMIN, VERSION,
// LINKS, INFO, LUSERS, or MOTD) and collects every reply line the server
// sends in response, stopping at the kind-appropriate terminator.
type Probe struct {
	Kind  ProbeKind
	Lines []string
	timeout time.Duration
}

// NewProbe builds a Probe for the given kind with a 15-second timeout.
func NewProbe(kind ProbeKind) *Probe {
	return &Probe{Kind: kind, timeout: 15 * time.Second}
}

func (p *Probe) Timeout() time.Duration { return p.timeout }

func (p *Probe) InitialMessages() []irc.ClientMessage {
	switch p.Kind {
	case ProbeAdmin:
		return []irc.ClientMessage{&irc.Admin{}}
	case ProbeVersion:
		return []irc.ClientMessage{&irc.Version{}}
	case ProbeLinks:
		return []irc.ClientMessage{&irc.Links{}}
	case ProbeInfo:
		return []irc.ClientMessage{&irc.Info{}}
	case ProbeLUsers:
		return []irc.ClientMessage{&irc.LUsers{}}
	case ProbeMotd:
		return []irc.ClientMessage{&irc.Motd{}}
	}
	return nil
}

func (p *Probe) OnMessage(msg irc.Message) (claimed, done bool, err error) {
	switch m := msg.(type) {
	case *irc.AdminMe:
		return p.kindClaim(p.Kind == ProbeAdmin, m.Text, false)
	case *irc.AdminLoc1:
		return p.kindClaim(p.Kind == ProbeAdmin, m.Text, false)
	case *irc.AdminLoc2:
		return p.kindClaim(p.Kind == ProbeAdmin, m.Text, false)
	case *irc.AdminEmail:
		return p.kindClaim(p.Kind == ProbeAdmin, m.Text, true)
	case *irc.VersionReply:
		return p.kindClaim(p.Kind == ProbeVersion, m.Version+" "+m.Server, true)
	case *irc.LinksReply:
		return p.kindClaim(p.Kind == ProbeLinks, m.Server+" "+m.HopInfo, false)
	case *irc.EndOfLinks:
		return p.kindClaim(p.Kind == ProbeLinks, m.Text, true)
	case *irc.InfoReply:
		return p.kindClaim(p.Kind == ProbeInfo, m.Text, false)
	case *irc.EndOfInfo:
		return p.kindClaim(p.Kind == ProbeInfo, m.Text, true)
	case *irc.LUserClient:
		return p.kindClaim(p.Kind == ProbeLUsers, m.Text, false)
	case *irc.LUserMe:
		return p.kindClaim(p.Kind == ProbeLUsers, m.Text, true)
	case *irc.MotdStart:
		return p.kindClaim(p.Kind == ProbeMotd, m.Text, false)
	case *irc.MotdReply:
		return p.kindClaim(p.Kind == ProbeMotd, m.Text, false)
	case *irc.EndOfMotd:
		return p.kindClaim(p.Kind == ProbeMotd, m.Text, true)
	case *irc.ErrNoMotd:
		return p.kindClaim(p.Kind == ProbeMotd, m.Text, true)
	default:
		return false, false, nil
	}
}

func (p *Probe) kindClaim(mine bool, line string, terminal bool) (claimed, done bool, err error) {
	if !mine {
		return false, false, nil
	}
	p.Lines = append(p.Lines, line)
	return true, terminal, nil
}

// JoinChannel joins a single channel and waits for the end of its NAMES
// bundle before completing, so a caller can read ChannelView membership
// immediately after the command finishes.
type JoinChannel struct {
	Channel irc.Channel
	Key     irc.ChannelKey
	timeout time.Duration

	sawTopic bool
}

// NewJoinChannel builds a JoinChannel command with a 30-second timeout.
func NewJoinChannel(ch irc.Channel, key irc.ChannelKey) *JoinChannel {
	return &JoinChannel{Channel: ch, Key: key, timeout: 30 * time.Second}
}

func (j *JoinChannel) Timeout() time.Duration { return j.timeout }

func (j *JoinChannel) InitialMessages() []irc.ClientMessage {
	var keys []irc.ChannelKey
	if j.Key != "" {
		keys = []irc.ChannelKey{j.Key}
	}
	return []irc.ClientMessage{&irc.Join{Channels: []irc.Channel{j.Channel}, Keys: keys}}
}

func (j *JoinChannel) OnMessage(msg irc.Message) (claimed, done bool, err error) {
	switch m := msg.(type) {
	case *irc.EndOfNames:
		if m.Channel == j.Channel {
			// claimed=false: let stateTracker's own *irc.EndOfNames case
			// still run and call ChannelView.endNames(), or the view is
			// left stuck mid-NAMES-bundle forever (see channel.go).
			return false, true, nil
		}
		return false, false, nil
	case *irc.ErrNoSuchChannel, *irc.ErrChannelIsFull, *irc.ErrInviteOnlyChan, *irc.ErrBannedFromChan, *irc.ErrBadChannelKey:
		return true, true, nil
	default:
		_ = m
		return false, false, nil
	}
}
