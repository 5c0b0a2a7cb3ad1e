package irc

import "strings"

// parseClientMessage dispatches a RawMessage with a word command to its
// typed variant. ok is false when the command is not one this catalog
// supports, which the caller turns into ErrUnknownCommand.
func parseClientMessage(raw RawMessage) (ClientMessage, bool, error) {
	switch raw.Command.Name {
	case "ADMIN":
		return &Admin{Target: raw.Get(1)}, true, nil
	case "AUTHENTICATE":
		if len(raw.Params) < 1 {
			return nil, true, badParamCount("AUTHENTICATE", "")
		}
		return &Authenticate{Payload: raw.Get(1)}, true, nil
	case "AWAY":
		if len(raw.Params) == 0 {
			return &Away{Away: false}, true, nil
		}
		return &Away{Away: true, Message: raw.Get(1)}, true, nil
	case "CAP":
		return parseCap(raw)
	case "CONNECT":
		return &Connect{TargetServer: raw.Get(1), Port: raw.Get(2), RemoteServer: raw.Get(3)}, true, nil
	case "ERROR":
		return &ErrorCmd{Message: raw.Get(1)}, true, nil
	case "HELP":
		return &Help{Subject: raw.Get(1)}, true, nil
	case "INFO":
		return &Info{Target: raw.Get(1)}, true, nil
	case "INVITE":
		if len(raw.Params) < 2 {
			return nil, true, badParamCount("INVITE", "")
		}
		nick, err := ParseNickname(raw.Get(1), 0)
		if err != nil {
			return nil, true, badField("INVITE", "Nickname", err)
		}
		ch, err := ParseChannel(raw.Get(2))
		if err != nil {
			return nil, true, badField("INVITE", "Channel", err)
		}
		return &Invite{Nickname: nick, Channel: ch}, true, nil
	case "JOIN":
		if len(raw.Params) < 1 {
			return nil, true, badParamCount("JOIN", "")
		}
		if raw.Get(1) == "0" {
			return &Join{PartAll: true}, true, nil
		}
		chans, err := parseChannelList(raw.Get(1))
		if err != nil {
			return nil, true, badField("JOIN", "Channels", err)
		}
		var keys []ChannelKey
		if raw.Get(2) != "" {
			keys, err = parseKeyList(raw.Get(2))
			if err != nil {
				return nil, true, badField("JOIN", "Keys", err)
			}
		}
		return &Join{Channels: chans, Keys: keys}, true, nil
	case "KICK":
		if len(raw.Params) < 2 {
			return nil, true, badParamCount("KICK", "")
		}
		ch, err := ParseChannel(raw.Get(1))
		if err != nil {
			return nil, true, badField("KICK", "Channel", err)
		}
		nick, err := ParseNickname(raw.Get(2), 0)
		if err != nil {
			return nil, true, badField("KICK", "Nickname", err)
		}
		k := &Kick{Channel: ch, Nickname: nick}
		if len(raw.Params) >= 3 {
			k.HasComment = true
			k.Comment = raw.Get(3)
		}
		return k, true, nil
	case "KILL":
		if len(raw.Params) < 1 {
			return nil, true, badParamCount("KILL", "")
		}
		nick, err := ParseNickname(raw.Get(1), 0)
		if err != nil {
			return nil, true, badField("KILL", "Nickname", err)
		}
		return &Kill{Nickname: nick, Comment: raw.Get(2)}, true, nil
	case "LINKS":
		if len(raw.Params) >= 2 {
			return &Links{RemoteServer: raw.Get(1), ServerMask: raw.Get(2)}, true, nil
		}
		return &Links{ServerMask: raw.Get(1)}, true, nil
	case "LIST":
		var chans []Channel
		var err error
		if raw.Get(1) != "" {
			chans, err = parseChannelList(raw.Get(1))
			if err != nil {
				return nil, true, badField("LIST", "Channels", err)
			}
		}
		return &List{Channels: chans, Elist: raw.Get(2)}, true, nil
	case "LUSERS":
		return &LUsers{Mask: raw.Get(1), Target: raw.Get(2)}, true, nil
	case "MODE":
		if len(raw.Params) < 1 {
			return nil, true, badParamCount("MODE", "")
		}
		m := &Mode{Target: raw.Get(1)}
		if len(raw.Params) >= 2 {
			ms, err := ParseModeString(raw.Get(2), raw.Params[2:])
			if err != nil {
				return nil, true, badField("MODE", "Modes", err)
			}
			m.Modes = ms
		}
		return m, true, nil
	case "MOTD":
		return &Motd{Target: raw.Get(1)}, true, nil
	case "NAMES":
		var chans []Channel
		var err error
		if raw.Get(1) != "" {
			chans, err = parseChannelList(raw.Get(1))
			if err != nil {
				return nil, true, badField("NAMES", "Channels", err)
			}
		}
		return &Names{Channels: chans, Target: raw.Get(2)}, true, nil
	case "NICK":
		if len(raw.Params) < 1 {
			return nil, true, badParamCount("NICK", "")
		}
		nick, err := ParseNickname(raw.Get(1), 0)
		if err != nil {
			return nil, true, badField("NICK", "Nickname", err)
		}
		return &Nick{Nickname: nick}, true, nil
	case "NOTICE":
		if len(raw.Params) < 2 {
			return nil, true, badParamCount("NOTICE", "")
		}
		return &Notice{Target: raw.Get(1), Text: raw.Get(2)}, true, nil
	case "OPER":
		if len(raw.Params) < 2 {
			return nil, true, badParamCount("OPER", "")
		}
		return &Oper{Name: raw.Get(1), Password: raw.Get(2)}, true, nil
	case "PART":
		if len(raw.Params) < 1 {
			return nil, true, badParamCount("PART", "")
		}
		chans, err := parseChannelList(raw.Get(1))
		if err != nil {
			return nil, true, badField("PART", "Channels", err)
		}
		p := &Part{Channels: chans}
		if len(raw.Params) >= 2 {
			p.HasMessage = true
			p.Message = raw.Get(2)
		}
		return p, true, nil
	case "PASS":
		if len(raw.Params) < 1 {
			return nil, true, badParamCount("PASS", "")
		}
		return &Pass{Password: raw.Get(1)}, true, nil
	case "PING":
		if len(raw.Params) < 1 {
			return nil, true, badParamCount("PING", "")
		}
		return &Ping{Token: raw.Get(1)}, true, nil
	case "PONG":
		if len(raw.Params) < 1 {
			return nil, true, badParamCount("PONG", "")
		}
		return &Pong{Token: raw.Get(1)}, true, nil
	case "PRIVMSG":
		if len(raw.Params) < 2 {
			return nil, true, badParamCount("PRIVMSG", "")
		}
		return &Privmsg{Target: raw.Get(1), Text: raw.Get(2)}, true, nil
	case "QUIT":
		q := &Quit{}
		if len(raw.Params) >= 1 {
			q.HasMessage = true
			q.Message = raw.Get(1)
		}
		return q, true, nil
	case "REHASH":
		return &Rehash{}, true, nil
	case "RESTART":
		return &Restart{}, true, nil
	case "SQUIT":
		if len(raw.Params) < 1 {
			return nil, true, badParamCount("SQUIT", "")
		}
		return &Squit{Server: raw.Get(1), Comment: raw.Get(2)}, true, nil
	case "STATS":
		return &Stats{Query: raw.Get(1), Target: raw.Get(2)}, true, nil
	case "TAGMSG":
		if len(raw.Params) < 1 {
			return nil, true, badParamCount("TAGMSG", "")
		}
		return &TagMsg{Target: raw.Get(1)}, true, nil
	case "TIME":
		return &Time{Target: raw.Get(1)}, true, nil
	case "TOPIC":
		if len(raw.Params) < 1 {
			return nil, true, badParamCount("TOPIC", "")
		}
		ch, err := ParseChannel(raw.Get(1))
		if err != nil {
			return nil, true, badField("TOPIC", "Channel", err)
		}
		t := &Topic{Channel: ch}
		if len(raw.Params) >= 2 {
			t.HasText = true
			t.Text = raw.Get(2)
		}
		return t, true, nil
	case "USER":
		if len(raw.Params) < 4 {
			return nil, true, badParamCount("USER", "")
		}
		user, err := ParseUsername(raw.Get(1))
		if err != nil {
			return nil, true, badField("USER", "Username", err)
		}
		return &User{Username: user, Mode: raw.Get(2), Realname: raw.Get(4)}, true, nil
	case "USERHOST":
		if len(raw.Params) < 1 {
			return nil, true, badParamCount("USERHOST", "")
		}
		var nicks []Nickname
		for _, tok := range raw.Params {
			n, err := ParseNickname(tok, 0)
			if err != nil {
				return nil, true, badField("USERHOST", "Nicknames", err)
			}
			nicks = append(nicks, n)
		}
		return &UserHost{Nicknames: nicks}, true, nil
	case "VERSION":
		return &Version{Target: raw.Get(1)}, true, nil
	case "WALLOPS":
		if len(raw.Params) < 1 {
			return nil, true, badParamCount("WALLOPS", "")
		}
		return &Wallops{Text: raw.Get(1)}, true, nil
	case "WHO":
		w := &Who{Mask: raw.Get(1)}
		if raw.Get(2) == "o" {
			w.OperatorOnly = true
		}
		return w, true, nil
	case "WHOIS":
		if len(raw.Params) >= 2 {
			return &WhoIs{Target: raw.Get(1), Mask: raw.Get(2)}, true, nil
		}
		return &WhoIs{Mask: raw.Get(1)}, true, nil
	case "WHOWAS":
		if len(raw.Params) < 1 {
			return nil, true, badParamCount("WHOWAS", "")
		}
		nick, err := ParseNickname(raw.Get(1), 0)
		if err != nil {
			return nil, true, badField("WHOWAS", "Nickname", err)
		}
		return &WhoWas{Nickname: nick, Count: raw.Get(2)}, true, nil
	default:
		return nil, false, nil
	}
}

func parseChannelList(s string) ([]Channel, error) {
	var out []Channel
	for _, tok := range strings.Split(s, ",") {
		c, err := ParseChannel(tok)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func parseKeyList(s string) ([]ChannelKey, error) {
	var out []ChannelKey
	for _, tok := range strings.Split(s, ",") {
		k, err := ParseChannelKey(tok)
		if err != nil {
			return nil, err
		}
		out = append(out, k)
	}
	return out, nil
}

func channelListString(chans []Channel) string {
	ss := make([]string, len(chans))
	for i, c := range chans {
		ss[i] = c.String()
	}
	return strings.Join(ss, ",")
}

func keyListString(keys []ChannelKey) string {
	ss := make([]string, len(keys))
	for i, k := range keys {
		ss[i] = k.String()
	}
	return strings.Join(ss, ",")
}

// --- variants ---

// Admin requests information about a server's administrator.
type Admin struct {
	clientMsg
	Target string // optional server to query
}

func (m *Admin) Render(s *Source) (string, error) {
	if m.Target == "" {
		return renderLine(s, "ADMIN")
	}
	return renderLine(s, "ADMIN", m.Target)
}

// Authenticate drives one step of SASL authentication (see the sasl package
// for the mechanism-specific payload construction).
type Authenticate struct {
	clientMsg
	Payload string // a mechanism name, a base64 chunk, or "+"
}

func (m *Authenticate) Render(s *Source) (string, error) { return renderLine(s, "AUTHENTICATE", m.Payload) }

// Away sets or clears an automatic reply.
type Away struct {
	clientMsg
	Away    bool
	Message string
}

func (m *Away) Render(s *Source) (string, error) {
	if !m.Away {
		return renderLine(s, "AWAY")
	}
	return renderLine(s, "AWAY", m.Message)
}

// Cap drives IRCv3 capability negotiation (LS, LIST, REQ, ACK, NAK, NEW,
// DEL, END).
type Cap struct {
	clientMsg
	Target       string // present on server-originated lines
	Subcommand   string
	Version      string // client-sent LS version, e.g. "302"
	More         bool   // a "*" continuation marker was present
	Capabilities []Capability
}

var capSubcommands = map[string]bool{
	"LS": true, "LIST": true, "REQ": true, "ACK": true,
	"NAK": true, "NEW": true, "DEL": true, "END": true,
}

func parseCap(raw RawMessage) (ClientMessage, bool, error) {
	if len(raw.Params) < 1 {
		return nil, true, badParamCount("CAP", "")
	}
	i := 0
	target := ""
	if !capSubcommands[strings.ToUpper(raw.Params[0])] {
		target = raw.Params[0]
		i = 1
	}
	if i >= len(raw.Params) {
		return nil, true, badParamCount("CAP", "")
	}
	sub := strings.ToUpper(raw.Params[i])
	i++
	c := &Cap{Target: target, Subcommand: sub}
	rest := raw.Params[i:]
	if len(rest) == 0 {
		return c, true, nil
	}
	if sub == "LS" && len(rest) == 1 && isAllDigits(rest[0]) {
		c.Version = rest[0]
		return c, true, nil
	}
	for idx, p := range rest {
		if p == "*" && idx != len(rest)-1 {
			c.More = true
			continue
		}
		for _, tok := range strings.Fields(p) {
			cap, err := ParseCapability(tok)
			if err != nil {
				return nil, true, badField("CAP", "Capabilities", err)
			}
			c.Capabilities = append(c.Capabilities, cap)
		}
	}
	return c, true, nil
}

func (m *Cap) Render(s *Source) (string, error) {
	var params []string
	if m.Target != "" {
		params = append(params, m.Target)
	}
	params = append(params, m.Subcommand)
	if m.Version != "" {
		params = append(params, m.Version)
	}
	if m.More {
		params = append(params, "*")
	}
	if len(m.Capabilities) > 0 {
		ss := make([]string, len(m.Capabilities))
		for i, c := range m.Capabilities {
			ss[i] = c.String()
		}
		params = append(params, strings.Join(ss, " "))
	}
	return renderLine(s, "CAP", params...)
}

// Connect requests a server establish a new link (operator-only in
// practice, but part of the base command set).
type Connect struct {
	clientMsg
	TargetServer string
	Port         string
	RemoteServer string
}

func (m *Connect) Render(s *Source) (string, error) {
	params := []string{m.TargetServer}
	if m.Port != "" {
		params = append(params, m.Port)
	}
	if m.RemoteServer != "" {
		params = append(params, m.RemoteServer)
	}
	return renderLine(s, "CONNECT", params...)
}

// ErrorCmd reports a fatal condition, normally sent by the server
// immediately before closing the connection.
type ErrorCmd struct {
	clientMsg
	Message string
}

func (m *ErrorCmd) Render(s *Source) (string, error) { return renderLine(s, "ERROR", m.Message) }

// Help requests server help text on an optional subject.
type Help struct {
	clientMsg
	Subject string
}

func (m *Help) Render(s *Source) (string, error) {
	if m.Subject == "" {
		return renderLine(s, "HELP")
	}
	return renderLine(s, "HELP", m.Subject)
}

// Info requests information describing the server.
type Info struct {
	clientMsg
	Target string
}

func (m *Info) Render(s *Source) (string, error) {
	if m.Target == "" {
		return renderLine(s, "INFO")
	}
	return renderLine(s, "INFO", m.Target)
}

// Invite invites Nickname to Channel.
type Invite struct {
	clientMsg
	Nickname Nickname
	Channel  Channel
}

func (m *Invite) Render(s *Source) (string, error) {
	return renderLine(s, "INVITE", m.Nickname.String(), m.Channel.String())
}

// Join joins one or more channels, or leaves all channels when PartAll is
// set ("JOIN 0").
type Join struct {
	clientMsg
	Channels []Channel
	Keys     []ChannelKey
	PartAll  bool
}

func (m *Join) Render(s *Source) (string, error) {
	if m.PartAll {
		return renderLine(s, "JOIN", "0")
	}
	params := []string{channelListString(m.Channels)}
	if len(m.Keys) > 0 {
		params = append(params, keyListString(m.Keys))
	}
	return renderLine(s, "JOIN", params...)
}

// Kick requests the forced removal of Nickname from Channel.
type Kick struct {
	clientMsg
	Channel    Channel
	Nickname   Nickname
	Comment    string
	HasComment bool
}

func (m *Kick) Render(s *Source) (string, error) {
	params := []string{m.Channel.String(), m.Nickname.String()}
	if m.HasComment {
		params = append(params, m.Comment)
	}
	return renderLine(s, "KICK", params...)
}

// Kill forcibly disconnects Nickname (operator-only in practice).
type Kill struct {
	clientMsg
	Nickname Nickname
	Comment  string
}

func (m *Kill) Render(s *Source) (string, error) {
	return renderLine(s, "KILL", m.Nickname.String(), m.Comment)
}

// Links lists servers known to the network.
type Links struct {
	clientMsg
	RemoteServer string
	ServerMask   string
}

func (m *Links) Render(s *Source) (string, error) {
	var params []string
	if m.RemoteServer != "" {
		params = append(params, m.RemoteServer)
	}
	if m.ServerMask != "" {
		params = append(params, m.ServerMask)
	}
	return renderLine(s, "LINKS", params...)
}

// List lists channels and their topics, optionally restricted to Channels
// or filtered by an extended-LIST condition string (Elist).
type List struct {
	clientMsg
	Channels []Channel
	Elist    string
}

func (m *List) Render(s *Source) (string, error) {
	var params []string
	if len(m.Channels) > 0 {
		params = append(params, channelListString(m.Channels))
	}
	if m.Elist != "" {
		params = append(params, m.Elist)
	}
	return renderLine(s, "LIST", params...)
}

// LUsers requests network size statistics.
type LUsers struct {
	clientMsg
	Mask   string
	Target string
}

func (m *LUsers) Render(s *Source) (string, error) {
	var params []string
	if m.Mask != "" {
		params = append(params, m.Mask)
	}
	if m.Target != "" {
		params = append(params, m.Target)
	}
	return renderLine(s, "LUSERS", params...)
}

// Mode views or changes a channel's or user's modes.
type Mode struct {
	clientMsg
	Target string
	Modes  ModeString
}

func (m *Mode) Render(s *Source) (string, error) {
	if len(m.Modes) == 0 {
		return renderLine(s, "MODE", m.Target)
	}
	ms := m.Modes.String()
	fields := strings.Fields(ms)
	params := append([]string{m.Target}, fields...)
	return renderLine(s, "MODE", params...)
}

// Motd requests the server's message of the day.
type Motd struct {
	clientMsg
	Target string
}

func (m *Motd) Render(s *Source) (string, error) {
	if m.Target == "" {
		return renderLine(s, "MOTD")
	}
	return renderLine(s, "MOTD", m.Target)
}

// Names lists visible members of Channels, or all visible users if empty.
type Names struct {
	clientMsg
	Channels []Channel
	Target   string
}

func (m *Names) Render(s *Source) (string, error) {
	var params []string
	if len(m.Channels) > 0 {
		params = append(params, channelListString(m.Channels))
	}
	if m.Target != "" {
		params = append(params, m.Target)
	}
	return renderLine(s, "NAMES", params...)
}

// Nick changes (or, during registration, sets) the client's nickname.
type Nick struct {
	clientMsg
	Nickname Nickname
}

func (m *Nick) Render(s *Source) (string, error) { return renderLine(s, "NICK", m.Nickname.String()) }

// Notice sends Text to Target without triggering an automatic reply.
type Notice struct {
	clientMsg
	Target string
	Text   string
}

func (m *Notice) Render(s *Source) (string, error) { return renderLine(s, "NOTICE", m.Target, m.Text) }

// Oper requests operator privileges.
type Oper struct {
	clientMsg
	Name     string
	Password string
}

func (m *Oper) Render(s *Source) (string, error) { return renderLine(s, "OPER", m.Name, m.Password) }

// Part leaves one or more channels.
type Part struct {
	clientMsg
	Channels   []Channel
	Message    string
	HasMessage bool
}

func (m *Part) Render(s *Source) (string, error) {
	params := []string{channelListString(m.Channels)}
	if m.HasMessage {
		params = append(params, m.Message)
	}
	return renderLine(s, "PART", params...)
}

// Pass sets a connection password, sent before NICK/USER.
type Pass struct {
	clientMsg
	Password string
}

func (m *Pass) Render(s *Source) (string, error) { return renderLine(s, "PASS", m.Password) }

// Ping tests for the presence of an active peer.
type Ping struct {
	clientMsg
	Token string
}

func (m *Ping) Render(s *Source) (string, error) { return renderLine(s, "PING", m.Token) }

// Pong replies to a Ping.
type Pong struct {
	clientMsg
	Token string
}

func (m *Pong) Render(s *Source) (string, error) { return renderLine(s, "PONG", m.Token) }

// Privmsg sends Text to Target (a nickname or channel).
type Privmsg struct {
	clientMsg
	Target string
	Text   string
}

func (m *Privmsg) Render(s *Source) (string, error) { return renderLine(s, "PRIVMSG", m.Target, m.Text) }

// Quit terminates the client's session.
type Quit struct {
	clientMsg
	Message    string
	HasMessage bool
}

func (m *Quit) Render(s *Source) (string, error) {
	if !m.HasMessage {
		return renderLine(s, "QUIT")
	}
	return renderLine(s, "QUIT", m.Message)
}

// Rehash forces the server to re-read its configuration (operator-only).
type Rehash struct{ clientMsg }

func (m *Rehash) Render(s *Source) (string, error) { return renderLine(s, "REHASH") }

// Restart forces the server to restart (operator-only).
type Restart struct{ clientMsg }

func (m *Restart) Render(s *Source) (string, error) { return renderLine(s, "RESTART") }

// Squit breaks a server link (operator-only).
type Squit struct {
	clientMsg
	Server  string
	Comment string
}

func (m *Squit) Render(s *Source) (string, error) { return renderLine(s, "SQUIT", m.Server, m.Comment) }

// Stats requests server statistics.
type Stats struct {
	clientMsg
	Query  string
	Target string
}

func (m *Stats) Render(s *Source) (string, error) {
	var params []string
	if m.Query != "" {
		params = append(params, m.Query)
	}
	if m.Target != "" {
		params = append(params, m.Target)
	}
	return renderLine(s, "STATS", params...)
}

// TagMsg sends a message carrying only tags (all tags discarded by this
// implementation per spec.md's non-goals; the command still has wire
// meaning as an otherwise-empty line to Target).
type TagMsg struct {
	clientMsg
	Target string
}

func (m *TagMsg) Render(s *Source) (string, error) { return renderLine(s, "TAGMSG", m.Target) }

// Time requests a server's local time.
type Time struct {
	clientMsg
	Target string
}

func (m *Time) Render(s *Source) (string, error) {
	if m.Target == "" {
		return renderLine(s, "TIME")
	}
	return renderLine(s, "TIME", m.Target)
}

// Topic views or changes a channel's topic.
type Topic struct {
	clientMsg
	Channel Channel
	Text    string
	HasText bool
}

func (m *Topic) Render(s *Source) (string, error) {
	if !m.HasText {
		return renderLine(s, "TOPIC", m.Channel.String())
	}
	return renderLine(s, "TOPIC", m.Channel.String(), m.Text)
}

// User registers the client's username and realname.
type User struct {
	clientMsg
	Username Username
	Mode     string // historically a bitmask; "0" when unused
	Realname string
}

func (m *User) Render(s *Source) (string, error) {
	mode := m.Mode
	if mode == "" {
		mode = "0"
	}
	return renderLine(s, "USER", m.Username.String(), mode, "*", m.Realname)
}

// UserHost requests information about up to five nicknames.
type UserHost struct {
	clientMsg
	Nicknames []Nickname
}

func (m *UserHost) Render(s *Source) (string, error) {
	ss := make([]string, len(m.Nicknames))
	for i, n := range m.Nicknames {
		ss[i] = n.String()
	}
	return renderLine(s, "USERHOST", ss...)
}

// Version requests a server's version string.
type Version struct {
	clientMsg
	Target string
}

func (m *Version) Render(s *Source) (string, error) {
	if m.Target == "" {
		return renderLine(s, "VERSION")
	}
	return renderLine(s, "VERSION", m.Target)
}

// Wallops sends Text to every user with user mode +w set (operator-only).
type Wallops struct {
	clientMsg
	Text string
}

func (m *Wallops) Render(s *Source) (string, error) { return renderLine(s, "WALLOPS", m.Text) }

// Who lists users matching Mask.
type Who struct {
	clientMsg
	Mask         string
	OperatorOnly bool
}

func (m *Who) Render(s *Source) (string, error) {
	if m.OperatorOnly {
		return renderLine(s, "WHO", m.Mask, "o")
	}
	return renderLine(s, "WHO", m.Mask)
}

// WhoIs requests information about Mask, optionally querying a specific
// server (Target).
type WhoIs struct {
	clientMsg
	Target string
	Mask   string
}

func (m *WhoIs) Render(s *Source) (string, error) {
	if m.Target == "" {
		return renderLine(s, "WHOIS", m.Mask)
	}
	return renderLine(s, "WHOIS", m.Target, m.Mask)
}

// WhoWas requests information about a nickname no longer in use.
type WhoWas struct {
	clientMsg
	Nickname Nickname
	Count    string
}

func (m *WhoWas) Render(s *Source) (string, error) {
	if m.Count == "" {
		return renderLine(s, "WHOWAS", m.Nickname.String())
	}
	return renderLine(s, "WHOWAS", m.Nickname.String(), m.Count)
}
