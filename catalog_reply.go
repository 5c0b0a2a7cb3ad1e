package irc

import "strings"

// Numeric reply codes named in spec.md §4.3, kept as constants for
// readability in the dispatch table and in caller code that matches on
// Reply.Code().
const (
	numWelcome       = 1
	numYourHost      = 2
	numCreated       = 3
	numMyInfo        = 4
	numISupport      = 5
	numStatsConn     = 250
	numLUserClient   = 251
	numLUserOp       = 252
	numLUserUnknown  = 253
	numLUserChannels = 254
	numLUserMe       = 255
	numAdminMe       = 256
	numAdminLoc1     = 257
	numAdminLoc2     = 258
	numAdminEmail    = 259
	numList          = 322
	numListEnd       = 323
	numChannelModeIs = 324
	numTopic         = 332
	numTopicWhoTime  = 333
	numNamReply      = 353
	numEndOfNames    = 366
	numLinks         = 364
	numEndOfLinks    = 365
	numVersion       = 351
	numInfo          = 371
	numMotd          = 372
	numEndOfInfo     = 374
	numMotdStart     = 375
	numEndOfMotd     = 376
	numInvalidCapCmd = 410
	numNoSuchNick    = 401
	numNoSuchChannel = 403
	numCannotSendChan = 404
	numTooManyChans  = 405
	numUnknownCmd    = 421
	numNoMotd        = 422
	numErroneusNick  = 432
	numNicknameInUse = 433
	numNickCollision = 436
	numUnavailResrc  = 437
	numNotOnChannel  = 442
	numNeedMoreParams = 461
	numAlreadyReg    = 462
	numPasswdMismatch = 464
	numYoureBanned   = 465
	numChannelIsFull = 471
	numInviteOnly    = 473
	numBannedFromChan = 474
	numBadChannelKey = 475
	numNotRegistered = 451
	numLoggedIn      = 900
	numLoggedOut     = 901
	numSaslSuccess   = 903
	numSaslFail      = 904
	numSaslTooLong   = 905
	numSaslAborted   = 906
	numSaslAlready   = 907
	numSaslMechs     = 908
)

// parseReply dispatches a RawMessage with a numeric command to its typed
// Reply variant. Unrecognized numerics become Unknown, never an error: per
// spec.md §4.1, an unknown 3-digit numeric is always acceptable.
//
// Numeric replies tolerate extra trailing parameters: only too few
// parameters for the named fields is an error.
func parseReply(raw RawMessage) (Reply, error) {
	code := raw.Command.Numeric
	switch code {
	case numWelcome:
		return simpleTextReply(raw, code, func(c, t string) Reply { return &Welcome{replyMsg{code}, c, t} })
	case numYourHost:
		return simpleTextReply(raw, code, func(c, t string) Reply { return &YourHost{replyMsg{code}, c, t} })
	case numCreated:
		return simpleTextReply(raw, code, func(c, t string) Reply { return &Created{replyMsg{code}, c, t} })
	case numMyInfo:
		if len(raw.Params) < 5 {
			return nil, badParamCount("004", "")
		}
		return &MyInfo{replyMsg{code}, raw.Get(1), raw.Get(2), raw.Get(3), raw.Get(4), raw.Get(5)}, nil
	case numISupport:
		if len(raw.Params) < 2 {
			return nil, badParamCount("005", "")
		}
		toks := raw.Params[1 : len(raw.Params)-1]
		text := raw.Params[len(raw.Params)-1]
		var parsed []ISupportToken
		for _, t := range toks {
			tok, err := ParseISupportToken(t)
			if err != nil {
				return nil, badField("005", "Tokens", err)
			}
			parsed = append(parsed, tok)
		}
		return &ISupport{replyMsg{code}, raw.Get(1), parsed, text}, nil
	case numStatsConn:
		return simpleTextReply(raw, code, func(c, t string) Reply { return &StatsConn{replyMsg{code}, c, t} })
	case numLUserClient:
		return simpleTextReply(raw, code, func(c, t string) Reply { return &LUserClient{replyMsg{code}, c, t} })
	case numLUserOp:
		if len(raw.Params) < 3 {
			return nil, badParamCount("252", "")
		}
		return &LUserOp{replyMsg{code}, raw.Get(1), raw.Get(2), raw.Get(3)}, nil
	case numLUserUnknown:
		if len(raw.Params) < 3 {
			return nil, badParamCount("253", "")
		}
		return &LUserUnknown{replyMsg{code}, raw.Get(1), raw.Get(2), raw.Get(3)}, nil
	case numLUserChannels:
		if len(raw.Params) < 3 {
			return nil, badParamCount("254", "")
		}
		return &LUserChannels{replyMsg{code}, raw.Get(1), raw.Get(2), raw.Get(3)}, nil
	case numLUserMe:
		return simpleTextReply(raw, code, func(c, t string) Reply { return &LUserMe{replyMsg{code}, c, t} })
	case numAdminMe:
		return simpleTextReply(raw, code, func(c, t string) Reply { return &AdminMe{replyMsg{code}, c, t} })
	case numAdminLoc1:
		return simpleTextReply(raw, code, func(c, t string) Reply { return &AdminLoc1{replyMsg{code}, c, t} })
	case numAdminLoc2:
		return simpleTextReply(raw, code, func(c, t string) Reply { return &AdminLoc2{replyMsg{code}, c, t} })
	case numAdminEmail:
		return simpleTextReply(raw, code, func(c, t string) Reply { return &AdminEmail{replyMsg{code}, c, t} })
	case numList:
		if len(raw.Params) < 4 {
			return nil, badParamCount("322", "")
		}
		ch, err := ParseChannel(raw.Get(2))
		if err != nil {
			return nil, badField("322", "Channel", err)
		}
		return &ChannelList{replyMsg{code}, raw.Get(1), ch, raw.Get(3), raw.Get(4)}, nil
	case numListEnd:
		return simpleTextReply(raw, code, func(c, t string) Reply { return &ListEnd{replyMsg{code}, c, t} })
	case numChannelModeIs:
		if len(raw.Params) < 3 {
			return nil, badParamCount("324", "")
		}
		ch, err := ParseChannel(raw.Get(2))
		if err != nil {
			return nil, badField("324", "Channel", err)
		}
		ms, err := ParseModeString(raw.Get(3), raw.Params[3:])
		if err != nil {
			return nil, badField("324", "Modes", err)
		}
		return &ChannelModeIs{replyMsg{code}, raw.Get(1), ch, ms}, nil
	case numTopic:
		if len(raw.Params) < 3 {
			return nil, badParamCount("332", "")
		}
		ch, err := ParseChannel(raw.Get(2))
		if err != nil {
			return nil, badField("332", "Channel", err)
		}
		return &TopicReply{replyMsg{code}, raw.Get(1), ch, raw.Get(3)}, nil
	case numTopicWhoTime:
		if len(raw.Params) < 4 {
			return nil, badParamCount("333", "")
		}
		ch, err := ParseChannel(raw.Get(2))
		if err != nil {
			return nil, badField("333", "Channel", err)
		}
		setter := parseTopicSetter(raw.Get(3))
		ts, err := ParseTimestampEpoch(raw.Get(4))
		if err != nil {
			return nil, badField("333", "TimeSet", err)
		}
		return &TopicWhoTime{replyMsg{code}, raw.Get(1), ch, setter, ts}, nil
	case numNamReply:
		if len(raw.Params) < 4 {
			return nil, badParamCount("353", "")
		}
		ch, err := ParseChannel(raw.Get(3))
		if err != nil {
			return nil, badField("353", "Channel", err)
		}
		return &NamReply{replyMsg{code}, raw.Get(1), raw.Get(2), ch, splitFields(raw.Get(4))}, nil
	case numEndOfNames:
		if len(raw.Params) < 2 {
			return nil, badParamCount("366", "")
		}
		ch, err := ParseChannel(raw.Get(2))
		if err != nil {
			return nil, badField("366", "Channel", err)
		}
		return &EndOfNames{replyMsg{code}, raw.Get(1), ch, raw.Get(3)}, nil
	case numLinks:
		if len(raw.Params) < 4 {
			return nil, badParamCount("364", "")
		}
		return &LinksReply{replyMsg{code}, raw.Get(1), raw.Get(2), raw.Get(3), raw.Get(4)}, nil
	case numEndOfLinks:
		if len(raw.Params) < 2 {
			return nil, badParamCount("365", "")
		}
		return &EndOfLinks{replyMsg{code}, raw.Get(1), raw.Get(2), raw.Get(3)}, nil
	case numVersion:
		if len(raw.Params) < 3 {
			return nil, badParamCount("351", "")
		}
		return &VersionReply{replyMsg{code}, raw.Get(1), raw.Get(2), raw.Get(3), raw.Get(4)}, nil
	case numInfo:
		return simpleTextReply(raw, code, func(c, t string) Reply { return &InfoReply{replyMsg{code}, c, t} })
	case numEndOfInfo:
		return simpleTextReply(raw, code, func(c, t string) Reply { return &EndOfInfo{replyMsg{code}, c, t} })
	case numMotdStart:
		return simpleTextReply(raw, code, func(c, t string) Reply { return &MotdStart{replyMsg{code}, c, t} })
	case numMotd:
		return simpleTextReply(raw, code, func(c, t string) Reply { return &MotdReply{replyMsg{code}, c, t} })
	case numEndOfMotd:
		return simpleTextReply(raw, code, func(c, t string) Reply { return &EndOfMotd{replyMsg{code}, c, t} })
	case numInvalidCapCmd:
		if len(raw.Params) < 2 {
			return nil, badParamCount("410", "")
		}
		return &ErrInvalidCapCmd{replyMsg{code}, raw.Get(1), raw.Get(2), raw.Get(3)}, nil
	case numNoSuchNick:
		return targetTextReply(raw, code, "401", func(c, t, txt string) Reply { return &ErrNoSuchNick{replyMsg{code}, c, t, txt} })
	case numNoSuchChannel:
		return targetTextReply(raw, code, "403", func(c, t, txt string) Reply { return &ErrNoSuchChannel{replyMsg{code}, c, t, txt} })
	case numCannotSendChan:
		return targetTextReply(raw, code, "404", func(c, t, txt string) Reply { return &ErrCannotSendToChan{replyMsg{code}, c, t, txt} })
	case numTooManyChans:
		return targetTextReply(raw, code, "405", func(c, t, txt string) Reply { return &ErrTooManyChannels{replyMsg{code}, c, t, txt} })
	case numUnknownCmd:
		return targetTextReply(raw, code, "421", func(c, t, txt string) Reply { return &ErrUnknownCommandReply{replyMsg{code}, c, t, txt} })
	case numNoMotd:
		return simpleTextReply(raw, code, func(c, t string) Reply { return &ErrNoMotd{replyMsg{code}, c, t} })
	case numErroneusNick:
		return targetTextReply(raw, code, "432", func(c, t, txt string) Reply { return &ErrErroneusNickname{replyMsg{code}, c, t, txt} })
	case numNicknameInUse:
		return targetTextReply(raw, code, "433", func(c, t, txt string) Reply { return &ErrNicknameInUse{replyMsg{code}, c, t, txt} })
	case numNickCollision:
		return targetTextReply(raw, code, "436", func(c, t, txt string) Reply { return &ErrNickCollision{replyMsg{code}, c, t, txt} })
	case numUnavailResrc:
		return targetTextReply(raw, code, "437", func(c, t, txt string) Reply { return &ErrUnavailResource{replyMsg{code}, c, t, txt} })
	case numNotOnChannel:
		return targetTextReply(raw, code, "442", func(c, t, txt string) Reply { return &ErrNotOnChannel{replyMsg{code}, c, t, txt} })
	case numNeedMoreParams:
		return targetTextReply(raw, code, "461", func(c, t, txt string) Reply { return &ErrNeedMoreParams{replyMsg{code}, c, t, txt} })
	case numAlreadyReg:
		return simpleTextReply(raw, code, func(c, t string) Reply { return &ErrAlreadyRegistered{replyMsg{code}, c, t} })
	case numPasswdMismatch:
		return simpleTextReply(raw, code, func(c, t string) Reply { return &ErrPasswdMismatch{replyMsg{code}, c, t} })
	case numYoureBanned:
		return simpleTextReply(raw, code, func(c, t string) Reply { return &ErrYoureBannedCreep{replyMsg{code}, c, t} })
	case numChannelIsFull:
		return targetTextReply(raw, code, "471", func(c, t, txt string) Reply { return &ErrChannelIsFull{replyMsg{code}, c, t, txt} })
	case numInviteOnly:
		return targetTextReply(raw, code, "473", func(c, t, txt string) Reply { return &ErrInviteOnlyChan{replyMsg{code}, c, t, txt} })
	case numBannedFromChan:
		return targetTextReply(raw, code, "474", func(c, t, txt string) Reply { return &ErrBannedFromChan{replyMsg{code}, c, t, txt} })
	case numBadChannelKey:
		return targetTextReply(raw, code, "475", func(c, t, txt string) Reply { return &ErrBadChannelKey{replyMsg{code}, c, t, txt} })
	case numNotRegistered:
		return simpleTextReply(raw, code, func(c, t string) Reply { return &ErrNotRegistered{replyMsg{code}, c, t} })
	case numLoggedIn:
		if len(raw.Params) < 4 {
			return nil, badParamCount("900", "")
		}
		return &LoggedIn{replyMsg{code}, raw.Get(1), raw.Get(2), raw.Get(3), raw.Get(4)}, nil
	case numLoggedOut:
		if len(raw.Params) < 3 {
			return nil, badParamCount("901", "")
		}
		return &LoggedOut{replyMsg{code}, raw.Get(1), raw.Get(2), raw.Get(3)}, nil
	case numSaslSuccess:
		return simpleTextReply(raw, code, func(c, t string) Reply { return &SaslSuccess{replyMsg{code}, c, t} })
	case numSaslFail:
		return simpleTextReply(raw, code, func(c, t string) Reply { return &SaslFail{replyMsg{code}, c, t} })
	case numSaslTooLong:
		return simpleTextReply(raw, code, func(c, t string) Reply { return &SaslTooLong{replyMsg{code}, c, t} })
	case numSaslAborted:
		return simpleTextReply(raw, code, func(c, t string) Reply { return &SaslAborted{replyMsg{code}, c, t} })
	case numSaslAlready:
		return simpleTextReply(raw, code, func(c, t string) Reply { return &SaslAlready{replyMsg{code}, c, t} })
	case numSaslMechs:
		if len(raw.Params) < 2 {
			return nil, badParamCount("908", "")
		}
		return &SaslMechs{replyMsg{code}, raw.Get(1), splitCommaFields(raw.Get(2)), raw.Get(3)}, nil
	default:
		return &Unknown{replyMsg{code}, raw.Params}, nil
	}
}

func splitCommaFields(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

// simpleTextReply parses the common "<client> :<text>" shape shared by many
// numerics, tolerating any extra trailing parameters.
func simpleTextReply(raw RawMessage, code int, build func(client, text string) Reply) (Reply, error) {
	if len(raw.Params) < 2 {
		return nil, badParamCount(padNumeric(code), "")
	}
	return build(raw.Get(1), raw.Params[len(raw.Params)-1]), nil
}

// targetTextReply parses the common "<client> <target> :<text>" shape.
func targetTextReply(raw RawMessage, code int, name string, build func(client, target, text string) Reply) (Reply, error) {
	if len(raw.Params) < 3 {
		return nil, badParamCount(name, "")
	}
	return build(raw.Get(1), raw.Get(2), raw.Params[len(raw.Params)-1]), nil
}

// parseTopicSetter accepts both a bare nickname and a full nick!user@host
// form, per spec.md §4.3's tolerant-parse rule for RPL_TOPICWHOTIME.
func parseTopicSetter(tok string) Source {
	if i := strings.IndexByte(tok, '!'); i >= 0 {
		nick := tok[:i]
		rest := tok[i+1:]
		user, host := rest, ""
		if j := strings.IndexByte(rest, '@'); j >= 0 {
			user, host = rest[:j], rest[j+1:]
		}
		return UserSource(Nickname(nick), user, host)
	}
	return UserSource(Nickname(tok), "", "")
}

func renderSimpleText(s *Source, code int, client, text string) (string, error) {
	return renderLine(s, padNumeric(code), client, text)
}

func renderTargetText(s *Source, code int, client, target, text string) (string, error) {
	return renderLine(s, padNumeric(code), client, target, text)
}

// --- variants: welcome burst ---

type Welcome struct {
	replyMsg
	Client string
	Text   string
}

func (m *Welcome) Render(s *Source) (string, error) { return renderSimpleText(s, m.code, m.Client, m.Text) }

type YourHost struct {
	replyMsg
	Client string
	Text   string
}

func (m *YourHost) Render(s *Source) (string, error) { return renderSimpleText(s, m.code, m.Client, m.Text) }

type Created struct {
	replyMsg
	Client string
	Text   string
}

func (m *Created) Render(s *Source) (string, error) { return renderSimpleText(s, m.code, m.Client, m.Text) }

type MyInfo struct {
	replyMsg
	Client       string
	ServerName   string
	Version      string
	UserModes    string
	ChannelModes string
}

func (m *MyInfo) Render(s *Source) (string, error) {
	return renderLine(s, padNumeric(m.code), m.Client, m.ServerName, m.Version, m.UserModes, m.ChannelModes)
}

// ISupport accumulates one RPL_ISUPPORT line's worth of feature tokens; see
// ISupportState for the accumulation across multiple lines.
type ISupport struct {
	replyMsg
	Client string
	Tokens []ISupportToken
	Text   string
}

func (m *ISupport) Render(s *Source) (string, error) {
	params := []string{m.Client}
	for _, t := range m.Tokens {
		params = append(params, t.String())
	}
	params = append(params, m.Text)
	return renderLine(s, padNumeric(m.code), params...)
}

type StatsConn struct {
	replyMsg
	Client string
	Text   string
}

func (m *StatsConn) Render(s *Source) (string, error) { return renderSimpleText(s, m.code, m.Client, m.Text) }

type LUserClient struct {
	replyMsg
	Client string
	Text   string
}

func (m *LUserClient) Render(s *Source) (string, error) { return renderSimpleText(s, m.code, m.Client, m.Text) }

type LUserOp struct {
	replyMsg
	Client string
	Ops    string
	Text   string
}

func (m *LUserOp) Render(s *Source) (string, error) {
	return renderLine(s, padNumeric(m.code), m.Client, m.Ops, m.Text)
}

type LUserUnknown struct {
	replyMsg
	Client string
	Count  string
	Text   string
}

func (m *LUserUnknown) Render(s *Source) (string, error) {
	return renderLine(s, padNumeric(m.code), m.Client, m.Count, m.Text)
}

type LUserChannels struct {
	replyMsg
	Client string
	Count  string
	Text   string
}

func (m *LUserChannels) Render(s *Source) (string, error) {
	return renderLine(s, padNumeric(m.code), m.Client, m.Count, m.Text)
}

type LUserMe struct {
	replyMsg
	Client string
	Text   string
}

func (m *LUserMe) Render(s *Source) (string, error) { return renderSimpleText(s, m.code, m.Client, m.Text) }

type AdminMe struct {
	replyMsg
	Client string
	Text   string
}

func (m *AdminMe) Render(s *Source) (string, error) { return renderSimpleText(s, m.code, m.Client, m.Text) }

type AdminLoc1 struct {
	replyMsg
	Client string
	Text   string
}

func (m *AdminLoc1) Render(s *Source) (string, error) { return renderSimpleText(s, m.code, m.Client, m.Text) }

type AdminLoc2 struct {
	replyMsg
	Client string
	Text   string
}

func (m *AdminLoc2) Render(s *Source) (string, error) { return renderSimpleText(s, m.code, m.Client, m.Text) }

type AdminEmail struct {
	replyMsg
	Client string
	Text   string
}

func (m *AdminEmail) Render(s *Source) (string, error) { return renderSimpleText(s, m.code, m.Client, m.Text) }

// --- channel queries ---

type ChannelList struct {
	replyMsg
	Client  string
	Channel Channel
	Visible string
	Topic   string
}

func (m *ChannelList) Render(s *Source) (string, error) {
	return renderLine(s, padNumeric(m.code), m.Client, m.Channel.String(), m.Visible, m.Topic)
}

type ListEnd struct {
	replyMsg
	Client string
	Text   string
}

func (m *ListEnd) Render(s *Source) (string, error) { return renderSimpleText(s, m.code, m.Client, m.Text) }

type ChannelModeIs struct {
	replyMsg
	Client  string
	Channel Channel
	Modes   ModeString
}

func (m *ChannelModeIs) Render(s *Source) (string, error) {
	fields := strings.Fields(m.Modes.String())
	params := append([]string{m.Client, m.Channel.String()}, fields...)
	return renderLine(s, padNumeric(m.code), params...)
}

type TopicReply struct {
	replyMsg
	Client  string
	Channel Channel
	Text    string
}

func (m *TopicReply) Render(s *Source) (string, error) {
	return renderLine(s, padNumeric(m.code), m.Client, m.Channel.String(), m.Text)
}

// TopicWhoTime reports who set a channel's topic and when. Setter accepts
// both bare-nickname and nick!user@host wire forms (spec.md §4.3).
type TopicWhoTime struct {
	replyMsg
	Client  string
	Channel Channel
	Setter  Source
	TimeSet Timestamp
}

func (m *TopicWhoTime) Render(s *Source) (string, error) {
	return renderLine(s, padNumeric(m.code), m.Client, m.Channel.String(), m.Setter.String(), m.TimeSet.Epoch())
}

// NamReply carries one page of a channel's membership list. ChannelStatus is
// "=" (public), "*" (private), or "@" (secret). Members are raw tokens
// (prefix characters followed by a nickname); the client runtime resolves
// these into MembershipSet entries as the bundle completes.
type NamReply struct {
	replyMsg
	Client        string
	ChannelStatus string
	Channel       Channel
	Members       []string
}

func (m *NamReply) Render(s *Source) (string, error) {
	return renderLine(s, padNumeric(m.code), m.Client, m.ChannelStatus, m.Channel.String(), joinFields(m.Members))
}

type EndOfNames struct {
	replyMsg
	Client  string
	Channel Channel
	Text    string
}

func (m *EndOfNames) Render(s *Source) (string, error) {
	return renderLine(s, padNumeric(m.code), m.Client, m.Channel.String(), m.Text)
}

// --- server info ---

type LinksReply struct {
	replyMsg
	Client  string
	Mask    string
	Server  string
	HopInfo string
}

func (m *LinksReply) Render(s *Source) (string, error) {
	return renderLine(s, padNumeric(m.code), m.Client, m.Mask, m.Server, m.HopInfo)
}

type EndOfLinks struct {
	replyMsg
	Client string
	Mask   string
	Text   string
}

func (m *EndOfLinks) Render(s *Source) (string, error) {
	return renderLine(s, padNumeric(m.code), m.Client, m.Mask, m.Text)
}

// VersionReply carries a server's version string. Comment is optional per
// spec.md §4.3.
type VersionReply struct {
	replyMsg
	Client  string
	Version string
	Server  string
	Comment string
}

func (m *VersionReply) Render(s *Source) (string, error) {
	if m.Comment == "" {
		return renderLine(s, padNumeric(m.code), m.Client, m.Version, m.Server)
	}
	return renderLine(s, padNumeric(m.code), m.Client, m.Version, m.Server, m.Comment)
}

type InfoReply struct {
	replyMsg
	Client string
	Text   string
}

func (m *InfoReply) Render(s *Source) (string, error) { return renderSimpleText(s, m.code, m.Client, m.Text) }

type EndOfInfo struct {
	replyMsg
	Client string
	Text   string
}

func (m *EndOfInfo) Render(s *Source) (string, error) { return renderSimpleText(s, m.code, m.Client, m.Text) }

type MotdStart struct {
	replyMsg
	Client string
	Text   string
}

func (m *MotdStart) Render(s *Source) (string, error) { return renderSimpleText(s, m.code, m.Client, m.Text) }

type MotdReply struct {
	replyMsg
	Client string
	Text   string
}

func (m *MotdReply) Render(s *Source) (string, error) { return renderSimpleText(s, m.code, m.Client, m.Text) }

type EndOfMotd struct {
	replyMsg
	Client string
	Text   string
}

func (m *EndOfMotd) Render(s *Source) (string, error) { return renderSimpleText(s, m.code, m.Client, m.Text) }

// --- CAP / SASL ---

type ErrInvalidCapCmd struct {
	replyMsg
	Client     string
	Subcommand string
	Text       string
}

func (m *ErrInvalidCapCmd) Render(s *Source) (string, error) {
	return renderLine(s, padNumeric(m.code), m.Client, m.Subcommand, m.Text)
}

type LoggedIn struct {
	replyMsg
	Client  string
	Mask    string
	Account string
	Text    string
}

func (m *LoggedIn) Render(s *Source) (string, error) {
	return renderLine(s, padNumeric(m.code), m.Client, m.Mask, m.Account, m.Text)
}

type LoggedOut struct {
	replyMsg
	Client string
	Mask   string
	Text   string
}

func (m *LoggedOut) Render(s *Source) (string, error) {
	return renderLine(s, padNumeric(m.code), m.Client, m.Mask, m.Text)
}

type SaslSuccess struct {
	replyMsg
	Client string
	Text   string
}

func (m *SaslSuccess) Render(s *Source) (string, error) { return renderSimpleText(s, m.code, m.Client, m.Text) }

type SaslFail struct {
	replyMsg
	Client string
	Text   string
}

func (m *SaslFail) Render(s *Source) (string, error) { return renderSimpleText(s, m.code, m.Client, m.Text) }

type SaslTooLong struct {
	replyMsg
	Client string
	Text   string
}

func (m *SaslTooLong) Render(s *Source) (string, error) { return renderSimpleText(s, m.code, m.Client, m.Text) }

type SaslAborted struct {
	replyMsg
	Client string
	Text   string
}

func (m *SaslAborted) Render(s *Source) (string, error) { return renderSimpleText(s, m.code, m.Client, m.Text) }

type SaslAlready struct {
	replyMsg
	Client string
	Text   string
}

func (m *SaslAlready) Render(s *Source) (string, error) { return renderSimpleText(s, m.code, m.Client, m.Text) }

type SaslMechs struct {
	replyMsg
	Client     string
	Mechanisms []string
	Text       string
}

func (m *SaslMechs) Render(s *Source) (string, error) {
	return renderLine(s, padNumeric(m.code), m.Client, strings.Join(m.Mechanisms, ","), m.Text)
}

// --- errors ---

type ErrNoSuchNick struct {
	replyMsg
	Client string
	Target string
	Text   string
}

func (m *ErrNoSuchNick) Render(s *Source) (string, error) { return renderTargetText(s, m.code, m.Client, m.Target, m.Text) }

type ErrNoSuchChannel struct {
	replyMsg
	Client string
	Target string
	Text   string
}

func (m *ErrNoSuchChannel) Render(s *Source) (string, error) { return renderTargetText(s, m.code, m.Client, m.Target, m.Text) }

type ErrCannotSendToChan struct {
	replyMsg
	Client string
	Target string
	Text   string
}

func (m *ErrCannotSendToChan) Render(s *Source) (string, error) { return renderTargetText(s, m.code, m.Client, m.Target, m.Text) }

type ErrTooManyChannels struct {
	replyMsg
	Client string
	Target string
	Text   string
}

func (m *ErrTooManyChannels) Render(s *Source) (string, error) { return renderTargetText(s, m.code, m.Client, m.Target, m.Text) }

type ErrUnknownCommandReply struct {
	replyMsg
	Client string
	Target string
	Text   string
}

func (m *ErrUnknownCommandReply) Render(s *Source) (string, error) { return renderTargetText(s, m.code, m.Client, m.Target, m.Text) }

type ErrNoMotd struct {
	replyMsg
	Client string
	Text   string
}

func (m *ErrNoMotd) Render(s *Source) (string, error) { return renderSimpleText(s, m.code, m.Client, m.Text) }

type ErrErroneusNickname struct {
	replyMsg
	Client string
	Target string
	Text   string
}

func (m *ErrErroneusNickname) Render(s *Source) (string, error) {
	return renderTargetText(s, m.code, m.Client, m.Target, m.Text)
}

// ErrNicknameInUse aborts the registration handshake per spec.md §4.7: no
// alternate-nick retry strategy is built in (see design note (a)).
type ErrNicknameInUse struct {
	replyMsg
	Client string
	Target string
	Text   string
}

func (m *ErrNicknameInUse) Render(s *Source) (string, error) {
	return renderTargetText(s, m.code, m.Client, m.Target, m.Text)
}

type ErrNickCollision struct {
	replyMsg
	Client string
	Target string
	Text   string
}

func (m *ErrNickCollision) Render(s *Source) (string, error) {
	return renderTargetText(s, m.code, m.Client, m.Target, m.Text)
}

type ErrUnavailResource struct {
	replyMsg
	Client string
	Target string
	Text   string
}

func (m *ErrUnavailResource) Render(s *Source) (string, error) {
	return renderTargetText(s, m.code, m.Client, m.Target, m.Text)
}

type ErrNotOnChannel struct {
	replyMsg
	Client string
	Target string
	Text   string
}

func (m *ErrNotOnChannel) Render(s *Source) (string, error) { return renderTargetText(s, m.code, m.Client, m.Target, m.Text) }

type ErrNeedMoreParams struct {
	replyMsg
	Client  string
	Command string
	Text    string
}

func (m *ErrNeedMoreParams) Render(s *Source) (string, error) {
	return renderTargetText(s, m.code, m.Client, m.Command, m.Text)
}

type ErrAlreadyRegistered struct {
	replyMsg
	Client string
	Text   string
}

func (m *ErrAlreadyRegistered) Render(s *Source) (string, error) { return renderSimpleText(s, m.code, m.Client, m.Text) }

type ErrPasswdMismatch struct {
	replyMsg
	Client string
	Text   string
}

func (m *ErrPasswdMismatch) Render(s *Source) (string, error) { return renderSimpleText(s, m.code, m.Client, m.Text) }

type ErrYoureBannedCreep struct {
	replyMsg
	Client string
	Text   string
}

func (m *ErrYoureBannedCreep) Render(s *Source) (string, error) { return renderSimpleText(s, m.code, m.Client, m.Text) }

type ErrChannelIsFull struct {
	replyMsg
	Client string
	Target string
	Text   string
}

func (m *ErrChannelIsFull) Render(s *Source) (string, error) { return renderTargetText(s, m.code, m.Client, m.Target, m.Text) }

type ErrInviteOnlyChan struct {
	replyMsg
	Client string
	Target string
	Text   string
}

func (m *ErrInviteOnlyChan) Render(s *Source) (string, error) {
	return renderTargetText(s, m.code, m.Client, m.Target, m.Text)
}

type ErrBannedFromChan struct {
	replyMsg
	Client string
	Target string
	Text   string
}

func (m *ErrBannedFromChan) Render(s *Source) (string, error) {
	return renderTargetText(s, m.code, m.Client, m.Target, m.Text)
}

type ErrBadChannelKey struct {
	replyMsg
	Client string
	Target string
	Text   string
}

func (m *ErrBadChannelKey) Render(s *Source) (string, error) {
	return renderTargetText(s, m.code, m.Client, m.Target, m.Text)
}

type ErrNotRegistered struct {
	replyMsg
	Client string
	Text   string
}

func (m *ErrNotRegistered) Render(s *Source) (string, error) { return renderSimpleText(s, m.code, m.Client, m.Text) }

// Unknown is any numeric reply this catalog does not model by name. Params
// holds every wire parameter, including the leading client nick, verbatim.
type Unknown struct {
	replyMsg
	Params []string
}

func (m *Unknown) Render(s *Source) (string, error) {
	return renderLine(s, padNumeric(m.code), m.Params...)
}
