package irc

import "strings"

// ISupportState accumulates RPL_ISUPPORT tokens across however many 005
// lines a server sends during registration, and answers the handful of
// queries the rest of the client runtime needs: channel/nick limits,
// channel types, membership prefixes, and casemapping.
//
// Zero value is usable and behaves as an RFC1459-only server that has not
// yet reported ISUPPORT.
type ISupportState struct {
	tokens map[string]ISupportToken
}

// Apply folds the tokens of one RPL_ISUPPORT line into the accumulated
// state. A negated token (e.g. "-EXTBAN") removes any previously recorded
// value for that key, per spec.md's ISUPPORT negation rule.
func (s *ISupportState) Apply(tokens []ISupportToken) {
	if s.tokens == nil {
		s.tokens = make(map[string]ISupportToken)
	}
	for _, t := range tokens {
		if t.Negated {
			delete(s.tokens, t.Key)
			continue
		}
		s.tokens[t.Key] = t
	}
}

// Get returns the raw token for key, and whether the server has reported it.
func (s *ISupportState) Get(key string) (ISupportToken, bool) {
	t, ok := s.tokens[key]
	return t, ok
}

// NickLen returns the server-reported NICKLEN, or 0 if unreported (callers
// should fall back to the RFC default of 9).
func (s *ISupportState) NickLen() int {
	return s.intToken("NICKLEN")
}

// ChannelLen returns the server-reported CHANNELLEN, or 0 if unreported.
func (s *ISupportState) ChannelLen() int {
	return s.intToken("CHANNELLEN")
}

func (s *ISupportState) intToken(key string) int {
	t, ok := s.Get(key)
	if !ok || !t.HasValue {
		return 0
	}
	n := 0
	for _, r := range t.Value {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int(r-'0')
	}
	return n
}

// ChanTypes returns the channel-name prefix characters the server accepts,
// defaulting to "#&" when CHANTYPES was not reported.
func (s *ISupportState) ChanTypes() string {
	if t, ok := s.Get("CHANTYPES"); ok && t.HasValue {
		return t.Value
	}
	return "#&"
}

// CaseMapping returns the casemapping the server advertised, defaulting to
// rfc1459 when unreported.
func (s *ISupportState) CaseMapping() CaseMapping {
	if t, ok := s.Get("CASEMAPPING"); ok && t.HasValue {
		return ParseCaseMapping(t.Value)
	}
	return CaseMappingRFC1459
}

// PrefixTable returns the server's PREFIX token decoded into parallel
// mode-letter and symbol strings (e.g. "ohv", "@%+"), or the RFC2812
// default of "ov"/"@+" when PREFIX was not reported or malformed.
func (s *ISupportState) PrefixTable() (letters, symbols string) {
	t, ok := s.Get("PREFIX")
	if !ok || !t.HasValue {
		return "ov", "@+"
	}
	v := t.Value
	if len(v) < 2 || v[0] != '(' {
		return "ov", "@+"
	}
	close := strings.IndexByte(v, ')')
	if close < 0 {
		return "ov", "@+"
	}
	return v[1:close], v[close+1:]
}
