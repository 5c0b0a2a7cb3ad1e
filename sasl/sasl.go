// Package sasl implements the SASL mechanisms an IRC client authenticates
// with over IRCv3's AUTHENTICATE exchange: PLAIN and the SCRAM-SHA family.
// It does not speak IRC itself; the client runtime drives a Mechanism and
// base64/chunks its responses onto AUTHENTICATE lines.
package sasl

import "encoding/base64"

// Mechanism drives one SASL authentication exchange. A zero-value
// Mechanism is never valid; use one of the constructors (NewPlain,
// NewScram).
type Mechanism interface {
	// Name is the IRC-visible mechanism name, e.g. "PLAIN" or
	// "SCRAM-SHA-256".
	Name() string

	// Start returns the client's initial response. A nil slice (as
	// opposed to an empty non-nil slice) means "send no initial
	// response"; the server will challenge first.
	Start() ([]byte, error)

	// Next consumes one server challenge and returns the client's next
	// response. It is not called again once Done reports true.
	Next(challenge []byte) ([]byte, error)

	// Done reports whether the mechanism has sent its final response and
	// is only waiting on the server's success/failure numeric.
	Done() bool
}

// ChunkSize is the maximum size, in encoded bytes, of a single
// AUTHENTICATE parameter per the IRCv3 sasl-3.2 specification. A response
// that encodes to exactly a multiple of ChunkSize is followed by a final
// empty chunk ("AUTHENTICATE +") so the server can tell where it ends.
const ChunkSize = 400

// EncodeChunks base64-encodes payload and splits it into ChunkSize-byte
// AUTHENTICATE parameters. An empty payload encodes to a single "+".
func EncodeChunks(payload []byte) []string {
	if len(payload) == 0 {
		return []string{"+"}
	}
	enc := base64.StdEncoding.EncodeToString(payload)
	var chunks []string
	for len(enc) > ChunkSize {
		chunks = append(chunks, enc[:ChunkSize])
		enc = enc[ChunkSize:]
	}
	chunks = append(chunks, enc)
	if len(chunks[len(chunks)-1]) == ChunkSize {
		chunks = append(chunks, "+")
	}
	return chunks
}

// DecodeChunks reverses EncodeChunks: it joins a sequence of AUTHENTICATE
// parameters (each "+" for empty, or a base64 fragment) and decodes the
// result.
func DecodeChunks(chunks []string) ([]byte, error) {
	var enc string
	for _, c := range chunks {
		if c == "+" {
			continue
		}
		enc += c
	}
	if enc == "" {
		return nil, nil
	}
	return base64.StdEncoding.DecodeString(enc)
}

// Plain implements the SASL PLAIN mechanism (RFC 4616): a single message
// containing the authorization identity, authentication identity, and
// password, NUL-separated.
type Plain struct {
	Authzid string
	Authcid string
	Passwd  string
	done    bool
}

// NewPlain builds a PLAIN mechanism authenticating as authcid/passwd, with
// an empty authorization identity (the common case: acting as oneself).
func NewPlain(authcid, passwd string) *Plain {
	return &Plain{Authcid: authcid, Passwd: passwd}
}

func (p *Plain) Name() string { return "PLAIN" }

func (p *Plain) Start() ([]byte, error) {
	p.done = true
	buf := make([]byte, 0, len(p.Authzid)+len(p.Authcid)+len(p.Passwd)+2)
	buf = append(buf, p.Authzid...)
	buf = append(buf, 0)
	buf = append(buf, p.Authcid...)
	buf = append(buf, 0)
	buf = append(buf, p.Passwd...)
	return buf, nil
}

func (p *Plain) Next(challenge []byte) ([]byte, error) { return nil, nil }

func (p *Plain) Done() bool { return p.done }

// Preference orders mechanism constructors from strongest to weakest, for
// clients that want to try the best mechanism the server advertises (via
// RPL_SASLMECHS) and fall back on failure. Names must match Mechanism.Name.
type Preference []string

// DefaultPreference orders the mechanisms this package implements from
// strongest to weakest.
var DefaultPreference = Preference{"SCRAM-SHA-512", "SCRAM-SHA-256", "SCRAM-SHA-1", "PLAIN"}

// Choose returns the first name in p that also appears in offered,
// preserving p's order, or "" if none match.
func (p Preference) Choose(offered []string) string {
	offeredSet := make(map[string]bool, len(offered))
	for _, o := range offered {
		offeredSet[o] = true
	}
	for _, name := range p {
		if offeredSet[name] {
			return name
		}
	}
	return ""
}

// Candidates returns every name in p that also appears in offered,
// preserving p's order, for a client that downshifts through mechanisms
// on failure instead of only ever trying the single best one.
func (p Preference) Candidates(offered []string) []string {
	offeredSet := make(map[string]bool, len(offered))
	for _, o := range offered {
		offeredSet[o] = true
	}
	var out []string
	for _, name := range p {
		if offeredSet[name] {
			out = append(out, name)
		}
	}
	return out
}
