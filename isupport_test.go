package irc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func mustISupportToken(t *testing.T, s string) ISupportToken {
	t.Helper()
	tok, err := ParseISupportToken(s)
	if err != nil {
		t.Fatalf("ParseISupportToken(%q): %v", s, err)
	}
	return tok
}

func TestISupportStateAccumulatesAcrossLines(t *testing.T) {
	var s ISupportState
	s.Apply([]ISupportToken{
		mustISupportToken(t, "NICKLEN=30"),
		mustISupportToken(t, "CHANTYPES=#&"),
	})
	s.Apply([]ISupportToken{
		mustISupportToken(t, "CHANNELLEN=64"),
	})

	assert.Equal(t, 30, s.NickLen())
	assert.Equal(t, 64, s.ChannelLen())
	assert.Equal(t, "#&", s.ChanTypes())
}

func TestISupportStateNegationRemovesToken(t *testing.T) {
	var s ISupportState
	s.Apply([]ISupportToken{mustISupportToken(t, "EXTBAN=~,qjncrRa")})
	_, ok := s.Get("EXTBAN")
	assert.True(t, ok)

	s.Apply([]ISupportToken{mustISupportToken(t, "-EXTBAN")})
	_, ok = s.Get("EXTBAN")
	assert.False(t, ok)
}

func TestISupportStateDefaultsWhenUnreported(t *testing.T) {
	var s ISupportState
	assert.Equal(t, "#&", s.ChanTypes())
	assert.Equal(t, CaseMappingRFC1459, s.CaseMapping())
	letters, symbols := s.PrefixTable()
	assert.Equal(t, "ov", letters)
	assert.Equal(t, "@+", symbols)
}

func TestISupportStatePrefixTableParsesCustomOrder(t *testing.T) {
	var s ISupportState
	s.Apply([]ISupportToken{mustISupportToken(t, "PREFIX=(qaohv)~&@%+")})
	letters, symbols := s.PrefixTable()
	assert.Equal(t, "qaohv", letters)
	assert.Equal(t, "~&@%+", symbols)
}

func TestISupportStateCaseMappingReported(t *testing.T) {
	var s ISupportState
	s.Apply([]ISupportToken{mustISupportToken(t, "CASEMAPPING=ascii")})
	assert.Equal(t, CaseMappingASCII, s.CaseMapping())
}
