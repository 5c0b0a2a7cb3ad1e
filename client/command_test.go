package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	irc "github.com/jwodder/ircbits"
)

func TestListChannelsAccumulatesUntilListEnd(t *testing.T) {
	cmd := NewListChannels()
	require.Equal(t, []irc.ClientMessage{&irc.List{}}, cmd.InitialMessages())

	claimed, done, err := cmd.OnMessage(&irc.ChannelList{Channel: "#general", Visible: "3", Topic: "chat"})
	require.NoError(t, err)
	assert.True(t, claimed)
	assert.False(t, done)

	claimed, done, err = cmd.OnMessage(&irc.ListEnd{})
	require.NoError(t, err)
	assert.True(t, claimed)
	assert.True(t, done)

	require.Len(t, cmd.Results, 1)
	assert.Equal(t, 3, cmd.Results[0].Visible)
}

func TestListChannelsIgnoresUnrelatedMessages(t *testing.T) {
	cmd := NewListChannels()
	claimed, done, err := cmd.OnMessage(&irc.Ping{Token: "x"})
	require.NoError(t, err)
	assert.False(t, claimed)
	assert.False(t, done)
}

func TestProbeMotdCollectsLinesUntilEnd(t *testing.T) {
	p := NewProbe(ProbeMotd)
	require.Equal(t, []irc.ClientMessage{&irc.Motd{}}, p.InitialMessages())

	claimed, done, err := p.OnMessage(&irc.MotdStart{Text: "- server message of the day -"})
	require.NoError(t, err)
	assert.True(t, claimed)
	assert.False(t, done)

	claimed, done, err = p.OnMessage(&irc.MotdReply{Text: "line one"})
	require.NoError(t, err)
	assert.True(t, claimed)
	assert.False(t, done)

	claimed, done, err = p.OnMessage(&irc.EndOfMotd{Text: "End of /MOTD command."})
	require.NoError(t, err)
	assert.True(t, claimed)
	assert.True(t, done)

	require.Len(t, p.Lines, 3)
}

func TestProbeIgnoresOtherKinds(t *testing.T) {
	p := NewProbe(ProbeVersion)
	claimed, done, err := p.OnMessage(&irc.MotdReply{Text: "not mine"})
	require.NoError(t, err)
	assert.False(t, claimed)
	assert.False(t, done)
}

func TestJoinChannelCompletesOnEndOfNamesForItsChannel(t *testing.T) {
	j := NewJoinChannel("#general", "secret")
	require.Equal(t, []irc.ClientMessage{&irc.Join{Channels: []irc.Channel{"#general"}, Keys: []irc.ChannelKey{"secret"}}}, j.InitialMessages())

	claimed, done, err := j.OnMessage(&irc.EndOfNames{Channel: "#other"})
	require.NoError(t, err)
	assert.False(t, claimed)
	assert.False(t, done)

	claimed, done, err = j.OnMessage(&irc.EndOfNames{Channel: "#general"})
	require.NoError(t, err)
	assert.False(t, claimed)
	assert.True(t, done)
}

func TestJoinChannelCompletesOnError(t *testing.T) {
	j := NewJoinChannel("#general", "")
	claimed, done, err := j.OnMessage(&irc.ErrBadChannelKey{Target: "#general"})
	require.NoError(t, err)
	assert.True(t, claimed)
	assert.True(t, done)
}

func TestTimeoutsAreSetForEachCommand(t *testing.T) {
	assert.Equal(t, 30*time.Second, NewListChannels().Timeout())
	assert.Equal(t, 15*time.Second, NewProbe(ProbeAdmin).Timeout())
	assert.Equal(t, 30*time.Second, NewJoinChannel("#x", "").Timeout())
}
