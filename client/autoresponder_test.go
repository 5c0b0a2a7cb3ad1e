package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	irc "github.com/jwodder/ircbits"
)

func newTrackedClient(nick irc.Nickname) *Client {
	return &Client{currentNick: nick, channels: map[irc.Channel]*irc.ChannelView{}}
}

func parseOrFail(t *testing.T, line string) irc.Message {
	t.Helper()
	msg, err := irc.ParseMessage(line)
	require.NoError(t, err)
	return msg
}

func TestStateTrackerSelfPartDestroysChannelView(t *testing.T) {
	c := newTrackedClient("bot")
	stateTracker(c, parseOrFail(t, ":bot!u@h JOIN #general"))
	stateTracker(c, parseOrFail(t, ":bot!u@h PART #general :bye"))

	_, ok := c.channels["#general"]
	assert.False(t, ok)
}

func TestStateTrackerOtherPartRemovesMemberOnly(t *testing.T) {
	c := newTrackedClient("bot")
	stateTracker(c, parseOrFail(t, ":bot!u@h JOIN #general"))
	stateTracker(c, parseOrFail(t, ":alice!u@h JOIN #general"))
	stateTracker(c, parseOrFail(t, ":alice!u@h PART #general :bye"))

	v, ok := c.channels["#general"]
	require.True(t, ok)
	_, stillMember := v.MembershipOf("alice")
	assert.False(t, stillMember)
	_, selfStillMember := v.MembershipOf("bot")
	assert.True(t, selfStillMember)
}

func TestStateTrackerSelfKickDestroysChannelView(t *testing.T) {
	c := newTrackedClient("bot")
	stateTracker(c, parseOrFail(t, ":bot!u@h JOIN #general"))
	stateTracker(c, parseOrFail(t, ":op!u@h KICK #general bot :rule 3"))

	_, ok := c.channels["#general"]
	assert.False(t, ok)
}

func TestStateTrackerOtherKickRemovesMemberOnly(t *testing.T) {
	c := newTrackedClient("bot")
	stateTracker(c, parseOrFail(t, ":bot!u@h JOIN #general"))
	stateTracker(c, parseOrFail(t, ":alice!u@h JOIN #general"))
	stateTracker(c, parseOrFail(t, ":op!u@h KICK #general alice :rule 3"))

	v, ok := c.channels["#general"]
	require.True(t, ok)
	_, stillMember := v.MembershipOf("alice")
	assert.False(t, stillMember)
}

func TestStateTrackerSelfQuitDestroysAllChannelViews(t *testing.T) {
	c := newTrackedClient("bot")
	stateTracker(c, parseOrFail(t, ":bot!u@h JOIN #general"))
	stateTracker(c, parseOrFail(t, ":bot!u@h JOIN #other"))
	stateTracker(c, parseOrFail(t, ":bot!u@h QUIT :gone"))

	assert.Empty(t, c.channels)
}

func TestStateTrackerOtherQuitRemovesMemberFromEveryChannel(t *testing.T) {
	c := newTrackedClient("bot")
	stateTracker(c, parseOrFail(t, ":bot!u@h JOIN #general"))
	stateTracker(c, parseOrFail(t, ":alice!u@h JOIN #general"))
	stateTracker(c, parseOrFail(t, ":alice!u@h QUIT :gone"))

	v, ok := c.channels["#general"]
	require.True(t, ok)
	_, stillMember := v.MembershipOf("alice")
	assert.False(t, stillMember)
}

func TestStateTrackerErrorDestroysAllChannelViews(t *testing.T) {
	c := newTrackedClient("bot")
	stateTracker(c, parseOrFail(t, ":bot!u@h JOIN #general"))
	stateTracker(c, parseOrFail(t, ":bot!u@h JOIN #other"))
	stateTracker(c, parseOrFail(t, "ERROR :Closing Link: bot (Ping timeout)"))

	assert.Empty(t, c.channels)
}
