package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateString(t *testing.T) {
	cases := map[State]string{
		StateConnecting:            "connecting",
		StateRegistering:           "registering",
		StateCapabilityNegotiation: "capability-negotiation",
		StateSaslInProgress:        "sasl-in-progress",
		StateAwaitingWelcome:       "awaiting-welcome",
		StateConnected:             "connected",
		StateQuitting:              "quitting",
		StateClosed:                "closed",
		State(99):                  "unknown",
	}
	for state, want := range cases {
		assert.Equal(t, want, state.String())
	}
}
