package orion

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseControlFlow(t *testing.T) {
	flow, err := ParseControlFlow("wait")
	require.NoError(t, err)
	require.Equal(t, ControlFlowWait, flow)

	flow, err = ParseControlFlow("POLL")
	require.NoError(t, err)
	require.Equal(t, ControlFlowPoll, flow)

	_, err = ParseControlFlow("exit")
	require.Error(t, err)
}

func TestParseEscapePolicy(t *testing.T) {
	policy, err := ParseEscapePolicy("")
	require.NoError(t, err)
	require.Equal(t, EscapeExit, policy)

	policy, err = ParseEscapePolicy("log")
	require.NoError(t, err)
	require.Equal(t, EscapeLog, policy)

	_, err = ParseEscapePolicy("ignore")
	require.Error(t, err)
}

func TestFlowStrings(t *testing.T) {
	require.Equal(t, "ControlFlowExit", ControlFlowExit.String())
	require.Equal(t, "EscapeLog", EscapeLog.String())
	require.Equal(t, "ControlFlow(9)", ControlFlow(9).String())
}
