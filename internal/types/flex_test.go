package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexListAcceptsSingleAndArray(t *testing.T) {
	var body struct {
		BlockIDs FlexList[string] `json:"blockIds"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"blockIds":"a"}`), &body))
	assert.Equal(t, []string{"a"}, body.BlockIDs.Slice())

	require.NoError(t, json.Unmarshal([]byte(`{"blockIds":["d","b","a"]}`), &body))
	assert.Equal(t, []string{"d", "b", "a"}, body.BlockIDs.Slice())
}

func TestFlexIntAcceptsNumberAndString(t *testing.T) {
	var body struct {
		Position FlexInt `json:"position"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"position":3}`), &body))
	assert.Equal(t, 3, body.Position.Int())

	require.NoError(t, json.Unmarshal([]byte(`{"position":"7"}`), &body))
	assert.Equal(t, 7, body.Position.Int())

	assert.Error(t, json.Unmarshal([]byte(`{"position":"seven"}`), &body))
	assert.Error(t, json.Unmarshal([]byte(`{"position":true}`), &body))
}

func TestCustomErrorMessage(t *testing.T) {
	err := &CustomError{Code: 403, Message: "unknown user", Type: "user.authorization"}
	assert.Equal(t, "403: unknown user [type: user.authorization]", err.Error())
}
