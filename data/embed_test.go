package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemo(t *testing.T) {
	boards, err := Demo()
	require.NoError(t, err)
	require.NotEmpty(t, boards)

	for _, board := range boards {
		assert.NotEmpty(t, board.Title)
		assert.Contains(t, []string{"public", "private"}, board.Status)
		assert.NotEmpty(t, board.Inputs)
	}
}
