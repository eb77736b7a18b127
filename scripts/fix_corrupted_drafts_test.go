package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-content/internal/content/race"
)

func TestCheckDraft(t *testing.T) {
	races, err := race.NewDefaultRegistry()
	require.NoError(t, err)

	testCases := []struct {
		name string
		data string
		want string
	}{
		{name: "no race", data: `{"id":"d1","player_id":"p1"}`},
		{name: "griffon", data: `{"id":"d1","player_id":"p1","race_id":"griffon","face":"griffon"}`},
		{name: "bad json", data: `{"id":`, want: "corrupted JSON"},
		{name: "missing player", data: `{"id":"d1"}`, want: "missing draft or player ID"},
		{
			name: "unknown race",
			data: `{"id":"d1","player_id":"p1","race_id":"centaur","face":"centaur"}`,
			want: "race centaur is not registered",
		},
		{
			name: "unknown face",
			data: `{"id":"d1","player_id":"p1","race_id":"griffon","face":"eagle"}`,
			want: "race griffon does not offer face eagle",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, checkDraft(tc.data, races))
		})
	}
}
