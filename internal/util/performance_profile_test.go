package util

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPerformanceProfile(t *testing.T) {
	t.Run("records events in order", func(t *testing.T) {
		p := &PerformanceProfile{}
		ctx := WithPerformanceProfile(context.Background(), p)
		GetPerformanceProfile(ctx).Add("load")
		GetPerformanceProfile(ctx).Add("score")

		require.Len(t, p.Events, 2)
		require.Equal(t, "load", p.Events[0].Name)
		require.Equal(t, int64(0), p.Events[0].ElapsedMs)
		require.Equal(t, "score", p.Events[1].Name)
		require.GreaterOrEqual(t, p.Total, int64(0))
	})

	t.Run("missing profile is a no-op", func(t *testing.T) {
		p := GetPerformanceProfile(context.Background())
		require.Nil(t, p)
		p.Add("anything")
	})
}

func TestPprint(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, Pprint(buf, map[string]int{"a": 1}))
	require.Equal(t, "{\n    \"a\": 1\n}\n", buf.String())
}
