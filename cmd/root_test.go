package cmd

import (
	"astrocore/internal/logger"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(configPath, []byte(`{"workers": 2}`), 0o644))

	root := NewRootCommand()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append([]string{"--config", configPath}, args...))
	err := root.ExecuteContext(logger.WithContext(context.Background(), zap.NewNop().Sugar()))
	return out.String(), err
}

func writeTestFile(t *testing.T, name, contents string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestCommands(t *testing.T) {
	chartPath := writeTestFile(t, "chart.json", `{
		"planets": [
			{"name": "Sun", "longitude": 10},
			{"name": "Moon", "longitude": 130},
			{"name": "Venus", "longitude": 40}
		]
	}`)

	t.Run("aspects", func(t *testing.T) {
		out, err := runCommand(t, "aspects", "--chart", chartPath)
		require.NoError(t, err)
		require.Contains(t, out, "Sun trine Moon")
	})

	t.Run("moon", func(t *testing.T) {
		out, err := runCommand(t, "moon", "--chart", chartPath)
		require.NoError(t, err)
		require.Contains(t, out, `"phase": "first_quarter"`)
	})

	t.Run("hour", func(t *testing.T) {
		out, err := runCommand(t, "hour",
			"--at", "2024-01-07T06:30:00Z",
			"--sunrise", "2024-01-07T06:00:00Z",
			"--sunset", "2024-01-07T18:00:00Z",
		)
		require.NoError(t, err)
		require.Contains(t, out, `"planet": "Sun"`)
	})

	t.Run("hour with an empty day span", func(t *testing.T) {
		_, err := runCommand(t, "hour",
			"--at", "2024-06-21T12:00:00Z",
			"--sunrise", "2024-06-21T00:00:00Z",
			"--sunset", "2024-06-21T00:00:00Z",
			"--latitude", "78.2",
		)
		require.ErrorContains(t, err, "78.20")
	})

	t.Run("elect", func(t *testing.T) {
		out, err := runCommand(t, "elect", "--chart", chartPath, "--event", "signing-contracts", "--at", "2024-03-06")
		require.NoError(t, err)
		require.Contains(t, out, `"eventType": "signing_contracts"`)
	})

	t.Run("elect with unknown event", func(t *testing.T) {
		_, err := runCommand(t, "elect", "--chart", chartPath, "--event", "picnic", "--at", "2024-03-06")
		require.ErrorContains(t, err, "unknown event type")
	})

	t.Run("elect from a stored snapshot", func(t *testing.T) {
		snapshots := writeTestFile(t, "snapshots.csv", `date,point,longitude,speed,house,retrograde,sunrise,sunset
2024-03-02T12:00:00Z,Sun,1,1,10,false,2024-03-02T06:30:00Z,2024-03-02T18:00:00Z
2024-03-02T12:00:00Z,Moon,71,13,9,false,2024-03-02T06:30:00Z,2024-03-02T18:00:00Z
`)
		out, err := runCommand(t, "elect", "--snapshots", snapshots, "--event", "business_start", "--at", "2024-03-02T12:00:00Z")
		require.NoError(t, err)
		require.Contains(t, out, `"eventType": "business_start"`)
		require.Contains(t, out, "planetaryHourAppropriate")

		_, err = runCommand(t, "elect", "--snapshots", snapshots, "--event", "business_start", "--at", "2024-03-03T12:00:00Z")
		require.ErrorContains(t, err, "failed to get snapshot")
	})

	t.Run("elect needs a chart or snapshots", func(t *testing.T) {
		_, err := runCommand(t, "elect", "--event", "business_start", "--at", "2024-03-02")
		require.Error(t, err)
	})

	t.Run("guidelines", func(t *testing.T) {
		out, err := runCommand(t, "guidelines", "--event", "marriage")
		require.NoError(t, err)
		require.Contains(t, out, "Venus")

		out, err = runCommand(t, "guidelines")
		require.NoError(t, err)
		require.Contains(t, out, "court_appearance")
	})

	t.Run("best dates as csv", func(t *testing.T) {
		snapshots := writeTestFile(t, "snapshots.csv", `date,point,longitude,speed,house,retrograde,sunrise,sunset
2024-03-01T12:00:00Z,Sun,0,1,10,false,,
2024-03-01T12:00:00Z,Moon,320,13,9,false,,
2024-03-02T12:00:00Z,Sun,1,1,10,false,,
2024-03-02T12:00:00Z,Moon,71,13,9,false,,
2024-04-02T12:00:00Z,Sun,31,1,10,false,,
2024-04-02T12:00:00Z,Moon,75,13,9,false,,
`)
		out, err := runCommand(t, "best-dates",
			"--snapshots", snapshots,
			"--event", "business_start",
			"--from", "2024-03-01",
			"--to", "2024-03-02",
			"--format", "csv",
		)
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 3)
		require.True(t, strings.HasPrefix(lines[1], "1,2024-03-02T12:00:00Z,"))
		require.True(t, strings.HasPrefix(lines[2], "2,2024-03-01T12:00:00Z,"))
	})

	t.Run("missing required flag", func(t *testing.T) {
		_, err := runCommand(t, "aspects")
		require.Error(t, err)
	})
}
