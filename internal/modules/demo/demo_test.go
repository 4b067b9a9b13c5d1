package demo

import (
	"bytes"
	"testing"

	"github.com/reusedev/observer-hub/config"
	"github.com/reusedev/observer-hub/internal/modules/logs"
	"github.com/reusedev/observer-hub/internal/modules/observer"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	cfg := config.Default()
	cfg.LogFormat = config.FormatJSON
	buf := &bytes.Buffer{}

	Run(observer.NewRegistry(logs.New(buf, cfg)))

	entries, err := logs.ReadEntries(buf)
	require.NoError(t, err)
	require.Equal(t, []string{
		"** Creating Subjects **",
		"Subject 1's SubjectState changed to: 1",
		"Subject 1 has no Observers",
		"Subject 2's SubjectState changed to: 2",
		"Subject 2 has no Observers",
		"** Creating Observers **",
		"** Attaching Observers to Subjects **",
		"Observer 1 is attached to Subject 1",
		"Subject 1 is notifying Observer 1 about SubjectState change",
		"Observer 1 received new SubjectState: 1",
		"Observer 2 is attached to Subject 1",
		"Subject 1 is notifying Observer 2 about SubjectState change",
		"Observer 2 received new SubjectState: 1",
		"Observer 1 is attached to Subject 2",
		"Subject 2 is notifying Observer 1 about SubjectState change",
		"Observer 1 received new SubjectState: 2",
		"Observer 3 is attached to Subject 2",
		"Subject 2 is notifying Observer 3 about SubjectState change",
		"Observer 3 received new SubjectState: 2",
		"Observer 4 is attached to Subject 2",
		"Subject 2 is notifying Observer 4 about SubjectState change",
		"Observer 4 received new SubjectState: 2",
		"** Modifying subject states **",
		"Subject 1's SubjectState changed to: 10",
		"Subject 1 is notifying Observer 1 about SubjectState change",
		"Observer 1 received new SubjectState: 10",
		"Subject 1 is notifying Observer 2 about SubjectState change",
		"Observer 2 received new SubjectState: 10",
		"Subject 2's SubjectState changed to: 20",
		"Subject 2 is notifying Observer 1 about SubjectState change",
		"Observer 1 received new SubjectState: 20",
		"Subject 2 is notifying Observer 3 about SubjectState change",
		"Observer 3 received new SubjectState: 20",
		"Subject 2 is notifying Observer 4 about SubjectState change",
		"Observer 4 received new SubjectState: 20",
		"** Detaching Observer 1 from Subject 1 and Subject 2 **",
		"Observer 1 is detached from Subject 1",
		"Observer 1 is detached from Subject 2",
		"** Modifying subject states **",
		"Subject 1's SubjectState changed to: 88",
		"Subject 1 is notifying Observer 2 about SubjectState change",
		"Observer 2 received new SubjectState: 88",
		"Subject 2's SubjectState changed to: 99",
		"Subject 2 is notifying Observer 3 about SubjectState change",
		"Observer 3 received new SubjectState: 99",
		"Subject 2 is notifying Observer 4 about SubjectState change",
		"Observer 4 received new SubjectState: 99",
	}, logs.Messages(entries))

	runID := entries[0].RunID
	require.NotEmpty(t, runID)
	for _, e := range entries {
		require.Equal(t, "info", e.Level)
		require.Equal(t, runID, e.RunID)
	}
}
