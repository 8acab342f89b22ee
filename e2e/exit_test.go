//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestApplicationExit(t *testing.T) {
	t.Parallel()
	srv := NewEventServer(t, [2]string{"Launch", "2099-01-01"})
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp(srv.URL), "Failed to start app")
	require.True(t, tf.Ready(), "Should show the countdown title")
	require.True(t, tf.SeePlain("Launch"), "Should list the seeded event")

	t.Logf("Sending 'q' to quit application...")
	require.NoError(t, tf.Quit())

	if err := tf.WaitExit(1500 * time.Millisecond); err != nil {
		tf.DumpTailOnFail(t, "exit-failure", 4096)
		t.Fatal(err)
	}
}

func TestCtrlCQuitsFromDialog(t *testing.T) {
	t.Parallel()
	srv := NewEventServer(t)
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp(srv.URL))
	require.True(t, tf.Ready())

	// q is text inside the add dialog; ctrl+c still quits
	require.NoError(t, tf.SendKeys(KeyAdd))
	require.True(t, tf.SeePlain("Add event"))
	require.NoError(t, tf.Quit())
	require.NoError(t, tf.SendCtrlC())

	require.NoError(t, tf.WaitExit(1500*time.Millisecond))
}
