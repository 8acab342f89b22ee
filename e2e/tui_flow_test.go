//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddEventFromTUI(t *testing.T) {
	t.Parallel()
	srv := NewEventServer(t)
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp(srv.URL))
	require.True(t, tf.Ready())
	require.True(t, tf.SeePlain("No events yet"), "empty service shows the empty state")

	require.NoError(t, tf.AddEvent("Launch", "2099-01-01"))
	require.True(t, tf.SeePlain(`Event "Launch" created`), "should confirm the create")
	assert.Equal(t, []string{"Launch"}, srv.Names())
}

func TestAddDuplicateShowsServerDetail(t *testing.T) {
	t.Parallel()
	srv := NewEventServer(t, [2]string{"Launch", "2099-01-01"})
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp(srv.URL))
	require.True(t, tf.Ready())

	require.NoError(t, tf.AddEvent("Launch", "2099-01-01"))
	require.True(t, tf.SeePlain("Event already exists"))
	assert.Equal(t, []string{"Launch"}, srv.Names())
}

func TestEditEventFromTUI(t *testing.T) {
	t.Parallel()
	srv := NewEventServer(t, [2]string{"Launch", "2099-01-01"})
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp(srv.URL))
	require.True(t, tf.Ready())
	require.True(t, tf.SeePlain("Launch"))

	require.NoError(t, tf.SendKeys(KeyEdit))
	require.True(t, tf.SeePlain("Edit event"))
	require.NoError(t, tf.SendKeys(KeyCtrlU))
	require.NoError(t, tf.Type("2098-06-01"))
	require.NoError(t, tf.SendEnter())

	require.True(t, tf.SeePlain(`Event "Launch" updated`))
}

func TestDeleteEventFromTUI(t *testing.T) {
	t.Parallel()
	srv := NewEventServer(t, [2]string{"Launch", "2099-01-01"})
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp(srv.URL))
	require.True(t, tf.Ready())
	require.True(t, tf.SeePlain("Launch"))

	require.NoError(t, tf.SendKeys(KeyDelete))
	require.True(t, tf.SeePlain("Delete event"))
	require.NoError(t, tf.SendKeys(KeyConfirm))

	require.True(t, tf.SeePlain(`Event "Launch" deleted`))
	require.Eventually(t, func() bool { return len(srv.Names()) == 0 }, 2*time.Second, 25*time.Millisecond)
}

func TestStatusFilterAndRefresh(t *testing.T) {
	t.Parallel()
	srv := NewEventServer(t,
		[2]string{"Launch", "2099-01-01"},
		[2]string{"Retro", "2000-01-01"},
	)
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp(srv.URL))
	require.True(t, tf.Ready())

	require.NoError(t, tf.SendKeys("f"))
	require.True(t, tf.SeePlain("[Status: Active]"))

	require.NoError(t, tf.SendKeys(KeyRefresh))
	require.True(t, tf.SeePlain("Refreshed"))
}
