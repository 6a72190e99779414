// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package events

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/launchpad/pkg/launchpad"
)

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(url, "http")
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	if resp != nil {
		resp.Body.Close()
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestHubBroadcast(t *testing.T) {
	hub := NewHub(nil)
	srv := httptest.NewServer(hub)
	defer srv.Close()

	first := dial(t, srv.URL)
	second := dial(t, srv.URL)
	require.Eventually(t, func() bool {
		return hub.SubscriberCount() == 2
	}, time.Second, 10*time.Millisecond)

	sent := launchpad.Event{
		Type:      launchpad.EventContribution,
		ProjectID: 7,
		User:      "alice",
		Amount:    1_000,
		Height:    42,
	}
	hub.Publish(sent)

	for _, conn := range []*websocket.Conn{first, second} {
		var got launchpad.Event
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
		require.NoError(t, conn.ReadJSON(&got))
		require.Equal(t, sent, got)
	}
}

func TestHubDropsClosedSubscribers(t *testing.T) {
	hub := NewHub(nil)
	srv := httptest.NewServer(hub)
	defer srv.Close()

	conn := dial(t, srv.URL)
	require.Eventually(t, func() bool {
		return hub.SubscriberCount() == 1
	}, time.Second, 10*time.Millisecond)

	conn.Close()
	require.Eventually(t, func() bool {
		return hub.SubscriberCount() == 0
	}, time.Second, 10*time.Millisecond)

	// Publishing with no subscribers is a no-op.
	hub.Publish(launchpad.Event{Type: launchpad.EventClaim, ProjectID: 1})
}
