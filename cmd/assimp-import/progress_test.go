package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressFeedReportAfterRendererStopped(t *testing.T) {
	feed := newProgressFeed(2)
	done := make(chan struct{})
	close(done)

	var out bytes.Buffer
	renderProgress(&out, feed.updates, done)

	// The importer may keep reporting after the renderer is gone.
	assert.NotPanics(t, func() {
		for i := 0; i < 10; i++ {
			assert.True(t, feed.report(float32(i)/10))
		}
	})
}

func TestRenderProgressDrawsBufferedValues(t *testing.T) {
	feed := newProgressFeed(4)
	feed.report(0.25)
	feed.report(1)
	done := make(chan struct{})
	close(done)

	var out bytes.Buffer
	renderProgress(&out, feed.updates, done)

	text := out.String()
	assert.Contains(t, text, " 25%")
	assert.Contains(t, text, "100%")
	assert.True(t, strings.HasSuffix(text, "\n"))
}

func TestRenderProgressStopsOnDone(t *testing.T) {
	feed := newProgressFeed(4)
	done := make(chan struct{})
	finished := make(chan struct{})

	var out bytes.Buffer
	go func() {
		renderProgress(&out, feed.updates, done)
		close(finished)
	}()

	feed.report(0.5)
	close(done)

	select {
	case <-finished:
	case <-time.After(time.Second):
		require.FailNow(t, "renderer did not stop after done was closed")
	}
}

func TestRenderProgressNothingDrawn(t *testing.T) {
	feed := newProgressFeed(1)
	done := make(chan struct{})
	close(done)

	var out bytes.Buffer
	renderProgress(&out, feed.updates, done)
	assert.Empty(t, out.String())
}
