// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_Success(t *testing.T) {
	var gotUA string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte("<ok/>"))
	}))
	defer ts.Close()

	body, err := Get(context.Background(), ts.Client(), ts.URL, "test/0.1")
	require.NoError(t, err)
	assert.Equal(t, "<ok/>", string(body))
	assert.Equal(t, "test/0.1", gotUA)
}

func TestGet_StatusErrorNotRetried(t *testing.T) {
	for _, code := range []int{http.StatusTooManyRequests, http.StatusInternalServerError, http.StatusNotFound} {
		var calls int32
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(code)
		}))

		_, err := Get(context.Background(), ts.Client(), ts.URL, "")
		ts.Close()

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrStatus)
		var se *StatusError
		require.True(t, errors.As(err, &se))
		assert.Equal(t, code, se.StatusCode)
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	}
}

func TestGet_ContextCancelled(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := Get(ctx, ts.Client(), ts.URL, "")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestGet_BadURL(t *testing.T) {
	_, err := Get(context.Background(), http.DefaultClient, "://bad", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating request")
}

func TestGet_StatusErrorOmitsQuery(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	reqURL := ts.URL + "/esummary.fcgi?db=pubmed&email=someone%40example.edu&WebEnv=W"
	_, err := Get(context.Background(), ts.Client(), reqURL, "")
	require.Error(t, err)

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, reqURL, se.URL)
	assert.Equal(t, "GET "+ts.URL+"/esummary.fcgi returned HTTP 502", err.Error())
	assert.NotContains(t, err.Error(), "example.edu")
}

func TestStatusErrorUnparsableURL(t *testing.T) {
	err := &StatusError{URL: "http://[::1/x?email=a@b.c", StatusCode: 500}
	assert.NotContains(t, err.Error(), "email")
}
