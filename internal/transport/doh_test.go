package transport

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDoHExchangerRoundTrip(t *testing.T) {
	response := []byte{0x00, 0x03, 0x81, 0x80, 0, 1, 0, 1, 0, 0, 0, 0}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, dohContentType, r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.Equal(t, []byte{0x00, 0x03, 0x01, 0x00, 0, 1, 0, 0, 0, 0, 0, 0}, body)

		w.Header().Set("Content-Type", dohContentType)
		w.WriteHeader(http.StatusOK)
		w.Write(response)
	}))
	defer srv.Close()

	ex := NewDoHExchanger(srv.URL+"/dns-query", 2*time.Second)
	resp, err := ex.Exchange(context.Background(), []byte{0x00, 0x03, 0x01, 0x00, 0, 1, 0, 0, 0, 0, 0, 0})
	require.NoError(t, err)
	require.Equal(t, DoH, resp.Protocol)
	require.Equal(t, response, resp.Raw)
}

func TestDoHExchangerRejectsNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	ex := NewDoHExchanger(srv.URL+"/dns-query", 2*time.Second)
	_, err := ex.Exchange(context.Background(), []byte{0x00, 0x01})
	require.Error(t, err)
}
