package transport

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/binary"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func selfSignedCert(t *testing.T) tls.Certificate {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	tmpl := x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "dot.test"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
		DNSNames:     []string{"dot.test"},
	}
	der, err := x509.CreateCertificate(rand.Reader, &tmpl, &tmpl, &key.PublicKey, key)
	require.NoError(t, err)

	cert, err := x509.ParseCertificate(der)
	require.NoError(t, err)

	return tls.Certificate{
		Certificate: [][]byte{cert.Raw},
		PrivateKey:  key,
	}
}

func TestDoTExchangerRoundTrip(t *testing.T) {
	cert := selfSignedCert(t)
	ln, err := tls.Listen("tcp", "127.0.0.1:0", &tls.Config{Certificates: []tls.Certificate{cert}})
	require.NoError(t, err)
	defer ln.Close()

	response := []byte{0x00, 0x02, 0x81, 0x80, 0, 1, 0, 1, 0, 0, 0, 0}
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()

		var prefix [2]byte
		conn.Read(prefix[:])
		qlen := binary.BigEndian.Uint16(prefix[:])
		query := make([]byte, qlen)
		conn.Read(query)

		var out [2]byte
		binary.BigEndian.PutUint16(out[:], uint16(len(response)))
		conn.Write(out[:])
		conn.Write(response)
	}()

	pool := x509.NewCertPool()
	leaf, err := x509.ParseCertificate(cert.Certificate[0])
	require.NoError(t, err)
	pool.AddCert(leaf)

	ex := &DoTExchanger{
		Addr:       ln.Addr().String(),
		ServerName: "dot.test",
		Timeout:    2 * time.Second,
		TLSConfig:  &tls.Config{ServerName: "dot.test", RootCAs: pool},
	}

	resp, err := ex.Exchange(context.Background(), []byte{0x00, 0x02, 0x01, 0x00, 0, 1, 0, 0, 0, 0, 0, 0})
	require.NoError(t, err)
	require.Equal(t, DoT, resp.Protocol)
	require.Equal(t, response, resp.Raw)
}

func TestDoTExchangerRejectsBadCertificate(t *testing.T) {
	cert := selfSignedCert(t)
	ln, err := tls.Listen("tcp", "127.0.0.1:0", &tls.Config{Certificates: []tls.Certificate{cert}})
	require.NoError(t, err)
	defer ln.Close()

	go func() {
		conn, err := ln.Accept()
		if err == nil {
			conn.Close()
		}
	}()

	ex := NewDoTExchanger(ln.Addr().String(), "dot.test", 2*time.Second)
	_, err = ex.Exchange(context.Background(), []byte{0x00, 0x02})
	require.Error(t, err, "dialing without the test CA in the trust store must fail verification")
}
