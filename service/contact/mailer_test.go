package contact

import (
	"bufio"
	"context"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotbray.GO/config"
)

// listen starts a TCP listener and hands every accepted connection to serve.
func listen(t *testing.T, serve func(net.Conn)) config.Mail {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			go serve(conn)
		}
	}()
	host, port, err := net.SplitHostPort(ln.Addr().String())
	require.NoError(t, err)
	return config.Mail{Host: host, Port: port, User: "shop@example.com", FromName: "Shop"}
}

// silentRelay accepts and never sends a greeting.
func silentRelay(conn net.Conn) {
	buf := make([]byte, 512)
	for {
		if _, err := conn.Read(buf); err != nil {
			conn.Close()
			return
		}
	}
}

// plainRelay speaks just enough SMTP to accept one message and records it.
func plainRelay(got chan<- string) func(net.Conn) {
	return func(conn net.Conn) {
		defer conn.Close()
		r := bufio.NewReader(conn)
		write := func(s string) { conn.Write([]byte(s + "\r\n")) }
		write("220 localhost ESMTP")
		var data strings.Builder
		inData := false
		for {
			line, err := r.ReadString('\n')
			if err != nil {
				return
			}
			line = strings.TrimRight(line, "\r\n")
			if inData {
				if line == "." {
					inData = false
					got <- data.String()
					write("250 queued")
					continue
				}
				data.WriteString(line + "\n")
				continue
			}
			switch cmd := strings.ToUpper(strings.SplitN(line, " ", 2)[0]); cmd {
			case "EHLO":
				write("250-localhost")
				write("250 8BITMIME")
			case "MAIL", "RCPT":
				write("250 OK")
			case "DATA":
				inData = true
				write("354 go ahead")
			case "QUIT":
				write("221 bye")
				return
			default:
				write("502 unsupported")
			}
		}
	}
}

func TestSMTPMailer_StalledRelayTimesOut(t *testing.T) {
	cfg := listen(t, silentRelay)
	cfg.Timeout = 200 * time.Millisecond

	start := time.Now()
	err := NewSMTPMailer(cfg).Send(context.Background(), Email{To: "a@example.com", Subject: "hi"})
	require.Error(t, err)
	assert.Less(t, time.Since(start), 3*time.Second)
}

func TestSMTPMailer_HonoursCallerCancel(t *testing.T) {
	cfg := listen(t, silentRelay)
	cfg.Timeout = time.Minute

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(100*time.Millisecond, cancel)

	start := time.Now()
	err := NewSMTPMailer(cfg).Send(ctx, Email{To: "a@example.com"})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), 3*time.Second)
}

func TestSMTPMailer_DeliversThroughRelay(t *testing.T) {
	got := make(chan string, 1)
	cfg := listen(t, plainRelay(got))
	cfg.Timeout = 5 * time.Second

	err := NewSMTPMailer(cfg).Send(context.Background(), Email{
		To:      "customer@example.com",
		Subject: "Thanks",
		HTML:    "<p>received</p>",
	})
	require.NoError(t, err)

	select {
	case msg := <-got:
		assert.Contains(t, msg, "Subject: Thanks")
		assert.Contains(t, msg, "<p>received</p>")
	case <-time.After(2 * time.Second):
		t.Fatal("relay received nothing")
	}
}
