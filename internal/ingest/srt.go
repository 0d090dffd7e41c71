package ingest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	srtgo "github.com/zsiec/srtgo"
)

// srtReadBufferSize is the read buffer for SRT socket reads.
// 1316 bytes = 7 MPEG-TS packets (188 * 7), the standard SRT payload size.
const srtReadBufferSize = 1316 * 10

// srtLatencyNs is the SRT latency setting in nanoseconds (120ms).
const srtLatencyNs = 120_000_000

// SRTServer accepts a single SRT publish connection and drains it into a
// buffer. The tool splits one feed per run, so the server is one-shot:
// accept, drain to close, return the bytes.
type SRTServer struct {
	log  *slog.Logger
	addr string
}

// NewSRTServer creates a server that will listen on addr. If log is nil,
// slog.Default() is used.
func NewSRTServer(addr string, log *slog.Logger) *SRTServer {
	if log == nil {
		log = slog.Default()
	}
	return &SRTServer{
		log:  log.With("component", "srt-ingest"),
		addr: addr,
	}
}

// Drain listens on the server address, accepts the first publish connection
// with a non-empty stream ID, and reads it until the sender closes. It
// returns the full byte stream, or the context error if cancelled first.
func (s *SRTServer) Drain(ctx context.Context) ([]byte, error) {
	cfg := srtgo.DefaultConfig()
	cfg.Latency = srtLatencyNs

	l, err := srtgo.Listen(s.addr, cfg)
	if err != nil {
		return nil, fmt.Errorf("SRT listen on %s: %w", s.addr, err)
	}
	defer l.Close()
	s.log.Info("listening", "addr", s.addr)

	l.SetAcceptRejectFunc(func(req srtgo.ConnRequest) srtgo.RejectReason {
		if req.StreamID == "" {
			return srtgo.RejPeer
		}
		return 0
	})

	go func() {
		<-ctx.Done()
		l.Close()
	}()

	conn, err := l.Accept()
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("SRT accept: %w", err)
	}
	defer conn.Close()

	streamKey := extractStreamKey(conn.StreamID())
	s.log.Info("publish", "stream_key", streamKey, "remote", conn.RemoteAddr())

	var data bytes.Buffer
	var reads int64
	buf := make([]byte, srtReadBufferSize)
	for {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		n, err := conn.Read(buf)
		if err != nil {
			if !errors.Is(err, io.EOF) && ctx.Err() == nil {
				s.log.Debug("read ended", "stream_key", streamKey, "error", err)
			}
			break
		}
		reads++
		data.Write(buf[:n])
	}

	s.log.Info("connection closed", "stream_key", streamKey,
		"bytes", data.Len(), "reads", reads)
	return data.Bytes(), nil
}

func extractStreamKey(streamID string) string {
	streamID = strings.TrimPrefix(streamID, "/")
	streamID = strings.TrimPrefix(streamID, "live/")
	if streamID == "" {
		return "default"
	}
	return streamID
}
