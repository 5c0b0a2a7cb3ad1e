// Package irctest provides an in-memory mock IRC server for exercising a
// client.Client without a real network connection.
//
// Grounded on the teacher's own irctest.Server (an io.Pipe pair satisfying
// io.ReadWriteCloser), adapted to drop its coupling to the teacher's
// Handler/Message types: this runtime's client package observes a typed
// Event stream instead of being pushed messages by the mock server, so the
// mock only needs to shuttle raw lines, not parse them itself.
package irctest

import (
	"bufio"
	"io"
	"strings"
	"sync"
)

// Server is a mock IRC server: an io.ReadWriteCloser a client.Client can
// dial into (via a DialFunc-style hook), paired with methods a test uses
// to play the server's side of the conversation.
type Server struct {
	closeOnce sync.Once

	sendReader *io.PipeReader
	sendWriter *io.PipeWriter

	recvReader *io.PipeReader
	recvWriter *io.PipeWriter

	recvScanner *bufio.Scanner
}

// NewServer creates a ready-to-use mock server. Callers must Close it when
// done to release the underlying pipes.
func NewServer() *Server {
	s := &Server{}
	s.sendReader, s.sendWriter = io.Pipe()
	s.recvReader, s.recvWriter = io.Pipe()
	s.recvScanner = bufio.NewScanner(s.recvReader)
	return s
}

// Read implements io.ReadWriteCloser: it is how the client reads lines the
// test sent via WriteString.
func (s *Server) Read(p []byte) (int, error) { return s.sendReader.Read(p) }

// Write implements io.ReadWriteCloser: it is how the client's outgoing
// lines reach ReadLine.
func (s *Server) Write(p []byte) (int, error) { return s.recvWriter.Write(p) }

// Close releases both pipes. Safe to call more than once.
func (s *Server) Close() error {
	s.closeOnce.Do(func() {
		_ = s.sendWriter.Close()
		_ = s.recvWriter.Close()
	})
	return nil
}

// WriteString sends a raw line to the client, appending CRLF if the
// caller didn't already.
func (s *Server) WriteString(line string) error {
	if !strings.HasSuffix(line, "\r\n") {
		line += "\r\n"
	}
	_, err := s.sendWriter.Write([]byte(line))
	return err
}

// ReadLine blocks until the client has written one complete line, and
// returns it with CRLF stripped.
func (s *Server) ReadLine() (string, error) {
	if !s.recvScanner.Scan() {
		if err := s.recvScanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimRight(s.recvScanner.Text(), "\r"), nil
}
