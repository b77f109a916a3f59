package shiftcat

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/shiftcat/shiftcat/internal/flushio"
)

// Session serves one connection's programs, against one Worker, over a
// newline-delimited text protocol. Each line read is one program; the
// printed residual is written back followed by a blank line.
type Session struct {
	Worker *Worker
	Logf   func(mess string, args ...interface{})

	// Dump, when set, replaces the plain residual reply with the fuller
	// rendering Dump produces: the residual's tree shape plus the
	// dictionary's current bindings.
	Dump bool
}

// Run handles conn until it errors, is closed, ctx is done, or the client
// sends the out-of-band quit prompt ("{Quit}" or "{ Quit }" ends a session
// rather than being evaluated).
func (s *Session) Run(ctx context.Context, conn net.Conn) {
	defer conn.Close()

	out := flushio.NewWriteFlusher(conn)
	sc := bufio.NewScanner(conn)
	for sc.Scan() {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line := sc.Text()
		if isQuit(line) {
			return
		}

		v, err := s.Worker.Eval(ctx, line)
		if err != nil {
			fmt.Fprintf(out, "! %v\n\n", err)
			s.logf("session error: %v", err)
		} else if s.Dump {
			Dump(out, v, s.Worker.Dict)
			fmt.Fprintln(out)
		} else {
			fmt.Fprintf(out, "%v\n\n", String(v))
		}
		if err := out.Flush(); err != nil {
			s.logf("session write: %v", err)
			return
		}
	}
}

func (s *Session) logf(mess string, args ...interface{}) {
	if s.Logf != nil {
		s.Logf(mess, args...)
	}
}

func isQuit(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed == "{Quit}" || trimmed == "{ Quit }"
}

// Serve accepts connections on ln until ctx is done, giving each one a
// fresh Worker (so a fresh, isolated Dictionary) and running it to
// completion. Per-connection work runs outside the errgroup so one
// connection ending does not cancel the shared listener context. dump is
// forwarded to every Session's Dump field.
func Serve(ctx context.Context, ln net.Listener, newWorker func() *Worker, logf func(mess string, args ...interface{}), dump bool) error {
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		<-ctx.Done()
		return ln.Close()
	})

	eg.Go(func() error {
		for {
			conn, err := ln.Accept()
			if err != nil {
				select {
				case <-ctx.Done():
					return nil
				default:
					return err
				}
			}

			worker := newWorker()
			workerCtx, cancel := context.WithCancel(ctx)
			go func() {
				defer cancel()
				worker.Start(workerCtx)
			}()
			go func() {
				defer cancel()
				sess := &Session{Worker: worker, Logf: logf, Dump: dump}
				sess.Run(workerCtx, conn)
			}()
		}
	})

	return eg.Wait()
}
