// Command shiftcatd serves the rewriting interpreter over a line-oriented
// TCP protocol, one Dictionary per connection.
package main

import (
	"context"
	"flag"
	"net"
	"os"
	"time"

	"github.com/shiftcat/shiftcat"
	"github.com/shiftcat/shiftcat/internal/logio"
)

func main() {
	var (
		listen  string
		gas     int
		limit   uint
		timeout time.Duration
		trace   bool
		dump    bool
	)
	flag.StringVar(&listen, "listen", ":4590", "address to listen on")
	flag.IntVar(&gas, "gas", 0, "override the default reduction gas budget")
	flag.UintVar(&limit, "dict-limit", 0, "cap entries per client dictionary (0 = unbounded)")
	flag.DurationVar(&timeout, "timeout", 0, "shut down after the given duration")
	flag.BoolVar(&trace, "trace", false, "enable step-trace logging")
	flag.BoolVar(&dump, "dump", false, "reply with a full dump of the residual and dictionary instead of just the residual")
	flag.Parse()

	log := logio.Logger{}
	log.SetOutput(os.Stderr)
	defer func() { os.Exit(log.ExitCode()) }()

	ctx := context.Background()
	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	ln, err := net.Listen("tcp", listen)
	if err != nil {
		log.Errorf("listen %v: %v", listen, err)
		return
	}
	log.Printf("", "listening on %v", ln.Addr())

	newWorker := func() *shiftcat.Worker {
		w := shiftcat.NewWorker()
		w.Dict.Limit = limit
		w.Gas = gas
		if trace {
			w.Logf = log.Leveledf("TRACE")
		}
		return w
	}

	log.ErrorIf(shiftcat.Serve(ctx, ln, newWorker, log.Leveledf("SESSION"), dump))
}
