// Command gen_golden evaluates a fixed set of example programs and writes
// their residuals as golden fixture files under testdata/golden, one file
// per program.
//
// Regenerate with: go run scripts/gen_golden.go
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/shiftcat/shiftcat"
)

var programs = map[string]string{
	"copy":      `[x] Copy`,
	"drop-copy": `[x] [y] Drop Copy`,
	"cat":       `[a] [b] Cat`,
	"abs-app":   `[x] Abs App`,
	"pair":      `a b Pair`,
	"shift-id":  `[] Shift Reset`,
}

func main() {
	if err := run(context.Background()); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context) error {
	dir := filepath.Join("testdata", "golden")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	eg, _ := errgroup.WithContext(ctx)
	for name, src := range programs {
		name, src := name, src
		eg.Go(func() error {
			v, err := shiftcat.Evaluate(src)
			if err != nil {
				return fmt.Errorf("%v: %w", name, err)
			}
			path := filepath.Join(dir, name+".txt")
			return os.WriteFile(path, []byte(shiftcat.String(v)+"\n"), 0o644)
		})
	}
	return eg.Wait()
}
