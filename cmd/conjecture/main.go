// Command conjecture runs one or more bundled example properties and
// prints either a pass summary or the minimized failure's replayed
// bindings. It mirrors the flag-based shape of every
// RiemaLabs-alma-ssz cmd/*/main.go — none of which reach for cobra or
// pflag — generalized from a single schema/episode run to a set of
// independently registered properties run with bounded concurrency.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/byteseq/conjecture"
	"github.com/byteseq/conjecture/config"
	"github.com/byteseq/conjecture/internal/obslog"
)

// stringList collects repeated -property flags, flag.Value's documented
// idiom for a multi-valued flag.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }
func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

func main() {
	var props stringList
	flag.Var(&props, "property", "bundled property to run (repeatable; default: all)")
	configPath := flag.String("config", "", "path to a YAML config file")
	debugvis := flag.Bool("debugvis", false, "print a coverage summary after shrinking")
	seed := flag.Int64("seed", 0, "random seed (0 picks one at random)")
	concurrency := flag.Int("concurrency", 4, "maximum properties run at once")
	flag.Parse()

	if len(props) == 0 {
		for name := range properties {
			props = append(props, name)
		}
	}

	for _, name := range props {
		if _, ok := properties[name]; !ok {
			fmt.Fprintf(os.Stderr, "conjecture: unknown property %q\n", name)
			os.Exit(1)
		}
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	obslog.SetVerbose(cfg.Verbose)

	engineCfg := conjecture.Config{
		MaxExamples: cfg.MaxExamples,
		MaxShrinks:  cfg.MaxShrinks,
		Verbose:     cfg.Verbose,
		Seed:        cfg.Seed,
	}

	sem := semaphore.NewWeighted(int64(*concurrency))
	g, ctx := errgroup.WithContext(context.Background())

	for _, name := range props {
		name := name
		g.Go(func() error {
			if err := sem.Acquire(ctx, 1); err != nil {
				return err
			}
			defer sem.Release(1)
			runProperty(name, engineCfg, properties[name], *debugvis)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runProperty(name string, cfg conjecture.Config, prop func(*conjecture.T), debugvis bool) {
	tb := &cliTB{name: name}
	report := conjecture.Check(tb, cfg, prop)

	if report.Outcome == conjecture.OutcomePass {
		fmt.Printf("%s: no counterexample found in %d example(s)\n", name, cfg.MaxExamples)
		return
	}

	fmt.Printf("%s: %s\n", name, report.Err)
	for _, b := range report.Bindings {
		fmt.Printf("  %s = %v\n", b.Name, b.Value)
	}
	if debugvis {
		fmt.Printf("  coverage: %d byte(s) covered, %d uncovered\n", report.Covered, len(report.Uncovered))
	}
}

// cliTB is the minimal conjecture.TB the CLI needs: no *testing.T is
// available outside a test binary, so it forwards Logf to stdout and
// treats Helper as a no-op, same as pgregory.net/rapid's standalone
// fuzz-target adapters do for the TB it requires off of "go test".
type cliTB struct{ name string }

func (c *cliTB) Helper() {}
func (c *cliTB) Logf(format string, args ...any) {
	fmt.Printf(format+"\n", args...)
}
func (c *cliTB) Name() string { return c.name }
