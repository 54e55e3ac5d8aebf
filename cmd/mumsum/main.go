// Copyright © 2024 the mum authors. All rights reserved.

// Command mumsum is a thin demonstration consumer of the mum64, mum512,
// and mumrand packages, not part of the hash contract itself. It hashes
// files or stdin with hash64/vhash64/hash512, and can emit a MUM-PRNG or
// MUM512-PRNG stream for piping into an external statistical-test driver
// such as PractRand or the NIST STS.
package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/vnmakarov/mum/mum512"
	"github.com/vnmakarov/mum/mum64"
	"github.com/vnmakarov/mum/mumrand"
)

var (
	app      = kingpin.New("mumsum", "Compute MUM-family hashes and PRNG streams.")
	seedFlag = app.Flag("seed", "64-bit seed (decimal or 0x-prefixed hex).").Default("0").Uint64()
	algo     = app.Flag("algo", "hash64, vhash64, or hash512.").Default("hash64").Enum("hash64", "vhash64", "hash512")
	verbose  = app.Flag("verbose", "Log each file as it is hashed, plus the detected vector width.").Bool()
	workers  = app.Flag("workers", "Concurrent hashing workers (0 = GOMAXPROCS).").Default("0").Int()
	files    = app.Arg("file", "Files to hash; reads stdin if none are given.").Strings()

	prngCmd   = app.Command("prng", "Emit a MUM-PRNG or MUM512-PRNG stream as hex lines.")
	prngWide  = prngCmd.Flag("wide", "Use the 512-bit PRNG instead of the 64-bit one.").Bool()
	prngCount = prngCmd.Arg("count", "Number of values to emit.").Default("8").Uint64()
)

func main() {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))

	if *verbose {
		level.Debug(logger).Log("msg", "vector layer width detected", "lanes", mum64.VectorWidth)
	}

	switch cmd {
	case prngCmd.FullCommand():
		runPRNG()
	default:
		if err := runHash(logger); err != nil {
			level.Error(logger).Log("msg", "mumsum failed", "err", err)
			os.Exit(1)
		}
	}
}

// runHash hashes every named file (or stdin, if none were given) with the
// selected algorithm. Files are hashed concurrently, bounded to *workers
// (or GOMAXPROCS if unset); distinct hash invocations share no mutable
// state, which is exactly what makes this safe without any locking in
// mumsum itself.
func runHash(logger log.Logger) error {
	names := *files
	if len(names) == 0 {
		names = []string{"-"}
	}

	limit := *workers
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	results := make([]string, len(names))
	g := new(errgroup.Group)
	g.SetLimit(limit)
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			data, err := readInput(name)
			if err != nil {
				return errors.Wrapf(err, "reading %s", name)
			}
			if *verbose {
				level.Info(logger).Log("msg", "hashing", "file", name, "bytes", len(data))
			}
			results[i] = formatDigest(name, data)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for _, line := range results {
		fmt.Println(line)
	}
	return nil
}

func formatDigest(name string, data []byte) string {
	switch *algo {
	case "vhash64":
		return fmt.Sprintf("%016x  %s", mum64.VHash64(data, *seedFlag), name)
	case "hash512":
		seed := mum512.DefaultSeed
		seed[0] ^= *seedFlag
		d := mum512.Hash512(data, seed)
		return fmt.Sprintf("%016x%016x%016x%016x%016x%016x%016x%016x  %s",
			d[0], d[1], d[2], d[3], d[4], d[5], d[6], d[7], name)
	default:
		return fmt.Sprintf("%016x  %s", mum64.Hash64(data, *seedFlag), name)
	}
}

func readInput(name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(name)
}

func runPRNG() {
	if *prngWide {
		seed := mum512.DefaultSeed
		seed[0] ^= *seedFlag
		p := mumrand.NewPRNG512(seed)
		for i := uint64(0); i < *prngCount; i++ {
			d := p.Next()
			fmt.Printf("%016x%016x%016x%016x%016x%016x%016x%016x\n",
				d[0], d[1], d[2], d[3], d[4], d[5], d[6], d[7])
		}
		return
	}

	p := mumrand.NewPRNG64(*seedFlag)
	for i := uint64(0); i < *prngCount; i++ {
		fmt.Printf("%016x\n", p.Next())
	}
}
