// Command ledgen renders the native bit encoders of package ledstrip
// from timing.Profiles, after checking every profile against every
// protocol of its timing family. It exits non-zero if a profile fails.
//
//	go generate ./drivers/ledstrip
//	go run ./cmd/ledgen -check
package main

import (
	"flag"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"ledstrip-go/drivers/ledstrip"
	"ledstrip-go/drivers/ledstrip/timing"
)

func main() {
	var (
		dir   = flag.String("dir", ".", "output directory for generated encoders")
		check = flag.Bool("check", false, "validate profiles only, write nothing")
	)
	flag.Parse()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	if err := run(*dir, *check); err != nil {
		log.Fatal().Err(err).Msg("ledgen failed")
	}
}

func run(dir string, check bool) error {
	for _, p := range timing.Profiles {
		for _, proto := range ledstrip.Protocols() {
			if proto.Timing != p.Timing {
				continue
			}
			r, err := proto.Check(p)
			if err != nil {
				log.Error().Err(err).Str("profile", p.Name()).Str("protocol", proto.Name).Msg("profile rejected")
				return err
			}
			log.Info().
				Str("profile", p.Name()).
				Str("protocol", proto.Name).
				Dur("t0h", r.High0).
				Dur("t1h", r.High1).
				Dur("period", r.Period).
				Dur("pixel_gap", r.PixelGap).
				Msg("profile ok")
		}
		if check {
			continue
		}
		src, err := render(p)
		if err != nil {
			return err
		}
		path := filepath.Join(dir, fileName(p))
		if err := os.WriteFile(path, src, 0o644); err != nil {
			return err
		}
		log.Info().Str("file", path).Msg("wrote encoder")
	}
	return nil
}
