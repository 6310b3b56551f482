// Command lineshape plots the Lorentzian lineshape of an NMR multiplet.
//
// Usage:
//
//	lineshape
//
// The command asks for a multiplicity (1 = singlet ... 9 = nonet) and a
// half-width at half maximum, then shows the summed Lorentzian lines of the
// binomial pattern in a window. It exits when the window is closed.
//
// Settings are read from LINESHAPE_* environment variables or a
// .env.<LINESHAPE_ENV> file; see internal/config.
package main

import (
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/cwbudde/algo-lineshape/dsp/core"
	"github.com/cwbudde/algo-lineshape/dsp/lineshape"
	"github.com/cwbudde/algo-lineshape/dsp/spectrum"
	"github.com/cwbudde/algo-lineshape/internal/config"
	"github.com/cwbudde/algo-lineshape/internal/prompt"
	"github.com/cwbudde/algo-lineshape/internal/render"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	setupLogging(cfg)

	r, err := render.New(cfg.Render)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create renderer")
	}

	if err := run(os.Stdin, os.Stdout, cfg, r); err != nil {
		log.Fatal().Err(err).Msg("Lineshape failed")
	}
}

func setupLogging(cfg *config.Config) {
	if cfg.Env == "dev" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		log.Warn().Str("level", cfg.Log.Level).Msg("Unknown log level, using info")
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	log.Logger = log.With().Str("run_id", uuid.NewString()).Logger()
}

// run prompts for the multiplet parameters on in/out, generates the curve
// and hands it to r.
func run(in io.Reader, out io.Writer, cfg *config.Config, r render.Renderer) error {
	lines := prompt.NewReader(in)

	multiplicity, err := prompt.Multiplicity(lines, out)
	if err != nil {
		return err
	}
	gamma, err := prompt.Gamma(lines, out)
	if err != nil {
		return err
	}

	gen := lineshape.NewGenerator(
		core.WithSamples(cfg.Domain.Samples),
		core.WithRange(cfg.Domain.Min, cfg.Domain.Max),
	)
	curve, err := gen.Lineshape(multiplicity, 0, gamma, 1)
	if err != nil {
		return err
	}

	logSummary(curve)

	opts := render.DefaultOptions(multiplicity)
	opts.Width = cfg.Render.Width
	opts.Height = cfg.Render.Height
	return r.Render(curve, opts)
}

func logSummary(curve *lineshape.Curve) {
	s, err := spectrum.Analyze(curve.X, curve.Y)
	if err != nil {
		log.Warn().Err(err).Msg("Curve analysis failed")
		return
	}
	log.Info().
		Str("pattern", curve.Pattern.Name()).
		Float64("gamma", curve.Gamma).
		Int("samples", curve.Len()).
		Float64("max", s.Max).
		Float64("max_position", s.Position).
		Float64("area", s.Area).
		Float64("fwhm", s.FWHM).
		Msg("Lineshape generated")

	if e := log.Debug(); e.Enabled() {
		env, err := spectrum.FID(curve.Y)
		if err != nil {
			e.Err(err).Msg("FID failed")
			return
		}
		e.Int("fid_points", len(env)).
			Int("fid_decay_index", spectrum.DecayIndex(env)).
			Msg("FID envelope")
	}
}
