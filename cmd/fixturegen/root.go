package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goserg/fixturegen/internal/config"
	"github.com/goserg/fixturegen/internal/fixture"
	"github.com/goserg/fixturegen/internal/logger"
	"github.com/goserg/fixturegen/internal/render"
	"github.com/goserg/fixturegen/internal/shuffle"
	"github.com/goserg/fixturegen/internal/stats"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

var demoTeams = []string{"Paraguay", "Brasil", "Argentina", "Perú", "Chile", "Ecuador", "Colombia"}

type flags struct {
	configPath string
	teamsFile  string
	out        string
	byeLabel   string
	singleLeg  bool
	shuffleT   bool
	shuffleM   bool
	seed       int64
	normalize  bool
	logLevel   string
	matrix     bool
	stats      bool
	check      bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "fixturegen [team...]",
		Short: "Generate a round-robin fixture",
		Long: "Generate a round-robin fixture in which every team meets every other team once per leg " +
			"and no team plays twice on the same matchday. Without teams a demo list is used.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New(f.configPath)
			if err != nil {
				return err
			}
			applyFlags(cmd, f, &cfg)

			log, err := logger.New(stderr, cfg.Log.Level)
			if err != nil {
				log.WithError(err).Warn("falling back to info level")
			}

			teams, err := loadTeams(args, f.teamsFile)
			if err != nil {
				return err
			}
			return generate(stdout, log, cfg, teams, f)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	fs := cmd.Flags()
	fs.StringVarP(&f.configPath, "config", "c", config.DefaultPath, "path to the toml config")
	fs.StringVarP(&f.teamsFile, "teams-file", "f", "", "read teams from a file, one per line")
	fs.StringVarP(&f.out, "out", "o", "", "also write the fixture to this file")
	fs.StringVar(&f.byeLabel, "bye-label", "", "label of the resting slot")
	fs.BoolVar(&f.singleLeg, "single-leg", false, "schedule every pairing once")
	fs.BoolVar(&f.shuffleT, "shuffle-teams", true, "randomize the team order")
	fs.BoolVar(&f.shuffleM, "shuffle-matchdays", true, "randomize the matchday order")
	fs.Int64Var(&f.seed, "seed", 0, "seed for the randomization, 0 for a random one")
	fs.BoolVar(&f.normalize, "normalize-names", false, "trim names and compare them case-insensitively")
	fs.StringVar(&f.logLevel, "log-level", "", "log level")
	fs.BoolVar(&f.matrix, "matrix", false, "print the assignment matrix")
	fs.BoolVar(&f.stats, "stats", false, "print home, away and bye counts per team")
	fs.BoolVar(&f.check, "check", false, "verify the schedule before printing it")
	return cmd
}

func applyFlags(cmd *cobra.Command, f flags, cfg *config.Config) {
	fs := cmd.Flags()
	if fs.Changed("bye-label") {
		cfg.Fixture.ByeLabel = f.byeLabel
	}
	if fs.Changed("single-leg") {
		cfg.Fixture.DoubleLeg = !f.singleLeg
	}
	if fs.Changed("shuffle-teams") {
		cfg.Fixture.RandomizeTeams = f.shuffleT
	}
	if fs.Changed("shuffle-matchdays") {
		cfg.Fixture.RandomizeMatchdays = f.shuffleM
	}
	if fs.Changed("seed") {
		cfg.Fixture.Seed = f.seed
	}
	if fs.Changed("normalize-names") {
		cfg.Fixture.NormalizeNames = f.normalize
	}
	if fs.Changed("out") {
		cfg.Output.File = f.out
	}
	if fs.Changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
}

func loadTeams(args []string, path string) ([]string, error) {
	if path == "" {
		if len(args) == 0 {
			return demoTeams, nil
		}
		return args, nil
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	teams, err := readTeams(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return append(teams, args...), nil
}

// readTeams reads one team per line. Blank lines and lines starting with
// # are skipped.
func readTeams(r io.Reader) ([]string, error) {
	var teams []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		teams = append(teams, line)
	}
	return teams, scanner.Err()
}

func generate(stdout io.Writer, log *logrus.Logger, cfg config.Config, teams []string, f flags) error {
	lang, err := language.Parse(cfg.Output.CollateLanguage)
	if err != nil {
		return fmt.Errorf("collate_language: %w", err)
	}
	fx, err := fixture.New(teams, fixture.Options{
		ByeLabel:              cfg.Fixture.ByeLabel,
		DoubleLeg:             cfg.Fixture.DoubleLeg,
		RandomizeRoster:       cfg.Fixture.RandomizeTeams,
		RandomizeDisplayOrder: cfg.Fixture.RandomizeMatchdays,
		AutoGenerate:          true,
		NormalizeNames:        cfg.Fixture.NormalizeNames,
		Source:                shuffle.FromSeed(cfg.Fixture.Seed),
		Log:                   log,
	})
	if err != nil {
		return err
	}
	l := log.WithFields(logrus.Fields{"name": "cli", "fixture_id": fx.ID()})
	l.WithFields(logrus.Fields{
		"teams":     len(teams),
		"matchdays": len(fx.Matchdays()),
		"legs":      fx.Legs(),
	}).Info("fixture ready")

	if f.check {
		if err := fx.Matrix().Check(); err != nil {
			return err
		}
		l.Info("schedule verified")
	}
	if f.matrix {
		if err := render.Matrix(stdout, fx.Matrix()); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(stdout); err != nil {
			return err
		}
	}
	text := fx.String()
	if _, err := io.WriteString(stdout, text); err != nil {
		return err
	}
	if f.stats {
		summary := stats.Summarize(fx.Matchdays(), lang)
		if err := stats.Write(stdout, summary); err != nil {
			return err
		}
		imbalance := stats.MaxImbalance(summary)
		if imbalance > stats.Tolerance(len(summary), fx.Legs()) {
			l.WithField("imbalance", imbalance).Warn("home and away matches are unbalanced")
		}
	}

	if cfg.Output.File == "" {
		return nil
	}
	if err := os.WriteFile(cfg.Output.File, []byte(text), 0o644); err != nil {
		l.WithError(err).Error("unable to write fixture")
		return errors.Join(errors.New("fixture printed but not saved"), err)
	}
	l.WithField("file", cfg.Output.File).Info("fixture saved")
	return nil
}
