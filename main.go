package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"royalur/game"
	"royalur/gamemaster"
	"royalur/meta"
	"royalur/metrics"
	"royalur/player"
	"royalur/transcript"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type config struct {
	transcript string
	mode       string
	seed       uint64
	maxTurns   int
	strict     bool
	records    string
	parquet    string
	record     string
	out        io.Writer
}

func main() {
	cfg := config{out: os.Stdout}
	flag.StringVar(&cfg.transcript, "transcript", "", "Transcript to read the players and rolls (and in replay mode the moves) from")
	flag.StringVar(&cfg.mode, "mode", "replay", "replay: replay the recorded moves; "+
		"bots: two random bots play the rolls of a file holding only roll lines of four binary dice; "+
		"player: a random bot plays the seat named in the stream and writes its tokens to stdout")
	flag.Uint64Var(&cfg.seed, "seed", meta.DEFAULT_SEED, "Seed for the random bots")
	flag.IntVar(&cfg.maxTurns, "max-turns", meta.MAX_TURNS, "Maximum number of rolls")
	flag.BoolVar(&cfg.strict, "strict", false, "Require an exact roll to bear off")
	flag.StringVar(&cfg.records, "records", "", "Directory for CSV game and move records")
	flag.StringVar(&cfg.parquet, "parquet", "", "Parquet file for move records")
	flag.StringVar(&cfg.record, "record", "", "Write the played game to this transcript")
	debug := flag.Bool("debug", false, "Log every turn")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if cfg.transcript == "" {
		log.Fatal().Msg("-transcript is required")
	}
	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Msg("game failed")
	}
}

func run(cfg config) error {
	f, err := os.Open(cfg.transcript)
	if err != nil {
		return err
	}
	defer f.Close()

	var readerOptions []transcript.Option
	if cfg.mode == "bots" {
		readerOptions = append(readerOptions, transcript.WithBinaryDice())
	}
	r := transcript.NewReader(f, readerOptions...)
	names, err := r.ReadHeader()
	if err != nil {
		return fmt.Errorf("reading %s: %w", cfg.transcript, err)
	}
	for i := range names {
		if names[i] == "" {
			names[i] = meta.PLAYER_NAMES[i]
		}
	}

	var agents [game.NumPlayers]player.Agent
	switch cfg.mode {
	case "replay":
		agents = [game.NumPlayers]player.Agent{r, r}
	case "bots":
		agents = [game.NumPlayers]player.Agent{player.NewRandom(cfg.seed), player.NewRandom(cfg.seed + 1)}
	case "player":
		seat, err := r.ReadSeat()
		if err != nil {
			return fmt.Errorf("reading %s: %w", cfg.transcript, err)
		}
		agents = r.Seat(seat, player.NewRandom(cfg.seed), cfg.out)
	default:
		return fmt.Errorf("unknown mode %q", cfg.mode)
	}

	var boardOptions []game.Option
	if cfg.strict {
		boardOptions = append(boardOptions, game.WithRules(game.StrictRules{}))
	}
	board := game.NewBoard(names[0], names[1], boardOptions...)

	collector := metrics.NewCollector(names)
	options := []gamemaster.Option{
		gamemaster.WithMaxTurns(cfg.maxTurns),
		gamemaster.WithObserver(collector),
	}
	if cfg.record != "" {
		out, err := os.Create(cfg.record)
		if err != nil {
			return err
		}
		defer out.Close()
		w, err := transcript.NewWriter(out, names)
		if err != nil {
			return err
		}
		options = append(options, gamemaster.WithObserver(w))
	}

	collector.Start()
	result, runErr := gamemaster.New(board, r, agents, options...).Run()
	if runErr != nil {
		log.Warn().Err(runErr).Msgf("game stopped after %d turns, keeping its records", result.Turns)
	}
	gameMetric, moveMetrics := collector.Complete(result)
	log.Info().Msgf("%s %d - %d %s in %d turns (%d moves, %d skips, %d captures)",
		names[0], result.Scores[0], result.Scores[1], names[1],
		gameMetric.TotalTurns, gameMetric.TotalMoves, gameMetric.Skips,
		gameMetric.Captures[0]+gameMetric.Captures[1])

	moveRecords := make([]metrics.MoveRecord, 0, len(moveMetrics))
	for _, m := range moveMetrics {
		moveRecords = append(moveRecords, metrics.MoveRecord{Game: 1, MoveMetric: m})
	}

	if cfg.records != "" {
		writer, err := metrics.NewWriter(cfg.records)
		if err != nil {
			return fmt.Errorf("failed to create records writer: %w", err)
		}
		err = writer.WriteGameRecords([]metrics.GameRecord{{ID: 1, GameMetric: gameMetric}})
		if err != nil {
			return fmt.Errorf("failed to write game records: %w", err)
		}
		err = writer.WriteMoveRecords(moveRecords)
		if err != nil {
			return fmt.Errorf("failed to write move records: %w", err)
		}
		log.Info().Msgf("stored records in %s", writer.Dir())
	}
	if cfg.parquet != "" {
		if err := metrics.WriteMoveParquet(cfg.parquet, moveRecords); err != nil {
			return err
		}
		log.Info().Msgf("stored move records in %s", cfg.parquet)
	}
	return runErr
}
