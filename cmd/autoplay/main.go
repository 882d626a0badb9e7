package main

import (
	"flag"

	"github.com/cheggaaa/pb/v3"
	"github.com/sirupsen/logrus"

	"github.com/amalg/go-minesweeper/internal/game"
)

// autoplay runs batches of matches played entirely by the random chooser.
// Useful as a smoke test of the engine and for eyeballing how far blind
// play gets on each difficulty.
func main() {
	games := flag.Int("games", 100, "Number of matches to simulate")
	preset := flag.String("preset", "beginner", "Difficulty preset: beginner, intermediate, expert")
	seed := flag.Int64("seed", 0, "RNG seed for reproducible batches (0 = random)")
	flag.Parse()

	log := logrus.New()

	config, ok := game.Preset(*preset)
	if !ok {
		log.Fatalf("unknown preset %q", *preset)
	}

	chooser := game.NewRandomChooser(*seed)

	var won, lost, reveals int
	bar := pb.StartNew(*games)
	for i := 0; i < *games; i++ {
		cfg := config
		if *seed != 0 {
			cfg.Seed = *seed + int64(i) + 1
		}
		match, err := game.NewMatch(cfg)
		if err != nil {
			log.WithError(err).Fatal("failed to create match")
		}

		for !match.Status().Terminal() {
			pos, ok := chooser.ChooseCell(match.Candidates())
			if !ok {
				break
			}
			match.Reveal(pos.X, pos.Y)
			reveals++
		}

		switch match.Status() {
		case game.StatusWon:
			won++
		case game.StatusLost:
			lost++
		}
		bar.Increment()
	}
	bar.Finish()

	fields := logrus.Fields{
		"games": *games,
		"won":   won,
		"lost":  lost,
	}
	if *games > 0 {
		fields["avg_reveals"] = float64(reveals) / float64(*games)
	}
	log.WithFields(fields).Info("autoplay finished")
}
