// Package biblequiz wires the engine together: configuration, the durable
// progress store, the achievement and weekly challenge engines, and the
// quiz state machine a UI drives.
package biblequiz

import (
	"time"

	"github.com/adamspd/bible-quiz-engine/achievements"
	"github.com/adamspd/bible-quiz-engine/challenges"
	"github.com/adamspd/bible-quiz-engine/config"
	"github.com/adamspd/bible-quiz-engine/quiz"
	"github.com/adamspd/bible-quiz-engine/storage"
	"github.com/adamspd/bible-quiz-engine/utils"
)

type Game struct {
	Config  *config.Config
	Badges  *achievements.Engine
	Weekly  *challenges.Engine
	Machine *quiz.Machine

	store *storage.Store
}

// New opens the progress store and builds the engines on top of it. A nil
// cfg loads configuration from the environment.
func New(cfg *config.Config) (*Game, error) {
	if cfg == nil {
		cfg = config.Load()
	}

	utils.LogStartup("Bible quiz engine starting...")

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		return nil, err
	}

	badges := achievements.New(store)
	weekly := challenges.New(store)
	if cfg.AutoReset {
		weekly.StartAutoReset()
	}

	machine := quiz.NewMachine(store, badges, weekly,
		quiz.WithDefaultLanguage(cfg.DefaultLanguage),
		quiz.WithSoundDefault(cfg.SoundDefault),
		quiz.WithAdvanceDelay(time.Duration(cfg.AdvanceDelaySeconds)*time.Second),
	)

	utils.LogStartup("Engine ready")
	return &Game{
		Config:  cfg,
		Badges:  badges,
		Weekly:  weekly,
		Machine: machine,
		store:   store,
	}, nil
}

func (g *Game) Close() error {
	g.Weekly.StopAutoReset()
	return g.store.Close()
}
