package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/status"
	"github.com/lixenwraith/vi-snake/store"
)

var (
	debugFlag    = flag.Bool("debug", false, "Write logs to logs/vi-snake.log and show metrics")
	storeFlag    = flag.String("store", "", "Score store path (default ~/.vi-snake/scores.json, or scores.db for sqlite)")
	backendFlag  = flag.String("backend", "", "Score store backend: file, sqlite, memory (default $VI_SNAKE_STORE or file)")
	muteFlag     = flag.Bool("mute", false, "Start with sound off")
	seedFlag     = flag.Int64("seed", 0, "Fruit placement seed, 0 for time based")
	intervalFlag = flag.Duration("interval", constants.InitialTickInterval, "Initial tick interval")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	reg := status.NewRegistry()

	kv := openStore(resolveBackend(*backendFlag), *storeFlag)
	defer kv.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	core.SetCrashScreen(screen)
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Audio is optional, the game runs silently without a device
	sounds := audio.NewSoundManager(audio.LoadAudioConfig())
	if err := sounds.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
	}
	reg.Bools.Get(status.KeyAudioLive).Store(sounds.IsInitialized())
	defer sounds.Cleanup()

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	app := NewApp(screen, *debugFlag)
	ctx := engine.NewGameContext(engine.Deps{
		Store:     store.NewScores(kv, reg),
		Sounds:    sounds,
		Presenter: app,
		Spawner:   engine.NewSpawner(rand.New(rand.NewSource(seed))),
		Status:    reg,
		Interval:  *intervalFlag,
	})
	if *muteFlag {
		ctx.ToggleSound()
	}
	app.Attach(ctx)

	eventChan := make(chan tcell.Event, 64)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// Nil after Fini
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	})

	app.Run(eventChan)
	ctx.Scheduler().Stop()
	log.Printf("exit: %s", reg.Summary())
}

// resolveBackend picks the flag value, then $VI_SNAKE_STORE, then the file backend
func resolveBackend(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("VI_SNAKE_STORE"); env != "" {
		return env
	}
	return store.BackendFile
}

// openStore opens the requested backend, falling back to memory so scores
// still work for the session
func openStore(backend, path string) store.KV {
	kv, err := store.Open(backend, path)
	if err != nil {
		log.Printf("Score store unavailable: %v (scores will not persist)", err)
		return store.NewMemoryKV()
	}
	return kv
}
