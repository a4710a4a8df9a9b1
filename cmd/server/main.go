package main

import (
	"errors"
	"log"
	"net/http"
	"time"

	"taleforge/internal/config"
	"taleforge/internal/game"
	"taleforge/internal/random"
	"taleforge/internal/service"
	"taleforge/internal/session"
	"taleforge/internal/story"
	"taleforge/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	catalog, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		log.Fatal(err)
	}

	seed, err := random.Resolve(cfg.Seed)
	if err != nil {
		log.Fatal(err)
	}
	dice := game.NewDice(seed)
	log.Printf("dice seed %d", seed)

	srv := &web.Server{Service: &service.Service{
		Engine:  &game.Engine{Catalog: catalog, Dice: dice},
		Story:   &story.Engine{Narrator: &story.CannedNarrator{Catalog: catalog, Dice: dice}},
		Games:   session.NewMemoryStore[game.Session](cfg.MaxSessions, cfg.SessionTTL),
		Stories: session.NewMemoryStore[story.Session](cfg.MaxSessions, cfg.SessionTTL),
	}}

	httpSrv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	log.Printf("listening on %s", cfg.Addr)
	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

func loadCatalog(path string) (*game.Catalog, error) {
	if path == "" {
		return game.DefaultCatalog()
	}
	log.Printf("loading catalog from %s", path)
	return game.LoadCatalog(path)
}
