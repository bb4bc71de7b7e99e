package main

import (
	"fmt"
	"log"

	"deptsite/internal/config"
	"deptsite/internal/database"
	"deptsite/internal/server"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	if cfg.IsDev() {
		lr := server.NewLiveReload()
		go func() {
			addr := fmt.Sprintf(":%s", cfg.LiveReloadPort())
			log.Printf("live reload listening on %s", addr)
			if err := lr.Run(addr); err != nil {
				log.Printf("live reload error: %v", err)
			}
		}()
	}

	r := server.NewRouter(cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
