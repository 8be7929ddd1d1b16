package main

import (
	"context"
	"expvar"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"rhythm-lobby/internal/app/lobby"
	"rhythm-lobby/internal/app/player"
	"rhythm-lobby/internal/config"
	"rhythm-lobby/internal/logging"
	"rhythm-lobby/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

var (
	roomCreateTotal   = expvar.NewInt("room_create_total")
	joinOkTotal       = expvar.NewInt("join_ok_total")
	joinRejectedTotal = expvar.NewInt("join_rejected_total")
	joinErrorTotal    = expvar.NewInt("join_error_total")
)

func main() {
	logCfg, err := config.LoadLog()
	if err != nil {
		panic(err)
	}
	logging.Init(logCfg)
	cfg, err := config.LoadServer()
	if err != nil {
		log.Fatal().Err(err).Msg("load server config failed")
	}

	st, err := store.New(cfg.PostgresDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("store init failed")
	}
	if err := st.Ping(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("db ping failed")
	}

	players := player.NewService(st)
	rooms := lobby.NewService(st, players, cfg.RoomCapacity)

	r := newRouter(st, cfg, players, rooms)
	logRoutes(r)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	log.Info().Str("addr", cfg.HTTPAddr).Msg("http listening")
	log.Fatal().Err(server.ListenAndServe()).Msg("server stopped")
}

func logRoutes(r chi.Router) {
	type routeDef struct {
		Method string
		Path   string
	}
	routes := make([]routeDef, 0, 16)
	err := chi.Walk(r, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		routes = append(routes, routeDef{Method: method, Path: route})
		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("walk routes failed")
		return
	}
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path == routes[j].Path {
			return routes[i].Method < routes[j].Method
		}
		return routes[i].Path < routes[j].Path
	})
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Registered routes (%d):\n", len(routes)))
	for _, rt := range routes {
		b.WriteString(fmt.Sprintf("  %-6s %s\n", rt.Method, rt.Path))
	}
	fmt.Print(b.String())
}
