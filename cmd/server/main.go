package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"

	"github.com/coder/websocket"

	"github.com/futuroptimist/danielsmith.io-sub004/internal/config"
	"github.com/futuroptimist/danielsmith.io-sub004/internal/floorplan"
	"github.com/futuroptimist/danielsmith.io-sub004/internal/metrics"
	"github.com/futuroptimist/danielsmith.io-sub004/internal/web/views"
	"github.com/futuroptimist/danielsmith.io-sub004/internal/ws"
)

const explorerID = "explorer-1"

func main() {
	configPath := flag.String("config", "", "server config YAML (defaults apply when empty)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	plan, err := floorplan.LoadPlanFromFile(cfg.Plan.GetPlanPath())
	if err != nil {
		log.Fatalf("failed to load plan: %v", err)
	}

	world, err := buildWorld(cfg, plan)
	if err != nil {
		log.Fatalf("failed to build world: %v", err)
	}
	log.Printf("plan %q: %d rooms, %d doorways, %d clearance zones, %d passage zones, %d floors",
		plan.ID, len(plan.Rooms), len(world.Doorways), len(world.ClearanceZones),
		len(world.PassageZones), len(world.NavMeshes))
	if slab := world.LandingSlab; slab != nil {
		log.Printf("landing slab at y=%.2f footprint %+v", slab.TopY, slab.Footprint)
	}

	state := &ExplorerState{
		Entities:  map[string]ExplorerPosition{explorerID: startPosition(plan)},
		Variables: map[string]any{"ui.debug": false, "plan.id": plan.ID},
	}

	m := metrics.New(nil)
	hub := ws.NewHub()
	sequence := NewSequenceGenerator()
	broadcaster := NewBroadcaster(hub, sequence)
	logger := NewLogger()
	engine := NewEngine(world, state, NewMovementValidator(logger), logger, m)
	handlers := NewIntentHandlers(engine, broadcaster, logger)

	mux := http.NewServeMux()

	fileServer := http.FileServer(http.Dir(cfg.Server.GetStaticDir()))
	mux.Handle("/static/", http.StripPrefix("/static/", fileServer))
	mux.Handle("/metrics", metrics.Handler())

	mux.HandleFunc("/stream", func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			return
		}
		clientID := hub.Add(conn)
		m.ConnectedClients.Set(float64(hub.Count()))
		log.Printf("client %s connected", clientID)
		handlers.HandleClientConnected(clientID)

		go func(c *websocket.Conn) {
			defer func() {
				hub.Remove(clientID)
				m.ConnectedClients.Set(float64(hub.Count()))
				_ = c.Close(websocket.StatusNormalClosure, "")
				log.Printf("client %s disconnected", clientID)
			}()
			for {
				_, data, err := c.Read(context.Background())
				if err != nil {
					return
				}
				// Handler errors are already logged and counted;
				// a rejected intent never drops the connection.
				_ = handlers.HandleWebSocketMessage(data)
			}
		}(conn)
	})

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		snapshot := buildSnapshot(world, state)
		if err := views.IndexPage(snapshot).Render(r.Context(), w); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})

	addr := fmt.Sprintf(":%d", cfg.Server.GetPort())
	log.Printf("listening on %s", addr)
	log.Fatal(http.ListenAndServe(addr, mux))
}
