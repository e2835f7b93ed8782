package main

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/a-h/templ"
	"github.com/coder/websocket"
	"github.com/sirupsen/logrus"

	"github.com/dungeonworks/sightline/internal/dungeon"
	"github.com/dungeonworks/sightline/internal/fov"
	"github.com/dungeonworks/sightline/internal/geometry"
	"github.com/dungeonworks/sightline/internal/logger"
	"github.com/dungeonworks/sightline/internal/protocol"
	"github.com/dungeonworks/sightline/internal/web/views"
	"github.com/dungeonworks/sightline/internal/ws"
)

func main() {
	logger.Init()

	gameMap, err := loadMap()
	if err != nil {
		logger.Log.WithError(err).Fatal("failed to load map")
	}

	state := &WorldState{
		Map: gameMap,
		Entities: map[string]geometry.Point{
			seekerID: {X: 5, Y: 7},
			lurkerID: {X: 18, Y: 9},
		},
		Target: geometry.Point{X: 20, Y: 5},
		Config: Config{
			Shape:           fov.CirclePlus,
			Radius:          8,
			CircleDist:      true,
			FallbackClosest: true,
		},
	}
	gameMap.PlaceBlocker(state.Entities[lurkerID])
	gameMap.Track(state.Entities[lurkerID])

	hub := ws.NewHub()
	sequence := NewSequenceGenerator()
	engine := NewSightEngine(state, NewLogger(logger.Log.WithField("component", "engine")))
	broadcaster := NewBroadcaster(hub, sequence, NewLogger(logger.Log.WithField("component", "broadcast")))
	router := NewIntentRouter(engine, broadcaster, NewLogger(logger.Log.WithField("component", "router")))

	mux := http.NewServeMux()
	mux.Handle("/", templ.Handler(views.IndexPage()))
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		serveWS(w, r, hub, engine, sequence, router)
	})

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	logger.Log.WithField("port", port).Info("sightline server listening")
	if err := http.ListenAndServe(":"+port, mux); err != nil {
		logger.Log.WithError(err).Fatal("server exited")
	}
}

// serveWS upgrades a viewer connection, replies with a full snapshot and
// then feeds every incoming intent to the router until the client hangs up.
func serveWS(w http.ResponseWriter, r *http.Request, hub *ws.Hub, engine SightEngine, sequence SequenceGenerator, router *IntentRouter) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
	if err != nil {
		logger.Log.WithError(err).Warn("websocket accept failed")
		return
	}
	session := hub.Add(conn)
	defer func() {
		hub.Remove(conn)
		logger.Log.WithField("session", session).Info("viewer disconnected")
		_ = conn.Close(websocket.StatusNormalClosure, "")
	}()
	logger.Log.WithFields(logrus.Fields{
		"session": session,
		"viewers": hub.Count(),
	}).Info("viewer connected")

	snapshot, err := json.Marshal(protocol.PatchEnvelope{
		Sequence: sequence.Next(),
		Type:     "snapshot",
		Payload:  engine.Snapshot(),
	})
	if err != nil {
		logger.Log.WithError(err).Error("failed to marshal snapshot")
		return
	}
	if err := hub.Send(conn, snapshot); err != nil {
		logger.Log.WithError(err).Warn("failed to send snapshot")
		return
	}

	for {
		_, data, err := conn.Read(r.Context())
		if err != nil {
			return
		}
		router.HandleMessage(session, data)
	}
}

func loadMap() (*dungeon.Map, error) {
	if file := os.Getenv("MAP_FILE"); file != "" {
		return dungeon.LoadBoardFromFile(file)
	}
	return dungeon.DevMap(), nil
}
