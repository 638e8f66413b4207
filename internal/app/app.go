package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"oceanpanel/internal/assistant"
	"oceanpanel/internal/config"
	"oceanpanel/internal/dataset"
	"oceanpanel/internal/httpserver"
	"oceanpanel/internal/httpserver/handlers"
	"oceanpanel/internal/service"
	"oceanpanel/internal/web"
)

// App wires the dashboard dependencies.
type App struct {
	server *httpserver.Server
	logger *zap.Logger
}

// New constructs the application graph. The assistant is optional: without an
// API key the chat endpoint answers 503 and everything else works normally.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	data, err := dataset.Load(logger)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}

	renderer, err := web.NewRenderer()
	if err != nil {
		return nil, err
	}

	panel := service.NewPanel(data, logger)
	board := service.NewBoard()

	var asst *assistant.Assistant
	if cfg.Assistant.APIKey != "" {
		completer, err := assistant.NewGeminiCompleter(ctx, cfg.Assistant.APIKey, cfg.Assistant.Model)
		if err != nil {
			return nil, err
		}
		asst = assistant.New(completer, cfg.AssistantTimeout(), logger)
	} else {
		logger.Warn("no assistant API key configured, chat endpoint disabled")
	}

	pages := handlers.NewPages(renderer, panel, asst != nil, logger)

	routes := httpserver.Routes{
		Home:          pages.Home,
		Team:          pages.Team,
		Methodologies: pages.Methodologies,
		Analysis:      pages.Analysis,
		References:    pages.References,
		Chat:          pages.Chat,

		Stations:      handlers.NewStationsHandler(panel),
		StationByID:   handlers.NewStationByIDHandler(panel),
		Matchups:      handlers.NewMatchupsHandler(panel),
		MatchupStats:  handlers.NewMatchupStatsHandler(panel),
		TimeSeries:    handlers.NewTimeSeriesHandler(panel),
		ErrorMap:      handlers.NewErrorMapHandler(panel),
		Argo:          handlers.NewArgoHandler(panel),
		TeamAPI:       handlers.NewTeamHandler(panel),
		Instruments:   handlers.NewInstrumentsHandler(panel),
		ReferencesAPI: handlers.NewReferencesHandler(panel),
		ChatAPI:       handlers.NewChatHandler(asst),
		FeedbackList:  handlers.NewFeedbackListHandler(board),
		FeedbackPost:  handlers.NewFeedbackPostHandler(board),
		Health:        handlers.NewHealthHandler(),

		Static: web.StaticHandler(),
	}

	router := httpserver.NewRouter(routes, cfg.Origins())
	server := httpserver.NewServer(cfg.HTTPAddress(), router, logger)

	return &App{server: server, logger: logger}, nil
}

// Run starts the HTTP server.
func (a *App) Run(ctx context.Context) error {
	return a.server.Run(ctx)
}
