package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/jonboulle/clockwork"

	"github.com/Osisis/discord-feedback-helper/internal/config"
	"github.com/Osisis/discord-feedback-helper/internal/discord"
	"github.com/Osisis/discord-feedback-helper/internal/feedback"
	"github.com/Osisis/discord-feedback-helper/internal/logging"
	"github.com/Osisis/discord-feedback-helper/internal/metrics"
	"github.com/Osisis/discord-feedback-helper/internal/server"
	"github.com/Osisis/discord-feedback-helper/internal/version"
	"github.com/Osisis/discord-feedback-helper/internal/votes"
)

const startupTimeout = 30 * time.Second

func setupConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func runGracefulShutdown(srv *server.Server, session *discordgo.Session) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, cleaning up...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}

		if err := session.Close(); err != nil {
			slog.Error("Gateway close error", "error", err)
		}

		close(done)
	}()

	return done
}

func main() {
	clock := clockwork.NewRealClock()

	cfg := setupConfig()

	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	info := version.Get()
	slog.Info("Bot starting", "env", cfg.AppEnv, "version", info.Version, "commit", info.Commit)
	metrics.BuildInfo.WithLabelValues(info.Version, info.Commit, info.BuildTime, info.GoVersion).Set(1)

	session, err := discord.NewSession(cfg.DiscordToken)
	if err != nil {
		slog.Error("Failed to create gateway session", "error", err)
		os.Exit(1)
	}

	store := votes.NewMemoryStore()
	renderer := votes.NewRenderer(store)
	gateway := discord.NewGateway(session)
	router := feedback.NewRouter(gateway, store, renderer, clock, cfg.GuildID, cfg.SuggestionsChannelID, cfg.StaffRoleIDs)
	discord.BindInteractions(session, router)

	if err := session.Open(); err != nil {
		slog.Error("Failed to connect to gateway", "error", err)
		os.Exit(1)
	}
	slog.Info("Logged in", "user_id", session.State.User.ID, "username", session.State.User.Username)

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	if err := discord.RegisterCommands(session, cfg.AppID, cfg.GuildID); err != nil {
		slog.Warn("Deploy commands failed (ok if not needed)", "error", err)
	}

	if err := gateway.EnsureTextChannel(ctx, cfg.FormChannelID); err != nil {
		slog.Error("Form channel misconfigured", "channel_id", cfg.FormChannelID, "error", err)
		_ = session.Close()
		os.Exit(1)
	}

	reconciler := feedback.NewReconciler(gateway, cfg.FormChannelID)
	if err := reconciler.Reconcile(ctx); err != nil {
		slog.Error("Failed to post panel", "error", err)
	}

	srv := server.NewServer(cfg, gateway, clock)
	done := runGracefulShutdown(srv, session)

	slog.Info("Ops server starting", "port", cfg.Port)
	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-done
}
