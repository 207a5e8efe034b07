// Command album-biff polls a public shared photo album and, if any new
// photos or videos have been posted since the last run, emails a rendered
// summary of the new content. One invocation is one poll; scheduling is the
// operator's job (cron or similar).
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lysyi3m/album-biff/app/album"
	"github.com/lysyi3m/album-biff/app/cfg"
	"github.com/lysyi3m/album-biff/app/config"
	"github.com/lysyi3m/album-biff/app/delta"
	"github.com/lysyi3m/album-biff/app/email"
	"github.com/lysyi3m/album-biff/app/fetch"
	"github.com/lysyi3m/album-biff/app/html"
	"github.com/lysyi3m/album-biff/app/state"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "album-biff: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	appCfg, err := cfg.Load()
	if err != nil {
		return err
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return nil
	}

	logLevel := slog.LevelInfo
	if appCfg.Debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

	conf, err := config.Load(appCfg.ConfigFile)
	if err != nil {
		return fmt.Errorf("load config %s: %w", appCfg.ConfigFile, err)
	}

	store := state.NewStore(conf.StateFile)
	seen, err := store.Load()
	if err != nil {
		return fmt.Errorf("load state %s: %w", conf.StateFile, err)
	}
	slog.Debug("Loaded state", "file", conf.StateFile, "seen", len(seen))

	ctx := context.Background()
	client := fetch.NewClient(appCfg.UserAgent, time.Duration(appCfg.Timeout)*time.Second)

	assets, err := client.Assets(ctx, conf.AlbumID)
	if err != nil {
		return fmt.Errorf("fetch album %s: %w", conf.AlbumID, err)
	}

	result := delta.Compute(assets, seen)
	for _, guid := range result.Vanished {
		slog.Warn("Previously seen asset has disappeared from the album", "guid", guid)
	}

	if len(result.New) == 0 {
		slog.Info("No new assets", "album", conf.AlbumName, "total", len(assets))
		return nil
	}
	slog.Info("Found new assets", "album", conf.AlbumName, "new", len(result.New), "total", len(assets))

	newGUIDs := make([]album.GUID, 0, len(result.New))
	for _, asset := range result.New {
		newGUIDs = append(newGUIDs, asset.GUID)
	}

	thumbs, err := client.ThumbnailURLs(ctx, conf.AlbumID, newGUIDs)
	if err != nil {
		return fmt.Errorf("resolve thumbnail URLs for %d new assets: %w", len(newGUIDs), err)
	}

	doc, err := html.NewGenerator().Run(conf.AlbumName, conf.AlbumID, result.New, thumbs)
	if err != nil {
		return fmt.Errorf("render HTML: %w", err)
	}

	message, err := email.NewComposer().Run(email.Params{
		AlbumName:     conf.AlbumName,
		AlbumURL:      conf.AlbumID.URL(),
		HTML:          doc,
		Recipients:    conf.Recipients,
		SenderAddress: conf.SenderAddress,
		SenderName:    conf.SenderName,
	})
	if err != nil {
		return fmt.Errorf("compose email: %w", err)
	}

	if appCfg.DryRun {
		slog.Info("Dry run, skipping send and state update",
			"new", len(result.New), "recipients", len(conf.Recipients))
		return nil
	}

	sender := email.NewSendmailSender(conf.SendmailPath)
	if err := sender.Send(ctx, message); err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	slog.Info("Sent email", "new", len(result.New), "recipients", len(conf.Recipients))

	// Persist the full current identifier universe, not just the delta, so
	// vanished identifiers drop out naturally. Written only after a
	// successful send: a crash mid-pipeline means a duplicate notification
	// on the next run, never a lost one.
	allGUIDs := make([]album.GUID, 0, len(assets))
	for _, asset := range assets {
		allGUIDs = append(allGUIDs, asset.GUID)
	}
	if err := store.Save(allGUIDs); err != nil {
		return fmt.Errorf("save state %s: %w", conf.StateFile, err)
	}

	return nil
}
