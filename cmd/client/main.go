package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"media-uploader/internal/domain/dto"
	"media-uploader/internal/infrastructure/cloud"
	"media-uploader/internal/infrastructure/storage"
	"media-uploader/internal/pkg/config"
	"media-uploader/internal/pkg/logger"
	"media-uploader/internal/usecases"
	"media-uploader/pkg/helper"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// pipeline is built lazily so that --help works without a configured
// environment.
type pipeline struct {
	cfg   *config.Config
	creds config.Credentials
	media usecases.MediaService
	log   *zap.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rootCmd := newRootCommand()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "media-cli: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	p := &pipeline{}
	cmd := &cobra.Command{
		Use:   "media-cli",
		Short: "Run the media ingestion pipeline from the command line",
		Long: `media-cli uploads local files through the same strategy chain as the API server
(video fast path, unsigned, signed, local fallback), deletes remote assets and builds delivery URLs.
Configuration is read from the environment and an optional .env file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return p.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if p.log != nil {
				_ = p.log.Sync()
			}
		},
	}
	cmd.AddCommand(
		newUploadCmd(p),
		newDeleteCmd(p),
		newURLCmd(p),
		newCredentialsCmd(p),
	)
	return cmd
}

func (p *pipeline) init() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.Server.LogLevel, cfg.Server.Environment)
	if err != nil {
		return err
	}
	if err := config.EnsureDirs(cfg); err != nil {
		return err
	}

	p.cfg = cfg
	p.log = log
	p.creds = config.ResolveCredentials(cfg.Cloudinary, log)
	p.media = usecases.NewMediaService(
		cloud.NewClient(p.creds, cfg.Provider, log),
		storage.NewLocalStorage(cfg.Media.Root, cfg.Media.DecodeDimensions, log),
		log,
	)
	return nil
}

func newUploadCmd(p *pipeline) *cobra.Command {
	var entityType, entityID, mediaType, name string
	cmd := &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a local file and print the resulting record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			et, err := helper.ParseEntityType(entityType)
			if err != nil {
				return err
			}
			id, err := helper.ParseEntityID(entityID)
			if err != nil {
				return err
			}
			mt, err := helper.ParseResourceType(mediaType)
			if err != nil {
				return err
			}

			media, err := p.media.Upload(cmd.Context(), &dto.UploadInput{
				SourcePath:       args[0],
				EntityType:       et,
				EntityID:         id,
				OriginalFilename: name,
				MediaType:        mt,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd, media)
		},
	}
	cmd.Flags().StringVarP(&entityType, "entity-type", "t", "general", "Owning entity type: pet, breed, provider or general")
	cmd.Flags().StringVarP(&entityID, "entity-id", "i", "", "Owning entity id")
	cmd.Flags().StringVarP(&mediaType, "media-type", "m", "", "Force image, video or auto instead of classifying by extension")
	cmd.Flags().StringVar(&name, "name", "", "Original filename to record (defaults to the file's base name)")
	return cmd
}

func newDeleteCmd(p *pipeline) *cobra.Command {
	var resourceType string
	cmd := &cobra.Command{
		Use:   "delete <public_id>",
		Short: "Delete a remote asset (best effort)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := helper.ParseResourceType(resourceType)
			if err != nil {
				return err
			}
			deleted := p.media.Delete(cmd.Context(), args[0], rt)
			return printJSON(cmd, dto.DeleteResponse{PublicID: args[0], Deleted: deleted})
		},
	}
	cmd.Flags().StringVarP(&resourceType, "resource-type", "r", "image", "image or video")
	return cmd
}

func newURLCmd(p *pipeline) *cobra.Command {
	var resourceType, transformation, format string
	cmd := &cobra.Command{
		Use:   "url <public_id>",
		Short: "Print the delivery URL of an asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := helper.ParseResourceType(resourceType)
			if err != nil {
				return err
			}
			url := p.media.BuildURL(args[0], dto.URLOptions{ResourceType: rt, Transformation: transformation, Format: format})
			return printJSON(cmd, dto.URLResponse{URL: url})
		},
	}
	cmd.Flags().StringVarP(&resourceType, "resource-type", "r", "", "image or video")
	cmd.Flags().StringVar(&transformation, "transformation", "", "Transformation segment, e.g. w_300,h_200,c_fill")
	cmd.Flags().StringVar(&format, "format", "", "Delivery format, e.g. webp")
	return cmd
}

func newCredentialsCmd(p *pipeline) *cobra.Command {
	return &cobra.Command{
		Use:   "credentials",
		Short: "Show where the provider credentials were resolved from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(cmd, map[string]interface{}{
				"source":        p.creds.Source,
				"account":       p.creds.AccountID,
				"upload_preset": p.creds.UploadPreset,
				"has_secret":    p.creds.APISecret != "",
			})
		},
	}
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
