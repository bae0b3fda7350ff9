package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/cristianadrielbraun/certgen/internal/cache"
	"github.com/cristianadrielbraun/certgen/internal/certificate"
	"github.com/cristianadrielbraun/certgen/internal/config"
	"github.com/cristianadrielbraun/certgen/internal/handlers"
	"github.com/cristianadrielbraun/certgen/internal/logger"
	"github.com/cristianadrielbraun/certgen/internal/render"
	"github.com/cristianadrielbraun/certgen/internal/store/gorm"
	"github.com/cristianadrielbraun/certgen/internal/store/memory"
	"github.com/cristianadrielbraun/certgen/internal/token"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "certgen",
		Usage: "Issue, validate and render certificates",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "env-file",
				Value:   ".env",
				Usage:   "optional env file read before the environment",
				EnvVars: []string{"CERTGEN_ENV_FILE"},
			},
		},
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Start the HTTP server",
				Action: serve,
			},
			{
				Name:  "issue",
				Usage: "Issue a certificate and print its validation URL",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Required: true},
					&cli.StringFlag{Name: "course", Required: true},
					&cli.StringFlag{Name: "date", Required: true},
				},
				Action: issue,
			},
			{
				Name:   "list",
				Usage:  "List certificates, newest first",
				Action: list,
			},
			{
				Name:      "delete",
				Usage:     "Permanently delete a certificate",
				ArgsUsage: "<certificate id>",
				Action:    remove,
			},
			{
				Name:      "render",
				Usage:     "Render a certificate image to a file",
				ArgsUsage: "<certificate id>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "out", Usage: "output file, defaults to <id>.jpg"},
				},
				Action: renderFile,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Stack().Err(err).Msg("certgen failed")
	}
}

func loadConfig(ctx *cli.Context) (*config.Config, error) {
	cfg, err := config.LoadFile(ctx.String("env-file"))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	logger.Setup(cfg.LogLevel, !cfg.IsProduction())
	return cfg, nil
}

func openStore(cfg *config.Config) (certificate.Store, func() error, error) {
	if cfg.DatabaseURL == "memory" {
		log.Warn().Msg("using in-memory store, certificates are lost on restart")
		return memory.NewStore(), func() error { return nil }, nil
	}

	store, err := gorm.Open(cfg.DatabaseURL)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}
	return store, store.Close, nil
}

func newRenderer(cfg *config.Config) (*render.Renderer, error) {
	layout := render.DefaultLayout

	fg, err := render.ParseHexColor(cfg.QRForeground)
	if err != nil {
		return nil, errors.Wrap(err, "QR_FOREGROUND")
	}
	bg, err := render.ParseHexColor(cfg.QRBackground)
	if err != nil {
		return nil, errors.Wrap(err, "QR_BACKGROUND")
	}
	layout.QRForeground = fg
	layout.QRBackground = bg

	return render.NewRenderer(cfg.TemplatePath, cfg.FontPath, render.WithLayout(layout)), nil
}

func newCache(cfg *config.Config) cache.ImageCache {
	if cfg.CacheRedisURL == "" {
		return cache.Noop{}
	}

	rc, err := cache.NewRedis(cfg.CacheRedisURL, cfg.CacheTTL)
	if err != nil {
		log.Warn().Err(err).Msg("image cache disabled")
		return cache.Noop{}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rc.Ping(ctx); err != nil {
		log.Warn().Err(err).Msg("redis unreachable, image cache disabled")
		return cache.Noop{}
	}

	log.Info().Msg("redis image cache connected")
	return rc
}

func serve(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	store, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	renderer, err := newRenderer(cfg)
	if err != nil {
		return err
	}

	if cfg.TokenSecret == "" {
		log.Warn().Msg("TOKEN_SECRET is empty, delete links expire on restart")
	}
	if cfg.AdminPassword == "" {
		log.Warn().Msg("ADMIN_PASSWORD is empty, admin pages are disabled")
	}

	if cfg.CacheRedisURL != "" && cfg.SiteURL == "" {
		log.Warn().Msg("SITE_URL is empty, rendered images are not cached")
	}

	h := handlers.New(store, renderer, token.NewSigner([]byte(cfg.TokenSecret), cfg.TokenMaxAge),
		handlers.WithIssuer(certificate.NewIssuer(store)),
		handlers.WithSiteURL(cfg.SiteURL),
		handlers.WithCache(newCache(cfg)),
		handlers.WithDonateURL(cfg.DonateURL),
	)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(logger.Middleware())
	r.Use(gin.Recovery())

	h.Register(r, handlers.RequireAdmin(cfg.AdminUser, cfg.AdminPassword))

	if cfg.MetricsEnabled {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("certgen listening")
	if err := r.Run(addr); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func issue(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	store, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	cert, err := certificate.NewIssuer(store).Issue(ctx.Context, certificate.Submission{
		Name:   ctx.String("name"),
		Course: ctx.String("course"),
		Date:   ctx.String("date"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	fmt.Fprintf(ctx.App.Writer, "%s\t%s/certificates/%s\n", cert.ID, cfg.SiteURL, cert.ID)
	return nil
}

func list(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	store, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	certs, err := store.List(ctx.Context)
	if err != nil {
		return errors.WithStack(err)
	}

	tw := tabwriter.NewWriter(ctx.App.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCOURSE\tDATE")
	for _, c := range certs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", c.ID, c.Name, c.Course, c.Date)
	}
	return errors.WithStack(tw.Flush())
}

func remove(ctx *cli.Context) error {
	id := ctx.Args().First()
	if id == "" {
		return cli.Exit("missing certificate id", 2)
	}

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	store, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	cert, err := store.FindByID(ctx.Context, id)
	if err != nil {
		return errors.WithStack(err)
	}
	if err := store.Delete(ctx.Context, cert.Key); err != nil {
		return errors.WithStack(err)
	}

	if err := newCache(cfg).Delete(ctx.Context, cert.ID); err != nil {
		log.Warn().Err(err).Msg("could not evict image cache")
	}

	fmt.Fprintf(ctx.App.Writer, "deleted %s\n", cert.ID)
	return nil
}

func renderFile(ctx *cli.Context) error {
	id := ctx.Args().First()
	if id == "" {
		return cli.Exit("missing certificate id", 2)
	}

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	if cfg.SiteURL == "" {
		return cli.Exit("SITE_URL is required to render outside of a request", 2)
	}

	store, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	cert, err := store.FindByID(ctx.Context, id)
	if err != nil {
		return errors.WithStack(err)
	}

	renderer, err := newRenderer(cfg)
	if err != nil {
		return err
	}

	out := ctx.String("out")
	if out == "" {
		out = cert.ID + ".jpg"
	}

	err = writeImage(renderer, out, render.Fields{
		Name:          cert.Name,
		Course:        cert.Course,
		Date:          cert.Date,
		ID:            cert.ID,
		ValidationURL: cfg.SiteURL + "/certificates/" + cert.ID,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(ctx.App.Writer, "wrote %s\n", out)
	return nil
}

// writeImage renders f and writes the JPEG to out. Nothing is written when
// rendering fails.
func writeImage(renderer handlers.ImageRenderer, out string, f render.Fields) error {
	var buf bytes.Buffer
	if err := renderer.Render(&buf, f); err != nil {
		return errors.WithStack(err)
	}

	if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
