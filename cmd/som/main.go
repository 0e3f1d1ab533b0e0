package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"os"
	"path/filepath"

	"github.com/drakos74/free-som/infra/config"
	"github.com/drakos74/free-som/internal/data"
	"github.com/drakos74/free-som/internal/metrics"
	"github.com/drakos74/free-som/internal/render"
	"github.com/drakos74/free-som/internal/report"
	"github.com/drakos74/free-som/internal/som"
	"github.com/drakos74/free-som/internal/storage"
	json_storage "github.com/drakos74/free-som/internal/storage/file/json"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

// App is the configuration of the som application.
type App struct {
	Data        string     `json:"data"`
	Output      string     `json:"output"`
	Scale       int        `json:"scale"`
	MetricsPort int        `json:"metrics_port"`
	SOM         som.Config `json:"som"`
}

func defaultApp() App {
	return App{
		Data:   "iris_data_012.txt",
		Output: "file-storage",
		Scale:  16,
		SOM:    som.DefaultConfig(),
	}
}

func main() {
	app := defaultApp()
	var err error
	if len(os.Args) > 1 {
		err = config.LoadFile(os.Args[1], &app)
	} else {
		err = config.Load("som", &app)
	}
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Fatal().Err(err).Msg("could not load config")
		}
		log.Warn().Err(err).Msg("no config found, using defaults")
	}

	registry := prometheus.NewRegistry()
	if app.MetricsPort > 0 {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", metrics.Handler(registry))
			if err := http.ListenAndServe(fmt.Sprintf(":%d", app.MetricsPort), mux); err != nil {
				log.Error().Err(err).Int("port", app.MetricsPort).Msg("metrics server stopped")
			}
		}()
	}

	r, err := run(app, registry)
	if err != nil {
		log.Fatal().Err(err).Msg("could not build map")
	}

	fmt.Println("U-Matrix")
	render.MatrixTable(os.Stdout, r.UMatrix, 2)
	fmt.Println("Labels")
	render.LabelTable(os.Stdout, r.Labels)
}

// run trains the map on the configured dataset, stores the report and renders its images.
func run(app App, registerer prometheus.Registerer) (report.Report, error) {
	ds, err := data.Load(app.Data, app.SOM.Dim)
	if err != nil {
		return report.Report{}, err
	}

	m, err := metrics.New(registerer)
	if err != nil {
		return report.Report{}, fmt.Errorf("could not register metrics: %w", err)
	}

	trainer := som.NewTrainer(app.SOM, rand.New(rand.NewSource(app.SOM.Seed))).
		Observe(m.Observe)
	grid, err := trainer.Train(ds)
	if err != nil {
		return report.Report{}, fmt.Errorf("could not train map: %w", err)
	}

	r := report.Build(app.SOM, grid, ds)
	m.Quality(r.Quality)

	if app.Output == "" {
		// nothing to keep, the report is only rendered on the terminal
		return r, r.Store(storage.NewVoidStorage())
	}

	store := json_storage.NewJsonBlob("som", "reports", false).WithPath(app.Output)
	if err := r.Store(store); err != nil {
		return r, err
	}

	if err := save(filepath.Join(store.Dir(), fmt.Sprintf("%s_umatrix.png", r.ID)), func(w io.Writer) error {
		return render.Heatmap(w, r.UMatrix, app.Scale)
	}); err != nil {
		return r, err
	}
	if err := save(filepath.Join(store.Dir(), fmt.Sprintf("%s_labels.png", r.ID)), func(w io.Writer) error {
		return render.LabelImage(w, r.Labels, app.Scale)
	}); err != nil {
		return r, err
	}
	return r, nil
}

func save(file string, write func(w io.Writer) error) error {
	f, err := os.Create(file)
	if err != nil {
		return fmt.Errorf("could not create file '%s': %w", file, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("could not render '%s': %w", file, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("could not close file '%s': %w", file, err)
	}
	log.Info().Str("file", file).Msg("rendered")
	return nil
}
