// Package wire provides dependency injection for the resmaker application.
// It creates singleton services with lazy initialization.
package wire

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	cliadapter "github.com/example/resmaker/internal/adapters/cli"
	"github.com/example/resmaker/internal/adapters/deepl"
	"github.com/example/resmaker/internal/adapters/filesystem"
	"github.com/example/resmaker/internal/adapters/sqlite"
	"github.com/example/resmaker/internal/app"
	"github.com/example/resmaker/internal/config"
	"github.com/example/resmaker/internal/core/sqlgen"
	"github.com/example/resmaker/internal/db"
	"github.com/example/resmaker/internal/ports/primary"
	"github.com/example/resmaker/internal/ports/secondary"
)

var (
	cfg                *config.Config
	resourceService    primary.ResourceService
	translationService primary.TranslationService
	descriptionStore   secondary.DescriptionStore
	once               sync.Once

	generationRepo secondary.GenerationRepository
	historyErr     error
	historyOnce    sync.Once
)

// Config returns the project configuration of the working directory.
func Config() *config.Config {
	once.Do(initServices)
	return cfg
}

// ResourceService returns the singleton ResourceService instance.
func ResourceService() primary.ResourceService {
	once.Do(initServices)
	return resourceService
}

// TranslationService returns the singleton TranslationService instance.
func TranslationService() primary.TranslationService {
	once.Do(initServices)
	return translationService
}

// HistoryService returns a HistoryService backed by the history database.
func HistoryService() primary.HistoryService {
	once.Do(initServices)
	repo, err := historyRepository()
	if err != nil {
		log.Fatalf("failed to initialize history database: %v", err)
	}
	return app.NewHistoryService(repo)
}

// DescriptionStore returns the singleton DescriptionStore instance.
func DescriptionStore() secondary.DescriptionStore {
	once.Do(initServices)
	return descriptionStore
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	dir, err := os.Getwd()
	if err != nil {
		log.Fatalf("failed to get working directory: %v", err)
	}

	cfg, err = config.LoadOrDefault(dir)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	generator := sqlgen.NewGenerator(cfg.GeneratorOptions())
	descriptionStore = filesystem.NewDescriptionStore()

	// A broken ledger must not block script generation.
	repo, err := historyRepository()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: history disabled: %v\n", err)
		repo = nil
	}
	resourceService = app.NewResourceService(generator, filesystem.NewBundleWriter(), repo)

	var translator secondary.Translator
	if key := config.DeepLAuthKey(); key != "" {
		t, err := deepl.NewTranslator(deepl.Config{
			AuthKey:  key,
			Endpoint: cfg.DeepL.Endpoint,
		})
		if err != nil {
			log.Fatalf("failed to initialize translator: %v", err)
		}
		translator = t
	}
	translationService = app.NewTranslationService(translator, cfg.DeepL.TargetLang)
}

// historyRepository opens the history database once. cfg must be loaded.
func historyRepository() (secondary.GenerationRepository, error) {
	historyOnce.Do(func() {
		path, err := historyPath(cfg)
		if err != nil {
			historyErr = err
			return
		}
		database, err := db.Open(path)
		if err != nil {
			historyErr = err
			return
		}
		generationRepo = sqlite.NewGenerationRepository(database)
	})
	return generationRepo, historyErr
}

// HistoryPath returns the configured history database path or the default one.
func HistoryPath() (string, error) {
	return historyPath(Config())
}

func historyPath(c *config.Config) (string, error) {
	if c.HistoryPath != "" {
		return c.HistoryPath, nil
	}
	return db.GetDBPath()
}

// ResourceAdapterWithOutput returns a new ResourceAdapter writing to the given output.
func ResourceAdapterWithOutput(out io.Writer) *cliadapter.ResourceAdapter {
	return cliadapter.NewResourceAdapter(ResourceService(), out)
}

// HistoryAdapterWithOutput returns a new HistoryAdapter writing to the given output.
func HistoryAdapterWithOutput(out io.Writer) *cliadapter.HistoryAdapter {
	return cliadapter.NewHistoryAdapter(HistoryService(), out)
}

// TranslationAdapterWithOutput returns a new TranslationAdapter writing to the given output.
func TranslationAdapterWithOutput(out io.Writer) *cliadapter.TranslationAdapter {
	return cliadapter.NewTranslationAdapter(TranslationService(), out)
}
