// Command seed loads externally managed page content into the store.
//
//	seed -about about.yaml
//
// The About collection is replaced by the YAML document. String values are
// treated as HTML fragments and cleaned of scripts and event handlers.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/elmufurqaan/site/backend/go-services/internal/about"
	"github.com/elmufurqaan/site/backend/go-services/internal/config"
	"github.com/elmufurqaan/site/backend/go-services/internal/database"
	"github.com/elmufurqaan/site/backend/go-services/pkg/logger"
	"github.com/elmufurqaan/site/backend/go-services/pkg/sanitize"
)

func main() {
	aboutPath := flag.String("about", "", "YAML file with the About page content")
	dryRun := flag.Bool("dry-run", false, "parse the input and print it without writing")
	flag.Parse()

	logger.Init(os.Getenv("LOG_LEVEL"))
	if *aboutPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	doc, err := readAbout(*aboutPath)
	if err != nil {
		logger.Fatalf("seed: %v", err)
	}
	if *dryRun {
		out, _ := yaml.Marshal(doc)
		fmt.Print(string(out))
		return
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("seed: load config: %v", err)
	}
	if !cfg.MongoConfigured() {
		logger.Fatalf("seed: MongoDB is not configured; nothing to seed into")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	store, err := database.Open(ctx, cfg.MongoDB)
	if err != nil {
		logger.Fatalf("seed: open store: %v", err)
	}
	defer store.Close(context.Background())

	id, err := seedAbout(ctx, store, doc)
	if err != nil {
		logger.Fatalf("seed: %v", err)
	}
	logger.Infof("seed: about content replaced (id=%s)", id)
}

func readAbout(path string) (map[string]interface{}, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return decodeAbout(f)
}

func decodeAbout(r io.Reader) (map[string]interface{}, error) {
	var doc map[string]interface{}
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("about file is empty")
		}
		return nil, fmt.Errorf("parse about: %w", err)
	}
	if _, ok := doc["sections"].([]interface{}); !ok {
		return nil, errors.New("about file needs a sections list")
	}
	// section bodies are HTML fragments rendered by the site
	return sanitize.Document(doc), nil
}

func seedAbout(ctx context.Context, store database.Store, doc map[string]interface{}) (string, error) {
	return about.NewService(store.Collection(database.AboutCollection)).Replace(ctx, doc)
}
