package services

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
)

// ClassifierStore loads the pre-trained resume match classifier artifact from
// disk at process start. The artifact is a load-time dependency: it is held in
// memory but never invoked on the evaluate path.
type ClassifierStore interface {
	// Load reads the artifact from disk. When the artifact is missing and a
	// fetch URL is configured, it is downloaded once and the load retried;
	// failure after the retry is fatal to the process (the caller decides).
	Load() error
	Artifact() []byte
}

type classifierStore struct {
	path     string
	url      string
	client   *resty.Client
	artifact []byte
}

func NewClassifierStore(path, url string) ClassifierStore {
	client := resty.New().
		SetTimeout(60 * time.Second).
		SetRetryCount(1)

	return &classifierStore{
		path:   path,
		url:    url,
		client: client,
	}
}

func (c *classifierStore) Load() error {
	data, err := os.ReadFile(c.path)
	if errors.Is(err, os.ErrNotExist) && c.url != "" {
		log.Printf("📥 Classifier artifact missing at %s, fetching from %s", c.path, c.url)
		if fetchErr := c.fetch(); fetchErr != nil {
			return fmt.Errorf("failed to fetch classifier artifact: %w", fetchErr)
		}
		data, err = os.ReadFile(c.path)
	}
	if err != nil {
		return fmt.Errorf("failed to load classifier artifact: %w", err)
	}
	if len(data) == 0 {
		return fmt.Errorf("classifier artifact at %s is empty", c.path)
	}

	c.artifact = data
	log.Printf("✅ Classifier artifact loaded (%d bytes)", len(data))
	return nil
}

func (c *classifierStore) Artifact() []byte {
	return c.artifact
}

func (c *classifierStore) fetch() error {
	resp, err := c.client.R().
		SetOutput(c.path).
		Get(c.url)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("artifact download returned status %d", resp.StatusCode())
	}
	return nil
}
