package services

import (
	"fmt"
	"sync"

	"github.com/jdkato/prose/v2"
)

// Entity is a text span tagged with a semantic category by the annotator.
type Entity struct {
	Text  string
	Label string
}

// Annotator tags tokens and spans with part-of-speech and named-entity
// categories. It is treated as a black box by the pipeline; implementations
// must be safe for reuse after construction.
type Annotator interface {
	Entities(text string) ([]Entity, error)
	Nouns(text string) ([]string, error)
}

var (
	annotatorOnce     sync.Once
	annotatorInstance Annotator
)

// DefaultAnnotator returns the process-wide annotator, constructing it on
// first use. The instance is read-only after initialization and is meant to be
// injected into the scoring pipeline rather than referenced globally.
func DefaultAnnotator() Annotator {
	annotatorOnce.Do(func() {
		annotatorInstance = &proseAnnotator{}
	})
	return annotatorInstance
}

type proseAnnotator struct{}

func (a *proseAnnotator) Entities(text string) ([]Entity, error) {
	if text == "" {
		return nil, nil
	}

	doc, err := prose.NewDocument(text, prose.WithSegmentation(false))
	if err != nil {
		return nil, fmt.Errorf("failed to annotate text: %w", err)
	}

	var entities []Entity
	for _, ent := range doc.Entities() {
		entities = append(entities, Entity{Text: ent.Text, Label: ent.Label})
	}

	return entities, nil
}

func (a *proseAnnotator) Nouns(text string) ([]string, error) {
	if text == "" {
		return nil, nil
	}

	doc, err := prose.NewDocument(text, prose.WithSegmentation(false))
	if err != nil {
		return nil, fmt.Errorf("failed to annotate text: %w", err)
	}

	var nouns []string
	for _, tok := range doc.Tokens() {
		// NN and NNS are the common-noun tags; proper nouns are excluded.
		if tok.Tag == "NN" || tok.Tag == "NNS" {
			nouns = append(nouns, tok.Text)
		}
	}

	return nouns, nil
}
