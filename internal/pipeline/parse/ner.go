package parse

import (
	prose "github.com/jdkato/prose/v2"

	"github.com/jaynikam2005/ai-resume-job-matcher/pkg/logger_i"
)

// Entity is a named entity found in the text.
type Entity struct {
	Text  string
	Label string
}

// Tagger is the optional NER model behind skill augmentation. Implementations
// are loaded once at startup and shared read-only between requests.
type Tagger interface {
	Entities(text string) ([]Entity, error)
}

type proseTagger struct {
	logger *logger_i.Logger
}

// NewProseTagger returns a Tagger backed by the prose statistical model, or
// nil when the model cannot be initialized. A nil Tagger just disables
// augmentation.
func NewProseTagger() Tagger {
	logger := logger_i.NewLogger("NER")

	// prose loads its model data on first document creation; probe once here
	// so a broken install surfaces at startup instead of per request.
	if _, err := prose.NewDocument("probe", prose.WithSegmentation(false)); err != nil {
		logger.Warn("NER model unavailable, skill augmentation disabled", "error", err)
		return nil
	}
	logger.Info("NER tagger initialized")
	return &proseTagger{logger: logger}
}

func (t *proseTagger) Entities(text string) ([]Entity, error) {
	doc, err := prose.NewDocument(text, prose.WithSegmentation(false))
	if err != nil {
		t.logger.Debug("NER tagging failed", "error", err)
		return nil, err
	}

	var entities []Entity
	for _, ent := range doc.Entities() {
		entities = append(entities, Entity{Text: ent.Text, Label: ent.Label})
	}
	return entities, nil
}
