// Package seeder loads portfolio projects from a JSON export, such as a
// mongoexport --jsonArray dump of the old projects collection.
package seeder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/liammahoney/site-api/internal/domain"
	"github.com/liammahoney/site-api/internal/service/project"
)

type projectStore interface {
	List(ctx context.Context) ([]domain.Project, error)
	Create(ctx context.Context, input project.CreateInput) (*domain.Project, error)
}

// Result holds the outcome of one import run.
type Result struct {
	Inserted int
	Skipped  int
	Errors   int
	Duration time.Duration
}

// record is one exported project. Source ids are not kept; "_id" may be a
// plain string or an extended-JSON {"$oid": "..."} object and is only logged.
type record struct {
	ID           json.RawMessage `json:"_id"`
	Title        string          `json:"title"`
	Link         string          `json:"link"`
	Repo         string          `json:"repo"`
	Description  string          `json:"description"`
	Technologies []string        `json:"technologies"`
}

func (r record) sourceID() string {
	var s string
	if json.Unmarshal(r.ID, &s) == nil {
		return s
	}
	var oid struct {
		OID string `json:"$oid"`
	}
	if json.Unmarshal(r.ID, &oid) == nil {
		return oid.OID
	}
	return ""
}

// Importer creates projects that do not exist yet. A project exists when a
// stored project has the same title, ignoring case and surrounding spaces.
type Importer struct {
	log    *slog.Logger
	store  projectStore
	dryRun bool
}

// NewImporter creates an Importer. With dryRun set, records are decoded and
// validated but nothing is written.
func NewImporter(log *slog.Logger, store projectStore, dryRun bool) *Importer {
	return &Importer{log: log.With("component", "seeder"), store: store, dryRun: dryRun}
}

// Run imports the JSON array read from r. Invalid records are counted and
// skipped; only read, decode and store failures abort the run.
func (im *Importer) Run(ctx context.Context, r io.Reader) (Result, error) {
	start := time.Now()
	var res Result

	existing, err := im.store.List(ctx)
	if err != nil {
		return res, fmt.Errorf("seeder: list projects: %w", err)
	}
	seen := make(map[string]bool, len(existing))
	for _, p := range existing {
		seen[titleKey(p.Title)] = true
	}

	dec := json.NewDecoder(r)
	tok, err := dec.Token()
	if err != nil {
		return res, fmt.Errorf("seeder: read: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return res, errors.New("seeder: input must be a JSON array")
	}

	for i := 0; dec.More(); i++ {
		var rec record
		if err := dec.Decode(&rec); err != nil {
			return res, fmt.Errorf("seeder: decode record %d: %w", i, err)
		}

		key := titleKey(rec.Title)
		if key != "" && seen[key] {
			res.Skipped++
			continue
		}

		input := project.CreateInput{
			Title:        rec.Title,
			Link:         rec.Link,
			Repo:         rec.Repo,
			Description:  rec.Description,
			Technologies: rec.Technologies,
		}
		if err := input.Validate(); err != nil {
			res.Errors++
			im.log.WarnContext(ctx, "invalid project skipped",
				slog.Int("index", i),
				slog.String("source_id", rec.sourceID()),
				slog.String("error", err.Error()))
			continue
		}

		seen[key] = true
		if im.dryRun {
			res.Inserted++
			continue
		}

		if _, err := im.store.Create(ctx, input); err != nil {
			return res, fmt.Errorf("seeder: create %q: %w", rec.Title, err)
		}
		res.Inserted++
	}

	res.Duration = time.Since(start)
	im.log.InfoContext(ctx, "import finished",
		slog.Int("inserted", res.Inserted),
		slog.Int("skipped", res.Skipped),
		slog.Int("errors", res.Errors),
		slog.Bool("dry_run", im.dryRun),
		slog.Duration("duration", res.Duration))

	return res, nil
}

func titleKey(title string) string {
	return strings.ToLower(domain.CompactText(title))
}
