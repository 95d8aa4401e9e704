// Package seed loads recall sets and points from YAML files and upserts
// them idempotently, keyed by set name.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/recallkit/recallkit/pkg/services"
)

// File is the top-level YAML document.
type File struct {
	Sets []SetSpec `yaml:"sets"`
}

// SetSpec is one recall set with its points.
type SetSpec struct {
	Name             string      `yaml:"name"`
	Description      string      `yaml:"description"`
	DiscussionPrompt string      `yaml:"discussion_prompt"`
	Points           []PointSpec `yaml:"points"`
}

// PointSpec is one recall point.
type PointSpec struct {
	Content string `yaml:"content"`
	Context string `yaml:"context"`
}

// Load reads and validates a seed file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates seed YAML.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	if len(f.Sets) == 0 {
		return nil, errors.New("seed file contains no sets")
	}
	for i, set := range f.Sets {
		if strings.TrimSpace(set.Name) == "" {
			return nil, fmt.Errorf("set %d: name is required", i)
		}
		for j, p := range set.Points {
			if strings.TrimSpace(p.Content) == "" {
				return nil, fmt.Errorf("set %q point %d: content is required", set.Name, j)
			}
		}
	}
	return &f, nil
}

// Result summarizes one Apply run.
type Result struct {
	SetsCreated   int
	PointsCreated int
	PointsSkipped int
}

// Apply upserts the file's sets and points. Existing sets are matched by
// name; existing points are matched by exact content, so re-applying the
// same file is a no-op.
func Apply(ctx context.Context, svc *services.SetService, f *File, now time.Time) (*Result, error) {
	res := &Result{}

	for _, spec := range f.Sets {
		info, err := svc.GetSetByName(ctx, spec.Name, now)
		if errors.Is(err, services.ErrNotFound) {
			info, err = svc.CreateSet(ctx, services.SetInput{
				Name:             spec.Name,
				Description:      spec.Description,
				DiscussionPrompt: spec.DiscussionPrompt,
			})
			if err != nil {
				return nil, fmt.Errorf("failed to create set %q: %w", spec.Name, err)
			}
			res.SetsCreated++
		} else if err != nil {
			return nil, fmt.Errorf("failed to look up set %q: %w", spec.Name, err)
		}

		existing, err := svc.ListPoints(ctx, info.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list points of %q: %w", spec.Name, err)
		}
		have := make(map[string]struct{}, len(existing))
		for _, p := range existing {
			have[p.Content] = struct{}{}
		}

		for _, p := range spec.Points {
			content := strings.TrimSpace(p.Content)
			if _, ok := have[content]; ok {
				res.PointsSkipped++
				continue
			}
			if _, err := svc.CreatePoint(ctx, info.ID, services.PointInput{
				Content: content,
				Context: p.Context,
			}, now); err != nil {
				return nil, fmt.Errorf("failed to create point in %q: %w", spec.Name, err)
			}
			res.PointsCreated++
		}
	}

	slog.Info("seed applied",
		"sets_created", res.SetsCreated,
		"points_created", res.PointsCreated,
		"points_skipped", res.PointsSkipped)
	return res, nil
}
