package registry

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/team-brain/toolregistry/internal/domain/catalog"
	"github.com/team-brain/toolregistry/internal/domain/discovery"
)

// Options carries the engine configuration the registry needs. The defaults
// (scan roots in particular) are decided by the surrounding application and
// handed in here, never baked into the engine.
type Options struct {
	ScanPaths     []string
	GitHubBaseURL string
	TrackUsage    bool
}

// Registry is the tool catalog: a durable store plus a write-through
// in-memory cache keyed by tool name. Every read path hits only the cache;
// every write path updates both. If the store is mutated out-of-band the
// cache can diverge until the next process start, a known limitation.
type Registry struct {
	mu        sync.RWMutex
	tools     map[string]*catalog.Tool
	store     *Store
	opts      Options
	scanner   *discovery.Scanner
	extractor *discovery.Extractor
	logger    *zap.Logger
	now       func() time.Time
}

// New builds a Registry and warms the cache from the store. Corrupt rows are
// skipped by the store; a missing database is an empty catalog.
func New(store *Store, opts Options, logger *zap.Logger) (*Registry, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("registry")

	tools, err := store.LoadTools()
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	cache := make(map[string]*catalog.Tool, len(tools))
	for _, tool := range tools {
		cache[tool.Name] = tool
	}
	logger.Debug("catalog loaded", zap.Int("tools", len(cache)))

	return &Registry{
		tools:     cache,
		store:     store,
		opts:      opts,
		scanner:   discovery.NewScanner(logger),
		extractor: discovery.NewExtractor(opts.GitHubBaseURL, logger),
		logger:    logger,
		now:       time.Now,
	}, nil
}

// Scan discovers tools under the given roots (or the configured scan paths
// when roots is empty) and upserts each one. Re-scanning is idempotent: a
// tool seen again is fully replaced, never duplicated. A single failing
// directory is skipped; it never aborts the rest of the scan.
func (r *Registry) Scan(roots []string) (int, error) {
	if len(roots) == 0 {
		roots = r.opts.ScanPaths
	}

	discovered := 0
	for _, candidate := range r.scanner.Scan(roots) {
		tool, report := r.extractor.Extract(candidate.Dir, candidate.Script)
		if tool == nil {
			r.logger.Warn("extraction failed, skipping directory", zap.String("dir", candidate.Dir))
			continue
		}
		if len(report.Degraded) > 0 {
			r.logger.Debug("extraction degraded",
				zap.String("tool", tool.Name),
				zap.Strings("sources", report.Degraded))
		}

		if err := r.upsert(tool); err != nil {
			return discovered, fmt.Errorf("persist tool %q: %w", tool.Name, err)
		}
		discovered++
	}

	r.logger.Info("scan complete", zap.Int("discovered", discovered))
	return discovered, nil
}

// upsert writes the tool to the store and the cache synchronously.
func (r *Registry) upsert(tool *catalog.Tool) error {
	if err := r.store.SaveTool(tool); err != nil {
		return err
	}
	r.mu.Lock()
	r.tools[tool.Name] = tool
	r.mu.Unlock()
	return nil
}

// TrackUsage appends a usage event for the named tool. Gated by the
// track_usage option; disabled tracking is a silent no-op. The name is not
// required to exist in the catalog.
func (r *Registry) TrackUsage(toolName, action, agent string, success bool, notes string) error {
	if !r.opts.TrackUsage {
		return nil
	}
	if agent == "" {
		agent = "unknown"
	}
	return r.store.AppendUsage(catalog.UsageEvent{
		ToolName:  toolName,
		Action:    action,
		Agent:     agent,
		Timestamp: r.now(),
		Success:   success,
		Notes:     notes,
	})
}
