package knowledgestore

import (
	"context"
	"sync/atomic"

	"portfolio-api/internal/domain/knowledge"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Provider hands out the process-wide knowledge snapshot, loading it on first
// use. Concurrent first callers share a single load.
type Provider struct {
	path   string
	logger *zap.Logger

	group singleflight.Group
	doc   atomic.Pointer[knowledge.Document]
}

func NewProvider(path string, logger *zap.Logger) *Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Provider{path: path, logger: logger}
}

// NewStaticProvider serves doc as-is without touching the filesystem.
func NewStaticProvider(doc *knowledge.Document) *Provider {
	p := &Provider{logger: zap.NewNop()}
	p.doc.Store(doc)
	return p
}

func (p *Provider) Path() string {
	return p.path
}

func (p *Provider) Snapshot(ctx context.Context) (*knowledge.Document, error) {
	if doc := p.doc.Load(); doc != nil {
		return doc, nil
	}

	ch := p.group.DoChan("load", func() (any, error) {
		if doc := p.doc.Load(); doc != nil {
			return doc, nil
		}
		created, err := Initialize(p.path)
		if err != nil {
			return nil, err
		}
		if created {
			p.logger.Info("knowledge document initialized with defaults", zap.String("path", p.path))
		}
		doc, err := Load(p.path)
		if err != nil {
			return nil, err
		}
		p.doc.Store(doc)
		p.logger.Info("knowledge document loaded",
			zap.String("path", p.path),
			zap.Int("skill_categories", len(doc.Skills)),
			zap.Int("projects", len(doc.Projects)),
			zap.Int("faqs", len(doc.FAQs)),
		)
		return doc, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			p.logger.Error("knowledge document load failed", zap.String("path", p.path), zap.Error(res.Err))
			return nil, res.Err
		}
		return res.Val.(*knowledge.Document), nil
	}
}
