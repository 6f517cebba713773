// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdfinfo

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/sassoftware/viya-pdfinfo/logger"
	"golang.org/x/sync/semaphore"
)

// Processor defines the contract for parsing pdfinfo reports in bulk.
type Processor interface {
	ParseAll(ctx context.Context, reports []string) ([]*Metadata, error)
	ParseReader(ctx context.Context, r io.Reader) (*Metadata, error)
}

// processor bounds how many reports are parsed at once and
// delegates the line work to a Parser.
type processor struct {
	cfg    *Config
	sem    *semaphore.Weighted
	parser *Parser
}

// NewProcessor validates the config and creates a new processor.
func NewProcessor(cfg *Config) *processor {
	parser := NewParser(cfg)

	parser.debug(fmt.Sprintf("Processor initialized: parsing_mode=%v, max_concurrent_reports=%d, max_report_bytes=%d",
		cfg.ParsingMode, cfg.MaxConcurrentReports, cfg.MaxReportBytes), true)

	return &processor{
		cfg:    cfg,
		sem:    semaphore.NewWeighted(int64(cfg.MaxConcurrentReports)),
		parser: parser,
	}
}

type reportResult struct {
	index int
	md    *Metadata
	err   error
}

// ParseAll parses every report and returns the records in input order.
// In Strict mode the error of the lowest failing report is returned.
func (p *processor) ParseAll(ctx context.Context, reports []string) ([]*Metadata, error) {
	p.parser.debug(fmt.Sprintf("Starting batch parse: reports=%d", len(reports)), true)

	results := make(chan reportResult, len(reports))
	var wg sync.WaitGroup

	var acquireErr error
	for i, report := range reports {
		if err := p.acquireSlot(ctx); err != nil {
			p.parser.debug(fmt.Sprintf("Failed to acquire slot: index=%d err=%v", i, err), true)
			acquireErr = err
			break
		}
		wg.Add(1)
		go func(i int, report string) {
			defer wg.Done()
			defer p.sem.Release(1)
			md, err := p.parser.Parse(report)
			results <- reportResult{index: i, md: md, err: err}
		}(i, report)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	out, err := p.collectInOrder(results, len(reports))
	if acquireErr != nil {
		return nil, acquireErr
	}
	if err != nil {
		return nil, err
	}

	p.parser.debug(fmt.Sprintf("Batch parse completed: reports=%d", len(reports)), true)
	return out, nil
}

func (p *processor) collectInOrder(results <-chan reportResult, n int) ([]*Metadata, error) {
	out := make([]*Metadata, n)
	var firstErr error
	firstErrIndex := n
	for res := range results {
		if res.err != nil {
			p.parser.debug(fmt.Sprintf("Report failed: index=%d err=%v", res.index, res.err), true)
			if res.index < firstErrIndex {
				firstErrIndex = res.index
				firstErr = fmt.Errorf("report %d: %w", res.index, res.err)
			}
			continue
		}
		out[res.index] = res.md
	}
	return out, firstErr
}

// ParseReader reads one report from r, honouring Config.MaxReportBytes, and parses it.
func (p *processor) ParseReader(ctx context.Context, r io.Reader) (*Metadata, error) {
	if err := p.acquireSlot(ctx); err != nil {
		return nil, err
	}
	defer p.sem.Release(1)

	text, err := p.readReport(r)
	if err != nil {
		logger.Error("failed to read report", "err", err)
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return p.parser.Parse(text)
}

func (p *processor) readReport(r io.Reader) (string, error) {
	limit := p.cfg.MaxReportBytes
	if limit <= 0 {
		b, err := io.ReadAll(r)
		if err != nil {
			return "", fmt.Errorf("read report: %w", err)
		}
		return string(b), nil
	}

	b, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return "", fmt.Errorf("read report: %w", err)
	}
	if int64(len(b)) > limit {
		return "", fmt.Errorf("%w: limit is %d bytes", ErrReportTooLarge, limit)
	}
	return string(b), nil
}

func (p *processor) acquireSlot(ctx context.Context) error {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("acquire slot: %w", err)
	}
	return nil
}
