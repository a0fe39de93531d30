package converter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bcparks/scrape-cleanup/document"
	"github.com/bcparks/scrape-cleanup/formatter"
	"github.com/bcparks/scrape-cleanup/internal/logging"
	"github.com/bcparks/scrape-cleanup/mapping"
)

// Converter runs Reader -> Mapper -> Writer for one snapshot
type Converter struct {
	name        string
	kind        Kind
	source      string
	destination string
	mapper      *mapping.Mapper
	policy      Policy
	builder     *formatter.DocumentBuilder
	log         logging.Logger
}

// New creates a converter from opts.
func New(opts Options) (*Converter, error) {
	if opts.Source == "" || opts.Destination == "" {
		return nil, errors.New("converter: source and destination are required")
	}
	policy, err := ParsePolicy(string(opts.Policy))
	if err != nil {
		return nil, err
	}

	mapperOpts := []mapping.Option{mapping.WithSlugs(opts.Slugs)}
	if opts.Identifier != "" {
		mapperOpts = append(mapperOpts, mapping.WithIdentifier(opts.Identifier))
	}
	m, err := mapping.NewMapper(opts.Table, mapperOpts...)
	if err != nil {
		return nil, fmt.Errorf("converter %s: %w", opts.Name, err)
	}

	name := opts.Name
	if name == "" {
		name = string(opts.Kind)
	}
	log := opts.Logger
	if log == nil {
		log = logging.NewNop()
	}

	return &Converter{
		name:        name,
		kind:        opts.Kind,
		source:      opts.Source,
		destination: opts.Destination,
		mapper:      m,
		policy:      policy,
		builder:     formatter.NewDocumentBuilder(formatter.WithIndent(opts.Indent)),
		log: log.With(
			logging.String("converter", name),
			logging.String("source", opts.Source),
			logging.String("destination", opts.Destination),
		),
	}, nil
}

// Name returns the converter name.
func (c *Converter) Name() string { return c.name }

// Kind returns the converter kind.
func (c *Converter) Kind() Kind { return c.kind }

// Run converts the source file and writes the destination file.
func (c *Converter) Run(ctx context.Context) Result {
	start := time.Now()
	res := c.run(ctx)
	res.Duration = time.Since(start)
	c.report(res)
	return res
}

func (c *Converter) run(ctx context.Context) Result {
	res := Result{Name: c.name, Source: c.source, Destination: c.destination}
	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}

	src, err := document.ReadSource(c.source)
	if err != nil {
		res.Err = err
		return res
	}
	res.Read = len(src.Items)

	dst, skipped, err := c.Convert(src)
	res.Skipped = skipped
	if err != nil {
		res.Err = err
		return res
	}

	if err := document.WriteDestination(c.destination, dst, c.builder); err != nil {
		res.Err = err
		return res
	}
	res.Written = len(dst.Items)
	return res
}

// Convert maps every item of src in order. Under PolicySkip it returns the
// number of dropped records alongside the document.
func (c *Converter) Convert(src *document.Source) (*document.Destination, int, error) {
	dst := document.NewDestination(len(src.Items))
	skipped := 0
	for _, item := range src.Items {
		rec, err := c.mapper.Map(item)
		if err != nil {
			if c.policy == PolicySkip && errors.Is(err, mapping.ErrMapping) {
				skipped++
				c.log.Warn("skipping record", logging.Int("item", item.Index()), logging.Error(err))
				continue
			}
			return nil, skipped, err
		}
		dst.Append(rec)
	}
	return dst, skipped, nil
}

func (c *Converter) report(res Result) {
	if res.Err != nil {
		c.log.Error("converter failed", logging.Error(res.Err), logging.Duration("duration", res.Duration))
		return
	}
	c.log.Info("converter finished",
		logging.Int("items", res.Written),
		logging.Int("skipped", res.Skipped),
		logging.Duration("duration", res.Duration),
	)
}
