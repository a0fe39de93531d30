package converter

import (
	"fmt"

	"github.com/bcparks/scrape-cleanup/config"
	"github.com/bcparks/scrape-cleanup/internal/logging"
	"github.com/bcparks/scrape-cleanup/mapping"
	"github.com/bcparks/scrape-cleanup/slugs"
)

// BuildAll creates one converter per job in cfg, in file order. Only jobs
// named in only are built when only is non-empty. A job that cannot be
// built is a configuration error and fails the whole call.
func BuildAll(cfg *config.AppConfig, table *slugs.Table, log logging.Logger, only ...string) ([]*Converter, error) {
	selected := make(map[string]bool, len(only))
	for _, name := range only {
		if _, ok := cfg.Find(name); !ok {
			return nil, fmt.Errorf("unknown converter %q", name)
		}
		selected[name] = true
	}

	var convs []*Converter
	for _, job := range cfg.Converters {
		if len(selected) > 0 && !selected[job.Name] {
			continue
		}
		c, err := FromJob(cfg, job, table, log)
		if err != nil {
			return nil, err
		}
		convs = append(convs, c)
	}
	return convs, nil
}

// FromJob creates the converter described by one config job.
func FromJob(cfg *config.AppConfig, job config.ConverterJob, table *slugs.Table, log logging.Logger) (*Converter, error) {
	opts := Options{
		Name:        job.Name,
		Kind:        Kind(job.Kind),
		Source:      cfg.SourcePath(job),
		Destination: cfg.DestinationPath(job),
		Identifier:  job.Identifier,
		Slugs:       table,
		Policy:      Policy(job.OnMissingField),
		Indent:      cfg.Indent,
		Logger:      log,
	}

	if opts.Kind == KindCustom {
		opts.Table = make(mapping.Table, 0, len(job.Fields))
		for _, f := range job.Fields {
			opts.Table = append(opts.Table, mapping.Field{Source: f.Source, Target: f.Target, Required: f.Required})
		}
	} else {
		def, ok := Lookup(opts.Kind)
		if !ok {
			return nil, fmt.Errorf("converter %q: unknown kind %q", job.Name, job.Kind)
		}
		opts.Table = def.Table
	}
	return New(opts)
}
