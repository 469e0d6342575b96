package pipeline

import (
	"log"
	"sync"

	"gridbrief/dedup"
	"gridbrief/feeds"
	"gridbrief/normalize"
	"gridbrief/rank"
	"gridbrief/sources"
	"gridbrief/types"
)

// WorkerCount bounds the concurrent normalization workers.
const WorkerCount = 5

// Pipeline wires the feed source, normalizer and whole-set stages together.
type Pipeline struct {
	source     feeds.Source
	normalizer *normalize.Normalizer
	maxPerFeed int
	bloom      *dedup.RedisBloom
}

// Config holds pipeline construction options.
type Config struct {
	Source     feeds.Source
	Normalizer *normalize.Normalizer
	// MaxPerFeed caps entries taken from each feed.
	// Defaults to feeds.DefaultMaxEntries.
	MaxPerFeed int
	// Bloom, when set, suppresses records emitted by earlier runs.
	Bloom *dedup.RedisBloom
}

func New(cfg Config) *Pipeline {
	maxPerFeed := cfg.MaxPerFeed
	if maxPerFeed <= 0 {
		maxPerFeed = feeds.DefaultMaxEntries
	}

	return &Pipeline{
		source:     cfg.Source,
		normalizer: cfg.Normalizer,
		maxPerFeed: maxPerFeed,
		bloom:      cfg.Bloom,
	}
}

// Run fetches every registry source, normalizes all entries, then dedupes and
// ranks the combined set. A fetch failure is logged and skips that source
// only; the other sources still contribute records.
func (p *Pipeline) Run(registry []sources.Source) []types.Record {
	records := p.collect(registry)
	records = dedup.Dedupe(records)
	if p.bloom != nil {
		records = p.filterSeen(records)
	}
	return rank.Rank(records)
}

// collect normalizes entries across a bounded worker pool. Entries are
// independent of each other and the rule tables are read-only, so workers
// share no mutable state; the WaitGroup is the barrier before the whole-set
// stages run.
func (p *Pipeline) collect(registry []sources.Source) []types.Record {
	type job struct {
		index  int
		source string
		entry  types.RawEntry
	}

	var jobs []job
	for _, src := range registry {
		entries, err := p.source.Fetch(src.URL, p.maxPerFeed)
		if err != nil {
			log.Printf("Feed failed: %s %s: %v", src.Name, src.URL, err)
			continue
		}
		for _, e := range entries {
			jobs = append(jobs, job{index: len(jobs), source: src.Name, entry: e})
		}
	}

	// Each worker writes to its own slot, so fetch order is preserved.
	records := make([]types.Record, len(jobs))
	jobChan := make(chan job, len(jobs))

	var wg sync.WaitGroup
	for i := 0; i < WorkerCount; i++ {
		go func() {
			for j := range jobChan {
				records[j.index] = p.normalizer.Normalize(j.source, j.entry)
				wg.Done()
			}
		}()
	}

	for _, j := range jobs {
		wg.Add(1)
		jobChan <- j
	}
	wg.Wait()
	close(jobChan)

	return records
}

// filterSeen drops records the bloom filter remembers from earlier runs and
// registers the survivors. A Redis error keeps the record rather than losing
// it.
func (p *Pipeline) filterSeen(records []types.Record) []types.Record {
	out := make([]types.Record, 0, len(records))
	for _, r := range records {
		seen, err := p.bloom.Seen(r)
		if err != nil {
			log.Printf("Warning: bloom check failed: %v", err)
		} else if seen {
			continue
		}
		if err := p.bloom.Remember(r); err != nil {
			log.Printf("Warning: failed to add record to bloom filter: %v", err)
		}
		out = append(out, r)
	}
	return out
}
