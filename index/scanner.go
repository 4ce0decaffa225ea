package index

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
	"github.com/remeh/sizedwaitgroup"
	"github.com/samber/lo"

	"loco-savior/ds"
	"loco-savior/sawyer"
	"loco-savior/sawyer/sfile"
)

const DefaultWorkers = 4

type (
	// Scanner reads object files in parallel, filling an index as it goes.
	Scanner struct {
		index   *Index
		logger  hclog.Logger
		Workers int
		Mode    Mode
		// OnResult is called once per file, never concurrently.
		OnResult func(Result)
	}

	Summary struct {
		Total  int
		Cached int
		Failed int
	}
)

func NewScanner(index *Index, logger hclog.Logger) *Scanner {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Scanner{
		index:   index,
		logger:  logger,
		Workers: DefaultWorkers,
		Mode:    ModePeek,
	}
}

// List walks dir and returns the object files under it in lexical order.
func List(dir string) ([]string, error) {
	paths := make([]string, 0)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && sawyer.IsObjectFile(path) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, `index.List error walking "%s"`, dir)
	}
	return paths, nil
}

// ScanDir lists dir then scans every object file found.
func (s *Scanner) ScanDir(ctx context.Context, dir string) ([]Result, error) {
	paths, err := List(dir)
	if err != nil {
		return nil, err
	}
	return s.Scan(ctx, paths)
}

// Scan processes paths with at most Workers files in flight. A failing file is reported in its
// Result and does not stop the batch. Cancelling ctx stops new files from being started; the
// results gathered so far are returned along with the context error.
func (s *Scanner) Scan(ctx context.Context, paths []string) ([]Result, error) {
	workers := s.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}
	s.logger.Debug("scanning", "files", len(paths), "workers", workers, "mode", s.Mode.String())

	results := make([]Result, len(paths))
	started := make([]bool, len(paths))
	swg := sizedwaitgroup.New(workers)
	mu := sync.Mutex{}

	var ctxErr error
	for i, path := range paths {
		ctxErr = ctx.Err()
		if ctxErr != nil {
			break
		}
		if err := swg.AddWithContext(ctx); err != nil {
			ctxErr = err
			break
		}
		started[i] = true
		go func(i int, path string) {
			defer swg.Done()
			result := s.scanFile(path)
			if result.Err != nil {
				s.logger.Warn("could not scan file", "path", path, "error", result.Err)
			}

			mu.Lock()
			defer mu.Unlock()
			results[i] = result
			if s.OnResult != nil {
				s.OnResult(result)
			}
		}(i, path)
	}
	swg.Wait()

	results = lo.Filter(results, func(_ Result, i int) bool {
		return started[i]
	})
	if ctxErr != nil {
		return results, errors.Wrap(ctxErr, "index.Scanner.Scan cancelled")
	}
	return results, nil
}

func (s *Scanner) scanFile(path string) Result {
	result := Result{
		Path: path,
	}
	info, err := os.Stat(path)
	if err != nil {
		result.Err = errors.Wrapf(err, `index.Scanner error reading "%s"`, path)
		return result
	}
	if entry, ok := s.index.Get(path, info); ok {
		result.Entry = entry
		result.Cached = true
		return result
	}

	bs, err := os.ReadFile(path)
	if err != nil {
		result.Err = errors.Wrapf(err, `index.Scanner error reading "%s"`, path)
		return result
	}
	headers, err := s.decode(bs)
	if err != nil {
		result.Err = errors.Wrapf(err, `index.Scanner error decoding "%s"`, path)
		return result
	}

	result.Entry = Entry{
		Path:    path,
		Size:    info.Size(),
		ModTime: info.ModTime(),
		Hash:    xxhash.Sum64(bs),
		Headers: *headers,
	}
	s.index.Put(result.Entry)
	return result
}

func (s *Scanner) decode(bs []byte) (*sfile.Headers, error) {
	switch s.Mode {
	case ModePeek:
		return sfile.DecodeHeaders(bs)
	case ModeFull:
		file, err := sfile.Decode(bs)
		if err != nil {
			return nil, err
		}
		return &sfile.Headers{
			Identity: file.Identity,
			Payload:  file.Payload,
			Verified: true,
		}, nil
	}
	return nil, ds.ErrUnreachableCode{Caller: "index.Scanner.decode", Value: s.Mode}
}

func Summarize(results []Result) Summary {
	return Summary{
		Total: len(results),
		Cached: lo.CountBy(results, func(result Result) bool {
			return result.Cached
		}),
		Failed: lo.CountBy(results, func(result Result) bool {
			return result.Err != nil
		}),
	}
}
