package tiler

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/tussle/tiler/palette"
)

var errCancelled = errors.New("tiler: walk cancelled")

var imageExts = map[string]struct{}{
	".bmp":  {},
	".gif":  {},
	".jpeg": {},
	".jpg":  {},
	".pbm":  {},
	".pgm":  {},
	".png":  {},
	".ppm":  {},
}

// Converter turns every image below a directory into a CSV map written
// alongside it.
type Converter struct {
	Palette *palette.Palette
	Logger  logrus.FieldLogger
	Workers int
}

func findImages(ctx context.Context, base string) (<-chan string, <-chan error) {
	out := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		errc <- filepath.Walk(base, func(file string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			// Ignore any hidden files or directories
			if info.Name()[0] == '.' && file != base {
				if info.Mode().IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if !info.Mode().IsRegular() {
				return nil
			}

			if _, ok := imageExts[strings.ToLower(filepath.Ext(file))]; !ok {
				return nil
			}

			select {
			case out <- file:
			case <-ctx.Done():
				return errCancelled
			}

			return nil
		})
	}()
	return out, errc
}

func (c *Converter) convertFile(file string) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	e := New(Orthogonal, c.Palette, c.Logger.WithField("file", file))
	if err := e.ImportImage(f); err != nil {
		return err
	}

	return writeFile(strings.TrimSuffix(file, filepath.Ext(file))+".csv", e.ExportCSV)
}

// writeFile creates file and fills it with write. The file is removed if
// anything fails.
func writeFile(file string, write func(io.Writer) error) error {
	out, err := os.Create(file)
	if err != nil {
		return err
	}
	if err := write(out); err != nil {
		out.Close()
		os.Remove(file)
		return err
	}
	if err := out.Close(); err != nil {
		os.Remove(file)
		return err
	}
	return nil
}

func (c *Converter) worker(ctx context.Context, cancel context.CancelFunc, in <-chan string) <-chan error {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for file := range in {
			if err := c.convertFile(file); err != nil {
				cancel()
				errc <- err
				// Drain so the walk can finish
				for range in {
				}
				return
			}
		}
	}()
	return errc
}

// waitForPipeline drains every stage and returns the first error, ignoring
// errCancelled if a stage reported the cause.
func waitForPipeline(errs ...<-chan error) error {
	var (
		mu    sync.Mutex
		wg    sync.WaitGroup
		first error
	)
	wg.Add(len(errs))
	for _, c := range errs {
		go func(c <-chan error) {
			defer wg.Done()
			for err := range c {
				mu.Lock()
				if err != nil && (first == nil || first == errCancelled) {
					first = err
				}
				mu.Unlock()
			}
		}(c)
	}
	wg.Wait()
	return first
}

// Convert walks dir converting each image it finds. It stops at the first
// error.
func (c *Converter) Convert(dir string) error {
	base, err := filepath.Abs(dir)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	files, errc := findImages(ctx, base)
	errcList := []<-chan error{errc}

	workers := c.Workers
	if workers < 1 {
		workers = 1
	}
	for i := 0; i < workers; i++ {
		errcList = append(errcList, c.worker(ctx, cancel, files))
	}

	return waitForPipeline(errcList...)
}
