package gradient

import (
	"context"
	"errors"
	"runtime"
	"sync"
)

func (r *Ripper) findFiles(ctx context.Context, files []string) (<-chan string, <-chan error, error) {
	out := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		for _, file := range files {
			select {
			case out <- file:
			case <-ctx.Done():
				errc <- errors.New("rip cancelled")
				return
			}
		}
	}()
	return out, errc, nil
}

func (r *Ripper) fileWorker(ctx context.Context, opt Options, in <-chan string) (<-chan error, error) {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for file := range in {
			opt := opt
			opt.Name = ""

			g, err := r.Rip(opt, file)
			if err != nil {
				errc <- err
				return
			}

			output := DestinationFilename(file, opt.Format)
			if err := g.WriteFile(output); err != nil {
				errc <- err
				return
			}
			r.logger.Printf("Ripped \"%s\" to \"%s\"\n", file, output)
		}
	}()
	return errc, nil
}

func waitForPipeline(errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			return err
		}
	}
	return nil
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// RipAll rips a gradient from each file, writing each one next to its input
// with the extension of the chosen format
func (r *Ripper) RipAll(ctx context.Context, opt Options, files []string) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	var errcList []<-chan error

	in, errc, err := r.findFiles(ctx, files)
	if err != nil {
		return err
	}
	errcList = append(errcList, errc)

	workers := runtime.NumCPU()
	if workers > len(files) {
		workers = len(files)
	}

	for i := 0; i < workers; i++ {
		errc, err := r.fileWorker(ctx, opt, in)
		if err != nil {
			return err
		}
		errcList = append(errcList, errc)
	}

	return waitForPipeline(errcList...)
}
