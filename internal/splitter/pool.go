package splitter

import "context"

// workerPool bounds concurrent page processing with a semaphore.
type workerPool struct {
	semaphore chan struct{}
}

func newWorkerPool(maxWorkers int) *workerPool {
	if maxWorkers <= 0 {
		maxWorkers = 1
	}
	return &workerPool{semaphore: make(chan struct{}, maxWorkers)}
}

// acquire takes a worker slot, blocking while all workers are busy.
func (wp *workerPool) acquire(ctx context.Context) error {
	select {
	case wp.semaphore <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// release frees a worker slot.
func (wp *workerPool) release() {
	<-wp.semaphore
}

// parallelProcess runs processFn over items on a bounded worker pool and
// returns results in item order. The first error aborts the run.
func parallelProcess[T any, R any](
	ctx context.Context,
	items []T,
	maxWorkers int,
	processFn func(context.Context, int, T) (R, error),
) ([]R, error) {
	if len(items) == 0 {
		return []R{}, nil
	}

	wp := newWorkerPool(maxWorkers)
	results := make([]R, len(items))

	type result struct {
		index int
		value R
		err   error
	}
	resultChan := make(chan result, len(items))

	spawned := 0
	var spawnErr error
	for i, item := range items {
		if err := wp.acquire(ctx); err != nil {
			spawnErr = err
			break
		}
		spawned++

		go func(idx int, itm T) {
			defer wp.release()

			select {
			case <-ctx.Done():
				var zero R
				resultChan <- result{index: idx, value: zero, err: ctx.Err()}
				return
			default:
			}

			val, err := processFn(ctx, idx, itm)
			resultChan <- result{index: idx, value: val, err: err}
		}(i, item)
	}

	firstError := spawnErr
	for range spawned {
		res := <-resultChan
		if res.err != nil && firstError == nil {
			firstError = res.err
		}
		results[res.index] = res.value
	}
	close(resultChan)

	if firstError != nil {
		return nil, firstError
	}

	return results, nil
}
