package renderer

import (
	"sync"

	"github.com/df07/go-scanline-raytracer/pkg/core"
)

// BandTask represents one contiguous band of rows assigned to a worker
type BandTask struct {
	WorkerID int
	Rows     RowRange
}

// BandResult contains the result from rendering a band
type BandResult struct {
	WorkerID int
	Stats    RenderStats
}

// WorkerPool renders an image as one goroutine per row band.
// The scene is shared read-only and each worker writes only the canvas rows of its own band.
type WorkerPool struct {
	raytracer  *Raytracer
	tasks      []BandTask
	numWorkers int
}

// Worker handles a single band with its own sampler
type Worker struct {
	ID        int
	raytracer *Raytracer
	sampler   core.Sampler
}

// NewWorkerPool partitions the raytracer's image into numWorkers bands
func NewWorkerPool(raytracer *Raytracer, numWorkers int) (*WorkerPool, error) {
	ranges, err := PartitionRows(raytracer.sampling.Height, numWorkers)
	if err != nil {
		return nil, err
	}

	tasks := make([]BandTask, len(ranges))
	for i, rows := range ranges {
		tasks[i] = BandTask{WorkerID: i, Rows: rows}
	}

	return &WorkerPool{
		raytracer:  raytracer,
		tasks:      tasks,
		numWorkers: numWorkers,
	}, nil
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// Tasks returns the band assigned to each worker
func (wp *WorkerPool) Tasks() []BandTask {
	return wp.tasks
}

// Render starts every worker, waits for all of them and merges their stats
func (wp *WorkerPool) Render(canvas *Canvas) RenderStats {
	results := make(chan BandResult, len(wp.tasks))
	var wg sync.WaitGroup

	for _, task := range wp.tasks {
		worker := &Worker{
			ID:        task.WorkerID,
			raytracer: wp.raytracer,
			sampler:   core.NewSeededSampler(wp.raytracer.config.Seed + int64(task.WorkerID)),
		}
		wg.Add(1)
		go worker.run(task, canvas, results, &wg)
	}

	wg.Wait()
	close(results)

	var stats RenderStats
	for result := range results {
		stats.Merge(result.Stats)
	}
	return stats
}

// run renders the worker's band and reports its stats
func (w *Worker) run(task BandTask, canvas *Canvas, results chan<- BandResult, wg *sync.WaitGroup) {
	defer wg.Done()

	logger := w.raytracer.logger
	every := w.raytracer.config.ProgressEvery
	total := task.Rows.Len()

	onRow := func(done int) {
		if every > 0 && (done%every == 0 || done == total) {
			logger.Printf("worker %d: %d/%d scanlines\n", w.ID, done, total)
		}
	}

	stats := w.raytracer.RenderRows(canvas, task.Rows, w.sampler, onRow)
	results <- BandResult{WorkerID: w.ID, Stats: stats}
}
