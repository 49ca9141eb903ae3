package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels     int           // Total number of pixels rendered
	TotalSamples    int           // Total number of camera samples taken
	SamplesPerPixel int           // Samples taken for every pixel
	Workers         int           // Number of workers that took part
	Duration        time.Duration // Wall-clock time of the render
}

// Merge folds the statistics of one band into the running total
func (s *RenderStats) Merge(band RenderStats) {
	s.TotalPixels += band.TotalPixels
	s.TotalSamples += band.TotalSamples
	s.Workers += band.Workers
}

// AverageSamples returns the mean number of samples per pixel
func (s RenderStats) AverageSamples() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.TotalSamples) / float64(s.TotalPixels)
}
