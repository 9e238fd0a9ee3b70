package renderer

// RenderStats contains statistics about a completed render
type RenderStats struct {
	TotalPixels  int   // Number of pixels rendered
	TotalSamples int   // Number of camera samples taken
	RaysTraced   int64 // Rays traced, including secondary and shadow rays
}

// merge folds another stats value into this one
func (s *RenderStats) merge(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.TotalSamples += other.TotalSamples
	s.RaysTraced += other.RaysTraced
}
