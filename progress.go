package redline

// Progress is one coarse checkpoint of a comparison run. Percent runs from 0
// to 100; CurrentPage and TotalPages are set only for page-scoped work and
// are zero otherwise.
type Progress struct {
	Percent     float64
	Message     string
	CurrentPage int
	TotalPages  int
}

// ProgressFunc receives progress checkpoints during a run. It is called
// synchronously from the comparing goroutine and never concurrently with
// itself; implementations should return quickly. A nil func disables
// reporting.
type ProgressFunc func(Progress)
