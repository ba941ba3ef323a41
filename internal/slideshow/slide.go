package slideshow

// Slide is one immutable entry of the carousel sequence.
type Slide struct {
	ID          int    `json:"id" yaml:"id"`
	ImageRef    string `json:"image_ref" yaml:"image"`
	Title       string `json:"title" yaml:"title"`
	Subtitle    string `json:"subtitle" yaml:"subtitle"`
	Description string `json:"description" yaml:"description"`
}

// Snapshot is a point-in-time copy of controller state for view layers.
type Snapshot struct {
	CurrentIndex int     `json:"current_index"`
	IsPlaying    bool    `json:"is_playing"`
	Progress     float64 `json:"progress"` // 0..100, percent of dwell elapsed
}
