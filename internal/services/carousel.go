package services

// Carousel is the image gallery state of a car detail page.
type Carousel struct {
	Images []string
	Index  int
}

// NewCarousel clamps index into the gallery, wrapping in both directions.
func NewCarousel(images []string, index int) Carousel {
	return Carousel{Images: images, Index: wrapIndex(index, len(images))}
}

func (c Carousel) Current() string {
	if len(c.Images) == 0 {
		return ""
	}
	return c.Images[c.Index]
}

func (c Carousel) Next() int {
	return wrapIndex(c.Index+1, len(c.Images))
}

func (c Carousel) Prev() int {
	return wrapIndex(c.Index-1, len(c.Images))
}

// HasControls is false when there is nothing to rotate through.
func (c Carousel) HasControls() bool {
	return len(c.Images) > 1
}

func wrapIndex(i, n int) int {
	if n == 0 {
		return 0
	}
	return ((i % n) + n) % n
}
