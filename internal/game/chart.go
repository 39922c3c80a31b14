package game

type Chart struct {
	Title      string
	Difficulty Difficulty
	Section    string // Raw hit object section, used to identify the chart
	Sliders    []*Slider

	activeSliders    []*Slider
	startSliderIndex int
	endSliderIndex   int
}

func (c *Chart) Active() ([]*Slider, int, int) {
	return c.activeSliders, c.startSliderIndex, c.endSliderIndex
}

func (c *Chart) SetActive(start int, end int) {
	c.activeSliders = c.Sliders[start:end]
	c.startSliderIndex = start
	c.endSliderIndex = end
}

// NestedCount returns the number of judgeable objects across the chart
func (c *Chart) NestedCount() int {
	count := 0
	for _, s := range c.Sliders {
		count += len(s.Ticks) + len(s.Repeats) + 1
	}
	return count
}
