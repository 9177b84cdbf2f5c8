package tabbar

import "time"

// SelectionChange describes one change of the selected tab.
type SelectionChange struct {
	From  int
	To    int
	TabID int
}

// SelectionChangedMsg is sent after the selection changes through input.
type SelectionChangedMsg struct {
	SelectionChange
}

// TapMsg activates the item at Index, as a click on it would.
type TapMsg struct {
	Index int
}

// FrameMsg advances the rotation animation by one frame.
type FrameMsg struct {
	id   int
	Time time.Time
}
