package session

import "github.com/objectwire/objectwire/internal/core"

// State is the interactive shell's memory between commands: the most
// recently synthesized event and the most recent feed listing. It is only
// ever mutated by successful scrape/RSS operations and read by post, copy
// and numeric-selection commands. Not persisted.
type State struct {
	LastEvent     *core.PredictionEvent
	LastFeedItems []core.FeedItem
}

func NewState() *State {
	return &State{}
}

func (s *State) SetEvent(ev core.PredictionEvent) {
	s.LastEvent = &ev
}

func (s *State) SetFeedItems(items []core.FeedItem) {
	s.LastFeedItems = items
}
