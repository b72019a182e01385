package core

const (
	AppName       = "ObjectWire"
	AppVersion    = "0.1.0"
	AgentDomain   = "objectwire-agent"
	UserAgent     = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 Chrome/120.0.0.0 Safari/537.36"
	AcceptHeader  = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"
)

// ScrapedPage is the normalized output of the extractor. Content is capped
// at 5000 characters and guaranteed to hold at least 100, or the page was
// rejected instead of constructed.
type ScrapedPage struct {
	Title   string
	Content string
	URL     string
	Domain  string
}

// FeedItem is one entry of a parsed RSS/Atom feed. Missing fields are empty
// strings, never absent.
type FeedItem struct {
	Title     string `json:"title" xml:"title"`
	Link      string `json:"link" xml:"link"`
	Summary   string `json:"summary" xml:"summary"`
	Published string `json:"published" xml:"published"`
}

type Feed struct {
	Title string     `json:"title" xml:"title"`
	Link  string     `json:"link" xml:"link"`
	Items []FeedItem `json:"items" xml:"items>item"`
}

// PredictionEvent is the structured output of the pipeline. Every synthesis
// path populates every field; no partially filled event is ever surfaced.
type PredictionEvent struct {
	Title          string   `json:"title" xml:"title"`
	Description    string   `json:"description" xml:"description"`
	Category       string   `json:"category" xml:"category"`
	Options        []string `json:"options" xml:"options>option"`
	Confidence     float64  `json:"confidence" xml:"confidence"`
	SourceURL      string   `json:"source_url" xml:"source_url"`
	ResolutionDate string   `json:"resolution_date" xml:"resolution_date"`
}
