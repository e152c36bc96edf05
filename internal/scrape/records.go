package scrape

import "rollcall/internal/markup"

// ImageSet holds the extracted image URL and its best-effort high-resolution
// variant. FullHD equals Source when no known low-resolution tokens were
// present to rewrite.
type ImageSet struct {
	Source string `json:"source,omitempty"`
	FullHD string `json:"full_hd,omitempty"`
}

// NewImageSet builds an ImageSet from an extracted URL.
func NewImageSet(url string) ImageSet {
	return ImageSet{
		Source: url,
		FullHD: markup.UpgradeThumbnail(url),
	}
}

// Series is the extracted series-page record. Title is mandatory; a series
// without one is never returned.
type Series struct {
	ID          string   `json:"id,omitempty"`
	Slug        string   `json:"slug,omitempty"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Poster      ImageSet `json:"poster,omitempty"`
}

// NumberSource records which extraction path produced an episode number.
type NumberSource int

const (
	// NumberNone means no episode number could be recovered.
	NumberNone NumberSource = iota
	// NumberFromTitle means the number came from the episode title marker.
	NumberFromTitle
	// NumberFromLabel means the number came from the accessibility label.
	NumberFromLabel
)

func (s NumberSource) String() string {
	switch s {
	case NumberFromTitle:
		return "title"
	case NumberFromLabel:
		return "label"
	default:
		return "none"
	}
}

// Episode is one extracted episode card. A card that yields no ID is dropped
// before it ever becomes an Episode.
type Episode struct {
	ID           string       `json:"id"`
	Slug         string       `json:"slug,omitempty"`
	Title        string       `json:"title,omitempty"`
	Description  string       `json:"description,omitempty"`
	NumberRaw    string       `json:"number_raw,omitempty"`
	Number       int          `json:"number,omitempty"`
	HasNumber    bool         `json:"has_number"`
	NumberSource NumberSource `json:"-"`
	Season       int          `json:"season,omitempty"`
	HasSeason    bool         `json:"-"`
	Sequence     int          `json:"sequence"`
	Thumbnail    ImageSet     `json:"thumbnail,omitempty"`
	DurationMS   int64        `json:"duration_ms,omitempty"`
}

// SearchResult is one extracted search card. ID and title are both mandatory;
// candidates missing either are dropped.
type SearchResult struct {
	ID     string   `json:"id"`
	Slug   string   `json:"slug,omitempty"`
	Title  string   `json:"title"`
	Poster ImageSet `json:"poster,omitempty"`
}
