package models

// PlaceholderImage is substituted whenever a catalog record carries no media.
const PlaceholderImage = "/images/placeholder.jpg"

const (
	DefaultListLimit = 50
	MaxListLimit     = 100
)

// CatalogFilter carries the query parameters shared by the public list
// endpoints. Zero values mean "no constraint".
type CatalogFilter struct {
	Q           string
	Type        string
	Activity    string
	Category    string
	Destination string
	Popular     *bool
	Limit       int
}

// ClampLimit applies the default and the hard cap.
func (f *CatalogFilter) ClampLimit() {
	if f.Limit <= 0 {
		f.Limit = DefaultListLimit
	}
	if f.Limit > MaxListLimit {
		f.Limit = MaxListLimit
	}
}

// normalizeImages reconciles the singular image field with the images list:
// the list wins when present, otherwise the singular value seeds it, and the
// first element is promoted as the primary display image. An empty record
// gets the placeholder so list pages never render a broken tile.
func normalizeImages(image string, images []string) (string, []string) {
	if len(images) == 0 {
		if image != "" {
			images = []string{image}
		} else {
			images = []string{PlaceholderImage}
		}
	}
	return images[0], images
}
