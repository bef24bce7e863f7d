package apub

import "sort"

// Image describes image data attached to an entity: an avatar, an emoji
// glyph, a preview. It is not a complete ActivityPub object; many producers
// omit the type tag and most of the fields.
type Image struct {
	Type      List[string]
	URL       *string
	Summary   *string // alias: name
	MediaType *string
	Sensitive *bool
	Width     *int
	Height    *int

	// Extra preserves unrecognized fields for re-serialisation.
	Extra map[string]any
}

var imageKeys = keySet("type", "url", "summary", "name", "mediaType", "sensitive", "width", "height")

func extractImage(field string, props map[string]any, ds *Diagnostics) (*Image, string) {
	img := &Image{
		Type:      stringList(props, "type", ds),
		URL:       optString(props, "url", ds),
		Summary:   optString(props, "summary", ds),
		MediaType: optString(props, "mediaType", ds),
		Sensitive: optBool(props, "sensitive", ds),
		Width:     optInt(props, "width", ds),
		Height:    optInt(props, "height", ds),
		Extra:     extraFields(props, imageKeys),
	}
	if img.Summary == nil {
		img.Summary = optString(props, "name", ds)
	}
	if img.URL == nil {
		return img, ""
	}
	return img, *img.URL
}

func (i *Image) AsMap() map[string]any {
	m := make(map[string]any)
	if i.Type.IsSet() {
		m["type"] = listAsAny(i.Type, func(s string) any { return s })
	}
	put(m, "url", i.URL)
	put(m, "summary", i.Summary)
	put(m, "mediaType", i.MediaType)
	put(m, "sensitive", i.Sensitive)
	put(m, "width", i.Width)
	put(m, "height", i.Height)
	for k, v := range i.Extra {
		m[k] = v
	}
	return m
}

// imageList extracts a field that references images in any of the observed
// ways: a bare URL string, a single Image object, or a list of either.
func imageList(props map[string]any, field string, ds *Diagnostics) List[Ref[Image]] {
	return refList(props, field, "image or URL", extractImage, ds)
}

// Images materialises a list of image references as Image values; a bare
// URL reference becomes an Image with only URL set.
func Images(l List[Ref[Image]]) []Image {
	out := make([]Image, 0, l.Len())
	for _, r := range l.Values() {
		if img, ok := r.Embedded(); ok {
			out = append(out, *img)
			continue
		}
		if id, ok := r.Reference(); ok {
			url := id
			out = append(out, Image{URL: &url})
		}
	}
	return out
}

// LargestImage returns the image with the largest declared width, falling
// back to height when widths are missing, or any image when neither
// dimension is declared. Reports false when the list holds no images.
func LargestImage(l List[Ref[Image]]) (Image, bool) {
	images := Images(l)
	if len(images) == 0 {
		return Image{}, false
	}
	sort.SliceStable(images, func(i, j int) bool {
		a, b := images[i], images[j]
		if a.Width != nil && b.Width != nil {
			return *a.Width > *b.Width
		}
		if a.Height != nil && b.Height != nil {
			return *a.Height > *b.Height
		}
		return false
	})
	return images[0], true
}
