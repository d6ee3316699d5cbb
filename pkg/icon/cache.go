package icon

import "golang.org/x/image/font"

// Cache holds one rendered pixel buffer per layout group name. It is
// built once before the event loop starts and read-only afterwards;
// the key set is bounded by the number of configured layouts.
type Cache struct {
	icons map[string][]byte
}

// BuildCache renders an icon for every name in the resolved group
// sequence.
func BuildCache(names []string, face font.Face) *Cache {
	icons := make(map[string][]byte, len(names))
	for _, name := range names {
		icons[name] = Render(Abbreviate(name), face)
	}
	return &Cache{icons: icons}
}

// Get returns the buffer rendered for name.
func (c *Cache) Get(name string) ([]byte, bool) {
	pixels, ok := c.icons[name]
	return pixels, ok
}
