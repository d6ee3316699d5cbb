package indicator

// IconSource hands out the pre-rendered pixel buffer for a layout
// group name.
type IconSource interface {
	Get(name string) ([]byte, bool)
}

// Surface is the drawable the indicator blits icons onto.
type Surface interface {
	Blit(pixels []byte) error
}
