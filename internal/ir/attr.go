package ir

// Attr is an attribute attached to a declaration via Attributed.
type Attr interface {
	isAttr()
}

// PlatformVersion pairs a platform name with the minimum version a symbol is
// available from. Pairs keep the order they were constructed in; the renderer
// never reorders them.
type PlatformVersion struct {
	Platform string
	Version  string
}

// Available renders as `@available(<platform> <version>, ..., *)`.
type Available struct {
	Platforms []PlatformVersion
}

// Deprecated renders as `@available(*, deprecated, ...)`. Message and Renamed
// segments are emitted only when non-empty.
type Deprecated struct {
	Message string
	Renamed string
}

func (*Available) isAttr()  {}
func (*Deprecated) isAttr() {}
