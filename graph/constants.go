package graph

const (
	// Link weight constants
	defaultLinkWeight   = 1.0 // Weight for flows that carry no value
	linkWeightIncrement = 1.0 // Weight added when a flow is repeated without a value

	// DefaultLinkColor is used when a link has no color of its own
	DefaultLinkColor = "#000000"
)

// defaultPalette is cycled through for nodes without an explicit color
var defaultPalette = []string{
	"#01B8AA",
	"#374649",
	"#FD625E",
	"#F2C80F",
	"#5F6B6D",
	"#8AD4EB",
	"#FE9666",
	"#A66999",
}
