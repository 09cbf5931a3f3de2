package encode

type EncodeOption func(*EncState)

func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// LegacyOrder emits all blobs before all frames, matching the legacy tool's
// output, instead of preserving the original interleaving.
func LegacyOrder() EncodeOption {
	return func(es *EncState) { es.legacyOrder = true }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
