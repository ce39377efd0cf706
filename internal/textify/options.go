package textify

// Default option values used when an Options field is left zero.
const (
	DefaultULMarker    = "-"
	DefaultOLMarker    = "1"
	DefaultTableColumn = "|"
	DefaultTableRow    = "-"
	DefaultTableCorner = "|"
	DefaultMaxDepth    = 512
)

// Options configures a Writer. Zero values fall back to the defaults above.
type Options struct {
	// LinkBase prefixes relative link targets when the document carries no
	// <base href>.
	LinkBase string

	// ULMarker prefixes every item of an unordered list.
	ULMarker string
	// OLMarker seeds the marker sequence of ordered lists: "1" counts
	// numerically, "a" or "A" count alphabetically.
	OLMarker string

	// TableColumn, TableRow and TableCorner are the table glyphs. Columns are
	// sized by terminal display width, not rune count: wide CJK runes count
	// two and combining marks count zero, so "e\u0301" is one column wide.
	TableColumn string
	TableRow    string
	TableCorner string

	// MaxDepth bounds the nesting depth that is formatted. Deeper subtrees are
	// flattened to their plain text.
	MaxDepth int
}

func (o Options) withDefaults() Options {
	if o.ULMarker == "" {
		o.ULMarker = DefaultULMarker
	}
	if o.OLMarker == "" {
		o.OLMarker = DefaultOLMarker
	}
	if o.TableColumn == "" {
		o.TableColumn = DefaultTableColumn
	}
	if o.TableRow == "" {
		o.TableRow = DefaultTableRow
	}
	if o.TableCorner == "" {
		o.TableCorner = DefaultTableCorner
	}
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	return o
}
