package template

// Layout is the structural blueprint a renderer follows: where the parties
// go, how line rows are presented and how loud the header is.
// Presentation formats (HTML, PDF) key their assets on the layout ID.
type Layout struct {
	id string
	// Sidebar puts issuer and customer details in a side column
	Sidebar bool
	// NumberedRows prefixes each line row with its position
	NumberedRows bool
	// UppercaseTitle renders the document title in capitals
	UppercaseTitle bool
	// Compact drops postal addresses and notes
	Compact bool
}

// ID returns the stable layout identifier
func (l Layout) ID() string {
	return l.id
}

// IsZero reports whether l is the zero value
func (l Layout) IsZero() bool {
	return l.id == ""
}

// Layout blueprints shared by the design catalog
var (
	LayoutClassic = Layout{id: "classic", NumberedRows: true, UppercaseTitle: true}
	LayoutModern  = Layout{id: "modern"}
	LayoutMinimal = Layout{id: "minimal"}
	LayoutBold    = Layout{id: "bold", UppercaseTitle: true}
	LayoutSidebar = Layout{id: "sidebar", Sidebar: true}
	LayoutCompact = Layout{id: "compact", NumberedRows: true, Compact: true}
)

// AllLayouts returns every layout blueprint
func AllLayouts() []Layout {
	return []Layout{
		LayoutClassic,
		LayoutModern,
		LayoutMinimal,
		LayoutBold,
		LayoutSidebar,
		LayoutCompact,
	}
}
