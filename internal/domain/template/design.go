package template

import (
	"strings"
)

// Design is one entry of the closed invoice design catalog.
// Values are only created by newDesign, which requires a layout, so every
// design carries the blueprint its renderer is built from.
type Design struct {
	id          string
	name        string
	description string
	layout      Layout
}

func newDesign(id, name string, layout Layout, description string) Design {
	return Design{id: id, name: name, description: description, layout: layout}
}

// ID returns the stable design identifier
func (d Design) ID() string { return d.id }

// Name returns the display name
func (d Design) Name() string { return d.name }

// Description returns a one-line summary
func (d Design) Description() string { return d.description }

// Layout returns the layout blueprint
func (d Design) Layout() Layout { return d.layout }

// IsZero reports whether d is the zero value
func (d Design) IsZero() bool { return d.id == "" }

// String returns the design ID
func (d Design) String() string { return d.id }

// Design catalog
var (
	DesignModernClean      = newDesign("modern-clean", "Modern Clean", LayoutModern, "Airy layout with a thin accent rule")
	DesignCorporateFormal  = newDesign("corporate-formal", "Corporate Formal", LayoutClassic, "Numbered rows and a formal capitalised title")
	DesignCreativeVibrant  = newDesign("creative-vibrant", "Creative Vibrant", LayoutBold, "Full-width colour band across the header")
	DesignMinimalMono      = newDesign("minimal-mono", "Minimal Mono", LayoutMinimal, "Type-only layout without rules or fills")
	DesignClassicLedger    = newDesign("classic-ledger", "Classic Ledger", LayoutClassic, "Ruled ledger table")
	DesignElegantSerif     = newDesign("elegant-serif", "Elegant Serif", LayoutClassic, "Centered serif heading")
	DesignBoldHeader       = newDesign("bold-header", "Bold Header", LayoutBold, "Large title block in the primary colour")
	DesignSidebarAccent    = newDesign("sidebar-accent", "Sidebar Accent", LayoutSidebar, "Parties listed in a tinted side column")
	DesignCompactReceipt   = newDesign("compact-receipt", "Compact Receipt", LayoutCompact, "Narrow receipt without addresses")
	DesignExecutive        = newDesign("executive", "Executive", LayoutClassic, "Wide margins and a double rule under totals")
	DesignStartupFresh     = newDesign("startup-fresh", "Startup Fresh", LayoutModern, "Rounded cards for parties and totals")
	DesignStudioPortfolio  = newDesign("studio-portfolio", "Studio Portfolio", LayoutSidebar, "Side column with the company logo")
	DesignFreelancerSimple = newDesign("freelancer-simple", "Freelancer Simple", LayoutMinimal, "Plain single column for sole traders")
	DesignTechGrid         = newDesign("tech-grid", "Tech Grid", LayoutModern, "Monospaced figures on a light grid")
	DesignRetailReceipt    = newDesign("retail-receipt", "Retail Receipt", LayoutCompact, "Till-roll style line list")
	DesignConsultingPro    = newDesign("consulting-pro", "Consulting Pro", LayoutClassic, "Hour-based rows with numbered entries")
	DesignAgencyBold       = newDesign("agency-bold", "Agency Bold", LayoutBold, "Oversized totals block")
	DesignNordicLight      = newDesign("nordic-light", "Nordic Light", LayoutMinimal, "Muted palette and generous whitespace")
	DesignVintagePaper     = newDesign("vintage-paper", "Vintage Paper", LayoutClassic, "Warm paper tone with ornamental rules")
	DesignGeometric        = newDesign("geometric", "Geometric", LayoutBold, "Angular header shapes in the accent colour")
	DesignSplitColumn      = newDesign("split-column", "Split Column", LayoutSidebar, "Two-column body with totals on the side")
	DesignStatement        = newDesign("statement", "Statement", LayoutCompact, "Dense statement listing for many rows")
	DesignGradientWave     = newDesign("gradient-wave", "Gradient Wave", LayoutModern, "Header fading from primary to accent")
)

var designCatalog = []Design{
	DesignModernClean,
	DesignCorporateFormal,
	DesignCreativeVibrant,
	DesignMinimalMono,
	DesignClassicLedger,
	DesignElegantSerif,
	DesignBoldHeader,
	DesignSidebarAccent,
	DesignCompactReceipt,
	DesignExecutive,
	DesignStartupFresh,
	DesignStudioPortfolio,
	DesignFreelancerSimple,
	DesignTechGrid,
	DesignRetailReceipt,
	DesignConsultingPro,
	DesignAgencyBold,
	DesignNordicLight,
	DesignVintagePaper,
	DesignGeometric,
	DesignSplitColumn,
	DesignStatement,
	DesignGradientWave,
}

// AllDesigns returns the catalog in display order
func AllDesigns() []Design {
	out := make([]Design, len(designCatalog))
	copy(out, designCatalog)
	return out
}

// DesignByID looks a design up by its identifier, case-insensitively
func DesignByID(id string) (Design, bool) {
	id = strings.ToLower(strings.TrimSpace(id))
	for _, d := range designCatalog {
		if d.id == id {
			return d, true
		}
	}
	return Design{}, false
}
