package template

import "cvforge/internal/style"

func strPtr(v string) *string   { return &v }
func numPtr(v float64) *float64 { return &v }

// catalog 是全部内置模板，第一项同时充当未知 slug 的兜底默认值。
var catalog = []Template{
	{
		ID:          "classic",
		Name:        "Classic Professional",
		Description: "A timeless, traditional format suitable for conservative industries",
		Colors: Colors{
			Primary:    "#2563eb",
			Secondary:  "#4b5563",
			Accent:     "#10b981",
			Background: "#ffffff",
			Text:       "#111827",
		},
		Styles: map[style.Region]style.Override{
			style.RegionName: {
				Color:     strPtr("#111827"),
				TextAlign: strPtr("center"),
				FontSize:  numPtr(22),
			},
			style.RegionHeader: {
				TextAlign:         strPtr("center"),
				BorderBottomWidth: numPtr(2),
				BorderBottomColor: strPtr("#374151"),
				MarginBottom:      numPtr(15),
				PaddingBottom:     numPtr(5),
			},
			style.RegionContactInfo: {
				JustifyContent: strPtr("center"),
				MarginBottom:   numPtr(15),
			},
			style.RegionSectionTitle: {
				Color:             strPtr("#111827"),
				BorderBottomColor: strPtr("#6b7280"),
				FontSize:          numPtr(14),
				TextTransform:     strPtr("uppercase"),
			},
			style.RegionTitle: {
				FontSize: numPtr(11),
			},
		},
	},
	{
		ID:          "modern",
		Name:        "Modern Minimalist",
		Description: "A sleek, contemporary design with emphasis on clarity",
		Colors: Colors{
			Primary:    "#0ea5e9",
			Secondary:  "#64748b",
			Accent:     "#f97316",
			Background: "#f8fafc",
			Text:       "#0f172a",
		},
		Styles: map[style.Region]style.Override{
			style.RegionPage: {
				BackgroundColor: strPtr("#f8fafc"),
				Color:           strPtr("#0f172a"),
			},
			style.RegionName: {
				Color:        strPtr("#0ea5e9"),
				FontSize:     numPtr(24),
				MarginBottom: numPtr(8),
			},
			style.RegionHeader: {
				BorderBottomColor: strPtr("#e2e8f0"),
				PaddingBottom:     numPtr(15),
			},
			style.RegionContactInfo: {
				Color: strPtr("#64748b"),
			},
			style.RegionSectionTitle: {
				FontSize:          numPtr(13),
				Color:             strPtr("#0ea5e9"),
				BorderBottomWidth: numPtr(0),
				PaddingBottom:     numPtr(0),
				MarginBottom:      numPtr(10),
				TextTransform:     strPtr("none"),
			},
			style.RegionEntry: {
				BorderLeftWidth: numPtr(2),
				BorderLeftColor: strPtr("#e2e8f0"),
				PaddingLeft:     numPtr(10),
				MarginBottom:    numPtr(12),
			},
			style.RegionTitle: {
				Color: strPtr("#1e293b"),
			},
			style.RegionSubtitle: {
				Color: strPtr("#475569"),
			},
			style.RegionListItemText: {
				Color: strPtr("#334155"),
			},
			style.RegionLink: {
				Color: strPtr("#0ea5e9"),
			},
		},
	},
	{
		ID:          "minimal",
		Name:        "Minimal",
		Description: "An ultra-clean, minimalist design with maximum simplicity",
		Colors: Colors{
			Primary:    "#000000",
			Secondary:  "#525252",
			Accent:     "#a3a3a3",
			Background: "#ffffff",
			Text:       "#171717",
		},
		Styles: map[style.Region]style.Override{
			style.RegionPage: {
				BackgroundColor:   strPtr("#ffffff"),
				PaddingHorizontal: numPtr(45),
			},
			style.RegionName: {
				Color:         strPtr("#000000"),
				FontSize:      numPtr(18),
				TextTransform: strPtr("uppercase"),
				LetterSpacing: numPtr(1),
				TextAlign:     strPtr("left"),
				MarginBottom:  numPtr(8),
			},
			style.RegionHeader: {
				TextAlign:         strPtr("left"),
				BorderBottomWidth: numPtr(0.5),
				BorderBottomColor: strPtr("#d4d4d4"),
				PaddingBottom:     numPtr(8),
			},
			style.RegionContactInfo: {
				JustifyContent: strPtr("flex-start"),
				Color:          strPtr("#525252"),
				FontSize:       numPtr(8),
			},
			style.RegionContactItem: {
				MarginLeft:  numPtr(0),
				MarginRight: numPtr(10),
			},
			style.RegionSectionTitle: {
				FontSize:          numPtr(11),
				LetterSpacing:     numPtr(1),
				Color:             strPtr("#000000"),
				BorderBottomWidth: numPtr(0),
				TextTransform:     strPtr("uppercase"),
				MarginBottom:      numPtr(6),
			},
			style.RegionTitle: {
				LetterSpacing: numPtr(0.5),
			},
			style.RegionSubtitle: {
				FontSize: numPtr(9),
			},
			style.RegionDates: {
				FontSize: numPtr(8),
			},
			style.RegionListItemText: {
				FontSize: numPtr(9),
			},
			style.RegionBulletPoint: {
				FontSize: numPtr(8),
				Width:    numPtr(8),
			},
			style.RegionLink: {
				Color:          strPtr("#525252"),
				TextDecoration: strPtr("none"),
			},
		},
	},
	{
		ID:          "creative",
		Name:        "Creative Colorful",
		Description: "A bold, colorful design for creative industries",
		Colors: Colors{
			Primary:    "#8b5cf6",
			Secondary:  "#ec4899",
			Accent:     "#06b6d4",
			Background: "#ffffff",
			Text:       "#18181b",
		},
		Styles: map[style.Region]style.Override{
			style.RegionPage: {
				BackgroundColor: strPtr("#ffffff"),
			},
			style.RegionName: {
				Color:        strPtr("#8b5cf6"),
				FontSize:     numPtr(26),
				MarginBottom: numPtr(10),
			},
			style.RegionHeader: {
				BorderBottomWidth: numPtr(6),
				BorderBottomColor: strPtr("#fce7f3"),
				PaddingBottom:     numPtr(12),
				MarginBottom:      numPtr(20),
			},
			style.RegionContactInfo: {
				Color: strPtr("#6b7280"),
			},
			style.RegionSection: {
				MarginBottom: numPtr(20),
			},
			style.RegionSectionTitle: {
				Color:             strPtr("#ec4899"),
				FontSize:          numPtr(16),
				BorderBottomWidth: numPtr(3),
				BorderBottomColor: strPtr("#f3f4f6"),
				PaddingBottom:     numPtr(4),
				MarginBottom:      numPtr(12),
			},
			style.RegionTitle: {
				Color:    strPtr("#8b5cf6"),
				FontSize: numPtr(12),
			},
			style.RegionSubtitle: {
				Color:    strPtr("#6d28d9"),
				FontSize: numPtr(10),
			},
			style.RegionBulletPoint: {
				Color: strPtr("#ec4899"),
			},
			style.RegionDates: {
				Color: strPtr("#9ca3af"),
			},
			style.RegionLink: {
				Color: strPtr("#06b6d4"),
			},
		},
	},
	{
		ID:          "executive",
		Name:        "Executive",
		Description: "A formal, sophisticated template for senior positions",
		Colors: Colors{
			Primary:    "#1e3a8a",
			Secondary:  "#475569",
			Accent:     "#b91c1c",
			Background: "#f8fafc",
			Text:       "#0f172a",
		},
		Styles: map[style.Region]style.Override{
			style.RegionPage: {
				BackgroundColor:   strPtr("#f8fafc"),
				PaddingHorizontal: numPtr(40),
			},
			style.RegionName: {
				FontSize:     numPtr(22),
				Color:        strPtr("#1e3a8a"),
				MarginBottom: numPtr(6),
				FontFamily:   strPtr("Times-Bold"),
			},
			style.RegionHeader: {
				BorderBottomWidth: numPtr(1.5),
				BorderBottomColor: strPtr("#1e3a8a"),
				PaddingBottom:     numPtr(12),
			},
			style.RegionContactInfo: {
				FontSize:   numPtr(10),
				Color:      strPtr("#475569"),
				FontFamily: strPtr("Times-Roman"),
			},
			style.RegionContactItem: {
				MarginHorizontal: numPtr(6),
			},
			style.RegionSection: {
				MarginBottom: numPtr(18),
			},
			style.RegionSectionTitle: {
				FontFamily:        strPtr("Times-Bold"),
				Color:             strPtr("#1e3a8a"),
				BorderBottomWidth: numPtr(1),
				BorderBottomColor: strPtr("#94a3b8"),
				FontSize:          numPtr(14),
				MarginBottom:      numPtr(10),
			},
			style.RegionTitle: {
				FontFamily: strPtr("Times-Bold"),
				FontSize:   numPtr(11),
			},
			style.RegionSubtitle: {
				FontFamily: strPtr("Times-Roman"),
				Color:      strPtr("#1e3a8a"),
				FontSize:   numPtr(10),
			},
			style.RegionDates: {
				FontFamily: strPtr("Times-Italic"),
				FontSize:   numPtr(9),
			},
			style.RegionListItem: {
				MarginBottom: numPtr(4),
			},
			style.RegionListItemText: {
				FontFamily: strPtr("Times-Roman"),
				FontSize:   numPtr(10),
			},
			style.RegionSkillsText: {
				FontFamily: strPtr("Times-Roman"),
				FontSize:   numPtr(10),
			},
			style.RegionLink: {
				Color:      strPtr("#1e3a8a"),
				FontFamily: strPtr("Times-Roman"),
			},
		},
	},
	{
		ID:          "technical",
		Name:        "Technical Coder",
		Description: "A code-inspired design for technical and developer roles",
		Colors: Colors{
			Primary:    "#16a34a",
			Secondary:  "#3f3f46",
			Accent:     "#2563eb",
			Background: "#f4f4f5",
			Text:       "#18181b",
		},
		Styles: map[style.Region]style.Override{
			style.RegionPage: {
				BackgroundColor:   strPtr("#f4f4f5"),
				FontFamily:        strPtr("Courier"),
				PaddingHorizontal: numPtr(40),
			},
			style.RegionName: {
				FontFamily: strPtr("Courier-Bold"),
				Color:      strPtr("#16a34a"),
				TextAlign:  strPtr("left"),
				FontSize:   numPtr(18),
			},
			style.RegionHeader: {
				TextAlign:         strPtr("left"),
				BorderBottomWidth: numPtr(0),
				BorderBottomColor: strPtr("#e4e4e7"),
				PaddingBottom:     numPtr(5),
			},
			style.RegionContactInfo: {
				FontFamily:     strPtr("Courier"),
				JustifyContent: strPtr("flex-start"),
				Color:          strPtr("#52525b"),
				FontSize:       numPtr(9),
			},
			style.RegionContactItem: {
				MarginLeft:  numPtr(0),
				MarginRight: numPtr(12),
			},
			style.RegionSection: {
				MarginBottom:    numPtr(18),
				BorderLeftWidth: numPtr(2),
				BorderLeftColor: strPtr("#e4e4e7"),
				PaddingLeft:     numPtr(10),
			},
			style.RegionSectionTitle: {
				FontFamily:        strPtr("Courier-Bold"),
				FontSize:          numPtr(12),
				Color:             strPtr("#16a34a"),
				BorderBottomWidth: numPtr(0),
				MarginBottom:      numPtr(8),
				TextTransform:     strPtr("lowercase"),
			},
			style.RegionEntry: {
				MarginBottom: numPtr(12),
			},
			style.RegionTitle: {
				FontFamily: strPtr("Courier-Bold"),
				Color:      strPtr("#3f3f46"),
				FontSize:   numPtr(10),
			},
			style.RegionSubtitle: {
				FontFamily: strPtr("Courier"),
				Color:      strPtr("#71717a"),
			},
			style.RegionDates: {
				FontFamily: strPtr("Courier-Oblique"),
				Color:      strPtr("#71717a"),
			},
			style.RegionListItemText: {
				FontFamily: strPtr("Courier"),
				Color:      strPtr("#3f3f46"),
			},
			style.RegionBulletPoint: {
				FontFamily: strPtr("Courier"),
				Color:      strPtr("#16a34a"),
			},
			style.RegionSkillsText: {
				FontFamily: strPtr("Courier"),
				Color:      strPtr("#3f3f46"),
			},
			style.RegionLink: {
				FontFamily: strPtr("Courier"),
				Color:      strPtr("#2563eb"),
			},
		},
	},
	{
		ID:          "academic",
		Name:        "Academic",
		Description: "A LaTeX-inspired design for academic and research positions",
		Colors: Colors{
			Primary:    "#111827",
			Secondary:  "#374151",
			Accent:     "#6b7280",
			Background: "#ffffff",
			Text:       "#1f2937",
		},
		Styles: map[style.Region]style.Override{
			style.RegionPage: {
				BackgroundColor:   strPtr("#ffffff"),
				FontFamily:        strPtr("Times-Roman"),
				PaddingHorizontal: numPtr(50),
			},
			style.RegionName: {
				FontFamily:    strPtr("Times-Bold"),
				FontSize:      numPtr(18),
				Color:         strPtr("#111827"),
				TextAlign:     strPtr("center"),
				TextTransform: strPtr("uppercase"),
				LetterSpacing: numPtr(2),
				MarginBottom:  numPtr(8),
			},
			style.RegionHeader: {
				BorderBottomWidth: numPtr(0),
				PaddingBottom:     numPtr(5),
			},
			style.RegionContactInfo: {
				FontFamily: strPtr("Times-Roman"),
				FontSize:   numPtr(10),
				Color:      strPtr("#374151"),
			},
			style.RegionSection: {
				MarginBottom: numPtr(20),
			},
			style.RegionSectionTitle: {
				FontFamily:        strPtr("Times-Bold"),
				FontSize:          numPtr(12),
				Color:             strPtr("#111827"),
				TextAlign:         strPtr("center"),
				TextTransform:     strPtr("uppercase"),
				BorderBottomWidth: numPtr(0),
				LetterSpacing:     numPtr(1),
				MarginBottom:      numPtr(12),
			},
			style.RegionEntry: {
				MarginBottom: numPtr(12),
			},
			style.RegionEntryHeader: {
				MarginBottom: numPtr(3),
			},
			style.RegionTitle: {
				FontFamily: strPtr("Times-Bold"),
				FontSize:   numPtr(11),
				Color:      strPtr("#111827"),
			},
			style.RegionSubtitle: {
				FontFamily: strPtr("Times-Italic"),
				Color:      strPtr("#374151"),
				FontSize:   numPtr(10),
			},
			style.RegionDates: {
				FontFamily: strPtr("Times-Roman"),
				Color:      strPtr("#374151"),
				FontSize:   numPtr(10),
			},
			style.RegionListItem: {
				MarginBottom: numPtr(4),
			},
			style.RegionListItemText: {
				FontFamily: strPtr("Times-Roman"),
				Color:      strPtr("#1f2937"),
				FontSize:   numPtr(10),
				TextAlign:  strPtr("justify"),
			},
			style.RegionSkillsText: {
				FontFamily: strPtr("Times-Roman"),
				Color:      strPtr("#1f2937"),
				FontSize:   numPtr(10),
				TextAlign:  strPtr("justify"),
			},
			style.RegionLink: {
				FontFamily:     strPtr("Times-Roman"),
				Color:          strPtr("#1f2937"),
				TextDecoration: strPtr("underline"),
			},
		},
	},
	{
		ID:          "elegant",
		Name:        "Elegant",
		Description: "A refined, sophisticated design with graceful typography",
		Colors: Colors{
			Primary:    "#4f46e5",
			Secondary:  "#4338ca",
			Accent:     "#8b5cf6",
			Background: "#f9fafb",
			Text:       "#111827",
		},
		Styles: map[style.Region]style.Override{
			style.RegionPage: {
				BackgroundColor:   strPtr("#f9fafb"),
				PaddingHorizontal: numPtr(45),
			},
			style.RegionName: {
				FontSize:     numPtr(24),
				Color:        strPtr("#4f46e5"),
				FontFamily:   strPtr("Helvetica-Bold"),
				MarginBottom: numPtr(8),
			},
			style.RegionHeader: {
				BorderBottomWidth: numPtr(0.5),
				BorderBottomColor: strPtr("#4f46e5"),
				PaddingBottom:     numPtr(14),
			},
			style.RegionContactInfo: {
				FontSize: numPtr(9),
				Color:    strPtr("#6b7280"),
			},
			style.RegionSection: {
				MarginBottom: numPtr(18),
			},
			style.RegionSectionTitle: {
				FontSize:          numPtr(12),
				Color:             strPtr("#4f46e5"),
				BorderBottomWidth: numPtr(0.5),
				BorderBottomColor: strPtr("#e5e7eb"),
				PaddingBottom:     numPtr(4),
				MarginBottom:      numPtr(10),
			},
			style.RegionTitle: {
				FontSize: numPtr(11),
				Color:    strPtr("#111827"),
			},
			style.RegionSubtitle: {
				FontSize: numPtr(10),
				Color:    strPtr("#4338ca"),
			},
			style.RegionDates: {
				FontSize: numPtr(9),
				Color:    strPtr("#6b7280"),
			},
			style.RegionListItemText: {
				FontSize:   numPtr(9.5),
				Color:      strPtr("#374151"),
				LineHeight: numPtr(1.5),
			},
			style.RegionBulletPoint: {
				FontSize: numPtr(9.5),
				Color:    strPtr("#8b5cf6"),
			},
			style.RegionLink: {
				Color: strPtr("#4f46e5"),
			},
		},
	},
	{
		ID:          "bold",
		Name:        "Bold Impact",
		Description: "A high-contrast design with strong visual impact",
		Colors: Colors{
			Primary:    "#000000",
			Secondary:  "#dc2626",
			Accent:     "#f59e0b",
			Background: "#ffffff",
			Text:       "#111827",
		},
		Styles: map[style.Region]style.Override{
			style.RegionPage: {
				BackgroundColor:   strPtr("#ffffff"),
				PaddingHorizontal: numPtr(35),
			},
			style.RegionName: {
				FontSize:     numPtr(28),
				FontWeight:   strPtr("bold"),
				Color:        strPtr("#000000"),
				TextAlign:    strPtr("left"),
				MarginBottom: numPtr(6),
			},
			style.RegionHeader: {
				TextAlign:         strPtr("left"),
				BorderBottomWidth: numPtr(3),
				BorderBottomColor: strPtr("#dc2626"),
				PaddingBottom:     numPtr(10),
			},
			style.RegionContactInfo: {
				JustifyContent: strPtr("flex-start"),
				FontSize:       numPtr(9),
				Color:          strPtr("#4b5563"),
			},
			style.RegionContactItem: {
				MarginLeft:  numPtr(0),
				MarginRight: numPtr(10),
			},
			style.RegionSection: {
				MarginBottom: numPtr(16),
			},
			style.RegionSectionTitle: {
				FontSize:          numPtr(16),
				TextTransform:     strPtr("uppercase"),
				Color:             strPtr("#000000"),
				LetterSpacing:     numPtr(1),
				BorderBottomWidth: numPtr(2),
				BorderBottomColor: strPtr("#dc2626"),
				PaddingBottom:     numPtr(3),
				MarginBottom:      numPtr(10),
			},
			style.RegionTitle: {
				FontSize: numPtr(12),
				Color:    strPtr("#000000"),
			},
			style.RegionSubtitle: {
				FontSize:   numPtr(10),
				Color:      strPtr("#dc2626"),
				FontFamily: strPtr("Helvetica-Bold"),
			},
			style.RegionDates: {
				FontSize: numPtr(9),
				Color:    strPtr("#4b5563"),
			},
			style.RegionListItem: {
				MarginBottom: numPtr(4),
			},
			style.RegionBulletPoint: {
				Color: strPtr("#dc2626"),
			},
			style.RegionLink: {
				Color: strPtr("#dc2626"),
			},
		},
	},
	{
		ID:          "funky",
		Name:        "Funky Fresh",
		Description: "A playful, energetic design for creative personalities",
		Colors: Colors{
			Primary:    "#7c3aed",
			Secondary:  "#ec4899",
			Accent:     "#06b6d4",
			Background: "#fffbeb",
			Text:       "#18181b",
		},
		Styles: map[style.Region]style.Override{
			style.RegionPage: {
				BackgroundColor:   strPtr("#fffbeb"),
				PaddingHorizontal: numPtr(35),
			},
			style.RegionName: {
				FontSize:      numPtr(26),
				Color:         strPtr("#7c3aed"),
				TextAlign:     strPtr("center"),
				MarginBottom:  numPtr(8),
				TextTransform: strPtr("lowercase"),
				LetterSpacing: numPtr(1),
			},
			style.RegionHeader: {
				BorderBottomWidth: numPtr(4),
				BorderBottomStyle: strPtr("dashed"),
				BorderBottomColor: strPtr("#ec4899"),
				PaddingBottom:     numPtr(12),
			},
			style.RegionContactInfo: {
				FontSize: numPtr(10),
				Color:    strPtr("#7c3aed"),
			},
			style.RegionSection: {
				MarginBottom: numPtr(20),
			},
			style.RegionSectionTitle: {
				FontSize:          numPtr(15),
				Color:             strPtr("#ec4899"),
				TextTransform:     strPtr("lowercase"),
				LetterSpacing:     numPtr(1),
				BorderBottomWidth: numPtr(0),
				TextAlign:         strPtr("center"),
				MarginBottom:      numPtr(12),
			},
			style.RegionTitle: {
				FontSize:      numPtr(12),
				Color:         strPtr("#7c3aed"),
				TextTransform: strPtr("lowercase"),
			},
			style.RegionSubtitle: {
				FontSize:   numPtr(10),
				Color:      strPtr("#06b6d4"),
				FontFamily: strPtr("Helvetica-Bold"),
			},
			style.RegionDates: {
				FontSize: numPtr(9),
				Color:    strPtr("#ec4899"),
			},
			style.RegionListItem: {
				MarginBottom: numPtr(4),
			},
			style.RegionBulletPoint: {
				FontSize: numPtr(12),
				Color:    strPtr("#06b6d4"),
			},
			style.RegionListItemText: {
				FontSize: numPtr(10),
			},
			style.RegionLink: {
				Color: strPtr("#06b6d4"),
			},
		},
	},
}
