package style

// base 是所有模板共享的基础样式表。
// 模板未覆盖的区域与属性直接落到这里的取值。
var base = map[Region]Props{
	RegionPage: {
		PaddingTop:        35,
		PaddingBottom:     65,
		PaddingHorizontal: 35,
		FontFamily:        "Helvetica",
		FontSize:          10,
		LineHeight:        1.4,
		BackgroundColor:   "#ffffff",
		Color:             "#111827",
	},
	RegionHeader: {
		TextAlign:         "center",
		MarginBottom:      20,
		BorderBottomWidth: 1,
		BorderBottomColor: "#e5e7eb",
		PaddingBottom:     10,
	},
	RegionName: {
		FontSize:     20,
		FontWeight:   "bold",
		FontFamily:   "Helvetica-Bold",
		MarginBottom: 5,
		Color:        "#111827",
	},
	RegionContactInfo: {
		FlexDirection:  "row",
		JustifyContent: "center",
		FlexWrap:       "wrap",
		FontSize:       9,
		Color:          "#4b5563",
		MarginBottom:   2,
	},
	RegionContactItem: {
		MarginHorizontal: 5,
	},
	RegionSection: {
		MarginBottom: 15,
	},
	RegionSectionTitle: {
		FontSize:          14,
		FontWeight:        "bold",
		FontFamily:        "Helvetica-Bold",
		BorderBottomWidth: 1,
		BorderBottomColor: "#9ca3af",
		PaddingBottom:     3,
		MarginBottom:      8,
		TextTransform:     "uppercase",
		Color:             "#111827",
	},
	RegionEntry: {
		MarginBottom: 10,
	},
	RegionEntryHeader: {
		FlexDirection:  "row",
		JustifyContent: "space-between",
		MarginBottom:   2,
		AlignItems:     "baseline",
	},
	RegionTitle: {
		FontSize:   11,
		FontWeight: "bold",
		FontFamily: "Helvetica-Bold",
		Color:      "#1f2937",
	},
	RegionSubtitle: {
		FontSize:     10,
		FontFamily:   "Helvetica",
		MarginBottom: 3,
		Color:        "#374151",
	},
	RegionDates: {
		FontSize:   9,
		Color:      "#6b7280",
		FontFamily: "Helvetica-Oblique",
	},
	RegionListItem: {
		FlexDirection: "row",
		MarginBottom:  3,
	},
	RegionBulletPoint: {
		Width:    10,
		FontSize: 10,
	},
	RegionListItemText: {
		Flex:     1,
		FontSize: 10,
		Color:    "#374151",
	},
	RegionSkillsText: {
		FontSize: 10,
		Color:    "#374151",
	},
	RegionLink: {
		Color:          "#2563eb",
		TextDecoration: "none",
	},
}

// Base 返回基础样式表的副本（Props 为值类型，复制即隔离）。
func Base() Sheet {
	sheet := make(Sheet, len(Regions))
	for _, region := range Regions {
		sheet[region] = base[region]
	}
	return sheet
}
