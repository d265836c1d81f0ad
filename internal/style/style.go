package style

// Region 标识简历文档中的一个样式区域。区域集合是封闭的：
// 模板只能覆盖这里列出的区域，未覆盖的区域原样继承基础样式。
type Region string

const (
	RegionPage         Region = "page"
	RegionHeader       Region = "header"
	RegionName         Region = "name"
	RegionContactInfo  Region = "contactInfo"
	RegionContactItem  Region = "contactItem"
	RegionSection      Region = "section"
	RegionSectionTitle Region = "sectionTitle"
	RegionEntry        Region = "entry"
	RegionEntryHeader  Region = "entryHeader"
	RegionTitle        Region = "title"
	RegionSubtitle     Region = "subtitle"
	RegionDates        Region = "dates"
	RegionListItem     Region = "listItem"
	RegionBulletPoint  Region = "bulletPoint"
	RegionListItemText Region = "listItemText"
	RegionSkillsText   Region = "skillsText"
	RegionLink         Region = "link"
)

// Regions 按固定顺序列出全部样式区域。
var Regions = []Region{
	RegionPage,
	RegionHeader,
	RegionName,
	RegionContactInfo,
	RegionContactItem,
	RegionSection,
	RegionSectionTitle,
	RegionEntry,
	RegionEntryHeader,
	RegionTitle,
	RegionSubtitle,
	RegionDates,
	RegionListItem,
	RegionBulletPoint,
	RegionListItemText,
	RegionSkillsText,
	RegionLink,
}

// Props 是一个区域解析后的全部样式属性。
// 属性集合与基础样式表对齐；长度单位为 pt，颜色为 CSS 颜色值。
type Props struct {
	FontFamily        string
	FontSize          float64
	FontWeight        string
	Color             string
	BackgroundColor   string
	TextAlign         string
	TextTransform     string
	TextDecoration    string
	LetterSpacing     float64
	LineHeight        float64
	MarginBottom      float64
	MarginHorizontal  float64
	MarginLeft        float64
	MarginRight       float64
	PaddingTop        float64
	PaddingBottom     float64
	PaddingLeft       float64
	PaddingHorizontal float64
	BorderBottomWidth float64
	BorderBottomColor string
	BorderBottomStyle string
	BorderLeftWidth   float64
	BorderLeftColor   string
	Width             float64
	Flex              float64
	FlexDirection     string
	JustifyContent    string
	FlexWrap          string
	AlignItems        string
}

// Override 是模板对单个区域的部分覆盖。nil 字段表示沿用基础值，
// 非 nil 字段逐属性覆盖——绝不整区替换。
type Override struct {
	FontFamily        *string
	FontSize          *float64
	FontWeight        *string
	Color             *string
	BackgroundColor   *string
	TextAlign         *string
	TextTransform     *string
	TextDecoration    *string
	LetterSpacing     *float64
	LineHeight        *float64
	MarginBottom      *float64
	MarginHorizontal  *float64
	MarginLeft        *float64
	MarginRight       *float64
	PaddingTop        *float64
	PaddingBottom     *float64
	PaddingLeft       *float64
	PaddingHorizontal *float64
	BorderBottomWidth *float64
	BorderBottomColor *string
	BorderBottomStyle *string
	BorderLeftWidth   *float64
	BorderLeftColor   *string
	Width             *float64
	Flex              *float64
	FlexDirection     *string
	JustifyContent    *string
	FlexWrap          *string
	AlignItems        *string
}

// Sheet 是完整的解析结果：每个区域必有一项，不存在缺失区域。
type Sheet map[Region]Props

// Resolve 将模板覆盖合并到基础样式表上，返回完整的样式集合。
// 纯函数：相同输入总是得到相同输出，不做任何 I/O。
func Resolve(overrides map[Region]Override) Sheet {
	sheet := make(Sheet, len(Regions))
	for _, region := range Regions {
		props := base[region]
		if override, ok := overrides[region]; ok {
			props = override.apply(props)
		}
		sheet[region] = props
	}
	return sheet
}

func (o Override) apply(p Props) Props {
	if o.FontFamily != nil {
		p.FontFamily = *o.FontFamily
	}
	if o.FontSize != nil {
		p.FontSize = *o.FontSize
	}
	if o.FontWeight != nil {
		p.FontWeight = *o.FontWeight
	}
	if o.Color != nil {
		p.Color = *o.Color
	}
	if o.BackgroundColor != nil {
		p.BackgroundColor = *o.BackgroundColor
	}
	if o.TextAlign != nil {
		p.TextAlign = *o.TextAlign
	}
	if o.TextTransform != nil {
		p.TextTransform = *o.TextTransform
	}
	if o.TextDecoration != nil {
		p.TextDecoration = *o.TextDecoration
	}
	if o.LetterSpacing != nil {
		p.LetterSpacing = *o.LetterSpacing
	}
	if o.LineHeight != nil {
		p.LineHeight = *o.LineHeight
	}
	if o.MarginBottom != nil {
		p.MarginBottom = *o.MarginBottom
	}
	if o.MarginHorizontal != nil {
		p.MarginHorizontal = *o.MarginHorizontal
	}
	if o.MarginLeft != nil {
		p.MarginLeft = *o.MarginLeft
	}
	if o.MarginRight != nil {
		p.MarginRight = *o.MarginRight
	}
	if o.PaddingTop != nil {
		p.PaddingTop = *o.PaddingTop
	}
	if o.PaddingBottom != nil {
		p.PaddingBottom = *o.PaddingBottom
	}
	if o.PaddingLeft != nil {
		p.PaddingLeft = *o.PaddingLeft
	}
	if o.PaddingHorizontal != nil {
		p.PaddingHorizontal = *o.PaddingHorizontal
	}
	if o.BorderBottomWidth != nil {
		p.BorderBottomWidth = *o.BorderBottomWidth
	}
	if o.BorderBottomColor != nil {
		p.BorderBottomColor = *o.BorderBottomColor
	}
	if o.BorderBottomStyle != nil {
		p.BorderBottomStyle = *o.BorderBottomStyle
	}
	if o.BorderLeftWidth != nil {
		p.BorderLeftWidth = *o.BorderLeftWidth
	}
	if o.BorderLeftColor != nil {
		p.BorderLeftColor = *o.BorderLeftColor
	}
	if o.Width != nil {
		p.Width = *o.Width
	}
	if o.Flex != nil {
		p.Flex = *o.Flex
	}
	if o.FlexDirection != nil {
		p.FlexDirection = *o.FlexDirection
	}
	if o.JustifyContent != nil {
		p.JustifyContent = *o.JustifyContent
	}
	if o.FlexWrap != nil {
		p.FlexWrap = *o.FlexWrap
	}
	if o.AlignItems != nil {
		p.AlignItems = *o.AlignItems
	}
	return p
}
