package document

import (
	"strings"

	"cvforge/internal/resume"
	"cvforge/internal/style"
)

// 各字段为空时的占位文本。与前端展示保持一致。
const (
	placeholderName        = "Your Name"
	placeholderRole        = "Role"
	placeholderCompany     = "Company Name"
	placeholderDegree      = "Degree"
	placeholderInstitution = "Institution"
	placeholderStart       = "Start"
	placeholderEnd         = "End"
	presentLabel           = "Present"
	emptyNotice            = "No content provided. Please fill the form."
)

// Assemble 将简历数据和解析后的样式表组装为文档。
// 任何单个字段缺失都走默认值，绝不报错；整体不可解析的输入
// 在更早的 resume.Decode 阶段就被拦下。
func Assemble(data resume.Data, styles style.Sheet) Document {
	doc := Document{
		Header: buildHeader(data.Contact),
		Styles: styles,
	}

	doc.Title = "Resume"
	if name := strings.TrimSpace(data.Contact.Name); name != "" {
		doc.Title = name + " - Resume"
	}

	if sec, ok := buildExperience(data.Experience); ok {
		doc.Sections = append(doc.Sections, sec)
	}
	if sec, ok := buildEducation(data.Education); ok {
		doc.Sections = append(doc.Sections, sec)
	}
	if skills := FormatSkills(data.Skills); skills != "" {
		doc.Sections = append(doc.Sections, Section{
			Kind:   SectionSkills,
			Title:  "Skills",
			Text:   skills,
			Atomic: true,
		})
	}

	// 全空输入仍要产出合法文档：单个空态分区，而不是错误。
	if len(doc.Sections) == 0 {
		doc.Sections = append(doc.Sections, Section{
			Kind: SectionEmpty,
			Text: emptyNotice,
		})
	}

	return doc
}

func buildHeader(contact resume.Contact) Header {
	header := Header{Name: strings.TrimSpace(contact.Name)}
	if header.Name == "" {
		header.Name = placeholderName
	}

	// 联系项的顺序固定：phone、email、linkedin、portfolio。
	// linkedin/portfolio 渲染为超链接，目标就是原始字符串。
	if v := strings.TrimSpace(contact.Phone); v != "" {
		header.Contacts = append(header.Contacts, ContactItem{Value: v})
	}
	if v := strings.TrimSpace(contact.Email); v != "" {
		header.Contacts = append(header.Contacts, ContactItem{Value: v})
	}
	if v := strings.TrimSpace(contact.LinkedIn); v != "" {
		header.Contacts = append(header.Contacts, ContactItem{Value: v, Href: v})
	}
	if v := strings.TrimSpace(contact.Portfolio); v != "" {
		header.Contacts = append(header.Contacts, ContactItem{Value: v, Href: v})
	}
	return header
}

func buildExperience(entries []resume.Entry) (Section, bool) {
	sec := Section{
		Kind:   SectionExperience,
		Title:  "Work Experience",
		Atomic: true,
	}
	for _, e := range entries {
		// 公司与职位都为空的条目视为空白行，不渲染。
		if strings.TrimSpace(e.Company) == "" && strings.TrimSpace(e.Role) == "" {
			continue
		}
		sec.Entries = append(sec.Entries, SectionEntry{
			Title:    fallback(e.Role, placeholderRole),
			Subtitle: fallback(e.Company, placeholderCompany),
			Dates:    formatDates(e.StartDate, e.EndDate, presentLabel),
			Lines:    ParseLines(e.Responsibilities),
		})
	}
	return sec, len(sec.Entries) > 0
}

func buildEducation(entries []resume.Education) (Section, bool) {
	sec := Section{
		Kind:   SectionEducation,
		Title:  "Education",
		Atomic: true,
	}
	for _, e := range entries {
		if strings.TrimSpace(e.Institution) == "" && strings.TrimSpace(e.Degree) == "" {
			continue
		}
		sec.Entries = append(sec.Entries, SectionEntry{
			Title:    fallback(e.Degree, placeholderDegree),
			Subtitle: fallback(e.Institution, placeholderInstitution),
			// 教育经历的结束日期缺省为占位文本，不是 "Present"。
			Dates: formatDates(e.StartDate, e.EndDate, placeholderEnd),
			Lines: ParseLines(e.Details),
		})
	}
	return sec, len(sec.Entries) > 0
}

func formatDates(start, end, endFallback string) string {
	return fallback(start, placeholderStart) + " – " + fallback(end, endFallback)
}

func fallback(value, placeholder string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return placeholder
}

// ParseLines 把自由文本拆成条目行：每个非空行一条，
// `-` 或 `*` 开头的行为项目符号（剥掉标记再去空格），其余为普通段落。
func ParseLines(text string) []Line {
	var lines []Line
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		bullet := strings.HasPrefix(line, "-") || strings.HasPrefix(line, "*")
		if bullet {
			line = strings.TrimSpace(line[1:])
		}
		lines = append(lines, Line{Text: line, Bullet: bullet})
	}
	return lines
}

// FormatSkills 按逗号或换行拆分技能串，去空格、丢空项，再以 ", " 连接。
func FormatSkills(skills string) string {
	tokens := strings.FieldsFunc(skills, func(r rune) bool {
		return r == ',' || r == '\n'
	})
	kept := tokens[:0]
	for _, t := range tokens {
		if t = strings.TrimSpace(t); t != "" {
			kept = append(kept, t)
		}
	}
	return strings.Join(kept, ", ")
}
