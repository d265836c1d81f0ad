package document

import (
	"cvforge/internal/style"
)

// SectionKind 标识文档分区的类型。
type SectionKind string

const (
	SectionExperience SectionKind = "experience"
	SectionEducation  SectionKind = "education"
	SectionSkills     SectionKind = "skills"
	SectionEmpty      SectionKind = "empty"
)

// Document 是渲染目标无关的结构化输出：
// 页眉 + 有序分区，由简历数据与解析后的样式表推导而来。
type Document struct {
	Title    string
	Header   Header
	Sections []Section
	Styles   style.Sheet
}

// Header 始终存在；Name 为空时已被替换为占位文本。
type Header struct {
	Name     string
	Contacts []ContactItem
}

// ContactItem 是联系行中的一项。Href 非空时渲染为超链接，
// 链接目标就是原始字符串，不做任何规范化或校验。
type ContactItem struct {
	Value string
	Href  string
}

// Section 是文档中的一个分区。Atomic 分区在分页时不可拆分
//（标题不能与首个条目分离）。
type Section struct {
	Kind    SectionKind
	Title   string
	Entries []SectionEntry
	Text    string // Skills / Empty 分区的正文
	Atomic  bool
}

// SectionEntry 是经历分区中的单个条目；分页时作为整体处理。
type SectionEntry struct {
	Title    string
	Subtitle string
	Dates    string
	Lines    []Line
}

// Line 是条目下的一行：Bullet 为真时带项目符号（标记字符已剥离）。
type Line struct {
	Text   string
	Bullet bool
}

// IsEmpty 报告文档是否只剩空态分区。
func (d Document) IsEmpty() bool {
	return len(d.Sections) == 1 && d.Sections[0].Kind == SectionEmpty
}
