package template

import "cvforge/internal/style"

// FreeTemplateID 是唯一的免费模板 slug。
// 它作为 template_purchases 的外键持久化在各处，发布后绝不能改名。
const FreeTemplateID = "classic"

// Colors 是模板的主题色板。
type Colors struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
	Text       string `json:"text"`
}

// Template 表示一个可选的简历视觉主题。
// 进程启动时加载一次，之后只读，可被任意并发读取。
type Template struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Colors      Colors `json:"colors"`
	// Styles 是对基础样式表的部分覆盖；未出现的区域原样继承。
	Styles map[style.Region]style.Override `json:"-"`
}

// List 按注册顺序返回全部模板。
func List() []Template {
	return catalog
}

// Get 按 slug 查找模板。未知 id 不报错，回落到第一个注册的模板：
// slug 过期（改名或下线）时用户静默降级到默认主题，这是刻意的产品行为。
func Get(id string) Template {
	for _, t := range catalog {
		if t.ID == id {
			return t
		}
	}
	return catalog[0]
}

// Exists 报告 slug 是否对应一个已注册模板。
func Exists(id string) bool {
	for _, t := range catalog {
		if t.ID == id {
			return true
		}
	}
	return false
}

// Resolve 返回模板合并后的完整样式表。
func Resolve(id string) style.Sheet {
	return style.Resolve(Get(id).Styles)
}

// IsFreeTier 报告模板是否免费可用。
func IsFreeTier(id string) bool {
	return id == FreeTemplateID
}
