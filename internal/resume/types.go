package resume

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Data 表示保存在 SavedResume.Data(JSONB) 中的结构化简历内容。
// 所有字段均可为空：渲染侧必须通过默认值兜底，而不是报错。
type Data struct {
	Contact    Contact     `json:"contact"`
	Experience []Entry     `json:"experience"`
	Education  []Education `json:"education"`
	Skills     string      `json:"skills"`
}

// Contact 描述页眉中的联系方式。
type Contact struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	LinkedIn  string `json:"linkedin"`
	Portfolio string `json:"portfolio"`
}

// Entry 表示一段工作经历。Responsibilities 为自由文本，
// 以换行分隔，`-`/`*` 开头的行渲染为项目符号。
type Entry struct {
	ID               string `json:"id"`
	Company          string `json:"company"`
	Role             string `json:"role"`
	StartDate        string `json:"startDate"`
	EndDate          string `json:"endDate"`
	Responsibilities string `json:"responsibilities"`
}

// Education 表示一段教育经历，Details 与 Responsibilities 同约定。
type Education struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Details     string `json:"details"`
}

// ErrMalformed 表示存储的简历内容整体不可解析（结构性损坏）。
// 这是组装链路中唯一允许的致命错误；单个字段缺失永远走默认值。
var ErrMalformed = errors.New("malformed resume data")

// Decode 解析 JSONB 中的简历内容。
func Decode(raw []byte) (Data, error) {
	var data Data
	if len(raw) == 0 {
		return data, nil
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		return Data{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return data, nil
}
