package i18n

// Text 双语字段：基础列 + 可选的英文/中文列
type Text struct {
	Base string
	En   *string
	Zh   *string
}

// NewText 构造双语字段，Base 为可空列时传入指针
func NewText(base *string, en, zh *string) Text {
	return Text{Base: Deref(base), En: en, Zh: zh}
}

// Resolve 按语言取值：en 优先英文列，其余优先中文列；语言列为空时回退基础列
func (t Text) Resolve(lang Lang) string {
	var preferred *string
	if lang == LangEN {
		preferred = t.En
	} else {
		preferred = t.Zh
	}
	if preferred != nil && *preferred != "" {
		return *preferred
	}
	return t.Base
}

// Resolve 对单个字段做本地化解析
func Resolve(base string, en, zh *string, lang Lang) string {
	return Text{Base: base, En: en, Zh: zh}.Resolve(lang)
}

// Deref 安全解引用字符串指针
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
