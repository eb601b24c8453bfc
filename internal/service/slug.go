package service

import (
	"fmt"
	"strings"

	"github.com/gosimple/slug"
)

const maxSlugAttempts = 50

// buildSlug 优先使用显式 slug，否则根据名称生成
func buildSlug(explicit, name, fallbackPrefix string) string {
	source := strings.TrimSpace(explicit)
	if source == "" {
		source = name
	}
	generated := slug.Make(source)
	if generated == "" {
		generated = fallbackPrefix
	}
	return generated
}

// uniqueSlug 在 base 被占用时追加数字后缀
func uniqueSlug(base string, taken func(candidate string) (bool, error)) (string, error) {
	candidate := base
	for i := 2; i <= maxSlugAttempts+1; i++ {
		exists, err := taken(candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
	return "", ErrSlugExists
}
