package domain_util

import (
	"strings"
	"unicode"

	"github.com/mozillazg/go-pinyin"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var leadingArticles = []string{"the ", "a ", "an "}

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// OrderName derives the sort key stored alongside display names: lower
// case, accents folded, leading English articles stripped.
func OrderName(name string) string {
	folded, _, err := transform.String(foldTransformer, name)
	if err != nil {
		folded = name
	}
	key := strings.ToLower(strings.TrimSpace(folded))
	for _, article := range leadingArticles {
		if strings.HasPrefix(key, article) {
			key = strings.TrimSpace(strings.TrimPrefix(key, article))
			break
		}
	}
	return key
}

// PinyinKey transliterates CJK runes so Chinese titles sort and search
// next to their romanized form. Non-CJK runes pass through unchanged.
func PinyinKey(name string) string {
	args := pinyin.NewArgs()
	var b strings.Builder
	for _, r := range name {
		syllables := pinyin.SinglePinyin(r, args)
		if len(syllables) > 0 {
			b.WriteString(syllables[0])
		} else {
			b.WriteRune(r)
		}
	}
	return strings.ToLower(b.String())
}
