package helper

import (
	"strconv"
	"strings"
)

// NormIndicator приводит пользовательский ввод к идентификатору из реестра.
// Неизвестные значения возвращаются как есть (в верхнем регистре), реестр сам скажет not found.
func NormIndicator(raw string) string {
	s := strings.ToUpper(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, " ", "")
	switch s {
	case "BOLLINGER", "BOLLINGERBANDS", "BBANDS":
		return "BB"
	case "DMI", "DIRECTIONALINDEX":
		return "DI"
	default:
		return s
	}
}

// NormKey: нижний регистр, без пробелов по краям, "_" -> "-".
func NormKey(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	return strings.ReplaceAll(s, "_", "-")
}

// SplitKindValue разбирает "kind:value". Значение может быть пустым.
func SplitKindValue(raw string) (kind string, value string) {
	i := strings.IndexByte(raw, ':')
	if i < 0 {
		return NormKey(raw), ""
	}
	return NormKey(raw[:i]), strings.TrimSpace(raw[i+1:])
}

func F2(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
