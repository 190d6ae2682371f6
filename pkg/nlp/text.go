package nlp

import (
	"regexp"
	"strings"
)

var nonWord = regexp.MustCompile(`[^\p{L}\p{N}]+`)
var multiSpace = regexp.MustCompile(`\s+`)

// Normalize приводит строку к нижнему регистру и заменяет все "не-слова"
// на пробелы. Ключевые слова и текст резюме нормализуются одинаково, поэтому
// substring-матчи переживают различия в пунктуации ("Monday.com" vs
// "monday com").
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = nonWord.ReplaceAllString(s, " ")
	s = multiSpace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// ContainsPhrase проверяет вхождение фразы как подстроки текста.
// Оба аргумента должны быть уже нормализованы.
func ContainsPhrase(normalizedText, normalizedPhrase string) bool {
	if normalizedPhrase == "" {
		return false
	}
	return strings.Contains(normalizedText, normalizedPhrase)
}

// CountPhrase возвращает число вхождений нормализованной фразы.
// Используется для карты плотности ключевых слов.
func CountPhrase(normalizedText, normalizedPhrase string) int {
	if normalizedPhrase == "" {
		return 0
	}
	return strings.Count(normalizedText, normalizedPhrase)
}

// WordCount считает слова в произвольном тексте.
func WordCount(s string) int {
	return len(strings.Fields(s))
}
