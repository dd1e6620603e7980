package common

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
)

// fieldNameMap maps report field names to terse equivalents for
// bandwidth-sensitive output.
var fieldNameMap = map[string]string{
	"title":        "t",
	"proficiency":  "pf",
	"feedback":     "fb",
	"metrics":      "m",
	"issues":       "is",
	"natScore":     "ns",
	"learningBand": "lb",
	"philIriLevel": "pi",
	"level":        "lv",
	"score":        "sv",
	"reasoning":    "rs",
	"wordCount":    "wc",
	"keywords":     "kw",
}

// FilterResultFields converts a report struct to a map keeping only the
// comma-separated fields in fieldsStr (all fields when empty). With
// isTerse, output keys are abbreviated per fieldNameMap.
func FilterResultFields(result interface{}, fieldsStr string, isTerse bool) map[string]interface{} {
	fullMap := structToMap(result)

	if fieldsStr != "" {
		includeFields := make(map[string]bool)
		for _, field := range strings.Split(fieldsStr, ",") {
			includeFields[strings.TrimSpace(field)] = true
		}
		for key := range fullMap {
			if !includeFields[key] {
				delete(fullMap, key)
			}
		}
	}

	if isTerse {
		terse := make(map[string]interface{}, len(fullMap))
		for key, value := range fullMap {
			if short, ok := fieldNameMap[key]; ok {
				key = short
			}
			terse[key] = value
		}
		return terse
	}
	return fullMap
}

// structToMap converts a struct to map[string]interface{} using JSON marshaling.
func structToMap(obj interface{}) map[string]interface{} {
	data, _ := json.Marshal(obj)
	var result map[string]interface{}
	_ = json.Unmarshal(data, &result)
	return result
}

// ContentHash computes SHA256 hash of content and returns hex string.
func ContentHash(data []byte) string {
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash)
}

// Truncate caps text at limit runes, cutting back to the last space so a
// word is never split mid-way. Texts at or under the limit pass through.
func Truncate(text string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(text) <= limit {
		return text
	}
	runes := []rune(text)
	cut := runes[:limit]
	if idx := strings.LastIndexByte(string(cut), ' '); idx > 0 {
		return string(cut)[:idx]
	}
	return string(cut)
}
