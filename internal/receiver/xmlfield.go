package receiver

import (
	"html"
	"regexp"
	"strings"
)

// The protocol's XML is not always well-formed: elements may span lines,
// optional attributes go missing, and text mixes HTML-entity-encoded
// characters. Extraction is therefore pattern-based and tolerant -
// unmatched input yields "no match", never an error.

// ExtractTag returns the decoded text content of the first element with
// the given local name, ignoring namespace prefixes and attributes.
func ExtractTag(body, name string) (string, bool) {
	re := regexp.MustCompile(`(?is)<(?:\w+:)?` + regexp.QuoteMeta(name) + `(?:\s[^>]*)?>(.*?)</(?:\w+:)?` + regexp.QuoteMeta(name) + `\s*>`)
	matches := re.FindStringSubmatch(body)
	if matches == nil {
		return "", false
	}
	return DecodeEntities(strings.TrimSpace(matches[1])), true
}

// ExtractElements returns one attribute record per occurrence of the
// named element. Attributes absent on an element are simply missing from
// its record; attribute values are entity-decoded.
func ExtractElements(body, element string, attrs ...string) []map[string]string {
	re := regexp.MustCompile(`(?is)<(?:\w+:)?` + regexp.QuoteMeta(element) + `\b([^>]*?)/?>`)

	var records []map[string]string
	for _, m := range re.FindAllStringSubmatch(body, -1) {
		record := make(map[string]string, len(attrs))
		for _, attr := range attrs {
			if v, ok := extractAttribute(m[1], attr); ok {
				record[attr] = v
			}
		}
		records = append(records, record)
	}
	return records
}

// ExtractAttribute returns the decoded value of an attribute anywhere in
// the body, for responses where a single attribute carries the payload.
func ExtractAttribute(body, name string) (string, bool) {
	return extractAttribute(body, name)
}

func extractAttribute(text, name string) (string, bool) {
	re := regexp.MustCompile(`(?is)\b` + regexp.QuoteMeta(name) + `\s*=\s*("([^"]*)"|'([^']*)')`)
	matches := re.FindStringSubmatch(text)
	if matches == nil {
		return "", false
	}
	value := matches[2]
	if matches[1] != "" && strings.HasPrefix(matches[1], "'") {
		value = matches[3]
	}
	return DecodeEntities(value), true
}

// DecodeEntities decodes HTML/XML entity references, named and numeric,
// to their literal characters.
func DecodeEntities(s string) string {
	return html.UnescapeString(s)
}
