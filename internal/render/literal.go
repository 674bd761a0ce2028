package render

import "strings"

// stringLiteral picks the literal form for content. Content containing a
// quote or escape character uses the raw `#"..."#` delimited form so the
// characters survive unescaped; everything else uses the simple quoted form.
// Selection is a pure function of the content.
func stringLiteral(content string) string {
	if strings.ContainsAny(content, "\"\\") {
		return `#"` + content + `"#`
	}
	return `"` + content + `"`
}
