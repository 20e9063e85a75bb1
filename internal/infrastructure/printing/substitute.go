package printing

import (
	"html"
	"io"
	"strings"

	"github.com/valyala/fasttemplate"
)

const (
	startTag = "{{"
	endTag   = "}}"
)

// Data feeds Substitute. Values are escaped; Fragments are trusted HTML built
// by this package (item tables, lists) and are inserted as is.
type Data struct {
	Values    map[string]string
	Fragments map[string]string
}

// Substitute replaces {{TOKEN}} placeholders. Unknown tokens are kept
// untouched so a missing value is visible in the output.
func Substitute(template string, data Data) string {
	return fasttemplate.ExecuteFuncString(template, startTag, endTag, func(w io.Writer, tag string) (int, error) {
		name := strings.TrimSpace(tag)
		if v, ok := data.Fragments[name]; ok {
			return w.Write([]byte(v))
		}
		if v, ok := data.Values[name]; ok {
			return w.Write([]byte(html.EscapeString(v)))
		}
		return w.Write([]byte(startTag + tag + endTag))
	})
}
