package cleanup

import (
	"strings"

	"github.com/htmltidy/gotidy/config"
	"github.com/htmltidy/gotidy/tree"
)

// encodingLabels names the charset= token VerifyHTTPEquiv writes for each
// output encoding (VerifyHTTPEquiv's switch over TidyOutCharEncoding).
var encodingLabels = map[config.Encoding]string{
	config.EncRaw:      "raw",
	config.EncASCII:    "us-ascii",
	config.EncLatin1:   "iso-8859-1",
	config.EncUTF8:     "UTF8",
	config.EncISO2022:  "iso-2022",
	config.EncMac:      "mac",
	config.EncWin1252:  "windows-1252",
	config.EncUTF16LE:  "UTF-16LE",
	config.EncUTF16BE:  "UTF-16BE",
	config.EncUTF16:    "UTF-16",
	config.EncBig5:     "big5",
	config.EncShiftJIS: "shiftjis",
}

// VerifyHTTPEquiv finds <meta http-equiv="Content-Type">'s content
// attribute and rewrites its charset= property to name the document's
// configured output encoding (VerifyHTTPEquiv).
func (c *Cleaner) VerifyHTTPEquiv(head *tree.Node) {
	if head == nil {
		return
	}
	label, known := encodingLabels[c.cfg.OutputEncoding]
	if !known {
		return
	}

	for child := head.FirstChild; child != nil; child = child.NextSibling {
		if child.ElementName != "meta" {
			continue
		}
		httpEquiv, ok := child.Attr("http-equiv")
		if !ok || !strings.EqualFold(httpEquiv, "content-type") {
			continue
		}
		content, ok := child.Attr("content")
		if !ok {
			continue
		}

		var props []cssProp
		rewrote := false
		for _, part := range strings.Split(content, ";") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			name, value := part, ""
			if i := strings.Index(part, "="); i >= 0 {
				name, value = part[:i], part[i+1:]
			}
			if strings.HasPrefix(strings.ToLower(name), "charset") {
				name, value = "charset", label
				rewrote = true
			}
			props = append(props, cssProp{name: name, value: value})
		}
		if !rewrote {
			continue
		}

		parts := make([]string, len(props))
		for i, p := range props {
			if p.value == "" {
				parts[i] = p.name
			} else {
				parts[i] = p.name + "=" + p.value
			}
		}
		child.SetAttr("content", strings.Join(parts, "; "))
	}
}
