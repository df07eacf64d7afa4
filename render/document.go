package render

import (
	"fmt"
	"os"
)

// documentShell wraps a MathML fragment in the smallest XHTML document a
// browser will render. The fragment is spliced in verbatim: it is markup
// already, and escaping it would destroy it.
const documentShell = `<!DOCTYPE html>
<html xmlns="http://www.w3.org/1999/xhtml">
<head>
	<meta charset="utf-8"/>
	<title>MathML fragment</title>
</head>
<body>%s</body>
</html>
`

// Document returns the full XHTML page for one fragment.
func Document(fragment string) string {
	return fmt.Sprintf(documentShell, fragment)
}

// writeDocument writes the wrapped fragment to a temp file and returns
// its path plus a cleanup func. The file lives only for one screenshot.
func writeDocument(fragment string) (string, func(), error) {
	f, err := os.CreateTemp("", "typeset-mathml-*.html")
	if err != nil {
		return "", nil, fmt.Errorf("creating temp document: %w", err)
	}
	path := f.Name()
	cleanup := func() { os.Remove(path) }

	if _, err := f.WriteString(Document(fragment)); err != nil {
		f.Close()
		cleanup()
		return "", nil, fmt.Errorf("writing temp document: %w", err)
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("closing temp document: %w", err)
	}
	return path, cleanup, nil
}
