// Package ui provides semantic text formatting for ctenv's human-readable
// output (list, status, locate, config).
//
// Each formatter stands for a kind of content and renders in color when the
// terminal supports it. When NO_COLOR is set or the output is not a color
// terminal, a textual decoration is used instead:
//
//	ui.Code.Sprint("foo:BUF_SZ=128")   // `foo:BUF_SZ=128`
//	ui.Highlight.Sprint("foo")         // 'foo'
//	ui.Muted.Sprintf("line %d", 3)     // (line 3)
//	ui.Path.Sprint(".env")             // .env
package ui
