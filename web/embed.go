// Package web はダッシュボードのHTMLテンプレートと静的ファイルを埋め込みます。
package web

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.html
var Templates embed.FS

//go:embed static
var static embed.FS

// Static は /static 配下で配信するファイルです。
func Static() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
