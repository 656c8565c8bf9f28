// Package router はHTTPルーティングを組み立てます。
package router

import (
	"html/template"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"kabu_app/internal/api"
	newshandler "kabu_app/internal/feature/news/transport/handler"
	quotehandler "kabu_app/internal/feature/quote/transport/handler"
	symbolhandler "kabu_app/internal/feature/symbollist/transport/handler"
	"kabu_app/web"
)

// PageTitle はダッシュボードのタイトルです。
const PageTitle = "株価ダッシュボード"

// Handlers はルーターに登録するハンドラーの集合です。
type Handlers struct {
	Quote  *quotehandler.QuoteHandler
	News   *newshandler.NewsHandler
	Symbol *symbolhandler.SymbolHandler
	Health gin.HandlerFunc
}

// apiServer は各フィーチャーのハンドラーを束ねて生成されたServerInterfaceを満たします。
type apiServer struct {
	*quotehandler.QuoteHandler
	*newshandler.NewsHandler
	*symbolhandler.SymbolHandler
}

var _ api.ServerInterface = apiServer{}

// NewRouter はページ、静的ファイル、JSON APIを登録したginエンジンを返します。
// allowedOriginsが空の場合はCORSミドルウェアを付けません。"*" は全オリジン許可です。
func NewRouter(h Handlers, allowedOrigins []string) *gin.Engine {
	r := gin.Default()

	if len(allowedOrigins) > 0 {
		r.Use(cors.New(corsConfig(allowedOrigins)))
	}

	// ページ
	r.SetHTMLTemplate(template.Must(template.ParseFS(web.Templates, "templates/*.html")))
	r.GET("/", page("index.html", PageTitle))
	r.GET("/study", page("study.html", "使い方"))
	r.StaticFS("/static", http.FS(web.Static()))

	// 導通確認用
	r.GET("/healthz", h.Health)
	r.HEAD("/healthz", h.Health)
	r.OPTIONS("/healthz", h.Health)

	// JSON API（openapi.yamlから生成したバインディング）
	api.RegisterHandlersWithOptions(r, apiServer{h.Quote, h.News, h.Symbol}, api.GinServerOptions{
		ErrorHandler: func(c *gin.Context, err error, status int) {
			c.JSON(status, api.ErrorResponse{Error: err.Error()})
		},
	})

	return r
}

func page(name, title string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, name, gin.H{"Title": title})
	}
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{http.MethodGet, http.MethodHead, http.MethodOptions}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	cfg.AllowOrigins = origins
	return cfg
}
