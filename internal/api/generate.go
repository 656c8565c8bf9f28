// Package api はopenapi.yamlから生成したリクエスト/レスポンス型とginサーバーのバインディングを提供します。
package api

//go:generate go tool oapi-codegen -generate types,gin -package api -o api.gen.go openapi.yaml
