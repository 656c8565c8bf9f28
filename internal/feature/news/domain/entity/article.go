// Package entity はnewsフィーチャーのドメインモデルを定義します。
package entity

import "time"

// Source は記事の配信元です。
type Source struct {
	ID   *string `yaml:"id,omitempty"`
	Name string  `yaml:"name"`
}

// Article はニュース記事1件を表します。
// Author以降のフィールドは上流から取得した記事にのみ含まれます。
type Article struct {
	Title       string     `yaml:"title"`
	Description *string    `yaml:"description"`
	URL         string     `yaml:"url"`
	Source      *Source    `yaml:"source,omitempty"`
	Author      *string    `yaml:"-"`
	URLToImage  *string    `yaml:"-"`
	PublishedAt *time.Time `yaml:"-"`
	Content     *string    `yaml:"-"`
}
