// Package entity はsymbollistフィーチャーのドメインモデルを定義します。
package entity

import "time"

// Symbol はダッシュボードで選択できる銘柄1件です。
// 株価データそのものではなく表示用の設定データです。
type Symbol struct {
	ID        uint      `gorm:"primaryKey"`
	Code      string    `gorm:"size:20;not null;uniqueIndex"` // ティッカー (例: 7203.T, ^N225)
	Name      string    `gorm:"size:255;not null"`            // 表示名
	Market    string    `gorm:"size:100;not null"`            // 市場 (TSE, INDEX など)
	IsActive  bool      `gorm:"not null;default:true"`        // falseの銘柄は一覧に出さない
	SortKey   int       `gorm:"not null;default:0;index"`     // 表示順
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
