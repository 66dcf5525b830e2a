package model

// Steak 一条煎牛排记录。
// ID 与 Timestamp 由服务端在创建时生成，创建后不再变更。
// Owner 为记录归属的身份字符串，读写均按字符串相等匹配。
type Steak struct {
	ID        string  `json:"id" gorm:"primaryKey;size:36"`
	Owner     string  `json:"owner" gorm:"not null;index"`
	Type      string  `json:"type" gorm:"not null"`
	Cost      float64 `json:"cost" gorm:"not null"`
	Weight    float64 `json:"weight" gorm:"not null"`
	Photo     *string `json:"photo"`
	Timestamp string  `json:"timestamp" gorm:"not null;index"` // RFC3339 UTC，字典序即时间序
}
