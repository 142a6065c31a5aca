// Package pagination 提供与具体资源无关的 offset/limit 分页窗口计算，
// 所有可列出的资源（subjects、topics、questions、users ...）共用。
package pagination

import (
	"errors"
	"strconv"

	"gorm.io/gorm"
)

const DefaultLimit = 10

var (
	ErrInvalidLimit  = errors.New("limit must be a positive integer")
	ErrInvalidOffset = errors.New("offset must be a non-negative integer")
)

// Params 请求窗口。Limit 缺省为 10，Offset 缺省为 0。
type Params struct {
	Limit  int
	Offset int
}

// Parse 解析查询参数字符串。空串取默认值；limit <= 0 或 offset < 0 报错，
// 不做任何对集合边界的隐式收敛。
func Parse(limitStr, offsetStr string) (Params, error) {
	p := Params{Limit: DefaultLimit, Offset: 0}

	if limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit <= 0 {
			return Params{}, ErrInvalidLimit
		}
		p.Limit = limit
	}

	if offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err != nil || offset < 0 {
			return Params{}, ErrInvalidOffset
		}
		p.Offset = offset
	}

	return p, nil
}

// Scope 返回应用窗口的 GORM scope：collection[offset : offset+limit]。
func (p Params) Scope() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(p.Offset).Limit(p.Limit)
	}
}

// Meta 分页元数据。next/previous 为空表示没有下一页/上一页。
type Meta struct {
	Index    int   `json:"index"`
	Next     *int  `json:"next"`
	Previous *int  `json:"previous"`
	Limit    int   `json:"limit"`
	Offset   int   `json:"offset"`
	Count    int64 `json:"count"`
	Pages    int   `json:"pages"`
}

// NewMeta 按过滤后的总数计算元数据。
// index 是 offset/limit 向下取整：仅当 offset 恰为 limit 的倍数时才是
// 严格意义上的页号，任意 offset 下是有意保留的取整近似。
func NewMeta(p Params, count int64) Meta {
	m := Meta{
		Index:  p.Offset / p.Limit,
		Limit:  p.Limit,
		Offset: p.Offset,
		Count:  count,
		Pages:  int((count + int64(p.Limit) - 1) / int64(p.Limit)),
	}

	if count > int64(p.Offset+p.Limit) {
		next := p.Offset + p.Limit
		m.Next = &next
	}
	if p.Offset >= p.Limit {
		prev := p.Offset - p.Limit
		m.Previous = &prev
	}

	return m
}
