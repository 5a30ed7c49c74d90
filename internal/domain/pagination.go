package domain

// PageQuery 分頁查詢參數，page 從 1 開始
type PageQuery struct {
	Page  int
	Limit int
}

// Normalize 修正非法參數並 clamp limit 上限
func (p PageQuery) Normalize(maxLimit int) PageQuery {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 10
	}
	if maxLimit > 0 && p.Limit > maxLimit {
		p.Limit = maxLimit
	}
	return p
}

// Skip 計算查詢偏移量
func (p PageQuery) Skip() int64 {
	return int64((p.Page - 1) * p.Limit)
}

// PageInfo 分頁結果資訊
type PageInfo struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

// NewPageInfo 計算 totalPages = ceil(total/limit)
func NewPageInfo(p PageQuery, total int64) PageInfo {
	limit := int64(p.Limit)
	totalPages := total / limit
	if total%limit != 0 {
		totalPages++
	}
	return PageInfo{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      total,
		TotalPages: totalPages,
	}
}
