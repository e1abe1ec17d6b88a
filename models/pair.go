package models

// CategoryPair 类别/子类别名称组合，用于批量新增和扁平投影
type CategoryPair struct {
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
}

// CategoryCount 类别及其子类别数量的聚合行
type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}
