package service

import (
	"gorm.io/gorm"

	"backoffice_backend/internals/features/catalog/category/model"
)

// ExpandWithAncestors returns the submitted ids plus every ancestor
// reachable through parentOf, deduplicated, submission order first then
// ancestors as discovered. A visited set guards against parent cycles so
// a corrupted tree cannot hang the walk.
func ExpandWithAncestors(ids []int64, parentOf map[int64]*int64) []int64 {
	out := make([]int64, 0, len(ids))
	seen := make(map[int64]bool, len(ids))

	add := func(id int64) {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}

	for _, id := range ids {
		add(id)
	}
	for _, id := range ids {
		visited := map[int64]bool{id: true}
		parent := parentOf[id]
		for parent != nil && !visited[*parent] {
			visited[*parent] = true
			add(*parent)
			parent = parentOf[*parent]
		}
	}
	return out
}

// ParentMap loads the category tree as id -> parent id.
func ParentMap(db *gorm.DB) (map[int64]*int64, error) {
	var rows []model.CategoryModel
	if err := db.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[int64]*int64, len(rows))
	for _, r := range rows {
		out[r.CategoryID] = r.CategoryParentID
	}
	return out, nil
}

// NameMap loads the category tree as id -> name.
func NameMap(db *gorm.DB, ids []int64) (map[int64]string, error) {
	out := make(map[int64]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []model.CategoryModel
	if err := db.Where("category_id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, r := range rows {
		out[r.CategoryID] = r.CategoryName
	}
	return out, nil
}
