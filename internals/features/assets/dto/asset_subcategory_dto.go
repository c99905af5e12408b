// internals/features/assets/dto/asset_subcategory_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/assets/model"
)

type CreateAssetSubcategoryRequest struct {
	CampusID   *uuid.UUID `json:"subcategory_campus_id" form:"subcategory_campus_id"`
	CategoryID uuid.UUID  `json:"subcategory_category_id" form:"subcategory_category_id" validate:"required"`

	Code string `json:"subcategory_code" form:"subcategory_code" validate:"required,min=1,max=40"`
	Name string `json:"subcategory_name" form:"subcategory_name" validate:"required,min=1,max=120"`
}

func (r *CreateAssetSubcategoryRequest) Normalize() {
	r.Code = strings.TrimSpace(r.Code)
	r.Name = strings.TrimSpace(r.Name)
}

func (r *CreateAssetSubcategoryRequest) ToModel(campusID uuid.UUID) *m.AssetSubcategoryModel {
	return &m.AssetSubcategoryModel{
		SubcategoryCampusID:   campusID,
		SubcategoryCategoryID: r.CategoryID,
		SubcategoryCode:       r.Code,
		SubcategoryName:       r.Name,
	}
}

type UpdateAssetSubcategoryRequest struct {
	CategoryID *uuid.UUID `json:"subcategory_category_id" form:"subcategory_category_id"`

	Code *string `json:"subcategory_code" form:"subcategory_code" validate:"omitempty,min=1,max=40"`
	Name *string `json:"subcategory_name" form:"subcategory_name" validate:"omitempty,min=1,max=120"`
}

func (r *UpdateAssetSubcategoryRequest) Normalize() {
	trimPtr(&r.Code)
	trimPtr(&r.Name)
}

func (r *UpdateAssetSubcategoryRequest) ApplyToModel(mm *m.AssetSubcategoryModel) {
	if r.CategoryID != nil {
		mm.SubcategoryCategoryID = *r.CategoryID
	}
	if r.Code != nil {
		mm.SubcategoryCode = *r.Code
	}
	if r.Name != nil {
		mm.SubcategoryName = *r.Name
	}
}
