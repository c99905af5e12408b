// internals/features/assets/dto/asset_category_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/assets/model"
)

type CreateAssetCategoryRequest struct {
	CampusID *uuid.UUID `json:"category_campus_id" form:"category_campus_id"`

	Code string  `json:"category_code" form:"category_code" validate:"required,min=1,max=40"`
	Name string  `json:"category_name" form:"category_name" validate:"required,min=1,max=120"`
	Desc *string `json:"category_desc" form:"category_desc"`
}

func (r *CreateAssetCategoryRequest) Normalize() {
	r.Code = strings.TrimSpace(r.Code)
	r.Name = strings.TrimSpace(r.Name)
	trimPtr(&r.Desc)
}

func (r *CreateAssetCategoryRequest) ToModel(campusID uuid.UUID) *m.AssetCategoryModel {
	return &m.AssetCategoryModel{
		CategoryCampusID: campusID,
		CategoryCode:     r.Code,
		CategoryName:     r.Name,
		CategoryDesc:     r.Desc,
	}
}

type UpdateAssetCategoryRequest struct {
	Code *string `json:"category_code" form:"category_code" validate:"omitempty,min=1,max=40"`
	Name *string `json:"category_name" form:"category_name" validate:"omitempty,min=1,max=120"`
	Desc *string `json:"category_desc" form:"category_desc"`
}

func (r *UpdateAssetCategoryRequest) Normalize() {
	trimPtr(&r.Code)
	trimPtr(&r.Name)
	trimPtr(&r.Desc)
}

func (r *UpdateAssetCategoryRequest) ApplyToModel(mm *m.AssetCategoryModel) {
	if r.Code != nil {
		mm.CategoryCode = *r.Code
	}
	if r.Name != nil {
		mm.CategoryName = *r.Name
	}
	if r.Desc != nil {
		mm.CategoryDesc = r.Desc
	}
}
