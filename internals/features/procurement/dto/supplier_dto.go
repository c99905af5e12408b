// internals/features/procurement/dto/supplier_dto.go
package dto

import (
	"strings"

	m "sekolahku_backend/internals/features/procurement/model"
)

type CreateSupplierRequest struct {
	Code string `json:"supplier_code" form:"supplier_code" validate:"required,min=1,max=40"`
	Name string `json:"supplier_name" form:"supplier_name" validate:"required,min=1,max=160"`

	Contact *string `json:"supplier_contact" form:"supplier_contact" validate:"omitempty,max=120"`
	Phone   *string `json:"supplier_phone"   form:"supplier_phone"   validate:"omitempty,max=30"`
	Email   *string `json:"supplier_email"   form:"supplier_email"   validate:"omitempty,email,max=120"`
	Address *string `json:"supplier_address" form:"supplier_address"`
}

func (r *CreateSupplierRequest) Normalize() {
	r.Code = strings.TrimSpace(r.Code)
	r.Name = strings.TrimSpace(r.Name)
	trimPtr(&r.Contact)
	trimPtr(&r.Phone)
	trimPtr(&r.Email)
	trimPtr(&r.Address)
}

func (r *CreateSupplierRequest) ToModel() *m.SupplierModel {
	return &m.SupplierModel{
		SupplierCode:    r.Code,
		SupplierName:    r.Name,
		SupplierContact: r.Contact,
		SupplierPhone:   r.Phone,
		SupplierEmail:   r.Email,
		SupplierAddr:    r.Address,
	}
}

type UpdateSupplierRequest struct {
	Code *string `json:"supplier_code" form:"supplier_code" validate:"omitempty,min=1,max=40"`
	Name *string `json:"supplier_name" form:"supplier_name" validate:"omitempty,min=1,max=160"`

	Contact *string `json:"supplier_contact" form:"supplier_contact" validate:"omitempty,max=120"`
	Phone   *string `json:"supplier_phone"   form:"supplier_phone"   validate:"omitempty,max=30"`
	Email   *string `json:"supplier_email"   form:"supplier_email"   validate:"omitempty,email,max=120"`
	Address *string `json:"supplier_address" form:"supplier_address"`
}

func (r *UpdateSupplierRequest) Normalize() {
	trimPtr(&r.Code)
	trimPtr(&r.Name)
	trimPtr(&r.Contact)
	trimPtr(&r.Phone)
	trimPtr(&r.Email)
	trimPtr(&r.Address)
}

func (r *UpdateSupplierRequest) ApplyToModel(mm *m.SupplierModel) {
	if r.Code != nil {
		mm.SupplierCode = *r.Code
	}
	if r.Name != nil {
		mm.SupplierName = *r.Name
	}
	if r.Contact != nil {
		mm.SupplierContact = r.Contact
	}
	if r.Phone != nil {
		mm.SupplierPhone = r.Phone
	}
	if r.Email != nil {
		mm.SupplierEmail = r.Email
	}
	if r.Address != nil {
		mm.SupplierAddr = r.Address
	}
}
