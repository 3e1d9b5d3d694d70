package dto

// ActionRequest is the body of POST and PUT requests. All fields are
// pointers so a missing field can be told apart from a zero value.
type ActionRequest struct {
	Action *string `json:"action" validate:"required,notblank"`
	Date   *string `json:"date" validate:"required,datetime=2006-01-02,notfuture"`
	Points *int    `json:"points" validate:"required,min=0"`
}

// ActionPatchRequest is the body of PATCH requests. Only supplied fields
// are validated; nil fields are left untouched by the merge.
type ActionPatchRequest struct {
	Action *string `json:"action" validate:"omitempty,notblank"`
	Date   *string `json:"date" validate:"omitempty,datetime=2006-01-02,notfuture"`
	Points *int    `json:"points" validate:"omitempty,min=0"`
}
