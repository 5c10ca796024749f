package request

// ByIDRequest binds the :id path parameter common to detail endpoints.
type ByIDRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}

// ListParams are the pagination and sorting query parameters shared by list
// endpoints.
type ListParams struct {
	Page      int    `form:"page" binding:"omitempty,min=1"`
	PageSize  int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	SortOrder string `form:"sort_order" binding:"omitempty,oneof=asc desc ASC DESC"`
}

// Normalize applies defaults for unset pagination values.
func (p *ListParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = 20
	}
}
