package dto

type CreateBookRequest struct {
	Name      string `json:"name"`
	Year      int    `json:"year"`
	Author    string `json:"author"`
	Summary   string `json:"summary"`
	Publisher string `json:"publisher"`
	PageCount int    `json:"pageCount"`
	ReadPage  int    `json:"readPage"`
	Reading   bool   `json:"reading"`
}

// UpdateBookRequest carries a partial book; nil fields keep the stored value.
type UpdateBookRequest struct {
	Name      *string `json:"name"`
	Year      *int    `json:"year"`
	Author    *string `json:"author"`
	Summary   *string `json:"summary"`
	Publisher *string `json:"publisher"`
	PageCount *int    `json:"pageCount"`
	ReadPage  *int    `json:"readPage"`
	Reading   *bool   `json:"reading"`
}

// ListBooksQuery holds the optional list filters. Reading and Finished
// are raw tokens: "1" means true, any other value means false.
type ListBooksQuery struct {
	Name     *string `form:"name"`
	Reading  *string `form:"reading"`
	Finished *string `form:"finished"`
}
