package dto

// ===== Request =====

type CreateSalinTempelDTO struct {
	Title   string   `json:"title"   example:"ctrl+c ctrl+v"`
	Content string   `json:"content" example:"lorem ipsum dolor sit amet"`
	Author  string   `json:"author,omitempty" example:"a@x.com"`
	IsNSFW  bool     `json:"isNSFW"`
	Tags    []string `json:"tags" example:"funny,relatable"`
}

// UpdateSalinTempelDTO is a full-field overwrite of the post. Unlike create,
// an update never inserts new tag records.
type UpdateSalinTempelDTO struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Author  string   `json:"author,omitempty"`
	IsNSFW  bool     `json:"isNSFW"`
	Tags    []string `json:"tags"`
}
