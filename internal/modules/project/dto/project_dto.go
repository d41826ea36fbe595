package dto

type CreateProjectInput struct {
	Name        string  `json:"name" binding:"required,min=2,max=100"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=1000"`
	RepoURL     *string `json:"repo_url,omitempty" binding:"omitempty,url"`
}
