package file

type CreateFolderRequest struct {
	Name     string `json:"name" binding:"required"`
	ParentID string `json:"parent_id" binding:"omitempty,uuid"`
}

type FolderResponse struct {
	ID       string `json:"id"`
	OrgID    string `json:"org_id"`
	ParentID string `json:"parent_id,omitempty"`
	Name     string `json:"name"`
}

type FileResponse struct {
	ID          string `json:"id"`
	OrgID       string `json:"org_id"`
	FolderID    string `json:"folder_id,omitempty"`
	UploaderID  string `json:"uploader_id"`
	Name        string `json:"name"`
	ContentType string `json:"content_type,omitempty"`
	Size        int64  `json:"size"`
}
