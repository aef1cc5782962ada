package dto

type UploadDocumentDTO struct {
	Title      string `form:"title"       validate:"required,max=200"`
	Category   string `form:"category"    validate:"max=50"`
	UploadedBy string `form:"uploaded_by"`
}
