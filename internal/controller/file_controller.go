package controller

import (
	"question_bank_backend/internal/service"
	"question_bank_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type FileController struct {
	Service *service.ImageService
}

func NewFileController(svc *service.ImageService) *FileController {
	return &FileController{Service: svc}
}

// @Summary 上传图片附件
// @Tags 附件
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param file formData file true "图片文件"
// @Param folder formData string true "存储目录"
// @Success 201 {object} util.Response
// @Router /api/files/upload/ [post]
func (ctl *FileController) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		util.BadRequest(c, "file is required")
		return
	}

	folder := c.PostForm("folder")
	if folder == "" {
		util.BadRequest(c, "folder is required")
		return
	}

	image, err := ctl.Service.Upload(c.Request.Context(), file, folder)
	if err != nil {
		util.HandleError(c, err)
		return
	}

	util.Created(c, gin.H{"image": image}, "Image uploaded successfully.")
}

// @Summary 删除图片附件（级联删除引用它的题目和选项）
// @Tags 附件
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "图片UUID"
// @Success 200 {object} util.Response
// @Router /api/files/{id}/delete/ [delete]
func (ctl *FileController) Delete(c *gin.Context) {
	image, err := ctl.Service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		util.HandleError(c, err)
		return
	}

	util.Success(c, gin.H{"image": image}, "Image deleted successfully.")
}
