package controller

import (
	"question_bank_backend/internal/service"
	"question_bank_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SubjectController struct {
	Service *service.SubjectService
}

func NewSubjectController(svc *service.SubjectService) *SubjectController {
	return &SubjectController{Service: svc}
}

// @Summary 获取学科列表（分页）
// @Tags 学科
// @Produce json
// @Security ApiKeyAuth
// @Param search query string false "按编码和名称过滤"
// @Param limit query int false "每页数量，默认10"
// @Param page_offset query int false "起始偏移，默认0"
// @Success 200 {object} util.Response
// @Router /api/subjects/ [get]
func (ctl *SubjectController) List(c *gin.Context) {
	p, ok := paginationParams(c)
	if !ok {
		return
	}

	subjects, meta, err := ctl.Service.List(c.Query("search"), p)
	if err != nil {
		util.HandleError(c, err)
		return
	}

	util.Success(c, gin.H{"subjects": subjects, "pagination": meta}, "Fetched subjects successfully.")
}

// @Summary 创建学科
// @Tags 学科
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.CreateSubjectRequest true "学科编码与名称"
// @Success 201 {object} util.Response
// @Router /api/subjects/create/ [post]
func (ctl *SubjectController) Create(c *gin.Context) {
	var req service.CreateSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	subject, err := ctl.Service.Create(req)
	if err != nil {
		util.HandleError(c, err)
		return
	}

	util.Created(c, gin.H{"subject": subject}, "Subject created successfully.")
}

// @Summary 更新学科
// @Tags 学科
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "学科编码"
// @Param body body service.UpdateSubjectRequest true "学科名称"
// @Success 200 {object} util.Response
// @Router /api/subjects/{id}/update/ [put]
func (ctl *SubjectController) Update(c *gin.Context) {
	var req service.UpdateSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	subject, err := ctl.Service.Update(c.Param("id"), req)
	if err != nil {
		util.HandleError(c, err)
		return
	}

	util.Success(c, gin.H{"subject": subject}, "Subject updated successfully.")
}

// @Summary 删除学科（级联删除其主题和题目）
// @Tags 学科
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "学科编码"
// @Success 200 {object} util.Response
// @Router /api/subjects/{id}/delete/ [delete]
func (ctl *SubjectController) Delete(c *gin.Context) {
	subject, err := ctl.Service.Delete(c.Param("id"))
	if err != nil {
		util.HandleError(c, err)
		return
	}

	util.Success(c, gin.H{"subject": subject}, "Subject deleted successfully.")
}
