package controller

import (
	"strconv"

	"question_bank_backend/internal/service"
	"question_bank_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ExaminationController struct {
	Service *service.ExaminationService
}

func NewExaminationController(svc *service.ExaminationService) *ExaminationController {
	return &ExaminationController{Service: svc}
}

// @Summary 获取考试列表（分页）
// @Tags 考试
// @Produce json
// @Security ApiKeyAuth
// @Param search query string false "按名称过滤"
// @Param limit query int false "每页数量，默认10"
// @Param page_offset query int false "起始偏移，默认0"
// @Success 200 {object} util.Response
// @Router /api/examinations/ [get]
func (ctl *ExaminationController) List(c *gin.Context) {
	p, ok := paginationParams(c)
	if !ok {
		return
	}

	exams, meta, err := ctl.Service.List(c.Query("search"), p)
	if err != nil {
		util.HandleError(c, err)
		return
	}

	util.Success(c, gin.H{"examinations": exams, "pagination": meta}, "Fetched examinations successfully.")
}

// @Summary 获取考试详情（含题目集合）
// @Tags 考试
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "考试ID"
// @Success 200 {object} util.Response
// @Router /api/examinations/{id}/ [get]
func (ctl *ExaminationController) Get(c *gin.Context) {
	id, ok := examID(c)
	if !ok {
		return
	}

	exam, err := ctl.Service.Get(id)
	if err != nil {
		util.HandleError(c, err)
		return
	}

	util.Success(c, gin.H{"examination": exam}, "Fetched examination successfully.")
}

// @Summary 创建考试
// @Tags 考试
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.ExaminationRequest true "考试信息与题目ID集合"
// @Success 201 {object} util.Response
// @Router /api/examinations/create/ [post]
func (ctl *ExaminationController) Create(c *gin.Context) {
	var req service.ExaminationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	exam, err := ctl.Service.Create(req)
	if err != nil {
		util.HandleError(c, err)
		return
	}

	util.Created(c, gin.H{"examination": exam}, "Examination created successfully.")
}

// @Summary 更新考试（题目集合整体替换）
// @Tags 考试
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "考试ID"
// @Param body body service.ExaminationRequest true "考试信息与题目ID集合"
// @Success 200 {object} util.Response
// @Router /api/examinations/{id}/update/ [put]
func (ctl *ExaminationController) Update(c *gin.Context) {
	id, ok := examID(c)
	if !ok {
		return
	}

	var req service.ExaminationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	exam, err := ctl.Service.Update(id, req)
	if err != nil {
		util.HandleError(c, err)
		return
	}

	util.Success(c, gin.H{"examination": exam}, "Examination updated successfully.")
}

// @Summary 删除考试（题目本身保留）
// @Tags 考试
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "考试ID"
// @Success 200 {object} util.Response
// @Router /api/examinations/{id}/delete/ [delete]
func (ctl *ExaminationController) Delete(c *gin.Context) {
	id, ok := examID(c)
	if !ok {
		return
	}

	exam, err := ctl.Service.Delete(id)
	if err != nil {
		util.HandleError(c, err)
		return
	}

	util.Success(c, gin.H{"examination": exam}, "Examination deleted successfully.")
}

func examID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(c, "invalid examination id")
		return 0, false
	}
	return uint(id), true
}
