package controller

import (
	"strconv"

	"question_bank_backend/internal/service"
	"question_bank_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	Service *service.QuestionService
}

func NewQuestionController(svc *service.QuestionService) *QuestionController {
	return &QuestionController{Service: svc}
}

// @Summary 获取题目列表（分页）
// @Tags 题目
// @Produce json
// @Security ApiKeyAuth
// @Param search query string false "按描述过滤"
// @Param limit query int false "每页数量，默认10"
// @Param page_offset query int false "起始偏移，默认0"
// @Success 200 {object} util.Response
// @Router /api/questions/ [get]
func (ctl *QuestionController) List(c *gin.Context) {
	p, ok := paginationParams(c)
	if !ok {
		return
	}

	questions, meta, err := ctl.Service.List(c.Query("search"), p)
	if err != nil {
		util.HandleError(c, err)
		return
	}

	util.Success(c, gin.H{"questions": questions, "pagination": meta}, "Fetched questions successfully.")
}

// @Summary 获取题目详情
// @Tags 题目
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "题目ID"
// @Success 200 {object} util.Response
// @Router /api/questions/{id}/ [get]
func (ctl *QuestionController) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(c, "invalid question id")
		return
	}

	question, err := ctl.Service.Get(uint(id))
	if err != nil {
		util.HandleError(c, err)
		return
	}

	util.Success(c, gin.H{"question": question}, "Fetched question successfully.")
}

// @Summary 在主题下创建题目及其选项（全部成功或全部回滚）
// @Tags 题目
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "主题编码"
// @Param body body service.CreateQuestionRequest true "题目与选项"
// @Success 201 {object} util.Response
// @Router /api/subjects/topic/{id}/question/create/ [post]
func (ctl *QuestionController) Create(c *gin.Context) {
	var req service.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	question, err := ctl.Service.Create(c.Param("id"), req)
	if err != nil {
		util.HandleError(c, err)
		return
	}

	util.Created(c, gin.H{"question": question}, "Question and options created successfully.")
}

// @Summary 删除题目（连同选项）
// @Tags 题目
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "题目ID"
// @Success 200 {object} util.Response
// @Router /api/questions/{id}/delete/ [delete]
func (ctl *QuestionController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(c, "invalid question id")
		return
	}

	question, err := ctl.Service.Delete(uint(id))
	if err != nil {
		util.HandleError(c, err)
		return
	}

	util.Success(c, gin.H{"question": question}, "Question deleted successfully.")
}
