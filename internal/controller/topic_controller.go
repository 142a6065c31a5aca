package controller

import (
	"question_bank_backend/internal/service"
	"question_bank_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TopicController struct {
	Service *service.TopicService
}

func NewTopicController(svc *service.TopicService) *TopicController {
	return &TopicController{Service: svc}
}

// @Summary 获取学科下的主题列表（分页，按编码升序）
// @Tags 主题
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "学科编码"
// @Param search query string false "按编码和名称过滤"
// @Param limit query int false "每页数量，默认10"
// @Param page_offset query int false "起始偏移，默认0"
// @Success 200 {object} util.Response
// @Router /api/subjects/{id}/topics/ [get]
func (ctl *TopicController) ListBySubject(c *gin.Context) {
	p, ok := paginationParams(c)
	if !ok {
		return
	}

	topics, meta, err := ctl.Service.ListBySubject(c.Param("id"), c.Query("search"), p)
	if err != nil {
		util.HandleError(c, err)
		return
	}

	util.Success(c, gin.H{"topics": topics, "pagination": meta}, "Fetched topics successfully.")
}

// @Summary 在学科下创建主题
// @Tags 主题
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "学科编码"
// @Param body body service.CreateTopicRequest true "主题编码与名称"
// @Success 201 {object} util.Response
// @Router /api/subjects/{id}/topic/create/ [post]
func (ctl *TopicController) Create(c *gin.Context) {
	var req service.CreateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	topic, err := ctl.Service.Create(c.Param("id"), req)
	if err != nil {
		util.HandleError(c, err)
		return
	}

	util.Created(c, gin.H{"topic": topic}, "Topic created successfully.")
}

// @Summary 更新主题
// @Tags 主题
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "主题编码"
// @Param body body service.UpdateTopicRequest true "可选的新名称/新学科"
// @Success 200 {object} util.Response
// @Router /api/subjects/topic/{id}/update/ [put]
func (ctl *TopicController) Update(c *gin.Context) {
	var req service.UpdateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	topic, err := ctl.Service.Update(c.Param("id"), req)
	if err != nil {
		util.HandleError(c, err)
		return
	}

	util.Success(c, gin.H{"topic": topic}, "Topic updated successfully.")
}

// @Summary 删除主题（级联删除其题目）
// @Tags 主题
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "主题编码"
// @Success 200 {object} util.Response
// @Router /api/subjects/topic/{id}/delete/ [delete]
func (ctl *TopicController) Delete(c *gin.Context) {
	topic, err := ctl.Service.Delete(c.Param("id"))
	if err != nil {
		util.HandleError(c, err)
		return
	}

	util.Success(c, gin.H{"topic": topic}, "Topic deleted successfully.")
}
