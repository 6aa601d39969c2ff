package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kelvinlyk2002/final-backend/internal/logic"
	"gorm.io/gorm"
)

// ProjectHandler 项目处理器
type ProjectHandler struct {
	projectLogic *logic.ProjectLogic
	mediaLogic   *logic.MediaLogic
}

// NewProjectHandler 创建项目处理器
func NewProjectHandler(db *gorm.DB, mediaDir string) *ProjectHandler {
	return &ProjectHandler{
		projectLogic: logic.NewProjectLogic(db),
		mediaLogic:   logic.NewMediaLogic(db, mediaDir),
	}
}

// InitiateProject 创建项目（multipart表单，可附带图片）
func (h *ProjectHandler) InitiateProject(c *gin.Context) {
	var req InitiateProjectRequest
	if err := c.ShouldBind(&req); err != nil {
		FieldErrorsResponse(c, map[string]string{"request": err.Error()})
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		FieldErrorsResponse(c, errs)
		return
	}

	project, err := h.projectLogic.CreateProject(logic.CreateProjectInput{
		Title:              req.Title,
		Description:        req.Description,
		Category:           req.Category,
		WalletAddress:      req.WalletAddress,
		ProjectAddress:     req.ProjectAddress,
		CommunityOversight: req.CommunityOversight,
		ReleaseEpoch:       req.ReleaseEpoch,
		TransactionHash:    req.TransactionHash,
		Chain:              req.Chain,
		ChainId:            req.ChainId,
		Currency:           req.Currency,
		CurrencyName:       req.CurrencyName,
	})
	if err != nil {
		LogicErrorResponse(c, err)
		return
	}

	// 附带的图片逐张保存，失败的静默跳过
	if form, err := c.MultipartForm(); err == nil && form != nil {
		h.mediaLogic.SaveProjectImages(project.Id, form.File["images"])
	}

	c.Status(http.StatusOK)
}

// GetProjectData 获取项目全量数据
func (h *ProjectHandler) GetProjectData(c *gin.Context) {
	projectAddress := c.Param("project_address")

	project, err := h.projectLogic.GetProjectData(projectAddress)
	if err != nil {
		LogicErrorResponse(c, err)
		return
	}

	DataResponse(c, http.StatusOK, newProjectData(project))
}

// AddCurrency 向项目追加可接受的代币
func (h *ProjectHandler) AddCurrency(c *gin.Context) {
	var req AddCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	err := h.projectLogic.AddCurrency(req.ProjectAddress, req.Chain, req.ChainId, req.CurrencyAddress, req.CurrencyName)
	if err != nil {
		LogicErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "Currency successfully added")
}

// SearchProjects 按字段搜索项目
func (h *ProjectHandler) SearchProjects(c *gin.Context) {
	field := c.Query("field")
	value := c.Query("value")

	projects, err := h.projectLogic.SearchProjects(field, value)
	if err != nil {
		LogicErrorResponse(c, err)
		return
	}

	results := make([]ProjectData, 0, len(projects))
	for i := range projects {
		results = append(results, newProjectData(&projects[i]))
	}

	DataResponse(c, http.StatusOK, results)
}
