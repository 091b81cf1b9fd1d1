package member

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gestiontickets/internal/application/member/usecases"
	"gestiontickets/internal/infrastructure/spreadsheet"
	"gestiontickets/internal/shared/constants"
	apperrors "gestiontickets/internal/shared/errors"
	"gestiontickets/internal/shared/logger"
	"gestiontickets/internal/shared/query"
	"gestiontickets/internal/shared/utils"
)

type MemberHandler struct {
	createMemberUC  usecases.CreateMemberExecutor
	updateMemberUC  usecases.UpdateMemberExecutor
	deleteMemberUC  usecases.DeleteMemberExecutor
	getMemberUC     usecases.GetMemberExecutor
	listMembersUC   usecases.ListMembersExecutor
	uploadPhotoUC   usecases.UploadPhotoExecutor
	importMembersUC usecases.ImportMembersExecutor
	logger          logger.Interface
}

func NewMemberHandler(
	createMemberUC usecases.CreateMemberExecutor,
	updateMemberUC usecases.UpdateMemberExecutor,
	deleteMemberUC usecases.DeleteMemberExecutor,
	getMemberUC usecases.GetMemberExecutor,
	listMembersUC usecases.ListMembersExecutor,
	uploadPhotoUC usecases.UploadPhotoExecutor,
	importMembersUC usecases.ImportMembersExecutor,
) *MemberHandler {
	return &MemberHandler{
		createMemberUC:  createMemberUC,
		updateMemberUC:  updateMemberUC,
		deleteMemberUC:  deleteMemberUC,
		getMemberUC:     getMemberUC,
		listMembersUC:   listMembersUC,
		uploadPhotoUC:   uploadPhotoUC,
		importMembersUC: importMembersUC,
		logger:          logger.NewLogger(),
	}
}

// CreateMember handles POST /members
func (h *MemberHandler) CreateMember(c *gin.Context) {
	var req MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create member", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	birthDate, err := req.ParseBirthDate()
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createMemberUC.Execute(c.Request.Context(), usecases.CreateMemberCommand{
		Surname:    req.Surname,
		GivenNames: req.GivenNames,
		NationalID: req.NationalID,
		BirthDate:  birthDate,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Member created successfully")
}

// UpdateMember handles POST /members/:id
func (h *MemberHandler) UpdateMember(c *gin.Context) {
	memberID, err := utils.ParseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	birthDate, err := req.ParseBirthDate()
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	err = h.updateMemberUC.Execute(c.Request.Context(), usecases.UpdateMemberCommand{
		MemberID:   memberID,
		Surname:    req.Surname,
		GivenNames: req.GivenNames,
		NationalID: req.NationalID,
		BirthDate:  birthDate,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Member updated successfully", nil)
}

// DeleteMember handles POST /members/:id/delete
func (h *MemberHandler) DeleteMember(c *gin.Context) {
	memberID, err := utils.ParseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteMemberUC.Execute(c.Request.Context(), usecases.DeleteMemberCommand{MemberID: memberID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Member deleted successfully", nil)
}

// GetMember handles GET /members/:id
func (h *MemberHandler) GetMember(c *gin.Context) {
	memberID, err := utils.ParseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getMemberUC.Execute(c.Request.Context(), usecases.GetMemberQuery{MemberID: memberID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListMembers handles GET /members
func (h *MemberHandler) ListMembers(c *gin.Context) {
	q := usecases.ListMembersQuery{
		Surname:    c.Query("surname"),
		GivenNames: c.Query("given_names"),
		NationalID: c.Query("national_id"),
		Page:       utils.ParsePageQuery(c),
	}

	result, err := h.listMembersUC.Execute(c.Request.Context(), q)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	paginator := query.NewPaginator(query.PageFilter{Page: result.Page, PageSize: result.PageSize}, result.Total)
	paginator.Keep("surname", q.Surname)
	paginator.Keep("given_names", q.GivenNames)
	paginator.Keep("national_id", q.NationalID)

	utils.ListSuccessResponse(c, result.Members, paginator)
}

// UploadPhoto handles POST /members/:id/photo
func (h *MemberHandler) UploadPhoto(c *gin.Context) {
	memberID, err := utils.ParseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "missing photo file")
		return
	}
	if fileHeader.Size > constants.MaxPhotoUploadBytes {
		utils.ErrorResponseWithError(c, apperrors.NewValidationError("photo exceeds the maximum upload size"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "unreadable photo file")
		return
	}
	defer file.Close()

	result, err := h.uploadPhotoUC.Execute(c.Request.Context(), usecases.UploadPhotoCommand{
		MemberID: memberID,
		File:     file,
		Filename: fileHeader.Filename,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Photo uploaded successfully", result)
}

// ImportMembers handles POST /members/import
func (h *MemberHandler) ImportMembers(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "missing import file")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "unreadable import file")
		return
	}
	defer file.Close()

	rows, err := spreadsheet.Read(file)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.ImportMembersCommand{Rows: make([]usecases.ImportRowCommand, len(rows))}
	for i, row := range rows {
		cmd.Rows[i] = usecases.ImportRowCommand{
			Row:        row.Row,
			Surname:    row.Surname,
			GivenNames: row.GivenNames,
			NationalID: row.NationalID,
			BirthDate:  row.BirthDate,
		}
	}

	result, err := h.importMembersUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Members imported successfully", result)
}
