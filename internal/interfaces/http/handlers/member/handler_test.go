package member

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	memberdto "gestiontickets/internal/application/member/dto"
	"gestiontickets/internal/application/member/usecases"
	"gestiontickets/internal/interfaces/http/handlers/testutil"
	apperrors "gestiontickets/internal/shared/errors"
)

type mockCreateMemberUC struct {
	result *usecases.CreateMemberResult
	err    error
}

func (m *mockCreateMemberUC) Execute(_ context.Context, _ usecases.CreateMemberCommand) (*usecases.CreateMemberResult, error) {
	return m.result, m.err
}

type mockUpdateMemberUC struct {
	err error
}

func (m *mockUpdateMemberUC) Execute(_ context.Context, _ usecases.UpdateMemberCommand) error {
	return m.err
}

type mockDeleteMemberUC struct {
	err error
}

func (m *mockDeleteMemberUC) Execute(_ context.Context, _ usecases.DeleteMemberCommand) error {
	return m.err
}

type mockGetMemberUC struct {
	result *memberdto.MemberDTO
	err    error
}

func (m *mockGetMemberUC) Execute(_ context.Context, _ usecases.GetMemberQuery) (*memberdto.MemberDTO, error) {
	return m.result, m.err
}

type mockListMembersUC struct {
	result *usecases.ListMembersResult
	err    error
	query  usecases.ListMembersQuery
}

func (m *mockListMembersUC) Execute(_ context.Context, query usecases.ListMembersQuery) (*usecases.ListMembersResult, error) {
	m.query = query
	return m.result, m.err
}

type mockUploadPhotoUC struct {
	result *usecases.UploadPhotoResult
	err    error
	cmd    usecases.UploadPhotoCommand
}

func (m *mockUploadPhotoUC) Execute(_ context.Context, cmd usecases.UploadPhotoCommand) (*usecases.UploadPhotoResult, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockImportMembersUC struct {
	result *usecases.ImportMembersResult
	err    error
	cmd    usecases.ImportMembersCommand
}

func (m *mockImportMembersUC) Execute(_ context.Context, cmd usecases.ImportMembersCommand) (*usecases.ImportMembersResult, error) {
	m.cmd = cmd
	return m.result, m.err
}

type testDeps struct {
	createMemberUC  usecases.CreateMemberExecutor
	updateMemberUC  usecases.UpdateMemberExecutor
	deleteMemberUC  usecases.DeleteMemberExecutor
	getMemberUC     usecases.GetMemberExecutor
	listMembersUC   usecases.ListMembersExecutor
	uploadPhotoUC   usecases.UploadPhotoExecutor
	importMembersUC usecases.ImportMembersExecutor
}

func newTestMemberHandler(deps testDeps) *MemberHandler {
	return NewMemberHandler(
		deps.createMemberUC,
		deps.updateMemberUC,
		deps.deleteMemberUC,
		deps.getMemberUC,
		deps.listMembersUC,
		deps.uploadPhotoUC,
		deps.importMembersUC,
	)
}

// newMultipartContext builds a request carrying one uploaded file.
func newMultipartContext(t *testing.T, path, field, filename string, content []byte) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c, w
}

// importWorkbook builds an in-memory xlsx with a header row plus the given
// data rows.
func importWorkbook(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	header := []interface{}{"Surname", "Given names", "National ID", "Birth date"}
	require.NoError(t, f.SetSheetRow(sheet, "A1", &header))
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &rows[i]))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestMemberHandler_CreateMember_Success(t *testing.T) {
	mockUC := &mockCreateMemberUC{result: &usecases.CreateMemberResult{MemberID: 1}}
	handler := newTestMemberHandler(testDeps{createMemberUC: mockUC})

	reqBody := MemberRequest{
		Surname:    "garcia",
		GivenNames: "ana",
		NationalID: "30123456",
		BirthDate:  "1985-04-02",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/members", reqBody)

	handler.CreateMember(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
}

func TestMemberHandler_CreateMember_BindError(t *testing.T) {
	handler := newTestMemberHandler(testDeps{})

	reqBody := map[string]string{"given_names": "ana"}
	c, w := testutil.NewTestContext(http.MethodPost, "/members", reqBody)

	handler.CreateMember(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.NotNil(t, resp.Error)
	assert.Contains(t, resp.Error.Details, "surname is required")
}

func TestMemberHandler_CreateMember_BadBirthDate(t *testing.T) {
	handler := newTestMemberHandler(testDeps{})

	reqBody := MemberRequest{
		Surname:    "garcia",
		GivenNames: "ana",
		NationalID: "30123456",
		BirthDate:  "02/04/1985",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/members", reqBody)

	handler.CreateMember(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.NotNil(t, resp.Error)
	assert.Contains(t, resp.Error.Message, "birth date must be YYYY-MM-DD")
}

func TestMemberHandler_UpdateMember_StaleWrite(t *testing.T) {
	mockUC := &mockUpdateMemberUC{err: apperrors.NewConcurrencyError("member was modified concurrently")}
	handler := newTestMemberHandler(testDeps{updateMemberUC: mockUC})

	reqBody := MemberRequest{
		Surname:    "garcia",
		GivenNames: "ana",
		NationalID: "30123456",
		BirthDate:  "1985-04-02",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/members/1", reqBody)
	testutil.SetURLParam(c, "id", "1")

	handler.UpdateMember(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestMemberHandler_DeleteMember_BlockedByTickets(t *testing.T) {
	mockUC := &mockDeleteMemberUC{err: apperrors.NewConflictError("member has tickets and cannot be deleted")}
	handler := newTestMemberHandler(testDeps{deleteMemberUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPost, "/members/1/delete", nil)
	testutil.SetURLParam(c, "id", "1")

	handler.DeleteMember(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestMemberHandler_GetMember_Success(t *testing.T) {
	now := time.Now().UTC()
	mockUC := &mockGetMemberUC{
		result: &memberdto.MemberDTO{
			ID:         1,
			Surname:    "Garcia",
			GivenNames: "Ana",
			NationalID: "30123456",
			BirthDate:  "1985-04-02",
			PhotoURL:   "/static/photos/abc.jpg",
			CreatedAt:  now,
			UpdatedAt:  now,
		},
	}
	handler := newTestMemberHandler(testDeps{getMemberUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/members/1", nil)
	testutil.SetURLParam(c, "id", "1")

	handler.GetMember(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Contains(t, string(resp.Data), "/static/photos/abc.jpg")
}

func TestMemberHandler_ListMembers(t *testing.T) {
	mockUC := &mockListMembersUC{
		result: &usecases.ListMembersResult{
			Members:  []*memberdto.MemberDTO{{ID: 1, Surname: "Garcia"}},
			Total:    6,
			Page:     1,
			PageSize: 5,
		},
	}
	handler := newTestMemberHandler(testDeps{listMembersUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/members", nil)
	testutil.SetQueryParams(c, map[string]string{"surname": "gar"})

	handler.ListMembers(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "gar", mockUC.query.Surname)
	assert.Equal(t, 1, mockUC.query.Page)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Contains(t, string(resp.Data), `"total_pages":2`)
	assert.Contains(t, string(resp.Data), `"surname":"gar"`)
}

func TestMemberHandler_UploadPhoto_Success(t *testing.T) {
	mockUC := &mockUploadPhotoUC{result: &usecases.UploadPhotoResult{PhotoURL: "/static/photos/key.jpg"}}
	handler := newTestMemberHandler(testDeps{uploadPhotoUC: mockUC})

	c, w := newMultipartContext(t, "/members/1/photo", "photo", "selfie.jpg", []byte("jpeg-bytes"))
	testutil.SetURLParam(c, "id", "1")

	handler.UploadPhoto(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(1), mockUC.cmd.MemberID)
	assert.Equal(t, "selfie.jpg", mockUC.cmd.Filename)
}

func TestMemberHandler_UploadPhoto_MissingFile(t *testing.T) {
	handler := newTestMemberHandler(testDeps{})

	c, w := testutil.NewTestContext(http.MethodPost, "/members/1/photo", nil)
	testutil.SetURLParam(c, "id", "1")

	handler.UploadPhoto(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMemberHandler_ImportMembers_Success(t *testing.T) {
	mockUC := &mockImportMembersUC{result: &usecases.ImportMembersResult{Imported: 2}}
	handler := newTestMemberHandler(testDeps{importMembersUC: mockUC})

	workbook := importWorkbook(t, [][]interface{}{
		{"garcia", "ana maria", "30123456", "1985-04-02"},
		{"lopez", "juan", "28987654", "1979-11-20"},
	})
	c, w := newMultipartContext(t, "/members/import", "file", "members.xlsx", workbook)

	handler.ImportMembers(c)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, mockUC.cmd.Rows, 2)
	assert.Equal(t, 2, mockUC.cmd.Rows[0].Row)
	assert.Equal(t, "garcia", mockUC.cmd.Rows[0].Surname)
	assert.Equal(t, "1985-04-02", mockUC.cmd.Rows[0].BirthDate.Format("2006-01-02"))
	assert.Equal(t, 3, mockUC.cmd.Rows[1].Row)
}

func TestMemberHandler_ImportMembers_BadWorkbook(t *testing.T) {
	handler := newTestMemberHandler(testDeps{})

	c, w := newMultipartContext(t, "/members/import", "file", "members.xlsx", []byte("not an xlsx"))

	handler.ImportMembers(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMemberHandler_ImportMembers_MissingFile(t *testing.T) {
	handler := newTestMemberHandler(testDeps{})

	c, w := testutil.NewTestContext(http.MethodPost, "/members/import", nil)

	handler.ImportMembers(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
