package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/schema"

	"github.com/kelvinlyk2002/final-backend/internal/config"
	"github.com/kelvinlyk2002/final-backend/internal/logic"
	"github.com/kelvinlyk2002/final-backend/internal/model"
	"github.com/kelvinlyk2002/final-backend/internal/repository"
	"github.com/kelvinlyk2002/final-backend/internal/router"
)

// fakeRater 可控的汇率客户端替身
type fakeRater struct {
	rate float64
	err  error
}

func (f *fakeRater) USDRate(_ context.Context, _ string) (float64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.rate, nil
}

func setupRouter(t *testing.T, rater *fakeRater) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
		NamingStrategy: &schema.NamingStrategy{
			SingularTable: true,
		},
	})
	require.NoError(t, err)
	require.NoError(t, repository.Migrate(db))

	cfg := &config.Config{}
	cfg.Media.Dir = t.TempDir()

	return router.Setup(db, rater, cfg), db
}

func doRequest(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postJSON(r *gin.Engine, path string, payload map[string]interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return doRequest(r, req)
}

func initiateProjectForm(t *testing.T, fields map[string]string, images map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	for name, content := range images {
		part, err := writer.CreateFormFile("images", name)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestInitiateProjectAndGetProjectData(t *testing.T) {
	r, db := setupRouter(t, &fakeRater{rate: 1})

	body, contentType := initiateProjectForm(t, map[string]string{
		"title":              "Solar Farm",
		"description":        "Community solar panels",
		"category":           "environment",
		"walletAddress":      "0x1111111111111111111111111111111111111111",
		"projectAddress":     "0x2222222222222222222222222222222222222222",
		"communityOversight": "true",
		"releaseEpoch":       "1700000000",
		"transactionHash":    "0xdeadbeef",
		"currency":           "0x3333333333333333333333333333333333333333",
		"currencyName":       "USDC",
	}, map[string][]byte{
		"cover.png":  []byte("png-bytes"),
		"readme.txt": []byte("not an image"), // 非法图片静默跳过
	})

	req := httptest.NewRequest(http.MethodPost, "/api/initiate_project", body)
	req.Header.Set("Content-Type", contentType)
	w := doRequest(r, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// 项目创建成功，仅合法图片入库
	var mediaCount int64
	db.Model(&model.MediaModel{}).Count(&mediaCount)
	assert.Equal(t, int64(1), mediaCount)

	w = doRequest(r, httptest.NewRequest(http.MethodGet, "/api/get_project_data/0x2222222222222222222222222222222222222222", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Response int `json:"response"`
		Data     struct {
			Title      string `json:"title"`
			Fundraiser struct {
				Address string `json:"address"`
			} `json:"fundraiser"`
			Status struct {
				Name string `json:"name"`
			} `json:"status"`
			Currencies []struct {
				Address string `json:"address"`
				Name    string `json:"name"`
			} `json:"currencies"`
			Media []struct {
				Image string `json:"image"`
			} `json:"media"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Response)
	assert.Equal(t, "Solar Farm", resp.Data.Title)
	assert.Equal(t, "0x1111111111111111111111111111111111111111", resp.Data.Fundraiser.Address)
	assert.Equal(t, "active", resp.Data.Status.Name)
	require.Len(t, resp.Data.Currencies, 1)
	assert.Equal(t, "USDC", resp.Data.Currencies[0].Name)
	require.Len(t, resp.Data.Media, 1)

	// 落盘的图片可以按文件名取回
	filename := strings.TrimPrefix(resp.Data.Media[0].Image, "user_upload/")
	w = doRequest(r, httptest.NewRequest(http.MethodGet, "/media/user_upload/"+filename, nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "png-bytes", w.Body.String())
}

func TestInitiateProjectFieldErrors(t *testing.T) {
	r, _ := setupRouter(t, &fakeRater{rate: 1})

	body, contentType := initiateProjectForm(t, map[string]string{
		"description":    "no title, bad addresses",
		"walletAddress":  "not-an-address",
		"projectAddress": "0x2222222222222222222222222222222222222222",
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/initiate_project", body)
	req.Header.Set("Content-Type", contentType)
	w := doRequest(r, req)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Errors, "title")
	assert.Contains(t, resp.Errors, "category")
	assert.Contains(t, resp.Errors, "walletAddress")
}

func TestGetProjectDataNotFound(t *testing.T) {
	r, _ := setupRouter(t, &fakeRater{rate: 1})

	w := doRequest(r, httptest.NewRequest(http.MethodGet, "/api/get_project_data/0x00000000000000000000000000000000000000ff", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Project not found")
}

func TestSearchProjectsUnknownField(t *testing.T) {
	r, _ := setupRouter(t, &fakeRater{rate: 1})

	w := doRequest(r, httptest.NewRequest(http.MethodGet, "/api/search_projects?field=unknown&value=x", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestContributeProjectRateServiceDown(t *testing.T) {
	r, db := setupRouter(t, &fakeRater{err: errors.New("exchange rate API returned status 503")})

	seedProjectAndRefs(t, db)

	w := postJSON(r, "/api/contribute_project", map[string]interface{}{
		"projectAddress":  "0x2222222222222222222222222222222222222222",
		"contributor":     "0x4444444444444444444444444444444444444444",
		"currencyAddress": "0x5555555555555555555555555555555555555555",
		"amount":          "100",
		"hsh":             "0xfeed",
	})

	// 汇率服务不可用时仍然记录贡献，美元金额为0
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var contribution model.ContributionModel
	require.NoError(t, db.First(&contribution).Error)
	assert.Equal(t, float64(0), contribution.UsdAmount)
}

func TestContributeProjectUnknownProject(t *testing.T) {
	r, _ := setupRouter(t, &fakeRater{rate: 1})

	w := postJSON(r, "/api/contribute_project", map[string]interface{}{
		"projectAddress":  "0x00000000000000000000000000000000000000ff",
		"contributor":     "0x4444444444444444444444444444444444444444",
		"currencyAddress": "0x5555555555555555555555555555555555555555",
		"amount":          "100",
		"hsh":             "0xfeed",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteCommentTwice(t *testing.T) {
	r, db := setupRouter(t, &fakeRater{rate: 1})

	seedProjectAndRefs(t, db)

	w := postJSON(r, "/api/add_project_comment", map[string]interface{}{
		"projectAddress": "0x2222222222222222222222222222222222222222",
		"user":           "0x4444444444444444444444444444444444444444",
		"details":        "temporary",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var comment struct {
		Id int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &comment))

	url := "/api/delete_comment/" + formatId(comment.Id)
	w = doRequest(r, httptest.NewRequest(http.MethodDelete, url, nil))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(r, httptest.NewRequest(http.MethodDelete, url, nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProposeAndGetVotes(t *testing.T) {
	r, db := setupRouter(t, &fakeRater{rate: 1})

	seedProjectAndRefs(t, db)

	w := postJSON(r, "/api/propose_community_action", map[string]interface{}{
		"projectAddress":       "0x2222222222222222222222222222222222222222",
		"title":                "Extend deadline",
		"description":          "One more month",
		"onchainProposalNonce": 3,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var proposalResp struct {
		Data struct {
			Id int64 `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &proposalResp))

	w = postJSON(r, "/api/vote_community_action", map[string]interface{}{
		"voter":    "0x4444444444444444444444444444444444444444",
		"proposal": proposalResp.Data.Id,
		"weight":   "12.5",
		"vote":     true,
		"hsh":      "0xv0te",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doRequest(r, httptest.NewRequest(http.MethodGet, "/api/get_votes/"+formatId(proposalResp.Data.Id), nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "0x4444444444444444444444444444444444444444")

	w = doRequest(r, httptest.NewRequest(http.MethodGet, "/api/get_votes/424242", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// seedProjectAndRefs 种子一个项目及贡献所需的引用数据
func seedProjectAndRefs(t *testing.T, db *gorm.DB) {
	t.Helper()

	_, err := logic.NewProjectLogic(db).CreateProject(logic.CreateProjectInput{
		Title:          "Solar Farm",
		Category:       "environment",
		WalletAddress:  "0x1111111111111111111111111111111111111111",
		ProjectAddress: "0x2222222222222222222222222222222222222222",
	})
	require.NoError(t, err)

	refdata := logic.NewRefdataLogic(db)
	_, err = refdata.GetOrCreateUser("0x4444444444444444444444444444444444444444")
	require.NoError(t, err)

	network, err := refdata.GetOrCreateNetwork("Optimism Goerli", 420)
	require.NoError(t, err)
	_, err = refdata.GetOrCreateCurrency("0x5555555555555555555555555555555555555555", "DAI", network)
	require.NoError(t, err)
}

func formatId(id int64) string {
	return strconv.FormatInt(id, 10)
}
