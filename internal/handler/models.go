package handler

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/kelvinlyk2002/final-backend/internal/model"
	"github.com/shopspring/decimal"
)

// 请求模型

// InitiateProjectRequest 创建项目请求（multipart表单）
type InitiateProjectRequest struct {
	Title              string `form:"title"`
	Description        string `form:"description"`
	Category           string `form:"category"`
	WalletAddress      string `form:"walletAddress"`
	ProjectAddress     string `form:"projectAddress"`
	CommunityOversight bool   `form:"communityOversight"`
	ReleaseEpoch       int64  `form:"releaseEpoch"`
	TransactionHash    string `form:"transactionHash"`
	Chain              string `form:"chain"`
	ChainId            int64  `form:"chainid"`
	Currency           string `form:"currency"`
	CurrencyName       string `form:"currencyName"`
}

// Validate 字段级校验，返回 字段→问题 映射
func (r *InitiateProjectRequest) Validate() map[string]string {
	errs := make(map[string]string)
	if r.Title == "" {
		errs["title"] = "This field is required"
	}
	if r.Category == "" {
		errs["category"] = "This field is required"
	}
	if r.WalletAddress == "" {
		errs["walletAddress"] = "This field is required"
	} else if !common.IsHexAddress(r.WalletAddress) {
		errs["walletAddress"] = "Not a valid wallet address"
	}
	if r.ProjectAddress == "" {
		errs["projectAddress"] = "This field is required"
	} else if !common.IsHexAddress(r.ProjectAddress) {
		errs["projectAddress"] = "Not a valid project address"
	}
	if r.Currency != "" && !common.IsHexAddress(r.Currency) {
		errs["currency"] = "Not a valid currency address"
	}
	return errs
}

// ContributeRequest 记录贡献请求
type ContributeRequest struct {
	ProjectAddress  string `json:"projectAddress" binding:"required"`
	Contributor     string `json:"contributor" binding:"required"`
	CurrencyAddress string `json:"currencyAddress" binding:"required"`
	Amount          string `json:"amount" binding:"required"`
	Hsh             string `json:"hsh" binding:"required"`
}

// Validate 字段级校验
func (r *ContributeRequest) Validate() map[string]string {
	errs := make(map[string]string)
	if !common.IsHexAddress(r.Contributor) {
		errs["contributor"] = "Not a valid wallet address"
	}
	if !common.IsHexAddress(r.CurrencyAddress) {
		errs["currencyAddress"] = "Not a valid currency address"
	}
	return errs
}

// AddCurrencyRequest 追加项目代币请求
type AddCurrencyRequest struct {
	ProjectAddress  string `json:"projectAddress" binding:"required"`
	Chain           string `json:"chain"`
	ChainId         int64  `json:"chainid"`
	CurrencyAddress string `json:"currencyAddress" binding:"required"`
	CurrencyName    string `json:"currencyName"`
}

// AddCommentRequest 添加评论请求
type AddCommentRequest struct {
	ProjectAddress string `json:"projectAddress" binding:"required"`
	User           string `json:"user" binding:"required"`
	Details        string `json:"details"`
}

// UpdateCommentRequest 更新评论请求（部分字段合并）
type UpdateCommentRequest struct {
	Details *string `json:"details"`
}

// ProposeRequest 发起提案请求
type ProposeRequest struct {
	ProjectAddress string `json:"projectAddress" binding:"required"`
	Title          string `json:"title" binding:"required"`
	Description    string `json:"description"`
	Nonce          int64  `json:"onchainProposalNonce"`
}

// VoteRequest 提案投票请求
type VoteRequest struct {
	Voter      string `json:"voter" binding:"required"`
	ProposalId int64  `json:"proposal" binding:"required"`
	Weight     string `json:"weight"`
	Vote       bool   `json:"vote"`
	Hsh        string `json:"hsh" binding:"required"`
}

// 响应模型（字段集与前端约定保持一致）

type UserData struct {
	Address string `json:"address"`
}

type CurrencyData struct {
	Address string `json:"address"`
	Name    string `json:"name"`
}

type CategoryData struct {
	Name string `json:"name"`
}

type StatusData struct {
	Name string `json:"name"`
}

type MediaData struct {
	Id      int64  `json:"id"`
	Project int64  `json:"project"`
	Image   string `json:"image"`
}

type ContributionData struct {
	CreatedAt time.Time       `json:"created_at"`
	UsdAmount float64         `json:"usd_amount"`
	User      UserData        `json:"user"`
	Currency  CurrencyData    `json:"currency"`
	Amount    decimal.Decimal `json:"amount"`
	Hsh       string          `json:"hsh"`
}

type ProposalData struct {
	Id                   int64      `json:"id"`
	Project              int64      `json:"project"`
	CreatedAt            time.Time  `json:"created_at"`
	Status               StatusData `json:"status"`
	Title                string     `json:"title"`
	Description          string     `json:"description"`
	OnchainProposalNonce int64      `json:"onchain_proposal_nonce"`
}

type CommentData struct {
	Id        int64     `json:"id"`
	Details   string    `json:"details"`
	User      UserData  `json:"user"`
	CreatedAt time.Time `json:"created_at"`
}

type VoteData struct {
	Id        int64           `json:"id"`
	Voter     UserData        `json:"voter"`
	Proposal  int64           `json:"proposal"`
	Weight    decimal.Decimal `json:"weight"`
	Vote      bool            `json:"vote"`
	Hsh       string          `json:"hsh"`
	CreatedAt time.Time       `json:"created_at"`
}

// ProjectData 项目全量数据
type ProjectData struct {
	Id                 int64              `json:"id"`
	Fundraiser         UserData           `json:"fundraiser"`
	Title              string             `json:"title"`
	Description        string             `json:"description"`
	Currencies         []CurrencyData     `json:"currencies"`
	Category           CategoryData       `json:"category"`
	Status             StatusData         `json:"status"`
	ProjectAddress     string             `json:"project_address"`
	CommunityOversight bool               `json:"community_oversight"`
	CreatedAt          time.Time          `json:"created_at"`
	ReleaseEpoch       int64              `json:"release_epoch"`
	CreationHash       string             `json:"creation_hash"`
	Media              []MediaData        `json:"media,omitempty"`
	Contributions      []ContributionData `json:"contribution,omitempty"`
	Proposals          []ProposalData     `json:"community_proposals,omitempty"`
	Comments           []CommentData      `json:"comments,omitempty"`
}

// 投影构造

func newUserData(u model.UserModel) UserData {
	return UserData{Address: u.Address}
}

func newCurrencyData(c model.CurrencyModel) CurrencyData {
	return CurrencyData{Address: c.Address, Name: c.Name}
}

func newMediaData(m model.MediaModel) MediaData {
	return MediaData{Id: m.Id, Project: m.ProjectId, Image: m.Image}
}

func newContributionData(c model.ContributionModel) ContributionData {
	return ContributionData{
		CreatedAt: c.CreatedAt,
		UsdAmount: c.UsdAmount,
		User:      newUserData(c.User),
		Currency:  newCurrencyData(c.Currency),
		Amount:    c.Amount,
		Hsh:       c.Hsh,
	}
}

func newProposalData(p model.CommunityProposalModel) ProposalData {
	return ProposalData{
		Id:                   p.Id,
		Project:              p.ProjectId,
		CreatedAt:            p.CreatedAt,
		Status:               StatusData{Name: p.Status.Name},
		Title:                p.Title,
		Description:          p.Description,
		OnchainProposalNonce: p.OnchainProposalNonce,
	}
}

func newCommentData(c model.CommentModel) CommentData {
	return CommentData{
		Id:        c.Id,
		Details:   c.Details,
		User:      newUserData(c.User),
		CreatedAt: c.CreatedAt,
	}
}

func newVoteData(v model.VoteModel) VoteData {
	return VoteData{
		Id:        v.Id,
		Voter:     newUserData(v.Voter),
		Proposal:  v.ProposalId,
		Weight:    v.Weight,
		Vote:      v.Vote,
		Hsh:       v.Hsh,
		CreatedAt: v.CreatedAt,
	}
}

// newProjectData 构造项目全量投影
func newProjectData(p *model.ProjectModel) ProjectData {
	data := ProjectData{
		Id:                 p.Id,
		Fundraiser:         newUserData(p.Fundraiser),
		Title:              p.Title,
		Description:        p.Description,
		Currencies:         make([]CurrencyData, 0, len(p.Currencies)),
		Category:           CategoryData{Name: p.Category.Name},
		Status:             StatusData{Name: p.Status.Name},
		ProjectAddress:     p.ProjectAddress,
		CommunityOversight: p.CommunityOversight,
		CreatedAt:          p.CreatedAt,
		ReleaseEpoch:       p.ReleaseEpoch,
		CreationHash:       p.CreationHash,
	}
	for _, c := range p.Currencies {
		data.Currencies = append(data.Currencies, newCurrencyData(c))
	}
	for _, m := range p.Media {
		data.Media = append(data.Media, newMediaData(m))
	}
	for _, c := range p.Contributions {
		data.Contributions = append(data.Contributions, newContributionData(c))
	}
	for _, pr := range p.Proposals {
		data.Proposals = append(data.Proposals, newProposalData(pr))
	}
	for _, c := range p.Comments {
		data.Comments = append(data.Comments, newCommentData(c))
	}
	return data
}
